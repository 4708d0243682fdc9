package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/countdown-tui/internal/tui/styles"
)

func (r *Renderer) renderStatusBar() string {
	padding := styles.StatusBar.GetHorizontalFrameSize()

	right := styles.StatusBarKey.Render("F1") + styles.StatusBarText.Render(":keys")
	if r.ShowHints {
		hints := r.getContextualHints()
		hints = append(hints, styles.StatusBarKey.Render("F1")+styles.StatusBarText.Render(":hide"))
		right = strings.Join(hints, " ")
	}
	rightWidth := lipgloss.Width(right)

	// Left side: status message or error
	maxLeftWidth := r.Width - rightWidth - padding - 2
	left := ""
	if r.Err != nil {
		errStr := strings.ReplaceAll(r.Err.Error(), "\n", " ")
		left = styles.StatusBarError.Render(truncateString("Error: "+errStr, maxLeftWidth))
	} else if r.StatusMsg != "" {
		msgStr := strings.ReplaceAll(r.StatusMsg, "\n", " ")
		left = styles.StatusBarSuccess.Render(truncateString(msgStr, maxLeftWidth))
	}
	leftWidth := lipgloss.Width(left)

	spacing := r.Width - leftWidth - rightWidth - padding
	if spacing < 0 {
		spacing = 0
	}

	return styles.StatusBar.Width(r.Width).MaxWidth(r.Width).Render(left + strings.Repeat(" ", spacing) + right)
}

// getContextualHints returns the key hints for the active layer.
func (r *Renderer) getContextualHints() []string {
	key := func(k string) string { return styles.StatusBarKey.Render(k) }
	desc := func(d string) string { return styles.StatusBarText.Render(d) }

	if r.EventForm != nil {
		return []string{
			key("Tab") + desc(":next"),
			key("Enter") + desc(":save"),
			key("Esc") + desc(":cancel"),
		}
	}

	if r.List.Len() == 0 {
		return []string{
			key("a") + desc(":add"),
			key("?") + desc(":help"),
			key("q") + desc(":quit"),
		}
	}

	if r.List.OpenID() != 0 {
		return []string{
			key("dd") + desc(":delete"),
			key("l") + desc(":close"),
			key("Esc") + desc(":back"),
		}
	}

	return []string{
		key("j/k") + desc(":nav"),
		key("Enter") + desc(":open"),
		key("a") + desc(":add"),
		key("h") + desc(":reveal"),
		key("y") + desc(":copy"),
		key("?") + desc(":help"),
	}
}
