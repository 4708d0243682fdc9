package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/countdown-tui/internal/countdown"
	"github.com/hy4ri/countdown-tui/internal/tui/state"
	"github.com/hy4ri/countdown-tui/internal/tui/styles"
)

// iconsPerRow is how many icons the picker shows per line.
const iconsPerRow = 8

// renderEventForm renders the add event dialog.
func (r *Renderer) renderEventForm() string {
	f := r.EventForm
	if f == nil {
		return styles.Dialog.Render("Form not initialized")
	}

	label := func(field int, text string) string {
		if f.FocusIndex == field {
			return styles.InputLabelFocused.Render(text)
		}
		return styles.InputLabel.Render(text)
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render("Add Event") + "\n\n")

	b.WriteString(label(state.FormFieldName, "Event Name") + "\n")
	b.WriteString(f.Name.View() + "\n\n")

	b.WriteString(label(state.FormFieldDate, "Date") + "\n")
	b.WriteString(f.Date.View() + "\n\n")

	check := "[ ]"
	if f.AllDay {
		check = "[x]"
	}
	b.WriteString(label(state.FormFieldAllDay, check+" All day") + "\n\n")

	b.WriteString(label(state.FormFieldTime, "Time") + "\n")
	if f.AllDay {
		b.WriteString(styles.HelpDesc.Render("All day") + "\n\n")
	} else {
		b.WriteString(f.Time.View() + "\n\n")
	}

	b.WriteString(label(state.FormFieldIcon, "Icon") + "\n")
	b.WriteString(renderIconPicker(f.IconIndex) + "\n\n")

	button := styles.Button
	if f.FocusIndex == state.FormFieldSubmit {
		button = styles.ButtonFocused
	}
	b.WriteString(button.Render("Add Event") + "\n")

	if msg := f.ErrorText(); msg != "" {
		b.WriteString(styles.InputError.Render(msg) + "\n")
	}

	b.WriteString("\n" + styles.HelpDesc.Render("Enter: save | Esc: cancel | Tab: next field"))

	width := r.Width - 4
	if width > 56 {
		width = 56
	}
	return styles.Dialog.Width(width).Render(b.String())
}

func renderIconPicker(selected int) string {
	var rows []string
	var row []string
	for i, icon := range countdown.Icons {
		style := styles.IconOption
		if i == selected {
			style = styles.IconSelected
		}
		row = append(row, style.Render(icon))
		if len(row) == iconsPerRow {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}
