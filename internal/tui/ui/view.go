package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/countdown-tui/internal/tui/state"
)

// Renderer draws the application state.
type Renderer struct {
	*state.State
}

func NewRenderer(s *state.State) *Renderer {
	return &Renderer{State: s}
}

func (r *Renderer) View() string {
	if r.Width == 0 {
		return "Loading..."
	}

	if r.ShowHelp {
		return r.HelpComp.View()
	}
	if r.FullScreen.Visible() {
		return r.FullScreen.View()
	}

	statusBar := r.renderStatusBar()
	contentHeight := r.Height - lipgloss.Height(statusBar)
	if contentHeight < 1 {
		contentHeight = 1
	}

	content := r.List.View()
	if r.EventForm != nil {
		content = r.renderFormOverlay(contentHeight)
	}

	// The list starts at row 0; mouse hit-testing relies on it
	content = lipgloss.NewStyle().Height(contentHeight).MaxHeight(contentHeight).Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

// renderFormOverlay centers the add form in the content area and records
// its bounds for outside-press detection.
func (r *Renderer) renderFormOverlay(height int) string {
	dialog := r.renderEventForm()
	w, h := lipgloss.Width(dialog), lipgloss.Height(dialog)

	x, y := (r.Width-w)/2, (height-h)/2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	r.FormBounds = state.Rect{X: x, Y: y, W: w, H: h}

	return lipgloss.Place(r.Width, height, lipgloss.Center, lipgloss.Center, dialog)
}
