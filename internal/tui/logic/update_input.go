package logic

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/countdown-tui/internal/tui/state"
)

func (h *Handler) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	// Only ctrl+c is truly global
	if msg.String() == "ctrl+c" {
		return h.quit()
	}

	if h.ShowHelp {
		_, cmd := h.HelpComp.Update(msg)
		return cmd
	}

	// Route key messages to the active overlay first so the form can
	// capture letters for text input
	if h.FormOpen() {
		return h.handleFormKeyMsg(msg)
	}
	if h.FullScreen.Visible() {
		return h.handleFullScreenKeyMsg(msg)
	}

	action, ok := h.KeyState.HandleKey(msg, h.Keymap)
	if !ok || action == "" {
		return nil
	}

	h.Err = nil
	h.StatusMsg = ""

	switch action {
	case "up":
		h.List.MoveCursor(-1)
	case "down":
		h.List.MoveCursor(1)
	case "top":
		h.List.CursorToTop()
	case "bottom":
		h.List.CursorToBottom()
	case "reveal":
		h.List.RevealSelected()
	case "close":
		h.List.CloseOpen()
	case "select":
		return h.List.ActivateSelected()
	case "back":
		h.escape()
	case "quit":
		return h.quit()
	case "help":
		h.ShowHelp = true
	case "add":
		return h.openForm()
	case "delete":
		return h.List.DeleteSelected()
	case "copy":
		return h.copySelected()
	case "toggle_hints":
		h.ShowHints = !h.ShowHints
	}
	return nil
}

func (h *Handler) handleFormKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		h.escape()
		return nil
	case "ctrl+s":
		return h.submitForm()
	case "enter":
		// Enter toggles the checkbox; everywhere else it submits
		if h.EventForm.FocusIndex != state.FormFieldAllDay {
			return h.submitForm()
		}
	}
	return h.EventForm.Update(msg)
}

func (h *Handler) handleFullScreenKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		h.escape()
	case "q":
		return h.quit()
	case "y":
		return h.copySelected()
	}
	return nil
}

func (h *Handler) handleMouseMsg(msg tea.MouseMsg) tea.Cmd {
	press := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft

	switch {
	case h.ShowHelp:
		_, cmd := h.HelpComp.Update(msg)
		return cmd

	case h.FormOpen():
		// A press outside the dialog dismisses it once it has been drawn
		if press && !h.FormBounds.Empty() && !h.FormBounds.Contains(msg.X, msg.Y) {
			h.closeForm()
		}
		return nil

	case h.FullScreen.Visible():
		_, cmd := h.FullScreen.Update(msg)
		return cmd
	}

	_, cmd := h.List.Update(msg)
	return cmd
}

// escape closes the topmost layer: the form, then the full-screen view,
// then the open card. It reports whether anything was closed.
func (h *Handler) escape() bool {
	switch {
	case h.FormOpen():
		h.closeForm()
		return true
	case h.FullScreen.Visible():
		h.FullScreen.Hide()
		return true
	}
	return h.List.CloseOpen()
}

// quit stops every ticker and exits.
func (h *Handler) quit() tea.Cmd {
	h.List.Stop()
	h.FullScreen.Hide()
	return tea.Quit
}
