package logic

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/countdown-tui/internal/countdown"
	applog "github.com/hy4ri/countdown-tui/internal/log"
	"github.com/hy4ri/countdown-tui/internal/tui/components"
	"github.com/hy4ri/countdown-tui/internal/tui/state"
)

// openForm shows the add event modal.
func (h *Handler) openForm() tea.Cmd {
	h.List.CloseOpen()
	h.KeyState.Reset()
	h.EventForm = state.NewEventForm()
	h.EventForm.SetWidth(h.Width)
	h.FormBounds = state.Rect{}
	return textinput.Blink
}

// closeForm hides the modal, discarding its input.
func (h *Handler) closeForm() {
	h.EventForm = nil
	h.FormBounds = state.Rect{}
}

// submitForm adds the form's event. Validation errors stay in the form.
func (h *Handler) submitForm() tea.Cmd {
	draft, err := h.EventForm.Draft()
	if err != nil {
		applog.Debug("add form rejected", "err", err)
		return nil
	}

	e, err := h.Events.Add(draft, h.Clock())
	if err != nil {
		h.EventForm.Err = err
		return nil
	}
	applog.Info("event added", "id", e.ID, "name", e.Name, "date", e.Date, "time", e.Time)

	h.closeForm()
	cmd := h.syncList()
	h.List.SelectID(e.ID)
	if h.Err == nil {
		h.StatusMsg = "Event added"
	}
	return cmd
}

// deleteEvent removes the event with id. Unknown ids are ignored.
func (h *Handler) deleteEvent(id int64) tea.Cmd {
	e, ok := h.Events.Get(id)
	if !ok || !h.Events.Remove(id) {
		return nil
	}
	applog.Info("event deleted", "id", id, "name", e.Name)

	if h.FullScreen.Visible() && h.FullScreen.Event().ID == id {
		h.FullScreen.Hide()
	}
	cmd := h.syncList()
	if h.Err == nil {
		h.StatusMsg = "Deleted: " + e.Name
	}
	return cmd
}

// activateEvent opens the full-screen countdown.
func (h *Handler) activateEvent(e countdown.Event) tea.Cmd {
	if _, ok := h.Events.Get(e.ID); !ok {
		return nil
	}
	h.KeyState.Reset()
	return h.FullScreen.Show(e)
}

// copySelected copies the summary of the shown or selected event.
func (h *Handler) copySelected() tea.Cmd {
	var text string
	switch {
	case h.FullScreen.Visible():
		text = components.Summary(h.FullScreen.Event(), h.FullScreen.Delta())
	case h.List.Selected() != nil:
		it := h.List.Selected()
		text = components.Summary(it.Event(), it.Delta())
	default:
		return nil
	}

	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return errMsg{fmt.Errorf("copy to clipboard: %w", err)}
		}
		return statusMsg{msg: "Copied: " + text}
	}
}
