package logic

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/countdown-tui/internal/countdown"
	applog "github.com/hy4ri/countdown-tui/internal/log"
	"github.com/hy4ri/countdown-tui/internal/tui/components"
	"github.com/hy4ri/countdown-tui/internal/tui/state"
)

// Handler applies messages to the application state. It owns the event
// collection's persistence hook.
type Handler struct {
	*state.State
}

// NewHandler creates a Handler and subscribes it to collection changes.
func NewHandler(s *state.State) *Handler {
	h := &Handler{State: s}
	if s.Events != nil {
		s.Events.OnChange(h.persist)
	}
	return h
}

// persist saves the full collection after every change. Save errors are
// logged and shown but never fatal.
func (h *Handler) persist(events []countdown.Event) {
	if h.Store == nil {
		return
	}
	if err := h.Store.Save(events); err != nil {
		applog.Error("save events", err, "count", len(events))
		h.Err = err
		return
	}
	applog.Debug("events saved", "count", len(events))
}

func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return h.handleKeyMsg(msg)

	case tea.MouseMsg:
		return h.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		return h.handleWindowSizeMsg(msg)

	case components.TickMsg:
		if msg.Scope == components.ScopeFullScreen {
			_, cmd := h.FullScreen.Update(msg)
			return cmd
		}
		_, cmd := h.List.Update(msg)
		return cmd

	case components.DragResetMsg:
		h.List.Update(msg)
		return nil

	case components.DeleteEventMsg:
		return h.deleteEvent(msg.ID)

	case components.ActivateEventMsg:
		return h.activateEvent(msg.Event)

	case components.CloseHelpMsg:
		h.ShowHelp = false
		return nil

	case errMsg:
		h.Err = msg.err
		return nil

	case statusMsg:
		h.StatusMsg = msg.msg
		return nil
	}

	// Forward non-key messages (like blink) to the form
	if h.EventForm != nil {
		return h.EventForm.Update(msg)
	}

	return nil
}

func (h *Handler) handleWindowSizeMsg(msg tea.WindowSizeMsg) tea.Cmd {
	h.Width = msg.Width
	h.Height = msg.Height

	// Reserve the bottom row for the status bar
	listHeight := msg.Height - 1
	if listHeight < 1 {
		listHeight = 1
	}
	h.List.SetSize(msg.Width, listHeight)
	h.FullScreen.SetSize(msg.Width, msg.Height)
	h.HelpComp.SetSize(msg.Width, msg.Height)

	if h.EventForm != nil {
		h.EventForm.SetWidth(msg.Width)
	}

	return nil
}
