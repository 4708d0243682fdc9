package logic

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Init implements tea.Model. It builds a card for every stored event and
// starts their tickers.
func (h *Handler) Init() tea.Cmd {
	return h.syncList()
}

// syncList reconciles the list with the collection.
func (h *Handler) syncList() tea.Cmd {
	if h.Events == nil {
		return nil
	}
	return h.List.SetEvents(h.Events.Events())
}

// Message types
type errMsg struct{ err error }
type statusMsg struct{ msg string }
