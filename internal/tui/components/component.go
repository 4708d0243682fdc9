// Package components provides the countdown list, its items, the
// full-screen countdown and the help view.
package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Component is a sub-model that handles a specific part of the UI.
// Each component manages its own state, handles relevant messages,
// and renders its own view.
type Component interface {
	// Init initializes the component and returns any initial command.
	Init() tea.Cmd

	// Update handles messages and returns an updated component and command.
	Update(msg tea.Msg) (Component, tea.Cmd)

	// View renders the component to a string.
	View() string

	// SetSize updates the component's dimensions.
	SetSize(width, height int)
}

// Clock returns the current time. Components take one so tests can pin it.
type Clock func() time.Time
