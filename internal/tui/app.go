// Package tui provides the terminal user interface for countdown-tui.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/countdown-tui/internal/config"
	"github.com/hy4ri/countdown-tui/internal/countdown"
	"github.com/hy4ri/countdown-tui/internal/store"
	"github.com/hy4ri/countdown-tui/internal/tui/logic"
	"github.com/hy4ri/countdown-tui/internal/tui/state"
	"github.com/hy4ri/countdown-tui/internal/tui/ui"
)

// App is the main Bubble Tea model for the application.
// State is shared between the handler, which mutates it, and the renderer.
type App struct {
	state    *state.State
	handler  *logic.Handler
	renderer *ui.Renderer
}

// NewApp creates a new App instance over events. Every change to events
// is saved to st.
func NewApp(cfg *config.Config, st store.Store, events *countdown.Collection) *App {
	s := state.New(cfg, st, events, time.Now)
	return &App{
		state:    s,
		handler:  logic.NewHandler(s),
		renderer: ui.NewRenderer(s),
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.handler.Init()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, a.handler.Update(msg)
}

// View implements tea.Model.
func (a *App) View() string {
	return a.renderer.View()
}
