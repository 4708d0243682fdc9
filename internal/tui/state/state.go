package state

import (
	"time"

	"github.com/hy4ri/countdown-tui/internal/config"
	"github.com/hy4ri/countdown-tui/internal/countdown"
	"github.com/hy4ri/countdown-tui/internal/store"
	"github.com/hy4ri/countdown-tui/internal/tui/components"
)

// Keymap defines keybindings.
type Keymap interface {
	HelpItems() [][]string
}

// Rect is a screen region in cells.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether r has not been laid out yet.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// State holds the application state.
// All fields are exported to allow access from logic and ui packages.
type State struct {
	// Dependencies
	Config *config.Config
	Store  store.Store
	Events *countdown.Collection
	Clock  components.Clock

	// UI Components
	List       *components.ListModel
	FullScreen *components.FullScreenModel
	HelpComp   *components.HelpModel

	// Form modal; nil when closed
	EventForm  *EventForm
	FormBounds Rect

	// UI state
	ShowHelp  bool
	Err       error
	StatusMsg string
	Width     int
	Height    int
	ShowHints bool

	Keymap   Keymap
	KeyState *KeyState
}

// New builds the state around an event collection.
func New(cfg *config.Config, st store.Store, events *countdown.Collection, clock components.Clock) *State {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if clock == nil {
		clock = time.Now
	}

	list := components.NewList(clock)
	list.SetCellWidth(cfg.UI.CellWidth)

	keymap := DefaultKeymap()
	help := components.NewHelp()
	help.SetKeymap(keymap.HelpItems())

	return &State{
		Config:     cfg,
		Store:      st,
		Events:     events,
		Clock:      clock,
		List:       list,
		FullScreen: components.NewFullScreen(clock),
		HelpComp:   help,
		ShowHints:  cfg.UI.ShowHints,
		Keymap:     keymap,
		KeyState:   &KeyState{},
	}
}

// FormOpen reports whether the add form modal is shown.
func (s *State) FormOpen() bool {
	return s.EventForm != nil
}
