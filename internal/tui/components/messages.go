package components

import "github.com/hy4ri/countdown-tui/internal/countdown"

// DeleteEventMsg is emitted when an item's delete button is pressed.
type DeleteEventMsg struct {
	ID int64
}

// ActivateEventMsg is emitted when an item is tapped or opened with enter.
type ActivateEventMsg struct {
	Event countdown.Event
}

// DragResetMsg clears an item's did-drag flag once the drag that set it
// has ended.
type DragResetMsg struct {
	ID  int64
	Seq int
}

// CloseHelpMsg is emitted when the help view is dismissed.
type CloseHelpMsg struct{}
