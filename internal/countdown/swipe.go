package countdown

import "time"

// Gesture thresholds, in logical pixels.
const (
	DeleteButtonWidth = 100
	SwipeThreshold    = 100
	CloseThreshold    = 50
	DragSlop          = 5
)

// DragResetDelay is how long the did-drag flag outlives the end of a drag.
const DragResetDelay = 100 * time.Millisecond

// GestureState is the state of a swipe gesture.
type GestureState int

const (
	GestureIdle GestureState = iota
	GestureDragging
	GestureOpen
)

func (s GestureState) String() string {
	switch s {
	case GestureDragging:
		return "dragging"
	case GestureOpen:
		return "open"
	default:
		return "idle"
	}
}

// Transition is what End asks the list owner to do with its open item.
type Transition int

const (
	TransitionNone   Transition = iota
	TransitionOpened            // this item is now the open one
	TransitionClosed            // no item is open
)

// TapTarget identifies the part of an item a tap landed on.
type TapTarget int

const (
	TapBody TapTarget = iota
	TapDeleteButton
)

// TapResult is how a tap on an item must be routed.
type TapResult int

const (
	TapIgnored TapResult = iota
	TapActivate
	TapClose
	TapDelete
)

// Gesture tracks the horizontal swipe that reveals an item's delete button.
// It is driven by one pointer and is not safe for concurrent use.
type Gesture struct {
	dragging bool
	open     bool
	dragged  bool
	dragSeq  int
	startX   int
	lastX    int
	offset   int
}

// NewGesture returns an idle gesture.
func NewGesture() *Gesture {
	return &Gesture{}
}

// State returns the current state. A drag started on an open item reports
// Dragging until it ends.
func (g *Gesture) State() GestureState {
	switch {
	case g.dragging:
		return GestureDragging
	case g.open:
		return GestureOpen
	default:
		return GestureIdle
	}
}

// Offset returns the reveal offset, 0..DeleteButtonWidth.
func (g *Gesture) Offset() int {
	return g.offset
}

// IsOpen reports whether the delete button is revealed.
func (g *Gesture) IsOpen() bool {
	return g.open
}

// Dragged reports whether the last drag moved far enough to suppress a tap.
func (g *Gesture) Dragged() bool {
	return g.dragged
}

// Seq identifies the most recent drag. Pass it to ClearDragged.
func (g *Gesture) Seq() int {
	return g.dragSeq
}

// Start begins a drag at x. A second pointer while dragging is ignored.
func (g *Gesture) Start(x int) {
	if g.dragging {
		return
	}
	g.dragSeq++
	g.dragging = true
	g.dragged = false
	g.startX = x
	g.lastX = x
}

// Move tracks the pointer at x. It returns true when the caller should
// suppress the default handling of the input (scrolling), which only
// happens for cancelable input once the pointer has moved past DragSlop.
func (g *Gesture) Move(x int, cancelable bool) bool {
	if !g.dragging {
		return false
	}
	g.lastX = x
	diff := g.startX - x

	preventDefault := false
	if diff > DragSlop || diff < -DragSlop {
		g.dragged = true
		preventDefault = cancelable
	}

	if diff > 0 {
		g.offset = min(diff, DeleteButtonWidth)
	} else if g.open {
		g.offset = max(0, DeleteButtonWidth+diff)
	}

	return preventDefault
}

// End finishes the drag and snaps the offset. The did-drag flag stays set
// until ClearDragged is called.
func (g *Gesture) End() Transition {
	if !g.dragging {
		return TransitionNone
	}
	g.dragging = false
	diff := g.startX - g.lastX

	switch {
	case diff > SwipeThreshold:
		g.open = true
		g.offset = DeleteButtonWidth
		return TransitionOpened
	case g.open && diff < -CloseThreshold:
		g.open = false
		g.offset = 0
		return TransitionClosed
	case g.open:
		g.offset = DeleteButtonWidth
	default:
		g.offset = 0
	}
	return TransitionNone
}

// ClearDragged resets the did-drag flag if no newer drag has started since seq.
func (g *Gesture) ClearDragged(seq int) {
	if seq == g.dragSeq && !g.dragging {
		g.dragged = false
	}
}

// Tap resolves a click or tap on the item.
func (g *Gesture) Tap(target TapTarget) TapResult {
	if target == TapDeleteButton {
		return TapDelete
	}
	if g.dragged {
		return TapIgnored
	}
	if g.open {
		g.ForceIdle()
		return TapClose
	}
	return TapActivate
}

// SetOpen opens the item without a drag, e.g. from the keyboard.
func (g *Gesture) SetOpen() {
	g.dragging = false
	g.open = true
	g.offset = DeleteButtonWidth
}

// ForceIdle closes the item and cancels any drag in progress.
func (g *Gesture) ForceIdle() {
	g.dragging = false
	g.open = false
	g.offset = 0
}
