package components

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/countdown-tui/internal/countdown"
	"github.com/hy4ri/countdown-tui/internal/tui/styles"
)

const (
	// listHeaderHeight is the title row plus the blank row beneath it.
	listHeaderHeight = 2
	// itemStride is a card plus the gap row below it.
	itemStride = ItemHeight + 1
)

// ListModel shows the countdown cards sorted by target. It keeps at most
// one card open: whenever the open card changes, every other card snaps
// back to idle.
type ListModel struct {
	items         []*ItemModel
	openID        int64
	cursor        int
	scroll        int
	width, height int
	cellWidth     int
	clock         Clock
	title         string
	emptyMessage  string

	// Card under the pointer between press and release.
	active      *ItemModel
	pressTarget countdown.TapTarget
}

// NewList creates an empty list.
func NewList(clock Clock) *ListModel {
	if clock == nil {
		clock = time.Now
	}
	return &ListModel{
		clock:        clock,
		cellWidth:    DefaultCellWidth,
		title:        "Countdowns",
		emptyMessage: "No events yet. Press a to add your first countdown!",
	}
}

// Init implements Component. It starts the ticker of every card.
func (l *ListModel) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(l.items))
	for _, it := range l.items {
		cmds = append(cmds, it.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements Component.
func (l *ListModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if it := l.item(msg.ID); it != nil {
			_, cmd := it.Update(msg)
			return l, cmd
		}
	case DragResetMsg:
		if it := l.item(msg.ID); it != nil {
			it.Update(msg)
		}
	case tea.MouseMsg:
		return l, l.handleMouse(msg)
	}
	return l, nil
}

// SetSize implements Component.
func (l *ListModel) SetSize(width, height int) {
	l.width = width
	l.height = height
	for _, it := range l.items {
		it.SetSize(width, ItemHeight)
	}
	l.ensureVisible()
}

// SetCellWidth sets how many logical pixels one column spans.
func (l *ListModel) SetCellWidth(w int) {
	if w <= 0 {
		w = DefaultCellWidth
	}
	l.cellWidth = w
	for _, it := range l.items {
		it.SetCellWidth(w)
	}
}

// SetEvents reconciles the cards with events. Existing cards keep their
// gesture and ticker; new cards are started and removed cards stopped.
// The stored order of events is not changed.
func (l *ListModel) SetEvents(events []countdown.Event) tea.Cmd {
	var selectedID int64
	if it := l.Selected(); it != nil {
		selectedID = it.ID()
	}

	existing := make(map[int64]*ItemModel, len(l.items))
	for _, it := range l.items {
		existing[it.ID()] = it
	}

	var cmds []tea.Cmd
	items := make([]*ItemModel, 0, len(events))
	for _, e := range countdown.SortByTarget(events) {
		if it, ok := existing[e.ID]; ok {
			delete(existing, e.ID)
			it.SetEvent(e)
			items = append(items, it)
			continue
		}
		it := NewItem(e, l.clock)
		it.SetCellWidth(l.cellWidth)
		it.SetSize(l.width, ItemHeight)
		cmds = append(cmds, it.Init())
		items = append(items, it)
	}

	for _, it := range existing {
		it.Stop()
		if it == l.active {
			l.active = nil
		}
		if it.ID() == l.openID {
			l.openID = 0
		}
	}

	l.items = items
	if !l.SelectID(selectedID) {
		l.clampCursor()
	}
	return tea.Batch(cmds...)
}

// Stop stops every card's ticker.
func (l *ListModel) Stop() {
	for _, it := range l.items {
		it.Stop()
	}
}

// Items returns the cards in display order.
func (l *ListModel) Items() []*ItemModel {
	return l.items
}

// Len returns the number of cards.
func (l *ListModel) Len() int {
	return len(l.items)
}

// OpenID returns the id of the open card, or 0.
func (l *ListModel) OpenID() int64 {
	return l.openID
}

// Cursor returns the keyboard cursor position.
func (l *ListModel) Cursor() int {
	return l.cursor
}

// ScrollOffset returns the index of the first visible card.
func (l *ListModel) ScrollOffset() int {
	return l.scroll
}

// Selected returns the card under the cursor.
func (l *ListModel) Selected() *ItemModel {
	if l.cursor >= 0 && l.cursor < len(l.items) {
		return l.items[l.cursor]
	}
	return nil
}

// SelectID moves the cursor to the card of id.
func (l *ListModel) SelectID(id int64) bool {
	for i, it := range l.items {
		if it.ID() == id {
			l.cursor = i
			l.ensureVisible()
			return true
		}
	}
	return false
}

// MoveCursor moves the cursor by delta, clamped to the list.
func (l *ListModel) MoveCursor(delta int) {
	l.cursor += delta
	l.clampCursor()
}

// CursorToTop moves the cursor to the first card.
func (l *ListModel) CursorToTop() {
	l.cursor = 0
	l.clampCursor()
}

// CursorToBottom moves the cursor to the last card.
func (l *ListModel) CursorToBottom() {
	l.cursor = len(l.items) - 1
	l.clampCursor()
}

// SetOpen makes id the open card and forces every other card idle.
func (l *ListModel) SetOpen(id int64) {
	if id == l.openID {
		return
	}
	l.openID = id
	for _, it := range l.items {
		if it.ID() != id {
			it.Gesture().ForceIdle()
		}
	}
}

// CloseOpen closes the open card. It reports whether one was open.
func (l *ListModel) CloseOpen() bool {
	if l.openID == 0 {
		return false
	}
	l.SetOpen(0)
	return true
}

// RevealSelected opens the card under the cursor.
func (l *ListModel) RevealSelected() {
	it := l.Selected()
	if it == nil {
		return
	}
	it.Gesture().SetOpen()
	l.SetOpen(it.ID())
}

// ActivateSelected taps the card under the cursor.
func (l *ListModel) ActivateSelected() tea.Cmd {
	it := l.Selected()
	if it == nil {
		return nil
	}
	result, cmd := it.Tap(countdown.TapBody)
	if result == countdown.TapClose {
		l.SetOpen(0)
	}
	return cmd
}

// DeleteSelected requests deletion of the card under the cursor.
func (l *ListModel) DeleteSelected() tea.Cmd {
	it := l.Selected()
	if it == nil {
		return nil
	}
	id := it.ID()
	return func() tea.Msg { return DeleteEventMsg{ID: id} }
}

// PressOutside handles a press anywhere outside the list.
func (l *ListModel) PressOutside() {
	l.CloseOpen()
}

// Contains reports whether (x, y) lies within the rendered list: the
// header and the visible cards, but not the empty space below them.
func (l *ListModel) Contains(x, y int) bool {
	if x < 0 || x >= l.width || y < 0 {
		return false
	}
	bottom := listHeaderHeight + 1
	if n := l.visibleItems(); n > 0 {
		bottom = listHeaderHeight + n*itemStride - 1
	}
	return y < bottom
}

// ItemAt returns the index of the card drawn at row y.
func (l *ListModel) ItemAt(y int) (int, bool) {
	rel := y - listHeaderHeight
	if rel < 0 || rel%itemStride >= ItemHeight {
		return -1, false
	}
	row := rel / itemStride
	if row >= l.visibleItems() {
		return -1, false
	}
	return l.scroll + row, true
}

func (l *ListModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		l.MoveCursor(-1)
		return nil
	case tea.MouseButtonWheelDown:
		l.MoveCursor(1)
		return nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		l.press(msg.X, msg.Y)
	case tea.MouseActionMotion:
		return l.motion(msg.X, msg.Y)
	case tea.MouseActionRelease:
		return l.release(msg.X, msg.Y)
	}
	return nil
}

func (l *ListModel) press(x, y int) {
	if !l.Contains(x, y) {
		l.PressOutside()
		return
	}
	idx, ok := l.ItemAt(y)
	if !ok || l.active != nil {
		return
	}

	it := l.items[idx]
	l.cursor = idx
	l.active = it
	if it.InDeleteRegion(x) {
		l.pressTarget = countdown.TapDeleteButton
		return
	}
	l.pressTarget = countdown.TapBody
	it.PointerDown(x)
}

func (l *ListModel) motion(x, y int) tea.Cmd {
	it := l.active
	if it == nil || l.pressTarget != countdown.TapBody {
		return nil
	}
	if !l.onItem(it, y) {
		// Leaving the card ends the drag.
		l.active = nil
		return l.finish(it)
	}
	it.PointerMove(x)
	return nil
}

func (l *ListModel) release(x, y int) tea.Cmd {
	it := l.active
	if it == nil {
		return nil
	}
	l.active = nil
	same := l.onItem(it, y)

	if l.pressTarget == countdown.TapDeleteButton {
		if same && it.InDeleteRegion(x) {
			_, cmd := it.Tap(countdown.TapDeleteButton)
			return cmd
		}
		return nil
	}

	if same {
		it.PointerMove(x)
	}
	reset := l.finish(it)
	if !same {
		return reset
	}

	result, cmd := it.Tap(countdown.TapBody)
	if result == countdown.TapClose {
		l.SetOpen(0)
	}
	return tea.Batch(reset, cmd)
}

// finish ends the card's drag, records the open card and schedules the
// did-drag reset.
func (l *ListModel) finish(it *ItemModel) tea.Cmd {
	switch it.PointerUp() {
	case countdown.TransitionOpened:
		l.SetOpen(it.ID())
	case countdown.TransitionClosed:
		if l.openID == it.ID() {
			l.SetOpen(0)
		}
	}
	return it.ResetDrag()
}

func (l *ListModel) onItem(it *ItemModel, y int) bool {
	idx, ok := l.ItemAt(y)
	return ok && l.items[idx] == it
}

func (l *ListModel) item(id int64) *ItemModel {
	for _, it := range l.items {
		if it.ID() == id {
			return it
		}
	}
	return nil
}

// pageSize is how many cards fit in the list's height.
func (l *ListModel) pageSize() int {
	n := (l.height - listHeaderHeight + 1) / itemStride
	if n < 1 {
		n = 1
	}
	return n
}

func (l *ListModel) visibleItems() int {
	n := len(l.items) - l.scroll
	if page := l.pageSize(); n > page {
		n = page
	}
	if n < 0 {
		n = 0
	}
	return n
}

func (l *ListModel) clampCursor() {
	if l.cursor >= len(l.items) {
		l.cursor = len(l.items) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	l.ensureVisible()
}

func (l *ListModel) ensureVisible() {
	page := l.pageSize()
	if l.cursor < l.scroll {
		l.scroll = l.cursor
	}
	if l.cursor >= l.scroll+page {
		l.scroll = l.cursor - page + 1
	}
	if maxScroll := len(l.items) - page; l.scroll > maxScroll {
		l.scroll = maxScroll
	}
	if l.scroll < 0 {
		l.scroll = 0
	}
}

// View implements Component.
func (l *ListModel) View() string {
	var b strings.Builder

	header := styles.Title.Render(l.title)
	if n := len(l.items); n > 0 {
		header += styles.Subtitle.Render(fmt.Sprintf(" (%d)", n))
	}
	if l.scroll > 0 {
		header += styles.ScrollIndicator.Render(fmt.Sprintf("▲ %d more", l.scroll))
	}
	if below := len(l.items) - l.scroll - l.visibleItems(); below > 0 {
		header += styles.ScrollIndicator.Render(fmt.Sprintf("▼ %d more", below))
	}
	b.WriteString(header)
	b.WriteString("\n\n")

	if len(l.items) == 0 {
		b.WriteString(styles.EmptyMessage.Render(l.emptyMessage))
		return b.String()
	}

	end := l.scroll + l.visibleItems()
	for i := l.scroll; i < end; i++ {
		it := l.items[i]
		it.SetSelected(i == l.cursor)
		if i > l.scroll {
			b.WriteString("\n\n")
		}
		b.WriteString(it.View())
	}
	return b.String()
}
