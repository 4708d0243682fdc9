package components

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/hy4ri/countdown-tui/internal/countdown"
	"github.com/hy4ri/countdown-tui/internal/tui/styles"
)

// ItemHeight is the number of rows a card occupies.
const ItemHeight = 3

// DefaultCellWidth is the number of logical pixels one terminal cell spans.
const DefaultCellWidth = 10

// ItemModel is one countdown card. It recomputes its delta every second
// and owns the swipe gesture that reveals its delete button.
type ItemModel struct {
	event     countdown.Event
	delta     countdown.Delta
	valid     bool
	gesture   *countdown.Gesture
	ticker    *Ticker
	clock     Clock
	width     int
	cellWidth int
	selected  bool
}

// NewItem creates a card for e. The ticker starts with Init.
func NewItem(e countdown.Event, clock Clock) *ItemModel {
	if clock == nil {
		clock = time.Now
	}
	m := &ItemModel{
		event:     e,
		gesture:   countdown.NewGesture(),
		ticker:    NewTicker(e.ID),
		clock:     clock,
		cellWidth: DefaultCellWidth,
	}
	m.Refresh(clock())
	return m
}

// Init implements Component.
func (m *ItemModel) Init() tea.Cmd {
	m.Refresh(m.clock())
	return m.ticker.Start()
}

// Update implements Component.
func (m *ItemModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if !m.ticker.Accept(msg) {
			return m, nil
		}
		m.Refresh(msg.Time)
		return m, m.ticker.Tick()
	case DragResetMsg:
		if msg.ID == m.event.ID {
			m.gesture.ClearDragged(msg.Seq)
		}
	}
	return m, nil
}

// SetSize implements Component. Cards have a fixed height.
func (m *ItemModel) SetSize(width, _ int) {
	m.width = width
}

// SetCellWidth sets how many logical pixels one column spans.
func (m *ItemModel) SetCellWidth(w int) {
	if w <= 0 {
		w = DefaultCellWidth
	}
	m.cellWidth = w
}

// SetSelected marks the card under the keyboard cursor.
func (m *ItemModel) SetSelected(selected bool) {
	m.selected = selected
}

// SetEvent replaces the event shown by the card.
func (m *ItemModel) SetEvent(e countdown.Event) {
	m.event = e
	m.Refresh(m.clock())
}

// Stop stops the card's ticker.
func (m *ItemModel) Stop() {
	m.ticker.Stop()
}

// Refresh recomputes the delta against now.
func (m *ItemModel) Refresh(now time.Time) {
	target, err := m.event.Target(time.Local)
	if err != nil {
		m.valid = false
		m.delta = countdown.Delta{}
		return
	}
	m.valid = true
	m.delta = countdown.Compute(target, now)
}

// Event returns the card's event.
func (m *ItemModel) Event() countdown.Event {
	return m.event
}

// ID returns the event id.
func (m *ItemModel) ID() int64 {
	return m.event.ID
}

// Delta returns the last computed delta.
func (m *ItemModel) Delta() countdown.Delta {
	return m.delta
}

// Gesture returns the card's swipe gesture.
func (m *ItemModel) Gesture() *countdown.Gesture {
	return m.gesture
}

// Ticker returns the card's ticker.
func (m *ItemModel) Ticker() *Ticker {
	return m.ticker
}

// RevealedCells is how many columns the delete button currently takes.
func (m *ItemModel) RevealedCells() int {
	cells := m.gesture.Offset() / m.cellWidth
	if cells > m.width {
		cells = m.width
	}
	return cells
}

// InDeleteRegion reports whether column x, relative to the card's left
// edge, falls on the revealed delete button.
func (m *ItemModel) InDeleteRegion(x int) bool {
	revealed := m.RevealedCells()
	return revealed > 0 && x >= m.width-revealed && x < m.width
}

// PointerDown starts a drag at column x.
func (m *ItemModel) PointerDown(x int) {
	m.gesture.Start(x * m.cellWidth)
}

// PointerMove tracks the pointer at column x.
func (m *ItemModel) PointerMove(x int) bool {
	return m.gesture.Move(x*m.cellWidth, true)
}

// PointerUp ends the drag.
func (m *ItemModel) PointerUp() countdown.Transition {
	return m.gesture.End()
}

// Tap resolves a tap on the card and returns the message it produces.
func (m *ItemModel) Tap(target countdown.TapTarget) (countdown.TapResult, tea.Cmd) {
	result := m.gesture.Tap(target)
	switch result {
	case countdown.TapDelete:
		id := m.event.ID
		return result, func() tea.Msg { return DeleteEventMsg{ID: id} }
	case countdown.TapActivate:
		e := m.event
		return result, func() tea.Msg { return ActivateEventMsg{Event: e} }
	}
	return result, nil
}

// ResetDrag schedules the did-drag flag of the current drag to be cleared.
func (m *ItemModel) ResetDrag() tea.Cmd {
	id, seq := m.event.ID, m.gesture.Seq()
	return tea.Tick(countdown.DragResetDelay, func(time.Time) tea.Msg {
		return DragResetMsg{ID: id, Seq: seq}
	})
}

// DaysText returns the day count and its label, e.g. "12" "days" or
// "3" "days ago".
func DaysText(d countdown.Delta) (string, string) {
	if d.IsPast() {
		return fmt.Sprintf("%d", d.Abs().Days), "days ago"
	}
	return fmt.Sprintf("%d", d.Days), "days"
}

// Summary is the one-line text of an event, as copied to the clipboard.
func Summary(e countdown.Event, d countdown.Delta) string {
	value, label := DaysText(d)
	return fmt.Sprintf("%s %s: %s %s (%s)", e.Icon, e.Name, value, label, e.FormatDate(false))
}

// View implements Component.
func (m *ItemModel) View() string {
	if m.width <= 0 {
		return ""
	}

	revealed := m.RevealedCells()
	cardWidth := m.width - 1 - revealed
	if cardWidth < 0 {
		cardWidth = 0
	}

	gutter := strings.Repeat(" \n", ItemHeight-1) + " "
	if m.selected {
		gutter = styles.CardCursor.Render(strings.Repeat("▌\n", ItemHeight-1) + "▌")
	}

	parts := []string{gutter}
	if cardWidth > 0 {
		parts = append(parts, m.renderCard(cardWidth))
	}
	if revealed > 0 {
		parts = append(parts, renderDeleteButton(revealed))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *ItemModel) renderCard(width int) string {
	style := styles.Card.Background(lipgloss.Color(m.cardColor()))
	if m.valid && m.delta.IsPast() {
		style = style.Inherit(styles.CardPast)
	}
	inner := width - style.GetHorizontalPadding()
	if inner < 0 {
		inner = 0
	}

	value, label := "?", "invalid date"
	clock := ""
	if m.valid {
		value, label = DaysText(m.delta)
		abs := m.delta.Abs()
		clock = fmt.Sprintf("%02d:%02d:%02d", abs.Hours, abs.Minutes, abs.Seconds)
		if m.delta.IsPast() {
			clock += " ago"
		}
	}

	icon := m.event.Icon
	if icon == "" {
		icon = countdown.DefaultIcon
	}

	lines := []string{
		spread(icon+" "+m.event.Name, styles.CardValue.Render(value), inner),
		spread("   "+m.event.FormatDate(false), label, inner),
		spread("", clock, inner),
	}
	return style.Width(width).Render(strings.Join(lines, "\n"))
}

func (m *ItemModel) cardColor() string {
	if m.event.Color == "" {
		return countdown.Palette[0]
	}
	return m.event.Color
}

func renderDeleteButton(width int) string {
	text := "Delete"
	if width < len(text) {
		text = "×"
	}
	if width < 1 {
		return ""
	}
	return styles.DeleteButton.Width(width).Render("\n" + text + "\n")
}

// spread places left and right on one line of the given width, truncating
// left when they do not fit.
func spread(left, right string, width int) string {
	rw := lipgloss.Width(right)
	room := width - rw - 1
	if room < 0 {
		return ""
	}
	left = runewidth.Truncate(left, room, "…")
	gap := width - runewidth.StringWidth(left) - rw
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
