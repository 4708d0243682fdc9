package components

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/countdown-tui/internal/countdown"
	"github.com/hy4ri/countdown-tui/internal/tui/styles"
)

const closeButton = "[x]"

// FullScreenModel shows a single event with a large per-second countdown.
// It runs its own ticker, independent of the list.
type FullScreenModel struct {
	event         countdown.Event
	delta         countdown.Delta
	valid         bool
	visible       bool
	ticker        *Ticker
	clock         Clock
	width, height int
}

// NewFullScreen creates a hidden full-screen view.
func NewFullScreen(clock Clock) *FullScreenModel {
	if clock == nil {
		clock = time.Now
	}
	return &FullScreenModel{
		ticker: newFullScreenTicker(),
		clock:  clock,
	}
}

// Init implements Component.
func (m *FullScreenModel) Init() tea.Cmd {
	return nil
}

// Show opens the view on e and starts its ticker.
func (m *FullScreenModel) Show(e countdown.Event) tea.Cmd {
	m.event = e
	m.visible = true
	m.refresh(m.clock())
	return m.ticker.Start()
}

// Hide closes the view and stops its ticker.
func (m *FullScreenModel) Hide() {
	m.visible = false
	m.ticker.Stop()
}

// Visible reports whether the view is open.
func (m *FullScreenModel) Visible() bool {
	return m.visible
}

// Event returns the event being shown.
func (m *FullScreenModel) Event() countdown.Event {
	return m.event
}

// Delta returns the last computed delta.
func (m *FullScreenModel) Delta() countdown.Delta {
	return m.delta
}

// Ticker returns the view's ticker.
func (m *FullScreenModel) Ticker() *Ticker {
	return m.ticker
}

// Update implements Component.
func (m *FullScreenModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	if !m.visible {
		return m, nil
	}

	switch msg := msg.(type) {
	case TickMsg:
		if !m.ticker.Accept(msg) {
			return m, nil
		}
		m.refresh(msg.Time)
		return m, m.ticker.Tick()

	case tea.KeyMsg:
		if msg.String() == "esc" {
			m.Hide()
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if m.OnCloseButton(msg.X, msg.Y) || !m.inBox(msg.X, msg.Y) {
			m.Hide()
		}
	}
	return m, nil
}

// SetSize implements Component.
func (m *FullScreenModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *FullScreenModel) refresh(now time.Time) {
	target, err := m.event.Target(time.Local)
	if err != nil {
		m.valid = false
		m.delta = countdown.Delta{}
		return
	}
	m.valid = true
	m.delta = countdown.Compute(target, now)
}

// Units returns the four values and labels shown, as absolute values with
// labels switched to "... Ago" once the target has passed.
func (m *FullScreenModel) Units() ([4]int64, [4]string) {
	abs := m.delta.Abs()
	values := [4]int64{abs.Days, abs.Hours, abs.Minutes, abs.Seconds}
	labels := [4]string{"Days", "Hours", "Minutes", "Seconds"}
	if m.delta.IsPast() {
		for i := range labels {
			labels[i] += " Ago"
		}
	}
	return values, labels
}

// Bounds returns the position and size of the dialog box.
func (m *FullScreenModel) Bounds() (x, y, w, h int) {
	box := m.renderBox()
	w, h = lipgloss.Width(box), lipgloss.Height(box)
	x, y = (m.width-w)/2, (m.height-h)/2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y, w, h
}

// OnCloseButton reports whether (x, y) hits the close button, which sits
// on the first content row against the right edge.
func (m *FullScreenModel) OnCloseButton(x, y int) bool {
	bx, by, bw, _ := m.Bounds()
	right := bx + bw - m.frameRight()
	top := by + m.frameTop()
	return y == top && x >= right-lipgloss.Width(closeButton) && x < right
}

func (m *FullScreenModel) frameRight() int {
	return styles.FullScreenBox.GetBorderRightSize() + styles.FullScreenBox.GetPaddingRight()
}

func (m *FullScreenModel) frameTop() int {
	return styles.FullScreenBox.GetBorderTopSize() + styles.FullScreenBox.GetPaddingTop()
}

func (m *FullScreenModel) inBox(x, y int) bool {
	bx, by, bw, bh := m.Bounds()
	return x >= bx && x < bx+bw && y >= by && y < by+bh
}

// View implements Component.
func (m *FullScreenModel) View() string {
	if !m.visible {
		return ""
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderBox())
}

func (m *FullScreenModel) renderBox() string {
	body := m.renderCountdown(true)
	maxWidth := m.width - styles.FullScreenBox.GetHorizontalFrameSize()
	if lipgloss.Width(body) > maxWidth {
		body = m.renderCountdown(false)
	}

	header := lipgloss.JoinVertical(lipgloss.Center,
		styles.FullScreenIcon.Render(m.event.Icon),
		styles.FullScreenTitle.Render(m.event.Name),
		styles.FullScreenDate.Render(m.event.FormatDate(true)),
	)

	inner := lipgloss.JoinVertical(lipgloss.Center, header, "", body)
	width := lipgloss.Width(inner)

	closeRow := lipgloss.PlaceHorizontal(width, lipgloss.Right, styles.HelpKey.Render(closeButton))
	content := lipgloss.JoinVertical(lipgloss.Left, closeRow, inner)

	color := m.event.Color
	if color == "" {
		color = countdown.Palette[0]
	}
	return styles.FullScreenBox.BorderForeground(lipgloss.Color(color)).Render(content)
}

// renderCountdown lays out the four units side by side, in block digits
// when large is set.
func (m *FullScreenModel) renderCountdown(large bool) string {
	if !m.valid {
		return styles.StatusBarError.Render("Invalid date")
	}

	values, labels := m.Units()
	units := make([]string, 0, len(values))
	for i := range values {
		value := fmt.Sprintf("%d", values[i])
		if large {
			value = RenderLarge(value)
		}
		unit := lipgloss.JoinVertical(lipgloss.Center,
			styles.FullScreenValue.Render(value),
			styles.FullScreenLabel.Render(labels[i]),
		)
		units = append(units, styles.FullScreenUnit.Render(unit))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, units...)
}

// Text returns the countdown as plain text, e.g. "12 Days 3 Hours 4 Minutes 5 Seconds".
func (m *FullScreenModel) Text() string {
	values, labels := m.Units()
	parts := make([]string, len(values))
	for i := range values {
		parts[i] = fmt.Sprintf("%d %s", values[i], labels[i])
	}
	return strings.Join(parts, " ")
}
