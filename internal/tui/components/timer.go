package components

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickScope tells which kind of view a tick belongs to.
type TickScope int

const (
	// ScopeItem ticks drive list cards, keyed by event id.
	ScopeItem TickScope = iota
	// ScopeFullScreen ticks drive the full-screen countdown.
	ScopeFullScreen
)

// TickMsg is sent every second while a ticker is running.
type TickMsg struct {
	Scope TickScope
	ID    int64
	Gen   int
	Time  time.Time
}

// Ticker is a one-second interval owned by a single view. Stopping or
// restarting it bumps its generation so ticks already in flight are dropped.
type Ticker struct {
	scope   TickScope
	id      int64
	gen     int
	running bool
}

// NewTicker creates a stopped card ticker for event id.
func NewTicker(id int64) *Ticker {
	return &Ticker{scope: ScopeItem, id: id}
}

func newFullScreenTicker() *Ticker {
	return &Ticker{scope: ScopeFullScreen}
}

// ID returns the ticker id.
func (t *Ticker) ID() int64 {
	return t.id
}

// Gen returns the current generation.
func (t *Ticker) Gen() int {
	return t.gen
}

// Running reports whether the ticker is started.
func (t *Ticker) Running() bool {
	return t.running
}

// Start starts the ticker and returns the first tick.
func (t *Ticker) Start() tea.Cmd {
	t.gen++
	t.running = true
	return t.Tick()
}

// Stop stops the ticker.
func (t *Ticker) Stop() {
	t.gen++
	t.running = false
}

// Tick returns a command that sends a TickMsg after one second.
func (t *Ticker) Tick() tea.Cmd {
	scope, id, gen := t.scope, t.id, t.gen
	return tea.Tick(time.Second, func(now time.Time) tea.Msg {
		return TickMsg{Scope: scope, ID: id, Gen: gen, Time: now}
	})
}

// Accept reports whether msg belongs to the current run of this ticker.
func (t *Ticker) Accept(msg TickMsg) bool {
	return t.running && msg.Scope == t.scope && msg.ID == t.id && msg.Gen == t.gen
}

// Large block digits
var Digits = map[rune][]string{
	'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
	'1': {"  █  ", " ██  ", "  █  ", "  █  ", " ███ "},
	'2': {" ███ ", "    █", " ███ ", "█    ", " ███ "},
	'3': {" ███ ", "    █", " ███ ", "    █", " ███ "},
	'4': {"█   █", "█   █", " ███ ", "    █", "    █"},
	'5': {" ███ ", "█    ", " ███ ", "    █", " ███ "},
	'6': {" ███ ", "█    ", " ███ ", "█   █", " ███ "},
	'7': {" ███ ", "    █", "   █ ", "  █  ", "  █  "},
	'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
	'9': {" ███ ", "█   █", " ███ ", "    █", " ███ "},
}

// digitRows is the height of a large digit.
const digitRows = 5

// RenderLarge renders the digits of s in large block characters. Other
// characters are skipped.
func RenderLarge(s string) string {
	var rows [digitRows][]string
	for _, r := range s {
		lines, ok := Digits[r]
		if !ok {
			continue
		}
		for i := 0; i < digitRows; i++ {
			rows[i] = append(rows[i], lines[i])
		}
	}

	out := make([]string, digitRows)
	for i := range rows {
		out[i] = strings.Join(rows[i], " ")
	}
	return strings.Join(out, "\n")
}
