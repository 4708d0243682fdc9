package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/countdown-tui/internal/config"
	"github.com/hy4ri/countdown-tui/internal/countdown"
	"github.com/hy4ri/countdown-tui/internal/tui/state"
)

func newTestRenderer(events ...countdown.Event) *Renderer {
	now := time.Date(2098, 6, 1, 12, 0, 0, 0, time.Local)
	s := state.New(config.DefaultConfig(), nil, countdown.NewCollection(events, nil), func() time.Time { return now })
	s.Width, s.Height = 80, 30
	s.List.SetSize(80, 29)
	s.FullScreen.SetSize(80, 30)
	s.HelpComp.SetSize(80, 30)
	s.List.SetEvents(events)
	return NewRenderer(s)
}

func TestView_Loading(t *testing.T) {
	r := newTestRenderer()
	r.Width = 0
	if r.View() != "Loading..." {
		t.Errorf("Expected loading placeholder, got %q", r.View())
	}
}

func TestView_Layout(t *testing.T) {
	r := newTestRenderer(countdown.Event{ID: 1, Name: "Trip", Date: "2099-01-01", Icon: "✈️", Color: "#4ECDC4"})

	out := r.View()
	if h := lipgloss.Height(out); h != r.Height {
		t.Errorf("Expected %d rows, got %d", r.Height, h)
	}
	lines := strings.Split(out, "\n")
	if !strings.Contains(lines[0], "Countdowns") {
		t.Errorf("Expected list title on the first row, got %q", lines[0])
	}
	if !strings.Contains(out, "Trip") {
		t.Error("Expected the event card")
	}
	if !strings.Contains(lines[len(lines)-1], "F1") {
		t.Error("Expected the status bar on the last row")
	}
}

func TestView_EmptyList(t *testing.T) {
	r := newTestRenderer()
	if !strings.Contains(r.View(), "No events yet") {
		t.Error("Expected the empty placeholder")
	}
}

func TestView_FormBounds(t *testing.T) {
	r := newTestRenderer()
	r.EventForm = state.NewEventForm()

	out := r.View()
	if !strings.Contains(out, "Add Event") {
		t.Fatal("Expected the add form")
	}

	b := r.FormBounds
	if b.W == 0 || b.H == 0 {
		t.Fatal("Expected form bounds to be recorded")
	}
	if b.X != (r.Width-b.W)/2 {
		t.Errorf("Expected centered x %d, got %d", (r.Width-b.W)/2, b.X)
	}
	if b.Contains(0, 0) {
		t.Error("Top-left corner should be outside the form")
	}
	if !b.Contains(b.X+b.W/2, b.Y+b.H/2) {
		t.Error("Center should be inside the form")
	}
}

func TestView_StatusBarError(t *testing.T) {
	r := newTestRenderer()
	r.StatusMsg = "Event added"
	r.Err = errors.New("file store: write: disk full")

	out := r.View()
	if !strings.Contains(out, "Error: file store") {
		t.Error("Expected the error in the status bar")
	}
	if strings.Contains(out, "Event added") {
		t.Error("Errors should take precedence over status messages")
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello world", 6, "hello…"},
		{"🎉🎉🎉", 4, "🎉…"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		if got := truncateString(tt.in, tt.max); got != tt.want {
			t.Errorf("truncateString(%q, %d): expected %q, got %q", tt.in, tt.max, tt.want, got)
		}
	}
}
