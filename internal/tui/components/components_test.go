package components

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/countdown-tui/internal/countdown"
)

var testNow = time.Date(2099, 1, 1, 0, 0, 0, 0, time.Local)

func fixedClock() time.Time { return testNow }

func testEvent(id int64, name, date string) countdown.Event {
	return countdown.Event{
		ID:    id,
		Name:  name,
		Date:  date,
		Icon:  "🎉",
		Color: countdown.Palette[0],
	}
}

// collect runs cmd and returns every message it produces, expanding batches.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func leftPress(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}

func TestTicker_Accept(t *testing.T) {
	tk := NewTicker(7)
	if tk.Accept(TickMsg{ID: 7}) {
		t.Error("Stopped ticker should not accept ticks")
	}

	tk.Start()
	current := TickMsg{ID: 7, Gen: tk.gen}
	if !tk.Accept(current) {
		t.Error("Expected running ticker to accept its own tick")
	}
	if tk.Accept(TickMsg{ID: 8, Gen: tk.gen}) {
		t.Error("Ticker should not accept another id")
	}
	if tk.Accept(TickMsg{Scope: ScopeFullScreen, ID: 7, Gen: tk.gen}) {
		t.Error("Card ticker should not accept full-screen ticks")
	}

	fs := newFullScreenTicker()
	fs.Start()
	if fs.Accept(TickMsg{ID: 0, Gen: fs.gen}) {
		t.Error("Full-screen ticker should not accept card ticks")
	}
	if !fs.Accept(TickMsg{Scope: ScopeFullScreen, Gen: fs.gen}) {
		t.Error("Expected full-screen ticker to accept its own tick")
	}

	tk.Stop()
	tk.Start()
	if tk.Accept(current) {
		t.Error("Tick from a previous run should be dropped")
	}

	tk.Stop()
	if tk.Running() {
		t.Error("Expected ticker stopped")
	}
}

func TestRenderLarge(t *testing.T) {
	out := RenderLarge("10")
	lines := strings.Split(out, "\n")
	if len(lines) != digitRows {
		t.Fatalf("Expected %d rows, got %d", digitRows, len(lines))
	}
	if lines[0] != Digits['1'][0]+" "+Digits['0'][0] {
		t.Errorf("Unexpected first row %q", lines[0])
	}
}

func TestDaysText(t *testing.T) {
	tests := []struct {
		name       string
		target     time.Time
		wantValue  string
		wantSuffix string
	}{
		{"future", testNow.Add(10*24*time.Hour + time.Hour), "10", "days"},
		{"past", testNow.Add(-3*24*time.Hour - time.Hour), "3", "days ago"},
		{"now", testNow, "0", "days ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, label := DaysText(countdown.Compute(tt.target, testNow))
			if value != tt.wantValue || label != tt.wantSuffix {
				t.Errorf("Expected %s %s, got %s %s", tt.wantValue, tt.wantSuffix, value, label)
			}
		})
	}
}

func TestItem_Refresh(t *testing.T) {
	it := NewItem(testEvent(1, "Trip", "2099-01-11"), fixedClock)
	if it.Delta().Days != 10 {
		t.Errorf("Expected 10 days, got %d", it.Delta().Days)
	}

	it.Init()
	later := testNow.Add(24 * time.Hour)
	_, cmd := it.Update(TickMsg{ID: 1, Gen: it.Ticker().gen, Time: later})
	if cmd == nil {
		t.Error("Expected accepted tick to schedule the next one")
	}
	if it.Delta().Days != 9 {
		t.Errorf("Expected 9 days after tick, got %d", it.Delta().Days)
	}

	it.Stop()
	it.Update(TickMsg{ID: 1, Gen: it.Ticker().gen - 1, Time: testNow.Add(48 * time.Hour)})
	if it.Delta().Days != 9 {
		t.Errorf("Stale tick changed the delta to %d days", it.Delta().Days)
	}
}

func TestItem_Summary(t *testing.T) {
	e := testEvent(1, "Trip", "2098-12-29")
	it := NewItem(e, fixedClock)
	got := Summary(e, it.Delta())
	want := "🎉 Trip: 3 days ago (" + e.FormatDate(false) + ")"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestItem_PastWithinADay(t *testing.T) {
	e := testEvent(1, "Lunch", "2098-12-31")
	e.Time = "12:00"
	it := NewItem(e, fixedClock)
	it.SetSize(60, ItemHeight)

	value, label := DaysText(it.Delta())
	if value != "0" || label != "days ago" {
		t.Errorf("Expected 0 days ago, got %s %s", value, label)
	}
	if out := it.View(); !strings.Contains(out, "12:00:00 ago") {
		t.Errorf("Expected the elapsed hours on the card, got:\n%s", out)
	}
}

func TestItem_DeleteRegion(t *testing.T) {
	it := NewItem(testEvent(1, "Trip", "2099-01-11"), fixedClock)
	it.SetSize(80, ItemHeight)

	if it.InDeleteRegion(79) {
		t.Error("Idle card should have no delete region")
	}

	it.Gesture().SetOpen()
	if it.RevealedCells() != countdown.DeleteButtonWidth/DefaultCellWidth {
		t.Errorf("Expected %d revealed cells, got %d", countdown.DeleteButtonWidth/DefaultCellWidth, it.RevealedCells())
	}
	if !it.InDeleteRegion(75) || it.InDeleteRegion(60) {
		t.Error("Expected delete region to cover the right 10 columns")
	}
	if !strings.Contains(it.View(), "Delete") {
		t.Error("Open card should render the delete button")
	}
}

func newTestList(events ...countdown.Event) *ListModel {
	l := NewList(fixedClock)
	l.SetSize(80, 40)
	l.SetEvents(events)
	return l
}

// swipe drags the card at row y from fromX to toX.
func swipe(l *ListModel, y, fromX, toX int) tea.Cmd {
	l.Update(leftPress(fromX, y))
	l.Update(motion(toX, y))
	_, cmd := l.Update(release(toX, y))
	return cmd
}

func TestList_SortsByTarget(t *testing.T) {
	l := newTestList(
		testEvent(1, "Later", "2099-06-01"),
		testEvent(2, "Soon", "2099-01-05"),
		testEvent(3, "Middle", "2099-03-01"),
	)

	want := []string{"Soon", "Middle", "Later"}
	for i, it := range l.Items() {
		if it.Event().Name != want[i] {
			t.Errorf("Position %d: expected %s, got %s", i, want[i], it.Event().Name)
		}
	}

	// The selected card survives a reorder.
	l.SelectID(3)
	l.SetEvents([]countdown.Event{
		testEvent(1, "Later", "2099-06-01"),
		testEvent(2, "Soon", "2099-01-05"),
		testEvent(3, "Middle", "2099-03-01"),
		testEvent(4, "First", "2099-01-02"),
	})
	if l.Selected().ID() != 3 {
		t.Errorf("Expected cursor to stay on event 3, got %d", l.Selected().ID())
	}
}

func TestList_SingleOpenItem(t *testing.T) {
	l := newTestList(
		testEvent(1, "A", "2099-01-05"),
		testEvent(2, "B", "2099-02-05"),
	)
	a, b := l.Items()[0], l.Items()[1]

	swipe(l, 2, 60, 40)
	if l.OpenID() != a.ID() {
		t.Fatalf("Expected A open, got %d", l.OpenID())
	}
	if a.Gesture().Offset() != countdown.DeleteButtonWidth {
		t.Errorf("Expected A offset %d, got %d", countdown.DeleteButtonWidth, a.Gesture().Offset())
	}

	swipe(l, 6, 60, 40)
	if l.OpenID() != b.ID() {
		t.Fatalf("Expected B open, got %d", l.OpenID())
	}
	if a.Gesture().Offset() != 0 || a.Gesture().State() != countdown.GestureIdle {
		t.Errorf("Expected A idle with offset 0, got %s offset %d", a.Gesture().State(), a.Gesture().Offset())
	}

	swipe(l, 2, 60, 40)
	if l.OpenID() != a.ID() || !a.Gesture().IsOpen() {
		t.Error("Expected A to re-open from idle")
	}
	if b.Gesture().IsOpen() {
		t.Error("Expected B closed once A opened")
	}
}

func TestList_ShortSwipeSnapsBack(t *testing.T) {
	l := newTestList(testEvent(1, "A", "2099-01-05"))
	a := l.Items()[0]

	swipe(l, 2, 60, 55)
	if a.Gesture().Offset() != 0 || l.OpenID() != 0 {
		t.Errorf("Expected snap back, got offset %d open %d", a.Gesture().Offset(), l.OpenID())
	}
}

func TestList_PressOutsideCloses(t *testing.T) {
	l := newTestList(testEvent(1, "A", "2099-01-05"))
	a := l.Items()[0]
	swipe(l, 2, 60, 40)

	l.Update(leftPress(10, 30))
	if l.OpenID() != 0 {
		t.Errorf("Expected no open card, got %d", l.OpenID())
	}
	if a.Gesture().IsOpen() {
		t.Error("Expected A closed after pressing outside")
	}
}

func TestList_TapActivates(t *testing.T) {
	l := newTestList(testEvent(1, "A", "2099-01-05"))

	l.Update(leftPress(10, 3))
	_, cmd := l.Update(release(10, 3))

	var activated bool
	for _, msg := range collect(cmd) {
		if m, ok := msg.(ActivateEventMsg); ok && m.Event.ID == 1 {
			activated = true
		}
	}
	if !activated {
		t.Error("Expected a tap to activate the event")
	}
}

func TestList_TapAfterDragIgnored(t *testing.T) {
	l := newTestList(testEvent(1, "A", "2099-01-05"))

	cmd := swipe(l, 2, 60, 40)
	for _, msg := range collect(cmd) {
		if _, ok := msg.(ActivateEventMsg); ok {
			t.Error("A drag should not activate the event")
		}
	}

	// Tapping the open card closes it instead of activating.
	l.Update(DragResetMsg{ID: 1, Seq: l.Items()[0].Gesture().Seq()})
	l.Update(leftPress(10, 3))
	_, cmd = l.Update(release(10, 3))
	for _, msg := range collect(cmd) {
		if _, ok := msg.(ActivateEventMsg); ok {
			t.Error("Tapping an open card should close it")
		}
	}
	if l.OpenID() != 0 {
		t.Errorf("Expected card closed, got open %d", l.OpenID())
	}
}

func TestList_DeleteButton(t *testing.T) {
	l := newTestList(testEvent(1, "A", "2099-01-05"))
	swipe(l, 2, 60, 40)

	l.Update(leftPress(75, 3))
	_, cmd := l.Update(release(75, 3))
	msgs := collect(cmd)
	if len(msgs) != 1 {
		t.Fatalf("Expected one message, got %d", len(msgs))
	}
	if m, ok := msgs[0].(DeleteEventMsg); !ok || m.ID != 1 {
		t.Errorf("Expected DeleteEventMsg for 1, got %#v", msgs[0])
	}
}

func TestList_RemovedOpenItem(t *testing.T) {
	l := newTestList(
		testEvent(1, "A", "2099-01-05"),
		testEvent(2, "B", "2099-02-05"),
	)
	a := l.Items()[0]
	l.RevealSelected()
	if l.OpenID() != 1 {
		t.Fatalf("Expected A open, got %d", l.OpenID())
	}

	l.SetEvents([]countdown.Event{testEvent(2, "B", "2099-02-05")})
	if l.OpenID() != 0 {
		t.Errorf("Expected open id cleared, got %d", l.OpenID())
	}
	if a.Ticker().Running() {
		t.Error("Removed card should stop its ticker")
	}
	if l.Len() != 1 {
		t.Errorf("Expected 1 card, got %d", l.Len())
	}
}

func TestList_Keyboard(t *testing.T) {
	l := newTestList(
		testEvent(1, "A", "2099-01-05"),
		testEvent(2, "B", "2099-02-05"),
		testEvent(3, "C", "2099-03-05"),
	)

	l.MoveCursor(1)
	if l.Cursor() != 1 {
		t.Errorf("Expected cursor 1, got %d", l.Cursor())
	}
	l.MoveCursor(10)
	if l.Cursor() != 2 {
		t.Errorf("Expected cursor clamped to 2, got %d", l.Cursor())
	}
	l.CursorToTop()
	if l.Cursor() != 0 {
		t.Errorf("Expected cursor 0, got %d", l.Cursor())
	}

	l.RevealSelected()
	l.MoveCursor(1)
	l.RevealSelected()
	if l.Items()[0].Gesture().IsOpen() {
		t.Error("Revealing B should close A")
	}

	msgs := collect(l.DeleteSelected())
	if m, ok := msgs[0].(DeleteEventMsg); !ok || m.ID != 2 {
		t.Errorf("Expected DeleteEventMsg for 2, got %#v", msgs[0])
	}
}

func TestList_EmptyView(t *testing.T) {
	l := newTestList()
	if !strings.Contains(l.View(), "No events yet") {
		t.Error("Expected empty message")
	}
}

func TestFullScreen_Units(t *testing.T) {
	fs := NewFullScreen(fixedClock)
	fs.SetSize(120, 40)

	fs.Show(testEvent(1, "Trip", "2098-12-29"))
	values, labels := fs.Units()
	if values[0] != 3 {
		t.Errorf("Expected 3 days, got %d", values[0])
	}
	for _, l := range labels {
		if !strings.HasSuffix(l, " Ago") {
			t.Errorf("Expected past label, got %q", l)
		}
	}

	fs.Show(testEvent(2, "Flight", "2099-01-02"))
	if _, labels := fs.Units(); labels[0] != "Days" {
		t.Errorf("Expected 'Days', got %q", labels[0])
	}
	if fs.Text() != "1 Days 0 Hours 0 Minutes 0 Seconds" {
		t.Errorf("Unexpected text %q", fs.Text())
	}
}

func TestFullScreen_Close(t *testing.T) {
	tests := []struct {
		name  string
		msg   func(fs *FullScreenModel) tea.Msg
		close bool
	}{
		{
			name:  "esc",
			msg:   func(*FullScreenModel) tea.Msg { return tea.KeyMsg{Type: tea.KeyEsc} },
			close: true,
		},
		{
			name:  "click outside",
			msg:   func(*FullScreenModel) tea.Msg { return leftPress(0, 0) },
			close: true,
		},
		{
			name: "close button",
			msg: func(fs *FullScreenModel) tea.Msg {
				x, y, w, _ := fs.Bounds()
				right := x + w - fs.frameRight()
				return leftPress(right-1, y+fs.frameTop())
			},
			close: true,
		},
		{
			name: "click inside",
			msg: func(fs *FullScreenModel) tea.Msg {
				x, y, w, h := fs.Bounds()
				return leftPress(x+w/2, y+h/2)
			},
			close: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := NewFullScreen(fixedClock)
			fs.SetSize(120, 40)
			fs.Show(testEvent(1, "Trip", "2099-01-11"))

			fs.Update(tt.msg(fs))
			if fs.Visible() == tt.close {
				t.Errorf("Expected visible=%v, got %v", !tt.close, fs.Visible())
			}
			if fs.Ticker().Running() == tt.close {
				t.Errorf("Expected ticker running=%v", !tt.close)
			}
		})
	}
}

func TestFullScreen_StaleTick(t *testing.T) {
	fs := NewFullScreen(fixedClock)
	fs.SetSize(120, 40)
	fs.Show(testEvent(1, "Trip", "2099-01-11"))
	gen := fs.Ticker().gen
	fs.Hide()

	fs.Show(testEvent(1, "Trip", "2099-01-11"))
	_, cmd := fs.Update(TickMsg{Scope: ScopeFullScreen, Gen: gen, Time: testNow.Add(time.Hour)})
	if cmd != nil {
		t.Error("Tick from a previous run should not reschedule")
	}
	if fs.Delta().Days != 10 || fs.Delta().Hours != 0 {
		t.Errorf("Stale tick changed the delta: %+v", fs.Delta())
	}
}
