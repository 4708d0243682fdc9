package countdown

import (
	"testing"
	"time"
)

func TestEventTarget(t *testing.T) {
	loc := time.FixedZone("test", 2*60*60)

	allDay := Event{ID: 1, Name: "Trip", Date: "2099-01-01"}
	got, err := allDay.Target(loc)
	if err != nil {
		t.Fatalf("Target failed: %v", err)
	}
	want := time.Date(2099, 1, 1, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("Expected local midnight %v, got %v", want, got)
	}

	timed := Event{ID: 2, Name: "Flight", Date: "2099-01-01", Time: "18:45"}
	got, err = timed.Target(loc)
	if err != nil {
		t.Fatalf("Target failed: %v", err)
	}
	want = time.Date(2099, 1, 1, 18, 45, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	if _, err := (Event{Date: "tomorrow"}).Target(loc); err == nil {
		t.Error("Expected error for malformed date")
	}
}

func TestSortByTarget(t *testing.T) {
	events := []Event{
		{ID: 1, Name: "late", Date: "2099-03-01"},
		{ID: 2, Name: "evening", Date: "2099-01-01", Time: "20:00"},
		{ID: 3, Name: "broken", Date: "not-a-date"},
		{ID: 4, Name: "midnight", Date: "2099-01-01"},
		{ID: 5, Name: "morning", Date: "2099-01-01", Time: "08:00"},
		{ID: 0, Name: "tie", Date: "2099-01-01", Time: "08:00"},
	}

	sorted := SortByTarget(events)
	wantOrder := []int64{4, 0, 5, 2, 1, 3}
	for i, id := range wantOrder {
		if sorted[i].ID != id {
			t.Errorf("At index %d: expected %d, got %d (%s)", i, id, sorted[i].ID, sorted[i].Name)
		}
	}

	if events[0].ID != 1 {
		t.Error("SortByTarget must not reorder its input")
	}
}

func TestEventValidate(t *testing.T) {
	if err := (Event{ID: 1, Name: "ok", Date: "2099-01-01", Time: "10:00"}).Validate(); err != nil {
		t.Errorf("Expected valid event, got %v", err)
	}
	if err := (Event{Name: "no id", Date: "2099-01-01"}).Validate(); err != ErrMissingID {
		t.Errorf("Expected ErrMissingID, got %v", err)
	}
	if err := (Event{ID: -1, Name: "negative id", Date: "2099-01-01"}).Validate(); err != ErrMissingID {
		t.Errorf("Expected ErrMissingID for a negative id, got %v", err)
	}
	if err := (Event{ID: 1, Date: "2099-01-01"}).Validate(); err != ErrNameRequired {
		t.Errorf("Expected ErrNameRequired, got %v", err)
	}
	if err := (Event{ID: 1, Name: "x", Date: "2099-13-40"}).Validate(); !IsValidationError(err) {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestFormatDate(t *testing.T) {
	e := Event{ID: 1, Name: "x", Date: "2099-01-01"}
	if got := e.FormatDate(false); got != "Thu, Jan 1, 2099" {
		t.Errorf("Unexpected short date %q", got)
	}
	e.Time = "21:30"
	if got := e.FormatDate(true); got != "Thursday, January 1, 2099, 9:30 PM" {
		t.Errorf("Unexpected long date %q", got)
	}
}
