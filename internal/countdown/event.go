// Package countdown holds the domain model: events, the time delta
// calculation, the swipe gesture state machine and the event collection.
package countdown

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Date and time layouts used for persisted events.
const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04"
	dateTimeLayout = DateLayout + "T" + TimeLayout
)

// DefaultIcon is the icon preselected in the add form.
const DefaultIcon = "🎉"

// Icons is the closed palette an event icon is chosen from.
var Icons = []string{
	"🎂", "🎉", "🎁", "🎈", // celebrations
	"✈️", "🏖️", "🌴", "🗺️", // travel
	"💼", "📅", "⏰", "📝", // work
	"❤️", "💕", "💐", "💍", // anniversaries
	"🎓", "📚", "🏆", "⚽", // education and sports
	"🍕", "🍰", "🎵", "🎬", // entertainment
}

// IsIcon reports whether icon belongs to the palette.
func IsIcon(icon string) bool {
	for _, i := range Icons {
		if i == icon {
			return true
		}
	}
	return false
}

// Event is a user-created occasion the app counts down to.
type Event struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Date      string `json:"date"`
	Time      string `json:"time,omitempty"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	CreatedAt string `json:"createdAt"`
}

// IsAllDay returns true if the event has no time component.
func (e Event) IsAllDay() bool {
	return e.Time == ""
}

// Target returns the instant the event counts down to in loc.
// All-day events are anchored at midnight of their date.
func (e Event) Target(loc *time.Location) (time.Time, error) {
	if e.IsAllDay() {
		t, err := time.ParseInLocation(DateLayout, e.Date, loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q: %w", e.Date, err)
		}
		return t, nil
	}

	t, err := time.ParseInLocation(dateTimeLayout, e.Date+"T"+e.Time, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date/time %q %q: %w", e.Date, e.Time, err)
	}
	return t, nil
}

// Validate checks the fields every stored event must carry.
func (e Event) Validate() error {
	if e.ID <= 0 {
		return ErrMissingID
	}
	if strings.TrimSpace(e.Name) == "" {
		return ErrNameRequired
	}
	if _, err := e.Target(time.Local); err != nil {
		return &FieldError{Field: "date", Value: e.Date + " " + e.Time, Err: err}
	}
	return nil
}

// FormatDate renders the event's target for display, e.g. "Fri, Jan 1, 2099"
// or "Fri, Jan 1, 2099, 9:30 PM". Long selects full weekday and month names.
func (e Event) FormatDate(long bool) string {
	t, err := e.Target(time.Local)
	if err != nil {
		return e.Date
	}

	layout := "Mon, Jan 2, 2006"
	if long {
		layout = "Monday, January 2, 2006"
	}
	if !e.IsAllDay() {
		layout += ", 3:04 PM"
	}
	return t.Format(layout)
}

// SortByTarget returns a copy of events ordered by ascending target instant.
// Events that share a target keep a stable order by ID. Unparseable dates
// sort last.
func SortByTarget(events []Event) []Event {
	sorted := make([]Event, len(events))
	copy(sorted, events)

	targets := make(map[int64]time.Time, len(sorted))
	valid := make(map[int64]bool, len(sorted))
	for _, e := range sorted {
		if t, err := e.Target(time.Local); err == nil {
			targets[e.ID] = t
			valid[e.ID] = true
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if valid[a.ID] != valid[b.ID] {
			return valid[a.ID]
		}
		ta, tb := targets[a.ID], targets[b.ID]
		if !ta.Equal(tb) {
			return ta.Before(tb)
		}
		return a.ID < b.ID
	})

	return sorted
}
