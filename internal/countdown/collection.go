package countdown

import (
	"strings"
	"time"
)

// Draft is a new event as submitted by the add form, before the
// collection assigns its identity and color.
type Draft struct {
	Name   string
	Date   string
	Time   string
	AllDay bool
	Icon   string
}

// Normalize trims the fields, clears Time for all-day drafts and fills in
// the default icon.
func (d Draft) Normalize() Draft {
	d.Name = strings.TrimSpace(d.Name)
	d.Date = strings.TrimSpace(d.Date)
	d.Time = strings.TrimSpace(d.Time)
	if d.AllDay {
		d.Time = ""
	}
	if d.Icon == "" {
		d.Icon = DefaultIcon
	}
	return d
}

// Validate checks a normalized draft.
func (d Draft) Validate() error {
	if d.Name == "" {
		return ErrNameRequired
	}
	if d.Date == "" {
		return ErrDateRequired
	}
	if _, err := time.ParseInLocation(DateLayout, d.Date, time.Local); err != nil {
		return &FieldError{Field: "date", Value: d.Date, Err: ErrInvalidDate}
	}
	if d.Time != "" {
		if _, err := time.Parse(TimeLayout, d.Time); err != nil {
			return &FieldError{Field: "time", Value: d.Time, Err: ErrInvalidTime}
		}
	}
	if !IsIcon(d.Icon) {
		return &FieldError{Field: "icon", Value: d.Icon, Err: ErrInvalidIcon}
	}
	return nil
}

// ChangeFunc is called with the full collection after every change.
type ChangeFunc func(events []Event)

// Collection owns the event list and notifies subscribers on change.
// It is not safe for concurrent use; the TUI mutates it from Update only.
type Collection struct {
	events    []Event
	colors    ColorAssigner
	listeners []ChangeFunc
	lastID    int64
}

// NewCollection returns a collection seeded with events. Seeding does not
// notify subscribers.
func NewCollection(events []Event, colors ColorAssigner) *Collection {
	if colors == nil {
		colors = NewRandomColors(nil)
	}
	c := &Collection{
		events: make([]Event, 0, len(events)),
		colors: colors,
	}
	seen := make(map[int64]bool, len(events))
	for _, e := range events {
		if seen[e.ID] {
			continue
		}
		seen[e.ID] = true
		c.events = append(c.events, e)
		if e.ID > c.lastID {
			c.lastID = e.ID
		}
	}
	return c
}

// OnChange registers fn to run after every mutation.
func (c *Collection) OnChange(fn ChangeFunc) {
	c.listeners = append(c.listeners, fn)
}

// Events returns a copy of the events in insertion order.
func (c *Collection) Events() []Event {
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

// Len returns the number of events.
func (c *Collection) Len() int {
	return len(c.events)
}

// Get returns the event with the given ID.
func (c *Collection) Get(id int64) (Event, bool) {
	for _, e := range c.events {
		if e.ID == id {
			return e, true
		}
	}
	return Event{}, false
}

// Add validates the draft, assigns an ID, color and creation time, and
// appends the new event.
func (c *Collection) Add(d Draft, now time.Time) (Event, error) {
	d = d.Normalize()
	if err := d.Validate(); err != nil {
		return Event{}, err
	}

	id := now.UnixMilli()
	if id <= c.lastID {
		id = c.lastID + 1
	}
	c.lastID = id

	e := Event{
		ID:        id,
		Name:      d.Name,
		Date:      d.Date,
		Time:      d.Time,
		Icon:      d.Icon,
		Color:     c.colors.Assign(),
		CreatedAt: now.UTC().Format(time.RFC3339Nano),
	}
	c.events = append(c.events, e)
	c.notify()
	return e, nil
}

// Remove deletes the event with the given ID. Unknown IDs are a no-op and
// do not notify subscribers.
func (c *Collection) Remove(id int64) bool {
	for i, e := range c.events {
		if e.ID == id {
			c.events = append(c.events[:i], c.events[i+1:]...)
			c.notify()
			return true
		}
	}
	return false
}

// Import appends events whose IDs are not present yet and returns how many
// were added. Events without an ID, color or palette icon get them filled
// in; events that still fail validation are skipped.
func (c *Collection) Import(events []Event, now time.Time) int {
	added := 0
	for _, e := range events {
		if e.ID != 0 {
			if _, exists := c.Get(e.ID); exists {
				continue
			}
		} else {
			e.ID = now.UnixMilli()
			if e.ID <= c.lastID {
				e.ID = c.lastID + 1
			}
		}
		if e.Color == "" {
			e.Color = c.colors.Assign()
		}
		if !IsIcon(e.Icon) {
			e.Icon = DefaultIcon
		}
		if e.CreatedAt == "" {
			e.CreatedAt = now.UTC().Format(time.RFC3339Nano)
		}
		if e.Validate() != nil {
			continue
		}

		c.events = append(c.events, e)
		if e.ID > c.lastID {
			c.lastID = e.ID
		}
		added++
	}
	if added > 0 {
		c.notify()
	}
	return added
}

func (c *Collection) notify() {
	snapshot := c.Events()
	for _, fn := range c.listeners {
		fn(snapshot)
	}
}
