package state

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/countdown-tui/internal/countdown"
)

// FormField constants for focus management
const (
	FormFieldName = iota
	FormFieldDate
	FormFieldAllDay
	FormFieldTime
	FormFieldIcon
	FormFieldSubmit
)

const formFieldCount = 6

// EventForm is the state of the add event modal.
type EventForm struct {
	Name      textinput.Model
	Date      textinput.Model
	Time      textinput.Model
	AllDay    bool
	IconIndex int

	FocusIndex int

	// Err is the validation error of the last submission attempt.
	Err error
}

// NewEventForm creates an empty form focused on the name field.
func NewEventForm() *EventForm {
	name := textinput.New()
	name.Placeholder = "e.g., Sarah's Birthday"
	name.CharLimit = 100
	name.Width = 40

	date := textinput.New()
	date.Placeholder = "YYYY-MM-DD"
	date.CharLimit = 10
	date.Width = 12

	tm := textinput.New()
	tm.Placeholder = "HH:MM (optional)"
	tm.CharLimit = 5
	tm.Width = 18

	f := &EventForm{
		Name: name,
		Date: date,
		Time: tm,
	}
	for i, icon := range countdown.Icons {
		if icon == countdown.DefaultIcon {
			f.IconIndex = i
		}
	}
	f.Focus(FormFieldName)
	return f
}

// Update updates the form models.
func (f *EventForm) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "down":
			f.NextField()
			return nil
		case "shift+tab", "up":
			f.PrevField()
			return nil
		}

		switch f.FocusIndex {
		case FormFieldAllDay:
			switch msg.String() {
			case " ", "enter", "x":
				f.ToggleAllDay()
			}
			return nil
		case FormFieldIcon:
			switch msg.String() {
			case "h", "left":
				f.MoveIcon(-1)
			case "l", "right":
				f.MoveIcon(1)
			}
			return nil
		case FormFieldSubmit:
			return nil
		}
	}

	var cmd tea.Cmd
	switch f.FocusIndex {
	case FormFieldName:
		f.Name, cmd = f.Name.Update(msg)
	case FormFieldDate:
		f.Date, cmd = f.Date.Update(msg)
	case FormFieldTime:
		if !f.AllDay {
			f.Time, cmd = f.Time.Update(msg)
		}
	}
	return cmd
}

// NextField moves focus to the next field. The time field is skipped for
// all-day events.
func (f *EventForm) NextField() {
	i := (f.FocusIndex + 1) % formFieldCount
	if i == FormFieldTime && f.AllDay {
		i++
	}
	f.Focus(i)
}

// PrevField moves focus to the previous field.
func (f *EventForm) PrevField() {
	i := (f.FocusIndex - 1 + formFieldCount) % formFieldCount
	if i == FormFieldTime && f.AllDay {
		i--
	}
	f.Focus(i)
}

// Focus focuses the field at index.
func (f *EventForm) Focus(index int) {
	f.FocusIndex = index
	f.Name.Blur()
	f.Date.Blur()
	f.Time.Blur()

	switch index {
	case FormFieldName:
		f.Name.Focus()
	case FormFieldDate:
		f.Date.Focus()
	case FormFieldTime:
		f.Time.Focus()
	}
}

// ToggleAllDay switches between an all-day and a timed event.
func (f *EventForm) ToggleAllDay() {
	f.AllDay = !f.AllDay
	if f.AllDay {
		f.Time.Blur()
	}
}

// MoveIcon moves the icon selection by delta, wrapping around.
func (f *EventForm) MoveIcon(delta int) {
	n := len(countdown.Icons)
	f.IconIndex = ((f.IconIndex+delta)%n + n) % n
}

// Icon returns the selected icon.
func (f *EventForm) Icon() string {
	if f.IconIndex < 0 || f.IconIndex >= len(countdown.Icons) {
		return countdown.DefaultIcon
	}
	return countdown.Icons[f.IconIndex]
}

// Draft validates the form and returns the event to add. On failure the
// error is kept in Err and the offending field is focused.
func (f *EventForm) Draft() (countdown.Draft, error) {
	d := countdown.Draft{
		Name:   f.Name.Value(),
		Date:   f.Date.Value(),
		Time:   f.Time.Value(),
		AllDay: f.AllDay,
		Icon:   f.Icon(),
	}.Normalize()

	if err := d.Validate(); err != nil {
		f.Err = err
		f.Focus(fieldFor(err))
		return countdown.Draft{}, err
	}
	f.Err = nil
	return d, nil
}

// ErrorText is the inline message for Err.
func (f *EventForm) ErrorText() string {
	switch {
	case f.Err == nil:
		return ""
	case errors.Is(f.Err, countdown.ErrNameRequired), errors.Is(f.Err, countdown.ErrDateRequired):
		return "Please enter event name and date"
	case errors.Is(f.Err, countdown.ErrInvalidDate):
		return "Date must be YYYY-MM-DD"
	case errors.Is(f.Err, countdown.ErrInvalidTime):
		return "Time must be HH:MM"
	default:
		return f.Err.Error()
	}
}

func fieldFor(err error) int {
	switch {
	case errors.Is(err, countdown.ErrNameRequired):
		return FormFieldName
	case errors.Is(err, countdown.ErrDateRequired), errors.Is(err, countdown.ErrInvalidDate):
		return FormFieldDate
	case errors.Is(err, countdown.ErrInvalidTime):
		return FormFieldTime
	case errors.Is(err, countdown.ErrInvalidIcon):
		return FormFieldIcon
	}
	return FormFieldSubmit
}

// SetWidth sets width of the name input.
func (f *EventForm) SetWidth(width int) {
	w := width - 12
	if w > 40 {
		w = 40
	}
	if w < 10 {
		w = 10
	}
	f.Name.Width = w
}
