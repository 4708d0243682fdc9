// Package ics converts events to and from iCalendar files.
package ics

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/hy4ri/countdown-tui/internal/countdown"
	applog "github.com/hy4ri/countdown-tui/internal/log"
)

const (
	productID = "-//hy4ri//countdown-tui//EN"
	uidSuffix = "@countdown-tui"

	propIcon  = ical.ComponentProperty("X-COUNTDOWN-ICON")
	propColor = ical.ComponentProperty("X-COUNTDOWN-COLOR")
)

// Export writes events as a VCALENDAR. Timed events are written in UTC,
// all-day events as DATE values.
func Export(w io.Writer, events []countdown.Event, now time.Time) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	for _, e := range countdown.SortByTarget(events) {
		start, err := e.Target(time.Local)
		if err != nil {
			applog.Warn("ics export skipping event", "id", e.ID, "err", err)
			continue
		}

		ve := cal.AddEvent(strconv.FormatInt(e.ID, 10) + uidSuffix)
		ve.SetSummary(e.Name)
		ve.SetDtStampTime(now)
		if created, err := time.Parse(time.RFC3339Nano, e.CreatedAt); err == nil {
			ve.SetCreatedTime(created)
		}
		if e.IsAllDay() {
			ve.SetAllDayStartAt(start)
		} else {
			ve.SetStartAt(start)
		}
		ve.SetProperty(propIcon, e.Icon)
		ve.SetProperty(propColor, e.Color)
	}

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}
	return nil
}

// Parse reads VEVENTs into events. Events exported by this app keep their
// ID, icon and color; foreign events come back with ID 0 so the collection
// assigns one. VEVENTs without a summary or start are skipped.
func Parse(r io.Reader) ([]countdown.Event, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse calendar: %w", err)
	}

	var events []countdown.Event
	for _, ve := range cal.Events() {
		e, err := parseVEvent(ve)
		if err != nil {
			applog.Warn("ics import skipping vevent", "err", err)
			continue
		}
		events = append(events, e)
	}
	return events, nil
}

func parseVEvent(ve *ical.VEvent) (countdown.Event, error) {
	var e countdown.Event

	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil {
		if id, ok := strings.CutSuffix(p.Value, uidSuffix); ok {
			if n, err := strconv.ParseInt(id, 10, 64); err == nil && n > 0 {
				e.ID = n
			}
		}
	}

	p := ve.GetProperty(ical.ComponentPropertySummary)
	if p == nil || strings.TrimSpace(p.Value) == "" {
		return e, errors.New("missing SUMMARY")
	}
	e.Name = strings.TrimSpace(p.Value)

	dtStart := ve.GetProperty(ical.ComponentPropertyDtStart)
	if dtStart == nil {
		return e, errors.New("missing DTSTART")
	}

	// VALUE=DATE or a value without a time part marks an all-day event.
	allDay := !strings.Contains(dtStart.Value, "T")
	if vs, ok := dtStart.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
		allDay = true
	}

	if allDay {
		d, err := time.ParseInLocation("20060102", strings.TrimSpace(dtStart.Value), time.Local)
		if err != nil {
			return e, fmt.Errorf("bad all-day DTSTART %q: %w", dtStart.Value, err)
		}
		e.Date = d.Format(countdown.DateLayout)
	} else {
		start, err := ve.GetStartAt()
		if err != nil {
			return e, fmt.Errorf("bad DTSTART %q: %w", dtStart.Value, err)
		}
		start = start.In(time.Local)
		e.Date = start.Format(countdown.DateLayout)
		e.Time = start.Format(countdown.TimeLayout)
	}

	if p := ve.GetProperty(ical.ComponentPropertyCreated); p != nil {
		if t, err := time.Parse("20060102T150405Z", p.Value); err == nil {
			e.CreatedAt = t.UTC().Format(time.RFC3339Nano)
		}
	}
	if p := ve.GetProperty(propIcon); p != nil {
		e.Icon = p.Value
	}
	if p := ve.GetProperty(propColor); p != nil {
		e.Color = p.Value
	}

	return e, nil
}
