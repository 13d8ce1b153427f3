package calendar

import (
	"fmt"
	"io"
	"os"
	"time"

	ics "github.com/arran4/golang-ical"

	"festcal/internal/event"
)

// WriteICS serializes the record set as a single VCALENDAR with one VEVENT
// per record, suitable for importing a whole festival at once.
func WriteICS(w io.Writer, events []*event.Event, timezone string) error {
	loc := loadLocation(timezone)
	now := time.Now().UTC()

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//festcal//festcal//EN")
	cal.SetCalscale("GREGORIAN")

	for _, evt := range events {
		ve := cal.AddEvent(evt.ID() + "@festcal")
		ve.SetDtStampTime(now)
		ve.SetSummary(evt.Title)
		ve.SetLocation(evt.Venue)
		if evt.Description != "" {
			ve.SetDescription(evt.Description)
		}
		if evt.SourceURL != "" {
			ve.SetURL(evt.SourceURL)
		}

		if evt.Start.Valid {
			ve.SetStartAt(evt.StartAt(loc))
			ve.SetEndAt(evt.EndAt(loc))
		} else {
			// No published start time: export as an all-day entry.
			ve.SetAllDayStartAt(evt.Date)
			ve.SetAllDayEndAt(evt.Date.AddDate(0, 0, 1))
		}
	}

	if err := cal.SerializeTo(w); err != nil {
		return fmt.Errorf("serializing calendar: %w", err)
	}
	return nil
}

// WriteICSFile writes the record set to the given .ics path, creating or
// truncating the file.
func WriteICSFile(path string, events []*event.Event, timezone string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := WriteICS(f, events, timezone); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
