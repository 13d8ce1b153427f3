// Package calendar turns normalized event records into calendar artifacts:
// Google Calendar "add event" deep links and iCalendar files. No network
// calls are made; everything here is pure construction.
package calendar

import (
	"net/url"
	"time"

	"festcal/internal/event"
)

const (
	googleRenderURL = "https://www.google.com/calendar/render"

	// DefaultTimezone is the festival's local zone, used when the
	// configured timezone cannot be loaded.
	DefaultTimezone = "Europe/London"

	// googleStampFormat is the floating local-time format Google expects
	// in the dates parameter.
	googleStampFormat = "20060102T150405"
)

// GoogleLink builds a Google Calendar deep link that pre-fills the "create
// event" form with the event's details. All query parameters are
// percent-encoded. When the end time is unknown the end stamp falls back to
// midnight after the start.
func GoogleLink(evt *event.Event, timezone string) string {
	loc := loadLocation(timezone)

	start := evt.StartAt(loc)
	end := evt.EndAt(loc)

	details := evt.Description
	if evt.SourceURL != "" {
		if details != "" {
			details += "\n\n"
		}
		details += evt.SourceURL
	}

	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", evt.Title)
	params.Set("dates", start.Format(googleStampFormat)+"/"+end.Format(googleStampFormat))
	params.Set("ctz", loc.String())
	params.Set("details", details)
	params.Set("location", evt.Venue)

	return googleRenderURL + "?" + params.Encode()
}

func loadLocation(timezone string) *time.Location {
	if timezone == "" {
		timezone = DefaultTimezone
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
