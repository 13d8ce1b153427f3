package event

import (
	"strings"
	"time"
)

// dateFormats are the full-date layouts recognized by ParseDate, tried in
// order.
var dateFormats = []string{
	"2006-01-02",
	"2 January 2006",
	"2 Jan 2006",
	"Jan 2 2006",
	"02/01/2006",
	"02/01/06",
}

// yearlessFormats are layouts the festival site uses, with no year. The
// assumed year is supplied by the caller.
var yearlessFormats = []string{
	"Mon 2 Jan",
	"Mon 02 Jan",
	"2 Jan",
	"2 January",
}

// ParseDate attempts to parse event date text into a calendar date.
// Year-less forms such as "Wed 5 Jun" take the supplied year; a year of 0
// means the current year. Returns time.Time{} (zero value) if parsing fails.
func ParseDate(dateText string, year int) time.Time {
	dateText = strings.TrimSpace(dateText)
	if dateText == "" {
		return time.Time{}
	}

	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, dateText); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		}
	}

	if year == 0 {
		year = time.Now().Year()
	}

	for _, layout := range yearlessFormats {
		t, err := time.Parse(layout, dateText)
		if err != nil {
			continue
		}
		// The weekday token is display text; the date is rebuilt from
		// month/day plus the assumed year.
		return time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}

	return time.Time{}
}
