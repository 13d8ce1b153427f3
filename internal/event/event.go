package event

import (
	"crypto/sha1"
	"fmt"
	"strings"
	"time"
)

// Event is one normalized festival listing. Events are created once per
// scraped block and are immutable afterwards.
type Event struct {
	Title       string    `json:"title"`
	Date        time.Time `json:"date"` // calendar date, midnight UTC
	Start       ClockTime `json:"start"`
	End         ClockTime `json:"end"`
	Venue       string    `json:"venue"`
	Description string    `json:"description"`
	SourceURL   string    `json:"source_url,omitempty"`
}

// ClockTime is a time of day. The zero value means "not known".
type ClockTime struct {
	Hour   int  `json:"hour"`
	Minute int  `json:"minute"`
	Valid  bool `json:"valid"`
}

// String formats the time as "15:04", or an empty string when unknown.
func (c ClockTime) String() string {
	if !c.Valid {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Minutes returns minutes since midnight. Unknown times report -1 so they
// order before any real time.
func (c ClockTime) Minutes() int {
	if !c.Valid {
		return -1
	}
	return c.Hour*60 + c.Minute
}

// Weekday returns the full English weekday name for the event date.
func (e *Event) Weekday() string {
	return e.Date.Weekday().String()
}

// Key is the dedup key: (title, date, start time). Two listings with the
// same key describe the same event.
func (e *Event) Key() string {
	return strings.TrimSpace(e.Title) + "|" + e.Date.Format("2006-01-02") + "|" + e.Start.String()
}

// ID creates a deterministic identifier for an event, used as the ICS UID.
func (e *Event) ID() string {
	h := sha1.New()
	h.Write([]byte(e.Key()))
	return fmt.Sprintf("%x", h.Sum(nil))
}

// StartAt combines the event date and start time in the given location.
// An unknown start time resolves to midnight.
func (e *Event) StartAt(loc *time.Location) time.Time {
	return time.Date(e.Date.Year(), e.Date.Month(), e.Date.Day(), e.Start.Hour, e.Start.Minute, 0, 0, loc)
}

// EndAt combines the event date and end time in the given location. When the
// end time is unknown it falls back to midnight after the start, matching
// the behavior of the calendar deep links.
func (e *Event) EndAt(loc *time.Location) time.Time {
	if !e.End.Valid {
		next := e.Date.AddDate(0, 0, 1)
		return time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, loc)
	}
	return time.Date(e.Date.Year(), e.Date.Month(), e.Date.Day(), e.End.Hour, e.End.Minute, 0, 0, loc)
}
