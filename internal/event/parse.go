package event

import (
	"fmt"
	"strings"
	"time"
)

// RawBlock is one unparsed listing as delivered by the scraper: plain text
// fragments with no validation applied.
type RawBlock struct {
	Title       string `json:"title"`
	DateText    string `json:"date_text"`
	TimeText    string `json:"time_text"`
	Venue       string `json:"venue"`
	Description string `json:"description"`
	SourceURL   string `json:"source_url,omitempty"`
}

// ParseLine splits the canonical one-line form
// "Title | Date | Time | Venue | Description" into a RawBlock. This is the
// format used by snapshot files and fixtures.
func ParseLine(line string) RawBlock {
	parts := strings.Split(line, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	var b RawBlock
	if len(parts) > 0 {
		b.Title = parts[0]
	}
	if len(parts) > 1 {
		b.DateText = parts[1]
	}
	if len(parts) > 2 {
		b.TimeText = parts[2]
	}
	if len(parts) > 3 {
		b.Venue = parts[3]
	}
	if len(parts) > 4 {
		b.Description = parts[4]
	}
	if len(parts) > 5 {
		b.SourceURL = parts[5]
	}
	return b
}

// ParseError describes a raw block the parser could not turn into an Event.
// The run continues past parse errors; the offending block is skipped.
type ParseError struct {
	Field string // which field failed ("title", "date", "venue")
	Value string // the text that failed to parse
	Title string // block title, for log context
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %q: bad %s %q", e.Title, e.Field, e.Value)
}

// Options control parsing of a batch of raw blocks.
type Options struct {
	// Year assumed for year-less date text. Zero means the current year.
	Year int

	// From and To bound the festival's published date range. When set,
	// dates outside the window are rejected. Zero values disable the check.
	From time.Time
	To   time.Time
}

// Parse converts one raw block into a validated Event. It returns a
// *ParseError when the block is malformed.
func Parse(b RawBlock, opts Options) (*Event, error) {
	title := strings.TrimSpace(b.Title)
	if title == "" {
		return nil, &ParseError{Field: "title", Value: b.Title, Title: b.Title}
	}

	venue := strings.TrimSpace(b.Venue)
	if venue == "" {
		return nil, &ParseError{Field: "venue", Value: b.Venue, Title: title}
	}

	date := ParseDate(b.DateText, opts.Year)
	if date.IsZero() {
		return nil, &ParseError{Field: "date", Value: b.DateText, Title: title}
	}
	if !opts.From.IsZero() && date.Before(opts.From) {
		return nil, &ParseError{Field: "date", Value: b.DateText, Title: title}
	}
	if !opts.To.IsZero() && date.After(opts.To) {
		return nil, &ParseError{Field: "date", Value: b.DateText, Title: title}
	}

	start, end := ParseTimeRange(b.TimeText)

	return &Event{
		Title:       title,
		Date:        date,
		Start:       start,
		End:         end,
		Venue:       venue,
		Description: strings.TrimSpace(b.Description),
		SourceURL:   strings.TrimSpace(b.SourceURL),
	}, nil
}
