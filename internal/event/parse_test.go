package event

import (
	"errors"
	"testing"
	"time"
)

func TestParseLine(t *testing.T) {
	b := ParseLine("Stargazing Night | 2024-06-05 | 20:00-22:00 | Observatory | Telescope viewing")

	if b.Title != "Stargazing Night" {
		t.Errorf("expected title 'Stargazing Night', got %q", b.Title)
	}
	if b.DateText != "2024-06-05" {
		t.Errorf("expected date text '2024-06-05', got %q", b.DateText)
	}
	if b.TimeText != "20:00-22:00" {
		t.Errorf("expected time text '20:00-22:00', got %q", b.TimeText)
	}
	if b.Venue != "Observatory" {
		t.Errorf("expected venue 'Observatory', got %q", b.Venue)
	}
	if b.Description != "Telescope viewing" {
		t.Errorf("expected description 'Telescope viewing', got %q", b.Description)
	}
}

func TestParsePreservesFields(t *testing.T) {
	b := RawBlock{
		Title:       "Stargazing Night",
		DateText:    "2024-06-05",
		TimeText:    "20:00-22:00",
		Venue:       "Observatory",
		Description: "Telescope viewing",
		SourceURL:   "https://example.com/stargazing",
	}

	evt, err := Parse(b, Options{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if evt.Title != "Stargazing Night" {
		t.Errorf("title not preserved: %q", evt.Title)
	}
	if evt.Date.Format("2006-01-02") != "2024-06-05" {
		t.Errorf("date not preserved: %v", evt.Date)
	}
	if evt.Weekday() != "Wednesday" {
		t.Errorf("expected weekday Wednesday, got %q", evt.Weekday())
	}
	if evt.Start.String() != "20:00" || evt.End.String() != "22:00" {
		t.Errorf("times not preserved: %q-%q", evt.Start, evt.End)
	}
	if evt.Venue != "Observatory" {
		t.Errorf("venue not preserved: %q", evt.Venue)
	}
	if evt.SourceURL != "https://example.com/stargazing" {
		t.Errorf("source URL not preserved: %q", evt.SourceURL)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name      string
		block     RawBlock
		wantField string
	}{
		{
			name:      "empty title",
			block:     RawBlock{Title: "  ", DateText: "2024-06-05", Venue: "Observatory"},
			wantField: "title",
		},
		{
			name:      "empty venue",
			block:     RawBlock{Title: "Stargazing Night", DateText: "2024-06-05"},
			wantField: "venue",
		},
		{
			name:      "unparseable date",
			block:     RawBlock{Title: "Stargazing Night", DateText: "sometime soon", Venue: "Observatory"},
			wantField: "date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.block, Options{})
			if err == nil {
				t.Fatal("expected a parse error")
			}

			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if perr.Field != tt.wantField {
				t.Errorf("expected failing field %q, got %q", tt.wantField, perr.Field)
			}
		})
	}
}

func TestParseDateRange(t *testing.T) {
	opts := Options{
		From: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, time.June, 9, 0, 0, 0, 0, time.UTC),
	}

	inRange := RawBlock{Title: "Opening Gala", DateText: "2024-06-01", Venue: "Town Hall"}
	if _, err := Parse(inRange, opts); err != nil {
		t.Errorf("date on range boundary should parse: %v", err)
	}

	outOfRange := RawBlock{Title: "Opening Gala", DateText: "2024-06-10", Venue: "Town Hall"}
	if _, err := Parse(outOfRange, opts); err == nil {
		t.Error("date past the festival range should be rejected")
	}
}

func TestParseMissingTimesTolerated(t *testing.T) {
	b := RawBlock{Title: "All Day Fair", DateText: "2024-06-07", TimeText: "", Venue: "The Green"}

	evt, err := Parse(b, Options{})
	if err != nil {
		t.Fatalf("missing times should not be fatal: %v", err)
	}
	if evt.Start.Valid || evt.End.Valid {
		t.Error("expected unknown start and end times")
	}
}
