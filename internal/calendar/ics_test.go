package calendar

import (
	"bytes"
	"strings"
	"testing"

	"festcal/internal/event"
)

func TestWriteICS(t *testing.T) {
	events := []*event.Event{stargazing(t)}

	var buf bytes.Buffer
	if err := WriteICS(&buf, events, "Europe/London"); err != nil {
		t.Fatalf("WriteICS failed: %v", err)
	}
	out := buf.String()

	requiredFields := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//festcal//festcal//EN",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		"SUMMARY:Stargazing Night",
		"LOCATION:Observatory",
		"DESCRIPTION:Telescope viewing",
		"DTSTART",
		"DTEND",
		"END:VEVENT",
		"END:VCALENDAR",
	}
	for _, field := range requiredFields {
		if !strings.Contains(out, field) {
			t.Errorf("ICS missing required field: %s", field)
		}
	}

	if !strings.Contains(out, "\r\n") {
		t.Error("ICS should use \\r\\n line endings")
	}
}

func TestWriteICSAllDayWhenNoStartTime(t *testing.T) {
	evt, err := event.Parse(event.ParseLine(
		"Open Day | 2024-06-07 | | The Green | Drop in any time"), event.Options{})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteICS(&buf, []*event.Event{evt}, ""); err != nil {
		t.Fatalf("WriteICS failed: %v", err)
	}

	if !strings.Contains(buf.String(), "20240607") {
		t.Errorf("expected all-day date in output: %s", buf.String())
	}
}

func TestWriteICSOneEventPerRecord(t *testing.T) {
	lines := []string{
		"Opening Gala | 2024-06-01 | 19:00-21:00 | Main Stage | Welcome",
		"Closing Concert | 2024-06-09 | 19:00-21:00 | Main Stage | Finale",
	}
	var events []*event.Event
	for _, line := range lines {
		evt, err := event.Parse(event.ParseLine(line), event.Options{})
		if err != nil {
			t.Fatal(err)
		}
		events = append(events, evt)
	}

	var buf bytes.Buffer
	if err := WriteICS(&buf, events, "Europe/London"); err != nil {
		t.Fatal(err)
	}

	if got := strings.Count(buf.String(), "BEGIN:VEVENT"); got != 2 {
		t.Errorf("expected 2 VEVENT blocks, got %d", got)
	}
}
