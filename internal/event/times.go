package event

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// clockFormats are the time-of-day layouts recognized for each side of a
// range, tried in order after normalization.
var clockFormats = []string{
	"15:04",
	"3:04pm",
	"3.04pm",
	"3pm",
}

var durationPattern = regexp.MustCompile(`(\d+)\s*min`)

// ParseTimeRange parses raw time text into start and end times of day.
//
// The text is normalized first: en/em dashes and " to " become "-", case is
// folded and spaces inside each side are dropped, so "10:00 AM - 11:00 AM",
// "10:00am–11:00am" and "20:00-22:00" all parse. A trailing duration
// annotation ("90 minutes") supplies the end time when no explicit end is
// present. Times are optional: unrecognized text yields two unknown times.
func ParseTimeRange(text string) (start, end ClockTime) {
	text, dur := extractDuration(text)

	text = strings.ToLower(strings.TrimSpace(text))
	text = strings.NewReplacer("–", "-", "—", "-", " to ", "-").Replace(text)

	parts := strings.SplitN(text, "-", 2)
	start = parseClock(parts[0])
	if len(parts) == 2 {
		end = parseClock(parts[1])
	}

	if start.Valid && !end.Valid && dur > 0 {
		end = addMinutes(start, dur)
	}
	return start, end
}

// parseClock parses one side of a range ("7.30pm", "20:00", "8 pm").
func parseClock(s string) ClockTime {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	s = strings.Trim(s, ",.")
	if s == "" {
		return ClockTime{}
	}
	for _, layout := range clockFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return ClockTime{Hour: t.Hour(), Minute: t.Minute(), Valid: true}
		}
	}
	return ClockTime{}
}

// extractDuration strips a "N minutes" / "N mins" annotation from the text
// and returns the remaining text and the duration in minutes.
func extractDuration(text string) (string, int) {
	m := durationPattern.FindStringSubmatchIndex(text)
	if m == nil {
		return text, 0
	}
	minutes, err := strconv.Atoi(text[m[2]:m[3]])
	if err != nil {
		return text, 0
	}
	trimmed := strings.TrimRight(strings.TrimSpace(text[:m[0]]), ",(")
	return trimmed, minutes
}

func addMinutes(c ClockTime, minutes int) ClockTime {
	total := (c.Minutes() + minutes) % (24 * 60)
	return ClockTime{Hour: total / 60, Minute: total % 60, Valid: true}
}
