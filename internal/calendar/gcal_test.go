package calendar

import (
	"net/url"
	"strings"
	"testing"

	"festcal/internal/event"
)

func stargazing(t *testing.T) *event.Event {
	t.Helper()
	evt, err := event.Parse(event.ParseLine(
		"Stargazing Night | 2024-06-05 | 20:00-22:00 | Observatory | Telescope viewing"), event.Options{})
	if err != nil {
		t.Fatal(err)
	}
	return evt
}

func TestGoogleLink(t *testing.T) {
	link := GoogleLink(stargazing(t), "Europe/London")

	if !strings.HasPrefix(link, "https://www.google.com/calendar/render?") {
		t.Fatalf("unexpected base URL: %s", link)
	}

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link does not parse as URL: %v", err)
	}
	q := u.Query()

	if q.Get("action") != "TEMPLATE" {
		t.Errorf("expected action=TEMPLATE, got %q", q.Get("action"))
	}
	if q.Get("text") != "Stargazing Night" {
		t.Errorf("expected decoded title, got %q", q.Get("text"))
	}
	if q.Get("dates") != "20240605T200000/20240605T220000" {
		t.Errorf("unexpected dates parameter: %q", q.Get("dates"))
	}
	if q.Get("location") != "Observatory" {
		t.Errorf("unexpected location: %q", q.Get("location"))
	}
	if q.Get("ctz") != "Europe/London" {
		t.Errorf("unexpected timezone: %q", q.Get("ctz"))
	}

	// The raw link must carry the title percent-encoded.
	if strings.Contains(link, "Stargazing Night") {
		t.Error("title should be percent-encoded in the raw link")
	}
}

func TestGoogleLinkMidnightFallback(t *testing.T) {
	evt, err := event.Parse(event.ParseLine(
		"Late Show | 2024-06-05 | 22:30 | Main Stage | Comedy"), event.Options{})
	if err != nil {
		t.Fatal(err)
	}

	link := GoogleLink(evt, "Europe/London")
	u, _ := url.Parse(link)

	if got := u.Query().Get("dates"); got != "20240605T223000/20240606T000000" {
		t.Errorf("expected end to fall back to midnight, got %q", got)
	}
}

func TestGoogleLinkDetailsIncludeSourceURL(t *testing.T) {
	evt := stargazing(t)
	evt.SourceURL = "https://example.com/stargazing"

	link := GoogleLink(evt, "")
	u, _ := url.Parse(link)
	details := u.Query().Get("details")

	if !strings.HasPrefix(details, "Telescope viewing") {
		t.Errorf("details should start with the description, got %q", details)
	}
	if !strings.HasSuffix(details, "https://example.com/stargazing") {
		t.Errorf("details should end with the source URL, got %q", details)
	}
}

func TestGoogleLinkBadTimezoneFallsBackToUTC(t *testing.T) {
	link := GoogleLink(stargazing(t), "Not/AZone")
	u, _ := url.Parse(link)

	if got := u.Query().Get("ctz"); got != "UTC" {
		t.Errorf("expected UTC fallback, got %q", got)
	}
}
