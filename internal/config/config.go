// Package config holds the run configuration: festival selection, title
// filters, the festival date range, output paths, and scraper timing knobs.
// The configuration is an explicit struct handed to the pipeline at start;
// there are no package-level settings.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Festivals are the festival names the site recognizes (case-sensitive).
var Festivals = []string{"Jazz", "Music", "Science"}

// Config is the top-level run configuration.
type Config struct {
	// Festival selects which festival's listings to collect: "Jazz",
	// "Music", or "Science".
	Festival string `yaml:"festival"`

	// SelectedTitles restricts the run to the named events. Matching is
	// case-insensitive on trimmed titles. Empty means all events.
	SelectedTitles []string `yaml:"selected_titles"`

	// Year assumed for year-less date text on the site. Zero means the
	// current year.
	Year int `yaml:"year"`

	// DateFrom / DateTo bound the festival's published date range
	// ("2006-01-02"). Events dated outside the range are rejected.
	// Empty disables the check.
	DateFrom string `yaml:"date_from"`
	DateTo   string `yaml:"date_to"`

	// Timezone is the IANA zone used for calendar links (e.g.
	// "Europe/London").
	Timezone string `yaml:"timezone"`

	// OutputCSV is the CSV export path.
	OutputCSV string `yaml:"output_csv"`

	// OutputICS, when set, also writes an iCalendar file.
	OutputICS string `yaml:"output_ics"`

	// PageTimeoutSec bounds each browser page load.
	PageTimeoutSec int `yaml:"page_timeout_seconds"`

	// PageDelaySec is the pause after paginating, letting the listing
	// re-render before it is re-read.
	PageDelaySec int `yaml:"page_delay_seconds"`

	// From and To are the parsed date range, populated by Validate.
	From time.Time `yaml:"-"`
	To   time.Time `yaml:"-"`
}

// Default returns an in-memory default configuration.
func Default() *Config {
	return &Config{
		Festival:       "Science",
		SelectedTitles: []string{},
		Timezone:       "Europe/London",
		OutputCSV:      "events.csv",
		PageTimeoutSec: 30,
		PageDelaySec:   2,
	}
}

// Load reads configuration from the given YAML path, filling unset values
// with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Normalize()
	return cfg, nil
}

// Normalize fills missing/zero values with defaults so partially-filled
// configs still behave correctly.
func (c *Config) Normalize() {
	if c.Timezone == "" {
		c.Timezone = "Europe/London"
	}
	if c.OutputCSV == "" {
		c.OutputCSV = "events.csv"
	}
	if c.PageTimeoutSec <= 0 {
		c.PageTimeoutSec = 30
	}
	if c.PageDelaySec <= 0 {
		c.PageDelaySec = 2
	}
	if c.SelectedTitles == nil {
		c.SelectedTitles = []string{}
	}
}

// Validate checks the configuration and canonicalizes it: the festival name
// must be one of Festivals, selected titles are trimmed and lowercased, and
// the date range strings are parsed into From/To.
func (c *Config) Validate() error {
	valid := false
	for _, f := range Festivals {
		if c.Festival == f {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("festival must be one of %s (case-sensitive), got %q",
			strings.Join(Festivals, ", "), c.Festival)
	}

	for i, title := range c.SelectedTitles {
		c.SelectedTitles[i] = strings.ToLower(strings.TrimSpace(title))
	}

	var err error
	if c.From, err = parseRangeDate(c.DateFrom); err != nil {
		return fmt.Errorf("date_from: %w", err)
	}
	if c.To, err = parseRangeDate(c.DateTo); err != nil {
		return fmt.Errorf("date_to: %w", err)
	}
	if !c.From.IsZero() && !c.To.IsZero() && c.To.Before(c.From) {
		return fmt.Errorf("date_to %s is before date_from %s", c.DateTo, c.DateFrom)
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("timezone: %w", err)
	}

	return nil
}

// PageTimeout returns the per-page browser timeout.
func (c *Config) PageTimeout() time.Duration {
	return time.Duration(c.PageTimeoutSec) * time.Second
}

// PageDelay returns the post-pagination settle delay.
func (c *Config) PageDelay() time.Duration {
	return time.Duration(c.PageDelaySec) * time.Second
}

// WantsTitle reports whether the given event title passes the selected
// titles filter.
func (c *Config) WantsTitle(title string) bool {
	if len(c.SelectedTitles) == 0 {
		return true
	}
	title = strings.ToLower(strings.TrimSpace(title))
	for _, want := range c.SelectedTitles {
		if title == want {
			return true
		}
	}
	return false
}

func parseRangeDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected 2006-01-02 format: %w", err)
	}
	return t, nil
}
