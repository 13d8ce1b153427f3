package event

import (
	"sort"
	"strings"
)

// BuildStats reports what happened to each raw block during BuildRecords.
type BuildStats struct {
	Parsed        int
	ParseFailures []*ParseError
	Duplicates    []string // dedup keys of dropped blocks
}

// BuildRecords runs the full transformation for a batch of raw blocks:
// parse each block, drop malformed ones, then deduplicate and sort.
// Malformed blocks and duplicates are reported in the stats, never fatal.
func BuildRecords(blocks []RawBlock, opts Options) ([]*Event, BuildStats) {
	stats := BuildStats{}
	parsed := make([]*Event, 0, len(blocks))

	for _, b := range blocks {
		evt, err := Parse(b, opts)
		if err != nil {
			if perr, ok := err.(*ParseError); ok {
				stats.ParseFailures = append(stats.ParseFailures, perr)
			}
			continue
		}
		parsed = append(parsed, evt)
	}
	stats.Parsed = len(parsed)

	events, dropped := Normalize(parsed)
	stats.Duplicates = dropped
	return events, stats
}

// Normalize deduplicates and orders a parsed record set. The first
// occurrence of each (title, date, start) key wins; keys of dropped
// duplicates are returned. Ordering is ascending by date, then start time
// (events with no start time sort first on their date), then title, so
// output is deterministic for any input permutation.
func Normalize(events []*Event) ([]*Event, []string) {
	seen := make(map[string]bool)
	unique := make([]*Event, 0, len(events))
	var dropped []string

	for _, evt := range events {
		key := evt.Key()
		if seen[key] {
			dropped = append(dropped, key)
			continue
		}
		seen[key] = true
		unique = append(unique, evt)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		a, b := unique[i], unique[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.Start.Minutes() != b.Start.Minutes() {
			return a.Start.Minutes() < b.Start.Minutes()
		}
		return strings.ToLower(a.Title) < strings.ToLower(b.Title)
	})

	return unique, dropped
}
