// Package event implements the extraction-and-normalization pipeline for
// festival listings.
//
// Raw text blocks scraped from the festival site are parsed against an
// enumerated grammar of date and time formats, validated, deduplicated by
// (title, date, start time), and sorted into a deterministic order ready
// for CSV export and calendar link construction. Malformed blocks are
// skipped with a warning rather than aborting the run.
package event
