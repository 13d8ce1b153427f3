package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// OutputFormat specifies the run summary format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// RunResult summarizes one export run.
type RunResult struct {
	Festival         string      `json:"festival"`
	GeneratedAt      time.Time   `json:"generated_at"`
	EventCount       int         `json:"event_count"`
	SkippedMalformed int         `json:"skipped_malformed"`
	SkippedDuplicate int         `json:"skipped_duplicate"`
	CSVPath          string      `json:"csv_path"`
	ICSPath          string      `json:"ics_path,omitempty"`
	Links            []EventLink `json:"links,omitempty"`
}

// EventLink pairs an exported event with its calendar deep link.
type EventLink struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	URL   string `json:"url"`
}

// WriteOutput writes the run summary in the specified format
func WriteOutput(w io.Writer, result *RunResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, result *RunResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func writeText(w io.Writer, result *RunResult) error {
	fmt.Fprintf(w, "%s Festival: exported %d events to %s\n",
		result.Festival, result.EventCount, result.CSVPath)

	if result.ICSPath != "" {
		fmt.Fprintf(w, "Calendar file written to %s\n", result.ICSPath)
	}
	if result.SkippedMalformed > 0 {
		fmt.Fprintf(w, "Skipped %d malformed listings\n", result.SkippedMalformed)
	}
	if result.SkippedDuplicate > 0 {
		fmt.Fprintf(w, "Skipped %d duplicate listings\n", result.SkippedDuplicate)
	}

	if len(result.Links) > 0 {
		fmt.Fprintln(w, "\nGoogle Calendar links:")
		for _, link := range result.Links {
			fmt.Fprintf(w, "  %s (%s)\n    %s\n", link.Title, link.Date, link.URL)
		}
	}

	return nil
}
