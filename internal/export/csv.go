// Package export serializes normalized event records to CSV.
//
// The column order is fixed and the writer applies RFC 4180 quoting, so the
// same record set always produces byte-identical output.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"festcal/internal/event"
)

// Header is the fixed CSV column order.
var Header = []string{"Title", "Date", "Weekday", "Start Time", "End Time", "Venue", "Description"}

// WriteCSV writes the header row followed by one row per event. Write
// failures are fatal to the run and returned to the caller.
func WriteCSV(w io.Writer, events []*event.Event) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, evt := range events {
		row := []string{
			evt.Title,
			evt.Date.Format("2006-01-02"),
			evt.Weekday(),
			evt.Start.String(),
			evt.End.String(),
			evt.Venue,
			evt.Description,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row for %q: %w", evt.Title, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}

// WriteCSVFile writes the record set to the given path, creating or
// truncating the file.
func WriteCSVFile(path string, events []*event.Event) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := WriteCSV(f, events); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
