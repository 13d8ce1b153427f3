// Package snapshot persists scraped raw blocks as JSON so the export stages
// can be re-run without another browser session.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"festcal/internal/event"
)

// Snapshot is a saved scrape: the festival it came from, when it ran, and
// every raw block collected.
type Snapshot struct {
	Festival  string           `json:"festival"`
	ScrapedAt string           `json:"scraped_at"` // RFC3339 timestamp
	Blocks    []event.RawBlock `json:"blocks"`
}

// Save writes a snapshot of the given blocks to path, creating parent
// directories as needed. "~/" expands to the home directory.
func Save(path, festival string, blocks []event.RawBlock) error {
	path, err := expandHome(path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating snapshot directory: %w", err)
		}
	}

	snap := Snapshot{
		Festival:  festival,
		ScrapedAt: time.Now().UTC().Format(time.RFC3339),
		Blocks:    blocks,
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// Load reads a snapshot from path.
func Load(path string) (*Snapshot, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	if snap.Blocks == nil {
		snap.Blocks = []event.RawBlock{}
	}
	return &snap, nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}
