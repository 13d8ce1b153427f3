package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"festcal/internal/calendar"
	"festcal/internal/config"
	"festcal/internal/event"
	"festcal/internal/export"
	"festcal/internal/logger"
	"festcal/internal/scraper"
	"festcal/internal/snapshot"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig       string
	flagFestival     string
	flagTitles       []string
	flagOutput       string
	flagICS          string
	flagFromSnapshot string
	flagSaveSnapshot string
	flagFormat       string
	flagLinks        bool
	flagVerbose      bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "festcal",
		Short: "Export Cheltenham Festivals event listings to CSV and calendar links",
		Long: `Collects event listings from the Cheltenham Festivals website,
normalizes them into validated records, and exports a CSV file plus
optional Google Calendar links and an iCalendar file.`,
		RunE:          runExport,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	cmd.Flags().StringVar(&flagFestival, "festival", "", "Festival to collect: Jazz, Music, or Science")
	cmd.Flags().StringSliceVar(&flagTitles, "titles", nil, "Only collect the named events (repeatable)")
	cmd.Flags().StringVar(&flagOutput, "output", "", "CSV output path (default events.csv)")
	cmd.Flags().StringVar(&flagICS, "ics", "", "Also write an iCalendar file to this path")
	cmd.Flags().StringVar(&flagFromSnapshot, "from-snapshot", "", "Read raw blocks from a snapshot file instead of scraping")
	cmd.Flags().StringVar(&flagSaveSnapshot, "save-snapshot", "", "Save scraped raw blocks to this path")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Run summary format: text or json")
	cmd.Flags().BoolVar(&flagLinks, "links", false, "Include a Google Calendar link per event in the summary")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	return cmd
}

// runExport is the main command logic: config → raw blocks → parse →
// normalize → export.
func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	blocks, err := collectBlocks(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	if flagSaveSnapshot != "" {
		if err := snapshot.Save(flagSaveSnapshot, cfg.Festival, blocks); err != nil {
			return err
		}
		logger.Info("saved snapshot", logger.Fields{"path": flagSaveSnapshot})
	}

	events, stats := event.BuildRecords(blocks, event.Options{
		Year: cfg.Year,
		From: cfg.From,
		To:   cfg.To,
	})
	for _, perr := range stats.ParseFailures {
		logger.Warn("skipping malformed listing", logger.Fields{
			"title": perr.Title,
			"field": perr.Field,
			"value": perr.Value,
		})
	}
	for _, key := range stats.Duplicates {
		logger.Warn("skipping duplicate listing", logger.Fields{"key": key})
	}

	if err := export.WriteCSVFile(cfg.OutputCSV, events); err != nil {
		return err
	}
	logger.Info("wrote CSV", logger.Fields{"path": cfg.OutputCSV, "rows": len(events)})

	if cfg.OutputICS != "" {
		if err := calendar.WriteICSFile(cfg.OutputICS, events, cfg.Timezone); err != nil {
			return err
		}
		logger.Info("wrote calendar file", logger.Fields{"path": cfg.OutputICS})
	}

	result := &RunResult{
		Festival:         cfg.Festival,
		GeneratedAt:      time.Now().UTC(),
		EventCount:       len(events),
		SkippedMalformed: len(stats.ParseFailures),
		SkippedDuplicate: len(stats.Duplicates),
		CSVPath:          cfg.OutputCSV,
		ICSPath:          cfg.OutputICS,
	}
	if flagLinks {
		for _, evt := range events {
			result.Links = append(result.Links, EventLink{
				Title: evt.Title,
				Date:  evt.Date.Format("2006-01-02"),
				URL:   calendar.GoogleLink(evt, cfg.Timezone),
			})
		}
	}

	return WriteOutput(os.Stdout, result, format)
}

// buildConfig loads the config file (or defaults) and applies flag
// overrides, then validates the result.
func buildConfig() (*config.Config, error) {
	var cfg *config.Config
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.Default()
	}

	if flagFestival != "" {
		cfg.Festival = flagFestival
	}
	if flagTitles != nil {
		cfg.SelectedTitles = flagTitles
	}
	if flagOutput != "" {
		cfg.OutputCSV = flagOutput
	}
	if flagICS != "" {
		cfg.OutputICS = flagICS
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// collectBlocks obtains raw blocks either from a saved snapshot or from a
// live browser session.
func collectBlocks(ctx context.Context, cfg *config.Config) ([]event.RawBlock, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if flagFromSnapshot != "" {
		snap, err := snapshot.Load(flagFromSnapshot)
		if err != nil {
			return nil, err
		}
		logger.Info("loaded snapshot", logger.Fields{
			"path":       flagFromSnapshot,
			"festival":   snap.Festival,
			"scraped_at": snap.ScrapedAt,
			"blocks":     len(snap.Blocks),
		})

		// The titles filter still applies to snapshot replays.
		blocks := make([]event.RawBlock, 0, len(snap.Blocks))
		for _, b := range snap.Blocks {
			if cfg.WantsTitle(b.Title) {
				blocks = append(blocks, b)
			}
		}
		return blocks, nil
	}

	return scraper.New(cfg).FetchRawBlocks(ctx)
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
