package cli

import (
	"fmt"
	"os"

	"github.com/confsync/identiverse-calendar/internal/calendar"
	"github.com/confsync/identiverse-calendar/internal/config"
	"github.com/confsync/identiverse-calendar/internal/diag"
	"github.com/confsync/identiverse-calendar/internal/logger"
	"github.com/confsync/identiverse-calendar/internal/scraper"
	"github.com/confsync/identiverse-calendar/internal/session"
	"github.com/confsync/identiverse-calendar/internal/storage"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig  string
	flagInput   string
	flagOutput  string
	flagDataDir string
	flagURL     string
	flagDryRun  bool
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "identiverse-calendar",
		Short: "Export the Identiverse conference agenda as an iCalendar file",
		Long: `Scrapes the Identiverse agenda page, normalizes the session records,
and writes an importable .ics calendar file. Event identifiers are derived
deterministically, so re-importing a later export updates existing calendar
entries instead of duplicating them.`,
		RunE: runExport,
	}

	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	cmd.Flags().StringVar(&flagInput, "input", "", "Read raw sessions from a JSON file instead of scraping")
	cmd.Flags().StringVar(&flagOutput, "output", "", "Output .ics path (overrides config)")
	cmd.Flags().StringVar(&flagDataDir, "data-dir", "", "Snapshot data directory (overrides config)")
	cmd.Flags().StringVar(&flagURL, "agenda-url", "", "Agenda page URL (overrides config)")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the calendar to stdout instead of writing the file")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runExport is the main command logic
func runExport(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagOutput != "" {
		cfg.OutputPath = flagOutput
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if flagURL != "" {
		cfg.AgendaURL = flagURL
	}

	raw, err := loadSessions(cfg)
	if err != nil {
		return err
	}
	logger.Info("Loaded raw sessions", logger.Fields{"count": len(raw)})

	sink := diag.Func(func(e diag.Entry) {
		logger.Warn("Normalization diagnostic", logger.Fields{
			"severity": string(e.Severity),
			"record":   e.Record,
			"detail":   e.Message,
		})
	})

	normalizer := session.NewNormalizer(sink)
	normalizer.Times.Zone = cfg.Zone()
	normalizer.Times.Year = cfg.Year

	events := normalizer.NormalizeAll(raw)
	skipped := len(raw) - len(events)
	logger.Info("Normalized sessions", logger.Fields{
		"events":  len(events),
		"skipped": skipped,
	})

	reportNewEvents(cfg.DataDir, events)

	data := calendar.NewEncoder().Encode(events)

	if flagDryRun {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("writing calendar to stdout: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(cfg.OutputPath, data, 0644); err != nil {
		return fmt.Errorf("writing calendar file: %w", err)
	}

	logger.Info("Wrote calendar", logger.Fields{
		"path":   cfg.OutputPath,
		"events": len(events),
		"bytes":  len(data),
	})
	return nil
}

// loadSessions reads raw sessions from the input file when given, otherwise
// scrapes the configured agenda URL
func loadSessions(cfg *config.Config) ([]session.RawSession, error) {
	if flagInput != "" {
		logger.Debug("Reading sessions from file", logger.Fields{"path": flagInput})
		return readSessionsFile(flagInput)
	}

	logger.Debug("Scraping agenda", logger.Fields{"url": cfg.AgendaURL})
	raw, err := scraper.NewWithURL(cfg.AgendaURL).FetchSessions()
	if err != nil {
		return nil, fmt.Errorf("fetching sessions: %w", err)
	}
	return raw, nil
}

// reportNewEvents diffs against the previous snapshot and saves the new one.
// Snapshot trouble is logged, never fatal: the export itself must not depend
// on local state.
func reportNewEvents(dataDir string, events []*session.Event) {
	store, err := storage.New(dataDir)
	if err != nil {
		logger.Warn("Snapshot storage unavailable", logger.Fields{"error": err.Error()})
		return
	}

	previous, err := store.LoadSnapshot()
	if err != nil {
		logger.Warn("Loading previous snapshot failed", logger.Fields{"error": err.Error()})
		return
	}

	added := storage.Diff(previous, events)
	if len(added) > 0 {
		logger.Info("New sessions since last run", logger.Fields{"count": len(added)})
	}

	if err := store.SaveSnapshot(events); err != nil {
		logger.Warn("Saving snapshot failed", logger.Fields{"error": err.Error()})
	}
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
