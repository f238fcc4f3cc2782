package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sandpoint/beachhub/internal/fetch"
	"github.com/sandpoint/beachhub/internal/logger"
	"github.com/sandpoint/beachhub/internal/storage"
	"github.com/sandpoint/beachhub/internal/syncer"
)

const (
	ExitSuccess        = 0
	ExitError          = 1
	ExitNewTournaments = 2
)

var (
	flagSeasons  string
	flagDataFile string
	flagFormat   string
	flagSource   string
	flagDryRun   bool
	flagVerbose  bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "beachhub-sync",
		Short: "Refresh the beach volleyball tournament dataset",
		Long: `Fetches every season listing from the source site, extracts tournament
rows, and persists the union of all seasons that fetched successfully.
Exits with code 2 when tournaments not seen before were found.`,
		RunE: runSync,
	}

	// Define flags
	cmd.Flags().StringVar(&flagSeasons, "seasons", "", "Comma-separated seasons to sync (default: all known seasons)")
	cmd.Flags().StringVar(&flagDataFile, "data-file", storage.DefaultPath, "Path to the dataset JSON file")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&flagSource, "source", fetch.SourceBase, "Source site base URL")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Report without writing the dataset")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runSync is the main command logic
func runSync(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	seasons, err := parseSeasons(flagSeasons)
	if err != nil {
		return err
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
		fmt.Fprintf(os.Stderr, "Source: %s\n", flagSource)
		fmt.Fprintf(os.Stderr, "Data file: %s\n", flagDataFile)
	} else {
		// Keep structured logs off stdout so the report stays parseable
		logger.SetDefault(logger.New(logger.LevelWarn, os.Stderr))
	}

	store, err := storage.New(flagDataFile)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	s := syncer.New(fetch.New(), store)
	s.SetBaseURL(flagSource)
	s.SetSeasons(seasons)
	s.SetDryRun(flagDryRun)

	report, err := s.Run(context.Background())
	if err != nil {
		return fmt.Errorf("syncing: %w", err)
	}

	if err := WriteOutput(os.Stdout, report, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	// Set exit code based on whether new tournaments were found
	if report.NewCount() > 0 {
		os.Exit(ExitNewTournaments)
	}
	os.Exit(ExitSuccess)

	return nil
}

// parseSeasons parses a comma-separated season list. An empty value means
// the default seasons.
func parseSeasons(value string) ([]int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	var seasons []int
	for _, part := range strings.Split(value, ",") {
		season, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid season %q", part)
		}
		seasons = append(seasons, season)
	}
	return seasons, nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
