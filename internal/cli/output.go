package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sandpoint/beachhub/internal/syncer"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// WriteOutput writes the sync report in the specified format
func WriteOutput(w io.Writer, report *syncer.Report, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, report)
	case FormatText:
		return writeText(w, report, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the report as JSON
func writeJSON(w io.Writer, report *syncer.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

// writeText outputs the report as human-readable text
func writeText(w io.Writer, report *syncer.Report, verbose bool) error {
	for _, season := range report.Seasons {
		if season.Error != "" {
			fmt.Fprintf(w, "%d: FAILED (%s)\n", season.Season, season.Error)
		} else {
			fmt.Fprintf(w, "%d: %d tournaments\n", season.Season, season.Count)
		}
	}

	fmt.Fprintf(w, "\nTotal: %d tournaments\n", report.Total)

	if report.NewCount() == 0 {
		fmt.Fprintln(w, "No new tournaments found.")
		return nil
	}

	fmt.Fprintf(w, "\nNew tournaments (%d):\n", report.NewCount())
	for _, t := range report.NewTournaments {
		fmt.Fprintf(w, "  NEW: %s - %s (%s)\n", t.Type, t.Name, t.Country)
		if verbose {
			fmt.Fprintf(w, "       ID: %s\n", t.ID)
			if t.MenDate != nil {
				fmt.Fprintf(w, "       Men: %s\n", *t.MenDate)
			}
			if t.WomenDate != nil {
				fmt.Fprintf(w, "       Women: %s\n", *t.WomenDate)
			}
		}
	}

	return nil
}
