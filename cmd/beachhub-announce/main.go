// Command beachhub-announce posts newly discovered tournaments from a sync
// report to Twitter. It reads the JSON report produced by
// "beachhub-sync --format json" from a file or stdin.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sandpoint/beachhub/internal/notify"
	"github.com/sandpoint/beachhub/internal/syncer"
)

var (
	reportFile = flag.String("report-file", "", "Path to sync report JSON file (or read from stdin)")
	dryRun     = flag.Bool("dry-run", false, "Print posts without publishing")
	maxPosts   = flag.Int("max-posts", 10, "Maximum number of posts to publish")
)

func main() {
	flag.Parse()

	// Read the report from file or stdin
	var reader io.Reader
	if *reportFile != "" {
		f, err := os.Open(*reportFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening report file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		reader = f
	} else {
		reader = os.Stdin
	}

	var report syncer.Report
	if err := json.NewDecoder(reader).Decode(&report); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing report: %v\n", err)
		os.Exit(1)
	}

	if report.NewCount() == 0 {
		fmt.Println("No new tournaments to announce")
		os.Exit(0)
	}

	// Limit number of posts
	tournaments := report.NewTournaments
	if len(tournaments) > *maxPosts {
		tournaments = tournaments[:*maxPosts]
	}

	var n notify.Notifier
	if *dryRun {
		n = notify.NewDryRunNotifier()
		fmt.Printf("DRY RUN MODE - Would announce %d tournaments:\n\n", len(tournaments))
	} else {
		client, err := notify.NewTwitterNotifier()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing Twitter client: %v\n", err)
			os.Exit(1)
		}
		n = client
	}

	if err := n.Notify(tournaments); err != nil {
		fmt.Fprintf(os.Stderr, "Error posting announcements: %v\n", err)
		os.Exit(1)
	}

	if !*dryRun {
		fmt.Printf("Successfully announced %d tournaments\n", len(tournaments))
	}
}
