package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sandpoint/beachhub/internal/calendar"
	"github.com/sandpoint/beachhub/internal/tournament"
)

func main() {
	// Create a sample tournament
	menDate := "12.07.-16.07."
	womenDate := "13.07.-17.07."
	day, month := 12, 7
	t := tournament.Tournament{
		ID:         "2025-mgst2025",
		Season:     2025,
		Type:       "BPT",
		Name:       "Elite16 Gstaad",
		MenDate:    &menDate,
		WomenDate:  &womenDate,
		Country:    "Switzerland",
		StartDay:   &day,
		StartMonth: &month,
	}

	// Generate .ics file
	icsContent := calendar.GenerateICS(t, time.Now())

	// Write to file (owner read/write only for security)
	filename := "test-beachhub-event.ics"
	if err := os.WriteFile(filename, []byte(icsContent), 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Generated calendar file: %s\n\n", filename)
	fmt.Println("Test it by:")
	fmt.Println("1. Open the .ics file with your calendar app (double-click)")
	fmt.Println("2. Or import it into Google Calendar, Apple Calendar, or Outlook")
	fmt.Println("\nFile contents preview:")
	fmt.Println("---")
	fmt.Println(icsContent)
}
