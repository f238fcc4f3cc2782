// Package calendar renders tournaments as iCalendar documents, either a
// single event or a whole-dataset feed for calendar subscriptions.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/sandpoint/beachhub/internal/fetch"
	"github.com/sandpoint/beachhub/internal/tournament"
)

// GenerateICS generates an iCalendar (.ics) document for one tournament
func GenerateICS(t tournament.Tournament, now time.Time) string {
	var ics strings.Builder

	writeCalendarHeader(&ics)
	writeEvent(&ics, t, now)
	ics.WriteString("END:VCALENDAR\r\n")

	return ics.String()
}

// GenerateFeed generates a single iCalendar document containing every
// tournament in the dataset, suitable for calendar subscriptions.
func GenerateFeed(records []tournament.Tournament, now time.Time) string {
	var ics strings.Builder

	writeCalendarHeader(&ics)
	for _, t := range records {
		writeEvent(&ics, t, now)
	}
	ics.WriteString("END:VCALENDAR\r\n")

	return ics.String()
}

func writeCalendarHeader(ics *strings.Builder) {
	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//Beachhub//beachhub//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")
}

func writeEvent(ics *strings.Builder, t tournament.Tournament, now time.Time) {
	ics.WriteString("BEGIN:VEVENT\r\n")

	// UID - unique identifier for the event
	ics.WriteString(fmt.Sprintf("UID:%s@beachhub\r\n", t.ID))

	// DTSTAMP - timestamp when this calendar entry was created
	ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", formatICSTime(now.UTC())))

	// DTSTART and DTEND - event date and time
	eventDate := startDate(t)
	if eventDate.IsZero() {
		// If the listing carried no date, use one week from now
		eventDate = now.AddDate(0, 0, 7)
	}

	// Match days run 9 AM - 6 PM
	startTime := time.Date(eventDate.Year(), eventDate.Month(), eventDate.Day(), 9, 0, 0, 0, time.UTC)
	endTime := startTime.Add(9 * time.Hour)

	ics.WriteString(fmt.Sprintf("DTSTART:%s\r\n", formatICSTime(startTime)))
	ics.WriteString(fmt.Sprintf("DTEND:%s\r\n", formatICSTime(endTime)))

	// SUMMARY - tournament name with its tier
	summary := t.Name
	if t.Type != "" {
		summary = fmt.Sprintf("%s - %s", t.Type, t.Name)
	}
	ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(summary)))

	// DESCRIPTION - tournament details
	var details []string
	if t.MenDate != nil {
		details = append(details, fmt.Sprintf("Men: %s", *t.MenDate))
	}
	if t.WomenDate != nil {
		details = append(details, fmt.Sprintf("Women: %s", *t.WomenDate))
	}
	details = append(details, fmt.Sprintf("Schedule: %s", fetch.SourceBase))
	ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(strings.Join(details, "\n"))))

	// LOCATION - host country
	if t.Country != "" {
		ics.WriteString(fmt.Sprintf("LOCATION:%s\r\n", escapeICS(t.Country)))
	}

	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("SEQUENCE:0\r\n")
	ics.WriteString("TRANSP:OPAQUE\r\n")

	ics.WriteString("END:VEVENT\r\n")
}

// startDate builds the event start from the parsed day and month parts.
// A record without both parts has no usable date.
func startDate(t tournament.Tournament) time.Time {
	if t.StartMonth == nil || t.StartDay == nil || *t.StartMonth == 0 || *t.StartDay == 0 {
		return time.Time{}
	}
	return time.Date(t.Season, time.Month(*t.StartMonth), *t.StartDay, 0, 0, 0, 0, time.UTC)
}

// formatICSTime formats a time.Time as an iCalendar datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes special characters for iCalendar format
func escapeICS(s string) string {
	// Replace special characters according to RFC 5545
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
