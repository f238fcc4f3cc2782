package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sandpoint/beachhub/internal/syncer"
	"github.com/sandpoint/beachhub/internal/tournament"
)

func sampleReport() *syncer.Report {
	menDate := "12.07.-16.07."
	return &syncer.Report{
		Seasons: []syncer.SeasonResult{
			{Season: 2024, Count: 10},
			{Season: 2025, Error: "fetching: 404"},
		},
		Total: 10,
		NewTournaments: []tournament.Tournament{
			{ID: "2024-new", Season: 2024, Type: "BPT", Name: "Elite16 Gstaad", MenDate: &menDate, Country: "Switzerland"},
		},
		SyncedAt: "2025-07-01T12:00:00Z",
	}
}

func TestWriteTextOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleReport(), FormatText, false); err != nil {
		t.Fatalf("WriteOutput() error = %v", err)
	}

	out := buf.String()
	checks := []string{
		"2024: 10 tournaments",
		"2025: FAILED",
		"Total: 10 tournaments",
		"NEW: BPT - Elite16 Gstaad (Switzerland)",
	}
	for _, check := range checks {
		if !strings.Contains(out, check) {
			t.Errorf("expected output to contain %q\ngot:\n%s", check, out)
		}
	}
}

func TestWriteTextVerbose(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleReport(), FormatText, true); err != nil {
		t.Fatalf("WriteOutput() error = %v", err)
	}

	if !strings.Contains(buf.String(), "ID: 2024-new") {
		t.Errorf("expected verbose ID line, got:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "Men: 12.07.-16.07.") {
		t.Errorf("expected verbose date line, got:\n%s", buf.String())
	}
}

func TestWriteTextNoNewTournaments(t *testing.T) {
	report := sampleReport()
	report.NewTournaments = nil

	var buf bytes.Buffer
	if err := WriteOutput(&buf, report, FormatText, false); err != nil {
		t.Fatalf("WriteOutput() error = %v", err)
	}
	if !strings.Contains(buf.String(), "No new tournaments found.") {
		t.Errorf("expected no-new message, got:\n%s", buf.String())
	}
}

func TestWriteJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleReport(), FormatJSON, false); err != nil {
		t.Fatalf("WriteOutput() error = %v", err)
	}

	var decoded syncer.Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Total != 10 {
		t.Errorf("expected total 10, got %d", decoded.Total)
	}
	if len(decoded.NewTournaments) != 1 {
		t.Errorf("expected 1 new tournament, got %d", len(decoded.NewTournaments))
	}
}

func TestWriteOutputUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleReport(), OutputFormat("yaml"), false); err == nil {
		t.Error("expected error for unknown format, got nil")
	}
}

func TestParseSeasons(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{"", nil, false},
		{"2025", []int{2025}, false},
		{"2024, 2025,2026", []int{2024, 2025, 2026}, false},
		{"abc", nil, true},
		{"2024,,2026", nil, true},
	}

	for _, tt := range tests {
		got, err := parseSeasons(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseSeasons(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseSeasons(%q) error = %v", tt.in, err)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("parseSeasons(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseSeasons(%q) = %v, want %v", tt.in, got, tt.want)
				break
			}
		}
	}
}
