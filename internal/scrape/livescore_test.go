package scrape

import (
	"os"
	"testing"
)

func TestParseLiveMatch(t *testing.T) {
	data, err := os.ReadFile("../../testdata/fixtures/live_fragment.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	match := ParseLiveMatch(string(data))

	if match.Tournament != "Elite16 Gstaad & Finals" {
		t.Errorf("expected decoded tournament title, got '%s'", match.Tournament)
	}
	if match.DetailURL == nil {
		t.Fatal("expected detail URL to be resolved")
	}
	if *match.DetailURL != "https://fivb.12ndr.at/match?match=12345" {
		t.Errorf("unexpected detail URL '%s'", *match.DetailURL)
	}
	if match.ID != *match.DetailURL {
		t.Errorf("expected ID to be the detail URL, got '%s'", match.ID)
	}
	if match.Teams[0] != "Mol/Sorum" {
		t.Errorf("expected first team 'Mol/Sorum', got '%s'", match.Teams[0])
	}
	if match.Teams[1] != "Perusic/Schweiner" {
		t.Errorf("expected second team 'Perusic/Schweiner', got '%s'", match.Teams[1])
	}
	if match.Clock != "14:30" {
		t.Errorf("expected clock '14:30', got '%s'", match.Clock)
	}
	if match.Court != "Center Court" {
		t.Errorf("expected court 'Center Court', got '%s'", match.Court)
	}
}

func TestParseLiveMatchSparseFragment(t *testing.T) {
	match := ParseLiveMatch("<div>nothing useful</div>")

	if match.Tournament != "Live match" {
		t.Errorf("expected default title, got '%s'", match.Tournament)
	}
	if match.Teams[0] != "Team A" || match.Teams[1] != "Team B" {
		t.Errorf("expected placeholder teams, got %v", match.Teams)
	}
	if match.Clock != "Live" {
		t.Errorf("expected default clock, got '%s'", match.Clock)
	}
	if match.Court != "Court" {
		t.Errorf("expected default court, got '%s'", match.Court)
	}
	if match.DetailURL != nil {
		t.Errorf("expected nil detail URL, got '%s'", *match.DetailURL)
	}
	if match.ID != "Live match-Court" {
		t.Errorf("expected title-court fallback ID, got '%s'", match.ID)
	}
}

func TestParseLiveMatchSingleTeam(t *testing.T) {
	fragment := `<table><tr><td>Ahman/Hellvig</td><td>1</td></tr></table>`

	match := ParseLiveMatch(fragment)
	if match.Teams[0] != "Ahman/Hellvig" {
		t.Errorf("expected first team 'Ahman/Hellvig', got '%s'", match.Teams[0])
	}
	if match.Teams[1] != "Team B" {
		t.Errorf("expected second team padded to 'Team B', got '%s'", match.Teams[1])
	}
}

func TestParseLiveRows(t *testing.T) {
	rows := []LiveRow{
		{LiveScore: `<h6><a href="/match?match=1">Match One</a></h6>`},
		{},
		{LiveScore: `<h6><a href="/match?match=2">Match Two</a></h6>`},
	}

	matches := ParseLiveRows(rows)
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].Tournament != "Match One" {
		t.Errorf("expected 'Match One', got '%s'", matches[0].Tournament)
	}
	if matches[1].Tournament != "Match Two" {
		t.Errorf("expected 'Match Two', got '%s'", matches[1].Tournament)
	}
}
