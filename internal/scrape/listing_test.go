package scrape

import (
	"os"
	"testing"
)

func TestParseSeasonListing(t *testing.T) {
	data, err := os.ReadFile("../../testdata/fixtures/season_listing.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	records := ParseSeasonListing(string(data), 2025)

	if len(records) != 2 {
		t.Fatalf("expected 2 tournaments, got %d", len(records))
	}

	first := records[0]
	if first.ID != "2025-mgst2025" {
		t.Errorf("expected ID '2025-mgst2025', got '%s'", first.ID)
	}
	if first.Type != "BPT" {
		t.Errorf("expected type 'BPT', got '%s'", first.Type)
	}
	if first.Name != "Elite16 & Finals Gstaad" {
		t.Errorf("expected decoded name, got '%s'", first.Name)
	}
	if first.Country != "Switzerland" {
		t.Errorf("expected country 'Switzerland', got '%s'", first.Country)
	}
	if first.MenDate == nil || *first.MenDate != "12.07.-16.07." {
		t.Errorf("expected men date '12.07.-16.07.', got %v", first.MenDate)
	}
	if first.WomenDate == nil || *first.WomenDate != "13.07.-17.07." {
		t.Errorf("expected women date '13.07.-17.07.', got %v", first.WomenDate)
	}
	if first.MenURL == nil {
		t.Error("expected men URL to be resolved")
	} else if *first.MenURL != "https://fivb.12ndr.at/scripts/tournament.php?tcode=MGST2025&amp;gender=m" {
		t.Errorf("unexpected men URL '%s'", *first.MenURL)
	}
	if first.StartDay == nil || *first.StartDay != 12 {
		t.Errorf("expected start day 12, got %v", first.StartDay)
	}
	if first.StartMonth == nil || *first.StartMonth != 7 {
		t.Errorf("expected start month 7, got %v", first.StartMonth)
	}

	second := records[1]
	if second.ID != "2025-season-2025-2" {
		t.Errorf("expected fallback ID '2025-season-2025-2', got '%s'", second.ID)
	}
	if second.MenDate != nil {
		t.Errorf("expected nil men date for empty cell, got %v", *second.MenDate)
	}
	if second.MenURL != nil || second.WomenURL != nil {
		t.Error("expected nil URLs for cells without links")
	}
	if second.StartDay != nil || second.StartMonth != nil {
		t.Error("expected nil date parts for undated row")
	}
}

func TestParseSeasonListingNoTable(t *testing.T) {
	tests := []struct {
		name string
		html string
	}{
		{"empty page", ""},
		{"no marker", "<html><body><table><tbody><tr><td>x</td></tr></tbody></table></body></html>"},
		{"marker without tbody", `<th data-field="Name">Name</th>`},
		{"unclosed tbody", `<th data-field="Name">Name</th><tbody><tr><td>x</td></tr>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := ParseSeasonListing(tt.html, 2025)
			if len(records) != 0 {
				t.Errorf("expected empty result, got %d records", len(records))
			}
		})
	}
}

func TestParseSeasonListingExtraCells(t *testing.T) {
	html := `<th data-field="Name">Name</th><tbody>` +
		`<tr><td>BPT</td><td>Vienna</td><td>01.08.-05.08.</td><td></td><td>Austria</td><td>extra</td><td>more</td></tr>` +
		`</tbody>`

	records := ParseSeasonListing(html, 2026)
	if len(records) != 1 {
		t.Fatalf("expected 1 tournament, got %d", len(records))
	}
	if records[0].Name != "Vienna" {
		t.Errorf("expected name 'Vienna', got '%s'", records[0].Name)
	}
	if records[0].Country != "Austria" {
		t.Errorf("expected country 'Austria', got '%s'", records[0].Country)
	}
}
