package tournament

import (
	"testing"
)

func sampleClassified() []Classified {
	return []Classified{
		{ID: "2025-a", Season: 2025, Tier: "BPT", Name: "Elite16 Gstaad", Country: "Switzerland", Tour: TourPro, Week: WeekThis, Status: StatusLive},
		{ID: "2025-b", Season: 2025, Tier: "CEV", Name: "EuroBeach Vienna", Country: "Austria", Tour: TourCEV, Week: WeekNext, Status: StatusUpcoming},
		{ID: "2024-c", Season: 2024, Tier: "NT", Name: "National Cup", Country: "Austria", Tour: TourNT, Week: WeekAll, Status: StatusUpcoming},
	}
}

func TestFilterIsEmpty(t *testing.T) {
	empty := Filter{}
	if !empty.IsEmpty() {
		t.Error("expected zero filter to be empty")
	}

	if (&Filter{Season: 2025}).IsEmpty() {
		t.Error("expected season filter to be non-empty")
	}
	if (&Filter{Query: "x"}).IsEmpty() {
		t.Error("expected query filter to be non-empty")
	}
}

func TestFilterApply(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"empty matches all", Filter{}, []string{"2025-a", "2025-b", "2024-c"}},
		{"by season", Filter{Season: 2024}, []string{"2024-c"}},
		{"by tour", Filter{Tour: TourCEV}, []string{"2025-b"}},
		{"tour all matches everything", Filter{Tour: "all"}, []string{"2025-a", "2025-b", "2024-c"}},
		{"by week", Filter{Week: WeekThis}, []string{"2025-a"}},
		{"week all matches everything", Filter{Week: WeekAll}, []string{"2025-a", "2025-b", "2024-c"}},
		{"by country substring", Filter{Country: "aus"}, []string{"2025-b", "2024-c"}},
		{"query matches name", Filter{Query: "gstaad"}, []string{"2025-a"}},
		{"query matches tier", Filter{Query: "cev"}, []string{"2025-b"}},
		{"combined", Filter{Season: 2025, Country: "austria"}, []string{"2025-b"}},
		{"no match", Filter{Tour: TourSnow}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(sampleClassified())
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d results, got %d", len(tt.want), len(got))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("position %d: ID = %q, want %q", i, got[i].ID, id)
				}
			}
		})
	}
}
