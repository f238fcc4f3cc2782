package tournament

import (
	"strings"
)

// Filter narrows a classified tournament list. Zero values mean "no
// constraint"; an empty filter matches everything.
type Filter struct {
	Season  int
	Tour    Tour
	Week    Week
	Country string
	Query   string
}

// IsEmpty reports whether the filter has any active criteria.
func (f *Filter) IsEmpty() bool {
	return f.Season == 0 &&
		f.Tour == "" &&
		f.Week == "" &&
		f.Country == "" &&
		f.Query == ""
}

// Matches checks a classified record against all active criteria.
//
// Season, Tour and Week are exact matches ("all" for Tour/Week matches
// everything); Country and Query are case-insensitive substring matches,
// Query against name and tier.
func (f *Filter) Matches(c Classified) bool {
	if f.Season != 0 && c.Season != f.Season {
		return false
	}

	if f.Tour != "" && f.Tour != "all" && c.Tour != f.Tour {
		return false
	}

	if f.Week != "" && f.Week != WeekAll && c.Week != f.Week {
		return false
	}

	if f.Country != "" {
		if !strings.Contains(strings.ToLower(c.Country), strings.ToLower(f.Country)) {
			return false
		}
	}

	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(c.Name), q) &&
			!strings.Contains(strings.ToLower(c.Tier), q) {
			return false
		}
	}

	return true
}

// Apply returns the records matching all active criteria. An empty filter
// returns the input unchanged.
func (f *Filter) Apply(list []Classified) []Classified {
	if f.IsEmpty() {
		return list
	}

	filtered := make([]Classified, 0, len(list))
	for _, c := range list {
		if f.Matches(c) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
