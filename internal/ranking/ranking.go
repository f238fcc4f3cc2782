// Package ranking fetches and normalizes the world-tour entry rankings.
// The upstream feed is loosely typed JSON where numbers arrive as numbers,
// formatted strings or not at all, so normalization is deliberately
// forgiving: anything unparseable becomes zero, not an error.
package ranking

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/sandpoint/beachhub/internal/htmltext"
)

// SourceRow mirrors one upstream ranking entry. Fields are any-typed
// because the feed mixes numeric and string encodings per row.
type SourceRow struct {
	Position        any `json:"Position"`
	TeamName        any `json:"TeamName"`
	TeamCountryCode any `json:"TeamCountryCode"`
	Federation      any `json:"Federation"`
	EntryPointsTeam any `json:"EntryPointsTeam"`
	Points          any `json:"Points"`
}

// Row is one normalized ranking entry.
type Row struct {
	Rank    int     `json:"rank"`
	Team    string  `json:"team"`
	Country string  `json:"country"`
	Points  float64 `json:"points"`
}

// Rankings pairs the men's and women's normalized tables.
type Rankings struct {
	Men   []Row `json:"men"`
	Women []Row `json:"women"`
}

var nonNumericRe = regexp.MustCompile(`[^0-9.-]`)

// Normalize converts upstream rows into clean entries. A missing or zero
// position falls back to the 1-based row index.
func Normalize(rows []SourceRow) []Row {
	out := make([]Row, 0, len(rows))
	for i, src := range rows {
		rank := int(toNumber(src.Position))
		if rank == 0 {
			rank = i + 1
		}

		team := "-"
		if src.TeamName != nil {
			team = asString(src.TeamName)
		}
		team = htmltext.StripTags(team)

		country := "-"
		if src.TeamCountryCode != nil {
			country = asString(src.TeamCountryCode)
		} else if src.Federation != nil {
			country = asString(src.Federation)
		}
		country = strings.TrimSpace(country)

		points := src.EntryPointsTeam
		if points == nil {
			points = src.Points
		}

		out = append(out, Row{
			Rank:    rank,
			Team:    team,
			Country: country,
			Points:  toNumber(points),
		})
	}
	return out
}

// toNumber coerces a feed value to a float. Strings are stripped of
// thousands separators, currency marks and units before parsing; anything
// that still fails, or parses to an infinity or NaN, becomes zero.
func toNumber(value any) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		return v
	case string:
		if v == "" {
			return 0
		}
		n, err := strconv.ParseFloat(nonNumericRe.ReplaceAllString(v, ""), 64)
		if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
			return 0
		}
		return n
	default:
		return 0
	}
}

func asString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
