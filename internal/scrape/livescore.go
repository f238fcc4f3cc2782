package scrape

import (
	"regexp"

	"github.com/sandpoint/beachhub/internal/fetch"
	"github.com/sandpoint/beachhub/internal/htmltext"
)

// LiveMatch is one match in play, extracted from an upstream livescore
// HTML fragment. Every field is best-effort with a readable fallback so a
// sparse fragment still renders as a card.
type LiveMatch struct {
	ID         string    `json:"id"`
	Tournament string    `json:"tournament"`
	Teams      [2]string `json:"teams"`
	Clock      string    `json:"clock"`
	Court      string    `json:"court"`
	DetailURL  *string   `json:"detailUrl"`
}

var (
	liveTitleRe  = regexp.MustCompile(`(?is)<h6><a[^>]*>(.*?)</a></h6>`)
	liveDetailRe = regexp.MustCompile(`(?i)href="([^"]*/match\?match=[^"]+)"`)
	liveTeamRe   = regexp.MustCompile(`(?is)<tr><td[^>]*>(.*?)</td><td`)
	liveClockRe  = regexp.MustCompile(`(?i)Start:\s*([^<&]+)`)
	liveCourtRe  = regexp.MustCompile(`(?i)Court:\s*([^<&]+)`)
)

// ParseLiveMatch extracts one match from a livescore fragment. Missing
// pieces fall back to placeholders; the match identifier is the resolved
// detail URL when present, otherwise title and court joined, which can
// collide for sparse fragments on the same court.
func ParseLiveMatch(fragment string) LiveMatch {
	title := "Live match"
	if m := liveTitleRe.FindStringSubmatch(fragment); m != nil {
		title = htmltext.Decode(m[1])
	}

	var detailURL *string
	if m := liveDetailRe.FindStringSubmatch(fragment); m != nil {
		detailURL = resolveURL(m[1])
	}

	teams := [2]string{"Team A", "Team B"}
	found := 0
	for _, m := range liveTeamRe.FindAllStringSubmatch(fragment, -1) {
		if found == 2 {
			break
		}
		if name := htmltext.StripTags(m[1]); name != "" {
			teams[found] = name
			found++
		}
	}

	clock := "Live"
	if m := liveClockRe.FindStringSubmatch(fragment); m != nil {
		clock = htmltext.Decode(m[1])
	}

	court := "Court"
	if m := liveCourtRe.FindStringSubmatch(fragment); m != nil {
		court = htmltext.Decode(m[1])
	}

	id := title + "-" + court
	if detailURL != nil {
		id = *detailURL
	}

	return LiveMatch{
		ID:         id,
		Tournament: title,
		Teams:      teams,
		Clock:      clock,
		Court:      court,
		DetailURL:  detailURL,
	}
}

// LiveRow mirrors one entry of the upstream livescore feed. Only the
// rendered fragment matters; rows without one are placeholders.
type LiveRow struct {
	LiveScore string `json:"LiveScore"`
}

// ParseLiveRows converts feed rows into matches, dropping empty fragments.
func ParseLiveRows(rows []LiveRow) []LiveMatch {
	matches := []LiveMatch{}
	for _, row := range rows {
		if row.LiveScore == "" {
			continue
		}
		matches = append(matches, ParseLiveMatch(row.LiveScore))
	}
	return matches
}

// LivescoreURL is the upstream feed the live matches come from.
func LivescoreURL() string {
	return fetch.SourceBase + "/cache/scripts/livescore.json"
}
