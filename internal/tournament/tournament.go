package tournament

import (
	"net/url"
	"regexp"

	"github.com/sandpoint/beachhub/internal/htmltext"
)

// Tournament is one row scraped from a season listing page. Optional fields
// are pointers so the persisted dataset round-trips the upstream nulls.
// Field order matches the persisted JSON layout.
type Tournament struct {
	ID         string  `json:"id"`
	Season     int     `json:"season"`
	Type       string  `json:"type"`
	Name       string  `json:"name"`
	MenDate    *string `json:"menDate"`
	WomenDate  *string `json:"womenDate"`
	Country    string  `json:"country"`
	MenURL     *string `json:"menUrl"`
	WomenURL   *string `json:"womenUrl"`
	StartDay   *int    `json:"startDay"`
	StartMonth *int    `json:"startMonth"`
}

var tcodeRe = regexp.MustCompile(`(?i)[?&]tcode=([^&]+)`)

// ExtractTcode pulls the upstream tournament code out of a detail URL.
// Returns "" when the URL is empty or carries no code.
func ExtractTcode(rawURL string) string {
	if rawURL == "" {
		return ""
	}

	normalized := htmltext.Decode(rawURL)
	if parsed, err := url.Parse(normalized); err == nil {
		if code := parsed.Query().Get("tcode"); code != "" {
			return code
		}
	}

	if m := tcodeRe.FindStringSubmatch(normalized); m != nil {
		return m[1]
	}
	return ""
}

// Tcode returns the tournament code for detail lookups. The women's URL is
// preferred when both carry a code.
func (t *Tournament) Tcode() string {
	if code := ExtractTcode(deref(t.WomenURL)); code != "" {
		return code
	}
	return ExtractTcode(deref(t.MenURL))
}

// FindByID returns the record with the given identifier, or nil.
func FindByID(records []Tournament, id string) *Tournament {
	for i := range records {
		if records[i].ID == id {
			return &records[i]
		}
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
