package scrape

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/sandpoint/beachhub/internal/fetch"
	"github.com/sandpoint/beachhub/internal/htmltext"
	"github.com/sandpoint/beachhub/internal/tournament"
)

// nameHeaderMarker anchors the tournament table inside the season page;
// everything before it is navigation chrome we never want to scan.
const nameHeaderMarker = `data-field="Name"`

var (
	rowRe   = regexp.MustCompile(`(?s)<tr[^>]*>(.*?)</tr>`)
	cellRe  = regexp.MustCompile(`(?s)<td[^>]*>(.*?)</td>`)
	hrefRe  = regexp.MustCompile(`href="([^"]+)"`)
	tcodeRe = regexp.MustCompile(`(?i)[?&]tcode=([^&]+)`)
	dateRe  = regexp.MustCompile(`(\d{2})\.(\d{2})\.-`)
)

// ParseSeasonListing extracts tournament rows from a season overview page.
// Rows with fewer than five cells are skipped; extra cells are ignored.
// A page without the table marker yields an empty slice, never an error.
func ParseSeasonListing(html string, season int) []tournament.Tournament {
	headerAt := strings.Index(html, nameHeaderMarker)
	if headerAt < 0 {
		return []tournament.Tournament{}
	}

	tbodyStart := strings.Index(html[headerAt:], "<tbody>")
	if tbodyStart < 0 {
		return []tournament.Tournament{}
	}
	tbodyStart += headerAt + len("<tbody>")

	tbodyEnd := strings.Index(html[tbodyStart:], "</tbody>")
	if tbodyEnd < 0 {
		return []tournament.Tournament{}
	}
	tbody := html[tbodyStart : tbodyStart+tbodyEnd]

	records := []tournament.Tournament{}
	for _, row := range rowRe.FindAllStringSubmatch(tbody, -1) {
		cells := cellRe.FindAllStringSubmatch(row[1], -1)
		if len(cells) < 5 {
			continue
		}

		typeHTML, nameHTML := cells[0][1], cells[1][1]
		menHTML, womenHTML := cells[2][1], cells[3][1]
		countryHTML := cells[4][1]

		menHref := firstHref(menHTML)
		womenHref := firstHref(womenHTML)

		tcode := hrefTcode(menHref)
		if tcode == "" {
			tcode = hrefTcode(womenHref)
		}
		if tcode == "" {
			// Ordinal among kept rows, so skipped junk rows never shift it.
			tcode = fmt.Sprintf("season-%d-%d", season, len(records)+1)
		}

		menDate := htmltext.StripTags(menHTML)
		womenDate := htmltext.StripTags(womenHTML)
		dateText := menDate
		if dateText == "" {
			dateText = womenDate
		}
		startDay, startMonth := parseDateParts(dateText)

		records = append(records, tournament.Tournament{
			ID:         fmt.Sprintf("%d-%s", season, strings.ToLower(tcode)),
			Season:     season,
			Type:       htmltext.StripTags(typeHTML),
			Name:       htmltext.StripTags(nameHTML),
			MenDate:    optional(menDate),
			WomenDate:  optional(womenDate),
			Country:    htmltext.StripTags(countryHTML),
			MenURL:     resolveURL(menHref),
			WomenURL:   resolveURL(womenHref),
			StartDay:   startDay,
			StartMonth: startMonth,
		})
	}
	return records
}

// parseDateParts reads the leading day and month out of a date range like
// "12.07.-16.07.". Text without the pattern yields nil parts.
func parseDateParts(dateText string) (day, month *int) {
	m := dateRe.FindStringSubmatch(dateText)
	if m == nil {
		return nil, nil
	}

	d, _ := strconv.Atoi(m[1])
	mo, _ := strconv.Atoi(m[2])
	return &d, &mo
}

func firstHref(cellHTML string) string {
	if m := hrefRe.FindStringSubmatch(cellHTML); m != nil {
		return m[1]
	}
	return ""
}

func hrefTcode(href string) string {
	if m := tcodeRe.FindStringSubmatch(href); m != nil {
		return m[1]
	}
	return ""
}

// resolveURL turns a scraped href into an absolute URL against the source
// site. Unparseable hrefs resolve to nil rather than a broken link.
func resolveURL(href string) *string {
	if href == "" {
		return nil
	}

	base, err := url.Parse(fetch.SourceBase)
	if err != nil {
		return nil
	}
	ref, err := url.Parse(href)
	if err != nil {
		return nil
	}

	resolved := base.ResolveReference(ref).String()
	return &resolved
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
