package tournament

import (
	"strings"
	"time"
)

// Tour is the coarse competition-circuit category.
type Tour string

const (
	TourPro  Tour = "pro"
	TourCEV  Tour = "cev"
	TourInt  Tour = "int"
	TourNT   Tour = "nt"
	TourSnow Tour = "snow"
)

// Week buckets a tournament's start date relative to the current week.
type Week string

const (
	WeekAll  Week = "all"
	WeekLast Week = "last"
	WeekThis Week = "this"
	WeekNext Week = "next"
)

// Status is the schedule-derived live/upcoming label. It is a presentation
// heuristic keyed off the week bucket, not an actual live-match signal; the
// livescore feed is the only source of truth for matches in play.
type Status string

const (
	StatusLive     Status = "live"
	StatusUpcoming Status = "upcoming"
)

// Classified is a Tournament enriched with derived fields. Derivations are
// recomputed on every read, so they go stale only against the wall clock.
type Classified struct {
	ID        string  `json:"id"`
	Tier      string  `json:"tier"`
	Name      string  `json:"name"`
	MenDate   *string `json:"menDate,omitempty"`
	WomenDate *string `json:"womenDate,omitempty"`
	MenURL    *string `json:"menUrl,omitempty"`
	WomenURL  *string `json:"womenUrl,omitempty"`
	Country   string  `json:"country"`
	Season    int     `json:"season"`
	Tour      Tour    `json:"tour"`
	Week      Week    `json:"week"`
	Status    Status  `json:"status"`
}

// InferTour derives the tour category from the free-text type and name.
// First match wins: a name carrying both "snow" and "elite16" is snow.
func InferTour(typ, name string) Tour {
	text := strings.ToLower(typ + " " + name)

	switch {
	case strings.Contains(text, "snow"):
		return TourSnow
	case strings.Contains(text, "elite16"),
		strings.Contains(text, "challenger"),
		strings.Contains(text, "future"),
		strings.Contains(text, "bpt"):
		return TourPro
	case strings.Contains(text, "cev"),
		strings.Contains(text, "eurobeach"),
		strings.Contains(text, "nations cup"):
		return TourCEV
	case strings.Contains(strings.ToUpper(typ), "NT"):
		return TourNT
	default:
		return TourInt
	}
}

// InferWeek buckets the event's start date relative to now. Undated events
// land in WeekAll so they only show under "Any Week" filtering.
func InferWeek(season int, startMonth, startDay *int, now time.Time) Week {
	if startMonth == nil || startDay == nil || *startMonth == 0 || *startDay == 0 {
		return WeekAll
	}

	eventDate := time.Date(season, time.Month(*startMonth), *startDay, 0, 0, 0, 0, time.UTC)
	utc := now.UTC()
	today := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
	diffDays := int(eventDate.Sub(today) / (24 * time.Hour))

	switch {
	case diffDays < -7:
		return WeekLast
	case diffDays <= 7:
		return WeekThis
	default:
		return WeekNext
	}
}

// InferStatus maps the week bucket onto the live/upcoming label. Anything
// scheduled within the current week is labeled live, concluded or not.
func InferStatus(week Week) Status {
	if week == WeekThis {
		return StatusLive
	}
	return StatusUpcoming
}

// Classify derives the presentation fields for a single record.
func Classify(t Tournament, now time.Time) Classified {
	week := InferWeek(t.Season, t.StartMonth, t.StartDay, now)

	return Classified{
		ID:        t.ID,
		Tier:      t.Type,
		Name:      t.Name,
		MenDate:   t.MenDate,
		WomenDate: t.WomenDate,
		MenURL:    t.MenURL,
		WomenURL:  t.WomenURL,
		Country:   t.Country,
		Season:    t.Season,
		Tour:      InferTour(t.Type, t.Name),
		Week:      week,
		Status:    InferStatus(week),
	}
}

// ClassifyAll derives presentation fields for a dataset snapshot, in order.
func ClassifyAll(records []Tournament, now time.Time) []Classified {
	out := make([]Classified, 0, len(records))
	for _, t := range records {
		out = append(out, Classify(t, now))
	}
	return out
}
