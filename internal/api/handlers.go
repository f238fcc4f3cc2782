package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/sandpoint/beachhub/internal/calendar"
	"github.com/sandpoint/beachhub/internal/detail"
	"github.com/sandpoint/beachhub/internal/logger"
	"github.com/sandpoint/beachhub/internal/ranking"
	"github.com/sandpoint/beachhub/internal/scrape"
	"github.com/sandpoint/beachhub/internal/tournament"
)

// rankingFetcher loads both gender ranking tables.
type rankingFetcher interface {
	Fetch(ctx context.Context) (*ranking.Rankings, error)
}

// detailLoader loads a sanitized detail page by tournament code.
type detailLoader interface {
	Load(ctx context.Context, tcode string) (*detail.Page, error)
}

// jsonFetcher loads upstream JSON documents.
type jsonFetcher interface {
	JSON(ctx context.Context, url string, v any) error
}

// Handler contains dependencies for HTTP handlers
type Handler struct {
	tournaments []tournament.Tournament
	rankings    rankingFetcher
	details     detailLoader
	fetcher     jsonFetcher
	baseURL     string
	now         func() time.Time
}

// NewHandler creates a new handler serving the given dataset snapshot.
// The snapshot is read-only; a fresh dataset means a fresh handler.
func NewHandler(records []tournament.Tournament, rankings rankingFetcher, details detailLoader, fetcher jsonFetcher, baseURL string) *Handler {
	return &Handler{
		tournaments: records,
		rankings:    rankings,
		details:     details,
		fetcher:     fetcher,
		baseURL:     baseURL,
		now:         time.Now,
	}
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":      "healthy",
		"service":     "beachhub",
		"tournaments": len(h.tournaments),
	})
}

// GetTournaments returns the classified tournament list, filtered by the
// season, tour, week, country and q query parameters
func (h *Handler) GetTournaments(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)

	classified := tournament.ClassifyAll(h.tournaments, h.now())
	matched := filter.Apply(classified)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"tournaments": matched,
		"total":       len(matched),
		"source":      h.baseURL,
		"updatedAt":   h.timestamp(),
	})
}

// GetTournament returns one classified tournament by ID
func (h *Handler) GetTournament(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	record := tournament.FindByID(h.tournaments, id)
	if record == nil {
		respondError(w, http.StatusNotFound, "Tournament not found", nil)
		return
	}

	respondJSON(w, http.StatusOK, tournament.Classify(*record, h.now()))
}

// GetTournamentCalendar returns one tournament as an iCalendar document
func (h *Handler) GetTournamentCalendar(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	record := tournament.FindByID(h.tournaments, id)
	if record == nil {
		respondError(w, http.StatusNotFound, "Tournament not found", nil)
		return
	}

	writeCalendar(w, calendar.GenerateICS(*record, h.now()))
}

// GetCalendarFeed returns the whole dataset as a subscribable calendar
func (h *Handler) GetCalendarFeed(w http.ResponseWriter, r *http.Request) {
	writeCalendar(w, calendar.GenerateFeed(h.tournaments, h.now()))
}

// GetRankings proxies the normalized entry rankings
func (h *Handler) GetRankings(w http.ResponseWriter, r *http.Request) {
	rankings, err := h.rankings.Fetch(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch rankings", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"men":       rankings.Men,
		"women":     rankings.Women,
		"source":    ranking.SourceURL,
		"updatedAt": h.timestamp(),
	})
}

// GetLivescore proxies the matches currently in play
func (h *Handler) GetLivescore(w http.ResponseWriter, r *http.Request) {
	var rows []scrape.LiveRow
	if err := h.fetcher.JSON(r.Context(), h.baseURL+"/cache/scripts/livescore.json", &rows); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch live scores", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"matches":   scrape.ParseLiveRows(rows),
		"source":    h.baseURL + "/livescore",
		"updatedAt": h.timestamp(),
	})
}

// GetTournamentDetail returns the sanitized detail page for the tournament
// given by the id query parameter
func (h *Handler) GetTournamentDetail(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "Missing id parameter", nil)
		return
	}

	record := tournament.FindByID(h.tournaments, id)
	if record == nil {
		respondError(w, http.StatusNotFound, "Tournament not found", nil)
		return
	}

	tcode := record.Tcode()
	if tcode == "" {
		respondError(w, http.StatusUnprocessableEntity, "Tournament tcode not available", nil)
		return
	}

	page, err := h.details.Load(r.Context(), tcode)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Tournament fetch failed", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"id":        id,
		"tcode":     page.Tcode,
		"html":      page.HTML,
		"summary":   page.Summary,
		"updatedAt": h.timestamp(),
	})
}

// GetMetrics returns the in-process metrics snapshot
func (h *Handler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, logger.GetMetricsSnapshot())
}

func (h *Handler) timestamp() string {
	return h.now().UTC().Format(time.RFC3339)
}

// filterFromQuery builds a tournament filter from request query parameters.
// Unknown or malformed values are ignored rather than rejected.
func filterFromQuery(r *http.Request) tournament.Filter {
	q := r.URL.Query()

	filter := tournament.Filter{
		Tour:    tournament.Tour(q.Get("tour")),
		Week:    tournament.Week(q.Get("week")),
		Country: q.Get("country"),
		Query:   q.Get("q"),
	}
	if season, err := strconv.Atoi(q.Get("season")); err == nil {
		filter.Season = season
	}
	return filter
}

func writeCalendar(w http.ResponseWriter, ics string) {
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(ics))
}
