// Package syncer runs the dataset refresh: it fetches every season listing
// from the source site, extracts tournament rows, and persists the union of
// all seasons that fetched successfully. A season that fails is reported
// but never blocks the others; only a run where every season fails aborts
// without touching the stored dataset.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sandpoint/beachhub/internal/fetch"
	"github.com/sandpoint/beachhub/internal/logger"
	"github.com/sandpoint/beachhub/internal/scrape"
	"github.com/sandpoint/beachhub/internal/storage"
	"github.com/sandpoint/beachhub/internal/tournament"
)

// DefaultSeasons are the seasons the source site currently serves.
var DefaultSeasons = []int{2024, 2025, 2026, 2027, 2028}

// SeasonResult reports the outcome of one season fetch.
type SeasonResult struct {
	Season int    `json:"season"`
	Count  int    `json:"count"`
	Error  string `json:"error,omitempty"`
}

// Report summarizes a sync run.
type Report struct {
	Seasons        []SeasonResult          `json:"seasons"`
	Total          int                     `json:"total"`
	NewTournaments []tournament.Tournament `json:"newTournaments"`
	SyncedAt       string                  `json:"syncedAt"`
}

// NewCount returns the number of tournaments first seen in this run.
func (r *Report) NewCount() int {
	return len(r.NewTournaments)
}

// htmlFetcher is the slice of the fetch client the syncer needs.
type htmlFetcher interface {
	Text(ctx context.Context, url string) (string, error)
}

// Syncer refreshes the tournament dataset from the source site.
type Syncer struct {
	fetcher htmlFetcher
	store   *storage.Store
	baseURL string
	seasons []int
	dryRun  bool
}

// New creates a syncer against the default source site and seasons.
func New(fetcher htmlFetcher, store *storage.Store) *Syncer {
	return &Syncer{
		fetcher: fetcher,
		store:   store,
		baseURL: fetch.SourceBase,
		seasons: DefaultSeasons,
	}
}

// SetBaseURL overrides the source site, mainly for tests.
func (s *Syncer) SetBaseURL(baseURL string) {
	s.baseURL = baseURL
}

// SetDryRun makes Run report without persisting the dataset.
func (s *Syncer) SetDryRun(dryRun bool) {
	s.dryRun = dryRun
}

// SetSeasons overrides the seasons to sync.
func (s *Syncer) SetSeasons(seasons []int) {
	if len(seasons) > 0 {
		s.seasons = seasons
	}
}

// ListingURL returns the season overview URL for a season.
func (s *Syncer) ListingURL(season int) string {
	return fmt.Sprintf("%s/?season=%d&international=all", s.baseURL, season)
}

// Run fetches all seasons concurrently and persists the union of the
// successful ones, in season order. The report carries per-season outcomes
// and the tournaments not present in the previous dataset.
func (s *Syncer) Run(ctx context.Context) (*Report, error) {
	start := time.Now()

	previous, err := s.store.Load()
	if err != nil {
		logger.Warn("Could not load previous dataset, diffing against empty", logger.Fields{
			"path": s.store.Path(),
		})
		previous = []tournament.Tournament{}
	}

	type seasonBatch struct {
		records []tournament.Tournament
		err     error
	}
	batches := make([]seasonBatch, len(s.seasons))

	var wg sync.WaitGroup
	for i, season := range s.seasons {
		wg.Add(1)
		go func(i, season int) {
			defer wg.Done()
			seasonStart := time.Now()

			html, err := s.fetcher.Text(ctx, s.ListingURL(season))
			if err != nil {
				batches[i] = seasonBatch{err: err}
				return
			}

			batches[i] = seasonBatch{records: scrape.ParseSeasonListing(html, season)}
			logger.RecordTiming("sync.season", time.Since(seasonStart))
		}(i, season)
	}
	wg.Wait()

	report := &Report{
		Seasons:  make([]SeasonResult, 0, len(s.seasons)),
		SyncedAt: time.Now().UTC().Format(time.RFC3339),
	}

	var all []tournament.Tournament
	failures := 0
	for i, season := range s.seasons {
		result := SeasonResult{Season: season}
		if batches[i].err != nil {
			result.Error = batches[i].err.Error()
			failures++
			logger.Error("Season fetch failed", logger.Fields{"season": season}, batches[i].err)
		} else {
			result.Count = len(batches[i].records)
			all = append(all, batches[i].records...)
		}
		report.Seasons = append(report.Seasons, result)
	}
	report.Total = len(all)

	if failures == len(s.seasons) {
		return report, errors.New("all season fetches failed, keeping previous dataset")
	}

	report.NewTournaments = diffNew(previous, all)

	if !s.dryRun {
		if err := s.store.Save(all); err != nil {
			return report, fmt.Errorf("saving dataset: %w", err)
		}
	}

	logger.IncrCounter("sync.runs")
	logger.RecordTiming("sync.run", time.Since(start))
	logger.Info("Sync complete", logger.Fields{
		"total":    report.Total,
		"new":      report.NewCount(),
		"failures": failures,
		"duration": time.Since(start).String(),
	})

	return report, nil
}

// diffNew returns the records whose IDs were absent from the previous
// dataset, in current-dataset order.
func diffNew(previous, current []tournament.Tournament) []tournament.Tournament {
	seen := make(map[string]bool, len(previous))
	for _, t := range previous {
		seen[t.ID] = true
	}

	fresh := []tournament.Tournament{}
	for _, t := range current {
		if !seen[t.ID] {
			fresh = append(fresh, t)
		}
	}
	return fresh
}
