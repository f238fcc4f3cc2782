// Package storage handles persistence of the tournament dataset. The
// dataset is a single JSON file written atomically, so readers never see a
// partially written snapshot.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sandpoint/beachhub/internal/tournament"
)

// DefaultPath is where the sync job writes the dataset unless configured
// otherwise.
const DefaultPath = "data/tournaments.json"

// Store handles persistence of the tournament dataset
type Store struct {
	path string
}

// New creates a new Store instance for the given file path
func New(path string) (*Store, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	// Create parent directory if it doesn't exist
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	return &Store{
		path: path,
	}, nil
}

// Path returns the resolved dataset file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the dataset from disk. A missing file is an empty dataset,
// not an error.
func (s *Store) Load() ([]tournament.Tournament, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []tournament.Tournament{}, nil
		}
		return nil, fmt.Errorf("reading dataset: %w", err)
	}

	var records []tournament.Tournament
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}
	if records == nil {
		records = []tournament.Tournament{}
	}

	return records, nil
}

// Save writes the dataset to disk. The file is written to a temp path and
// renamed into place so a crashed write never corrupts the dataset.
func (s *Store) Save(records []tournament.Tournament) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding dataset: %w", err)
	}
	data = append(data, '\n')

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("writing dataset: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("replacing dataset: %w", err)
	}

	return nil
}
