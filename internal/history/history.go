// Package history persists a log of computed turns: the deal that
// produced them, the plan length, nodes the engine visited, and the
// heuristic score reached, tracking the best score seen so far.
// Adapted from the teacher's scores.Store (same load/update/save
// shape), repurposed from per-game high scores to per-deal search
// results, with heuristic.Score's lexicographic Greater standing in
// for the teacher's higher-is-better/lower-is-better comparison.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/nodd/crapette/internal/heuristic"
)

// maxRecent bounds how many recent runs are kept in the log.
const maxRecent = 20

// Entry records one computed turn.
type Entry struct {
	Seed1        uint64          `json:"seed1,omitempty"`
	Seed2        uint64          `json:"seed2,omitempty"`
	Seeded       bool            `json:"seeded"`
	Moves        int             `json:"moves"`
	Score        heuristic.Score `json:"score"`
	VisitedNodes int             `json:"visited_nodes"`
	Date         string          `json:"date"`
}

// Log stores the best run seen and a bounded trail of recent runs.
type Log struct {
	Best   *Entry  `json:"best,omitempty"`
	Recent []Entry `json:"recent,omitempty"`
}

// Store manages history persistence.
type Store struct {
	path string
	Log  Log
}

// Load reads the history file from the default location.
func Load() (*Store, error) {
	return LoadFrom("")
}

// LoadFrom reads history from a specific path. If path is empty, uses
// ~/.crapette-ai/history.json.
func LoadFrom(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return &Store{Log: Log{}}, err
		}
		path = filepath.Join(home, ".crapette-ai", "history.json")
	}

	s := &Store{path: path}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path is from UserHomeDir or test-controlled input
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}

	if err := json.Unmarshal(data, &s.Log); err != nil {
		return s, err
	}
	return s, nil
}

// Save writes the history to disk.
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.Log, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Record appends e to the recent trail, trimming to maxRecent, and
// replaces Best if e's score beats it. Returns true if a new best was
// set.
func (s *Store) Record(e Entry) bool {
	e.Date = time.Now().Format("2006-01-02")

	s.Log.Recent = append(s.Log.Recent, e)
	if len(s.Log.Recent) > maxRecent {
		s.Log.Recent = s.Log.Recent[len(s.Log.Recent)-maxRecent:]
	}

	if s.Log.Best == nil || e.Score.Greater(s.Log.Best.Score) {
		best := e
		s.Log.Best = &best
		return true
	}
	return false
}
