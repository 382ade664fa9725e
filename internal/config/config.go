// Package config persists the demo program's preferences between
// runs: the node budget and the last deal seed, so a user can rerun
// the previous deal with a bare "-seeded" flag. Adapted from the
// teacher's settings.Store (same JSON-file-under-home-dir shape,
// normalize-on-load discipline), repurposed from animation/theme
// preferences to search-engine and deal preferences.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config stores user preferences persisted to disk.
type Config struct {
	DefaultBudget int    `json:"default_budget"`
	LastSeed1     uint64 `json:"last_seed1"`
	LastSeed2     uint64 `json:"last_seed2"`
	LastSeeded    bool   `json:"last_seeded"`
}

// DefaultConfig returns sensible defaults: unbounded search, no
// pinned seed.
func DefaultConfig() Config {
	return Config{DefaultBudget: 0}
}

// Store manages config persistence.
type Store struct {
	path   string
	Config Config
}

// Load reads config from the default location.
func Load() (*Store, error) {
	return LoadFrom("")
}

// LoadFrom reads config from a specific path. If path is empty, uses
// ~/.crapette-ai/config.json.
func LoadFrom(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return &Store{Config: DefaultConfig()}, err
		}
		path = filepath.Join(home, ".crapette-ai", "config.json")
	}

	s := &Store{path: path, Config: DefaultConfig()}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path is from UserHomeDir or test-controlled input
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}

	if err := json.Unmarshal(data, &s.Config); err != nil {
		return s, err
	}
	if s.Config.DefaultBudget < 0 {
		s.Config.DefaultBudget = 0
	}
	return s, nil
}

// Save writes the config to disk.
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.Config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// RememberDeal records the most recent deal's seed so a later run can
// reproduce it.
func (s *Store) RememberDeal(seed1, seed2 uint64) {
	s.Config.LastSeed1 = seed1
	s.Config.LastSeed2 = seed2
	s.Config.LastSeeded = true
}
