package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.DefaultBudget != 0 {
		t.Errorf("DefaultBudget = %d, want 0 (unbounded)", c.DefaultBudget)
	}
	if c.LastSeeded {
		t.Errorf("LastSeeded = true, want false for a fresh default config")
	}
}

func TestLoadFromMissing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	s, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom missing file: %v", err)
	}
	if s.Config.DefaultBudget != 0 {
		t.Errorf("DefaultBudget = %d, want default 0", s.Config.DefaultBudget)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	s, _ := LoadFrom(path)
	s.Config.DefaultBudget = 5000
	s.RememberDeal(1, 2)

	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.Config.DefaultBudget != 5000 {
		t.Errorf("DefaultBudget = %d, want 5000", loaded.Config.DefaultBudget)
	}
	if loaded.Config.LastSeed1 != 1 || loaded.Config.LastSeed2 != 2 || !loaded.Config.LastSeeded {
		t.Errorf("loaded config = %+v, want remembered seed (1,2,true)", loaded.Config)
	}
}

func TestLoadFromNegativeBudgetNormalizesToZero(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	s, _ := LoadFrom(path)
	s.Config.DefaultBudget = -3
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.Config.DefaultBudget != 0 {
		t.Errorf("DefaultBudget = %d, want normalized to 0", loaded.Config.DefaultBudget)
	}
}
