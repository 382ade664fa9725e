// Command crapette-ai deals a Crapette board and steps through the
// best turn the search core finds for it.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nodd/crapette/internal/config"
	"github.com/nodd/crapette/internal/demo"
	"github.com/nodd/crapette/internal/history"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load config: %v\n", err)
	}
	hist, err := history.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load history: %v\n", err)
	}

	var (
		seed1  = flag.Uint64("seed1", cfg.Config.LastSeed1, "first PCG seed half; with -seed2 and -seeded deals a reproducible board")
		seed2  = flag.Uint64("seed2", cfg.Config.LastSeed2, "second PCG seed half")
		seeded = flag.Bool("seeded", cfg.Config.LastSeeded, "deal deterministically from -seed1/-seed2 instead of the global RNG")
		budget = flag.Int("budget", cfg.Config.DefaultBudget, "node budget for the search engine; 0 means unlimited")
	)
	flag.Parse()

	m := demo.New(*seed1, *seed2, *seeded, *budget)
	p := tea.NewProgram(m, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if fm, ok := final.(demo.Model); ok {
		recordRun(cfg, hist, fm)
	}
}

func recordRun(cfg *config.Store, hist *history.Store, m demo.Model) {
	s1, s2, wasSeeded := m.Seeds()
	moves, score, visited := m.Result()

	if wasSeeded {
		cfg.RememberDeal(s1, s2)
	}

	hist.Record(history.Entry{
		Seed1: s1, Seed2: s2, Seeded: wasSeeded,
		Moves: moves, Score: score, VisitedNodes: visited,
	})

	if err := cfg.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not save config: %v\n", err)
	}
	if err := hist.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not save history: %v\n", err)
	}
}
