// Package demo is a Bubbletea program that deals a board, computes
// the active player's best turn, and steps through it one action at a
// time. It is the host referenced by spec.md §6: it owns the RNG
// (internal/deal), drives the search core (internal/search), and
// renders the result (internal/render) — the core itself never
// shuffles a deck or prints anything.
package demo

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nodd/crapette/internal/board"
	"github.com/nodd/crapette/internal/cards"
	"github.com/nodd/crapette/internal/deal"
	"github.com/nodd/crapette/internal/heuristic"
	"github.com/nodd/crapette/internal/render"
	"github.com/nodd/crapette/internal/search"
)

// Model is the Bubbletea model for the step-through turn demo.
type Model struct {
	seed1, seed2 uint64
	seeded       bool
	budget       int

	initial *board.Board
	active  cards.Player
	moves   []board.Action

	cur     *board.Board
	applied int

	visited int
	score   heuristic.Score

	done    bool
	message string
}

// New builds a demo model. If seeded is false the initial deal uses
// the global RNG (deal.New(nil)); otherwise it uses the given PCG
// seed pair (deal.NewSeeded) for a reproducible run.
func New(seed1, seed2 uint64, seeded bool, budget int) Model {
	m := Model{seed1: seed1, seed2: seed2, seeded: seeded, budget: budget, active: cards.PlayerOne}
	m.deal()
	return m
}

func (m *Model) deal() {
	if m.seeded {
		m.initial = deal.NewSeeded(m.seed1, m.seed2)
	} else {
		m.initial = deal.New(nil)
	}
	m.cur = m.initial.Clone()
	m.applied = 0
	m.message = ""

	if err := board.Validate(m.initial); err != nil {
		m.moves = nil
		m.message = fmt.Sprintf("invalid deal: %v", err)
		return
	}

	e := search.NewEngine(m.budget)
	plan := e.Run(m.initial, m.active)
	m.visited = e.VisitedNodes()
	m.score = e.BestNode().Score

	final := m.initial.Clone()
	for _, a := range plan {
		final.Apply(a)
	}
	m.moves = search.Finalize(final, m.active, plan)
}

// Seeds reports the seed pair used for the current deal and whether
// it was dealt deterministically, for the host to persist.
func (m Model) Seeds() (seed1, seed2 uint64, seeded bool) {
	return m.seed1, m.seed2, m.seeded
}

// Result reports the outcome of the current deal's search, for the
// host to log: the plan length, the best heuristic score reached, and
// the number of nodes the engine visited.
func (m Model) Result() (moves int, score heuristic.Score, visited int) {
	return len(m.moves), m.score, m.visited
}

// Init returns nil; no initial command needed.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update advances the step-through on Enter/Space, deals a new board
// on "n", and quits on "q"/Esc/Ctrl+C.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "ctrl+c", "q", "esc":
		m.done = true
		return m, tea.Quit
	case "n":
		m.deal()
		return m, nil
	case "enter", " ":
		if m.applied < len(m.moves) {
			m.cur.Apply(m.moves[m.applied])
			m.applied++
		} else {
			m.message = "turn complete"
		}
		return m, nil
	}
	return m, nil
}

// Done reports whether the user asked to quit.
func (m Model) Done() bool { return m.done }

// View renders the current board, the full move plan with the
// applied prefix marked, and a footer.
func (m Model) View() string {
	sections := []string{
		render.Board(m.cur, m.active),
		"",
		m.renderPlan(),
		"",
		m.message,
		"Enter step | N new deal | Q quit",
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderPlan() string {
	if len(m.moves) == 0 {
		return "no legal turn from this deal"
	}
	lines := make([]string, len(m.moves))
	for i, a := range m.moves {
		marker := "  "
		if i < m.applied {
			marker = "✓ "
		} else if i == m.applied {
			marker = "> "
		}
		lines[i] = marker + render.Action(a)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
