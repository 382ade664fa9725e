// Package search implements the best-turn explorer: a Dijkstra-style
// state-space search over board positions reachable from the current
// position by same-turn card moves, plus the turn-closing finaliser.
package search

import (
	"github.com/nodd/crapette/internal/board"
	"github.com/nodd/crapette/internal/cards"
	"github.com/nodd/crapette/internal/heuristic"
)

// Engine runs a single best-turn search (spec §4.5). It holds no
// state across calls to Run; construct a new Engine (or reuse one via
// Run, which resets it) per search.
type Engine struct {
	known     map[string]*BoardNode
	frontier  frontier
	bestNode  *BoardNode
	bestScore heuristic.Score

	visitCounter int

	// NodeBudget caps the number of nodes expanded; 0 means
	// unbounded, matching the reference behaviour of running to
	// frontier exhaustion (spec §5, §4.5 DESIGN NOTES).
	NodeBudget int
}

// NewEngine builds an Engine. A nodeBudget of 0 means unbounded.
func NewEngine(nodeBudget int) *Engine {
	return &Engine{NodeBudget: nodeBudget}
}

// Run searches from initial on active's turn and returns the best
// terminal node's moves (spec §4.5). It does not include the
// turn-closing action; see Finalize.
func (e *Engine) Run(initial *board.Board, active cards.Player) []board.Action {
	e.known = make(map[string]*BoardNode)
	e.frontier = frontier{}
	e.visitCounter = 0
	e.bestScore = heuristic.Worst

	seed := newNode(initial, active, Cost{}, nil)
	e.known[initial.Key()] = seed
	e.frontier.push(seed)
	e.bestNode = seed

	for {
		node := e.frontier.popMin()
		if node == nil {
			break
		}

		e.visitCounter++
		node.VisitIndex = e.visitCounter

		e.expand(node)

		if node.Score.Greater(e.bestScore) {
			e.bestScore = node.Score
			e.bestNode = node
		}

		if e.NodeBudget > 0 && e.visitCounter >= e.NodeBudget {
			break
		}
	}

	return e.bestNode.Moves
}

// BestNode returns the node with the best score seen by the most
// recent Run call.
func (e *Engine) BestNode() *BoardNode { return e.bestNode }

// VisitedNodes returns the number of nodes popped from the frontier
// during the most recent Run call.
func (e *Engine) VisitedNodes() int { return e.visitCounter }
