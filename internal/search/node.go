package search

import (
	"github.com/nodd/crapette/internal/board"
	"github.com/nodd/crapette/internal/cards"
	"github.com/nodd/crapette/internal/heuristic"
)

// BoardNode is a frontier record: a board reached from the turn's
// starting position, the active player, its plan cost, its heuristic
// score, the moves that produced it, and a post-visit diagnostic
// index (spec §3 BoardNode). Equality and hashing are delegated to
// the board's canonical identity via Board.Key.
type BoardNode struct {
	Board  *board.Board
	Active cards.Player
	Cost   Cost
	Score  heuristic.Score
	Moves  []board.Action

	// VisitIndex is assigned when the node is popped from the
	// frontier and expanded; it is diagnostic only (spec §4.5).
	VisitIndex int

	// heapIndex is maintained by container/heap; -1 when the node is
	// not currently queued in the frontier.
	heapIndex int
}

// newNode builds a node for board reached by moves from the turn's
// origin, with cost c, from active's point of view.
func newNode(b *board.Board, active cards.Player, c Cost, moves []board.Action) *BoardNode {
	return &BoardNode{
		Board:     b,
		Active:    active,
		Cost:      c,
		Score:     heuristic.Compute(b, active),
		Moves:     moves,
		heapIndex: -1,
	}
}

// Less is the frontier's total order: cost, then score, then
// canonical board ordering (spec §3 Frontier ordering).
func (n *BoardNode) Less(o *BoardNode) bool {
	if c := n.Cost.Compare(o.Cost); c != 0 {
		return c < 0
	}
	if c := n.Score.Compare(o.Score); c != 0 {
		return c < 0
	}
	return n.Board.Less(o.Board)
}
