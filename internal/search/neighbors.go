package search

import (
	"github.com/nodd/crapette/internal/board"
	"github.com/nodd/crapette/internal/cards"
	"github.com/nodd/crapette/internal/piles"
)

// pilesSameContent reports whether two piles hold the same sequence
// of cards by (rank, suit) only, matching the canonical card
// comparison of board §4.2: used to recognise symmetric piles that
// would otherwise contribute redundant candidates.
func pilesSameContent(a, b *piles.Pile) bool {
	if len(a.Cards) != len(b.Cards) {
		return false
	}
	for i := range a.Cards {
		if !a.Cards[i].Equal(b.Cards[i]) {
			return false
		}
	}
	return true
}

// originCandidates enumerates the deterministic origin candidates of
// spec §4.4 step 2: non-empty Tableau piles (deduplicated by content,
// preserving encounter order), then active's Crape if its top is
// face-up, then active's Stock if its top is face-up.
func originCandidates(b *board.Board, active cards.Player) []*piles.Pile {
	var out []*piles.Pile
	for _, t := range b.Tableaus {
		if t.IsEmpty() {
			continue
		}
		dup := false
		for _, seen := range out {
			if pilesSameContent(seen, t) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, t)
		}
	}

	if crape := b.Crapes[active]; !crape.IsEmpty() {
		if top, _ := crape.Top(); top.FaceUp {
			out = append(out, crape)
		}
	}
	if stock := b.Stocks[active]; !stock.IsEmpty() {
		if top, _ := stock.Top(); top.FaceUp {
			out = append(out, stock)
		}
	}
	return out
}

// destinationCandidates enumerates the deterministic destination
// candidates of spec §4.4 step 3: all Tableau piles (with at most one
// empty tableau ever offered), the non-full Foundations (mirror pairs
// collapsed when they are size-identical duplicates), and the
// opponent's Crape/Waste if non-empty.
func destinationCandidates(b *board.Board, active cards.Player) []*piles.Pile {
	var out []*piles.Pile

	emptyOffered := false
	for _, t := range b.Tableaus {
		if t.IsEmpty() {
			if emptyOffered {
				continue
			}
			emptyOffered = true
		}
		out = append(out, t)
	}

	for i := 0; i < board.NumFoundation/2; i++ {
		first := b.Foundations[i]
		second := b.Foundations[board.MirrorFoundation(i)]
		if !first.IsFull() {
			out = append(out, first)
		}
		if !second.IsFull() && first.Size() != second.Size() {
			out = append(out, second)
		}
	}

	opp := active.Other()
	if crape := b.Crapes[opp]; !crape.IsEmpty() {
		out = append(out, crape)
	}
	if waste := b.Wastes[opp]; !waste.IsEmpty() {
		out = append(out, waste)
	}
	return out
}

// expand enumerates node's legal same-turn single-move neighbours per
// spec §4.4 and registers each into known/frontier.
func (e *Engine) expand(node *BoardNode) {
	if len(node.Moves) > 0 {
		last := node.Moves[len(node.Moves)-1]
		if last.Kind == board.ActionMove &&
			(last.Origin.Kind == piles.Crape || last.Origin.Kind == piles.Stock) {
			return
		}
	}

	b := node.Board
	active := node.Active

	var lastMove *board.Action
	if len(node.Moves) > 0 {
		m := node.Moves[len(node.Moves)-1]
		if m.Kind == board.ActionMove {
			lastMove = &m
		}
	}

	origins := originCandidates(b, active)
	destinations := destinationCandidates(b, active)

	for _, origin := range origins {
		top, ok := origin.Top()
		if !ok {
			continue
		}
		for _, dest := range destinations {
			if dest == origin {
				continue
			}
			if !dest.CanAdd(top, origin.Kind, active) {
				continue
			}
			if origin.Kind.Kind == piles.Tableau && origin.Size() == 1 &&
				dest.Kind.Kind == piles.Tableau && dest.IsEmpty() {
				continue
			}
			if lastMove != nil && top.Equal(lastMove.Card) &&
				origin.Kind.SameKind(lastMove.Destination) &&
				dest.Kind.SameKind(lastMove.Origin) {
				continue
			}

			move := board.NewMove(top, origin.Kind, dest.Kind)
			e.registerChild(node, move)
		}
	}
}

// registerChild builds the child reached by applying move to parent
// and registers it with the known-nodes table and frontier per the
// replacement rule of spec §4.4.
func (e *Engine) registerChild(parent *BoardNode, move board.Action) {
	childBoard := parent.Board.CopyWith(move)
	childCost := parent.Cost.extend(moveCostFor(move.Origin, move.Destination))
	key := childBoard.Key()

	if existing, ok := e.known[key]; ok {
		if existing.Cost.Compare(childCost) <= 0 {
			return
		}
		e.frontier.remove(existing)
		delete(e.known, key)
	}

	childMoves := make([]board.Action, len(parent.Moves)+1)
	copy(childMoves, parent.Moves)
	childMoves[len(parent.Moves)] = move

	child := newNode(childBoard, parent.Active, childCost, childMoves)
	e.known[key] = child
	e.frontier.push(child)
}
