package search

import (
	"github.com/nodd/crapette/internal/board"
	"github.com/nodd/crapette/internal/cards"
	"github.com/nodd/crapette/internal/piles"
)

// Finalize appends the mandatory turn-closing action to moves,
// following the final board and active player (spec §4.6). It
// returns a new slice; moves is never mutated in place.
func Finalize(final *board.Board, active cards.Player, moves []board.Action) []board.Action {
	out := make([]board.Action, len(moves), len(moves)+1)
	copy(out, moves)

	crape := final.Crapes[active]
	if top, ok := crape.Top(); ok && !top.FaceUp {
		return append(out, board.NewFlip(piles.NewCrape(active)))
	}

	stock := final.Stocks[active]
	if !stock.IsEmpty() {
		top, _ := stock.Top()
		if !top.FaceUp {
			return append(out, board.NewFlip(piles.NewStock(active)))
		}
		return append(out, board.NewMove(top, piles.NewStock(active), piles.NewWaste(active)))
	}

	waste := final.Wastes[active]
	if !waste.IsEmpty() {
		return append(out, board.NewFlipWaste(active))
	}

	return out
}
