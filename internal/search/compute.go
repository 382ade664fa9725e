package search

import (
	"github.com/nodd/crapette/internal/board"
	"github.com/nodd/crapette/internal/cards"
)

// ComputeTurn is the core's sole entry point (spec §6): given a
// validated board and the active player, it searches for the best
// same-turn move sequence and appends the mandatory closing action.
// The returned actions are legal against board when applied in order.
func ComputeTurn(b *board.Board, active cards.Player) ([]board.Action, error) {
	if err := board.Validate(b); err != nil {
		return nil, err
	}

	e := NewEngine(0)
	moves := e.Run(b, active)

	final := b.Clone()
	for _, m := range moves {
		final.Apply(m)
	}

	return Finalize(final, active, moves), nil
}
