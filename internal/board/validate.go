package board

import (
	"errors"
	"fmt"

	"github.com/nodd/crapette/internal/cards"
	"github.com/nodd/crapette/internal/piles"
)

// ErrInputViolation is the sentinel wrapped by every error Validate
// returns: the host supplied a board that violates a per-pile
// invariant (spec §7 InputViolation).
var ErrInputViolation = errors.New("board: input violation")

// Validate checks the per-pile invariants of spec §3 against a
// host-supplied board before any search is attempted. A nil result
// means the board is safe to seed the search with.
func Validate(b *Board) error {
	for i, f := range b.Foundations {
		if err := validateFoundation(i, f); err != nil {
			return err
		}
	}
	for p := cards.Player(0); p < 2; p++ {
		if err := validateOwner(b.Stocks[p], p); err != nil {
			return err
		}
		if err := validateOwner(b.Crapes[p], p); err != nil {
			return err
		}
	}
	if err := validateNoDuplicates(b); err != nil {
		return err
	}
	return nil
}

func validateFoundation(id int, f *piles.Pile) error {
	wantSuit := f.Kind.Suit
	for rank, c := range f.Cards {
		if c.Suit != wantSuit {
			return fmt.Errorf("%w: foundation %d has suit %v at position %d, want %v",
				ErrInputViolation, id, c.Suit, rank, wantSuit)
		}
		if int(c.Rank) != rank+1 {
			return fmt.Errorf("%w: foundation %d rank sequence broken at position %d: got %v",
				ErrInputViolation, id, rank, c.Rank)
		}
	}
	return nil
}

func validateOwner(p *piles.Pile, want cards.Player) error {
	for _, c := range p.Cards {
		if c.Owner != want {
			return fmt.Errorf("%w: %v(%v) contains a card owned by %v",
				ErrInputViolation, p.Kind.Kind, want, c.Owner)
		}
	}
	return nil
}

// validateNoDuplicates checks that no (rank, suit) appears twice among
// one player's cards across the board. Missing cards are not checked:
// a board holding only part of a player's deck validates.
func validateNoDuplicates(b *Board) error {
	seen := make(map[cards.Player]map[cards.Card]bool, 2)
	seen[cards.PlayerOne] = make(map[cards.Card]bool, 52)
	seen[cards.PlayerTwo] = make(map[cards.Card]bool, 52)

	record := func(c cards.Card) error {
		owner := seen[c.Owner]
		key := cards.Card{Rank: c.Rank, Suit: c.Suit}
		if owner[key] {
			return fmt.Errorf("%w: duplicate card %s owned by %v", ErrInputViolation, c.Label(), c.Owner)
		}
		owner[key] = true
		return nil
	}

	for _, p := range b.allPiles() {
		for _, c := range p.Cards {
			if err := record(c); err != nil {
				return err
			}
		}
	}
	return nil
}

// allPiles returns every pile on the board, in no particular order.
func (b *Board) allPiles() []*piles.Pile {
	out := make([]*piles.Pile, 0, 2+2+2+NumFoundation+NumTableau)
	out = append(out, b.Stocks[0], b.Stocks[1])
	out = append(out, b.Wastes[0], b.Wastes[1])
	out = append(out, b.Crapes[0], b.Crapes[1])
	out = append(out, b.Foundations[:]...)
	out = append(out, b.Tableaus[:]...)
	return out
}
