// Package board implements the fixed-shape aggregate of piles that
// makes up a Crapette board: two Stocks, two Wastes, two Crapes,
// eight Foundations, and eight Tableau piles, plus the canonical
// equality/ordering/hashing that treats symmetric Tableau and
// Foundation slots as interchangeable.
package board

import (
	"fmt"

	"github.com/nodd/crapette/internal/cards"
	"github.com/nodd/crapette/internal/piles"
)

// NumTableau and NumFoundation are the fixed pile counts per board.
const (
	NumTableau    = 8
	NumFoundation = 8
)

// foundationSuits is the suit assigned to each Foundation slot:
// {♦,♣,♥,♠,♠,♥,♣,♦}. Slot i is the mirror pair of slot 7-i.
var foundationSuits = [NumFoundation]cards.Suit{
	cards.Diamond, cards.Club, cards.Heart, cards.Spade,
	cards.Spade, cards.Heart, cards.Club, cards.Diamond,
}

// MirrorFoundation returns the index of the Foundation slot
// symmetric to i.
func MirrorFoundation(i int) int { return NumFoundation - 1 - i }

// Board is the fixed aggregate of piles that make up a game position.
type Board struct {
	Stocks      [2]*piles.Pile
	Wastes      [2]*piles.Pile
	Crapes      [2]*piles.Pile
	Foundations [NumFoundation]*piles.Pile
	Tableaus    [NumTableau]*piles.Pile
}

// New builds an empty board with the fixed pile shape: stocks, wastes
// and crapes tagged per player, foundations tagged with the
// {♦,♣,♥,♠,♠,♥,♣,♦} suit layout, and empty tableau piles.
func New() *Board {
	b := &Board{}
	for p := cards.Player(0); p < 2; p++ {
		b.Stocks[p] = piles.New(piles.NewStock(p))
		b.Wastes[p] = piles.New(piles.NewWaste(p))
		b.Crapes[p] = piles.New(piles.NewCrape(p))
	}
	for i := 0; i < NumFoundation; i++ {
		b.Foundations[i] = piles.New(piles.NewFoundation(i, foundationSuits[i]))
	}
	for i := 0; i < NumTableau; i++ {
		b.Tableaus[i] = piles.New(piles.NewTableau(i))
	}
	return b
}

// Clone returns a deep copy of the board: every pile is copied so
// that mutating the clone never affects the original.
func (b *Board) Clone() *Board {
	c := &Board{}
	for i := range b.Stocks {
		c.Stocks[i] = b.Stocks[i].Clone()
		c.Wastes[i] = b.Wastes[i].Clone()
		c.Crapes[i] = b.Crapes[i].Clone()
	}
	for i := range b.Foundations {
		c.Foundations[i] = b.Foundations[i].Clone()
	}
	for i := range b.Tableaus {
		c.Tableaus[i] = b.Tableaus[i].Clone()
	}
	return c
}

// Pile looks up the pile tagged by kind. It panics if kind names a
// Foundation or Tableau ID outside range, since that can only be a
// programmer error: no such pile exists on the board.
func (b *Board) Pile(kind piles.PileKind) *piles.Pile {
	switch kind.Kind {
	case piles.Stock:
		return b.Stocks[kind.Player]
	case piles.Waste:
		return b.Wastes[kind.Player]
	case piles.Crape:
		return b.Crapes[kind.Player]
	case piles.Foundation:
		if kind.ID < 0 || kind.ID >= NumFoundation {
			panic(fmt.Sprintf("board: foundation id %d out of range", kind.ID))
		}
		return b.Foundations[kind.ID]
	case piles.Tableau:
		if kind.ID < 0 || kind.ID >= NumTableau {
			panic(fmt.Sprintf("board: tableau id %d out of range", kind.ID))
		}
		return b.Tableaus[kind.ID]
	}
	panic(fmt.Sprintf("board: unknown pile kind %v", kind.Kind))
}

// Apply mutates the board in place according to action. Move,
// destination=Stock or origin in {Waste, Foundation} is an internal
// contract violation and panics (spec §4.3/§4.7): the search never
// produces such an action, so seeing one here means a caller
// constructed it directly.
func (b *Board) Apply(a Action) {
	switch a.Kind {
	case ActionMove:
		if a.Origin.Kind == piles.Waste || a.Origin.Kind == piles.Foundation {
			panic(fmt.Sprintf("board: illegal move origin %v", a.Origin.Kind))
		}
		if a.Destination.Kind == piles.Stock {
			panic("board: illegal move destination Stock")
		}
		origin := b.Pile(a.Origin)
		card := origin.Pop()
		dest := b.Pile(a.Destination)
		dest.Push(card)

	case ActionFlip:
		b.Pile(a.Pile).FlipTopUp()

	case ActionFlipWaste:
		waste := b.Wastes[a.Player]
		stock := b.Stocks[a.Player]
		for !waste.IsEmpty() {
			c := waste.Pop()
			c.FaceUp = false
			stock.Push(c)
		}

	default:
		panic(fmt.Sprintf("board: unknown action kind %v", a.Kind))
	}
}

// CopyWith returns a fresh board equal to b with action applied,
// leaving b unmodified.
func (b *Board) CopyWith(a Action) *Board {
	c := b.Clone()
	c.Apply(a)
	return c
}
