// Package piles models a single pile of cards and the legality rules
// that govern what may be pushed onto or popped from it.
package piles

import "github.com/nodd/crapette/internal/cards"

// Kind discriminates the five pile variants. Foundation and Tableau
// carry an ID that distinguishes otherwise-symmetric slots; Stock,
// Waste, and Crape carry the Player they belong to.
type Kind int

const (
	Foundation Kind = iota
	Tableau
	Stock
	Waste
	Crape
)

func (k Kind) String() string {
	switch k {
	case Foundation:
		return "Foundation"
	case Tableau:
		return "Tableau"
	case Stock:
		return "Stock"
	case Waste:
		return "Waste"
	case Crape:
		return "Crape"
	}
	return "Kind(?)"
}

// PileKind tags a pile with its variant and the data that variant
// needs: Foundation carries ID and Suit, Tableau carries ID, and
// Stock/Waste/Crape carry Player.
type PileKind struct {
	Kind   Kind
	ID     int
	Suit   cards.Suit
	Player cards.Player
}

// NewFoundation builds the tag for a Foundation pile.
func NewFoundation(id int, suit cards.Suit) PileKind {
	return PileKind{Kind: Foundation, ID: id, Suit: suit}
}

// NewTableau builds the tag for a Tableau pile.
func NewTableau(id int) PileKind {
	return PileKind{Kind: Tableau, ID: id}
}

// NewStock builds the tag for a player's Stock pile.
func NewStock(p cards.Player) PileKind {
	return PileKind{Kind: Stock, Player: p}
}

// NewWaste builds the tag for a player's Waste pile.
func NewWaste(p cards.Player) PileKind {
	return PileKind{Kind: Waste, Player: p}
}

// NewCrape builds the tag for a player's Crape pile.
func NewCrape(p cards.Player) PileKind {
	return PileKind{Kind: Crape, Player: p}
}

// SameKind reports whether k and o are the same variant for the
// purpose of no-undo detection: Foundation/Tableau slots compare
// equal regardless of ID (symmetric slots count as the same kind),
// while Stock/Waste/Crape additionally require the same Player.
func (k PileKind) SameKind(o PileKind) bool {
	if k.Kind != o.Kind {
		return false
	}
	switch k.Kind {
	case Foundation, Tableau:
		return true
	default:
		return k.Player == o.Player
	}
}

// Pile is an ordered sequence of cards, bottom to top, tagged with an
// immutable Kind.
type Pile struct {
	Cards []cards.Card
	Kind  PileKind
}

// New builds an empty pile of the given kind.
func New(kind PileKind) *Pile {
	return &Pile{Kind: kind}
}

// IsEmpty reports whether the pile has no cards.
func (p *Pile) IsEmpty() bool { return len(p.Cards) == 0 }

// Size returns the number of cards in the pile.
func (p *Pile) Size() int { return len(p.Cards) }

// Top returns the top card and true, or a zero Card and false if the
// pile is empty.
func (p *Pile) Top() (cards.Card, bool) {
	if p.IsEmpty() {
		return cards.Card{}, false
	}
	return p.Cards[len(p.Cards)-1], true
}

// Push appends a card to the top of the pile.
func (p *Pile) Push(c cards.Card) {
	p.Cards = append(p.Cards, c)
}

// Pop removes and returns the top card. It panics if the pile is
// empty: popping an empty pile is a programmer error (spec §4.7).
func (p *Pile) Pop() cards.Card {
	if p.IsEmpty() {
		panic("piles: Pop of empty pile")
	}
	c := p.Cards[len(p.Cards)-1]
	p.Cards = p.Cards[:len(p.Cards)-1]
	return c
}

// FlipTopUp marks the top card face-up. It panics if the pile is
// empty.
func (p *Pile) FlipTopUp() {
	if p.IsEmpty() {
		panic("piles: FlipTopUp of empty pile")
	}
	p.Cards[len(p.Cards)-1].FaceUp = true
}

// Clone returns a deep copy of the pile.
func (p *Pile) Clone() *Pile {
	c := &Pile{Kind: p.Kind, Cards: make([]cards.Card, len(p.Cards))}
	copy(c.Cards, p.Cards)
	return c
}

// IsFull reports whether a Foundation pile holds all 13 ranks. It is
// meaningless for other kinds and always returns false for them.
func (p *Pile) IsFull() bool {
	return p.Kind.Kind == Foundation && len(p.Cards) == cards.NumRanks
}

// CanAdd reports whether card may be pushed onto this pile, given the
// PileKind it is coming from and the player attempting the move
// (spec §4.1).
func (p *Pile) CanAdd(card cards.Card, origin PileKind, actor cards.Player) bool {
	switch p.Kind.Kind {
	case Foundation:
		return card.Suit == p.Kind.Suit && int(card.Rank) == len(p.Cards)+1

	case Tableau:
		top, ok := p.Top()
		if !ok {
			return true
		}
		return card.Rank == top.Rank.Below() && !card.SameColor(top)

	case Stock:
		return false

	case Waste:
		if actor == p.Kind.Player {
			return origin.Kind == Stock && origin.Player == actor
		}
		top, ok := p.Top()
		if !ok {
			return false
		}
		return card.Suit == top.Suit && card.Rank.Adjacent(top.Rank)

	case Crape:
		if actor == p.Kind.Player {
			return false
		}
		top, ok := p.Top()
		if !ok || !top.FaceUp {
			return false
		}
		return card.Suit == top.Suit && card.Rank.Adjacent(top.Rank)
	}
	return false
}

// CanPop reports whether actor may pop the top card from this pile.
func (p *Pile) CanPop(actor cards.Player) bool {
	switch p.Kind.Kind {
	case Foundation, Waste:
		return false
	case Tableau:
		return true
	case Stock, Crape:
		return actor == p.Kind.Player
	}
	return false
}

// CanFlipUp reports whether actor may flip this pile's top card face
// up: the pile must belong to actor, be non-empty, and its top card
// must currently be face-down.
func (p *Pile) CanFlipUp(actor cards.Player) bool {
	if p.Kind.Kind != Stock && p.Kind.Kind != Crape {
		return false
	}
	if p.Kind.Player != actor {
		return false
	}
	top, ok := p.Top()
	if !ok {
		return false
	}
	return !top.FaceUp
}
