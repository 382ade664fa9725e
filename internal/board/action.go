package board

import (
	"fmt"

	"github.com/nodd/crapette/internal/cards"
	"github.com/nodd/crapette/internal/piles"
)

// ActionKind discriminates the three Action variants.
type ActionKind int

const (
	ActionMove ActionKind = iota
	ActionFlip
	ActionFlipWaste
)

// Action is the sum type of board mutations a turn can contain: Move
// relocates a card between piles, Flip turns a pile's top card face
// up, and FlipWaste recycles a player's waste back onto their stock.
type Action struct {
	Kind ActionKind

	// Move fields.
	Card        cards.Card
	Origin      piles.PileKind
	Destination piles.PileKind

	// Flip fields.
	Pile piles.PileKind

	// FlipWaste fields.
	Player cards.Player
}

// NewMove builds a Move action.
func NewMove(card cards.Card, origin, destination piles.PileKind) Action {
	return Action{Kind: ActionMove, Card: card, Origin: origin, Destination: destination}
}

// NewFlip builds a Flip action.
func NewFlip(pile piles.PileKind) Action {
	return Action{Kind: ActionFlip, Pile: pile}
}

// NewFlipWaste builds a FlipWaste action for the given player.
func NewFlipWaste(p cards.Player) Action {
	return Action{Kind: ActionFlipWaste, Player: p}
}

func (a Action) String() string {
	switch a.Kind {
	case ActionMove:
		return fmt.Sprintf("Move %s %s->%s", a.Card.Label(), a.Origin.Kind, a.Destination.Kind)
	case ActionFlip:
		return fmt.Sprintf("Flip %s", a.Pile.Kind)
	case ActionFlipWaste:
		return fmt.Sprintf("FlipWaste(%s)", a.Player)
	}
	return "Action(?)"
}
