// Package deal builds an initial Crapette board: two standard 52-card
// decks, one per player, dealt into Crape, Tableau, and Stock piles.
// It sits outside the search core (spec §1 places RNG and
// deck-shuffling with the host), grounded on the teacher's
// solitaire.NewGame/deal/makeDeck and on the original engine's
// new_game/fill_crape/fill_tableau/fill_stock sequence.
package deal

import (
	"math/rand/v2"

	"github.com/nodd/crapette/internal/board"
	"github.com/nodd/crapette/internal/cards"
)

// CrapeSize is the number of cards dealt face-down (save the top) to
// each player's Crape pile.
const CrapeSize = 13

// TableauPerPlayer is the number of tableau columns dealt one face-up
// card each at the start of the game.
const TableauPerPlayer = board.NumTableau / 2

// New deals a fresh board. If rng is nil, the default global source
// is used, matching the teacher's nil-shuffle-means-default-Fisher-
// Yates convention in solitaire.NewGame.
func New(rng *rand.Rand) *board.Board {
	b := board.New()
	for p := cards.Player(0); p < 2; p++ {
		deck := newDeck(p)
		shuffle(deck, rng)

		dealCrape(b, p, deck[:CrapeSize])
		dealTableau(b, p, deck[CrapeSize:CrapeSize+TableauPerPlayer])
		dealStock(b, p, deck[CrapeSize+TableauPerPlayer:])
	}
	return b
}

// NewSeeded deals a fresh board using a PCG source seeded
// deterministically, for reproducible demos and tests.
func NewSeeded(seed1, seed2 uint64) *board.Board {
	return New(rand.New(rand.NewPCG(seed1, seed2)))
}

// newDeck builds a standard 52-card deck owned by player, all face
// down.
func newDeck(owner cards.Player) []cards.Card {
	deck := make([]cards.Card, 0, cards.NumRanks*cards.NumSuits)
	for _, s := range cards.Suits() {
		for r := cards.Ace; r <= cards.King; r++ {
			deck = append(deck, cards.Card{Rank: r, Suit: s, Owner: owner})
		}
	}
	return deck
}

// shuffle shuffles deck in place. A nil rng falls back to the
// package-level source, mirroring solitaire.Game.deal.
func shuffle(deck []cards.Card, rng *rand.Rand) {
	swap := func(i, j int) { deck[i], deck[j] = deck[j], deck[i] }
	if rng != nil {
		rng.Shuffle(len(deck), swap)
		return
	}
	rand.Shuffle(len(deck), swap)
}

// dealCrape pushes cs onto player's Crape pile face-down, except the
// last (top) card which is dealt face-up.
func dealCrape(b *board.Board, p cards.Player, cs []cards.Card) {
	for i, c := range cs {
		c.FaceUp = i == len(cs)-1
		b.Crapes[p].Push(c)
	}
}

// dealTableau deals one face-up card per tableau column belonging to
// player: columns 0..3 for PlayerOne, 4..7 for PlayerTwo.
func dealTableau(b *board.Board, p cards.Player, cs []cards.Card) {
	base := int(p) * TableauPerPlayer
	for i, c := range cs {
		c.FaceUp = true
		b.Tableaus[base+i].Push(c)
	}
}

// dealStock pushes the remaining cards face-down onto player's Stock.
func dealStock(b *board.Board, p cards.Player, cs []cards.Card) {
	for _, c := range cs {
		c.FaceUp = false
		b.Stocks[p].Push(c)
	}
}
