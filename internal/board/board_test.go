package board

import (
	"testing"

	"github.com/nodd/crapette/internal/cards"
	"github.com/nodd/crapette/internal/piles"
)

func up(r cards.Rank, s cards.Suit, owner cards.Player) cards.Card {
	return cards.Card{Rank: r, Suit: s, Owner: owner, FaceUp: true}
}

func TestNewBoardFoundationSuits(t *testing.T) {
	b := New()
	wantPairs := [][2]cards.Suit{
		{cards.Diamond, cards.Diamond},
		{cards.Club, cards.Club},
		{cards.Heart, cards.Heart},
		{cards.Spade, cards.Spade},
	}
	for i := 0; i < 4; i++ {
		got := [2]cards.Suit{b.Foundations[i].Kind.Suit, b.Foundations[MirrorFoundation(i)].Kind.Suit}
		if got != wantPairs[i] {
			t.Errorf("foundation pair %d = %v, want %v", i, got, wantPairs[i])
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := New()
	b.Tableaus[0].Push(up(cards.Five, cards.Diamond, cards.PlayerOne))
	clone := b.Clone()
	clone.Tableaus[0].Push(up(cards.Four, cards.Club, cards.PlayerOne))

	if b.Tableaus[0].Size() != 1 {
		t.Errorf("mutating the clone must not affect the original")
	}
	if clone.Tableaus[0].Size() != 2 {
		t.Errorf("clone should have received the new card")
	}
}

func TestApplyMovePopsAndPushes(t *testing.T) {
	b := New()
	b.Tableaus[1].Push(up(cards.Six, cards.Club, cards.PlayerOne))
	b.Tableaus[0].Push(up(cards.Five, cards.Diamond, cards.PlayerOne))

	a := NewMove(up(cards.Five, cards.Diamond, cards.PlayerOne), piles.NewTableau(0), piles.NewTableau(1))
	b.Apply(a)

	if !b.Tableaus[0].IsEmpty() {
		t.Errorf("origin tableau should be empty after the move")
	}
	if b.Tableaus[1].Size() != 2 {
		t.Errorf("destination tableau should hold both cards")
	}
}

func TestApplyMoveFromWastePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("moving from Waste must panic as an internal invariant violation")
		}
	}()
	b := New()
	b.Wastes[0].Push(up(cards.Five, cards.Diamond, cards.PlayerOne))
	b.Apply(NewMove(up(cards.Five, cards.Diamond, cards.PlayerOne), piles.NewWaste(cards.PlayerOne), piles.NewTableau(0)))
}

func TestApplyMoveToStockPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("moving to Stock must panic as an internal invariant violation")
		}
	}()
	b := New()
	b.Tableaus[0].Push(up(cards.Five, cards.Diamond, cards.PlayerOne))
	b.Apply(NewMove(up(cards.Five, cards.Diamond, cards.PlayerOne), piles.NewTableau(0), piles.NewStock(cards.PlayerOne)))
}

func TestApplyFlipWaste(t *testing.T) {
	b := New()
	b.Wastes[0].Push(up(cards.Five, cards.Diamond, cards.PlayerOne))
	b.Wastes[0].Push(up(cards.Four, cards.Club, cards.PlayerOne))

	b.Apply(NewFlipWaste(cards.PlayerOne))

	if !b.Wastes[0].IsEmpty() {
		t.Errorf("waste should be empty after FlipWaste")
	}
	if b.Stocks[0].Size() != 2 {
		t.Fatalf("stock should hold both recycled cards")
	}
	top, _ := b.Stocks[0].Top()
	if top.FaceUp {
		t.Errorf("recycled cards must be face-down")
	}
	// The top waste card (Four) is popped and pushed first, so the
	// originally-bottom waste card (Five) ends up on top of stock.
	if top.Rank != cards.Five {
		t.Errorf("recycling should preserve order as on pop: top = %v, want Five", top.Rank)
	}
}

func TestCanonicalEqualityIgnoresTableauSlotPermutation(t *testing.T) {
	b1 := New()
	b1.Tableaus[0].Push(up(cards.Five, cards.Diamond, cards.PlayerOne))
	b1.Tableaus[1].Push(up(cards.Six, cards.Club, cards.PlayerOne))

	b2 := New()
	b2.Tableaus[0].Push(up(cards.Six, cards.Club, cards.PlayerOne))
	b2.Tableaus[1].Push(up(cards.Five, cards.Diamond, cards.PlayerOne))

	if !b1.Equal(b2) {
		t.Errorf("boards differing only by a tableau slot permutation must be canonically equal")
	}
	if b1.Key() != b2.Key() {
		t.Errorf("canonically equal boards must encode to the same key")
	}
}

func TestCanonicalEqualityIgnoresFoundationSlotPermutation(t *testing.T) {
	b1 := New()
	b1.Foundations[0].Push(up(cards.Ace, cards.Diamond, cards.PlayerOne))

	b2 := New()
	b2.Foundations[7].Push(up(cards.Ace, cards.Diamond, cards.PlayerOne))

	if !b1.Equal(b2) {
		t.Errorf("boards differing only by a mirror foundation slot must be canonically equal")
	}
}

func TestEncodeIdempotent(t *testing.T) {
	b := New()
	b.Tableaus[2].Push(up(cards.King, cards.Spade, cards.PlayerTwo))
	first := b.Encode()
	second := b.Encode()
	if string(first) != string(second) {
		t.Errorf("Encode must be stable across repeated calls")
	}
}

func TestValidateRejectsWrongSuitFoundation(t *testing.T) {
	b := New()
	c := up(cards.Ace, cards.Club, cards.PlayerOne)
	b.Foundations[0].Push(c) // slot 0 is Diamond
	if err := Validate(b); err == nil {
		t.Errorf("validate should reject a wrong-suit card on a foundation")
	}
}

func TestValidateAcceptsFreshBoard(t *testing.T) {
	if err := Validate(New()); err != nil {
		t.Errorf("an empty board should validate cleanly: %v", err)
	}
}
