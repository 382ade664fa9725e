package search

import (
	"testing"

	"github.com/nodd/crapette/internal/piles"
)

func TestCostShorterPlanWins(t *testing.T) {
	short := Cost{Moves: 1, Per: []MoveCost{{Dest: 3, Orig: 2}}}
	long := Cost{Moves: 2, Per: []MoveCost{{Dest: 0, Orig: 0}, {Dest: 0, Orig: 0}}}
	if !short.Less(long) {
		t.Errorf("a one-move plan must be cheaper than a two-move plan regardless of per-move costs")
	}
}

func TestCostEarlierCheaperMoveWins(t *testing.T) {
	a := Cost{Moves: 2, Per: []MoveCost{{Dest: 0, Orig: 0}, {Dest: 3, Orig: 2}}}
	b := Cost{Moves: 2, Per: []MoveCost{{Dest: 1, Orig: 0}, {Dest: 0, Orig: 0}}}
	if !a.Less(b) {
		t.Errorf("a cheaper first move should win even if the second move is pricier")
	}
}

func TestMoveCostForMapping(t *testing.T) {
	mc := moveCostFor(piles.NewTableau(0), piles.NewFoundation(0, 0))
	if mc.Dest != 0 || mc.Orig != 0 {
		t.Errorf("Tableau->Foundation = %v, want {0,0}", mc)
	}
	mc = moveCostFor(piles.NewCrape(0), piles.NewWaste(1))
	if mc.Dest != 2 || mc.Orig != 1 {
		t.Errorf("Crape->Waste = %v, want {2,1}", mc)
	}
}

func TestMoveCostForPanicsOnIllegalDestination(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("a Stock destination must panic")
		}
	}()
	moveCostFor(piles.NewTableau(0), piles.NewStock(0))
}

func TestMoveCostForPanicsOnIllegalOrigin(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("a Waste origin must panic")
		}
	}()
	moveCostFor(piles.NewWaste(0), piles.NewTableau(0))
}
