// Package heuristic computes the fixed-length score vector the
// search engine maximises to pick the best terminal board of a turn.
package heuristic

import (
	"math"
	"sort"

	"github.com/nodd/crapette/internal/board"
	"github.com/nodd/crapette/internal/cards"
)

// NumSlots is the fixed length of a Score vector (spec §3 Score).
const NumSlots = 12

// Score is a fixed-length integer vector compared lexicographically:
// slot 0 is the sum of foundation sizes, slot 1 the negated active
// player's crape size, slot 2 the negated active player's stock
// size, slot 3 the count of empty tableau piles, and slots 4-11 the
// eight tableau pile sizes sorted descending.
type Score [NumSlots]int

// Worst is the score no real board can fall below: every slot at the
// minimum representable int.
var Worst = func() Score {
	var s Score
	for i := range s {
		s[i] = math.MinInt
	}
	return s
}()

// Compare returns a negative number, zero, or a positive number as s
// is less than, equal to, or greater than o, comparing slot by slot.
func (s Score) Compare(o Score) int {
	for i := range s {
		if s[i] != o[i] {
			if s[i] < o[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Less reports whether s is strictly worse than o.
func (s Score) Less(o Score) bool { return s.Compare(o) < 0 }

// Greater reports whether s is strictly better than o.
func (s Score) Greater(o Score) bool { return s.Compare(o) > 0 }

// Compute builds the score vector for b from active's point of view
// (spec §3 Score).
func Compute(b *board.Board, active cards.Player) Score {
	var s Score

	foundationTotal := 0
	for _, f := range b.Foundations {
		foundationTotal += f.Size()
	}
	s[0] = foundationTotal

	s[1] = -b.Crapes[active].Size()
	s[2] = -b.Stocks[active].Size()

	empty := 0
	sizes := make([]int, board.NumTableau)
	for i, t := range b.Tableaus {
		sizes[i] = t.Size()
		if t.IsEmpty() {
			empty++
		}
	}
	s[3] = empty

	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	for i := 0; i < board.NumTableau; i++ {
		s[4+i] = sizes[i]
	}

	return s
}
