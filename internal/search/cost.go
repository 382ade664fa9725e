package search

import (
	"fmt"

	"github.com/nodd/crapette/internal/piles"
)

// MoveCost is the per-move (destination, origin) cost pair recorded
// for every Move taken so far (spec §3 Cost).
type MoveCost struct {
	Dest int
	Orig int
}

// Cost orders plans: fewer moves wins, and among equal-length plans,
// the sequence of per-move costs is compared lexicographically with
// earlier cheaper moves winning (spec §3 Cost).
type Cost struct {
	Moves int
	Per   []MoveCost
}

// destCost maps a destination pile kind to its move cost:
// Foundation=0, Crape=1, Waste=2, Tableau=3.
func destCost(k piles.Kind) int {
	switch k {
	case piles.Foundation:
		return 0
	case piles.Crape:
		return 1
	case piles.Waste:
		return 2
	case piles.Tableau:
		return 3
	}
	panic(fmt.Sprintf("search: %v is not a legal move destination", k))
}

// originCost maps an origin pile kind to its move cost: Tableau=0,
// Crape=1, Stock=2.
func originCost(k piles.Kind) int {
	switch k {
	case piles.Tableau:
		return 0
	case piles.Crape:
		return 1
	case piles.Stock:
		return 2
	}
	panic(fmt.Sprintf("search: %v is not a legal move origin", k))
}

// moveCostFor computes the (dest, orig) cost pair for a move from
// origin to destination. A Move with destination=Stock or origin in
// {Waste, Foundation} is a programmer error (spec §3 Cost / §4.7) and
// panics via destCost/originCost.
func moveCostFor(origin, destination piles.PileKind) MoveCost {
	return MoveCost{Dest: destCost(destination.Kind), Orig: originCost(origin.Kind)}
}

// extend returns the cost of appending one more move with the given
// (dest, orig) pair to c.
func (c Cost) extend(mc MoveCost) Cost {
	per := make([]MoveCost, len(c.Per)+1)
	copy(per, c.Per)
	per[len(c.Per)] = mc
	return Cost{Moves: c.Moves + 1, Per: per}
}

// Compare returns a negative number, zero, or a positive number as c
// is cheaper than, equal to, or more expensive than o.
func (c Cost) Compare(o Cost) int {
	if c.Moves != o.Moves {
		if c.Moves < o.Moves {
			return -1
		}
		return 1
	}
	for i := range c.Per {
		if c.Per[i] == o.Per[i] {
			continue
		}
		if c.Per[i].Dest != o.Per[i].Dest {
			if c.Per[i].Dest < o.Per[i].Dest {
				return -1
			}
			return 1
		}
		if c.Per[i].Orig < o.Per[i].Orig {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether c is strictly cheaper than o.
func (c Cost) Less(o Cost) bool { return c.Compare(o) < 0 }
