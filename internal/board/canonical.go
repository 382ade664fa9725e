package board

import (
	"bytes"
	"sort"

	"github.com/nodd/crapette/internal/piles"
)

// comparePile orders two piles by (size, then cards bottom-to-top),
// comparing cards by (rank, then suit) only — face-up state and
// owner never participate in canonical comparison (spec §3/§4.2):
// Tableau and Foundation piles only ever hold face-up cards in a
// reachable position, so the flag carries no distinguishing
// information for board identity.
func comparePile(a, b *piles.Pile) int {
	if len(a.Cards) != len(b.Cards) {
		if len(a.Cards) < len(b.Cards) {
			return -1
		}
		return 1
	}
	for i := range a.Cards {
		ca, cb := a.Cards[i], b.Cards[i]
		if ca.Equal(cb) {
			continue
		}
		if ca.Less(cb) {
			return -1
		}
		return 1
	}
	return 0
}

// sortedPiles returns a copy of piles sorted by comparePile, leaving
// the originals untouched.
func sortedPiles(in []*piles.Pile) []*piles.Pile {
	out := make([]*piles.Pile, len(in))
	copy(out, in)
	sort.Slice(out, func(i, j int) bool { return comparePile(out[i], out[j]) < 0 })
	return out
}

// Equal reports whether b and o are the same canonical board: their
// Stocks, Wastes and Crapes match pairwise by player, and their
// Tableau and Foundation piles match as multisets (spec §3/§4.2).
func (b *Board) Equal(o *Board) bool {
	return b.Compare(o) == 0
}

// Less is the canonical total order over boards: Crape[0], Crape[1],
// Waste[0], Waste[1], Stock[0], Stock[1], sorted(Tableau), then
// sorted(Foundation) (spec §4.2).
func (b *Board) Less(o *Board) bool {
	return b.Compare(o) < 0
}

// Compare implements the canonical total order, returning a negative
// number, zero, or a positive number as b is less than, equal to, or
// greater than o.
func (b *Board) Compare(o *Board) int {
	for i := 0; i < 2; i++ {
		if c := comparePile(b.Crapes[i], o.Crapes[i]); c != 0 {
			return c
		}
	}
	for i := 0; i < 2; i++ {
		if c := comparePile(b.Wastes[i], o.Wastes[i]); c != 0 {
			return c
		}
	}
	for i := 0; i < 2; i++ {
		if c := comparePile(b.Stocks[i], o.Stocks[i]); c != 0 {
			return c
		}
	}

	bt := sortedPiles(b.Tableaus[:])
	ot := sortedPiles(o.Tableaus[:])
	for i := range bt {
		if c := comparePile(bt[i], ot[i]); c != 0 {
			return c
		}
	}

	bf := sortedPiles(b.Foundations[:])
	of := sortedPiles(o.Foundations[:])
	for i := range bf {
		if c := comparePile(bf[i], of[i]); c != 0 {
			return c
		}
	}
	return 0
}

// encodePile appends a length-prefixed run of card ids to buf:
// one byte for the pile size followed by one byte per card, card id
// = (rank & 0x0F) | ((suit & 0x03) << 4) (spec §4.2).
func encodePile(buf *bytes.Buffer, p *piles.Pile) {
	buf.WriteByte(byte(len(p.Cards)))
	for _, c := range p.Cards {
		buf.WriteByte(c.ID())
	}
}

// Encode returns the compact canonical byte encoding of the board:
// stocks, wastes, crapes in fixed player order, then sorted tableau,
// then sorted foundation. It is stable under canonical equality: two
// boards that are Equal always Encode to identical bytes.
func (b *Board) Encode() []byte {
	var buf bytes.Buffer
	for i := 0; i < 2; i++ {
		encodePile(&buf, b.Stocks[i])
	}
	for i := 0; i < 2; i++ {
		encodePile(&buf, b.Wastes[i])
	}
	for i := 0; i < 2; i++ {
		encodePile(&buf, b.Crapes[i])
	}
	for _, p := range sortedPiles(b.Tableaus[:]) {
		encodePile(&buf, p)
	}
	for _, p := range sortedPiles(b.Foundations[:]) {
		encodePile(&buf, p)
	}
	return buf.Bytes()
}

// Key returns a string suitable for use as a map key that identifies
// the board's canonical equivalence class: two boards are canonically
// Equal iff their Key()s are identical.
func (b *Board) Key() string {
	return string(b.Encode())
}
