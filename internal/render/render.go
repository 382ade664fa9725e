// Package render draws a Board and a computed turn's Action list to
// the terminal, in the teacher's lipgloss-styled card-bracket idiom
// (see internal/solitaire's Model.View/cardText/cardStyle).
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nodd/crapette/internal/board"
	"github.com/nodd/crapette/internal/cards"
	"github.com/nodd/crapette/internal/piles"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#DCFFDC"))

	redCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000"))

	blackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	faceDownStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	activeStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#333333")).
			Foreground(lipgloss.Color("15"))

	foundationFullStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#00E632"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// cardText formats a card like "[A♠]" or "[10♥]".
func cardText(c cards.Card) string {
	return "[" + c.Label() + "]"
}

func cardStyle(c cards.Card) lipgloss.Style {
	if c.Suit.Color() == cards.Red {
		return redCardStyle
	}
	return blackCardStyle
}

// pileGlyph renders a single pile as its top card, a face-down glyph,
// or an empty marker.
func pileGlyph(p *piles.Pile) string {
	top, ok := p.Top()
	if !ok {
		return emptyStyle.Render("[  ]")
	}
	if !top.FaceUp {
		return faceDownStyle.Render("[##]")
	}
	style := cardStyle(top)
	if p.Kind.Kind == piles.Foundation && p.IsFull() {
		style = foundationFullStyle
	}
	return style.Render(cardText(top))
}

// Board renders the full board: each player's Crape/Stock/Waste row,
// the Foundation row, and the Tableau row, with the active player's
// row marked by a highlighted ">>".
func Board(b *board.Board, active cards.Player) string {
	var lines []string
	lines = append(lines, titleStyle.Render("C R A P E T T E"))

	for _, p := range []cards.Player{cards.PlayerOne, cards.PlayerTwo} {
		marker := "  "
		if p == active {
			marker = activeStyle.Render(">>")
		}
		line := fmt.Sprintf("%s %s  Crape %s  Stock %s (%d)  Waste %s (%d)",
			marker, labelStyle.Render(p.String()),
			pileGlyph(b.Crapes[p]),
			pileGlyph(b.Stocks[p]), b.Stocks[p].Size(),
			pileGlyph(b.Wastes[p]), b.Wastes[p].Size())
		lines = append(lines, line)
	}

	var foundations []string
	for i := 0; i < board.NumFoundation; i++ {
		foundations = append(foundations, pileGlyph(b.Foundations[i]))
	}
	lines = append(lines, labelStyle.Render("Foundations ")+strings.Join(foundations, " "))

	maxLen := 0
	for i := 0; i < board.NumTableau; i++ {
		if b.Tableaus[i].Size() > maxLen {
			maxLen = b.Tableaus[i].Size()
		}
	}
	lines = append(lines, labelStyle.Render("Tableau"))
	for row := 0; row < maxLen || row == 0; row++ {
		var cols []string
		for i := 0; i < board.NumTableau; i++ {
			pile := b.Tableaus[i]
			if row >= pile.Size() {
				if row == 0 {
					cols = append(cols, emptyStyle.Render("[  ]"))
				} else {
					cols = append(cols, "    ")
				}
				continue
			}
			c := pile.Cards[row]
			switch {
			case !c.FaceUp:
				cols = append(cols, faceDownStyle.Render("[##]"))
			default:
				cols = append(cols, cardStyle(c).Render(cardText(c)))
			}
		}
		lines = append(lines, strings.Join(cols, " "))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Action renders a single Action as a human-readable line.
func Action(a board.Action) string {
	switch a.Kind {
	case board.ActionMove:
		return fmt.Sprintf("Move %s: %s -> %s", cardText(a.Card), pileLabel(a.Origin), pileLabel(a.Destination))
	case board.ActionFlip:
		return fmt.Sprintf("Flip %s", pileLabel(a.Pile))
	case board.ActionFlipWaste:
		return fmt.Sprintf("Recycle waste to stock (%s)", a.Player)
	}
	return a.String()
}

// Turn renders a numbered list of Actions, the output of a computed
// turn, one per line.
func Turn(moves []board.Action) string {
	var lines []string
	for i, a := range moves {
		lines = append(lines, fmt.Sprintf("%2d. %s", i+1, Action(a)))
	}
	return strings.Join(lines, "\n")
}

func pileLabel(k piles.PileKind) string {
	switch k.Kind {
	case piles.Foundation:
		return fmt.Sprintf("Foundation(%d,%s)", k.ID, k.Suit)
	case piles.Tableau:
		return fmt.Sprintf("Tableau(%d)", k.ID)
	default:
		return fmt.Sprintf("%s(%s)", k.Kind, k.Player)
	}
}
