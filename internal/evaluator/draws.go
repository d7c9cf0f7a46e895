package evaluator

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/lox/pokerbasics/internal/deck"
)

// DrawType is a way a hand can still improve to a straight or a flush.
type DrawType int

const (
	FlushDraw DrawType = iota
	OpenEndedStraightDraw
	DoubleGutshot
	Gutshot
)

func (dt DrawType) String() string {
	switch dt {
	case FlushDraw:
		return "flush draw"
	case OpenEndedStraightDraw:
		return "open-ended straight draw"
	case DoubleGutshot:
		return "double gutshot"
	case Gutshot:
		return "gutshot"
	default:
		return "unknown"
	}
}

// Draws describes the draws of a hand and the unseen cards that complete them
type Draws struct {
	Types []DrawType
	Outs  deck.CardSet
}

// None reports whether the hand has no draw
func (d Draws) None() bool {
	return len(d.Types) == 0
}

// Has reports whether the hand has a draw of type dt
func (d Draws) Has(dt DrawType) bool {
	for _, t := range d.Types {
		if t == dt {
			return true
		}
	}
	return false
}

// String gives e.g. "flush draw, gutshot (12 outs)".
func (d Draws) String() string {
	if d.None() {
		return "no draw"
	}
	names := make([]string, len(d.Types))
	for i, t := range d.Types {
		names[i] = t.String()
	}
	return fmt.Sprintf("%s (%d outs)", strings.Join(names, ", "), d.Outs.Len())
}

// DetectDraws finds flush and straight draws that use at least one hole card.
// Draws only exist with cards to come, so a board that is not a flop or a
// turn has none. A draw to a category the hand already makes is ignored.
func DetectDraws(hole, board []deck.Card) Draws {
	if len(board) < 3 || len(board) >= 5 {
		return Draws{}
	}

	all := append(append([]deck.Card{}, hole...), board...)
	seen := deck.NewCardSet(all...)
	made, _ := Evaluate(all)

	var d Draws
	if made.Category < Flush {
		if outs, ok := flushOuts(hole, board, seen); ok {
			d.Types = append(d.Types, FlushDraw)
			d.Outs |= outs
		}
	}
	if made.Category < Straight {
		if kind, outs, ok := straightOuts(hole, all, seen); ok {
			d.Types = append(d.Types, kind)
			d.Outs |= outs
		}
	}
	return d
}

// flushOuts finds four cards of one suit, at least one of them in the hole.
func flushOuts(hole, board []deck.Card, seen deck.CardSet) (deck.CardSet, bool) {
	for _, suit := range deck.Suits {
		inHole, total := 0, 0
		for _, c := range hole {
			if c.Suit == suit {
				inHole++
			}
		}
		for _, c := range board {
			if c.Suit == suit {
				total++
			}
		}
		total += inHole

		if total == 4 && inHole > 0 {
			var outs deck.CardSet
			for rank := deck.Two; rank <= deck.Ace; rank++ {
				if card := deck.NewCard(suit, rank); !seen.Contains(card) {
					outs.Add(card)
				}
			}
			return outs, true
		}
	}
	return 0, false
}

// rankBits sets bit r for every rank value present, with the ace also on
// bit 1 so the wheel is an ordinary window.
func rankBits(cards []deck.Card) uint16 {
	var mask uint16
	for _, c := range cards {
		mask |= 1 << uint(c.Rank)
		if c.Rank == deck.Ace {
			mask |= 1 << 1
		}
	}
	return mask
}

// straightOuts collects every rank that completes a five-rank window holding
// four ranks already, counting only windows a hole card takes part in.
func straightOuts(hole, all []deck.Card, seen deck.CardSet) (DrawType, deck.CardSet, bool) {
	present := rankBits(all)
	holeRanks := rankBits(hole)

	var completing uint16
	for low := 1; low <= 10; low++ {
		window := uint16(0x1F) << uint(low)
		if holeRanks&window == 0 {
			continue
		}
		missing := window &^ present
		if bits.OnesCount16(missing) == 1 {
			completing |= missing
		}
	}
	// ace-low and ace-high are the same card
	if completing&(1<<1) != 0 {
		completing = completing&^(1<<1) | 1<<uint(deck.Ace)
	}
	if completing == 0 {
		return 0, 0, false
	}

	var outs deck.CardSet
	for rank := deck.Two; rank <= deck.Ace; rank++ {
		if completing&(1<<uint(rank)) == 0 {
			continue
		}
		for _, suit := range deck.Suits {
			if card := deck.NewCard(suit, rank); !seen.Contains(card) {
				outs.Add(card)
			}
		}
	}

	kind := Gutshot
	if bits.OnesCount16(completing) >= 2 {
		kind = DoubleGutshot
		if openEnded(present, completing) {
			kind = OpenEndedStraightDraw
		}
	}
	return kind, outs, true
}

// openEnded reports whether four consecutive ranks can be completed at
// either end.
func openEnded(present, completing uint16) bool {
	for low := 2; low <= 10; low++ {
		run := uint16(0xF) << uint(low)
		if present&run != run {
			continue
		}
		below := uint16(1) << uint(low-1)
		if low == 2 {
			below = 1 << uint(deck.Ace)
		}
		above := uint16(1) << uint(low+4)
		if completing&below != 0 && completing&above != 0 {
			return true
		}
	}
	return false
}

