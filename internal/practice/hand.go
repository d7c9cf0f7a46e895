package practice

import (
	"github.com/lox/pokerbasics/internal/deck"
	"github.com/lox/pokerbasics/internal/evaluator"
	"github.com/lox/pokerbasics/internal/scenario"
)

// Hand is one practice hand being revealed street by street. The visible
// community cards are always a prefix of the deal's community cards.
type Hand struct {
	deal  scenario.Deal
	stage Stage
}

// NewHand starts revealing deal from the preflop.
func NewHand(deal scenario.Deal) *Hand {
	return &Hand{deal: deal}
}

// Deal returns the full deal, including cards not yet revealed.
func (h *Hand) Deal() scenario.Deal {
	return h.deal
}

// Stage returns the current stage.
func (h *Hand) Stage() Stage {
	return h.stage
}

// Advance reveals the next street. It returns false when the river is
// already showing.
func (h *Hand) Advance() bool {
	next, ok := h.stage.Next()
	if !ok {
		return false
	}
	h.stage = next
	return true
}

// Done reports whether every card is revealed.
func (h *Hand) Done() bool {
	return h.stage == River
}

// Hole returns the hole cards.
func (h *Hand) Hole() []deck.Card {
	return h.deal.Hole[:]
}

// Community returns the community cards revealed so far.
func (h *Hand) Community() []deck.Card {
	return h.deal.Community[:h.stage.VisibleCommunity()]
}

// Visible returns the hole cards and the revealed community cards.
func (h *Hand) Visible() []deck.Card {
	return h.deal.Visible(h.stage.VisibleCommunity())
}

// Evaluate scores the visible cards. ok is false before the flop.
func (h *Hand) Evaluate() (evaluator.Hand, bool) {
	return evaluator.Evaluate(h.Visible())
}

// WinningCards returns the five cards making the final hand. It is empty
// until the river is revealed.
func (h *Hand) WinningCards() deck.CardSet {
	if !h.Done() {
		return 0
	}
	best, ok := h.Evaluate()
	if !ok {
		return 0
	}
	return deck.NewCardSet(best.Cards[:]...)
}

// Draws lists the straight and flush draws of the visible cards. There are
// none before the flop or once the river is out.
func (h *Hand) Draws() evaluator.Draws {
	return evaluator.DetectDraws(h.Hole(), h.Community())
}

// StartingHand names the hole cards as a chart key (e.g. "AKs") with their
// preflop percentile, 1.0 being pocket aces.
func (h *Hand) StartingHand() (string, float64) {
	return deck.StartingHandKey(h.deal.Hole), deck.StartingHandPercentile(h.deal.Hole)
}
