package evaluator

import (
	"fmt"
	"strings"

	"github.com/lox/pokerbasics/internal/deck"
)

// Hand is the best five-card hand found in a set of cards.
type Hand struct {
	Category Category
	Strength int
	Cards    [5]deck.Card // The 5 cards that make up the hand
}

// Name returns the category name of the hand.
func (h Hand) Name() string {
	return h.Category.String()
}

// String returns a string representation of the hand
func (h Hand) String() string {
	cardStrs := make([]string, 0, len(h.Cards))
	for _, card := range h.Cards {
		cardStrs = append(cardStrs, card.String())
	}
	return fmt.Sprintf("%s [%s]", h.Category, strings.Join(cardStrs, " "))
}

// Compare returns -1 if h1 is weaker than h2, 0 if they tie, 1 if h1 is stronger.
func (h1 Hand) Compare(h2 Hand) int {
	switch {
	case h1.Strength < h2.Strength:
		return -1
	case h1.Strength > h2.Strength:
		return 1
	}
	return 0
}

// IsStrongerThan returns true if this hand beats the other hand
func (h1 Hand) IsStrongerThan(h2 Hand) bool {
	return h1.Compare(h2) > 0
}

// Contains reports whether card is one of the five cards of the hand.
func (h Hand) Contains(card deck.Card) bool {
	for _, c := range h.Cards {
		if c == card {
			return true
		}
	}
	return false
}

// Describe returns a short description naming the ranks that make the hand,
// e.g. "Full House, Queens over Nines" or "Straight, Five high".
func (h Hand) Describe() string {
	groups := groupRanks(h.Cards)
	top := groups[0].rank

	switch h.Category {
	case RoyalFlush:
		return h.Name()
	case StraightFlush, Straight:
		return fmt.Sprintf("%s, %s high", h.Name(), rankName(straightHigh(h.Cards)))
	case FourOfAKind, ThreeOfAKind, OnePair:
		return fmt.Sprintf("%s, %s", h.Name(), pluralRankName(top))
	case FullHouse:
		return fmt.Sprintf("%s, %s over %s", h.Name(), pluralRankName(top), pluralRankName(groups[1].rank))
	case TwoPair:
		return fmt.Sprintf("%s, %s and %s", h.Name(), pluralRankName(top), pluralRankName(groups[1].rank))
	default:
		return fmt.Sprintf("%s, %s high", h.Name(), rankName(top))
	}
}

func straightHigh(cards [5]deck.Card) deck.Rank {
	high, _ := findStraight(uniqueDesc(sortedValues(cards)))
	return deck.Rank(high)
}

var rankNames = map[deck.Rank]string{
	deck.Two: "Two", deck.Three: "Three", deck.Four: "Four", deck.Five: "Five",
	deck.Six: "Six", deck.Seven: "Seven", deck.Eight: "Eight", deck.Nine: "Nine",
	deck.Ten: "Ten", deck.Jack: "Jack", deck.Queen: "Queen", deck.King: "King",
	deck.Ace: "Ace",
}

func rankName(r deck.Rank) string {
	return rankNames[r]
}

func pluralRankName(r deck.Rank) string {
	if r == deck.Six {
		return "Sixes"
	}
	return rankNames[r] + "s"
}
