// Package handbook holds the reference material shown next to practice
// hands: the hand ranking chart and general playing tips.
package handbook

import (
	"fmt"

	"github.com/lox/pokerbasics/internal/deck"
	"github.com/lox/pokerbasics/internal/evaluator"
)

// Entry describes one hand category on the ranking chart.
type Entry struct {
	Category    evaluator.Category
	Description string
	Example     []deck.Card
	Tip         string
}

// Rank returns the entry's chart position, 1 for the best hand.
func (e Entry) Rank() int {
	return e.Category.ChartRank()
}

// Name returns the category name.
func (e Entry) Name() string {
	return e.Category.String()
}

// Tip is a general piece of playing advice.
type Tip struct {
	Title       string
	Description string
}

var chart = []Entry{
	{evaluator.RoyalFlush, "A K Q J 10 same suit", deck.MustParseCards("A♠ K♠ Q♠ J♠ 10♠"), "The best possible hand. Extremely rare."},
	{evaluator.StraightFlush, "5 in a row, same suit", deck.MustParseCards("9♥ 8♥ 7♥ 6♥ 5♥"), "Five sequential cards of the same suit."},
	{evaluator.FourOfAKind, "4 of the same card", deck.MustParseCards("K♠ K♥ K♦ K♣ 7♠"), "Four cards of the same rank."},
	{evaluator.FullHouse, "3 of a kind + a pair", deck.MustParseCards("Q♠ Q♥ Q♦ 9♣ 9♠"), "Three of a kind plus a pair."},
	{evaluator.Flush, "5 cards same suit", deck.MustParseCards("A♦ J♦ 8♦ 6♦ 2♦"), "Any five cards of the same suit."},
	{evaluator.Straight, "5 in a row", deck.MustParseCards("10♠ 9♦ 8♣ 7♥ 6♠"), "Ace can be high (AKQJ10) or low (A2345)."},
	{evaluator.ThreeOfAKind, "3 of the same card", deck.MustParseCards("8♠ 8♥ 8♦ K♣ 4♠"), "Three cards of the same rank."},
	{evaluator.TwoPair, "2 different pairs", deck.MustParseCards("J♠ J♦ 5♥ 5♣ A♠"), "Two different pairs of cards."},
	{evaluator.OnePair, "2 of the same card", deck.MustParseCards("10♥ 10♦ A♠ 7♣ 3♦"), "Two cards of the same rank."},
	{evaluator.HighCard, "Nothing. Highest card wins.", deck.MustParseCards("A♠ Q♦ 9♣ 6♥ 2♠"), "When no one has a pair or better."},
}

var tips = []Tip{
	{"Position Matters", "Acting last lets you see what everyone does first. This is a big advantage."},
	{"Be Patient", "Good players fold most hands. Wait for strong starting cards."},
	{"Bet Strong Hands", "When you have a good hand, bet. Make opponents pay to see more cards."},
	{"Read the Board", "Look for possible flushes (3+ same suit) and straights (connected cards) on the table."},
	{"Kickers Matter", "If two players have the same pair, the highest other card (kicker) wins."},
}

// Chart returns the ranking chart, best hand first.
func Chart() []Entry {
	return append([]Entry(nil), chart...)
}

// Tips returns the quick tips.
func Tips() []Tip {
	return append([]Tip(nil), tips...)
}

// Lookup returns the chart entry for a category.
func Lookup(c evaluator.Category) (Entry, bool) {
	for _, e := range chart {
		if e.Category == c {
			return e, true
		}
	}
	return Entry{}, false
}

// Explain returns the sentence shown with a final hand, e.g.
// "3 of a kind + a pair. Three of a kind plus a pair."
func Explain(c evaluator.Category) string {
	e, ok := Lookup(c)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s. %s", e.Description, e.Tip)
}
