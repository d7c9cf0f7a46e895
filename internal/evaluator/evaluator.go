package evaluator

import (
	"errors"
	"slices"

	"github.com/lox/pokerbasics/internal/deck"
)

// ErrTooFewCards is returned when fewer than five cards are evaluated.
var ErrTooFewCards = errors.New("at least 5 cards are required")

// Evaluate returns the best five-card hand in cards. ok is false when fewer
// than five cards are given, which callers treat as "no hand yet".
func Evaluate(cards []deck.Card) (hand Hand, ok bool) {
	hand, err := EvaluateBest(cards)
	return hand, err == nil
}

// EvaluateBest scores every five-card subset of cards and returns the
// strongest. Ties keep the first subset found.
func EvaluateBest(cards []deck.Card) (Hand, error) {
	if len(cards) < 5 {
		return Hand{}, ErrTooFewCards
	}

	var best Hand
	found := false
	forEachCombination(len(cards), func(idx [5]int) {
		var five [5]deck.Card
		for i, j := range idx {
			five[i] = cards[j]
		}
		category, strength := ScoreFive(five)
		if !found || strength > best.Strength {
			best = Hand{Category: category, Strength: strength, Cards: five}
			found = true
		}
	})

	return best, nil
}

// forEachCombination calls fn with every 5-element index combination of
// 0..n-1 in lexicographic order.
func forEachCombination(n int, fn func([5]int)) {
	idx := [5]int{0, 1, 2, 3, 4}
	for {
		fn(idx)

		i := 4
		for i >= 0 && idx[i] == i+n-5 {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < 5; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// ScoreFive classifies exactly five cards and returns their strength.
// Strengths of different categories never overlap, so comparing strengths
// orders any two hands.
func ScoreFive(cards [5]deck.Card) (Category, int) {
	values := sortedValues(cards)
	flush := isFlush(cards)
	groups := groupRanks(cards)
	high, straight := findStraight(uniqueDesc(values))

	switch {
	case flush && straight && high == int(deck.Ace):
		return RoyalFlush, MaxStrength
	case flush && straight:
		return StraightFlush, StraightFlush.Base() + high
	case groups[0].count == 4:
		return FourOfAKind, FourOfAKind.Base() + rv(groups[0])*100 + rv(groups[1])
	case groups[0].count == 3 && groups[1].count == 2:
		return FullHouse, FullHouse.Base() + rv(groups[0])*100 + rv(groups[1])
	case flush:
		return Flush, Flush.Base() + weighted(values)
	case straight:
		return Straight, Straight.Base() + high
	case groups[0].count == 3:
		return ThreeOfAKind, ThreeOfAKind.Base() + rv(groups[0])*10000 + rv(groups[1])*100 + rv(groups[2])
	case groups[0].count == 2 && groups[1].count == 2:
		// groups are ordered by rank within equal counts, so groups[0] is the higher pair
		return TwoPair, TwoPair.Base() + rv(groups[0])*10000 + rv(groups[1])*100 + rv(groups[2])
	case groups[0].count == 2:
		return OnePair, OnePair.Base() + rv(groups[0])*10000 + rv(groups[1])*100 + rv(groups[2])*10 + rv(groups[3])
	default:
		return HighCard, HighCard.Base() + weighted(values)
	}
}

type rankGroup struct {
	rank  deck.Rank
	count int
}

func rv(g rankGroup) int {
	return int(g.rank)
}

// groupRanks returns the distinct ranks ordered by count, then rank, both descending.
func groupRanks(cards [5]deck.Card) []rankGroup {
	var counts [deck.Ace + 1]int
	for _, card := range cards {
		counts[card.Rank]++
	}

	groups := make([]rankGroup, 0, 5)
	for rank := deck.Ace; rank >= deck.Two; rank-- {
		if counts[rank] > 0 {
			groups = append(groups, rankGroup{rank: rank, count: counts[rank]})
		}
	}
	slices.SortStableFunc(groups, func(a, b rankGroup) int {
		return b.count - a.count
	})
	return groups
}

func sortedValues(cards [5]deck.Card) [5]int {
	var values [5]int
	for i, card := range cards {
		values[i] = card.Value()
	}
	slices.SortFunc(values[:], func(a, b int) int { return b - a })
	return values
}

func uniqueDesc(values [5]int) []int {
	unique := make([]int, 0, 5)
	for _, v := range values {
		if len(unique) == 0 || unique[len(unique)-1] != v {
			unique = append(unique, v)
		}
	}
	return unique
}

func isFlush(cards [5]deck.Card) bool {
	for _, card := range cards[1:] {
		if card.Suit != cards[0].Suit {
			return false
		}
	}
	return true
}

// findStraight scans distinct values (descending) for five in a row. The
// wheel A-5-4-3-2 counts as a five-high straight; the ace plays low only there.
func findStraight(unique []int) (int, bool) {
	if len(unique) < 5 {
		return 0, false
	}
	for i := 0; i+4 < len(unique); i++ {
		if unique[i]-unique[i+4] == 4 {
			return unique[i], true
		}
	}
	if unique[0] == int(deck.Ace) && slices.Equal(unique[len(unique)-4:], []int{5, 4, 3, 2}) {
		return int(deck.Five), true
	}
	return 0, false
}

// weighted packs five descending values into one integer, most significant first.
func weighted(values [5]int) int {
	return values[0]*10000 + values[1]*1000 + values[2]*100 + values[3]*10 + values[4]
}
