package evaluator

import (
	"testing"

	"github.com/lox/pokerbasics/internal/deck"
	"github.com/lox/pokerbasics/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func five(s string) [5]deck.Card {
	cards := deck.MustParseCards(s)
	if len(cards) != 5 {
		panic("five: need exactly 5 cards in " + s)
	}
	return [5]deck.Card(cards)
}

func TestScoreFive(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		category Category
		strength int
	}{
		{"royal flush", "AsKsQsJsTs", RoyalFlush, MaxStrength},
		{"straight flush", "9h8h7h6h5h", StraightFlush, 9_000_009},
		{"steel wheel", "5d4d3d2dAd", StraightFlush, 9_000_005},
		{"four of a kind", "KsKhKdKc7s", FourOfAKind, 8_000_000 + 13*100 + 7},
		{"full house", "QsQhQd9c9s", FullHouse, 7_000_000 + 12*100 + 9},
		{"flush", "AdJd8d6d2d", Flush, 6_000_000 + 14*10000 + 11*1000 + 8*100 + 6*10 + 2},
		{"straight", "Ts9d8c7h6s", Straight, 5_000_010},
		{"three of a kind", "8s8h8dKc4s", ThreeOfAKind, 4_000_000 + 8*10000 + 13*100 + 4},
		{"two pair", "5hJs5cJdAs", TwoPair, 3_000_000 + 11*10000 + 5*100 + 14},
		{"one pair", "ThTdAs7c3d", OnePair, 2_000_000 + 10*10000 + 14*100 + 7*10 + 3},
		{"high card", "AsQd9c6h2s", HighCard, 1_000_000 + 14*10000 + 12*1000 + 9*100 + 6*10 + 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, strength := ScoreFive(five(tt.cards))
			assert.Equal(t, tt.category, category)
			assert.Equal(t, tt.strength, strength)
		})
	}
}

func TestQuadsBeatFullHouse(t *testing.T) {
	_, quads := ScoreFive(five("KsKhKdKc7s"))
	_, boat := ScoreFive(five("QsQhQd9c9s"))
	_, bestBoat := ScoreFive(five("AsAhAdKcKs"))
	_, worstQuads := ScoreFive(five("2s2h2d2c3s"))

	assert.Greater(t, quads, boat)
	assert.Greater(t, worstQuads, bestBoat)
}

func TestKickerSensitivity(t *testing.T) {
	_, higher := ScoreFive(five("ThTdAs7c3d"))
	_, lower := ScoreFive(five("ThTdAs7c2d"))
	assert.Greater(t, higher, lower)
}

func TestWheelStraight(t *testing.T) {
	hand, err := EvaluateBest(deck.MustParseCards("As 2h 3d 4c 5s 9h 9d"))
	require.NoError(t, err)

	assert.Equal(t, Straight, hand.Category)
	assert.Equal(t, Straight.Base()+5, hand.Strength)
	assert.Equal(t, "Straight, Five high", hand.Describe())
	assert.False(t, hand.Contains(deck.NewCard(deck.Hearts, deck.Nine)))
}

func TestAceNeverLowOutsideWheel(t *testing.T) {
	// K-A-2-3-4 does not wrap around
	category, _ := ScoreFive(five("KsAh2d3c4s"))
	assert.Equal(t, HighCard, category)
}

func TestEvaluateBestPicksStrongestSubset(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		category Category
		best     string
	}{
		{"flush over straight", "9h 8h 7c 6h 5h 2h Td", Flush, "9h8h6h5h2h"},
		{"two trips make a full house", "7s 7h 7d 4c 4s 4h Ac", FullHouse, "7s7h7d4c4s"},
		{"best two of three pairs", "As Ah 9d 9c 4s 4h 2c", TwoPair, "AsAh9d9c4s"},
		{"six-card straight takes the top", "9s 8d 7c 6h 5s 4d Kc", Straight, "9s8d7c6h5s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand, err := EvaluateBest(deck.MustParseCards(tt.cards))
			require.NoError(t, err)
			assert.Equal(t, tt.category, hand.Category)
			assert.ElementsMatch(t, deck.MustParseCards(tt.best), hand.Cards[:])
		})
	}
}

func TestEvaluateRequiresFiveCards(t *testing.T) {
	_, ok := Evaluate(deck.MustParseCards("AsKs"))
	assert.False(t, ok)

	_, err := EvaluateBest(deck.MustParseCards("AsKsQsJs"))
	assert.ErrorIs(t, err, ErrTooFewCards)

	hand, ok := Evaluate(deck.MustParseCards("AsKsQsJsTs"))
	require.True(t, ok)
	assert.Equal(t, RoyalFlush, hand.Category)
}

func TestEvaluateBestIsDeterministic(t *testing.T) {
	cards := deck.MustParseCards("Qs Jd 9c 9h 4s Qh 2c")
	first, err := EvaluateBest(cards)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := EvaluateBest(cards)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestCategoryRangesNeverOverlap(t *testing.T) {
	rng := randutil.New(2024)
	all := deck.AllCards()

	for i := 0; i < 20000; i++ {
		deck.Shuffle(rng, all)
		category, strength := ScoreFive([5]deck.Card(all[:5]))

		require.Equal(t, category, CategoryOf(strength), "cards %v strength %d", all[:5], strength)
		require.GreaterOrEqual(t, strength, category.Base())
		if category != RoyalFlush {
			require.Less(t, strength, (category + 1).Base())
		}
	}
}

func TestLargerInputs(t *testing.T) {
	// eight cards still searches every subset
	hand, err := EvaluateBest(deck.MustParseCards("2c 3d 8s 8h 8d Kc Ks Ah"))
	require.NoError(t, err)
	assert.Equal(t, FullHouse, hand.Category)
	assert.Equal(t, "Full House, Eights over Kings", hand.Describe())
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		cards string
		want  string
	}{
		{"AsKsQsJsTs", "Royal Flush"},
		{"9h8h7h6h5h", "Straight Flush, Nine high"},
		{"KsKhKdKc7s", "Four of a Kind, Kings"},
		{"6s6h6dKc4s", "Three of a Kind, Sixes"},
		{"5hJs5cJdAs", "Two Pair, Jacks and Fives"},
		{"ThTdAs7c3d", "One Pair, Tens"},
		{"AdJd8d6d2d", "Flush, Ace high"},
		{"AsQd9c6h2s", "High Card, Ace high"},
	}

	for _, tt := range tests {
		hand, ok := Evaluate(deck.MustParseCards(tt.cards))
		require.True(t, ok)
		assert.Equal(t, tt.want, hand.Describe())
	}
}
