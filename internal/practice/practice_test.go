package practice

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerbasics/internal/deck"
	"github.com/lox/pokerbasics/internal/evaluator"
	"github.com/lox/pokerbasics/internal/randutil"
	"github.com/lox/pokerbasics/internal/scenario"
)

func testDeal() scenario.Deal {
	return scenario.Deal{
		Scenario:  "Straight",
		Hole:      [2]deck.Card(deck.MustParseCards("9s 8d")),
		Community: [5]deck.Card(deck.MustParseCards("7c 6h Kd 5s 2c")),
	}
}

func TestStage(t *testing.T) {
	tests := []struct {
		stage   Stage
		visible int
		title   string
		action  string
	}{
		{Preflop, 0, "Pre-Flop", "Deal Flop"},
		{Flop, 3, "Flop", "Deal Turn"},
		{Turn, 4, "Turn", "Deal River"},
		{River, 5, "River", ""},
	}

	for _, tt := range tests {
		t.Run(tt.stage.String(), func(t *testing.T) {
			assert.Equal(t, tt.visible, tt.stage.VisibleCommunity())
			assert.Equal(t, tt.title, tt.stage.Title())
			assert.Equal(t, tt.action, tt.stage.NextAction())
		})
	}
}

func TestHandReveal(t *testing.T) {
	h := NewHand(testDeal())
	require.Equal(t, Preflop, h.Stage())

	_, ok := h.Evaluate()
	assert.False(t, ok, "no hand before the flop")
	assert.Len(t, h.Visible(), 2)
	assert.Zero(t, h.WinningCards())

	require.True(t, h.Advance())
	best, ok := h.Evaluate()
	require.True(t, ok)
	assert.Equal(t, evaluator.HighCard, best.Category)
	assert.Equal(t, deck.MustParseCards("7c 6h Kd"), h.Community())
	assert.Zero(t, h.WinningCards(), "cards only highlight at the river")

	require.True(t, h.Advance())
	best, _ = h.Evaluate()
	assert.Equal(t, evaluator.Straight, best.Category)

	require.True(t, h.Advance())
	assert.True(t, h.Done())
	assert.False(t, h.Advance())
	assert.Equal(t, River, h.Stage())

	winning := h.WinningCards()
	assert.Equal(t, 5, winning.Len())
	assert.Equal(t, deck.NewCardSet(deck.MustParseCards("9s 8d 7c 6h 5s")...), winning)
}

func TestRevealedCardsArePrefixOfDeal(t *testing.T) {
	rng := randutil.New(3)
	session := scenario.NewSession(scenario.DefaultCatalog(), rng, scenario.WithClock(quartz.NewMock(t)))

	for i := 0; i < 100; i++ {
		d := session.NewDeal()
		h := NewHand(d)
		for {
			assert.Equal(t, d.Community[:h.Stage().VisibleCommunity()], h.Community())
			if !h.Advance() {
				break
			}
		}
	}
}

func TestTrainerTalliesAtRiver(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{})
	session := scenario.NewSession(scenario.DefaultCatalog(), randutil.New(11), scenario.WithLogger(logger), scenario.WithClock(quartz.NewMock(t)))
	trainer := NewTrainer(session, logger)

	require.Nil(t, trainer.Current())
	assert.Equal(t, Preflop, trainer.Advance(), "first advance deals")
	assert.Equal(t, 1, trainer.Tally().Dealt)

	for i := 0; i < 5; i++ {
		trainer.Advance()
	}
	tally := trainer.Tally()
	assert.Equal(t, 1, tally.Completed, "a hand is recorded once")
	require.Len(t, tally.Categories(), 1)
	assert.Len(t, tally.Missing(), len(evaluator.Categories)-1)

	// abandoned hands are dealt but not completed
	trainer.Deal()
	trainer.Advance()
	trainer.Deal()
	tally = trainer.Tally()
	assert.Equal(t, 3, tally.Dealt)
	assert.Equal(t, 1, tally.Completed)
	assert.Equal(t, 3, session.Hands())

	// returned tallies are copies
	tally.ByScenario["changed"] = 1
	assert.NotContains(t, trainer.Tally().ByScenario, "changed")
}

func TestHandDraws(t *testing.T) {
	hand := NewHand(testDeal())
	assert.True(t, hand.Draws().None(), "no draws before the flop")

	require.True(t, hand.Advance())
	draws := hand.Draws()
	assert.Equal(t, []evaluator.DrawType{evaluator.OpenEndedStraightDraw}, draws.Types)
	assert.Equal(t, 8, draws.Outs.Len())

	// the five on the turn completes the straight
	require.True(t, hand.Advance())
	assert.True(t, hand.Draws().None())

	require.True(t, hand.Advance())
	assert.True(t, hand.Draws().None())
}

func TestHandStartingHand(t *testing.T) {
	key, percentile := NewHand(testDeal()).StartingHand()
	assert.Equal(t, "98o", key)
	assert.InDelta(t, 0.412, percentile, 1e-9)
}
