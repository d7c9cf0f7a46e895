package handbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerbasics/internal/evaluator"
)

func TestChartExamplesEvaluateToTheirCategory(t *testing.T) {
	entries := Chart()
	require.Len(t, entries, len(evaluator.Categories))

	for i, e := range entries {
		t.Run(e.Name(), func(t *testing.T) {
			assert.Equal(t, i+1, e.Rank())

			hand, ok := evaluator.Evaluate(e.Example)
			require.True(t, ok)
			assert.Equal(t, e.Category, hand.Category)
		})
	}
}

func TestChartExamplesAreOrdered(t *testing.T) {
	entries := Chart()
	for i := 1; i < len(entries); i++ {
		prev, _ := evaluator.Evaluate(entries[i-1].Example)
		cur, _ := evaluator.Evaluate(entries[i].Example)
		assert.True(t, prev.IsStrongerThan(cur), "%s should beat %s", prev, cur)
	}
}

func TestExplain(t *testing.T) {
	assert.Equal(t, "3 of a kind + a pair. Three of a kind plus a pair.", Explain(evaluator.FullHouse))
	assert.Empty(t, Explain(evaluator.Category(42)))
	assert.Len(t, Tips(), 5)
}
