package statistics

import (
	"math"
	"testing"

	"github.com/lox/pokerbasics/internal/evaluator"
	"github.com/lox/pokerbasics/internal/scenario"
)

func TestStatistics_Empty(t *testing.T) {
	stats := New()

	if stats.Share(evaluator.OnePair) != 0 {
		t.Errorf("Expected share of 0 for empty stats, got %f", stats.Share(evaluator.OnePair))
	}
	if stats.ImprovementRate() != 0 {
		t.Errorf("Expected improvement rate of 0 for empty stats, got %f", stats.ImprovementRate())
	}
	if err := stats.Validate(); err == nil {
		t.Error("Expected validation error for empty stats")
	}
}

func TestStatistics_SingleValue(t *testing.T) {
	stats := New()
	stats.Add(DealResult{
		Scenario: "Flush",
		Seed:     12345,
		Hand:     1,
		Target:   evaluator.Flush,
		Draw:     true,
		Flop:     evaluator.HighCard,
		Final:    evaluator.Flush,
	})

	if stats.Deals != 1 {
		t.Errorf("Expected 1 deal, got %d", stats.Deals)
	}
	if stats.Share(evaluator.Flush) != 1 {
		t.Errorf("Expected flush share of 1, got %f", stats.Share(evaluator.Flush))
	}
	if stats.Improved != 1 {
		t.Errorf("Expected 1 improved deal, got %d", stats.Improved)
	}
	ss := stats.Scenarios["Flush"]
	if ss == nil || ss.Hits != 1 || ss.Targeted != 1 {
		t.Fatalf("Expected one targeted hit for Flush, got %+v", ss)
	}
	if ss.HitRate() != 1 {
		t.Errorf("Expected hit rate of 1, got %f", ss.HitRate())
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Expected valid stats, got %v", err)
	}
}

func TestStatistics_MultipleValues(t *testing.T) {
	stats := New()

	results := []DealResult{
		{Scenario: "Straight", Target: evaluator.Straight, Draw: true, Flop: evaluator.HighCard, Final: evaluator.Straight},
		{Scenario: "Straight", Target: evaluator.Straight, Draw: true, Flop: evaluator.HighCard, Final: evaluator.OnePair},
		{Scenario: "Straight", Target: evaluator.Straight, Draw: true, Flop: evaluator.OnePair, Final: evaluator.Flush},
		{Scenario: "Royal Flush", Target: evaluator.RoyalFlush, Flop: evaluator.RoyalFlush, Final: evaluator.RoyalFlush, Forced: true},
		{Scenario: "Evolving Hand", Target: scenario.NoTarget, Flop: evaluator.OnePair, Final: evaluator.OnePair},
	}
	for _, result := range results {
		stats.Add(result)
	}

	if stats.Deals != 5 {
		t.Errorf("Expected 5 deals, got %d", stats.Deals)
	}
	if stats.Improved != 3 {
		t.Errorf("Expected 3 improved deals, got %d", stats.Improved)
	}
	if math.Abs(stats.Share(evaluator.OnePair)-0.4) > 1e-9 {
		t.Errorf("Expected one pair share of 0.4, got %f", stats.Share(evaluator.OnePair))
	}

	straight := stats.Scenarios["Straight"]
	if straight.Targeted != 3 || straight.Hits != 2 {
		t.Errorf("Expected 2 of 3 straight hits (a flush counts), got %d of %d", straight.Hits, straight.Targeted)
	}
	if evolving := stats.Scenarios["Evolving Hand"]; evolving.Targeted != 0 {
		t.Errorf("Expected untargeted evolving hand, got %d targeted", evolving.Targeted)
	}
	if stats.Scenarios["Royal Flush"].Forced != 1 {
		t.Error("Expected one forced royal flush")
	}

	names := stats.ScenarioNames()
	expected := []string{"Straight", "Evolving Hand", "Royal Flush"}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Expected scenario order %v, got %v", expected, names)
			break
		}
	}

	if err := stats.Validate(); err != nil {
		t.Errorf("Expected valid stats, got %v", err)
	}
}

func TestScenarioStats_ConfidenceInterval(t *testing.T) {
	ss := &ScenarioStats{Deals: 100, Targeted: 100, Hits: 60}

	if math.Abs(ss.HitRate()-0.6) > 1e-9 {
		t.Errorf("Expected hit rate 0.6, got %f", ss.HitRate())
	}
	expectedSE := math.Sqrt(0.6 * 0.4 / 100)
	if math.Abs(ss.StdError()-expectedSE) > 1e-9 {
		t.Errorf("Expected std error %f, got %f", expectedSE, ss.StdError())
	}
	low, high := ss.ConfidenceInterval95()
	if low >= 0.6 || high <= 0.6 {
		t.Errorf("Expected interval around 0.6, got [%f, %f]", low, high)
	}

	sure := &ScenarioStats{Deals: 10, Targeted: 10, Hits: 10}
	if _, high := sure.ConfidenceInterval95(); high > 1 {
		t.Errorf("Expected interval capped at 1, got %f", high)
	}
}

func TestStatistics_Merge(t *testing.T) {
	a, b := New(), New()
	a.Add(DealResult{Scenario: "Two Pair", Target: evaluator.TwoPair, Flop: evaluator.TwoPair, Final: evaluator.TwoPair})
	b.Add(DealResult{Scenario: "Two Pair", Target: evaluator.TwoPair, Flop: evaluator.TwoPair, Final: evaluator.FullHouse})
	b.Add(DealResult{Scenario: "Random", Target: scenario.NoTarget, Flop: evaluator.HighCard, Final: evaluator.HighCard})

	a.Merge(b)
	if a.Deals != 3 {
		t.Errorf("Expected 3 deals, got %d", a.Deals)
	}
	if a.Scenarios["Two Pair"].Hits != 2 {
		t.Errorf("Expected 2 two pair hits, got %d", a.Scenarios["Two Pair"].Hits)
	}
	if a.Improved != 1 {
		t.Errorf("Expected 1 improved deal, got %d", a.Improved)
	}
	if err := a.Validate(); err != nil {
		t.Errorf("Expected valid merged stats, got %v", err)
	}
}

func TestStatistics_ValidateCatchesMismatch(t *testing.T) {
	stats := New()
	stats.Add(DealResult{Scenario: "Random", Target: scenario.NoTarget})
	stats.Deals++

	if err := stats.Validate(); err == nil {
		t.Error("Expected mismatch to fail validation")
	}
}

func TestScenarioStats_FlopDraws(t *testing.T) {
	stats := New()
	stats.Add(DealResult{Scenario: "Flush", Target: evaluator.Flush, Draw: true, FlopDraw: true, Final: evaluator.Flush})
	stats.Add(DealResult{Scenario: "Flush", Target: evaluator.Flush, Draw: true, FlopDraw: true, Final: evaluator.HighCard})
	stats.Add(DealResult{Scenario: "Flush", Target: evaluator.Flush, Draw: true, Final: evaluator.OnePair})

	ss := stats.Scenarios["Flush"]
	if ss.FlopDraws != 2 {
		t.Errorf("Expected 2 flop draws, got %d", ss.FlopDraws)
	}
	if got := ss.FlopDrawRate(); math.Abs(got-2.0/3.0) > 1e-9 {
		t.Errorf("Expected flop draw rate 2/3, got %f", got)
	}
	if (&ScenarioStats{}).FlopDrawRate() != 0 {
		t.Error("Expected zero flop draw rate without deals")
	}
}
