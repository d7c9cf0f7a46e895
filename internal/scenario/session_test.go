package scenario

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerbasics/internal/randutil"
)

func newTestSession(t *testing.T, seed int64, opts ...SessionOption) *Session {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.DebugLevel})
	opts = append([]SessionOption{WithLogger(logger), WithClock(quartz.NewMock(t))}, opts...)
	return NewSession(DefaultCatalog(), randutil.New(seed), opts...)
}

func TestForceScheduleDue(t *testing.T) {
	schedule := DefaultForceSchedule()
	var due []int
	for hand := 1; hand <= 32; hand++ {
		if schedule.Due(hand) {
			due = append(due, hand)
		}
	}
	assert.Equal(t, []int{3, 6, 8, 16, 24, 32}, due)

	assert.False(t, ForceSchedule{}.Due(8))
}

func TestMustShowScenariosAppearByHandEight(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		s := newTestSession(t, seed)

		shown := map[string]int{}
		for hand := 1; hand <= 8; hand++ {
			d := s.NewDeal()
			if _, ok := shown[d.Scenario]; !ok {
				shown[d.Scenario] = hand
			}
		}

		for _, sc := range s.Catalog().MustShow() {
			hand, ok := shown[sc.Name]
			require.True(t, ok, "seed %d: %s not shown by hand 8", seed, sc.Name)
			assert.Contains(t, []int{3, 6}, hand, "seed %d", seed)
		}
		assert.Equal(t, []string{"Royal Flush", "Straight Flush"}, s.Seen())
		assert.Equal(t, 8, s.Hands())
	}
}

func TestForcingStopsOnceEverythingIsSeen(t *testing.T) {
	s := newTestSession(t, 42)
	for i := 0; i < 8; i++ {
		s.Pick()
	}
	require.Len(t, s.Seen(), 2)

	// zero-weight scenarios are unreachable by weighted selection
	for i := 0; i < 2000; i++ {
		sc := s.Pick()
		assert.NotZero(t, sc.Weight, "hand %d picked %s", s.Hands(), sc.Name)
	}
}

func TestWeightedSelectionFollowsWeights(t *testing.T) {
	s := newTestSession(t, 7, WithForceSchedule(ForceSchedule{}))

	const n = 20000
	counts := map[string]int{}
	for i := 0; i < n; i++ {
		counts[s.Pick().Name]++
	}

	assert.Zero(t, counts["Royal Flush"])
	assert.Zero(t, counts["Straight Flush"])
	assert.Zero(t, counts["Random"])
	assert.Empty(t, s.Seen())

	catalog := s.Catalog()
	for _, sc := range catalog.Scenarios() {
		if sc.Weight == 0 {
			continue
		}
		got := float64(counts[sc.Name]) / n
		assert.InDelta(t, catalog.Probability(sc.Name), got, 0.02, sc.Name)
	}
}

func TestNaturalPickOfMustShowCountsAsSeen(t *testing.T) {
	catalog := DefaultCatalog()
	weight := 1000
	require.NoError(t, catalog.Tune("Royal Flush", Tune{Weight: &weight}))

	s := NewSession(catalog, randutil.New(3), WithForceSchedule(ForceSchedule{}), WithClock(quartz.NewMock(t)))
	for i := 0; i < 50; i++ {
		s.Pick()
	}
	assert.Contains(t, s.Seen(), "Royal Flush")
}

func TestDealScenario(t *testing.T) {
	s := newTestSession(t, 9)

	d, err := s.DealScenario("straight flush")
	require.NoError(t, err)
	assert.Equal(t, "Straight Flush", d.Scenario)
	assert.Equal(t, 1, s.Hands())
	assert.Equal(t, []string{"Straight Flush"}, s.Seen())

	_, err = s.DealScenario("Bad Beat")
	assert.ErrorIs(t, err, ErrUnknownScenario)
	assert.Equal(t, 1, s.Hands())
}

func TestSessionClock(t *testing.T) {
	mClock := quartz.NewMock(t)
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mClock.Set(start)

	s := NewSession(DefaultCatalog(), randutil.New(1), WithClock(mClock))
	assert.Equal(t, start, s.StartedAt())
	assert.True(t, start.Equal(s.ID().Time()), "session ID carries the start time")
	assert.NotEqual(t, s.ID(), NewSession(DefaultCatalog(), randutil.New(1), WithClock(mClock)).ID())

	mClock.Advance(90 * time.Second)
	d := s.NewDeal()
	assert.Equal(t, start.Add(90*time.Second), d.DealtAt)
	assert.Equal(t, 90*time.Second, s.Elapsed())
}

func TestNewSessionRequiresRNG(t *testing.T) {
	assert.Panics(t, func() { NewSession(DefaultCatalog(), nil) })
	assert.Panics(t, func() { NewSession(NewCatalog(), randutil.New(1)) })
}

func TestCatalogTune(t *testing.T) {
	catalog := DefaultCatalog()
	rate := 0.9
	require.NoError(t, catalog.Tune("flush", Tune{HitRate: &rate}))
	sc, _ := catalog.Lookup("Flush")
	assert.Equal(t, 0.9, sc.HitRate)

	assert.Error(t, catalog.Tune("Full House", Tune{HitRate: &rate}))

	negative := -1
	assert.Error(t, catalog.Tune("Two Pair", Tune{Weight: &negative}))
	assert.ErrorIs(t, catalog.Tune("Nope", Tune{}), ErrUnknownScenario)

	// tuning one catalog leaves the defaults alone
	fresh, _ := DefaultCatalog().Lookup("Flush")
	assert.Equal(t, 0.6, fresh.HitRate)
}

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	assert.Equal(t, 95, catalog.TotalWeight())
	assert.InDelta(t, 25.0/95, catalog.Probability("Evolving Hand"), 1e-9)
	assert.Zero(t, catalog.Probability("Royal Flush"))
	assert.Len(t, catalog.MustShow(), 2)
}

func TestNewDealMarksForcedPicks(t *testing.T) {
	s := newTestSession(t, 5)
	var forced []int
	for hand := 1; hand <= 16; hand++ {
		if s.NewDeal().Forced {
			forced = append(forced, hand)
		}
	}
	assert.Equal(t, []int{3, 6}, forced)
}
