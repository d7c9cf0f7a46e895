package simulator

import (
	"context"
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerbasics/internal/evaluator"
	"github.com/lox/pokerbasics/internal/randutil"
	"github.com/lox/pokerbasics/internal/scenario"
	"github.com/lox/pokerbasics/internal/statistics"
)

// Config holds configuration for running simulations
type Config struct {
	Sessions int // independent practice sessions
	Hands    int // hands dealt per session
	Seed     int64
	Workers  int // zero uses the CPU count, capped at 8
	Catalog  *scenario.Catalog
	Schedule scenario.ForceSchedule
	Logger   *log.Logger
}

// Simulator deals many practice sessions and collects their statistics
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Catalog == nil {
		config.Catalog = scenario.DefaultCatalog()
	}
	if config.Workers <= 0 {
		config.Workers = min(runtime.NumCPU(), 8)
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	return &Simulator{config: config}
}

// Run executes the simulation and returns the merged statistics. Each session
// gets its own seeded RNG, so a run is reproducible for a given seed whatever
// the worker count.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Sessions <= 0 || s.config.Hands <= 0 {
		return nil, fmt.Errorf("sessions and hands must be positive, got %d and %d", s.config.Sessions, s.config.Hands)
	}

	results := make([]*statistics.Statistics, s.config.Sessions)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)
	for i := range results {
		sessionSeed := s.config.Seed + int64(i)
		g.Go(func() error {
			stats, err := s.runSession(ctx, sessionSeed)
			if err != nil {
				return err
			}
			results[i] = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := statistics.New()
	for _, r := range results {
		stats.Merge(r)
	}

	// Validate statistics before returning
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.config.Logger.Info("Simulation complete", "sessions", s.config.Sessions, "deals", stats.Deals)
	return stats, nil
}

// runSession deals one session and tallies every hand at the flop and river
func (s *Simulator) runSession(ctx context.Context, seed int64) (*statistics.Statistics, error) {
	session := scenario.NewSession(s.config.Catalog, randutil.New(seed),
		scenario.WithLogger(s.config.Logger),
		scenario.WithForceSchedule(s.config.Schedule),
	)

	stats := statistics.New()
	for hand := 1; hand <= s.config.Hands; hand++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		deal := session.NewDeal()
		sc, ok := s.config.Catalog.Lookup(deal.Scenario)
		if !ok {
			return nil, fmt.Errorf("session %d dealt unknown scenario %q", seed, deal.Scenario)
		}

		flop, _ := evaluator.Evaluate(deal.Visible(3))
		draws := evaluator.DetectDraws(deal.Hole[:], deal.Community[:3])
		final, _ := evaluator.Evaluate(deal.Cards())

		stats.Add(statistics.DealResult{
			Scenario: deal.Scenario,
			Seed:     seed,
			Hand:     hand,
			Target:   sc.Target,
			Draw:     sc.IsDraw(),
			Flop:     flop.Category,
			Final:    final.Category,
			FlopDraw: !draws.None(),
			Forced:   deal.Forced,
		})
	}

	s.config.Logger.Debug("Session complete", "seed", seed, "hands", s.config.Hands, "seen", session.Seen())
	return stats, nil
}

// RunSimulation is a convenience function for running a simulation with the
// default catalog and schedule
func RunSimulation(ctx context.Context, sessions, hands int, seed int64, logger *log.Logger) (*statistics.Statistics, error) {
	config := Config{
		Sessions: sessions,
		Hands:    hands,
		Seed:     seed,
		Schedule: scenario.DefaultForceSchedule(),
		Logger:   logger,
	}

	return New(config).Run(ctx)
}
