package main

import (
	"fmt"
	"time"

	"github.com/lox/pokerbasics/internal/simulator"
)

type SimulateCmd struct {
	Sessions int    `default:"200" help:"Number of independent practice sessions"`
	Hands    int    `default:"50" help:"Hands dealt per session"`
	Workers  int    `default:"0" help:"Parallel workers (0 for CPU count)"`
	Output   string `short:"o" help:"Also write the report to this file"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		return err
	}

	logger := newLogger(g.stderr(), cfg.LogLevel(), "simulate")

	seed := time.Now().UnixNano()
	if cfg.Session.Seed != nil {
		seed = *cfg.Session.Seed
	}

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	logger.Info("Starting simulation",
		"sessions", c.Sessions,
		"hands", c.Hands,
		"seed", seed)

	sim := simulator.New(simulator.Config{
		Sessions: c.Sessions,
		Hands:    c.Hands,
		Seed:     seed,
		Workers:  c.Workers,
		Catalog:  catalog,
		Schedule: cfg.ForceSchedule(),
		Logger:   logger,
	})

	stats, err := sim.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	if c.Output != "" {
		if err := simulator.SaveSummary(c.Output, stats, catalog); err != nil {
			return err
		}
		logger.Info("Wrote report", "file", c.Output)
	}

	return simulator.PrintSummary(g.stdout(), stats, catalog)
}
