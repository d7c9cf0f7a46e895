package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/pokerbasics/internal/config"
	"github.com/lox/pokerbasics/internal/randutil"
	"github.com/lox/pokerbasics/internal/scenario"
)

// Globals are the flags shared by every command
type Globals struct {
	Config   string `short:"c" help:"Config file (defaults to $POKERBASICS_CONFIG or pokerbasics.hcl)"`
	LogLevel string `help:"Log level (debug|info|warn|error)"`
	Seed     int64  `help:"Seed for reproducible deals (0 uses the config or a random seed)"`
	NoColor  bool   `help:"Disable colored output"`

	Stdout io.Writer `kong:"-"`
	Stderr io.Writer `kong:"-"`
}

func (g *Globals) stdout() io.Writer {
	if g.Stdout != nil {
		return g.Stdout
	}
	return os.Stdout
}

func (g *Globals) stderr() io.Writer {
	if g.Stderr != nil {
		return g.Stderr
	}
	return os.Stderr
}

// loadConfig reads the config file, then applies environment and flag
// overrides in that order.
func (g *Globals) loadConfig() (*config.Config, error) {
	environ, err := config.ParseEnv()
	if err != nil {
		return nil, err
	}

	filename := g.Config
	if filename == "" {
		filename = environ.ConfigFile()
	}

	cfg, err := config.Load(filename)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", filename, err)
	}
	environ.Apply(cfg)

	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if g.Seed != 0 {
		seed := g.Seed
		cfg.Session.Seed = &seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filename, err)
	}
	return cfg, nil
}

// newSession creates a practice session from the configured catalog and
// forcing schedule.
func newSession(cfg *config.Config, logger *log.Logger) (*scenario.Session, error) {
	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, err
	}

	return scenario.NewSession(catalog, randutil.NewFromOptional(cfg.Session.Seed),
		scenario.WithLogger(logger),
		scenario.WithForceSchedule(cfg.ForceSchedule()),
	), nil
}
