package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/pokerbasics/internal/scenario"
)

// DefaultFile is the config file read when none is given.
const DefaultFile = "pokerbasics.hcl"

// Config represents the complete practice configuration
type Config struct {
	Session   *SessionSettings `hcl:"session,block"`
	Scenarios []ScenarioConfig `hcl:"scenario,block"`
	Log       *LogSettings     `hcl:"log,block"`
}

// SessionSettings controls scenario selection for a practice session
type SessionSettings struct {
	Seed             *int64 `hcl:"seed,optional"`
	ForceCheckpoints []int  `hcl:"force_checkpoints,optional"`
	ForceEvery       *int   `hcl:"force_every,optional"`
}

// ScenarioConfig overrides one built-in scenario
type ScenarioConfig struct {
	Name     string   `hcl:"name,label"`
	Weight   *int     `hcl:"weight,optional"`
	HitRate  *float64 `hcl:"hit_rate,optional"`
	MustShow *bool    `hcl:"must_show,optional"`
}

// LogSettings contains logging configuration
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// Default returns the default configuration
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.Session == nil {
		c.Session = &SessionSettings{}
	}
	defaults := scenario.DefaultForceSchedule()
	if c.Session.ForceCheckpoints == nil {
		c.Session.ForceCheckpoints = defaults.Checkpoints
	}
	if c.Session.ForceEvery == nil {
		every := defaults.Every
		c.Session.ForceEvery = &every
	}

	if c.Log == nil {
		c.Log = &LogSettings{}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.File == "" {
		c.Log.File = "pokerbasics.log"
	}
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if *c.Session.ForceEvery < 0 {
		return fmt.Errorf("session: force_every must not be negative, got %d", *c.Session.ForceEvery)
	}
	for _, hand := range c.Session.ForceCheckpoints {
		if hand < 1 {
			return fmt.Errorf("session: force checkpoint must be a hand number from 1, got %d", hand)
		}
	}

	// tuning a scratch catalog checks names, weights and hit rates
	if _, err := c.Catalog(); err != nil {
		return err
	}
	return nil
}

// Catalog returns the built-in catalog with the configured overrides.
func (c *Config) Catalog() (*scenario.Catalog, error) {
	catalog := scenario.DefaultCatalog()
	for _, sc := range c.Scenarios {
		err := catalog.Tune(sc.Name, scenario.Tune{
			Weight:   sc.Weight,
			HitRate:  sc.HitRate,
			MustShow: sc.MustShow,
		})
		if err != nil {
			return nil, err
		}
	}
	if catalog.TotalWeight() == 0 {
		return nil, fmt.Errorf("at least one scenario must have a positive weight")
	}
	return catalog, nil
}

// ForceSchedule returns the configured forcing schedule.
func (c *Config) ForceSchedule() scenario.ForceSchedule {
	return scenario.ForceSchedule{
		Checkpoints: c.Session.ForceCheckpoints,
		Every:       *c.Session.ForceEvery,
	}
}

// LogLevel returns the configured log level, defaulting to info.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
