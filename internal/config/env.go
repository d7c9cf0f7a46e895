package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment variable read by ParseEnv.
const EnvPrefix = "POKERBASICS_"

// Env holds the settings that can be overridden from the environment.
type Env struct {
	Config   string `env:"CONFIG"`
	LogLevel string `env:"LOG_LEVEL"`
	Seed     *int64 `env:"SEED"`
}

// ParseEnv loads overrides from the process environment.
func ParseEnv() (Env, error) {
	return parseEnv(env.Options{Prefix: EnvPrefix})
}

// ParseEnvFrom loads overrides from the given variables instead of the
// process environment.
func ParseEnvFrom(environ map[string]string) (Env, error) {
	return parseEnv(env.Options{Prefix: EnvPrefix, Environment: environ})
}

func parseEnv(opts env.Options) (Env, error) {
	var e Env
	if err := env.ParseWithOptions(&e, opts); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// ConfigFile returns the config path from the environment, or DefaultFile.
func (e Env) ConfigFile() string {
	if e.Config != "" {
		return e.Config
	}
	return DefaultFile
}

// Apply overrides c with the values set in e.
func (e Env) Apply(c *Config) {
	if e.LogLevel != "" {
		c.Log.Level = e.LogLevel
	}
	if e.Seed != nil {
		seed := *e.Seed
		c.Session.Seed = &seed
	}
}
