// Package config loads the bootstrap parameters of the guessing game from
// the environment (and an optional .env file).
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every tunable the CLI understands. Bounds are not validated
// here; the engine owns that check.
type Config struct {
	Min         int    `env:"GUESS_MIN" envDefault:"1"`
	Max         int    `env:"GUESS_MAX" envDefault:"100"`
	MaxAttempts uint8  `env:"GUESS_MAX_ATTEMPTS" envDefault:"20"`
	Seed        int64  `env:"GUESS_SEED" envDefault:"0"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	NoColor     bool   `env:"GUESS_NO_COLOR" envDefault:"false"`
	JSON        bool   `env:"GUESS_JSON" envDefault:"false"`
}

// Load reads .env files (missing files are ignored) and parses the
// environment into a Config.
func Load(files ...string) (Config, error) {
	_ = godotenv.Load(files...)
	return Parse()
}

// Parse reads the current environment into a Config.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
