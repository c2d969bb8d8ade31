package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the qb binary reads from the environment.
type Config struct {
	DBPath   string `env:"QB_DB_PATH"`
	Backend  string `env:"QB_STORE" envDefault:"sqlite"`
	StateKey string `env:"QB_STATE_KEY" envDefault:"questBoardData"`
	LogFile  string `env:"QB_LOG_FILE"`
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file. Overrides run
// before validation, so command-line flags can replace bad environment values.
func Load(dotenv string, overrides ...func(*Config)) (Config, error) {
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", dotenv, err)
		}
	}

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	for _, o := range overrides {
		o(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c Config) Validate() error {
	switch c.Backend {
	case "sqlite", "bolt":
	default:
		return fmt.Errorf("QB_STORE must be sqlite or bolt, got %q", c.Backend)
	}
	if c.StateKey == "" {
		return fmt.Errorf("QB_STATE_KEY must not be empty")
	}
	return nil
}
