// Package config loads runtime settings from .env and the process environment.
// Command-line flags are applied on top by the cli package.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/go-cli/internal/daily"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

// Config is the environment-derived configuration.
type Config struct {
	CacheDir      string        `env:"WORDLE_CACHE_DIR"`
	CacheBackend  string        `env:"WORDLE_CACHE_BACKEND" envDefault:"file"`
	APIBase       string        `env:"WORDLE_API_BASE"`
	DictionaryURL string        `env:"WORDLE_DICTIONARY_URL"`
	MaxTries      int           `env:"WORDLE_MAX_TRIES" envDefault:"5"`
	Strict        bool          `env:"WORDLE_STRICT" envDefault:"false"`
	HTTPTimeout   time.Duration `env:"WORDLE_HTTP_TIMEOUT" envDefault:"10s"`
	DailySalt     string        `env:"WORDLE_DAILY_SALT" envDefault:"local_dev_salt"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"warn"`
	Port          string        `env:"PORT" envDefault:"5175"`
}

// Load reads an optional .env file, then parses the environment into a Config.
// An empty CacheDir is resolved to <user cache dir>/wordle-go; empty URLs get
// the upstream defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.CacheDir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("resolve cache dir: %w", err)
		}
		cfg.CacheDir = filepath.Join(base, "wordle-go")
	}
	if cfg.APIBase == "" {
		cfg.APIBase = daily.DefaultBaseURL
	}
	if cfg.DictionaryURL == "" {
		cfg.DictionaryURL = words.DefaultURL
	}
	if cfg.MaxTries < 1 {
		return nil, fmt.Errorf("WORDLE_MAX_TRIES must be at least 1, got %d", cfg.MaxTries)
	}
	return cfg, nil
}

// ApplyLogLevel sets the global zerolog level; unknown levels are ignored.
func (c *Config) ApplyLogLevel() {
	if lvl, err := zerolog.ParseLevel(c.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
}
