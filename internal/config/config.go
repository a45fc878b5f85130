// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Upstream  UpstreamConfig
	Directory DirectoryConfig
	Search    SearchConfig
	Logging   LoggingConfig
	App       AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8788"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// UpstreamConfig holds settings for the third-party flight API.
type UpstreamConfig struct {
	// UseRealAPI gates every call to the live API. When false the service
	// operates purely on the local dataset and mock inventory, which is
	// the offline/demo mode.
	UseRealAPI bool `env:"USE_REAL_API" envDefault:"false"`

	// APIKey is the RapidAPI key. Required only when UseRealAPI is true.
	APIKey string `env:"SKY_API_KEY"`

	BaseURL   string        `env:"SKY_BASE_URL" envDefault:"https://flights-sky.p.rapidapi.com"`
	Timeout   time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"8s"`
	RateLimit float64       `env:"UPSTREAM_RATE_LIMIT" envDefault:"5"`
	RateBurst int           `env:"UPSTREAM_RATE_BURST" envDefault:"10"`
}

// DirectoryConfig holds airport directory settings.
type DirectoryConfig struct {
	// DatasetURL is the public bulk airport dataset, fetched at most once
	// per process lifetime.
	DatasetURL string `env:"AIRPORTS_DATASET_URL" envDefault:"https://raw.githubusercontent.com/mwgg/Airports/master/airports.json"`

	// TypeaheadDelay is the fixed artificial latency applied to airport
	// lookups for UI smoothness.
	TypeaheadDelay time.Duration `env:"TYPEAHEAD_DELAY" envDefault:"120ms"`

	// SuggestLimit caps the number of suggestions returned.
	SuggestLimit int `env:"SUGGEST_LIMIT" envDefault:"12"`
}

// SearchConfig holds flight search settings.
type SearchConfig struct {
	// MockDelay is the artificial latency applied to the mock inventory
	// path, mirroring the typeahead delay behavior.
	MockDelay time.Duration `env:"MOCK_SEARCH_DELAY" envDefault:"320ms"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	// The live API is unusable without a key; fail at startup rather than
	// on the first search.
	if cfg.Upstream.UseRealAPI && cfg.Upstream.APIKey == "" {
		return fmt.Errorf("SKY_API_KEY is required when USE_REAL_API is true")
	}
	if cfg.Upstream.Timeout <= 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT must be positive")
	}
	if cfg.Upstream.RateLimit <= 0 {
		return fmt.Errorf("UPSTREAM_RATE_LIMIT must be positive")
	}
	if cfg.Upstream.RateBurst < 1 {
		return fmt.Errorf("UPSTREAM_RATE_BURST must be at least 1")
	}

	if cfg.Directory.DatasetURL == "" {
		return fmt.Errorf("AIRPORTS_DATASET_URL must not be empty")
	}
	if cfg.Directory.TypeaheadDelay < 0 {
		return fmt.Errorf("TYPEAHEAD_DELAY must not be negative")
	}
	if cfg.Directory.SuggestLimit < 1 {
		return fmt.Errorf("SUGGEST_LIMIT must be at least 1")
	}
	if cfg.Search.MockDelay < 0 {
		return fmt.Errorf("MOCK_SEARCH_DELAY must not be negative")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
