// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Search   SearchConfig
	Logging  LoggingConfig
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
}

// UpstreamConfig holds settings for the timetable upstream API.
type UpstreamConfig struct {
	// BaseURL is the root of the upstream API.
	BaseURL string `env:"UPSTREAM_BASE_URL" envDefault:"https://tt.cd.cz/api/v2"`

	// HTTPTimeout bounds each individual upstream HTTP call.
	HTTPTimeout time.Duration `env:"UPSTREAM_HTTP_TIMEOUT" envDefault:"10s"`

	// RateLimitRPS and RateLimitBurst throttle calls per upstream endpoint.
	RateLimitRPS   float64 `env:"UPSTREAM_RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst int     `env:"UPSTREAM_RATE_LIMIT_BURST" envDefault:"20"`
}

// SearchConfig holds timeout and sizing settings for connection searches.
type SearchConfig struct {
	// Timeout bounds a whole orchestrated search (resolve, session,
	// search, price).
	Timeout time.Duration `env:"SEARCH_TIMEOUT" envDefault:"20s"`

	// PriceTimeout bounds the best-effort price lookup independently so a
	// slow price call cannot delay the overall result past the deadline.
	PriceTimeout time.Duration `env:"SEARCH_PRICE_TIMEOUT" envDefault:"5s"`

	// MaxResults is the bounded connection count requested from the
	// upstream per search.
	MaxResults int `env:"SEARCH_MAX_RESULTS" envDefault:"8"`

	// MaxLocations is the bounded candidate count for station lookups.
	MaxLocations int `env:"SEARCH_MAX_LOCATIONS" envDefault:"10"`
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
	// Load .env file if it exists (ignore error if file doesn't exist)
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

	parsed, err := url.Parse(cfg.Upstream.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("UPSTREAM_BASE_URL must be an absolute URL, got %q", cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.HTTPTimeout <= 0 {
		return fmt.Errorf("UPSTREAM_HTTP_TIMEOUT must be positive")
	}
	if cfg.Upstream.RateLimitRPS <= 0 {
		return fmt.Errorf("UPSTREAM_RATE_LIMIT_RPS must be positive")
	}
	if cfg.Upstream.RateLimitBurst < 1 {
		return fmt.Errorf("UPSTREAM_RATE_LIMIT_BURST must be at least 1")
	}

	if cfg.Search.Timeout <= 0 {
		return fmt.Errorf("SEARCH_TIMEOUT must be positive")
	}
	if cfg.Search.PriceTimeout <= 0 {
		return fmt.Errorf("SEARCH_PRICE_TIMEOUT must be positive")
	}
	if cfg.Search.PriceTimeout >= cfg.Search.Timeout {
		return fmt.Errorf("SEARCH_PRICE_TIMEOUT (%s) should be less than SEARCH_TIMEOUT (%s)",
			cfg.Search.PriceTimeout, cfg.Search.Timeout)
	}
	if cfg.Search.MaxResults < 1 {
		return fmt.Errorf("SEARCH_MAX_RESULTS must be at least 1")
	}
	if cfg.Search.MaxLocations < 1 {
		return fmt.Errorf("SEARCH_MAX_LOCATIONS must be at least 1")
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
