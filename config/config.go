// Package config loads client configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// defaultBaseURL is used when STOREFRONT_API_URL is unset.
const defaultBaseURL = "https://api.marketplace.example.com"

// Config holds all configuration for the storefront client.
type Config struct {
	BaseURL        string `env:"STOREFRONT_API_URL"`
	TimeoutSeconds int    `env:"STOREFRONT_TIMEOUT_SECONDS" envDefault:"15"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`

	// Optional Redis-backed session store for multi-process deployments.
	RedisEnabled  bool   `env:"SESSION_REDIS_ENABLED" envDefault:"false"`
	RedisAddr     string `env:"SESSION_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"SESSION_REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"SESSION_REDIS_DB" envDefault:"0"`
	SessionID     string `env:"SESSION_ID" envDefault:""`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.TimeoutSeconds < 1 {
		return nil, fmt.Errorf("STOREFRONT_TIMEOUT_SECONDS must be positive, got %d", cfg.TimeoutSeconds)
	}
	if cfg.RedisEnabled && cfg.SessionID == "" {
		return nil, fmt.Errorf("SESSION_ID is required when SESSION_REDIS_ENABLED is set")
	}
	return cfg, nil
}

// Timeout returns the request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
