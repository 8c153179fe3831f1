// Package config loads server configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings for the UAC server.
// It is constructed once at startup and passed by value; nothing
// mutates it afterwards.
type Config struct {
	Address            string `env:"SERVER_ADDRESS" envDefault:":8080"`
	DatabaseDSN        string `env:"DATABASE_DSN" envDefault:"uac.db"`
	JWTSecret          string `env:"JWT_SECRET,notEmpty"`
	JWTAlgorithm       string `env:"JWT_ALGORITHM" envDefault:"HS256"`
	AccessTokenMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES" envDefault:"30"`
	PasswordMinLength  int    `env:"PASSWORD_MIN_LENGTH" envDefault:"8"`
	Debug              bool   `env:"DEBUG" envDefault:"false"`
}

// Load parses configuration from the environment
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch c.JWTAlgorithm {
	case "HS256", "HS384", "HS512":
	default:
		return fmt.Errorf("unsupported JWT algorithm %q (HMAC only)", c.JWTAlgorithm)
	}

	if c.AccessTokenMinutes <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be positive, got %d", c.AccessTokenMinutes)
	}

	if c.PasswordMinLength < 1 {
		return fmt.Errorf("PASSWORD_MIN_LENGTH must be positive, got %d", c.PasswordMinLength)
	}

	return nil
}

// AccessTokenTTL returns the configured token lifetime as a duration
func (c Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenMinutes) * time.Minute
}
