// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads the admin panel configuration from OCMS_ environment
// variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// validLogLevels lists the accepted OCMS_LOG_LEVEL values.
var validLogLevels = []string{"debug", "info", "warn", "error"}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	SessionSecret   string        `env:"OCMS_SESSION_SECRET,required"`
	ServerHost      string        `env:"OCMS_SERVER_HOST" envDefault:"localhost"`
	ServerPort      int           `env:"OCMS_SERVER_PORT" envDefault:"8080"`
	Env             string        `env:"OCMS_ENV" envDefault:"development"`
	LogLevel        string        `env:"OCMS_LOG_LEVEL" envDefault:"info"`
	LogFile         string        `env:"OCMS_LOG_FILE"` // empty logs to stdout only
	SessionLifetime time.Duration `env:"OCMS_SESSION_LIFETIME" envDefault:"24h"`

	// When false, saves only notify and the registries keep their seed data.
	PersistEdits bool `env:"OCMS_PERSIST_EDITS" envDefault:"false"`

	// Login throttling per client IP; zero rate disables it.
	LoginRateLimit float64 `env:"OCMS_LOGIN_RATE_LIMIT" envDefault:"0"`
	LoginRateBurst int     `env:"OCMS_LOGIN_RATE_BURST" envDefault:"5"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// LoginThrottleEnabled reports whether POST /login is rate limited.
func (c Config) LoginThrottleEnabled() bool {
	return c.LoginRateLimit > 0
}

// SlogLevel maps LogLevel to a slog level.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// MinSessionSecretLength is the minimum required length for the session secret.
// It also keys CSRF protection, which needs 32 bytes.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if !hasMinimumEntropy(cfg.SessionSecret) {
		slog.Warn("OCMS_SESSION_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.SessionSecret) < MinSessionSecretLength {
		return fmt.Errorf("OCMS_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(c.SessionSecret))
	}
	if slices.Contains(knownWeakSecrets, c.SessionSecret) {
		return errors.New("OCMS_SESSION_SECRET is a known default value and must not be used; " +
			"generate a secure secret with: openssl rand -base64 32")
	}
	if !slices.Contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("OCMS_LOG_LEVEL must be one of %s, got %q",
			strings.Join(validLogLevels, ", "), c.LogLevel)
	}
	if c.ServerPort < 1 || c.ServerPort > 65535 {
		return fmt.Errorf("OCMS_SERVER_PORT out of range: %d", c.ServerPort)
	}
	if c.LoginRateLimit < 0 {
		return fmt.Errorf("OCMS_LOGIN_RATE_LIMIT must not be negative, got %v", c.LoginRateLimit)
	}
	if c.LoginThrottleEnabled() && c.LoginRateBurst < 1 {
		return fmt.Errorf("OCMS_LOGIN_RATE_BURST must be at least 1 when throttling is on, got %d", c.LoginRateBurst)
	}
	return nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	classes := []string{
		"abcdefghijklmnopqrstuvwxyz",
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ",
		"0123456789",
		"!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\",
	}
	n := 0
	for _, set := range classes {
		if strings.ContainsAny(s, set) {
			n++
		}
	}
	return n >= 3
}
