// Package config assembles the runtime configuration of the API server.
//
// Values come from environment variables, with an optional YAML file
// (CONFIG_FILE) overriding server-level settings. Secrets (admin token,
// database URL) are environment-only and never appear in the YAML file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	pkgconfig "newsdesk/pkg/config"
)

// Config holds everything the API server needs to start.
type Config struct {
	Port         int
	AdminToken   string
	DatabaseURL  string
	DatabaseName string
	LogLevel     string
	CORSOrigins  []string

	// RateLimitPerMinute caps requests per client IP across all routes.
	RateLimitPerMinute int

	// MaxBodyBytes bounds the size of accepted request bodies.
	MaxBodyBytes int64

	ShutdownTimeout time.Duration
	Version         string
}

// fileConfig is the YAML shape of the optional config file. Only non-secret
// server settings may live here.
type fileConfig struct {
	Server struct {
		Port               int      `yaml:"port"`
		LogLevel           string   `yaml:"log_level"`
		CORSOrigins        []string `yaml:"cors_origins"`
		RateLimitPerMinute int      `yaml:"rate_limit_per_minute"`
		MaxBodyBytes       int64    `yaml:"max_body_bytes"`
		ShutdownTimeout    string   `yaml:"shutdown_timeout"`
	} `yaml:"server"`
}

// Load reads configuration from the environment, applies the optional YAML
// file on top, and validates the result. DATABASE_URL is required; everything
// else has a default. A missing ADMIN_TOKEN is allowed but locks every gated
// route.
func Load() (*Config, error) {
	cfg := &Config{
		Port:               pkgconfig.GetEnvInt("PORT", 8000),
		AdminToken:         os.Getenv("ADMIN_TOKEN"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		DatabaseName:       pkgconfig.GetEnvString("DATABASE_NAME", "newsdesk"),
		LogLevel:           pkgconfig.GetEnvString("LOG_LEVEL", "info"),
		CORSOrigins:        pkgconfig.GetEnvStringList("CORS_ORIGINS", []string{"*"}),
		RateLimitPerMinute: pkgconfig.GetEnvInt("RATELIMIT_PER_MINUTE", 120),
		MaxBodyBytes:       int64(pkgconfig.GetEnvInt("MAX_BODY_BYTES", 1<<20)),
		ShutdownTimeout:    pkgconfig.GetEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
		Version:            pkgconfig.GetEnvString("APP_VERSION", "dev"),
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFile overlays non-zero values from the YAML file onto cfg.
func (c *Config) applyFile(path string) error {
	// #nosec G304 -- path comes from the operator's environment, not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if fc.Server.Port != 0 {
		c.Port = fc.Server.Port
	}
	if fc.Server.LogLevel != "" {
		c.LogLevel = fc.Server.LogLevel
	}
	if len(fc.Server.CORSOrigins) > 0 {
		c.CORSOrigins = fc.Server.CORSOrigins
	}
	if fc.Server.RateLimitPerMinute != 0 {
		c.RateLimitPerMinute = fc.Server.RateLimitPerMinute
	}
	if fc.Server.MaxBodyBytes != 0 {
		c.MaxBodyBytes = fc.Server.MaxBodyBytes
	}
	if fc.Server.ShutdownTimeout != "" {
		d, err := time.ParseDuration(fc.Server.ShutdownTimeout)
		if err != nil {
			return fmt.Errorf("invalid shutdown_timeout in config file: %w", err)
		}
		c.ShutdownTimeout = d
	}
	return nil
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.RateLimitPerMinute < 1 {
		return fmt.Errorf("rate limit must be positive, got %d", c.RateLimitPerMinute)
	}
	if c.MaxBodyBytes < 1 {
		return fmt.Errorf("max body bytes must be positive, got %d", c.MaxBodyBytes)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %v", c.ShutdownTimeout)
	}
	return nil
}
