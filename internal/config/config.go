// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

// Package config loads server configuration with koanf, layering defaults,
// an optional YAML file, and CREATORPULSE_-prefixed environment variables,
// in that order of precedence (later layers win).
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists where config files are searched, in order.
// The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/creatorpulse/config.yaml",
	"/etc/creatorpulse/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CREATORPULSE_CONFIG_PATH"

// envPrefix namespaces environment overrides, e.g.
// CREATORPULSE_SERVER__PORT=9090 sets server.port.
const envPrefix = "CREATORPULSE_"

// Config validation errors.
var (
	ErrInvalidPort       = errors.New("server port must be in 1-65535")
	ErrInvalidRateLimit  = errors.New("rate limit requests must be positive")
	ErrInvalidTimeout    = errors.New("timeouts must be positive")
	ErrInvalidLogLevel   = errors.New("unknown log level")
	ErrInvalidLogFormat  = errors.New("log format must be json or console")
	ErrConfigFileInvalid = errors.New("config file could not be parsed")
)

// Config is the full server configuration.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Logging LoggingConfig `koanf:"logging"`
	Tuning  TuningConfig  `koanf:"tuning"`
}

// ServerConfig holds HTTP listener and middleware settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`

	RateLimitRequests int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// TuningConfig points at the optional tuning-table overlay file.
type TuningConfig struct {
	// Path is a YAML file overriding the built-in tuning tables. Empty
	// means built-in defaults only, with no hot reload. When set, the
	// file is watched and reloaded on change.
	Path string `koanf:"path"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,

			// Empty by default: CORS requires explicit configuration.
			CORSAllowedOrigins: []string{},

			RateLimitRequests: 100,
			RateLimitWindow:   time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Tuning: TuningConfig{},
	}
}

// Load builds the configuration from defaults, the first config file found
// (or the CREATORPULSE_CONFIG_PATH override), and environment variables.
func Load() (*Config, error) {
	return LoadFrom(resolveConfigPath())
}

// LoadFrom builds the configuration with an explicit file path. An empty
// path skips the file layer.
func LoadFrom(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrConfigFileInvalid, path, err)
		}
	}

	// CREATORPULSE_SERVER__PORT -> server.port. Double underscore maps to
	// the key separator so single underscores survive in key names.
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, envPrefix)
		return strings.ReplaceAll(strings.ToLower(s), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field constraints the type system cannot.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("port %d: %w", c.Server.Port, ErrInvalidPort)
	}
	if !c.Server.RateLimitDisabled && c.Server.RateLimitRequests <= 0 {
		return ErrInvalidRateLimit
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 || c.Server.ShutdownTimeout <= 0 {
		return ErrInvalidTimeout
	}
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "disabled":
	default:
		return fmt.Errorf("level %q: %w", c.Logging.Level, ErrInvalidLogLevel)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("format %q: %w", c.Logging.Format, ErrInvalidLogFormat)
	}
	return nil
}

// Addr returns the host:port listen address.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func resolveConfigPath() string {
	if path := os.Getenv(ConfigPathEnvVar); path != "" {
		return path
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
