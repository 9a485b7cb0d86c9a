// Package config loads server configuration from an optional config.yaml
// with environment variable overrides. Environment variables always win
// over YAML values.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const configFile = "config.yaml"

// Config holds all configuration for the fraud-ring MCP server.
type Config struct {
	// Transport selects how the MCP server is exposed: "stdio" or "http".
	Transport string `yaml:"transport" env:"FRAUDRING_TRANSPORT" env-default:"stdio"`

	// HTTPAddr is the listen address when Transport is "http".
	HTTPAddr string `yaml:"http_addr" env:"FRAUDRING_HTTP_ADDR" env-default:":8080"`

	// ReadOnly exposes only tools annotated as read-only; analyze calls
	// that create new analyses are excluded.
	ReadOnly bool `yaml:"read_only" env:"FRAUDRING_READ_ONLY" env-default:"false"`

	// PresetDir is the fallback preset directory when no presets are
	// embedded in the binary.
	PresetDir string `yaml:"preset_dir" env:"FRAUDRING_PRESET_DIR" env-default:"presets/config"`

	// BucketWarnSize is the per-value bucket size above which the
	// relationship finder logs a pair-explosion warning.
	BucketWarnSize int `yaml:"bucket_warn_size" env:"FRAUDRING_BUCKET_WARN_SIZE" env-default:"250"`

	// LogLevel is the minimum slog level: debug, info, warn or error.
	LogLevel string `yaml:"log_level" env:"FRAUDRING_LOG_LEVEL" env-default:"info"`

	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Version is set at load time, not from config.
	Version string `yaml:"-"`
}

// TelemetryConfig holds the anonymous usage analytics settings.
type TelemetryConfig struct {
	Enabled  bool   `yaml:"enabled" env:"FRAUDRING_TELEMETRY_ENABLED" env-default:"false"`
	Endpoint string `yaml:"endpoint" env:"FRAUDRING_TELEMETRY_ENDPOINT" env-default:""`
}

// Load reads config.yaml if present, otherwise falls back to environment
// variables alone.
func Load(version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if _, err := os.Stat(configFile); err == nil {
		if err := cleanenv.ReadConfig(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", configFile, err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Transport {
	case "stdio", "http":
	default:
		return fmt.Errorf("unsupported transport %q (expected stdio or http)", c.Transport)
	}
	if c.BucketWarnSize < 0 {
		return fmt.Errorf("bucket_warn_size must not be negative, got %d", c.BucketWarnSize)
	}
	if c.Telemetry.Enabled && c.Telemetry.Endpoint == "" {
		return fmt.Errorf("telemetry is enabled but no endpoint is configured")
	}
	return nil
}

// SlogLevel maps the configured log level onto a slog.Level. Unknown
// values fall back to info.
func (c *Config) SlogLevel() slog.Level {
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
