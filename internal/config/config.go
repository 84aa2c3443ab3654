// Package config provides configuration types, defaults, and persistence for
// the analyzer.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shigou0206/editor-analyzer/internal/log"
	"github.com/shigou0206/editor-analyzer/internal/tracing"
)

// CacheConfig controls the content-addressed result caches.
type CacheConfig struct {
	// Disabled bypasses the result caches entirely; every call recomputes.
	Disabled bool `mapstructure:"disabled"`

	// TTL is how long a result stays cached after its last refresh.
	TTL time.Duration `mapstructure:"ttl"`

	// CleanupInterval is how often expired entries are swept.
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// LogConfig controls debug logging.
type LogConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
	Level   string `mapstructure:"level"` // "debug", "info", "warn", "error"
}

// Config holds all configuration options for the analyzer.
type Config struct {
	Cache   CacheConfig    `mapstructure:"cache"`
	Log     LogConfig      `mapstructure:"log"`
	Tracing tracing.Config `mapstructure:"tracing"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		Cache: CacheConfig{
			Disabled:        false,
			TTL:             10 * time.Minute,
			CleanupInterval: 30 * time.Minute,
		},
		Log: LogConfig{
			Enabled: false,
			Path:    "analyzer.log",
			Level:   "debug",
		},
		Tracing: tracing.DefaultConfig(),
	}
}

// LogLevel maps the configured level name to a log.Level, defaulting to
// debug for unrecognized names.
func (c Config) LogLevel() log.Level {
	switch c.Log.Level {
	case "info":
		return log.LevelInfo
	case "warn":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelDebug
	}
}

// DefaultConfigTemplate returns the commented YAML written on first run.
func DefaultConfigTemplate() string {
	return `# editor-analyzer configuration
#
# Result caches are keyed by source content; any edit is a cache miss.
cache:
  disabled: false
  ttl: 10m
  cleanup_interval: 30m

# Structured debug logging (key=value lines).
log:
  enabled: false
  path: analyzer.log
  level: debug

# OpenTelemetry tracing around engine operations.
# Exporters: none, stdout, file
tracing:
  enabled: false
  exporter: none
  sample_rate: 1.0
  service_name: editor-analyzer
`
}

// WriteDefaultConfig creates a config file at the given path with default
// settings and comments. Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
