// Package config loads the runtime configuration of the catalog command.
package config

import (
	"fmt"
	"strings"
	"time"

	"magazine-catalog/internal/domain/entity"
	envconfig "magazine-catalog/pkg/config"
)

// Config holds configuration for the catalog command.
type Config struct {
	// CatalogFile is the path of the YAML catalog to load.
	// Required.
	CatalogFile string

	// LoadTimeout bounds how long loading the catalog may take.
	// Default: 30 seconds
	LoadTimeout time.Duration

	// Log configures the structured logger.
	Log LogConfig

	// Observability toggles metrics and tracing output.
	Observability ObservabilityConfig
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	// Default: info
	Level string

	// Format is json or text.
	// Default: json
	Format string
}

// ObservabilityConfig holds metrics and tracing settings.
type ObservabilityConfig struct {
	// MetricsEnabled writes the collected metrics to stderr on exit.
	// Default: false
	MetricsEnabled bool

	// TracingEnabled exports spans to stderr.
	// Default: false
	TracingEnabled bool
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		CatalogFile: envconfig.GetEnvString("CATALOG_FILE", ""),
		LoadTimeout: envconfig.GetEnvDuration("LOAD_TIMEOUT", 30*time.Second),
		Log: LogConfig{
			Level:  strings.ToLower(envconfig.GetEnvString("LOG_LEVEL", "info")),
			Format: strings.ToLower(envconfig.GetEnvString("LOG_FORMAT", "json")),
		},
		Observability: ObservabilityConfig{
			MetricsEnabled: envconfig.GetEnvBool("METRICS_ENABLED", false),
			TracingEnabled: envconfig.GetEnvBool("TRACING_ENABLED", false),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks configuration correctness.
func (c *Config) Validate() error {
	if c.CatalogFile == "" {
		return &entity.ValidationError{Field: "CATALOG_FILE", Message: "is required"}
	}

	if err := envconfig.ValidateDurationRange(c.LoadTimeout, time.Second, 5*time.Minute); err != nil {
		return &entity.ValidationError{Field: "LOAD_TIMEOUT", Message: err.Error()}
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return &entity.ValidationError{
			Field:   "LOG_LEVEL",
			Message: fmt.Sprintf("must be debug, info, warn or error, got %q", c.Log.Level),
		}
	}

	switch c.Log.Format {
	case "json", "text":
	default:
		return &entity.ValidationError{
			Field:   "LOG_FORMAT",
			Message: fmt.Sprintf("must be json or text, got %q", c.Log.Format),
		}
	}

	return nil
}
