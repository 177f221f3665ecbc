// Package config loads library configuration from files, environment
// variables and command-line flags, in that order of precedence.
package config

import (
	"fmt"
	"time"

	"github.com/nimburion/mongokit/pkg/observability/logger"
)

// Config is the root configuration structure.
type Config struct {
	Database      DatabaseConfig      `mapstructure:"database"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

// DatabaseConfig configures the MongoDB connection.
type DatabaseConfig struct {
	URL              string        `mapstructure:"url"`
	Database         string        `mapstructure:"database"`
	ConnectTimeout   time.Duration `mapstructure:"connect_timeout"`
	OperationTimeout time.Duration `mapstructure:"operation_timeout"`
}

// ObservabilityConfig configures logging.
type ObservabilityConfig struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// DefaultConfig returns the default configuration. Connection parameters
// have no defaults and must be supplied.
func DefaultConfig() Config {
	return Config{
		Database: DatabaseConfig{
			ConnectTimeout:   5 * time.Second,
			OperationTimeout: 5 * time.Second,
		},
		Observability: ObservabilityConfig{
			LogLevel:  string(logger.InfoLevel),
			LogFormat: string(logger.JSONFormat),
		},
	}
}

// Validate checks that the configuration is complete and well-formed.
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("database.url is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database.database is required")
	}
	if _, err := logger.ParseLogLevel(c.Observability.LogLevel); err != nil {
		return fmt.Errorf("observability.log_level: %w", err)
	}
	if _, err := logger.ParseLogFormat(c.Observability.LogFormat); err != nil {
		return fmt.Errorf("observability.log_format: %w", err)
	}
	return nil
}
