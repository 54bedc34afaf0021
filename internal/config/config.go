// Package config loads CLI defaults from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the environment-tunable defaults of the bulkread CLI. Every
// field can be overridden per run with a flag.
type Config struct {
	// Dir is the default input directory (BULKREAD_DIR).
	Dir string `envconfig:"DIR" default:"."`

	// Encoding is the default text encoding of input files
	// (BULKREAD_ENCODING).
	Encoding string `envconfig:"ENCODING" default:"UTF-8"`

	// Jobs is the default read parallelism (BULKREAD_JOBS).
	Jobs int `envconfig:"JOBS" default:"1"`

	// LogLevel is the default log level: debug, info, warn or error
	// (BULKREAD_LOG_LEVEL).
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads the BULKREAD_* environment variables, falling back to the tag
// defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("BULKREAD", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	return &cfg, nil
}
