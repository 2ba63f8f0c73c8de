// Package config resolves server settings from the ARANGO_* environment
// variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultEndpoint  = "http://localhost:8529"
	defaultDatabase  = "_system"
	defaultUsername  = "root"
	defaultTimeout   = 30 * time.Second
	defaultBatchSize = 100
)

// Config holds the resolved server configuration.
type Config struct {
	// Endpoint is the ArangoDB server base URL.
	Endpoint string
	// Database is the database all queries run against.
	Database string
	Username string
	Password string
	// ReadOnly restricts the registered tools to those annotated as
	// read-only.
	ReadOnly bool
	// Timeout bounds each HTTP request to the database.
	Timeout time.Duration
	// DefaultBatchSize is the cursor batch size used when a tool call
	// does not specify one.
	DefaultBatchSize int
}

// Load reads the configuration from the environment. Unset variables
// fall back to defaults suitable for a local ArangoDB instance.
//
// Recognized variables:
//
//	ARANGO_ENDPOINT           server base URL (default http://localhost:8529)
//	ARANGO_DATABASE           database name (default _system)
//	ARANGO_USERNAME           basic auth user (default root)
//	ARANGO_PASSWORD           basic auth password
//	ARANGO_READ_ONLY          true/false (default false)
//	ARANGO_TIMEOUT_SECONDS    HTTP timeout in seconds (default 30)
//	ARANGO_DEFAULT_BATCH_SIZE cursor batch size (default 100)
func Load() (*Config, error) {
	cfg := &Config{
		Endpoint:         envOr("ARANGO_ENDPOINT", defaultEndpoint),
		Database:         envOr("ARANGO_DATABASE", defaultDatabase),
		Username:         envOr("ARANGO_USERNAME", defaultUsername),
		Password:         os.Getenv("ARANGO_PASSWORD"),
		Timeout:          defaultTimeout,
		DefaultBatchSize: defaultBatchSize,
	}

	if raw := os.Getenv("ARANGO_READ_ONLY"); raw != "" {
		readOnly, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid ARANGO_READ_ONLY value %q: %w", raw, err)
		}
		cfg.ReadOnly = readOnly
	}

	if raw := os.Getenv("ARANGO_TIMEOUT_SECONDS"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return nil, fmt.Errorf("invalid ARANGO_TIMEOUT_SECONDS value %q", raw)
		}
		cfg.Timeout = time.Duration(seconds) * time.Second
	}

	if raw := os.Getenv("ARANGO_DEFAULT_BATCH_SIZE"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size <= 0 {
			return nil, fmt.Errorf("invalid ARANGO_DEFAULT_BATCH_SIZE value %q", raw)
		}
		cfg.DefaultBatchSize = size
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
