// Package config loads tool configuration from OPEN115_* environment
// variables.
package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	defaultDBPath         = "cache-115.db"
	defaultTokenStorePath = ".env"
)

// Config holds the tool configuration. CLI arguments override these
// values, which in turn override the built-in defaults.
type Config struct {
	// DBPath is the cache database file written by the external 115 client.
	DBPath string
	// PersistTokens makes export-tokens upsert into TokenStorePath
	// instead of printing to stdout.
	PersistTokens bool
	// TokenStorePath is the env file used when persisting tokens.
	TokenStorePath string
}

// Load reads configuration from environment variables. All variables are
// optional: OPEN115_DB_PATH (default cache-115.db), OPEN115_PERSIST_TOKENS
// (default false), OPEN115_TOKEN_STORE_PATH (default .env).
func Load() (*Config, error) {
	cfg := &Config{
		DBPath:         defaultDBPath,
		TokenStorePath: defaultTokenStorePath,
	}

	if v, ok := os.LookupEnv("OPEN115_DB_PATH"); ok && v != "" {
		cfg.DBPath = v
	}

	if v, ok := os.LookupEnv("OPEN115_TOKEN_STORE_PATH"); ok && strings.TrimSpace(v) != "" {
		cfg.TokenStorePath = v
	}

	if v, ok := os.LookupEnv("OPEN115_PERSIST_TOKENS"); ok {
		parsed, valid := parseBool(v)
		if !valid {
			return nil, fmt.Errorf("OPEN115_PERSIST_TOKENS has invalid boolean %q", v)
		}
		cfg.PersistTokens = parsed
	}

	return cfg, nil
}

// parseBool accepts the boolish spellings the wider 115 tooling uses
// (1/true/t/yes/y/on and their negations), case-insensitively.
func parseBool(v string) (value, valid bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "t", "yes", "y", "on":
		return true, true
	case "0", "false", "f", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
