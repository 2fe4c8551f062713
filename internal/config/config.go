// Package config loads this tool's runtime configuration from environment
// variables: a flat struct, defaults applied when a variable is unset or
// unparsable, and an optional .env file loaded at startup via
// github.com/joho/godotenv.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every environment-tunable setting this tool reads at
// startup.
type Config struct {
	// HistoryDSN is the sqlite DSN match-run history is persisted to.
	HistoryDSN string
	// HistoryDebug turns on gorm's query logger for the history store.
	HistoryDebug bool
	// RetentionRuns is read from ASTM_RETENTION_RUNS (default 20). Nothing
	// in this module reads it; history.Store.Recent takes its limit as an
	// argument.
	RetentionRuns int
	// DefaultRecursive is read from ASTM_RECURSIVE (default true). The
	// match command's --recursive flag has its own default and does not
	// consult it.
	DefaultRecursive bool
	// Color is read from ASTM_COLOR (default true). The show command's
	// --color flag has its own default and does not consult it.
	Color bool
}

// Load reads Config from the process environment, first loading a .env
// file from the working directory if one exists (silently ignored when
// absent, matching godotenv.Load's own convention).
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		HistoryDSN:       getenv("ASTM_HISTORY_DSN", "astmatch_history.db"),
		HistoryDebug:     getBool("ASTM_HISTORY_DEBUG", false),
		RetentionRuns:    getInt("ASTM_RETENTION_RUNS", 20),
		DefaultRecursive: getBool("ASTM_RECURSIVE", true),
		Color:            getBool("ASTM_COLOR", true),
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
