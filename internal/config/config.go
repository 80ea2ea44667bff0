// Package config provides configuration for the stardate converter.
// Everything comes from environment variables; command-line flags
// override individual values at the CLI layer.
package config

import (
	"os"
	"strconv"
)

// Config holds the application configuration.
type Config struct {
	// Conversion
	Mode string // STARDATE_MODE (default: no_leap)

	// Canon reference data
	CanonFile string // STARDATE_CANON (optional, replaces the embedded canon dataset)

	// Logging
	LogDir    string // STARDATE_LOG_DIR (optional, also logs to a rotating file there)
	LogFormat string // STARDATE_LOG_FORMAT (text or json, default: text)

	// Output
	NoColor bool // STARDATE_NO_COLOR, or the conventional NO_COLOR
	Width   int  // STARDATE_WIDTH (result block width, default: 62)
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Mode:      envStr("STARDATE_MODE", "no_leap"),
		CanonFile: envStr("STARDATE_CANON", ""),
		LogDir:    envStr("STARDATE_LOG_DIR", ""),
		LogFormat: envStr("STARDATE_LOG_FORMAT", "text"),
		NoColor:   envBool("STARDATE_NO_COLOR", false) || os.Getenv("NO_COLOR") != "",
		Width:     envInt("STARDATE_WIDTH", 62),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
