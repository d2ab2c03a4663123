// Package config loads runtime settings from the environment.
package config

import (
	"os"
	"strconv"
)

// Config holds the CLI configuration.
type Config struct {
	// DBPath is the SQLite corpus store location.
	DBPath string

	// Window is the context window length L.
	Window int

	// Length is the number of symbols generated per run.
	Length int

	// Step is the start-offset spacing between generated symbols.
	Step float64

	// Seed drives seed-window selection; -1 means random.
	Seed int64
}

// Load reads configuration from MOTIF_* environment variables,
// falling back to defaults for unset or unparsable values.
func Load() *Config {
	return &Config{
		DBPath: getEnv("MOTIF_DB", "motif.sqlite3"),
		Window: getEnvInt("MOTIF_WINDOW", 100),
		Length: getEnvInt("MOTIF_LENGTH", 500),
		Step:   getEnvFloat("MOTIF_STEP", 0.5),
		Seed:   getEnvInt64("MOTIF_SEED", -1),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value, err := strconv.ParseInt(os.Getenv(key), 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return value
	}
	return defaultValue
}
