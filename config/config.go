// Package config loads the application configuration from the environment
// with sensible defaults. An optional .env file in the working directory is
// read first, so an embedding shell can ship one next to the binary.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the application needs to start.
type Config struct {
	// DBPath is the location of the SQLite database file.
	DBPath string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// Load reads configuration with precedence: explicit env var > .env file >
// default.
func Load() Config {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	return Config{
		DBPath:   getEnv("SHOPBILL_DB_PATH", "./data/shopbill.db"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
