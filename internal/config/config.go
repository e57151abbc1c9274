// Package config loads runtime settings from the environment. A .env file in
// the working directory is loaded first when present.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs at startup.
type Config struct {
	Port            string
	LogLevel        string
	AllowedOrigins  string
	DataDir         string
	SimulateLatency time.Duration
	ShutdownTimeout time.Duration
	RateLimit       int
	ActivityFeedCap int
}

// Load reads configuration from the environment with sensible defaults.
func Load() *Config {
	// Missing .env is fine; the defaults below cover local runs.
	_ = godotenv.Load()

	return &Config{
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		AllowedOrigins:  getEnv("ALLOWED_ORIGINS", "*"),
		DataDir:         getEnv("DATA_DIR", "./data"),
		SimulateLatency: getDuration("SIMULATE_LATENCY", 300*time.Millisecond),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		RateLimit:       getInt("RATE_LIMIT", 100),
		ActivityFeedCap: getInt("ACTIVITY_FEED_CAP", 200),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
