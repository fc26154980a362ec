// Package config loads service configuration from the environment,
// with an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/codeace-app/codeace/internal/llm"
	"github.com/codeace-app/codeace/internal/store"
)

// Config holds everything the serve command needs.
type Config struct {
	DBPath     string
	ServerPort string
	JWTSecret  string
	TokenTTL   time.Duration

	// EventRetention bounds how long attempt/review events are kept
	// before the daily prune job removes them.
	EventRetention time.Duration

	LLM llm.Config
}

// Load reads configuration from .env (if present) and the environment.
func Load() (*Config, error) {
	// A missing .env file is fine; the environment wins either way.
	_ = godotenv.Load()

	dbPath := os.Getenv("CODEACE_DB")
	if dbPath == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
		dbPath = p
	}

	cfg := &Config{
		DBPath:         dbPath,
		ServerPort:     getEnv("CODEACE_PORT", "8080"),
		JWTSecret:      os.Getenv("CODEACE_JWT_SECRET"),
		TokenTTL:       getDuration("CODEACE_TOKEN_TTL", 72*time.Hour),
		EventRetention: getDuration("CODEACE_EVENT_RETENTION", 90*24*time.Hour),
		LLM:            llm.ConfigFromEnv(),
	}

	return cfg, nil
}

// Validate checks the settings the server cannot run without.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("CODEACE_JWT_SECRET is required")
	}
	return c.LLM.Validate()
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
