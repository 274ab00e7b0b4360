package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// StoreMode is the persistence strategy, resolved once at startup instead
// of re-probing environment variables inside every handler.
type StoreMode string

const (
	// StoreModeDurable uses Postgres with the in-memory store as fallback
	StoreModeDurable StoreMode = "durable"
	// StoreModeFallback runs on the volatile in-memory store only
	StoreModeFallback StoreMode = "fallback"
)

// Config holds all configuration values
type Config struct {
	// Server configuration
	Port        int
	Environment string

	// Persistence
	StoreMode   StoreMode
	DatabaseURL string

	// Image host
	ImgBBAPIKey   string
	ImgBBEndpoint string
	UploadTimeout time.Duration
}

// Load reads configuration from environment variables. The store strategy
// is decided here: DATABASE_URL present and FORCE_MEMORY_STORE unset means
// durable; anything else runs on the in-memory store (the serverless/demo
// tier).
func Load() (*Config, error) {
	port, err := strconv.Atoi(getEnvOrDefault("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	uploadTimeout, err := time.ParseDuration(getEnvOrDefault("UPLOAD_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid UPLOAD_TIMEOUT: %w", err)
	}

	forceMemory, err := strconv.ParseBool(getEnvOrDefault("FORCE_MEMORY_STORE", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid FORCE_MEMORY_STORE: %w", err)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	mode := StoreModeFallback
	if databaseURL != "" && !forceMemory {
		mode = StoreModeDurable
	}

	return &Config{
		Port:        port,
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),

		StoreMode:   mode,
		DatabaseURL: databaseURL,

		ImgBBAPIKey:   os.Getenv("IMGBB_API_KEY"),
		ImgBBEndpoint: getEnvOrDefault("IMGBB_ENDPOINT", "https://api.imgbb.com/1/upload"),
		UploadTimeout: uploadTimeout,
	}, nil
}

// IsProduction reports whether detailed error text must be withheld.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
