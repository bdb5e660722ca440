package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	StorageBackendLocal    = "local"
	StorageBackendSupabase = "supabase"
)

type Config struct {
	// Database
	DatabaseURL string

	// Storage
	StorageBackend         string
	PublicDir              string
	SupabaseURL            string
	SupabasePublishableKey string
	SupabaseStorageBucket  string

	// Cache
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Server
	Port        string
	Environment string
	BaseURL     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		DatabaseURL: getEnv("DATABASE_URL", ""),

		StorageBackend:         getEnv("STORAGE_BACKEND", StorageBackendLocal),
		PublicDir:              getEnv("PUBLIC_DIR", "public"),
		SupabaseURL:            getEnv("SUPABASE_URL", ""),
		SupabasePublishableKey: getEnv("SUPABASE_PUBLISHABLE_KEY", ""),
		SupabaseStorageBucket:  getEnv("SUPABASE_STORAGE_BUCKET", "project-images"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.StorageBackend {
	case StorageBackendLocal:
		if c.PublicDir == "" {
			return fmt.Errorf("PUBLIC_DIR is required for local storage")
		}
	case StorageBackendSupabase:
		if c.SupabaseURL == "" {
			return fmt.Errorf("SUPABASE_URL is required for supabase storage")
		}
		if c.SupabasePublishableKey == "" {
			return fmt.Errorf("SUPABASE_PUBLISHABLE_KEY is required for supabase storage")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q (expected %q or %q)",
			c.StorageBackend, StorageBackendLocal, StorageBackendSupabase)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}
