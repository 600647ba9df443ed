package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultFacebookLink is the contact URL given to listings created without one
const DefaultFacebookLink = "https://www.facebook.com/letuan089"

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port             string
	CORSAllowOrigins string

	// Database configuration
	DBType            string // postgres, mysql, sqlserver, sqlite, sqlite-pure
	DatabaseURL       string // full DSN, overrides the discrete fields below
	DBHost            string
	DBPort            string
	DBDatabase        string
	DBUser            string
	DBPassword        string
	DBConnectionLimit int
	DBLogLevel        string

	// Catalog behavior
	DefaultFacebookLink string
	SeedCategories      bool
}

// Load loads configuration from an optional .env file and the environment
func Load() (*Config, error) {
	if err := loadEnvFile(getEnv("ENV_FILE", ".env")); err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:                getEnv("PORT", "8000"),
		CORSAllowOrigins:    getEnv("CORS_ALLOW_ORIGINS", "*"),
		DBType:              strings.ToLower(getEnv("DB_TYPE", "postgres")),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnv("DB_PORT", "5432"),
		DBDatabase:          getEnv("DB_DATABASE", ""),
		DBUser:              getEnv("DB_USER", ""),
		DBPassword:          getEnv("DB_PASSWORD", ""),
		DBConnectionLimit:   getEnvAsInt("DB_CONNECTION_LIMIT", 5),
		DBLogLevel:          strings.ToLower(getEnv("DB_LOG_LEVEL", "warn")),
		DefaultFacebookLink: getEnv("DEFAULT_FACEBOOK_LINK", DefaultFacebookLink),
		SeedCategories:      getEnvAsBool("SEED_CATEGORIES", true),
	}

	// Validate required fields
	if cfg.DatabaseURL == "" && cfg.DBDatabase == "" {
		return nil, fmt.Errorf("DB_DATABASE or DATABASE_URL is required")
	}
	if cfg.DBConnectionLimit < 1 {
		return nil, fmt.Errorf("DB_CONNECTION_LIMIT must be positive, got %d", cfg.DBConnectionLimit)
	}

	return cfg, nil
}

// loadEnvFile applies a dotenv file without overriding variables already set.
// A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
