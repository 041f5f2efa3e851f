package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the whole application configuration.
// Populated from environment variables.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, production
	Port        string
	Debug       bool // DEV_DEBUG: include stack traces in error payloads
}

type DatabaseConfig struct {
	Path     string // path of the SQLite file
	TestMode bool   // DB_TEST_MODE: use an in-memory store instead of the file
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Library Catalog API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("PORT", "8080"),
			Debug:       getEnvBool("DEV_DEBUG", false),
		},
		Database: DatabaseConfig{
			Path:     getEnv("DB_PATH", "books.db"),
			TestMode: getEnvBool("DB_TEST_MODE", false),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that the config is usable.
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.App.Port); err != nil {
		return fmt.Errorf("PORT must be an integer, got %q", c.App.Port)
	}
	if !c.Database.TestMode && c.Database.Path == "" {
		return fmt.Errorf("DB_PATH must not be empty outside test mode")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
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
