package config

import (
	"os"
	"path/filepath"
)

// Config holds the whole application configuration, populated from
// environment variables.
type Config struct {
	App  AppConfig
	Data DataConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, production
}

// DataConfig locates the xlsx tables. Both live under one data
// directory and are created header-only on first access.
type DataConfig struct {
	Dir string
}

// BooksPath is the backing file of the books table.
func (d DataConfig) BooksPath() string {
	return filepath.Join(d.Dir, "books.xlsx")
}

// ReadersPath is the backing file of the readers table.
func (d DataConfig) ReadersPath() string {
	return filepath.Join(d.Dir, "readers.xlsx")
}

// Load reads config from environment variables with local defaults.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Library Manager"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Data: DataConfig{
			Dir: getEnv("LIBRARY_DATA_DIR", "data"),
		},
	}
	return cfg, nil
}

// getEnv reads an environment variable with a fallback default value.
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
