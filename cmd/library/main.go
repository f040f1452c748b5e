package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"library-manager/internal/config"
	"library-manager/pkg/container"
	"library-manager/pkg/logger"
)

func main() {
	// Load from .env file (development/local); otherwise the system
	// environment is used as-is.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	env := getEnv("APP_ENV", "development")
	logger.Init(env)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	c := container.Build(cfg)

	// Everything past this point is presentation glue: a text menu over
	// the catalog and lending services.
	if err := runMenu(c, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("menu loop: %v", err)
	}
}

// getEnv reads an environment variable with a fallback default value.
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
