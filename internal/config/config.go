package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	AdminCode   string
	ServerPort  string
}

func Load() *Config {
	// Local development keeps its settings in a .env file; in production the
	// variables come from the environment directly.
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	return &Config{
		DatabaseURL: databaseURL,
		AdminCode:   getEnv("ADMIN_CODE", "admin123"),
		ServerPort:  getEnv("SERVER_PORT", "8080"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
