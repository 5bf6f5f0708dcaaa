package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config returns the value of key from the environment, loading .env first
// when one is present.
func Config(key string) string {
	_ = godotenv.Load(".env")
	return os.Getenv(key)
}

// ConfigDefault returns fallback when key is unset or empty.
func ConfigDefault(key, fallback string) string {
	if value := Config(key); value != "" {
		return value
	}
	return fallback
}
