// Package services provides non-handler support code for the hello-ops
// microservice.
package services

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// Config - runtime configuration
type Config struct {
	Port    string // HTTP port to listen on
	GinMode string // gin mode (debug/release/test)
}

// LoadConfig reads configuration from the environment. An optional
// .env file in the working directory is loaded first; a missing file
// is not an error. Every value has a working default so the binary
// runs with zero environment.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:    envOrDefault("PORT", "8080"),
		GinMode: envOrDefault("GIN_MODE", gin.ReleaseMode),
	}
}

// envOrDefault returns the environment value or the fallback when unset
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
