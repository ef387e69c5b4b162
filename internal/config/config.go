package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	ServerPort string
	GinMode    string
	LogLevel   string
	LogFormat  string
	// AllowedOrigins controls HTTP CORS. Empty slice means all origins are
	// permitted (dev default).
	AllowedOrigins []string
	// SubmitRateLimit caps POST /api/assessments per client IP per
	// SubmitRateWindow.
	SubmitRateLimit  int
	SubmitRateWindow time.Duration
	// CatalogMaxAge is the Cache-Control max-age in seconds for the static
	// catalog routes.
	CatalogMaxAge int
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // Ignore error — .env is optional

	return &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		GinMode:          getEnv("GIN_MODE", "debug"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "pretty"),
		AllowedOrigins:   parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
		SubmitRateLimit:  getEnvInt("SUBMIT_RATE_LIMIT", 30),
		SubmitRateWindow: time.Duration(getEnvInt("SUBMIT_RATE_WINDOW_SECONDS", 60)) * time.Second,
		CatalogMaxAge:    getEnvInt("CATALOG_MAX_AGE_SECONDS", 3600),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// parseOrigins splits a comma-separated origins string into a trimmed slice.
// Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
