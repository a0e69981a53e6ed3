package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all runtime configuration, read from environment variables
type Config struct {
	Env  string
	Port string

	DatabaseURL string
	JWTSecret   string

	GeminiAPIKey string
	GeminiModel  string

	AmazonAccessKey   string
	AmazonSecretKey   string
	AmazonPartnerTag  string
	AmazonRegion      string
	AmazonAPIEndpoint string

	GoogleClientID     string
	GoogleClientSecret string
	AppleClientID      string
	AppleKeyID         string
	AppleTeamID        string

	LogLevel  string
	LogFormat string
}

// Load reads configuration from the environment with development defaults.
// Callers load .env beforehand (godotenv in main).
func Load() *Config {
	return &Config{
		Env:  getEnv("APP_ENV", "development"),
		Port: getEnv("PORT", "8080"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   getEnv("JWT_SECRET", "dev-jwt-secret-change-in-production"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),

		AmazonAccessKey:   os.Getenv("AMAZON_ACCESS_KEY"),
		AmazonSecretKey:   os.Getenv("AMAZON_SECRET_KEY"),
		AmazonPartnerTag:  getEnv("AMAZON_PARTNER_TAG", "roomspace-20"),
		AmazonRegion:      getEnv("AMAZON_REGION", "us-east-1"),
		AmazonAPIEndpoint: getEnv("AMAZON_API_ENDPOINT", "https://webservices.amazon.com/paapi5/searchitems"),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		AppleClientID:      os.Getenv("APPLE_CLIENT_ID"),
		AppleKeyID:         os.Getenv("APPLE_KEY_ID"),
		AppleTeamID:        os.Getenv("APPLE_TEAM_ID"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}
}

// MockMode reports whether the in-memory store should be used instead of
// Postgres. Tests and database-less development both run in mock mode.
func (c *Config) MockMode() bool {
	if c.Env == "test" {
		return true
	}
	if c.DatabaseURL == "" {
		return true
	}
	return strings.Contains(c.DatabaseURL, "localhost") && boolEnv("FORCE_MOCK_STORE")
}

// ServiceAvailable reports whether an external integration is configured.
// Used by the health endpoint and the social-auth stubs.
func (c *Config) ServiceAvailable(service string) bool {
	switch service {
	case "database":
		return !c.MockMode()
	case "generation":
		return c.GeminiAPIKey != ""
	case "amazon":
		return c.AmazonAccessKey != "" && c.AmazonSecretKey != ""
	case "google":
		return c.GoogleClientID != "" && c.GoogleClientSecret != ""
	case "apple":
		return c.AppleClientID != "" && c.AppleKeyID != "" && c.AppleTeamID != ""
	default:
		return false
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func boolEnv(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
