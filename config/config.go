package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	// Builder autosave quiescence window in milliseconds.
	AutosaveDebounceMs int

	// Expected parent origin for embed height messages. Empty means the
	// widget posts to any origin (legacy embed behaviour).
	EmbedParentOrigin string

	// Base URL used when generating embed snippets.
	PublicBaseURL string

	SendgridApiKey string
	EmailSender    string

	ReviewSyncApiURL string // Review provider aggregation endpoint
	ReviewSyncApiKey string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		AutosaveDebounceMs: getEnvInt("AUTOSAVE_DEBOUNCE_MS", 1200),
		EmbedParentOrigin:  getEnv("EMBED_PARENT_ORIGIN", ""),
		PublicBaseURL:      getEnv("PUBLIC_BASE_URL", "http://localhost:3000"),

		SendgridApiKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender:    getEnv("EMAIL_SENDER", "no-reply@reviewdash.io"),

		ReviewSyncApiURL: getEnv("REVIEW_SYNC_API_URL", "https://api.reviewsync.io/v1/"),
		ReviewSyncApiKey: getEnv("REVIEW_SYNC_API_KEY", ""),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.SendgridApiKey == "" {
		log.Println("Warning: SENDGRID_API_KEY not set. Review invitation emails are disabled.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
