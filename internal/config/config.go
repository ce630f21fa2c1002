// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// devSecretKey is the key-derivation passphrase used when SECRET_KEY is
// unset outside production. Production refuses to start without an explicit
// SECRET_KEY; secrets encrypted under this literal are dev fixtures only.
const devSecretKey = "fitledger-dev-only-secret"

// Config holds application configuration.
type Config struct {
	Env  string
	Port string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// SecretKey is the passphrase the credential cipher derives its key from.
	SecretKey string

	// Gemini completion API (suggestions). Empty API key disables the feature.
	GeminiAPIKey string
	GeminiModel  string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	env := getEnv("ENV", "development")

	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		if env == "production" {
			return nil, fmt.Errorf("SECRET_KEY must be set in production")
		}
		log.Println("Warning: SECRET_KEY not set, using development default")
		secret = devSecretKey
	}

	return &Config{
		Env:  env,
		Port: getEnv("PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "fitledger"),
		DBPassword: getEnv("DB_PASSWORD", "fitledger"),
		DBName:     getEnv("DB_NAME", "fitledger"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		SecretKey: secret,

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
	}, nil
}

// DatabaseDSN returns the PostgreSQL connection string.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
