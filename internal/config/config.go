// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// defaultPromptSuffix is appended to every AI prompt so the upstream model
// answers in Markdown. Overridable via GEMINI_PROMPT_SUFFIX.
const defaultPromptSuffix = "\n\nFormat the entire answer as Markdown."

// SeedHolding describes one portfolio row inserted for every new investor.
type SeedHolding struct {
	Asset    string
	Quantity float64
	Value    float64
}

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// JWT
	JWTSecret        string
	JWTExpirationDur time.Duration

	// Gemini upstream
	GeminiAPIKey       string
	GeminiModel        string
	GeminiTimeout      time.Duration
	GeminiPromptSuffix string

	// Portfolio rows seeded at signup
	PortfolioSeed []SeedHolding
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),

		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiModel:        getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiPromptSuffix: getEnv("GEMINI_PROMPT_SUFFIX", defaultPromptSuffix),
	}

	expDur, err := parseDuration(getEnv("JWT_EXPIRES_IN", "60m"), 60*time.Minute, "JWT_EXPIRES_IN")
	if err != nil {
		return nil, err
	}
	config.JWTExpirationDur = expDur

	timeout, err := parseDuration(getEnv("GEMINI_TIMEOUT", "30s"), 30*time.Second, "GEMINI_TIMEOUT")
	if err != nil {
		return nil, err
	}
	config.GeminiTimeout = timeout

	seed, err := parseSeed(os.Getenv("PORTFOLIO_SEED"))
	if err != nil {
		return nil, err
	}
	config.PortfolioSeed = seed

	return config, nil
}

// DefaultSeed returns the demo portfolio inserted at signup when
// PORTFOLIO_SEED is not set.
func DefaultSeed() []SeedHolding {
	return []SeedHolding{
		{Asset: "Stock A", Quantity: 10, Value: 1000},
		{Asset: "Stock B", Quantity: 5, Value: 500},
	}
}

// parseSeed parses a comma-separated list of "asset:quantity:value"
// entries, e.g. "Stock A:10:1000,Stock B:5:500".
func parseSeed(raw string) ([]SeedHolding, error) {
	if raw == "" {
		return DefaultSeed(), nil
	}

	var seed []SeedHolding
	for _, entry := range strings.Split(raw, ",") {
		parts := strings.Split(strings.TrimSpace(entry), ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid PORTFOLIO_SEED entry %q: want asset:quantity:value", entry)
		}
		quantity, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid PORTFOLIO_SEED quantity in %q: %w", entry, err)
		}
		value, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid PORTFOLIO_SEED value in %q: %w", entry, err)
		}
		seed = append(seed, SeedHolding{Asset: parts[0], Quantity: quantity, Value: value})
	}
	return seed, nil
}

func parseDuration(raw string, fallback time.Duration, key string) (time.Duration, error) {
	dur, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, raw, fallback)
		return fallback, nil
	}
	if dur <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, raw)
	}
	return dur, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
