package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	GoogleClientID string // Required for sign-in: Google OAuth client ID rendered into the login page
	SupabaseURL    string // Required for sign-in: base URL of the Supabase project (JWKS lives under it)
	PublishableKey string // Required for sign-in: Supabase publishable (anon) key for the browser client

	SupportedDomains []string // Optional: comma-separated root domains served by the gateway
	DatabaseURL      string   // Optional: Postgres DSN for login analytics; empty disables analytics
	DatabaseSchema   string   // Optional: Postgres schema for gateway tables (default: login)
	KeyCacheTTL      time.Duration

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// defaultDomains are the sibling properties the gateway fronts when
// SUPPORTED_DOMAINS is not set.
var defaultDomains = []string{"cddc39.tech", "dmikalova.dev", "keyforge.cards", "mklv.tech"}

// LoadConfig reads configuration from the environment. Auth-critical values
// are allowed to be empty here; handlers respond with a configuration error
// at request time so the health probe stays useful on a misconfigured box.
func LoadConfig() Config {
	cfg := Config{
		GoogleClientID: os.Getenv("GOOGLE_CLIENT_ID"),
		SupabaseURL:    os.Getenv("SUPABASE_URL"),
		PublishableKey: os.Getenv("SUPABASE_PUBLISHABLE_KEY"),

		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DatabaseSchema: getEnvOrDefault("DATABASE_SCHEMA", "login"),
		KeyCacheTTL:    getEnvDurationOrDefault("KEY_CACHE_TTL", time.Hour),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	if domains := os.Getenv("SUPPORTED_DOMAINS"); domains != "" {
		cfg.SupportedDomains = strings.Split(domains, ",")
	} else {
		cfg.SupportedDomains = defaultDomains
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are read as minutes.
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
