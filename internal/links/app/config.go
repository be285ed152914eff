package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer    string // Required: expected issuer claim on access tokens
	JWTSecret string // Required: HMAC secret shared with the auth service

	DatabaseFile  string // Optional: path to SQLite database file (default: ./links.db)
	ShortCodeSalt string // Optional: salt for short-code generation; must stay stable across restarts
	SelfHosted    bool   // Optional: self-hosted deployments bypass membership gating

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Lifecycle sweep interval (default: 1h)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:               os.Getenv("LINKS_ISSUER"),
		JWTSecret:            os.Getenv("LINKS_JWT_SECRET"),
		DatabaseFile:         getEnvOrDefault("LINKS_DATABASE_FILE", "links.db"),
		ShortCodeSalt:        getEnvOrDefault("LINKS_SHORTCODE_SALT", "linkmint"),
		SelfHosted:           getEnvBoolOrDefault("LINKS_SELF_HOSTED", false),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	if cfg.Issuer == "" {
		cfg.Issuer = "linkmint-auth"
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

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
