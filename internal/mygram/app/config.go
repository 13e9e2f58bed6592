package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	GoogleClientID     string        // Required: OAuth2 client id for the popup flow
	GoogleClientSecret string        // Required: OAuth2 client secret
	GoogleTimeout      time.Duration // Optional: bound on the code exchange round trip (default: 10s)

	SessionSecret string        // Optional: HMAC key for session credentials (random per-process if unset)
	CSRFSecret    string        // Optional: HMAC key for anti-forgery tokens (random per-process if unset)
	Issuer        string        // Optional: issuer claim for session credentials (default: mygram)
	SessionTTL    time.Duration // Optional: session credential lifetime (default: 24h)

	AllowedOrigins []string // Optional: comma-separated CORS allowlist (default: http://localhost:3000)
	CookieSecure   bool     // Optional: set Secure on cookies, enables SameSite=None (default: false)

	DatabaseFile            string        // Optional: path to SQLite database file (default: ./mygram.db)
	RevocationSweepInterval time.Duration // Optional: revocation registry sweep interval (default: 10m)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleTimeout:      getEnvDurationOrDefault("GOOGLE_TIMEOUT", 10*time.Second),

		SessionSecret: os.Getenv("SESSION_SECRET"),
		CSRFSecret:    os.Getenv("CSRF_SECRET"),
		Issuer:        getEnvOrDefault("SESSION_ISSUER", "mygram"),
		SessionTTL:    getEnvDurationOrDefault("SESSION_TTL", 24*time.Hour),

		AllowedOrigins: splitAndTrim(getEnvOrDefault("ALLOWED_ORIGINS", "http://localhost:3000")),
		CookieSecure:   getEnvBoolOrDefault("COOKIE_SECURE", false),

		DatabaseFile:            getEnvOrDefault("DATABASE_FILE", "mygram.db"),
		RevocationSweepInterval: getEnvDurationOrDefault("REVOCATION_SWEEP_INTERVAL", 10*time.Minute),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
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

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Accept plain integers as minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
