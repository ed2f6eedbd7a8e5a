package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DatabaseFile         string        // Path to SQLite database file (default: ./manager.db)
	SessionTTL           time.Duration // Bearer session lifetime (default: 168h)
	ProxyTimeout         time.Duration // Upstream meeting-server call timeout (default: 15s)
	MailTimeout          time.Duration // Mail provider call timeout (default: 10s)
	AllowedOrigin        string        // CORS origin for the SPA (default: *)
	ResendAPIKey         string        // Optional deployment-level mail fallback
	EmailFrom            string        // Optional default From address
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired-row sweep interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		DatabaseFile:         getEnvOrDefault("MANAGER_DATABASE_FILE", "manager.db"),
		SessionTTL:           getEnvDurationOrDefault("MANAGER_SESSION_TTL", 7*24*time.Hour),
		ProxyTimeout:         getEnvDurationOrDefault("MANAGER_PROXY_TIMEOUT", 15*time.Second),
		MailTimeout:          getEnvDurationOrDefault("MANAGER_MAIL_TIMEOUT", 10*time.Second),
		AllowedOrigin:        getEnvOrDefault("ALLOWED_ORIGIN", "*"),
		ResendAPIKey:         os.Getenv("RESEND_API_KEY"),
		EmailFrom:            os.Getenv("EMAIL_FROM"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", time.Hour),
	}
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

	return defaultValue
}
