package config

import (
	"log/slog"
	"os"
)

// Default configuration values
const (
	DefaultPort = "8080"
)

// Config holds the server configuration.
type Config struct {
	// Port is the TCP port the HTTP/websocket listener binds to.
	Port string

	// LogLevel is the minimum slog level emitted.
	LogLevel slog.Level

	// AllowedOrigin restricts websocket upgrades to one Origin header
	// value. Empty means any origin is accepted.
	AllowedOrigin string
}

// Load reads configuration from environment variables, falling back to
// defaults. Environment priority: env var > hardcoded default.
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = DefaultPort
	}

	return &Config{
		Port:          port,
		LogLevel:      logLevel(),
		AllowedOrigin: os.Getenv("ALLOWED_ORIGIN"),
	}
}

func logLevel() slog.Level {
	switch os.Getenv("LOG_LEVEL") {
	case "dev", "development", "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "production", "prod":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
