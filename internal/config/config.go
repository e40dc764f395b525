package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultLogLevel is used when LOG_LEVEL is unset or empty.
const DefaultLogLevel = "info"

// LevelTrace sits below slog.LevelDebug for LOG_LEVEL=trace.
const LevelTrace = slog.LevelDebug - 4

type Config struct {
	LogLevel    string // LOG_LEVEL, kept verbatim; see Level
	Environment string // "production" switches logs to JSON
	DocsEnabled bool   // if true, the swagger UI is mounted at /docs/
}

// Load reads .env (if present) and the process environment. Real env vars win over .env.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		Environment: getEnv("ENVIRONMENT", "development"),
		DocsEnabled: getEnv("DOCS_ENABLED", "") == "true" || getEnv("DOCS_ENABLED", "") == "1",
	}
}

// IsProduction reports whether Environment is "production" (case-insensitive).
func (c Config) IsProduction() bool {
	return strings.ToLower(c.Environment) == "production"
}

// Level parses LogLevel. On error it still returns slog.LevelInfo so callers can fall back.
func (c Config) Level() (slog.Level, error) {
	return ParseLevel(c.LogLevel)
}

// ParseLevel accepts trace, debug, info, warn, warning and error in any case,
// plus slog's offset form such as "debug+2" or "info-4".
func ParseLevel(s string) (slog.Level, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "trace":
		return LevelTrace, nil
	case "warning":
		return slog.LevelWarn, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL %q: %w", s, err)
	}
	return l, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
