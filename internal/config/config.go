package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	Environment         string
	OTelServiceName     string
	OTelEndpoint        string
	TelemetryEnabled    bool
	ReservedBy          string
	ActiveBookingsLimit int
	ShutdownTimeout     time.Duration
}

// Load reads .env (when present) and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("could not load .env file", slog.String("error", err.Error()))
	}

	return &Config{
		Port:                envOr("APP_PORT", "8080"),
		Environment:         envOr("APP_ENV", "development"),
		OTelServiceName:     envOr("OTEL_SERVICE_NAME", "campus-parking-service"),
		OTelEndpoint:        envOr("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318"),
		TelemetryEnabled:    envOrBool("TELEMETRY_ENABLED", true),
		ReservedBy:          envOr("PARKING_RESERVED_BY", "current.user@university.edu"),
		ActiveBookingsLimit: envOrInt("PARKING_ACTIVE_BOOKINGS_LIMIT", 2),
		ShutdownTimeout:     time.Duration(envOrInt("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func envOrInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envOrBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
