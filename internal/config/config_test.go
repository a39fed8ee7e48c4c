package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var keys = []string{
	"APP_PORT",
	"APP_ENV",
	"OTEL_SERVICE_NAME",
	"OTEL_EXPORTER_OTLP_ENDPOINT",
	"TELEMETRY_ENABLED",
	"PARKING_RESERVED_BY",
	"PARKING_ACTIVE_BOOKINGS_LIMIT",
	"SHUTDOWN_TIMEOUT_SECONDS",
}

func unsetAll(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetAll(t)
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "campus-parking-service", cfg.OTelServiceName)
	assert.Equal(t, "http://localhost:4318", cfg.OTelEndpoint)
	assert.True(t, cfg.TelemetryEnabled)
	assert.Equal(t, "current.user@university.edu", cfg.ReservedBy)
	assert.Equal(t, 2, cfg.ActiveBookingsLimit)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadFromEnv(t *testing.T) {
	unsetAll(t)
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("TELEMETRY_ENABLED", "false")
	t.Setenv("PARKING_RESERVED_BY", "jane.smith@university.edu")
	t.Setenv("PARKING_ACTIVE_BOOKINGS_LIMIT", "5")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "3")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.False(t, cfg.IsDevelopment())
	assert.False(t, cfg.TelemetryEnabled)
	assert.Equal(t, "jane.smith@university.edu", cfg.ReservedBy)
	assert.Equal(t, 5, cfg.ActiveBookingsLimit)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestInvalidValuesFallBackToDefault(t *testing.T) {
	unsetAll(t)
	t.Setenv("TELEMETRY_ENABLED", "maybe")
	t.Setenv("PARKING_ACTIVE_BOOKINGS_LIMIT", "two")

	cfg := Load()

	assert.True(t, cfg.TelemetryEnabled)
	assert.Equal(t, 2, cfg.ActiveBookingsLimit)
}
