package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "storage:\n  driver: memory\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 15*time.Minute, cfg.Sweeper.PendingTTL)
	assert.Equal(t, 100, cfg.Sweeper.BatchSize)
	assert.False(t, cfg.Sweeper.Disabled)
	assert.Equal(t, 3, cfg.Integration.Attempts)
	assert.Equal(t, "hutbooker", cfg.Postgres.Database)

	tol, err := cfg.Booking.Tolerance()
	require.NoError(t, err)
	assert.True(t, tol.Equal(decimal.NewFromInt(2)))
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, `
storage:
  driver: postgres
sweeper:
  pending_ttl: 30m
booking:
  amount_tolerance: "0.5"
  confidence_threshold: 0.9
integration:
  attempts: 5
  delay: 1s
  backoff: 1.5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, cfg.Sweeper.PendingTTL)
	assert.InDelta(t, 0.9, cfg.Booking.ConfidenceThreshold, 1e-9)

	st := cfg.Integration.Strategy()
	assert.Equal(t, 5, st.Attempts)
	assert.Equal(t, time.Second, st.Delay)
	assert.InDelta(t, 1.5, st.Backoff, 1e-9)

	tol, err := cfg.Booking.Tolerance()
	require.NoError(t, err)
	assert.Equal(t, "0.5", tol.String())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown driver", body: "storage:\n  driver: mongo\n"},
		{name: "negative tolerance", body: "storage:\n  driver: memory\nbooking:\n  amount_tolerance: \"-1\"\n"},
		{name: "confidence above one", body: "storage:\n  driver: memory\nbooking:\n  confidence_threshold: 1.5\n"},
		{name: "too many attempts", body: "storage:\n  driver: memory\nintegration:\n  attempts: 50\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvPath(t *testing.T) {
	path := writeConfig(t, "storage:\n  driver: memory\n")
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
}

func TestLoggerConfig(t *testing.T) {
	assert.Equal(t, logger.DebugLevel, LoggerConfig{Level: "debug"}.LogLevel())
	assert.Equal(t, logger.WarnLevel, LoggerConfig{Level: "warn"}.LogLevel())
	assert.Equal(t, logger.ErrorLevel, LoggerConfig{Level: "error"}.LogLevel())
	assert.Equal(t, logger.InfoLevel, LoggerConfig{Level: "whatever"}.LogLevel())
}

func TestPostgresConfig_DSN(t *testing.T) {
	p := PostgresConfig{Host: "db", Port: 5433, User: "u", Password: "p", Database: "hb", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=hb sslmode=disable", p.DSN())
}

func TestOptionalSections(t *testing.T) {
	assert.False(t, CloudinaryConfig{CloudName: "c", APIKey: "k"}.Enabled())
	assert.True(t, CloudinaryConfig{CloudName: "c", APIKey: "k", APISecret: "s"}.Enabled())
	assert.False(t, RateLimitConfig{RPS: 0, Burst: 10}.Enabled())
	assert.True(t, RateLimitConfig{RPS: 1, Burst: 1}.Enabled())
}
