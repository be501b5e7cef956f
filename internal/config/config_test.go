package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost/insights")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "user_metrics_daily", cfg.MetricsTable)
	require.Equal(t, 20, cfg.DBMaxOpenConns)
	require.Equal(t, 10, cfg.DBMaxIdleConns)
	require.Equal(t, 30*time.Minute, cfg.DBConnMaxLifetime)
	require.Equal(t, 50, cfg.SnapshotCapacity)
	require.Equal(t, 10*time.Minute, cfg.SnapshotTTL)
	require.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("METRICS_FIXTURE_PATH", "testdata/records.json")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("SNAPSHOT_CAPACITY", "5")
	t.Setenv("SNAPSHOT_TTL", "90s")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "testdata/records.json", cfg.FixturePath)
	require.Equal(t, 5, cfg.SnapshotCapacity)
	require.Equal(t, 90*time.Second, cfg.SnapshotTTL)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost/insights")
	t.Setenv("DB_MAX_OPEN_CONNS", "many")
	t.Setenv("SHUTDOWN_TIMEOUT", "-1s")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 20, cfg.DBMaxOpenConns)
	require.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_RequiresDataSource(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "")
	t.Setenv("METRICS_FIXTURE_PATH", "")

	_, err := Load()
	require.ErrorIs(t, err, ErrNoDataSource)
}
