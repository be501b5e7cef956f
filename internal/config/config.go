package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrNoDataSource = errors.New("config: one of POSTGRES_DSN or METRICS_FIXTURE_PATH must be set")

// Config holds application configuration.
type Config struct {
	AppName  string
	HTTPAddr string
	LogLevel string

	PostgresDSN       string
	MetricsTable      string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	// FixturePath points at a JSON array of records served from memory
	// when no DSN is configured.
	FixturePath string

	SnapshotCapacity int
	SnapshotTTL      time.Duration

	ShutdownTimeout time.Duration
}

// Load loads configuration from environment variables and .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		AppName:           getenv("APP_NAME", "usage-insights-service"),
		HTTPAddr:          getenv("HTTP_ADDR", ":8080"),
		LogLevel:          strings.ToLower(getenv("LOG_LEVEL", "info")),
		PostgresDSN:       strings.TrimSpace(getenv("POSTGRES_DSN", "")),
		MetricsTable:      getenv("METRICS_TABLE", "user_metrics_daily"),
		DBMaxOpenConns:    getenvInt("DB_MAX_OPEN_CONNS", 20),
		DBMaxIdleConns:    getenvInt("DB_MAX_IDLE_CONNS", 10),
		DBConnMaxLifetime: getenvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		FixturePath:       strings.TrimSpace(getenv("METRICS_FIXTURE_PATH", "")),
		SnapshotCapacity:  getenvInt("SNAPSHOT_CAPACITY", 50),
		SnapshotTTL:       getenvDuration("SNAPSHOT_TTL", 10*time.Minute),
		ShutdownTimeout:   getenvDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
	}

	if cfg.PostgresDSN == "" && cfg.FixturePath == "" {
		return cfg, ErrNoDataSource
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

func getenvDuration(key string, def time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}
