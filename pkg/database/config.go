package database

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// LoadConfigFromEnv loads database configuration from environment variables.
// DATABASE_URL takes precedence over the individual DB_* variables.
func LoadConfigFromEnv() (Config, error) {
	maxOpen, _ := strconv.Atoi(getEnvOrDefault("DB_MAX_OPEN_CONNS", "10"))
	maxIdle, _ := strconv.Atoi(getEnvOrDefault("DB_MAX_IDLE_CONNS", "5"))

	cfg := Config{
		MaxOpenConns:    maxOpen,
		MaxIdleConns:    maxIdle,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}

	if raw := os.Getenv("DATABASE_URL"); raw != "" {
		if err := applyDatabaseURL(&cfg, raw); err != nil {
			return Config{}, err
		}
		return cfg, nil
	}

	port, err := strconv.Atoi(getEnvOrDefault("DB_PORT", "5432"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	cfg.Host = getEnvOrDefault("DB_HOST", "localhost")
	cfg.Port = port
	cfg.User = getEnvOrDefault("DB_USER", "delver")
	cfg.Password = os.Getenv("DB_PASSWORD")
	cfg.Database = getEnvOrDefault("DB_NAME", "delver")
	cfg.SSLMode = getEnvOrDefault("DB_SSLMODE", "disable")
	return cfg, nil
}

// applyDatabaseURL fills connection fields from a postgres:// URL.
func applyDatabaseURL(cfg *Config, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid DATABASE_URL: %w", err)
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return fmt.Errorf("invalid DATABASE_URL scheme %q", u.Scheme)
	}

	cfg.Host = u.Hostname()
	cfg.Port = 5432
	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("invalid DATABASE_URL port: %w", err)
		}
		cfg.Port = port
	}
	if u.User != nil {
		cfg.User = u.User.Username()
		cfg.Password, _ = u.User.Password()
	}
	cfg.Database = strings.TrimPrefix(u.Path, "/")
	cfg.SSLMode = "disable"
	if mode := u.Query().Get("sslmode"); mode != "" {
		cfg.SSLMode = mode
	}
	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
