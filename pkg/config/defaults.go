package config

import (
	"runtime"
	"time"
)

// defaultWorkerCount is CPU×2, the default sizing for the worker pool.
func defaultWorkerCount() int {
	return runtime.NumCPU() * 2
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port             string   `yaml:"port"`
	AllowedWSOrigins []string `yaml:"allowed_ws_origins"`

	// Fixed-window per-user rate limits (requests per minute).
	AuthRateLimit     int `yaml:"auth_rate_limit"`
	ResearchRateLimit int `yaml:"research_rate_limit"`
	GeneralRateLimit  int `yaml:"general_rate_limit"`
}

// DefaultServerConfig returns the built-in server defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:              "8080",
		AuthRateLimit:     5,
		ResearchRateLimit: 10,
		GeneralRateLimit:  30,
	}
}

// AuthConfig holds token signing settings.
type AuthConfig struct {
	JWTSecret string        `yaml:"-"` // env only, never from file
	TokenTTL  time.Duration `yaml:"token_ttl"`
}

// DefaultAuthConfig returns the built-in auth defaults.
func DefaultAuthConfig() *AuthConfig {
	return &AuthConfig{
		TokenTTL: 24 * time.Hour,
	}
}

// RedisConfig holds broker connection settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"-"` // env only
	DB       int    `yaml:"db"`
}

// DefaultRedisConfig returns the built-in redis defaults.
func DefaultRedisConfig() *RedisConfig {
	return &RedisConfig{
		Addr: "localhost:6379",
	}
}

// RetentionConfig controls scratchpad and session retention.
type RetentionConfig struct {
	// ScratchpadGrace is how long ResearchData rows of a terminal session
	// are kept before the sweeper deletes them. Minimum one hour.
	ScratchpadGrace time.Duration `yaml:"scratchpad_grace"`

	// SweepInterval is how often the retention sweep runs.
	SweepInterval time.Duration `yaml:"sweep_interval"`

	// StalledAfter is how long a PROCESSING session may go without a
	// heartbeat before the sweep fails it. Must exceed the queue lease
	// duration, or sessions awaiting redelivery get killed early.
	StalledAfter time.Duration `yaml:"stalled_after"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		ScratchpadGrace: 1 * time.Hour,
		SweepInterval:   10 * time.Minute,
		StalledAfter:    2 * time.Hour,
	}
}
