// Package config provides typed configuration for the delver server.
// Configuration is assembled from built-in defaults, an optional
// delver.yaml overlay, and environment variables (highest precedence).
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the root configuration handle passed into constructors.
// There are no configuration globals beyond this value.
type Config struct {
	Server    *ServerConfig    `yaml:"server"`
	Auth      *AuthConfig      `yaml:"auth"`
	Queue     *QueueConfig     `yaml:"queue"`
	Redis     *RedisConfig     `yaml:"redis"`
	LLM       *LLMConfig       `yaml:"llm"`
	Search    *SearchConfig    `yaml:"search"`
	Extract   *ExtractConfig   `yaml:"extract"`
	Research  *ResearchConfig  `yaml:"research"`
	Retention *RetentionConfig `yaml:"retention"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server:    DefaultServerConfig(),
		Auth:      DefaultAuthConfig(),
		Queue:     DefaultQueueConfig(),
		Redis:     DefaultRedisConfig(),
		LLM:       DefaultLLMConfig(),
		Search:    DefaultSearchConfig(),
		Extract:   DefaultExtractConfig(),
		Research:  DefaultResearchConfig(),
		Retention: DefaultRetentionConfig(),
	}
}

// Validate checks cross-field constraints on the assembled configuration.
func (c *Config) Validate() error {
	if c.Queue.WorkerCount <= 0 {
		return fmt.Errorf("queue.worker_count must be positive, got %d", c.Queue.WorkerCount)
	}
	if c.Queue.SessionTimeout <= 0 {
		return fmt.Errorf("queue.session_timeout must be positive")
	}
	if c.Queue.MaxAttempts <= 0 {
		return fmt.Errorf("queue.max_attempts must be positive, got %d", c.Queue.MaxAttempts)
	}
	if c.Extract.Concurrency <= 0 {
		return fmt.Errorf("extract.concurrency must be positive, got %d", c.Extract.Concurrency)
	}
	if c.Research.MaxSourcesCap <= 0 || c.Research.MaxSourcesCap > 200 {
		return fmt.Errorf("research.max_sources_cap must be in (0,200], got %d", c.Research.MaxSourcesCap)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required (JWT_SECRET)")
	}
	if c.LLM.BaseURL == "" {
		return fmt.Errorf("llm.base_url is required (LITELLM_BASE_URL)")
	}
	if c.Search.Endpoint == "" {
		return fmt.Errorf("search.endpoint is required (SEARX_ENDPOINT)")
	}
	return nil
}

// ResearchConfig bounds the research pipeline itself.
type ResearchConfig struct {
	// MaxSourcesCap is the server-side ceiling on parameters.max_sources.
	MaxSourcesCap int `yaml:"max_sources_cap"`

	// MaxIterations is the per-agent iteration budget.
	MaxIterations int `yaml:"max_iterations"`

	// MaxIdenticalToolCalls aborts an agent retrying the same call in a row.
	MaxIdenticalToolCalls int `yaml:"max_identical_tool_calls"`
}

// DefaultResearchConfig returns the built-in research pipeline defaults.
func DefaultResearchConfig() *ResearchConfig {
	return &ResearchConfig{
		MaxSourcesCap:         200,
		MaxIterations:         100,
		MaxIdenticalToolCalls: 3,
	}
}

// getEnv returns the env var value or a default.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvInt returns the env var parsed as int, or a default.
func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// getEnvDuration returns the env var parsed as a duration, or a default.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
