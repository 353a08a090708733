package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load assembles the configuration: built-in defaults, overridden by the
// yaml file at path (if it exists), overridden by environment variables.
// A missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	// Best effort: absence of a .env file is the normal production case.
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		overlay, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		if overlay != nil {
			if err := mergo.Merge(cfg, overlay, mergo.WithOverride); err != nil {
				return nil, fmt.Errorf("merging config file %s: %w", path, err)
			}
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	var overlay Config
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return &overlay, nil
}

// applyEnv overrides configuration from environment variables.
// Secrets (JWT_SECRET, LITELLM_API_KEY, REDIS_PASSWORD) are env-only.
func applyEnv(cfg *Config) {
	cfg.Server.Port = getEnv("PORT", cfg.Server.Port)

	cfg.Auth.JWTSecret = getEnv("JWT_SECRET", cfg.Auth.JWTSecret)
	cfg.Auth.TokenTTL = getEnvDuration("JWT_EXPIRES_IN", cfg.Auth.TokenTTL)

	applyRedisEnv(cfg.Redis)

	cfg.LLM.BaseURL = getEnv("LITELLM_BASE_URL", cfg.LLM.BaseURL)
	cfg.LLM.APIKey = getEnv("LITELLM_API_KEY", cfg.LLM.APIKey)
	cfg.LLM.DefaultModel = getEnv("LITELLM_DEFAULT_MODEL", cfg.LLM.DefaultModel)
	cfg.LLM.MaxTokens = getEnvInt("LLM_MAX_TOKENS", cfg.LLM.MaxTokens)

	cfg.Search.Endpoint = getEnv("SEARX_ENDPOINT", cfg.Search.Endpoint)
	cfg.Search.MaxResults = getEnvInt("SEARCH_MAX_RESULTS", cfg.Search.MaxResults)

	cfg.Research.MaxSourcesCap = getEnvInt("MAX_SOURCES_PER_RESEARCH", cfg.Research.MaxSourcesCap)

	cfg.Queue.WorkerCount = getEnvInt("WORKER_COUNT", cfg.Queue.WorkerCount)
	cfg.Queue.MaxConcurrentSessions = getEnvInt("MAX_CONCURRENT_SESSIONS", cfg.Queue.MaxConcurrentSessions)
	cfg.Queue.SessionTimeout = getEnvDuration("SESSION_TIMEOUT", cfg.Queue.SessionTimeout)
	cfg.Queue.GracefulShutdownTimeout = getEnvDuration("GRACEFUL_SHUTDOWN_TIMEOUT", cfg.Queue.GracefulShutdownTimeout)

	cfg.Retention.ScratchpadGrace = getEnvDuration("SCRATCHPAD_GRACE", cfg.Retention.ScratchpadGrace)
}

// applyRedisEnv resolves the broker address. REDIS_URL wins, then
// REDIS_ADDR, then REDIS_HOST/REDIS_PORT.
func applyRedisEnv(rc *RedisConfig) {
	rc.Password = getEnv("REDIS_PASSWORD", rc.Password)
	rc.DB = getEnvInt("REDIS_DB", rc.DB)

	if raw := os.Getenv("REDIS_URL"); raw != "" {
		if u, err := url.Parse(raw); err == nil && u.Host != "" {
			rc.Addr = u.Host
			if u.User != nil {
				if pass, ok := u.User.Password(); ok {
					rc.Password = pass
				}
			}
			if db, err := strconv.Atoi(strings.TrimPrefix(u.Path, "/")); err == nil {
				rc.DB = db
			}
			return
		}
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rc.Addr = addr
		return
	}
	if host := os.Getenv("REDIS_HOST"); host != "" {
		rc.Addr = host + ":" + getEnv("REDIS_PORT", "6379")
	}
}
