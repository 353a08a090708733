package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("LITELLM_BASE_URL", "http://localhost:4000")
	t.Setenv("SEARX_ENDPOINT", "http://localhost:8888")
}

func TestLoad_Defaults(t *testing.T) {
	baseEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 50*time.Minute, cfg.Queue.SessionTimeout)
	assert.Equal(t, 3, cfg.Queue.MaxAttempts)
	assert.Equal(t, 2*time.Second, cfg.Queue.RetryBackoff)
	assert.Equal(t, 100, cfg.Research.MaxIterations)
	assert.Equal(t, 200, cfg.Research.MaxSourcesCap)
	assert.Equal(t, 3, cfg.Extract.Concurrency)
	assert.Equal(t, 100, cfg.Extract.MinContentLength)
	assert.Equal(t, time.Hour, cfg.Retention.ScratchpadGrace)
	assert.Equal(t, 5, cfg.Server.AuthRateLimit)
	assert.Equal(t, 10, cfg.Server.ResearchRateLimit)
	assert.Equal(t, 30, cfg.Server.GeneralRateLimit)
}

func TestLoad_FileOverlay(t *testing.T) {
	baseEnv(t)

	path := filepath.Join(t.TempDir(), "delver.yaml")
	content := `
queue:
  worker_count: 4
  session_timeout: 10m
search:
  max_results: 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Queue.WorkerCount)
	assert.Equal(t, 10*time.Minute, cfg.Queue.SessionTimeout)
	assert.Equal(t, 5, cfg.Search.MaxResults)
	// Untouched sections keep defaults.
	assert.Equal(t, 3, cfg.Queue.MaxAttempts)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	baseEnv(t)
	t.Setenv("WORKER_COUNT", "7")
	t.Setenv("SESSION_TIMEOUT", "5m")

	path := filepath.Join(t.TempDir(), "delver.yaml")
	require.NoError(t, os.WriteFile(path, []byte("queue:\n  worker_count: 4\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Queue.WorkerCount)
	assert.Equal(t, 5*time.Minute, cfg.Queue.SessionTimeout)
}

func TestLoad_RedisURL(t *testing.T) {
	baseEnv(t)
	t.Setenv("REDIS_URL", "redis://:hunter2@redis.internal:6380/2")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "redis.internal:6380", cfg.Redis.Addr)
	assert.Equal(t, "hunter2", cfg.Redis.Password)
	assert.Equal(t, 2, cfg.Redis.DB)
}

func TestLoad_RedisHostPort(t *testing.T) {
	baseEnv(t)
	t.Setenv("REDIS_HOST", "redis.local")
	t.Setenv("REDIS_PORT", "6390")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "redis.local:6390", cfg.Redis.Addr)
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	baseEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.NotNil(t, cfg)
}

func TestLoad_MalformedFile(t *testing.T) {
	baseEnv(t)

	path := filepath.Join(t.TempDir(), "delver.yaml")
	require.NoError(t, os.WriteFile(path, []byte("queue: ["), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_MissingSecret(t *testing.T) {
	baseEnv(t)
	t.Setenv("JWT_SECRET", "")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt_secret")
}

func TestProviderForModel(t *testing.T) {
	tests := []struct {
		model string
		want  Provider
	}{
		{"gpt-4o-mini", ProviderOpenAI},
		{"GPT-4", ProviderOpenAI},
		{"o1-preview", ProviderOpenAI},
		{"claude-sonnet-4-5", ProviderAnthropic},
		{"llama3.1:70b", ProviderOllama},
		{"mistral-nemo", ProviderOllama},
		{"mixtral-8x7b", ProviderOllama},
		{"some-custom-model", ProviderOpenAI},
	}
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			assert.Equal(t, tt.want, ProviderForModel(tt.model))
		})
	}
}
