package config

import (
	"strings"
	"time"
)

// LLMConfig holds chat-completion endpoint settings. The wire contract is
// OpenAI-compatible regardless of the provider behind the base URL.
type LLMConfig struct {
	BaseURL      string        `yaml:"base_url"`
	APIKey       string        `yaml:"-"` // env only
	DefaultModel string        `yaml:"default_model"`
	MaxTokens    int           `yaml:"max_tokens"`

	// RequestTimeout bounds a single completion call.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// MaxRetries is the attempt count for transient failures (network,
	// 5xx, 429). 4xx other than 429 is never retried.
	MaxRetries int `yaml:"max_retries"`

	// RetryBaseDelay is the base for exponential retry backoff.
	RetryBaseDelay time.Duration `yaml:"retry_base_delay"`
}

// DefaultLLMConfig returns the built-in LLM client defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		DefaultModel:   "gpt-4o-mini",
		MaxTokens:      4096,
		RequestTimeout: 2 * time.Minute,
		MaxRetries:     3,
		RetryBaseDelay: 2 * time.Second,
	}
}

// Provider identifies the family behind a model name.
type Provider string

// Known providers.
const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderOllama    Provider = "ollama"
)

// ProviderForModel derives the provider from model-name patterns.
// gpt* → openai, claude* → anthropic, llama/mistral/mixtral* → ollama.
// Unknown names default to openai since the wire contract is uniform.
func ProviderForModel(model string) Provider {
	m := strings.ToLower(model)
	switch {
	case strings.HasPrefix(m, "gpt") || strings.HasPrefix(m, "o1") || strings.HasPrefix(m, "o3"):
		return ProviderOpenAI
	case strings.HasPrefix(m, "claude"):
		return ProviderAnthropic
	case strings.HasPrefix(m, "llama") || strings.HasPrefix(m, "mistral") || strings.HasPrefix(m, "mixtral"):
		return ProviderOllama
	default:
		return ProviderOpenAI
	}
}
