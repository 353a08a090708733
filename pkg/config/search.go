package config

import "time"

// SearchConfig holds metasearch endpoint settings.
type SearchConfig struct {
	// Endpoint is the SearXNG-compatible base URL.
	Endpoint string `yaml:"endpoint"`

	// MaxResults caps results returned per query.
	MaxResults int `yaml:"max_results"`

	RequestTimeout time.Duration `yaml:"request_timeout"`

	// MaxRetries is the attempt count for transient failures (network,
	// 5xx, 429). 4xx other than 429 is never retried.
	MaxRetries int `yaml:"max_retries"`

	// RetryBaseDelay is the base for exponential retry backoff.
	RetryBaseDelay time.Duration `yaml:"retry_base_delay"`
}

// DefaultSearchConfig returns the built-in search defaults.
func DefaultSearchConfig() *SearchConfig {
	return &SearchConfig{
		MaxResults:     20,
		RequestTimeout: 15 * time.Second,
		MaxRetries:     3,
		RetryBaseDelay: 500 * time.Millisecond,
	}
}

// ExtractConfig holds content-extraction settings.
type ExtractConfig struct {
	// Timeout bounds a single page fetch+parse.
	Timeout time.Duration `yaml:"timeout"`

	// Concurrency is the per-session cap on parallel extractions.
	Concurrency int `yaml:"concurrency"`

	// MaxRedirects bounds redirect following.
	MaxRedirects int `yaml:"max_redirects"`

	// MinContentLength is the readability threshold below which the
	// selector fallback chain is tried.
	MinContentLength int `yaml:"min_content_length"`

	UserAgent string `yaml:"user_agent"`

	// MaxRetries is the per-page attempt count for transient fetch
	// failures (network, 5xx, 429). Kept low: extraction fans out over
	// many pages and a stubborn one is not worth the wall clock.
	MaxRetries int `yaml:"max_retries"`

	// RetryBaseDelay is the base for exponential retry backoff.
	RetryBaseDelay time.Duration `yaml:"retry_base_delay"`
}

// DefaultExtractConfig returns the built-in extraction defaults.
func DefaultExtractConfig() *ExtractConfig {
	return &ExtractConfig{
		Timeout:          30 * time.Second,
		Concurrency:      3,
		MaxRedirects:     5,
		MinContentLength: 100,
		UserAgent:        "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36",
		MaxRetries:       2,
		RetryBaseDelay:   time.Second,
	}
}
