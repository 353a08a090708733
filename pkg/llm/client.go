package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/delverhq/delver/pkg/config"
)

// Client is the completion boundary used by agents and stateless tools.
type Client interface {
	Complete(ctx context.Context, messages []Message, opts Options) (*Completion, error)
}

// HTTPClient talks to an OpenAI-compatible chat completions endpoint.
type HTTPClient struct {
	cfg    *config.LLMConfig
	httpc  *http.Client
	logger *slog.Logger

	// sleep is swapped out in tests to avoid real backoff delays.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewHTTPClient creates a client for the configured endpoint.
func NewHTTPClient(cfg *config.LLMConfig, logger *slog.Logger) *HTTPClient {
	return &HTTPClient{
		cfg:    cfg,
		httpc:  &http.Client{Timeout: cfg.RequestTimeout},
		logger: logger.With("component", "llm"),
		sleep:  sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Complete performs one chat completion call. Transient failures (network
// errors, 5xx, 429) are retried with exponential backoff; other 4xx are
// returned immediately.
func (c *HTTPClient) Complete(ctx context.Context, messages []Message, opts Options) (*Completion, error) {
	model := opts.Model
	if model == "" {
		model = c.cfg.DefaultModel
	}
	maxTokens := opts.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.cfg.MaxTokens
	}

	req := chatRequest{
		Model:       model,
		Messages:    messages,
		Temperature: opts.Temperature,
		MaxTokens:   maxTokens,
	}
	for _, t := range opts.Tools {
		req.Tools = append(req.Tools, wireTool{
			Type: "function",
			Function: wireFunction{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		})
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal completion request: %w", err)
	}

	provider := config.ProviderForModel(model)
	var lastErr error
	for attempt := 1; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 1 {
			delay := c.cfg.RetryBaseDelay << (attempt - 2)
			c.logger.Warn("retrying completion call",
				"attempt", attempt,
				"delay", delay,
				"error", lastErr)
			if err := c.sleep(ctx, delay); err != nil {
				return nil, err
			}
		}

		completion, retryable, err := c.doRequest(ctx, body)
		if err == nil {
			c.logger.Debug("completion call succeeded",
				"model", model,
				"provider", string(provider),
				"prompt_tokens", completion.Usage.PromptTokens,
				"completion_tokens", completion.Usage.CompletionTokens)
			return completion, nil
		}
		if !retryable {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("completion failed after %d attempts: %w", c.cfg.MaxRetries, lastErr)
}

// doRequest performs a single HTTP round trip. The second return value
// reports whether the failure is retryable.
func (c *HTTPClient) doRequest(ctx context.Context, body []byte) (*Completion, bool, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, false, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, false, ctx.Err()
		}
		return nil, true, fmt.Errorf("completion request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		retryable := resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests
		return nil, retryable, fmt.Errorf("completion endpoint returned %d: %s",
			resp.StatusCode, truncate(string(respBody), 512))
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, false, fmt.Errorf("failed to decode completion response: %w", err)
	}
	if parsed.Error != nil {
		return nil, false, fmt.Errorf("completion error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return nil, false, fmt.Errorf("completion response contained no choices")
	}

	choice := parsed.Choices[0]
	return &Completion{
		Text:      choice.Message.Content,
		ToolCalls: choice.Message.ToolCalls,
		Usage:     parsed.Usage,
	}, false, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
