package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/delverhq/delver/pkg/config"
)

// SearxNGClient queries a SearXNG metasearch instance over its JSON API.
type SearxNGClient struct {
	cfg    *config.SearchConfig
	httpc  *http.Client
	logger *slog.Logger

	// sleep is swapped out in tests to avoid real backoff delays.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewSearxNGClient creates a client for the configured endpoint.
func NewSearxNGClient(cfg *config.SearchConfig, logger *slog.Logger) *SearxNGClient {
	return &SearxNGClient{
		cfg:    cfg,
		httpc:  &http.Client{Timeout: cfg.RequestTimeout},
		logger: logger.With("component", "search"),
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

type searxResponse struct {
	Results []struct {
		URL     string  `json:"url"`
		Title   string  `json:"title"`
		Content string  `json:"content"`
		Engine  string  `json:"engine"`
		Score   float64 `json:"score"`
	} `json:"results"`
}

// Search runs one metasearch query. Transient failures (network errors,
// 5xx, 429) are retried with exponential backoff. Results are deduplicated
// by normalized URL and filtered by the query's domain lists, then capped
// at MaxResults.
func (c *SearxNGClient) Search(ctx context.Context, q Query) ([]Result, error) {
	if strings.TrimSpace(q.Text) == "" {
		return nil, fmt.Errorf("empty search query")
	}

	maxResults := q.MaxResults
	if maxResults <= 0 || maxResults > c.cfg.MaxResults {
		maxResults = c.cfg.MaxResults
	}

	params := url.Values{}
	params.Set("q", q.Text)
	params.Set("format", "json")
	if q.Language != "" {
		params.Set("language", q.Language)
	}
	if tr := searxTimeRange(q.TimeRange); tr != "" {
		params.Set("time_range", tr)
	}
	endpoint := strings.TrimSuffix(c.cfg.Endpoint, "/") + "/search?" + params.Encode()

	retries := c.cfg.MaxRetries
	if retries <= 0 {
		retries = 1
	}
	var lastErr error
	for attempt := 1; attempt <= retries; attempt++ {
		if attempt > 1 {
			delay := c.cfg.RetryBaseDelay << (attempt - 2)
			c.logger.Warn("retrying search",
				"attempt", attempt,
				"delay", delay,
				"error", lastErr)
			if err := c.sleep(ctx, delay); err != nil {
				return nil, err
			}
		}

		parsed, retryable, err := c.doSearch(ctx, endpoint)
		if err == nil {
			results := c.filterResults(parsed, q, maxResults)
			c.logger.Debug("search completed",
				"query", q.Text,
				"raw_results", len(parsed.Results),
				"results", len(results))
			return results, nil
		}
		if !retryable {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("search failed after %d attempts: %w", retries, lastErr)
}

// doSearch performs a single search round trip. The second return value
// reports whether the failure is retryable.
func (c *SearxNGClient) doSearch(ctx context.Context, endpoint string) (*searxResponse, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, false, ctx.Err()
		}
		return nil, true, fmt.Errorf("search request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		retryable := resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests
		return nil, retryable, fmt.Errorf("search endpoint returned %d: %s", resp.StatusCode, string(body))
	}

	var parsed searxResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, false, fmt.Errorf("failed to decode search response: %w", err)
	}
	return &parsed, false, nil
}

// filterResults dedups, domain-filters, and caps the raw engine results.
func (c *SearxNGClient) filterResults(parsed *searxResponse, q Query, maxResults int) []Result {
	seen := make(map[string]bool, len(parsed.Results))
	results := make([]Result, 0, maxResults)
	for _, r := range parsed.Results {
		norm := NormalizeURL(r.URL)
		if norm == "" || seen[norm] {
			continue
		}
		if !passesDomainFilters(norm, q.AllowedDomains, q.BlockedDomains) {
			continue
		}
		seen[norm] = true
		results = append(results, Result{
			URL:     norm,
			Title:   r.Title,
			Snippet: r.Content,
			Engine:  r.Engine,
			Score:   r.Score,
		})
		if len(results) >= maxResults {
			break
		}
	}
	return results
}

// searxTimeRange maps "<n><unit>" shorthand to the engine's fixed buckets
// (day, week, month, year). The nearest bucket that covers the span wins.
func searxTimeRange(r string) string {
	if len(r) < 2 {
		return ""
	}
	n, err := strconv.Atoi(r[:len(r)-1])
	if err != nil || n <= 0 {
		return ""
	}
	switch r[len(r)-1] {
	case 'd':
		switch {
		case n <= 1:
			return "day"
		case n <= 7:
			return "week"
		case n <= 31:
			return "month"
		default:
			return "year"
		}
	case 'w':
		if n <= 1 {
			return "week"
		}
		if n <= 4 {
			return "month"
		}
		return "year"
	case 'm':
		if n <= 1 {
			return "month"
		}
		return "year"
	case 'y':
		return "year"
	}
	return ""
}
