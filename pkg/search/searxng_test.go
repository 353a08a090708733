package search

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delverhq/delver/pkg/config"
)

func newTestSearcher(t *testing.T, results []map[string]any) (*SearxNGClient, *http.Request) {
	t.Helper()
	var captured http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = *r
		_ = json.NewEncoder(w).Encode(map[string]any{"results": results})
	}))
	t.Cleanup(srv.Close)

	cfg := config.DefaultSearchConfig()
	cfg.Endpoint = srv.URL
	return NewSearxNGClient(cfg, slog.Default()), &captured
}

func TestSearch_DedupAndCap(t *testing.T) {
	c, _ := newTestSearcher(t, []map[string]any{
		{"url": "https://example.com/a?utm_source=x", "title": "A", "content": "first", "engine": "google", "score": 1.2},
		{"url": "https://EXAMPLE.com/a#frag", "title": "A dup", "content": "dup", "engine": "bing", "score": 1.0},
		{"url": "https://example.com/b/", "title": "B", "content": "second", "engine": "google", "score": 0.9},
		{"url": "https://example.com/c", "title": "C", "content": "third", "engine": "ddg", "score": 0.5},
	})

	got, err := c.Search(context.Background(), Query{Text: "dedup test", MaxResults: 2})
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "https://example.com/a", got[0].URL)
	assert.Equal(t, "https://example.com/b", got[1].URL)
}

func TestSearch_DomainFilters(t *testing.T) {
	results := []map[string]any{
		{"url": "https://docs.example.com/x", "title": "sub", "engine": "google"},
		{"url": "https://other.org/y", "title": "other", "engine": "google"},
		{"url": "https://spam.net/z", "title": "spam", "engine": "google"},
	}

	t.Run("allow list keeps subdomains", func(t *testing.T) {
		c, _ := newTestSearcher(t, results)
		got, err := c.Search(context.Background(), Query{
			Text:           "q",
			AllowedDomains: []string{"example.com"},
		})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "https://docs.example.com/x", got[0].URL)
	})

	t.Run("block list wins", func(t *testing.T) {
		c, _ := newTestSearcher(t, results)
		got, err := c.Search(context.Background(), Query{
			Text:           "q",
			BlockedDomains: []string{"spam.net"},
		})
		require.NoError(t, err)
		require.Len(t, got, 2)
	})
}

func TestSearch_WireParams(t *testing.T) {
	c, captured := newTestSearcher(t, nil)

	_, err := c.Search(context.Background(), Query{
		Text:      "climate policy",
		Language:  "de",
		TimeRange: "7d",
	})
	require.NoError(t, err)

	q := captured.URL.Query()
	assert.Equal(t, "climate policy", q.Get("q"))
	assert.Equal(t, "json", q.Get("format"))
	assert.Equal(t, "de", q.Get("language"))
	assert.Equal(t, "week", q.Get("time_range"))
}

func TestSearch_EmptyQuery(t *testing.T) {
	c, _ := newTestSearcher(t, nil)
	_, err := c.Search(context.Background(), Query{Text: "   "})
	require.Error(t, err)
}

func TestSearch_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "teapot", http.StatusTeapot)
	}))
	t.Cleanup(srv.Close)

	cfg := config.DefaultSearchConfig()
	cfg.Endpoint = srv.URL
	c := NewSearxNGClient(cfg, slog.Default())

	_, err := c.Search(context.Background(), Query{Text: "q"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "418")
}

func TestSearch_RetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "upstream flaking", http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"results": []map[string]any{
			{"url": "https://example.com/a", "title": "A", "engine": "google"},
		}})
	}))
	t.Cleanup(srv.Close)

	cfg := config.DefaultSearchConfig()
	cfg.Endpoint = srv.URL
	c := NewSearxNGClient(cfg, slog.Default())
	var slept atomic.Int32
	c.sleep = func(context.Context, time.Duration) error {
		slept.Add(1)
		return nil
	}

	got, err := c.Search(context.Background(), Query{Text: "q"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, int32(2), slept.Load())
}

func TestSearch_ClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "nope", http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	cfg := config.DefaultSearchConfig()
	cfg.Endpoint = srv.URL
	c := NewSearxNGClient(cfg, slog.Default())

	_, err := c.Search(context.Background(), Query{Text: "q"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.Equal(t, int32(1), calls.Load())
}

func TestSearxTimeRange(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"1d", "day"},
		{"7d", "week"},
		{"30d", "month"},
		{"90d", "year"},
		{"1w", "week"},
		{"1m", "month"},
		{"6m", "year"},
		{"1y", "year"},
		{"", ""},
		{"bogus", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, searxTimeRange(tt.in), "input %q", tt.in)
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"https://Example.com/Path/?utm_campaign=x&id=5#sec", "https://example.com/Path?id=5"},
		{"https://example.com/", "https://example.com/"},
		{"https://example.com/a/b/", "https://example.com/a/b"},
		{"https://example.com/a?fbclid=123", "https://example.com/a"},
		{"not a url", "not a url"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeURL(tt.in), "input %q", tt.in)
	}
}
