package tools

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delverhq/delver/pkg/config"
	"github.com/delverhq/delver/pkg/extract"
	"github.com/delverhq/delver/pkg/search"
)

type fakeSearcher struct {
	gotQuery search.Query
	results  []search.Result
	err      error
}

func (f *fakeSearcher) Search(_ context.Context, q search.Query) ([]search.Result, error) {
	f.gotQuery = q
	return f.results, f.err
}

type fakeRecorder struct {
	queries []string
	counts  []int
}

func (f *fakeRecorder) RecordQuery(_ context.Context, query string, n int) error {
	f.queries = append(f.queries, query)
	f.counts = append(f.counts, n)
	return nil
}

func TestSearchTool_WithExtraction(t *testing.T) {
	pageBody := strings.Repeat("interesting research content about the topic ", 10)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/broken" {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, "<html><head><title>Page</title></head><body><article><p>%s</p></article></body></html>", pageBody)
	}))
	t.Cleanup(srv.Close)

	searcher := &fakeSearcher{results: []search.Result{
		{URL: srv.URL + "/ok", Title: "Good page", Snippet: "snippet"},
		{URL: srv.URL + "/broken", Title: "Broken page"},
	}}
	recorder := &fakeRecorder{}
	tool := NewSearchTool(searcher, extract.New(config.DefaultExtractConfig(), slog.Default()), recorder, search.Query{}, slog.Default())

	args, err := validateArgs(tool.Info(), map[string]any{"query": "test topic"})
	require.NoError(t, err)

	res := tool.Invoke(context.Background(), args)
	require.True(t, res.Success, "error: %s", res.Error)

	items := res.Output.([]SearchItem)
	require.Len(t, items, 2)

	assert.Contains(t, items[0].Content, "interesting research content")
	assert.NotEmpty(t, items[0].Summary)
	assert.Empty(t, items[0].Error)

	// Failed extraction keeps the item, with error and no content.
	assert.Empty(t, items[1].Content)
	assert.Contains(t, items[1].Error, "500")

	require.Equal(t, []string{"test topic"}, recorder.queries)
	assert.Equal(t, []int{2}, recorder.counts)
}

func TestSearchTool_NoExtraction(t *testing.T) {
	searcher := &fakeSearcher{results: []search.Result{{URL: "https://x.test/a", Title: "A", Snippet: "s"}}}
	tool := NewSearchTool(searcher, extract.New(config.DefaultExtractConfig(), slog.Default()), nil, search.Query{}, slog.Default())

	args, err := validateArgs(tool.Info(), map[string]any{"query": "q", "extract_content": false})
	require.NoError(t, err)

	res := tool.Invoke(context.Background(), args)
	require.True(t, res.Success)
	items := res.Output.([]SearchItem)
	require.Len(t, items, 1)
	assert.Empty(t, items[0].Content)
	assert.Equal(t, "s", items[0].Snippet)
}

func TestSearchTool_SessionFiltersApplied(t *testing.T) {
	searcher := &fakeSearcher{}
	filters := search.Query{
		Language:       "en",
		TimeRange:      "1m",
		AllowedDomains: []string{"example.com"},
		BlockedDomains: []string{"spam.net"},
	}
	tool := NewSearchTool(searcher, extract.New(config.DefaultExtractConfig(), slog.Default()), nil, filters, slog.Default())

	args, err := validateArgs(tool.Info(), map[string]any{"query": "q", "extract_content": false, "time_range": "7d"})
	require.NoError(t, err)
	res := tool.Invoke(context.Background(), args)
	require.True(t, res.Success)

	assert.Equal(t, []string{"example.com"}, searcher.gotQuery.AllowedDomains)
	assert.Equal(t, []string{"spam.net"}, searcher.gotQuery.BlockedDomains)
	assert.Equal(t, "en", searcher.gotQuery.Language)
	// Explicit arg beats the session default.
	assert.Equal(t, "7d", searcher.gotQuery.TimeRange)
}

func TestSearchTool_SearchFailure(t *testing.T) {
	searcher := &fakeSearcher{err: fmt.Errorf("endpoint down")}
	tool := NewSearchTool(searcher, extract.New(config.DefaultExtractConfig(), slog.Default()), nil, search.Query{}, slog.Default())

	args, err := validateArgs(tool.Info(), map[string]any{"query": "q"})
	require.NoError(t, err)
	res := tool.Invoke(context.Background(), args)
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "endpoint down")
	assert.False(t, res.IsSchemaError())
}

func TestSummarySnippet(t *testing.T) {
	short := "short content"
	assert.Equal(t, short, summarySnippet(short))

	long := strings.Repeat("word ", 100)
	s := summarySnippet(long)
	assert.LessOrEqual(t, len(s), 304)
	assert.True(t, strings.HasSuffix(s, "..."))
}
