package tools

import (
	"context"
	"log/slog"

	"github.com/delverhq/delver/pkg/extract"
	"github.com/delverhq/delver/pkg/search"
)

// QueryRecorder records issued web queries for the session's query history.
type QueryRecorder interface {
	RecordQuery(ctx context.Context, query string, resultCount int) error
}

// SearchItem is one entry in the search tool's output.
type SearchItem struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Snippet string `json:"snippet,omitempty"`
	Content string `json:"content,omitempty"`
	Summary string `json:"summary,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SearchTool searches the web and optionally extracts page content for
// each hit. Side effects: records a query-history row per call; safe to
// retry.
type SearchTool struct {
	searcher  search.Searcher
	extractor *extract.Extractor
	recorder  QueryRecorder
	filters   search.Query // session-level domain filters and language
	logger    *slog.Logger
}

// NewSearchTool builds a search tool bound to one session's domain filters.
// recorder may be nil when query history is not wanted.
func NewSearchTool(searcher search.Searcher, extractor *extract.Extractor, recorder QueryRecorder, filters search.Query, logger *slog.Logger) *SearchTool {
	return &SearchTool{
		searcher:  searcher,
		extractor: extractor,
		recorder:  recorder,
		filters:   filters,
		logger:    logger.With("tool", "search_tool"),
	}
}

// Info implements Tool.
func (t *SearchTool) Info() Info {
	return Info{
		Name:        "search_tool",
		Description: "Search the web for a query and optionally fetch the readable content of each result page.",
		Params: []Param{
			{Name: "query", Type: "string", Description: "Search query", Required: true},
			{Name: "max_results", Type: "integer", Description: "Maximum results to return", Default: 10, Minimum: ptr(1), Maximum: ptr(50)},
			{Name: "extract_content", Type: "boolean", Description: "Fetch and extract page content for each result", Default: true},
			{Name: "language", Type: "string", Description: "BCP-47 language for the search"},
			{Name: "time_range", Type: "string", Description: "Recency filter such as 7d, 1m, 1y"},
		},
	}
}

// Invoke implements Tool.
func (t *SearchTool) Invoke(ctx context.Context, args map[string]any) Result {
	q := search.Query{
		Text:           strArg(args, "query"),
		MaxResults:     intArg(args, "max_results"),
		Language:       strArg(args, "language"),
		TimeRange:      strArg(args, "time_range"),
		AllowedDomains: t.filters.AllowedDomains,
		BlockedDomains: t.filters.BlockedDomains,
	}
	if q.Language == "" {
		q.Language = t.filters.Language
	}
	if q.TimeRange == "" {
		q.TimeRange = t.filters.TimeRange
	}

	hits, err := t.searcher.Search(ctx, q)
	if err != nil {
		return Errf("search failed: %v", err)
	}

	if t.recorder != nil {
		if err := t.recorder.RecordQuery(ctx, q.Text, len(hits)); err != nil {
			t.logger.Warn("failed to record query", "query", q.Text, "error", err)
		}
	}

	items := make([]SearchItem, len(hits))
	for i, h := range hits {
		items[i] = SearchItem{URL: h.URL, Title: h.Title, Snippet: h.Snippet}
	}

	if boolArg(args, "extract_content") && len(hits) > 0 {
		urls := make([]string, len(hits))
		for i, h := range hits {
			urls[i] = h.URL
		}
		extracted := t.extractor.ExtractAll(ctx, urls)
		for i, ex := range extracted {
			if ex.Failed() {
				items[i].Error = ex.Error
				continue
			}
			items[i].Content = ex.Content
			items[i].Summary = summarySnippet(ex.Content)
			if items[i].Title == "" {
				items[i].Title = ex.Title
			}
		}
	}

	return Ok(items)
}

// summarySnippet is the cheap stand-in summary attached to extracted
// items: the first few hundred characters, cut at a word boundary.
func summarySnippet(content string) string {
	const limit = 300
	if len(content) <= limit {
		return content
	}
	cut := limit
	for cut > 0 && content[cut] != ' ' && content[cut] != '\n' {
		cut--
	}
	if cut == 0 {
		cut = limit
	}
	return content[:cut] + "..."
}
