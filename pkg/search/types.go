// Package search adapts an external SearXNG-compatible metasearch endpoint.
package search

import "context"

// Result is one search hit after normalization and filtering.
type Result struct {
	URL     string  `json:"url"`
	Title   string  `json:"title"`
	Snippet string  `json:"snippet"`
	Engine  string  `json:"engine"`
	Score   float64 `json:"score"`
}

// Query is one metasearch request.
type Query struct {
	Text       string
	MaxResults int
	Language   string // BCP-47
	TimeRange  string // "7d", "1m", "1y" shorthand

	// Domain filters applied after retrieval. When AllowedDomains is
	// non-empty only those domains pass; BlockedDomains always lose.
	AllowedDomains []string
	BlockedDomains []string
}

// Searcher is the boundary the search tool and the API passthrough use.
type Searcher interface {
	Search(ctx context.Context, q Query) ([]Result, error)
}
