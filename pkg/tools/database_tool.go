package tools

import (
	"context"
)

// DataRecord is one scratchpad row to store.
type DataRecord struct {
	DataType       string
	Query          string
	Title          string
	Content        string
	Metadata       map[string]any
	RelevanceScore float64
}

// StoredSource is one retrieved scratchpad source row.
type StoredSource struct {
	ID             string  `json:"id"`
	URL            string  `json:"url,omitempty"`
	Title          string  `json:"title,omitempty"`
	Query          string  `json:"query,omitempty"`
	Content        string  `json:"content"`
	RelevanceScore float64 `json:"relevance_score"`
}

// SessionSummary is the get_summary output.
type SessionSummary struct {
	TotalSources    int            `json:"total_sources"`
	DistinctQueries int            `json:"distinct_queries"`
	TopSources      []StoredSource `json:"top_sources"`
}

// DataStore is the scratchpad boundary the database tool writes through.
// Implemented by the research data service.
type DataStore interface {
	// StoreData inserts a scratchpad row. Returns false when an identical
	// row (same type and content hash) already exists.
	StoreData(ctx context.Context, sessionID string, rec DataRecord) (bool, error)

	// RetrieveSources returns up to limit source_content rows ordered by
	// relevance then recency.
	RetrieveSources(ctx context.Context, sessionID string, limit int) ([]StoredSource, error)

	// Summary aggregates the session's scratchpad.
	Summary(ctx context.Context, sessionID string) (*SessionSummary, error)
}

// dataTypes the store action accepts.
var dataTypes = []string{"search_results", "extracted_content", "analysis", "game_plan", "source_content"}

// DatabaseTool reads and writes the per-session scratchpad. It is bound to
// one session; the session_id argument must match, which stops an agent
// from reaching into another session's data.
type DatabaseTool struct {
	store     DataStore
	sessionID string
}

// NewDatabaseTool builds a database tool bound to sessionID.
func NewDatabaseTool(store DataStore, sessionID string) *DatabaseTool {
	return &DatabaseTool{store: store, sessionID: sessionID}
}

// Info implements Tool.
func (t *DatabaseTool) Info() Info {
	return Info{
		Name:        "database_tool",
		Description: "Store research data for the current session, retrieve stored sources, or get a summary of what has been collected so far.",
		Params: []Param{
			{Name: "action", Type: "string", Required: true, Enum: []string{"store", "retrieve_sources", "get_summary"}},
			{Name: "session_id", Type: "string", Description: "Current session id", Required: true},
			{Name: "data_type", Type: "string", Description: "Kind of data being stored", Enum: dataTypes},
			{Name: "content", Type: "string", Description: "Content to store"},
			{Name: "query", Type: "string", Description: "Originating search query, for stored rows"},
			{Name: "title", Type: "string", Description: "Title of the stored item"},
			{Name: "metadata", Type: "object", Description: "Extra metadata for the stored row"},
			{Name: "relevance_score", Type: "number", Description: "Relevance in [0,1]", Minimum: ptr(0), Maximum: ptr(1)},
			{Name: "limit", Type: "integer", Description: "Max sources for retrieve_sources", Default: 10, Minimum: ptr(1), Maximum: ptr(100)},
		},
	}
}

// Invoke implements Tool.
func (t *DatabaseTool) Invoke(ctx context.Context, args map[string]any) Result {
	if sid := strArg(args, "session_id"); sid != t.sessionID {
		return Errf("session_id %q does not match the current session", sid)
	}

	switch strArg(args, "action") {
	case "store":
		return t.storeAction(ctx, args)
	case "retrieve_sources":
		sources, err := t.store.RetrieveSources(ctx, t.sessionID, intArg(args, "limit"))
		if err != nil {
			return Errf("retrieve_sources failed: %v", err)
		}
		return Ok(sources)
	case "get_summary":
		summary, err := t.store.Summary(ctx, t.sessionID)
		if err != nil {
			return Errf("get_summary failed: %v", err)
		}
		return Ok(summary)
	}
	return Errf("unreachable action") // enum validation guards this
}

func (t *DatabaseTool) storeAction(ctx context.Context, args map[string]any) Result {
	content := strArg(args, "content")
	if content == "" {
		return Errf("store requires non-empty content")
	}
	dataType := strArg(args, "data_type")
	if dataType == "" {
		return Errf("store requires data_type")
	}

	rec := DataRecord{
		DataType: dataType,
		Query:    strArg(args, "query"),
		Title:    strArg(args, "title"),
		Content:  content,
		// 0.5 means unscored; an explicit 0 is a real score and sticks.
		RelevanceScore: 0.5,
	}
	if _, scored := args["relevance_score"]; scored {
		rec.RelevanceScore = floatArg(args, "relevance_score")
	}
	if meta, ok := args["metadata"].(map[string]any); ok {
		rec.Metadata = meta
	}

	stored, err := t.store.StoreData(ctx, t.sessionID, rec)
	if err != nil {
		return Errf("store failed: %v", err)
	}
	return Ok(map[string]any{"stored": stored, "duplicate": !stored})
}
