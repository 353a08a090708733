package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDataStore struct {
	stored    []DataRecord
	sessionID string
	dup       bool
	sources   []StoredSource
	summary   *SessionSummary
}

func (f *fakeDataStore) StoreData(_ context.Context, sessionID string, rec DataRecord) (bool, error) {
	f.sessionID = sessionID
	f.stored = append(f.stored, rec)
	return !f.dup, nil
}

func (f *fakeDataStore) RetrieveSources(_ context.Context, _ string, limit int) ([]StoredSource, error) {
	if limit < len(f.sources) {
		return f.sources[:limit], nil
	}
	return f.sources, nil
}

func (f *fakeDataStore) Summary(_ context.Context, _ string) (*SessionSummary, error) {
	return f.summary, nil
}

func invokeDB(t *testing.T, tool *DatabaseTool, args map[string]any) Result {
	t.Helper()
	validated, err := validateArgs(tool.Info(), args)
	require.NoError(t, err)
	return tool.Invoke(context.Background(), validated)
}

func TestDatabaseTool_Store(t *testing.T) {
	store := &fakeDataStore{}
	tool := NewDatabaseTool(store, "sess-1")

	res := invokeDB(t, tool, map[string]any{
		"action":     "store",
		"session_id": "sess-1",
		"data_type":  "extracted_content",
		"content":    "page text",
		"title":      "Page",
		"query":      "original query",
		"metadata":   map[string]any{"url": "https://x.test/a"},
	})
	require.True(t, res.Success, "error: %s", res.Error)

	require.Len(t, store.stored, 1)
	rec := store.stored[0]
	assert.Equal(t, "sess-1", store.sessionID)
	assert.Equal(t, "extracted_content", rec.DataType)
	assert.Equal(t, "page text", rec.Content)
	assert.Equal(t, 0.5, rec.RelevanceScore)
	assert.Equal(t, "https://x.test/a", rec.Metadata["url"])

	out := res.Output.(map[string]any)
	assert.Equal(t, true, out["stored"])
}

func TestDatabaseTool_StoreExplicitZeroScore(t *testing.T) {
	store := &fakeDataStore{}
	tool := NewDatabaseTool(store, "sess-1")

	res := invokeDB(t, tool, map[string]any{
		"action":          "store",
		"session_id":      "sess-1",
		"data_type":       "extracted_content",
		"content":         "irrelevant page",
		"relevance_score": float64(0),
	})
	require.True(t, res.Success, "error: %s", res.Error)

	// An explicit zero is a real score; only an absent score defaults.
	require.Len(t, store.stored, 1)
	assert.Equal(t, 0.0, store.stored[0].RelevanceScore)
}

func TestDatabaseTool_StoreDuplicate(t *testing.T) {
	store := &fakeDataStore{dup: true}
	tool := NewDatabaseTool(store, "sess-1")

	res := invokeDB(t, tool, map[string]any{
		"action":     "store",
		"session_id": "sess-1",
		"data_type":  "analysis",
		"content":    "same content",
	})
	require.True(t, res.Success)
	out := res.Output.(map[string]any)
	assert.Equal(t, false, out["stored"])
	assert.Equal(t, true, out["duplicate"])
}

func TestDatabaseTool_SessionMismatch(t *testing.T) {
	tool := NewDatabaseTool(&fakeDataStore{}, "sess-1")
	res := invokeDB(t, tool, map[string]any{
		"action":     "store",
		"session_id": "sess-other",
		"data_type":  "analysis",
		"content":    "c",
	})
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "does not match")
}

func TestDatabaseTool_RetrieveSources(t *testing.T) {
	store := &fakeDataStore{sources: []StoredSource{
		{ID: "1", Content: "a", RelevanceScore: 0.9},
		{ID: "2", Content: "b", RelevanceScore: 0.7},
		{ID: "3", Content: "c", RelevanceScore: 0.5},
	}}
	tool := NewDatabaseTool(store, "sess-1")

	res := invokeDB(t, tool, map[string]any{
		"action":     "retrieve_sources",
		"session_id": "sess-1",
		"limit":      float64(2),
	})
	require.True(t, res.Success)
	assert.Len(t, res.Output.([]StoredSource), 2)
}

func TestDatabaseTool_GetSummary(t *testing.T) {
	store := &fakeDataStore{summary: &SessionSummary{
		TotalSources:    4,
		DistinctQueries: 2,
		TopSources:      []StoredSource{{ID: "1"}},
	}}
	tool := NewDatabaseTool(store, "sess-1")

	res := invokeDB(t, tool, map[string]any{
		"action":     "get_summary",
		"session_id": "sess-1",
	})
	require.True(t, res.Success)
	got := res.Output.(*SessionSummary)
	assert.Equal(t, 4, got.TotalSources)
	assert.Equal(t, 2, got.DistinctQueries)
}

func TestDatabaseTool_StoreRequiresFields(t *testing.T) {
	tool := NewDatabaseTool(&fakeDataStore{}, "sess-1")

	res := invokeDB(t, tool, map[string]any{
		"action":     "store",
		"session_id": "sess-1",
		"data_type":  "analysis",
	})
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "content")

	res = invokeDB(t, tool, map[string]any{
		"action":     "store",
		"session_id": "sess-1",
		"content":    "c",
	})
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "data_type")
}
