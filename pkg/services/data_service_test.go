package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delverhq/delver/ent/researchsession"
	"github.com/delverhq/delver/pkg/tools"
	testdb "github.com/delverhq/delver/test/database"
)

func TestResearchDataService_StoreData_DeduplicatesContent(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewResearchDataService(client.Client, slog.Default())
	ctx := context.Background()

	createSession(t, client.Client, "sess-1", "user-1")

	rec := tools.DataRecord{
		DataType:       "extracted_content",
		Content:        "the page text",
		Title:          "A Page",
		RelevanceScore: 0.8,
	}

	stored, err := svc.StoreData(ctx, "sess-1", rec)
	require.NoError(t, err)
	assert.True(t, stored)

	// Same content, same type: silently dropped.
	stored, err = svc.StoreData(ctx, "sess-1", rec)
	require.NoError(t, err)
	assert.False(t, stored)

	// Same content under a different type is a distinct row.
	rec.DataType = "analysis"
	stored, err = svc.StoreData(ctx, "sess-1", rec)
	require.NoError(t, err)
	assert.True(t, stored)

	count, err := client.ResearchData.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestResearchDataService_RetrieveSources_Ordering(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewResearchDataService(client.Client, slog.Default())
	ctx := context.Background()

	createSession(t, client.Client, "sess-1", "user-1")

	for _, rec := range []tools.DataRecord{
		{DataType: "source_content", Content: "low relevance", RelevanceScore: 0.2},
		{DataType: "source_content", Content: "high relevance", RelevanceScore: 0.9},
		{DataType: "extracted_content", Content: "mid relevance", RelevanceScore: 0.5},
		{DataType: "analysis", Content: "not a source", RelevanceScore: 1.0},
	} {
		stored, err := svc.StoreData(ctx, "sess-1", rec)
		require.NoError(t, err)
		require.True(t, stored)
	}

	sources, err := svc.RetrieveSources(ctx, "sess-1", 10)
	require.NoError(t, err)
	require.Len(t, sources, 3, "analysis rows are not sources")
	assert.Equal(t, "high relevance", sources[0].Content)
	assert.Equal(t, "mid relevance", sources[1].Content)
	assert.Equal(t, "low relevance", sources[2].Content)

	sources, err = svc.RetrieveSources(ctx, "sess-1", 1)
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, "high relevance", sources[0].Content)
}

func TestResearchDataService_StoreData_KeepsExplicitZeroScore(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewResearchDataService(client.Client, slog.Default())
	ctx := context.Background()

	createSession(t, client.Client, "sess-1", "user-1")

	stored, err := svc.StoreData(ctx, "sess-1", tools.DataRecord{
		DataType:       "extracted_content",
		Content:        "judged irrelevant",
		Title:          "Off Topic",
		RelevanceScore: 0,
		Metadata:       map[string]any{"url": "https://x.test/off-topic"},
	})
	require.NoError(t, err)
	require.True(t, stored)

	sources, err := svc.RetrieveSources(ctx, "sess-1", 10)
	require.NoError(t, err)
	require.Len(t, sources, 1)
	// Zero survives the round trip; it is not rewritten to the 0.5 default.
	assert.Equal(t, 0.0, sources[0].RelevanceScore)
	assert.Equal(t, "https://x.test/off-topic", sources[0].URL)
}

func TestResearchDataService_Summary(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewResearchDataService(client.Client, slog.Default())
	ctx := context.Background()

	createSession(t, client.Client, "sess-1", "user-1")

	for _, content := range []string{"one", "two"} {
		stored, err := svc.StoreData(ctx, "sess-1", tools.DataRecord{
			DataType: "source_content",
			Content:  content,
		})
		require.NoError(t, err)
		require.True(t, stored)
	}
	require.NoError(t, svc.RecordQuery(ctx, "sess-1", "solid state batteries", 10))
	require.NoError(t, svc.RecordQuery(ctx, "sess-1", "battery manufacturing cost", 7))

	summary, err := svc.Summary(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalSources)
	assert.Equal(t, 2, summary.DistinctQueries)
	assert.Len(t, summary.TopSources, 2)
}

func TestResearchDataService_PurgeTerminal(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewResearchDataService(client.Client, slog.Default())
	ctx := context.Background()

	// One old completed session, one still processing.
	old := time.Now().Add(-2 * time.Hour)
	err := client.ResearchSession.Create().
		SetID("sess-done").
		SetUserID("user-1").
		SetTopic("a finished topic").
		SetStatus(researchsession.StatusCompleted).
		SetCompletedAt(old).
		Exec(ctx)
	require.NoError(t, err)
	createSession(t, client.Client, "sess-live", "user-1")

	for _, sessionID := range []string{"sess-done", "sess-live"} {
		stored, err := svc.StoreData(ctx, sessionID, tools.DataRecord{
			DataType: "source_content",
			Content:  "scratch for " + sessionID,
		})
		require.NoError(t, err)
		require.True(t, stored)
	}

	deleted, err := svc.PurgeTerminal(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	// The live session's scratchpad survives.
	remaining, err := svc.RetrieveSources(ctx, "sess-live", 10)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)

	gone, err := svc.RetrieveSources(ctx, "sess-done", 10)
	require.NoError(t, err)
	assert.Empty(t, gone)
}
