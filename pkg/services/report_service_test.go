package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delverhq/delver/ent"
	"github.com/delverhq/delver/ent/researchsession"
	"github.com/delverhq/delver/pkg/models"
	testdb "github.com/delverhq/delver/test/database"
)

func createSession(t *testing.T, client *ent.Client, id, userID string) {
	t.Helper()
	err := client.ResearchSession.Create().
		SetID(id).
		SetUserID(userID).
		SetTopic("a valid topic").
		SetStatus(researchsession.StatusProcessing).
		Exec(context.Background())
	require.NoError(t, err)
}

func sampleDraft() *models.ReportDraft {
	return &models.ReportDraft{
		Title:       "Solid State Batteries",
		Content:     "# Solid State Batteries\n\n## Executive Summary\n...",
		Summary:     "Approaching commercial viability.",
		KeyFindings: []string{"finding one", "finding two"},
		WordCount:   420,
		Sources: []models.SourceDraft{
			{URL: "https://example.com/a", Title: "Source A", RelevanceScore: 0.9, Snippet: "snippet a"},
			{URL: "https://example.com/b", Title: "Source B", RelevanceScore: 0.4},
		},
		Citations: []models.CitationDraft{
			{Position: 0, Text: "Source A", URL: "https://example.com/a"},
			{Position: 1, Text: "Offline interview", URL: ""},
		},
	}
}

func TestReportService_SaveReport(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewReportService(client.Client, slog.Default())
	ctx := context.Background()

	createSession(t, client.Client, "sess-1", "user-1")

	reportID, err := svc.SaveReport(ctx, "sess-1", sampleDraft())
	require.NoError(t, err)
	require.NotEmpty(t, reportID)

	view, err := svc.Get(ctx, reportID, "user-1", false)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", view.SessionID)
	assert.Equal(t, "Approaching commercial viability.", view.Summary)
	assert.Equal(t, []string{"finding one", "finding two"}, view.KeyFindings)
	assert.Equal(t, 420, view.WordCount)

	require.Len(t, view.Citations, 2)
	assert.Equal(t, 0, view.Citations[0].Position)
	assert.Equal(t, "Source A", view.Citations[0].Quote)
	assert.NotEmpty(t, view.Citations[0].SourceID, "linked citation resolves to its source row")
	assert.Empty(t, view.Citations[1].SourceID, "text-only citation has no source")

	sources, err := svc.Sources(ctx, reportID, "user-1", false)
	require.NoError(t, err)
	require.Len(t, sources, 2)
	assert.Equal(t, "https://example.com/a", sources[0].URL, "highest relevance first")
}

func TestReportService_SaveReport_Idempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewReportService(client.Client, slog.Default())
	ctx := context.Background()

	createSession(t, client.Client, "sess-1", "user-1")

	first, err := svc.SaveReport(ctx, "sess-1", sampleDraft())
	require.NoError(t, err)

	// A redelivered job saving again gets the same report back.
	second, err := svc.SaveReport(ctx, "sess-1", sampleDraft())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	count, err := client.Report.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestReportService_ExistingReport(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewReportService(client.Client, slog.Default())
	ctx := context.Background()

	createSession(t, client.Client, "sess-1", "user-1")

	_, _, _, ok, err := svc.ExistingReport(ctx, "sess-1")
	require.NoError(t, err)
	assert.False(t, ok)

	reportID, err := svc.SaveReport(ctx, "sess-1", sampleDraft())
	require.NoError(t, err)

	gotID, wordCount, sourceCount, ok, err := svc.ExistingReport(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, reportID, gotID)
	assert.Equal(t, 420, wordCount)
	assert.Equal(t, 2, sourceCount)
}

func TestReportService_Ownership(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewReportService(client.Client, slog.Default())
	ctx := context.Background()

	createSession(t, client.Client, "sess-1", "owner")
	reportID, err := svc.SaveReport(ctx, "sess-1", sampleDraft())
	require.NoError(t, err)

	_, err = svc.Get(ctx, reportID, "someone-else", false)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Get(ctx, reportID, "someone-else", true)
	assert.NoError(t, err, "admin sees all reports")

	_, err = svc.GetBySession(ctx, "sess-1", "someone-else", false)
	assert.ErrorIs(t, err, ErrNotFound)

	view, err := svc.GetBySession(ctx, "sess-1", "owner", false)
	require.NoError(t, err)
	assert.Equal(t, reportID, view.ID)
}
