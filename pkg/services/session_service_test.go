package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delverhq/delver/ent/researchsession"
	"github.com/delverhq/delver/pkg/models"
	testdb "github.com/delverhq/delver/test/database"
)

func TestSessionService_Submit(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := newFakeJobQueue()
	svc := setupTestSessionService(t, client.Client, jobs, nil)
	ctx := context.Background()

	view, err := svc.Submit(ctx, "user-1", models.StartResearchRequest{
		Topic: "  quantum error correction  ",
	})
	require.NoError(t, err)

	assert.Equal(t, "quantum error correction", view.Topic)
	assert.Equal(t, "pending", view.Status)
	assert.Equal(t, "user-1", view.UserID)
	require.NotNil(t, view.Parameters)
	assert.Equal(t, 50, view.Parameters.MaxSources)

	require.Len(t, jobs.enqueued, 1)
	assert.Equal(t, view.ID, jobs.enqueued[0])
}

func TestSessionService_Submit_Validation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestSessionService(t, client.Client, newFakeJobQueue(), nil)
	ctx := context.Background()

	tests := []struct {
		name string
		req  models.StartResearchRequest
	}{
		{name: "topic too short", req: models.StartResearchRequest{Topic: "ab"}},
		{
			name: "max_sources above cap",
			req: models.StartResearchRequest{
				Topic:      "a valid topic",
				Parameters: models.ResearchParameters{MaxSources: 1000},
			},
		},
		{
			name: "min above max",
			req: models.StartResearchRequest{
				Topic:      "a valid topic",
				Parameters: models.ResearchParameters{MinSources: 60, MaxSources: 10},
			},
		},
		{
			name: "bad date range",
			req: models.StartResearchRequest{
				Topic:      "a valid topic",
				Parameters: models.ResearchParameters{DateRange: "lately"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(ctx, "user-1", tt.req)
			require.Error(t, err)
			assert.True(t, IsValidationError(err), "want validation error, got %v", err)
		})
	}
}

func TestSessionService_Submit_EnqueueFailureFailsSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := newFakeJobQueue()
	jobs.enqueueErr = errors.New("broker down")
	svc := setupTestSessionService(t, client.Client, jobs, nil)
	ctx := context.Background()

	_, err := svc.Submit(ctx, "user-1", models.StartResearchRequest{Topic: "a valid topic"})
	require.Error(t, err)

	// The orphaned row must not stay PENDING forever.
	sessions, err := client.ResearchSession.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, researchsession.StatusFailed, sessions[0].Status)
	require.NotNil(t, sessions[0].ErrorMessage)
	assert.Contains(t, *sessions[0].ErrorMessage, "broker down")
}

func TestSessionService_Get_Ownership(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := newFakeJobQueue()
	svc := setupTestSessionService(t, client.Client, jobs, nil)
	ctx := context.Background()

	view, err := svc.Submit(ctx, "owner", models.StartResearchRequest{Topic: "a valid topic"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, view.ID, "owner", false)
	assert.NoError(t, err)

	// Foreign sessions read as not found, not forbidden.
	_, err = svc.Get(ctx, view.ID, "someone-else", false)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Get(ctx, view.ID, "someone-else", true)
	assert.NoError(t, err, "admin sees all sessions")

	_, err = svc.Get(ctx, "no-such-session", "owner", false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionService_List(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := newFakeJobQueue()
	svc := setupTestSessionService(t, client.Client, jobs, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Submit(ctx, "user-a", models.StartResearchRequest{Topic: "topic for user a"})
		require.NoError(t, err)
	}
	other, err := svc.Submit(ctx, "user-b", models.StartResearchRequest{Topic: "topic for user b"})
	require.NoError(t, err)
	require.NoError(t, svc.MarkFailed(ctx, other.ID, "boom"))

	views, total, err := svc.List(ctx, models.SessionFilter{UserID: "user-a"})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, views, 3)

	views, total, err = svc.List(ctx, models.SessionFilter{Status: "failed"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, views, 1)
	assert.Equal(t, other.ID, views[0].ID)

	views, total, err = svc.List(ctx, models.SessionFilter{UserID: "user-a", Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, views, 2)
}

func TestSessionService_Progress_FallsBackToSessionStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := newFakeJobQueue()
	svc := setupTestSessionService(t, client.Client, jobs, nil)
	ctx := context.Background()

	view, err := svc.Submit(ctx, "user-1", models.StartResearchRequest{Topic: "a valid topic"})
	require.NoError(t, err)
	require.NoError(t, svc.MarkCompleted(ctx, view.ID, "rep-1"))

	// Job record expired after completion.
	jobs.progErr = errors.New("job not found")

	status, percent, _, err := svc.Progress(ctx, view.ID, "user-1", false)
	require.NoError(t, err)
	assert.Equal(t, "completed", status)
	assert.Equal(t, 100, percent)
}

func TestSessionService_Cancel(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := newFakeJobQueue()
	canceller := &fakeCanceller{}
	svc := setupTestSessionService(t, client.Client, jobs, canceller)
	ctx := context.Background()

	view, err := svc.Submit(ctx, "user-1", models.StartResearchRequest{Topic: "a valid topic"})
	require.NoError(t, err)
	jobs.removed[view.ID] = true

	cancelled, err := svc.Cancel(ctx, view.ID, "user-1", false)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", cancelled.Status)
	assert.NotNil(t, cancelled.CompletedAt)
	assert.Empty(t, canceller.cancelled, "waiting job removed outright, no local cancel needed")

	// Cancelling again is idempotent.
	again, err := svc.Cancel(ctx, view.ID, "user-1", false)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", again.Status)

	// Completed sessions cannot be cancelled.
	done, err := svc.Submit(ctx, "user-1", models.StartResearchRequest{Topic: "another valid topic"})
	require.NoError(t, err)
	require.NoError(t, svc.MarkCompleted(ctx, done.ID, "rep-1"))
	_, err = svc.Cancel(ctx, done.ID, "user-1", false)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestSessionService_Cancel_ActiveJobUsesLocalCanceller(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := newFakeJobQueue()
	canceller := &fakeCanceller{}
	svc := setupTestSessionService(t, client.Client, jobs, canceller)
	ctx := context.Background()

	view, err := svc.Submit(ctx, "user-1", models.StartResearchRequest{Topic: "a valid topic"})
	require.NoError(t, err)
	require.NoError(t, svc.MarkProcessing(ctx, view.ID))
	// Remove reports the job as active rather than removed.
	jobs.removed[view.ID] = false

	cancelled, err := svc.Cancel(ctx, view.ID, "user-1", false)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", cancelled.Status)
	assert.Equal(t, []string{view.ID}, canceller.cancelled)
}

func TestSessionService_Retry(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := newFakeJobQueue()
	svc := setupTestSessionService(t, client.Client, jobs, nil)
	ctx := context.Background()

	view, err := svc.Submit(ctx, "user-1", models.StartResearchRequest{
		Topic:      "a valid topic",
		Parameters: models.ResearchParameters{MaxSources: 30},
	})
	require.NoError(t, err)

	// Only failed sessions can be retried.
	_, err = svc.Retry(ctx, view.ID, "user-1", false)
	assert.ErrorIs(t, err, ErrConflict)

	require.NoError(t, svc.MarkFailed(ctx, view.ID, "llm unavailable"))

	clone, err := svc.Retry(ctx, view.ID, "user-1", false)
	require.NoError(t, err)
	assert.NotEqual(t, view.ID, clone.ID)
	assert.Equal(t, "pending", clone.Status)
	assert.Equal(t, view.ID, clone.RetriedFrom)
	assert.Equal(t, view.Topic, clone.Topic)
	require.NotNil(t, clone.Parameters)
	assert.Equal(t, 30, clone.Parameters.MaxSources)

	// Original submit plus the retry.
	assert.Len(t, jobs.enqueued, 2)

	// The failed original keeps its terminal state.
	original, err := svc.Get(ctx, view.ID, "user-1", false)
	require.NoError(t, err)
	assert.Equal(t, "failed", original.Status)
}

func TestSessionService_StatusTransitions(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := newFakeJobQueue()
	svc := setupTestSessionService(t, client.Client, jobs, nil)
	ctx := context.Background()

	view, err := svc.Submit(ctx, "user-1", models.StartResearchRequest{Topic: "a valid topic"})
	require.NoError(t, err)

	require.NoError(t, svc.MarkProcessing(ctx, view.ID))
	got, err := svc.Get(ctx, view.ID, "user-1", false)
	require.NoError(t, err)
	assert.Equal(t, "processing", got.Status)
	assert.NotNil(t, got.StartedAt)

	require.NoError(t, svc.MarkCompleted(ctx, view.ID, "rep-1"))
	got, err = svc.Get(ctx, view.ID, "user-1", false)
	require.NoError(t, err)
	assert.Equal(t, "completed", got.Status)
	assert.Equal(t, "rep-1", got.ReportID)
	assert.NotNil(t, got.CompletedAt)

	assert.ErrorIs(t, svc.MarkProcessing(ctx, "no-such-session"), ErrNotFound)
}

func TestSessionService_TerminalStatusIsSticky(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := newFakeJobQueue()
	svc := setupTestSessionService(t, client.Client, jobs, nil)
	ctx := context.Background()

	view, err := svc.Submit(ctx, "user-1", models.StartResearchRequest{Topic: "a valid topic"})
	require.NoError(t, err)
	require.NoError(t, svc.MarkProcessing(ctx, view.ID))
	require.NoError(t, svc.MarkCancelled(ctx, view.ID))

	// A worker finishing late cannot overwrite the user's cancel.
	assert.ErrorIs(t, svc.MarkCompleted(ctx, view.ID, "rep-1"), ErrConflict)
	assert.ErrorIs(t, svc.MarkFailed(ctx, view.ID, "late failure"), ErrConflict)
	assert.ErrorIs(t, svc.MarkProcessing(ctx, view.ID), ErrConflict)

	// Re-marking the state the session is already in is idempotent.
	assert.NoError(t, svc.MarkCancelled(ctx, view.ID))

	got, err := svc.Get(ctx, view.ID, "user-1", false)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", got.Status)
	assert.Empty(t, got.ReportID)
}
