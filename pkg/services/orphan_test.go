package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delverhq/delver/ent"
	"github.com/delverhq/delver/ent/researchsession"
	"github.com/delverhq/delver/pkg/queue"
	testdb "github.com/delverhq/delver/test/database"
)

func seedProcessing(t *testing.T, client *ent.Client, id, podID string, lastBeatAgo time.Duration) {
	t.Helper()
	builder := client.ResearchSession.Create().
		SetID(id).
		SetUserID("user-1").
		SetTopic("an interrupted topic").
		SetStatus(researchsession.StatusProcessing).
		SetPodID(podID)
	if lastBeatAgo > 0 {
		builder.SetLastInteractionAt(time.Now().Add(-lastBeatAgo))
	}
	require.NoError(t, builder.Exec(context.Background()))
}

func TestSessionService_RecoverStartupOrphans(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := newFakeJobQueue()
	svc := setupTestSessionService(t, client.Client, jobs, nil)
	ctx := context.Background()

	seedProcessing(t, client.Client, "sess-dead", "pod-a", time.Hour)
	seedProcessing(t, client.Client, "sess-redeliverable", "pod-a", time.Hour)
	seedProcessing(t, client.Client, "sess-other-pod", "pod-b", time.Hour)

	// The redeliverable session still has a waiting job in the broker.
	jobs.states["sess-redeliverable"] = queue.JobStateWaiting

	recovered, err := svc.RecoverStartupOrphans(ctx, "pod-a")
	require.NoError(t, err)
	assert.Equal(t, 1, recovered)

	dead, err := client.ResearchSession.Get(ctx, "sess-dead")
	require.NoError(t, err)
	assert.Equal(t, researchsession.StatusFailed, dead.Status)
	require.NotNil(t, dead.ErrorMessage)
	assert.Contains(t, *dead.ErrorMessage, "pod-a restarted")

	for _, id := range []string{"sess-redeliverable", "sess-other-pod"} {
		session, err := client.ResearchSession.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, researchsession.StatusProcessing, session.Status, id)
	}
}

func TestSessionService_RecoverStalled(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := newFakeJobQueue()
	svc := setupTestSessionService(t, client.Client, jobs, nil)
	ctx := context.Background()

	seedProcessing(t, client.Client, "sess-stalled", "pod-a", 3*time.Hour)
	seedProcessing(t, client.Client, "sess-fresh", "pod-a", time.Minute)
	seedProcessing(t, client.Client, "sess-delayed-retry", "pod-a", 3*time.Hour)
	jobs.states["sess-delayed-retry"] = queue.JobStateDelayed

	recovered, err := svc.RecoverStalled(ctx, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, recovered)

	stalled, err := client.ResearchSession.Get(ctx, "sess-stalled")
	require.NoError(t, err)
	assert.Equal(t, researchsession.StatusFailed, stalled.Status)
	require.NotNil(t, stalled.ErrorMessage)
	assert.Contains(t, *stalled.ErrorMessage, "no heartbeat")

	for _, id := range []string{"sess-fresh", "sess-delayed-retry"} {
		session, err := client.ResearchSession.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, researchsession.StatusProcessing, session.Status, id)
	}
}
