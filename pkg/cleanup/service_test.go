package cleanup

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delverhq/delver/ent"
	"github.com/delverhq/delver/ent/researchsession"
	"github.com/delverhq/delver/pkg/config"
	"github.com/delverhq/delver/pkg/queue"
	"github.com/delverhq/delver/pkg/services"
	"github.com/delverhq/delver/pkg/tools"
	testdb "github.com/delverhq/delver/test/database"
)

func seedSession(t *testing.T, client *ent.Client, id string, status researchsession.Status, completedAgo time.Duration) {
	t.Helper()
	builder := client.ResearchSession.Create().
		SetID(id).
		SetUserID("user-1").
		SetTopic("a retained topic").
		SetStatus(status)
	if completedAgo > 0 {
		builder.SetCompletedAt(time.Now().Add(-completedAgo))
	}
	require.NoError(t, builder.Exec(context.Background()))
}

func seedScratch(t *testing.T, data *services.ResearchDataService, sessionID string) {
	t.Helper()
	stored, err := data.StoreData(context.Background(), sessionID, tools.DataRecord{
		DataType: "source_content",
		Content:  "scratch for " + sessionID,
	})
	require.NoError(t, err)
	require.True(t, stored)
}

func TestService_PurgesTerminalScratchpadsAfterGrace(t *testing.T) {
	client := testdb.NewTestClient(t)
	data := services.NewResearchDataService(client.Client, slog.Default())
	ctx := context.Background()

	seedSession(t, client.Client, "sess-old-done", researchsession.StatusCompleted, 2*time.Hour)
	seedSession(t, client.Client, "sess-fresh-done", researchsession.StatusCompleted, time.Minute)
	seedSession(t, client.Client, "sess-live", researchsession.StatusProcessing, 0)
	for _, id := range []string{"sess-old-done", "sess-fresh-done", "sess-live"} {
		seedScratch(t, data, id)
	}

	svc := NewService(&config.RetentionConfig{
		ScratchpadGrace: time.Hour,
		SweepInterval:   time.Hour,
		StalledAfter:    2 * time.Hour,
	}, data, nil, slog.Default())
	svc.sweep()

	// Only the terminal session past its grace period is purged.
	for id, want := range map[string]int{
		"sess-old-done":   0,
		"sess-fresh-done": 1,
		"sess-live":       1,
	} {
		rows, err := data.RetrieveSources(ctx, id, 10)
		require.NoError(t, err)
		assert.Len(t, rows, want, id)
	}
}

func TestService_SweepFailsStalledSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	data := services.NewResearchDataService(client.Client, slog.Default())
	ctx := context.Background()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	jobs := queue.NewRedisQueue(rdb, config.DefaultQueueConfig())
	sessions := services.NewSessionService(client.Client, jobs, nil,
		config.DefaultResearchConfig(), slog.Default())

	// A processing session whose heartbeat stopped and whose job the
	// broker no longer knows about.
	require.NoError(t, client.ResearchSession.Create().
		SetID("sess-stalled").
		SetUserID("user-1").
		SetTopic("an interrupted topic").
		SetStatus(researchsession.StatusProcessing).
		SetLastInteractionAt(time.Now().Add(-3*time.Hour)).
		Exec(ctx))

	svc := NewService(&config.RetentionConfig{
		ScratchpadGrace: time.Hour,
		SweepInterval:   time.Hour,
		StalledAfter:    2 * time.Hour,
	}, data, sessions, slog.Default())
	svc.sweep()

	session, err := client.ResearchSession.Get(ctx, "sess-stalled")
	require.NoError(t, err)
	assert.Equal(t, researchsession.StatusFailed, session.Status)
}

func TestService_StartStop(t *testing.T) {
	client := testdb.NewTestClient(t)
	data := services.NewResearchDataService(client.Client, slog.Default())

	svc := NewService(&config.RetentionConfig{
		ScratchpadGrace: time.Hour,
		SweepInterval:   50 * time.Millisecond,
		StalledAfter:    2 * time.Hour,
	}, data, nil, slog.Default())

	svc.Start(context.Background())
	svc.Start(context.Background()) // duplicate Start is a no-op
	time.Sleep(120 * time.Millisecond)
	svc.Stop()
}
