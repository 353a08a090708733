package queue

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delverhq/delver/pkg/config"
	"github.com/delverhq/delver/pkg/models"
)

func newTestQueue(t *testing.T, mutate func(*config.QueueConfig)) *RedisQueue {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := config.DefaultQueueConfig()
	cfg.RetryBackoff = 5 * time.Millisecond
	if mutate != nil {
		mutate(cfg)
	}
	return NewRedisQueue(rdb, cfg)
}

func testJobData(topic string) JobData {
	params := models.ResearchParameters{}
	params.Normalize()
	return JobData{Topic: topic, Parameters: params, UserID: "user-1"}
}

func TestEnqueueClaim_FIFO(t *testing.T) {
	q := newTestQueue(t, nil)
	ctx := context.Background()

	require.NoError(t, q.Enqueue(ctx, "sess-a", testJobData("first"), EnqueueOptions{}))
	require.NoError(t, q.Enqueue(ctx, "sess-b", testJobData("second"), EnqueueOptions{}))

	job, err := q.Claim(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sess-a", job.SessionID)
	assert.Equal(t, "first", job.Data.Topic)
	assert.Equal(t, "user-1", job.Data.UserID)
	assert.Equal(t, 1, job.Attempts)
	assert.Equal(t, 50, job.Data.Parameters.MaxSources)

	job, err = q.Claim(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sess-b", job.SessionID)

	_, err = q.Claim(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestClaim_PriorityBeatsFIFO(t *testing.T) {
	q := newTestQueue(t, nil)
	ctx := context.Background()

	require.NoError(t, q.Enqueue(ctx, "sess-low", testJobData("low"), EnqueueOptions{}))
	require.NoError(t, q.Enqueue(ctx, "sess-high", testJobData("high"), EnqueueOptions{Priority: 5}))

	job, err := q.Claim(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sess-high", job.SessionID)
}

func TestFail_RequeuesWithBackoff(t *testing.T) {
	q := newTestQueue(t, nil)
	ctx := context.Background()

	require.NoError(t, q.Enqueue(ctx, "sess-1", testJobData("t"), EnqueueOptions{}))
	job, err := q.Claim(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, job.Attempts)
	assert.False(t, job.FinalAttempt())

	requeued, err := q.Fail(ctx, "sess-1", "llm unreachable")
	require.NoError(t, err)
	assert.True(t, requeued)

	state, err := q.State(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, JobStateDelayed, state)

	// Not claimable until the backoff elapses.
	_, err = q.Claim(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)

	require.Eventually(t, func() bool {
		job, err = q.Claim(ctx)
		return err == nil
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, "sess-1", job.SessionID)
	assert.Equal(t, 2, job.Attempts)
}

func TestFail_FinalAttemptIsTerminal(t *testing.T) {
	q := newTestQueue(t, func(cfg *config.QueueConfig) { cfg.MaxAttempts = 1 })
	ctx := context.Background()

	require.NoError(t, q.Enqueue(ctx, "sess-1", testJobData("t"), EnqueueOptions{}))
	job, err := q.Claim(ctx)
	require.NoError(t, err)
	assert.True(t, job.FinalAttempt())

	requeued, err := q.Fail(ctx, "sess-1", "still broken")
	require.NoError(t, err)
	assert.False(t, requeued)

	state, err := q.State(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, JobStateFailed, state)

	_, err = q.Claim(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestComplete_RemovesFromActive(t *testing.T) {
	q := newTestQueue(t, nil)
	ctx := context.Background()

	require.NoError(t, q.Enqueue(ctx, "sess-1", testJobData("t"), EnqueueOptions{}))
	_, err := q.Claim(ctx)
	require.NoError(t, err)

	active, err := q.ActiveCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, active)

	require.NoError(t, q.Complete(ctx, "sess-1"))

	active, err = q.ActiveCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, active)

	state, err := q.State(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, JobStateCompleted, state)

	percent, _, err := q.Progress(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 100, percent)
}

func TestRemove_WaitingJobRemovedOutright(t *testing.T) {
	q := newTestQueue(t, nil)
	ctx := context.Background()

	require.NoError(t, q.Enqueue(ctx, "sess-1", testJobData("t"), EnqueueOptions{}))

	removed, err := q.Remove(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = q.Claim(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestRemove_ActiveJobGetsCancelFlag(t *testing.T) {
	q := newTestQueue(t, nil)
	ctx := context.Background()

	require.NoError(t, q.Enqueue(ctx, "sess-1", testJobData("t"), EnqueueOptions{}))
	_, err := q.Claim(ctx)
	require.NoError(t, err)

	removed, err := q.Remove(ctx, "sess-1")
	require.NoError(t, err)
	assert.False(t, removed)

	requested, err := q.CancelRequested(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, requested)

	// Completing clears the flag.
	require.NoError(t, q.Complete(ctx, "sess-1"))
	requested, err = q.CancelRequested(ctx, "sess-1")
	require.NoError(t, err)
	assert.False(t, requested)
}

func TestRequeueExpired_RecoversCrashedWorkerJob(t *testing.T) {
	q := newTestQueue(t, func(cfg *config.QueueConfig) {
		cfg.SessionTimeout = 10 * time.Millisecond
	})
	ctx := context.Background()

	require.NoError(t, q.Enqueue(ctx, "sess-1", testJobData("t"), EnqueueOptions{}))
	_, err := q.Claim(ctx)
	require.NoError(t, err)

	// Worker "crashes": no renewal, no completion.
	time.Sleep(20 * time.Millisecond)

	requeued, failed, err := q.RequeueExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, requeued)
	assert.Zero(t, failed)

	job, err := q.Claim(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", job.SessionID)
	assert.Equal(t, 2, job.Attempts)
}

func TestRequeueExpired_FinalAttemptFails(t *testing.T) {
	q := newTestQueue(t, func(cfg *config.QueueConfig) {
		cfg.SessionTimeout = 10 * time.Millisecond
		cfg.MaxAttempts = 1
	})
	ctx := context.Background()

	require.NoError(t, q.Enqueue(ctx, "sess-1", testJobData("t"), EnqueueOptions{}))
	_, err := q.Claim(ctx)
	require.NoError(t, err)
	time.Sleep(20 * time.Millisecond)

	requeued, failed, err := q.RequeueExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, requeued)
	assert.Equal(t, 1, failed)

	state, err := q.State(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, JobStateFailed, state)
}

func TestRenewLease_KeepsJobInvisible(t *testing.T) {
	q := newTestQueue(t, func(cfg *config.QueueConfig) {
		cfg.SessionTimeout = 50 * time.Millisecond
	})
	ctx := context.Background()

	require.NoError(t, q.Enqueue(ctx, "sess-1", testJobData("t"), EnqueueOptions{}))
	_, err := q.Claim(ctx)
	require.NoError(t, err)

	time.Sleep(30 * time.Millisecond)
	require.NoError(t, q.RenewLease(ctx, "sess-1"))
	time.Sleep(30 * time.Millisecond)

	// Without the renewal the lease would have expired by now.
	requeued, failed, err := q.RequeueExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, requeued)
	assert.Zero(t, failed)
}

func TestReportProgress(t *testing.T) {
	q := newTestQueue(t, nil)
	ctx := context.Background()

	require.NoError(t, q.Enqueue(ctx, "sess-1", testJobData("t"), EnqueueOptions{}))
	require.NoError(t, q.ReportProgress(ctx, "sess-1", 33, "analyze"))

	percent, phase, err := q.Progress(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 33, percent)
	assert.Equal(t, "analyze", phase)

	// Out-of-range values are clamped.
	require.NoError(t, q.ReportProgress(ctx, "sess-1", 140, "write"))
	percent, _, err = q.Progress(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 100, percent)
}

func TestDepth_CountsWaitingAndDelayed(t *testing.T) {
	q := newTestQueue(t, nil)
	ctx := context.Background()

	require.NoError(t, q.Enqueue(ctx, "sess-a", testJobData("a"), EnqueueOptions{}))
	require.NoError(t, q.Enqueue(ctx, "sess-b", testJobData("b"), EnqueueOptions{}))

	depth, err := q.Depth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, depth)

	_, err = q.Claim(ctx)
	require.NoError(t, err)
	_, err = q.Fail(ctx, "sess-a", "boom")
	require.NoError(t, err)

	// sess-a is delayed, sess-b is waiting.
	depth, err = q.Depth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, depth)
}
