package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delverhq/delver/pkg/config"
)

// fakeExecutor records executions and returns scripted errors per session.
type fakeExecutor struct {
	mu       sync.Mutex
	executed []string
	results  map[string]error
	block    chan struct{} // when set, Execute blocks until closed or ctx done
}

func (f *fakeExecutor) Execute(ctx context.Context, job *Job) error {
	f.mu.Lock()
	f.executed = append(f.executed, job.SessionID)
	result := f.results[job.SessionID]
	block := f.block
	f.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return fmt.Errorf("session interrupted: %w", context.Cause(ctx))
		}
	}
	return result
}

func (f *fakeExecutor) executions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.executed...)
}

func fastConfig() *config.QueueConfig {
	cfg := config.DefaultQueueConfig()
	cfg.WorkerCount = 2
	cfg.MaxConcurrentSessions = 2
	cfg.PollInterval = 10 * time.Millisecond
	cfg.PollIntervalJitter = 0
	cfg.RetryBackoff = 5 * time.Millisecond
	cfg.LeaseRenewInterval = 20 * time.Millisecond
	cfg.OrphanScanInterval = 20 * time.Millisecond
	return cfg
}

func TestWorker_ProcessesJobToCompletion(t *testing.T) {
	cfg := fastConfig()
	q := newTestQueue(t, func(c *config.QueueConfig) { *c = *cfg })
	exec := &fakeExecutor{results: map[string]error{}}
	pool := NewWorkerPool("pod-1", q, cfg, exec, slog.Default())

	ctx := context.Background()
	require.NoError(t, q.Enqueue(ctx, "sess-1", testJobData("t"), EnqueueOptions{}))

	w := NewWorker("w-1", "pod-1", q, cfg, exec, pool, slog.Default())
	w.Start(ctx)
	defer w.Stop()

	require.Eventually(t, func() bool {
		state, err := q.State(ctx, "sess-1")
		return err == nil && state == JobStateCompleted
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, []string{"sess-1"}, exec.executions())

	health := w.Health()
	assert.Equal(t, string(WorkerStatusIdle), health.Status)
	assert.Equal(t, 1, health.JobsProcessed)
}

func TestWorker_RetriesTransientFailure(t *testing.T) {
	cfg := fastConfig()
	q := newTestQueue(t, func(c *config.QueueConfig) { *c = *cfg })

	// First execution fails, later ones succeed.
	exec := &fakeExecutor{results: map[string]error{"sess-1": errors.New("llm unreachable")}}
	pool := NewWorkerPool("pod-1", q, cfg, exec, slog.Default())

	ctx := context.Background()
	require.NoError(t, q.Enqueue(ctx, "sess-1", testJobData("t"), EnqueueOptions{}))

	w := NewWorker("w-1", "pod-1", q, cfg, exec, pool, slog.Default())
	w.Start(ctx)
	defer w.Stop()

	require.Eventually(t, func() bool {
		return len(exec.executions()) >= 1
	}, 2*time.Second, 10*time.Millisecond)

	exec.mu.Lock()
	exec.results["sess-1"] = nil
	exec.mu.Unlock()

	require.Eventually(t, func() bool {
		state, err := q.State(ctx, "sess-1")
		return err == nil && state == JobStateCompleted
	}, 2*time.Second, 10*time.Millisecond)

	assert.GreaterOrEqual(t, len(exec.executions()), 2)
}

func TestWorker_PermanentFailureIsNotRetried(t *testing.T) {
	cfg := fastConfig()
	q := newTestQueue(t, func(c *config.QueueConfig) { *c = *cfg })
	exec := &fakeExecutor{results: map[string]error{
		"sess-1": fmt.Errorf("agent exhausted iteration budget: %w", ErrNoRetry),
	}}
	pool := NewWorkerPool("pod-1", q, cfg, exec, slog.Default())

	ctx := context.Background()
	require.NoError(t, q.Enqueue(ctx, "sess-1", testJobData("t"), EnqueueOptions{}))

	w := NewWorker("w-1", "pod-1", q, cfg, exec, pool, slog.Default())
	w.Start(ctx)
	defer w.Stop()

	require.Eventually(t, func() bool {
		state, err := q.State(ctx, "sess-1")
		return err == nil && state == JobStateFailed
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, []string{"sess-1"}, exec.executions())
}

func TestWorker_CancelFlagInterruptsActiveJob(t *testing.T) {
	cfg := fastConfig()
	q := newTestQueue(t, func(c *config.QueueConfig) { *c = *cfg })
	exec := &fakeExecutor{results: map[string]error{}, block: make(chan struct{})}
	pool := NewWorkerPool("pod-1", q, cfg, exec, slog.Default())

	ctx := context.Background()
	require.NoError(t, q.Enqueue(ctx, "sess-1", testJobData("t"), EnqueueOptions{}))

	w := NewWorker("w-1", "pod-1", q, cfg, exec, pool, slog.Default())
	w.Start(ctx)
	defer w.Stop()

	// Wait until the job is active, then cancel via the broker flag the
	// way a different pod's API replica would.
	require.Eventually(t, func() bool {
		state, err := q.State(ctx, "sess-1")
		return err == nil && state == JobStateActive
	}, 2*time.Second, 10*time.Millisecond)

	removed, err := q.Remove(ctx, "sess-1")
	require.NoError(t, err)
	assert.False(t, removed)

	// The cancel watcher trips the job context; the executor returns a
	// cancellation error and the job is cleared without retry.
	require.Eventually(t, func() bool {
		state, err := q.State(ctx, "sess-1")
		return err == nil && state == JobStateCompleted
	}, 5*time.Second, 10*time.Millisecond)

	assert.Equal(t, []string{"sess-1"}, exec.executions())
}

func TestWorkerPool_StartStop(t *testing.T) {
	cfg := fastConfig()
	q := newTestQueue(t, func(c *config.QueueConfig) { *c = *cfg })
	exec := &fakeExecutor{results: map[string]error{}}
	pool := NewWorkerPool("pod-1", q, cfg, exec, slog.Default())

	ctx := context.Background()
	require.NoError(t, q.Enqueue(ctx, "sess-1", testJobData("a"), EnqueueOptions{}))
	require.NoError(t, q.Enqueue(ctx, "sess-2", testJobData("b"), EnqueueOptions{}))

	require.NoError(t, pool.Start(ctx))
	// Duplicate Start is a no-op.
	require.NoError(t, pool.Start(ctx))

	require.Eventually(t, func() bool {
		for _, id := range []string{"sess-1", "sess-2"} {
			state, err := q.State(ctx, id)
			if err != nil || state != JobStateCompleted {
				return false
			}
		}
		return true
	}, 2*time.Second, 10*time.Millisecond)

	pool.Stop()

	health := pool.Health()
	assert.True(t, health.BrokerReachable)
	assert.Equal(t, 2, health.TotalWorkers)
	assert.Zero(t, health.ActiveJobs)
}

func TestWorkerPool_CancelSessionLocally(t *testing.T) {
	cfg := fastConfig()
	q := newTestQueue(t, func(c *config.QueueConfig) { *c = *cfg })
	exec := &fakeExecutor{results: map[string]error{}, block: make(chan struct{})}
	pool := NewWorkerPool("pod-1", q, cfg, exec, slog.Default())

	ctx := context.Background()
	require.NoError(t, q.Enqueue(ctx, "sess-1", testJobData("t"), EnqueueOptions{}))
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		return pool.CancelSession("sess-1")
	}, 2*time.Second, 10*time.Millisecond)

	require.Eventually(t, func() bool {
		state, err := q.State(ctx, "sess-1")
		return err == nil && state == JobStateCompleted
	}, 2*time.Second, 10*time.Millisecond)

	assert.False(t, pool.CancelSession("sess-1"))
}
