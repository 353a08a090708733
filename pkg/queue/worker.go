package queue

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/delverhq/delver/pkg/config"
)

// cancelPollInterval is how often an active worker checks the broker-side
// cancel flag for its current job.
const cancelPollInterval = 2 * time.Second

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// SessionRegistry is the subset of WorkerPool used by Worker for session
// registration.
type SessionRegistry interface {
	RegisterSession(sessionID string, cancel context.CancelFunc)
	UnregisterSession(sessionID string)
}

// Worker is a single queue worker that polls for and processes jobs.
type Worker struct {
	id       string
	podID    string
	queue    *RedisQueue
	config   *config.QueueConfig
	executor SessionExecutor
	pool     SessionRegistry
	logger   *slog.Logger
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu               sync.RWMutex
	status           WorkerStatus
	currentSessionID string
	jobsProcessed    int
	lastActivity     time.Time
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, queue *RedisQueue, cfg *config.QueueConfig, executor SessionExecutor, pool SessionRegistry, logger *slog.Logger) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		queue:        queue,
		config:       cfg,
		executor:     executor,
		pool:         pool,
		logger:       logger.With("component", "queue", "worker_id", id, "pod_id", podID),
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish its current
// job. Safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:               w.id,
		Status:           string(w.status),
		CurrentSessionID: w.currentSessionID,
		JobsProcessed:    w.jobsProcessed,
		LastActivity:     w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	w.logger.Info("worker started")

	for {
		select {
		case <-w.stopCh:
			w.logger.Info("worker shutting down")
			return
		case <-ctx.Done():
			w.logger.Info("context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				w.logger.Error("error processing job", "error", err)
				w.sleep(time.Second)
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a job, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// Capacity is checked against the broker-wide active set, so the
	// limit holds across pods. The check races with other claims but is
	// bounded by WorkerCount and mitigated by poll jitter.
	active, err := w.queue.ActiveCount(ctx)
	if err != nil {
		return err
	}
	if active >= w.config.MaxConcurrentSessions {
		return ErrAtCapacity
	}

	job, err := w.queue.Claim(ctx)
	if err != nil {
		return err
	}

	log := w.logger.With("session_id", job.SessionID, "attempt", job.Attempts)
	log.Info("job claimed")

	w.setStatus(WorkerStatusWorking, job.SessionID)
	defer w.setStatus(WorkerStatusIdle, "")

	jobCtx, cancelJob := context.WithTimeout(ctx, job.Timeout())
	defer cancelJob()

	// Registered so the API can cancel a session running on this pod
	// without a broker round trip.
	w.pool.RegisterSession(job.SessionID, cancelJob)
	defer w.pool.UnregisterSession(job.SessionID)

	// Lease renewal and cancel-flag watching run for the duration of the
	// job and stop as soon as Execute returns.
	watchCtx, stopWatch := context.WithCancel(jobCtx)
	go w.renewLease(watchCtx, job.SessionID)
	go w.watchCancelFlag(watchCtx, job.SessionID, cancelJob)

	execErr := w.executor.Execute(jobCtx, job)
	stopWatch()

	// Queue bookkeeping uses a fresh context; jobCtx may be dead.
	bkCtx, bkCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer bkCancel()

	switch {
	case execErr == nil:
		if err := w.queue.Complete(bkCtx, job.SessionID); err != nil {
			log.Error("failed to mark job completed", "error", err)
			return err
		}
		log.Info("job completed")

	case errors.Is(execErr, context.Canceled):
		// Cancelled sessions are terminal; the executor already recorded
		// the CANCELLED status.
		if err := w.queue.Complete(bkCtx, job.SessionID); err != nil {
			log.Error("failed to clear cancelled job", "error", err)
			return err
		}
		log.Info("job cancelled")

	case errors.Is(execErr, ErrNoRetry):
		if err := w.queue.Discard(bkCtx, job.SessionID, execErr.Error()); err != nil {
			log.Error("failed to discard job", "error", err)
			return err
		}
		log.Warn("job failed permanently", "error", execErr)

	default:
		requeued, err := w.queue.Fail(bkCtx, job.SessionID, execErr.Error())
		if err != nil {
			log.Error("failed to record job failure", "error", err)
			return err
		}
		if requeued {
			log.Warn("job failed, requeued with backoff", "error", execErr)
		} else {
			log.Warn("job failed on final attempt", "error", execErr)
		}
	}

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()
	return nil
}

// renewLease periodically extends the job's visibility timeout so other
// workers don't re-claim it while it is being processed.
func (w *Worker) renewLease(ctx context.Context, sessionID string) {
	ticker := time.NewTicker(w.config.LeaseRenewInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.queue.RenewLease(ctx, sessionID); err != nil {
				w.logger.Warn("lease renewal failed", "session_id", sessionID, "error", err)
			}
		}
	}
}

// watchCancelFlag polls the broker-side cancel flag and cancels the job
// context when set. This is how a cancel issued on another pod reaches the
// pod actually running the session.
func (w *Worker) watchCancelFlag(ctx context.Context, sessionID string, cancel context.CancelFunc) {
	ticker := time.NewTicker(cancelPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			requested, err := w.queue.CancelRequested(ctx, sessionID)
			if err != nil {
				continue
			}
			if requested {
				w.logger.Info("cancel flag observed", "session_id", sessionID)
				cancel()
				return
			}
		}
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, sessionID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentSessionID = sessionID
	w.lastActivity = time.Now()
}
