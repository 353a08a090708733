// Package queue provides the research job queue and worker pool.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/delverhq/delver/pkg/models"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no waiting jobs are in the queue.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrAtCapacity indicates the global concurrent session limit has been reached.
	ErrAtCapacity = errors.New("at capacity")

	// ErrNoRetry marks an execution failure as permanent. Executors wrap
	// their error with ErrNoRetry when the session has already been moved
	// to a terminal state and queue-level redelivery would be wasted work.
	ErrNoRetry = errors.New("permanent failure")
)

// JobState is the broker-side lifecycle state of a job.
type JobState string

// Job state constants.
const (
	JobStateWaiting   JobState = "waiting"
	JobStateActive    JobState = "active"
	JobStateDelayed   JobState = "delayed"
	JobStateCompleted JobState = "completed"
	JobStateFailed    JobState = "failed"
)

// JobData is the payload carried by a research job. The job id equals the
// session id, so the worker can reconstruct everything else from the store.
type JobData struct {
	Topic      string                    `json:"topic"`
	Parameters models.ResearchParameters `json:"parameters"`
	UserID     string                    `json:"user_id"`
}

// Job is a claimed queue record.
type Job struct {
	SessionID string
	Data      JobData

	// Attempts is the delivery count including the current claim. The
	// first claim observes Attempts == 1.
	Attempts    int
	MaxAttempts int
	Priority    int
	EnqueuedAt  time.Time

	timeout time.Duration
}

// Timeout returns the wall-clock bound for processing this job. It equals
// the lease duration, so a crashed worker's claim becomes visible again
// right when a live worker would have given up.
func (j *Job) Timeout() time.Duration {
	return j.timeout
}

// FinalAttempt reports whether this delivery is the last one the queue
// will make for the job.
func (j *Job) FinalAttempt() bool {
	return j.Attempts >= j.MaxAttempts
}

// EnqueueOptions control retry and lease behavior for a job.
// Zero values fall back to the queue configuration.
type EnqueueOptions struct {
	Priority    int
	MaxAttempts int
	Backoff     time.Duration
	Timeout     time.Duration
}

// SessionExecutor processes a claimed job end to end.
//
// The executor owns the session lifecycle: it transitions the session to
// PROCESSING, runs all stages, and writes the terminal status itself. The
// worker only handles claiming, lease renewal, cancel-flag watching, and
// queue bookkeeping after Execute returns.
//
// Return values:
//   - nil: job completed, removed from the queue
//   - error wrapping context.Canceled: cancelled, removed from the queue
//   - error wrapping ErrNoRetry: permanent failure, removed from the queue
//   - any other error: redelivered with backoff until attempts run out
type SessionExecutor interface {
	Execute(ctx context.Context, job *Job) error
}

// ProgressReporter is the subset of the queue used by executors to report
// job progress.
type ProgressReporter interface {
	ReportProgress(ctx context.Context, jobID string, percent int, phase string) error
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy       bool           `json:"is_healthy"`
	BrokerReachable bool           `json:"broker_reachable"`
	BrokerError     string         `json:"broker_error,omitempty"`
	PodID           string         `json:"pod_id"`
	ActiveWorkers   int            `json:"active_workers"`
	TotalWorkers    int            `json:"total_workers"`
	ActiveJobs      int            `json:"active_jobs"`
	MaxConcurrent   int            `json:"max_concurrent"`
	QueueDepth      int            `json:"queue_depth"`
	WorkerStats     []WorkerHealth `json:"worker_stats"`
	LastLeaseScan   time.Time      `json:"last_lease_scan"`
	LeasesRecovered int            `json:"leases_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID               string    `json:"id"`
	Status           string    `json:"status"` // "idle" or "working"
	CurrentSessionID string    `json:"current_session_id,omitempty"`
	JobsProcessed    int       `json:"jobs_processed"`
	LastActivity     time.Time `json:"last_activity"`
}
