package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how jobs are polled, claimed, and processed.
type QueueConfig struct {
	// QueueName is the broker queue the research workers consume.
	QueueName string `yaml:"queue_name"`

	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and processes one session at a time.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentSessions is the global limit of concurrent sessions being
	// processed across ALL replicas/pods.
	MaxConcurrentSessions int `yaml:"max_concurrent_sessions"`

	// PollInterval is the base interval for checking waiting jobs.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// SessionTimeout is the maximum wall time a session may be processed.
	// Doubles as the job lease (visibility timeout).
	SessionTimeout time.Duration `yaml:"session_timeout"`

	// LeaseRenewInterval is how often an active worker renews its lease
	// and the session heartbeat.
	LeaseRenewInterval time.Duration `yaml:"lease_renew_interval"`

	// MaxAttempts is the number of queue-level delivery attempts before a
	// job is failed permanently.
	MaxAttempts int `yaml:"max_attempts"`

	// RetryBackoff is the base delay for exponential queue retry backoff.
	RetryBackoff time.Duration `yaml:"retry_backoff"`

	// GracefulShutdownTimeout is the max time to wait for active sessions
	// to complete during shutdown. Should match SessionTimeout.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanScanInterval is how often to scan for expired leases.
	OrphanScanInterval time.Duration `yaml:"orphan_scan_interval"`
}

// DefaultQueueConfig returns the built-in queue defaults.
// SessionTimeout is 50 minutes, the queue-level wall clock bound.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		QueueName:               "research",
		WorkerCount:             defaultWorkerCount(),
		MaxConcurrentSessions:   defaultWorkerCount(),
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		SessionTimeout:          50 * time.Minute,
		LeaseRenewInterval:      30 * time.Second,
		MaxAttempts:             3,
		RetryBackoff:            2 * time.Second,
		GracefulShutdownTimeout: 50 * time.Minute,
		OrphanScanInterval:      1 * time.Minute,
	}
}
