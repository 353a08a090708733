package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/delverhq/delver/pkg/config"
)

// WorkerPool manages a pool of queue workers and the lease recovery scan.
type WorkerPool struct {
	podID    string
	queue    *RedisQueue
	config   *config.QueueConfig
	executor SessionExecutor
	logger   *slog.Logger
	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Session cancel registry: session_id -> cancel function
	activeSessions map[string]context.CancelFunc
	mu             sync.RWMutex
	started        bool

	// Lease recovery state
	scan scanState
}

// scanState tracks lease recovery metrics.
type scanState struct {
	mu              sync.Mutex
	lastScan        time.Time
	leasesRecovered int
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(podID string, queue *RedisQueue, cfg *config.QueueConfig, executor SessionExecutor, logger *slog.Logger) *WorkerPool {
	return &WorkerPool{
		podID:          podID,
		queue:          queue,
		config:         cfg,
		executor:       executor,
		logger:         logger.With("component", "queue", "pod_id", podID),
		workers:        make([]*Worker, 0, cfg.WorkerCount),
		stopCh:         make(chan struct{}),
		activeSessions: make(map[string]context.CancelFunc),
	}
}

// Start spawns worker goroutines and the lease recovery background task.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		p.logger.Warn("worker pool already started, ignoring duplicate Start call")
		return nil
	}
	p.started = true

	p.logger.Info("starting worker pool", "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.queue, p.config, p.executor, p, p.logger)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runLeaseRecovery(ctx)
	}()

	p.logger.Info("worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish. Workers
// finish their current jobs before exiting.
func (p *WorkerPool) Stop() {
	p.logger.Info("stopping worker pool gracefully")

	active := p.getActiveSessionIDs()
	if len(active) > 0 {
		p.logger.Info("waiting for active sessions to complete",
			"count", len(active),
			"session_ids", active)
	}

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	p.logger.Info("worker pool stopped gracefully")
}

// RegisterSession stores a cancel function for manual cancellation.
func (p *WorkerPool) RegisterSession(sessionID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeSessions[sessionID] = cancel
}

// UnregisterSession removes the cancel function when processing ends.
func (p *WorkerPool) UnregisterSession(sessionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeSessions, sessionID)
}

// CancelSession triggers context cancellation for a session on this pod.
// Returns true if the session was found and cancelled locally. Sessions
// running on other pods are reached via the broker cancel flag instead.
func (p *WorkerPool) CancelSession(sessionID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeSessions[sessionID]; ok {
		cancel()
		return true
	}
	return false
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.queue.Depth(ctx)
	if errQ != nil {
		p.logger.Error("failed to query queue depth for health check", "error", errQ)
	}

	activeJobs, errA := p.queue.ActiveCount(ctx)
	if errA != nil {
		p.logger.Error("failed to query active jobs for health check", "error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	brokerHealthy := errQ == nil && errA == nil
	isHealthy := len(p.workers) > 0 && brokerHealthy

	p.scan.mu.Lock()
	lastScan := p.scan.lastScan
	recovered := p.scan.leasesRecovered
	p.scan.mu.Unlock()

	var brokerError string
	if errQ != nil {
		brokerError = fmt.Sprintf("queue depth query failed: %v", errQ)
	} else if errA != nil {
		brokerError = fmt.Sprintf("active jobs query failed: %v", errA)
	}

	return &PoolHealth{
		IsHealthy:       isHealthy,
		BrokerReachable: brokerHealthy,
		BrokerError:     brokerError,
		PodID:           p.podID,
		ActiveWorkers:   activeWorkers,
		TotalWorkers:    len(p.workers),
		ActiveJobs:      activeJobs,
		MaxConcurrent:   p.config.MaxConcurrentSessions,
		QueueDepth:      queueDepth,
		WorkerStats:     workerStats,
		LastLeaseScan:   lastScan,
		LeasesRecovered: recovered,
	}
}

// runLeaseRecovery periodically requeues jobs whose lease expired without
// completion. All pods run this independently; the script is idempotent.
func (p *WorkerPool) runLeaseRecovery(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			requeued, failed, err := p.queue.RequeueExpired(ctx)
			if err != nil {
				p.logger.Error("lease recovery scan failed", "error", err)
				continue
			}
			if requeued > 0 || failed > 0 {
				p.logger.Warn("recovered expired leases",
					"requeued", requeued,
					"failed", failed)
			}
			p.scan.mu.Lock()
			p.scan.lastScan = time.Now()
			p.scan.leasesRecovered += requeued
			p.scan.mu.Unlock()
		}
	}
}

// getActiveSessionIDs returns IDs of currently processing sessions.
func (p *WorkerPool) getActiveSessionIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	sessions := make([]string, 0, len(p.activeSessions))
	for id := range p.activeSessions {
		sessions = append(sessions, id)
	}
	return sessions
}
