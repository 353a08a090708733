// Package cleanup provides data retention services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/delverhq/delver/pkg/config"
	"github.com/delverhq/delver/pkg/services"
)

// Service periodically purges the scratchpad rows of sessions that reached
// a terminal status, after a grace period, and fails PROCESSING sessions
// whose heartbeat went silent with no recoverable job. Reports, sources and
// citations are permanent; only the per-session working data is reclaimed.
// Sweeps are idempotent and safe to run from multiple pods.
type Service struct {
	config   *config.RetentionConfig
	data     *services.ResearchDataService
	sessions *services.SessionService
	logger   *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a cleanup service. sessions may be nil to disable the
// stalled-session scan.
func NewService(cfg *config.RetentionConfig, data *services.ResearchDataService, sessions *services.SessionService, logger *slog.Logger) *Service {
	return &Service{
		config:   cfg,
		data:     data,
		sessions: sessions,
		logger:   logger.With("component", "cleanup"),
	}
}

// Start launches the background sweep loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("cleanup service started",
		"scratchpad_grace", s.config.ScratchpadGrace,
		"sweep_interval", s.config.SweepInterval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.sweep()

	ticker := time.NewTicker(s.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

// sweep runs on its own context so an in-flight purge finishes cleanly
// during shutdown.
func (s *Service) sweep() {
	ctx := context.Background()
	now := time.Now()

	count, err := s.data.PurgeTerminal(ctx, now.Add(-s.config.ScratchpadGrace))
	if err != nil {
		s.logger.Error("retention sweep failed", "error", err)
	} else if count > 0 {
		s.logger.Info("retention sweep purged scratchpad rows", "rows", count)
	}

	if s.sessions == nil {
		return
	}
	recovered, err := s.sessions.RecoverStalled(ctx, now.Add(-s.config.StalledAfter))
	if err != nil {
		s.logger.Error("stalled session scan failed", "error", err)
	} else if recovered > 0 {
		s.logger.Warn("stalled sessions failed by sweep", "count", recovered)
	}
}
