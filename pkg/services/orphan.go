package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/delverhq/delver/ent/researchsession"
	"github.com/delverhq/delver/pkg/queue"
)

// RecoverStartupOrphans fails PROCESSING sessions stamped with this pod's
// id whose broker job is gone. Called once at boot, before the worker pool
// starts: anything this pod was processing when it last died either has a
// live job (a lease another pod can recover) or is unfinishable.
func (s *SessionService) RecoverStartupOrphans(ctx context.Context, podID string) (int, error) {
	orphans, err := s.client.ResearchSession.Query().
		Where(
			researchsession.StatusEQ(researchsession.StatusProcessing),
			researchsession.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query startup orphans: %w", err)
	}
	if len(orphans) == 0 {
		return 0, nil
	}

	s.logger.Warn("found startup orphans from previous run",
		"pod_id", podID, "count", len(orphans))

	recovered := 0
	for _, session := range orphans {
		if s.jobRecoverable(ctx, session.ID) {
			continue
		}
		msg := fmt.Sprintf("orphaned: pod %s restarted while the session was processing", podID)
		if err := s.MarkFailed(ctx, session.ID, msg); err != nil {
			s.logger.Error("failed to mark startup orphan",
				"session_id", session.ID, "error", err)
			continue
		}
		s.logger.Info("startup orphan failed", "session_id", session.ID)
		recovered++
	}
	return recovered, nil
}

// RecoverStalled fails PROCESSING sessions with no heartbeat since the
// threshold and no recoverable broker job. Lease redelivery re-stamps the
// heartbeat on every attempt, so a session only trips this sweep when the
// broker lost or exhausted its job.
func (s *SessionService) RecoverStalled(ctx context.Context, threshold time.Time) (int, error) {
	stalled, err := s.client.ResearchSession.Query().
		Where(
			researchsession.StatusEQ(researchsession.StatusProcessing),
			researchsession.LastInteractionAtNotNil(),
			researchsession.LastInteractionAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query stalled sessions: %w", err)
	}

	recovered := 0
	for _, session := range stalled {
		if s.jobRecoverable(ctx, session.ID) {
			continue
		}
		lastBeat := "unknown"
		if session.LastInteractionAt != nil {
			lastBeat = session.LastInteractionAt.Format(time.RFC3339)
		}
		msg := fmt.Sprintf("orphaned: no heartbeat since %s and no recoverable job", lastBeat)
		if err := s.MarkFailed(ctx, session.ID, msg); err != nil {
			s.logger.Error("failed to mark stalled session",
				"session_id", session.ID, "error", err)
			continue
		}
		s.logger.Warn("stalled session failed",
			"session_id", session.ID, "last_heartbeat", lastBeat)
		recovered++
	}
	return recovered, nil
}

// jobRecoverable reports whether the broker still holds a deliverable job
// for the session. Waiting, delayed and active jobs will reach a worker
// again; missing and terminally failed jobs will not.
func (s *SessionService) jobRecoverable(ctx context.Context, sessionID string) bool {
	state, err := s.jobs.State(ctx, sessionID)
	if err != nil {
		if errors.Is(err, queue.ErrNoJobsAvailable) {
			return false
		}
		// Broker unreachable: leave the session alone, the next sweep
		// will see it again.
		s.logger.Error("failed to read job state during orphan scan",
			"session_id", sessionID, "error", err)
		return true
	}
	switch state {
	case queue.JobStateWaiting, queue.JobStateDelayed, queue.JobStateActive:
		return true
	default:
		return false
	}
}
