package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/delverhq/delver/ent"
	"github.com/delverhq/delver/ent/researchsession"
	"github.com/delverhq/delver/pkg/config"
	"github.com/delverhq/delver/pkg/models"
	"github.com/delverhq/delver/pkg/queue"
)

// JobQueue is the broker boundary the session service drives.
// Implemented by queue.RedisQueue.
type JobQueue interface {
	Enqueue(ctx context.Context, sessionID string, data queue.JobData, opts queue.EnqueueOptions) error
	Remove(ctx context.Context, sessionID string) (removed bool, err error)
	Progress(ctx context.Context, sessionID string) (percent int, phase string, err error)
	State(ctx context.Context, sessionID string) (queue.JobState, error)
}

// SessionCanceller cancels a session running on this pod. Implemented by
// queue.WorkerPool; sessions on other pods are reached via the broker
// cancel flag that Remove sets.
type SessionCanceller interface {
	CancelSession(sessionID string) bool
}

// SessionService manages the research session lifecycle.
type SessionService struct {
	client    *ent.Client
	jobs      JobQueue
	canceller SessionCanceller
	cfg       *config.ResearchConfig
	podID     string
	logger    *slog.Logger
}

// NewSessionService creates a SessionService. canceller may be nil on
// API-only replicas.
func NewSessionService(client *ent.Client, jobs JobQueue, canceller SessionCanceller, cfg *config.ResearchConfig, logger *slog.Logger) *SessionService {
	return &SessionService{
		client:    client,
		jobs:      jobs,
		canceller: canceller,
		cfg:       cfg,
		logger:    logger.With("component", "services"),
	}
}

// Submit validates a research request, persists the PENDING session, and
// enqueues its job. A session is never left PENDING without a queued job:
// if the enqueue fails, the session is marked FAILED before returning.
func (s *SessionService) Submit(ctx context.Context, userID string, req models.StartResearchRequest) (*models.SessionView, error) {
	topic := strings.TrimSpace(req.Topic)
	if err := models.ValidateTopic(topic); err != nil {
		return nil, NewValidationError("topic", err.Error())
	}

	params := req.Parameters
	params.Normalize()
	if params.MaxSources > s.cfg.MaxSourcesCap {
		return nil, NewValidationError("max_sources",
			fmt.Sprintf("must not exceed %d", s.cfg.MaxSourcesCap))
	}
	if err := params.Validate(); err != nil {
		return nil, NewValidationError("parameters", err.Error())
	}

	sessionID := uuid.New().String()
	session, err := s.client.ResearchSession.Create().
		SetID(sessionID).
		SetUserID(userID).
		SetTopic(topic).
		SetStatus(researchsession.StatusPending).
		SetParameters(paramsToMap(&params)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	data := queue.JobData{Topic: topic, Parameters: params, UserID: userID}
	if err := s.jobs.Enqueue(ctx, sessionID, data, queue.EnqueueOptions{}); err != nil {
		s.logger.Error("failed to enqueue job, failing session",
			"session_id", sessionID, "error", err)
		msg := fmt.Sprintf("failed to enqueue research job: %v", err)
		if markErr := s.MarkFailed(ctx, sessionID, msg); markErr != nil {
			s.logger.Error("failed to mark unenqueued session failed",
				"session_id", sessionID, "error", markErr)
		}
		return nil, fmt.Errorf("failed to enqueue research job: %w", err)
	}

	s.logger.Info("session submitted", "session_id", sessionID, "user_id", userID)
	return sessionView(session), nil
}

// Get returns a session visible to the requesting user. Admins see all
// sessions; other users only their own, and foreign sessions read as not
// found rather than forbidden.
func (s *SessionService) Get(ctx context.Context, sessionID, userID string, admin bool) (*models.SessionView, error) {
	session, err := s.fetch(ctx, sessionID, userID, admin)
	if err != nil {
		return nil, err
	}
	return sessionView(session), nil
}

// List returns sessions matching the filter, newest first, with the total
// count for pagination. Limit is capped at 100.
func (s *SessionService) List(ctx context.Context, filter models.SessionFilter) ([]*models.SessionView, int, error) {
	query := s.client.ResearchSession.Query()
	if filter.UserID != "" {
		query = query.Where(researchsession.UserIDEQ(filter.UserID))
	}
	if filter.Status != "" {
		query = query.Where(researchsession.StatusEQ(researchsession.Status(filter.Status)))
	}

	total, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count sessions: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	sessions, err := query.
		Order(ent.Desc(researchsession.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sessions: %w", err)
	}

	views := make([]*models.SessionView, len(sessions))
	for i, session := range sessions {
		views[i] = sessionView(session)
	}
	return views, total, nil
}

// Progress returns the session status plus the broker-side job progress.
func (s *SessionService) Progress(ctx context.Context, sessionID, userID string, admin bool) (status string, percent int, phase string, err error) {
	session, err := s.fetch(ctx, sessionID, userID, admin)
	if err != nil {
		return "", 0, "", err
	}

	percent, phase, err = s.jobs.Progress(ctx, sessionID)
	if err != nil {
		// The job record may have expired after completion; the session
		// status is still authoritative.
		percent, phase = 0, ""
		if session.Status == researchsession.StatusCompleted {
			percent = 100
		}
	}
	return string(session.Status), percent, phase, nil
}

// Cancel transitions a PENDING or PROCESSING session to CANCELLED and
// removes or flags its job. Any other state is a conflict.
func (s *SessionService) Cancel(ctx context.Context, sessionID, userID string, admin bool) (*models.SessionView, error) {
	session, err := s.fetch(ctx, sessionID, userID, admin)
	if err != nil {
		return nil, err
	}

	switch session.Status {
	case researchsession.StatusPending, researchsession.StatusProcessing:
	case researchsession.StatusCancelled:
		// Cancelling twice is idempotent.
		return sessionView(session), nil
	default:
		return nil, fmt.Errorf("cannot cancel session in status %s: %w", session.Status, ErrConflict)
	}

	removed, err := s.jobs.Remove(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to remove job: %w", err)
	}
	if !removed && s.canceller != nil {
		// Active on some pod. Try the local fast path; other pods see
		// the broker cancel flag Remove just set.
		s.canceller.CancelSession(sessionID)
	}

	if err := s.MarkCancelled(ctx, sessionID); err != nil {
		return nil, err
	}

	session, err = s.client.ResearchSession.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload cancelled session: %w", err)
	}
	s.logger.Info("session cancelled", "session_id", sessionID, "job_removed", removed)
	return sessionView(session), nil
}

// Retry creates a fresh session cloning a FAILED session's topic and
// parameters. The failed session keeps its terminal state; the clone
// records its origin in retried_from.
func (s *SessionService) Retry(ctx context.Context, sessionID, userID string, admin bool) (*models.SessionView, error) {
	source, err := s.fetch(ctx, sessionID, userID, admin)
	if err != nil {
		return nil, err
	}
	if source.Status != researchsession.StatusFailed {
		return nil, fmt.Errorf("only failed sessions can be retried, status is %s: %w", source.Status, ErrConflict)
	}

	params := paramsFromMap(source.Parameters)

	newID := uuid.New().String()
	clone, err := s.client.ResearchSession.Create().
		SetID(newID).
		SetUserID(source.UserID).
		SetTopic(source.Topic).
		SetStatus(researchsession.StatusPending).
		SetParameters(source.Parameters).
		SetRetriedFrom(source.ID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create retry session: %w", err)
	}

	data := queue.JobData{Topic: source.Topic, Parameters: *params, UserID: source.UserID}
	if err := s.jobs.Enqueue(ctx, newID, data, queue.EnqueueOptions{}); err != nil {
		msg := fmt.Sprintf("failed to enqueue research job: %v", err)
		if markErr := s.MarkFailed(ctx, newID, msg); markErr != nil {
			s.logger.Error("failed to mark unenqueued retry failed",
				"session_id", newID, "error", markErr)
		}
		return nil, fmt.Errorf("failed to enqueue research job: %w", err)
	}

	s.logger.Info("session retried", "session_id", sessionID, "new_session_id", newID)
	return sessionView(clone), nil
}

// SetPodID records the pod identity stamped on sessions this replica
// processes. Called once during startup, before workers run.
func (s *SessionService) SetPodID(podID string) {
	s.podID = podID
}

// Status transitions below are guarded: only PENDING or PROCESSING
// sessions move. Terminal states are sticky, so a worker finishing late
// cannot overwrite a user's cancel (or any other first terminal write).

// MarkProcessing transitions a session to PROCESSING and stamps started_at.
func (s *SessionService) MarkProcessing(ctx context.Context, sessionID string) error {
	now := time.Now()
	update := s.client.ResearchSession.Update().
		Where(
			researchsession.IDEQ(sessionID),
			researchsession.StatusIn(researchsession.StatusPending, researchsession.StatusProcessing),
		).
		SetStatus(researchsession.StatusProcessing).
		SetStartedAt(now).
		SetLastInteractionAt(now)
	if s.podID != "" {
		update.SetPodID(s.podID)
	}
	n, err := update.Save(ctx)
	return s.transitionOutcome(ctx, sessionID, n, err, researchsession.StatusProcessing)
}

// MarkCompleted transitions a session to COMPLETED with its report id.
func (s *SessionService) MarkCompleted(ctx context.Context, sessionID, reportID string) error {
	n, err := s.client.ResearchSession.Update().
		Where(
			researchsession.IDEQ(sessionID),
			researchsession.StatusIn(researchsession.StatusPending, researchsession.StatusProcessing),
		).
		SetStatus(researchsession.StatusCompleted).
		SetReportID(reportID).
		SetCompletedAt(time.Now()).
		Save(ctx)
	return s.transitionOutcome(ctx, sessionID, n, err, researchsession.StatusCompleted)
}

// MarkFailed transitions a session to FAILED with an error message.
func (s *SessionService) MarkFailed(ctx context.Context, sessionID, errorMessage string) error {
	n, err := s.client.ResearchSession.Update().
		Where(
			researchsession.IDEQ(sessionID),
			researchsession.StatusIn(researchsession.StatusPending, researchsession.StatusProcessing),
		).
		SetStatus(researchsession.StatusFailed).
		SetErrorMessage(errorMessage).
		SetCompletedAt(time.Now()).
		Save(ctx)
	return s.transitionOutcome(ctx, sessionID, n, err, researchsession.StatusFailed)
}

// MarkCancelled transitions a session to CANCELLED.
func (s *SessionService) MarkCancelled(ctx context.Context, sessionID string) error {
	n, err := s.client.ResearchSession.Update().
		Where(
			researchsession.IDEQ(sessionID),
			researchsession.StatusIn(researchsession.StatusPending, researchsession.StatusProcessing),
		).
		SetStatus(researchsession.StatusCancelled).
		SetCompletedAt(time.Now()).
		Save(ctx)
	return s.transitionOutcome(ctx, sessionID, n, err, researchsession.StatusCancelled)
}

// transitionOutcome maps a guarded status update's row count to the
// service error model: missing sessions read as not found, sessions
// already in a different terminal state as a conflict. Re-marking the
// state a session is already in is idempotent.
func (s *SessionService) transitionOutcome(ctx context.Context, sessionID string, n int, err error, target researchsession.Status) error {
	if err != nil {
		return fmt.Errorf("failed to mark session %s: %w", target, err)
	}
	if n > 0 {
		return nil
	}
	session, getErr := s.client.ResearchSession.Get(ctx, sessionID)
	if getErr != nil {
		if ent.IsNotFound(getErr) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to check session after rejected transition: %w", getErr)
	}
	if session.Status == target {
		return nil
	}
	return fmt.Errorf("session is %s, cannot mark it %s: %w", session.Status, target, ErrConflict)
}

// Heartbeat stamps last_interaction_at for orphan detection.
func (s *SessionService) Heartbeat(ctx context.Context, sessionID string) error {
	return s.client.ResearchSession.UpdateOneID(sessionID).
		SetLastInteractionAt(time.Now()).
		Exec(ctx)
}

// fetch loads a session enforcing visibility.
func (s *SessionService) fetch(ctx context.Context, sessionID, userID string, admin bool) (*ent.ResearchSession, error) {
	session, err := s.client.ResearchSession.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if !admin && userID != "" && session.UserID != userID {
		return nil, ErrNotFound
	}
	return session, nil
}

// sessionView converts an ent row to the API representation.
func sessionView(s *ent.ResearchSession) *models.SessionView {
	view := &models.SessionView{
		ID:         s.ID,
		UserID:     s.UserID,
		Topic:      s.Topic,
		Status:     string(s.Status),
		Parameters: paramsFromMap(s.Parameters),
		CreatedAt:  s.CreatedAt,
	}
	view.StartedAt = s.StartedAt
	view.CompletedAt = s.CompletedAt
	if s.ErrorMessage != nil {
		view.ErrorMessage = *s.ErrorMessage
	}
	if s.ReportID != nil {
		view.ReportID = *s.ReportID
	}
	if s.RetriedFrom != nil {
		view.RetriedFrom = *s.RetriedFrom
	}
	return view
}

// paramsToMap converts parameters to the JSON blob column shape.
func paramsToMap(p *models.ResearchParameters) map[string]interface{} {
	raw, err := json.Marshal(p)
	if err != nil {
		return map[string]interface{}{}
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return map[string]interface{}{}
	}
	return m
}

// paramsFromMap reads parameters back from the JSON blob column.
func paramsFromMap(m map[string]interface{}) *models.ResearchParameters {
	params := &models.ResearchParameters{}
	if len(m) > 0 {
		if raw, err := json.Marshal(m); err == nil {
			_ = json.Unmarshal(raw, params)
		}
	}
	params.Normalize()
	return params
}
