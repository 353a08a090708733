package services

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/delverhq/delver/ent"
	"github.com/delverhq/delver/pkg/config"
	"github.com/delverhq/delver/pkg/queue"
)

// fakeJobQueue records broker calls so service tests run without Redis.
type fakeJobQueue struct {
	mu         sync.Mutex
	enqueued   []string
	enqueueErr error
	removed    map[string]bool
	states     map[string]queue.JobState
	percent    int
	phase      string
	progErr    error
}

func newFakeJobQueue() *fakeJobQueue {
	return &fakeJobQueue{
		removed: map[string]bool{},
		states:  map[string]queue.JobState{},
	}
}

func (f *fakeJobQueue) Enqueue(_ context.Context, sessionID string, _ queue.JobData, _ queue.EnqueueOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.enqueueErr != nil {
		return f.enqueueErr
	}
	f.enqueued = append(f.enqueued, sessionID)
	return nil
}

func (f *fakeJobQueue) Remove(_ context.Context, sessionID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.removed[sessionID], nil
}

func (f *fakeJobQueue) Progress(context.Context, string) (int, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.progErr != nil {
		return 0, "", f.progErr
	}
	return f.percent, f.phase, nil
}

func (f *fakeJobQueue) State(_ context.Context, sessionID string) (queue.JobState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if state, ok := f.states[sessionID]; ok {
		return state, nil
	}
	return "", queue.ErrNoJobsAvailable
}

// fakeCanceller records local cancellation attempts.
type fakeCanceller struct {
	mu        sync.Mutex
	cancelled []string
}

func (f *fakeCanceller) CancelSession(sessionID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled = append(f.cancelled, sessionID)
	return true
}

func setupTestSessionService(_ *testing.T, client *ent.Client, jobs *fakeJobQueue, canceller *fakeCanceller) *SessionService {
	var c SessionCanceller
	if canceller != nil {
		c = canceller
	}
	return NewSessionService(client, jobs, c, config.DefaultResearchConfig(), slog.Default())
}
