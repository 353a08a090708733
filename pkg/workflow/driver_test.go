package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delverhq/delver/pkg/config"
	"github.com/delverhq/delver/pkg/events"
	"github.com/delverhq/delver/pkg/extract"
	"github.com/delverhq/delver/pkg/llm"
	"github.com/delverhq/delver/pkg/models"
	"github.com/delverhq/delver/pkg/queue"
	"github.com/delverhq/delver/pkg/search"
	"github.com/delverhq/delver/pkg/tools"
)

// scriptedLLM replays canned completions in order.
type scriptedLLM struct {
	script []llm.Completion
	err    error
	calls  atomic.Int32
}

func (s *scriptedLLM) Complete(_ context.Context, _ []llm.Message, _ llm.Options) (*llm.Completion, error) {
	if s.err != nil {
		return nil, s.err
	}
	i := int(s.calls.Add(1)) - 1
	if i >= len(s.script) {
		return nil, fmt.Errorf("script exhausted at call %d", i+1)
	}
	c := s.script[i]
	return &c, nil
}

type fakeSessions struct {
	mu       sync.Mutex
	statuses []string
	reportID string
}

func (f *fakeSessions) record(s string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses = append(f.statuses, s)
}

func (f *fakeSessions) MarkProcessing(context.Context, string) error { f.record("processing"); return nil }
func (f *fakeSessions) MarkCompleted(_ context.Context, _ string, reportID string) error {
	f.mu.Lock()
	f.reportID = reportID
	f.mu.Unlock()
	f.record("completed")
	return nil
}
func (f *fakeSessions) MarkFailed(_ context.Context, _, _ string) error { f.record("failed"); return nil }
func (f *fakeSessions) MarkCancelled(context.Context, string) error     { f.record("cancelled"); return nil }

func (f *fakeSessions) history() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.statuses...)
}

type fakeReports struct {
	mu       sync.Mutex
	saved    *models.ReportDraft
	existing bool
}

func (f *fakeReports) SaveReport(_ context.Context, _ string, draft *models.ReportDraft) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = draft
	return "rep-1", nil
}

func (f *fakeReports) ExistingReport(context.Context, string) (string, int, int, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.existing {
		return "rep-existing", 1200, 8, true, nil
	}
	return "", 0, 0, false, nil
}

type fakeScratchpad struct {
	mu      sync.Mutex
	stored  []tools.DataRecord
	sources []tools.StoredSource
}

func (f *fakeScratchpad) StoreData(_ context.Context, _ string, rec tools.DataRecord) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stored = append(f.stored, rec)
	return true, nil
}

func (f *fakeScratchpad) RetrieveSources(context.Context, string, int) ([]tools.StoredSource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sources != nil {
		return f.sources, nil
	}
	return []tools.StoredSource{{ID: "d1", Content: "stored content", RelevanceScore: 0.8}}, nil
}

func (f *fakeScratchpad) Summary(context.Context, string) (*tools.SessionSummary, error) {
	return &tools.SessionSummary{TotalSources: 1, DistinctQueries: 1}, nil
}

type fakeQueryLog struct{}

func (fakeQueryLog) RecordQuery(context.Context, string, string, int) error { return nil }

type capturePublisher struct {
	mu     sync.Mutex
	events []any
}

func (c *capturePublisher) Publish(_ context.Context, _ string, event any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

func (c *capturePublisher) byType() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	counts := make(map[string]int)
	for _, e := range c.events {
		switch e.(type) {
		case *events.ProgressUpdate:
			counts["progress_update"]++
		case *events.StatusChange:
			counts["status_change"]++
		case *events.SourceFound:
			counts["source_found"]++
		case *events.PartialReport:
			counts["partial_report"]++
		case *events.ResearchComplete:
			counts["research_complete"]++
		case *events.ErrorEvent:
			counts["error"]++
		}
	}
	return counts
}

type fakeProgress struct {
	mu      sync.Mutex
	updates []string
	onPhase func(percent int, phase string)
}

func (f *fakeProgress) ReportProgress(_ context.Context, _ string, percent int, phase string) error {
	f.mu.Lock()
	f.updates = append(f.updates, fmt.Sprintf("%d:%s", percent, phase))
	hook := f.onPhase
	f.mu.Unlock()
	if hook != nil {
		hook(percent, phase)
	}
	return nil
}

type driverHarness struct {
	driver     *Driver
	sessions   *fakeSessions
	reports    *fakeReports
	scratchpad *fakeScratchpad
	publisher  *capturePublisher
	progress   *fakeProgress
}

func newHarness(t *testing.T, client llm.Client) *driverHarness {
	t.Helper()
	h := &driverHarness{
		sessions:   &fakeSessions{},
		reports:    &fakeReports{},
		scratchpad: &fakeScratchpad{},
		publisher:  &capturePublisher{},
		progress:   &fakeProgress{},
	}
	h.driver = NewDriver(
		client,
		search.NewSearxNGClient(config.DefaultSearchConfig(), slog.Default()),
		extract.New(config.DefaultExtractConfig(), slog.Default()),
		h.sessions,
		h.reports,
		h.scratchpad,
		fakeQueryLog{},
		h.publisher,
		h.progress,
		config.DefaultResearchConfig(),
		slog.Default(),
	)
	return h
}

func testJob() *queue.Job {
	params := models.ResearchParameters{}
	params.Normalize()
	return &queue.Job{
		SessionID:   "sess-1",
		Data:        queue.JobData{Topic: "solid state batteries", Parameters: params, UserID: "user-1"},
		Attempts:    1,
		MaxAttempts: 3,
	}
}

func TestExecute_HappyPath(t *testing.T) {
	client := &scriptedLLM{script: []llm.Completion{
		{Text: "research done, sources stored"},
		{Text: "analysis stored"},
		{Text: sampleReport},
	}}
	h := newHarness(t, client)

	err := h.driver.Execute(context.Background(), testJob())
	require.NoError(t, err)

	assert.Equal(t, []string{"processing", "completed"}, h.sessions.history())
	assert.Equal(t, "rep-1", h.sessions.reportID)

	require.NotNil(t, h.reports.saved)
	assert.Contains(t, h.reports.saved.Summary, "commercial viability")
	assert.Len(t, h.reports.saved.KeyFindings, 3)
	assert.Len(t, h.reports.saved.Citations, 3)

	assert.Equal(t, []string{"0:research", "33:analyze", "66:write", "100:completed"}, h.progress.updates)

	counts := h.publisher.byType()
	assert.Equal(t, 4, counts["progress_update"])
	assert.Equal(t, 1, counts["research_complete"])
	assert.Equal(t, 1, counts["partial_report"])
	assert.Equal(t, 2, counts["status_change"]) // processing, completed
}

func TestExecute_StageAStoreEmitsSourceFound(t *testing.T) {
	storeArgs := `{"action":"store","session_id":"sess-1","data_type":"extracted_content","content":"page text","title":"A Page","metadata":{"url":"https://x.test/a"},"relevance_score":0.9}`
	client := &scriptedLLM{script: []llm.Completion{
		{ToolCalls: []llm.ToolCall{{ID: "c1", Type: "function", Function: llm.FunctionCall{Name: "database_tool", Arguments: storeArgs}}}},
		{Text: "research done"},
		{Text: "analysis stored"},
		{Text: sampleReport},
	}}
	h := newHarness(t, client)

	err := h.driver.Execute(context.Background(), testJob())
	require.NoError(t, err)

	counts := h.publisher.byType()
	assert.Equal(t, 1, counts["source_found"])
}

func TestExecute_StoredURLsBecomeReportSources(t *testing.T) {
	storeArgs := `{"action":"store","session_id":"sess-1","data_type":"extracted_content","content":"page text","title":"A Page","metadata":{"url":"https://x.test/a"},"relevance_score":0.9}`
	client := &scriptedLLM{script: []llm.Completion{
		{ToolCalls: []llm.ToolCall{{ID: "c1", Type: "function", Function: llm.FunctionCall{Name: "database_tool", Arguments: storeArgs}}}},
		{Text: "research done"},
		{Text: "analysis stored"},
		{Text: sampleReport},
	}}
	h := newHarness(t, client)
	h.scratchpad.sources = []tools.StoredSource{
		{ID: "d1", URL: "https://x.test/a", Title: "A Page", Content: "page text", RelevanceScore: 0.9},
	}

	err := h.driver.Execute(context.Background(), testJob())
	require.NoError(t, err)

	// The URL never appeared in a search result, only in a stored row; it
	// still ends up as a report source carrying the extracted content.
	require.NotNil(t, h.reports.saved)
	var found *models.SourceDraft
	for i := range h.reports.saved.Sources {
		if h.reports.saved.Sources[i].URL == "https://x.test/a" {
			found = &h.reports.saved.Sources[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "page text", found.Content)
	assert.Equal(t, "A Page", found.Title)
	assert.Equal(t, 0.9, found.RelevanceScore)
}

func TestExecute_ResearchStopsAtMinSources(t *testing.T) {
	storeArgs := `{"action":"store","session_id":"sess-1","data_type":"extracted_content","content":"page text","metadata":{"url":"https://x.test/a"}}`
	client := &scriptedLLM{script: []llm.Completion{
		{ToolCalls: []llm.ToolCall{{ID: "c1", Type: "function", Function: llm.FunctionCall{Name: "database_tool", Arguments: storeArgs}}}},
		// Stage A ends on the stored minimum without another model turn;
		// the remaining completions feed the later stages.
		{Text: "analysis stored"},
		{Text: sampleReport},
	}}
	h := newHarness(t, client)

	job := testJob()
	job.Data.Parameters.MinSources = 1

	err := h.driver.Execute(context.Background(), job)
	require.NoError(t, err)

	assert.Equal(t, []string{"processing", "completed"}, h.sessions.history())
	assert.Equal(t, int32(3), client.calls.Load())
}

// expiredCtxLLM fails exactly the way a real client does once the job
// context is dead.
type expiredCtxLLM struct{}

func (expiredCtxLLM) Complete(ctx context.Context, _ []llm.Message, _ llm.Options) (*llm.Completion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return nil, errors.New("context unexpectedly alive")
}

func TestExecute_DeadlineExpiryIsATimeoutNotACancel(t *testing.T) {
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	h := newHarness(t, expiredCtxLLM{})
	err := h.driver.Execute(ctx, testJob())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotErrorIs(t, err, context.Canceled)

	// Not the final attempt: the queue redelivers, no CANCELLED write and
	// no premature FAILED write.
	assert.Equal(t, []string{"processing"}, h.sessions.history())
}

func TestExecute_DeadlineExpiryOnFinalAttemptFailsSession(t *testing.T) {
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	h := newHarness(t, expiredCtxLLM{})
	job := testJob()
	job.Attempts = 3

	err := h.driver.Execute(ctx, job)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, []string{"processing", "failed"}, h.sessions.history())
}

func TestExecute_SkeletonRepair(t *testing.T) {
	client := &scriptedLLM{script: []llm.Completion{
		{Text: "research done"},
		{Text: "analysis stored"},
		{Text: "just prose with no headings"},
		{Text: sampleReport}, // repair pass
	}}
	h := newHarness(t, client)

	err := h.driver.Execute(context.Background(), testJob())
	require.NoError(t, err)

	assert.Equal(t, []string{"processing", "completed"}, h.sessions.history())
	assert.Equal(t, int32(4), client.calls.Load())
}

func TestExecute_RepairFailureIsPermanent(t *testing.T) {
	client := &scriptedLLM{script: []llm.Completion{
		{Text: "research done"},
		{Text: "analysis stored"},
		{Text: "still no headings"},
		{Text: "repair also produced no headings"},
	}}
	h := newHarness(t, client)

	err := h.driver.Execute(context.Background(), testJob())
	require.Error(t, err)
	assert.ErrorIs(t, err, queue.ErrNoRetry)

	history := h.sessions.history()
	assert.Equal(t, []string{"processing", "failed"}, history)
	assert.Nil(t, h.reports.saved)

	counts := h.publisher.byType()
	assert.Equal(t, 1, counts["error"])
}

func TestExecute_CancelledBetweenStages(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	client := &scriptedLLM{script: []llm.Completion{
		{Text: "research done"},
	}}
	h := newHarness(t, client)
	h.progress.onPhase = func(percent int, _ string) {
		if percent == 33 {
			cancel()
		}
	}

	err := h.driver.Execute(ctx, testJob())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	assert.Equal(t, []string{"processing", "cancelled"}, h.sessions.history())
	assert.Nil(t, h.reports.saved)
}

func TestExecute_InfraErrorIsRetryable(t *testing.T) {
	client := &scriptedLLM{err: errors.New("connection refused")}
	h := newHarness(t, client)

	err := h.driver.Execute(context.Background(), testJob())
	require.Error(t, err)
	assert.NotErrorIs(t, err, queue.ErrNoRetry)

	// Not the final attempt: the session stays claimable, no FAILED write.
	assert.Equal(t, []string{"processing"}, h.sessions.history())
}

func TestExecute_InfraErrorOnFinalAttemptFailsSession(t *testing.T) {
	client := &scriptedLLM{err: errors.New("connection refused")}
	h := newHarness(t, client)

	job := testJob()
	job.Attempts = 3

	err := h.driver.Execute(context.Background(), job)
	require.Error(t, err)
	assert.Equal(t, []string{"processing", "failed"}, h.sessions.history())
}

func TestExecute_ExistingReportShortCircuits(t *testing.T) {
	client := &scriptedLLM{} // any LLM call would exhaust the empty script
	h := newHarness(t, client)
	h.reports.existing = true

	err := h.driver.Execute(context.Background(), testJob())
	require.NoError(t, err)

	assert.Equal(t, []string{"completed"}, h.sessions.history())
	assert.Equal(t, "rep-existing", h.sessions.reportID)
	assert.Zero(t, client.calls.Load())

	counts := h.publisher.byType()
	assert.Equal(t, 1, counts["research_complete"])
}
