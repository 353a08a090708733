// Package workflow drives the three-stage research pipeline for one
// session: research, analyze, write. Stages hand data to each other
// through the durable scratchpad, never through in-memory variables, so a
// stage can inspect everything its predecessors produced regardless of
// context-window limits.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/delverhq/delver/pkg/agent"
	"github.com/delverhq/delver/pkg/config"
	"github.com/delverhq/delver/pkg/events"
	"github.com/delverhq/delver/pkg/extract"
	"github.com/delverhq/delver/pkg/llm"
	"github.com/delverhq/delver/pkg/models"
	"github.com/delverhq/delver/pkg/queue"
	"github.com/delverhq/delver/pkg/search"
	"github.com/delverhq/delver/pkg/tools"
)

// SessionStore is the session lifecycle boundary the driver writes through.
// Implemented by the session service.
type SessionStore interface {
	MarkProcessing(ctx context.Context, sessionID string) error
	MarkCompleted(ctx context.Context, sessionID, reportID string) error
	MarkFailed(ctx context.Context, sessionID, errorMessage string) error
	MarkCancelled(ctx context.Context, sessionID string) error
}

// ReportStore persists the final report. SaveReport is transactional and
// idempotent: saving twice for one session returns the existing report.
type ReportStore interface {
	SaveReport(ctx context.Context, sessionID string, draft *models.ReportDraft) (reportID string, err error)

	// ExistingReport returns the persisted report for a session, if any.
	// Lets a requeued job finish a crashed predecessor's completion.
	ExistingReport(ctx context.Context, sessionID string) (reportID string, wordCount, sourceCount int, ok bool, err error)
}

// QueryLog records issued search queries per session.
type QueryLog interface {
	RecordQuery(ctx context.Context, sessionID, query string, resultCount int) error
}

// Driver executes research jobs. It implements queue.SessionExecutor.
type Driver struct {
	llm        llm.Client
	searcher   search.Searcher
	extractor  *extract.Extractor
	sessions   SessionStore
	reports    ReportStore
	scratchpad tools.DataStore
	queries    QueryLog
	publisher  events.Publisher
	progress   queue.ProgressReporter
	cfg        *config.ResearchConfig
	logger     *slog.Logger
}

// NewDriver wires a workflow driver. progress may be nil (no broker-side
// progress record); publisher may be events.NopPublisher{}.
func NewDriver(
	llmClient llm.Client,
	searcher search.Searcher,
	extractor *extract.Extractor,
	sessions SessionStore,
	reports ReportStore,
	scratchpad tools.DataStore,
	queries QueryLog,
	publisher events.Publisher,
	progress queue.ProgressReporter,
	cfg *config.ResearchConfig,
	logger *slog.Logger,
) *Driver {
	return &Driver{
		llm:        llmClient,
		searcher:   searcher,
		extractor:  extractor,
		sessions:   sessions,
		reports:    reports,
		scratchpad: scratchpad,
		queries:    queries,
		publisher:  publisher,
		progress:   progress,
		cfg:        cfg,
		logger:     logger.With("component", "workflow"),
	}
}

var _ queue.SessionExecutor = (*Driver)(nil)

// Execute runs the full pipeline for one job. Error semantics follow
// queue.SessionExecutor: nil on success, context.Canceled wraps on
// cancellation, queue.ErrNoRetry wraps on permanent failures, and plain
// errors on infrastructure failures the queue should redeliver.
func (d *Driver) Execute(ctx context.Context, job *queue.Job) error {
	sessionID := job.SessionID
	log := d.logger.With("session_id", sessionID, "attempt", job.Attempts)

	// A requeued job may find the report already persisted by a worker
	// that crashed between saving and marking the session completed.
	if reportID, words, sources, ok, err := d.reports.ExistingReport(ctx, sessionID); err == nil && ok {
		log.Info("report already persisted, completing session", "report_id", reportID)
		if err := d.sessions.MarkCompleted(ctx, sessionID, reportID); err != nil {
			return fmt.Errorf("failed to complete session with existing report: %w", err)
		}
		d.reportProgress(ctx, sessionID, 100, "completed")
		d.publisher.Publish(ctx, sessionID, events.NewStatusChange(sessionID, "completed", ""))
		d.publisher.Publish(ctx, sessionID, events.NewResearchComplete(sessionID, reportID, words, sources))
		return nil
	}

	if err := d.sessions.MarkProcessing(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to mark session processing: %w", err)
	}
	d.publisher.Publish(ctx, sessionID, events.NewStatusChange(sessionID, "processing", ""))

	run := &sessionRun{driver: d, job: job, logger: log}
	err := run.execute(ctx)

	switch {
	case err == nil:
		return nil

	case errors.Is(err, context.Canceled):
		// Terminal writes use a fresh context; the job context is dead.
		bg := context.Background()
		if markErr := d.sessions.MarkCancelled(bg, sessionID); markErr != nil {
			log.Error("failed to mark session cancelled", "error", markErr)
		}
		d.publisher.Publish(bg, sessionID, events.NewStatusChange(sessionID, "cancelled", ""))
		return err

	case errors.Is(err, context.DeadlineExceeded):
		// Wall-clock timeout, not a user cancel. The queue redelivers
		// with backoff; only the final attempt moves the session to
		// FAILED.
		if job.FinalAttempt() {
			msg := fmt.Sprintf("session timeout exceeded after %d attempts", job.Attempts)
			if markErr := d.sessions.MarkFailed(context.Background(), sessionID, msg); markErr != nil {
				log.Error("failed to mark session failed", "error", markErr)
			}
			d.publisher.Publish(context.Background(), sessionID, events.NewStatusChange(sessionID, "failed", msg))
			d.publisher.Publish(context.Background(), sessionID, events.NewErrorEvent(sessionID, msg))
		}
		return err

	case errors.Is(err, queue.ErrNoRetry):
		if markErr := d.sessions.MarkFailed(context.Background(), sessionID, err.Error()); markErr != nil {
			log.Error("failed to mark session failed", "error", markErr)
		}
		d.publisher.Publish(context.Background(), sessionID, events.NewStatusChange(sessionID, "failed", err.Error()))
		d.publisher.Publish(context.Background(), sessionID, events.NewErrorEvent(sessionID, err.Error()))
		return err

	default:
		// Infrastructure failure. The queue will redeliver; only the
		// final attempt moves the session to FAILED.
		if job.FinalAttempt() {
			msg := fmt.Sprintf("failed after %d attempts: %v", job.Attempts, err)
			if markErr := d.sessions.MarkFailed(context.Background(), sessionID, msg); markErr != nil {
				log.Error("failed to mark session failed", "error", markErr)
			}
			d.publisher.Publish(context.Background(), sessionID, events.NewStatusChange(sessionID, "failed", msg))
		}
		return err
	}
}

// reportProgress updates both the broker job record and the progress bus.
func (d *Driver) reportProgress(ctx context.Context, sessionID string, percent int, phase string) {
	if d.progress != nil {
		if err := d.progress.ReportProgress(ctx, sessionID, percent, phase); err != nil {
			d.logger.Warn("failed to report job progress",
				"session_id", sessionID, "phase", phase, "error", err)
		}
	}
	d.publisher.Publish(ctx, sessionID, events.NewProgressUpdate(sessionID, percent, phase, ""))
}

// sessionRun holds the per-job state of one pipeline execution.
type sessionRun struct {
	driver *Driver
	job    *queue.Job
	logger *slog.Logger

	mu          sync.Mutex
	sources     []models.SourceDraft
	seenSources map[string]bool
	storedCount int // extracted/source content rows stored via database_tool
}

// storedRows reports how many content rows Stage A stored.
func (r *sessionRun) storedRows() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.storedCount
}

// minSourcesReached reports whether Stage A stored the requested minimum
// of content rows. Always false when no minimum was requested.
func (r *sessionRun) minSourcesReached() bool {
	min := r.job.Data.Parameters.MinSources
	return min > 0 && r.storedRows() >= min
}

// execute runs the three stages in order.
func (r *sessionRun) execute(ctx context.Context) error {
	d := r.driver
	sessionID := r.job.SessionID
	r.seenSources = make(map[string]bool)

	registry := r.buildRegistry()
	runner := agent.NewRunner(d.llm, registry, d.logger)
	// A dead deadline is a timeout, not a cancel; it must not read as one.
	cancelled := func() bool { return errors.Is(ctx.Err(), context.Canceled) }

	d.reportProgress(ctx, sessionID, 0, StageResearch)
	researchCfg, researchTask := researchStage(d.cfg, r.job, r.onResearchTool, r.minSourcesReached)
	if err := r.runStage(ctx, runner, cancelled, researchCfg, researchTask); err != nil {
		return err
	}
	r.logger.Info("research stage stored content",
		"stored_rows", r.storedRows(),
		"min_sources", r.job.Data.Parameters.MinSources)

	d.reportProgress(ctx, sessionID, 33, StageAnalyze)
	analyzeCfg, analyzeTask := analyzeStage(d.cfg, r.job)
	if err := r.runStage(ctx, runner, cancelled, analyzeCfg, analyzeTask); err != nil {
		return err
	}

	d.reportProgress(ctx, sessionID, 66, StageWrite)
	writeCfg, task := writeStage(d.cfg, r.job)
	result, err := runner.Run(ctx, writeCfg, task, cancelled)
	if err != nil {
		return fmt.Errorf("write stage: %w", err)
	}
	if result.Status == agent.StatusCancelled {
		return fmt.Errorf("write stage: %w", context.Canceled)
	}
	if result.Status == agent.StatusFailed {
		return fmt.Errorf("write stage failed: %s: %w", result.FailureReason, queue.ErrNoRetry)
	}

	markdown := result.FinalAnswer
	if err := ValidateSkeleton(markdown); err != nil {
		r.logger.Warn("report skeleton invalid, attempting repair", "error", err)
		markdown, err = r.repairReport(ctx, runner, cancelled, markdown, err)
		if err != nil {
			return err
		}
	}

	d.publisher.Publish(ctx, sessionID, events.NewPartialReport(sessionID, StageWrite, markdown))

	draft := ParseReport(markdown)
	draft.Sources = r.collectedSources()
	r.attachStoredContent(ctx, draft.Sources)

	reportID, err := d.reports.SaveReport(ctx, sessionID, draft)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	if err := d.sessions.MarkCompleted(ctx, sessionID, reportID); err != nil {
		return fmt.Errorf("failed to mark session completed: %w", err)
	}

	d.reportProgress(ctx, sessionID, 100, "completed")
	d.publisher.Publish(ctx, sessionID, events.NewStatusChange(sessionID, "completed", ""))
	d.publisher.Publish(ctx, sessionID,
		events.NewResearchComplete(sessionID, reportID, draft.WordCount, len(draft.Sources)))

	r.logger.Info("session completed",
		"report_id", reportID,
		"word_count", draft.WordCount,
		"source_count", len(draft.Sources))
	return nil
}

// runStage executes one agent stage and maps its terminal status onto the
// driver's error semantics.
func (r *sessionRun) runStage(ctx context.Context, runner *agent.Runner, cancelled func() bool, cfg agent.Config, task string) error {
	result, err := runner.Run(ctx, cfg, task, cancelled)
	if err != nil {
		return fmt.Errorf("%s stage: %w", cfg.Name, err)
	}
	switch result.Status {
	case agent.StatusCancelled:
		return fmt.Errorf("%s stage: %w", cfg.Name, context.Canceled)
	case agent.StatusFailed:
		return fmt.Errorf("%s stage failed: %s: %w", cfg.Name, result.FailureReason, queue.ErrNoRetry)
	}
	r.logger.Info("stage completed",
		"stage", cfg.Name,
		"iterations", result.Iterations,
		"tool_calls", result.ToolCalls,
		"tokens", result.TokensUsed)
	return nil
}

// repairReport re-prompts the write agent once with a constrained repair
// task. A second invalid skeleton fails the session.
func (r *sessionRun) repairReport(ctx context.Context, runner *agent.Runner, cancelled func() bool, draft string, cause error) (string, error) {
	cfg, task := repairStage(r.driver.cfg, r.job, draft, cause)
	result, err := runner.Run(ctx, cfg, task, cancelled)
	if err != nil {
		return "", fmt.Errorf("report repair: %w", err)
	}
	if result.Status == agent.StatusCancelled {
		return "", fmt.Errorf("report repair: %w", context.Canceled)
	}
	if result.Status == agent.StatusFailed {
		return "", fmt.Errorf("report repair failed: %s: %w", result.FailureReason, queue.ErrNoRetry)
	}
	if err := ValidateSkeleton(result.FinalAnswer); err != nil {
		return "", fmt.Errorf("report skeleton still invalid after repair: %v: %w", err, queue.ErrNoRetry)
	}
	return result.FinalAnswer, nil
}

// buildRegistry assembles the per-session tool registry. Search and
// database tools are bound to this session; the rest are stateless.
func (r *sessionRun) buildRegistry() *tools.Registry {
	d := r.driver
	params := r.job.Data.Parameters

	filters := search.Query{
		Language:       params.Language,
		TimeRange:      params.DateRange,
		AllowedDomains: params.AllowedDomains,
		BlockedDomains: params.BlockedDomains,
	}

	registry := tools.NewRegistry(d.logger)
	registry.MustRegister(
		tools.NewSearchTool(d.searcher, d.extractor, &sessionRecorder{
			log:       d.queries,
			sessionID: r.job.SessionID,
		}, filters, d.logger),
		tools.NewDatabaseTool(d.scratchpad, r.job.SessionID),
		tools.NewAnalysisTool(d.llm),
		tools.NewSummarizationTool(d.llm),
		tools.NewFactCheckTool(d.llm),
		tools.NewRelevanceScoringTool(d.llm),
		tools.NewCitationTool(),
		tools.NewReportFormatterTool(),
	)
	return registry
}

// onResearchTool observes Stage A tool results to track found sources and
// emit source_found events for newly stored content.
func (r *sessionRun) onResearchTool(toolName string, args map[string]any, result tools.Result) {
	if !result.Success {
		return
	}

	switch toolName {
	case "search_tool":
		items, ok := result.Output.([]tools.SearchItem)
		if !ok {
			return
		}
		r.mu.Lock()
		for _, item := range items {
			if item.URL == "" || r.seenSources[item.URL] {
				continue
			}
			r.seenSources[item.URL] = true
			r.sources = append(r.sources, models.SourceDraft{
				URL:     item.URL,
				Title:   item.Title,
				Snippet: item.Snippet,
			})
		}
		r.mu.Unlock()

	case "database_tool":
		action, _ := args["action"].(string)
		dataType, _ := args["data_type"].(string)
		if action != "store" || (dataType != "extracted_content" && dataType != "source_content") {
			return
		}
		title, _ := args["title"].(string)
		url := sourceURLFromArgs(args)

		// Every URL announced via source_found must end up as a Source
		// row, even if no search result ever listed it.
		r.mu.Lock()
		r.storedCount++
		if url != "" && !r.seenSources[url] {
			r.seenSources[url] = true
			r.sources = append(r.sources, models.SourceDraft{
				URL:   url,
				Title: title,
			})
		}
		r.mu.Unlock()

		r.driver.publisher.Publish(context.Background(), r.job.SessionID,
			events.NewSourceFound(r.job.SessionID, url, title))
	}
}

// collectedSources snapshots the sources found during Stage A.
func (r *sessionRun) collectedSources() []models.SourceDraft {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.SourceDraft(nil), r.sources...)
}

// attachStoredContent copies scratchpad content onto the sources that will
// be persisted with the report, matched by URL. A scratchpad read failure
// degrades the sources to metadata-only rows instead of failing the run.
func (r *sessionRun) attachStoredContent(ctx context.Context, sources []models.SourceDraft) {
	if len(sources) == 0 {
		return
	}
	stored, err := r.driver.scratchpad.RetrieveSources(ctx, r.job.SessionID, r.job.Data.Parameters.MaxSources)
	if err != nil {
		r.logger.Warn("failed to load stored content for report sources", "error", err)
		return
	}

	index := make(map[string]int, len(sources))
	for i, src := range sources {
		index[src.URL] = i
	}
	for _, row := range stored {
		i, ok := index[row.URL]
		if !ok {
			continue
		}
		if sources[i].Content == "" {
			sources[i].Content = row.Content
		}
		if sources[i].Title == "" {
			sources[i].Title = row.Title
		}
		if sources[i].RelevanceScore == 0 {
			sources[i].RelevanceScore = row.RelevanceScore
		}
	}
}

// sourceURLFromArgs digs the source URL out of a database_tool store call.
func sourceURLFromArgs(args map[string]any) string {
	meta, ok := args["metadata"].(map[string]any)
	if !ok {
		return ""
	}
	url, _ := meta["url"].(string)
	return url
}

// sessionRecorder adapts the session-scoped QueryLog to the per-call
// recorder interface the search tool expects.
type sessionRecorder struct {
	log       QueryLog
	sessionID string
}

func (s *sessionRecorder) RecordQuery(ctx context.Context, query string, resultCount int) error {
	if s.log == nil {
		return nil
	}
	return s.log.RecordQuery(ctx, s.sessionID, query, resultCount)
}
