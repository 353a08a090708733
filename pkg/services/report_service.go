package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/delverhq/delver/ent"
	"github.com/delverhq/delver/ent/citation"
	"github.com/delverhq/delver/ent/report"
	"github.com/delverhq/delver/ent/source"
	"github.com/delverhq/delver/pkg/models"
)

// ReportService persists and serves final research reports.
type ReportService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewReportService creates a ReportService.
func NewReportService(client *ent.Client, logger *slog.Logger) *ReportService {
	return &ReportService{
		client: client,
		logger: logger.With("component", "services"),
	}
}

// SaveReport persists a report with its sources and citations in one
// transaction, all-or-nothing. It is idempotent per session: the unique
// reports.session_id constraint means a redelivered job that already saved
// a report gets the existing report id back instead of a duplicate.
func (s *ReportService) SaveReport(ctx context.Context, sessionID string, draft *models.ReportDraft) (string, error) {
	if existing, err := s.client.Report.Query().
		Where(report.SessionIDEQ(sessionID)).
		First(ctx); err == nil {
		return existing.ID, nil
	} else if !ent.IsNotFound(err) {
		return "", fmt.Errorf("failed to check existing report: %w", err)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	reportID := uuid.New().String()
	_, err = tx.Report.Create().
		SetID(reportID).
		SetSessionID(sessionID).
		SetContent(draft.Content).
		SetSummary(draft.Summary).
		SetKeyFindings(draft.KeyFindings).
		SetWordCount(draft.WordCount).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost a race with a concurrent save for the same session.
			existing, qErr := s.client.Report.Query().
				Where(report.SessionIDEQ(sessionID)).
				First(ctx)
			if qErr != nil {
				return "", fmt.Errorf("failed to load racing report: %w", qErr)
			}
			return existing.ID, nil
		}
		return "", fmt.Errorf("failed to create report: %w", err)
	}

	// Sources first so citations can link to them by URL.
	sourceIDByURL := make(map[string]string, len(draft.Sources))
	if len(draft.Sources) > 0 {
		builders := make([]*ent.SourceCreate, 0, len(draft.Sources))
		for _, src := range draft.Sources {
			sourceID := uuid.New().String()
			sourceIDByURL[src.URL] = sourceID

			score := src.RelevanceScore
			if score <= 0 {
				score = 0.5
			}
			builder := tx.Source.Create().
				SetID(sourceID).
				SetSessionID(sessionID).
				SetURL(src.URL).
				SetTitle(src.Title).
				SetRelevanceScore(score)
			if src.Content != "" {
				builder.SetContent(src.Content)
			}
			if src.Snippet != "" {
				// The search snippet doubles as the stored summary until
				// something better exists.
				builder.SetSummary(src.Snippet)
			}
			meta := map[string]interface{}{}
			if src.Snippet != "" {
				meta["snippet"] = src.Snippet
			}
			if src.PublishedDate != "" {
				meta["published_date"] = src.PublishedDate
			}
			if len(meta) > 0 {
				builder.SetMetadata(meta)
			}
			builders = append(builders, builder)
		}
		if _, err := tx.Source.CreateBulk(builders...).Save(ctx); err != nil {
			return "", fmt.Errorf("failed to create sources: %w", err)
		}
	}

	if len(draft.Citations) > 0 {
		builders := make([]*ent.CitationCreate, 0, len(draft.Citations))
		for _, cit := range draft.Citations {
			builder := tx.Citation.Create().
				SetID(uuid.New().String()).
				SetReportID(reportID).
				SetQuote(cit.Text).
				SetPosition(cit.Position).
				SetURL(cit.URL)
			if sourceID, ok := sourceIDByURL[cit.URL]; ok && cit.URL != "" {
				builder.SetSourceID(sourceID)
			}
			builders = append(builders, builder)
		}
		if _, err := tx.Citation.CreateBulk(builders...).Save(ctx); err != nil {
			return "", fmt.Errorf("failed to create citations: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit report: %w", err)
	}

	s.logger.Info("report saved",
		"session_id", sessionID,
		"report_id", reportID,
		"sources", len(draft.Sources),
		"citations", len(draft.Citations))
	return reportID, nil
}

// ExistingReport returns the persisted report for a session, if any.
func (s *ReportService) ExistingReport(ctx context.Context, sessionID string) (reportID string, wordCount, sourceCount int, ok bool, err error) {
	existing, err := s.client.Report.Query().
		Where(report.SessionIDEQ(sessionID)).
		First(ctx)
	if ent.IsNotFound(err) {
		return "", 0, 0, false, nil
	}
	if err != nil {
		return "", 0, 0, false, fmt.Errorf("failed to query report: %w", err)
	}

	sources, err := s.client.Source.Query().
		Where(source.SessionIDEQ(sessionID)).
		Count(ctx)
	if err != nil {
		return "", 0, 0, false, fmt.Errorf("failed to count sources: %w", err)
	}
	return existing.ID, existing.WordCount, sources, true, nil
}

// Get returns a report with its citations, enforcing session ownership.
func (s *ReportService) Get(ctx context.Context, reportID, userID string, admin bool) (*models.ReportView, error) {
	rep, err := s.client.Report.Get(ctx, reportID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	if err := s.checkOwnership(ctx, rep.SessionID, userID, admin); err != nil {
		return nil, err
	}
	return s.view(ctx, rep)
}

// GetBySession returns the report for a session, enforcing ownership.
func (s *ReportService) GetBySession(ctx context.Context, sessionID, userID string, admin bool) (*models.ReportView, error) {
	if err := s.checkOwnership(ctx, sessionID, userID, admin); err != nil {
		return nil, err
	}
	rep, err := s.client.Report.Query().
		Where(report.SessionIDEQ(sessionID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return s.view(ctx, rep)
}

// Sources returns the sources of the report's session, best first.
func (s *ReportService) Sources(ctx context.Context, reportID, userID string, admin bool) ([]*models.SourceView, error) {
	rep, err := s.client.Report.Get(ctx, reportID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	if err := s.checkOwnership(ctx, rep.SessionID, userID, admin); err != nil {
		return nil, err
	}

	sources, err := s.client.Source.Query().
		Where(source.SessionIDEQ(rep.SessionID)).
		Order(ent.Desc(source.FieldRelevanceScore), ent.Desc(source.FieldAccessedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sources: %w", err)
	}

	views := make([]*models.SourceView, len(sources))
	for i, src := range sources {
		views[i] = &models.SourceView{
			ID:             src.ID,
			URL:            src.URL,
			Title:          src.Title,
			Summary:        src.Summary,
			RelevanceScore: src.RelevanceScore,
			AccessedAt:     src.AccessedAt,
		}
	}
	return views, nil
}

// Citations returns the report's citations in position order.
func (s *ReportService) Citations(ctx context.Context, reportID, userID string, admin bool) ([]models.CitationView, error) {
	rep, err := s.client.Report.Get(ctx, reportID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	if err := s.checkOwnership(ctx, rep.SessionID, userID, admin); err != nil {
		return nil, err
	}
	return s.citationViews(ctx, reportID)
}

// view assembles a ReportView with citations.
func (s *ReportService) view(ctx context.Context, rep *ent.Report) (*models.ReportView, error) {
	citations, err := s.citationViews(ctx, rep.ID)
	if err != nil {
		return nil, err
	}
	return &models.ReportView{
		ID:          rep.ID,
		SessionID:   rep.SessionID,
		Content:     rep.Content,
		Summary:     rep.Summary,
		KeyFindings: rep.KeyFindings,
		WordCount:   rep.WordCount,
		Citations:   citations,
		CreatedAt:   rep.CreatedAt,
	}, nil
}

func (s *ReportService) citationViews(ctx context.Context, reportID string) ([]models.CitationView, error) {
	citations, err := s.client.Citation.Query().
		Where(citation.ReportIDEQ(reportID)).
		Order(ent.Asc(citation.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list citations: %w", err)
	}

	views := make([]models.CitationView, len(citations))
	for i, cit := range citations {
		view := models.CitationView{
			ID:       cit.ID,
			Quote:    cit.Quote,
			Context:  cit.Context,
			Position: cit.Position,
			URL:      cit.URL,
		}
		if cit.SourceID != nil {
			view.SourceID = *cit.SourceID
		}
		views[i] = view
	}
	return views, nil
}

// checkOwnership verifies the session behind a report belongs to the user.
func (s *ReportService) checkOwnership(ctx context.Context, sessionID, userID string, admin bool) error {
	if admin {
		return nil
	}
	session, err := s.client.ResearchSession.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load owning session: %w", err)
	}
	if userID != "" && session.UserID != userID {
		return ErrNotFound
	}
	return nil
}
