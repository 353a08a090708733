package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/delverhq/delver/ent"
	"github.com/delverhq/delver/ent/researchdata"
	"github.com/delverhq/delver/ent/researchquery"
	"github.com/delverhq/delver/ent/researchsession"
	"github.com/delverhq/delver/pkg/tools"
)

// summaryTopSources caps the top_sources list in scratchpad summaries.
const summaryTopSources = 10

// ResearchDataService is the per-session scratchpad: the rows agents store
// during the research stage and read back in later stages. It also records
// the session's web query history.
type ResearchDataService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewResearchDataService creates a ResearchDataService.
func NewResearchDataService(client *ent.Client, logger *slog.Logger) *ResearchDataService {
	return &ResearchDataService{
		client: client,
		logger: logger.With("component", "services"),
	}
}

// StoreData inserts one scratchpad row. Identical content for the same
// session and data type hashes to the same row and is dropped silently,
// so a looping agent storing the same page twice does not bloat the pad.
// Returns false for such duplicates.
func (s *ResearchDataService) StoreData(ctx context.Context, sessionID string, rec tools.DataRecord) (bool, error) {
	hash := sha256.Sum256([]byte(rec.Content))
	contentHash := hex.EncodeToString(hash[:])

	// Clamp only; an explicit zero score is kept as given.
	score := rec.RelevanceScore
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	builder := s.client.ResearchData.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetDataType(researchdata.DataType(rec.DataType)).
		SetContent(rec.Content).
		SetContentHash(contentHash).
		SetRelevanceScore(score)
	if rec.Query != "" {
		builder.SetQuery(rec.Query)
	}
	if rec.Title != "" {
		builder.SetTitle(rec.Title)
	}
	if len(rec.Metadata) > 0 {
		builder.SetMetadata(rec.Metadata)
	}

	if _, err := builder.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to store research data: %w", err)
	}
	return true, nil
}

// RetrieveSources returns up to limit stored source rows for the session,
// most relevant first, newest breaking ties.
func (s *ResearchDataService) RetrieveSources(ctx context.Context, sessionID string, limit int) ([]tools.StoredSource, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.client.ResearchData.Query().
		Where(
			researchdata.SessionIDEQ(sessionID),
			researchdata.DataTypeIn(
				researchdata.DataTypeSourceContent,
				researchdata.DataTypeExtractedContent,
			),
		).
		Order(
			ent.Desc(researchdata.FieldRelevanceScore),
			ent.Desc(researchdata.FieldCreatedAt),
		).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve sources: %w", err)
	}

	sources := make([]tools.StoredSource, len(rows))
	for i, row := range rows {
		url, _ := row.Metadata["url"].(string)
		sources[i] = tools.StoredSource{
			ID:             row.ID,
			URL:            url,
			Title:          row.Title,
			Query:          row.Query,
			Content:        row.Content,
			RelevanceScore: row.RelevanceScore,
		}
	}
	return sources, nil
}

// Summary aggregates the session's scratchpad for the get_summary action.
func (s *ResearchDataService) Summary(ctx context.Context, sessionID string) (*tools.SessionSummary, error) {
	total, err := s.client.ResearchData.Query().
		Where(
			researchdata.SessionIDEQ(sessionID),
			researchdata.DataTypeIn(
				researchdata.DataTypeSourceContent,
				researchdata.DataTypeExtractedContent,
			),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sources: %w", err)
	}

	queries, err := s.client.ResearchQuery.Query().
		Where(researchquery.SessionIDEQ(sessionID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count queries: %w", err)
	}

	top, err := s.RetrieveSources(ctx, sessionID, summaryTopSources)
	if err != nil {
		return nil, err
	}

	return &tools.SessionSummary{
		TotalSources:    total,
		DistinctQueries: queries,
		TopSources:      top,
	}, nil
}

// RecordQuery logs one issued web query against the session.
func (s *ResearchDataService) RecordQuery(ctx context.Context, sessionID, query string, resultCount int) error {
	_, err := s.client.ResearchQuery.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetQuery(query).
		SetResultCount(resultCount).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to record query: %w", err)
	}
	return nil
}

// PurgeTerminal deletes scratchpad rows belonging to sessions that reached
// a terminal status before the cutoff. The report and its sources survive;
// only the working data goes. Returns the number of rows deleted.
func (s *ResearchDataService) PurgeTerminal(ctx context.Context, cutoff time.Time) (int, error) {
	sessionIDs, err := s.client.ResearchSession.Query().
		Where(
			researchsession.StatusIn(
				researchsession.StatusCompleted,
				researchsession.StatusFailed,
				researchsession.StatusCancelled,
			),
			researchsession.CompletedAtLT(cutoff),
		).
		IDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list terminal sessions: %w", err)
	}
	if len(sessionIDs) == 0 {
		return 0, nil
	}

	deleted, err := s.client.ResearchData.Delete().
		Where(researchdata.SessionIDIn(sessionIDs...)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge research data: %w", err)
	}

	if deleted > 0 {
		s.logger.Info("purged scratchpad rows",
			"rows", deleted,
			"sessions", len(sessionIDs))
	}
	return deleted, nil
}
