package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/delverhq/delver/pkg/search"
)

// searchRequest is the body of POST /api/v1/search.
type searchRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results,omitempty"`
	Language   string `json:"language,omitempty"`
	TimeRange  string `json:"time_range,omitempty"`
}

// searchHandler handles POST /api/v1/search, a direct passthrough to the
// metasearch engine with history logging.
func (s *Server) searchHandler(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "invalid request body")
		return
	}
	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		respondError(c, http.StatusBadRequest, CodeValidation, "query is required")
		return
	}

	results, err := s.searcher.Search(c.Request.Context(), search.Query{
		Text:       req.Query,
		MaxResults: req.MaxResults,
		Language:   req.Language,
		TimeRange:  req.TimeRange,
	})
	if err != nil {
		s.logger.Error("passthrough search failed", "error", err)
		respondError(c, http.StatusInternalServerError, CodeInternal, "search failed")
		return
	}

	userID := c.GetString(ctxUserID)
	if err := s.users.RecordSearch(c.Request.Context(), userID, req.Query, len(results)); err != nil {
		s.logger.Warn("failed to record search history", "user_id", userID, "error", err)
	}

	respondOK(c, http.StatusOK, gin.H{
		"query":   req.Query,
		"results": results,
	})
}

// searchHistoryHandler handles GET /api/v1/search/history.
func (s *Server) searchHistoryHandler(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	history, err := s.users.SearchHistory(c.Request.Context(), c.GetString(ctxUserID), limit)
	if err != nil {
		respondServiceError(c, s.logger, err)
		return
	}
	respondOK(c, http.StatusOK, history)
}
