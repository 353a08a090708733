package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/delverhq/delver/pkg/models"
)

// submitResearchHandler handles POST /api/v1/research.
func (s *Server) submitResearchHandler(c *gin.Context) {
	var req models.StartResearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "invalid request body")
		return
	}

	view, err := s.sessions.Submit(c.Request.Context(), c.GetString(ctxUserID), req)
	if err != nil {
		respondServiceError(c, s.logger, err)
		return
	}
	respondOK(c, http.StatusCreated, view)
}

// listResearchHandler handles GET /api/v1/research?status&page&limit.
func (s *Server) listResearchHandler(c *gin.Context) {
	claims := currentUser(c)

	limit := 20
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	page := 1
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}

	filter := models.SessionFilter{
		UserID: claims.UserID,
		Status: c.Query("status"),
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
	if claims.Admin() {
		// Admins see everything, optionally narrowed to one user.
		filter.UserID = c.Query("user_id")
	}

	views, total, err := s.sessions.List(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, s.logger, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{
		"sessions": views,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}

// getResearchHandler handles GET /api/v1/research/:id.
func (s *Server) getResearchHandler(c *gin.Context) {
	claims := currentUser(c)
	view, err := s.sessions.Get(c.Request.Context(), c.Param("id"), claims.UserID, claims.Admin())
	if err != nil {
		respondServiceError(c, s.logger, err)
		return
	}
	respondOK(c, http.StatusOK, view)
}

// researchProgressHandler handles GET /api/v1/research/:id/progress.
func (s *Server) researchProgressHandler(c *gin.Context) {
	claims := currentUser(c)
	status, percent, phase, err := s.sessions.Progress(c.Request.Context(), c.Param("id"), claims.UserID, claims.Admin())
	if err != nil {
		respondServiceError(c, s.logger, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{
		"status":   status,
		"progress": percent,
		"phase":    phase,
	})
}

// cancelResearchHandler handles POST /api/v1/research/:id/cancel.
func (s *Server) cancelResearchHandler(c *gin.Context) {
	claims := currentUser(c)
	view, err := s.sessions.Cancel(c.Request.Context(), c.Param("id"), claims.UserID, claims.Admin())
	if err != nil {
		respondServiceError(c, s.logger, err)
		return
	}
	respondOK(c, http.StatusOK, view)
}

// retryResearchHandler handles POST /api/v1/research/:id/retry.
func (s *Server) retryResearchHandler(c *gin.Context) {
	claims := currentUser(c)
	view, err := s.sessions.Retry(c.Request.Context(), c.Param("id"), claims.UserID, claims.Admin())
	if err != nil {
		respondServiceError(c, s.logger, err)
		return
	}
	respondOK(c, http.StatusCreated, view)
}
