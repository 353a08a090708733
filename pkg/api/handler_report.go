package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// getReportHandler handles GET /api/v1/reports/:id?format=json|markdown|html|text.
func (s *Server) getReportHandler(c *gin.Context) {
	format := c.DefaultQuery("format", formatJSON)
	if !validFormat(format) {
		respondError(c, http.StatusBadRequest, CodeValidation, "format must be json, markdown, html or text")
		return
	}

	claims := currentUser(c)
	view, err := s.reports.Get(c.Request.Context(), c.Param("id"), claims.UserID, claims.Admin())
	if err != nil {
		respondServiceError(c, s.logger, err)
		return
	}

	if format == formatJSON {
		respondOK(c, http.StatusOK, view)
		return
	}
	body, contentType := renderReport(view, format)
	c.Data(http.StatusOK, contentType, []byte(body))
}

// downloadReportHandler handles GET /api/v1/reports/:id/download?format=….
func (s *Server) downloadReportHandler(c *gin.Context) {
	format := c.DefaultQuery("format", formatMarkdown)
	if !validFormat(format) || format == formatJSON {
		respondError(c, http.StatusBadRequest, CodeValidation, "format must be markdown, html or text")
		return
	}

	claims := currentUser(c)
	view, err := s.reports.Get(c.Request.Context(), c.Param("id"), claims.UserID, claims.Admin())
	if err != nil {
		respondServiceError(c, s.logger, err)
		return
	}

	body, contentType := renderReport(view, format)
	filename := fmt.Sprintf("report-%s.%s", view.ID, fileExtension(format))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, []byte(body))
}

// getReportBySessionHandler handles GET /api/v1/reports/session/:sid.
func (s *Server) getReportBySessionHandler(c *gin.Context) {
	claims := currentUser(c)
	view, err := s.reports.GetBySession(c.Request.Context(), c.Param("sid"), claims.UserID, claims.Admin())
	if err != nil {
		respondServiceError(c, s.logger, err)
		return
	}
	respondOK(c, http.StatusOK, view)
}

// reportSourcesHandler handles GET /api/v1/reports/:id/sources.
func (s *Server) reportSourcesHandler(c *gin.Context) {
	claims := currentUser(c)
	sources, err := s.reports.Sources(c.Request.Context(), c.Param("id"), claims.UserID, claims.Admin())
	if err != nil {
		respondServiceError(c, s.logger, err)
		return
	}
	respondOK(c, http.StatusOK, sources)
}

// reportCitationsHandler handles GET /api/v1/reports/:id/citations.
func (s *Server) reportCitationsHandler(c *gin.Context) {
	claims := currentUser(c)
	citations, err := s.reports.Citations(c.Request.Context(), c.Param("id"), claims.UserID, claims.Admin())
	if err != nil {
		respondServiceError(c, s.logger, err)
		return
	}
	respondOK(c, http.StatusOK, citations)
}
