package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/delverhq/delver/pkg/config"
	"github.com/delverhq/delver/pkg/models"
)

// modelCatalog lists the models the configured endpoint is expected to
// serve. The default model from configuration is always included.
var modelCatalog = []string{
	"gpt-4o",
	"gpt-4o-mini",
	"claude-sonnet-4-20250514",
	"llama3.1",
	"mistral-large",
}

// searchEngineCatalog lists the engines the metasearch endpoint federates.
var searchEngineCatalog = []string{
	"google",
	"bing",
	"duckduckgo",
	"brave",
	"wikipedia",
}

// getSettingsHandler handles GET /api/v1/settings/user.
func (s *Server) getSettingsHandler(c *gin.Context) {
	prefs, err := s.users.Settings(c.Request.Context(), c.GetString(ctxUserID))
	if err != nil {
		respondServiceError(c, s.logger, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"preferences": prefs})
}

// updateSettingsHandler handles PUT /api/v1/settings/user.
func (s *Server) updateSettingsHandler(c *gin.Context) {
	var req models.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "invalid request body")
		return
	}

	prefs, err := s.users.UpdateSettings(c.Request.Context(), c.GetString(ctxUserID), req.Preferences)
	if err != nil {
		respondServiceError(c, s.logger, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"preferences": prefs})
}

// listModelsHandler handles GET /api/v1/settings/models.
func (s *Server) listModelsHandler(c *gin.Context) {
	names := modelCatalog
	if d := s.cfg.LLM.DefaultModel; d != "" && !contains(names, d) {
		names = append([]string{d}, names...)
	}

	entries := make([]gin.H, len(names))
	for i, name := range names {
		entries[i] = gin.H{
			"name":     name,
			"provider": config.ProviderForModel(name),
			"default":  name == s.cfg.LLM.DefaultModel,
		}
	}
	respondOK(c, http.StatusOK, entries)
}

// listSearchEnginesHandler handles GET /api/v1/settings/search-engines.
func (s *Server) listSearchEnginesHandler(c *gin.Context) {
	respondOK(c, http.StatusOK, gin.H{
		"endpoint": s.cfg.Search.Endpoint,
		"engines":  searchEngineCatalog,
	})
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
