package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/delverhq/delver/pkg/database"
)

// healthHandler handles GET /health. Unauthenticated; meant for probes.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	body := gin.H{
		"status":      "healthy",
		"connections": s.manager.ActiveConnections(),
	}
	status := http.StatusOK

	dbHealth, err := database.Health(ctx, s.db.DB())
	body["database"] = dbHealth
	if err != nil {
		body["status"] = "unhealthy"
		body["error"] = err.Error()
		status = http.StatusServiceUnavailable
	}

	if s.pool != nil {
		poolHealth := s.pool.Health()
		body["workers"] = poolHealth
		if !poolHealth.IsHealthy && status == http.StatusOK {
			body["status"] = "degraded"
		}
	}

	c.JSON(status, body)
}
