// Package api exposes the REST and WebSocket surface of the delver server.
package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/delverhq/delver/pkg/config"
	"github.com/delverhq/delver/pkg/database"
	"github.com/delverhq/delver/pkg/events"
	"github.com/delverhq/delver/pkg/queue"
	"github.com/delverhq/delver/pkg/search"
	"github.com/delverhq/delver/pkg/services"
)

// Server wires the service layer to the HTTP surface.
type Server struct {
	cfg      *config.Config
	db       *database.Client
	sessions *services.SessionService
	reports  *services.ReportService
	users    *services.UserService
	searcher search.Searcher
	manager  *events.ConnectionManager
	pool     *queue.WorkerPool
	tokens   *TokenIssuer
	limiter  *rateLimiter
	logger   *slog.Logger
}

// NewServer creates an API server. pool may be nil on API-only replicas;
// the health endpoint then skips worker-pool health.
func NewServer(
	cfg *config.Config,
	db *database.Client,
	sessions *services.SessionService,
	reports *services.ReportService,
	users *services.UserService,
	searcher search.Searcher,
	manager *events.ConnectionManager,
	pool *queue.WorkerPool,
	logger *slog.Logger,
) *Server {
	return &Server{
		cfg:      cfg,
		db:       db,
		sessions: sessions,
		reports:  reports,
		users:    users,
		searcher: searcher,
		manager:  manager,
		pool:     pool,
		tokens:   NewTokenIssuer(cfg.Auth),
		limiter:  newRateLimiter(),
		logger:   logger.With("component", "api"),
	}
}

// Router builds the gin engine with all routes and middleware attached.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger(), securityHeaders())

	r.GET("/health", s.healthHandler)

	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", s.rateLimit("auth", s.cfg.Server.AuthRateLimit), s.registerHandler)
	auth.POST("/login", s.rateLimit("auth", s.cfg.Server.AuthRateLimit), s.loginHandler)
	auth.POST("/refresh", s.rateLimit("auth", s.cfg.Server.AuthRateLimit), s.requireAuth(), s.refreshHandler)
	auth.POST("/logout", s.requireAuth(), s.logoutHandler)
	auth.GET("/me", s.requireAuth(), s.meHandler)

	research := v1.Group("/research", s.requireAuth(), s.rateLimit("research", s.cfg.Server.ResearchRateLimit))
	research.POST("", s.submitResearchHandler)
	research.GET("", s.listResearchHandler)
	research.GET("/:id", s.getResearchHandler)
	research.GET("/:id/progress", s.researchProgressHandler)
	research.POST("/:id/cancel", s.cancelResearchHandler)
	research.POST("/:id/retry", s.retryResearchHandler)

	general := v1.Group("", s.requireAuth(), s.rateLimit("general", s.cfg.Server.GeneralRateLimit))

	reports := general.Group("/reports")
	reports.GET("/:id", s.getReportHandler)
	reports.GET("/:id/download", s.downloadReportHandler)
	reports.GET("/:id/sources", s.reportSourcesHandler)
	reports.GET("/:id/citations", s.reportCitationsHandler)
	reports.GET("/session/:sid", s.getReportBySessionHandler)

	general.POST("/search", s.searchHandler)
	general.GET("/search/history", s.searchHistoryHandler)

	general.GET("/settings/user", s.getSettingsHandler)
	general.PUT("/settings/user", s.updateSettingsHandler)
	general.GET("/settings/models", s.listModelsHandler)
	general.GET("/settings/search-engines", s.listSearchEnginesHandler)

	v1.GET("/ws", s.requireAuth(), s.websocketHandler)

	return r
}
