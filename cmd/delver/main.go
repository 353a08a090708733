// Delver server. Exposes the research HTTP API, runs the queue workers
// that execute research sessions, and streams progress over WebSocket.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/delverhq/delver/pkg/api"
	"github.com/delverhq/delver/pkg/cleanup"
	"github.com/delverhq/delver/pkg/config"
	"github.com/delverhq/delver/pkg/database"
	"github.com/delverhq/delver/pkg/events"
	"github.com/delverhq/delver/pkg/extract"
	"github.com/delverhq/delver/pkg/llm"
	"github.com/delverhq/delver/pkg/queue"
	"github.com/delverhq/delver/pkg/search"
	"github.com/delverhq/delver/pkg/services"
	"github.com/delverhq/delver/pkg/workflow"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

// poolCanceller bridges the session service to the worker pool. The
// service is constructed before the pool because the pool's executor
// writes session state through it; the pool is bound here afterwards.
type poolCanceller struct {
	pool *queue.WorkerPool
}

func (c *poolCanceller) CancelSession(sessionID string) bool {
	if c.pool == nil {
		return false
	}
	return c.pool.CancelSession(sessionID)
}

func main() {
	configPath := flag.String("config",
		getEnv("CONFIG_FILE", "delver.yaml"),
		"Path to the yaml configuration file")
	flag.Parse()

	podID := resolvePodID()
	slog.Info("starting delver", "pod_id", podID, "config", *configPath)

	ctx := context.Background()

	// 1. Configuration (defaults, yaml overlay, env overrides)
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger := slog.Default()

	// 2. Database (runs pending migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("error closing database client", "error", err)
		}
	}()
	slog.Info("connected to postgres", "host", dbConfig.Host, "database", dbConfig.Database)

	// 3. Broker
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() { _ = rdb.Close() }()
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Error("failed to reach redis", "addr", cfg.Redis.Addr, "error", err)
		os.Exit(1)
	}
	jobQueue := queue.NewRedisQueue(rdb, cfg.Queue)
	slog.Info("connected to redis", "addr", cfg.Redis.Addr)

	// 4. Domain services
	canceller := &poolCanceller{}
	sessionService := services.NewSessionService(dbClient.Client, jobQueue, canceller, cfg.Research, logger)
	sessionService.SetPodID(podID)
	reportService := services.NewReportService(dbClient.Client, logger)
	userService := services.NewUserService(dbClient.Client, logger)
	dataService := services.NewResearchDataService(dbClient.Client, logger)

	// 5. One-time startup orphan recovery. Non-fatal: the periodic
	// stalled-session scan covers anything this pass misses.
	if recovered, err := sessionService.RecoverStartupOrphans(ctx, podID); err != nil {
		slog.Error("startup orphan recovery failed", "error", err)
	} else if recovered > 0 {
		slog.Warn("recovered startup orphans", "count", recovered)
	}

	// 6. Pipeline dependencies
	llmClient := llm.NewHTTPClient(cfg.LLM, logger)
	searcher := search.NewSearxNGClient(cfg.Search, logger)
	extractor := extract.New(cfg.Extract, logger)
	publisher := events.NewRedisPublisher(rdb, logger)

	driver := workflow.NewDriver(
		llmClient, searcher, extractor,
		sessionService, reportService, dataService, dataService,
		publisher, jobQueue, cfg.Research, logger,
	)

	// 7. Worker pool
	workerPool := queue.NewWorkerPool(podID, jobQueue, cfg.Queue, driver, logger)
	canceller.pool = workerPool
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 8. WebSocket fan-out: broker pub/sub -> connection manager
	connManager := events.NewConnectionManager(10*time.Second, logger)
	listener := events.NewBrokerListener(rdb, connManager, logger)
	connManager.SetSubscriber(listener)
	listener.Start(ctx)
	defer listener.Close()

	// 9. Retention and stalled-session sweeps
	cleanupService := cleanup.NewService(cfg.Retention, dataService, sessionService, logger)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 10. HTTP server
	server := api.NewServer(cfg, dbClient, sessionService, reportService,
		userService, searcher, connManager, workerPool, logger)
	httpServer := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	slog.Info("delver started", "pod_id", podID, "workers", cfg.Queue.WorkerCount)

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("http server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown: stop taking requests, then drain workers.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("shutdown timeout exceeded, incomplete sessions will be lease-recovered")
	}

	slog.Info("shutdown complete")
}
