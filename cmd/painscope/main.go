// PainScope server: accepts pain-point search requests over HTTP,
// processes them through the scrape+analyze queue, and streams progress
// over WebSocket.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/painscope/painscope/pkg/analyzer"
	"github.com/painscope/painscope/pkg/api"
	"github.com/painscope/painscope/pkg/cache"
	"github.com/painscope/painscope/pkg/cleanup"
	"github.com/painscope/painscope/pkg/config"
	"github.com/painscope/painscope/pkg/database"
	"github.com/painscope/painscope/pkg/events"
	"github.com/painscope/painscope/pkg/hackernews"
	"github.com/painscope/painscope/pkg/queue"
	"github.com/painscope/painscope/pkg/services"
)

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

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	podID := resolvePodID()
	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting PainScope",
		"addr", cfg.Server.Addr,
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup recovery of this pod's orphaned searches
	if err := queue.CleanupStartupStale(ctx, dbClient.Client, cfg.Queue, podID); err != nil {
		slog.Error("Failed to recover startup stale searches", "error", err)
		// Non-fatal, the periodic sweep will catch them
	}

	// 4. Redis result cache
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.Addr,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
	})
	defer func() { _ = rdb.Close() }()
	resultCache := cache.New(rdb, cfg.Cache.TTL)
	if err := resultCache.Ping(ctx); err != nil {
		slog.Error("Failed to connect to Redis", "addr", cfg.Cache.Addr, "error", err)
		os.Exit(1)
	}
	slog.Info("Connected to Redis", "addr", cfg.Cache.Addr)

	// 5. Domain services
	resultService := services.NewResultService(dbClient.Client)
	searchService := services.NewSearchService(dbClient.Client, resultCache, resultService)
	eventService := services.NewEventService(dbClient.Client)
	jobLogService := services.NewJobLogService(dbClient.Client)
	usageService := services.NewUsageService(dbClient.Client, cfg.Analyzer.CostPerMillionUSD)
	slog.Info("Services initialized")

	// 6. Streaming infrastructure
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	catchupQuerier := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(catchupQuerier, cfg.Server.WSWriteTimeout)

	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)

	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 7. Analyzer and news source
	gemini, err := analyzer.NewGeminiAnalyzer(ctx, cfg.Analyzer.APIKey, cfg.Analyzer.Model)
	if err != nil {
		slog.Error("Failed to initialize analyzer", "error", err)
		os.Exit(1)
	}
	hnClient := hackernews.NewClient()

	// 8. Worker pool
	executor := queue.NewPipeline(
		dbClient.Client, hnClient, gemini, eventPublisher,
		resultCache, resultService, usageService, jobLogService,
		cfg.Pipeline,
	)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, executor, eventPublisher, jobLogService)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 9. Retention
	cleanupService := cleanup.NewService(cfg.Retention, dbClient.Client, eventService, jobLogService)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 10. HTTP server (non-blocking)
	httpServer := api.NewServer(cfg.Server, dbClient, resultCache, searchService, workerPool, connManager)
	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("PainScope started successfully", "pod_id", podID)

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown: stop taking requests, then drain workers.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
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
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, incomplete searches will be stale-recovered")
	}

	slog.Info("Shutdown complete")
}
