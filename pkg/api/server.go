// Package api exposes the HTTP surface: search intake, status lookup,
// the progress WebSocket, health, and Prometheus metrics.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/painscope/painscope/pkg/cache"
	"github.com/painscope/painscope/pkg/config"
	"github.com/painscope/painscope/pkg/database"
	"github.com/painscope/painscope/pkg/events"
	"github.com/painscope/painscope/pkg/queue"
	"github.com/painscope/painscope/pkg/services"
)

// Server wires the HTTP handlers to the service layer.
type Server struct {
	cfg         *config.ServerConfig
	db          *database.Client
	cache       *cache.Cache
	searches    *services.SearchService
	pool        *queue.WorkerPool
	connManager *events.ConnectionManager

	httpServer *http.Server
}

// NewServer creates the API server. pool and connManager may be nil when
// the process runs API-only; the affected endpoints degrade gracefully.
func NewServer(
	cfg *config.ServerConfig,
	db *database.Client,
	resultCache *cache.Cache,
	searches *services.SearchService,
	pool *queue.WorkerPool,
	connManager *events.ConnectionManager,
) *Server {
	return &Server{
		cfg:         cfg,
		db:          db,
		cache:       resultCache,
		searches:    searches,
		pool:        pool,
		connManager: connManager,
	}
}

// Routes builds the gin engine with all endpoints registered.
func (s *Server) Routes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	router.POST("/api/search", s.CreateSearch)
	router.GET("/api/search-status", s.GetSearchStatus)
	router.GET("/ws", s.HandleWebSocket)
	router.GET("/healthz", s.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

// Start runs the HTTP server until it is shut down. Always returns a
// non-nil error; http.ErrServerClosed after a clean Shutdown.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("HTTP server listening", "addr", s.cfg.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests within the configured timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// requestLogger logs one line per request via slog.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("Request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	}
}
