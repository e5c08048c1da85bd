package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/painscope/painscope/pkg/database"
)

// Health handles GET /healthz: database, cache, and worker pool status.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	healthy := true
	body := gin.H{}

	dbHealth, err := database.Health(ctx, s.db.DB())
	body["database"] = dbHealth
	if err != nil {
		healthy = false
	}

	if s.cache != nil {
		if err := s.cache.Ping(ctx); err != nil {
			body["cache"] = gin.H{"status": "unhealthy", "error": err.Error()}
			healthy = false
		} else {
			body["cache"] = gin.H{"status": "healthy"}
		}
	}

	if s.pool != nil {
		poolHealth := s.pool.Health()
		body["queue"] = poolHealth
		if !poolHealth.IsHealthy {
			healthy = false
		}
	}

	if s.connManager != nil {
		body["websocket_connections"] = s.connManager.ActiveConnections()
	}

	if healthy {
		body["status"] = "healthy"
		c.JSON(http.StatusOK, body)
		return
	}
	body["status"] = "unhealthy"
	c.JSON(http.StatusServiceUnavailable, body)
}
