package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/painscope/painscope/pkg/models"
)

// CreateSearch handles POST /api/search.
//
// The response is synchronous: a cached result when the fingerprint is
// warm, the existing search id when an equivalent search is in flight,
// or a freshly queued search otherwise.
func (s *Server) CreateSearch(c *gin.Context) {
	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := s.searches.Submit(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetSearchStatus handles GET /api/search-status?searchId=...
func (s *Server) GetSearchStatus(c *gin.Context) {
	searchID := c.Query("searchId")
	if searchID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "searchId is required"})
		return
	}

	resp, err := s.searches.GetStatus(c.Request.Context(), searchID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
