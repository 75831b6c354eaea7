package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cryoflow/cryoflow/pkg/models"
)

const (
	defaultActivityLimit = 100
	maxActivityLimit     = 500
)

// sessionActivityHandler handles GET /api/v1/sessions/:id/activity with
// optional level, stage, search, limit and offset query parameters.
func (s *Server) sessionActivityHandler(c *gin.Context) {
	sessionID := c.Param("id")

	if _, err := s.sessions.GetSession(c.Request.Context(), sessionID); err != nil {
		writeServiceError(c, err)
		return
	}

	filter := models.ActivityFilter{Limit: defaultActivityLimit}

	if v := c.Query("level"); v != "" {
		switch models.ActivityLevel(v) {
		case models.LevelInfo, models.LevelSuccess, models.LevelWarning, models.LevelError:
			filter.Level = models.ActivityLevel(v)
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid level: must be info, success, warning, or error"})
			return
		}
	}
	if v := c.Query("stage"); v != "" {
		k := models.StageKey(v)
		if !models.IsPipelineStage(k) && k != models.StageClass2D {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stage: " + v})
			return
		}
		filter.Stage = k
	}
	filter.Search = c.Query("search")

	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= maxActivityLimit {
			filter.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filter.Offset = n
		}
	}

	entries, err := s.activity.List(c.Request.Context(), sessionID, filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"activity": entries,
		"count":    len(entries),
	})
}
