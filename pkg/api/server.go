// Package api exposes the control surface of the preprocessing orchestrator:
// session CRUD, lifecycle verbs, progress queries, health, Prometheus metrics
// and the live-update websocket.
package api

import (
	"context"
	stdsql "database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cryoflow/cryoflow/pkg/database"
	"github.com/cryoflow/cryoflow/pkg/events"
	"github.com/cryoflow/cryoflow/pkg/orchestrator"
	"github.com/cryoflow/cryoflow/pkg/services"
	"github.com/cryoflow/cryoflow/pkg/version"
)

// Server wires the HTTP handlers to the service layer and the orchestrator.
type Server struct {
	sessions    *services.SessionService
	jobs        *services.JobService
	activity    *services.ActivityService
	projects    *services.ProjectService
	orch        *orchestrator.Orchestrator
	connManager *events.ConnectionManager
	db          *stdsql.DB
}

// NewServer creates a new API server.
func NewServer(
	sessions *services.SessionService,
	jobs *services.JobService,
	activity *services.ActivityService,
	projects *services.ProjectService,
	orch *orchestrator.Orchestrator,
	connManager *events.ConnectionManager,
	db *stdsql.DB,
) *Server {
	return &Server{
		sessions:    sessions,
		jobs:        jobs,
		activity:    activity,
		projects:    projects,
		orch:        orch,
		connManager: connManager,
		db:          db,
	}
}

// RegisterRoutes attaches all handlers to the router.
func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", s.healthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/ws", s.wsHandler)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/projects", s.createProjectHandler)
		v1.GET("/projects/:id", s.getProjectHandler)
		v1.GET("/projects/:id/sessions", s.listProjectSessionsHandler)

		v1.POST("/sessions", s.createSessionHandler)
		v1.GET("/sessions/:id", s.getSessionHandler)
		v1.DELETE("/sessions/:id", s.deleteSessionHandler)

		v1.POST("/sessions/:id/start", s.startSessionHandler)
		v1.POST("/sessions/:id/pause", s.pauseSessionHandler)
		v1.POST("/sessions/:id/resume", s.resumeSessionHandler)
		v1.POST("/sessions/:id/stop", s.stopSessionHandler)

		v1.GET("/sessions/:id/stats", s.sessionStatsHandler)
		v1.GET("/sessions/:id/exposures", s.sessionExposuresHandler)
		v1.GET("/sessions/:id/activity", s.sessionActivityHandler)
	}
}

// healthHandler reports service health including database pool statistics.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"version":     version.Full(),
		"database":    dbHealth,
		"connections": s.connManager.ActiveConnections(),
	})
}
