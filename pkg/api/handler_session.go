package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cryoflow/cryoflow/ent/pipelinesession"
)

// createSessionHandler handles POST /api/v1/sessions. The session is created
// in status pending; processing begins on the start verb.
func (s *Server) createSessionHandler(c *gin.Context) {
	var body CreateSessionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	session, err := s.sessions.CreateSession(c.Request.Context(), body.toServiceRequest())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

// getSessionHandler handles GET /api/v1/sessions/:id.
func (s *Server) getSessionHandler(c *gin.Context) {
	session, err := s.sessions.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// deleteSessionHandler handles DELETE /api/v1/sessions/:id. A live session
// is stopped first so cluster jobs are cancelled before the row (and its
// cascading job and activity rows) disappears.
func (s *Server) deleteSessionHandler(c *gin.Context) {
	sessionID := c.Param("id")

	session, err := s.sessions.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if session.Status == pipelinesession.StatusRunning || session.Status == pipelinesession.StatusPaused {
		if err := s.orch.Stop(c.Request.Context(), sessionID); err != nil {
			writeServiceError(c, err)
			return
		}
	}

	if err := s.sessions.DeleteSession(c.Request.Context(), sessionID); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, &LifecycleResponse{
		SessionID: sessionID,
		Message:   "session deleted",
	})
}

// startSessionHandler handles POST /api/v1/sessions/:id/start.
func (s *Server) startSessionHandler(c *gin.Context) {
	sessionID := c.Param("id")
	if err := s.orch.Start(c.Request.Context(), sessionID); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, &LifecycleResponse{
		SessionID: sessionID,
		Message:   "session started",
	})
}

// pauseSessionHandler handles POST /api/v1/sessions/:id/pause.
func (s *Server) pauseSessionHandler(c *gin.Context) {
	sessionID := c.Param("id")
	if err := s.orch.Pause(c.Request.Context(), sessionID); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, &LifecycleResponse{
		SessionID: sessionID,
		Message:   "session paused",
	})
}

// resumeSessionHandler handles POST /api/v1/sessions/:id/resume.
func (s *Server) resumeSessionHandler(c *gin.Context) {
	sessionID := c.Param("id")
	if err := s.orch.Resume(c.Request.Context(), sessionID); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, &LifecycleResponse{
		SessionID: sessionID,
		Message:   "session resumed",
	})
}

// stopSessionHandler handles POST /api/v1/sessions/:id/stop.
func (s *Server) stopSessionHandler(c *gin.Context) {
	sessionID := c.Param("id")
	if err := s.orch.Stop(c.Request.Context(), sessionID); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, &LifecycleResponse{
		SessionID: sessionID,
		Message:   "session stopped",
	})
}

// sessionStatsHandler handles GET /api/v1/sessions/:id/stats.
func (s *Server) sessionStatsHandler(c *gin.Context) {
	session, err := s.sessions.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, &StatsResponse{
		SessionID:   session.ID,
		Status:      string(session.Status),
		InputMode:   string(session.InputMode),
		State:       session.State,
		PassHistory: session.PassHistory,
		StartTime:   session.StartTime,
		EndTime:     session.EndTime,
	})
}

// sessionExposuresHandler handles GET /api/v1/sessions/:id/exposures. It
// returns per-job processed counts, which together form the session's
// exposure progression through the pipeline.
func (s *Server) sessionExposuresHandler(c *gin.Context) {
	sessionID := c.Param("id")

	// 404 for unknown sessions instead of an empty list.
	if _, err := s.sessions.GetSession(c.Request.Context(), sessionID); err != nil {
		writeServiceError(c, err)
		return
	}

	jobs, err := s.jobs.ListBySession(c.Request.Context(), sessionID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	rows := make([]ExposureRow, 0, len(jobs))
	for _, job := range jobs {
		rows = append(rows, ExposureRow{
			JobID:           job.ID,
			JobName:         job.JobName,
			JobType:         job.JobType,
			Status:          string(job.Status),
			ClusterJobID:    job.ClusterJobID,
			MicrographCount: job.PipelineStats.MicrographCount,
			ParticleCount:   job.PipelineStats.ParticleCount,
			ClassCount:      job.PipelineStats.ClassCount,
			StartTime:       job.StartTime,
			EndTime:         job.EndTime,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"exposures": rows,
		"count":     len(rows),
	})
}
