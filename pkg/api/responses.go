package api

import (
	"time"

	"github.com/cryoflow/cryoflow/pkg/models"
)

// LifecycleResponse acknowledges a session lifecycle verb.
type LifecycleResponse struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// StatsResponse is the aggregate progress view of a session.
type StatsResponse struct {
	SessionID   string                `json:"session_id"`
	Status      string                `json:"status"`
	InputMode   string                `json:"input_mode"`
	State       models.SessionState   `json:"state"`
	PassHistory []models.PassSnapshot `json:"pass_history"`
	StartTime   *time.Time            `json:"start_time,omitempty"`
	EndTime     *time.Time            `json:"end_time,omitempty"`
}

// ExposureRow summarizes one pipeline job's processed output. The per-stage
// micrograph and particle counts together form the session's exposure
// progression.
type ExposureRow struct {
	JobID           string     `json:"job_id"`
	JobName         string     `json:"job_name"`
	JobType         string     `json:"job_type"`
	Status          string     `json:"status"`
	ClusterJobID    *string    `json:"cluster_job_id,omitempty"`
	MicrographCount int        `json:"micrograph_count"`
	ParticleCount   int        `json:"particle_count"`
	ClassCount      int        `json:"class_count,omitempty"`
	StartTime       *time.Time `json:"start_time,omitempty"`
	EndTime         *time.Time `json:"end_time,omitempty"`
}
