package api

import (
	"time"

	"github.com/cryoflow/cryoflow/pkg/models"
	"github.com/cryoflow/cryoflow/pkg/services"
)

// CreateProjectBody is the request body for POST /api/v1/projects.
type CreateProjectBody struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// CreateSessionBody is the request body for POST /api/v1/sessions. Per-stage
// configuration reuses the domain config types; field-level validation lives
// in the service layer so API and internal callers share the same rules.
type CreateSessionBody struct {
	ProjectID      string `json:"project_id"`
	UserID         string `json:"user_id"`
	SessionName    string `json:"session_name"`
	InputMode      string `json:"input_mode"`
	WatchDirectory string `json:"watch_directory"`
	FilePattern    string `json:"file_pattern"`

	Optics     models.OpticsConfig     `json:"optics"`
	Motion     models.MotionConfig     `json:"motion"`
	Ctf        models.CtfConfig        `json:"ctf"`
	Picking    models.PickingConfig    `json:"picking"`
	Extraction models.ExtractionConfig `json:"extraction"`
	Class2D    Class2DBody             `json:"class2d"`
	Slurm      models.SlurmConfig      `json:"slurm"`
}

// Class2DBody mirrors models.Class2DConfig with the batch interval expressed
// in milliseconds instead of a Go duration.
type Class2DBody struct {
	Enabled           bool    `json:"enabled"`
	ClassCount        int     `json:"class_count"`
	ParticleThreshold int     `json:"particle_threshold"`
	BatchIntervalMs   int64   `json:"batch_interval_ms"`
	UseFastVariant    bool    `json:"use_fast_variant"`
	IterationCount    int     `json:"iteration_count"`
	MaskDiameter      float64 `json:"mask_diameter"`
}

func (b CreateSessionBody) toServiceRequest() services.CreateSessionRequest {
	return services.CreateSessionRequest{
		ProjectID:      b.ProjectID,
		UserID:         b.UserID,
		SessionName:    b.SessionName,
		InputMode:      models.InputMode(b.InputMode),
		WatchDirectory: b.WatchDirectory,
		FilePattern:    b.FilePattern,
		Optics:         b.Optics,
		Motion:         b.Motion,
		Ctf:            b.Ctf,
		Picking:        b.Picking,
		Extraction:     b.Extraction,
		Class2D: models.Class2DConfig{
			Enabled:           b.Class2D.Enabled,
			ClassCount:        b.Class2D.ClassCount,
			ParticleThreshold: b.Class2D.ParticleThreshold,
			BatchInterval:     time.Duration(b.Class2D.BatchIntervalMs) * time.Millisecond,
			UseFastVariant:    b.Class2D.UseFastVariant,
			IterationCount:    b.Class2D.IterationCount,
			MaskDiameter:      b.Class2D.MaskDiameter,
		},
		Slurm: b.Slurm,
	}
}
