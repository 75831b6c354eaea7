package models

import (
	"fmt"
	"time"
)

// InputMode controls how a session consumes its watch directory.
type InputMode string

const (
	// InputModeWatch keeps the session open-ended: new files arriving in the
	// watch directory trigger additional pipeline passes indefinitely.
	InputModeWatch InputMode = "watch"
	// InputModeExisting snapshots the directory once; the session completes
	// when the pipeline has caught up with the snapshot.
	InputModeExisting InputMode = "existing"
)

// SessionState is the mutable pipeline progress of a session, persisted as a
// JSON column. All writes go through the session store's locked
// read-modify-write so concurrent updates cannot interleave.
type SessionState struct {
	CurrentStage       string     `json:"current_stage"`
	PassCount          int        `json:"pass_count"`
	LastPipelinePass   *time.Time `json:"last_pipeline_pass,omitempty"`
	MoviesFound        int        `json:"movies_found"`
	MoviesImported     int        `json:"movies_imported"`
	MoviesMotion       int        `json:"movies_motion"`
	MoviesCtf          int        `json:"movies_ctf"`
	MoviesPicked       int        `json:"movies_picked"`
	ParticlesExtracted int        `json:"particles_extracted"`
	ResumeFrom         StageKey   `json:"resume_from,omitempty"`
	LastBatch2D        *time.Time `json:"last_batch_2d,omitempty"`
	MoviesAtPassStart  int        `json:"movies_at_pass_start"`
}

// SessionJobs maps each pipeline stage to the ID of its single main job.
// Stage IDs are write-once per session; re-runs reuse the recorded job.
// Class2D jobs are batch jobs and only ever appended.
type SessionJobs struct {
	ImportID   string   `json:"import_id,omitempty"`
	MotionID   string   `json:"motion_id,omitempty"`
	CtfID      string   `json:"ctf_id,omitempty"`
	PickID     string   `json:"pick_id,omitempty"`
	ExtractID  string   `json:"extract_id,omitempty"`
	Class2DIDs []string `json:"class2d_ids,omitempty"`
}

// IDForStage returns the recorded job ID for a linear pipeline stage,
// or "" if the stage has not been submitted yet.
func (j SessionJobs) IDForStage(k StageKey) string {
	switch k {
	case StageImport:
		return j.ImportID
	case StageMotion:
		return j.MotionID
	case StageCtf:
		return j.CtfID
	case StagePick:
		return j.PickID
	case StageExtract:
		return j.ExtractID
	}
	return ""
}

// SetIDForStage records the job ID for a linear pipeline stage. It returns an
// error when the stage already has a different ID — stage job IDs are
// write-once for the lifetime of the session.
func (j *SessionJobs) SetIDForStage(k StageKey, id string) error {
	existing := j.IDForStage(k)
	if existing != "" && existing != id {
		return fmt.Errorf("stage %s already bound to job %s", k, existing)
	}
	switch k {
	case StageImport:
		j.ImportID = id
	case StageMotion:
		j.MotionID = id
	case StageCtf:
		j.CtfID = id
	case StagePick:
		j.PickID = id
	case StageExtract:
		j.ExtractID = id
	default:
		return fmt.Errorf("stage %s has no single main job", k)
	}
	return nil
}

// StageForJobID returns the stage a job ID belongs to, checking the linear
// stages first and the Class2D batch list last. ok is false when the job
// does not belong to this session.
func (j SessionJobs) StageForJobID(id string) (StageKey, bool) {
	if id == "" {
		return "", false
	}
	for _, k := range PipelineOrder {
		if j.IDForStage(k) == id {
			return k, true
		}
	}
	for _, c := range j.Class2DIDs {
		if c == id {
			return StageClass2D, true
		}
	}
	return "", false
}

// PassSnapshot is one entry of the append-only pass history.
type PassSnapshot struct {
	PassNumber         int       `json:"pass_number"`
	CompletedAt        time.Time `json:"completed_at"`
	MoviesFound        int       `json:"movies_found"`
	MoviesImported     int       `json:"movies_imported"`
	MoviesMotion       int       `json:"movies_motion"`
	MoviesCtf          int       `json:"movies_ctf"`
	MoviesPicked       int       `json:"movies_picked"`
	ParticlesExtracted int       `json:"particles_extracted"`
}

// OpticsConfig describes the microscope optics of the session's data
// collection. PixelSize is the raw pixel size in Angstrom.
type OpticsConfig struct {
	PixelSize           float64 `json:"pixel_size"`
	Voltage             float64 `json:"voltage"`
	SphericalAberration float64 `json:"spherical_aberration"`
	AmplitudeContrast   float64 `json:"amplitude_contrast"`
	OpticsGroupName     string  `json:"optics_group_name,omitempty"`
}

// MotionConfig configures the motion-correction stage.
type MotionConfig struct {
	Enabled       bool    `json:"enabled"`
	UseGPU        bool    `json:"use_gpu"`
	PatchX        int     `json:"patch_x"`
	PatchY        int     `json:"patch_y"`
	BinFactor     float64 `json:"bin_factor"`
	DosePerFrame  float64 `json:"dose_per_frame"`
	GainReference string  `json:"gain_reference,omitempty"`
}

// CtfConfig configures the CTF-estimation stage. Defocus values are in
// Angstrom.
type CtfConfig struct {
	Enabled     bool    `json:"enabled"`
	DefocusMin  float64 `json:"defocus_min"`
	DefocusMax  float64 `json:"defocus_max"`
	DefocusStep float64 `json:"defocus_step"`
}

// PickingConfig configures auto-picking. LoG and template picking are
// mutually exclusive.
type PickingConfig struct {
	Enabled     bool    `json:"enabled"`
	UseLoG      bool    `json:"use_log"`
	UseTemplate bool    `json:"use_template"`
	TemplateRef string  `json:"template_ref,omitempty"`
	DiameterMin float64 `json:"diameter_min"`
	DiameterMax float64 `json:"diameter_max"`
	Threshold   float64 `json:"threshold"`
}

// ExtractionConfig configures particle extraction.
type ExtractionConfig struct {
	Enabled        bool `json:"enabled"`
	BoxSize        int  `json:"box_size"`
	Rescale        bool `json:"rescale"`
	RescaledSize   int  `json:"rescaled_size"`
	Normalize      bool `json:"normalize"`
	InvertContrast bool `json:"invert_contrast"`
}

// Class2DConfig configures the 2D classification side branch. A batch fires
// when ParticleThreshold particles have been extracted and BatchInterval has
// elapsed since the previous batch.
type Class2DConfig struct {
	Enabled           bool          `json:"enabled"`
	ClassCount        int           `json:"class_count"`
	ParticleThreshold int           `json:"particle_threshold"`
	BatchInterval     time.Duration `json:"batch_interval"`
	UseFastVariant    bool          `json:"use_fast_variant"`
	IterationCount    int           `json:"iteration_count,omitempty"`
	MaskDiameter      float64       `json:"mask_diameter"`
}

// SlurmConfig holds the operator's cluster resource knobs. MPIProcs of 1
// means "let the orchestrator pick a per-stage default".
type SlurmConfig struct {
	Partition string `json:"partition"`
	MPIProcs  int    `json:"mpi_procs"`
	Threads   int    `json:"threads"`
	GPUCount  int    `json:"gpu_count"`
}
