// Package stage builds cluster commands for the preprocessing pipeline
// stages. Each builder validates its slice of the session configuration and
// renders the argv for one downstream tool invocation; the orchestrator owns
// job naming, persistence, and submission.
package stage

import (
	"fmt"
	"path"

	"github.com/cryoflow/cryoflow/pkg/models"
)

// Builder is implemented once per stage kind.
type Builder interface {
	// Stage returns the stage key this builder serves.
	Stage() models.StageKey

	// Validate checks the stage's parameters before any job record is
	// created. A validation error skips the stage, it does not fail the
	// session.
	Validate() error

	// OutputDir returns the job output directory relative to the project
	// root, e.g. "MotionCorr/job002".
	OutputDir(jobName string) string

	// OutputFile returns the stage's main result file relative to the
	// project root.
	OutputFile(jobName string) string

	// InputJobNames returns the job names of upstream stages this stage
	// reads from. The orchestrator resolves them to job IDs.
	InputJobNames() []string

	// BuildCommand renders the argv. outputDir is the value of
	// OutputDir(jobName) for the job being submitted.
	BuildCommand(outputDir string) []string

	// SupportsGPU reports whether the rendered command uses GPUs.
	SupportsGPU() bool

	// SupportsMPI reports whether the command may run with more than one
	// MPI process.
	SupportsMPI() bool

	// PostCommand returns an optional shell snippet the driver appends
	// after the main command, or "".
	PostCommand(outputDir string) string
}

// BuildConfig carries everything the builders derive their commands from:
// the session's per-stage configuration plus the chaining context (upstream
// job names and the import glob).
type BuildConfig struct {
	Optics     models.OpticsConfig
	Motion     models.MotionConfig
	Ctf        models.CtfConfig
	Picking    models.PickingConfig
	Extraction models.ExtractionConfig
	Class2D    models.Class2DConfig

	// MoviesGlob is the import input pattern relative to the project root,
	// e.g. "Movies/*.tiff" (through the watch-directory symlink).
	MoviesGlob string

	// PrevJobNames maps each already-submitted stage to its job name, used
	// for input chaining.
	PrevJobNames map[models.StageKey]string
}

// New constructs the builder for a stage.
func New(k models.StageKey, cfg BuildConfig) (Builder, error) {
	switch k {
	case models.StageImport:
		return &importBuilder{cfg: cfg}, nil
	case models.StageMotion:
		return &motionBuilder{cfg: cfg}, nil
	case models.StageCtf:
		return &ctfBuilder{cfg: cfg}, nil
	case models.StagePick:
		return &pickBuilder{cfg: cfg}, nil
	case models.StageExtract:
		return &extractBuilder{cfg: cfg}, nil
	case models.StageClass2D:
		return &class2DBuilder{cfg: cfg}, nil
	}
	return nil, fmt.Errorf("unknown stage %q", k)
}

// jobDir forms "<DirKind>/<jobName>".
func jobDir(k models.StageKey, jobName string) string {
	return path.Join(k.DirKind(), jobName)
}

// upstreamFile forms the relative path of an upstream stage's result file,
// "<DirKind>/<jobName>/<file>".
func upstreamFile(k models.StageKey, jobName, file string) string {
	return path.Join(k.DirKind(), jobName, file)
}

// requireUpstream returns the recorded job name of an upstream stage or an
// error naming the missing dependency.
func requireUpstream(cfg BuildConfig, k models.StageKey) (string, error) {
	name := cfg.PrevJobNames[k]
	if name == "" {
		return "", fmt.Errorf("missing upstream %s job", k)
	}
	return name, nil
}

// successMarker is touched after the main command so incomplete runs are
// distinguishable from crashed ones when re-running into the same directory.
func successMarker(outputDir string) string {
	return fmt.Sprintf("touch %s", path.Join(outputDir, "RELION_JOB_EXIT_SUCCESS"))
}

func f(v float64) string {
	return fmt.Sprintf("%g", v)
}

func i(v int) string {
	return fmt.Sprintf("%d", v)
}
