// Package cluster abstracts the batch scheduler the pipeline submits to.
// The orchestrator sees submissions, best-effort cancellation, detail
// queries for error enrichment, and an asynchronous status-change stream.
package cluster

import (
	"context"
	"path/filepath"

	"github.com/cryoflow/cryoflow/pkg/models"
)

// Status is the scheduler-independent job state.
type Status string

// Job states as the orchestrator sees them. Success and Failed are the
// terminal stage-completion states; Cancelled is surfaced separately.
const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusSuccess   Status = "success"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// Terminal reports whether s is a final state.
func (s Status) Terminal() bool {
	return s == StatusSuccess || s == StatusFailed || s == StatusCancelled
}

// SubmitRequest describes one job submission.
type SubmitRequest struct {
	JobID       string
	JobName     string
	Stage       models.StageKey
	ProjectID   string
	ProjectPath string
	OutputDir   string // relative to ProjectPath
	Command     []string
	PostCommand string
	Params      models.ClusterParams
}

// SubmitResult carries the scheduler's identifier for a accepted job.
type SubmitResult struct {
	ClusterJobID string
}

// StatusChange is emitted on every observed state transition. Terminal
// transitions are delivered at least once.
type StatusChange struct {
	JobID     string
	ProjectID string
	OldStatus Status
	NewStatus Status
}

// JobDetails is the scheduler's view of a finished job, used only to
// enrich failure activities.
type JobDetails struct {
	State    string
	ExitCode string
	Elapsed  string
}

// Driver is the scheduler integration point.
type Driver interface {
	// Submit hands a built job to the scheduler and begins tracking it.
	Submit(ctx context.Context, req SubmitRequest) (SubmitResult, error)

	// Cancel asks the scheduler to stop a job. Best-effort; an error means
	// the request could not be delivered, not that the job survived.
	Cancel(ctx context.Context, clusterJobID string) error

	// JobDetails queries state, exit code and elapsed time for a job.
	JobDetails(ctx context.Context, clusterJobID string) (JobDetails, error)

	// Events returns the status-change stream.
	Events() <-chan StatusChange
}

// Job output is captured next to the job's result files so the failure
// handler can tail it from the shared filesystem.
const (
	stdoutFile = "run.out"
	stderrFile = "run.err"
)

// StdoutPath returns the absolute path of a job's captured stdout.
func StdoutPath(projectPath, outputDir string) string {
	return filepath.Join(projectPath, outputDir, stdoutFile)
}

// StderrPath returns the absolute path of a job's captured stderr.
func StderrPath(projectPath, outputDir string) string {
	return filepath.Join(projectPath, outputDir, stderrFile)
}
