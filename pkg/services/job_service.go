package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cryoflow/cryoflow/ent"
	"github.com/cryoflow/cryoflow/ent/pipelinejob"
	"github.com/cryoflow/cryoflow/ent/project"
	"github.com/cryoflow/cryoflow/pkg/models"
)

// JobService manages pipeline job records and project-unique job naming.
type JobService struct {
	client *ent.Client
}

// NewJobService creates a new JobService
func NewJobService(client *ent.Client) *JobService {
	return &JobService{client: client}
}

// CreateJobParams describes a first-run job record.
type CreateJobParams struct {
	SessionID      string
	ProjectID      string
	UserID         string
	JobName        string
	JobType        models.StageKey
	OutputFilePath string
	Command        []string
	Parameters     map[string]any
	InputJobIDs    []string
}

// CreateJob persists a new job record in status pending.
func (s *JobService) CreateJob(ctx context.Context, p CreateJobParams) (*ent.PipelineJob, error) {
	if p.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if p.JobName == "" {
		return nil, NewValidationError("job_name", "required")
	}

	job, err := s.client.PipelineJob.Create().
		SetID(uuid.New().String()).
		SetSessionID(p.SessionID).
		SetProjectID(p.ProjectID).
		SetUserID(p.UserID).
		SetJobName(p.JobName).
		SetJobType(string(p.JobType)).
		SetStatus(pipelinejob.StatusPending).
		SetOutputFilePath(p.OutputFilePath).
		SetCommand(strings.Join(p.Command, " ")).
		SetParameters(p.Parameters).
		SetInputJobIds(p.InputJobIDs).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return job, nil
}

// GetJob retrieves a job by ID.
func (s *JobService) GetJob(ctx context.Context, jobID string) (*ent.PipelineJob, error) {
	job, err := s.client.PipelineJob.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// NextJobName allocates the next project-unique job name (job001, job002,
// ...). The project row is locked so concurrent sessions cannot collide.
func (s *JobService) NextJobName(ctx context.Context, projectID string) (string, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	p, err := tx.Project.Query().
		Where(project.ID(projectID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to lock project: %w", err)
	}

	next := p.JobCounter + 1
	if err := tx.Project.UpdateOneID(projectID).
		SetJobCounter(next).
		Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to advance job counter: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit job counter: %w", err)
	}
	return fmt.Sprintf("job%03d", next), nil
}

// ResetForRerun prepares an existing job record for re-submission into its
// original output directory. The job id, name, and output path stay
// untouched so the downstream tool can deduplicate.
func (s *JobService) ResetForRerun(ctx context.Context, jobID string, command []string, parameters map[string]any) error {
	err := s.client.PipelineJob.UpdateOneID(jobID).
		SetStatus(pipelinejob.StatusPending).
		SetCommand(strings.Join(command, " ")).
		SetParameters(parameters).
		ClearClusterJobID().
		ClearErrorMessage().
		ClearStartTime().
		ClearEndTime().
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to reset job for re-run: %w", err)
	}
	return nil
}

// MarkSubmitted records a successful cluster submission.
func (s *JobService) MarkSubmitted(ctx context.Context, jobID, clusterJobID string) error {
	err := s.client.PipelineJob.UpdateOneID(jobID).
		SetStatus(pipelinejob.StatusRunning).
		SetClusterJobID(clusterJobID).
		SetStartTime(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark job submitted: %w", err)
	}
	return nil
}

// MarkCompleted records a terminal outcome.
func (s *JobService) MarkCompleted(ctx context.Context, jobID string, status pipelinejob.Status, errorMessage string, stats *models.PipelineStats) error {
	if status != pipelinejob.StatusSuccess && status != pipelinejob.StatusFailed {
		return NewValidationError("status", "must be success or failed")
	}
	update := s.client.PipelineJob.UpdateOneID(jobID).
		SetStatus(status).
		SetEndTime(time.Now())
	if errorMessage != "" {
		update.SetErrorMessage(errorMessage)
	}
	if stats != nil {
		update.SetPipelineStats(*stats)
	}
	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark job completed: %w", err)
	}
	return nil
}

// MarkCancelled records a cancellation, stamping end_time.
func (s *JobService) MarkCancelled(ctx context.Context, jobID string) error {
	err := s.client.PipelineJob.UpdateOneID(jobID).
		SetStatus(pipelinejob.StatusCancelled).
		ClearClusterJobID().
		SetEndTime(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark job cancelled: %w", err)
	}
	return nil
}

// ListBySession returns all of a session's jobs in creation order.
func (s *JobService) ListBySession(ctx context.Context, sessionID string) ([]*ent.PipelineJob, error) {
	jobs, err := s.client.PipelineJob.Query().
		Where(pipelinejob.SessionID(sessionID)).
		Order(ent.Asc(pipelinejob.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs for session %s: %w", sessionID, err)
	}
	return jobs, nil
}

// ListActiveBySession returns the session's jobs still in pending or
// running state. Used by stop and crash recovery to cancel live work.
func (s *JobService) ListActiveBySession(ctx context.Context, sessionID string) ([]*ent.PipelineJob, error) {
	jobs, err := s.client.PipelineJob.Query().
		Where(
			pipelinejob.SessionID(sessionID),
			pipelinejob.StatusIn(pipelinejob.StatusPending, pipelinejob.StatusRunning),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active jobs for session %s: %w", sessionID, err)
	}
	return jobs, nil
}

// CountActiveClass2D counts the session's Class2D batches still live; the
// existing-mode completion check defers while any remain.
func (s *JobService) CountActiveClass2D(ctx context.Context, sessionID string) (int, error) {
	n, err := s.client.PipelineJob.Query().
		Where(
			pipelinejob.SessionID(sessionID),
			pipelinejob.JobType(string(models.StageClass2D)),
			pipelinejob.StatusIn(pipelinejob.StatusPending, pipelinejob.StatusRunning),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count active class2d jobs: %w", err)
	}
	return n, nil
}

// ResolveInputJobIDs maps job names to job ids within a project, preserving
// order. Unknown names are an error: input chaining must never submit with
// dangling references.
func (s *JobService) ResolveInputJobIDs(ctx context.Context, projectID string, jobNames []string) ([]string, error) {
	if len(jobNames) == 0 {
		return nil, nil
	}
	jobs, err := s.client.PipelineJob.Query().
		Where(
			pipelinejob.ProjectID(projectID),
			pipelinejob.JobNameIn(jobNames...),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve input jobs: %w", err)
	}

	byName := make(map[string]string, len(jobs))
	for _, j := range jobs {
		byName[j.JobName] = j.ID
	}
	ids := make([]string, 0, len(jobNames))
	for _, name := range jobNames {
		id, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: input job %s", ErrNotFound, name)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
