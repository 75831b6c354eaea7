package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cryoflow/cryoflow/ent"
	"github.com/cryoflow/cryoflow/ent/pipelinesession"
	"github.com/cryoflow/cryoflow/pkg/models"
)

// SessionService manages pipeline session records. The session row is the
// durable source of truth for the orchestrator; all state/jobs mutations go
// through row-locked read-modify-write so concurrent event handlers cannot
// interleave.
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// CreateSessionRequest carries the operator's session definition.
type CreateSessionRequest struct {
	ProjectID      string
	UserID         string
	SessionName    string
	InputMode      models.InputMode
	WatchDirectory string
	FilePattern    string

	Optics     models.OpticsConfig
	Motion     models.MotionConfig
	Ctf        models.CtfConfig
	Picking    models.PickingConfig
	Extraction models.ExtractionConfig
	Class2D    models.Class2DConfig
	Slurm      models.SlurmConfig
}

// CreateSession creates a session in status pending.
func (s *SessionService) CreateSession(ctx context.Context, req CreateSessionRequest) (*ent.PipelineSession, error) {
	if req.ProjectID == "" {
		return nil, NewValidationError("project_id", "required")
	}
	if req.SessionName == "" {
		return nil, NewValidationError("session_name", "required")
	}
	if req.WatchDirectory == "" {
		return nil, NewValidationError("watch_directory", "required")
	}
	if req.FilePattern == "" {
		return nil, NewValidationError("file_pattern", "required")
	}
	if req.InputMode != models.InputModeWatch && req.InputMode != models.InputModeExisting {
		return nil, NewValidationError("input_mode", "must be watch or existing")
	}

	session, err := s.client.PipelineSession.Create().
		SetID(uuid.New().String()).
		SetProjectID(req.ProjectID).
		SetUserID(req.UserID).
		SetSessionName(req.SessionName).
		SetInputMode(pipelinesession.InputMode(req.InputMode)).
		SetWatchDirectory(req.WatchDirectory).
		SetFilePattern(req.FilePattern).
		SetStatus(pipelinesession.StatusPending).
		SetOptics(req.Optics).
		SetMotionConfig(req.Motion).
		SetCtfConfig(req.Ctf).
		SetPickingConfig(req.Picking).
		SetExtractionConfig(req.Extraction).
		SetClass2dConfig(req.Class2D).
		SetSlurmConfig(req.Slurm).
		SetState(models.SessionState{}).
		SetJobs(models.SessionJobs{}).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// GetSession retrieves a session by ID.
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*ent.PipelineSession, error) {
	session, err := s.client.PipelineSession.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// ListByProject returns a project's sessions, newest first. Soft-deleted
// sessions are excluded.
func (s *SessionService) ListByProject(ctx context.Context, projectID string) ([]*ent.PipelineSession, error) {
	sessions, err := s.client.PipelineSession.Query().
		Where(
			pipelinesession.ProjectID(projectID),
			pipelinesession.DeletedAtIsNil(),
		).
		Order(ent.Desc(pipelinesession.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions for project %s: %w", projectID, err)
	}
	return sessions, nil
}

// ListByStatus returns all non-deleted sessions in the given status.
// Used by crash recovery (status=running) and the cleanup service.
func (s *SessionService) ListByStatus(ctx context.Context, status pipelinesession.Status) ([]*ent.PipelineSession, error) {
	sessions, err := s.client.PipelineSession.Query().
		Where(
			pipelinesession.StatusEQ(status),
			pipelinesession.DeletedAtIsNil(),
		).
		Order(ent.Asc(pipelinesession.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions by status %s: %w", status, err)
	}
	return sessions, nil
}

// UpdateStatus moves a session to the given lifecycle status.
func (s *SessionService) UpdateStatus(ctx context.Context, sessionID string, status pipelinesession.Status) error {
	err := s.client.PipelineSession.UpdateOneID(sessionID).
		SetStatus(status).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update session status: %w", err)
	}
	return nil
}

// MarkStarted sets status=running and stamps start_time.
func (s *SessionService) MarkStarted(ctx context.Context, sessionID string) error {
	err := s.client.PipelineSession.UpdateOneID(sessionID).
		SetStatus(pipelinesession.StatusRunning).
		SetStartTime(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark session started: %w", err)
	}
	return nil
}

// MarkEnded moves a session to a terminal status and stamps end_time.
func (s *SessionService) MarkEnded(ctx context.Context, sessionID string, status pipelinesession.Status) error {
	if status != pipelinesession.StatusStopped && status != pipelinesession.StatusCompleted {
		return NewValidationError("status", "must be a terminal status")
	}
	err := s.client.PipelineSession.UpdateOneID(sessionID).
		SetStatus(status).
		SetEndTime(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark session ended: %w", err)
	}
	return nil
}

// UpdateState applies mutate to the session's state under a row lock and
// persists the result. mutate sees the freshest committed state, so counter
// updates can apply greatest-wins semantics without losing concurrent
// increments.
func (s *SessionService) UpdateState(ctx context.Context, sessionID string, mutate func(*models.SessionState) error) (*models.SessionState, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	session, err := tx.PipelineSession.Query().
		Where(pipelinesession.ID(sessionID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock session: %w", err)
	}

	state := session.State
	if err := mutate(&state); err != nil {
		return nil, err
	}

	if err := tx.PipelineSession.UpdateOneID(sessionID).
		SetState(state).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to update session state: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit state update: %w", err)
	}
	return &state, nil
}

// RaiseMoviesFound raises state.movies_found to count with MAX semantics;
// a stale count can never regress the counter.
func (s *SessionService) RaiseMoviesFound(ctx context.Context, sessionID string, count int) (*models.SessionState, error) {
	return s.UpdateState(ctx, sessionID, func(st *models.SessionState) error {
		if count > st.MoviesFound {
			st.MoviesFound = count
		}
		return nil
	})
}

// UpdateJobs applies mutate to the session's stage-to-job mapping under a
// row lock.
func (s *SessionService) UpdateJobs(ctx context.Context, sessionID string, mutate func(*models.SessionJobs) error) (*models.SessionJobs, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	session, err := tx.PipelineSession.Query().
		Where(pipelinesession.ID(sessionID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock session: %w", err)
	}

	jobs := session.Jobs
	if err := mutate(&jobs); err != nil {
		return nil, err
	}

	if err := tx.PipelineSession.UpdateOneID(sessionID).
		SetJobs(jobs).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to update session jobs: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit jobs update: %w", err)
	}
	return &jobs, nil
}

// SetStageJobID binds a linear stage to its job id. Binding is write-once;
// rebinding to a different id returns ErrStageJobBound.
func (s *SessionService) SetStageJobID(ctx context.Context, sessionID string, stage models.StageKey, jobID string) error {
	_, err := s.UpdateJobs(ctx, sessionID, func(jobs *models.SessionJobs) error {
		if err := jobs.SetIDForStage(stage, jobID); err != nil {
			return fmt.Errorf("%w: %s", ErrStageJobBound, err)
		}
		return nil
	})
	return err
}

// AppendClass2DJobID appends a Class2D batch job to the session's list.
func (s *SessionService) AppendClass2DJobID(ctx context.Context, sessionID, jobID string) error {
	_, err := s.UpdateJobs(ctx, sessionID, func(jobs *models.SessionJobs) error {
		jobs.Class2DIDs = append(jobs.Class2DIDs, jobID)
		return nil
	})
	return err
}

// AppendPassSnapshot appends one entry to the append-only pass history.
func (s *SessionService) AppendPassSnapshot(ctx context.Context, sessionID string, snap models.PassSnapshot) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	session, err := tx.PipelineSession.Query().
		Where(pipelinesession.ID(sessionID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to lock session: %w", err)
	}

	history := append(session.PassHistory, snap)
	if err := tx.PipelineSession.UpdateOneID(sessionID).
		SetPassHistory(history).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to append pass snapshot: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit pass snapshot: %w", err)
	}
	return nil
}

// DeleteSession removes a session row; job and activity rows cascade.
func (s *SessionService) DeleteSession(ctx context.Context, sessionID string) error {
	err := s.client.PipelineSession.DeleteOneID(sessionID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// SoftDeleteEndedBefore soft-deletes terminal sessions whose end_time is
// older than cutoff. Returns the number of sessions affected.
func (s *SessionService) SoftDeleteEndedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.PipelineSession.Update().
		Where(
			pipelinesession.StatusIn(pipelinesession.StatusStopped, pipelinesession.StatusCompleted),
			pipelinesession.EndTimeLT(cutoff),
			pipelinesession.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to soft-delete ended sessions: %w", err)
	}
	return n, nil
}
