// Package orchestrator drives the preprocessing pipeline: it reacts to
// watcher and cluster events, submits stages in order, and owns the
// per-session live registry that serializes pipeline passes.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/cryoflow/cryoflow/ent"
	"github.com/cryoflow/cryoflow/ent/pipelinesession"
	"github.com/cryoflow/cryoflow/pkg/cluster"
	"github.com/cryoflow/cryoflow/pkg/config"
	"github.com/cryoflow/cryoflow/pkg/events"
	"github.com/cryoflow/cryoflow/pkg/metrics"
	"github.com/cryoflow/cryoflow/pkg/models"
	"github.com/cryoflow/cryoflow/pkg/services"
	"github.com/cryoflow/cryoflow/pkg/watch"
)

// moviesLinkName is the symlink inside the project directory pointing at
// the session's watch directory. The downstream tools require input paths
// relative to the project root, so the import stage reads through it.
const moviesLinkName = "Movies"

// Publisher broadcasts live session updates. Implemented by
// events.EventPublisher; broadcast failures are never fatal.
type Publisher interface {
	PublishLiveSessionUpdate(ctx context.Context, payload events.LiveSessionUpdatePayload) error
}

// FileWatcher is the watcher surface the orchestrator consumes.
// Implemented by watch.Service.
type FileWatcher interface {
	Start(ctx context.Context, p watch.StartParams) error
	Stop(sessionID string)
	StopAll()
	Active(sessionID string) bool
	FileCount(sessionID string) int
	Events() <-chan watch.Event
}

// Orchestrator is the pipeline state machine. One instance per process; all
// session registry state is owned here.
type Orchestrator struct {
	cfg      *config.OrchestratorConfig
	slurmCfg *config.SlurmConfig

	sessions  *services.SessionService
	jobs      *services.JobService
	activity  *services.ActivityService
	projects  *services.ProjectService
	watcher   FileWatcher
	driver    cluster.Driver
	publisher Publisher

	registry *liveRegistry

	wg sync.WaitGroup
}

// New creates the orchestrator. The caller wires the same driver and
// watcher instances it runs elsewhere; the orchestrator only consumes their
// event streams.
func New(
	cfg *config.OrchestratorConfig,
	slurmCfg *config.SlurmConfig,
	sessions *services.SessionService,
	jobs *services.JobService,
	activity *services.ActivityService,
	projects *services.ProjectService,
	watcher FileWatcher,
	driver cluster.Driver,
	publisher Publisher,
) *Orchestrator {
	return &Orchestrator{
		cfg:       cfg,
		slurmCfg:  slurmCfg,
		sessions:  sessions,
		jobs:      jobs,
		activity:  activity,
		projects:  projects,
		watcher:   watcher,
		driver:    driver,
		publisher: publisher,
		registry:  newLiveRegistry(),
	}
}

// Run consumes watcher and cluster events until ctx is cancelled. Events
// are handled in arrival order; per-session serialization is enforced by
// the busy flag, not by this loop.
func (o *Orchestrator) Run(ctx context.Context) {
	slog.Info("Orchestrator event loop started")
	for {
		select {
		case <-ctx.Done():
			slog.Info("Orchestrator event loop stopping")
			o.wg.Wait()
			return
		case ev, ok := <-o.watcher.Events():
			if !ok {
				return
			}
			switch ev.Type {
			case watch.FilesAdded:
				o.handleFilesAdded(ctx, ev)
			case watch.NoFiles:
				o.handleNoFiles(ctx, ev)
			}
		case ev, ok := <-o.driver.Events():
			if !ok {
				return
			}
			o.handleStatusChange(ctx, ev)
		}
	}
}

// Start begins (or restarts) processing for a session. It returns after the
// session is persisted as running and the watcher is live; the first
// pipeline pass is driven by watcher events.
func (o *Orchestrator) Start(ctx context.Context, sessionID string) error {
	sess, err := o.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if sess.Status == pipelinesession.StatusStopped || sess.Status == pipelinesession.StatusCompleted {
		return services.NewValidationError("status", fmt.Sprintf("cannot start a %s session", sess.Status))
	}

	proj, err := o.projects.GetProject(ctx, sess.ProjectID)
	if err != nil {
		return err
	}
	if err := o.ensureMoviesLink(proj.Path, sess.WatchDirectory); err != nil {
		return fmt.Errorf("failed to link watch directory into project: %w", err)
	}

	if err := o.sessions.MarkStarted(ctx, sessionID); err != nil {
		return err
	}
	if _, err := o.sessions.UpdateState(ctx, sessionID, func(st *models.SessionState) error {
		st.CurrentStage = "starting"
		return nil
	}); err != nil {
		return err
	}

	o.registry.register(sessionID)

	if err := o.watcher.Start(ctx, watch.StartParams{
		SessionID: sessionID,
		Directory: sess.WatchDirectory,
		Pattern:   sess.FilePattern,
		InputMode: models.InputMode(sess.InputMode),
	}); err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	o.logActivity(ctx, sess.ProjectID, sessionID, models.Activity{
		Event:   "session_started",
		Message: fmt.Sprintf("session %s started, watching %s", sess.SessionName, sess.WatchDirectory),
		Level:   models.LevelInfo,
	})
	return nil
}

// Pause stops pipeline advancement without cancelling in-flight cluster
// jobs. A second Pause on an already-paused session is a no-op.
func (o *Orchestrator) Pause(ctx context.Context, sessionID string) error {
	sess, err := o.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if sess.Status == pipelinesession.StatusPaused {
		return nil
	}
	if sess.Status != pipelinesession.StatusRunning {
		return services.NewValidationError("status", fmt.Sprintf("cannot pause a %s session", sess.Status))
	}

	if err := o.sessions.UpdateStatus(ctx, sessionID, pipelinesession.StatusPaused); err != nil {
		return err
	}
	o.registry.setRunning(sessionID, false)

	o.logActivity(ctx, sess.ProjectID, sessionID, models.Activity{
		Event:   "session_paused",
		Message: "session paused; in-flight cluster jobs continue",
		Level:   models.LevelInfo,
	})
	return nil
}

// Resume restarts a paused session. When the pause was caused by a stage
// failure, the recorded resume_from stage is resubmitted directly instead
// of a full pass from import.
func (o *Orchestrator) Resume(ctx context.Context, sessionID string) error {
	sess, err := o.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if sess.Status != pipelinesession.StatusPaused {
		return services.NewValidationError("status", fmt.Sprintf("cannot resume a %s session", sess.Status))
	}

	if err := o.sessions.UpdateStatus(ctx, sessionID, pipelinesession.StatusRunning); err != nil {
		return err
	}
	if !o.registry.registered(sessionID) {
		o.registry.register(sessionID)
	} else {
		o.registry.setRunning(sessionID, true)
		o.registry.releaseBusy(sessionID)
	}

	if models.InputMode(sess.InputMode) == models.InputModeWatch && !o.watcher.Active(sessionID) {
		if err := o.watcher.Start(ctx, watch.StartParams{
			SessionID: sessionID,
			Directory: sess.WatchDirectory,
			Pattern:   sess.FilePattern,
			InputMode: models.InputModeWatch,
		}); err != nil {
			slog.Error("Failed to restart watcher on resume", "session_id", sessionID, "error", err)
		}
	}

	o.logActivity(ctx, sess.ProjectID, sessionID, models.Activity{
		Event:   "session_resumed",
		Message: "session resumed",
		Level:   models.LevelInfo,
	})

	if sess.State.ResumeFrom != "" {
		o.resumeFromStage(ctx, sessionID, sess.State.ResumeFrom)
		return nil
	}
	o.runPipelinePass(ctx, sessionID)
	return nil
}

// resumeFromStage resubmits the recorded failure stage. resume_from is
// cleared only after the submit succeeded, so a failed resubmission leaves
// the session resumable at the same stage.
func (o *Orchestrator) resumeFromStage(ctx context.Context, sessionID string, from models.StageKey) {
	if !o.registry.tryAcquireBusy(sessionID) {
		o.registry.setPendingRerun(sessionID, true)
		return
	}
	outcome := o.submitStage(ctx, sessionID, from)
	switch outcome {
	case outcomeInFlight:
		if _, err := o.sessions.UpdateState(ctx, sessionID, func(st *models.SessionState) error {
			st.ResumeFrom = ""
			return nil
		}); err != nil {
			slog.Error("Failed to clear resume_from", "session_id", sessionID, "error", err)
		}
	case outcomePassDone:
		o.onPassComplete(ctx, sessionID)
	default:
		o.registry.releaseBusy(sessionID)
	}
}

// Stop hard-stops a session: the watcher is cancelled, every live cluster
// job is cancelled and marked, the project symlink is removed, and the
// session reaches the terminal stopped status.
func (o *Orchestrator) Stop(ctx context.Context, sessionID string) error {
	sess, err := o.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if sess.Status == pipelinesession.StatusStopped || sess.Status == pipelinesession.StatusCompleted {
		return nil
	}

	o.watcher.Stop(sessionID)
	o.registry.remove(sessionID)

	cancelled := o.cancelLiveJobs(ctx, sessionID)

	if proj, err := o.projects.GetProject(ctx, sess.ProjectID); err == nil {
		if err := os.Remove(filepath.Join(proj.Path, moviesLinkName)); err != nil && !os.IsNotExist(err) {
			slog.Warn("Failed to remove project symlink", "session_id", sessionID, "error", err)
		}
	}

	if err := o.sessions.MarkEnded(ctx, sessionID, pipelinesession.StatusStopped); err != nil {
		return err
	}

	st := sess.State
	o.logActivity(ctx, sess.ProjectID, sessionID, models.Activity{
		Event:   "session_stopped",
		Message: fmt.Sprintf("session stopped; %d jobs cancelled", len(cancelled)),
		Level:   models.LevelInfo,
		Context: map[string]any{
			"movies_found":        st.MoviesFound,
			"movies_imported":     st.MoviesImported,
			"movies_motion":       st.MoviesMotion,
			"movies_ctf":          st.MoviesCtf,
			"movies_picked":       st.MoviesPicked,
			"particles_extracted": st.ParticlesExtracted,
			"cancelled_jobs":      cancelled,
		},
	})
	return nil
}

// cancelLiveJobs cancels every pending/running job of the session on the
// cluster (best-effort) and marks the records cancelled. Returns the job
// names affected.
func (o *Orchestrator) cancelLiveJobs(ctx context.Context, sessionID string) []string {
	active, err := o.jobs.ListActiveBySession(ctx, sessionID)
	if err != nil {
		slog.Error("Failed to list active jobs for cancellation", "session_id", sessionID, "error", err)
		return nil
	}

	var cancelled []string
	for _, job := range active {
		if job.ClusterJobID != nil {
			if err := o.driver.Cancel(ctx, *job.ClusterJobID); err != nil {
				slog.Warn("Cluster cancel failed", "job_name", job.JobName, "error", err)
			}
		}
		if err := o.jobs.MarkCancelled(ctx, job.ID); err != nil {
			slog.Error("Failed to mark job cancelled", "job_name", job.JobName, "error", err)
			continue
		}
		cancelled = append(cancelled, job.JobName)
	}
	return cancelled
}

// ResumeRunningAfterRestart recovers sessions the previous process left in
// status running. Jobs orphaned by the crash are cancelled, then the
// session is started again; sessions that fail to start are demoted to
// paused with resume_from=import so the operator can retry.
func (o *Orchestrator) ResumeRunningAfterRestart(ctx context.Context) error {
	running, err := o.sessions.ListByStatus(ctx, pipelinesession.StatusRunning)
	if err != nil {
		return fmt.Errorf("failed to list running sessions for recovery: %w", err)
	}

	for _, sess := range running {
		slog.Info("Recovering session after restart", "session_id", sess.ID, "session_name", sess.SessionName)
		o.cancelLiveJobs(ctx, sess.ID)

		if err := o.Start(ctx, sess.ID); err != nil {
			slog.Error("Recovery start failed; demoting to paused",
				"session_id", sess.ID, "error", err)
			if err := o.sessions.UpdateStatus(ctx, sess.ID, pipelinesession.StatusPaused); err != nil {
				slog.Error("Failed to demote session", "session_id", sess.ID, "error", err)
				continue
			}
			if _, err := o.sessions.UpdateState(ctx, sess.ID, func(st *models.SessionState) error {
				st.ResumeFrom = models.StageImport
				return nil
			}); err != nil {
				slog.Error("Failed to record recovery resume point", "session_id", sess.ID, "error", err)
			}
		}
	}
	return nil
}

// Shutdown releases the watcher. In-flight cluster jobs are left running;
// ResumeRunningAfterRestart reconciles them on the next boot.
func (o *Orchestrator) Shutdown() {
	o.watcher.StopAll()
}

// handleFilesAdded raises movies_found with MAX semantics and triggers a
// pipeline pass (which may queue as pendingRerun when one is in flight).
func (o *Orchestrator) handleFilesAdded(ctx context.Context, ev watch.Event) {
	if !o.registry.isRunning(ev.SessionID) {
		return
	}

	if _, err := o.sessions.RaiseMoviesFound(ctx, ev.SessionID, ev.Count); err != nil {
		slog.Error("Failed to raise movies_found", "session_id", ev.SessionID, "error", err)
		return
	}
	metrics.WatchedFiles.WithLabelValues(ev.SessionID).Set(float64(ev.Count))

	sess, err := o.sessions.GetSession(ctx, ev.SessionID)
	if err != nil {
		slog.Error("Failed to load session for files-added", "session_id", ev.SessionID, "error", err)
		return
	}

	sample := ev.Files
	if len(sample) > 3 {
		sample = sample[:3]
	}
	o.logActivity(ctx, sess.ProjectID, ev.SessionID, models.Activity{
		Event:   "new_files",
		Message: fmt.Sprintf("%d new files detected (%d total)", len(ev.Files), ev.Count),
		Level:   models.LevelInfo,
		Context: map[string]any{
			"count":  ev.Count,
			"added":  len(ev.Files),
			"sample": sample,
		},
	})

	o.runPipelinePass(ctx, ev.SessionID)
}

// handleNoFiles completes an existing-mode session whose directory had
// nothing to process.
func (o *Orchestrator) handleNoFiles(ctx context.Context, ev watch.Event) {
	sess, err := o.sessions.GetSession(ctx, ev.SessionID)
	if err != nil {
		slog.Error("Failed to load session for no-files", "session_id", ev.SessionID, "error", err)
		return
	}

	o.logActivity(ctx, sess.ProjectID, ev.SessionID, models.Activity{
		Event:   "no_files",
		Message: fmt.Sprintf("no matching files in %s", ev.Directory),
		Level:   models.LevelWarning,
	})
	o.completeSession(ctx, sess.ProjectID, ev.SessionID)
}

// completeSession moves a session to the terminal completed status and
// releases its live resources.
func (o *Orchestrator) completeSession(ctx context.Context, projectID, sessionID string) {
	o.watcher.Stop(sessionID)
	o.registry.remove(sessionID)
	if err := o.sessions.MarkEnded(ctx, sessionID, pipelinesession.StatusCompleted); err != nil {
		slog.Error("Failed to complete session", "session_id", sessionID, "error", err)
		return
	}
	o.logActivity(ctx, projectID, sessionID, models.Activity{
		Event:   "session_completed",
		Message: "pipeline caught up with all input; session completed",
		Level:   models.LevelSuccess,
	})
}

// ensureMoviesLink creates the Movies symlink inside the project directory.
// An existing link pointing at the same target is accepted so restart
// recovery can re-run Start.
func (o *Orchestrator) ensureMoviesLink(projectPath, watchDir string) error {
	linkPath := filepath.Join(projectPath, moviesLinkName)
	if target, err := os.Readlink(linkPath); err == nil {
		if target == watchDir {
			return nil
		}
		return fmt.Errorf("%s already links to %s", linkPath, target)
	}
	return os.Symlink(watchDir, linkPath)
}

// logActivity appends an activity entry and broadcasts it as a
// live_session_update. Broadcast failures are logged and swallowed.
func (o *Orchestrator) logActivity(ctx context.Context, projectID, sessionID string, a models.Activity) {
	if a.Level == "" {
		a.Level = models.LevelInfo
	}
	if _, err := o.activity.Append(ctx, sessionID, a); err != nil {
		slog.Error("Failed to append activity", "session_id", sessionID, "event", a.Event, "error", err)
	}

	data := map[string]any{"message": a.Message}
	if a.Stage != "" {
		data["stage"] = string(a.Stage)
	}
	if a.JobName != "" {
		data["job_name"] = a.JobName
	}
	if a.PassNumber > 0 {
		data["pass_number"] = a.PassNumber
	}
	for k, v := range a.Context {
		data[k] = v
	}
	payload := events.NewLiveSessionUpdate(projectID, sessionID, a.Event, a.Level, data)
	if err := o.publisher.PublishLiveSessionUpdate(ctx, payload); err != nil {
		slog.Debug("Broadcast failed", "session_id", sessionID, "event", a.Event, "error", err)
	}
}

// loadSessionIfActive fetches the session and reports whether it is still
// in a state where pipeline events matter.
func (o *Orchestrator) loadSessionIfActive(ctx context.Context, sessionID string) (*ent.PipelineSession, bool) {
	sess, err := o.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, false
	}
	if sess.Status != pipelinesession.StatusRunning && sess.Status != pipelinesession.StatusPaused {
		return nil, false
	}
	return sess, true
}
