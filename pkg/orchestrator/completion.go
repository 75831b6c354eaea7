package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/cryoflow/cryoflow/ent"
	"github.com/cryoflow/cryoflow/ent/pipelinejob"
	"github.com/cryoflow/cryoflow/ent/pipelinesession"
	"github.com/cryoflow/cryoflow/pkg/cluster"
	"github.com/cryoflow/cryoflow/pkg/fsutil"
	"github.com/cryoflow/cryoflow/pkg/metrics"
	"github.com/cryoflow/cryoflow/pkg/models"
	"github.com/cryoflow/cryoflow/pkg/services"
	"github.com/cryoflow/cryoflow/pkg/stage"
)

// handleStatusChange reacts to terminal cluster transitions. Non-terminal
// transitions and cancellations are not stage completions and are ignored.
func (o *Orchestrator) handleStatusChange(ctx context.Context, ev cluster.StatusChange) {
	if ev.NewStatus != cluster.StatusSuccess && ev.NewStatus != cluster.StatusFailed {
		return
	}

	job, err := o.jobs.GetJob(ctx, ev.JobID)
	if err != nil {
		slog.Warn("Status change for unknown job", "job_id", ev.JobID, "error", err)
		return
	}
	sess, ok := o.loadSessionIfActive(ctx, job.SessionID)
	if !ok {
		return
	}
	stageKey, ok := sess.Jobs.StageForJobID(ev.JobID)
	if !ok {
		return
	}
	proj, err := o.projects.GetProject(ctx, sess.ProjectID)
	if err != nil {
		slog.Error("Failed to load project for completion", "session_id", sess.ID, "error", err)
		return
	}

	if stageKey == models.StageClass2D {
		o.handleClass2DComplete(ctx, sess, proj, job, ev.NewStatus)
		return
	}

	if ev.NewStatus == cluster.StatusFailed {
		metrics.StageFailures.WithLabelValues(string(stageKey)).Inc()
		if err := o.jobs.MarkCompleted(ctx, job.ID, pipelinejob.StatusFailed, "cluster job failed", nil); err != nil {
			slog.Error("Failed to mark job failed", "job_name", job.JobName, "error", err)
		}
		o.handleStageError(ctx, sess.ProjectID, sess.ID, stageKey, job, proj.Path, "cluster job failed")
		o.registry.releaseBusy(sess.ID)
		return
	}

	stats := harvestStats(proj.Path, job, stageKey)
	if err := o.jobs.MarkCompleted(ctx, job.ID, pipelinejob.StatusSuccess, "", stats); err != nil {
		slog.Error("Failed to mark job succeeded", "job_name", job.JobName, "error", err)
	}
	o.applyCounters(ctx, sess.ID, stageKey, stats)

	o.logActivity(ctx, sess.ProjectID, sess.ID, models.Activity{
		Event:      "stage_complete",
		Message:    fmt.Sprintf("%s finished as %s", stageKey, job.JobName),
		Level:      models.LevelSuccess,
		Stage:      stageKey,
		JobName:    job.JobName,
		PassNumber: sess.State.PassCount,
		Context:    completionContext(job, stats),
	})

	if sess.Status == pipelinesession.StatusPaused {
		next := models.NextStage(stageKey)
		if _, err := o.sessions.UpdateState(ctx, sess.ID, func(st *models.SessionState) error {
			if next != "" {
				st.ResumeFrom = next
			}
			st.CurrentStage = "paused_after_" + string(stageKey)
			return nil
		}); err != nil {
			slog.Error("Failed to record pause point", "session_id", sess.ID, "error", err)
		}
		o.registry.releaseBusy(sess.ID)
		return
	}

	next := models.NextStage(stageKey)
	if next == "" {
		o.onPassComplete(ctx, sess.ID)
		return
	}
	switch o.submitStage(ctx, sess.ID, next) {
	case outcomeInFlight:
	case outcomePassDone:
		o.onPassComplete(ctx, sess.ID)
	default:
		o.registry.releaseBusy(sess.ID)
	}
}

// handleClass2DComplete finishes one classification batch. Completion
// evaluation is serialized per session so two batches finishing together
// cannot both decide the session is done.
func (o *Orchestrator) handleClass2DComplete(
	ctx context.Context,
	sess *ent.PipelineSession,
	proj *ent.Project,
	job *ent.PipelineJob,
	status cluster.Status,
) {
	unlock := o.registry.lockEval(sess.ID)
	if unlock != nil {
		defer unlock()
	}

	if status == cluster.StatusFailed {
		metrics.StageFailures.WithLabelValues(string(models.StageClass2D)).Inc()
		if err := o.jobs.MarkCompleted(ctx, job.ID, pipelinejob.StatusFailed, "cluster job failed", nil); err != nil {
			slog.Error("Failed to mark class2d job failed", "job_name", job.JobName, "error", err)
		}
		o.logActivity(ctx, sess.ProjectID, sess.ID, models.Activity{
			Event:   "error",
			Message: fmt.Sprintf("2D classification %s failed", job.JobName),
			Level:   models.LevelError,
			Stage:   models.StageClass2D,
			JobName: job.JobName,
		})
	} else {
		stats := harvestStats(proj.Path, job, models.StageClass2D)
		if stats != nil {
			stats.ClassCount = sess.Class2dConfig.ClassCount
		}
		if err := o.jobs.MarkCompleted(ctx, job.ID, pipelinejob.StatusSuccess, "", stats); err != nil {
			slog.Error("Failed to mark class2d job succeeded", "job_name", job.JobName, "error", err)
		}
		o.logActivity(ctx, sess.ProjectID, sess.ID, models.Activity{
			Event:   "stage_complete",
			Message: fmt.Sprintf("2D classification %s finished", job.JobName),
			Level:   models.LevelSuccess,
			Stage:   models.StageClass2D,
			JobName: job.JobName,
			Context: completionContext(job, stats),
		})
	}

	if models.InputMode(sess.InputMode) != models.InputModeExisting {
		return
	}
	if o.registry.isBusy(sess.ID) {
		return
	}
	live, err := o.jobs.CountActiveClass2D(ctx, sess.ID)
	if err != nil {
		slog.Error("Failed to count live class2d jobs", "session_id", sess.ID, "error", err)
		return
	}
	if live == 0 {
		o.completeSession(ctx, sess.ProjectID, sess.ID)
	}
}

// onPassComplete runs the end-of-pass ladder: snapshot, Class2D trigger,
// queued rerun, count-mismatch rerun, existing-mode completion. It owns the
// busy flag on entry and releases it first so a follow-up pass can start.
func (o *Orchestrator) onPassComplete(ctx context.Context, sessionID string) {
	o.registry.releaseBusy(sessionID)

	sess, ok := o.loadSessionIfActive(ctx, sessionID)
	if !ok {
		return
	}
	st := sess.State

	o.logActivity(ctx, sess.ProjectID, sessionID, models.Activity{
		Event:      "pipeline_complete",
		Message:    fmt.Sprintf("pass %d complete", st.PassCount),
		Level:      models.LevelSuccess,
		PassNumber: st.PassCount,
		Context: map[string]any{
			"movies_found":        st.MoviesFound,
			"movies_imported":     st.MoviesImported,
			"particles_extracted": st.ParticlesExtracted,
		},
	})
	if err := o.sessions.AppendPassSnapshot(ctx, sessionID, models.PassSnapshot{
		PassNumber:         st.PassCount,
		CompletedAt:        time.Now(),
		MoviesFound:        st.MoviesFound,
		MoviesImported:     st.MoviesImported,
		MoviesMotion:       st.MoviesMotion,
		MoviesCtf:          st.MoviesCtf,
		MoviesPicked:       st.MoviesPicked,
		ParticlesExtracted: st.ParticlesExtracted,
	}); err != nil {
		slog.Error("Failed to append pass snapshot", "session_id", sessionID, "error", err)
	}

	class2dSubmitted := false
	if sess.Class2dConfig.Enabled {
		class2dSubmitted = o.maybeSubmitClass2D(ctx, sess)
	}

	sess, ok = o.loadSessionIfActive(ctx, sessionID)
	if !ok {
		return
	}
	st = sess.State

	if o.registry.takePendingRerun(sessionID) && st.MoviesFound > st.MoviesImported {
		o.runPipelinePass(ctx, sessionID)
		return
	}

	if st.MoviesImported > 0 && st.MoviesMotion < st.MoviesImported {
		o.logActivity(ctx, sess.ProjectID, sessionID, models.Activity{
			Event:      "pipeline_rerun",
			Message:    fmt.Sprintf("motion correction processed %d of %d imported movies; re-running", st.MoviesMotion, st.MoviesImported),
			Level:      models.LevelInfo,
			PassNumber: st.PassCount,
			Context:    map[string]any{"gap": st.MoviesImported - st.MoviesMotion},
		})
		o.runPipelinePass(ctx, sessionID)
		return
	}

	if models.InputMode(sess.InputMode) == models.InputModeExisting && !class2dSubmitted {
		live, err := o.jobs.CountActiveClass2D(ctx, sessionID)
		if err != nil {
			slog.Error("Failed to count live class2d jobs", "session_id", sessionID, "error", err)
			return
		}
		if live == 0 {
			o.completeSession(ctx, sess.ProjectID, sessionID)
		}
	}
}

// maybeSubmitClass2D evaluates the batch trigger and submits one
// classification job when it fires. Each firing is a fresh job record;
// classification batches are never re-run into the same directory.
func (o *Orchestrator) maybeSubmitClass2D(ctx context.Context, sess *ent.PipelineSession) bool {
	st := sess.State
	cfg := sess.Class2dConfig
	if st.ParticlesExtracted < cfg.ParticleThreshold {
		return false
	}
	if st.LastBatch2D != nil && time.Since(*st.LastBatch2D) <= cfg.BatchInterval {
		return false
	}

	proj, err := o.projects.GetProject(ctx, sess.ProjectID)
	if err != nil {
		slog.Error("Failed to load project for class2d", "session_id", sess.ID, "error", err)
		return false
	}
	prevNames, err := o.stageJobNames(ctx, sess)
	if err != nil {
		slog.Error("Failed to resolve upstream jobs for class2d", "session_id", sess.ID, "error", err)
		return false
	}

	builder, err := stage.New(models.StageClass2D, buildConfig(sess, prevNames))
	if err != nil {
		slog.Error("Failed to construct class2d builder", "session_id", sess.ID, "error", err)
		return false
	}
	if err := builder.Validate(); err != nil {
		o.logActivity(ctx, sess.ProjectID, sess.ID, models.Activity{
			Event:   "stage_skipped",
			Message: fmt.Sprintf("class2d skipped: %s", err),
			Level:   models.LevelWarning,
			Stage:   models.StageClass2D,
		})
		return false
	}

	jobName, err := o.jobs.NextJobName(ctx, sess.ProjectID)
	if err != nil {
		slog.Error("Failed to allocate class2d job name", "session_id", sess.ID, "error", err)
		return false
	}
	outputDir := builder.OutputDir(jobName)
	command := builder.BuildCommand(outputDir)

	inputIDs, err := o.jobs.ResolveInputJobIDs(ctx, sess.ProjectID, builder.InputJobNames())
	if err != nil {
		slog.Error("Failed to resolve class2d inputs", "session_id", sess.ID, "error", err)
		return false
	}

	job, err := o.jobs.CreateJob(ctx, services.CreateJobParams{
		SessionID:      sess.ID,
		ProjectID:      sess.ProjectID,
		UserID:         sess.UserID,
		JobName:        jobName,
		JobType:        models.StageClass2D,
		OutputFilePath: builder.OutputFile(jobName),
		Command:        command,
		Parameters:     jobParameters(sess, models.StageClass2D),
		InputJobIDs:    inputIDs,
	})
	if err != nil {
		slog.Error("Failed to create class2d job", "session_id", sess.ID, "error", err)
		return false
	}
	if err := o.sessions.AppendClass2DJobID(ctx, sess.ID, job.ID); err != nil {
		slog.Error("Failed to record class2d job", "session_id", sess.ID, "error", err)
		return false
	}
	if err := os.MkdirAll(filepath.Join(proj.Path, outputDir), 0o755); err != nil {
		slog.Error("Failed to create class2d output directory", "session_id", sess.ID, "error", err)
		return false
	}

	params := stage.DeriveClusterParams(builder, sess.SlurmConfig, o.slurmCfg.DefaultPartition)
	result, err := o.driver.Submit(ctx, cluster.SubmitRequest{
		JobID:       job.ID,
		JobName:     job.JobName,
		Stage:       models.StageClass2D,
		ProjectID:   sess.ProjectID,
		ProjectPath: proj.Path,
		OutputDir:   outputDir,
		Command:     command,
		PostCommand: builder.PostCommand(outputDir),
		Params:      params,
	})
	if err != nil {
		if markErr := o.jobs.MarkCompleted(ctx, job.ID, pipelinejob.StatusFailed, err.Error(), nil); markErr != nil {
			slog.Error("Failed to mark class2d job failed", "job_name", job.JobName, "error", markErr)
		}
		o.logActivity(ctx, sess.ProjectID, sess.ID, models.Activity{
			Event:   "error",
			Message: fmt.Sprintf("cluster rejected class2d job %s: %s", job.JobName, err),
			Level:   models.LevelError,
			Stage:   models.StageClass2D,
			JobName: job.JobName,
		})
		return false
	}
	if err := o.jobs.MarkSubmitted(ctx, job.ID, result.ClusterJobID); err != nil {
		slog.Error("Failed to mark class2d job submitted", "job_name", job.JobName, "error", err)
	}
	metrics.StagesSubmitted.WithLabelValues(string(models.StageClass2D)).Inc()

	if _, err := o.sessions.UpdateState(ctx, sess.ID, func(st *models.SessionState) error {
		now := time.Now()
		st.LastBatch2D = &now
		return nil
	}); err != nil {
		slog.Error("Failed to stamp class2d batch time", "session_id", sess.ID, "error", err)
	}

	o.logActivity(ctx, sess.ProjectID, sess.ID, models.Activity{
		Event:   "stage_submitted",
		Message: fmt.Sprintf("2D classification batch submitted as %s (%d particles)", job.JobName, st.ParticlesExtracted),
		Level:   models.LevelInfo,
		Stage:   models.StageClass2D,
		JobName: job.JobName,
		Context: map[string]any{
			"command_preview": previewCommand(command, o.cfg.CommandPreviewLength),
			"cluster_job_id":  result.ClusterJobID,
			"particles":       st.ParticlesExtracted,
		},
	})
	return true
}

// applyCounters maps a completed stage's harvested stats into the session
// counters. movies_found is owned by the watcher path and never written
// here.
func (o *Orchestrator) applyCounters(ctx context.Context, sessionID string, k models.StageKey, stats *models.PipelineStats) {
	if stats == nil {
		return
	}
	if _, err := o.sessions.UpdateState(ctx, sessionID, func(st *models.SessionState) error {
		switch k {
		case models.StageImport:
			st.MoviesImported = stats.MicrographCount
		case models.StageMotion:
			st.MoviesMotion = stats.MicrographCount
		case models.StageCtf:
			st.MoviesCtf = stats.MicrographCount
		case models.StagePick:
			st.MoviesPicked = stats.MicrographCount
		case models.StageExtract:
			st.ParticlesExtracted = stats.ParticleCount
		}
		return nil
	}); err != nil {
		slog.Error("Failed to apply stage counters", "session_id", sessionID, "stage", k, "error", err)
	}
}

// harvestStats counts result rows in the job's output STAR file. A missing
// or empty file yields nil; the counters then simply keep their previous
// values.
func harvestStats(projectPath string, job *ent.PipelineJob, k models.StageKey) *models.PipelineStats {
	if job.OutputFilePath == "" {
		return nil
	}
	n, err := fsutil.CountStarDataRows(filepath.Join(projectPath, job.OutputFilePath))
	if err != nil || n == 0 {
		return nil
	}
	switch k {
	case models.StageExtract, models.StageClass2D:
		return &models.PipelineStats{ParticleCount: n}
	default:
		return &models.PipelineStats{MicrographCount: n}
	}
}

// completionContext builds the stage_complete activity context.
func completionContext(job *ent.PipelineJob, stats *models.PipelineStats) map[string]any {
	c := map[string]any{}
	if job.StartTime != nil {
		c["duration_seconds"] = int(time.Since(*job.StartTime).Seconds())
	}
	if stats != nil {
		if stats.MicrographCount > 0 {
			c["micrograph_count"] = stats.MicrographCount
		}
		if stats.ParticleCount > 0 {
			c["particle_count"] = stats.ParticleCount
		}
	}
	return c
}
