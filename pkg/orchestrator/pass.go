package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cryoflow/cryoflow/ent"
	"github.com/cryoflow/cryoflow/ent/pipelinejob"
	"github.com/cryoflow/cryoflow/pkg/cluster"
	"github.com/cryoflow/cryoflow/pkg/metrics"
	"github.com/cryoflow/cryoflow/pkg/models"
	"github.com/cryoflow/cryoflow/pkg/services"
	"github.com/cryoflow/cryoflow/pkg/stage"
)

// submitOutcome tells the caller who owns the busy flag after submitStage.
type submitOutcome int

const (
	// outcomeInFlight: a cluster job was submitted; busy stays held until
	// its completion event.
	outcomeInFlight submitOutcome = iota
	// outcomeAborted: the session is no longer running or a guard tripped;
	// the caller releases busy.
	outcomeAborted
	// outcomeSkipped: builder validation rejected the stage; the caller
	// releases busy.
	outcomeSkipped
	// outcomePassDone: every remaining stage was disabled; the caller runs
	// pass completion.
	outcomePassDone
	// outcomeFailed: submission failed and the stage-error handler paused
	// the session; the caller releases busy.
	outcomeFailed
)

// runPipelinePass starts one traversal of the enabled stages. When a pass
// is already in flight the request is queued as pendingRerun; at most one
// rerun is remembered.
func (o *Orchestrator) runPipelinePass(ctx context.Context, sessionID string) {
	if !o.registry.tryAcquireBusy(sessionID) {
		if o.registry.registered(sessionID) {
			o.registry.setPendingRerun(sessionID, true)
		}
		return
	}

	inFlight := false
	defer func() {
		if !inFlight {
			o.registry.releaseBusy(sessionID)
		}
	}()

	st, err := o.sessions.UpdateState(ctx, sessionID, func(st *models.SessionState) error {
		st.PassCount++
		st.MoviesAtPassStart = st.MoviesFound
		return nil
	})
	if err != nil {
		slog.Error("Failed to open pipeline pass", "session_id", sessionID, "error", err)
		return
	}
	metrics.PassesStarted.WithLabelValues(sessionID).Inc()
	slog.Info("Pipeline pass started",
		"session_id", sessionID, "pass", st.PassCount, "movies_found", st.MoviesFound)

	switch o.submitStage(ctx, sessionID, models.StageImport) {
	case outcomeInFlight:
		inFlight = true
	case outcomePassDone:
		inFlight = true // onPassComplete owns the release
		o.onPassComplete(ctx, sessionID)
	}
}

// submitStage submits one linear pipeline stage, walking past disabled
// stages. It never touches the busy flag; ownership is signalled through
// the outcome.
func (o *Orchestrator) submitStage(ctx context.Context, sessionID string, k models.StageKey) submitOutcome {
	sess, ok := o.loadSessionIfActive(ctx, sessionID)
	if !ok || !o.registry.isRunning(sessionID) {
		return outcomeAborted
	}

	for k != "" && !stageEnabled(sess, k) {
		k = models.NextStage(k)
	}
	if k == "" {
		return outcomePassDone
	}

	proj, err := o.projects.GetProject(ctx, sess.ProjectID)
	if err != nil {
		slog.Error("Failed to load project for stage submit", "session_id", sessionID, "error", err)
		return outcomeAborted
	}

	prevNames, err := o.stageJobNames(ctx, sess)
	if err != nil {
		slog.Error("Failed to resolve upstream job names", "session_id", sessionID, "error", err)
		return outcomeAborted
	}

	builder, err := stage.New(k, buildConfig(sess, prevNames))
	if err != nil {
		slog.Error("Failed to construct stage builder", "session_id", sessionID, "stage", k, "error", err)
		return outcomeAborted
	}
	if err := builder.Validate(); err != nil {
		o.logActivity(ctx, sess.ProjectID, sessionID, models.Activity{
			Event:      "stage_skipped",
			Message:    fmt.Sprintf("%s skipped: %s", k, err),
			Level:      models.LevelWarning,
			Stage:      k,
			PassNumber: sess.State.PassCount,
		})
		return outcomeSkipped
	}

	job, err := o.prepareStageJob(ctx, sess, proj, k, builder)
	if err != nil {
		o.logActivity(ctx, sess.ProjectID, sessionID, models.Activity{
			Event:   "error",
			Message: fmt.Sprintf("failed to prepare %s job: %s", k, err),
			Level:   models.LevelError,
			Stage:   k,
		})
		return outcomeAborted
	}

	params := stage.DeriveClusterParams(builder, sess.SlurmConfig, o.slurmCfg.DefaultPartition)
	outputDir := builder.OutputDir(job.JobName)
	command := builder.BuildCommand(outputDir)

	if _, err := o.sessions.UpdateState(ctx, sessionID, func(st *models.SessionState) error {
		st.CurrentStage = string(k)
		return nil
	}); err != nil {
		slog.Error("Failed to record current stage", "session_id", sessionID, "error", err)
	}

	result, err := o.driver.Submit(ctx, cluster.SubmitRequest{
		JobID:       job.ID,
		JobName:     job.JobName,
		Stage:       k,
		ProjectID:   sess.ProjectID,
		ProjectPath: proj.Path,
		OutputDir:   outputDir,
		Command:     command,
		PostCommand: builder.PostCommand(outputDir),
		Params:      params,
	})
	if err != nil {
		// The job must leave pending here, or the recorded resume_from stage
		// could never be resubmitted: prepareRerun refuses pending jobs.
		if markErr := o.jobs.MarkCompleted(ctx, job.ID, pipelinejob.StatusFailed, err.Error(), nil); markErr != nil {
			slog.Error("Failed to mark job failed", "job_name", job.JobName, "error", markErr)
		}
		metrics.StageFailures.WithLabelValues(string(k)).Inc()
		o.logActivity(ctx, sess.ProjectID, sessionID, models.Activity{
			Event:   "error",
			Message: fmt.Sprintf("cluster rejected %s job %s: %s", k, job.JobName, err),
			Level:   models.LevelError,
			Stage:   k,
			JobName: job.JobName,
		})
		o.handleStageError(ctx, sess.ProjectID, sessionID, k, job, proj.Path, err.Error())
		return outcomeFailed
	}

	if err := o.jobs.MarkSubmitted(ctx, job.ID, result.ClusterJobID); err != nil {
		slog.Error("Failed to mark job submitted", "job_name", job.JobName, "error", err)
	}
	metrics.StagesSubmitted.WithLabelValues(string(k)).Inc()

	o.logActivity(ctx, sess.ProjectID, sessionID, models.Activity{
		Event:      "stage_submitted",
		Message:    fmt.Sprintf("%s submitted as %s", k, job.JobName),
		Level:      models.LevelInfo,
		Stage:      k,
		JobName:    job.JobName,
		PassNumber: sess.State.PassCount,
		Context: map[string]any{
			"command_preview": previewCommand(command, o.cfg.CommandPreviewLength),
			"cluster_job_id":  result.ClusterJobID,
			"partition":       params.Partition,
			"mpi_procs":       params.MPIProcs,
			"threads":         params.Threads,
			"gpu_count":       params.GPUCount,
		},
	})
	return outcomeInFlight
}

// prepareStageJob implements the new-run / re-run split. Re-runs reuse the
// existing job id, name and output directory verbatim so the downstream
// tool's deduplication skips already-processed inputs.
func (o *Orchestrator) prepareStageJob(
	ctx context.Context,
	sess *ent.PipelineSession,
	proj *ent.Project,
	k models.StageKey,
	builder stage.Builder,
) (*ent.PipelineJob, error) {
	if existingID := sess.Jobs.IDForStage(k); existingID != "" {
		return o.prepareRerun(ctx, proj, k, builder, existingID)
	}

	jobName, err := o.jobs.NextJobName(ctx, sess.ProjectID)
	if err != nil {
		return nil, err
	}
	outputDir := builder.OutputDir(jobName)
	command := builder.BuildCommand(outputDir)

	inputIDs, err := o.jobs.ResolveInputJobIDs(ctx, sess.ProjectID, builder.InputJobNames())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve input jobs: %w", err)
	}

	job, err := o.jobs.CreateJob(ctx, services.CreateJobParams{
		SessionID:      sess.ID,
		ProjectID:      sess.ProjectID,
		UserID:         sess.UserID,
		JobName:        jobName,
		JobType:        k,
		OutputFilePath: builder.OutputFile(jobName),
		Command:        command,
		Parameters:     jobParameters(sess, k),
		InputJobIDs:    inputIDs,
	})
	if err != nil {
		return nil, err
	}
	if err := o.sessions.SetStageJobID(ctx, sess.ID, k, job.ID); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Join(proj.Path, outputDir), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return job, nil
}

// prepareRerun resets an existing stage job for another submission into
// the same output directory.
func (o *Orchestrator) prepareRerun(
	ctx context.Context,
	proj *ent.Project,
	k models.StageKey,
	builder stage.Builder,
	jobID string,
) (*ent.PipelineJob, error) {
	job, err := o.jobs.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status == pipelinejob.StatusPending || job.Status == pipelinejob.StatusRunning {
		return nil, fmt.Errorf("stage %s job %s is still %s", k, job.JobName, job.Status)
	}

	outputDir := builder.OutputDir(job.JobName)
	if err := os.MkdirAll(filepath.Join(proj.Path, outputDir), 0o755); err != nil {
		return nil, fmt.Errorf("failed to recreate output directory: %w", err)
	}

	// The previous terminal classification can be premature on schedulers
	// that requeue; cancelling a dead job is harmless.
	if job.ClusterJobID != nil {
		if err := o.driver.Cancel(ctx, *job.ClusterJobID); err != nil {
			slog.Debug("Pre-rerun cancel failed", "job_name", job.JobName, "error", err)
		}
	}

	command := builder.BuildCommand(outputDir)
	if err := o.jobs.ResetForRerun(ctx, jobID, command, job.Parameters); err != nil {
		return nil, err
	}
	return o.jobs.GetJob(ctx, jobID)
}

// stageEnabled reports whether a linear stage participates in the pass.
// Import is always on; everything downstream is an operator toggle.
func stageEnabled(sess *ent.PipelineSession, k models.StageKey) bool {
	switch k {
	case models.StageImport:
		return true
	case models.StageMotion:
		return sess.MotionConfig.Enabled
	case models.StageCtf:
		return sess.CtfConfig.Enabled
	case models.StagePick:
		return sess.PickingConfig.Enabled
	case models.StageExtract:
		return sess.ExtractionConfig.Enabled
	}
	return false
}

// stageJobNames maps each already-submitted stage to its job name for
// input chaining.
func (o *Orchestrator) stageJobNames(ctx context.Context, sess *ent.PipelineSession) (map[models.StageKey]string, error) {
	names := make(map[models.StageKey]string)
	for _, k := range models.PipelineOrder {
		id := sess.Jobs.IDForStage(k)
		if id == "" {
			continue
		}
		job, err := o.jobs.GetJob(ctx, id)
		if err != nil {
			return nil, err
		}
		names[k] = job.JobName
	}
	return names, nil
}

// buildConfig assembles the builder input from the session configuration.
func buildConfig(sess *ent.PipelineSession, prevNames map[models.StageKey]string) stage.BuildConfig {
	return stage.BuildConfig{
		Optics:       sess.Optics,
		Motion:       sess.MotionConfig,
		Ctf:          sess.CtfConfig,
		Picking:      sess.PickingConfig,
		Extraction:   sess.ExtractionConfig,
		Class2D:      sess.Class2dConfig,
		MoviesGlob:   moviesGlob(sess.FilePattern),
		PrevJobNames: prevNames,
	}
}

// moviesGlob renders the import input pattern through the project's Movies
// symlink. The stored pattern may be "*.tiff", ".tiff" or "tiff".
func moviesGlob(pattern string) string {
	switch {
	case strings.HasPrefix(pattern, "*"):
	case strings.HasPrefix(pattern, "."):
		pattern = "*" + pattern
	default:
		pattern = "*." + pattern
	}
	return moviesLinkName + "/" + pattern
}

// jobParameters is the config digest persisted on the job record.
func jobParameters(sess *ent.PipelineSession, k models.StageKey) map[string]any {
	return map[string]any{
		"stage":      string(k),
		"pixel_size": stage.EffectivePixelSize(k, sess.Optics, sess.MotionConfig, sess.ExtractionConfig),
	}
}

// previewCommand truncates the space-joined argv for activity entries.
func previewCommand(command []string, limit int) string {
	joined := strings.Join(command, " ")
	if len(joined) > limit {
		return joined[:limit]
	}
	return joined
}
