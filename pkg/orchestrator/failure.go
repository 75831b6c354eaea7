package orchestrator

import (
	"context"
	"log/slog"
	"path"
	"time"

	"github.com/cryoflow/cryoflow/ent"
	"github.com/cryoflow/cryoflow/ent/pipelinesession"
	"github.com/cryoflow/cryoflow/pkg/cluster"
	"github.com/cryoflow/cryoflow/pkg/fsutil"
	"github.com/cryoflow/cryoflow/pkg/models"
)

// handleStageError pauses the session for operator action and records an
// error activity enriched with the scheduler's view of the job and bounded
// tails of its captured output. Failed stages are never retried
// automatically; the recorded resume_from stage is resubmitted on Resume.
func (o *Orchestrator) handleStageError(
	ctx context.Context,
	projectID, sessionID string,
	stageKey models.StageKey,
	job *ent.PipelineJob,
	projectPath string,
	reason string,
) {
	if err := o.sessions.UpdateStatus(ctx, sessionID, pipelinesession.StatusPaused); err != nil {
		slog.Error("Failed to pause session after stage error", "session_id", sessionID, "error", err)
	}
	o.registry.setRunning(sessionID, false)

	if _, err := o.sessions.UpdateState(ctx, sessionID, func(st *models.SessionState) error {
		st.CurrentStage = string(stageKey) + "_error"
		st.ResumeFrom = stageKey
		return nil
	}); err != nil {
		slog.Error("Failed to record error stage", "session_id", sessionID, "error", err)
	}

	errCtx := map[string]any{"reason": reason}
	if job.ClusterJobID != nil {
		if details, err := o.driver.JobDetails(ctx, *job.ClusterJobID); err == nil {
			errCtx["cluster_state"] = details.State
			errCtx["exit_code"] = details.ExitCode
			errCtx["elapsed"] = details.Elapsed
		}
	}
	if job.StartTime != nil {
		errCtx["duration_seconds"] = int(time.Since(*job.StartTime).Seconds())
	}

	outputDir := path.Dir(job.OutputFilePath)
	if preview := o.stderrPreview(projectPath, outputDir); len(preview) > 0 {
		errCtx["stderr_preview"] = preview
	}
	if errs := o.relionErrors(projectPath, outputDir); len(errs) > 0 {
		errCtx["relion_errors"] = errs
	}

	o.logActivity(ctx, projectID, sessionID, models.Activity{
		Event:   "error",
		Message: string(stageKey) + " failed; session paused",
		Level:   models.LevelError,
		Stage:   stageKey,
		JobName: job.JobName,
		Context: errCtx,
	})
}

// stderrPreview returns the final lines of the job's captured stderr,
// reading at most the configured tail budget.
func (o *Orchestrator) stderrPreview(projectPath, outputDir string) []string {
	b, err := fsutil.TailBytes(cluster.StderrPath(projectPath, outputDir), o.cfg.StderrTailBytes)
	if err != nil {
		return nil
	}
	return fsutil.LastLines(b, o.cfg.StderrPreviewLines)
}

// relionErrors scans the tail of the job's captured stdout for diagnostic
// lines the downstream tool prints on the way down.
func (o *Orchestrator) relionErrors(projectPath, outputDir string) []string {
	b, err := fsutil.TailBytes(cluster.StdoutPath(projectPath, outputDir), o.cfg.StdoutTailBytes)
	if err != nil {
		return nil
	}
	return fsutil.ScanErrorLines(b, o.cfg.StdoutErrorLines)
}
