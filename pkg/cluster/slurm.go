package cluster

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/cryoflow/cryoflow/pkg/config"
)

// SlurmDriver submits jobs with sbatch and tracks them by polling sacct.
// It implements Driver.
type SlurmDriver struct {
	cfg    *config.SlurmConfig
	events chan StatusChange

	mu      sync.Mutex
	tracked map[string]*trackedJob // keyed by cluster job id
}

type trackedJob struct {
	jobID     string
	projectID string
	last      Status
}

// NewSlurmDriver creates a Slurm driver. Run must be called to start the
// polling loop.
func NewSlurmDriver(cfg *config.SlurmConfig) *SlurmDriver {
	return &SlurmDriver{
		cfg:     cfg,
		events:  make(chan StatusChange, 64),
		tracked: make(map[string]*trackedJob),
	}
}

// Events implements Driver.
func (d *SlurmDriver) Events() <-chan StatusChange {
	return d.events
}

// Submit implements Driver. It writes a batch script into the job's output
// directory and hands it to sbatch.
func (d *SlurmDriver) Submit(ctx context.Context, req SubmitRequest) (SubmitResult, error) {
	if len(req.Command) == 0 {
		return SubmitResult{}, fmt.Errorf("empty command for job %s", req.JobName)
	}

	outputDir := filepath.Join(req.ProjectPath, req.OutputDir)
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return SubmitResult{}, fmt.Errorf("create output directory: %w", err)
	}

	scriptPath := filepath.Join(outputDir, "run.sbatch")
	script := renderBatchScript(req)
	if err := os.WriteFile(scriptPath, []byte(script), 0o755); err != nil {
		return SubmitResult{}, fmt.Errorf("write batch script: %w", err)
	}

	submitCtx, cancel := context.WithTimeout(ctx, d.cfg.SubmitTimeout)
	defer cancel()

	cmd := exec.CommandContext(submitCtx, d.cfg.SbatchBin, "--parsable", scriptPath)
	cmd.Dir = req.ProjectPath
	out, err := cmd.CombinedOutput()
	if err != nil {
		return SubmitResult{}, fmt.Errorf("sbatch: %w: %s", err, strings.TrimSpace(string(out)))
	}

	// --parsable prints "jobid" or "jobid;cluster".
	clusterJobID := strings.TrimSpace(string(out))
	if idx := strings.IndexByte(clusterJobID, ';'); idx >= 0 {
		clusterJobID = clusterJobID[:idx]
	}
	if clusterJobID == "" {
		return SubmitResult{}, fmt.Errorf("sbatch returned no job id")
	}

	d.mu.Lock()
	d.tracked[clusterJobID] = &trackedJob{
		jobID:     req.JobID,
		projectID: req.ProjectID,
		last:      StatusPending,
	}
	d.mu.Unlock()

	slog.Info("Submitted cluster job",
		"job_name", req.JobName,
		"stage", req.Stage,
		"cluster_job_id", clusterJobID,
		"partition", req.Params.Partition)
	return SubmitResult{ClusterJobID: clusterJobID}, nil
}

// Cancel implements Driver.
func (d *SlurmDriver) Cancel(ctx context.Context, clusterJobID string) error {
	if clusterJobID == "" {
		return nil
	}
	cmd := exec.CommandContext(ctx, d.cfg.ScancelBin, clusterJobID)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("scancel %s: %w: %s", clusterJobID, err, strings.TrimSpace(string(out)))
	}
	d.mu.Lock()
	delete(d.tracked, clusterJobID)
	d.mu.Unlock()
	return nil
}

// JobDetails implements Driver.
func (d *SlurmDriver) JobDetails(ctx context.Context, clusterJobID string) (JobDetails, error) {
	out, err := d.sacct(ctx, clusterJobID)
	if err != nil {
		return JobDetails{}, err
	}
	rows := parseSacct(out)
	row, ok := rows[clusterJobID]
	if !ok {
		return JobDetails{}, fmt.Errorf("sacct has no record for job %s", clusterJobID)
	}
	return row, nil
}

// Run drives the polling loop until ctx is cancelled.
func (d *SlurmDriver) Run(ctx context.Context) {
	ticker := time.NewTicker(d.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.poll(ctx)
		}
	}
}

// poll queries sacct for all tracked jobs in one call and emits transitions.
func (d *SlurmDriver) poll(ctx context.Context) {
	d.mu.Lock()
	ids := make([]string, 0, len(d.tracked))
	for id := range d.tracked {
		ids = append(ids, id)
	}
	d.mu.Unlock()
	if len(ids) == 0 {
		return
	}

	out, err := d.sacct(ctx, strings.Join(ids, ","))
	if err != nil {
		slog.Warn("sacct poll failed", "error", err)
		return
	}
	rows := parseSacct(out)

	for id, row := range rows {
		status := mapSlurmState(row.State)

		d.mu.Lock()
		t, ok := d.tracked[id]
		if !ok || t.last == status {
			d.mu.Unlock()
			continue
		}
		old := t.last
		t.last = status
		if status.Terminal() {
			delete(d.tracked, id)
		}
		change := StatusChange{
			JobID:     t.jobID,
			ProjectID: t.projectID,
			OldStatus: old,
			NewStatus: status,
		}
		d.mu.Unlock()

		select {
		case d.events <- change:
		case <-ctx.Done():
			return
		}
	}
}

func (d *SlurmDriver) sacct(ctx context.Context, jobSpec string) (string, error) {
	cmd := exec.CommandContext(ctx, d.cfg.SacctBin,
		"-j", jobSpec, "-n", "-P", "-X", "-o", "JobID,State,ExitCode,Elapsed")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("sacct: %w", err)
	}
	return string(out), nil
}

// renderBatchScript produces the sbatch script for one submission. MPI jobs
// run under srun; single-process jobs run the command directly.
func renderBatchScript(req SubmitRequest) string {
	var sb strings.Builder
	sb.WriteString("#!/bin/bash\n")
	fmt.Fprintf(&sb, "#SBATCH --job-name=%s_%s\n", req.JobName, req.Stage)
	if req.Params.Partition != "" {
		fmt.Fprintf(&sb, "#SBATCH --partition=%s\n", req.Params.Partition)
	}
	fmt.Fprintf(&sb, "#SBATCH --ntasks=%d\n", max(req.Params.MPIProcs, 1))
	fmt.Fprintf(&sb, "#SBATCH --cpus-per-task=%d\n", max(req.Params.Threads, 1))
	if req.Params.GPUCount > 0 {
		fmt.Fprintf(&sb, "#SBATCH --gres=gpu:%d\n", req.Params.GPUCount)
	}
	fmt.Fprintf(&sb, "#SBATCH --output=%s\n", filepath.Join(req.OutputDir, stdoutFile))
	fmt.Fprintf(&sb, "#SBATCH --error=%s\n", filepath.Join(req.OutputDir, stderrFile))
	fmt.Fprintf(&sb, "#SBATCH --chdir=%s\n", req.ProjectPath)
	sb.WriteString("\nset -e\n")

	command := shellJoin(req.Command)
	if req.Params.MPIProcs > 1 {
		fmt.Fprintf(&sb, "srun --ntasks=%d %s\n", req.Params.MPIProcs, command)
	} else {
		sb.WriteString(command + "\n")
	}
	if req.PostCommand != "" {
		sb.WriteString(req.PostCommand + "\n")
	}
	return sb.String()
}

// shellJoin quotes argv elements that need it. Arguments may contain globs
// the downstream tool expands itself, so only whitespace and quotes force
// quoting.
func shellJoin(argv []string) string {
	parts := make([]string, len(argv))
	for n, a := range argv {
		if a == "" || strings.ContainsAny(a, " \t'\"") {
			parts[n] = "'" + strings.ReplaceAll(a, "'", `'\''`) + "'"
		} else {
			parts[n] = a
		}
	}
	return strings.Join(parts, " ")
}

// parseSacct parses "-n -P -X -o JobID,State,ExitCode,Elapsed" output into
// a map keyed by job id.
func parseSacct(out string) map[string]JobDetails {
	rows := make(map[string]JobDetails)
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Split(line, "|")
		if len(fields) < 4 {
			continue
		}
		rows[fields[0]] = JobDetails{
			State:    fields[1],
			ExitCode: fields[2],
			Elapsed:  fields[3],
		}
	}
	return rows
}

// mapSlurmState folds Slurm's state vocabulary into the driver's. sacct
// reports e.g. "CANCELLED by 1234", so only the first word counts.
func mapSlurmState(state string) Status {
	s, _, _ := strings.Cut(strings.TrimSpace(state), " ")
	switch s {
	case "PENDING", "REQUEUED", "RESIZING", "SUSPENDED":
		return StatusPending
	case "RUNNING", "COMPLETING":
		return StatusRunning
	case "COMPLETED":
		return StatusSuccess
	case "CANCELLED", "REVOKED":
		return StatusCancelled
	default:
		// FAILED, TIMEOUT, OUT_OF_MEMORY, NODE_FAIL, BOOT_FAIL, DEADLINE.
		return StatusFailed
	}
}
