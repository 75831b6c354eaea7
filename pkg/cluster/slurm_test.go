package cluster

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryoflow/cryoflow/pkg/config"
	"github.com/cryoflow/cryoflow/pkg/models"
)

func testRequest(projectPath string) SubmitRequest {
	return SubmitRequest{
		JobID:       "job-uuid-1",
		JobName:     "job002",
		Stage:       models.StageMotion,
		ProjectID:   "proj-1",
		ProjectPath: projectPath,
		OutputDir:   "MotionCorr/job002",
		Command:     []string{"relion_run_motioncorr", "--i", "Import/job001/movies.star", "--o", "MotionCorr/job002/"},
		PostCommand: "touch MotionCorr/job002/RELION_JOB_EXIT_SUCCESS",
		Params:      models.ClusterParams{Partition: "cryo", MPIProcs: 4, Threads: 8, GPUCount: 1},
	}
}

func TestRenderBatchScript(t *testing.T) {
	script := renderBatchScript(testRequest("/data/projects/p1"))

	assert.True(t, strings.HasPrefix(script, "#!/bin/bash\n"))
	assert.Contains(t, script, "#SBATCH --job-name=job002_motion")
	assert.Contains(t, script, "#SBATCH --partition=cryo")
	assert.Contains(t, script, "#SBATCH --ntasks=4")
	assert.Contains(t, script, "#SBATCH --cpus-per-task=8")
	assert.Contains(t, script, "#SBATCH --gres=gpu:1")
	assert.Contains(t, script, "#SBATCH --output=MotionCorr/job002/run.out")
	assert.Contains(t, script, "#SBATCH --error=MotionCorr/job002/run.err")
	assert.Contains(t, script, "#SBATCH --chdir=/data/projects/p1")
	assert.Contains(t, script, "srun --ntasks=4 relion_run_motioncorr")
	assert.Contains(t, script, "touch MotionCorr/job002/RELION_JOB_EXIT_SUCCESS")
}

func TestRenderBatchScriptSingleProcessSkipsSrun(t *testing.T) {
	req := testRequest("/data/projects/p1")
	req.Params.MPIProcs = 1
	req.Params.GPUCount = 0
	script := renderBatchScript(req)

	assert.NotContains(t, script, "srun")
	assert.NotContains(t, script, "--gres")
	assert.Contains(t, script, "relion_run_motioncorr --i Import/job001/movies.star")
}

func TestShellJoin(t *testing.T) {
	assert.Equal(t, "a --flag Movies/*.tiff", shellJoin([]string{"a", "--flag", "Movies/*.tiff"}))
	assert.Equal(t, "a 'b c' ''", shellJoin([]string{"a", "b c", ""}))
	assert.Equal(t, `a 'it'\''s'`, shellJoin([]string{"a", "it's"}))
}

func TestParseSacct(t *testing.T) {
	out := "101|COMPLETED|0:0|00:12:34\n102|FAILED|139:0|00:01:02\n103|CANCELLED by 501|0:15|00:00:10\n\n"
	rows := parseSacct(out)
	require.Len(t, rows, 3)
	assert.Equal(t, JobDetails{State: "COMPLETED", ExitCode: "0:0", Elapsed: "00:12:34"}, rows["101"])
	assert.Equal(t, "139:0", rows["102"].ExitCode)
	assert.Equal(t, "CANCELLED by 501", rows["103"].State)
}

func TestMapSlurmState(t *testing.T) {
	assert.Equal(t, StatusPending, mapSlurmState("PENDING"))
	assert.Equal(t, StatusRunning, mapSlurmState("RUNNING"))
	assert.Equal(t, StatusSuccess, mapSlurmState("COMPLETED"))
	assert.Equal(t, StatusFailed, mapSlurmState("FAILED"))
	assert.Equal(t, StatusFailed, mapSlurmState("OUT_OF_MEMORY"))
	assert.Equal(t, StatusFailed, mapSlurmState("TIMEOUT"))
	assert.Equal(t, StatusCancelled, mapSlurmState("CANCELLED by 501"))
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusRunning.Terminal())
	assert.True(t, StatusSuccess.Terminal())
	assert.True(t, StatusFailed.Terminal())
	assert.True(t, StatusCancelled.Terminal())
}

// writeStub installs a fake scheduler binary that records its argv and
// prints the given stdout.
func writeStub(t *testing.T, dir, name, stdout string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	script := "#!/bin/sh\necho \"$@\" > \"" + filepath.Join(dir, name+".args") + "\"\nprintf '%s\\n' '" + stdout + "'\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestSubmitParsesJobIDAndTracks(t *testing.T) {
	binDir := t.TempDir()
	projectPath := t.TempDir()

	cfg := config.DefaultSlurmConfig()
	cfg.SbatchBin = writeStub(t, binDir, "sbatch", "4242;cluster0")
	cfg.PollInterval = 50 * time.Millisecond
	d := NewSlurmDriver(cfg)

	res, err := d.Submit(context.Background(), testRequest(projectPath))
	require.NoError(t, err)
	assert.Equal(t, "4242", res.ClusterJobID)

	// The batch script landed in the job's output directory.
	script, err := os.ReadFile(filepath.Join(projectPath, "MotionCorr/job002/run.sbatch"))
	require.NoError(t, err)
	assert.Contains(t, string(script), "#SBATCH --job-name=job002_motion")

	args, err := os.ReadFile(filepath.Join(binDir, "sbatch.args"))
	require.NoError(t, err)
	assert.Contains(t, string(args), "--parsable")

	d.mu.Lock()
	tracked, ok := d.tracked["4242"]
	d.mu.Unlock()
	require.True(t, ok)
	assert.Equal(t, "job-uuid-1", tracked.jobID)
	assert.Equal(t, StatusPending, tracked.last)
}

func TestSubmitRejectsEmptyCommand(t *testing.T) {
	d := NewSlurmDriver(config.DefaultSlurmConfig())
	req := testRequest(t.TempDir())
	req.Command = nil
	_, err := d.Submit(context.Background(), req)
	assert.Error(t, err)
}

func TestCancelInvokesScancelAndUntracks(t *testing.T) {
	binDir := t.TempDir()
	cfg := config.DefaultSlurmConfig()
	cfg.ScancelBin = writeStub(t, binDir, "scancel", "")
	d := NewSlurmDriver(cfg)
	d.tracked["777"] = &trackedJob{jobID: "j1", projectID: "p1", last: StatusRunning}

	require.NoError(t, d.Cancel(context.Background(), "777"))

	args, err := os.ReadFile(filepath.Join(binDir, "scancel.args"))
	require.NoError(t, err)
	assert.Equal(t, "777", strings.TrimSpace(string(args)))
	d.mu.Lock()
	_, ok := d.tracked["777"]
	d.mu.Unlock()
	assert.False(t, ok)

	// Cancelling without a cluster id is a no-op.
	assert.NoError(t, d.Cancel(context.Background(), ""))
}

func TestPollEmitsTerminalTransitionOnce(t *testing.T) {
	binDir := t.TempDir()
	cfg := config.DefaultSlurmConfig()
	cfg.SacctBin = writeStub(t, binDir, "sacct", "901|FAILED|139:0|00:01:02")
	d := NewSlurmDriver(cfg)
	d.tracked["901"] = &trackedJob{jobID: "j9", projectID: "p1", last: StatusRunning}

	ctx := context.Background()
	d.poll(ctx)

	select {
	case ev := <-d.Events():
		assert.Equal(t, "j9", ev.JobID)
		assert.Equal(t, StatusRunning, ev.OldStatus)
		assert.Equal(t, StatusFailed, ev.NewStatus)
	default:
		t.Fatal("expected a status change event")
	}

	// Terminal jobs leave the tracking set; a second poll is silent.
	d.poll(ctx)
	select {
	case ev := <-d.Events():
		t.Fatalf("unexpected second event: %+v", ev)
	default:
	}
}

func TestJobDetails(t *testing.T) {
	binDir := t.TempDir()
	cfg := config.DefaultSlurmConfig()
	cfg.SacctBin = writeStub(t, binDir, "sacct", "555|COMPLETED|0:0|01:00:00")
	d := NewSlurmDriver(cfg)

	details, err := d.JobDetails(context.Background(), "555")
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", details.State)
	assert.Equal(t, "0:0", details.ExitCode)

	_, err = d.JobDetails(context.Background(), "556")
	assert.Error(t, err)
}
