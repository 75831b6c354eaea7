package orchestrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryoflow/cryoflow/ent"
	"github.com/cryoflow/cryoflow/ent/pipelinejob"
	"github.com/cryoflow/cryoflow/ent/pipelinesession"
	"github.com/cryoflow/cryoflow/pkg/cluster"
	"github.com/cryoflow/cryoflow/pkg/config"
	"github.com/cryoflow/cryoflow/pkg/events"
	"github.com/cryoflow/cryoflow/pkg/models"
	"github.com/cryoflow/cryoflow/pkg/services"
	"github.com/cryoflow/cryoflow/pkg/watch"
	"github.com/cryoflow/cryoflow/test/util"
)

// fakeDriver records submissions and cancellations; tests feed completions
// back through handleStatusChange directly.
type fakeDriver struct {
	mu        sync.Mutex
	submitted []cluster.SubmitRequest
	cancelled []string
	submitErr error
	details   cluster.JobDetails
	events    chan cluster.StatusChange
	nextID    int
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{events: make(chan cluster.StatusChange, 16)}
}

func (d *fakeDriver) Submit(_ context.Context, req cluster.SubmitRequest) (cluster.SubmitResult, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.submitErr != nil {
		return cluster.SubmitResult{}, d.submitErr
	}
	d.nextID++
	d.submitted = append(d.submitted, req)
	return cluster.SubmitResult{ClusterJobID: fmt.Sprintf("c%d", d.nextID)}, nil
}

func (d *fakeDriver) Cancel(_ context.Context, clusterJobID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelled = append(d.cancelled, clusterJobID)
	return nil
}

func (d *fakeDriver) JobDetails(_ context.Context, _ string) (cluster.JobDetails, error) {
	return d.details, nil
}

func (d *fakeDriver) Events() <-chan cluster.StatusChange { return d.events }

func (d *fakeDriver) submissions() []cluster.SubmitRequest {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]cluster.SubmitRequest, len(d.submitted))
	copy(out, d.submitted)
	return out
}

// fakeWatcher records starts and stops without touching the filesystem.
type fakeWatcher struct {
	mu      sync.Mutex
	started []watch.StartParams
	stopped []string
	active  map[string]bool
	events  chan watch.Event
}

func newFakeWatcher() *fakeWatcher {
	return &fakeWatcher{active: make(map[string]bool), events: make(chan watch.Event, 16)}
}

func (w *fakeWatcher) Start(_ context.Context, p watch.StartParams) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.started = append(w.started, p)
	w.active[p.SessionID] = true
	return nil
}

func (w *fakeWatcher) Stop(sessionID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopped = append(w.stopped, sessionID)
	delete(w.active, sessionID)
}

func (w *fakeWatcher) StopAll() {}

func (w *fakeWatcher) Active(sessionID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.active[sessionID]
}

func (w *fakeWatcher) FileCount(string) int       { return 0 }
func (w *fakeWatcher) Events() <-chan watch.Event { return w.events }

// fakePublisher collects broadcast payloads.
type fakePublisher struct {
	mu       sync.Mutex
	payloads []events.LiveSessionUpdatePayload
}

func (p *fakePublisher) PublishLiveSessionUpdate(_ context.Context, payload events.LiveSessionUpdatePayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, payload)
	return nil
}

type testEnv struct {
	client   *ent.Client
	orch     *Orchestrator
	driver   *fakeDriver
	watcher  *fakeWatcher
	pub      *fakePublisher
	sessions *services.SessionService
	jobs     *services.JobService
	activity *services.ActivityService
	projects *services.ProjectService

	projectID   string
	projectPath string
	watchDir    string
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)

	env := &testEnv{
		client:      client,
		driver:      newFakeDriver(),
		watcher:     newFakeWatcher(),
		pub:         &fakePublisher{},
		sessions:    services.NewSessionService(client),
		jobs:        services.NewJobService(client),
		activity:    services.NewActivityService(client),
		projects:    services.NewProjectService(client),
		projectPath: t.TempDir(),
		watchDir:    t.TempDir(),
	}
	env.orch = New(
		config.DefaultOrchestratorConfig(),
		config.DefaultSlurmConfig(),
		env.sessions, env.jobs, env.activity, env.projects,
		env.watcher, env.driver, env.pub,
	)

	proj, err := env.projects.CreateProject(context.Background(), "test-project", env.projectPath)
	require.NoError(t, err)
	env.projectID = proj.ID
	return env
}

func (e *testEnv) createSession(t *testing.T, mode models.InputMode, mutate func(*services.CreateSessionRequest)) string {
	t.Helper()
	req := services.CreateSessionRequest{
		ProjectID:      e.projectID,
		UserID:         "operator",
		SessionName:    "grid-3",
		InputMode:      mode,
		WatchDirectory: e.watchDir,
		FilePattern:    "*.tiff",
		Optics: models.OpticsConfig{
			PixelSize:           1.07,
			Voltage:             300,
			SphericalAberration: 2.7,
			AmplitudeContrast:   0.1,
		},
		Motion: models.MotionConfig{
			Enabled: true, PatchX: 5, PatchY: 5, BinFactor: 1, DosePerFrame: 1.2,
		},
		Ctf: models.CtfConfig{
			Enabled: true, DefocusMin: 5000, DefocusMax: 50000, DefocusStep: 500,
		},
		Picking: models.PickingConfig{
			Enabled: true, UseLoG: true, DiameterMin: 150, DiameterMax: 180,
		},
		Extraction: models.ExtractionConfig{
			Enabled: true, BoxSize: 256, Normalize: true,
		},
		Class2D: models.Class2DConfig{Enabled: false},
		Slurm:   models.SlurmConfig{MPIProcs: 1, Threads: 4},
	}
	if mutate != nil {
		mutate(&req)
	}
	sess, err := e.sessions.CreateSession(context.Background(), req)
	require.NoError(t, err)
	return sess.ID
}

// writeStar writes a STAR file with n data rows at the job's output path.
func (e *testEnv) writeStar(t *testing.T, rel string, n int) {
	t.Helper()
	full := filepath.Join(e.projectPath, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))

	var b strings.Builder
	b.WriteString("data_\n\nloop_\n_rlnMicrographName\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "mic%04d.mrc\n", i)
	}
	require.NoError(t, os.WriteFile(full, []byte(b.String()), 0o644))
}

// completeLast finishes the most recent submission with the given status,
// writing rows result rows first when rows > 0.
func (e *testEnv) completeLast(t *testing.T, status cluster.Status, rows int) {
	t.Helper()
	subs := e.driver.submissions()
	require.NotEmpty(t, subs)
	req := subs[len(subs)-1]

	if rows > 0 {
		job, err := e.jobs.GetJob(context.Background(), req.JobID)
		require.NoError(t, err)
		e.writeStar(t, job.OutputFilePath, rows)
	}

	e.orch.handleStatusChange(context.Background(), cluster.StatusChange{
		JobID:     req.JobID,
		ProjectID: req.ProjectID,
		OldStatus: cluster.StatusRunning,
		NewStatus: status,
	})
}

func (e *testEnv) getState(t *testing.T, sessionID string) models.SessionState {
	t.Helper()
	sess, err := e.sessions.GetSession(context.Background(), sessionID)
	require.NoError(t, err)
	return sess.State
}

func filesAdded(sessionID string, count int, files ...string) watch.Event {
	return watch.Event{SessionID: sessionID, Type: watch.FilesAdded, Files: files, Count: count}
}

func TestStartLinksWatchDirectoryAndStartsWatcher(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	id := env.createSession(t, models.InputModeWatch, nil)

	require.NoError(t, env.orch.Start(ctx, id))

	target, err := os.Readlink(filepath.Join(env.projectPath, "Movies"))
	require.NoError(t, err)
	assert.Equal(t, env.watchDir, target)

	sess, err := env.sessions.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, pipelinesession.StatusRunning, sess.Status)
	assert.Equal(t, "starting", sess.State.CurrentStage)
	assert.NotNil(t, sess.StartTime)

	require.Len(t, env.watcher.started, 1)
	assert.Equal(t, id, env.watcher.started[0].SessionID)
	assert.Equal(t, "*.tiff", env.watcher.started[0].Pattern)

	// starting again is allowed; the existing link is accepted
	require.NoError(t, env.orch.Start(ctx, id))
}

func TestStartRejectsTerminalSession(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	id := env.createSession(t, models.InputModeWatch, nil)

	require.NoError(t, env.sessions.MarkStarted(ctx, id))
	require.NoError(t, env.sessions.MarkEnded(ctx, id, pipelinesession.StatusStopped))

	err := env.orch.Start(ctx, id)
	assert.True(t, services.IsValidationError(err))
}

func TestPauseIsIdempotent(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	id := env.createSession(t, models.InputModeWatch, nil)
	require.NoError(t, env.orch.Start(ctx, id))

	require.NoError(t, env.orch.Pause(ctx, id))
	require.NoError(t, env.orch.Pause(ctx, id), "second pause must be a no-op")

	sess, err := env.sessions.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, pipelinesession.StatusPaused, sess.Status)
	assert.False(t, env.orch.registry.isRunning(id))
}

func TestHappyLinearPass(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	id := env.createSession(t, models.InputModeWatch, nil)
	require.NoError(t, env.orch.Start(ctx, id))

	env.orch.handleFilesAdded(ctx, filesAdded(id, 10, "a.tiff", "b.tiff", "c.tiff", "d.tiff"))

	assert.Equal(t, 10, env.getState(t, id).MoviesFound)
	require.Len(t, env.driver.submissions(), 1)
	assert.Equal(t, models.StageImport, env.driver.submissions()[0].Stage)
	assert.True(t, env.orch.registry.isBusy(id))

	// each completion submits the next stage
	env.completeLast(t, cluster.StatusSuccess, 10) // import
	env.completeLast(t, cluster.StatusSuccess, 10) // motion
	env.completeLast(t, cluster.StatusSuccess, 10) // ctf
	env.completeLast(t, cluster.StatusSuccess, 10) // pick
	env.completeLast(t, cluster.StatusSuccess, 2500) // extract

	var order []models.StageKey
	for _, s := range env.driver.submissions() {
		order = append(order, s.Stage)
	}
	assert.Equal(t, []models.StageKey{
		models.StageImport, models.StageMotion, models.StageCtf,
		models.StagePick, models.StageExtract,
	}, order)

	sess, err := env.sessions.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, pipelinesession.StatusRunning, sess.Status, "watch-mode session stays running")
	assert.Len(t, sess.PassHistory, 1)
	assert.Equal(t, 10, sess.State.MoviesImported)
	assert.Equal(t, 2500, sess.State.ParticlesExtracted)
	assert.False(t, env.orch.registry.isBusy(id))

	entries, err := env.activity.List(ctx, id, models.ActivityFilter{Search: "pipeline_complete"})
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCountMismatchTriggersRerun(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	id := env.createSession(t, models.InputModeWatch, nil)
	require.NoError(t, env.orch.Start(ctx, id))

	env.orch.handleFilesAdded(ctx, filesAdded(id, 10, "a.tiff"))

	env.completeLast(t, cluster.StatusSuccess, 10) // import: 10
	env.completeLast(t, cluster.StatusSuccess, 4)  // motion: only 4 processed
	env.completeLast(t, cluster.StatusSuccess, 4)  // ctf
	env.completeLast(t, cluster.StatusSuccess, 4)  // pick
	env.completeLast(t, cluster.StatusSuccess, 900) // extract → pass complete → rerun

	entries, err := env.activity.List(ctx, id, models.ActivityFilter{Search: "pipeline_rerun"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.EqualValues(t, 6, entries[0].Context["gap"])

	// the second pass re-runs import with the same job id and directory
	subs := env.driver.submissions()
	require.Len(t, subs, 6)
	assert.Equal(t, models.StageImport, subs[5].Stage)
	assert.Equal(t, subs[0].JobID, subs[5].JobID)
	assert.Equal(t, subs[0].OutputDir, subs[5].OutputDir)
	assert.Equal(t, 2, env.getState(t, id).PassCount)
}

func TestNewFilesWhileBusyQueueRerun(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	id := env.createSession(t, models.InputModeWatch, nil)
	require.NoError(t, env.orch.Start(ctx, id))

	env.orch.handleFilesAdded(ctx, filesAdded(id, 10, "a.tiff"))
	require.Len(t, env.driver.submissions(), 1)

	// five more files while import runs
	env.orch.handleFilesAdded(ctx, filesAdded(id, 15, "k.tiff"))
	assert.Len(t, env.driver.submissions(), 1, "no concurrent pass while busy")
	assert.Equal(t, 15, env.getState(t, id).MoviesFound)

	env.completeLast(t, cluster.StatusSuccess, 10) // import
	env.completeLast(t, cluster.StatusSuccess, 10) // motion
	env.completeLast(t, cluster.StatusSuccess, 10) // ctf
	env.completeLast(t, cluster.StatusSuccess, 10) // pick
	env.completeLast(t, cluster.StatusSuccess, 2000) // extract → queued rerun fires

	subs := env.driver.submissions()
	require.Len(t, subs, 6)
	assert.Equal(t, models.StageImport, subs[5].Stage)
	assert.Equal(t, subs[0].JobID, subs[5].JobID, "rerun reuses the import job")
	assert.False(t, env.orch.registry.takePendingRerun(id), "flag consumed by the rerun")
}

func TestStageFailurePausesSessionWithEnrichment(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	id := env.createSession(t, models.InputModeWatch, nil)
	require.NoError(t, env.orch.Start(ctx, id))
	env.driver.details = cluster.JobDetails{State: "FAILED", ExitCode: "139", Elapsed: "00:03:12"}

	env.orch.handleFilesAdded(ctx, filesAdded(id, 10, "a.tiff"))
	env.completeLast(t, cluster.StatusSuccess, 10) // import
	env.completeLast(t, cluster.StatusSuccess, 10) // motion

	// ctf fails with a segfault in stderr
	subs := env.driver.submissions()
	ctfReq := subs[len(subs)-1]
	require.Equal(t, models.StageCtf, ctfReq.Stage)
	errPath := cluster.StderrPath(env.projectPath, ctfReq.OutputDir)
	require.NoError(t, os.MkdirAll(filepath.Dir(errPath), 0o755))
	require.NoError(t, os.WriteFile(errPath, []byte("estimating defocus\nSegmentation fault (core dumped)\n"), 0o644))

	env.completeLast(t, cluster.StatusFailed, 0)

	sess, err := env.sessions.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, pipelinesession.StatusPaused, sess.Status)
	assert.Equal(t, models.StageCtf, sess.State.ResumeFrom)
	assert.Equal(t, "ctf_error", sess.State.CurrentStage)
	assert.False(t, env.orch.registry.isBusy(id))

	entries, err := env.activity.List(ctx, id, models.ActivityFilter{Level: models.LevelError})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "139", entries[0].Context["exit_code"])
	preview := fmt.Sprintf("%v", entries[0].Context["stderr_preview"])
	assert.Contains(t, preview, "Segmentation fault")

	job, err := env.jobs.GetJob(ctx, ctfReq.JobID)
	require.NoError(t, err)
	assert.Equal(t, pipelinejob.StatusFailed, job.Status)
}

func TestResumeResubmitsFailedStage(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	id := env.createSession(t, models.InputModeWatch, nil)
	require.NoError(t, env.orch.Start(ctx, id))

	env.orch.handleFilesAdded(ctx, filesAdded(id, 10, "a.tiff"))
	env.completeLast(t, cluster.StatusSuccess, 10) // import
	env.completeLast(t, cluster.StatusSuccess, 10) // motion
	env.completeLast(t, cluster.StatusFailed, 0)   // ctf fails

	before := env.driver.submissions()
	ctfJobID := before[len(before)-1].JobID

	require.NoError(t, env.orch.Resume(ctx, id))

	subs := env.driver.submissions()
	require.Len(t, subs, len(before)+1)
	resubmit := subs[len(subs)-1]
	assert.Equal(t, models.StageCtf, resubmit.Stage, "resume goes straight to the failed stage")
	assert.Equal(t, ctfJobID, resubmit.JobID)

	sess, err := env.sessions.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, pipelinesession.StatusRunning, sess.Status)
	assert.Empty(t, sess.State.ResumeFrom, "resume_from cleared after successful submit")
}

func TestSubmissionErrorPausesAndStaysResumable(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	id := env.createSession(t, models.InputModeWatch, nil)
	require.NoError(t, env.orch.Start(ctx, id))

	env.driver.submitErr = fmt.Errorf("sbatch: error: invalid partition")
	env.orch.handleFilesAdded(ctx, filesAdded(id, 4, "a.tiff"))

	sess, err := env.sessions.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, pipelinesession.StatusPaused, sess.Status)
	assert.Equal(t, models.StageImport, sess.State.ResumeFrom)
	assert.Equal(t, "import_error", sess.State.CurrentStage)
	assert.False(t, env.orch.registry.isBusy(id))

	// The rejected job must not linger in pending, or it could never be
	// resubmitted.
	jobs, err := env.jobs.ListBySession(ctx, id)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, pipelinejob.StatusFailed, jobs[0].Status)
	require.NotNil(t, jobs[0].ErrorMessage)
	assert.Contains(t, *jobs[0].ErrorMessage, "invalid partition")

	// Once the scheduler accepts again, resume resubmits the same job.
	env.driver.submitErr = nil
	require.NoError(t, env.orch.Resume(ctx, id))

	subs := env.driver.submissions()
	require.Len(t, subs, 1)
	assert.Equal(t, models.StageImport, subs[0].Stage)
	assert.Equal(t, jobs[0].ID, subs[0].JobID, "resume reuses the rejected job")

	sess, err = env.sessions.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, pipelinesession.StatusRunning, sess.Status)
	assert.Empty(t, sess.State.ResumeFrom, "resume_from cleared after successful submit")
	assert.True(t, env.orch.registry.isBusy(id), "resubmitted stage is in flight")
}

func TestStopCancelsLiveJobsAndRemovesSymlink(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	id := env.createSession(t, models.InputModeWatch, nil)
	require.NoError(t, env.orch.Start(ctx, id))

	env.orch.handleFilesAdded(ctx, filesAdded(id, 3, "a.tiff"))
	require.Len(t, env.driver.submissions(), 1)

	require.NoError(t, env.orch.Stop(ctx, id))

	sess, err := env.sessions.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, pipelinesession.StatusStopped, sess.Status)
	assert.NotNil(t, sess.EndTime)

	active, err := env.jobs.ListActiveBySession(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, active, "no pending or running job survives stop")
	assert.NotEmpty(t, env.driver.cancelled)

	_, err = os.Lstat(filepath.Join(env.projectPath, "Movies"))
	assert.True(t, os.IsNotExist(err), "project symlink removed")
	assert.False(t, env.orch.registry.registered(id))
	assert.Contains(t, env.watcher.stopped, id)
}

func TestResumeRunningAfterRestartCancelsOrphans(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	id := env.createSession(t, models.InputModeWatch, nil)
	require.NoError(t, env.orch.Start(ctx, id))
	env.orch.handleFilesAdded(ctx, filesAdded(id, 5, "a.tiff"))
	require.Len(t, env.driver.submissions(), 1)
	orphanID := env.driver.submissions()[0].JobID

	// a fresh orchestrator instance simulates the process restart
	driver2 := newFakeDriver()
	watcher2 := newFakeWatcher()
	orch2 := New(
		config.DefaultOrchestratorConfig(),
		config.DefaultSlurmConfig(),
		env.sessions, env.jobs, env.activity, env.projects,
		watcher2, driver2, &fakePublisher{},
	)

	require.NoError(t, orch2.ResumeRunningAfterRestart(ctx))

	job, err := env.jobs.GetJob(ctx, orphanID)
	require.NoError(t, err)
	assert.Equal(t, pipelinejob.StatusCancelled, job.Status)
	assert.NotEmpty(t, driver2.cancelled)

	sess, err := env.sessions.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, pipelinesession.StatusRunning, sess.Status)
	require.Len(t, watcher2.started, 1)
	assert.True(t, orch2.registry.isRunning(id))
}

func TestNoFilesCompletesExistingSession(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	id := env.createSession(t, models.InputModeExisting, nil)
	require.NoError(t, env.orch.Start(ctx, id))

	env.orch.handleNoFiles(ctx, watch.Event{
		SessionID: id, Type: watch.NoFiles, Directory: env.watchDir,
	})

	sess, err := env.sessions.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, pipelinesession.StatusCompleted, sess.Status)
	assert.False(t, env.orch.registry.registered(id))

	entries, err := env.activity.List(ctx, id, models.ActivityFilter{Level: models.LevelWarning})
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestExistingModeCompletesWhenCaughtUp(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	id := env.createSession(t, models.InputModeExisting, nil)
	require.NoError(t, env.orch.Start(ctx, id))

	env.orch.handleFilesAdded(ctx, filesAdded(id, 4, "a.tiff"))
	env.completeLast(t, cluster.StatusSuccess, 4)
	env.completeLast(t, cluster.StatusSuccess, 4)
	env.completeLast(t, cluster.StatusSuccess, 4)
	env.completeLast(t, cluster.StatusSuccess, 4)
	env.completeLast(t, cluster.StatusSuccess, 800)

	sess, err := env.sessions.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, pipelinesession.StatusCompleted, sess.Status,
		"existing-mode session completes once the pipeline caught up")
}

func TestClass2DTriggerSubmitsBatch(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	id := env.createSession(t, models.InputModeWatch, func(req *services.CreateSessionRequest) {
		req.Class2D = models.Class2DConfig{
			Enabled:           true,
			ClassCount:        50,
			ParticleThreshold: 500,
			BatchInterval:     0,
			UseFastVariant:    true,
			MaskDiameter:      200,
		}
	})
	require.NoError(t, env.orch.Start(ctx, id))

	env.orch.handleFilesAdded(ctx, filesAdded(id, 10, "a.tiff"))
	env.completeLast(t, cluster.StatusSuccess, 10)
	env.completeLast(t, cluster.StatusSuccess, 10)
	env.completeLast(t, cluster.StatusSuccess, 10)
	env.completeLast(t, cluster.StatusSuccess, 10)
	env.completeLast(t, cluster.StatusSuccess, 800) // 800 ≥ threshold 500

	subs := env.driver.submissions()
	require.Len(t, subs, 6)
	class2d := subs[5]
	assert.Equal(t, models.StageClass2D, class2d.Stage)

	sess, err := env.sessions.GetSession(ctx, id)
	require.NoError(t, err)
	require.Len(t, sess.Jobs.Class2DIDs, 1)
	assert.Equal(t, class2d.JobID, sess.Jobs.Class2DIDs[0])
	assert.NotNil(t, sess.State.LastBatch2D)

	job, err := env.jobs.GetJob(ctx, class2d.JobID)
	require.NoError(t, err)
	assert.Equal(t, string(models.StageClass2D), job.JobType)
	assert.Equal(t, pipelinejob.StatusRunning, job.Status)
}

func TestPausedSessionStoresResumePointOnCompletion(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	id := env.createSession(t, models.InputModeWatch, nil)
	require.NoError(t, env.orch.Start(ctx, id))

	env.orch.handleFilesAdded(ctx, filesAdded(id, 10, "a.tiff"))
	env.completeLast(t, cluster.StatusSuccess, 10) // import → motion submitted

	require.NoError(t, env.orch.Pause(ctx, id))
	env.completeLast(t, cluster.StatusSuccess, 10) // motion finishes while paused

	sess, err := env.sessions.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, pipelinesession.StatusPaused, sess.Status)
	assert.Equal(t, models.StageCtf, sess.State.ResumeFrom)
	assert.Equal(t, "paused_after_motion", sess.State.CurrentStage)
	assert.Len(t, env.driver.submissions(), 2, "no advancement while paused")
	assert.False(t, env.orch.registry.isBusy(id))
}

func TestDisabledStagesAreSkipped(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	id := env.createSession(t, models.InputModeWatch, func(req *services.CreateSessionRequest) {
		req.Picking.Enabled = false
		req.Extraction.Enabled = false
	})
	require.NoError(t, env.orch.Start(ctx, id))

	env.orch.handleFilesAdded(ctx, filesAdded(id, 5, "a.tiff"))
	env.completeLast(t, cluster.StatusSuccess, 5) // import
	env.completeLast(t, cluster.StatusSuccess, 5) // motion
	env.completeLast(t, cluster.StatusSuccess, 5) // ctf → pick/extract skipped → pass done

	var order []models.StageKey
	for _, s := range env.driver.submissions() {
		order = append(order, s.Stage)
	}
	assert.Equal(t, []models.StageKey{models.StageImport, models.StageMotion, models.StageCtf}, order)

	sess, err := env.sessions.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Len(t, sess.PassHistory, 1)
	assert.False(t, env.orch.registry.isBusy(id))
}
