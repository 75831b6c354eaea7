package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryoflow/cryoflow/ent/pipelinejob"
	"github.com/cryoflow/cryoflow/pkg/models"
)

func TestCreateJobAndGet(t *testing.T) {
	_, projects, sessions, jobs, _ := setupServices(t)
	ctx := context.Background()
	project := createTestProject(t, projects)
	s := createTestSession(t, sessions, project.ID)

	job, err := jobs.CreateJob(ctx, CreateJobParams{
		SessionID:      s.ID,
		ProjectID:      project.ID,
		UserID:         "user-1",
		JobName:        "job001",
		JobType:        models.StageImport,
		OutputFilePath: "Import/job001/movies.star",
		Command:        []string{"relion_import", "--i", "Movies/*.tiff"},
		Parameters:     map[string]any{"angpix": 1.06},
	})
	require.NoError(t, err)
	assert.Equal(t, pipelinejob.StatusPending, job.Status)
	assert.Equal(t, "cluster", job.ExecutionMode)

	got, err := jobs.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "relion_import --i Movies/*.tiff", got.Command)
	assert.Equal(t, "import", got.JobType)
}

func TestCreateJobRejectsDuplicateNameInProject(t *testing.T) {
	_, projects, sessions, jobs, _ := setupServices(t)
	ctx := context.Background()
	project := createTestProject(t, projects)
	s := createTestSession(t, sessions, project.ID)

	_, err := jobs.CreateJob(ctx, CreateJobParams{
		SessionID: s.ID, ProjectID: project.ID, UserID: "u", JobName: "job001", JobType: models.StageImport,
	})
	require.NoError(t, err)
	_, err = jobs.CreateJob(ctx, CreateJobParams{
		SessionID: s.ID, ProjectID: project.ID, UserID: "u", JobName: "job001", JobType: models.StageMotion,
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestNextJobNameSequence(t *testing.T) {
	_, projects, _, jobs, _ := setupServices(t)
	ctx := context.Background()
	project := createTestProject(t, projects)

	name, err := jobs.NextJobName(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "job001", name)

	name, err = jobs.NextJobName(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "job002", name)
}

func TestNextJobNameConcurrentAllocationsAreUnique(t *testing.T) {
	_, projects, _, jobs, _ := setupServices(t)
	ctx := context.Background()
	project := createTestProject(t, projects)

	const workers = 8
	var mu sync.Mutex
	seen := make(map[string]bool)
	var wg sync.WaitGroup
	for n := 0; n < workers; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name, err := jobs.NextJobName(ctx, project.ID)
			assert.NoError(t, err)
			mu.Lock()
			assert.False(t, seen[name], "duplicate job name %s", name)
			seen[name] = true
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, seen, workers)
}

func TestResetForRerunKeepsIdentityAndOutputPath(t *testing.T) {
	_, projects, sessions, jobs, _ := setupServices(t)
	ctx := context.Background()
	project := createTestProject(t, projects)
	s := createTestSession(t, sessions, project.ID)

	job, err := jobs.CreateJob(ctx, CreateJobParams{
		SessionID: s.ID, ProjectID: project.ID, UserID: "u",
		JobName: "job002", JobType: models.StageMotion,
		OutputFilePath: "MotionCorr/job002/corrected_micrographs.star",
		Command:        []string{"relion_run_motioncorr", "--i", "a.star"},
	})
	require.NoError(t, err)
	require.NoError(t, jobs.MarkSubmitted(ctx, job.ID, "4242"))
	require.NoError(t, jobs.MarkCompleted(ctx, job.ID, pipelinejob.StatusFailed, "exit 139", nil))

	require.NoError(t, jobs.ResetForRerun(ctx, job.ID,
		[]string{"relion_run_motioncorr", "--i", "b.star"},
		map[string]any{"bin_factor": 2.0}))

	got, err := jobs.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, pipelinejob.StatusPending, got.Status)
	assert.Equal(t, "job002", got.JobName)
	assert.Equal(t, "MotionCorr/job002/corrected_micrographs.star", got.OutputFilePath)
	assert.Equal(t, "relion_run_motioncorr --i b.star", got.Command)
	assert.Nil(t, got.ClusterJobID)
	assert.Nil(t, got.ErrorMessage)
	assert.Nil(t, got.StartTime)
	assert.Nil(t, got.EndTime)
}

func TestMarkSubmittedAndCompleted(t *testing.T) {
	_, projects, sessions, jobs, _ := setupServices(t)
	ctx := context.Background()
	project := createTestProject(t, projects)
	s := createTestSession(t, sessions, project.ID)

	job, err := jobs.CreateJob(ctx, CreateJobParams{
		SessionID: s.ID, ProjectID: project.ID, UserID: "u",
		JobName: "job001", JobType: models.StageImport,
	})
	require.NoError(t, err)

	require.NoError(t, jobs.MarkSubmitted(ctx, job.ID, "555"))
	got, err := jobs.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, pipelinejob.StatusRunning, got.Status)
	require.NotNil(t, got.ClusterJobID)
	assert.Equal(t, "555", *got.ClusterJobID)
	assert.NotNil(t, got.StartTime)

	stats := &models.PipelineStats{MicrographCount: 10, PixelSize: 1.06}
	require.NoError(t, jobs.MarkCompleted(ctx, job.ID, pipelinejob.StatusSuccess, "", stats))
	got, err = jobs.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, pipelinejob.StatusSuccess, got.Status)
	assert.Equal(t, 10, got.PipelineStats.MicrographCount)
	assert.NotNil(t, got.EndTime)

	err = jobs.MarkCompleted(ctx, job.ID, pipelinejob.StatusCancelled, "", nil)
	assert.True(t, IsValidationError(err))
}

func TestMarkCancelledAndListActive(t *testing.T) {
	_, projects, sessions, jobs, _ := setupServices(t)
	ctx := context.Background()
	project := createTestProject(t, projects)
	s := createTestSession(t, sessions, project.ID)

	a, err := jobs.CreateJob(ctx, CreateJobParams{
		SessionID: s.ID, ProjectID: project.ID, UserID: "u", JobName: "job001", JobType: models.StageImport,
	})
	require.NoError(t, err)
	b, err := jobs.CreateJob(ctx, CreateJobParams{
		SessionID: s.ID, ProjectID: project.ID, UserID: "u", JobName: "job002", JobType: models.StageMotion,
	})
	require.NoError(t, err)
	require.NoError(t, jobs.MarkSubmitted(ctx, b.ID, "777"))

	active, err := jobs.ListActiveBySession(ctx, s.ID)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	require.NoError(t, jobs.MarkCancelled(ctx, a.ID))
	require.NoError(t, jobs.MarkCancelled(ctx, b.ID))

	active, err = jobs.ListActiveBySession(ctx, s.ID)
	require.NoError(t, err)
	assert.Empty(t, active)

	got, err := jobs.GetJob(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, pipelinejob.StatusCancelled, got.Status)
	assert.Nil(t, got.ClusterJobID)
	assert.NotNil(t, got.EndTime)
}

func TestCountActiveClass2D(t *testing.T) {
	_, projects, sessions, jobs, _ := setupServices(t)
	ctx := context.Background()
	project := createTestProject(t, projects)
	s := createTestSession(t, sessions, project.ID)

	c1, err := jobs.CreateJob(ctx, CreateJobParams{
		SessionID: s.ID, ProjectID: project.ID, UserID: "u", JobName: "job006", JobType: models.StageClass2D,
	})
	require.NoError(t, err)
	_, err = jobs.CreateJob(ctx, CreateJobParams{
		SessionID: s.ID, ProjectID: project.ID, UserID: "u", JobName: "job007", JobType: models.StageClass2D,
	})
	require.NoError(t, err)

	n, err := jobs.CountActiveClass2D(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.NoError(t, jobs.MarkCompleted(ctx, c1.ID, pipelinejob.StatusSuccess, "", nil))
	n, err = jobs.CountActiveClass2D(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestResolveInputJobIDs(t *testing.T) {
	_, projects, sessions, jobs, _ := setupServices(t)
	ctx := context.Background()
	project := createTestProject(t, projects)
	s := createTestSession(t, sessions, project.ID)

	a, err := jobs.CreateJob(ctx, CreateJobParams{
		SessionID: s.ID, ProjectID: project.ID, UserID: "u", JobName: "job001", JobType: models.StageImport,
	})
	require.NoError(t, err)
	b, err := jobs.CreateJob(ctx, CreateJobParams{
		SessionID: s.ID, ProjectID: project.ID, UserID: "u", JobName: "job002", JobType: models.StageMotion,
	})
	require.NoError(t, err)

	ids, err := jobs.ResolveInputJobIDs(ctx, project.ID, []string{"job002", "job001"})
	require.NoError(t, err)
	assert.Equal(t, []string{b.ID, a.ID}, ids, "order follows the requested names")

	_, err = jobs.ResolveInputJobIDs(ctx, project.ID, []string{"job009"})
	assert.ErrorIs(t, err, ErrNotFound)

	ids, err = jobs.ResolveInputJobIDs(ctx, project.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, ids)
}
