package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryoflow/cryoflow/ent/pipelinesession"
	"github.com/cryoflow/cryoflow/pkg/models"
)

func TestCreateAndGetSession(t *testing.T) {
	_, projects, sessions, _, _ := setupServices(t)
	ctx := context.Background()
	project := createTestProject(t, projects)

	created := createTestSession(t, sessions, project.ID)
	assert.Equal(t, pipelinesession.StatusPending, created.Status)
	assert.Equal(t, pipelinesession.InputModeWatch, created.InputMode)

	got, err := sessions.GetSession(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "grid1-collection", got.SessionName)
	assert.Equal(t, "*.tiff", got.FilePattern)
	assert.InDelta(t, 1.06, got.Optics.PixelSize, 1e-9)
	assert.Zero(t, got.State.PassCount)
}

func TestGetSessionNotFound(t *testing.T) {
	_, _, sessions, _, _ := setupServices(t)
	_, err := sessions.GetSession(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateSessionValidation(t *testing.T) {
	_, projects, sessions, _, _ := setupServices(t)
	project := createTestProject(t, projects)

	req := testSessionRequest(project.ID)
	req.WatchDirectory = ""
	_, err := sessions.CreateSession(context.Background(), req)
	assert.True(t, IsValidationError(err))

	req = testSessionRequest(project.ID)
	req.InputMode = models.InputMode("streaming")
	_, err = sessions.CreateSession(context.Background(), req)
	assert.True(t, IsValidationError(err))
}

func TestListByProjectExcludesSoftDeleted(t *testing.T) {
	client, projects, sessions, _, _ := setupServices(t)
	ctx := context.Background()
	project := createTestProject(t, projects)

	a := createTestSession(t, sessions, project.ID)
	b := createTestSession(t, sessions, project.ID)

	require.NoError(t, client.PipelineSession.UpdateOneID(a.ID).
		SetDeletedAt(time.Now()).Exec(ctx))

	listed, err := sessions.ListByProject(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, b.ID, listed[0].ID)
}

func TestLifecycleStatusUpdates(t *testing.T) {
	_, projects, sessions, _, _ := setupServices(t)
	ctx := context.Background()
	project := createTestProject(t, projects)
	s := createTestSession(t, sessions, project.ID)

	require.NoError(t, sessions.MarkStarted(ctx, s.ID))
	got, err := sessions.GetSession(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, pipelinesession.StatusRunning, got.Status)
	require.NotNil(t, got.StartTime)

	require.NoError(t, sessions.UpdateStatus(ctx, s.ID, pipelinesession.StatusPaused))

	require.NoError(t, sessions.MarkEnded(ctx, s.ID, pipelinesession.StatusStopped))
	got, err = sessions.GetSession(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, pipelinesession.StatusStopped, got.Status)
	require.NotNil(t, got.EndTime)

	err = sessions.MarkEnded(ctx, s.ID, pipelinesession.StatusRunning)
	assert.True(t, IsValidationError(err))

	running, err := sessions.ListByStatus(ctx, pipelinesession.StatusRunning)
	require.NoError(t, err)
	assert.Empty(t, running)
}

func TestRaiseMoviesFoundIsMonotonic(t *testing.T) {
	_, projects, sessions, _, _ := setupServices(t)
	ctx := context.Background()
	project := createTestProject(t, projects)
	s := createTestSession(t, sessions, project.ID)

	state, err := sessions.RaiseMoviesFound(ctx, s.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, state.MoviesFound)

	// A stale lower count never regresses the counter.
	state, err = sessions.RaiseMoviesFound(ctx, s.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 10, state.MoviesFound)

	state, err = sessions.RaiseMoviesFound(ctx, s.ID, 15)
	require.NoError(t, err)
	assert.Equal(t, 15, state.MoviesFound)
}

func TestUpdateStateSerializesConcurrentWriters(t *testing.T) {
	_, projects, sessions, _, _ := setupServices(t)
	ctx := context.Background()
	project := createTestProject(t, projects)
	s := createTestSession(t, sessions, project.ID)

	const writers = 8
	var wg sync.WaitGroup
	for n := 0; n < writers; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := sessions.UpdateState(ctx, s.ID, func(st *models.SessionState) error {
				st.PassCount++
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := sessions.GetSession(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, writers, got.State.PassCount, "row lock must not lose increments")
}

func TestSetStageJobIDIsWriteOnce(t *testing.T) {
	_, projects, sessions, _, _ := setupServices(t)
	ctx := context.Background()
	project := createTestProject(t, projects)
	s := createTestSession(t, sessions, project.ID)

	require.NoError(t, sessions.SetStageJobID(ctx, s.ID, models.StageImport, "job-a"))

	// Rebinding to the same id is an idempotent no-op.
	require.NoError(t, sessions.SetStageJobID(ctx, s.ID, models.StageImport, "job-a"))

	err := sessions.SetStageJobID(ctx, s.ID, models.StageImport, "job-b")
	assert.ErrorIs(t, err, ErrStageJobBound)

	got, err := sessions.GetSession(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "job-a", got.Jobs.ImportID)
}

func TestAppendClass2DJobIDGrowsMonotonically(t *testing.T) {
	_, projects, sessions, _, _ := setupServices(t)
	ctx := context.Background()
	project := createTestProject(t, projects)
	s := createTestSession(t, sessions, project.ID)

	require.NoError(t, sessions.AppendClass2DJobID(ctx, s.ID, "c1"))
	require.NoError(t, sessions.AppendClass2DJobID(ctx, s.ID, "c2"))

	got, err := sessions.GetSession(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c2"}, got.Jobs.Class2DIDs)
}

func TestAppendPassSnapshot(t *testing.T) {
	_, projects, sessions, _, _ := setupServices(t)
	ctx := context.Background()
	project := createTestProject(t, projects)
	s := createTestSession(t, sessions, project.ID)

	require.NoError(t, sessions.AppendPassSnapshot(ctx, s.ID, models.PassSnapshot{
		PassNumber: 1, CompletedAt: time.Now(), MoviesFound: 10, MoviesImported: 10,
	}))
	require.NoError(t, sessions.AppendPassSnapshot(ctx, s.ID, models.PassSnapshot{
		PassNumber: 2, CompletedAt: time.Now(), MoviesFound: 15, MoviesImported: 15,
	}))

	got, err := sessions.GetSession(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, got.PassHistory, 2)
	assert.Equal(t, 1, got.PassHistory[0].PassNumber)
	assert.Equal(t, 15, got.PassHistory[1].MoviesFound)
}

func TestDeleteSessionCascadesJobsAndActivity(t *testing.T) {
	_, projects, sessions, jobs, activity := setupServices(t)
	ctx := context.Background()
	project := createTestProject(t, projects)
	s := createTestSession(t, sessions, project.ID)

	job, err := jobs.CreateJob(ctx, CreateJobParams{
		SessionID: s.ID, ProjectID: project.ID, UserID: "user-1",
		JobName: "job001", JobType: models.StageImport,
	})
	require.NoError(t, err)
	_, err = activity.Append(ctx, s.ID, models.Activity{Event: "session_started", Message: "started"})
	require.NoError(t, err)

	require.NoError(t, sessions.DeleteSession(ctx, s.ID))

	_, err = sessions.GetSession(ctx, s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = jobs.GetJob(ctx, job.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	entries, err := activity.List(ctx, s.ID, models.ActivityFilter{})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSoftDeleteEndedBefore(t *testing.T) {
	client, projects, sessions, _, _ := setupServices(t)
	ctx := context.Background()
	project := createTestProject(t, projects)

	old := createTestSession(t, sessions, project.ID)
	recent := createTestSession(t, sessions, project.ID)
	live := createTestSession(t, sessions, project.ID)

	require.NoError(t, client.PipelineSession.UpdateOneID(old.ID).
		SetStatus(pipelinesession.StatusCompleted).
		SetEndTime(time.Now().Add(-48 * time.Hour)).Exec(ctx))
	require.NoError(t, client.PipelineSession.UpdateOneID(recent.ID).
		SetStatus(pipelinesession.StatusStopped).
		SetEndTime(time.Now().Add(-1 * time.Hour)).Exec(ctx))
	require.NoError(t, sessions.MarkStarted(ctx, live.ID))

	n, err := sessions.SoftDeleteEndedBefore(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	listed, err := sessions.ListByProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}
