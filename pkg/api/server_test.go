package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryoflow/cryoflow/ent"
	"github.com/cryoflow/cryoflow/pkg/cluster"
	"github.com/cryoflow/cryoflow/pkg/config"
	"github.com/cryoflow/cryoflow/pkg/events"
	"github.com/cryoflow/cryoflow/pkg/models"
	"github.com/cryoflow/cryoflow/pkg/orchestrator"
	"github.com/cryoflow/cryoflow/pkg/services"
	"github.com/cryoflow/cryoflow/pkg/watch"
	"github.com/cryoflow/cryoflow/test/util"
)

type fakeDriver struct {
	mu        sync.Mutex
	submitted []cluster.SubmitRequest
	cancelled []string
	next      int
	events    chan cluster.StatusChange
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{events: make(chan cluster.StatusChange, 16)}
}

func (d *fakeDriver) Submit(_ context.Context, req cluster.SubmitRequest) (cluster.SubmitResult, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.next++
	d.submitted = append(d.submitted, req)
	return cluster.SubmitResult{ClusterJobID: fmt.Sprintf("c%d", d.next)}, nil
}

func (d *fakeDriver) Cancel(_ context.Context, clusterJobID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelled = append(d.cancelled, clusterJobID)
	return nil
}

func (d *fakeDriver) JobDetails(context.Context, string) (cluster.JobDetails, error) {
	return cluster.JobDetails{}, nil
}

func (d *fakeDriver) Events() <-chan cluster.StatusChange { return d.events }

type fakeWatcher struct {
	mu     sync.Mutex
	active map[string]bool
	events chan watch.Event
}

func newFakeWatcher() *fakeWatcher {
	return &fakeWatcher{active: make(map[string]bool), events: make(chan watch.Event, 16)}
}

func (w *fakeWatcher) Start(_ context.Context, p watch.StartParams) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.active[p.SessionID] = true
	return nil
}

func (w *fakeWatcher) Stop(sessionID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.active, sessionID)
}

func (w *fakeWatcher) StopAll() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.active = make(map[string]bool)
}

func (w *fakeWatcher) Active(sessionID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.active[sessionID]
}

func (w *fakeWatcher) FileCount(string) int { return 0 }

func (w *fakeWatcher) Events() <-chan watch.Event { return w.events }

type fakePublisher struct{}

func (fakePublisher) PublishLiveSessionUpdate(context.Context, events.LiveSessionUpdatePayload) error {
	return nil
}

type apiEnv struct {
	router      *gin.Engine
	client      *ent.Client
	sessions    *services.SessionService
	jobs        *services.JobService
	activity    *services.ActivityService
	projects    *services.ProjectService
	watcher     *fakeWatcher
	driver      *fakeDriver
	projectID   string
	projectPath string
	watchDir    string
}

func setupAPI(t *testing.T) *apiEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client, db := util.SetupTestDatabase(t)

	sessions := services.NewSessionService(client)
	jobs := services.NewJobService(client)
	activity := services.NewActivityService(client)
	projects := services.NewProjectService(client)
	eventSvc := services.NewEventService(client)

	watcher := newFakeWatcher()
	driver := newFakeDriver()
	orch := orchestrator.New(
		config.DefaultOrchestratorConfig(),
		config.DefaultSlurmConfig(),
		sessions, jobs, activity, projects,
		watcher, driver, fakePublisher{},
	)

	connManager := events.NewConnectionManager(events.NewEventServiceAdapter(eventSvc), 5*time.Second)

	server := NewServer(sessions, jobs, activity, projects, orch, connManager, db)
	router := gin.New()
	server.RegisterRoutes(router)

	env := &apiEnv{
		router:      router,
		client:      client,
		sessions:    sessions,
		jobs:        jobs,
		activity:    activity,
		projects:    projects,
		watcher:     watcher,
		driver:      driver,
		projectPath: t.TempDir(),
		watchDir:    t.TempDir(),
	}

	project, err := projects.CreateProject(context.Background(), "test project", env.projectPath)
	require.NoError(t, err)
	env.projectID = project.ID
	return env
}

func (e *apiEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *apiEnv) sessionBody() CreateSessionBody {
	return CreateSessionBody{
		ProjectID:      e.projectID,
		UserID:         "user-1",
		SessionName:    "grid7",
		InputMode:      "watch",
		WatchDirectory: e.watchDir,
		FilePattern:    "*.tiff",
		Optics: models.OpticsConfig{
			PixelSize:           1.07,
			Voltage:             300,
			SphericalAberration: 2.7,
			AmplitudeContrast:   0.1,
		},
		Motion:     models.MotionConfig{Enabled: true, PatchX: 5, PatchY: 5, BinFactor: 1},
		Ctf:        models.CtfConfig{Enabled: true, DefocusMin: 5000, DefocusMax: 50000, DefocusStep: 500},
		Picking:    models.PickingConfig{Enabled: true, UseLoG: true, DiameterMin: 150, DiameterMax: 180},
		Extraction: models.ExtractionConfig{Enabled: true, BoxSize: 256, Normalize: true},
		Class2D:    Class2DBody{Enabled: false},
		Slurm:      models.SlurmConfig{Partition: "gpu", MPIProcs: 1, Threads: 4},
	}
}

func (e *apiEnv) createSession(t *testing.T) string {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/api/v1/sessions", e.sessionBody())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	return id
}

func TestHealthEndpoint(t *testing.T) {
	env := setupAPI(t)

	rec := env.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Contains(t, body, "database")
}

func TestCreateSessionValidation(t *testing.T) {
	env := setupAPI(t)

	body := env.sessionBody()
	body.SessionName = ""
	rec := env.do(t, http.MethodPost, "/api/v1/sessions", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "session_name")

	body = env.sessionBody()
	body.InputMode = "streaming"
	rec = env.do(t, http.MethodPost, "/api/v1/sessions", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateAndGetSession(t *testing.T) {
	env := setupAPI(t)
	id := env.createSession(t)

	rec := env.do(t, http.MethodGet, "/api/v1/sessions/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, id, body["id"])
	assert.Equal(t, "pending", body["status"])
	assert.Equal(t, "grid7", body["session_name"])
}

func TestGetSessionNotFound(t *testing.T) {
	env := setupAPI(t)

	rec := env.do(t, http.MethodGet, "/api/v1/sessions/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSessionLifecycleVerbs(t *testing.T) {
	env := setupAPI(t)
	id := env.createSession(t)

	rec := env.do(t, http.MethodPost, "/api/v1/sessions/"+id+"/start", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, env.watcher.Active(id))

	sess, err := env.sessions.GetSession(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "running", string(sess.Status))

	rec = env.do(t, http.MethodPost, "/api/v1/sessions/"+id+"/pause", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/sessions/"+id+"/resume", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/sessions/"+id+"/stop", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, env.watcher.Active(id))

	sess, err = env.sessions.GetSession(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "stopped", string(sess.Status))

	// A stopped session cannot be restarted.
	rec = env.do(t, http.MethodPost, "/api/v1/sessions/"+id+"/start", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResumeRequiresPausedSession(t *testing.T) {
	env := setupAPI(t)
	id := env.createSession(t)

	rec := env.do(t, http.MethodPost, "/api/v1/sessions/"+id+"/resume", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteStopsRunningSession(t *testing.T) {
	env := setupAPI(t)
	id := env.createSession(t)

	rec := env.do(t, http.MethodPost, "/api/v1/sessions/"+id+"/start", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/v1/sessions/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.False(t, env.watcher.Active(id))

	rec = env.do(t, http.MethodGet, "/api/v1/sessions/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSessionStats(t *testing.T) {
	env := setupAPI(t)
	id := env.createSession(t)

	_, err := env.sessions.UpdateState(context.Background(), id, func(st *models.SessionState) error {
		st.MoviesFound = 42
		st.MoviesImported = 40
		st.PassCount = 3
		st.CurrentStage = "motion"
		return nil
	})
	require.NoError(t, err)

	rec := env.do(t, http.MethodGet, "/api/v1/sessions/"+id+"/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats StatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, id, stats.SessionID)
	assert.Equal(t, 42, stats.State.MoviesFound)
	assert.Equal(t, 40, stats.State.MoviesImported)
	assert.Equal(t, 3, stats.State.PassCount)
	assert.Equal(t, "motion", stats.State.CurrentStage)
}

func TestSessionExposures(t *testing.T) {
	env := setupAPI(t)
	id := env.createSession(t)

	ctx := context.Background()
	job, err := env.jobs.CreateJob(ctx, services.CreateJobParams{
		SessionID:      id,
		ProjectID:      env.projectID,
		UserID:         "user-1",
		JobName:        "job001",
		JobType:        "motion",
		OutputFilePath: "MotionCorr/job001/corrected_micrographs.star",
		Command:        []string{"relion_run_motioncorr"},
	})
	require.NoError(t, err)
	require.NoError(t, env.jobs.MarkSubmitted(ctx, job.ID, "c1"))
	require.NoError(t, env.jobs.MarkCompleted(ctx, job.ID, "success", "", &models.PipelineStats{MicrographCount: 17}))

	rec := env.do(t, http.MethodGet, "/api/v1/sessions/"+id+"/exposures", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Exposures []ExposureRow `json:"exposures"`
		Count     int           `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 1, body.Count)
	assert.Equal(t, "job001", body.Exposures[0].JobName)
	assert.Equal(t, "motion", body.Exposures[0].JobType)
	assert.Equal(t, 17, body.Exposures[0].MicrographCount)
}

func TestSessionActivityFilters(t *testing.T) {
	env := setupAPI(t)
	id := env.createSession(t)

	ctx := context.Background()
	_, err := env.activity.Append(ctx, id, models.Activity{
		Event: "stage_submitted", Message: "ctf submitted", Level: models.LevelInfo, Stage: models.StageCtf,
	})
	require.NoError(t, err)
	_, err = env.activity.Append(ctx, id, models.Activity{
		Event: "error", Message: "ctf failed", Level: models.LevelError, Stage: models.StageCtf,
	})
	require.NoError(t, err)

	rec := env.do(t, http.MethodGet, "/api/v1/sessions/"+id+"/activity?level=error", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)

	rec = env.do(t, http.MethodGet, "/api/v1/sessions/"+id+"/activity?level=noisy", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/sessions/"+id+"/activity?stage=teleport", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListProjectSessions(t *testing.T) {
	env := setupAPI(t)
	env.createSession(t)

	body := env.sessionBody()
	body.SessionName = "grid8"
	rec := env.do(t, http.MethodPost, "/api/v1/sessions", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/projects/"+env.projectID+"/sessions", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, 2, list.Count)
}

func TestCreateProjectAndGet(t *testing.T) {
	env := setupAPI(t)

	rec := env.do(t, http.MethodPost, "/api/v1/projects", CreateProjectBody{Name: "krios", Path: t.TempDir()})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)

	rec = env.do(t, http.MethodGet, "/api/v1/projects/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "krios")
}
