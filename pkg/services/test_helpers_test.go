package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cryoflow/cryoflow/ent"
	"github.com/cryoflow/cryoflow/pkg/models"
	"github.com/cryoflow/cryoflow/test/util"
)

// setupServices wires all services against a fresh per-test schema.
func setupServices(t *testing.T) (*ent.Client, *ProjectService, *SessionService, *JobService, *ActivityService) {
	client, _ := util.SetupTestDatabase(t)
	return client,
		NewProjectService(client),
		NewSessionService(client),
		NewJobService(client),
		NewActivityService(client)
}

func createTestProject(t *testing.T, projects *ProjectService) *ent.Project {
	t.Helper()
	p, err := projects.CreateProject(context.Background(), "test-project", "/data/projects/test")
	require.NoError(t, err)
	return p
}

func testSessionRequest(projectID string) CreateSessionRequest {
	return CreateSessionRequest{
		ProjectID:      projectID,
		UserID:         "user-1",
		SessionName:    "grid1-collection",
		InputMode:      models.InputModeWatch,
		WatchDirectory: "/data/microscope/grid1",
		FilePattern:    "*.tiff",
		Optics: models.OpticsConfig{
			PixelSize: 1.06, Voltage: 300, SphericalAberration: 2.7, AmplitudeContrast: 0.1,
		},
		Motion:     models.MotionConfig{Enabled: true, PatchX: 5, PatchY: 5, BinFactor: 1, DosePerFrame: 1.2},
		Ctf:        models.CtfConfig{Enabled: true, DefocusMin: 5000, DefocusMax: 50000, DefocusStep: 500},
		Picking:    models.PickingConfig{Enabled: true, UseLoG: true, DiameterMin: 100, DiameterMax: 150},
		Extraction: models.ExtractionConfig{Enabled: true, BoxSize: 256},
		Class2D:    models.Class2DConfig{Enabled: false, ClassCount: 50, ParticleThreshold: 10000, MaskDiameter: 160},
		Slurm:      models.SlurmConfig{Partition: "cryo", MPIProcs: 1, Threads: 8, GPUCount: 1},
	}
}

func createTestSession(t *testing.T, sessions *SessionService, projectID string) *ent.PipelineSession {
	t.Helper()
	s, err := sessions.CreateSession(context.Background(), testSessionRequest(projectID))
	require.NoError(t, err)
	return s
}
