package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryoflow/cryoflow/ent"
	"github.com/cryoflow/cryoflow/ent/pipelinesession"
	"github.com/cryoflow/cryoflow/pkg/config"
	"github.com/cryoflow/cryoflow/pkg/models"
	"github.com/cryoflow/cryoflow/pkg/services"
	"github.com/cryoflow/cryoflow/test/util"
)

func retentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		SessionRetentionDays: 90,
		EventTTL:             1 * time.Hour,
		CleanupInterval:      1 * time.Hour,
	}
}

func createEndedSession(t *testing.T, client *ent.Client, sessions *services.SessionService, endedAgo time.Duration) string {
	t.Helper()
	ctx := context.Background()

	project, err := services.NewProjectService(client).CreateProject(ctx, "cleanup test", t.TempDir())
	require.NoError(t, err)

	session, err := sessions.CreateSession(ctx, services.CreateSessionRequest{
		ProjectID:      project.ID,
		UserID:         "user-1",
		SessionName:    "old-grid",
		InputMode:      models.InputModeWatch,
		WatchDirectory: t.TempDir(),
		FilePattern:    "*.tiff",
	})
	require.NoError(t, err)

	require.NoError(t, client.PipelineSession.UpdateOneID(session.ID).
		SetStatus(pipelinesession.StatusCompleted).
		SetEndTime(time.Now().Add(-endedAgo)).
		Exec(ctx))
	return session.ID
}

func TestServiceSoftDeletesAgedSessions(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	sessions := services.NewSessionService(client)
	eventSvc := services.NewEventService(client)
	ctx := context.Background()

	id := createEndedSession(t, client, sessions, 120*24*time.Hour)

	svc := NewService(retentionConfig(), sessions, eventSvc)
	svc.runAll(ctx)

	updated, err := client.PipelineSession.Get(ctx, id)
	require.NoError(t, err)
	assert.NotNil(t, updated.DeletedAt)
}

func TestServicePreservesRecentSessions(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	sessions := services.NewSessionService(client)
	eventSvc := services.NewEventService(client)
	ctx := context.Background()

	id := createEndedSession(t, client, sessions, time.Hour)

	svc := NewService(retentionConfig(), sessions, eventSvc)
	svc.runAll(ctx)

	updated, err := client.PipelineSession.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, updated.DeletedAt)
}

func TestServicePrunesExpiredEvents(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	sessions := services.NewSessionService(client)
	eventSvc := services.NewEventService(client)
	ctx := context.Background()

	_, err := client.Event.Create().
		SetSessionID("s1").
		SetChannel("project:p1").
		SetPayload(map[string]any{}).
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Event.Create().
		SetSessionID("s1").
		SetChannel("project:p1").
		SetPayload(map[string]any{}).
		Save(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), sessions, eventSvc)
	svc.runAll(ctx)

	remaining, err := eventSvc.GetEventsSince(ctx, "project:p1", 0, 0)
	require.NoError(t, err)
	assert.Len(t, remaining, 1, "expired event should be deleted, recent event preserved")
}
