package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryoflow/cryoflow/pkg/models"
)

func seedActivity(t *testing.T, activity *ActivityService, sessionID string) {
	t.Helper()
	ctx := context.Background()
	entries := []models.Activity{
		{Event: "session_started", Message: "session started", Level: models.LevelInfo},
		{Event: "stage_submitted", Message: "submitted import", Level: models.LevelInfo, Stage: models.StageImport, JobName: "job001", PassNumber: 1},
		{Event: "stage_complete", Message: "import finished", Level: models.LevelSuccess, Stage: models.StageImport, JobName: "job001", PassNumber: 1},
		{Event: "stage_submitted", Message: "submitted motion", Level: models.LevelInfo, Stage: models.StageMotion, JobName: "job002", PassNumber: 1},
		{Event: "error", Message: "motion failed: Segmentation fault", Level: models.LevelError, Stage: models.StageMotion, JobName: "job002", PassNumber: 1,
			Context: map[string]any{"exit_code": "139"}},
	}
	for _, a := range entries {
		_, err := activity.Append(ctx, sessionID, a)
		require.NoError(t, err)
	}
}

func TestAppendAndListActivity(t *testing.T) {
	_, projects, sessions, _, activity := setupServices(t)
	ctx := context.Background()
	project := createTestProject(t, projects)
	s := createTestSession(t, sessions, project.ID)
	seedActivity(t, activity, s.ID)

	entries, err := activity.List(ctx, s.ID, models.ActivityFilter{})
	require.NoError(t, err)
	assert.Len(t, entries, 5)
}

func TestAppendValidation(t *testing.T) {
	_, projects, sessions, _, activity := setupServices(t)
	ctx := context.Background()
	project := createTestProject(t, projects)
	s := createTestSession(t, sessions, project.ID)

	_, err := activity.Append(ctx, s.ID, models.Activity{Message: "no event"})
	assert.True(t, IsValidationError(err))
	_, err = activity.Append(ctx, "", models.Activity{Event: "x"})
	assert.True(t, IsValidationError(err))
}

func TestListActivityFilters(t *testing.T) {
	_, projects, sessions, _, activity := setupServices(t)
	ctx := context.Background()
	project := createTestProject(t, projects)
	s := createTestSession(t, sessions, project.ID)
	seedActivity(t, activity, s.ID)

	byLevel, err := activity.List(ctx, s.ID, models.ActivityFilter{Level: models.LevelError})
	require.NoError(t, err)
	require.Len(t, byLevel, 1)
	assert.Equal(t, "error", byLevel[0].Event)
	assert.Equal(t, "139", byLevel[0].Context["exit_code"])

	byStage, err := activity.List(ctx, s.ID, models.ActivityFilter{Stage: models.StageMotion})
	require.NoError(t, err)
	assert.Len(t, byStage, 2)

	bySearch, err := activity.List(ctx, s.ID, models.ActivityFilter{Search: "segmentation"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Contains(t, bySearch[0].Message, "Segmentation fault")

	paged, err := activity.List(ctx, s.ID, models.ActivityFilter{Limit: 2, Offset: 1})
	require.NoError(t, err)
	assert.Len(t, paged, 2)
}

func TestListActivityScopedToSession(t *testing.T) {
	_, projects, sessions, _, activity := setupServices(t)
	ctx := context.Background()
	project := createTestProject(t, projects)
	a := createTestSession(t, sessions, project.ID)
	b := createTestSession(t, sessions, project.ID)
	seedActivity(t, activity, a.ID)

	entries, err := activity.List(ctx, b.ID, models.ActivityFilter{})
	require.NoError(t, err)
	assert.Empty(t, entries)
}
