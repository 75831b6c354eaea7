package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryoflow/cryoflow/ent"
)

func seedEvent(t *testing.T, client *ent.Client, sessionID, channel string, createdAt time.Time) *ent.Event {
	t.Helper()
	ev, err := client.Event.Create().
		SetSessionID(sessionID).
		SetChannel(channel).
		SetPayload(map[string]any{"event": "stage_complete"}).
		SetCreatedAt(createdAt).
		Save(context.Background())
	require.NoError(t, err)
	return ev
}

func TestGetEventsAfter(t *testing.T) {
	client, projects, sessions, _, _ := setupServices(t)
	ctx := context.Background()
	project := createTestProject(t, projects)
	s := createTestSession(t, sessions, project.ID)
	events := NewEventService(client)

	channel := "project:" + project.ID
	first := seedEvent(t, client, s.ID, channel, time.Now())
	second := seedEvent(t, client, s.ID, channel, time.Now())
	seedEvent(t, client, s.ID, "project:other", time.Now())

	got, err := events.GetEventsAfter(ctx, channel, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID, "oldest first")

	got, err = events.GetEventsAfter(ctx, channel, first.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, second.ID, got[0].ID)
}

func TestDeleteOlderThan(t *testing.T) {
	client, projects, sessions, _, _ := setupServices(t)
	ctx := context.Background()
	project := createTestProject(t, projects)
	s := createTestSession(t, sessions, project.ID)
	events := NewEventService(client)

	channel := "project:" + project.ID
	seedEvent(t, client, s.ID, channel, time.Now().Add(-48*time.Hour))
	keep := seedEvent(t, client, s.ID, channel, time.Now())

	n, err := events.DeleteOlderThan(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := events.GetEventsAfter(ctx, channel, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, keep.ID, got[0].ID)
}
