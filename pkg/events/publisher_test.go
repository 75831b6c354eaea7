package events

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryoflow/cryoflow/pkg/models"
)

func TestNewLiveSessionUpdate(t *testing.T) {
	p := NewLiveSessionUpdate("proj-1", "sess-1", "stage_completed", models.LevelInfo, map[string]any{
		"stage": "motioncorr",
	})

	assert.Equal(t, EventTypeLiveSessionUpdate, p.Type)
	assert.Equal(t, "sess-1", p.SessionID)
	assert.Equal(t, "proj-1", p.ProjectID)
	assert.Equal(t, "stage_completed", p.Event)
	assert.Equal(t, models.LevelInfo, p.Level)
	assert.Equal(t, "motioncorr", p.Data["stage"])

	ts, err := time.Parse(time.RFC3339Nano, p.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ts, time.Minute)
}

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(NewLiveSessionUpdate("proj-1", "sess-1", "pass_started", models.LevelInfo, nil))

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, "pass_started")
		assert.NotContains(t, result, "truncated")
	})

	t.Run("truncates oversized payload to routing envelope", func(t *testing.T) {
		p := NewLiveSessionUpdate("proj-1", "sess-1", "stage_failed", models.LevelError, map[string]any{
			"stderr_preview": strings.Repeat("x", 9000),
		})
		payload, _ := json.Marshal(p)

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Less(t, len(result), 8000)

		var envelope map[string]any
		require.NoError(t, json.Unmarshal([]byte(result), &envelope))
		assert.Equal(t, EventTypeLiveSessionUpdate, envelope["type"])
		assert.Equal(t, "sess-1", envelope["session_id"])
		assert.Equal(t, "proj-1", envelope["project_id"])
		assert.Equal(t, true, envelope["truncated"])
	})
}

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	payload, _ := json.Marshal(NewLiveSessionUpdate("proj-1", "sess-1", "pass_started", models.LevelInfo, nil))

	result, err := injectDBEventIDAndTruncate(payload, 42)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(result), &m))
	assert.Equal(t, float64(42), m["db_event_id"])
	assert.Equal(t, "sess-1", m["session_id"])
}

func TestInjectDBEventIDAndTruncate_OversizedKeepsEventID(t *testing.T) {
	p := NewLiveSessionUpdate("proj-1", "sess-1", "stage_failed", models.LevelError, map[string]any{
		"relion_errors": strings.Repeat("ERROR: out of memory\n", 500),
	})
	payload, _ := json.Marshal(p)

	result, err := injectDBEventIDAndTruncate(payload, 7)
	require.NoError(t, err)
	assert.Less(t, len(result), 8000)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal([]byte(result), &envelope))
	assert.Equal(t, true, envelope["truncated"])
	assert.Equal(t, float64(7), envelope["db_event_id"])
}

func TestProjectChannel(t *testing.T) {
	assert.Equal(t, "project:abc", ProjectChannel("abc"))
}
