package events

import (
	"time"

	"github.com/cryoflow/cryoflow/pkg/models"
)

// LiveSessionUpdatePayload is the payload for live_session_update events.
// Data is an open-ended map mirroring the activity entry's context.
type LiveSessionUpdatePayload struct {
	Type      string               `json:"type"` // always EventTypeLiveSessionUpdate
	SessionID string               `json:"session_id"`
	ProjectID string               `json:"project_id"`
	Event     string               `json:"event"` // activity kind
	Level     models.ActivityLevel `json:"level"`
	Data      map[string]any       `json:"data,omitempty"`
	Timestamp string               `json:"timestamp"` // RFC3339Nano
}

// NewLiveSessionUpdate builds a payload stamped with the current time.
func NewLiveSessionUpdate(projectID, sessionID, event string, level models.ActivityLevel, data map[string]any) LiveSessionUpdatePayload {
	return LiveSessionUpdatePayload{
		Type:      EventTypeLiveSessionUpdate,
		SessionID: sessionID,
		ProjectID: projectID,
		Event:     event,
		Level:     level,
		Data:      data,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	}
}
