// Package events provides real-time event delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN. The orchestrator publishes live_session_update
// messages on a project-scoped channel; dashboards subscribe per project
// and catch up on missed events from the persisted events table after a
// reconnect.
package events

// EventTypeLiveSessionUpdate is the single event type the orchestrator
// publishes. The payload's Event field carries the activity kind
// (session_started, stage_submitted, stage_complete, pipeline_complete,
// error, ...).
const EventTypeLiveSessionUpdate = "live_session_update"

// GlobalSessionsChannel receives a transient copy of every session-level
// update. The session list page subscribes to it.
const GlobalSessionsChannel = "sessions"

// ProjectChannel returns the channel name carrying a project's session
// updates. Format: "project:{project_id}"
func ProjectChannel(projectID string) string {
	return "project:" + projectID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "project:abc-123")
	LastEventID *int   `json:"last_event_id,omitempty"` // For catchup
}
