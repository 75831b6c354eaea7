package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCatchupQuerier implements CatchupQuerier for tests.
type mockCatchupQuerier struct {
	events []CatchupEvent
	err    error
}

func (m *mockCatchupQuerier) GetCatchupEvents(_ context.Context, _ string, _ int, limit int) ([]CatchupEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	if limit > 0 && len(m.events) > limit {
		return m.events[:limit], nil
	}
	return m.events, nil
}

func setupTestManager(t *testing.T, querier CatchupQuerier) (*ConnectionManager, *httptest.Server) {
	t.Helper()

	manager := NewConnectionManager(querier, 5*time.Second)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))

	t.Cleanup(func() { server.Close() })
	return manager, server
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func writeClientMessage(t *testing.T, conn *websocket.Conn, msg ClientMessage) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data, err := json.Marshal(msg)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func TestConnectionManager_ConnectionEstablished(t *testing.T) {
	_, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)

	msg := readJSON(t, conn)
	assert.Equal(t, "connection.established", msg["type"])
	assert.NotEmpty(t, msg["connection_id"])
}

func TestConnectionManager_SubscribeConfirmed(t *testing.T) {
	manager, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: "project:proj-1"})

	msg := readJSON(t, conn)
	assert.Equal(t, "subscription.confirmed", msg["type"])
	assert.Equal(t, "project:proj-1", msg["channel"])

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, manager.ActiveConnections())
	assert.Equal(t, 1, manager.subscriberCount("project:proj-1"))
}

func TestConnectionManager_Broadcast(t *testing.T) {
	manager, server := setupTestManager(t, &mockCatchupQuerier{})

	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readJSON(t, conn1)
	readJSON(t, conn2)

	writeClientMessage(t, conn1, ClientMessage{Action: "subscribe", Channel: "project:proj-2"})
	writeClientMessage(t, conn2, ClientMessage{Action: "subscribe", Channel: "project:proj-2"})
	readJSON(t, conn1) // subscription.confirmed
	readJSON(t, conn2)

	payload, _ := json.Marshal(map[string]string{
		"type":       EventTypeLiveSessionUpdate,
		"session_id": "sess-1",
		"event":      "stage_completed",
	})
	manager.Broadcast("project:proj-2", payload)

	for _, conn := range []*websocket.Conn{conn1, conn2} {
		msg := readJSON(t, conn)
		assert.Equal(t, EventTypeLiveSessionUpdate, msg["type"])
		assert.Equal(t, "sess-1", msg["session_id"])
	}
}

func TestConnectionManager_BroadcastSkipsOtherChannels(t *testing.T) {
	manager, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: "project:a"})
	readJSON(t, conn)

	manager.Broadcast("project:b", []byte(`{"type":"live_session_update"}`))
	manager.Broadcast("project:a", []byte(`{"type":"live_session_update","session_id":"only"}`))

	msg := readJSON(t, conn)
	assert.Equal(t, "only", msg["session_id"])
}

func TestConnectionManager_SubscribeTriggersCatchup(t *testing.T) {
	querier := &mockCatchupQuerier{
		events: []CatchupEvent{
			{ID: 1, Payload: map[string]any{"type": EventTypeLiveSessionUpdate, "event": "stage_submitted"}},
			{ID: 2, Payload: map[string]any{"type": EventTypeLiveSessionUpdate, "event": "stage_completed"}},
		},
	}
	_, server := setupTestManager(t, querier)
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: "project:p"})
	readJSON(t, conn) // subscription.confirmed

	first := readJSON(t, conn)
	assert.Equal(t, "stage_submitted", first["event"])
	assert.Equal(t, float64(1), first["db_event_id"])

	second := readJSON(t, conn)
	assert.Equal(t, "stage_completed", second["event"])
	assert.Equal(t, float64(2), second["db_event_id"])
}

func TestConnectionManager_CatchupOverflow(t *testing.T) {
	events := make([]CatchupEvent, catchupLimit+1)
	for i := range events {
		events[i] = CatchupEvent{ID: i + 1, Payload: map[string]any{"type": EventTypeLiveSessionUpdate}}
	}
	_, server := setupTestManager(t, &mockCatchupQuerier{events: events})
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: "project:p"})
	readJSON(t, conn) // subscription.confirmed

	for i := 0; i < catchupLimit; i++ {
		readJSON(t, conn)
	}
	overflow := readJSON(t, conn)
	assert.Equal(t, "catchup.overflow", overflow["type"])
	assert.Equal(t, true, overflow["has_more"])
}

func TestConnectionManager_UnsubscribeRemovesSubscriber(t *testing.T) {
	manager, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: "project:p"})
	readJSON(t, conn)

	writeClientMessage(t, conn, ClientMessage{Action: "unsubscribe", Channel: "project:p"})

	require.Eventually(t, func() bool {
		return manager.subscriberCount("project:p") == 0
	}, 2*time.Second, 20*time.Millisecond)
}

func TestConnectionManager_Ping(t *testing.T) {
	_, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeClientMessage(t, conn, ClientMessage{Action: "ping"})

	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_DisconnectCleansUp(t *testing.T) {
	manager, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: "project:p"})
	readJSON(t, conn)

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, ""))

	require.Eventually(t, func() bool {
		return manager.ActiveConnections() == 0 && manager.subscriberCount("project:p") == 0
	}, 2*time.Second, 20*time.Millisecond)
}
