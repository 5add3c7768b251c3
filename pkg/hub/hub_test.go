package hub

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/coder/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synckairos/synckairos/pkg/config"
	"github.com/synckairos/synckairos/pkg/models"
	"github.com/synckairos/synckairos/pkg/store"
)

// mockStateGetter implements StateGetter for reconnect tests.
type mockStateGetter struct {
	state *models.SessionState
	err   error
}

func (m *mockStateGetter) Get(_ context.Context, _ string) (*models.SessionState, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.state, nil
}

func setupTestHub(t *testing.T, getter StateGetter) (*Hub, *httptest.Server) {
	t.Helper()

	if getter == nil {
		getter = &mockStateGetter{}
	}
	h := NewHub(config.DefaultHubConfig(), getter)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		h.HandleConnection(r.Context(), conn, r.URL.Query().Get("session"), r.UserAgent())
	}))

	t.Cleanup(func() { server.Close() })
	return h, server
}

func connectWS(t *testing.T, server *httptest.Server, sessionID string) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):] + "/?session=" + sessionID
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func writeJSON(t *testing.T, conn *websocket.Conn, v any) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
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

func waitForSubscribers(t *testing.T, h *Hub, sessionID string, n int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return h.sessionSubscribers(sessionID) == n
	}, 2*time.Second, 10*time.Millisecond)
}

func TestHub_BroadcastToSessionSubscribers(t *testing.T) {
	h, server := setupTestHub(t, nil)

	conn1 := connectWS(t, server, "sess-a")
	conn2 := connectWS(t, server, "sess-a")
	connOther := connectWS(t, server, "sess-b")

	waitForSubscribers(t, h, "sess-a", 2)
	waitForSubscribers(t, h, "sess-b", 1)

	payload, _ := json.Marshal(models.StateUpdateMessage{
		Type:      models.MsgStateUpdate,
		SessionID: "sess-a",
		Version:   3,
	})
	h.Broadcast("sess-a", payload)

	for _, conn := range []*websocket.Conn{conn1, conn2} {
		msg := readJSON(t, conn)
		assert.Equal(t, models.MsgStateUpdate, msg["type"])
		assert.Equal(t, float64(3), msg["version"])
	}

	// The other session must not receive it: a subsequent ping is the
	// next message it sees.
	writeJSON(t, connOther, models.ClientMessage{Type: models.MsgPing, Timestamp: 42})
	msg := readJSON(t, connOther)
	assert.Equal(t, models.MsgPong, msg["type"])
}

func TestHub_VersionOrderingDiscardsStale(t *testing.T) {
	h, server := setupTestHub(t, nil)
	conn := connectWS(t, server, "sess-ord")
	waitForSubscribers(t, h, "sess-ord", 1)

	newer, _ := json.Marshal(models.StateUpdateMessage{Type: models.MsgStateUpdate, Version: 5})
	stale, _ := json.Marshal(models.StateUpdateMessage{Type: models.MsgStateUpdate, Version: 3})

	h.Broadcast("sess-ord", newer)
	msg := readJSON(t, conn)
	assert.Equal(t, float64(5), msg["version"])

	h.Broadcast("sess-ord", stale)

	// The stale message is dropped, so the pong arrives next.
	writeJSON(t, conn, models.ClientMessage{Type: models.MsgPing, Timestamp: 1})
	msg = readJSON(t, conn)
	assert.Equal(t, models.MsgPong, msg["type"])
}

func TestHub_PingPong(t *testing.T) {
	_, server := setupTestHub(t, nil)
	conn := connectWS(t, server, "sess-ping")

	writeJSON(t, conn, models.ClientMessage{Type: models.MsgPing, Timestamp: 1234})
	msg := readJSON(t, conn)

	assert.Equal(t, models.MsgPong, msg["type"])
	assert.Equal(t, float64(1234), msg["client_timestamp"])
	assert.NotZero(t, msg["server_timestamp"])
}

func TestHub_ReconnectBehindGetsStateSync(t *testing.T) {
	getter := &mockStateGetter{state: &models.SessionState{
		SessionID: "sess-rc",
		Version:   7,
		Status:    models.StatusRunning,
	}}
	_, server := setupTestHub(t, getter)
	conn := connectWS(t, server, "sess-rc")

	writeJSON(t, conn, models.ClientMessage{
		Type:             models.MsgReconnect,
		SessionID:        "sess-rc",
		LastKnownVersion: 4,
	})
	msg := readJSON(t, conn)

	assert.Equal(t, models.MsgStateSync, msg["type"])
	assert.Equal(t, float64(7), msg["version"])
	require.NotNil(t, msg["state"])
}

func TestHub_ReconnectCurrentGetsAck(t *testing.T) {
	getter := &mockStateGetter{state: &models.SessionState{
		SessionID: "sess-rc2",
		Version:   7,
	}}
	_, server := setupTestHub(t, getter)
	conn := connectWS(t, server, "sess-rc2")

	writeJSON(t, conn, models.ClientMessage{
		Type:             models.MsgReconnect,
		SessionID:        "sess-rc2",
		LastKnownVersion: 7,
	})
	msg := readJSON(t, conn)

	assert.Equal(t, models.MsgReconnectAck, msg["type"])
	assert.Equal(t, float64(7), msg["version"])
}

func TestHub_ParticipantFilterNarrowsExpiry(t *testing.T) {
	h, server := setupTestHub(t, nil)
	conn := connectWS(t, server, "sess-filt")
	waitForSubscribers(t, h, "sess-filt", 1)

	writeJSON(t, conn, models.ClientMessage{
		Type:          models.MsgSubscribeParticipant,
		ParticipantID: "p-mine",
	})

	// SUBSCRIBE_PARTICIPANT has no reply; wait until the filter is applied.
	require.Eventually(t, func() bool {
		h.mu.RLock()
		defer h.mu.RUnlock()
		for _, c := range h.connections {
			c.stateMu.Lock()
			f := c.participantFilter
			c.stateMu.Unlock()
			if f == "p-mine" {
				return true
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)

	other, _ := json.Marshal(models.TimeExpiredMessage{
		Type: models.MsgTimeExpired, Version: 2, ExpiredParticipantID: "p-other",
	})
	mine, _ := json.Marshal(models.TimeExpiredMessage{
		Type: models.MsgTimeExpired, Version: 3, ExpiredParticipantID: "p-mine",
	})

	h.Broadcast("sess-filt", other)
	h.Broadcast("sess-filt", mine)

	msg := readJSON(t, conn)
	assert.Equal(t, "p-mine", msg["expired_participant_id"])
}

func TestHub_AdmitQuotas(t *testing.T) {
	cfg := config.DefaultHubConfig()
	cfg.MaxConnPerIPPerMinute = 2
	h := NewHub(cfg, &mockStateGetter{})

	require.NoError(t, h.Admit("10.0.0.1"))
	require.NoError(t, h.Admit("10.0.0.1"))
	assert.ErrorIs(t, h.Admit("10.0.0.1"), ErrIPQuota)

	// Different IP has its own window.
	require.NoError(t, h.Admit("10.0.0.2"))

	// The window resets after a minute.
	h.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	require.NoError(t, h.Admit("10.0.0.1"))
}

func TestHub_AdmitInstanceFull(t *testing.T) {
	cfg := config.DefaultHubConfig()
	cfg.MaxConnections = 0
	h := NewHub(cfg, &mockStateGetter{})

	assert.ErrorIs(t, h.Admit("10.0.0.1"), ErrInstanceFull)
}

func TestHub_ShutdownClosesGoingAway(t *testing.T) {
	h, server := setupTestHub(t, nil)
	conn := connectWS(t, server, "sess-bye")
	waitForSubscribers(t, h, "sess-bye", 1)

	h.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, _, err := conn.Read(ctx)
	require.Error(t, err)
	assert.Equal(t, websocket.StatusGoingAway, websocket.CloseStatus(err))
}

func TestHub_UnregisterOnDisconnect(t *testing.T) {
	h, server := setupTestHub(t, nil)
	conn := connectWS(t, server, "sess-gone")
	waitForSubscribers(t, h, "sess-gone", 1)

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, "done"))

	require.Eventually(t, func() bool {
		return h.ActiveConnections() == 0 && h.sessionSubscribers("sess-gone") == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestListener_DispatchesStorePublishes(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	st := store.NewClient(rdb, config.DefaultRedisConfig())

	h, server := setupTestHub(t, st)
	conn := connectWS(t, server, "sess-lstn")
	waitForSubscribers(t, h, "sess-lstn", 1)

	l := NewListener(st, h)
	require.NoError(t, l.Start(context.Background()))
	t.Cleanup(l.Stop)

	payload, _ := json.Marshal(models.StateUpdateMessage{
		Type: models.MsgStateUpdate, SessionID: "sess-lstn", Version: 2,
	})
	require.NoError(t, st.PublishWS(context.Background(), "sess-lstn", payload))

	msg := readJSON(t, conn)
	assert.Equal(t, models.MsgStateUpdate, msg["type"])
	assert.Equal(t, float64(2), msg["version"])
}
