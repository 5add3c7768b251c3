// Package hub maintains this instance's WebSocket socket registry and
// fans broadcast messages out to the sockets subscribed to each session.
// Cross-instance delivery rides the store's ws:{id} pattern subscription.
package hub

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/synckairos/synckairos/pkg/config"
	"github.com/synckairos/synckairos/pkg/metrics"
	"github.com/synckairos/synckairos/pkg/models"
)

// Admission errors surfaced to the HTTP handler before the upgrade.
var (
	ErrInstanceFull = errors.New("connection limit reached on this instance")
	ErrIPQuota      = errors.New("connection quota exceeded for client IP")
)

// StateGetter reads current session state for RECONNECT handling.
// Satisfied by *store.Client.
type StateGetter interface {
	Get(ctx context.Context, id string) (*models.SessionState, error)
}

// AuthFunc validates the handshake before the upgrade. It receives the raw
// request (token in query string) and the session id from the path.
type AuthFunc func(r *http.Request, sessionID string) error

// Hub manages WebSocket connections for one instance.
type Hub struct {
	cfg   *config.HubConfig
	store StateGetter

	// Active connections: connection_id → *Conn
	connections map[string]*Conn
	mu          sync.RWMutex

	// Session subscriptions: session_id → set of connection_ids
	sessions  map[string]map[string]bool
	sessionMu sync.RWMutex

	// Per-IP connection-attempt windows
	ipWindows map[string]*ipWindow
	ipMu      sync.Mutex

	now func() time.Time
}

type ipWindow struct {
	count       int
	windowStart time.Time
}

// Conn is a single WebSocket client bound to one session.
type Conn struct {
	ID        string
	SessionID string

	ws     *websocket.Conn
	sendCh chan []byte
	ctx    context.Context
	cancel context.CancelFunc

	heartbeat time.Duration

	// lastVersion enforces version ordering: broadcasts older than the
	// last delivered version are dropped for this connection.
	// participantFilter narrows TIME_EXPIRED delivery when set.
	stateMu           sync.Mutex
	lastVersion       int64
	participantFilter string
}

// NewHub creates a hub.
func NewHub(cfg *config.HubConfig, store StateGetter) *Hub {
	return &Hub{
		cfg:         cfg,
		store:       store,
		connections: make(map[string]*Conn),
		sessions:    make(map[string]map[string]bool),
		ipWindows:   make(map[string]*ipWindow),
		now:         time.Now,
	}
}

// Admit enforces the per-instance socket cap and the per-IP attempt quota.
// Called by the HTTP handler before upgrading.
func (h *Hub) Admit(ip string) error {
	h.mu.RLock()
	open := len(h.connections)
	h.mu.RUnlock()
	if open >= h.cfg.MaxConnections {
		return ErrInstanceFull
	}

	h.ipMu.Lock()
	defer h.ipMu.Unlock()
	w, ok := h.ipWindows[ip]
	now := h.now()
	if !ok || now.Sub(w.windowStart) >= time.Minute {
		h.ipWindows[ip] = &ipWindow{count: 1, windowStart: now}
		return nil
	}
	w.count++
	if w.count > h.cfg.MaxConnPerIPPerMinute {
		return ErrIPQuota
	}
	return nil
}

// HandleConnection owns a socket from after the upgrade until it closes.
// Blocks until the connection ends; the HTTP handler calls it directly.
func (h *Hub) HandleConnection(parentCtx context.Context, ws *websocket.Conn, sessionID, userAgent string) {
	ctx, cancel := context.WithCancel(parentCtx)
	c := &Conn{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		ws:        ws,
		sendCh:    make(chan []byte, h.cfg.SendQueueLen),
		ctx:       ctx,
		cancel:    cancel,
		heartbeat: h.heartbeatFor(userAgent),
	}

	ws.SetReadLimit(h.cfg.MaxPayloadBytes)

	h.register(c)
	defer h.unregister(c)

	go h.writeLoop(c)
	go h.heartbeatLoop(c)

	h.readLoop(c)
}

// heartbeatFor picks the ping interval by user agent class.
func (h *Hub) heartbeatFor(userAgent string) time.Duration {
	ua := strings.ToLower(userAgent)
	for _, marker := range []string{"mobile", "android", "iphone", "ipad"} {
		if strings.Contains(ua, marker) {
			return h.cfg.HeartbeatMobile
		}
	}
	return h.cfg.HeartbeatBrowser
}

// Broadcast delivers a raw ws:{id} payload to every local subscriber of
// the session, honoring per-connection version ordering and participant
// filters. Snapshot-then-send: no lock is held during writes.
func (h *Hub) Broadcast(sessionID string, payload []byte) {
	h.sessionMu.RLock()
	connIDs, exists := h.sessions[sessionID]
	if !exists {
		h.sessionMu.RUnlock()
		return
	}
	ids := make([]string, 0, len(connIDs))
	for id := range connIDs {
		ids = append(ids, id)
	}
	h.sessionMu.RUnlock()

	h.mu.RLock()
	conns := make([]*Conn, 0, len(ids))
	for _, id := range ids {
		if c, ok := h.connections[id]; ok {
			conns = append(conns, c)
		}
	}
	h.mu.RUnlock()

	if len(conns) == 0 {
		return
	}

	var env broadcastEnvelope
	known := json.Unmarshal(payload, &env) == nil

	for _, c := range conns {
		if known && !c.wants(&env) {
			continue
		}
		h.trySend(c, payload)
	}
}

// broadcastEnvelope is the subset of engine messages the hub inspects for
// ordering and filtering.
type broadcastEnvelope struct {
	Type                 string `json:"type"`
	Version              int64  `json:"version"`
	ExpiredParticipantID string `json:"expired_participant_id"`
}

// wants reports whether the connection should receive the message, and
// advances its version watermark when it does.
func (c *Conn) wants(env *broadcastEnvelope) bool {
	c.stateMu.Lock()
	defer c.stateMu.Unlock()

	if env.Version > 0 && env.Version < c.lastVersion {
		return false
	}
	if c.participantFilter != "" && env.Type == models.MsgTimeExpired &&
		env.ExpiredParticipantID != c.participantFilter {
		return false
	}
	if env.Version > c.lastVersion {
		c.lastVersion = env.Version
	}
	return true
}

// trySend enqueues without blocking; a full queue marks the consumer slow
// and disconnects it to prevent head-of-line blocking.
func (h *Hub) trySend(c *Conn, payload []byte) {
	select {
	case c.sendCh <- payload:
	default:
		slog.Warn("Slow WebSocket consumer, disconnecting",
			"connection_id", c.ID, "session_id", c.SessionID)
		go h.closeConn(c, websocket.StatusPolicyViolation, "slow consumer")
	}
}

func (h *Hub) writeLoop(c *Conn) {
	for {
		select {
		case <-c.ctx.Done():
			return
		case payload := <-c.sendCh:
			writeCtx, cancel := context.WithTimeout(c.ctx, h.cfg.WriteTimeout)
			err := c.ws.Write(writeCtx, websocket.MessageText, payload)
			cancel()
			if err != nil {
				c.cancel()
				return
			}
			metrics.WSMessagesSent.Inc()
		}
	}
}

// heartbeatLoop pings on the per-agent interval. Ping waits for the pong;
// MissedPongLimit consecutive failures close the socket with 1011.
func (h *Hub) heartbeatLoop(c *Conn) {
	ticker := time.NewTicker(c.heartbeat)
	defer ticker.Stop()

	missed := 0
	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(c.ctx, c.heartbeat)
			err := c.ws.Ping(pingCtx)
			cancel()
			if err != nil {
				if c.ctx.Err() != nil {
					return
				}
				missed++
				if missed >= h.cfg.MissedPongLimit {
					h.closeConn(c, websocket.StatusInternalError, "missed pongs")
					return
				}
				continue
			}
			missed = 0
		}
	}
}

func (h *Hub) readLoop(c *Conn) {
	windowStart := h.now()
	windowCount := 0

	for {
		_, data, err := c.ws.Read(c.ctx)
		if err != nil {
			return
		}

		// Per-connection client message budget.
		now := h.now()
		if now.Sub(windowStart) >= time.Minute {
			windowStart = now
			windowCount = 0
		}
		windowCount++
		if windowCount > h.cfg.MaxMessagesPerMinute {
			h.closeConn(c, websocket.StatusPolicyViolation, "message rate exceeded")
			return
		}

		var msg models.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message", "connection_id", c.ID, "error", err)
			continue
		}
		h.handleClientMessage(c, &msg)
	}
}

func (h *Hub) handleClientMessage(c *Conn, msg *models.ClientMessage) {
	switch msg.Type {
	case models.MsgPing:
		h.sendJSON(c, models.PongMessage{
			Type:            models.MsgPong,
			ClientTimestamp: msg.Timestamp,
			ServerTimestamp: h.now().UnixMilli(),
		})

	case models.MsgReconnect:
		h.handleReconnect(c, msg)

	case models.MsgSubscribeParticipant:
		c.stateMu.Lock()
		c.participantFilter = msg.ParticipantID
		c.stateMu.Unlock()

	default:
		slog.Debug("Unknown client message type",
			"connection_id", c.ID, "type", msg.Type)
	}
}

// handleReconnect replies with a full STATE_SYNC when the client's last
// known version lags the store, else a bare RECONNECT_ACK.
func (h *Hub) handleReconnect(c *Conn, msg *models.ClientMessage) {
	ctx, cancel := context.WithTimeout(c.ctx, 5*time.Second)
	defer cancel()

	state, err := h.store.Get(ctx, c.SessionID)
	if err != nil || state == nil {
		slog.Warn("Reconnect state fetch failed",
			"connection_id", c.ID, "session_id", c.SessionID, "error", err)
		h.sendJSON(c, models.ReconnectAckMessage{
			Type:      models.MsgReconnectAck,
			SessionID: c.SessionID,
			Timestamp: h.now().UTC().Format(time.RFC3339Nano),
		})
		return
	}

	if state.Version > msg.LastKnownVersion {
		c.stateMu.Lock()
		if state.Version > c.lastVersion {
			c.lastVersion = state.Version
		}
		c.stateMu.Unlock()
		h.sendJSON(c, models.StateSyncMessage{
			Type:      models.MsgStateSync,
			SessionID: c.SessionID,
			Version:   state.Version,
			State:     state,
			Timestamp: h.now().UTC().Format(time.RFC3339Nano),
		})
		return
	}

	h.sendJSON(c, models.ReconnectAckMessage{
		Type:      models.MsgReconnectAck,
		SessionID: c.SessionID,
		Version:   state.Version,
		Timestamp: h.now().UTC().Format(time.RFC3339Nano),
	})
}

func (h *Hub) sendJSON(c *Conn, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket message", "connection_id", c.ID, "error", err)
		return
	}
	h.trySend(c, data)
}

func (h *Hub) register(c *Conn) {
	h.mu.Lock()
	h.connections[c.ID] = c
	h.mu.Unlock()

	h.sessionMu.Lock()
	if _, ok := h.sessions[c.SessionID]; !ok {
		h.sessions[c.SessionID] = make(map[string]bool)
	}
	h.sessions[c.SessionID][c.ID] = true
	h.sessionMu.Unlock()

	metrics.WSConnections.Inc()
}

func (h *Hub) unregister(c *Conn) {
	h.sessionMu.Lock()
	if subs, ok := h.sessions[c.SessionID]; ok {
		delete(subs, c.ID)
		if len(subs) == 0 {
			delete(h.sessions, c.SessionID)
		}
	}
	h.sessionMu.Unlock()

	h.mu.Lock()
	delete(h.connections, c.ID)
	h.mu.Unlock()

	c.cancel()
	_ = c.ws.Close(websocket.StatusNormalClosure, "")
	metrics.WSConnections.Dec()
}

func (h *Hub) closeConn(c *Conn, code websocket.StatusCode, reason string) {
	_ = c.ws.Close(code, reason)
	c.cancel()
}

// ActiveConnections returns the number of open sockets on this instance.
func (h *Hub) ActiveConnections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

// sessionSubscribers returns the subscriber count for a session.
// Unexported; used by tests to poll instead of sleeping.
func (h *Hub) sessionSubscribers(sessionID string) int {
	h.sessionMu.RLock()
	defer h.sessionMu.RUnlock()
	return len(h.sessions[sessionID])
}

// Shutdown closes every socket with 1001 (going away). Called after the
// HTTP drain during graceful shutdown.
func (h *Hub) Shutdown() {
	h.mu.RLock()
	conns := make([]*Conn, 0, len(h.connections))
	for _, c := range h.connections {
		conns = append(conns, c)
	}
	h.mu.RUnlock()

	for _, c := range conns {
		_ = c.ws.Close(websocket.StatusGoingAway, "server shutting down")
		c.cancel()
	}
}
