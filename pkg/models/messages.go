package models

// WebSocket message types delivered to clients.
const (
	MsgStateUpdate  = "STATE_UPDATE"
	MsgTimeExpired  = "TIME_EXPIRED"
	MsgStateSync    = "STATE_SYNC"
	MsgReconnectAck = "RECONNECT_ACK"
	MsgPong         = "PONG"
)

// Client-initiated WebSocket message types.
const (
	MsgPing                 = "PING"
	MsgReconnect            = "RECONNECT"
	MsgSubscribeParticipant = "SUBSCRIBE_PARTICIPANT"
)

// ClientMessage is the JSON structure for client → server WebSocket
// messages. Fields beyond Type are populated per message type.
type ClientMessage struct {
	Type             string `json:"type"`
	Timestamp        int64  `json:"timestamp,omitempty"`          // PING: client clock, ms
	SessionID        string `json:"session_id,omitempty"`         // RECONNECT
	LastKnownVersion int64  `json:"last_known_version,omitempty"` // RECONNECT
	ReconnectAttempt int    `json:"reconnect_attempt,omitempty"`  // RECONNECT
	ParticipantID    string `json:"participant_id,omitempty"`     // SUBSCRIBE_PARTICIPANT
}

// StateUpdateMessage carries the full new state after a mutation. The
// version doubles as the ordering key: clients discard updates older than
// their last seen version.
type StateUpdateMessage struct {
	Type      string        `json:"type"` // always MsgStateUpdate
	SessionID string        `json:"session_id"`
	Version   int64         `json:"version"`
	State     *SessionState `json:"state"`
	Timestamp string        `json:"timestamp"` // RFC3339Nano
}

// TimeExpiredMessage announces a participant running out of budget and the
// policy action the engine applied.
type TimeExpiredMessage struct {
	Type                 string        `json:"type"` // always MsgTimeExpired
	SessionID            string        `json:"session_id"`
	Version              int64         `json:"version"`
	ExpiredParticipantID string        `json:"expired_participant_id"`
	AppliedAction        string        `json:"applied_action,omitempty"`
	State                *SessionState `json:"state"`
	Timestamp            string        `json:"timestamp"`
}

// StateSyncMessage is the reply to a client RECONNECT whose
// last_known_version lags the store.
type StateSyncMessage struct {
	Type      string        `json:"type"` // always MsgStateSync
	SessionID string        `json:"session_id"`
	Version   int64         `json:"version"`
	State     *SessionState `json:"state"`
	Timestamp string        `json:"timestamp"`
}

// ReconnectAckMessage confirms a reconnection handshake when no state sync
// is needed.
type ReconnectAckMessage struct {
	Type      string `json:"type"` // always MsgReconnectAck
	SessionID string `json:"session_id"`
	Version   int64  `json:"version"`
	Timestamp string `json:"timestamp"`
}

// PongMessage echoes the client's ping timestamp alongside the server
// clock, letting clients estimate their offset.
type PongMessage struct {
	Type            string `json:"type"` // always MsgPong
	ClientTimestamp int64  `json:"client_timestamp"`
	ServerTimestamp int64  `json:"server_timestamp"` // ms
}

// UpdateEnvelope is the payload published on the session-updates channel
// (engine-to-engine bus). Deleted is set on tombstones; State is nil then.
type UpdateEnvelope struct {
	SessionID string        `json:"session_id"`
	State     *SessionState `json:"state,omitempty"`
	Deleted   bool          `json:"deleted,omitempty"`
}
