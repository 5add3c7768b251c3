package models

// CreateSessionRequest is the body of POST /sessions.
type CreateSessionRequest struct {
	SessionID       string                   `json:"session_id"`
	SyncMode        SyncMode                 `json:"sync_mode"`
	Participants    []CreateParticipantInput `json:"participants"`
	TimePerCycleMs  int64                    `json:"time_per_cycle_ms,omitempty"`
	IncrementMs     int64                    `json:"increment_ms,omitempty"`
	MaxTimeMs       int64                    `json:"max_time_ms,omitempty"`
	ActionOnTimeout map[string]any           `json:"action_on_timeout,omitempty"`
	AutoAdvance     bool                     `json:"auto_advance,omitempty"`
	Metadata        map[string]any           `json:"metadata,omitempty"`
}

// CreateParticipantInput is one participant entry in CreateSessionRequest.
// ParticipantIndex is optional; when nil, insertion order is used.
type CreateParticipantInput struct {
	ParticipantID    string `json:"participant_id"`
	ParticipantIndex *int   `json:"participant_index,omitempty"`
	TotalTimeMs      int64  `json:"total_time_ms"`
	GroupID          string `json:"group_id,omitempty"`
}

// SwitchRequest is the body of POST /sessions/{id}/switch. Both fields are
// optional; without NextParticipantID the engine rotates by index.
type SwitchRequest struct {
	CurrentParticipantID string `json:"current_participant_id,omitempty"`
	NextParticipantID    string `json:"next_participant_id,omitempty"`
}

// SwitchResult is returned by the engine's SwitchCycle and serialized as the
// switch response body.
type SwitchResult struct {
	State                *SessionState `json:"state"`
	ExpiredParticipantID string        `json:"expired_participant_id,omitempty"`
	AppliedAction        string        `json:"applied_action,omitempty"`
}

// BatchRequest is the body of POST /sessions/batch.
type BatchRequest struct {
	SessionIDs []string `json:"session_ids"`
}

// BatchResponse maps each requested id to its state; ids absent from the
// store (and audit) are listed in Missing.
type BatchResponse struct {
	Sessions map[string]*SessionState `json:"sessions"`
	Missing  []string                 `json:"missing,omitempty"`
}

// TimeResponse is the body of GET /time.
type TimeResponse struct {
	TimestampMs int64 `json:"timestamp_ms"`
}
