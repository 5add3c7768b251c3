// Package models defines the session state model shared by the store,
// engine, hub, and API layers. The store entry is the sole authoritative
// copy of a SessionState; everything here is plain data.
package models

import (
	"time"
)

// SyncMode determines which entity is billed during a cycle.
type SyncMode string

// Sync modes.
const (
	ModePerParticipant SyncMode = "per_participant"
	ModePerCycle       SyncMode = "per_cycle"
	ModePerGroup       SyncMode = "per_group"
	ModeGlobal         SyncMode = "global"
	ModeCountUp        SyncMode = "count_up"
)

// Valid reports whether m is a known sync mode.
func (m SyncMode) Valid() bool {
	switch m {
	case ModePerParticipant, ModePerCycle, ModePerGroup, ModeGlobal, ModeCountUp:
		return true
	}
	return false
}

// HasActiveParticipant reports whether the mode marks a single participant
// as active while running. Global and count_up sessions bill the session as
// a whole and keep zero active participants.
func (m SyncMode) HasActiveParticipant() bool {
	return m == ModePerParticipant || m == ModePerCycle || m == ModePerGroup
}

// SessionStatus is the lifecycle status of a session.
type SessionStatus string

// Session statuses.
const (
	StatusPending   SessionStatus = "pending"
	StatusRunning   SessionStatus = "running"
	StatusPaused    SessionStatus = "paused"
	StatusExpired   SessionStatus = "expired"
	StatusCompleted SessionStatus = "completed"
	StatusCancelled SessionStatus = "cancelled"
)

// Valid reports whether s is a known status.
func (s SessionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusRunning, StatusPaused, StatusExpired, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether the status admits no further transitions other
// than cancellation.
func (s SessionStatus) Terminal() bool {
	return s == StatusExpired || s == StatusCompleted || s == StatusCancelled
}

// CanTransition reports whether the status graph allows from → to.
// Allowed: pending→running; running⇄paused; running→expired;
// running→completed; any→cancelled.
func CanTransition(from, to SessionStatus) bool {
	if to == StatusCancelled {
		return from != StatusCancelled
	}
	switch from {
	case StatusPending:
		return to == StatusRunning
	case StatusRunning:
		return to == StatusPaused || to == StatusExpired || to == StatusCompleted
	case StatusPaused:
		return to == StatusRunning
	}
	return false
}

// Timeout policy types the engine recognizes. Any other value in
// action_on_timeout.type continues rotation; the policy layer owns its
// further effects.
const (
	TimeoutActionEndSession = "end_session"
	TimeoutActionSkipCycle  = "skip_cycle"
	TimeoutActionAuto       = "auto_action"
)

// Participant is one billable entity within a session.
type Participant struct {
	ParticipantID    string `json:"participant_id"`
	GroupID          string `json:"group_id,omitempty"`
	ParticipantIndex int    `json:"participant_index"`
	TotalTimeMs      int64  `json:"total_time_ms"`
	TimeUsedMs       int64  `json:"time_used_ms"`
	TimeRemainingMs  int64  `json:"time_remaining_ms"`
	CycleCount       int    `json:"cycle_count"`
	IsActive         bool   `json:"is_active"`
	HasExpired       bool   `json:"has_expired"`
}

// SessionState is the authoritative session document stored under
// session:{id}. Timestamps serialize as RFC3339 UTC. Mode-dependent field
// validity is enforced by validators at the boundary, not by the type.
type SessionState struct {
	SessionID            string         `json:"session_id"`
	SyncMode             SyncMode       `json:"sync_mode"`
	Status               SessionStatus  `json:"status"`
	ActiveParticipantID  string         `json:"active_participant_id,omitempty"`
	ActiveGroupID        string         `json:"active_group_id,omitempty"`
	CycleStartedAt       *time.Time     `json:"cycle_started_at,omitempty"`
	SessionStartedAt     *time.Time     `json:"session_started_at,omitempty"`
	SessionCompletedAt   *time.Time     `json:"session_completed_at,omitempty"`
	TimePerCycleMs       int64          `json:"time_per_cycle_ms,omitempty"`
	IncrementMs          int64          `json:"increment_ms,omitempty"`
	MaxTimeMs            int64          `json:"max_time_ms,omitempty"`
	AutoAdvance          bool           `json:"auto_advance,omitempty"`
	ActionOnTimeout      map[string]any `json:"action_on_timeout,omitempty"`
	ExpiredParticipantID string         `json:"expired_participant_id,omitempty"`
	Version              int64          `json:"version"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	Metadata             map[string]any `json:"metadata,omitempty"`
	Participants         []Participant  `json:"participants"`
}

// Participant returns a pointer to the participant with the given id, or nil.
func (s *SessionState) Participant(id string) *Participant {
	for i := range s.Participants {
		if s.Participants[i].ParticipantID == id {
			return &s.Participants[i]
		}
	}
	return nil
}

// ParticipantByIndex returns a pointer to the participant with the given
// participant_index, or nil. Indexes are dense starting at 0.
func (s *SessionState) ParticipantByIndex(idx int) *Participant {
	for i := range s.Participants {
		if s.Participants[i].ParticipantIndex == idx {
			return &s.Participants[i]
		}
	}
	return nil
}

// ActiveParticipant returns a pointer to the participant currently marked
// active, or nil (always nil for global/count_up sessions).
func (s *SessionState) ActiveParticipant() *Participant {
	for i := range s.Participants {
		if s.Participants[i].IsActive {
			return &s.Participants[i]
		}
	}
	return nil
}

// TimeoutActionType returns action_on_timeout.type, or "" when no policy
// is set.
func (s *SessionState) TimeoutActionType() string {
	if s.ActionOnTimeout == nil {
		return ""
	}
	t, _ := s.ActionOnTimeout["type"].(string)
	return t
}

// Clone returns a deep copy. The engine mutates a clone and CAS-writes it,
// so a failed write never leaves a half-mutated state behind.
func (s *SessionState) Clone() *SessionState {
	out := *s
	out.Participants = make([]Participant, len(s.Participants))
	copy(out.Participants, s.Participants)
	if s.CycleStartedAt != nil {
		t := *s.CycleStartedAt
		out.CycleStartedAt = &t
	}
	if s.SessionStartedAt != nil {
		t := *s.SessionStartedAt
		out.SessionStartedAt = &t
	}
	if s.SessionCompletedAt != nil {
		t := *s.SessionCompletedAt
		out.SessionCompletedAt = &t
	}
	if s.ActionOnTimeout != nil {
		out.ActionOnTimeout = make(map[string]any, len(s.ActionOnTimeout))
		for k, v := range s.ActionOnTimeout {
			out.ActionOnTimeout[k] = v
		}
	}
	if s.Metadata != nil {
		out.Metadata = make(map[string]any, len(s.Metadata))
		for k, v := range s.Metadata {
			out.Metadata[k] = v
		}
	}
	return &out
}
