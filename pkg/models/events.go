package models

// EventType is an audit event type. The set is closed: the audit database
// check constraint and the queue's job validation both reject anything else.
type EventType string

// Audit event types.
const (
	EventSessionCreated     EventType = "session_created"
	EventSessionStarted     EventType = "session_started"
	EventCycleSwitched      EventType = "cycle_switched"
	EventSessionPaused      EventType = "session_paused"
	EventSessionResumed     EventType = "session_resumed"
	EventParticipantExpired EventType = "participant_expired"
	EventSessionCompleted   EventType = "session_completed"
	EventSessionCancelled   EventType = "session_cancelled"
)

// Valid reports whether t is part of the closed event-type set.
func (t EventType) Valid() bool {
	switch t {
	case EventSessionCreated, EventSessionStarted, EventCycleSwitched,
		EventSessionPaused, EventSessionResumed, EventParticipantExpired,
		EventSessionCompleted, EventSessionCancelled:
		return true
	}
	return false
}
