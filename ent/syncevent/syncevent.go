// Code generated by ent, DO NOT EDIT.

package syncevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the syncevent type in the database.
	Label = "sync_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldParticipantID holds the string denoting the participant_id field in the database.
	FieldParticipantID = "participant_id"
	// FieldTimeRemainingMs holds the string denoting the time_remaining_ms field in the database.
	FieldTimeRemainingMs = "time_remaining_ms"
	// FieldStateSnapshot holds the string denoting the state_snapshot field in the database.
	FieldStateSnapshot = "state_snapshot"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// Table holds the table name of the syncevent in the database.
	Table = "sync_events"
)

// Columns holds all SQL columns for syncevent fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldEventType,
	FieldTimestamp,
	FieldVersion,
	FieldParticipantID,
	FieldTimeRemainingMs,
	FieldStateSnapshot,
	FieldMetadata,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
)

// EventType defines the type for the "event_type" enum field.
type EventType string

// EventType values.
const (
	EventTypeSessionCreated     EventType = "session_created"
	EventTypeSessionStarted     EventType = "session_started"
	EventTypeCycleSwitched      EventType = "cycle_switched"
	EventTypeSessionPaused      EventType = "session_paused"
	EventTypeSessionResumed     EventType = "session_resumed"
	EventTypeParticipantExpired EventType = "participant_expired"
	EventTypeSessionCompleted   EventType = "session_completed"
	EventTypeSessionCancelled   EventType = "session_cancelled"
)

func (et EventType) String() string {
	return string(et)
}

// EventTypeValidator is a validator for the "event_type" field enum values. It is called by the builders before save.
func EventTypeValidator(et EventType) error {
	switch et {
	case EventTypeSessionCreated, EventTypeSessionStarted, EventTypeCycleSwitched, EventTypeSessionPaused, EventTypeSessionResumed, EventTypeParticipantExpired, EventTypeSessionCompleted, EventTypeSessionCancelled:
		return nil
	default:
		return fmt.Errorf("syncevent: invalid enum value for event_type field: %q", et)
	}
}

// OrderOption defines the ordering options for the SyncEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByParticipantID orders the results by the participant_id field.
func ByParticipantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParticipantID, opts...).ToFunc()
}

// ByTimeRemainingMs orders the results by the time_remaining_ms field.
func ByTimeRemainingMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeRemainingMs, opts...).ToFunc()
}
