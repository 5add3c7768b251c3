// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/synckairos/synckairos/ent/syncevent"
)

// SyncEvent is the model entity for the SyncEvent schema.
type SyncEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// EventType holds the value of the "event_type" field.
	EventType syncevent.EventType `json:"event_type,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// state_snapshot.version at write time
	Version int64 `json:"version,omitempty"`
	// ParticipantID holds the value of the "participant_id" field.
	ParticipantID *string `json:"participant_id,omitempty"`
	// TimeRemainingMs holds the value of the "time_remaining_ms" field.
	TimeRemainingMs *int64 `json:"time_remaining_ms,omitempty"`
	// StateSnapshot holds the value of the "state_snapshot" field.
	StateSnapshot map[string]interface{} `json:"state_snapshot,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SyncEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case syncevent.FieldStateSnapshot, syncevent.FieldMetadata:
			values[i] = new([]byte)
		case syncevent.FieldID, syncevent.FieldVersion, syncevent.FieldTimeRemainingMs:
			values[i] = new(sql.NullInt64)
		case syncevent.FieldSessionID, syncevent.FieldEventType, syncevent.FieldParticipantID:
			values[i] = new(sql.NullString)
		case syncevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SyncEvent fields.
func (_m *SyncEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case syncevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case syncevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case syncevent.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = syncevent.EventType(value.String)
			}
		case syncevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case syncevent.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.Int64
			}
		case syncevent.FieldParticipantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field participant_id", values[i])
			} else if value.Valid {
				_m.ParticipantID = new(string)
				*_m.ParticipantID = value.String
			}
		case syncevent.FieldTimeRemainingMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_remaining_ms", values[i])
			} else if value.Valid {
				_m.TimeRemainingMs = new(int64)
				*_m.TimeRemainingMs = value.Int64
			}
		case syncevent.FieldStateSnapshot:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field state_snapshot", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StateSnapshot); err != nil {
					return fmt.Errorf("unmarshal field state_snapshot: %w", err)
				}
			}
		case syncevent.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SyncEvent.
// This includes values selected through modifiers, order, etc.
func (_m *SyncEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SyncEvent.
// Note that you need to call SyncEvent.Unwrap() before calling this method if this SyncEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SyncEvent) Update() *SyncEventUpdateOne {
	return NewSyncEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SyncEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SyncEvent) Unwrap() *SyncEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SyncEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SyncEvent) String() string {
	var builder strings.Builder
	builder.WriteString("SyncEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventType))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	if v := _m.ParticipantID; v != nil {
		builder.WriteString("participant_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TimeRemainingMs; v != nil {
		builder.WriteString("time_remaining_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("state_snapshot=")
	builder.WriteString(fmt.Sprintf("%v", _m.StateSnapshot))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteByte(')')
	return builder.String()
}

// SyncEvents is a parsable slice of SyncEvent.
type SyncEvents []*SyncEvent
