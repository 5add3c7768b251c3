// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/synckairos/synckairos/ent/syncsession"
)

// SyncSession is the model entity for the SyncSession schema.
type SyncSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SyncMode holds the value of the "sync_mode" field.
	SyncMode syncsession.SyncMode `json:"sync_mode,omitempty"`
	// Last observed status; final once the session reaches a terminal state
	FinalStatus syncsession.FinalStatus `json:"final_status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// TotalParticipants holds the value of the "total_participants" field.
	TotalParticipants int `json:"total_participants,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SyncSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case syncsession.FieldMetadata:
			values[i] = new([]byte)
		case syncsession.FieldTotalParticipants:
			values[i] = new(sql.NullInt64)
		case syncsession.FieldID, syncsession.FieldSyncMode, syncsession.FieldFinalStatus:
			values[i] = new(sql.NullString)
		case syncsession.FieldCreatedAt, syncsession.FieldStartedAt, syncsession.FieldCompletedAt, syncsession.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SyncSession fields.
func (_m *SyncSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case syncsession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case syncsession.FieldSyncMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sync_mode", values[i])
			} else if value.Valid {
				_m.SyncMode = syncsession.SyncMode(value.String)
			}
		case syncsession.FieldFinalStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_status", values[i])
			} else if value.Valid {
				_m.FinalStatus = syncsession.FinalStatus(value.String)
			}
		case syncsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case syncsession.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case syncsession.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case syncsession.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case syncsession.FieldTotalParticipants:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_participants", values[i])
			} else if value.Valid {
				_m.TotalParticipants = int(value.Int64)
			}
		case syncsession.FieldMetadata:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SyncSession.
// This includes values selected through modifiers, order, etc.
func (_m *SyncSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SyncSession.
// Note that you need to call SyncSession.Unwrap() before calling this method if this SyncSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SyncSession) Update() *SyncSessionUpdateOne {
	return NewSyncSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SyncSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SyncSession) Unwrap() *SyncSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SyncSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SyncSession) String() string {
	var builder strings.Builder
	builder.WriteString("SyncSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sync_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.SyncMode))
	builder.WriteString(", ")
	builder.WriteString("final_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.FinalStatus))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("total_participants=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalParticipants))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteByte(')')
	return builder.String()
}

// SyncSessions is a parsable slice of SyncSession.
type SyncSessions []*SyncSession
