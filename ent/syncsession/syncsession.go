// Code generated by ent, DO NOT EDIT.

package syncsession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the syncsession type in the database.
	Label = "sync_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldSyncMode holds the string denoting the sync_mode field in the database.
	FieldSyncMode = "sync_mode"
	// FieldFinalStatus holds the string denoting the final_status field in the database.
	FieldFinalStatus = "final_status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldTotalParticipants holds the string denoting the total_participants field in the database.
	FieldTotalParticipants = "total_participants"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// Table holds the table name of the syncsession in the database.
	Table = "sync_sessions"
)

// Columns holds all SQL columns for syncsession fields.
var Columns = []string{
	FieldID,
	FieldSyncMode,
	FieldFinalStatus,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldUpdatedAt,
	FieldTotalParticipants,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// SyncMode defines the type for the "sync_mode" enum field.
type SyncMode string

// SyncMode values.
const (
	SyncModePerParticipant SyncMode = "per_participant"
	SyncModePerCycle       SyncMode = "per_cycle"
	SyncModePerGroup       SyncMode = "per_group"
	SyncModeGlobal         SyncMode = "global"
	SyncModeCountUp        SyncMode = "count_up"
)

func (sm SyncMode) String() string {
	return string(sm)
}

// SyncModeValidator is a validator for the "sync_mode" field enum values. It is called by the builders before save.
func SyncModeValidator(sm SyncMode) error {
	switch sm {
	case SyncModePerParticipant, SyncModePerCycle, SyncModePerGroup, SyncModeGlobal, SyncModeCountUp:
		return nil
	default:
		return fmt.Errorf("syncsession: invalid enum value for sync_mode field: %q", sm)
	}
}

// FinalStatus defines the type for the "final_status" enum field.
type FinalStatus string

// FinalStatusPending is the default value of the FinalStatus enum.
const DefaultFinalStatus = FinalStatusPending

// FinalStatus values.
const (
	FinalStatusPending   FinalStatus = "pending"
	FinalStatusRunning   FinalStatus = "running"
	FinalStatusPaused    FinalStatus = "paused"
	FinalStatusExpired   FinalStatus = "expired"
	FinalStatusCompleted FinalStatus = "completed"
	FinalStatusCancelled FinalStatus = "cancelled"
)

func (fs FinalStatus) String() string {
	return string(fs)
}

// FinalStatusValidator is a validator for the "final_status" field enum values. It is called by the builders before save.
func FinalStatusValidator(fs FinalStatus) error {
	switch fs {
	case FinalStatusPending, FinalStatusRunning, FinalStatusPaused, FinalStatusExpired, FinalStatusCompleted, FinalStatusCancelled:
		return nil
	default:
		return fmt.Errorf("syncsession: invalid enum value for final_status field: %q", fs)
	}
}

// OrderOption defines the ordering options for the SyncSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySyncMode orders the results by the sync_mode field.
func BySyncMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSyncMode, opts...).ToFunc()
}

// ByFinalStatus orders the results by the final_status field.
func ByFinalStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTotalParticipants orders the results by the total_participants field.
func ByTotalParticipants(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalParticipants, opts...).ToFunc()
}
