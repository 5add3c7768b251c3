// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// IdempotencyKeysColumns holds the columns for the "idempotency_keys" table.
	IdempotencyKeysColumns = []*schema.Column{
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "response", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// IdempotencyKeysTable holds the schema information for the "idempotency_keys" table.
	IdempotencyKeysTable = &schema.Table{
		Name:       "idempotency_keys",
		Columns:    IdempotencyKeysColumns,
		PrimaryKey: []*schema.Column{IdempotencyKeysColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "idempotencykey_created_at",
				Unique:  false,
				Columns: []*schema.Column{IdempotencyKeysColumns[2]},
			},
		},
	}
	// SyncEventsColumns holds the columns for the "sync_events" table.
	SyncEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeEnum, Enums: []string{"session_created", "session_started", "cycle_switched", "session_paused", "session_resumed", "participant_expired", "session_completed", "session_cancelled"}},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "version", Type: field.TypeInt64},
		{Name: "participant_id", Type: field.TypeString, Nullable: true},
		{Name: "time_remaining_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "state_snapshot", Type: field.TypeJSON, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
	}
	// SyncEventsTable holds the schema information for the "sync_events" table.
	SyncEventsTable = &schema.Table{
		Name:       "sync_events",
		Columns:    SyncEventsColumns,
		PrimaryKey: []*schema.Column{SyncEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "syncevent_session_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SyncEventsColumns[1], SyncEventsColumns[3]},
				Annotation: &entsql.IndexAnnotation{
					DescColumns: map[string]bool{
						SyncEventsColumns[3].Name: true,
					},
				},
			},
			{
				Name:    "syncevent_session_id_version",
				Unique:  true,
				Columns: []*schema.Column{SyncEventsColumns[1], SyncEventsColumns[4]},
			},
		},
	}
	// SyncSessionsColumns holds the columns for the "sync_sessions" table.
	SyncSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "sync_mode", Type: field.TypeEnum, Enums: []string{"per_participant", "per_cycle", "per_group", "global", "count_up"}},
		{Name: "final_status", Type: field.TypeEnum, Enums: []string{"pending", "running", "paused", "expired", "completed", "cancelled"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "total_participants", Type: field.TypeInt},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
	}
	// SyncSessionsTable holds the schema information for the "sync_sessions" table.
	SyncSessionsTable = &schema.Table{
		Name:       "sync_sessions",
		Columns:    SyncSessionsColumns,
		PrimaryKey: []*schema.Column{SyncSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "syncsession_final_status",
				Unique:  false,
				Columns: []*schema.Column{SyncSessionsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		IdempotencyKeysTable,
		SyncEventsTable,
		SyncSessionsTable,
	}
)

func init() {
}
