package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SyncSession holds the audit database's lagging snapshot of a session.
// One row per session, upserted on every audit event; retained indefinitely
// after the store entry expires or is deleted.
type SyncSession struct {
	ent.Schema
}

// Fields of the SyncSession.
func (SyncSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.Enum("sync_mode").
			Values("per_participant", "per_cycle", "per_group", "global", "count_up"),
		field.Enum("final_status").
			Values("pending", "running", "paused", "expired", "completed", "cancelled").
			Default("pending").
			Comment("Last observed status; final once the session reaches a terminal state"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Int("total_participants"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
	}
}

// Indexes of the SyncSession.
func (SyncSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("final_status"),
	}
}
