package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SyncEvent is one immutable audit row. The state_snapshot column carries a
// full serialized SessionState, which is what the recovery loader reads
// back after a store loss. (session_id, version) uniquely identifies a
// write; a replayed job collides on it and is treated as already recorded.
type SyncEvent struct {
	ent.Schema
}

// Fields of the SyncEvent.
func (SyncEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Immutable(),
		field.Enum("event_type").
			Values("session_created", "session_started", "cycle_switched",
				"session_paused", "session_resumed", "participant_expired",
				"session_completed", "session_cancelled").
			Immutable(),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.Int64("version").
			Immutable().
			Comment("state_snapshot.version at write time"),
		field.String("participant_id").
			Optional().
			Nillable().
			Immutable(),
		field.Int64("time_remaining_ms").
			Optional().
			Nillable().
			Immutable(),
		field.JSON("state_snapshot", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Immutable(),
	}
}

// Indexes of the SyncEvent.
func (SyncEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "timestamp").
			Annotations(entsql.DescColumns("timestamp")),
		index.Fields("session_id", "version").
			Unique(),
	}
}
