// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/synckairos/synckairos/ent/idempotencykey"
	"github.com/synckairos/synckairos/ent/schema"
	"github.com/synckairos/synckairos/ent/syncevent"
	"github.com/synckairos/synckairos/ent/syncsession"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	idempotencykeyFields := schema.IdempotencyKey{}.Fields()
	_ = idempotencykeyFields
	// idempotencykeyDescCreatedAt is the schema descriptor for created_at field.
	idempotencykeyDescCreatedAt := idempotencykeyFields[2].Descriptor()
	// idempotencykey.DefaultCreatedAt holds the default value on creation for the created_at field.
	idempotencykey.DefaultCreatedAt = idempotencykeyDescCreatedAt.Default.(func() time.Time)
	synceventFields := schema.SyncEvent{}.Fields()
	_ = synceventFields
	// synceventDescTimestamp is the schema descriptor for timestamp field.
	synceventDescTimestamp := synceventFields[2].Descriptor()
	// syncevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	syncevent.DefaultTimestamp = synceventDescTimestamp.Default.(func() time.Time)
	syncsessionFields := schema.SyncSession{}.Fields()
	_ = syncsessionFields
	// syncsessionDescCreatedAt is the schema descriptor for created_at field.
	syncsessionDescCreatedAt := syncsessionFields[3].Descriptor()
	// syncsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	syncsession.DefaultCreatedAt = syncsessionDescCreatedAt.Default.(func() time.Time)
	// syncsessionDescUpdatedAt is the schema descriptor for updated_at field.
	syncsessionDescUpdatedAt := syncsessionFields[6].Descriptor()
	// syncsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	syncsession.DefaultUpdatedAt = syncsessionDescUpdatedAt.Default.(func() time.Time)
	// syncsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	syncsession.UpdateDefaultUpdatedAt = syncsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
}
