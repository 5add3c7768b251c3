// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// IdempotencyKey is the predicate function for idempotencykey builders.
type IdempotencyKey func(*sql.Selector)

// SyncEvent is the predicate function for syncevent builders.
type SyncEvent func(*sql.Selector)

// SyncSession is the predicate function for syncsession builders.
type SyncSession func(*sql.Selector)
