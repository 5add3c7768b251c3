// Code generated by ent, DO NOT EDIT.

package syncevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/synckairos/synckairos/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldEQ(FieldSessionID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int64) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldEQ(FieldVersion, v))
}

// ParticipantID applies equality check predicate on the "participant_id" field. It's identical to ParticipantIDEQ.
func ParticipantID(v string) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldEQ(FieldParticipantID, v))
}

// TimeRemainingMs applies equality check predicate on the "time_remaining_ms" field. It's identical to TimeRemainingMsEQ.
func TimeRemainingMs(v int64) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldEQ(FieldTimeRemainingMs, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v EventType) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v EventType) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...EventType) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...EventType) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldNotIn(FieldEventType, vs...))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldLTE(FieldTimestamp, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int64) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int64) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int64) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int64) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int64) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int64) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int64) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int64) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldLTE(FieldVersion, v))
}

// ParticipantIDEQ applies the EQ predicate on the "participant_id" field.
func ParticipantIDEQ(v string) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldEQ(FieldParticipantID, v))
}

// ParticipantIDNEQ applies the NEQ predicate on the "participant_id" field.
func ParticipantIDNEQ(v string) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldNEQ(FieldParticipantID, v))
}

// ParticipantIDIn applies the In predicate on the "participant_id" field.
func ParticipantIDIn(vs ...string) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldIn(FieldParticipantID, vs...))
}

// ParticipantIDNotIn applies the NotIn predicate on the "participant_id" field.
func ParticipantIDNotIn(vs ...string) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldNotIn(FieldParticipantID, vs...))
}

// ParticipantIDGT applies the GT predicate on the "participant_id" field.
func ParticipantIDGT(v string) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldGT(FieldParticipantID, v))
}

// ParticipantIDGTE applies the GTE predicate on the "participant_id" field.
func ParticipantIDGTE(v string) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldGTE(FieldParticipantID, v))
}

// ParticipantIDLT applies the LT predicate on the "participant_id" field.
func ParticipantIDLT(v string) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldLT(FieldParticipantID, v))
}

// ParticipantIDLTE applies the LTE predicate on the "participant_id" field.
func ParticipantIDLTE(v string) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldLTE(FieldParticipantID, v))
}

// ParticipantIDContains applies the Contains predicate on the "participant_id" field.
func ParticipantIDContains(v string) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldContains(FieldParticipantID, v))
}

// ParticipantIDHasPrefix applies the HasPrefix predicate on the "participant_id" field.
func ParticipantIDHasPrefix(v string) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldHasPrefix(FieldParticipantID, v))
}

// ParticipantIDHasSuffix applies the HasSuffix predicate on the "participant_id" field.
func ParticipantIDHasSuffix(v string) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldHasSuffix(FieldParticipantID, v))
}

// ParticipantIDIsNil applies the IsNil predicate on the "participant_id" field.
func ParticipantIDIsNil() predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldIsNull(FieldParticipantID))
}

// ParticipantIDNotNil applies the NotNil predicate on the "participant_id" field.
func ParticipantIDNotNil() predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldNotNull(FieldParticipantID))
}

// ParticipantIDEqualFold applies the EqualFold predicate on the "participant_id" field.
func ParticipantIDEqualFold(v string) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldEqualFold(FieldParticipantID, v))
}

// ParticipantIDContainsFold applies the ContainsFold predicate on the "participant_id" field.
func ParticipantIDContainsFold(v string) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldContainsFold(FieldParticipantID, v))
}

// TimeRemainingMsEQ applies the EQ predicate on the "time_remaining_ms" field.
func TimeRemainingMsEQ(v int64) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldEQ(FieldTimeRemainingMs, v))
}

// TimeRemainingMsNEQ applies the NEQ predicate on the "time_remaining_ms" field.
func TimeRemainingMsNEQ(v int64) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldNEQ(FieldTimeRemainingMs, v))
}

// TimeRemainingMsIn applies the In predicate on the "time_remaining_ms" field.
func TimeRemainingMsIn(vs ...int64) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldIn(FieldTimeRemainingMs, vs...))
}

// TimeRemainingMsNotIn applies the NotIn predicate on the "time_remaining_ms" field.
func TimeRemainingMsNotIn(vs ...int64) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldNotIn(FieldTimeRemainingMs, vs...))
}

// TimeRemainingMsGT applies the GT predicate on the "time_remaining_ms" field.
func TimeRemainingMsGT(v int64) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldGT(FieldTimeRemainingMs, v))
}

// TimeRemainingMsGTE applies the GTE predicate on the "time_remaining_ms" field.
func TimeRemainingMsGTE(v int64) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldGTE(FieldTimeRemainingMs, v))
}

// TimeRemainingMsLT applies the LT predicate on the "time_remaining_ms" field.
func TimeRemainingMsLT(v int64) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldLT(FieldTimeRemainingMs, v))
}

// TimeRemainingMsLTE applies the LTE predicate on the "time_remaining_ms" field.
func TimeRemainingMsLTE(v int64) predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldLTE(FieldTimeRemainingMs, v))
}

// TimeRemainingMsIsNil applies the IsNil predicate on the "time_remaining_ms" field.
func TimeRemainingMsIsNil() predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldIsNull(FieldTimeRemainingMs))
}

// TimeRemainingMsNotNil applies the NotNil predicate on the "time_remaining_ms" field.
func TimeRemainingMsNotNil() predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldNotNull(FieldTimeRemainingMs))
}

// StateSnapshotIsNil applies the IsNil predicate on the "state_snapshot" field.
func StateSnapshotIsNil() predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldIsNull(FieldStateSnapshot))
}

// StateSnapshotNotNil applies the NotNil predicate on the "state_snapshot" field.
func StateSnapshotNotNil() predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldNotNull(FieldStateSnapshot))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.SyncEvent {
	return predicate.SyncEvent(sql.FieldNotNull(FieldMetadata))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SyncEvent) predicate.SyncEvent {
	return predicate.SyncEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SyncEvent) predicate.SyncEvent {
	return predicate.SyncEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SyncEvent) predicate.SyncEvent {
	return predicate.SyncEvent(sql.NotPredicates(p))
}
