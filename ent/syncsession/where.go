// Code generated by ent, DO NOT EDIT.

package syncsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/synckairos/synckairos/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldEQ(FieldCompletedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// TotalParticipants applies equality check predicate on the "total_participants" field. It's identical to TotalParticipantsEQ.
func TotalParticipants(v int) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldEQ(FieldTotalParticipants, v))
}

// SyncModeEQ applies the EQ predicate on the "sync_mode" field.
func SyncModeEQ(v SyncMode) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldEQ(FieldSyncMode, v))
}

// SyncModeNEQ applies the NEQ predicate on the "sync_mode" field.
func SyncModeNEQ(v SyncMode) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldNEQ(FieldSyncMode, v))
}

// SyncModeIn applies the In predicate on the "sync_mode" field.
func SyncModeIn(vs ...SyncMode) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldIn(FieldSyncMode, vs...))
}

// SyncModeNotIn applies the NotIn predicate on the "sync_mode" field.
func SyncModeNotIn(vs ...SyncMode) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldNotIn(FieldSyncMode, vs...))
}

// FinalStatusEQ applies the EQ predicate on the "final_status" field.
func FinalStatusEQ(v FinalStatus) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldEQ(FieldFinalStatus, v))
}

// FinalStatusNEQ applies the NEQ predicate on the "final_status" field.
func FinalStatusNEQ(v FinalStatus) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldNEQ(FieldFinalStatus, v))
}

// FinalStatusIn applies the In predicate on the "final_status" field.
func FinalStatusIn(vs ...FinalStatus) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldIn(FieldFinalStatus, vs...))
}

// FinalStatusNotIn applies the NotIn predicate on the "final_status" field.
func FinalStatusNotIn(vs ...FinalStatus) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldNotIn(FieldFinalStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.SyncSession {
	return predicate.SyncSession(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.SyncSession {
	return predicate.SyncSession(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.SyncSession {
	return predicate.SyncSession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.SyncSession {
	return predicate.SyncSession(sql.FieldNotNull(FieldCompletedAt))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// TotalParticipantsEQ applies the EQ predicate on the "total_participants" field.
func TotalParticipantsEQ(v int) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldEQ(FieldTotalParticipants, v))
}

// TotalParticipantsNEQ applies the NEQ predicate on the "total_participants" field.
func TotalParticipantsNEQ(v int) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldNEQ(FieldTotalParticipants, v))
}

// TotalParticipantsIn applies the In predicate on the "total_participants" field.
func TotalParticipantsIn(vs ...int) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldIn(FieldTotalParticipants, vs...))
}

// TotalParticipantsNotIn applies the NotIn predicate on the "total_participants" field.
func TotalParticipantsNotIn(vs ...int) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldNotIn(FieldTotalParticipants, vs...))
}

// TotalParticipantsGT applies the GT predicate on the "total_participants" field.
func TotalParticipantsGT(v int) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldGT(FieldTotalParticipants, v))
}

// TotalParticipantsGTE applies the GTE predicate on the "total_participants" field.
func TotalParticipantsGTE(v int) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldGTE(FieldTotalParticipants, v))
}

// TotalParticipantsLT applies the LT predicate on the "total_participants" field.
func TotalParticipantsLT(v int) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldLT(FieldTotalParticipants, v))
}

// TotalParticipantsLTE applies the LTE predicate on the "total_participants" field.
func TotalParticipantsLTE(v int) predicate.SyncSession {
	return predicate.SyncSession(sql.FieldLTE(FieldTotalParticipants, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.SyncSession {
	return predicate.SyncSession(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.SyncSession {
	return predicate.SyncSession(sql.FieldNotNull(FieldMetadata))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SyncSession) predicate.SyncSession {
	return predicate.SyncSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SyncSession) predicate.SyncSession {
	return predicate.SyncSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SyncSession) predicate.SyncSession {
	return predicate.SyncSession(sql.NotPredicates(p))
}
