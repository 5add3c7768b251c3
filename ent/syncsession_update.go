// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/synckairos/synckairos/ent/predicate"
	"github.com/synckairos/synckairos/ent/syncsession"
)

// SyncSessionUpdate is the builder for updating SyncSession entities.
type SyncSessionUpdate struct {
	config
	hooks    []Hook
	mutation *SyncSessionMutation
}

// Where appends a list predicates to the SyncSessionUpdate builder.
func (_u *SyncSessionUpdate) Where(ps ...predicate.SyncSession) *SyncSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSyncMode sets the "sync_mode" field.
func (_u *SyncSessionUpdate) SetSyncMode(v syncsession.SyncMode) *SyncSessionUpdate {
	_u.mutation.SetSyncMode(v)
	return _u
}

// SetNillableSyncMode sets the "sync_mode" field if the given value is not nil.
func (_u *SyncSessionUpdate) SetNillableSyncMode(v *syncsession.SyncMode) *SyncSessionUpdate {
	if v != nil {
		_u.SetSyncMode(*v)
	}
	return _u
}

// SetFinalStatus sets the "final_status" field.
func (_u *SyncSessionUpdate) SetFinalStatus(v syncsession.FinalStatus) *SyncSessionUpdate {
	_u.mutation.SetFinalStatus(v)
	return _u
}

// SetNillableFinalStatus sets the "final_status" field if the given value is not nil.
func (_u *SyncSessionUpdate) SetNillableFinalStatus(v *syncsession.FinalStatus) *SyncSessionUpdate {
	if v != nil {
		_u.SetFinalStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SyncSessionUpdate) SetCreatedAt(v time.Time) *SyncSessionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SyncSessionUpdate) SetNillableCreatedAt(v *time.Time) *SyncSessionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SyncSessionUpdate) SetStartedAt(v time.Time) *SyncSessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SyncSessionUpdate) SetNillableStartedAt(v *time.Time) *SyncSessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *SyncSessionUpdate) ClearStartedAt() *SyncSessionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SyncSessionUpdate) SetCompletedAt(v time.Time) *SyncSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SyncSessionUpdate) SetNillableCompletedAt(v *time.Time) *SyncSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SyncSessionUpdate) ClearCompletedAt() *SyncSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SyncSessionUpdate) SetUpdatedAt(v time.Time) *SyncSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTotalParticipants sets the "total_participants" field.
func (_u *SyncSessionUpdate) SetTotalParticipants(v int) *SyncSessionUpdate {
	_u.mutation.ResetTotalParticipants()
	_u.mutation.SetTotalParticipants(v)
	return _u
}

// SetNillableTotalParticipants sets the "total_participants" field if the given value is not nil.
func (_u *SyncSessionUpdate) SetNillableTotalParticipants(v *int) *SyncSessionUpdate {
	if v != nil {
		_u.SetTotalParticipants(*v)
	}
	return _u
}

// AddTotalParticipants adds value to the "total_participants" field.
func (_u *SyncSessionUpdate) AddTotalParticipants(v int) *SyncSessionUpdate {
	_u.mutation.AddTotalParticipants(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *SyncSessionUpdate) SetMetadata(v map[string]interface{}) *SyncSessionUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *SyncSessionUpdate) ClearMetadata() *SyncSessionUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the SyncSessionMutation object of the builder.
func (_u *SyncSessionUpdate) Mutation() *SyncSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SyncSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SyncSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SyncSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SyncSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SyncSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := syncsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SyncSessionUpdate) check() error {
	if v, ok := _u.mutation.SyncMode(); ok {
		if err := syncsession.SyncModeValidator(v); err != nil {
			return &ValidationError{Name: "sync_mode", err: fmt.Errorf(`ent: validator failed for field "SyncSession.sync_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FinalStatus(); ok {
		if err := syncsession.FinalStatusValidator(v); err != nil {
			return &ValidationError{Name: "final_status", err: fmt.Errorf(`ent: validator failed for field "SyncSession.final_status": %w`, err)}
		}
	}
	return nil
}

func (_u *SyncSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(syncsession.Table, syncsession.Columns, sqlgraph.NewFieldSpec(syncsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SyncMode(); ok {
		_spec.SetField(syncsession.FieldSyncMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FinalStatus(); ok {
		_spec.SetField(syncsession.FieldFinalStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(syncsession.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(syncsession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(syncsession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(syncsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(syncsession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(syncsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TotalParticipants(); ok {
		_spec.SetField(syncsession.FieldTotalParticipants, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalParticipants(); ok {
		_spec.AddField(syncsession.FieldTotalParticipants, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(syncsession.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(syncsession.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{syncsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SyncSessionUpdateOne is the builder for updating a single SyncSession entity.
type SyncSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SyncSessionMutation
}

// SetSyncMode sets the "sync_mode" field.
func (_u *SyncSessionUpdateOne) SetSyncMode(v syncsession.SyncMode) *SyncSessionUpdateOne {
	_u.mutation.SetSyncMode(v)
	return _u
}

// SetNillableSyncMode sets the "sync_mode" field if the given value is not nil.
func (_u *SyncSessionUpdateOne) SetNillableSyncMode(v *syncsession.SyncMode) *SyncSessionUpdateOne {
	if v != nil {
		_u.SetSyncMode(*v)
	}
	return _u
}

// SetFinalStatus sets the "final_status" field.
func (_u *SyncSessionUpdateOne) SetFinalStatus(v syncsession.FinalStatus) *SyncSessionUpdateOne {
	_u.mutation.SetFinalStatus(v)
	return _u
}

// SetNillableFinalStatus sets the "final_status" field if the given value is not nil.
func (_u *SyncSessionUpdateOne) SetNillableFinalStatus(v *syncsession.FinalStatus) *SyncSessionUpdateOne {
	if v != nil {
		_u.SetFinalStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SyncSessionUpdateOne) SetCreatedAt(v time.Time) *SyncSessionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SyncSessionUpdateOne) SetNillableCreatedAt(v *time.Time) *SyncSessionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SyncSessionUpdateOne) SetStartedAt(v time.Time) *SyncSessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SyncSessionUpdateOne) SetNillableStartedAt(v *time.Time) *SyncSessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *SyncSessionUpdateOne) ClearStartedAt() *SyncSessionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SyncSessionUpdateOne) SetCompletedAt(v time.Time) *SyncSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SyncSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *SyncSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SyncSessionUpdateOne) ClearCompletedAt() *SyncSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SyncSessionUpdateOne) SetUpdatedAt(v time.Time) *SyncSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTotalParticipants sets the "total_participants" field.
func (_u *SyncSessionUpdateOne) SetTotalParticipants(v int) *SyncSessionUpdateOne {
	_u.mutation.ResetTotalParticipants()
	_u.mutation.SetTotalParticipants(v)
	return _u
}

// SetNillableTotalParticipants sets the "total_participants" field if the given value is not nil.
func (_u *SyncSessionUpdateOne) SetNillableTotalParticipants(v *int) *SyncSessionUpdateOne {
	if v != nil {
		_u.SetTotalParticipants(*v)
	}
	return _u
}

// AddTotalParticipants adds value to the "total_participants" field.
func (_u *SyncSessionUpdateOne) AddTotalParticipants(v int) *SyncSessionUpdateOne {
	_u.mutation.AddTotalParticipants(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *SyncSessionUpdateOne) SetMetadata(v map[string]interface{}) *SyncSessionUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *SyncSessionUpdateOne) ClearMetadata() *SyncSessionUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the SyncSessionMutation object of the builder.
func (_u *SyncSessionUpdateOne) Mutation() *SyncSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SyncSessionUpdate builder.
func (_u *SyncSessionUpdateOne) Where(ps ...predicate.SyncSession) *SyncSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SyncSessionUpdateOne) Select(field string, fields ...string) *SyncSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SyncSession entity.
func (_u *SyncSessionUpdateOne) Save(ctx context.Context) (*SyncSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SyncSessionUpdateOne) SaveX(ctx context.Context) *SyncSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SyncSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SyncSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SyncSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := syncsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SyncSessionUpdateOne) check() error {
	if v, ok := _u.mutation.SyncMode(); ok {
		if err := syncsession.SyncModeValidator(v); err != nil {
			return &ValidationError{Name: "sync_mode", err: fmt.Errorf(`ent: validator failed for field "SyncSession.sync_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FinalStatus(); ok {
		if err := syncsession.FinalStatusValidator(v); err != nil {
			return &ValidationError{Name: "final_status", err: fmt.Errorf(`ent: validator failed for field "SyncSession.final_status": %w`, err)}
		}
	}
	return nil
}

func (_u *SyncSessionUpdateOne) sqlSave(ctx context.Context) (_node *SyncSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(syncsession.Table, syncsession.Columns, sqlgraph.NewFieldSpec(syncsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SyncSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, syncsession.FieldID)
		for _, f := range fields {
			if !syncsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != syncsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SyncMode(); ok {
		_spec.SetField(syncsession.FieldSyncMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FinalStatus(); ok {
		_spec.SetField(syncsession.FieldFinalStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(syncsession.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(syncsession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(syncsession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(syncsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(syncsession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(syncsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TotalParticipants(); ok {
		_spec.SetField(syncsession.FieldTotalParticipants, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalParticipants(); ok {
		_spec.AddField(syncsession.FieldTotalParticipants, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(syncsession.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(syncsession.FieldMetadata, field.TypeJSON)
	}
	_node = &SyncSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{syncsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
