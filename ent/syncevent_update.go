// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/synckairos/synckairos/ent/predicate"
	"github.com/synckairos/synckairos/ent/syncevent"
)

// SyncEventUpdate is the builder for updating SyncEvent entities.
type SyncEventUpdate struct {
	config
	hooks    []Hook
	mutation *SyncEventMutation
}

// Where appends a list predicates to the SyncEventUpdate builder.
func (_u *SyncEventUpdate) Where(ps ...predicate.SyncEvent) *SyncEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the SyncEventMutation object of the builder.
func (_u *SyncEventUpdate) Mutation() *SyncEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SyncEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SyncEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SyncEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SyncEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SyncEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(syncevent.Table, syncevent.Columns, sqlgraph.NewFieldSpec(syncevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ParticipantIDCleared() {
		_spec.ClearField(syncevent.FieldParticipantID, field.TypeString)
	}
	if _u.mutation.TimeRemainingMsCleared() {
		_spec.ClearField(syncevent.FieldTimeRemainingMs, field.TypeInt64)
	}
	if _u.mutation.StateSnapshotCleared() {
		_spec.ClearField(syncevent.FieldStateSnapshot, field.TypeJSON)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(syncevent.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{syncevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SyncEventUpdateOne is the builder for updating a single SyncEvent entity.
type SyncEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SyncEventMutation
}

// Mutation returns the SyncEventMutation object of the builder.
func (_u *SyncEventUpdateOne) Mutation() *SyncEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SyncEventUpdate builder.
func (_u *SyncEventUpdateOne) Where(ps ...predicate.SyncEvent) *SyncEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SyncEventUpdateOne) Select(field string, fields ...string) *SyncEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SyncEvent entity.
func (_u *SyncEventUpdateOne) Save(ctx context.Context) (*SyncEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SyncEventUpdateOne) SaveX(ctx context.Context) *SyncEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SyncEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SyncEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SyncEventUpdateOne) sqlSave(ctx context.Context) (_node *SyncEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(syncevent.Table, syncevent.Columns, sqlgraph.NewFieldSpec(syncevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SyncEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, syncevent.FieldID)
		for _, f := range fields {
			if !syncevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != syncevent.FieldID {
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
	if _u.mutation.ParticipantIDCleared() {
		_spec.ClearField(syncevent.FieldParticipantID, field.TypeString)
	}
	if _u.mutation.TimeRemainingMsCleared() {
		_spec.ClearField(syncevent.FieldTimeRemainingMs, field.TypeInt64)
	}
	if _u.mutation.StateSnapshotCleared() {
		_spec.ClearField(syncevent.FieldStateSnapshot, field.TypeJSON)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(syncevent.FieldMetadata, field.TypeJSON)
	}
	_node = &SyncEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{syncevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
