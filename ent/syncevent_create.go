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
	"github.com/synckairos/synckairos/ent/syncevent"
)

// SyncEventCreate is the builder for creating a SyncEvent entity.
type SyncEventCreate struct {
	config
	mutation *SyncEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *SyncEventCreate) SetSessionID(v string) *SyncEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *SyncEventCreate) SetEventType(v syncevent.EventType) *SyncEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SyncEventCreate) SetTimestamp(v time.Time) *SyncEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SyncEventCreate) SetNillableTimestamp(v *time.Time) *SyncEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *SyncEventCreate) SetVersion(v int64) *SyncEventCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetParticipantID sets the "participant_id" field.
func (_c *SyncEventCreate) SetParticipantID(v string) *SyncEventCreate {
	_c.mutation.SetParticipantID(v)
	return _c
}

// SetNillableParticipantID sets the "participant_id" field if the given value is not nil.
func (_c *SyncEventCreate) SetNillableParticipantID(v *string) *SyncEventCreate {
	if v != nil {
		_c.SetParticipantID(*v)
	}
	return _c
}

// SetTimeRemainingMs sets the "time_remaining_ms" field.
func (_c *SyncEventCreate) SetTimeRemainingMs(v int64) *SyncEventCreate {
	_c.mutation.SetTimeRemainingMs(v)
	return _c
}

// SetNillableTimeRemainingMs sets the "time_remaining_ms" field if the given value is not nil.
func (_c *SyncEventCreate) SetNillableTimeRemainingMs(v *int64) *SyncEventCreate {
	if v != nil {
		_c.SetTimeRemainingMs(*v)
	}
	return _c
}

// SetStateSnapshot sets the "state_snapshot" field.
func (_c *SyncEventCreate) SetStateSnapshot(v map[string]interface{}) *SyncEventCreate {
	_c.mutation.SetStateSnapshot(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *SyncEventCreate) SetMetadata(v map[string]interface{}) *SyncEventCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// Mutation returns the SyncEventMutation object of the builder.
func (_c *SyncEventCreate) Mutation() *SyncEventMutation {
	return _c.mutation
}

// Save creates the SyncEvent in the database.
func (_c *SyncEventCreate) Save(ctx context.Context) (*SyncEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SyncEventCreate) SaveX(ctx context.Context) *SyncEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SyncEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SyncEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SyncEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := syncevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SyncEventCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SyncEvent.session_id"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "SyncEvent.event_type"`)}
	}
	if v, ok := _c.mutation.EventType(); ok {
		if err := syncevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "SyncEvent.event_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SyncEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "SyncEvent.version"`)}
	}
	return nil
}

func (_c *SyncEventCreate) sqlSave(ctx context.Context) (*SyncEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SyncEventCreate) createSpec() (*SyncEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SyncEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(syncevent.Table, sqlgraph.NewFieldSpec(syncevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(syncevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(syncevent.FieldEventType, field.TypeEnum, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(syncevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(syncevent.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.ParticipantID(); ok {
		_spec.SetField(syncevent.FieldParticipantID, field.TypeString, value)
		_node.ParticipantID = &value
	}
	if value, ok := _c.mutation.TimeRemainingMs(); ok {
		_spec.SetField(syncevent.FieldTimeRemainingMs, field.TypeInt64, value)
		_node.TimeRemainingMs = &value
	}
	if value, ok := _c.mutation.StateSnapshot(); ok {
		_spec.SetField(syncevent.FieldStateSnapshot, field.TypeJSON, value)
		_node.StateSnapshot = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(syncevent.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SyncEvent.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SyncEventUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *SyncEventCreate) OnConflict(opts ...sql.ConflictOption) *SyncEventUpsertOne {
	_c.conflict = opts
	return &SyncEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SyncEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SyncEventCreate) OnConflictColumns(columns ...string) *SyncEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SyncEventUpsertOne{
		create: _c,
	}
}

type (
	// SyncEventUpsertOne is the builder for "upsert"-ing
	//  one SyncEvent node.
	SyncEventUpsertOne struct {
		create *SyncEventCreate
	}

	// SyncEventUpsert is the "OnConflict" setter.
	SyncEventUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.SyncEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SyncEventUpsertOne) UpdateNewValues() *SyncEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.SessionID(); exists {
			s.SetIgnore(syncevent.FieldSessionID)
		}
		if _, exists := u.create.mutation.EventType(); exists {
			s.SetIgnore(syncevent.FieldEventType)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(syncevent.FieldTimestamp)
		}
		if _, exists := u.create.mutation.Version(); exists {
			s.SetIgnore(syncevent.FieldVersion)
		}
		if _, exists := u.create.mutation.ParticipantID(); exists {
			s.SetIgnore(syncevent.FieldParticipantID)
		}
		if _, exists := u.create.mutation.TimeRemainingMs(); exists {
			s.SetIgnore(syncevent.FieldTimeRemainingMs)
		}
		if _, exists := u.create.mutation.StateSnapshot(); exists {
			s.SetIgnore(syncevent.FieldStateSnapshot)
		}
		if _, exists := u.create.mutation.Metadata(); exists {
			s.SetIgnore(syncevent.FieldMetadata)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SyncEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SyncEventUpsertOne) Ignore() *SyncEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SyncEventUpsertOne) DoNothing() *SyncEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SyncEventCreate.OnConflict
// documentation for more info.
func (u *SyncEventUpsertOne) Update(set func(*SyncEventUpsert)) *SyncEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SyncEventUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *SyncEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SyncEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SyncEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SyncEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SyncEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SyncEventCreateBulk is the builder for creating many SyncEvent entities in bulk.
type SyncEventCreateBulk struct {
	config
	err      error
	builders []*SyncEventCreate
	conflict []sql.ConflictOption
}

// Save creates the SyncEvent entities in the database.
func (_c *SyncEventCreateBulk) Save(ctx context.Context) ([]*SyncEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SyncEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SyncEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SyncEventCreateBulk) SaveX(ctx context.Context) []*SyncEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SyncEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SyncEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SyncEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SyncEventUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *SyncEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *SyncEventUpsertBulk {
	_c.conflict = opts
	return &SyncEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SyncEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SyncEventCreateBulk) OnConflictColumns(columns ...string) *SyncEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SyncEventUpsertBulk{
		create: _c,
	}
}

// SyncEventUpsertBulk is the builder for "upsert"-ing
// a bulk of SyncEvent nodes.
type SyncEventUpsertBulk struct {
	create *SyncEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SyncEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SyncEventUpsertBulk) UpdateNewValues() *SyncEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.SessionID(); exists {
				s.SetIgnore(syncevent.FieldSessionID)
			}
			if _, exists := b.mutation.EventType(); exists {
				s.SetIgnore(syncevent.FieldEventType)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(syncevent.FieldTimestamp)
			}
			if _, exists := b.mutation.Version(); exists {
				s.SetIgnore(syncevent.FieldVersion)
			}
			if _, exists := b.mutation.ParticipantID(); exists {
				s.SetIgnore(syncevent.FieldParticipantID)
			}
			if _, exists := b.mutation.TimeRemainingMs(); exists {
				s.SetIgnore(syncevent.FieldTimeRemainingMs)
			}
			if _, exists := b.mutation.StateSnapshot(); exists {
				s.SetIgnore(syncevent.FieldStateSnapshot)
			}
			if _, exists := b.mutation.Metadata(); exists {
				s.SetIgnore(syncevent.FieldMetadata)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SyncEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SyncEventUpsertBulk) Ignore() *SyncEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SyncEventUpsertBulk) DoNothing() *SyncEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SyncEventCreateBulk.OnConflict
// documentation for more info.
func (u *SyncEventUpsertBulk) Update(set func(*SyncEventUpsert)) *SyncEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SyncEventUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *SyncEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SyncEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SyncEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SyncEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
