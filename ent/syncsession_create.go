// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/synckairos/synckairos/ent/syncsession"
)

// SyncSessionCreate is the builder for creating a SyncSession entity.
type SyncSessionCreate struct {
	config
	mutation *SyncSessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSyncMode sets the "sync_mode" field.
func (_c *SyncSessionCreate) SetSyncMode(v syncsession.SyncMode) *SyncSessionCreate {
	_c.mutation.SetSyncMode(v)
	return _c
}

// SetFinalStatus sets the "final_status" field.
func (_c *SyncSessionCreate) SetFinalStatus(v syncsession.FinalStatus) *SyncSessionCreate {
	_c.mutation.SetFinalStatus(v)
	return _c
}

// SetNillableFinalStatus sets the "final_status" field if the given value is not nil.
func (_c *SyncSessionCreate) SetNillableFinalStatus(v *syncsession.FinalStatus) *SyncSessionCreate {
	if v != nil {
		_c.SetFinalStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SyncSessionCreate) SetCreatedAt(v time.Time) *SyncSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SyncSessionCreate) SetNillableCreatedAt(v *time.Time) *SyncSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *SyncSessionCreate) SetStartedAt(v time.Time) *SyncSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *SyncSessionCreate) SetNillableStartedAt(v *time.Time) *SyncSessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *SyncSessionCreate) SetCompletedAt(v time.Time) *SyncSessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *SyncSessionCreate) SetNillableCompletedAt(v *time.Time) *SyncSessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SyncSessionCreate) SetUpdatedAt(v time.Time) *SyncSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SyncSessionCreate) SetNillableUpdatedAt(v *time.Time) *SyncSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTotalParticipants sets the "total_participants" field.
func (_c *SyncSessionCreate) SetTotalParticipants(v int) *SyncSessionCreate {
	_c.mutation.SetTotalParticipants(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *SyncSessionCreate) SetMetadata(v map[string]interface{}) *SyncSessionCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetID sets the "id" field.
func (_c *SyncSessionCreate) SetID(v string) *SyncSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SyncSessionMutation object of the builder.
func (_c *SyncSessionCreate) Mutation() *SyncSessionMutation {
	return _c.mutation
}

// Save creates the SyncSession in the database.
func (_c *SyncSessionCreate) Save(ctx context.Context) (*SyncSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SyncSessionCreate) SaveX(ctx context.Context) *SyncSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SyncSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SyncSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SyncSessionCreate) defaults() {
	if _, ok := _c.mutation.FinalStatus(); !ok {
		v := syncsession.DefaultFinalStatus
		_c.mutation.SetFinalStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := syncsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := syncsession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SyncSessionCreate) check() error {
	if _, ok := _c.mutation.SyncMode(); !ok {
		return &ValidationError{Name: "sync_mode", err: errors.New(`ent: missing required field "SyncSession.sync_mode"`)}
	}
	if v, ok := _c.mutation.SyncMode(); ok {
		if err := syncsession.SyncModeValidator(v); err != nil {
			return &ValidationError{Name: "sync_mode", err: fmt.Errorf(`ent: validator failed for field "SyncSession.sync_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FinalStatus(); !ok {
		return &ValidationError{Name: "final_status", err: errors.New(`ent: missing required field "SyncSession.final_status"`)}
	}
	if v, ok := _c.mutation.FinalStatus(); ok {
		if err := syncsession.FinalStatusValidator(v); err != nil {
			return &ValidationError{Name: "final_status", err: fmt.Errorf(`ent: validator failed for field "SyncSession.final_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SyncSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SyncSession.updated_at"`)}
	}
	if _, ok := _c.mutation.TotalParticipants(); !ok {
		return &ValidationError{Name: "total_participants", err: errors.New(`ent: missing required field "SyncSession.total_participants"`)}
	}
	return nil
}

func (_c *SyncSessionCreate) sqlSave(ctx context.Context) (*SyncSession, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected SyncSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SyncSessionCreate) createSpec() (*SyncSession, *sqlgraph.CreateSpec) {
	var (
		_node = &SyncSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(syncsession.Table, sqlgraph.NewFieldSpec(syncsession.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SyncMode(); ok {
		_spec.SetField(syncsession.FieldSyncMode, field.TypeEnum, value)
		_node.SyncMode = value
	}
	if value, ok := _c.mutation.FinalStatus(); ok {
		_spec.SetField(syncsession.FieldFinalStatus, field.TypeEnum, value)
		_node.FinalStatus = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(syncsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(syncsession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(syncsession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(syncsession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.TotalParticipants(); ok {
		_spec.SetField(syncsession.FieldTotalParticipants, field.TypeInt, value)
		_node.TotalParticipants = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(syncsession.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SyncSession.Create().
//		SetSyncMode(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SyncSessionUpsert) {
//			SetSyncMode(v+v).
//		}).
//		Exec(ctx)
func (_c *SyncSessionCreate) OnConflict(opts ...sql.ConflictOption) *SyncSessionUpsertOne {
	_c.conflict = opts
	return &SyncSessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SyncSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SyncSessionCreate) OnConflictColumns(columns ...string) *SyncSessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SyncSessionUpsertOne{
		create: _c,
	}
}

type (
	// SyncSessionUpsertOne is the builder for "upsert"-ing
	//  one SyncSession node.
	SyncSessionUpsertOne struct {
		create *SyncSessionCreate
	}

	// SyncSessionUpsert is the "OnConflict" setter.
	SyncSessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetSyncMode sets the "sync_mode" field.
func (u *SyncSessionUpsert) SetSyncMode(v syncsession.SyncMode) *SyncSessionUpsert {
	u.Set(syncsession.FieldSyncMode, v)
	return u
}

// UpdateSyncMode sets the "sync_mode" field to the value that was provided on create.
func (u *SyncSessionUpsert) UpdateSyncMode() *SyncSessionUpsert {
	u.SetExcluded(syncsession.FieldSyncMode)
	return u
}

// SetFinalStatus sets the "final_status" field.
func (u *SyncSessionUpsert) SetFinalStatus(v syncsession.FinalStatus) *SyncSessionUpsert {
	u.Set(syncsession.FieldFinalStatus, v)
	return u
}

// UpdateFinalStatus sets the "final_status" field to the value that was provided on create.
func (u *SyncSessionUpsert) UpdateFinalStatus() *SyncSessionUpsert {
	u.SetExcluded(syncsession.FieldFinalStatus)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *SyncSessionUpsert) SetCreatedAt(v time.Time) *SyncSessionUpsert {
	u.Set(syncsession.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *SyncSessionUpsert) UpdateCreatedAt() *SyncSessionUpsert {
	u.SetExcluded(syncsession.FieldCreatedAt)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *SyncSessionUpsert) SetStartedAt(v time.Time) *SyncSessionUpsert {
	u.Set(syncsession.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *SyncSessionUpsert) UpdateStartedAt() *SyncSessionUpsert {
	u.SetExcluded(syncsession.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *SyncSessionUpsert) ClearStartedAt() *SyncSessionUpsert {
	u.SetNull(syncsession.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *SyncSessionUpsert) SetCompletedAt(v time.Time) *SyncSessionUpsert {
	u.Set(syncsession.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *SyncSessionUpsert) UpdateCompletedAt() *SyncSessionUpsert {
	u.SetExcluded(syncsession.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *SyncSessionUpsert) ClearCompletedAt() *SyncSessionUpsert {
	u.SetNull(syncsession.FieldCompletedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SyncSessionUpsert) SetUpdatedAt(v time.Time) *SyncSessionUpsert {
	u.Set(syncsession.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SyncSessionUpsert) UpdateUpdatedAt() *SyncSessionUpsert {
	u.SetExcluded(syncsession.FieldUpdatedAt)
	return u
}

// SetTotalParticipants sets the "total_participants" field.
func (u *SyncSessionUpsert) SetTotalParticipants(v int) *SyncSessionUpsert {
	u.Set(syncsession.FieldTotalParticipants, v)
	return u
}

// UpdateTotalParticipants sets the "total_participants" field to the value that was provided on create.
func (u *SyncSessionUpsert) UpdateTotalParticipants() *SyncSessionUpsert {
	u.SetExcluded(syncsession.FieldTotalParticipants)
	return u
}

// AddTotalParticipants adds v to the "total_participants" field.
func (u *SyncSessionUpsert) AddTotalParticipants(v int) *SyncSessionUpsert {
	u.Add(syncsession.FieldTotalParticipants, v)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *SyncSessionUpsert) SetMetadata(v map[string]interface{}) *SyncSessionUpsert {
	u.Set(syncsession.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *SyncSessionUpsert) UpdateMetadata() *SyncSessionUpsert {
	u.SetExcluded(syncsession.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *SyncSessionUpsert) ClearMetadata() *SyncSessionUpsert {
	u.SetNull(syncsession.FieldMetadata)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SyncSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(syncsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SyncSessionUpsertOne) UpdateNewValues() *SyncSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(syncsession.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SyncSession.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SyncSessionUpsertOne) Ignore() *SyncSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SyncSessionUpsertOne) DoNothing() *SyncSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SyncSessionCreate.OnConflict
// documentation for more info.
func (u *SyncSessionUpsertOne) Update(set func(*SyncSessionUpsert)) *SyncSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SyncSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetSyncMode sets the "sync_mode" field.
func (u *SyncSessionUpsertOne) SetSyncMode(v syncsession.SyncMode) *SyncSessionUpsertOne {
	return u.Update(func(s *SyncSessionUpsert) {
		s.SetSyncMode(v)
	})
}

// UpdateSyncMode sets the "sync_mode" field to the value that was provided on create.
func (u *SyncSessionUpsertOne) UpdateSyncMode() *SyncSessionUpsertOne {
	return u.Update(func(s *SyncSessionUpsert) {
		s.UpdateSyncMode()
	})
}

// SetFinalStatus sets the "final_status" field.
func (u *SyncSessionUpsertOne) SetFinalStatus(v syncsession.FinalStatus) *SyncSessionUpsertOne {
	return u.Update(func(s *SyncSessionUpsert) {
		s.SetFinalStatus(v)
	})
}

// UpdateFinalStatus sets the "final_status" field to the value that was provided on create.
func (u *SyncSessionUpsertOne) UpdateFinalStatus() *SyncSessionUpsertOne {
	return u.Update(func(s *SyncSessionUpsert) {
		s.UpdateFinalStatus()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *SyncSessionUpsertOne) SetCreatedAt(v time.Time) *SyncSessionUpsertOne {
	return u.Update(func(s *SyncSessionUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *SyncSessionUpsertOne) UpdateCreatedAt() *SyncSessionUpsertOne {
	return u.Update(func(s *SyncSessionUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *SyncSessionUpsertOne) SetStartedAt(v time.Time) *SyncSessionUpsertOne {
	return u.Update(func(s *SyncSessionUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *SyncSessionUpsertOne) UpdateStartedAt() *SyncSessionUpsertOne {
	return u.Update(func(s *SyncSessionUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *SyncSessionUpsertOne) ClearStartedAt() *SyncSessionUpsertOne {
	return u.Update(func(s *SyncSessionUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *SyncSessionUpsertOne) SetCompletedAt(v time.Time) *SyncSessionUpsertOne {
	return u.Update(func(s *SyncSessionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *SyncSessionUpsertOne) UpdateCompletedAt() *SyncSessionUpsertOne {
	return u.Update(func(s *SyncSessionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *SyncSessionUpsertOne) ClearCompletedAt() *SyncSessionUpsertOne {
	return u.Update(func(s *SyncSessionUpsert) {
		s.ClearCompletedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SyncSessionUpsertOne) SetUpdatedAt(v time.Time) *SyncSessionUpsertOne {
	return u.Update(func(s *SyncSessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SyncSessionUpsertOne) UpdateUpdatedAt() *SyncSessionUpsertOne {
	return u.Update(func(s *SyncSessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetTotalParticipants sets the "total_participants" field.
func (u *SyncSessionUpsertOne) SetTotalParticipants(v int) *SyncSessionUpsertOne {
	return u.Update(func(s *SyncSessionUpsert) {
		s.SetTotalParticipants(v)
	})
}

// AddTotalParticipants adds v to the "total_participants" field.
func (u *SyncSessionUpsertOne) AddTotalParticipants(v int) *SyncSessionUpsertOne {
	return u.Update(func(s *SyncSessionUpsert) {
		s.AddTotalParticipants(v)
	})
}

// UpdateTotalParticipants sets the "total_participants" field to the value that was provided on create.
func (u *SyncSessionUpsertOne) UpdateTotalParticipants() *SyncSessionUpsertOne {
	return u.Update(func(s *SyncSessionUpsert) {
		s.UpdateTotalParticipants()
	})
}

// SetMetadata sets the "metadata" field.
func (u *SyncSessionUpsertOne) SetMetadata(v map[string]interface{}) *SyncSessionUpsertOne {
	return u.Update(func(s *SyncSessionUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *SyncSessionUpsertOne) UpdateMetadata() *SyncSessionUpsertOne {
	return u.Update(func(s *SyncSessionUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *SyncSessionUpsertOne) ClearMetadata() *SyncSessionUpsertOne {
	return u.Update(func(s *SyncSessionUpsert) {
		s.ClearMetadata()
	})
}

// Exec executes the query.
func (u *SyncSessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SyncSessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SyncSessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SyncSessionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SyncSessionUpsertOne.ID is not supported by MySQL driver. Use SyncSessionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SyncSessionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SyncSessionCreateBulk is the builder for creating many SyncSession entities in bulk.
type SyncSessionCreateBulk struct {
	config
	err      error
	builders []*SyncSessionCreate
	conflict []sql.ConflictOption
}

// Save creates the SyncSession entities in the database.
func (_c *SyncSessionCreateBulk) Save(ctx context.Context) ([]*SyncSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SyncSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SyncSessionMutation)
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
func (_c *SyncSessionCreateBulk) SaveX(ctx context.Context) []*SyncSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SyncSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SyncSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SyncSession.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SyncSessionUpsert) {
//			SetSyncMode(v+v).
//		}).
//		Exec(ctx)
func (_c *SyncSessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *SyncSessionUpsertBulk {
	_c.conflict = opts
	return &SyncSessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SyncSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SyncSessionCreateBulk) OnConflictColumns(columns ...string) *SyncSessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SyncSessionUpsertBulk{
		create: _c,
	}
}

// SyncSessionUpsertBulk is the builder for "upsert"-ing
// a bulk of SyncSession nodes.
type SyncSessionUpsertBulk struct {
	create *SyncSessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SyncSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(syncsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SyncSessionUpsertBulk) UpdateNewValues() *SyncSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(syncsession.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SyncSession.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SyncSessionUpsertBulk) Ignore() *SyncSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SyncSessionUpsertBulk) DoNothing() *SyncSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SyncSessionCreateBulk.OnConflict
// documentation for more info.
func (u *SyncSessionUpsertBulk) Update(set func(*SyncSessionUpsert)) *SyncSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SyncSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetSyncMode sets the "sync_mode" field.
func (u *SyncSessionUpsertBulk) SetSyncMode(v syncsession.SyncMode) *SyncSessionUpsertBulk {
	return u.Update(func(s *SyncSessionUpsert) {
		s.SetSyncMode(v)
	})
}

// UpdateSyncMode sets the "sync_mode" field to the value that was provided on create.
func (u *SyncSessionUpsertBulk) UpdateSyncMode() *SyncSessionUpsertBulk {
	return u.Update(func(s *SyncSessionUpsert) {
		s.UpdateSyncMode()
	})
}

// SetFinalStatus sets the "final_status" field.
func (u *SyncSessionUpsertBulk) SetFinalStatus(v syncsession.FinalStatus) *SyncSessionUpsertBulk {
	return u.Update(func(s *SyncSessionUpsert) {
		s.SetFinalStatus(v)
	})
}

// UpdateFinalStatus sets the "final_status" field to the value that was provided on create.
func (u *SyncSessionUpsertBulk) UpdateFinalStatus() *SyncSessionUpsertBulk {
	return u.Update(func(s *SyncSessionUpsert) {
		s.UpdateFinalStatus()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *SyncSessionUpsertBulk) SetCreatedAt(v time.Time) *SyncSessionUpsertBulk {
	return u.Update(func(s *SyncSessionUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *SyncSessionUpsertBulk) UpdateCreatedAt() *SyncSessionUpsertBulk {
	return u.Update(func(s *SyncSessionUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *SyncSessionUpsertBulk) SetStartedAt(v time.Time) *SyncSessionUpsertBulk {
	return u.Update(func(s *SyncSessionUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *SyncSessionUpsertBulk) UpdateStartedAt() *SyncSessionUpsertBulk {
	return u.Update(func(s *SyncSessionUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *SyncSessionUpsertBulk) ClearStartedAt() *SyncSessionUpsertBulk {
	return u.Update(func(s *SyncSessionUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *SyncSessionUpsertBulk) SetCompletedAt(v time.Time) *SyncSessionUpsertBulk {
	return u.Update(func(s *SyncSessionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *SyncSessionUpsertBulk) UpdateCompletedAt() *SyncSessionUpsertBulk {
	return u.Update(func(s *SyncSessionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *SyncSessionUpsertBulk) ClearCompletedAt() *SyncSessionUpsertBulk {
	return u.Update(func(s *SyncSessionUpsert) {
		s.ClearCompletedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SyncSessionUpsertBulk) SetUpdatedAt(v time.Time) *SyncSessionUpsertBulk {
	return u.Update(func(s *SyncSessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SyncSessionUpsertBulk) UpdateUpdatedAt() *SyncSessionUpsertBulk {
	return u.Update(func(s *SyncSessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetTotalParticipants sets the "total_participants" field.
func (u *SyncSessionUpsertBulk) SetTotalParticipants(v int) *SyncSessionUpsertBulk {
	return u.Update(func(s *SyncSessionUpsert) {
		s.SetTotalParticipants(v)
	})
}

// AddTotalParticipants adds v to the "total_participants" field.
func (u *SyncSessionUpsertBulk) AddTotalParticipants(v int) *SyncSessionUpsertBulk {
	return u.Update(func(s *SyncSessionUpsert) {
		s.AddTotalParticipants(v)
	})
}

// UpdateTotalParticipants sets the "total_participants" field to the value that was provided on create.
func (u *SyncSessionUpsertBulk) UpdateTotalParticipants() *SyncSessionUpsertBulk {
	return u.Update(func(s *SyncSessionUpsert) {
		s.UpdateTotalParticipants()
	})
}

// SetMetadata sets the "metadata" field.
func (u *SyncSessionUpsertBulk) SetMetadata(v map[string]interface{}) *SyncSessionUpsertBulk {
	return u.Update(func(s *SyncSessionUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *SyncSessionUpsertBulk) UpdateMetadata() *SyncSessionUpsertBulk {
	return u.Update(func(s *SyncSessionUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *SyncSessionUpsertBulk) ClearMetadata() *SyncSessionUpsertBulk {
	return u.Update(func(s *SyncSessionUpsert) {
		s.ClearMetadata()
	})
}

// Exec executes the query.
func (u *SyncSessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SyncSessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SyncSessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SyncSessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
