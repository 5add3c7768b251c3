// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/synckairos/synckairos/ent/idempotencykey"
	"github.com/synckairos/synckairos/ent/predicate"
	"github.com/synckairos/synckairos/ent/syncevent"
	"github.com/synckairos/synckairos/ent/syncsession"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeIdempotencyKey = "IdempotencyKey"
	TypeSyncEvent      = "SyncEvent"
	TypeSyncSession    = "SyncSession"
)

// IdempotencyKeyMutation represents an operation that mutates the IdempotencyKey nodes in the graph.
type IdempotencyKeyMutation struct {
	config
	op            Op
	typ           string
	id            *string
	response      *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*IdempotencyKey, error)
	predicates    []predicate.IdempotencyKey
}

var _ ent.Mutation = (*IdempotencyKeyMutation)(nil)

// idempotencykeyOption allows management of the mutation configuration using functional options.
type idempotencykeyOption func(*IdempotencyKeyMutation)

// newIdempotencyKeyMutation creates new mutation for the IdempotencyKey entity.
func newIdempotencyKeyMutation(c config, op Op, opts ...idempotencykeyOption) *IdempotencyKeyMutation {
	m := &IdempotencyKeyMutation{
		config:        c,
		op:            op,
		typ:           TypeIdempotencyKey,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIdempotencyKeyID sets the ID field of the mutation.
func withIdempotencyKeyID(id string) idempotencykeyOption {
	return func(m *IdempotencyKeyMutation) {
		var (
			err   error
			once  sync.Once
			value *IdempotencyKey
		)
		m.oldValue = func(ctx context.Context) (*IdempotencyKey, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IdempotencyKey.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIdempotencyKey sets the old IdempotencyKey of the mutation.
func withIdempotencyKey(node *IdempotencyKey) idempotencykeyOption {
	return func(m *IdempotencyKeyMutation) {
		m.oldValue = func(context.Context) (*IdempotencyKey, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IdempotencyKeyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IdempotencyKeyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of IdempotencyKey entities.
func (m *IdempotencyKeyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IdempotencyKeyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IdempotencyKeyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IdempotencyKey.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetResponse sets the "response" field.
func (m *IdempotencyKeyMutation) SetResponse(value map[string]interface{}) {
	m.response = &value
}

// Response returns the value of the "response" field in the mutation.
func (m *IdempotencyKeyMutation) Response() (r map[string]interface{}, exists bool) {
	v := m.response
	if v == nil {
		return
	}
	return *v, true
}

// OldResponse returns the old "response" field's value of the IdempotencyKey entity.
// If the IdempotencyKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdempotencyKeyMutation) OldResponse(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponse: %w", err)
	}
	return oldValue.Response, nil
}

// ResetResponse resets all changes to the "response" field.
func (m *IdempotencyKeyMutation) ResetResponse() {
	m.response = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *IdempotencyKeyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IdempotencyKeyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the IdempotencyKey entity.
// If the IdempotencyKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdempotencyKeyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IdempotencyKeyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the IdempotencyKeyMutation builder.
func (m *IdempotencyKeyMutation) Where(ps ...predicate.IdempotencyKey) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IdempotencyKeyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IdempotencyKeyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IdempotencyKey, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IdempotencyKeyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IdempotencyKeyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IdempotencyKey).
func (m *IdempotencyKeyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IdempotencyKeyMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.response != nil {
		fields = append(fields, idempotencykey.FieldResponse)
	}
	if m.created_at != nil {
		fields = append(fields, idempotencykey.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IdempotencyKeyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case idempotencykey.FieldResponse:
		return m.Response()
	case idempotencykey.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IdempotencyKeyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case idempotencykey.FieldResponse:
		return m.OldResponse(ctx)
	case idempotencykey.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown IdempotencyKey field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IdempotencyKeyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case idempotencykey.FieldResponse:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponse(v)
		return nil
	case idempotencykey.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown IdempotencyKey field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IdempotencyKeyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IdempotencyKeyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IdempotencyKeyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown IdempotencyKey numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IdempotencyKeyMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IdempotencyKeyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IdempotencyKeyMutation) ClearField(name string) error {
	return fmt.Errorf("unknown IdempotencyKey nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IdempotencyKeyMutation) ResetField(name string) error {
	switch name {
	case idempotencykey.FieldResponse:
		m.ResetResponse()
		return nil
	case idempotencykey.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown IdempotencyKey field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IdempotencyKeyMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IdempotencyKeyMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IdempotencyKeyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IdempotencyKeyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IdempotencyKeyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IdempotencyKeyMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IdempotencyKeyMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown IdempotencyKey unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IdempotencyKeyMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown IdempotencyKey edge %s", name)
}

// SyncEventMutation represents an operation that mutates the SyncEvent nodes in the graph.
type SyncEventMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	session_id           *string
	event_type           *syncevent.EventType
	timestamp            *time.Time
	version              *int64
	addversion           *int64
	participant_id       *string
	time_remaining_ms    *int64
	addtime_remaining_ms *int64
	state_snapshot       *map[string]interface{}
	metadata             *map[string]interface{}
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*SyncEvent, error)
	predicates           []predicate.SyncEvent
}

var _ ent.Mutation = (*SyncEventMutation)(nil)

// synceventOption allows management of the mutation configuration using functional options.
type synceventOption func(*SyncEventMutation)

// newSyncEventMutation creates new mutation for the SyncEvent entity.
func newSyncEventMutation(c config, op Op, opts ...synceventOption) *SyncEventMutation {
	m := &SyncEventMutation{
		config:        c,
		op:            op,
		typ:           TypeSyncEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSyncEventID sets the ID field of the mutation.
func withSyncEventID(id int) synceventOption {
	return func(m *SyncEventMutation) {
		var (
			err   error
			once  sync.Once
			value *SyncEvent
		)
		m.oldValue = func(ctx context.Context) (*SyncEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SyncEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSyncEvent sets the old SyncEvent of the mutation.
func withSyncEvent(node *SyncEvent) synceventOption {
	return func(m *SyncEventMutation) {
		m.oldValue = func(context.Context) (*SyncEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SyncEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SyncEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SyncEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SyncEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SyncEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *SyncEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SyncEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SyncEvent entity.
// If the SyncEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SyncEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetEventType sets the "event_type" field.
func (m *SyncEventMutation) SetEventType(st syncevent.EventType) {
	m.event_type = &st
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *SyncEventMutation) EventType() (r syncevent.EventType, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the SyncEvent entity.
// If the SyncEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncEventMutation) OldEventType(ctx context.Context) (v syncevent.EventType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *SyncEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *SyncEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SyncEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the SyncEvent entity.
// If the SyncEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *SyncEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetVersion sets the "version" field.
func (m *SyncEventMutation) SetVersion(i int64) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *SyncEventMutation) Version() (r int64, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the SyncEvent entity.
// If the SyncEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncEventMutation) OldVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *SyncEventMutation) AddVersion(i int64) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *SyncEventMutation) AddedVersion() (r int64, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *SyncEventMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetParticipantID sets the "participant_id" field.
func (m *SyncEventMutation) SetParticipantID(s string) {
	m.participant_id = &s
}

// ParticipantID returns the value of the "participant_id" field in the mutation.
func (m *SyncEventMutation) ParticipantID() (r string, exists bool) {
	v := m.participant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipantID returns the old "participant_id" field's value of the SyncEvent entity.
// If the SyncEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncEventMutation) OldParticipantID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipantID: %w", err)
	}
	return oldValue.ParticipantID, nil
}

// ClearParticipantID clears the value of the "participant_id" field.
func (m *SyncEventMutation) ClearParticipantID() {
	m.participant_id = nil
	m.clearedFields[syncevent.FieldParticipantID] = struct{}{}
}

// ParticipantIDCleared returns if the "participant_id" field was cleared in this mutation.
func (m *SyncEventMutation) ParticipantIDCleared() bool {
	_, ok := m.clearedFields[syncevent.FieldParticipantID]
	return ok
}

// ResetParticipantID resets all changes to the "participant_id" field.
func (m *SyncEventMutation) ResetParticipantID() {
	m.participant_id = nil
	delete(m.clearedFields, syncevent.FieldParticipantID)
}

// SetTimeRemainingMs sets the "time_remaining_ms" field.
func (m *SyncEventMutation) SetTimeRemainingMs(i int64) {
	m.time_remaining_ms = &i
	m.addtime_remaining_ms = nil
}

// TimeRemainingMs returns the value of the "time_remaining_ms" field in the mutation.
func (m *SyncEventMutation) TimeRemainingMs() (r int64, exists bool) {
	v := m.time_remaining_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeRemainingMs returns the old "time_remaining_ms" field's value of the SyncEvent entity.
// If the SyncEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncEventMutation) OldTimeRemainingMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeRemainingMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeRemainingMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeRemainingMs: %w", err)
	}
	return oldValue.TimeRemainingMs, nil
}

// AddTimeRemainingMs adds i to the "time_remaining_ms" field.
func (m *SyncEventMutation) AddTimeRemainingMs(i int64) {
	if m.addtime_remaining_ms != nil {
		*m.addtime_remaining_ms += i
	} else {
		m.addtime_remaining_ms = &i
	}
}

// AddedTimeRemainingMs returns the value that was added to the "time_remaining_ms" field in this mutation.
func (m *SyncEventMutation) AddedTimeRemainingMs() (r int64, exists bool) {
	v := m.addtime_remaining_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearTimeRemainingMs clears the value of the "time_remaining_ms" field.
func (m *SyncEventMutation) ClearTimeRemainingMs() {
	m.time_remaining_ms = nil
	m.addtime_remaining_ms = nil
	m.clearedFields[syncevent.FieldTimeRemainingMs] = struct{}{}
}

// TimeRemainingMsCleared returns if the "time_remaining_ms" field was cleared in this mutation.
func (m *SyncEventMutation) TimeRemainingMsCleared() bool {
	_, ok := m.clearedFields[syncevent.FieldTimeRemainingMs]
	return ok
}

// ResetTimeRemainingMs resets all changes to the "time_remaining_ms" field.
func (m *SyncEventMutation) ResetTimeRemainingMs() {
	m.time_remaining_ms = nil
	m.addtime_remaining_ms = nil
	delete(m.clearedFields, syncevent.FieldTimeRemainingMs)
}

// SetStateSnapshot sets the "state_snapshot" field.
func (m *SyncEventMutation) SetStateSnapshot(value map[string]interface{}) {
	m.state_snapshot = &value
}

// StateSnapshot returns the value of the "state_snapshot" field in the mutation.
func (m *SyncEventMutation) StateSnapshot() (r map[string]interface{}, exists bool) {
	v := m.state_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldStateSnapshot returns the old "state_snapshot" field's value of the SyncEvent entity.
// If the SyncEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncEventMutation) OldStateSnapshot(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStateSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStateSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStateSnapshot: %w", err)
	}
	return oldValue.StateSnapshot, nil
}

// ClearStateSnapshot clears the value of the "state_snapshot" field.
func (m *SyncEventMutation) ClearStateSnapshot() {
	m.state_snapshot = nil
	m.clearedFields[syncevent.FieldStateSnapshot] = struct{}{}
}

// StateSnapshotCleared returns if the "state_snapshot" field was cleared in this mutation.
func (m *SyncEventMutation) StateSnapshotCleared() bool {
	_, ok := m.clearedFields[syncevent.FieldStateSnapshot]
	return ok
}

// ResetStateSnapshot resets all changes to the "state_snapshot" field.
func (m *SyncEventMutation) ResetStateSnapshot() {
	m.state_snapshot = nil
	delete(m.clearedFields, syncevent.FieldStateSnapshot)
}

// SetMetadata sets the "metadata" field.
func (m *SyncEventMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *SyncEventMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the SyncEvent entity.
// If the SyncEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncEventMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *SyncEventMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[syncevent.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *SyncEventMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[syncevent.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *SyncEventMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, syncevent.FieldMetadata)
}

// Where appends a list predicates to the SyncEventMutation builder.
func (m *SyncEventMutation) Where(ps ...predicate.SyncEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SyncEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SyncEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SyncEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SyncEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SyncEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SyncEvent).
func (m *SyncEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SyncEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.session_id != nil {
		fields = append(fields, syncevent.FieldSessionID)
	}
	if m.event_type != nil {
		fields = append(fields, syncevent.FieldEventType)
	}
	if m.timestamp != nil {
		fields = append(fields, syncevent.FieldTimestamp)
	}
	if m.version != nil {
		fields = append(fields, syncevent.FieldVersion)
	}
	if m.participant_id != nil {
		fields = append(fields, syncevent.FieldParticipantID)
	}
	if m.time_remaining_ms != nil {
		fields = append(fields, syncevent.FieldTimeRemainingMs)
	}
	if m.state_snapshot != nil {
		fields = append(fields, syncevent.FieldStateSnapshot)
	}
	if m.metadata != nil {
		fields = append(fields, syncevent.FieldMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SyncEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case syncevent.FieldSessionID:
		return m.SessionID()
	case syncevent.FieldEventType:
		return m.EventType()
	case syncevent.FieldTimestamp:
		return m.Timestamp()
	case syncevent.FieldVersion:
		return m.Version()
	case syncevent.FieldParticipantID:
		return m.ParticipantID()
	case syncevent.FieldTimeRemainingMs:
		return m.TimeRemainingMs()
	case syncevent.FieldStateSnapshot:
		return m.StateSnapshot()
	case syncevent.FieldMetadata:
		return m.Metadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SyncEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case syncevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case syncevent.FieldEventType:
		return m.OldEventType(ctx)
	case syncevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case syncevent.FieldVersion:
		return m.OldVersion(ctx)
	case syncevent.FieldParticipantID:
		return m.OldParticipantID(ctx)
	case syncevent.FieldTimeRemainingMs:
		return m.OldTimeRemainingMs(ctx)
	case syncevent.FieldStateSnapshot:
		return m.OldStateSnapshot(ctx)
	case syncevent.FieldMetadata:
		return m.OldMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown SyncEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SyncEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case syncevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case syncevent.FieldEventType:
		v, ok := value.(syncevent.EventType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case syncevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case syncevent.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case syncevent.FieldParticipantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipantID(v)
		return nil
	case syncevent.FieldTimeRemainingMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeRemainingMs(v)
		return nil
	case syncevent.FieldStateSnapshot:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStateSnapshot(v)
		return nil
	case syncevent.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown SyncEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SyncEventMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, syncevent.FieldVersion)
	}
	if m.addtime_remaining_ms != nil {
		fields = append(fields, syncevent.FieldTimeRemainingMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SyncEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case syncevent.FieldVersion:
		return m.AddedVersion()
	case syncevent.FieldTimeRemainingMs:
		return m.AddedTimeRemainingMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SyncEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case syncevent.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case syncevent.FieldTimeRemainingMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeRemainingMs(v)
		return nil
	}
	return fmt.Errorf("unknown SyncEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SyncEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(syncevent.FieldParticipantID) {
		fields = append(fields, syncevent.FieldParticipantID)
	}
	if m.FieldCleared(syncevent.FieldTimeRemainingMs) {
		fields = append(fields, syncevent.FieldTimeRemainingMs)
	}
	if m.FieldCleared(syncevent.FieldStateSnapshot) {
		fields = append(fields, syncevent.FieldStateSnapshot)
	}
	if m.FieldCleared(syncevent.FieldMetadata) {
		fields = append(fields, syncevent.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SyncEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SyncEventMutation) ClearField(name string) error {
	switch name {
	case syncevent.FieldParticipantID:
		m.ClearParticipantID()
		return nil
	case syncevent.FieldTimeRemainingMs:
		m.ClearTimeRemainingMs()
		return nil
	case syncevent.FieldStateSnapshot:
		m.ClearStateSnapshot()
		return nil
	case syncevent.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown SyncEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SyncEventMutation) ResetField(name string) error {
	switch name {
	case syncevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case syncevent.FieldEventType:
		m.ResetEventType()
		return nil
	case syncevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case syncevent.FieldVersion:
		m.ResetVersion()
		return nil
	case syncevent.FieldParticipantID:
		m.ResetParticipantID()
		return nil
	case syncevent.FieldTimeRemainingMs:
		m.ResetTimeRemainingMs()
		return nil
	case syncevent.FieldStateSnapshot:
		m.ResetStateSnapshot()
		return nil
	case syncevent.FieldMetadata:
		m.ResetMetadata()
		return nil
	}
	return fmt.Errorf("unknown SyncEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SyncEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SyncEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SyncEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SyncEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SyncEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SyncEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SyncEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SyncEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SyncEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SyncEvent edge %s", name)
}

// SyncSessionMutation represents an operation that mutates the SyncSession nodes in the graph.
type SyncSessionMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	sync_mode             *syncsession.SyncMode
	final_status          *syncsession.FinalStatus
	created_at            *time.Time
	started_at            *time.Time
	completed_at          *time.Time
	updated_at            *time.Time
	total_participants    *int
	addtotal_participants *int
	metadata              *map[string]interface{}
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*SyncSession, error)
	predicates            []predicate.SyncSession
}

var _ ent.Mutation = (*SyncSessionMutation)(nil)

// syncsessionOption allows management of the mutation configuration using functional options.
type syncsessionOption func(*SyncSessionMutation)

// newSyncSessionMutation creates new mutation for the SyncSession entity.
func newSyncSessionMutation(c config, op Op, opts ...syncsessionOption) *SyncSessionMutation {
	m := &SyncSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSyncSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSyncSessionID sets the ID field of the mutation.
func withSyncSessionID(id string) syncsessionOption {
	return func(m *SyncSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *SyncSession
		)
		m.oldValue = func(ctx context.Context) (*SyncSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SyncSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSyncSession sets the old SyncSession of the mutation.
func withSyncSession(node *SyncSession) syncsessionOption {
	return func(m *SyncSessionMutation) {
		m.oldValue = func(context.Context) (*SyncSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SyncSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SyncSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SyncSession entities.
func (m *SyncSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SyncSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SyncSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SyncSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSyncMode sets the "sync_mode" field.
func (m *SyncSessionMutation) SetSyncMode(sm syncsession.SyncMode) {
	m.sync_mode = &sm
}

// SyncMode returns the value of the "sync_mode" field in the mutation.
func (m *SyncSessionMutation) SyncMode() (r syncsession.SyncMode, exists bool) {
	v := m.sync_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldSyncMode returns the old "sync_mode" field's value of the SyncSession entity.
// If the SyncSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncSessionMutation) OldSyncMode(ctx context.Context) (v syncsession.SyncMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSyncMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSyncMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSyncMode: %w", err)
	}
	return oldValue.SyncMode, nil
}

// ResetSyncMode resets all changes to the "sync_mode" field.
func (m *SyncSessionMutation) ResetSyncMode() {
	m.sync_mode = nil
}

// SetFinalStatus sets the "final_status" field.
func (m *SyncSessionMutation) SetFinalStatus(ss syncsession.FinalStatus) {
	m.final_status = &ss
}

// FinalStatus returns the value of the "final_status" field in the mutation.
func (m *SyncSessionMutation) FinalStatus() (r syncsession.FinalStatus, exists bool) {
	v := m.final_status
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalStatus returns the old "final_status" field's value of the SyncSession entity.
// If the SyncSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncSessionMutation) OldFinalStatus(ctx context.Context) (v syncsession.FinalStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalStatus: %w", err)
	}
	return oldValue.FinalStatus, nil
}

// ResetFinalStatus resets all changes to the "final_status" field.
func (m *SyncSessionMutation) ResetFinalStatus() {
	m.final_status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SyncSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SyncSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SyncSession entity.
// If the SyncSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SyncSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *SyncSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *SyncSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the SyncSession entity.
// If the SyncSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncSessionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *SyncSessionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[syncsession.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *SyncSessionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[syncsession.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *SyncSessionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, syncsession.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *SyncSessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *SyncSessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the SyncSession entity.
// If the SyncSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncSessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *SyncSessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[syncsession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *SyncSessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[syncsession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *SyncSessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, syncsession.FieldCompletedAt)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SyncSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SyncSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SyncSession entity.
// If the SyncSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SyncSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTotalParticipants sets the "total_participants" field.
func (m *SyncSessionMutation) SetTotalParticipants(i int) {
	m.total_participants = &i
	m.addtotal_participants = nil
}

// TotalParticipants returns the value of the "total_participants" field in the mutation.
func (m *SyncSessionMutation) TotalParticipants() (r int, exists bool) {
	v := m.total_participants
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalParticipants returns the old "total_participants" field's value of the SyncSession entity.
// If the SyncSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncSessionMutation) OldTotalParticipants(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalParticipants is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalParticipants requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalParticipants: %w", err)
	}
	return oldValue.TotalParticipants, nil
}

// AddTotalParticipants adds i to the "total_participants" field.
func (m *SyncSessionMutation) AddTotalParticipants(i int) {
	if m.addtotal_participants != nil {
		*m.addtotal_participants += i
	} else {
		m.addtotal_participants = &i
	}
}

// AddedTotalParticipants returns the value that was added to the "total_participants" field in this mutation.
func (m *SyncSessionMutation) AddedTotalParticipants() (r int, exists bool) {
	v := m.addtotal_participants
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalParticipants resets all changes to the "total_participants" field.
func (m *SyncSessionMutation) ResetTotalParticipants() {
	m.total_participants = nil
	m.addtotal_participants = nil
}

// SetMetadata sets the "metadata" field.
func (m *SyncSessionMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *SyncSessionMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the SyncSession entity.
// If the SyncSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncSessionMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *SyncSessionMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[syncsession.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *SyncSessionMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[syncsession.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *SyncSessionMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, syncsession.FieldMetadata)
}

// Where appends a list predicates to the SyncSessionMutation builder.
func (m *SyncSessionMutation) Where(ps ...predicate.SyncSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SyncSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SyncSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SyncSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SyncSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SyncSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SyncSession).
func (m *SyncSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SyncSessionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.sync_mode != nil {
		fields = append(fields, syncsession.FieldSyncMode)
	}
	if m.final_status != nil {
		fields = append(fields, syncsession.FieldFinalStatus)
	}
	if m.created_at != nil {
		fields = append(fields, syncsession.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, syncsession.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, syncsession.FieldCompletedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, syncsession.FieldUpdatedAt)
	}
	if m.total_participants != nil {
		fields = append(fields, syncsession.FieldTotalParticipants)
	}
	if m.metadata != nil {
		fields = append(fields, syncsession.FieldMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SyncSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case syncsession.FieldSyncMode:
		return m.SyncMode()
	case syncsession.FieldFinalStatus:
		return m.FinalStatus()
	case syncsession.FieldCreatedAt:
		return m.CreatedAt()
	case syncsession.FieldStartedAt:
		return m.StartedAt()
	case syncsession.FieldCompletedAt:
		return m.CompletedAt()
	case syncsession.FieldUpdatedAt:
		return m.UpdatedAt()
	case syncsession.FieldTotalParticipants:
		return m.TotalParticipants()
	case syncsession.FieldMetadata:
		return m.Metadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SyncSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case syncsession.FieldSyncMode:
		return m.OldSyncMode(ctx)
	case syncsession.FieldFinalStatus:
		return m.OldFinalStatus(ctx)
	case syncsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case syncsession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case syncsession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case syncsession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case syncsession.FieldTotalParticipants:
		return m.OldTotalParticipants(ctx)
	case syncsession.FieldMetadata:
		return m.OldMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown SyncSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SyncSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case syncsession.FieldSyncMode:
		v, ok := value.(syncsession.SyncMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSyncMode(v)
		return nil
	case syncsession.FieldFinalStatus:
		v, ok := value.(syncsession.FinalStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalStatus(v)
		return nil
	case syncsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case syncsession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case syncsession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case syncsession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case syncsession.FieldTotalParticipants:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalParticipants(v)
		return nil
	case syncsession.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown SyncSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SyncSessionMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_participants != nil {
		fields = append(fields, syncsession.FieldTotalParticipants)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SyncSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case syncsession.FieldTotalParticipants:
		return m.AddedTotalParticipants()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SyncSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case syncsession.FieldTotalParticipants:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalParticipants(v)
		return nil
	}
	return fmt.Errorf("unknown SyncSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SyncSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(syncsession.FieldStartedAt) {
		fields = append(fields, syncsession.FieldStartedAt)
	}
	if m.FieldCleared(syncsession.FieldCompletedAt) {
		fields = append(fields, syncsession.FieldCompletedAt)
	}
	if m.FieldCleared(syncsession.FieldMetadata) {
		fields = append(fields, syncsession.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SyncSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SyncSessionMutation) ClearField(name string) error {
	switch name {
	case syncsession.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case syncsession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case syncsession.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown SyncSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SyncSessionMutation) ResetField(name string) error {
	switch name {
	case syncsession.FieldSyncMode:
		m.ResetSyncMode()
		return nil
	case syncsession.FieldFinalStatus:
		m.ResetFinalStatus()
		return nil
	case syncsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case syncsession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case syncsession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case syncsession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case syncsession.FieldTotalParticipants:
		m.ResetTotalParticipants()
		return nil
	case syncsession.FieldMetadata:
		m.ResetMetadata()
		return nil
	}
	return fmt.Errorf("unknown SyncSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SyncSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SyncSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SyncSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SyncSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SyncSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SyncSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SyncSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SyncSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SyncSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SyncSession edge %s", name)
}
