// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/synckairos/synckairos/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/synckairos/synckairos/ent/idempotencykey"
	"github.com/synckairos/synckairos/ent/syncevent"
	"github.com/synckairos/synckairos/ent/syncsession"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// IdempotencyKey is the client for interacting with the IdempotencyKey builders.
	IdempotencyKey *IdempotencyKeyClient
	// SyncEvent is the client for interacting with the SyncEvent builders.
	SyncEvent *SyncEventClient
	// SyncSession is the client for interacting with the SyncSession builders.
	SyncSession *SyncSessionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.IdempotencyKey = NewIdempotencyKeyClient(c.config)
	c.SyncEvent = NewSyncEventClient(c.config)
	c.SyncSession = NewSyncSessionClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		IdempotencyKey: NewIdempotencyKeyClient(cfg),
		SyncEvent:      NewSyncEventClient(cfg),
		SyncSession:    NewSyncSessionClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		IdempotencyKey: NewIdempotencyKeyClient(cfg),
		SyncEvent:      NewSyncEventClient(cfg),
		SyncSession:    NewSyncSessionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		IdempotencyKey.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.IdempotencyKey.Use(hooks...)
	c.SyncEvent.Use(hooks...)
	c.SyncSession.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.IdempotencyKey.Intercept(interceptors...)
	c.SyncEvent.Intercept(interceptors...)
	c.SyncSession.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *IdempotencyKeyMutation:
		return c.IdempotencyKey.mutate(ctx, m)
	case *SyncEventMutation:
		return c.SyncEvent.mutate(ctx, m)
	case *SyncSessionMutation:
		return c.SyncSession.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// IdempotencyKeyClient is a client for the IdempotencyKey schema.
type IdempotencyKeyClient struct {
	config
}

// NewIdempotencyKeyClient returns a client for the IdempotencyKey from the given config.
func NewIdempotencyKeyClient(c config) *IdempotencyKeyClient {
	return &IdempotencyKeyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `idempotencykey.Hooks(f(g(h())))`.
func (c *IdempotencyKeyClient) Use(hooks ...Hook) {
	c.hooks.IdempotencyKey = append(c.hooks.IdempotencyKey, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `idempotencykey.Intercept(f(g(h())))`.
func (c *IdempotencyKeyClient) Intercept(interceptors ...Interceptor) {
	c.inters.IdempotencyKey = append(c.inters.IdempotencyKey, interceptors...)
}

// Create returns a builder for creating a IdempotencyKey entity.
func (c *IdempotencyKeyClient) Create() *IdempotencyKeyCreate {
	mutation := newIdempotencyKeyMutation(c.config, OpCreate)
	return &IdempotencyKeyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of IdempotencyKey entities.
func (c *IdempotencyKeyClient) CreateBulk(builders ...*IdempotencyKeyCreate) *IdempotencyKeyCreateBulk {
	return &IdempotencyKeyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IdempotencyKeyClient) MapCreateBulk(slice any, setFunc func(*IdempotencyKeyCreate, int)) *IdempotencyKeyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IdempotencyKeyCreateBulk{err: fmt.Errorf("calling to IdempotencyKeyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IdempotencyKeyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IdempotencyKeyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for IdempotencyKey.
func (c *IdempotencyKeyClient) Update() *IdempotencyKeyUpdate {
	mutation := newIdempotencyKeyMutation(c.config, OpUpdate)
	return &IdempotencyKeyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IdempotencyKeyClient) UpdateOne(_m *IdempotencyKey) *IdempotencyKeyUpdateOne {
	mutation := newIdempotencyKeyMutation(c.config, OpUpdateOne, withIdempotencyKey(_m))
	return &IdempotencyKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IdempotencyKeyClient) UpdateOneID(id string) *IdempotencyKeyUpdateOne {
	mutation := newIdempotencyKeyMutation(c.config, OpUpdateOne, withIdempotencyKeyID(id))
	return &IdempotencyKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for IdempotencyKey.
func (c *IdempotencyKeyClient) Delete() *IdempotencyKeyDelete {
	mutation := newIdempotencyKeyMutation(c.config, OpDelete)
	return &IdempotencyKeyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IdempotencyKeyClient) DeleteOne(_m *IdempotencyKey) *IdempotencyKeyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IdempotencyKeyClient) DeleteOneID(id string) *IdempotencyKeyDeleteOne {
	builder := c.Delete().Where(idempotencykey.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IdempotencyKeyDeleteOne{builder}
}

// Query returns a query builder for IdempotencyKey.
func (c *IdempotencyKeyClient) Query() *IdempotencyKeyQuery {
	return &IdempotencyKeyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIdempotencyKey},
		inters: c.Interceptors(),
	}
}

// Get returns a IdempotencyKey entity by its id.
func (c *IdempotencyKeyClient) Get(ctx context.Context, id string) (*IdempotencyKey, error) {
	return c.Query().Where(idempotencykey.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IdempotencyKeyClient) GetX(ctx context.Context, id string) *IdempotencyKey {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *IdempotencyKeyClient) Hooks() []Hook {
	return c.hooks.IdempotencyKey
}

// Interceptors returns the client interceptors.
func (c *IdempotencyKeyClient) Interceptors() []Interceptor {
	return c.inters.IdempotencyKey
}

func (c *IdempotencyKeyClient) mutate(ctx context.Context, m *IdempotencyKeyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IdempotencyKeyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IdempotencyKeyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IdempotencyKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IdempotencyKeyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown IdempotencyKey mutation op: %q", m.Op())
	}
}

// SyncEventClient is a client for the SyncEvent schema.
type SyncEventClient struct {
	config
}

// NewSyncEventClient returns a client for the SyncEvent from the given config.
func NewSyncEventClient(c config) *SyncEventClient {
	return &SyncEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `syncevent.Hooks(f(g(h())))`.
func (c *SyncEventClient) Use(hooks ...Hook) {
	c.hooks.SyncEvent = append(c.hooks.SyncEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `syncevent.Intercept(f(g(h())))`.
func (c *SyncEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SyncEvent = append(c.inters.SyncEvent, interceptors...)
}

// Create returns a builder for creating a SyncEvent entity.
func (c *SyncEventClient) Create() *SyncEventCreate {
	mutation := newSyncEventMutation(c.config, OpCreate)
	return &SyncEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SyncEvent entities.
func (c *SyncEventClient) CreateBulk(builders ...*SyncEventCreate) *SyncEventCreateBulk {
	return &SyncEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SyncEventClient) MapCreateBulk(slice any, setFunc func(*SyncEventCreate, int)) *SyncEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SyncEventCreateBulk{err: fmt.Errorf("calling to SyncEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SyncEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SyncEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SyncEvent.
func (c *SyncEventClient) Update() *SyncEventUpdate {
	mutation := newSyncEventMutation(c.config, OpUpdate)
	return &SyncEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SyncEventClient) UpdateOne(_m *SyncEvent) *SyncEventUpdateOne {
	mutation := newSyncEventMutation(c.config, OpUpdateOne, withSyncEvent(_m))
	return &SyncEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SyncEventClient) UpdateOneID(id int) *SyncEventUpdateOne {
	mutation := newSyncEventMutation(c.config, OpUpdateOne, withSyncEventID(id))
	return &SyncEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SyncEvent.
func (c *SyncEventClient) Delete() *SyncEventDelete {
	mutation := newSyncEventMutation(c.config, OpDelete)
	return &SyncEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SyncEventClient) DeleteOne(_m *SyncEvent) *SyncEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SyncEventClient) DeleteOneID(id int) *SyncEventDeleteOne {
	builder := c.Delete().Where(syncevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SyncEventDeleteOne{builder}
}

// Query returns a query builder for SyncEvent.
func (c *SyncEventClient) Query() *SyncEventQuery {
	return &SyncEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSyncEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SyncEvent entity by its id.
func (c *SyncEventClient) Get(ctx context.Context, id int) (*SyncEvent, error) {
	return c.Query().Where(syncevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SyncEventClient) GetX(ctx context.Context, id int) *SyncEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SyncEventClient) Hooks() []Hook {
	return c.hooks.SyncEvent
}

// Interceptors returns the client interceptors.
func (c *SyncEventClient) Interceptors() []Interceptor {
	return c.inters.SyncEvent
}

func (c *SyncEventClient) mutate(ctx context.Context, m *SyncEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SyncEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SyncEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SyncEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SyncEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SyncEvent mutation op: %q", m.Op())
	}
}

// SyncSessionClient is a client for the SyncSession schema.
type SyncSessionClient struct {
	config
}

// NewSyncSessionClient returns a client for the SyncSession from the given config.
func NewSyncSessionClient(c config) *SyncSessionClient {
	return &SyncSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `syncsession.Hooks(f(g(h())))`.
func (c *SyncSessionClient) Use(hooks ...Hook) {
	c.hooks.SyncSession = append(c.hooks.SyncSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `syncsession.Intercept(f(g(h())))`.
func (c *SyncSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.SyncSession = append(c.inters.SyncSession, interceptors...)
}

// Create returns a builder for creating a SyncSession entity.
func (c *SyncSessionClient) Create() *SyncSessionCreate {
	mutation := newSyncSessionMutation(c.config, OpCreate)
	return &SyncSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SyncSession entities.
func (c *SyncSessionClient) CreateBulk(builders ...*SyncSessionCreate) *SyncSessionCreateBulk {
	return &SyncSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SyncSessionClient) MapCreateBulk(slice any, setFunc func(*SyncSessionCreate, int)) *SyncSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SyncSessionCreateBulk{err: fmt.Errorf("calling to SyncSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SyncSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SyncSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SyncSession.
func (c *SyncSessionClient) Update() *SyncSessionUpdate {
	mutation := newSyncSessionMutation(c.config, OpUpdate)
	return &SyncSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SyncSessionClient) UpdateOne(_m *SyncSession) *SyncSessionUpdateOne {
	mutation := newSyncSessionMutation(c.config, OpUpdateOne, withSyncSession(_m))
	return &SyncSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SyncSessionClient) UpdateOneID(id string) *SyncSessionUpdateOne {
	mutation := newSyncSessionMutation(c.config, OpUpdateOne, withSyncSessionID(id))
	return &SyncSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SyncSession.
func (c *SyncSessionClient) Delete() *SyncSessionDelete {
	mutation := newSyncSessionMutation(c.config, OpDelete)
	return &SyncSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SyncSessionClient) DeleteOne(_m *SyncSession) *SyncSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SyncSessionClient) DeleteOneID(id string) *SyncSessionDeleteOne {
	builder := c.Delete().Where(syncsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SyncSessionDeleteOne{builder}
}

// Query returns a query builder for SyncSession.
func (c *SyncSessionClient) Query() *SyncSessionQuery {
	return &SyncSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSyncSession},
		inters: c.Interceptors(),
	}
}

// Get returns a SyncSession entity by its id.
func (c *SyncSessionClient) Get(ctx context.Context, id string) (*SyncSession, error) {
	return c.Query().Where(syncsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SyncSessionClient) GetX(ctx context.Context, id string) *SyncSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SyncSessionClient) Hooks() []Hook {
	return c.hooks.SyncSession
}

// Interceptors returns the client interceptors.
func (c *SyncSessionClient) Interceptors() []Interceptor {
	return c.inters.SyncSession
}

func (c *SyncSessionClient) mutate(ctx context.Context, m *SyncSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SyncSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SyncSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SyncSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SyncSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SyncSession mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		IdempotencyKey, SyncEvent, SyncSession []ent.Hook
	}
	inters struct {
		IdempotencyKey, SyncEvent, SyncSession []ent.Interceptor
	}
)
