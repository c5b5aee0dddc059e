// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/gfranca/mestre/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/gfranca/mestre/ent/examrecord"
	"github.com/gfranca/mestre/ent/llmrequestevent"
	"github.com/gfranca/mestre/ent/workspacestate"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ExamRecord is the client for interacting with the ExamRecord builders.
	ExamRecord *ExamRecordClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// WorkspaceState is the client for interacting with the WorkspaceState builders.
	WorkspaceState *WorkspaceStateClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ExamRecord = NewExamRecordClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.WorkspaceState = NewWorkspaceStateClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		ExamRecord:      NewExamRecordClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		WorkspaceState:  NewWorkspaceStateClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		ExamRecord:      NewExamRecordClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		WorkspaceState:  NewWorkspaceStateClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ExamRecord.
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
	c.ExamRecord.Use(hooks...)
	c.LLMRequestEvent.Use(hooks...)
	c.WorkspaceState.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ExamRecord.Intercept(interceptors...)
	c.LLMRequestEvent.Intercept(interceptors...)
	c.WorkspaceState.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ExamRecordMutation:
		return c.ExamRecord.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *WorkspaceStateMutation:
		return c.WorkspaceState.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ExamRecordClient is a client for the ExamRecord schema.
type ExamRecordClient struct {
	config
}

// NewExamRecordClient returns a client for the ExamRecord from the given config.
func NewExamRecordClient(c config) *ExamRecordClient {
	return &ExamRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `examrecord.Hooks(f(g(h())))`.
func (c *ExamRecordClient) Use(hooks ...Hook) {
	c.hooks.ExamRecord = append(c.hooks.ExamRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `examrecord.Intercept(f(g(h())))`.
func (c *ExamRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExamRecord = append(c.inters.ExamRecord, interceptors...)
}

// Create returns a builder for creating a ExamRecord entity.
func (c *ExamRecordClient) Create() *ExamRecordCreate {
	mutation := newExamRecordMutation(c.config, OpCreate)
	return &ExamRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExamRecord entities.
func (c *ExamRecordClient) CreateBulk(builders ...*ExamRecordCreate) *ExamRecordCreateBulk {
	return &ExamRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExamRecordClient) MapCreateBulk(slice any, setFunc func(*ExamRecordCreate, int)) *ExamRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExamRecordCreateBulk{err: fmt.Errorf("calling to ExamRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExamRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExamRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExamRecord.
func (c *ExamRecordClient) Update() *ExamRecordUpdate {
	mutation := newExamRecordMutation(c.config, OpUpdate)
	return &ExamRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExamRecordClient) UpdateOne(_m *ExamRecord) *ExamRecordUpdateOne {
	mutation := newExamRecordMutation(c.config, OpUpdateOne, withExamRecord(_m))
	return &ExamRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExamRecordClient) UpdateOneID(id int) *ExamRecordUpdateOne {
	mutation := newExamRecordMutation(c.config, OpUpdateOne, withExamRecordID(id))
	return &ExamRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExamRecord.
func (c *ExamRecordClient) Delete() *ExamRecordDelete {
	mutation := newExamRecordMutation(c.config, OpDelete)
	return &ExamRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExamRecordClient) DeleteOne(_m *ExamRecord) *ExamRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExamRecordClient) DeleteOneID(id int) *ExamRecordDeleteOne {
	builder := c.Delete().Where(examrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExamRecordDeleteOne{builder}
}

// Query returns a query builder for ExamRecord.
func (c *ExamRecordClient) Query() *ExamRecordQuery {
	return &ExamRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExamRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a ExamRecord entity by its id.
func (c *ExamRecordClient) Get(ctx context.Context, id int) (*ExamRecord, error) {
	return c.Query().Where(examrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExamRecordClient) GetX(ctx context.Context, id int) *ExamRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExamRecordClient) Hooks() []Hook {
	return c.hooks.ExamRecord
}

// Interceptors returns the client interceptors.
func (c *ExamRecordClient) Interceptors() []Interceptor {
	return c.inters.ExamRecord
}

func (c *ExamRecordClient) mutate(ctx context.Context, m *ExamRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExamRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExamRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExamRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExamRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExamRecord mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// WorkspaceStateClient is a client for the WorkspaceState schema.
type WorkspaceStateClient struct {
	config
}

// NewWorkspaceStateClient returns a client for the WorkspaceState from the given config.
func NewWorkspaceStateClient(c config) *WorkspaceStateClient {
	return &WorkspaceStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workspacestate.Hooks(f(g(h())))`.
func (c *WorkspaceStateClient) Use(hooks ...Hook) {
	c.hooks.WorkspaceState = append(c.hooks.WorkspaceState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workspacestate.Intercept(f(g(h())))`.
func (c *WorkspaceStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkspaceState = append(c.inters.WorkspaceState, interceptors...)
}

// Create returns a builder for creating a WorkspaceState entity.
func (c *WorkspaceStateClient) Create() *WorkspaceStateCreate {
	mutation := newWorkspaceStateMutation(c.config, OpCreate)
	return &WorkspaceStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkspaceState entities.
func (c *WorkspaceStateClient) CreateBulk(builders ...*WorkspaceStateCreate) *WorkspaceStateCreateBulk {
	return &WorkspaceStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkspaceStateClient) MapCreateBulk(slice any, setFunc func(*WorkspaceStateCreate, int)) *WorkspaceStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkspaceStateCreateBulk{err: fmt.Errorf("calling to WorkspaceStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkspaceStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkspaceStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkspaceState.
func (c *WorkspaceStateClient) Update() *WorkspaceStateUpdate {
	mutation := newWorkspaceStateMutation(c.config, OpUpdate)
	return &WorkspaceStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkspaceStateClient) UpdateOne(_m *WorkspaceState) *WorkspaceStateUpdateOne {
	mutation := newWorkspaceStateMutation(c.config, OpUpdateOne, withWorkspaceState(_m))
	return &WorkspaceStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkspaceStateClient) UpdateOneID(id int) *WorkspaceStateUpdateOne {
	mutation := newWorkspaceStateMutation(c.config, OpUpdateOne, withWorkspaceStateID(id))
	return &WorkspaceStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkspaceState.
func (c *WorkspaceStateClient) Delete() *WorkspaceStateDelete {
	mutation := newWorkspaceStateMutation(c.config, OpDelete)
	return &WorkspaceStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkspaceStateClient) DeleteOne(_m *WorkspaceState) *WorkspaceStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkspaceStateClient) DeleteOneID(id int) *WorkspaceStateDeleteOne {
	builder := c.Delete().Where(workspacestate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkspaceStateDeleteOne{builder}
}

// Query returns a query builder for WorkspaceState.
func (c *WorkspaceStateClient) Query() *WorkspaceStateQuery {
	return &WorkspaceStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkspaceState},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkspaceState entity by its id.
func (c *WorkspaceStateClient) Get(ctx context.Context, id int) (*WorkspaceState, error) {
	return c.Query().Where(workspacestate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkspaceStateClient) GetX(ctx context.Context, id int) *WorkspaceState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WorkspaceStateClient) Hooks() []Hook {
	return c.hooks.WorkspaceState
}

// Interceptors returns the client interceptors.
func (c *WorkspaceStateClient) Interceptors() []Interceptor {
	return c.inters.WorkspaceState
}

func (c *WorkspaceStateClient) mutate(ctx context.Context, m *WorkspaceStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkspaceStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkspaceStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkspaceStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkspaceStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkspaceState mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ExamRecord, LLMRequestEvent, WorkspaceState []ent.Hook
	}
	inters struct {
		ExamRecord, LLMRequestEvent, WorkspaceState []ent.Interceptor
	}
)
