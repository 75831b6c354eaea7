// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/cryoflow/cryoflow/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cryoflow/cryoflow/ent/activityentry"
	"github.com/cryoflow/cryoflow/ent/event"
	"github.com/cryoflow/cryoflow/ent/pipelinejob"
	"github.com/cryoflow/cryoflow/ent/pipelinesession"
	"github.com/cryoflow/cryoflow/ent/project"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ActivityEntry is the client for interacting with the ActivityEntry builders.
	ActivityEntry *ActivityEntryClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// PipelineJob is the client for interacting with the PipelineJob builders.
	PipelineJob *PipelineJobClient
	// PipelineSession is the client for interacting with the PipelineSession builders.
	PipelineSession *PipelineSessionClient
	// Project is the client for interacting with the Project builders.
	Project *ProjectClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ActivityEntry = NewActivityEntryClient(c.config)
	c.Event = NewEventClient(c.config)
	c.PipelineJob = NewPipelineJobClient(c.config)
	c.PipelineSession = NewPipelineSessionClient(c.config)
	c.Project = NewProjectClient(c.config)
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
		ActivityEntry:   NewActivityEntryClient(cfg),
		Event:           NewEventClient(cfg),
		PipelineJob:     NewPipelineJobClient(cfg),
		PipelineSession: NewPipelineSessionClient(cfg),
		Project:         NewProjectClient(cfg),
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
		ActivityEntry:   NewActivityEntryClient(cfg),
		Event:           NewEventClient(cfg),
		PipelineJob:     NewPipelineJobClient(cfg),
		PipelineSession: NewPipelineSessionClient(cfg),
		Project:         NewProjectClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ActivityEntry.
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
	c.ActivityEntry.Use(hooks...)
	c.Event.Use(hooks...)
	c.PipelineJob.Use(hooks...)
	c.PipelineSession.Use(hooks...)
	c.Project.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ActivityEntry.Intercept(interceptors...)
	c.Event.Intercept(interceptors...)
	c.PipelineJob.Intercept(interceptors...)
	c.PipelineSession.Intercept(interceptors...)
	c.Project.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ActivityEntryMutation:
		return c.ActivityEntry.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *PipelineJobMutation:
		return c.PipelineJob.mutate(ctx, m)
	case *PipelineSessionMutation:
		return c.PipelineSession.mutate(ctx, m)
	case *ProjectMutation:
		return c.Project.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ActivityEntryClient is a client for the ActivityEntry schema.
type ActivityEntryClient struct {
	config
}

// NewActivityEntryClient returns a client for the ActivityEntry from the given config.
func NewActivityEntryClient(c config) *ActivityEntryClient {
	return &ActivityEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `activityentry.Hooks(f(g(h())))`.
func (c *ActivityEntryClient) Use(hooks ...Hook) {
	c.hooks.ActivityEntry = append(c.hooks.ActivityEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `activityentry.Intercept(f(g(h())))`.
func (c *ActivityEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.ActivityEntry = append(c.inters.ActivityEntry, interceptors...)
}

// Create returns a builder for creating a ActivityEntry entity.
func (c *ActivityEntryClient) Create() *ActivityEntryCreate {
	mutation := newActivityEntryMutation(c.config, OpCreate)
	return &ActivityEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ActivityEntry entities.
func (c *ActivityEntryClient) CreateBulk(builders ...*ActivityEntryCreate) *ActivityEntryCreateBulk {
	return &ActivityEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ActivityEntryClient) MapCreateBulk(slice any, setFunc func(*ActivityEntryCreate, int)) *ActivityEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ActivityEntryCreateBulk{err: fmt.Errorf("calling to ActivityEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ActivityEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ActivityEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ActivityEntry.
func (c *ActivityEntryClient) Update() *ActivityEntryUpdate {
	mutation := newActivityEntryMutation(c.config, OpUpdate)
	return &ActivityEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ActivityEntryClient) UpdateOne(_m *ActivityEntry) *ActivityEntryUpdateOne {
	mutation := newActivityEntryMutation(c.config, OpUpdateOne, withActivityEntry(_m))
	return &ActivityEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ActivityEntryClient) UpdateOneID(id string) *ActivityEntryUpdateOne {
	mutation := newActivityEntryMutation(c.config, OpUpdateOne, withActivityEntryID(id))
	return &ActivityEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ActivityEntry.
func (c *ActivityEntryClient) Delete() *ActivityEntryDelete {
	mutation := newActivityEntryMutation(c.config, OpDelete)
	return &ActivityEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ActivityEntryClient) DeleteOne(_m *ActivityEntry) *ActivityEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ActivityEntryClient) DeleteOneID(id string) *ActivityEntryDeleteOne {
	builder := c.Delete().Where(activityentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ActivityEntryDeleteOne{builder}
}

// Query returns a query builder for ActivityEntry.
func (c *ActivityEntryClient) Query() *ActivityEntryQuery {
	return &ActivityEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeActivityEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a ActivityEntry entity by its id.
func (c *ActivityEntryClient) Get(ctx context.Context, id string) (*ActivityEntry, error) {
	return c.Query().Where(activityentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ActivityEntryClient) GetX(ctx context.Context, id string) *ActivityEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a ActivityEntry.
func (c *ActivityEntryClient) QuerySession(_m *ActivityEntry) *PipelineSessionQuery {
	query := (&PipelineSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(activityentry.Table, activityentry.FieldID, id),
			sqlgraph.To(pipelinesession.Table, pipelinesession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, activityentry.SessionTable, activityentry.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ActivityEntryClient) Hooks() []Hook {
	return c.hooks.ActivityEntry
}

// Interceptors returns the client interceptors.
func (c *ActivityEntryClient) Interceptors() []Interceptor {
	return c.inters.ActivityEntry
}

func (c *ActivityEntryClient) mutate(ctx context.Context, m *ActivityEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ActivityEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ActivityEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ActivityEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ActivityEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ActivityEntry mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// PipelineJobClient is a client for the PipelineJob schema.
type PipelineJobClient struct {
	config
}

// NewPipelineJobClient returns a client for the PipelineJob from the given config.
func NewPipelineJobClient(c config) *PipelineJobClient {
	return &PipelineJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pipelinejob.Hooks(f(g(h())))`.
func (c *PipelineJobClient) Use(hooks ...Hook) {
	c.hooks.PipelineJob = append(c.hooks.PipelineJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pipelinejob.Intercept(f(g(h())))`.
func (c *PipelineJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.PipelineJob = append(c.inters.PipelineJob, interceptors...)
}

// Create returns a builder for creating a PipelineJob entity.
func (c *PipelineJobClient) Create() *PipelineJobCreate {
	mutation := newPipelineJobMutation(c.config, OpCreate)
	return &PipelineJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PipelineJob entities.
func (c *PipelineJobClient) CreateBulk(builders ...*PipelineJobCreate) *PipelineJobCreateBulk {
	return &PipelineJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PipelineJobClient) MapCreateBulk(slice any, setFunc func(*PipelineJobCreate, int)) *PipelineJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PipelineJobCreateBulk{err: fmt.Errorf("calling to PipelineJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PipelineJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PipelineJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PipelineJob.
func (c *PipelineJobClient) Update() *PipelineJobUpdate {
	mutation := newPipelineJobMutation(c.config, OpUpdate)
	return &PipelineJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PipelineJobClient) UpdateOne(_m *PipelineJob) *PipelineJobUpdateOne {
	mutation := newPipelineJobMutation(c.config, OpUpdateOne, withPipelineJob(_m))
	return &PipelineJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PipelineJobClient) UpdateOneID(id string) *PipelineJobUpdateOne {
	mutation := newPipelineJobMutation(c.config, OpUpdateOne, withPipelineJobID(id))
	return &PipelineJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PipelineJob.
func (c *PipelineJobClient) Delete() *PipelineJobDelete {
	mutation := newPipelineJobMutation(c.config, OpDelete)
	return &PipelineJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PipelineJobClient) DeleteOne(_m *PipelineJob) *PipelineJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PipelineJobClient) DeleteOneID(id string) *PipelineJobDeleteOne {
	builder := c.Delete().Where(pipelinejob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PipelineJobDeleteOne{builder}
}

// Query returns a query builder for PipelineJob.
func (c *PipelineJobClient) Query() *PipelineJobQuery {
	return &PipelineJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePipelineJob},
		inters: c.Interceptors(),
	}
}

// Get returns a PipelineJob entity by its id.
func (c *PipelineJobClient) Get(ctx context.Context, id string) (*PipelineJob, error) {
	return c.Query().Where(pipelinejob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PipelineJobClient) GetX(ctx context.Context, id string) *PipelineJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a PipelineJob.
func (c *PipelineJobClient) QuerySession(_m *PipelineJob) *PipelineSessionQuery {
	query := (&PipelineSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pipelinejob.Table, pipelinejob.FieldID, id),
			sqlgraph.To(pipelinesession.Table, pipelinesession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, pipelinejob.SessionTable, pipelinejob.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryProject queries the project edge of a PipelineJob.
func (c *PipelineJobClient) QueryProject(_m *PipelineJob) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pipelinejob.Table, pipelinejob.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, pipelinejob.ProjectTable, pipelinejob.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PipelineJobClient) Hooks() []Hook {
	return c.hooks.PipelineJob
}

// Interceptors returns the client interceptors.
func (c *PipelineJobClient) Interceptors() []Interceptor {
	return c.inters.PipelineJob
}

func (c *PipelineJobClient) mutate(ctx context.Context, m *PipelineJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PipelineJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PipelineJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PipelineJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PipelineJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PipelineJob mutation op: %q", m.Op())
	}
}

// PipelineSessionClient is a client for the PipelineSession schema.
type PipelineSessionClient struct {
	config
}

// NewPipelineSessionClient returns a client for the PipelineSession from the given config.
func NewPipelineSessionClient(c config) *PipelineSessionClient {
	return &PipelineSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pipelinesession.Hooks(f(g(h())))`.
func (c *PipelineSessionClient) Use(hooks ...Hook) {
	c.hooks.PipelineSession = append(c.hooks.PipelineSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pipelinesession.Intercept(f(g(h())))`.
func (c *PipelineSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PipelineSession = append(c.inters.PipelineSession, interceptors...)
}

// Create returns a builder for creating a PipelineSession entity.
func (c *PipelineSessionClient) Create() *PipelineSessionCreate {
	mutation := newPipelineSessionMutation(c.config, OpCreate)
	return &PipelineSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PipelineSession entities.
func (c *PipelineSessionClient) CreateBulk(builders ...*PipelineSessionCreate) *PipelineSessionCreateBulk {
	return &PipelineSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PipelineSessionClient) MapCreateBulk(slice any, setFunc func(*PipelineSessionCreate, int)) *PipelineSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PipelineSessionCreateBulk{err: fmt.Errorf("calling to PipelineSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PipelineSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PipelineSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PipelineSession.
func (c *PipelineSessionClient) Update() *PipelineSessionUpdate {
	mutation := newPipelineSessionMutation(c.config, OpUpdate)
	return &PipelineSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PipelineSessionClient) UpdateOne(_m *PipelineSession) *PipelineSessionUpdateOne {
	mutation := newPipelineSessionMutation(c.config, OpUpdateOne, withPipelineSession(_m))
	return &PipelineSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PipelineSessionClient) UpdateOneID(id string) *PipelineSessionUpdateOne {
	mutation := newPipelineSessionMutation(c.config, OpUpdateOne, withPipelineSessionID(id))
	return &PipelineSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PipelineSession.
func (c *PipelineSessionClient) Delete() *PipelineSessionDelete {
	mutation := newPipelineSessionMutation(c.config, OpDelete)
	return &PipelineSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PipelineSessionClient) DeleteOne(_m *PipelineSession) *PipelineSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PipelineSessionClient) DeleteOneID(id string) *PipelineSessionDeleteOne {
	builder := c.Delete().Where(pipelinesession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PipelineSessionDeleteOne{builder}
}

// Query returns a query builder for PipelineSession.
func (c *PipelineSessionClient) Query() *PipelineSessionQuery {
	return &PipelineSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePipelineSession},
		inters: c.Interceptors(),
	}
}

// Get returns a PipelineSession entity by its id.
func (c *PipelineSessionClient) Get(ctx context.Context, id string) (*PipelineSession, error) {
	return c.Query().Where(pipelinesession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PipelineSessionClient) GetX(ctx context.Context, id string) *PipelineSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a PipelineSession.
func (c *PipelineSessionClient) QueryProject(_m *PipelineSession) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pipelinesession.Table, pipelinesession.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, pipelinesession.ProjectTable, pipelinesession.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPipelineJobs queries the pipeline_jobs edge of a PipelineSession.
func (c *PipelineSessionClient) QueryPipelineJobs(_m *PipelineSession) *PipelineJobQuery {
	query := (&PipelineJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pipelinesession.Table, pipelinesession.FieldID, id),
			sqlgraph.To(pipelinejob.Table, pipelinejob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, pipelinesession.PipelineJobsTable, pipelinesession.PipelineJobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryActivityEntries queries the activity_entries edge of a PipelineSession.
func (c *PipelineSessionClient) QueryActivityEntries(_m *PipelineSession) *ActivityEntryQuery {
	query := (&ActivityEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pipelinesession.Table, pipelinesession.FieldID, id),
			sqlgraph.To(activityentry.Table, activityentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, pipelinesession.ActivityEntriesTable, pipelinesession.ActivityEntriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PipelineSessionClient) Hooks() []Hook {
	return c.hooks.PipelineSession
}

// Interceptors returns the client interceptors.
func (c *PipelineSessionClient) Interceptors() []Interceptor {
	return c.inters.PipelineSession
}

func (c *PipelineSessionClient) mutate(ctx context.Context, m *PipelineSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PipelineSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PipelineSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PipelineSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PipelineSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PipelineSession mutation op: %q", m.Op())
	}
}

// ProjectClient is a client for the Project schema.
type ProjectClient struct {
	config
}

// NewProjectClient returns a client for the Project from the given config.
func NewProjectClient(c config) *ProjectClient {
	return &ProjectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `project.Hooks(f(g(h())))`.
func (c *ProjectClient) Use(hooks ...Hook) {
	c.hooks.Project = append(c.hooks.Project, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `project.Intercept(f(g(h())))`.
func (c *ProjectClient) Intercept(interceptors ...Interceptor) {
	c.inters.Project = append(c.inters.Project, interceptors...)
}

// Create returns a builder for creating a Project entity.
func (c *ProjectClient) Create() *ProjectCreate {
	mutation := newProjectMutation(c.config, OpCreate)
	return &ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Project entities.
func (c *ProjectClient) CreateBulk(builders ...*ProjectCreate) *ProjectCreateBulk {
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectClient) MapCreateBulk(slice any, setFunc func(*ProjectCreate, int)) *ProjectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectCreateBulk{err: fmt.Errorf("calling to ProjectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Project.
func (c *ProjectClient) Update() *ProjectUpdate {
	mutation := newProjectMutation(c.config, OpUpdate)
	return &ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectClient) UpdateOne(_m *Project) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProject(_m))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectClient) UpdateOneID(id string) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProjectID(id))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Project.
func (c *ProjectClient) Delete() *ProjectDelete {
	mutation := newProjectMutation(c.config, OpDelete)
	return &ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectClient) DeleteOne(_m *Project) *ProjectDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectClient) DeleteOneID(id string) *ProjectDeleteOne {
	builder := c.Delete().Where(project.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectDeleteOne{builder}
}

// Query returns a query builder for Project.
func (c *ProjectClient) Query() *ProjectQuery {
	return &ProjectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProject},
		inters: c.Interceptors(),
	}
}

// Get returns a Project entity by its id.
func (c *ProjectClient) Get(ctx context.Context, id string) (*Project, error) {
	return c.Query().Where(project.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectClient) GetX(ctx context.Context, id string) *Project {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySessions queries the sessions edge of a Project.
func (c *ProjectClient) QuerySessions(_m *Project) *PipelineSessionQuery {
	query := (&PipelineSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(pipelinesession.Table, pipelinesession.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.SessionsTable, project.SessionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a Project.
func (c *ProjectClient) QueryJobs(_m *Project) *PipelineJobQuery {
	query := (&PipelineJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(pipelinejob.Table, pipelinejob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.JobsTable, project.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProjectClient) Hooks() []Hook {
	return c.hooks.Project
}

// Interceptors returns the client interceptors.
func (c *ProjectClient) Interceptors() []Interceptor {
	return c.inters.Project
}

func (c *ProjectClient) mutate(ctx context.Context, m *ProjectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Project mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ActivityEntry, Event, PipelineJob, PipelineSession, Project []ent.Hook
	}
	inters struct {
		ActivityEntry, Event, PipelineJob, PipelineSession, Project []ent.Interceptor
	}
)
