// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"specmaster/gen/ent/migrate"

	"specmaster/gen/ent/rawextraction"
	"specmaster/gen/ent/specvariant"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// RawExtraction is the client for interacting with the RawExtraction builders.
	RawExtraction *RawExtractionClient
	// SpecVariant is the client for interacting with the SpecVariant builders.
	SpecVariant *SpecVariantClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.RawExtraction = NewRawExtractionClient(c.config)
	c.SpecVariant = NewSpecVariantClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		RawExtraction: NewRawExtractionClient(cfg),
		SpecVariant:   NewSpecVariantClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		RawExtraction: NewRawExtractionClient(cfg),
		SpecVariant:   NewSpecVariantClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		RawExtraction.
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
	c.RawExtraction.Use(hooks...)
	c.SpecVariant.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.RawExtraction.Intercept(interceptors...)
	c.SpecVariant.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *RawExtractionMutation:
		return c.RawExtraction.mutate(ctx, m)
	case *SpecVariantMutation:
		return c.SpecVariant.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// RawExtractionClient is a client for the RawExtraction schema.
type RawExtractionClient struct {
	config
}

// NewRawExtractionClient returns a client for the RawExtraction from the given config.
func NewRawExtractionClient(c config) *RawExtractionClient {
	return &RawExtractionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `rawextraction.Hooks(f(g(h())))`.
func (c *RawExtractionClient) Use(hooks ...Hook) {
	c.hooks.RawExtraction = append(c.hooks.RawExtraction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `rawextraction.Intercept(f(g(h())))`.
func (c *RawExtractionClient) Intercept(interceptors ...Interceptor) {
	c.inters.RawExtraction = append(c.inters.RawExtraction, interceptors...)
}

// Create returns a builder for creating a RawExtraction entity.
func (c *RawExtractionClient) Create() *RawExtractionCreate {
	mutation := newRawExtractionMutation(c.config, OpCreate)
	return &RawExtractionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RawExtraction entities.
func (c *RawExtractionClient) CreateBulk(builders ...*RawExtractionCreate) *RawExtractionCreateBulk {
	return &RawExtractionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RawExtractionClient) MapCreateBulk(slice any, setFunc func(*RawExtractionCreate, int)) *RawExtractionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RawExtractionCreateBulk{err: fmt.Errorf("calling to RawExtractionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RawExtractionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RawExtractionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RawExtraction.
func (c *RawExtractionClient) Update() *RawExtractionUpdate {
	mutation := newRawExtractionMutation(c.config, OpUpdate)
	return &RawExtractionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RawExtractionClient) UpdateOne(_m *RawExtraction) *RawExtractionUpdateOne {
	mutation := newRawExtractionMutation(c.config, OpUpdateOne, withRawExtraction(_m))
	return &RawExtractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RawExtractionClient) UpdateOneID(id uuid.UUID) *RawExtractionUpdateOne {
	mutation := newRawExtractionMutation(c.config, OpUpdateOne, withRawExtractionID(id))
	return &RawExtractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RawExtraction.
func (c *RawExtractionClient) Delete() *RawExtractionDelete {
	mutation := newRawExtractionMutation(c.config, OpDelete)
	return &RawExtractionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RawExtractionClient) DeleteOne(_m *RawExtraction) *RawExtractionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RawExtractionClient) DeleteOneID(id uuid.UUID) *RawExtractionDeleteOne {
	builder := c.Delete().Where(rawextraction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RawExtractionDeleteOne{builder}
}

// Query returns a query builder for RawExtraction.
func (c *RawExtractionClient) Query() *RawExtractionQuery {
	return &RawExtractionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRawExtraction},
		inters: c.Interceptors(),
	}
}

// Get returns a RawExtraction entity by its id.
func (c *RawExtractionClient) Get(ctx context.Context, id uuid.UUID) (*RawExtraction, error) {
	return c.Query().Where(rawextraction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RawExtractionClient) GetX(ctx context.Context, id uuid.UUID) *RawExtraction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryVariants queries the variants edge of a RawExtraction.
func (c *RawExtractionClient) QueryVariants(_m *RawExtraction) *SpecVariantQuery {
	query := (&SpecVariantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(rawextraction.Table, rawextraction.FieldID, id),
			sqlgraph.To(specvariant.Table, specvariant.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, rawextraction.VariantsTable, rawextraction.VariantsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RawExtractionClient) Hooks() []Hook {
	return c.hooks.RawExtraction
}

// Interceptors returns the client interceptors.
func (c *RawExtractionClient) Interceptors() []Interceptor {
	return c.inters.RawExtraction
}

func (c *RawExtractionClient) mutate(ctx context.Context, m *RawExtractionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RawExtractionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RawExtractionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RawExtractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RawExtractionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RawExtraction mutation op: %q", m.Op())
	}
}

// SpecVariantClient is a client for the SpecVariant schema.
type SpecVariantClient struct {
	config
}

// NewSpecVariantClient returns a client for the SpecVariant from the given config.
func NewSpecVariantClient(c config) *SpecVariantClient {
	return &SpecVariantClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `specvariant.Hooks(f(g(h())))`.
func (c *SpecVariantClient) Use(hooks ...Hook) {
	c.hooks.SpecVariant = append(c.hooks.SpecVariant, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `specvariant.Intercept(f(g(h())))`.
func (c *SpecVariantClient) Intercept(interceptors ...Interceptor) {
	c.inters.SpecVariant = append(c.inters.SpecVariant, interceptors...)
}

// Create returns a builder for creating a SpecVariant entity.
func (c *SpecVariantClient) Create() *SpecVariantCreate {
	mutation := newSpecVariantMutation(c.config, OpCreate)
	return &SpecVariantCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SpecVariant entities.
func (c *SpecVariantClient) CreateBulk(builders ...*SpecVariantCreate) *SpecVariantCreateBulk {
	return &SpecVariantCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SpecVariantClient) MapCreateBulk(slice any, setFunc func(*SpecVariantCreate, int)) *SpecVariantCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SpecVariantCreateBulk{err: fmt.Errorf("calling to SpecVariantClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SpecVariantCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SpecVariantCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SpecVariant.
func (c *SpecVariantClient) Update() *SpecVariantUpdate {
	mutation := newSpecVariantMutation(c.config, OpUpdate)
	return &SpecVariantUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SpecVariantClient) UpdateOne(_m *SpecVariant) *SpecVariantUpdateOne {
	mutation := newSpecVariantMutation(c.config, OpUpdateOne, withSpecVariant(_m))
	return &SpecVariantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SpecVariantClient) UpdateOneID(id uuid.UUID) *SpecVariantUpdateOne {
	mutation := newSpecVariantMutation(c.config, OpUpdateOne, withSpecVariantID(id))
	return &SpecVariantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SpecVariant.
func (c *SpecVariantClient) Delete() *SpecVariantDelete {
	mutation := newSpecVariantMutation(c.config, OpDelete)
	return &SpecVariantDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SpecVariantClient) DeleteOne(_m *SpecVariant) *SpecVariantDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SpecVariantClient) DeleteOneID(id uuid.UUID) *SpecVariantDeleteOne {
	builder := c.Delete().Where(specvariant.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SpecVariantDeleteOne{builder}
}

// Query returns a query builder for SpecVariant.
func (c *SpecVariantClient) Query() *SpecVariantQuery {
	return &SpecVariantQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSpecVariant},
		inters: c.Interceptors(),
	}
}

// Get returns a SpecVariant entity by its id.
func (c *SpecVariantClient) Get(ctx context.Context, id uuid.UUID) (*SpecVariant, error) {
	return c.Query().Where(specvariant.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SpecVariantClient) GetX(ctx context.Context, id uuid.UUID) *SpecVariant {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExtraction queries the extraction edge of a SpecVariant.
func (c *SpecVariantClient) QueryExtraction(_m *SpecVariant) *RawExtractionQuery {
	query := (&RawExtractionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(specvariant.Table, specvariant.FieldID, id),
			sqlgraph.To(rawextraction.Table, rawextraction.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, specvariant.ExtractionTable, specvariant.ExtractionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SpecVariantClient) Hooks() []Hook {
	return c.hooks.SpecVariant
}

// Interceptors returns the client interceptors.
func (c *SpecVariantClient) Interceptors() []Interceptor {
	return c.inters.SpecVariant
}

func (c *SpecVariantClient) mutate(ctx context.Context, m *SpecVariantMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SpecVariantCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SpecVariantUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SpecVariantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SpecVariantDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SpecVariant mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		RawExtraction, SpecVariant []ent.Hook
	}
	inters struct {
		RawExtraction, SpecVariant []ent.Interceptor
	}
)
