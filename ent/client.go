// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/painscope/painscope/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/painscope/painscope/ent/aianalysis"
	"github.com/painscope/painscope/ent/apiusage"
	"github.com/painscope/painscope/ent/joblog"
	"github.com/painscope/painscope/ent/painpoint"
	"github.com/painscope/painscope/ent/painpointquote"
	"github.com/painscope/painscope/ent/search"
	"github.com/painscope/painscope/ent/searchevent"
	"github.com/painscope/painscope/ent/searchsummary"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AiAnalysis is the client for interacting with the AiAnalysis builders.
	AiAnalysis *AiAnalysisClient
	// ApiUsage is the client for interacting with the ApiUsage builders.
	ApiUsage *ApiUsageClient
	// JobLog is the client for interacting with the JobLog builders.
	JobLog *JobLogClient
	// PainPoint is the client for interacting with the PainPoint builders.
	PainPoint *PainPointClient
	// PainPointQuote is the client for interacting with the PainPointQuote builders.
	PainPointQuote *PainPointQuoteClient
	// Search is the client for interacting with the Search builders.
	Search *SearchClient
	// SearchEvent is the client for interacting with the SearchEvent builders.
	SearchEvent *SearchEventClient
	// SearchSummary is the client for interacting with the SearchSummary builders.
	SearchSummary *SearchSummaryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AiAnalysis = NewAiAnalysisClient(c.config)
	c.ApiUsage = NewApiUsageClient(c.config)
	c.JobLog = NewJobLogClient(c.config)
	c.PainPoint = NewPainPointClient(c.config)
	c.PainPointQuote = NewPainPointQuoteClient(c.config)
	c.Search = NewSearchClient(c.config)
	c.SearchEvent = NewSearchEventClient(c.config)
	c.SearchSummary = NewSearchSummaryClient(c.config)
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
		AiAnalysis:     NewAiAnalysisClient(cfg),
		ApiUsage:       NewApiUsageClient(cfg),
		JobLog:         NewJobLogClient(cfg),
		PainPoint:      NewPainPointClient(cfg),
		PainPointQuote: NewPainPointQuoteClient(cfg),
		Search:         NewSearchClient(cfg),
		SearchEvent:    NewSearchEventClient(cfg),
		SearchSummary:  NewSearchSummaryClient(cfg),
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
		AiAnalysis:     NewAiAnalysisClient(cfg),
		ApiUsage:       NewApiUsageClient(cfg),
		JobLog:         NewJobLogClient(cfg),
		PainPoint:      NewPainPointClient(cfg),
		PainPointQuote: NewPainPointQuoteClient(cfg),
		Search:         NewSearchClient(cfg),
		SearchEvent:    NewSearchEventClient(cfg),
		SearchSummary:  NewSearchSummaryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AiAnalysis.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.AiAnalysis, c.ApiUsage, c.JobLog, c.PainPoint, c.PainPointQuote, c.Search,
		c.SearchEvent, c.SearchSummary,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AiAnalysis, c.ApiUsage, c.JobLog, c.PainPoint, c.PainPointQuote, c.Search,
		c.SearchEvent, c.SearchSummary,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AiAnalysisMutation:
		return c.AiAnalysis.mutate(ctx, m)
	case *ApiUsageMutation:
		return c.ApiUsage.mutate(ctx, m)
	case *JobLogMutation:
		return c.JobLog.mutate(ctx, m)
	case *PainPointMutation:
		return c.PainPoint.mutate(ctx, m)
	case *PainPointQuoteMutation:
		return c.PainPointQuote.mutate(ctx, m)
	case *SearchMutation:
		return c.Search.mutate(ctx, m)
	case *SearchEventMutation:
		return c.SearchEvent.mutate(ctx, m)
	case *SearchSummaryMutation:
		return c.SearchSummary.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AiAnalysisClient is a client for the AiAnalysis schema.
type AiAnalysisClient struct {
	config
}

// NewAiAnalysisClient returns a client for the AiAnalysis from the given config.
func NewAiAnalysisClient(c config) *AiAnalysisClient {
	return &AiAnalysisClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `aianalysis.Hooks(f(g(h())))`.
func (c *AiAnalysisClient) Use(hooks ...Hook) {
	c.hooks.AiAnalysis = append(c.hooks.AiAnalysis, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `aianalysis.Intercept(f(g(h())))`.
func (c *AiAnalysisClient) Intercept(interceptors ...Interceptor) {
	c.inters.AiAnalysis = append(c.inters.AiAnalysis, interceptors...)
}

// Create returns a builder for creating a AiAnalysis entity.
func (c *AiAnalysisClient) Create() *AiAnalysisCreate {
	mutation := newAiAnalysisMutation(c.config, OpCreate)
	return &AiAnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AiAnalysis entities.
func (c *AiAnalysisClient) CreateBulk(builders ...*AiAnalysisCreate) *AiAnalysisCreateBulk {
	return &AiAnalysisCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AiAnalysisClient) MapCreateBulk(slice any, setFunc func(*AiAnalysisCreate, int)) *AiAnalysisCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AiAnalysisCreateBulk{err: fmt.Errorf("calling to AiAnalysisClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AiAnalysisCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AiAnalysisCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AiAnalysis.
func (c *AiAnalysisClient) Update() *AiAnalysisUpdate {
	mutation := newAiAnalysisMutation(c.config, OpUpdate)
	return &AiAnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AiAnalysisClient) UpdateOne(_m *AiAnalysis) *AiAnalysisUpdateOne {
	mutation := newAiAnalysisMutation(c.config, OpUpdateOne, withAiAnalysis(_m))
	return &AiAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AiAnalysisClient) UpdateOneID(id int) *AiAnalysisUpdateOne {
	mutation := newAiAnalysisMutation(c.config, OpUpdateOne, withAiAnalysisID(id))
	return &AiAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AiAnalysis.
func (c *AiAnalysisClient) Delete() *AiAnalysisDelete {
	mutation := newAiAnalysisMutation(c.config, OpDelete)
	return &AiAnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AiAnalysisClient) DeleteOne(_m *AiAnalysis) *AiAnalysisDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AiAnalysisClient) DeleteOneID(id int) *AiAnalysisDeleteOne {
	builder := c.Delete().Where(aianalysis.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AiAnalysisDeleteOne{builder}
}

// Query returns a query builder for AiAnalysis.
func (c *AiAnalysisClient) Query() *AiAnalysisQuery {
	return &AiAnalysisQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAiAnalysis},
		inters: c.Interceptors(),
	}
}

// Get returns a AiAnalysis entity by its id.
func (c *AiAnalysisClient) Get(ctx context.Context, id int) (*AiAnalysis, error) {
	return c.Query().Where(aianalysis.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AiAnalysisClient) GetX(ctx context.Context, id int) *AiAnalysis {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySearch queries the search edge of a AiAnalysis.
func (c *AiAnalysisClient) QuerySearch(_m *AiAnalysis) *SearchQuery {
	query := (&SearchClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(aianalysis.Table, aianalysis.FieldID, id),
			sqlgraph.To(search.Table, search.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, aianalysis.SearchTable, aianalysis.SearchColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AiAnalysisClient) Hooks() []Hook {
	return c.hooks.AiAnalysis
}

// Interceptors returns the client interceptors.
func (c *AiAnalysisClient) Interceptors() []Interceptor {
	return c.inters.AiAnalysis
}

func (c *AiAnalysisClient) mutate(ctx context.Context, m *AiAnalysisMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AiAnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AiAnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AiAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AiAnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AiAnalysis mutation op: %q", m.Op())
	}
}

// ApiUsageClient is a client for the ApiUsage schema.
type ApiUsageClient struct {
	config
}

// NewApiUsageClient returns a client for the ApiUsage from the given config.
func NewApiUsageClient(c config) *ApiUsageClient {
	return &ApiUsageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `apiusage.Hooks(f(g(h())))`.
func (c *ApiUsageClient) Use(hooks ...Hook) {
	c.hooks.ApiUsage = append(c.hooks.ApiUsage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `apiusage.Intercept(f(g(h())))`.
func (c *ApiUsageClient) Intercept(interceptors ...Interceptor) {
	c.inters.ApiUsage = append(c.inters.ApiUsage, interceptors...)
}

// Create returns a builder for creating a ApiUsage entity.
func (c *ApiUsageClient) Create() *ApiUsageCreate {
	mutation := newApiUsageMutation(c.config, OpCreate)
	return &ApiUsageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ApiUsage entities.
func (c *ApiUsageClient) CreateBulk(builders ...*ApiUsageCreate) *ApiUsageCreateBulk {
	return &ApiUsageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ApiUsageClient) MapCreateBulk(slice any, setFunc func(*ApiUsageCreate, int)) *ApiUsageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ApiUsageCreateBulk{err: fmt.Errorf("calling to ApiUsageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ApiUsageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ApiUsageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ApiUsage.
func (c *ApiUsageClient) Update() *ApiUsageUpdate {
	mutation := newApiUsageMutation(c.config, OpUpdate)
	return &ApiUsageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ApiUsageClient) UpdateOne(_m *ApiUsage) *ApiUsageUpdateOne {
	mutation := newApiUsageMutation(c.config, OpUpdateOne, withApiUsage(_m))
	return &ApiUsageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ApiUsageClient) UpdateOneID(id int) *ApiUsageUpdateOne {
	mutation := newApiUsageMutation(c.config, OpUpdateOne, withApiUsageID(id))
	return &ApiUsageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ApiUsage.
func (c *ApiUsageClient) Delete() *ApiUsageDelete {
	mutation := newApiUsageMutation(c.config, OpDelete)
	return &ApiUsageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ApiUsageClient) DeleteOne(_m *ApiUsage) *ApiUsageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ApiUsageClient) DeleteOneID(id int) *ApiUsageDeleteOne {
	builder := c.Delete().Where(apiusage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ApiUsageDeleteOne{builder}
}

// Query returns a query builder for ApiUsage.
func (c *ApiUsageClient) Query() *ApiUsageQuery {
	return &ApiUsageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeApiUsage},
		inters: c.Interceptors(),
	}
}

// Get returns a ApiUsage entity by its id.
func (c *ApiUsageClient) Get(ctx context.Context, id int) (*ApiUsage, error) {
	return c.Query().Where(apiusage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ApiUsageClient) GetX(ctx context.Context, id int) *ApiUsage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySearch queries the search edge of a ApiUsage.
func (c *ApiUsageClient) QuerySearch(_m *ApiUsage) *SearchQuery {
	query := (&SearchClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(apiusage.Table, apiusage.FieldID, id),
			sqlgraph.To(search.Table, search.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, apiusage.SearchTable, apiusage.SearchColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ApiUsageClient) Hooks() []Hook {
	return c.hooks.ApiUsage
}

// Interceptors returns the client interceptors.
func (c *ApiUsageClient) Interceptors() []Interceptor {
	return c.inters.ApiUsage
}

func (c *ApiUsageClient) mutate(ctx context.Context, m *ApiUsageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ApiUsageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ApiUsageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ApiUsageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ApiUsageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ApiUsage mutation op: %q", m.Op())
	}
}

// JobLogClient is a client for the JobLog schema.
type JobLogClient struct {
	config
}

// NewJobLogClient returns a client for the JobLog from the given config.
func NewJobLogClient(c config) *JobLogClient {
	return &JobLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `joblog.Hooks(f(g(h())))`.
func (c *JobLogClient) Use(hooks ...Hook) {
	c.hooks.JobLog = append(c.hooks.JobLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `joblog.Intercept(f(g(h())))`.
func (c *JobLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.JobLog = append(c.inters.JobLog, interceptors...)
}

// Create returns a builder for creating a JobLog entity.
func (c *JobLogClient) Create() *JobLogCreate {
	mutation := newJobLogMutation(c.config, OpCreate)
	return &JobLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of JobLog entities.
func (c *JobLogClient) CreateBulk(builders ...*JobLogCreate) *JobLogCreateBulk {
	return &JobLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobLogClient) MapCreateBulk(slice any, setFunc func(*JobLogCreate, int)) *JobLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobLogCreateBulk{err: fmt.Errorf("calling to JobLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for JobLog.
func (c *JobLogClient) Update() *JobLogUpdate {
	mutation := newJobLogMutation(c.config, OpUpdate)
	return &JobLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobLogClient) UpdateOne(_m *JobLog) *JobLogUpdateOne {
	mutation := newJobLogMutation(c.config, OpUpdateOne, withJobLog(_m))
	return &JobLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobLogClient) UpdateOneID(id int) *JobLogUpdateOne {
	mutation := newJobLogMutation(c.config, OpUpdateOne, withJobLogID(id))
	return &JobLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for JobLog.
func (c *JobLogClient) Delete() *JobLogDelete {
	mutation := newJobLogMutation(c.config, OpDelete)
	return &JobLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobLogClient) DeleteOne(_m *JobLog) *JobLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobLogClient) DeleteOneID(id int) *JobLogDeleteOne {
	builder := c.Delete().Where(joblog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobLogDeleteOne{builder}
}

// Query returns a query builder for JobLog.
func (c *JobLogClient) Query() *JobLogQuery {
	return &JobLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJobLog},
		inters: c.Interceptors(),
	}
}

// Get returns a JobLog entity by its id.
func (c *JobLogClient) Get(ctx context.Context, id int) (*JobLog, error) {
	return c.Query().Where(joblog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobLogClient) GetX(ctx context.Context, id int) *JobLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *JobLogClient) Hooks() []Hook {
	return c.hooks.JobLog
}

// Interceptors returns the client interceptors.
func (c *JobLogClient) Interceptors() []Interceptor {
	return c.inters.JobLog
}

func (c *JobLogClient) mutate(ctx context.Context, m *JobLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown JobLog mutation op: %q", m.Op())
	}
}

// PainPointClient is a client for the PainPoint schema.
type PainPointClient struct {
	config
}

// NewPainPointClient returns a client for the PainPoint from the given config.
func NewPainPointClient(c config) *PainPointClient {
	return &PainPointClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `painpoint.Hooks(f(g(h())))`.
func (c *PainPointClient) Use(hooks ...Hook) {
	c.hooks.PainPoint = append(c.hooks.PainPoint, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `painpoint.Intercept(f(g(h())))`.
func (c *PainPointClient) Intercept(interceptors ...Interceptor) {
	c.inters.PainPoint = append(c.inters.PainPoint, interceptors...)
}

// Create returns a builder for creating a PainPoint entity.
func (c *PainPointClient) Create() *PainPointCreate {
	mutation := newPainPointMutation(c.config, OpCreate)
	return &PainPointCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PainPoint entities.
func (c *PainPointClient) CreateBulk(builders ...*PainPointCreate) *PainPointCreateBulk {
	return &PainPointCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PainPointClient) MapCreateBulk(slice any, setFunc func(*PainPointCreate, int)) *PainPointCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PainPointCreateBulk{err: fmt.Errorf("calling to PainPointClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PainPointCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PainPointCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PainPoint.
func (c *PainPointClient) Update() *PainPointUpdate {
	mutation := newPainPointMutation(c.config, OpUpdate)
	return &PainPointUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PainPointClient) UpdateOne(_m *PainPoint) *PainPointUpdateOne {
	mutation := newPainPointMutation(c.config, OpUpdateOne, withPainPoint(_m))
	return &PainPointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PainPointClient) UpdateOneID(id string) *PainPointUpdateOne {
	mutation := newPainPointMutation(c.config, OpUpdateOne, withPainPointID(id))
	return &PainPointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PainPoint.
func (c *PainPointClient) Delete() *PainPointDelete {
	mutation := newPainPointMutation(c.config, OpDelete)
	return &PainPointDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PainPointClient) DeleteOne(_m *PainPoint) *PainPointDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PainPointClient) DeleteOneID(id string) *PainPointDeleteOne {
	builder := c.Delete().Where(painpoint.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PainPointDeleteOne{builder}
}

// Query returns a query builder for PainPoint.
func (c *PainPointClient) Query() *PainPointQuery {
	return &PainPointQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePainPoint},
		inters: c.Interceptors(),
	}
}

// Get returns a PainPoint entity by its id.
func (c *PainPointClient) Get(ctx context.Context, id string) (*PainPoint, error) {
	return c.Query().Where(painpoint.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PainPointClient) GetX(ctx context.Context, id string) *PainPoint {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySearch queries the search edge of a PainPoint.
func (c *PainPointClient) QuerySearch(_m *PainPoint) *SearchQuery {
	query := (&SearchClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(painpoint.Table, painpoint.FieldID, id),
			sqlgraph.To(search.Table, search.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, painpoint.SearchTable, painpoint.SearchColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryQuotes queries the quotes edge of a PainPoint.
func (c *PainPointClient) QueryQuotes(_m *PainPoint) *PainPointQuoteQuery {
	query := (&PainPointQuoteClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(painpoint.Table, painpoint.FieldID, id),
			sqlgraph.To(painpointquote.Table, painpointquote.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, painpoint.QuotesTable, painpoint.QuotesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PainPointClient) Hooks() []Hook {
	return c.hooks.PainPoint
}

// Interceptors returns the client interceptors.
func (c *PainPointClient) Interceptors() []Interceptor {
	return c.inters.PainPoint
}

func (c *PainPointClient) mutate(ctx context.Context, m *PainPointMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PainPointCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PainPointUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PainPointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PainPointDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PainPoint mutation op: %q", m.Op())
	}
}

// PainPointQuoteClient is a client for the PainPointQuote schema.
type PainPointQuoteClient struct {
	config
}

// NewPainPointQuoteClient returns a client for the PainPointQuote from the given config.
func NewPainPointQuoteClient(c config) *PainPointQuoteClient {
	return &PainPointQuoteClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `painpointquote.Hooks(f(g(h())))`.
func (c *PainPointQuoteClient) Use(hooks ...Hook) {
	c.hooks.PainPointQuote = append(c.hooks.PainPointQuote, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `painpointquote.Intercept(f(g(h())))`.
func (c *PainPointQuoteClient) Intercept(interceptors ...Interceptor) {
	c.inters.PainPointQuote = append(c.inters.PainPointQuote, interceptors...)
}

// Create returns a builder for creating a PainPointQuote entity.
func (c *PainPointQuoteClient) Create() *PainPointQuoteCreate {
	mutation := newPainPointQuoteMutation(c.config, OpCreate)
	return &PainPointQuoteCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PainPointQuote entities.
func (c *PainPointQuoteClient) CreateBulk(builders ...*PainPointQuoteCreate) *PainPointQuoteCreateBulk {
	return &PainPointQuoteCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PainPointQuoteClient) MapCreateBulk(slice any, setFunc func(*PainPointQuoteCreate, int)) *PainPointQuoteCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PainPointQuoteCreateBulk{err: fmt.Errorf("calling to PainPointQuoteClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PainPointQuoteCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PainPointQuoteCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PainPointQuote.
func (c *PainPointQuoteClient) Update() *PainPointQuoteUpdate {
	mutation := newPainPointQuoteMutation(c.config, OpUpdate)
	return &PainPointQuoteUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PainPointQuoteClient) UpdateOne(_m *PainPointQuote) *PainPointQuoteUpdateOne {
	mutation := newPainPointQuoteMutation(c.config, OpUpdateOne, withPainPointQuote(_m))
	return &PainPointQuoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PainPointQuoteClient) UpdateOneID(id string) *PainPointQuoteUpdateOne {
	mutation := newPainPointQuoteMutation(c.config, OpUpdateOne, withPainPointQuoteID(id))
	return &PainPointQuoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PainPointQuote.
func (c *PainPointQuoteClient) Delete() *PainPointQuoteDelete {
	mutation := newPainPointQuoteMutation(c.config, OpDelete)
	return &PainPointQuoteDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PainPointQuoteClient) DeleteOne(_m *PainPointQuote) *PainPointQuoteDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PainPointQuoteClient) DeleteOneID(id string) *PainPointQuoteDeleteOne {
	builder := c.Delete().Where(painpointquote.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PainPointQuoteDeleteOne{builder}
}

// Query returns a query builder for PainPointQuote.
func (c *PainPointQuoteClient) Query() *PainPointQuoteQuery {
	return &PainPointQuoteQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePainPointQuote},
		inters: c.Interceptors(),
	}
}

// Get returns a PainPointQuote entity by its id.
func (c *PainPointQuoteClient) Get(ctx context.Context, id string) (*PainPointQuote, error) {
	return c.Query().Where(painpointquote.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PainPointQuoteClient) GetX(ctx context.Context, id string) *PainPointQuote {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPainPoint queries the pain_point edge of a PainPointQuote.
func (c *PainPointQuoteClient) QueryPainPoint(_m *PainPointQuote) *PainPointQuery {
	query := (&PainPointClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(painpointquote.Table, painpointquote.FieldID, id),
			sqlgraph.To(painpoint.Table, painpoint.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, painpointquote.PainPointTable, painpointquote.PainPointColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PainPointQuoteClient) Hooks() []Hook {
	return c.hooks.PainPointQuote
}

// Interceptors returns the client interceptors.
func (c *PainPointQuoteClient) Interceptors() []Interceptor {
	return c.inters.PainPointQuote
}

func (c *PainPointQuoteClient) mutate(ctx context.Context, m *PainPointQuoteMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PainPointQuoteCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PainPointQuoteUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PainPointQuoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PainPointQuoteDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PainPointQuote mutation op: %q", m.Op())
	}
}

// SearchClient is a client for the Search schema.
type SearchClient struct {
	config
}

// NewSearchClient returns a client for the Search from the given config.
func NewSearchClient(c config) *SearchClient {
	return &SearchClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `search.Hooks(f(g(h())))`.
func (c *SearchClient) Use(hooks ...Hook) {
	c.hooks.Search = append(c.hooks.Search, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `search.Intercept(f(g(h())))`.
func (c *SearchClient) Intercept(interceptors ...Interceptor) {
	c.inters.Search = append(c.inters.Search, interceptors...)
}

// Create returns a builder for creating a Search entity.
func (c *SearchClient) Create() *SearchCreate {
	mutation := newSearchMutation(c.config, OpCreate)
	return &SearchCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Search entities.
func (c *SearchClient) CreateBulk(builders ...*SearchCreate) *SearchCreateBulk {
	return &SearchCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SearchClient) MapCreateBulk(slice any, setFunc func(*SearchCreate, int)) *SearchCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SearchCreateBulk{err: fmt.Errorf("calling to SearchClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SearchCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SearchCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Search.
func (c *SearchClient) Update() *SearchUpdate {
	mutation := newSearchMutation(c.config, OpUpdate)
	return &SearchUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SearchClient) UpdateOne(_m *Search) *SearchUpdateOne {
	mutation := newSearchMutation(c.config, OpUpdateOne, withSearch(_m))
	return &SearchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SearchClient) UpdateOneID(id string) *SearchUpdateOne {
	mutation := newSearchMutation(c.config, OpUpdateOne, withSearchID(id))
	return &SearchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Search.
func (c *SearchClient) Delete() *SearchDelete {
	mutation := newSearchMutation(c.config, OpDelete)
	return &SearchDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SearchClient) DeleteOne(_m *Search) *SearchDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SearchClient) DeleteOneID(id string) *SearchDeleteOne {
	builder := c.Delete().Where(search.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SearchDeleteOne{builder}
}

// Query returns a query builder for Search.
func (c *SearchClient) Query() *SearchQuery {
	return &SearchQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSearch},
		inters: c.Interceptors(),
	}
}

// Get returns a Search entity by its id.
func (c *SearchClient) Get(ctx context.Context, id string) (*Search, error) {
	return c.Query().Where(search.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SearchClient) GetX(ctx context.Context, id string) *Search {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySummary queries the summary edge of a Search.
func (c *SearchClient) QuerySummary(_m *Search) *SearchSummaryQuery {
	query := (&SearchSummaryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(search.Table, search.FieldID, id),
			sqlgraph.To(searchsummary.Table, searchsummary.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, search.SummaryTable, search.SummaryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPainPoints queries the pain_points edge of a Search.
func (c *SearchClient) QueryPainPoints(_m *Search) *PainPointQuery {
	query := (&PainPointClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(search.Table, search.FieldID, id),
			sqlgraph.To(painpoint.Table, painpoint.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, search.PainPointsTable, search.PainPointsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAnalysis queries the analysis edge of a Search.
func (c *SearchClient) QueryAnalysis(_m *Search) *AiAnalysisQuery {
	query := (&AiAnalysisClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(search.Table, search.FieldID, id),
			sqlgraph.To(aianalysis.Table, aianalysis.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, search.AnalysisTable, search.AnalysisColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a Search.
func (c *SearchClient) QueryEvents(_m *Search) *SearchEventQuery {
	query := (&SearchEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(search.Table, search.FieldID, id),
			sqlgraph.To(searchevent.Table, searchevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, search.EventsTable, search.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryUsages queries the usages edge of a Search.
func (c *SearchClient) QueryUsages(_m *Search) *ApiUsageQuery {
	query := (&ApiUsageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(search.Table, search.FieldID, id),
			sqlgraph.To(apiusage.Table, apiusage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, search.UsagesTable, search.UsagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SearchClient) Hooks() []Hook {
	return c.hooks.Search
}

// Interceptors returns the client interceptors.
func (c *SearchClient) Interceptors() []Interceptor {
	return c.inters.Search
}

func (c *SearchClient) mutate(ctx context.Context, m *SearchMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SearchCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SearchUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SearchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SearchDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Search mutation op: %q", m.Op())
	}
}

// SearchEventClient is a client for the SearchEvent schema.
type SearchEventClient struct {
	config
}

// NewSearchEventClient returns a client for the SearchEvent from the given config.
func NewSearchEventClient(c config) *SearchEventClient {
	return &SearchEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `searchevent.Hooks(f(g(h())))`.
func (c *SearchEventClient) Use(hooks ...Hook) {
	c.hooks.SearchEvent = append(c.hooks.SearchEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `searchevent.Intercept(f(g(h())))`.
func (c *SearchEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SearchEvent = append(c.inters.SearchEvent, interceptors...)
}

// Create returns a builder for creating a SearchEvent entity.
func (c *SearchEventClient) Create() *SearchEventCreate {
	mutation := newSearchEventMutation(c.config, OpCreate)
	return &SearchEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SearchEvent entities.
func (c *SearchEventClient) CreateBulk(builders ...*SearchEventCreate) *SearchEventCreateBulk {
	return &SearchEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SearchEventClient) MapCreateBulk(slice any, setFunc func(*SearchEventCreate, int)) *SearchEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SearchEventCreateBulk{err: fmt.Errorf("calling to SearchEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SearchEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SearchEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SearchEvent.
func (c *SearchEventClient) Update() *SearchEventUpdate {
	mutation := newSearchEventMutation(c.config, OpUpdate)
	return &SearchEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SearchEventClient) UpdateOne(_m *SearchEvent) *SearchEventUpdateOne {
	mutation := newSearchEventMutation(c.config, OpUpdateOne, withSearchEvent(_m))
	return &SearchEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SearchEventClient) UpdateOneID(id int) *SearchEventUpdateOne {
	mutation := newSearchEventMutation(c.config, OpUpdateOne, withSearchEventID(id))
	return &SearchEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SearchEvent.
func (c *SearchEventClient) Delete() *SearchEventDelete {
	mutation := newSearchEventMutation(c.config, OpDelete)
	return &SearchEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SearchEventClient) DeleteOne(_m *SearchEvent) *SearchEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SearchEventClient) DeleteOneID(id int) *SearchEventDeleteOne {
	builder := c.Delete().Where(searchevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SearchEventDeleteOne{builder}
}

// Query returns a query builder for SearchEvent.
func (c *SearchEventClient) Query() *SearchEventQuery {
	return &SearchEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSearchEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SearchEvent entity by its id.
func (c *SearchEventClient) Get(ctx context.Context, id int) (*SearchEvent, error) {
	return c.Query().Where(searchevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SearchEventClient) GetX(ctx context.Context, id int) *SearchEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySearch queries the search edge of a SearchEvent.
func (c *SearchEventClient) QuerySearch(_m *SearchEvent) *SearchQuery {
	query := (&SearchClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(searchevent.Table, searchevent.FieldID, id),
			sqlgraph.To(search.Table, search.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, searchevent.SearchTable, searchevent.SearchColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SearchEventClient) Hooks() []Hook {
	return c.hooks.SearchEvent
}

// Interceptors returns the client interceptors.
func (c *SearchEventClient) Interceptors() []Interceptor {
	return c.inters.SearchEvent
}

func (c *SearchEventClient) mutate(ctx context.Context, m *SearchEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SearchEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SearchEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SearchEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SearchEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SearchEvent mutation op: %q", m.Op())
	}
}

// SearchSummaryClient is a client for the SearchSummary schema.
type SearchSummaryClient struct {
	config
}

// NewSearchSummaryClient returns a client for the SearchSummary from the given config.
func NewSearchSummaryClient(c config) *SearchSummaryClient {
	return &SearchSummaryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `searchsummary.Hooks(f(g(h())))`.
func (c *SearchSummaryClient) Use(hooks ...Hook) {
	c.hooks.SearchSummary = append(c.hooks.SearchSummary, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `searchsummary.Intercept(f(g(h())))`.
func (c *SearchSummaryClient) Intercept(interceptors ...Interceptor) {
	c.inters.SearchSummary = append(c.inters.SearchSummary, interceptors...)
}

// Create returns a builder for creating a SearchSummary entity.
func (c *SearchSummaryClient) Create() *SearchSummaryCreate {
	mutation := newSearchSummaryMutation(c.config, OpCreate)
	return &SearchSummaryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SearchSummary entities.
func (c *SearchSummaryClient) CreateBulk(builders ...*SearchSummaryCreate) *SearchSummaryCreateBulk {
	return &SearchSummaryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SearchSummaryClient) MapCreateBulk(slice any, setFunc func(*SearchSummaryCreate, int)) *SearchSummaryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SearchSummaryCreateBulk{err: fmt.Errorf("calling to SearchSummaryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SearchSummaryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SearchSummaryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SearchSummary.
func (c *SearchSummaryClient) Update() *SearchSummaryUpdate {
	mutation := newSearchSummaryMutation(c.config, OpUpdate)
	return &SearchSummaryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SearchSummaryClient) UpdateOne(_m *SearchSummary) *SearchSummaryUpdateOne {
	mutation := newSearchSummaryMutation(c.config, OpUpdateOne, withSearchSummary(_m))
	return &SearchSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SearchSummaryClient) UpdateOneID(id int) *SearchSummaryUpdateOne {
	mutation := newSearchSummaryMutation(c.config, OpUpdateOne, withSearchSummaryID(id))
	return &SearchSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SearchSummary.
func (c *SearchSummaryClient) Delete() *SearchSummaryDelete {
	mutation := newSearchSummaryMutation(c.config, OpDelete)
	return &SearchSummaryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SearchSummaryClient) DeleteOne(_m *SearchSummary) *SearchSummaryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SearchSummaryClient) DeleteOneID(id int) *SearchSummaryDeleteOne {
	builder := c.Delete().Where(searchsummary.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SearchSummaryDeleteOne{builder}
}

// Query returns a query builder for SearchSummary.
func (c *SearchSummaryClient) Query() *SearchSummaryQuery {
	return &SearchSummaryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSearchSummary},
		inters: c.Interceptors(),
	}
}

// Get returns a SearchSummary entity by its id.
func (c *SearchSummaryClient) Get(ctx context.Context, id int) (*SearchSummary, error) {
	return c.Query().Where(searchsummary.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SearchSummaryClient) GetX(ctx context.Context, id int) *SearchSummary {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySearch queries the search edge of a SearchSummary.
func (c *SearchSummaryClient) QuerySearch(_m *SearchSummary) *SearchQuery {
	query := (&SearchClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(searchsummary.Table, searchsummary.FieldID, id),
			sqlgraph.To(search.Table, search.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, searchsummary.SearchTable, searchsummary.SearchColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SearchSummaryClient) Hooks() []Hook {
	return c.hooks.SearchSummary
}

// Interceptors returns the client interceptors.
func (c *SearchSummaryClient) Interceptors() []Interceptor {
	return c.inters.SearchSummary
}

func (c *SearchSummaryClient) mutate(ctx context.Context, m *SearchSummaryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SearchSummaryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SearchSummaryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SearchSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SearchSummaryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SearchSummary mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AiAnalysis, ApiUsage, JobLog, PainPoint, PainPointQuote, Search, SearchEvent,
		SearchSummary []ent.Hook
	}
	inters struct {
		AiAnalysis, ApiUsage, JobLog, PainPoint, PainPointQuote, Search, SearchEvent,
		SearchSummary []ent.Interceptor
	}
)
