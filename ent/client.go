// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/delverhq/delver/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/delverhq/delver/ent/citation"
	"github.com/delverhq/delver/ent/report"
	"github.com/delverhq/delver/ent/researchdata"
	"github.com/delverhq/delver/ent/researchquery"
	"github.com/delverhq/delver/ent/researchsession"
	"github.com/delverhq/delver/ent/searchhistory"
	"github.com/delverhq/delver/ent/source"
	"github.com/delverhq/delver/ent/user"
	"github.com/delverhq/delver/ent/usersetting"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Citation is the client for interacting with the Citation builders.
	Citation *CitationClient
	// Report is the client for interacting with the Report builders.
	Report *ReportClient
	// ResearchData is the client for interacting with the ResearchData builders.
	ResearchData *ResearchDataClient
	// ResearchQuery is the client for interacting with the ResearchQuery builders.
	ResearchQuery *ResearchQueryClient
	// ResearchSession is the client for interacting with the ResearchSession builders.
	ResearchSession *ResearchSessionClient
	// SearchHistory is the client for interacting with the SearchHistory builders.
	SearchHistory *SearchHistoryClient
	// Source is the client for interacting with the Source builders.
	Source *SourceClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// UserSetting is the client for interacting with the UserSetting builders.
	UserSetting *UserSettingClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Citation = NewCitationClient(c.config)
	c.Report = NewReportClient(c.config)
	c.ResearchData = NewResearchDataClient(c.config)
	c.ResearchQuery = NewResearchQueryClient(c.config)
	c.ResearchSession = NewResearchSessionClient(c.config)
	c.SearchHistory = NewSearchHistoryClient(c.config)
	c.Source = NewSourceClient(c.config)
	c.User = NewUserClient(c.config)
	c.UserSetting = NewUserSettingClient(c.config)
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
		Citation:        NewCitationClient(cfg),
		Report:          NewReportClient(cfg),
		ResearchData:    NewResearchDataClient(cfg),
		ResearchQuery:   NewResearchQueryClient(cfg),
		ResearchSession: NewResearchSessionClient(cfg),
		SearchHistory:   NewSearchHistoryClient(cfg),
		Source:          NewSourceClient(cfg),
		User:            NewUserClient(cfg),
		UserSetting:     NewUserSettingClient(cfg),
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
		Citation:        NewCitationClient(cfg),
		Report:          NewReportClient(cfg),
		ResearchData:    NewResearchDataClient(cfg),
		ResearchQuery:   NewResearchQueryClient(cfg),
		ResearchSession: NewResearchSessionClient(cfg),
		SearchHistory:   NewSearchHistoryClient(cfg),
		Source:          NewSourceClient(cfg),
		User:            NewUserClient(cfg),
		UserSetting:     NewUserSettingClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Citation.
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
		c.Citation, c.Report, c.ResearchData, c.ResearchQuery, c.ResearchSession,
		c.SearchHistory, c.Source, c.User, c.UserSetting,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Citation, c.Report, c.ResearchData, c.ResearchQuery, c.ResearchSession,
		c.SearchHistory, c.Source, c.User, c.UserSetting,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CitationMutation:
		return c.Citation.mutate(ctx, m)
	case *ReportMutation:
		return c.Report.mutate(ctx, m)
	case *ResearchDataMutation:
		return c.ResearchData.mutate(ctx, m)
	case *ResearchQueryMutation:
		return c.ResearchQuery.mutate(ctx, m)
	case *ResearchSessionMutation:
		return c.ResearchSession.mutate(ctx, m)
	case *SearchHistoryMutation:
		return c.SearchHistory.mutate(ctx, m)
	case *SourceMutation:
		return c.Source.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *UserSettingMutation:
		return c.UserSetting.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CitationClient is a client for the Citation schema.
type CitationClient struct {
	config
}

// NewCitationClient returns a client for the Citation from the given config.
func NewCitationClient(c config) *CitationClient {
	return &CitationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `citation.Hooks(f(g(h())))`.
func (c *CitationClient) Use(hooks ...Hook) {
	c.hooks.Citation = append(c.hooks.Citation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `citation.Intercept(f(g(h())))`.
func (c *CitationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Citation = append(c.inters.Citation, interceptors...)
}

// Create returns a builder for creating a Citation entity.
func (c *CitationClient) Create() *CitationCreate {
	mutation := newCitationMutation(c.config, OpCreate)
	return &CitationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Citation entities.
func (c *CitationClient) CreateBulk(builders ...*CitationCreate) *CitationCreateBulk {
	return &CitationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CitationClient) MapCreateBulk(slice any, setFunc func(*CitationCreate, int)) *CitationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CitationCreateBulk{err: fmt.Errorf("calling to CitationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CitationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CitationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Citation.
func (c *CitationClient) Update() *CitationUpdate {
	mutation := newCitationMutation(c.config, OpUpdate)
	return &CitationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CitationClient) UpdateOne(_m *Citation) *CitationUpdateOne {
	mutation := newCitationMutation(c.config, OpUpdateOne, withCitation(_m))
	return &CitationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CitationClient) UpdateOneID(id string) *CitationUpdateOne {
	mutation := newCitationMutation(c.config, OpUpdateOne, withCitationID(id))
	return &CitationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Citation.
func (c *CitationClient) Delete() *CitationDelete {
	mutation := newCitationMutation(c.config, OpDelete)
	return &CitationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CitationClient) DeleteOne(_m *Citation) *CitationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CitationClient) DeleteOneID(id string) *CitationDeleteOne {
	builder := c.Delete().Where(citation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CitationDeleteOne{builder}
}

// Query returns a query builder for Citation.
func (c *CitationClient) Query() *CitationQuery {
	return &CitationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCitation},
		inters: c.Interceptors(),
	}
}

// Get returns a Citation entity by its id.
func (c *CitationClient) Get(ctx context.Context, id string) (*Citation, error) {
	return c.Query().Where(citation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CitationClient) GetX(ctx context.Context, id string) *Citation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryReport queries the report edge of a Citation.
func (c *CitationClient) QueryReport(_m *Citation) *ReportQuery {
	query := (&ReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(citation.Table, citation.FieldID, id),
			sqlgraph.To(report.Table, report.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, citation.ReportTable, citation.ReportColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySource queries the source edge of a Citation.
func (c *CitationClient) QuerySource(_m *Citation) *SourceQuery {
	query := (&SourceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(citation.Table, citation.FieldID, id),
			sqlgraph.To(source.Table, source.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, citation.SourceTable, citation.SourceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CitationClient) Hooks() []Hook {
	return c.hooks.Citation
}

// Interceptors returns the client interceptors.
func (c *CitationClient) Interceptors() []Interceptor {
	return c.inters.Citation
}

func (c *CitationClient) mutate(ctx context.Context, m *CitationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CitationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CitationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CitationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CitationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Citation mutation op: %q", m.Op())
	}
}

// ReportClient is a client for the Report schema.
type ReportClient struct {
	config
}

// NewReportClient returns a client for the Report from the given config.
func NewReportClient(c config) *ReportClient {
	return &ReportClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `report.Hooks(f(g(h())))`.
func (c *ReportClient) Use(hooks ...Hook) {
	c.hooks.Report = append(c.hooks.Report, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `report.Intercept(f(g(h())))`.
func (c *ReportClient) Intercept(interceptors ...Interceptor) {
	c.inters.Report = append(c.inters.Report, interceptors...)
}

// Create returns a builder for creating a Report entity.
func (c *ReportClient) Create() *ReportCreate {
	mutation := newReportMutation(c.config, OpCreate)
	return &ReportCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Report entities.
func (c *ReportClient) CreateBulk(builders ...*ReportCreate) *ReportCreateBulk {
	return &ReportCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReportClient) MapCreateBulk(slice any, setFunc func(*ReportCreate, int)) *ReportCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReportCreateBulk{err: fmt.Errorf("calling to ReportClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReportCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReportCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Report.
func (c *ReportClient) Update() *ReportUpdate {
	mutation := newReportMutation(c.config, OpUpdate)
	return &ReportUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReportClient) UpdateOne(_m *Report) *ReportUpdateOne {
	mutation := newReportMutation(c.config, OpUpdateOne, withReport(_m))
	return &ReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReportClient) UpdateOneID(id string) *ReportUpdateOne {
	mutation := newReportMutation(c.config, OpUpdateOne, withReportID(id))
	return &ReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Report.
func (c *ReportClient) Delete() *ReportDelete {
	mutation := newReportMutation(c.config, OpDelete)
	return &ReportDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReportClient) DeleteOne(_m *Report) *ReportDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReportClient) DeleteOneID(id string) *ReportDeleteOne {
	builder := c.Delete().Where(report.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReportDeleteOne{builder}
}

// Query returns a query builder for Report.
func (c *ReportClient) Query() *ReportQuery {
	return &ReportQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReport},
		inters: c.Interceptors(),
	}
}

// Get returns a Report entity by its id.
func (c *ReportClient) Get(ctx context.Context, id string) (*Report, error) {
	return c.Query().Where(report.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReportClient) GetX(ctx context.Context, id string) *Report {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a Report.
func (c *ReportClient) QuerySession(_m *Report) *ResearchSessionQuery {
	query := (&ResearchSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(report.Table, report.FieldID, id),
			sqlgraph.To(researchsession.Table, researchsession.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, report.SessionTable, report.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCitations queries the citations edge of a Report.
func (c *ReportClient) QueryCitations(_m *Report) *CitationQuery {
	query := (&CitationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(report.Table, report.FieldID, id),
			sqlgraph.To(citation.Table, citation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, report.CitationsTable, report.CitationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ReportClient) Hooks() []Hook {
	return c.hooks.Report
}

// Interceptors returns the client interceptors.
func (c *ReportClient) Interceptors() []Interceptor {
	return c.inters.Report
}

func (c *ReportClient) mutate(ctx context.Context, m *ReportMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReportCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReportUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReportDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Report mutation op: %q", m.Op())
	}
}

// ResearchDataClient is a client for the ResearchData schema.
type ResearchDataClient struct {
	config
}

// NewResearchDataClient returns a client for the ResearchData from the given config.
func NewResearchDataClient(c config) *ResearchDataClient {
	return &ResearchDataClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `researchdata.Hooks(f(g(h())))`.
func (c *ResearchDataClient) Use(hooks ...Hook) {
	c.hooks.ResearchData = append(c.hooks.ResearchData, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `researchdata.Intercept(f(g(h())))`.
func (c *ResearchDataClient) Intercept(interceptors ...Interceptor) {
	c.inters.ResearchData = append(c.inters.ResearchData, interceptors...)
}

// Create returns a builder for creating a ResearchData entity.
func (c *ResearchDataClient) Create() *ResearchDataCreate {
	mutation := newResearchDataMutation(c.config, OpCreate)
	return &ResearchDataCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ResearchData entities.
func (c *ResearchDataClient) CreateBulk(builders ...*ResearchDataCreate) *ResearchDataCreateBulk {
	return &ResearchDataCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ResearchDataClient) MapCreateBulk(slice any, setFunc func(*ResearchDataCreate, int)) *ResearchDataCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ResearchDataCreateBulk{err: fmt.Errorf("calling to ResearchDataClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ResearchDataCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ResearchDataCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ResearchData.
func (c *ResearchDataClient) Update() *ResearchDataUpdate {
	mutation := newResearchDataMutation(c.config, OpUpdate)
	return &ResearchDataUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ResearchDataClient) UpdateOne(_m *ResearchData) *ResearchDataUpdateOne {
	mutation := newResearchDataMutation(c.config, OpUpdateOne, withResearchData(_m))
	return &ResearchDataUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ResearchDataClient) UpdateOneID(id string) *ResearchDataUpdateOne {
	mutation := newResearchDataMutation(c.config, OpUpdateOne, withResearchDataID(id))
	return &ResearchDataUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ResearchData.
func (c *ResearchDataClient) Delete() *ResearchDataDelete {
	mutation := newResearchDataMutation(c.config, OpDelete)
	return &ResearchDataDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ResearchDataClient) DeleteOne(_m *ResearchData) *ResearchDataDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ResearchDataClient) DeleteOneID(id string) *ResearchDataDeleteOne {
	builder := c.Delete().Where(researchdata.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ResearchDataDeleteOne{builder}
}

// Query returns a query builder for ResearchData.
func (c *ResearchDataClient) Query() *ResearchDataQuery {
	return &ResearchDataQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeResearchData},
		inters: c.Interceptors(),
	}
}

// Get returns a ResearchData entity by its id.
func (c *ResearchDataClient) Get(ctx context.Context, id string) (*ResearchData, error) {
	return c.Query().Where(researchdata.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ResearchDataClient) GetX(ctx context.Context, id string) *ResearchData {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a ResearchData.
func (c *ResearchDataClient) QuerySession(_m *ResearchData) *ResearchSessionQuery {
	query := (&ResearchSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(researchdata.Table, researchdata.FieldID, id),
			sqlgraph.To(researchsession.Table, researchsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, researchdata.SessionTable, researchdata.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ResearchDataClient) Hooks() []Hook {
	return c.hooks.ResearchData
}

// Interceptors returns the client interceptors.
func (c *ResearchDataClient) Interceptors() []Interceptor {
	return c.inters.ResearchData
}

func (c *ResearchDataClient) mutate(ctx context.Context, m *ResearchDataMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ResearchDataCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ResearchDataUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ResearchDataUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ResearchDataDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ResearchData mutation op: %q", m.Op())
	}
}

// ResearchQueryClient is a client for the ResearchQuery schema.
type ResearchQueryClient struct {
	config
}

// NewResearchQueryClient returns a client for the ResearchQuery from the given config.
func NewResearchQueryClient(c config) *ResearchQueryClient {
	return &ResearchQueryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `researchquery.Hooks(f(g(h())))`.
func (c *ResearchQueryClient) Use(hooks ...Hook) {
	c.hooks.ResearchQuery = append(c.hooks.ResearchQuery, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `researchquery.Intercept(f(g(h())))`.
func (c *ResearchQueryClient) Intercept(interceptors ...Interceptor) {
	c.inters.ResearchQuery = append(c.inters.ResearchQuery, interceptors...)
}

// Create returns a builder for creating a ResearchQuery entity.
func (c *ResearchQueryClient) Create() *ResearchQueryCreate {
	mutation := newResearchQueryMutation(c.config, OpCreate)
	return &ResearchQueryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ResearchQuery entities.
func (c *ResearchQueryClient) CreateBulk(builders ...*ResearchQueryCreate) *ResearchQueryCreateBulk {
	return &ResearchQueryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ResearchQueryClient) MapCreateBulk(slice any, setFunc func(*ResearchQueryCreate, int)) *ResearchQueryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ResearchQueryCreateBulk{err: fmt.Errorf("calling to ResearchQueryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ResearchQueryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ResearchQueryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ResearchQuery.
func (c *ResearchQueryClient) Update() *ResearchQueryUpdate {
	mutation := newResearchQueryMutation(c.config, OpUpdate)
	return &ResearchQueryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ResearchQueryClient) UpdateOne(_m *ResearchQuery) *ResearchQueryUpdateOne {
	mutation := newResearchQueryMutation(c.config, OpUpdateOne, withResearchQuery(_m))
	return &ResearchQueryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ResearchQueryClient) UpdateOneID(id string) *ResearchQueryUpdateOne {
	mutation := newResearchQueryMutation(c.config, OpUpdateOne, withResearchQueryID(id))
	return &ResearchQueryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ResearchQuery.
func (c *ResearchQueryClient) Delete() *ResearchQueryDelete {
	mutation := newResearchQueryMutation(c.config, OpDelete)
	return &ResearchQueryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ResearchQueryClient) DeleteOne(_m *ResearchQuery) *ResearchQueryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ResearchQueryClient) DeleteOneID(id string) *ResearchQueryDeleteOne {
	builder := c.Delete().Where(researchquery.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ResearchQueryDeleteOne{builder}
}

// Query returns a query builder for ResearchQuery.
func (c *ResearchQueryClient) Query() *ResearchQueryQuery {
	return &ResearchQueryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeResearchQuery},
		inters: c.Interceptors(),
	}
}

// Get returns a ResearchQuery entity by its id.
func (c *ResearchQueryClient) Get(ctx context.Context, id string) (*ResearchQuery, error) {
	return c.Query().Where(researchquery.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ResearchQueryClient) GetX(ctx context.Context, id string) *ResearchQuery {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a ResearchQuery.
func (c *ResearchQueryClient) QuerySession(_m *ResearchQuery) *ResearchSessionQuery {
	query := (&ResearchSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(researchquery.Table, researchquery.FieldID, id),
			sqlgraph.To(researchsession.Table, researchsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, researchquery.SessionTable, researchquery.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ResearchQueryClient) Hooks() []Hook {
	return c.hooks.ResearchQuery
}

// Interceptors returns the client interceptors.
func (c *ResearchQueryClient) Interceptors() []Interceptor {
	return c.inters.ResearchQuery
}

func (c *ResearchQueryClient) mutate(ctx context.Context, m *ResearchQueryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ResearchQueryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ResearchQueryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ResearchQueryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ResearchQueryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ResearchQuery mutation op: %q", m.Op())
	}
}

// ResearchSessionClient is a client for the ResearchSession schema.
type ResearchSessionClient struct {
	config
}

// NewResearchSessionClient returns a client for the ResearchSession from the given config.
func NewResearchSessionClient(c config) *ResearchSessionClient {
	return &ResearchSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `researchsession.Hooks(f(g(h())))`.
func (c *ResearchSessionClient) Use(hooks ...Hook) {
	c.hooks.ResearchSession = append(c.hooks.ResearchSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `researchsession.Intercept(f(g(h())))`.
func (c *ResearchSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ResearchSession = append(c.inters.ResearchSession, interceptors...)
}

// Create returns a builder for creating a ResearchSession entity.
func (c *ResearchSessionClient) Create() *ResearchSessionCreate {
	mutation := newResearchSessionMutation(c.config, OpCreate)
	return &ResearchSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ResearchSession entities.
func (c *ResearchSessionClient) CreateBulk(builders ...*ResearchSessionCreate) *ResearchSessionCreateBulk {
	return &ResearchSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ResearchSessionClient) MapCreateBulk(slice any, setFunc func(*ResearchSessionCreate, int)) *ResearchSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ResearchSessionCreateBulk{err: fmt.Errorf("calling to ResearchSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ResearchSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ResearchSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ResearchSession.
func (c *ResearchSessionClient) Update() *ResearchSessionUpdate {
	mutation := newResearchSessionMutation(c.config, OpUpdate)
	return &ResearchSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ResearchSessionClient) UpdateOne(_m *ResearchSession) *ResearchSessionUpdateOne {
	mutation := newResearchSessionMutation(c.config, OpUpdateOne, withResearchSession(_m))
	return &ResearchSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ResearchSessionClient) UpdateOneID(id string) *ResearchSessionUpdateOne {
	mutation := newResearchSessionMutation(c.config, OpUpdateOne, withResearchSessionID(id))
	return &ResearchSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ResearchSession.
func (c *ResearchSessionClient) Delete() *ResearchSessionDelete {
	mutation := newResearchSessionMutation(c.config, OpDelete)
	return &ResearchSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ResearchSessionClient) DeleteOne(_m *ResearchSession) *ResearchSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ResearchSessionClient) DeleteOneID(id string) *ResearchSessionDeleteOne {
	builder := c.Delete().Where(researchsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ResearchSessionDeleteOne{builder}
}

// Query returns a query builder for ResearchSession.
func (c *ResearchSessionClient) Query() *ResearchSessionQuery {
	return &ResearchSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeResearchSession},
		inters: c.Interceptors(),
	}
}

// Get returns a ResearchSession entity by its id.
func (c *ResearchSessionClient) Get(ctx context.Context, id string) (*ResearchSession, error) {
	return c.Query().Where(researchsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ResearchSessionClient) GetX(ctx context.Context, id string) *ResearchSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryGeneratedReport queries the generated_report edge of a ResearchSession.
func (c *ResearchSessionClient) QueryGeneratedReport(_m *ResearchSession) *ReportQuery {
	query := (&ReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(researchsession.Table, researchsession.FieldID, id),
			sqlgraph.To(report.Table, report.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, researchsession.GeneratedReportTable, researchsession.GeneratedReportColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySources queries the sources edge of a ResearchSession.
func (c *ResearchSessionClient) QuerySources(_m *ResearchSession) *SourceQuery {
	query := (&SourceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(researchsession.Table, researchsession.FieldID, id),
			sqlgraph.To(source.Table, source.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchsession.SourcesTable, researchsession.SourcesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryResearchData queries the research_data edge of a ResearchSession.
func (c *ResearchSessionClient) QueryResearchData(_m *ResearchSession) *ResearchDataQuery {
	query := (&ResearchDataClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(researchsession.Table, researchsession.FieldID, id),
			sqlgraph.To(researchdata.Table, researchdata.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchsession.ResearchDataTable, researchsession.ResearchDataColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryQueries queries the queries edge of a ResearchSession.
func (c *ResearchSessionClient) QueryQueries(_m *ResearchSession) *ResearchQueryQuery {
	query := (&ResearchQueryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(researchsession.Table, researchsession.FieldID, id),
			sqlgraph.To(researchquery.Table, researchquery.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchsession.QueriesTable, researchsession.QueriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ResearchSessionClient) Hooks() []Hook {
	return c.hooks.ResearchSession
}

// Interceptors returns the client interceptors.
func (c *ResearchSessionClient) Interceptors() []Interceptor {
	return c.inters.ResearchSession
}

func (c *ResearchSessionClient) mutate(ctx context.Context, m *ResearchSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ResearchSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ResearchSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ResearchSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ResearchSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ResearchSession mutation op: %q", m.Op())
	}
}

// SearchHistoryClient is a client for the SearchHistory schema.
type SearchHistoryClient struct {
	config
}

// NewSearchHistoryClient returns a client for the SearchHistory from the given config.
func NewSearchHistoryClient(c config) *SearchHistoryClient {
	return &SearchHistoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `searchhistory.Hooks(f(g(h())))`.
func (c *SearchHistoryClient) Use(hooks ...Hook) {
	c.hooks.SearchHistory = append(c.hooks.SearchHistory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `searchhistory.Intercept(f(g(h())))`.
func (c *SearchHistoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.SearchHistory = append(c.inters.SearchHistory, interceptors...)
}

// Create returns a builder for creating a SearchHistory entity.
func (c *SearchHistoryClient) Create() *SearchHistoryCreate {
	mutation := newSearchHistoryMutation(c.config, OpCreate)
	return &SearchHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SearchHistory entities.
func (c *SearchHistoryClient) CreateBulk(builders ...*SearchHistoryCreate) *SearchHistoryCreateBulk {
	return &SearchHistoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SearchHistoryClient) MapCreateBulk(slice any, setFunc func(*SearchHistoryCreate, int)) *SearchHistoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SearchHistoryCreateBulk{err: fmt.Errorf("calling to SearchHistoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SearchHistoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SearchHistoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SearchHistory.
func (c *SearchHistoryClient) Update() *SearchHistoryUpdate {
	mutation := newSearchHistoryMutation(c.config, OpUpdate)
	return &SearchHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SearchHistoryClient) UpdateOne(_m *SearchHistory) *SearchHistoryUpdateOne {
	mutation := newSearchHistoryMutation(c.config, OpUpdateOne, withSearchHistory(_m))
	return &SearchHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SearchHistoryClient) UpdateOneID(id string) *SearchHistoryUpdateOne {
	mutation := newSearchHistoryMutation(c.config, OpUpdateOne, withSearchHistoryID(id))
	return &SearchHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SearchHistory.
func (c *SearchHistoryClient) Delete() *SearchHistoryDelete {
	mutation := newSearchHistoryMutation(c.config, OpDelete)
	return &SearchHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SearchHistoryClient) DeleteOne(_m *SearchHistory) *SearchHistoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SearchHistoryClient) DeleteOneID(id string) *SearchHistoryDeleteOne {
	builder := c.Delete().Where(searchhistory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SearchHistoryDeleteOne{builder}
}

// Query returns a query builder for SearchHistory.
func (c *SearchHistoryClient) Query() *SearchHistoryQuery {
	return &SearchHistoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSearchHistory},
		inters: c.Interceptors(),
	}
}

// Get returns a SearchHistory entity by its id.
func (c *SearchHistoryClient) Get(ctx context.Context, id string) (*SearchHistory, error) {
	return c.Query().Where(searchhistory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SearchHistoryClient) GetX(ctx context.Context, id string) *SearchHistory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a SearchHistory.
func (c *SearchHistoryClient) QueryUser(_m *SearchHistory) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(searchhistory.Table, searchhistory.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, searchhistory.UserTable, searchhistory.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SearchHistoryClient) Hooks() []Hook {
	return c.hooks.SearchHistory
}

// Interceptors returns the client interceptors.
func (c *SearchHistoryClient) Interceptors() []Interceptor {
	return c.inters.SearchHistory
}

func (c *SearchHistoryClient) mutate(ctx context.Context, m *SearchHistoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SearchHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SearchHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SearchHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SearchHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SearchHistory mutation op: %q", m.Op())
	}
}

// SourceClient is a client for the Source schema.
type SourceClient struct {
	config
}

// NewSourceClient returns a client for the Source from the given config.
func NewSourceClient(c config) *SourceClient {
	return &SourceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `source.Hooks(f(g(h())))`.
func (c *SourceClient) Use(hooks ...Hook) {
	c.hooks.Source = append(c.hooks.Source, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `source.Intercept(f(g(h())))`.
func (c *SourceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Source = append(c.inters.Source, interceptors...)
}

// Create returns a builder for creating a Source entity.
func (c *SourceClient) Create() *SourceCreate {
	mutation := newSourceMutation(c.config, OpCreate)
	return &SourceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Source entities.
func (c *SourceClient) CreateBulk(builders ...*SourceCreate) *SourceCreateBulk {
	return &SourceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SourceClient) MapCreateBulk(slice any, setFunc func(*SourceCreate, int)) *SourceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SourceCreateBulk{err: fmt.Errorf("calling to SourceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SourceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SourceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Source.
func (c *SourceClient) Update() *SourceUpdate {
	mutation := newSourceMutation(c.config, OpUpdate)
	return &SourceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SourceClient) UpdateOne(_m *Source) *SourceUpdateOne {
	mutation := newSourceMutation(c.config, OpUpdateOne, withSource(_m))
	return &SourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SourceClient) UpdateOneID(id string) *SourceUpdateOne {
	mutation := newSourceMutation(c.config, OpUpdateOne, withSourceID(id))
	return &SourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Source.
func (c *SourceClient) Delete() *SourceDelete {
	mutation := newSourceMutation(c.config, OpDelete)
	return &SourceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SourceClient) DeleteOne(_m *Source) *SourceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SourceClient) DeleteOneID(id string) *SourceDeleteOne {
	builder := c.Delete().Where(source.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SourceDeleteOne{builder}
}

// Query returns a query builder for Source.
func (c *SourceClient) Query() *SourceQuery {
	return &SourceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSource},
		inters: c.Interceptors(),
	}
}

// Get returns a Source entity by its id.
func (c *SourceClient) Get(ctx context.Context, id string) (*Source, error) {
	return c.Query().Where(source.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SourceClient) GetX(ctx context.Context, id string) *Source {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a Source.
func (c *SourceClient) QuerySession(_m *Source) *ResearchSessionQuery {
	query := (&ResearchSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(source.Table, source.FieldID, id),
			sqlgraph.To(researchsession.Table, researchsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, source.SessionTable, source.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCitations queries the citations edge of a Source.
func (c *SourceClient) QueryCitations(_m *Source) *CitationQuery {
	query := (&CitationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(source.Table, source.FieldID, id),
			sqlgraph.To(citation.Table, citation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, source.CitationsTable, source.CitationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SourceClient) Hooks() []Hook {
	return c.hooks.Source
}

// Interceptors returns the client interceptors.
func (c *SourceClient) Interceptors() []Interceptor {
	return c.inters.Source
}

func (c *SourceClient) mutate(ctx context.Context, m *SourceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SourceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SourceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SourceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Source mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id string) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id string) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id string) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id string) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySettings queries the settings edge of a User.
func (c *UserClient) QuerySettings(_m *User) *UserSettingQuery {
	query := (&UserSettingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(usersetting.Table, usersetting.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, user.SettingsTable, user.SettingsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySearchHistory queries the search_history edge of a User.
func (c *UserClient) QuerySearchHistory(_m *User) *SearchHistoryQuery {
	query := (&SearchHistoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(searchhistory.Table, searchhistory.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.SearchHistoryTable, user.SearchHistoryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// UserSettingClient is a client for the UserSetting schema.
type UserSettingClient struct {
	config
}

// NewUserSettingClient returns a client for the UserSetting from the given config.
func NewUserSettingClient(c config) *UserSettingClient {
	return &UserSettingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usersetting.Hooks(f(g(h())))`.
func (c *UserSettingClient) Use(hooks ...Hook) {
	c.hooks.UserSetting = append(c.hooks.UserSetting, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usersetting.Intercept(f(g(h())))`.
func (c *UserSettingClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserSetting = append(c.inters.UserSetting, interceptors...)
}

// Create returns a builder for creating a UserSetting entity.
func (c *UserSettingClient) Create() *UserSettingCreate {
	mutation := newUserSettingMutation(c.config, OpCreate)
	return &UserSettingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserSetting entities.
func (c *UserSettingClient) CreateBulk(builders ...*UserSettingCreate) *UserSettingCreateBulk {
	return &UserSettingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserSettingClient) MapCreateBulk(slice any, setFunc func(*UserSettingCreate, int)) *UserSettingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserSettingCreateBulk{err: fmt.Errorf("calling to UserSettingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserSettingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserSettingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserSetting.
func (c *UserSettingClient) Update() *UserSettingUpdate {
	mutation := newUserSettingMutation(c.config, OpUpdate)
	return &UserSettingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserSettingClient) UpdateOne(_m *UserSetting) *UserSettingUpdateOne {
	mutation := newUserSettingMutation(c.config, OpUpdateOne, withUserSetting(_m))
	return &UserSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserSettingClient) UpdateOneID(id string) *UserSettingUpdateOne {
	mutation := newUserSettingMutation(c.config, OpUpdateOne, withUserSettingID(id))
	return &UserSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserSetting.
func (c *UserSettingClient) Delete() *UserSettingDelete {
	mutation := newUserSettingMutation(c.config, OpDelete)
	return &UserSettingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserSettingClient) DeleteOne(_m *UserSetting) *UserSettingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserSettingClient) DeleteOneID(id string) *UserSettingDeleteOne {
	builder := c.Delete().Where(usersetting.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserSettingDeleteOne{builder}
}

// Query returns a query builder for UserSetting.
func (c *UserSettingClient) Query() *UserSettingQuery {
	return &UserSettingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserSetting},
		inters: c.Interceptors(),
	}
}

// Get returns a UserSetting entity by its id.
func (c *UserSettingClient) Get(ctx context.Context, id string) (*UserSetting, error) {
	return c.Query().Where(usersetting.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserSettingClient) GetX(ctx context.Context, id string) *UserSetting {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a UserSetting.
func (c *UserSettingClient) QueryUser(_m *UserSetting) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(usersetting.Table, usersetting.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, usersetting.UserTable, usersetting.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserSettingClient) Hooks() []Hook {
	return c.hooks.UserSetting
}

// Interceptors returns the client interceptors.
func (c *UserSettingClient) Interceptors() []Interceptor {
	return c.inters.UserSetting
}

func (c *UserSettingClient) mutate(ctx context.Context, m *UserSettingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserSettingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserSettingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserSettingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserSetting mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Citation, Report, ResearchData, ResearchQuery, ResearchSession, SearchHistory,
		Source, User, UserSetting []ent.Hook
	}
	inters struct {
		Citation, Report, ResearchData, ResearchQuery, ResearchSession, SearchHistory,
		Source, User, UserSetting []ent.Interceptor
	}
)
