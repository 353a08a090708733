// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/delverhq/delver/ent/predicate"
	"github.com/delverhq/delver/ent/report"
	"github.com/delverhq/delver/ent/researchdata"
	"github.com/delverhq/delver/ent/researchquery"
	"github.com/delverhq/delver/ent/researchsession"
	"github.com/delverhq/delver/ent/source"
)

// ResearchSessionQuery is the builder for querying ResearchSession entities.
type ResearchSessionQuery struct {
	config
	ctx                 *QueryContext
	order               []researchsession.OrderOption
	inters              []Interceptor
	predicates          []predicate.ResearchSession
	withGeneratedReport *ReportQuery
	withSources         *SourceQuery
	withResearchData    *ResearchDataQuery
	withQueries         *ResearchQueryQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ResearchSessionQuery builder.
func (_q *ResearchSessionQuery) Where(ps ...predicate.ResearchSession) *ResearchSessionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ResearchSessionQuery) Limit(limit int) *ResearchSessionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ResearchSessionQuery) Offset(offset int) *ResearchSessionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ResearchSessionQuery) Unique(unique bool) *ResearchSessionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ResearchSessionQuery) Order(o ...researchsession.OrderOption) *ResearchSessionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryGeneratedReport chains the current query on the "generated_report" edge.
func (_q *ResearchSessionQuery) QueryGeneratedReport() *ReportQuery {
	query := (&ReportClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(researchsession.Table, researchsession.FieldID, selector),
			sqlgraph.To(report.Table, report.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, researchsession.GeneratedReportTable, researchsession.GeneratedReportColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySources chains the current query on the "sources" edge.
func (_q *ResearchSessionQuery) QuerySources() *SourceQuery {
	query := (&SourceClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(researchsession.Table, researchsession.FieldID, selector),
			sqlgraph.To(source.Table, source.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchsession.SourcesTable, researchsession.SourcesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryResearchData chains the current query on the "research_data" edge.
func (_q *ResearchSessionQuery) QueryResearchData() *ResearchDataQuery {
	query := (&ResearchDataClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(researchsession.Table, researchsession.FieldID, selector),
			sqlgraph.To(researchdata.Table, researchdata.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchsession.ResearchDataTable, researchsession.ResearchDataColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryQueries chains the current query on the "queries" edge.
func (_q *ResearchSessionQuery) QueryQueries() *ResearchQueryQuery {
	query := (&ResearchQueryClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(researchsession.Table, researchsession.FieldID, selector),
			sqlgraph.To(researchquery.Table, researchquery.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchsession.QueriesTable, researchsession.QueriesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ResearchSession entity from the query.
// Returns a *NotFoundError when no ResearchSession was found.
func (_q *ResearchSessionQuery) First(ctx context.Context) (*ResearchSession, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{researchsession.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ResearchSessionQuery) FirstX(ctx context.Context) *ResearchSession {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ResearchSession ID from the query.
// Returns a *NotFoundError when no ResearchSession ID was found.
func (_q *ResearchSessionQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{researchsession.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ResearchSessionQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ResearchSession entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ResearchSession entity is found.
// Returns a *NotFoundError when no ResearchSession entities are found.
func (_q *ResearchSessionQuery) Only(ctx context.Context) (*ResearchSession, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{researchsession.Label}
	default:
		return nil, &NotSingularError{researchsession.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ResearchSessionQuery) OnlyX(ctx context.Context) *ResearchSession {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ResearchSession ID in the query.
// Returns a *NotSingularError when more than one ResearchSession ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ResearchSessionQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{researchsession.Label}
	default:
		err = &NotSingularError{researchsession.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ResearchSessionQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ResearchSessions.
func (_q *ResearchSessionQuery) All(ctx context.Context) ([]*ResearchSession, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ResearchSession, *ResearchSessionQuery]()
	return withInterceptors[[]*ResearchSession](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ResearchSessionQuery) AllX(ctx context.Context) []*ResearchSession {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ResearchSession IDs.
func (_q *ResearchSessionQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(researchsession.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ResearchSessionQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ResearchSessionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ResearchSessionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ResearchSessionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ResearchSessionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ResearchSessionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ResearchSessionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ResearchSessionQuery) Clone() *ResearchSessionQuery {
	if _q == nil {
		return nil
	}
	return &ResearchSessionQuery{
		config:              _q.config,
		ctx:                 _q.ctx.Clone(),
		order:               append([]researchsession.OrderOption{}, _q.order...),
		inters:              append([]Interceptor{}, _q.inters...),
		predicates:          append([]predicate.ResearchSession{}, _q.predicates...),
		withGeneratedReport: _q.withGeneratedReport.Clone(),
		withSources:         _q.withSources.Clone(),
		withResearchData:    _q.withResearchData.Clone(),
		withQueries:         _q.withQueries.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithGeneratedReport tells the query-builder to eager-load the nodes that are connected to
// the "generated_report" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ResearchSessionQuery) WithGeneratedReport(opts ...func(*ReportQuery)) *ResearchSessionQuery {
	query := (&ReportClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withGeneratedReport = query
	return _q
}

// WithSources tells the query-builder to eager-load the nodes that are connected to
// the "sources" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ResearchSessionQuery) WithSources(opts ...func(*SourceQuery)) *ResearchSessionQuery {
	query := (&SourceClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSources = query
	return _q
}

// WithResearchData tells the query-builder to eager-load the nodes that are connected to
// the "research_data" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ResearchSessionQuery) WithResearchData(opts ...func(*ResearchDataQuery)) *ResearchSessionQuery {
	query := (&ResearchDataClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withResearchData = query
	return _q
}

// WithQueries tells the query-builder to eager-load the nodes that are connected to
// the "queries" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ResearchSessionQuery) WithQueries(opts ...func(*ResearchQueryQuery)) *ResearchSessionQuery {
	query := (&ResearchQueryClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withQueries = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ResearchSession.Query().
//		GroupBy(researchsession.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ResearchSessionQuery) GroupBy(field string, fields ...string) *ResearchSessionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ResearchSessionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = researchsession.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//	}
//
//	client.ResearchSession.Query().
//		Select(researchsession.FieldUserID).
//		Scan(ctx, &v)
func (_q *ResearchSessionQuery) Select(fields ...string) *ResearchSessionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ResearchSessionSelect{ResearchSessionQuery: _q}
	sbuild.label = researchsession.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ResearchSessionSelect configured with the given aggregations.
func (_q *ResearchSessionQuery) Aggregate(fns ...AggregateFunc) *ResearchSessionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ResearchSessionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !researchsession.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *ResearchSessionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ResearchSession, error) {
	var (
		nodes       = []*ResearchSession{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withGeneratedReport != nil,
			_q.withSources != nil,
			_q.withResearchData != nil,
			_q.withQueries != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ResearchSession).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ResearchSession{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withGeneratedReport; query != nil {
		if err := _q.loadGeneratedReport(ctx, query, nodes, nil,
			func(n *ResearchSession, e *Report) { n.Edges.GeneratedReport = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSources; query != nil {
		if err := _q.loadSources(ctx, query, nodes,
			func(n *ResearchSession) { n.Edges.Sources = []*Source{} },
			func(n *ResearchSession, e *Source) { n.Edges.Sources = append(n.Edges.Sources, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withResearchData; query != nil {
		if err := _q.loadResearchData(ctx, query, nodes,
			func(n *ResearchSession) { n.Edges.ResearchData = []*ResearchData{} },
			func(n *ResearchSession, e *ResearchData) { n.Edges.ResearchData = append(n.Edges.ResearchData, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withQueries; query != nil {
		if err := _q.loadQueries(ctx, query, nodes,
			func(n *ResearchSession) { n.Edges.Queries = []*ResearchQuery{} },
			func(n *ResearchSession, e *ResearchQuery) { n.Edges.Queries = append(n.Edges.Queries, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ResearchSessionQuery) loadGeneratedReport(ctx context.Context, query *ReportQuery, nodes []*ResearchSession, init func(*ResearchSession), assign func(*ResearchSession, *Report)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*ResearchSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(report.FieldSessionID)
	}
	query.Where(predicate.Report(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(researchsession.GeneratedReportColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SessionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "session_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ResearchSessionQuery) loadSources(ctx context.Context, query *SourceQuery, nodes []*ResearchSession, init func(*ResearchSession), assign func(*ResearchSession, *Source)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*ResearchSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(source.FieldSessionID)
	}
	query.Where(predicate.Source(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(researchsession.SourcesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SessionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "session_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ResearchSessionQuery) loadResearchData(ctx context.Context, query *ResearchDataQuery, nodes []*ResearchSession, init func(*ResearchSession), assign func(*ResearchSession, *ResearchData)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*ResearchSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(researchdata.FieldSessionID)
	}
	query.Where(predicate.ResearchData(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(researchsession.ResearchDataColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SessionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "session_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ResearchSessionQuery) loadQueries(ctx context.Context, query *ResearchQueryQuery, nodes []*ResearchSession, init func(*ResearchSession), assign func(*ResearchSession, *ResearchQuery)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*ResearchSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(researchquery.FieldSessionID)
	}
	query.Where(predicate.ResearchQuery(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(researchsession.QueriesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SessionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "session_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ResearchSessionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ResearchSessionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(researchsession.Table, researchsession.Columns, sqlgraph.NewFieldSpec(researchsession.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, researchsession.FieldID)
		for i := range fields {
			if fields[i] != researchsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *ResearchSessionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(researchsession.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = researchsession.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ResearchSessionGroupBy is the group-by builder for ResearchSession entities.
type ResearchSessionGroupBy struct {
	selector
	build *ResearchSessionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ResearchSessionGroupBy) Aggregate(fns ...AggregateFunc) *ResearchSessionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ResearchSessionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ResearchSessionQuery, *ResearchSessionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ResearchSessionGroupBy) sqlScan(ctx context.Context, root *ResearchSessionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ResearchSessionSelect is the builder for selecting fields of ResearchSession entities.
type ResearchSessionSelect struct {
	*ResearchSessionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ResearchSessionSelect) Aggregate(fns ...AggregateFunc) *ResearchSessionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ResearchSessionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ResearchSessionQuery, *ResearchSessionSelect](ctx, _s.ResearchSessionQuery, _s, _s.inters, v)
}

func (_s *ResearchSessionSelect) sqlScan(ctx context.Context, root *ResearchSessionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
