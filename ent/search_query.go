// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/painscope/painscope/ent/aianalysis"
	"github.com/painscope/painscope/ent/apiusage"
	"github.com/painscope/painscope/ent/painpoint"
	"github.com/painscope/painscope/ent/predicate"
	"github.com/painscope/painscope/ent/search"
	"github.com/painscope/painscope/ent/searchevent"
	"github.com/painscope/painscope/ent/searchsummary"
)

// SearchQuery is the builder for querying Search entities.
type SearchQuery struct {
	config
	ctx            *QueryContext
	order          []search.OrderOption
	inters         []Interceptor
	predicates     []predicate.Search
	withSummary    *SearchSummaryQuery
	withPainPoints *PainPointQuery
	withAnalysis   *AiAnalysisQuery
	withEvents     *SearchEventQuery
	withUsages     *ApiUsageQuery
	modifiers      []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SearchQuery builder.
func (_q *SearchQuery) Where(ps ...predicate.Search) *SearchQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *SearchQuery) Limit(limit int) *SearchQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *SearchQuery) Offset(offset int) *SearchQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *SearchQuery) Unique(unique bool) *SearchQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *SearchQuery) Order(o ...search.OrderOption) *SearchQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QuerySummary chains the current query on the "summary" edge.
func (_q *SearchQuery) QuerySummary() *SearchSummaryQuery {
	query := (&SearchSummaryClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(search.Table, search.FieldID, selector),
			sqlgraph.To(searchsummary.Table, searchsummary.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, search.SummaryTable, search.SummaryColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryPainPoints chains the current query on the "pain_points" edge.
func (_q *SearchQuery) QueryPainPoints() *PainPointQuery {
	query := (&PainPointClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(search.Table, search.FieldID, selector),
			sqlgraph.To(painpoint.Table, painpoint.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, search.PainPointsTable, search.PainPointsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAnalysis chains the current query on the "analysis" edge.
func (_q *SearchQuery) QueryAnalysis() *AiAnalysisQuery {
	query := (&AiAnalysisClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(search.Table, search.FieldID, selector),
			sqlgraph.To(aianalysis.Table, aianalysis.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, search.AnalysisTable, search.AnalysisColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryEvents chains the current query on the "events" edge.
func (_q *SearchQuery) QueryEvents() *SearchEventQuery {
	query := (&SearchEventClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(search.Table, search.FieldID, selector),
			sqlgraph.To(searchevent.Table, searchevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, search.EventsTable, search.EventsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryUsages chains the current query on the "usages" edge.
func (_q *SearchQuery) QueryUsages() *ApiUsageQuery {
	query := (&ApiUsageClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(search.Table, search.FieldID, selector),
			sqlgraph.To(apiusage.Table, apiusage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, search.UsagesTable, search.UsagesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Search entity from the query.
// Returns a *NotFoundError when no Search was found.
func (_q *SearchQuery) First(ctx context.Context) (*Search, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{search.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *SearchQuery) FirstX(ctx context.Context) *Search {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Search ID from the query.
// Returns a *NotFoundError when no Search ID was found.
func (_q *SearchQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{search.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *SearchQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Search entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Search entity is found.
// Returns a *NotFoundError when no Search entities are found.
func (_q *SearchQuery) Only(ctx context.Context) (*Search, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{search.Label}
	default:
		return nil, &NotSingularError{search.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *SearchQuery) OnlyX(ctx context.Context) *Search {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Search ID in the query.
// Returns a *NotSingularError when more than one Search ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *SearchQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{search.Label}
	default:
		err = &NotSingularError{search.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *SearchQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Searches.
func (_q *SearchQuery) All(ctx context.Context) ([]*Search, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Search, *SearchQuery]()
	return withInterceptors[[]*Search](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *SearchQuery) AllX(ctx context.Context) []*Search {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Search IDs.
func (_q *SearchQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(search.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *SearchQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *SearchQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*SearchQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *SearchQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *SearchQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *SearchQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SearchQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *SearchQuery) Clone() *SearchQuery {
	if _q == nil {
		return nil
	}
	return &SearchQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]search.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.Search{}, _q.predicates...),
		withSummary:    _q.withSummary.Clone(),
		withPainPoints: _q.withPainPoints.Clone(),
		withAnalysis:   _q.withAnalysis.Clone(),
		withEvents:     _q.withEvents.Clone(),
		withUsages:     _q.withUsages.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithSummary tells the query-builder to eager-load the nodes that are connected to
// the "summary" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SearchQuery) WithSummary(opts ...func(*SearchSummaryQuery)) *SearchQuery {
	query := (&SearchSummaryClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSummary = query
	return _q
}

// WithPainPoints tells the query-builder to eager-load the nodes that are connected to
// the "pain_points" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SearchQuery) WithPainPoints(opts ...func(*PainPointQuery)) *SearchQuery {
	query := (&PainPointClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPainPoints = query
	return _q
}

// WithAnalysis tells the query-builder to eager-load the nodes that are connected to
// the "analysis" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SearchQuery) WithAnalysis(opts ...func(*AiAnalysisQuery)) *SearchQuery {
	query := (&AiAnalysisClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAnalysis = query
	return _q
}

// WithEvents tells the query-builder to eager-load the nodes that are connected to
// the "events" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SearchQuery) WithEvents(opts ...func(*SearchEventQuery)) *SearchQuery {
	query := (&SearchEventClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEvents = query
	return _q
}

// WithUsages tells the query-builder to eager-load the nodes that are connected to
// the "usages" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SearchQuery) WithUsages(opts ...func(*ApiUsageQuery)) *SearchQuery {
	query := (&ApiUsageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withUsages = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Topic string `json:"topic,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Search.Query().
//		GroupBy(search.FieldTopic).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *SearchQuery) GroupBy(field string, fields ...string) *SearchGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SearchGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = search.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Topic string `json:"topic,omitempty"`
//	}
//
//	client.Search.Query().
//		Select(search.FieldTopic).
//		Scan(ctx, &v)
func (_q *SearchQuery) Select(fields ...string) *SearchSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &SearchSelect{SearchQuery: _q}
	sbuild.label = search.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SearchSelect configured with the given aggregations.
func (_q *SearchQuery) Aggregate(fns ...AggregateFunc) *SearchSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *SearchQuery) prepareQuery(ctx context.Context) error {
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
		if !search.ValidColumn(f) {
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

func (_q *SearchQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Search, error) {
	var (
		nodes       = []*Search{}
		_spec       = _q.querySpec()
		loadedTypes = [5]bool{
			_q.withSummary != nil,
			_q.withPainPoints != nil,
			_q.withAnalysis != nil,
			_q.withEvents != nil,
			_q.withUsages != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Search).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Search{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
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
	if query := _q.withSummary; query != nil {
		if err := _q.loadSummary(ctx, query, nodes, nil,
			func(n *Search, e *SearchSummary) { n.Edges.Summary = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withPainPoints; query != nil {
		if err := _q.loadPainPoints(ctx, query, nodes,
			func(n *Search) { n.Edges.PainPoints = []*PainPoint{} },
			func(n *Search, e *PainPoint) { n.Edges.PainPoints = append(n.Edges.PainPoints, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAnalysis; query != nil {
		if err := _q.loadAnalysis(ctx, query, nodes, nil,
			func(n *Search, e *AiAnalysis) { n.Edges.Analysis = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withEvents; query != nil {
		if err := _q.loadEvents(ctx, query, nodes,
			func(n *Search) { n.Edges.Events = []*SearchEvent{} },
			func(n *Search, e *SearchEvent) { n.Edges.Events = append(n.Edges.Events, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withUsages; query != nil {
		if err := _q.loadUsages(ctx, query, nodes,
			func(n *Search) { n.Edges.Usages = []*ApiUsage{} },
			func(n *Search, e *ApiUsage) { n.Edges.Usages = append(n.Edges.Usages, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *SearchQuery) loadSummary(ctx context.Context, query *SearchSummaryQuery, nodes []*Search, init func(*Search), assign func(*Search, *SearchSummary)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Search)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(searchsummary.FieldSearchID)
	}
	query.Where(predicate.SearchSummary(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(search.SummaryColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SearchID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "search_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *SearchQuery) loadPainPoints(ctx context.Context, query *PainPointQuery, nodes []*Search, init func(*Search), assign func(*Search, *PainPoint)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Search)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(painpoint.FieldSearchID)
	}
	query.Where(predicate.PainPoint(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(search.PainPointsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SearchID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "search_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *SearchQuery) loadAnalysis(ctx context.Context, query *AiAnalysisQuery, nodes []*Search, init func(*Search), assign func(*Search, *AiAnalysis)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Search)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(aianalysis.FieldSearchID)
	}
	query.Where(predicate.AiAnalysis(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(search.AnalysisColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SearchID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "search_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *SearchQuery) loadEvents(ctx context.Context, query *SearchEventQuery, nodes []*Search, init func(*Search), assign func(*Search, *SearchEvent)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Search)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(searchevent.FieldSearchID)
	}
	query.Where(predicate.SearchEvent(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(search.EventsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SearchID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "search_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *SearchQuery) loadUsages(ctx context.Context, query *ApiUsageQuery, nodes []*Search, init func(*Search), assign func(*Search, *ApiUsage)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Search)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(apiusage.FieldSearchID)
	}
	query.Where(predicate.ApiUsage(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(search.UsagesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SearchID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "search_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *SearchQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *SearchQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(search.Table, search.Columns, sqlgraph.NewFieldSpec(search.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, search.FieldID)
		for i := range fields {
			if fields[i] != search.FieldID {
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

func (_q *SearchQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(search.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = search.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
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

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *SearchQuery) ForUpdate(opts ...sql.LockOption) *SearchQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *SearchQuery) ForShare(opts ...sql.LockOption) *SearchQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// SearchGroupBy is the group-by builder for Search entities.
type SearchGroupBy struct {
	selector
	build *SearchQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *SearchGroupBy) Aggregate(fns ...AggregateFunc) *SearchGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *SearchGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SearchQuery, *SearchGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *SearchGroupBy) sqlScan(ctx context.Context, root *SearchQuery, v any) error {
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

// SearchSelect is the builder for selecting fields of Search entities.
type SearchSelect struct {
	*SearchQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *SearchSelect) Aggregate(fns ...AggregateFunc) *SearchSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *SearchSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SearchQuery, *SearchSelect](ctx, _s.SearchQuery, _s, _s.inters, v)
}

func (_s *SearchSelect) sqlScan(ctx context.Context, root *SearchQuery, v any) error {
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
