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
	"github.com/cryoflow/cryoflow/ent/activityentry"
	"github.com/cryoflow/cryoflow/ent/pipelinejob"
	"github.com/cryoflow/cryoflow/ent/pipelinesession"
	"github.com/cryoflow/cryoflow/ent/predicate"
	"github.com/cryoflow/cryoflow/ent/project"
)

// PipelineSessionQuery is the builder for querying PipelineSession entities.
type PipelineSessionQuery struct {
	config
	ctx                 *QueryContext
	order               []pipelinesession.OrderOption
	inters              []Interceptor
	predicates          []predicate.PipelineSession
	withProject         *ProjectQuery
	withPipelineJobs    *PipelineJobQuery
	withActivityEntries *ActivityEntryQuery
	modifiers           []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PipelineSessionQuery builder.
func (_q *PipelineSessionQuery) Where(ps ...predicate.PipelineSession) *PipelineSessionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *PipelineSessionQuery) Limit(limit int) *PipelineSessionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *PipelineSessionQuery) Offset(offset int) *PipelineSessionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *PipelineSessionQuery) Unique(unique bool) *PipelineSessionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *PipelineSessionQuery) Order(o ...pipelinesession.OrderOption) *PipelineSessionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryProject chains the current query on the "project" edge.
func (_q *PipelineSessionQuery) QueryProject() *ProjectQuery {
	query := (&ProjectClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(pipelinesession.Table, pipelinesession.FieldID, selector),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, pipelinesession.ProjectTable, pipelinesession.ProjectColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryPipelineJobs chains the current query on the "pipeline_jobs" edge.
func (_q *PipelineSessionQuery) QueryPipelineJobs() *PipelineJobQuery {
	query := (&PipelineJobClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(pipelinesession.Table, pipelinesession.FieldID, selector),
			sqlgraph.To(pipelinejob.Table, pipelinejob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, pipelinesession.PipelineJobsTable, pipelinesession.PipelineJobsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryActivityEntries chains the current query on the "activity_entries" edge.
func (_q *PipelineSessionQuery) QueryActivityEntries() *ActivityEntryQuery {
	query := (&ActivityEntryClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(pipelinesession.Table, pipelinesession.FieldID, selector),
			sqlgraph.To(activityentry.Table, activityentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, pipelinesession.ActivityEntriesTable, pipelinesession.ActivityEntriesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first PipelineSession entity from the query.
// Returns a *NotFoundError when no PipelineSession was found.
func (_q *PipelineSessionQuery) First(ctx context.Context) (*PipelineSession, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{pipelinesession.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *PipelineSessionQuery) FirstX(ctx context.Context) *PipelineSession {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first PipelineSession ID from the query.
// Returns a *NotFoundError when no PipelineSession ID was found.
func (_q *PipelineSessionQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{pipelinesession.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *PipelineSessionQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single PipelineSession entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one PipelineSession entity is found.
// Returns a *NotFoundError when no PipelineSession entities are found.
func (_q *PipelineSessionQuery) Only(ctx context.Context) (*PipelineSession, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{pipelinesession.Label}
	default:
		return nil, &NotSingularError{pipelinesession.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *PipelineSessionQuery) OnlyX(ctx context.Context) *PipelineSession {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only PipelineSession ID in the query.
// Returns a *NotSingularError when more than one PipelineSession ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *PipelineSessionQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{pipelinesession.Label}
	default:
		err = &NotSingularError{pipelinesession.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *PipelineSessionQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of PipelineSessions.
func (_q *PipelineSessionQuery) All(ctx context.Context) ([]*PipelineSession, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*PipelineSession, *PipelineSessionQuery]()
	return withInterceptors[[]*PipelineSession](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *PipelineSessionQuery) AllX(ctx context.Context) []*PipelineSession {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of PipelineSession IDs.
func (_q *PipelineSessionQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(pipelinesession.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *PipelineSessionQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *PipelineSessionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*PipelineSessionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *PipelineSessionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *PipelineSessionQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *PipelineSessionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PipelineSessionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *PipelineSessionQuery) Clone() *PipelineSessionQuery {
	if _q == nil {
		return nil
	}
	return &PipelineSessionQuery{
		config:              _q.config,
		ctx:                 _q.ctx.Clone(),
		order:               append([]pipelinesession.OrderOption{}, _q.order...),
		inters:              append([]Interceptor{}, _q.inters...),
		predicates:          append([]predicate.PipelineSession{}, _q.predicates...),
		withProject:         _q.withProject.Clone(),
		withPipelineJobs:    _q.withPipelineJobs.Clone(),
		withActivityEntries: _q.withActivityEntries.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithProject tells the query-builder to eager-load the nodes that are connected to
// the "project" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PipelineSessionQuery) WithProject(opts ...func(*ProjectQuery)) *PipelineSessionQuery {
	query := (&ProjectClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withProject = query
	return _q
}

// WithPipelineJobs tells the query-builder to eager-load the nodes that are connected to
// the "pipeline_jobs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PipelineSessionQuery) WithPipelineJobs(opts ...func(*PipelineJobQuery)) *PipelineSessionQuery {
	query := (&PipelineJobClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPipelineJobs = query
	return _q
}

// WithActivityEntries tells the query-builder to eager-load the nodes that are connected to
// the "activity_entries" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PipelineSessionQuery) WithActivityEntries(opts ...func(*ActivityEntryQuery)) *PipelineSessionQuery {
	query := (&ActivityEntryClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withActivityEntries = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ProjectID string `json:"project_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.PipelineSession.Query().
//		GroupBy(pipelinesession.FieldProjectID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *PipelineSessionQuery) GroupBy(field string, fields ...string) *PipelineSessionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PipelineSessionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = pipelinesession.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ProjectID string `json:"project_id,omitempty"`
//	}
//
//	client.PipelineSession.Query().
//		Select(pipelinesession.FieldProjectID).
//		Scan(ctx, &v)
func (_q *PipelineSessionQuery) Select(fields ...string) *PipelineSessionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &PipelineSessionSelect{PipelineSessionQuery: _q}
	sbuild.label = pipelinesession.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PipelineSessionSelect configured with the given aggregations.
func (_q *PipelineSessionQuery) Aggregate(fns ...AggregateFunc) *PipelineSessionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *PipelineSessionQuery) prepareQuery(ctx context.Context) error {
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
		if !pipelinesession.ValidColumn(f) {
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

func (_q *PipelineSessionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*PipelineSession, error) {
	var (
		nodes       = []*PipelineSession{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withProject != nil,
			_q.withPipelineJobs != nil,
			_q.withActivityEntries != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*PipelineSession).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &PipelineSession{config: _q.config}
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
	if query := _q.withProject; query != nil {
		if err := _q.loadProject(ctx, query, nodes, nil,
			func(n *PipelineSession, e *Project) { n.Edges.Project = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withPipelineJobs; query != nil {
		if err := _q.loadPipelineJobs(ctx, query, nodes,
			func(n *PipelineSession) { n.Edges.PipelineJobs = []*PipelineJob{} },
			func(n *PipelineSession, e *PipelineJob) { n.Edges.PipelineJobs = append(n.Edges.PipelineJobs, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withActivityEntries; query != nil {
		if err := _q.loadActivityEntries(ctx, query, nodes,
			func(n *PipelineSession) { n.Edges.ActivityEntries = []*ActivityEntry{} },
			func(n *PipelineSession, e *ActivityEntry) {
				n.Edges.ActivityEntries = append(n.Edges.ActivityEntries, e)
			}); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *PipelineSessionQuery) loadProject(ctx context.Context, query *ProjectQuery, nodes []*PipelineSession, init func(*PipelineSession), assign func(*PipelineSession, *Project)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*PipelineSession)
	for i := range nodes {
		fk := nodes[i].ProjectID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(project.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "project_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *PipelineSessionQuery) loadPipelineJobs(ctx context.Context, query *PipelineJobQuery, nodes []*PipelineSession, init func(*PipelineSession), assign func(*PipelineSession, *PipelineJob)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*PipelineSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(pipelinejob.FieldSessionID)
	}
	query.Where(predicate.PipelineJob(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(pipelinesession.PipelineJobsColumn), fks...))
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
func (_q *PipelineSessionQuery) loadActivityEntries(ctx context.Context, query *ActivityEntryQuery, nodes []*PipelineSession, init func(*PipelineSession), assign func(*PipelineSession, *ActivityEntry)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*PipelineSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(activityentry.FieldSessionID)
	}
	query.Where(predicate.ActivityEntry(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(pipelinesession.ActivityEntriesColumn), fks...))
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

func (_q *PipelineSessionQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *PipelineSessionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(pipelinesession.Table, pipelinesession.Columns, sqlgraph.NewFieldSpec(pipelinesession.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pipelinesession.FieldID)
		for i := range fields {
			if fields[i] != pipelinesession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withProject != nil {
			_spec.Node.AddColumnOnce(pipelinesession.FieldProjectID)
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

func (_q *PipelineSessionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(pipelinesession.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = pipelinesession.Columns
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
func (_q *PipelineSessionQuery) ForUpdate(opts ...sql.LockOption) *PipelineSessionQuery {
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
func (_q *PipelineSessionQuery) ForShare(opts ...sql.LockOption) *PipelineSessionQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// PipelineSessionGroupBy is the group-by builder for PipelineSession entities.
type PipelineSessionGroupBy struct {
	selector
	build *PipelineSessionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *PipelineSessionGroupBy) Aggregate(fns ...AggregateFunc) *PipelineSessionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *PipelineSessionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PipelineSessionQuery, *PipelineSessionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *PipelineSessionGroupBy) sqlScan(ctx context.Context, root *PipelineSessionQuery, v any) error {
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

// PipelineSessionSelect is the builder for selecting fields of PipelineSession entities.
type PipelineSessionSelect struct {
	*PipelineSessionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *PipelineSessionSelect) Aggregate(fns ...AggregateFunc) *PipelineSessionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *PipelineSessionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PipelineSessionQuery, *PipelineSessionSelect](ctx, _s.PipelineSessionQuery, _s, _s.inters, v)
}

func (_s *PipelineSessionSelect) sqlScan(ctx context.Context, root *PipelineSessionQuery, v any) error {
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
