// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/painscope/painscope/ent/aianalysis"
	"github.com/painscope/painscope/ent/apiusage"
	"github.com/painscope/painscope/ent/painpoint"
	"github.com/painscope/painscope/ent/search"
	"github.com/painscope/painscope/ent/searchevent"
	"github.com/painscope/painscope/ent/searchsummary"
)

// SearchCreate is the builder for creating a Search entity.
type SearchCreate struct {
	config
	mutation *SearchMutation
	hooks    []Hook
}

// SetTopic sets the "topic" field.
func (_c *SearchCreate) SetTopic(v string) *SearchCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetTags sets the "tags" field.
func (_c *SearchCreate) SetTags(v []string) *SearchCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetTimeRange sets the "time_range" field.
func (_c *SearchCreate) SetTimeRange(v search.TimeRange) *SearchCreate {
	_c.mutation.SetTimeRange(v)
	return _c
}

// SetNillableTimeRange sets the "time_range" field if the given value is not nil.
func (_c *SearchCreate) SetNillableTimeRange(v *search.TimeRange) *SearchCreate {
	if v != nil {
		_c.SetTimeRange(*v)
	}
	return _c
}

// SetSortBy sets the "sort_by" field.
func (_c *SearchCreate) SetSortBy(v search.SortBy) *SearchCreate {
	_c.mutation.SetSortBy(v)
	return _c
}

// SetNillableSortBy sets the "sort_by" field if the given value is not nil.
func (_c *SearchCreate) SetNillableSortBy(v *search.SortBy) *SearchCreate {
	if v != nil {
		_c.SetSortBy(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SearchCreate) SetStatus(v search.Status) *SearchCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SearchCreate) SetNillableStatus(v *search.Status) *SearchCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetMinUpvotes sets the "min_upvotes" field.
func (_c *SearchCreate) SetMinUpvotes(v int) *SearchCreate {
	_c.mutation.SetMinUpvotes(v)
	return _c
}

// SetNillableMinUpvotes sets the "min_upvotes" field if the given value is not nil.
func (_c *SearchCreate) SetNillableMinUpvotes(v *int) *SearchCreate {
	if v != nil {
		_c.SetMinUpvotes(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *SearchCreate) SetErrorMessage(v string) *SearchCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *SearchCreate) SetNillableErrorMessage(v *string) *SearchCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *SearchCreate) SetRetryCount(v int) *SearchCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *SearchCreate) SetNillableRetryCount(v *int) *SearchCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetLastRetryAt sets the "last_retry_at" field.
func (_c *SearchCreate) SetLastRetryAt(v time.Time) *SearchCreate {
	_c.mutation.SetLastRetryAt(v)
	return _c
}

// SetNillableLastRetryAt sets the "last_retry_at" field if the given value is not nil.
func (_c *SearchCreate) SetNillableLastRetryAt(v *time.Time) *SearchCreate {
	if v != nil {
		_c.SetLastRetryAt(*v)
	}
	return _c
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_c *SearchCreate) SetNextRetryAt(v time.Time) *SearchCreate {
	_c.mutation.SetNextRetryAt(v)
	return _c
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_c *SearchCreate) SetNillableNextRetryAt(v *time.Time) *SearchCreate {
	if v != nil {
		_c.SetNextRetryAt(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *SearchCreate) SetPodID(v string) *SearchCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *SearchCreate) SetNillablePodID(v *string) *SearchCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SearchCreate) SetCreatedAt(v time.Time) *SearchCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SearchCreate) SetNillableCreatedAt(v *time.Time) *SearchCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *SearchCreate) SetCompletedAt(v time.Time) *SearchCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *SearchCreate) SetNillableCompletedAt(v *time.Time) *SearchCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SearchCreate) SetID(v string) *SearchCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSummaryID sets the "summary" edge to the SearchSummary entity by ID.
func (_c *SearchCreate) SetSummaryID(id int) *SearchCreate {
	_c.mutation.SetSummaryID(id)
	return _c
}

// SetNillableSummaryID sets the "summary" edge to the SearchSummary entity by ID if the given value is not nil.
func (_c *SearchCreate) SetNillableSummaryID(id *int) *SearchCreate {
	if id != nil {
		_c = _c.SetSummaryID(*id)
	}
	return _c
}

// SetSummary sets the "summary" edge to the SearchSummary entity.
func (_c *SearchCreate) SetSummary(v *SearchSummary) *SearchCreate {
	return _c.SetSummaryID(v.ID)
}

// AddPainPointIDs adds the "pain_points" edge to the PainPoint entity by IDs.
func (_c *SearchCreate) AddPainPointIDs(ids ...string) *SearchCreate {
	_c.mutation.AddPainPointIDs(ids...)
	return _c
}

// AddPainPoints adds the "pain_points" edges to the PainPoint entity.
func (_c *SearchCreate) AddPainPoints(v ...*PainPoint) *SearchCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPainPointIDs(ids...)
}

// SetAnalysisID sets the "analysis" edge to the AiAnalysis entity by ID.
func (_c *SearchCreate) SetAnalysisID(id int) *SearchCreate {
	_c.mutation.SetAnalysisID(id)
	return _c
}

// SetNillableAnalysisID sets the "analysis" edge to the AiAnalysis entity by ID if the given value is not nil.
func (_c *SearchCreate) SetNillableAnalysisID(id *int) *SearchCreate {
	if id != nil {
		_c = _c.SetAnalysisID(*id)
	}
	return _c
}

// SetAnalysis sets the "analysis" edge to the AiAnalysis entity.
func (_c *SearchCreate) SetAnalysis(v *AiAnalysis) *SearchCreate {
	return _c.SetAnalysisID(v.ID)
}

// AddEventIDs adds the "events" edge to the SearchEvent entity by IDs.
func (_c *SearchCreate) AddEventIDs(ids ...int) *SearchCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the SearchEvent entity.
func (_c *SearchCreate) AddEvents(v ...*SearchEvent) *SearchCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// AddUsageIDs adds the "usages" edge to the ApiUsage entity by IDs.
func (_c *SearchCreate) AddUsageIDs(ids ...int) *SearchCreate {
	_c.mutation.AddUsageIDs(ids...)
	return _c
}

// AddUsages adds the "usages" edges to the ApiUsage entity.
func (_c *SearchCreate) AddUsages(v ...*ApiUsage) *SearchCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddUsageIDs(ids...)
}

// Mutation returns the SearchMutation object of the builder.
func (_c *SearchCreate) Mutation() *SearchMutation {
	return _c.mutation
}

// Save creates the Search in the database.
func (_c *SearchCreate) Save(ctx context.Context) (*Search, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SearchCreate) SaveX(ctx context.Context) *Search {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SearchCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SearchCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SearchCreate) defaults() {
	if _, ok := _c.mutation.Tags(); !ok {
		v := search.DefaultTags
		_c.mutation.SetTags(v)
	}
	if _, ok := _c.mutation.TimeRange(); !ok {
		v := search.DefaultTimeRange
		_c.mutation.SetTimeRange(v)
	}
	if _, ok := _c.mutation.SortBy(); !ok {
		v := search.DefaultSortBy
		_c.mutation.SetSortBy(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := search.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.MinUpvotes(); !ok {
		v := search.DefaultMinUpvotes
		_c.mutation.SetMinUpvotes(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := search.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := search.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SearchCreate) check() error {
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "Search.topic"`)}
	}
	if _, ok := _c.mutation.Tags(); !ok {
		return &ValidationError{Name: "tags", err: errors.New(`ent: missing required field "Search.tags"`)}
	}
	if _, ok := _c.mutation.TimeRange(); !ok {
		return &ValidationError{Name: "time_range", err: errors.New(`ent: missing required field "Search.time_range"`)}
	}
	if v, ok := _c.mutation.TimeRange(); ok {
		if err := search.TimeRangeValidator(v); err != nil {
			return &ValidationError{Name: "time_range", err: fmt.Errorf(`ent: validator failed for field "Search.time_range": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SortBy(); !ok {
		return &ValidationError{Name: "sort_by", err: errors.New(`ent: missing required field "Search.sort_by"`)}
	}
	if v, ok := _c.mutation.SortBy(); ok {
		if err := search.SortByValidator(v); err != nil {
			return &ValidationError{Name: "sort_by", err: fmt.Errorf(`ent: validator failed for field "Search.sort_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Search.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := search.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Search.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MinUpvotes(); !ok {
		return &ValidationError{Name: "min_upvotes", err: errors.New(`ent: missing required field "Search.min_upvotes"`)}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "Search.retry_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Search.created_at"`)}
	}
	return nil
}

func (_c *SearchCreate) sqlSave(ctx context.Context) (*Search, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Search.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SearchCreate) createSpec() (*Search, *sqlgraph.CreateSpec) {
	var (
		_node = &Search{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(search.Table, sqlgraph.NewFieldSpec(search.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(search.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(search.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.TimeRange(); ok {
		_spec.SetField(search.FieldTimeRange, field.TypeEnum, value)
		_node.TimeRange = value
	}
	if value, ok := _c.mutation.SortBy(); ok {
		_spec.SetField(search.FieldSortBy, field.TypeEnum, value)
		_node.SortBy = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(search.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.MinUpvotes(); ok {
		_spec.SetField(search.FieldMinUpvotes, field.TypeInt, value)
		_node.MinUpvotes = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(search.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(search.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.LastRetryAt(); ok {
		_spec.SetField(search.FieldLastRetryAt, field.TypeTime, value)
		_node.LastRetryAt = &value
	}
	if value, ok := _c.mutation.NextRetryAt(); ok {
		_spec.SetField(search.FieldNextRetryAt, field.TypeTime, value)
		_node.NextRetryAt = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(search.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(search.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(search.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.SummaryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   search.SummaryTable,
			Columns: []string{search.SummaryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(searchsummary.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PainPointsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   search.PainPointsTable,
			Columns: []string{search.PainPointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(painpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AnalysisIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   search.AnalysisTable,
			Columns: []string{search.AnalysisColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(aianalysis.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   search.EventsTable,
			Columns: []string{search.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(searchevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.UsagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   search.UsagesTable,
			Columns: []string{search.UsagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(apiusage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SearchCreateBulk is the builder for creating many Search entities in bulk.
type SearchCreateBulk struct {
	config
	err      error
	builders []*SearchCreate
}

// Save creates the Search entities in the database.
func (_c *SearchCreateBulk) Save(ctx context.Context) ([]*Search, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Search, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SearchMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SearchCreateBulk) SaveX(ctx context.Context) []*Search {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SearchCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SearchCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
