// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/painscope/painscope/ent/aianalysis"
	"github.com/painscope/painscope/ent/apiusage"
	"github.com/painscope/painscope/ent/painpoint"
	"github.com/painscope/painscope/ent/predicate"
	"github.com/painscope/painscope/ent/search"
	"github.com/painscope/painscope/ent/searchevent"
	"github.com/painscope/painscope/ent/searchsummary"
)

// SearchUpdate is the builder for updating Search entities.
type SearchUpdate struct {
	config
	hooks    []Hook
	mutation *SearchMutation
}

// Where appends a list predicates to the SearchUpdate builder.
func (_u *SearchUpdate) Where(ps ...predicate.Search) *SearchUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *SearchUpdate) SetTopic(v string) *SearchUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *SearchUpdate) SetNillableTopic(v *string) *SearchUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *SearchUpdate) SetTags(v []string) *SearchUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *SearchUpdate) AppendTags(v []string) *SearchUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// SetTimeRange sets the "time_range" field.
func (_u *SearchUpdate) SetTimeRange(v search.TimeRange) *SearchUpdate {
	_u.mutation.SetTimeRange(v)
	return _u
}

// SetNillableTimeRange sets the "time_range" field if the given value is not nil.
func (_u *SearchUpdate) SetNillableTimeRange(v *search.TimeRange) *SearchUpdate {
	if v != nil {
		_u.SetTimeRange(*v)
	}
	return _u
}

// SetSortBy sets the "sort_by" field.
func (_u *SearchUpdate) SetSortBy(v search.SortBy) *SearchUpdate {
	_u.mutation.SetSortBy(v)
	return _u
}

// SetNillableSortBy sets the "sort_by" field if the given value is not nil.
func (_u *SearchUpdate) SetNillableSortBy(v *search.SortBy) *SearchUpdate {
	if v != nil {
		_u.SetSortBy(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SearchUpdate) SetStatus(v search.Status) *SearchUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SearchUpdate) SetNillableStatus(v *search.Status) *SearchUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMinUpvotes sets the "min_upvotes" field.
func (_u *SearchUpdate) SetMinUpvotes(v int) *SearchUpdate {
	_u.mutation.ResetMinUpvotes()
	_u.mutation.SetMinUpvotes(v)
	return _u
}

// SetNillableMinUpvotes sets the "min_upvotes" field if the given value is not nil.
func (_u *SearchUpdate) SetNillableMinUpvotes(v *int) *SearchUpdate {
	if v != nil {
		_u.SetMinUpvotes(*v)
	}
	return _u
}

// AddMinUpvotes adds value to the "min_upvotes" field.
func (_u *SearchUpdate) AddMinUpvotes(v int) *SearchUpdate {
	_u.mutation.AddMinUpvotes(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SearchUpdate) SetErrorMessage(v string) *SearchUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SearchUpdate) SetNillableErrorMessage(v *string) *SearchUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SearchUpdate) ClearErrorMessage() *SearchUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *SearchUpdate) SetRetryCount(v int) *SearchUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *SearchUpdate) SetNillableRetryCount(v *int) *SearchUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *SearchUpdate) AddRetryCount(v int) *SearchUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetLastRetryAt sets the "last_retry_at" field.
func (_u *SearchUpdate) SetLastRetryAt(v time.Time) *SearchUpdate {
	_u.mutation.SetLastRetryAt(v)
	return _u
}

// SetNillableLastRetryAt sets the "last_retry_at" field if the given value is not nil.
func (_u *SearchUpdate) SetNillableLastRetryAt(v *time.Time) *SearchUpdate {
	if v != nil {
		_u.SetLastRetryAt(*v)
	}
	return _u
}

// ClearLastRetryAt clears the value of the "last_retry_at" field.
func (_u *SearchUpdate) ClearLastRetryAt() *SearchUpdate {
	_u.mutation.ClearLastRetryAt()
	return _u
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_u *SearchUpdate) SetNextRetryAt(v time.Time) *SearchUpdate {
	_u.mutation.SetNextRetryAt(v)
	return _u
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_u *SearchUpdate) SetNillableNextRetryAt(v *time.Time) *SearchUpdate {
	if v != nil {
		_u.SetNextRetryAt(*v)
	}
	return _u
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (_u *SearchUpdate) ClearNextRetryAt() *SearchUpdate {
	_u.mutation.ClearNextRetryAt()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *SearchUpdate) SetPodID(v string) *SearchUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *SearchUpdate) SetNillablePodID(v *string) *SearchUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *SearchUpdate) ClearPodID() *SearchUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SearchUpdate) SetCreatedAt(v time.Time) *SearchUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SearchUpdate) SetNillableCreatedAt(v *time.Time) *SearchUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SearchUpdate) SetCompletedAt(v time.Time) *SearchUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SearchUpdate) SetNillableCompletedAt(v *time.Time) *SearchUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SearchUpdate) ClearCompletedAt() *SearchUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetSummaryID sets the "summary" edge to the SearchSummary entity by ID.
func (_u *SearchUpdate) SetSummaryID(id int) *SearchUpdate {
	_u.mutation.SetSummaryID(id)
	return _u
}

// SetNillableSummaryID sets the "summary" edge to the SearchSummary entity by ID if the given value is not nil.
func (_u *SearchUpdate) SetNillableSummaryID(id *int) *SearchUpdate {
	if id != nil {
		_u = _u.SetSummaryID(*id)
	}
	return _u
}

// SetSummary sets the "summary" edge to the SearchSummary entity.
func (_u *SearchUpdate) SetSummary(v *SearchSummary) *SearchUpdate {
	return _u.SetSummaryID(v.ID)
}

// AddPainPointIDs adds the "pain_points" edge to the PainPoint entity by IDs.
func (_u *SearchUpdate) AddPainPointIDs(ids ...string) *SearchUpdate {
	_u.mutation.AddPainPointIDs(ids...)
	return _u
}

// AddPainPoints adds the "pain_points" edges to the PainPoint entity.
func (_u *SearchUpdate) AddPainPoints(v ...*PainPoint) *SearchUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPainPointIDs(ids...)
}

// SetAnalysisID sets the "analysis" edge to the AiAnalysis entity by ID.
func (_u *SearchUpdate) SetAnalysisID(id int) *SearchUpdate {
	_u.mutation.SetAnalysisID(id)
	return _u
}

// SetNillableAnalysisID sets the "analysis" edge to the AiAnalysis entity by ID if the given value is not nil.
func (_u *SearchUpdate) SetNillableAnalysisID(id *int) *SearchUpdate {
	if id != nil {
		_u = _u.SetAnalysisID(*id)
	}
	return _u
}

// SetAnalysis sets the "analysis" edge to the AiAnalysis entity.
func (_u *SearchUpdate) SetAnalysis(v *AiAnalysis) *SearchUpdate {
	return _u.SetAnalysisID(v.ID)
}

// AddEventIDs adds the "events" edge to the SearchEvent entity by IDs.
func (_u *SearchUpdate) AddEventIDs(ids ...int) *SearchUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the SearchEvent entity.
func (_u *SearchUpdate) AddEvents(v ...*SearchEvent) *SearchUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddUsageIDs adds the "usages" edge to the ApiUsage entity by IDs.
func (_u *SearchUpdate) AddUsageIDs(ids ...int) *SearchUpdate {
	_u.mutation.AddUsageIDs(ids...)
	return _u
}

// AddUsages adds the "usages" edges to the ApiUsage entity.
func (_u *SearchUpdate) AddUsages(v ...*ApiUsage) *SearchUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUsageIDs(ids...)
}

// Mutation returns the SearchMutation object of the builder.
func (_u *SearchUpdate) Mutation() *SearchMutation {
	return _u.mutation
}

// ClearSummary clears the "summary" edge to the SearchSummary entity.
func (_u *SearchUpdate) ClearSummary() *SearchUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// ClearPainPoints clears all "pain_points" edges to the PainPoint entity.
func (_u *SearchUpdate) ClearPainPoints() *SearchUpdate {
	_u.mutation.ClearPainPoints()
	return _u
}

// RemovePainPointIDs removes the "pain_points" edge to PainPoint entities by IDs.
func (_u *SearchUpdate) RemovePainPointIDs(ids ...string) *SearchUpdate {
	_u.mutation.RemovePainPointIDs(ids...)
	return _u
}

// RemovePainPoints removes "pain_points" edges to PainPoint entities.
func (_u *SearchUpdate) RemovePainPoints(v ...*PainPoint) *SearchUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePainPointIDs(ids...)
}

// ClearAnalysis clears the "analysis" edge to the AiAnalysis entity.
func (_u *SearchUpdate) ClearAnalysis() *SearchUpdate {
	_u.mutation.ClearAnalysis()
	return _u
}

// ClearEvents clears all "events" edges to the SearchEvent entity.
func (_u *SearchUpdate) ClearEvents() *SearchUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to SearchEvent entities by IDs.
func (_u *SearchUpdate) RemoveEventIDs(ids ...int) *SearchUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to SearchEvent entities.
func (_u *SearchUpdate) RemoveEvents(v ...*SearchEvent) *SearchUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearUsages clears all "usages" edges to the ApiUsage entity.
func (_u *SearchUpdate) ClearUsages() *SearchUpdate {
	_u.mutation.ClearUsages()
	return _u
}

// RemoveUsageIDs removes the "usages" edge to ApiUsage entities by IDs.
func (_u *SearchUpdate) RemoveUsageIDs(ids ...int) *SearchUpdate {
	_u.mutation.RemoveUsageIDs(ids...)
	return _u
}

// RemoveUsages removes "usages" edges to ApiUsage entities.
func (_u *SearchUpdate) RemoveUsages(v ...*ApiUsage) *SearchUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUsageIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SearchUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SearchUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SearchUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SearchUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SearchUpdate) check() error {
	if v, ok := _u.mutation.TimeRange(); ok {
		if err := search.TimeRangeValidator(v); err != nil {
			return &ValidationError{Name: "time_range", err: fmt.Errorf(`ent: validator failed for field "Search.time_range": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SortBy(); ok {
		if err := search.SortByValidator(v); err != nil {
			return &ValidationError{Name: "sort_by", err: fmt.Errorf(`ent: validator failed for field "Search.sort_by": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := search.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Search.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SearchUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(search.Table, search.Columns, sqlgraph.NewFieldSpec(search.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(search.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(search.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, search.FieldTags, value)
		})
	}
	if value, ok := _u.mutation.TimeRange(); ok {
		_spec.SetField(search.FieldTimeRange, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SortBy(); ok {
		_spec.SetField(search.FieldSortBy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(search.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MinUpvotes(); ok {
		_spec.SetField(search.FieldMinUpvotes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinUpvotes(); ok {
		_spec.AddField(search.FieldMinUpvotes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(search.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(search.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(search.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(search.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastRetryAt(); ok {
		_spec.SetField(search.FieldLastRetryAt, field.TypeTime, value)
	}
	if _u.mutation.LastRetryAtCleared() {
		_spec.ClearField(search.FieldLastRetryAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextRetryAt(); ok {
		_spec.SetField(search.FieldNextRetryAt, field.TypeTime, value)
	}
	if _u.mutation.NextRetryAtCleared() {
		_spec.ClearField(search.FieldNextRetryAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(search.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(search.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(search.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(search.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(search.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.SummaryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SummaryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PainPointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPainPointsIDs(); len(nodes) > 0 && !_u.mutation.PainPointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PainPointsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnalysisCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysisIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UsagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUsagesIDs(); len(nodes) > 0 && !_u.mutation.UsagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UsagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{search.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SearchUpdateOne is the builder for updating a single Search entity.
type SearchUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SearchMutation
}

// SetTopic sets the "topic" field.
func (_u *SearchUpdateOne) SetTopic(v string) *SearchUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *SearchUpdateOne) SetNillableTopic(v *string) *SearchUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *SearchUpdateOne) SetTags(v []string) *SearchUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *SearchUpdateOne) AppendTags(v []string) *SearchUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// SetTimeRange sets the "time_range" field.
func (_u *SearchUpdateOne) SetTimeRange(v search.TimeRange) *SearchUpdateOne {
	_u.mutation.SetTimeRange(v)
	return _u
}

// SetNillableTimeRange sets the "time_range" field if the given value is not nil.
func (_u *SearchUpdateOne) SetNillableTimeRange(v *search.TimeRange) *SearchUpdateOne {
	if v != nil {
		_u.SetTimeRange(*v)
	}
	return _u
}

// SetSortBy sets the "sort_by" field.
func (_u *SearchUpdateOne) SetSortBy(v search.SortBy) *SearchUpdateOne {
	_u.mutation.SetSortBy(v)
	return _u
}

// SetNillableSortBy sets the "sort_by" field if the given value is not nil.
func (_u *SearchUpdateOne) SetNillableSortBy(v *search.SortBy) *SearchUpdateOne {
	if v != nil {
		_u.SetSortBy(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SearchUpdateOne) SetStatus(v search.Status) *SearchUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SearchUpdateOne) SetNillableStatus(v *search.Status) *SearchUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMinUpvotes sets the "min_upvotes" field.
func (_u *SearchUpdateOne) SetMinUpvotes(v int) *SearchUpdateOne {
	_u.mutation.ResetMinUpvotes()
	_u.mutation.SetMinUpvotes(v)
	return _u
}

// SetNillableMinUpvotes sets the "min_upvotes" field if the given value is not nil.
func (_u *SearchUpdateOne) SetNillableMinUpvotes(v *int) *SearchUpdateOne {
	if v != nil {
		_u.SetMinUpvotes(*v)
	}
	return _u
}

// AddMinUpvotes adds value to the "min_upvotes" field.
func (_u *SearchUpdateOne) AddMinUpvotes(v int) *SearchUpdateOne {
	_u.mutation.AddMinUpvotes(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SearchUpdateOne) SetErrorMessage(v string) *SearchUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SearchUpdateOne) SetNillableErrorMessage(v *string) *SearchUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SearchUpdateOne) ClearErrorMessage() *SearchUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *SearchUpdateOne) SetRetryCount(v int) *SearchUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *SearchUpdateOne) SetNillableRetryCount(v *int) *SearchUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *SearchUpdateOne) AddRetryCount(v int) *SearchUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetLastRetryAt sets the "last_retry_at" field.
func (_u *SearchUpdateOne) SetLastRetryAt(v time.Time) *SearchUpdateOne {
	_u.mutation.SetLastRetryAt(v)
	return _u
}

// SetNillableLastRetryAt sets the "last_retry_at" field if the given value is not nil.
func (_u *SearchUpdateOne) SetNillableLastRetryAt(v *time.Time) *SearchUpdateOne {
	if v != nil {
		_u.SetLastRetryAt(*v)
	}
	return _u
}

// ClearLastRetryAt clears the value of the "last_retry_at" field.
func (_u *SearchUpdateOne) ClearLastRetryAt() *SearchUpdateOne {
	_u.mutation.ClearLastRetryAt()
	return _u
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_u *SearchUpdateOne) SetNextRetryAt(v time.Time) *SearchUpdateOne {
	_u.mutation.SetNextRetryAt(v)
	return _u
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_u *SearchUpdateOne) SetNillableNextRetryAt(v *time.Time) *SearchUpdateOne {
	if v != nil {
		_u.SetNextRetryAt(*v)
	}
	return _u
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (_u *SearchUpdateOne) ClearNextRetryAt() *SearchUpdateOne {
	_u.mutation.ClearNextRetryAt()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *SearchUpdateOne) SetPodID(v string) *SearchUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *SearchUpdateOne) SetNillablePodID(v *string) *SearchUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *SearchUpdateOne) ClearPodID() *SearchUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SearchUpdateOne) SetCreatedAt(v time.Time) *SearchUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SearchUpdateOne) SetNillableCreatedAt(v *time.Time) *SearchUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SearchUpdateOne) SetCompletedAt(v time.Time) *SearchUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SearchUpdateOne) SetNillableCompletedAt(v *time.Time) *SearchUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SearchUpdateOne) ClearCompletedAt() *SearchUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetSummaryID sets the "summary" edge to the SearchSummary entity by ID.
func (_u *SearchUpdateOne) SetSummaryID(id int) *SearchUpdateOne {
	_u.mutation.SetSummaryID(id)
	return _u
}

// SetNillableSummaryID sets the "summary" edge to the SearchSummary entity by ID if the given value is not nil.
func (_u *SearchUpdateOne) SetNillableSummaryID(id *int) *SearchUpdateOne {
	if id != nil {
		_u = _u.SetSummaryID(*id)
	}
	return _u
}

// SetSummary sets the "summary" edge to the SearchSummary entity.
func (_u *SearchUpdateOne) SetSummary(v *SearchSummary) *SearchUpdateOne {
	return _u.SetSummaryID(v.ID)
}

// AddPainPointIDs adds the "pain_points" edge to the PainPoint entity by IDs.
func (_u *SearchUpdateOne) AddPainPointIDs(ids ...string) *SearchUpdateOne {
	_u.mutation.AddPainPointIDs(ids...)
	return _u
}

// AddPainPoints adds the "pain_points" edges to the PainPoint entity.
func (_u *SearchUpdateOne) AddPainPoints(v ...*PainPoint) *SearchUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPainPointIDs(ids...)
}

// SetAnalysisID sets the "analysis" edge to the AiAnalysis entity by ID.
func (_u *SearchUpdateOne) SetAnalysisID(id int) *SearchUpdateOne {
	_u.mutation.SetAnalysisID(id)
	return _u
}

// SetNillableAnalysisID sets the "analysis" edge to the AiAnalysis entity by ID if the given value is not nil.
func (_u *SearchUpdateOne) SetNillableAnalysisID(id *int) *SearchUpdateOne {
	if id != nil {
		_u = _u.SetAnalysisID(*id)
	}
	return _u
}

// SetAnalysis sets the "analysis" edge to the AiAnalysis entity.
func (_u *SearchUpdateOne) SetAnalysis(v *AiAnalysis) *SearchUpdateOne {
	return _u.SetAnalysisID(v.ID)
}

// AddEventIDs adds the "events" edge to the SearchEvent entity by IDs.
func (_u *SearchUpdateOne) AddEventIDs(ids ...int) *SearchUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the SearchEvent entity.
func (_u *SearchUpdateOne) AddEvents(v ...*SearchEvent) *SearchUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddUsageIDs adds the "usages" edge to the ApiUsage entity by IDs.
func (_u *SearchUpdateOne) AddUsageIDs(ids ...int) *SearchUpdateOne {
	_u.mutation.AddUsageIDs(ids...)
	return _u
}

// AddUsages adds the "usages" edges to the ApiUsage entity.
func (_u *SearchUpdateOne) AddUsages(v ...*ApiUsage) *SearchUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUsageIDs(ids...)
}

// Mutation returns the SearchMutation object of the builder.
func (_u *SearchUpdateOne) Mutation() *SearchMutation {
	return _u.mutation
}

// ClearSummary clears the "summary" edge to the SearchSummary entity.
func (_u *SearchUpdateOne) ClearSummary() *SearchUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// ClearPainPoints clears all "pain_points" edges to the PainPoint entity.
func (_u *SearchUpdateOne) ClearPainPoints() *SearchUpdateOne {
	_u.mutation.ClearPainPoints()
	return _u
}

// RemovePainPointIDs removes the "pain_points" edge to PainPoint entities by IDs.
func (_u *SearchUpdateOne) RemovePainPointIDs(ids ...string) *SearchUpdateOne {
	_u.mutation.RemovePainPointIDs(ids...)
	return _u
}

// RemovePainPoints removes "pain_points" edges to PainPoint entities.
func (_u *SearchUpdateOne) RemovePainPoints(v ...*PainPoint) *SearchUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePainPointIDs(ids...)
}

// ClearAnalysis clears the "analysis" edge to the AiAnalysis entity.
func (_u *SearchUpdateOne) ClearAnalysis() *SearchUpdateOne {
	_u.mutation.ClearAnalysis()
	return _u
}

// ClearEvents clears all "events" edges to the SearchEvent entity.
func (_u *SearchUpdateOne) ClearEvents() *SearchUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to SearchEvent entities by IDs.
func (_u *SearchUpdateOne) RemoveEventIDs(ids ...int) *SearchUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to SearchEvent entities.
func (_u *SearchUpdateOne) RemoveEvents(v ...*SearchEvent) *SearchUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearUsages clears all "usages" edges to the ApiUsage entity.
func (_u *SearchUpdateOne) ClearUsages() *SearchUpdateOne {
	_u.mutation.ClearUsages()
	return _u
}

// RemoveUsageIDs removes the "usages" edge to ApiUsage entities by IDs.
func (_u *SearchUpdateOne) RemoveUsageIDs(ids ...int) *SearchUpdateOne {
	_u.mutation.RemoveUsageIDs(ids...)
	return _u
}

// RemoveUsages removes "usages" edges to ApiUsage entities.
func (_u *SearchUpdateOne) RemoveUsages(v ...*ApiUsage) *SearchUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUsageIDs(ids...)
}

// Where appends a list predicates to the SearchUpdate builder.
func (_u *SearchUpdateOne) Where(ps ...predicate.Search) *SearchUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SearchUpdateOne) Select(field string, fields ...string) *SearchUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Search entity.
func (_u *SearchUpdateOne) Save(ctx context.Context) (*Search, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SearchUpdateOne) SaveX(ctx context.Context) *Search {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SearchUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SearchUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SearchUpdateOne) check() error {
	if v, ok := _u.mutation.TimeRange(); ok {
		if err := search.TimeRangeValidator(v); err != nil {
			return &ValidationError{Name: "time_range", err: fmt.Errorf(`ent: validator failed for field "Search.time_range": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SortBy(); ok {
		if err := search.SortByValidator(v); err != nil {
			return &ValidationError{Name: "sort_by", err: fmt.Errorf(`ent: validator failed for field "Search.sort_by": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := search.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Search.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SearchUpdateOne) sqlSave(ctx context.Context) (_node *Search, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(search.Table, search.Columns, sqlgraph.NewFieldSpec(search.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Search.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, search.FieldID)
		for _, f := range fields {
			if !search.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != search.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(search.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(search.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, search.FieldTags, value)
		})
	}
	if value, ok := _u.mutation.TimeRange(); ok {
		_spec.SetField(search.FieldTimeRange, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SortBy(); ok {
		_spec.SetField(search.FieldSortBy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(search.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MinUpvotes(); ok {
		_spec.SetField(search.FieldMinUpvotes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinUpvotes(); ok {
		_spec.AddField(search.FieldMinUpvotes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(search.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(search.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(search.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(search.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastRetryAt(); ok {
		_spec.SetField(search.FieldLastRetryAt, field.TypeTime, value)
	}
	if _u.mutation.LastRetryAtCleared() {
		_spec.ClearField(search.FieldLastRetryAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextRetryAt(); ok {
		_spec.SetField(search.FieldNextRetryAt, field.TypeTime, value)
	}
	if _u.mutation.NextRetryAtCleared() {
		_spec.ClearField(search.FieldNextRetryAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(search.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(search.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(search.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(search.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(search.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.SummaryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SummaryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PainPointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPainPointsIDs(); len(nodes) > 0 && !_u.mutation.PainPointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PainPointsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnalysisCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysisIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UsagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUsagesIDs(); len(nodes) > 0 && !_u.mutation.UsagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UsagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Search{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{search.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
