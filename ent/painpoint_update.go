// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/painscope/painscope/ent/painpoint"
	"github.com/painscope/painscope/ent/painpointquote"
	"github.com/painscope/painscope/ent/predicate"
)

// PainPointUpdate is the builder for updating PainPoint entities.
type PainPointUpdate struct {
	config
	hooks    []Hook
	mutation *PainPointMutation
}

// Where appends a list predicates to the PainPointUpdate builder.
func (_u *PainPointUpdate) Where(ps ...predicate.PainPoint) *PainPointUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *PainPointUpdate) SetTitle(v string) *PainPointUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PainPointUpdate) SetNillableTitle(v *string) *PainPointUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSourceTag sets the "source_tag" field.
func (_u *PainPointUpdate) SetSourceTag(v string) *PainPointUpdate {
	_u.mutation.SetSourceTag(v)
	return _u
}

// SetNillableSourceTag sets the "source_tag" field if the given value is not nil.
func (_u *PainPointUpdate) SetNillableSourceTag(v *string) *PainPointUpdate {
	if v != nil {
		_u.SetSourceTag(*v)
	}
	return _u
}

// SetMentionsCount sets the "mentions_count" field.
func (_u *PainPointUpdate) SetMentionsCount(v int) *PainPointUpdate {
	_u.mutation.ResetMentionsCount()
	_u.mutation.SetMentionsCount(v)
	return _u
}

// SetNillableMentionsCount sets the "mentions_count" field if the given value is not nil.
func (_u *PainPointUpdate) SetNillableMentionsCount(v *int) *PainPointUpdate {
	if v != nil {
		_u.SetMentionsCount(*v)
	}
	return _u
}

// AddMentionsCount adds value to the "mentions_count" field.
func (_u *PainPointUpdate) AddMentionsCount(v int) *PainPointUpdate {
	_u.mutation.AddMentionsCount(v)
	return _u
}

// SetSeverityScore sets the "severity_score" field.
func (_u *PainPointUpdate) SetSeverityScore(v float64) *PainPointUpdate {
	_u.mutation.ResetSeverityScore()
	_u.mutation.SetSeverityScore(v)
	return _u
}

// SetNillableSeverityScore sets the "severity_score" field if the given value is not nil.
func (_u *PainPointUpdate) SetNillableSeverityScore(v *float64) *PainPointUpdate {
	if v != nil {
		_u.SetSeverityScore(*v)
	}
	return _u
}

// AddSeverityScore adds value to the "severity_score" field.
func (_u *PainPointUpdate) AddSeverityScore(v float64) *PainPointUpdate {
	_u.mutation.AddSeverityScore(v)
	return _u
}

// ClearSeverityScore clears the value of the "severity_score" field.
func (_u *PainPointUpdate) ClearSeverityScore() *PainPointUpdate {
	_u.mutation.ClearSeverityScore()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PainPointUpdate) SetCreatedAt(v time.Time) *PainPointUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PainPointUpdate) SetNillableCreatedAt(v *time.Time) *PainPointUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddQuoteIDs adds the "quotes" edge to the PainPointQuote entity by IDs.
func (_u *PainPointUpdate) AddQuoteIDs(ids ...string) *PainPointUpdate {
	_u.mutation.AddQuoteIDs(ids...)
	return _u
}

// AddQuotes adds the "quotes" edges to the PainPointQuote entity.
func (_u *PainPointUpdate) AddQuotes(v ...*PainPointQuote) *PainPointUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuoteIDs(ids...)
}

// Mutation returns the PainPointMutation object of the builder.
func (_u *PainPointUpdate) Mutation() *PainPointMutation {
	return _u.mutation
}

// ClearQuotes clears all "quotes" edges to the PainPointQuote entity.
func (_u *PainPointUpdate) ClearQuotes() *PainPointUpdate {
	_u.mutation.ClearQuotes()
	return _u
}

// RemoveQuoteIDs removes the "quotes" edge to PainPointQuote entities by IDs.
func (_u *PainPointUpdate) RemoveQuoteIDs(ids ...string) *PainPointUpdate {
	_u.mutation.RemoveQuoteIDs(ids...)
	return _u
}

// RemoveQuotes removes "quotes" edges to PainPointQuote entities.
func (_u *PainPointUpdate) RemoveQuotes(v ...*PainPointQuote) *PainPointUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuoteIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PainPointUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PainPointUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PainPointUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PainPointUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PainPointUpdate) check() error {
	if _u.mutation.SearchCleared() && len(_u.mutation.SearchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PainPoint.search"`)
	}
	return nil
}

func (_u *PainPointUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(painpoint.Table, painpoint.Columns, sqlgraph.NewFieldSpec(painpoint.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(painpoint.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceTag(); ok {
		_spec.SetField(painpoint.FieldSourceTag, field.TypeString, value)
	}
	if value, ok := _u.mutation.MentionsCount(); ok {
		_spec.SetField(painpoint.FieldMentionsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMentionsCount(); ok {
		_spec.AddField(painpoint.FieldMentionsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SeverityScore(); ok {
		_spec.SetField(painpoint.FieldSeverityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSeverityScore(); ok {
		_spec.AddField(painpoint.FieldSeverityScore, field.TypeFloat64, value)
	}
	if _u.mutation.SeverityScoreCleared() {
		_spec.ClearField(painpoint.FieldSeverityScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(painpoint.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.QuotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   painpoint.QuotesTable,
			Columns: []string{painpoint.QuotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(painpointquote.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuotesIDs(); len(nodes) > 0 && !_u.mutation.QuotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   painpoint.QuotesTable,
			Columns: []string{painpoint.QuotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(painpointquote.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuotesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   painpoint.QuotesTable,
			Columns: []string{painpoint.QuotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(painpointquote.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{painpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PainPointUpdateOne is the builder for updating a single PainPoint entity.
type PainPointUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PainPointMutation
}

// SetTitle sets the "title" field.
func (_u *PainPointUpdateOne) SetTitle(v string) *PainPointUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PainPointUpdateOne) SetNillableTitle(v *string) *PainPointUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSourceTag sets the "source_tag" field.
func (_u *PainPointUpdateOne) SetSourceTag(v string) *PainPointUpdateOne {
	_u.mutation.SetSourceTag(v)
	return _u
}

// SetNillableSourceTag sets the "source_tag" field if the given value is not nil.
func (_u *PainPointUpdateOne) SetNillableSourceTag(v *string) *PainPointUpdateOne {
	if v != nil {
		_u.SetSourceTag(*v)
	}
	return _u
}

// SetMentionsCount sets the "mentions_count" field.
func (_u *PainPointUpdateOne) SetMentionsCount(v int) *PainPointUpdateOne {
	_u.mutation.ResetMentionsCount()
	_u.mutation.SetMentionsCount(v)
	return _u
}

// SetNillableMentionsCount sets the "mentions_count" field if the given value is not nil.
func (_u *PainPointUpdateOne) SetNillableMentionsCount(v *int) *PainPointUpdateOne {
	if v != nil {
		_u.SetMentionsCount(*v)
	}
	return _u
}

// AddMentionsCount adds value to the "mentions_count" field.
func (_u *PainPointUpdateOne) AddMentionsCount(v int) *PainPointUpdateOne {
	_u.mutation.AddMentionsCount(v)
	return _u
}

// SetSeverityScore sets the "severity_score" field.
func (_u *PainPointUpdateOne) SetSeverityScore(v float64) *PainPointUpdateOne {
	_u.mutation.ResetSeverityScore()
	_u.mutation.SetSeverityScore(v)
	return _u
}

// SetNillableSeverityScore sets the "severity_score" field if the given value is not nil.
func (_u *PainPointUpdateOne) SetNillableSeverityScore(v *float64) *PainPointUpdateOne {
	if v != nil {
		_u.SetSeverityScore(*v)
	}
	return _u
}

// AddSeverityScore adds value to the "severity_score" field.
func (_u *PainPointUpdateOne) AddSeverityScore(v float64) *PainPointUpdateOne {
	_u.mutation.AddSeverityScore(v)
	return _u
}

// ClearSeverityScore clears the value of the "severity_score" field.
func (_u *PainPointUpdateOne) ClearSeverityScore() *PainPointUpdateOne {
	_u.mutation.ClearSeverityScore()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PainPointUpdateOne) SetCreatedAt(v time.Time) *PainPointUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PainPointUpdateOne) SetNillableCreatedAt(v *time.Time) *PainPointUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddQuoteIDs adds the "quotes" edge to the PainPointQuote entity by IDs.
func (_u *PainPointUpdateOne) AddQuoteIDs(ids ...string) *PainPointUpdateOne {
	_u.mutation.AddQuoteIDs(ids...)
	return _u
}

// AddQuotes adds the "quotes" edges to the PainPointQuote entity.
func (_u *PainPointUpdateOne) AddQuotes(v ...*PainPointQuote) *PainPointUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuoteIDs(ids...)
}

// Mutation returns the PainPointMutation object of the builder.
func (_u *PainPointUpdateOne) Mutation() *PainPointMutation {
	return _u.mutation
}

// ClearQuotes clears all "quotes" edges to the PainPointQuote entity.
func (_u *PainPointUpdateOne) ClearQuotes() *PainPointUpdateOne {
	_u.mutation.ClearQuotes()
	return _u
}

// RemoveQuoteIDs removes the "quotes" edge to PainPointQuote entities by IDs.
func (_u *PainPointUpdateOne) RemoveQuoteIDs(ids ...string) *PainPointUpdateOne {
	_u.mutation.RemoveQuoteIDs(ids...)
	return _u
}

// RemoveQuotes removes "quotes" edges to PainPointQuote entities.
func (_u *PainPointUpdateOne) RemoveQuotes(v ...*PainPointQuote) *PainPointUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuoteIDs(ids...)
}

// Where appends a list predicates to the PainPointUpdate builder.
func (_u *PainPointUpdateOne) Where(ps ...predicate.PainPoint) *PainPointUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PainPointUpdateOne) Select(field string, fields ...string) *PainPointUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PainPoint entity.
func (_u *PainPointUpdateOne) Save(ctx context.Context) (*PainPoint, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PainPointUpdateOne) SaveX(ctx context.Context) *PainPoint {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PainPointUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PainPointUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PainPointUpdateOne) check() error {
	if _u.mutation.SearchCleared() && len(_u.mutation.SearchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PainPoint.search"`)
	}
	return nil
}

func (_u *PainPointUpdateOne) sqlSave(ctx context.Context) (_node *PainPoint, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(painpoint.Table, painpoint.Columns, sqlgraph.NewFieldSpec(painpoint.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PainPoint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, painpoint.FieldID)
		for _, f := range fields {
			if !painpoint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != painpoint.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(painpoint.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceTag(); ok {
		_spec.SetField(painpoint.FieldSourceTag, field.TypeString, value)
	}
	if value, ok := _u.mutation.MentionsCount(); ok {
		_spec.SetField(painpoint.FieldMentionsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMentionsCount(); ok {
		_spec.AddField(painpoint.FieldMentionsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SeverityScore(); ok {
		_spec.SetField(painpoint.FieldSeverityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSeverityScore(); ok {
		_spec.AddField(painpoint.FieldSeverityScore, field.TypeFloat64, value)
	}
	if _u.mutation.SeverityScoreCleared() {
		_spec.ClearField(painpoint.FieldSeverityScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(painpoint.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.QuotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   painpoint.QuotesTable,
			Columns: []string{painpoint.QuotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(painpointquote.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuotesIDs(); len(nodes) > 0 && !_u.mutation.QuotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   painpoint.QuotesTable,
			Columns: []string{painpoint.QuotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(painpointquote.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuotesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   painpoint.QuotesTable,
			Columns: []string{painpoint.QuotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(painpointquote.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PainPoint{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{painpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
