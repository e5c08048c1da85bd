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
	"github.com/painscope/painscope/ent/predicate"
	"github.com/painscope/painscope/ent/searchsummary"
)

// SearchSummaryUpdate is the builder for updating SearchSummary entities.
type SearchSummaryUpdate struct {
	config
	hooks    []Hook
	mutation *SearchSummaryMutation
}

// Where appends a list predicates to the SearchSummaryUpdate builder.
func (_u *SearchSummaryUpdate) Where(ps ...predicate.SearchSummary) *SearchSummaryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTotalPosts sets the "total_posts" field.
func (_u *SearchSummaryUpdate) SetTotalPosts(v int) *SearchSummaryUpdate {
	_u.mutation.ResetTotalPosts()
	_u.mutation.SetTotalPosts(v)
	return _u
}

// SetNillableTotalPosts sets the "total_posts" field if the given value is not nil.
func (_u *SearchSummaryUpdate) SetNillableTotalPosts(v *int) *SearchSummaryUpdate {
	if v != nil {
		_u.SetTotalPosts(*v)
	}
	return _u
}

// AddTotalPosts adds value to the "total_posts" field.
func (_u *SearchSummaryUpdate) AddTotalPosts(v int) *SearchSummaryUpdate {
	_u.mutation.AddTotalPosts(v)
	return _u
}

// SetTotalComments sets the "total_comments" field.
func (_u *SearchSummaryUpdate) SetTotalComments(v int) *SearchSummaryUpdate {
	_u.mutation.ResetTotalComments()
	_u.mutation.SetTotalComments(v)
	return _u
}

// SetNillableTotalComments sets the "total_comments" field if the given value is not nil.
func (_u *SearchSummaryUpdate) SetNillableTotalComments(v *int) *SearchSummaryUpdate {
	if v != nil {
		_u.SetTotalComments(*v)
	}
	return _u
}

// AddTotalComments adds value to the "total_comments" field.
func (_u *SearchSummaryUpdate) AddTotalComments(v int) *SearchSummaryUpdate {
	_u.mutation.AddTotalComments(v)
	return _u
}

// SetTotalMentions sets the "total_mentions" field.
func (_u *SearchSummaryUpdate) SetTotalMentions(v int) *SearchSummaryUpdate {
	_u.mutation.ResetTotalMentions()
	_u.mutation.SetTotalMentions(v)
	return _u
}

// SetNillableTotalMentions sets the "total_mentions" field if the given value is not nil.
func (_u *SearchSummaryUpdate) SetNillableTotalMentions(v *int) *SearchSummaryUpdate {
	if v != nil {
		_u.SetTotalMentions(*v)
	}
	return _u
}

// AddTotalMentions adds value to the "total_mentions" field.
func (_u *SearchSummaryUpdate) AddTotalMentions(v int) *SearchSummaryUpdate {
	_u.mutation.AddTotalMentions(v)
	return _u
}

// SetSourceTags sets the "source_tags" field.
func (_u *SearchSummaryUpdate) SetSourceTags(v []string) *SearchSummaryUpdate {
	_u.mutation.SetSourceTags(v)
	return _u
}

// AppendSourceTags appends value to the "source_tags" field.
func (_u *SearchSummaryUpdate) AppendSourceTags(v []string) *SearchSummaryUpdate {
	_u.mutation.AppendSourceTags(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SearchSummaryUpdate) SetCreatedAt(v time.Time) *SearchSummaryUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SearchSummaryUpdate) SetNillableCreatedAt(v *time.Time) *SearchSummaryUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the SearchSummaryMutation object of the builder.
func (_u *SearchSummaryUpdate) Mutation() *SearchSummaryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SearchSummaryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SearchSummaryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SearchSummaryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SearchSummaryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SearchSummaryUpdate) check() error {
	if _u.mutation.SearchCleared() && len(_u.mutation.SearchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SearchSummary.search"`)
	}
	return nil
}

func (_u *SearchSummaryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(searchsummary.Table, searchsummary.Columns, sqlgraph.NewFieldSpec(searchsummary.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TotalPosts(); ok {
		_spec.SetField(searchsummary.FieldTotalPosts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPosts(); ok {
		_spec.AddField(searchsummary.FieldTotalPosts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalComments(); ok {
		_spec.SetField(searchsummary.FieldTotalComments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalComments(); ok {
		_spec.AddField(searchsummary.FieldTotalComments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalMentions(); ok {
		_spec.SetField(searchsummary.FieldTotalMentions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalMentions(); ok {
		_spec.AddField(searchsummary.FieldTotalMentions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SourceTags(); ok {
		_spec.SetField(searchsummary.FieldSourceTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSourceTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, searchsummary.FieldSourceTags, value)
		})
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(searchsummary.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{searchsummary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SearchSummaryUpdateOne is the builder for updating a single SearchSummary entity.
type SearchSummaryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SearchSummaryMutation
}

// SetTotalPosts sets the "total_posts" field.
func (_u *SearchSummaryUpdateOne) SetTotalPosts(v int) *SearchSummaryUpdateOne {
	_u.mutation.ResetTotalPosts()
	_u.mutation.SetTotalPosts(v)
	return _u
}

// SetNillableTotalPosts sets the "total_posts" field if the given value is not nil.
func (_u *SearchSummaryUpdateOne) SetNillableTotalPosts(v *int) *SearchSummaryUpdateOne {
	if v != nil {
		_u.SetTotalPosts(*v)
	}
	return _u
}

// AddTotalPosts adds value to the "total_posts" field.
func (_u *SearchSummaryUpdateOne) AddTotalPosts(v int) *SearchSummaryUpdateOne {
	_u.mutation.AddTotalPosts(v)
	return _u
}

// SetTotalComments sets the "total_comments" field.
func (_u *SearchSummaryUpdateOne) SetTotalComments(v int) *SearchSummaryUpdateOne {
	_u.mutation.ResetTotalComments()
	_u.mutation.SetTotalComments(v)
	return _u
}

// SetNillableTotalComments sets the "total_comments" field if the given value is not nil.
func (_u *SearchSummaryUpdateOne) SetNillableTotalComments(v *int) *SearchSummaryUpdateOne {
	if v != nil {
		_u.SetTotalComments(*v)
	}
	return _u
}

// AddTotalComments adds value to the "total_comments" field.
func (_u *SearchSummaryUpdateOne) AddTotalComments(v int) *SearchSummaryUpdateOne {
	_u.mutation.AddTotalComments(v)
	return _u
}

// SetTotalMentions sets the "total_mentions" field.
func (_u *SearchSummaryUpdateOne) SetTotalMentions(v int) *SearchSummaryUpdateOne {
	_u.mutation.ResetTotalMentions()
	_u.mutation.SetTotalMentions(v)
	return _u
}

// SetNillableTotalMentions sets the "total_mentions" field if the given value is not nil.
func (_u *SearchSummaryUpdateOne) SetNillableTotalMentions(v *int) *SearchSummaryUpdateOne {
	if v != nil {
		_u.SetTotalMentions(*v)
	}
	return _u
}

// AddTotalMentions adds value to the "total_mentions" field.
func (_u *SearchSummaryUpdateOne) AddTotalMentions(v int) *SearchSummaryUpdateOne {
	_u.mutation.AddTotalMentions(v)
	return _u
}

// SetSourceTags sets the "source_tags" field.
func (_u *SearchSummaryUpdateOne) SetSourceTags(v []string) *SearchSummaryUpdateOne {
	_u.mutation.SetSourceTags(v)
	return _u
}

// AppendSourceTags appends value to the "source_tags" field.
func (_u *SearchSummaryUpdateOne) AppendSourceTags(v []string) *SearchSummaryUpdateOne {
	_u.mutation.AppendSourceTags(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SearchSummaryUpdateOne) SetCreatedAt(v time.Time) *SearchSummaryUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SearchSummaryUpdateOne) SetNillableCreatedAt(v *time.Time) *SearchSummaryUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the SearchSummaryMutation object of the builder.
func (_u *SearchSummaryUpdateOne) Mutation() *SearchSummaryMutation {
	return _u.mutation
}

// Where appends a list predicates to the SearchSummaryUpdate builder.
func (_u *SearchSummaryUpdateOne) Where(ps ...predicate.SearchSummary) *SearchSummaryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SearchSummaryUpdateOne) Select(field string, fields ...string) *SearchSummaryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SearchSummary entity.
func (_u *SearchSummaryUpdateOne) Save(ctx context.Context) (*SearchSummary, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SearchSummaryUpdateOne) SaveX(ctx context.Context) *SearchSummary {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SearchSummaryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SearchSummaryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SearchSummaryUpdateOne) check() error {
	if _u.mutation.SearchCleared() && len(_u.mutation.SearchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SearchSummary.search"`)
	}
	return nil
}

func (_u *SearchSummaryUpdateOne) sqlSave(ctx context.Context) (_node *SearchSummary, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(searchsummary.Table, searchsummary.Columns, sqlgraph.NewFieldSpec(searchsummary.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SearchSummary.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, searchsummary.FieldID)
		for _, f := range fields {
			if !searchsummary.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != searchsummary.FieldID {
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
	if value, ok := _u.mutation.TotalPosts(); ok {
		_spec.SetField(searchsummary.FieldTotalPosts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPosts(); ok {
		_spec.AddField(searchsummary.FieldTotalPosts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalComments(); ok {
		_spec.SetField(searchsummary.FieldTotalComments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalComments(); ok {
		_spec.AddField(searchsummary.FieldTotalComments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalMentions(); ok {
		_spec.SetField(searchsummary.FieldTotalMentions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalMentions(); ok {
		_spec.AddField(searchsummary.FieldTotalMentions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SourceTags(); ok {
		_spec.SetField(searchsummary.FieldSourceTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSourceTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, searchsummary.FieldSourceTags, value)
		})
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(searchsummary.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &SearchSummary{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{searchsummary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
