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
	"github.com/painscope/painscope/ent/painpointquote"
	"github.com/painscope/painscope/ent/predicate"
)

// PainPointQuoteUpdate is the builder for updating PainPointQuote entities.
type PainPointQuoteUpdate struct {
	config
	hooks    []Hook
	mutation *PainPointQuoteMutation
}

// Where appends a list predicates to the PainPointQuoteUpdate builder.
func (_u *PainPointQuoteUpdate) Where(ps ...predicate.PainPointQuote) *PainPointQuoteUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuoteText sets the "quote_text" field.
func (_u *PainPointQuoteUpdate) SetQuoteText(v string) *PainPointQuoteUpdate {
	_u.mutation.SetQuoteText(v)
	return _u
}

// SetNillableQuoteText sets the "quote_text" field if the given value is not nil.
func (_u *PainPointQuoteUpdate) SetNillableQuoteText(v *string) *PainPointQuoteUpdate {
	if v != nil {
		_u.SetQuoteText(*v)
	}
	return _u
}

// SetAuthorHandle sets the "author_handle" field.
func (_u *PainPointQuoteUpdate) SetAuthorHandle(v string) *PainPointQuoteUpdate {
	_u.mutation.SetAuthorHandle(v)
	return _u
}

// SetNillableAuthorHandle sets the "author_handle" field if the given value is not nil.
func (_u *PainPointQuoteUpdate) SetNillableAuthorHandle(v *string) *PainPointQuoteUpdate {
	if v != nil {
		_u.SetAuthorHandle(*v)
	}
	return _u
}

// ClearAuthorHandle clears the value of the "author_handle" field.
func (_u *PainPointQuoteUpdate) ClearAuthorHandle() *PainPointQuoteUpdate {
	_u.mutation.ClearAuthorHandle()
	return _u
}

// SetUpvotes sets the "upvotes" field.
func (_u *PainPointQuoteUpdate) SetUpvotes(v int) *PainPointQuoteUpdate {
	_u.mutation.ResetUpvotes()
	_u.mutation.SetUpvotes(v)
	return _u
}

// SetNillableUpvotes sets the "upvotes" field if the given value is not nil.
func (_u *PainPointQuoteUpdate) SetNillableUpvotes(v *int) *PainPointQuoteUpdate {
	if v != nil {
		_u.SetUpvotes(*v)
	}
	return _u
}

// AddUpvotes adds value to the "upvotes" field.
func (_u *PainPointQuoteUpdate) AddUpvotes(v int) *PainPointQuoteUpdate {
	_u.mutation.AddUpvotes(v)
	return _u
}

// SetPermalink sets the "permalink" field.
func (_u *PainPointQuoteUpdate) SetPermalink(v string) *PainPointQuoteUpdate {
	_u.mutation.SetPermalink(v)
	return _u
}

// SetNillablePermalink sets the "permalink" field if the given value is not nil.
func (_u *PainPointQuoteUpdate) SetNillablePermalink(v *string) *PainPointQuoteUpdate {
	if v != nil {
		_u.SetPermalink(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PainPointQuoteUpdate) SetCreatedAt(v time.Time) *PainPointQuoteUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PainPointQuoteUpdate) SetNillableCreatedAt(v *time.Time) *PainPointQuoteUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the PainPointQuoteMutation object of the builder.
func (_u *PainPointQuoteUpdate) Mutation() *PainPointQuoteMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PainPointQuoteUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PainPointQuoteUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PainPointQuoteUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PainPointQuoteUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PainPointQuoteUpdate) check() error {
	if _u.mutation.PainPointCleared() && len(_u.mutation.PainPointIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PainPointQuote.pain_point"`)
	}
	return nil
}

func (_u *PainPointQuoteUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(painpointquote.Table, painpointquote.Columns, sqlgraph.NewFieldSpec(painpointquote.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuoteText(); ok {
		_spec.SetField(painpointquote.FieldQuoteText, field.TypeString, value)
	}
	if value, ok := _u.mutation.AuthorHandle(); ok {
		_spec.SetField(painpointquote.FieldAuthorHandle, field.TypeString, value)
	}
	if _u.mutation.AuthorHandleCleared() {
		_spec.ClearField(painpointquote.FieldAuthorHandle, field.TypeString)
	}
	if value, ok := _u.mutation.Upvotes(); ok {
		_spec.SetField(painpointquote.FieldUpvotes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUpvotes(); ok {
		_spec.AddField(painpointquote.FieldUpvotes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Permalink(); ok {
		_spec.SetField(painpointquote.FieldPermalink, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(painpointquote.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{painpointquote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PainPointQuoteUpdateOne is the builder for updating a single PainPointQuote entity.
type PainPointQuoteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PainPointQuoteMutation
}

// SetQuoteText sets the "quote_text" field.
func (_u *PainPointQuoteUpdateOne) SetQuoteText(v string) *PainPointQuoteUpdateOne {
	_u.mutation.SetQuoteText(v)
	return _u
}

// SetNillableQuoteText sets the "quote_text" field if the given value is not nil.
func (_u *PainPointQuoteUpdateOne) SetNillableQuoteText(v *string) *PainPointQuoteUpdateOne {
	if v != nil {
		_u.SetQuoteText(*v)
	}
	return _u
}

// SetAuthorHandle sets the "author_handle" field.
func (_u *PainPointQuoteUpdateOne) SetAuthorHandle(v string) *PainPointQuoteUpdateOne {
	_u.mutation.SetAuthorHandle(v)
	return _u
}

// SetNillableAuthorHandle sets the "author_handle" field if the given value is not nil.
func (_u *PainPointQuoteUpdateOne) SetNillableAuthorHandle(v *string) *PainPointQuoteUpdateOne {
	if v != nil {
		_u.SetAuthorHandle(*v)
	}
	return _u
}

// ClearAuthorHandle clears the value of the "author_handle" field.
func (_u *PainPointQuoteUpdateOne) ClearAuthorHandle() *PainPointQuoteUpdateOne {
	_u.mutation.ClearAuthorHandle()
	return _u
}

// SetUpvotes sets the "upvotes" field.
func (_u *PainPointQuoteUpdateOne) SetUpvotes(v int) *PainPointQuoteUpdateOne {
	_u.mutation.ResetUpvotes()
	_u.mutation.SetUpvotes(v)
	return _u
}

// SetNillableUpvotes sets the "upvotes" field if the given value is not nil.
func (_u *PainPointQuoteUpdateOne) SetNillableUpvotes(v *int) *PainPointQuoteUpdateOne {
	if v != nil {
		_u.SetUpvotes(*v)
	}
	return _u
}

// AddUpvotes adds value to the "upvotes" field.
func (_u *PainPointQuoteUpdateOne) AddUpvotes(v int) *PainPointQuoteUpdateOne {
	_u.mutation.AddUpvotes(v)
	return _u
}

// SetPermalink sets the "permalink" field.
func (_u *PainPointQuoteUpdateOne) SetPermalink(v string) *PainPointQuoteUpdateOne {
	_u.mutation.SetPermalink(v)
	return _u
}

// SetNillablePermalink sets the "permalink" field if the given value is not nil.
func (_u *PainPointQuoteUpdateOne) SetNillablePermalink(v *string) *PainPointQuoteUpdateOne {
	if v != nil {
		_u.SetPermalink(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PainPointQuoteUpdateOne) SetCreatedAt(v time.Time) *PainPointQuoteUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PainPointQuoteUpdateOne) SetNillableCreatedAt(v *time.Time) *PainPointQuoteUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the PainPointQuoteMutation object of the builder.
func (_u *PainPointQuoteUpdateOne) Mutation() *PainPointQuoteMutation {
	return _u.mutation
}

// Where appends a list predicates to the PainPointQuoteUpdate builder.
func (_u *PainPointQuoteUpdateOne) Where(ps ...predicate.PainPointQuote) *PainPointQuoteUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PainPointQuoteUpdateOne) Select(field string, fields ...string) *PainPointQuoteUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PainPointQuote entity.
func (_u *PainPointQuoteUpdateOne) Save(ctx context.Context) (*PainPointQuote, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PainPointQuoteUpdateOne) SaveX(ctx context.Context) *PainPointQuote {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PainPointQuoteUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PainPointQuoteUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PainPointQuoteUpdateOne) check() error {
	if _u.mutation.PainPointCleared() && len(_u.mutation.PainPointIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PainPointQuote.pain_point"`)
	}
	return nil
}

func (_u *PainPointQuoteUpdateOne) sqlSave(ctx context.Context) (_node *PainPointQuote, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(painpointquote.Table, painpointquote.Columns, sqlgraph.NewFieldSpec(painpointquote.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PainPointQuote.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, painpointquote.FieldID)
		for _, f := range fields {
			if !painpointquote.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != painpointquote.FieldID {
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
	if value, ok := _u.mutation.QuoteText(); ok {
		_spec.SetField(painpointquote.FieldQuoteText, field.TypeString, value)
	}
	if value, ok := _u.mutation.AuthorHandle(); ok {
		_spec.SetField(painpointquote.FieldAuthorHandle, field.TypeString, value)
	}
	if _u.mutation.AuthorHandleCleared() {
		_spec.ClearField(painpointquote.FieldAuthorHandle, field.TypeString)
	}
	if value, ok := _u.mutation.Upvotes(); ok {
		_spec.SetField(painpointquote.FieldUpvotes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUpvotes(); ok {
		_spec.AddField(painpointquote.FieldUpvotes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Permalink(); ok {
		_spec.SetField(painpointquote.FieldPermalink, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(painpointquote.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &PainPointQuote{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{painpointquote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
