// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/painscope/painscope/ent/painpointquote"
	"github.com/painscope/painscope/ent/predicate"
)

// PainPointQuoteDelete is the builder for deleting a PainPointQuote entity.
type PainPointQuoteDelete struct {
	config
	hooks    []Hook
	mutation *PainPointQuoteMutation
}

// Where appends a list predicates to the PainPointQuoteDelete builder.
func (_d *PainPointQuoteDelete) Where(ps ...predicate.PainPointQuote) *PainPointQuoteDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PainPointQuoteDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PainPointQuoteDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PainPointQuoteDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(painpointquote.Table, sqlgraph.NewFieldSpec(painpointquote.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// PainPointQuoteDeleteOne is the builder for deleting a single PainPointQuote entity.
type PainPointQuoteDeleteOne struct {
	_d *PainPointQuoteDelete
}

// Where appends a list predicates to the PainPointQuoteDelete builder.
func (_d *PainPointQuoteDeleteOne) Where(ps ...predicate.PainPointQuote) *PainPointQuoteDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PainPointQuoteDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{painpointquote.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PainPointQuoteDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
