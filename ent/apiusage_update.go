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
	"github.com/painscope/painscope/ent/apiusage"
	"github.com/painscope/painscope/ent/predicate"
)

// ApiUsageUpdate is the builder for updating ApiUsage entities.
type ApiUsageUpdate struct {
	config
	hooks    []Hook
	mutation *ApiUsageMutation
}

// Where appends a list predicates to the ApiUsageUpdate builder.
func (_u *ApiUsageUpdate) Where(ps ...predicate.ApiUsage) *ApiUsageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetService sets the "service" field.
func (_u *ApiUsageUpdate) SetService(v string) *ApiUsageUpdate {
	_u.mutation.SetService(v)
	return _u
}

// SetNillableService sets the "service" field if the given value is not nil.
func (_u *ApiUsageUpdate) SetNillableService(v *string) *ApiUsageUpdate {
	if v != nil {
		_u.SetService(*v)
	}
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *ApiUsageUpdate) SetTokensUsed(v int) *ApiUsageUpdate {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *ApiUsageUpdate) SetNillableTokensUsed(v *int) *ApiUsageUpdate {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *ApiUsageUpdate) AddTokensUsed(v int) *ApiUsageUpdate {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetEstimatedCostUsd sets the "estimated_cost_usd" field.
func (_u *ApiUsageUpdate) SetEstimatedCostUsd(v float64) *ApiUsageUpdate {
	_u.mutation.ResetEstimatedCostUsd()
	_u.mutation.SetEstimatedCostUsd(v)
	return _u
}

// SetNillableEstimatedCostUsd sets the "estimated_cost_usd" field if the given value is not nil.
func (_u *ApiUsageUpdate) SetNillableEstimatedCostUsd(v *float64) *ApiUsageUpdate {
	if v != nil {
		_u.SetEstimatedCostUsd(*v)
	}
	return _u
}

// AddEstimatedCostUsd adds value to the "estimated_cost_usd" field.
func (_u *ApiUsageUpdate) AddEstimatedCostUsd(v float64) *ApiUsageUpdate {
	_u.mutation.AddEstimatedCostUsd(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ApiUsageUpdate) SetCreatedAt(v time.Time) *ApiUsageUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ApiUsageUpdate) SetNillableCreatedAt(v *time.Time) *ApiUsageUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the ApiUsageMutation object of the builder.
func (_u *ApiUsageUpdate) Mutation() *ApiUsageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApiUsageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApiUsageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApiUsageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApiUsageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApiUsageUpdate) check() error {
	if _u.mutation.SearchCleared() && len(_u.mutation.SearchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ApiUsage.search"`)
	}
	return nil
}

func (_u *ApiUsageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(apiusage.Table, apiusage.Columns, sqlgraph.NewFieldSpec(apiusage.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Service(); ok {
		_spec.SetField(apiusage.FieldService, field.TypeString, value)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(apiusage.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(apiusage.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedCostUsd(); ok {
		_spec.SetField(apiusage.FieldEstimatedCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedCostUsd(); ok {
		_spec.AddField(apiusage.FieldEstimatedCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(apiusage.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{apiusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApiUsageUpdateOne is the builder for updating a single ApiUsage entity.
type ApiUsageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApiUsageMutation
}

// SetService sets the "service" field.
func (_u *ApiUsageUpdateOne) SetService(v string) *ApiUsageUpdateOne {
	_u.mutation.SetService(v)
	return _u
}

// SetNillableService sets the "service" field if the given value is not nil.
func (_u *ApiUsageUpdateOne) SetNillableService(v *string) *ApiUsageUpdateOne {
	if v != nil {
		_u.SetService(*v)
	}
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *ApiUsageUpdateOne) SetTokensUsed(v int) *ApiUsageUpdateOne {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *ApiUsageUpdateOne) SetNillableTokensUsed(v *int) *ApiUsageUpdateOne {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *ApiUsageUpdateOne) AddTokensUsed(v int) *ApiUsageUpdateOne {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetEstimatedCostUsd sets the "estimated_cost_usd" field.
func (_u *ApiUsageUpdateOne) SetEstimatedCostUsd(v float64) *ApiUsageUpdateOne {
	_u.mutation.ResetEstimatedCostUsd()
	_u.mutation.SetEstimatedCostUsd(v)
	return _u
}

// SetNillableEstimatedCostUsd sets the "estimated_cost_usd" field if the given value is not nil.
func (_u *ApiUsageUpdateOne) SetNillableEstimatedCostUsd(v *float64) *ApiUsageUpdateOne {
	if v != nil {
		_u.SetEstimatedCostUsd(*v)
	}
	return _u
}

// AddEstimatedCostUsd adds value to the "estimated_cost_usd" field.
func (_u *ApiUsageUpdateOne) AddEstimatedCostUsd(v float64) *ApiUsageUpdateOne {
	_u.mutation.AddEstimatedCostUsd(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ApiUsageUpdateOne) SetCreatedAt(v time.Time) *ApiUsageUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ApiUsageUpdateOne) SetNillableCreatedAt(v *time.Time) *ApiUsageUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the ApiUsageMutation object of the builder.
func (_u *ApiUsageUpdateOne) Mutation() *ApiUsageMutation {
	return _u.mutation
}

// Where appends a list predicates to the ApiUsageUpdate builder.
func (_u *ApiUsageUpdateOne) Where(ps ...predicate.ApiUsage) *ApiUsageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApiUsageUpdateOne) Select(field string, fields ...string) *ApiUsageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ApiUsage entity.
func (_u *ApiUsageUpdateOne) Save(ctx context.Context) (*ApiUsage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApiUsageUpdateOne) SaveX(ctx context.Context) *ApiUsage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApiUsageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApiUsageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApiUsageUpdateOne) check() error {
	if _u.mutation.SearchCleared() && len(_u.mutation.SearchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ApiUsage.search"`)
	}
	return nil
}

func (_u *ApiUsageUpdateOne) sqlSave(ctx context.Context) (_node *ApiUsage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(apiusage.Table, apiusage.Columns, sqlgraph.NewFieldSpec(apiusage.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ApiUsage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, apiusage.FieldID)
		for _, f := range fields {
			if !apiusage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != apiusage.FieldID {
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
	if value, ok := _u.mutation.Service(); ok {
		_spec.SetField(apiusage.FieldService, field.TypeString, value)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(apiusage.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(apiusage.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedCostUsd(); ok {
		_spec.SetField(apiusage.FieldEstimatedCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedCostUsd(); ok {
		_spec.AddField(apiusage.FieldEstimatedCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(apiusage.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &ApiUsage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{apiusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
