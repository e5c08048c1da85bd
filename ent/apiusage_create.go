// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/painscope/painscope/ent/apiusage"
	"github.com/painscope/painscope/ent/search"
)

// ApiUsageCreate is the builder for creating a ApiUsage entity.
type ApiUsageCreate struct {
	config
	mutation *ApiUsageMutation
	hooks    []Hook
}

// SetSearchID sets the "search_id" field.
func (_c *ApiUsageCreate) SetSearchID(v string) *ApiUsageCreate {
	_c.mutation.SetSearchID(v)
	return _c
}

// SetService sets the "service" field.
func (_c *ApiUsageCreate) SetService(v string) *ApiUsageCreate {
	_c.mutation.SetService(v)
	return _c
}

// SetTokensUsed sets the "tokens_used" field.
func (_c *ApiUsageCreate) SetTokensUsed(v int) *ApiUsageCreate {
	_c.mutation.SetTokensUsed(v)
	return _c
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_c *ApiUsageCreate) SetNillableTokensUsed(v *int) *ApiUsageCreate {
	if v != nil {
		_c.SetTokensUsed(*v)
	}
	return _c
}

// SetEstimatedCostUsd sets the "estimated_cost_usd" field.
func (_c *ApiUsageCreate) SetEstimatedCostUsd(v float64) *ApiUsageCreate {
	_c.mutation.SetEstimatedCostUsd(v)
	return _c
}

// SetNillableEstimatedCostUsd sets the "estimated_cost_usd" field if the given value is not nil.
func (_c *ApiUsageCreate) SetNillableEstimatedCostUsd(v *float64) *ApiUsageCreate {
	if v != nil {
		_c.SetEstimatedCostUsd(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ApiUsageCreate) SetCreatedAt(v time.Time) *ApiUsageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ApiUsageCreate) SetNillableCreatedAt(v *time.Time) *ApiUsageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSearch sets the "search" edge to the Search entity.
func (_c *ApiUsageCreate) SetSearch(v *Search) *ApiUsageCreate {
	return _c.SetSearchID(v.ID)
}

// Mutation returns the ApiUsageMutation object of the builder.
func (_c *ApiUsageCreate) Mutation() *ApiUsageMutation {
	return _c.mutation
}

// Save creates the ApiUsage in the database.
func (_c *ApiUsageCreate) Save(ctx context.Context) (*ApiUsage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApiUsageCreate) SaveX(ctx context.Context) *ApiUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApiUsageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApiUsageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApiUsageCreate) defaults() {
	if _, ok := _c.mutation.TokensUsed(); !ok {
		v := apiusage.DefaultTokensUsed
		_c.mutation.SetTokensUsed(v)
	}
	if _, ok := _c.mutation.EstimatedCostUsd(); !ok {
		v := apiusage.DefaultEstimatedCostUsd
		_c.mutation.SetEstimatedCostUsd(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := apiusage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApiUsageCreate) check() error {
	if _, ok := _c.mutation.SearchID(); !ok {
		return &ValidationError{Name: "search_id", err: errors.New(`ent: missing required field "ApiUsage.search_id"`)}
	}
	if _, ok := _c.mutation.Service(); !ok {
		return &ValidationError{Name: "service", err: errors.New(`ent: missing required field "ApiUsage.service"`)}
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		return &ValidationError{Name: "tokens_used", err: errors.New(`ent: missing required field "ApiUsage.tokens_used"`)}
	}
	if _, ok := _c.mutation.EstimatedCostUsd(); !ok {
		return &ValidationError{Name: "estimated_cost_usd", err: errors.New(`ent: missing required field "ApiUsage.estimated_cost_usd"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ApiUsage.created_at"`)}
	}
	if len(_c.mutation.SearchIDs()) == 0 {
		return &ValidationError{Name: "search", err: errors.New(`ent: missing required edge "ApiUsage.search"`)}
	}
	return nil
}

func (_c *ApiUsageCreate) sqlSave(ctx context.Context) (*ApiUsage, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ApiUsageCreate) createSpec() (*ApiUsage, *sqlgraph.CreateSpec) {
	var (
		_node = &ApiUsage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(apiusage.Table, sqlgraph.NewFieldSpec(apiusage.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Service(); ok {
		_spec.SetField(apiusage.FieldService, field.TypeString, value)
		_node.Service = value
	}
	if value, ok := _c.mutation.TokensUsed(); ok {
		_spec.SetField(apiusage.FieldTokensUsed, field.TypeInt, value)
		_node.TokensUsed = value
	}
	if value, ok := _c.mutation.EstimatedCostUsd(); ok {
		_spec.SetField(apiusage.FieldEstimatedCostUsd, field.TypeFloat64, value)
		_node.EstimatedCostUsd = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(apiusage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SearchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   apiusage.SearchTable,
			Columns: []string{apiusage.SearchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(search.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SearchID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ApiUsageCreateBulk is the builder for creating many ApiUsage entities in bulk.
type ApiUsageCreateBulk struct {
	config
	err      error
	builders []*ApiUsageCreate
}

// Save creates the ApiUsage entities in the database.
func (_c *ApiUsageCreateBulk) Save(ctx context.Context) ([]*ApiUsage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ApiUsage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApiUsageMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *ApiUsageCreateBulk) SaveX(ctx context.Context) []*ApiUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApiUsageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApiUsageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
