// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/painscope/painscope/ent/painpoint"
	"github.com/painscope/painscope/ent/painpointquote"
)

// PainPointQuoteCreate is the builder for creating a PainPointQuote entity.
type PainPointQuoteCreate struct {
	config
	mutation *PainPointQuoteMutation
	hooks    []Hook
}

// SetPainPointID sets the "pain_point_id" field.
func (_c *PainPointQuoteCreate) SetPainPointID(v string) *PainPointQuoteCreate {
	_c.mutation.SetPainPointID(v)
	return _c
}

// SetQuoteText sets the "quote_text" field.
func (_c *PainPointQuoteCreate) SetQuoteText(v string) *PainPointQuoteCreate {
	_c.mutation.SetQuoteText(v)
	return _c
}

// SetAuthorHandle sets the "author_handle" field.
func (_c *PainPointQuoteCreate) SetAuthorHandle(v string) *PainPointQuoteCreate {
	_c.mutation.SetAuthorHandle(v)
	return _c
}

// SetNillableAuthorHandle sets the "author_handle" field if the given value is not nil.
func (_c *PainPointQuoteCreate) SetNillableAuthorHandle(v *string) *PainPointQuoteCreate {
	if v != nil {
		_c.SetAuthorHandle(*v)
	}
	return _c
}

// SetUpvotes sets the "upvotes" field.
func (_c *PainPointQuoteCreate) SetUpvotes(v int) *PainPointQuoteCreate {
	_c.mutation.SetUpvotes(v)
	return _c
}

// SetNillableUpvotes sets the "upvotes" field if the given value is not nil.
func (_c *PainPointQuoteCreate) SetNillableUpvotes(v *int) *PainPointQuoteCreate {
	if v != nil {
		_c.SetUpvotes(*v)
	}
	return _c
}

// SetPermalink sets the "permalink" field.
func (_c *PainPointQuoteCreate) SetPermalink(v string) *PainPointQuoteCreate {
	_c.mutation.SetPermalink(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PainPointQuoteCreate) SetCreatedAt(v time.Time) *PainPointQuoteCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PainPointQuoteCreate) SetNillableCreatedAt(v *time.Time) *PainPointQuoteCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PainPointQuoteCreate) SetID(v string) *PainPointQuoteCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetPainPoint sets the "pain_point" edge to the PainPoint entity.
func (_c *PainPointQuoteCreate) SetPainPoint(v *PainPoint) *PainPointQuoteCreate {
	return _c.SetPainPointID(v.ID)
}

// Mutation returns the PainPointQuoteMutation object of the builder.
func (_c *PainPointQuoteCreate) Mutation() *PainPointQuoteMutation {
	return _c.mutation
}

// Save creates the PainPointQuote in the database.
func (_c *PainPointQuoteCreate) Save(ctx context.Context) (*PainPointQuote, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PainPointQuoteCreate) SaveX(ctx context.Context) *PainPointQuote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PainPointQuoteCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PainPointQuoteCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PainPointQuoteCreate) defaults() {
	if _, ok := _c.mutation.Upvotes(); !ok {
		v := painpointquote.DefaultUpvotes
		_c.mutation.SetUpvotes(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := painpointquote.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PainPointQuoteCreate) check() error {
	if _, ok := _c.mutation.PainPointID(); !ok {
		return &ValidationError{Name: "pain_point_id", err: errors.New(`ent: missing required field "PainPointQuote.pain_point_id"`)}
	}
	if _, ok := _c.mutation.QuoteText(); !ok {
		return &ValidationError{Name: "quote_text", err: errors.New(`ent: missing required field "PainPointQuote.quote_text"`)}
	}
	if _, ok := _c.mutation.Upvotes(); !ok {
		return &ValidationError{Name: "upvotes", err: errors.New(`ent: missing required field "PainPointQuote.upvotes"`)}
	}
	if _, ok := _c.mutation.Permalink(); !ok {
		return &ValidationError{Name: "permalink", err: errors.New(`ent: missing required field "PainPointQuote.permalink"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PainPointQuote.created_at"`)}
	}
	if len(_c.mutation.PainPointIDs()) == 0 {
		return &ValidationError{Name: "pain_point", err: errors.New(`ent: missing required edge "PainPointQuote.pain_point"`)}
	}
	return nil
}

func (_c *PainPointQuoteCreate) sqlSave(ctx context.Context) (*PainPointQuote, error) {
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
			return nil, fmt.Errorf("unexpected PainPointQuote.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PainPointQuoteCreate) createSpec() (*PainPointQuote, *sqlgraph.CreateSpec) {
	var (
		_node = &PainPointQuote{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(painpointquote.Table, sqlgraph.NewFieldSpec(painpointquote.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.QuoteText(); ok {
		_spec.SetField(painpointquote.FieldQuoteText, field.TypeString, value)
		_node.QuoteText = value
	}
	if value, ok := _c.mutation.AuthorHandle(); ok {
		_spec.SetField(painpointquote.FieldAuthorHandle, field.TypeString, value)
		_node.AuthorHandle = &value
	}
	if value, ok := _c.mutation.Upvotes(); ok {
		_spec.SetField(painpointquote.FieldUpvotes, field.TypeInt, value)
		_node.Upvotes = value
	}
	if value, ok := _c.mutation.Permalink(); ok {
		_spec.SetField(painpointquote.FieldPermalink, field.TypeString, value)
		_node.Permalink = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(painpointquote.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.PainPointIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   painpointquote.PainPointTable,
			Columns: []string{painpointquote.PainPointColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(painpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PainPointID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PainPointQuoteCreateBulk is the builder for creating many PainPointQuote entities in bulk.
type PainPointQuoteCreateBulk struct {
	config
	err      error
	builders []*PainPointQuoteCreate
}

// Save creates the PainPointQuote entities in the database.
func (_c *PainPointQuoteCreateBulk) Save(ctx context.Context) ([]*PainPointQuote, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PainPointQuote, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PainPointQuoteMutation)
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
func (_c *PainPointQuoteCreateBulk) SaveX(ctx context.Context) []*PainPointQuote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PainPointQuoteCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PainPointQuoteCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
