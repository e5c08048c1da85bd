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
	"github.com/painscope/painscope/ent/search"
)

// PainPointCreate is the builder for creating a PainPoint entity.
type PainPointCreate struct {
	config
	mutation *PainPointMutation
	hooks    []Hook
}

// SetSearchID sets the "search_id" field.
func (_c *PainPointCreate) SetSearchID(v string) *PainPointCreate {
	_c.mutation.SetSearchID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *PainPointCreate) SetTitle(v string) *PainPointCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetSourceTag sets the "source_tag" field.
func (_c *PainPointCreate) SetSourceTag(v string) *PainPointCreate {
	_c.mutation.SetSourceTag(v)
	return _c
}

// SetMentionsCount sets the "mentions_count" field.
func (_c *PainPointCreate) SetMentionsCount(v int) *PainPointCreate {
	_c.mutation.SetMentionsCount(v)
	return _c
}

// SetNillableMentionsCount sets the "mentions_count" field if the given value is not nil.
func (_c *PainPointCreate) SetNillableMentionsCount(v *int) *PainPointCreate {
	if v != nil {
		_c.SetMentionsCount(*v)
	}
	return _c
}

// SetSeverityScore sets the "severity_score" field.
func (_c *PainPointCreate) SetSeverityScore(v float64) *PainPointCreate {
	_c.mutation.SetSeverityScore(v)
	return _c
}

// SetNillableSeverityScore sets the "severity_score" field if the given value is not nil.
func (_c *PainPointCreate) SetNillableSeverityScore(v *float64) *PainPointCreate {
	if v != nil {
		_c.SetSeverityScore(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PainPointCreate) SetCreatedAt(v time.Time) *PainPointCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PainPointCreate) SetNillableCreatedAt(v *time.Time) *PainPointCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PainPointCreate) SetID(v string) *PainPointCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSearch sets the "search" edge to the Search entity.
func (_c *PainPointCreate) SetSearch(v *Search) *PainPointCreate {
	return _c.SetSearchID(v.ID)
}

// AddQuoteIDs adds the "quotes" edge to the PainPointQuote entity by IDs.
func (_c *PainPointCreate) AddQuoteIDs(ids ...string) *PainPointCreate {
	_c.mutation.AddQuoteIDs(ids...)
	return _c
}

// AddQuotes adds the "quotes" edges to the PainPointQuote entity.
func (_c *PainPointCreate) AddQuotes(v ...*PainPointQuote) *PainPointCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddQuoteIDs(ids...)
}

// Mutation returns the PainPointMutation object of the builder.
func (_c *PainPointCreate) Mutation() *PainPointMutation {
	return _c.mutation
}

// Save creates the PainPoint in the database.
func (_c *PainPointCreate) Save(ctx context.Context) (*PainPoint, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PainPointCreate) SaveX(ctx context.Context) *PainPoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PainPointCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PainPointCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PainPointCreate) defaults() {
	if _, ok := _c.mutation.MentionsCount(); !ok {
		v := painpoint.DefaultMentionsCount
		_c.mutation.SetMentionsCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := painpoint.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PainPointCreate) check() error {
	if _, ok := _c.mutation.SearchID(); !ok {
		return &ValidationError{Name: "search_id", err: errors.New(`ent: missing required field "PainPoint.search_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "PainPoint.title"`)}
	}
	if _, ok := _c.mutation.SourceTag(); !ok {
		return &ValidationError{Name: "source_tag", err: errors.New(`ent: missing required field "PainPoint.source_tag"`)}
	}
	if _, ok := _c.mutation.MentionsCount(); !ok {
		return &ValidationError{Name: "mentions_count", err: errors.New(`ent: missing required field "PainPoint.mentions_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PainPoint.created_at"`)}
	}
	if len(_c.mutation.SearchIDs()) == 0 {
		return &ValidationError{Name: "search", err: errors.New(`ent: missing required edge "PainPoint.search"`)}
	}
	return nil
}

func (_c *PainPointCreate) sqlSave(ctx context.Context) (*PainPoint, error) {
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
			return nil, fmt.Errorf("unexpected PainPoint.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PainPointCreate) createSpec() (*PainPoint, *sqlgraph.CreateSpec) {
	var (
		_node = &PainPoint{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(painpoint.Table, sqlgraph.NewFieldSpec(painpoint.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(painpoint.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.SourceTag(); ok {
		_spec.SetField(painpoint.FieldSourceTag, field.TypeString, value)
		_node.SourceTag = value
	}
	if value, ok := _c.mutation.MentionsCount(); ok {
		_spec.SetField(painpoint.FieldMentionsCount, field.TypeInt, value)
		_node.MentionsCount = value
	}
	if value, ok := _c.mutation.SeverityScore(); ok {
		_spec.SetField(painpoint.FieldSeverityScore, field.TypeFloat64, value)
		_node.SeverityScore = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(painpoint.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SearchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   painpoint.SearchTable,
			Columns: []string{painpoint.SearchColumn},
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
	if nodes := _c.mutation.QuotesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PainPointCreateBulk is the builder for creating many PainPoint entities in bulk.
type PainPointCreateBulk struct {
	config
	err      error
	builders []*PainPointCreate
}

// Save creates the PainPoint entities in the database.
func (_c *PainPointCreateBulk) Save(ctx context.Context) ([]*PainPoint, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PainPoint, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PainPointMutation)
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
func (_c *PainPointCreateBulk) SaveX(ctx context.Context) []*PainPoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PainPointCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PainPointCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
