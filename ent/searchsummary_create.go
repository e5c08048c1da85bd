// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/painscope/painscope/ent/search"
	"github.com/painscope/painscope/ent/searchsummary"
)

// SearchSummaryCreate is the builder for creating a SearchSummary entity.
type SearchSummaryCreate struct {
	config
	mutation *SearchSummaryMutation
	hooks    []Hook
}

// SetSearchID sets the "search_id" field.
func (_c *SearchSummaryCreate) SetSearchID(v string) *SearchSummaryCreate {
	_c.mutation.SetSearchID(v)
	return _c
}

// SetTotalPosts sets the "total_posts" field.
func (_c *SearchSummaryCreate) SetTotalPosts(v int) *SearchSummaryCreate {
	_c.mutation.SetTotalPosts(v)
	return _c
}

// SetNillableTotalPosts sets the "total_posts" field if the given value is not nil.
func (_c *SearchSummaryCreate) SetNillableTotalPosts(v *int) *SearchSummaryCreate {
	if v != nil {
		_c.SetTotalPosts(*v)
	}
	return _c
}

// SetTotalComments sets the "total_comments" field.
func (_c *SearchSummaryCreate) SetTotalComments(v int) *SearchSummaryCreate {
	_c.mutation.SetTotalComments(v)
	return _c
}

// SetNillableTotalComments sets the "total_comments" field if the given value is not nil.
func (_c *SearchSummaryCreate) SetNillableTotalComments(v *int) *SearchSummaryCreate {
	if v != nil {
		_c.SetTotalComments(*v)
	}
	return _c
}

// SetTotalMentions sets the "total_mentions" field.
func (_c *SearchSummaryCreate) SetTotalMentions(v int) *SearchSummaryCreate {
	_c.mutation.SetTotalMentions(v)
	return _c
}

// SetNillableTotalMentions sets the "total_mentions" field if the given value is not nil.
func (_c *SearchSummaryCreate) SetNillableTotalMentions(v *int) *SearchSummaryCreate {
	if v != nil {
		_c.SetTotalMentions(*v)
	}
	return _c
}

// SetSourceTags sets the "source_tags" field.
func (_c *SearchSummaryCreate) SetSourceTags(v []string) *SearchSummaryCreate {
	_c.mutation.SetSourceTags(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SearchSummaryCreate) SetCreatedAt(v time.Time) *SearchSummaryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SearchSummaryCreate) SetNillableCreatedAt(v *time.Time) *SearchSummaryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSearch sets the "search" edge to the Search entity.
func (_c *SearchSummaryCreate) SetSearch(v *Search) *SearchSummaryCreate {
	return _c.SetSearchID(v.ID)
}

// Mutation returns the SearchSummaryMutation object of the builder.
func (_c *SearchSummaryCreate) Mutation() *SearchSummaryMutation {
	return _c.mutation
}

// Save creates the SearchSummary in the database.
func (_c *SearchSummaryCreate) Save(ctx context.Context) (*SearchSummary, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SearchSummaryCreate) SaveX(ctx context.Context) *SearchSummary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SearchSummaryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SearchSummaryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SearchSummaryCreate) defaults() {
	if _, ok := _c.mutation.TotalPosts(); !ok {
		v := searchsummary.DefaultTotalPosts
		_c.mutation.SetTotalPosts(v)
	}
	if _, ok := _c.mutation.TotalComments(); !ok {
		v := searchsummary.DefaultTotalComments
		_c.mutation.SetTotalComments(v)
	}
	if _, ok := _c.mutation.TotalMentions(); !ok {
		v := searchsummary.DefaultTotalMentions
		_c.mutation.SetTotalMentions(v)
	}
	if _, ok := _c.mutation.SourceTags(); !ok {
		v := searchsummary.DefaultSourceTags
		_c.mutation.SetSourceTags(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := searchsummary.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SearchSummaryCreate) check() error {
	if _, ok := _c.mutation.SearchID(); !ok {
		return &ValidationError{Name: "search_id", err: errors.New(`ent: missing required field "SearchSummary.search_id"`)}
	}
	if _, ok := _c.mutation.TotalPosts(); !ok {
		return &ValidationError{Name: "total_posts", err: errors.New(`ent: missing required field "SearchSummary.total_posts"`)}
	}
	if _, ok := _c.mutation.TotalComments(); !ok {
		return &ValidationError{Name: "total_comments", err: errors.New(`ent: missing required field "SearchSummary.total_comments"`)}
	}
	if _, ok := _c.mutation.TotalMentions(); !ok {
		return &ValidationError{Name: "total_mentions", err: errors.New(`ent: missing required field "SearchSummary.total_mentions"`)}
	}
	if _, ok := _c.mutation.SourceTags(); !ok {
		return &ValidationError{Name: "source_tags", err: errors.New(`ent: missing required field "SearchSummary.source_tags"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SearchSummary.created_at"`)}
	}
	if len(_c.mutation.SearchIDs()) == 0 {
		return &ValidationError{Name: "search", err: errors.New(`ent: missing required edge "SearchSummary.search"`)}
	}
	return nil
}

func (_c *SearchSummaryCreate) sqlSave(ctx context.Context) (*SearchSummary, error) {
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

func (_c *SearchSummaryCreate) createSpec() (*SearchSummary, *sqlgraph.CreateSpec) {
	var (
		_node = &SearchSummary{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(searchsummary.Table, sqlgraph.NewFieldSpec(searchsummary.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TotalPosts(); ok {
		_spec.SetField(searchsummary.FieldTotalPosts, field.TypeInt, value)
		_node.TotalPosts = value
	}
	if value, ok := _c.mutation.TotalComments(); ok {
		_spec.SetField(searchsummary.FieldTotalComments, field.TypeInt, value)
		_node.TotalComments = value
	}
	if value, ok := _c.mutation.TotalMentions(); ok {
		_spec.SetField(searchsummary.FieldTotalMentions, field.TypeInt, value)
		_node.TotalMentions = value
	}
	if value, ok := _c.mutation.SourceTags(); ok {
		_spec.SetField(searchsummary.FieldSourceTags, field.TypeJSON, value)
		_node.SourceTags = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(searchsummary.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SearchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   searchsummary.SearchTable,
			Columns: []string{searchsummary.SearchColumn},
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

// SearchSummaryCreateBulk is the builder for creating many SearchSummary entities in bulk.
type SearchSummaryCreateBulk struct {
	config
	err      error
	builders []*SearchSummaryCreate
}

// Save creates the SearchSummary entities in the database.
func (_c *SearchSummaryCreateBulk) Save(ctx context.Context) ([]*SearchSummary, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SearchSummary, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SearchSummaryMutation)
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
func (_c *SearchSummaryCreateBulk) SaveX(ctx context.Context) []*SearchSummary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SearchSummaryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SearchSummaryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
