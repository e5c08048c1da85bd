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
	"github.com/painscope/painscope/ent/searchevent"
)

// SearchEventCreate is the builder for creating a SearchEvent entity.
type SearchEventCreate struct {
	config
	mutation *SearchEventMutation
	hooks    []Hook
}

// SetEventID sets the "event_id" field.
func (_c *SearchEventCreate) SetEventID(v string) *SearchEventCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetSearchID sets the "search_id" field.
func (_c *SearchEventCreate) SetSearchID(v string) *SearchEventCreate {
	_c.mutation.SetSearchID(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *SearchEventCreate) SetPhase(v searchevent.Phase) *SearchEventCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *SearchEventCreate) SetEventType(v searchevent.EventType) *SearchEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *SearchEventCreate) SetPayload(v map[string]interface{}) *SearchEventCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SearchEventCreate) SetCreatedAt(v time.Time) *SearchEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SearchEventCreate) SetNillableCreatedAt(v *time.Time) *SearchEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSearch sets the "search" edge to the Search entity.
func (_c *SearchEventCreate) SetSearch(v *Search) *SearchEventCreate {
	return _c.SetSearchID(v.ID)
}

// Mutation returns the SearchEventMutation object of the builder.
func (_c *SearchEventCreate) Mutation() *SearchEventMutation {
	return _c.mutation
}

// Save creates the SearchEvent in the database.
func (_c *SearchEventCreate) Save(ctx context.Context) (*SearchEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SearchEventCreate) SaveX(ctx context.Context) *SearchEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SearchEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SearchEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SearchEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := searchevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SearchEventCreate) check() error {
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "SearchEvent.event_id"`)}
	}
	if _, ok := _c.mutation.SearchID(); !ok {
		return &ValidationError{Name: "search_id", err: errors.New(`ent: missing required field "SearchEvent.search_id"`)}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "SearchEvent.phase"`)}
	}
	if v, ok := _c.mutation.Phase(); ok {
		if err := searchevent.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "SearchEvent.phase": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "SearchEvent.event_type"`)}
	}
	if v, ok := _c.mutation.EventType(); ok {
		if err := searchevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "SearchEvent.event_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "SearchEvent.payload"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SearchEvent.created_at"`)}
	}
	if len(_c.mutation.SearchIDs()) == 0 {
		return &ValidationError{Name: "search", err: errors.New(`ent: missing required edge "SearchEvent.search"`)}
	}
	return nil
}

func (_c *SearchEventCreate) sqlSave(ctx context.Context) (*SearchEvent, error) {
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

func (_c *SearchEventCreate) createSpec() (*SearchEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SearchEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(searchevent.Table, sqlgraph.NewFieldSpec(searchevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(searchevent.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(searchevent.FieldPhase, field.TypeEnum, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(searchevent.FieldEventType, field.TypeEnum, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(searchevent.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(searchevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SearchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   searchevent.SearchTable,
			Columns: []string{searchevent.SearchColumn},
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

// SearchEventCreateBulk is the builder for creating many SearchEvent entities in bulk.
type SearchEventCreateBulk struct {
	config
	err      error
	builders []*SearchEventCreate
}

// Save creates the SearchEvent entities in the database.
func (_c *SearchEventCreateBulk) Save(ctx context.Context) ([]*SearchEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SearchEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SearchEventMutation)
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
func (_c *SearchEventCreateBulk) SaveX(ctx context.Context) []*SearchEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SearchEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SearchEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
