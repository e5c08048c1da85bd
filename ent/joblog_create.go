// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/painscope/painscope/ent/joblog"
)

// JobLogCreate is the builder for creating a JobLog entity.
type JobLogCreate struct {
	config
	mutation *JobLogMutation
	hooks    []Hook
}

// SetSearchID sets the "search_id" field.
func (_c *JobLogCreate) SetSearchID(v string) *JobLogCreate {
	_c.mutation.SetSearchID(v)
	return _c
}

// SetNillableSearchID sets the "search_id" field if the given value is not nil.
func (_c *JobLogCreate) SetNillableSearchID(v *string) *JobLogCreate {
	if v != nil {
		_c.SetSearchID(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *JobLogCreate) SetLevel(v joblog.Level) *JobLogCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *JobLogCreate) SetMessage(v string) *JobLogCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetContext sets the "context" field.
func (_c *JobLogCreate) SetContext(v map[string]interface{}) *JobLogCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JobLogCreate) SetCreatedAt(v time.Time) *JobLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JobLogCreate) SetNillableCreatedAt(v *time.Time) *JobLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the JobLogMutation object of the builder.
func (_c *JobLogCreate) Mutation() *JobLogMutation {
	return _c.mutation
}

// Save creates the JobLog in the database.
func (_c *JobLogCreate) Save(ctx context.Context) (*JobLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobLogCreate) SaveX(ctx context.Context) *JobLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobLogCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := joblog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobLogCreate) check() error {
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "JobLog.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := joblog.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "JobLog.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "JobLog.message"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "JobLog.created_at"`)}
	}
	return nil
}

func (_c *JobLogCreate) sqlSave(ctx context.Context) (*JobLog, error) {
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

func (_c *JobLogCreate) createSpec() (*JobLog, *sqlgraph.CreateSpec) {
	var (
		_node = &JobLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(joblog.Table, sqlgraph.NewFieldSpec(joblog.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SearchID(); ok {
		_spec.SetField(joblog.FieldSearchID, field.TypeString, value)
		_node.SearchID = &value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(joblog.FieldLevel, field.TypeEnum, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(joblog.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(joblog.FieldContext, field.TypeJSON, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(joblog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// JobLogCreateBulk is the builder for creating many JobLog entities in bulk.
type JobLogCreateBulk struct {
	config
	err      error
	builders []*JobLogCreate
}

// Save creates the JobLog entities in the database.
func (_c *JobLogCreateBulk) Save(ctx context.Context) ([]*JobLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*JobLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobLogMutation)
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
func (_c *JobLogCreateBulk) SaveX(ctx context.Context) []*JobLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
