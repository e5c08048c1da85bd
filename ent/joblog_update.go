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
	"github.com/painscope/painscope/ent/joblog"
	"github.com/painscope/painscope/ent/predicate"
)

// JobLogUpdate is the builder for updating JobLog entities.
type JobLogUpdate struct {
	config
	hooks    []Hook
	mutation *JobLogMutation
}

// Where appends a list predicates to the JobLogUpdate builder.
func (_u *JobLogUpdate) Where(ps ...predicate.JobLog) *JobLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSearchID sets the "search_id" field.
func (_u *JobLogUpdate) SetSearchID(v string) *JobLogUpdate {
	_u.mutation.SetSearchID(v)
	return _u
}

// SetNillableSearchID sets the "search_id" field if the given value is not nil.
func (_u *JobLogUpdate) SetNillableSearchID(v *string) *JobLogUpdate {
	if v != nil {
		_u.SetSearchID(*v)
	}
	return _u
}

// ClearSearchID clears the value of the "search_id" field.
func (_u *JobLogUpdate) ClearSearchID() *JobLogUpdate {
	_u.mutation.ClearSearchID()
	return _u
}

// SetLevel sets the "level" field.
func (_u *JobLogUpdate) SetLevel(v joblog.Level) *JobLogUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *JobLogUpdate) SetNillableLevel(v *joblog.Level) *JobLogUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *JobLogUpdate) SetMessage(v string) *JobLogUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *JobLogUpdate) SetNillableMessage(v *string) *JobLogUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *JobLogUpdate) SetContext(v map[string]interface{}) *JobLogUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *JobLogUpdate) ClearContext() *JobLogUpdate {
	_u.mutation.ClearContext()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *JobLogUpdate) SetCreatedAt(v time.Time) *JobLogUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *JobLogUpdate) SetNillableCreatedAt(v *time.Time) *JobLogUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the JobLogMutation object of the builder.
func (_u *JobLogUpdate) Mutation() *JobLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobLogUpdate) check() error {
	if v, ok := _u.mutation.Level(); ok {
		if err := joblog.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "JobLog.level": %w`, err)}
		}
	}
	return nil
}

func (_u *JobLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(joblog.Table, joblog.Columns, sqlgraph.NewFieldSpec(joblog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SearchID(); ok {
		_spec.SetField(joblog.FieldSearchID, field.TypeString, value)
	}
	if _u.mutation.SearchIDCleared() {
		_spec.ClearField(joblog.FieldSearchID, field.TypeString)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(joblog.FieldLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(joblog.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(joblog.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(joblog.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(joblog.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{joblog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobLogUpdateOne is the builder for updating a single JobLog entity.
type JobLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobLogMutation
}

// SetSearchID sets the "search_id" field.
func (_u *JobLogUpdateOne) SetSearchID(v string) *JobLogUpdateOne {
	_u.mutation.SetSearchID(v)
	return _u
}

// SetNillableSearchID sets the "search_id" field if the given value is not nil.
func (_u *JobLogUpdateOne) SetNillableSearchID(v *string) *JobLogUpdateOne {
	if v != nil {
		_u.SetSearchID(*v)
	}
	return _u
}

// ClearSearchID clears the value of the "search_id" field.
func (_u *JobLogUpdateOne) ClearSearchID() *JobLogUpdateOne {
	_u.mutation.ClearSearchID()
	return _u
}

// SetLevel sets the "level" field.
func (_u *JobLogUpdateOne) SetLevel(v joblog.Level) *JobLogUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *JobLogUpdateOne) SetNillableLevel(v *joblog.Level) *JobLogUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *JobLogUpdateOne) SetMessage(v string) *JobLogUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *JobLogUpdateOne) SetNillableMessage(v *string) *JobLogUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *JobLogUpdateOne) SetContext(v map[string]interface{}) *JobLogUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *JobLogUpdateOne) ClearContext() *JobLogUpdateOne {
	_u.mutation.ClearContext()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *JobLogUpdateOne) SetCreatedAt(v time.Time) *JobLogUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *JobLogUpdateOne) SetNillableCreatedAt(v *time.Time) *JobLogUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the JobLogMutation object of the builder.
func (_u *JobLogUpdateOne) Mutation() *JobLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the JobLogUpdate builder.
func (_u *JobLogUpdateOne) Where(ps ...predicate.JobLog) *JobLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobLogUpdateOne) Select(field string, fields ...string) *JobLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated JobLog entity.
func (_u *JobLogUpdateOne) Save(ctx context.Context) (*JobLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobLogUpdateOne) SaveX(ctx context.Context) *JobLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobLogUpdateOne) check() error {
	if v, ok := _u.mutation.Level(); ok {
		if err := joblog.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "JobLog.level": %w`, err)}
		}
	}
	return nil
}

func (_u *JobLogUpdateOne) sqlSave(ctx context.Context) (_node *JobLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(joblog.Table, joblog.Columns, sqlgraph.NewFieldSpec(joblog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "JobLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, joblog.FieldID)
		for _, f := range fields {
			if !joblog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != joblog.FieldID {
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
	if value, ok := _u.mutation.SearchID(); ok {
		_spec.SetField(joblog.FieldSearchID, field.TypeString, value)
	}
	if _u.mutation.SearchIDCleared() {
		_spec.ClearField(joblog.FieldSearchID, field.TypeString)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(joblog.FieldLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(joblog.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(joblog.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(joblog.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(joblog.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &JobLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{joblog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
