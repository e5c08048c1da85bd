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
	"github.com/painscope/painscope/ent/predicate"
	"github.com/painscope/painscope/ent/searchevent"
)

// SearchEventUpdate is the builder for updating SearchEvent entities.
type SearchEventUpdate struct {
	config
	hooks    []Hook
	mutation *SearchEventMutation
}

// Where appends a list predicates to the SearchEventUpdate builder.
func (_u *SearchEventUpdate) Where(ps ...predicate.SearchEvent) *SearchEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPhase sets the "phase" field.
func (_u *SearchEventUpdate) SetPhase(v searchevent.Phase) *SearchEventUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *SearchEventUpdate) SetNillablePhase(v *searchevent.Phase) *SearchEventUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *SearchEventUpdate) SetEventType(v searchevent.EventType) *SearchEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *SearchEventUpdate) SetNillableEventType(v *searchevent.EventType) *SearchEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *SearchEventUpdate) SetPayload(v map[string]interface{}) *SearchEventUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SearchEventUpdate) SetCreatedAt(v time.Time) *SearchEventUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SearchEventUpdate) SetNillableCreatedAt(v *time.Time) *SearchEventUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the SearchEventMutation object of the builder.
func (_u *SearchEventUpdate) Mutation() *SearchEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SearchEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SearchEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SearchEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SearchEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SearchEventUpdate) check() error {
	if v, ok := _u.mutation.Phase(); ok {
		if err := searchevent.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "SearchEvent.phase": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EventType(); ok {
		if err := searchevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "SearchEvent.event_type": %w`, err)}
		}
	}
	if _u.mutation.SearchCleared() && len(_u.mutation.SearchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SearchEvent.search"`)
	}
	return nil
}

func (_u *SearchEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(searchevent.Table, searchevent.Columns, sqlgraph.NewFieldSpec(searchevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(searchevent.FieldPhase, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(searchevent.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(searchevent.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(searchevent.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{searchevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SearchEventUpdateOne is the builder for updating a single SearchEvent entity.
type SearchEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SearchEventMutation
}

// SetPhase sets the "phase" field.
func (_u *SearchEventUpdateOne) SetPhase(v searchevent.Phase) *SearchEventUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *SearchEventUpdateOne) SetNillablePhase(v *searchevent.Phase) *SearchEventUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *SearchEventUpdateOne) SetEventType(v searchevent.EventType) *SearchEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *SearchEventUpdateOne) SetNillableEventType(v *searchevent.EventType) *SearchEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *SearchEventUpdateOne) SetPayload(v map[string]interface{}) *SearchEventUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SearchEventUpdateOne) SetCreatedAt(v time.Time) *SearchEventUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SearchEventUpdateOne) SetNillableCreatedAt(v *time.Time) *SearchEventUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the SearchEventMutation object of the builder.
func (_u *SearchEventUpdateOne) Mutation() *SearchEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SearchEventUpdate builder.
func (_u *SearchEventUpdateOne) Where(ps ...predicate.SearchEvent) *SearchEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SearchEventUpdateOne) Select(field string, fields ...string) *SearchEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SearchEvent entity.
func (_u *SearchEventUpdateOne) Save(ctx context.Context) (*SearchEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SearchEventUpdateOne) SaveX(ctx context.Context) *SearchEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SearchEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SearchEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SearchEventUpdateOne) check() error {
	if v, ok := _u.mutation.Phase(); ok {
		if err := searchevent.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "SearchEvent.phase": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EventType(); ok {
		if err := searchevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "SearchEvent.event_type": %w`, err)}
		}
	}
	if _u.mutation.SearchCleared() && len(_u.mutation.SearchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SearchEvent.search"`)
	}
	return nil
}

func (_u *SearchEventUpdateOne) sqlSave(ctx context.Context) (_node *SearchEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(searchevent.Table, searchevent.Columns, sqlgraph.NewFieldSpec(searchevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SearchEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, searchevent.FieldID)
		for _, f := range fields {
			if !searchevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != searchevent.FieldID {
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
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(searchevent.FieldPhase, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(searchevent.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(searchevent.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(searchevent.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &SearchEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{searchevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
