// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/painscope/painscope/ent/aianalysis"
	"github.com/painscope/painscope/ent/predicate"
	"github.com/painscope/painscope/pkg/analyzer"
)

// AiAnalysisUpdate is the builder for updating AiAnalysis entities.
type AiAnalysisUpdate struct {
	config
	hooks    []Hook
	mutation *AiAnalysisMutation
}

// Where appends a list predicates to the AiAnalysisUpdate builder.
func (_u *AiAnalysisUpdate) Where(ps ...predicate.AiAnalysis) *AiAnalysisUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *AiAnalysisUpdate) SetSummary(v string) *AiAnalysisUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *AiAnalysisUpdate) SetNillableSummary(v *string) *AiAnalysisUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetProblemClusters sets the "problem_clusters" field.
func (_u *AiAnalysisUpdate) SetProblemClusters(v []analyzer.ProblemCluster) *AiAnalysisUpdate {
	_u.mutation.SetProblemClusters(v)
	return _u
}

// AppendProblemClusters appends value to the "problem_clusters" field.
func (_u *AiAnalysisUpdate) AppendProblemClusters(v []analyzer.ProblemCluster) *AiAnalysisUpdate {
	_u.mutation.AppendProblemClusters(v)
	return _u
}

// SetProductIdeas sets the "product_ideas" field.
func (_u *AiAnalysisUpdate) SetProductIdeas(v []analyzer.ProductIdea) *AiAnalysisUpdate {
	_u.mutation.SetProductIdeas(v)
	return _u
}

// AppendProductIdeas appends value to the "product_ideas" field.
func (_u *AiAnalysisUpdate) AppendProductIdeas(v []analyzer.ProductIdea) *AiAnalysisUpdate {
	_u.mutation.AppendProductIdeas(v)
	return _u
}

// SetSchemaVersion sets the "schema_version" field.
func (_u *AiAnalysisUpdate) SetSchemaVersion(v int) *AiAnalysisUpdate {
	_u.mutation.ResetSchemaVersion()
	_u.mutation.SetSchemaVersion(v)
	return _u
}

// SetNillableSchemaVersion sets the "schema_version" field if the given value is not nil.
func (_u *AiAnalysisUpdate) SetNillableSchemaVersion(v *int) *AiAnalysisUpdate {
	if v != nil {
		_u.SetSchemaVersion(*v)
	}
	return _u
}

// AddSchemaVersion adds value to the "schema_version" field.
func (_u *AiAnalysisUpdate) AddSchemaVersion(v int) *AiAnalysisUpdate {
	_u.mutation.AddSchemaVersion(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *AiAnalysisUpdate) SetModel(v string) *AiAnalysisUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AiAnalysisUpdate) SetNillableModel(v *string) *AiAnalysisUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *AiAnalysisUpdate) SetTokensUsed(v int) *AiAnalysisUpdate {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *AiAnalysisUpdate) SetNillableTokensUsed(v *int) *AiAnalysisUpdate {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *AiAnalysisUpdate) AddTokensUsed(v int) *AiAnalysisUpdate {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AiAnalysisUpdate) SetCreatedAt(v time.Time) *AiAnalysisUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AiAnalysisUpdate) SetNillableCreatedAt(v *time.Time) *AiAnalysisUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the AiAnalysisMutation object of the builder.
func (_u *AiAnalysisUpdate) Mutation() *AiAnalysisMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AiAnalysisUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AiAnalysisUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AiAnalysisUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AiAnalysisUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AiAnalysisUpdate) check() error {
	if _u.mutation.SearchCleared() && len(_u.mutation.SearchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AiAnalysis.search"`)
	}
	return nil
}

func (_u *AiAnalysisUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(aianalysis.Table, aianalysis.Columns, sqlgraph.NewFieldSpec(aianalysis.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(aianalysis.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProblemClusters(); ok {
		_spec.SetField(aianalysis.FieldProblemClusters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProblemClusters(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, aianalysis.FieldProblemClusters, value)
		})
	}
	if value, ok := _u.mutation.ProductIdeas(); ok {
		_spec.SetField(aianalysis.FieldProductIdeas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProductIdeas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, aianalysis.FieldProductIdeas, value)
		})
	}
	if value, ok := _u.mutation.SchemaVersion(); ok {
		_spec.SetField(aianalysis.FieldSchemaVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSchemaVersion(); ok {
		_spec.AddField(aianalysis.FieldSchemaVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(aianalysis.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(aianalysis.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(aianalysis.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(aianalysis.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{aianalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AiAnalysisUpdateOne is the builder for updating a single AiAnalysis entity.
type AiAnalysisUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AiAnalysisMutation
}

// SetSummary sets the "summary" field.
func (_u *AiAnalysisUpdateOne) SetSummary(v string) *AiAnalysisUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *AiAnalysisUpdateOne) SetNillableSummary(v *string) *AiAnalysisUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetProblemClusters sets the "problem_clusters" field.
func (_u *AiAnalysisUpdateOne) SetProblemClusters(v []analyzer.ProblemCluster) *AiAnalysisUpdateOne {
	_u.mutation.SetProblemClusters(v)
	return _u
}

// AppendProblemClusters appends value to the "problem_clusters" field.
func (_u *AiAnalysisUpdateOne) AppendProblemClusters(v []analyzer.ProblemCluster) *AiAnalysisUpdateOne {
	_u.mutation.AppendProblemClusters(v)
	return _u
}

// SetProductIdeas sets the "product_ideas" field.
func (_u *AiAnalysisUpdateOne) SetProductIdeas(v []analyzer.ProductIdea) *AiAnalysisUpdateOne {
	_u.mutation.SetProductIdeas(v)
	return _u
}

// AppendProductIdeas appends value to the "product_ideas" field.
func (_u *AiAnalysisUpdateOne) AppendProductIdeas(v []analyzer.ProductIdea) *AiAnalysisUpdateOne {
	_u.mutation.AppendProductIdeas(v)
	return _u
}

// SetSchemaVersion sets the "schema_version" field.
func (_u *AiAnalysisUpdateOne) SetSchemaVersion(v int) *AiAnalysisUpdateOne {
	_u.mutation.ResetSchemaVersion()
	_u.mutation.SetSchemaVersion(v)
	return _u
}

// SetNillableSchemaVersion sets the "schema_version" field if the given value is not nil.
func (_u *AiAnalysisUpdateOne) SetNillableSchemaVersion(v *int) *AiAnalysisUpdateOne {
	if v != nil {
		_u.SetSchemaVersion(*v)
	}
	return _u
}

// AddSchemaVersion adds value to the "schema_version" field.
func (_u *AiAnalysisUpdateOne) AddSchemaVersion(v int) *AiAnalysisUpdateOne {
	_u.mutation.AddSchemaVersion(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *AiAnalysisUpdateOne) SetModel(v string) *AiAnalysisUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AiAnalysisUpdateOne) SetNillableModel(v *string) *AiAnalysisUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *AiAnalysisUpdateOne) SetTokensUsed(v int) *AiAnalysisUpdateOne {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *AiAnalysisUpdateOne) SetNillableTokensUsed(v *int) *AiAnalysisUpdateOne {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *AiAnalysisUpdateOne) AddTokensUsed(v int) *AiAnalysisUpdateOne {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AiAnalysisUpdateOne) SetCreatedAt(v time.Time) *AiAnalysisUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AiAnalysisUpdateOne) SetNillableCreatedAt(v *time.Time) *AiAnalysisUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the AiAnalysisMutation object of the builder.
func (_u *AiAnalysisUpdateOne) Mutation() *AiAnalysisMutation {
	return _u.mutation
}

// Where appends a list predicates to the AiAnalysisUpdate builder.
func (_u *AiAnalysisUpdateOne) Where(ps ...predicate.AiAnalysis) *AiAnalysisUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AiAnalysisUpdateOne) Select(field string, fields ...string) *AiAnalysisUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AiAnalysis entity.
func (_u *AiAnalysisUpdateOne) Save(ctx context.Context) (*AiAnalysis, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AiAnalysisUpdateOne) SaveX(ctx context.Context) *AiAnalysis {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AiAnalysisUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AiAnalysisUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AiAnalysisUpdateOne) check() error {
	if _u.mutation.SearchCleared() && len(_u.mutation.SearchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AiAnalysis.search"`)
	}
	return nil
}

func (_u *AiAnalysisUpdateOne) sqlSave(ctx context.Context) (_node *AiAnalysis, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(aianalysis.Table, aianalysis.Columns, sqlgraph.NewFieldSpec(aianalysis.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AiAnalysis.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, aianalysis.FieldID)
		for _, f := range fields {
			if !aianalysis.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != aianalysis.FieldID {
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
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(aianalysis.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProblemClusters(); ok {
		_spec.SetField(aianalysis.FieldProblemClusters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProblemClusters(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, aianalysis.FieldProblemClusters, value)
		})
	}
	if value, ok := _u.mutation.ProductIdeas(); ok {
		_spec.SetField(aianalysis.FieldProductIdeas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProductIdeas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, aianalysis.FieldProductIdeas, value)
		})
	}
	if value, ok := _u.mutation.SchemaVersion(); ok {
		_spec.SetField(aianalysis.FieldSchemaVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSchemaVersion(); ok {
		_spec.AddField(aianalysis.FieldSchemaVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(aianalysis.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(aianalysis.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(aianalysis.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(aianalysis.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &AiAnalysis{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{aianalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
