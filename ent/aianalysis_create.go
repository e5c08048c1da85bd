// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/painscope/painscope/ent/aianalysis"
	"github.com/painscope/painscope/ent/search"
	"github.com/painscope/painscope/pkg/analyzer"
)

// AiAnalysisCreate is the builder for creating a AiAnalysis entity.
type AiAnalysisCreate struct {
	config
	mutation *AiAnalysisMutation
	hooks    []Hook
}

// SetSearchID sets the "search_id" field.
func (_c *AiAnalysisCreate) SetSearchID(v string) *AiAnalysisCreate {
	_c.mutation.SetSearchID(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *AiAnalysisCreate) SetSummary(v string) *AiAnalysisCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetProblemClusters sets the "problem_clusters" field.
func (_c *AiAnalysisCreate) SetProblemClusters(v []analyzer.ProblemCluster) *AiAnalysisCreate {
	_c.mutation.SetProblemClusters(v)
	return _c
}

// SetProductIdeas sets the "product_ideas" field.
func (_c *AiAnalysisCreate) SetProductIdeas(v []analyzer.ProductIdea) *AiAnalysisCreate {
	_c.mutation.SetProductIdeas(v)
	return _c
}

// SetSchemaVersion sets the "schema_version" field.
func (_c *AiAnalysisCreate) SetSchemaVersion(v int) *AiAnalysisCreate {
	_c.mutation.SetSchemaVersion(v)
	return _c
}

// SetNillableSchemaVersion sets the "schema_version" field if the given value is not nil.
func (_c *AiAnalysisCreate) SetNillableSchemaVersion(v *int) *AiAnalysisCreate {
	if v != nil {
		_c.SetSchemaVersion(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *AiAnalysisCreate) SetModel(v string) *AiAnalysisCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetTokensUsed sets the "tokens_used" field.
func (_c *AiAnalysisCreate) SetTokensUsed(v int) *AiAnalysisCreate {
	_c.mutation.SetTokensUsed(v)
	return _c
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_c *AiAnalysisCreate) SetNillableTokensUsed(v *int) *AiAnalysisCreate {
	if v != nil {
		_c.SetTokensUsed(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AiAnalysisCreate) SetCreatedAt(v time.Time) *AiAnalysisCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AiAnalysisCreate) SetNillableCreatedAt(v *time.Time) *AiAnalysisCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSearch sets the "search" edge to the Search entity.
func (_c *AiAnalysisCreate) SetSearch(v *Search) *AiAnalysisCreate {
	return _c.SetSearchID(v.ID)
}

// Mutation returns the AiAnalysisMutation object of the builder.
func (_c *AiAnalysisCreate) Mutation() *AiAnalysisMutation {
	return _c.mutation
}

// Save creates the AiAnalysis in the database.
func (_c *AiAnalysisCreate) Save(ctx context.Context) (*AiAnalysis, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AiAnalysisCreate) SaveX(ctx context.Context) *AiAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AiAnalysisCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AiAnalysisCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AiAnalysisCreate) defaults() {
	if _, ok := _c.mutation.SchemaVersion(); !ok {
		v := aianalysis.DefaultSchemaVersion
		_c.mutation.SetSchemaVersion(v)
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		v := aianalysis.DefaultTokensUsed
		_c.mutation.SetTokensUsed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := aianalysis.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AiAnalysisCreate) check() error {
	if _, ok := _c.mutation.SearchID(); !ok {
		return &ValidationError{Name: "search_id", err: errors.New(`ent: missing required field "AiAnalysis.search_id"`)}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "AiAnalysis.summary"`)}
	}
	if _, ok := _c.mutation.ProblemClusters(); !ok {
		return &ValidationError{Name: "problem_clusters", err: errors.New(`ent: missing required field "AiAnalysis.problem_clusters"`)}
	}
	if _, ok := _c.mutation.ProductIdeas(); !ok {
		return &ValidationError{Name: "product_ideas", err: errors.New(`ent: missing required field "AiAnalysis.product_ideas"`)}
	}
	if _, ok := _c.mutation.SchemaVersion(); !ok {
		return &ValidationError{Name: "schema_version", err: errors.New(`ent: missing required field "AiAnalysis.schema_version"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "AiAnalysis.model"`)}
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		return &ValidationError{Name: "tokens_used", err: errors.New(`ent: missing required field "AiAnalysis.tokens_used"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AiAnalysis.created_at"`)}
	}
	if len(_c.mutation.SearchIDs()) == 0 {
		return &ValidationError{Name: "search", err: errors.New(`ent: missing required edge "AiAnalysis.search"`)}
	}
	return nil
}

func (_c *AiAnalysisCreate) sqlSave(ctx context.Context) (*AiAnalysis, error) {
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

func (_c *AiAnalysisCreate) createSpec() (*AiAnalysis, *sqlgraph.CreateSpec) {
	var (
		_node = &AiAnalysis{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(aianalysis.Table, sqlgraph.NewFieldSpec(aianalysis.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(aianalysis.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.ProblemClusters(); ok {
		_spec.SetField(aianalysis.FieldProblemClusters, field.TypeJSON, value)
		_node.ProblemClusters = value
	}
	if value, ok := _c.mutation.ProductIdeas(); ok {
		_spec.SetField(aianalysis.FieldProductIdeas, field.TypeJSON, value)
		_node.ProductIdeas = value
	}
	if value, ok := _c.mutation.SchemaVersion(); ok {
		_spec.SetField(aianalysis.FieldSchemaVersion, field.TypeInt, value)
		_node.SchemaVersion = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(aianalysis.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.TokensUsed(); ok {
		_spec.SetField(aianalysis.FieldTokensUsed, field.TypeInt, value)
		_node.TokensUsed = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(aianalysis.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SearchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   aianalysis.SearchTable,
			Columns: []string{aianalysis.SearchColumn},
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

// AiAnalysisCreateBulk is the builder for creating many AiAnalysis entities in bulk.
type AiAnalysisCreateBulk struct {
	config
	err      error
	builders []*AiAnalysisCreate
}

// Save creates the AiAnalysis entities in the database.
func (_c *AiAnalysisCreateBulk) Save(ctx context.Context) ([]*AiAnalysis, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AiAnalysis, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AiAnalysisMutation)
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
func (_c *AiAnalysisCreateBulk) SaveX(ctx context.Context) []*AiAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AiAnalysisCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AiAnalysisCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
