// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/painscope/painscope/ent/aianalysis"
	"github.com/painscope/painscope/ent/apiusage"
	"github.com/painscope/painscope/ent/joblog"
	"github.com/painscope/painscope/ent/painpoint"
	"github.com/painscope/painscope/ent/painpointquote"
	"github.com/painscope/painscope/ent/predicate"
	"github.com/painscope/painscope/ent/search"
	"github.com/painscope/painscope/ent/searchevent"
	"github.com/painscope/painscope/ent/searchsummary"
	"github.com/painscope/painscope/pkg/analyzer"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAiAnalysis     = "AiAnalysis"
	TypeApiUsage       = "ApiUsage"
	TypeJobLog         = "JobLog"
	TypePainPoint      = "PainPoint"
	TypePainPointQuote = "PainPointQuote"
	TypeSearch         = "Search"
	TypeSearchEvent    = "SearchEvent"
	TypeSearchSummary  = "SearchSummary"
)

// AiAnalysisMutation represents an operation that mutates the AiAnalysis nodes in the graph.
type AiAnalysisMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	summary                *string
	problem_clusters       *[]analyzer.ProblemCluster
	appendproblem_clusters []analyzer.ProblemCluster
	product_ideas          *[]analyzer.ProductIdea
	appendproduct_ideas    []analyzer.ProductIdea
	schema_version         *int
	addschema_version      *int
	model                  *string
	tokens_used            *int
	addtokens_used         *int
	created_at             *time.Time
	clearedFields          map[string]struct{}
	search                 *string
	clearedsearch          bool
	done                   bool
	oldValue               func(context.Context) (*AiAnalysis, error)
	predicates             []predicate.AiAnalysis
}

var _ ent.Mutation = (*AiAnalysisMutation)(nil)

// aianalysisOption allows management of the mutation configuration using functional options.
type aianalysisOption func(*AiAnalysisMutation)

// newAiAnalysisMutation creates new mutation for the AiAnalysis entity.
func newAiAnalysisMutation(c config, op Op, opts ...aianalysisOption) *AiAnalysisMutation {
	m := &AiAnalysisMutation{
		config:        c,
		op:            op,
		typ:           TypeAiAnalysis,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAiAnalysisID sets the ID field of the mutation.
func withAiAnalysisID(id int) aianalysisOption {
	return func(m *AiAnalysisMutation) {
		var (
			err   error
			once  sync.Once
			value *AiAnalysis
		)
		m.oldValue = func(ctx context.Context) (*AiAnalysis, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AiAnalysis.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAiAnalysis sets the old AiAnalysis of the mutation.
func withAiAnalysis(node *AiAnalysis) aianalysisOption {
	return func(m *AiAnalysisMutation) {
		m.oldValue = func(context.Context) (*AiAnalysis, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AiAnalysisMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AiAnalysisMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AiAnalysisMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AiAnalysisMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AiAnalysis.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSearchID sets the "search_id" field.
func (m *AiAnalysisMutation) SetSearchID(s string) {
	m.search = &s
}

// SearchID returns the value of the "search_id" field in the mutation.
func (m *AiAnalysisMutation) SearchID() (r string, exists bool) {
	v := m.search
	if v == nil {
		return
	}
	return *v, true
}

// OldSearchID returns the old "search_id" field's value of the AiAnalysis entity.
// If the AiAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AiAnalysisMutation) OldSearchID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSearchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSearchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSearchID: %w", err)
	}
	return oldValue.SearchID, nil
}

// ResetSearchID resets all changes to the "search_id" field.
func (m *AiAnalysisMutation) ResetSearchID() {
	m.search = nil
}

// SetSummary sets the "summary" field.
func (m *AiAnalysisMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *AiAnalysisMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the AiAnalysis entity.
// If the AiAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AiAnalysisMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ResetSummary resets all changes to the "summary" field.
func (m *AiAnalysisMutation) ResetSummary() {
	m.summary = nil
}

// SetProblemClusters sets the "problem_clusters" field.
func (m *AiAnalysisMutation) SetProblemClusters(ac []analyzer.ProblemCluster) {
	m.problem_clusters = &ac
	m.appendproblem_clusters = nil
}

// ProblemClusters returns the value of the "problem_clusters" field in the mutation.
func (m *AiAnalysisMutation) ProblemClusters() (r []analyzer.ProblemCluster, exists bool) {
	v := m.problem_clusters
	if v == nil {
		return
	}
	return *v, true
}

// OldProblemClusters returns the old "problem_clusters" field's value of the AiAnalysis entity.
// If the AiAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AiAnalysisMutation) OldProblemClusters(ctx context.Context) (v []analyzer.ProblemCluster, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProblemClusters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProblemClusters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProblemClusters: %w", err)
	}
	return oldValue.ProblemClusters, nil
}

// AppendProblemClusters adds ac to the "problem_clusters" field.
func (m *AiAnalysisMutation) AppendProblemClusters(ac []analyzer.ProblemCluster) {
	m.appendproblem_clusters = append(m.appendproblem_clusters, ac...)
}

// AppendedProblemClusters returns the list of values that were appended to the "problem_clusters" field in this mutation.
func (m *AiAnalysisMutation) AppendedProblemClusters() ([]analyzer.ProblemCluster, bool) {
	if len(m.appendproblem_clusters) == 0 {
		return nil, false
	}
	return m.appendproblem_clusters, true
}

// ResetProblemClusters resets all changes to the "problem_clusters" field.
func (m *AiAnalysisMutation) ResetProblemClusters() {
	m.problem_clusters = nil
	m.appendproblem_clusters = nil
}

// SetProductIdeas sets the "product_ideas" field.
func (m *AiAnalysisMutation) SetProductIdeas(ai []analyzer.ProductIdea) {
	m.product_ideas = &ai
	m.appendproduct_ideas = nil
}

// ProductIdeas returns the value of the "product_ideas" field in the mutation.
func (m *AiAnalysisMutation) ProductIdeas() (r []analyzer.ProductIdea, exists bool) {
	v := m.product_ideas
	if v == nil {
		return
	}
	return *v, true
}

// OldProductIdeas returns the old "product_ideas" field's value of the AiAnalysis entity.
// If the AiAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AiAnalysisMutation) OldProductIdeas(ctx context.Context) (v []analyzer.ProductIdea, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProductIdeas is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProductIdeas requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProductIdeas: %w", err)
	}
	return oldValue.ProductIdeas, nil
}

// AppendProductIdeas adds ai to the "product_ideas" field.
func (m *AiAnalysisMutation) AppendProductIdeas(ai []analyzer.ProductIdea) {
	m.appendproduct_ideas = append(m.appendproduct_ideas, ai...)
}

// AppendedProductIdeas returns the list of values that were appended to the "product_ideas" field in this mutation.
func (m *AiAnalysisMutation) AppendedProductIdeas() ([]analyzer.ProductIdea, bool) {
	if len(m.appendproduct_ideas) == 0 {
		return nil, false
	}
	return m.appendproduct_ideas, true
}

// ResetProductIdeas resets all changes to the "product_ideas" field.
func (m *AiAnalysisMutation) ResetProductIdeas() {
	m.product_ideas = nil
	m.appendproduct_ideas = nil
}

// SetSchemaVersion sets the "schema_version" field.
func (m *AiAnalysisMutation) SetSchemaVersion(i int) {
	m.schema_version = &i
	m.addschema_version = nil
}

// SchemaVersion returns the value of the "schema_version" field in the mutation.
func (m *AiAnalysisMutation) SchemaVersion() (r int, exists bool) {
	v := m.schema_version
	if v == nil {
		return
	}
	return *v, true
}

// OldSchemaVersion returns the old "schema_version" field's value of the AiAnalysis entity.
// If the AiAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AiAnalysisMutation) OldSchemaVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchemaVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchemaVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchemaVersion: %w", err)
	}
	return oldValue.SchemaVersion, nil
}

// AddSchemaVersion adds i to the "schema_version" field.
func (m *AiAnalysisMutation) AddSchemaVersion(i int) {
	if m.addschema_version != nil {
		*m.addschema_version += i
	} else {
		m.addschema_version = &i
	}
}

// AddedSchemaVersion returns the value that was added to the "schema_version" field in this mutation.
func (m *AiAnalysisMutation) AddedSchemaVersion() (r int, exists bool) {
	v := m.addschema_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetSchemaVersion resets all changes to the "schema_version" field.
func (m *AiAnalysisMutation) ResetSchemaVersion() {
	m.schema_version = nil
	m.addschema_version = nil
}

// SetModel sets the "model" field.
func (m *AiAnalysisMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *AiAnalysisMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the AiAnalysis entity.
// If the AiAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AiAnalysisMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *AiAnalysisMutation) ResetModel() {
	m.model = nil
}

// SetTokensUsed sets the "tokens_used" field.
func (m *AiAnalysisMutation) SetTokensUsed(i int) {
	m.tokens_used = &i
	m.addtokens_used = nil
}

// TokensUsed returns the value of the "tokens_used" field in the mutation.
func (m *AiAnalysisMutation) TokensUsed() (r int, exists bool) {
	v := m.tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensUsed returns the old "tokens_used" field's value of the AiAnalysis entity.
// If the AiAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AiAnalysisMutation) OldTokensUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensUsed: %w", err)
	}
	return oldValue.TokensUsed, nil
}

// AddTokensUsed adds i to the "tokens_used" field.
func (m *AiAnalysisMutation) AddTokensUsed(i int) {
	if m.addtokens_used != nil {
		*m.addtokens_used += i
	} else {
		m.addtokens_used = &i
	}
}

// AddedTokensUsed returns the value that was added to the "tokens_used" field in this mutation.
func (m *AiAnalysisMutation) AddedTokensUsed() (r int, exists bool) {
	v := m.addtokens_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensUsed resets all changes to the "tokens_used" field.
func (m *AiAnalysisMutation) ResetTokensUsed() {
	m.tokens_used = nil
	m.addtokens_used = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AiAnalysisMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AiAnalysisMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AiAnalysis entity.
// If the AiAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AiAnalysisMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AiAnalysisMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSearch clears the "search" edge to the Search entity.
func (m *AiAnalysisMutation) ClearSearch() {
	m.clearedsearch = true
	m.clearedFields[aianalysis.FieldSearchID] = struct{}{}
}

// SearchCleared reports if the "search" edge to the Search entity was cleared.
func (m *AiAnalysisMutation) SearchCleared() bool {
	return m.clearedsearch
}

// SearchIDs returns the "search" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SearchID instead. It exists only for internal usage by the builders.
func (m *AiAnalysisMutation) SearchIDs() (ids []string) {
	if id := m.search; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSearch resets all changes to the "search" edge.
func (m *AiAnalysisMutation) ResetSearch() {
	m.search = nil
	m.clearedsearch = false
}

// Where appends a list predicates to the AiAnalysisMutation builder.
func (m *AiAnalysisMutation) Where(ps ...predicate.AiAnalysis) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AiAnalysisMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AiAnalysisMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AiAnalysis, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AiAnalysisMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AiAnalysisMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AiAnalysis).
func (m *AiAnalysisMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AiAnalysisMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.search != nil {
		fields = append(fields, aianalysis.FieldSearchID)
	}
	if m.summary != nil {
		fields = append(fields, aianalysis.FieldSummary)
	}
	if m.problem_clusters != nil {
		fields = append(fields, aianalysis.FieldProblemClusters)
	}
	if m.product_ideas != nil {
		fields = append(fields, aianalysis.FieldProductIdeas)
	}
	if m.schema_version != nil {
		fields = append(fields, aianalysis.FieldSchemaVersion)
	}
	if m.model != nil {
		fields = append(fields, aianalysis.FieldModel)
	}
	if m.tokens_used != nil {
		fields = append(fields, aianalysis.FieldTokensUsed)
	}
	if m.created_at != nil {
		fields = append(fields, aianalysis.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AiAnalysisMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case aianalysis.FieldSearchID:
		return m.SearchID()
	case aianalysis.FieldSummary:
		return m.Summary()
	case aianalysis.FieldProblemClusters:
		return m.ProblemClusters()
	case aianalysis.FieldProductIdeas:
		return m.ProductIdeas()
	case aianalysis.FieldSchemaVersion:
		return m.SchemaVersion()
	case aianalysis.FieldModel:
		return m.Model()
	case aianalysis.FieldTokensUsed:
		return m.TokensUsed()
	case aianalysis.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AiAnalysisMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case aianalysis.FieldSearchID:
		return m.OldSearchID(ctx)
	case aianalysis.FieldSummary:
		return m.OldSummary(ctx)
	case aianalysis.FieldProblemClusters:
		return m.OldProblemClusters(ctx)
	case aianalysis.FieldProductIdeas:
		return m.OldProductIdeas(ctx)
	case aianalysis.FieldSchemaVersion:
		return m.OldSchemaVersion(ctx)
	case aianalysis.FieldModel:
		return m.OldModel(ctx)
	case aianalysis.FieldTokensUsed:
		return m.OldTokensUsed(ctx)
	case aianalysis.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AiAnalysis field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AiAnalysisMutation) SetField(name string, value ent.Value) error {
	switch name {
	case aianalysis.FieldSearchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSearchID(v)
		return nil
	case aianalysis.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case aianalysis.FieldProblemClusters:
		v, ok := value.([]analyzer.ProblemCluster)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProblemClusters(v)
		return nil
	case aianalysis.FieldProductIdeas:
		v, ok := value.([]analyzer.ProductIdea)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProductIdeas(v)
		return nil
	case aianalysis.FieldSchemaVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchemaVersion(v)
		return nil
	case aianalysis.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case aianalysis.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensUsed(v)
		return nil
	case aianalysis.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AiAnalysis field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AiAnalysisMutation) AddedFields() []string {
	var fields []string
	if m.addschema_version != nil {
		fields = append(fields, aianalysis.FieldSchemaVersion)
	}
	if m.addtokens_used != nil {
		fields = append(fields, aianalysis.FieldTokensUsed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AiAnalysisMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case aianalysis.FieldSchemaVersion:
		return m.AddedSchemaVersion()
	case aianalysis.FieldTokensUsed:
		return m.AddedTokensUsed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AiAnalysisMutation) AddField(name string, value ent.Value) error {
	switch name {
	case aianalysis.FieldSchemaVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSchemaVersion(v)
		return nil
	case aianalysis.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensUsed(v)
		return nil
	}
	return fmt.Errorf("unknown AiAnalysis numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AiAnalysisMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AiAnalysisMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AiAnalysisMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AiAnalysis nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AiAnalysisMutation) ResetField(name string) error {
	switch name {
	case aianalysis.FieldSearchID:
		m.ResetSearchID()
		return nil
	case aianalysis.FieldSummary:
		m.ResetSummary()
		return nil
	case aianalysis.FieldProblemClusters:
		m.ResetProblemClusters()
		return nil
	case aianalysis.FieldProductIdeas:
		m.ResetProductIdeas()
		return nil
	case aianalysis.FieldSchemaVersion:
		m.ResetSchemaVersion()
		return nil
	case aianalysis.FieldModel:
		m.ResetModel()
		return nil
	case aianalysis.FieldTokensUsed:
		m.ResetTokensUsed()
		return nil
	case aianalysis.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AiAnalysis field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AiAnalysisMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.search != nil {
		edges = append(edges, aianalysis.EdgeSearch)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AiAnalysisMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case aianalysis.EdgeSearch:
		if id := m.search; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AiAnalysisMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AiAnalysisMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AiAnalysisMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsearch {
		edges = append(edges, aianalysis.EdgeSearch)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AiAnalysisMutation) EdgeCleared(name string) bool {
	switch name {
	case aianalysis.EdgeSearch:
		return m.clearedsearch
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AiAnalysisMutation) ClearEdge(name string) error {
	switch name {
	case aianalysis.EdgeSearch:
		m.ClearSearch()
		return nil
	}
	return fmt.Errorf("unknown AiAnalysis unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AiAnalysisMutation) ResetEdge(name string) error {
	switch name {
	case aianalysis.EdgeSearch:
		m.ResetSearch()
		return nil
	}
	return fmt.Errorf("unknown AiAnalysis edge %s", name)
}

// ApiUsageMutation represents an operation that mutates the ApiUsage nodes in the graph.
type ApiUsageMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	service               *string
	tokens_used           *int
	addtokens_used        *int
	estimated_cost_usd    *float64
	addestimated_cost_usd *float64
	created_at            *time.Time
	clearedFields         map[string]struct{}
	search                *string
	clearedsearch         bool
	done                  bool
	oldValue              func(context.Context) (*ApiUsage, error)
	predicates            []predicate.ApiUsage
}

var _ ent.Mutation = (*ApiUsageMutation)(nil)

// apiusageOption allows management of the mutation configuration using functional options.
type apiusageOption func(*ApiUsageMutation)

// newApiUsageMutation creates new mutation for the ApiUsage entity.
func newApiUsageMutation(c config, op Op, opts ...apiusageOption) *ApiUsageMutation {
	m := &ApiUsageMutation{
		config:        c,
		op:            op,
		typ:           TypeApiUsage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApiUsageID sets the ID field of the mutation.
func withApiUsageID(id int) apiusageOption {
	return func(m *ApiUsageMutation) {
		var (
			err   error
			once  sync.Once
			value *ApiUsage
		)
		m.oldValue = func(ctx context.Context) (*ApiUsage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ApiUsage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApiUsage sets the old ApiUsage of the mutation.
func withApiUsage(node *ApiUsage) apiusageOption {
	return func(m *ApiUsageMutation) {
		m.oldValue = func(context.Context) (*ApiUsage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApiUsageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApiUsageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApiUsageMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApiUsageMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ApiUsage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSearchID sets the "search_id" field.
func (m *ApiUsageMutation) SetSearchID(s string) {
	m.search = &s
}

// SearchID returns the value of the "search_id" field in the mutation.
func (m *ApiUsageMutation) SearchID() (r string, exists bool) {
	v := m.search
	if v == nil {
		return
	}
	return *v, true
}

// OldSearchID returns the old "search_id" field's value of the ApiUsage entity.
// If the ApiUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiUsageMutation) OldSearchID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSearchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSearchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSearchID: %w", err)
	}
	return oldValue.SearchID, nil
}

// ResetSearchID resets all changes to the "search_id" field.
func (m *ApiUsageMutation) ResetSearchID() {
	m.search = nil
}

// SetService sets the "service" field.
func (m *ApiUsageMutation) SetService(s string) {
	m.service = &s
}

// Service returns the value of the "service" field in the mutation.
func (m *ApiUsageMutation) Service() (r string, exists bool) {
	v := m.service
	if v == nil {
		return
	}
	return *v, true
}

// OldService returns the old "service" field's value of the ApiUsage entity.
// If the ApiUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiUsageMutation) OldService(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldService is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldService requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldService: %w", err)
	}
	return oldValue.Service, nil
}

// ResetService resets all changes to the "service" field.
func (m *ApiUsageMutation) ResetService() {
	m.service = nil
}

// SetTokensUsed sets the "tokens_used" field.
func (m *ApiUsageMutation) SetTokensUsed(i int) {
	m.tokens_used = &i
	m.addtokens_used = nil
}

// TokensUsed returns the value of the "tokens_used" field in the mutation.
func (m *ApiUsageMutation) TokensUsed() (r int, exists bool) {
	v := m.tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensUsed returns the old "tokens_used" field's value of the ApiUsage entity.
// If the ApiUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiUsageMutation) OldTokensUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensUsed: %w", err)
	}
	return oldValue.TokensUsed, nil
}

// AddTokensUsed adds i to the "tokens_used" field.
func (m *ApiUsageMutation) AddTokensUsed(i int) {
	if m.addtokens_used != nil {
		*m.addtokens_used += i
	} else {
		m.addtokens_used = &i
	}
}

// AddedTokensUsed returns the value that was added to the "tokens_used" field in this mutation.
func (m *ApiUsageMutation) AddedTokensUsed() (r int, exists bool) {
	v := m.addtokens_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensUsed resets all changes to the "tokens_used" field.
func (m *ApiUsageMutation) ResetTokensUsed() {
	m.tokens_used = nil
	m.addtokens_used = nil
}

// SetEstimatedCostUsd sets the "estimated_cost_usd" field.
func (m *ApiUsageMutation) SetEstimatedCostUsd(f float64) {
	m.estimated_cost_usd = &f
	m.addestimated_cost_usd = nil
}

// EstimatedCostUsd returns the value of the "estimated_cost_usd" field in the mutation.
func (m *ApiUsageMutation) EstimatedCostUsd() (r float64, exists bool) {
	v := m.estimated_cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedCostUsd returns the old "estimated_cost_usd" field's value of the ApiUsage entity.
// If the ApiUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiUsageMutation) OldEstimatedCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedCostUsd: %w", err)
	}
	return oldValue.EstimatedCostUsd, nil
}

// AddEstimatedCostUsd adds f to the "estimated_cost_usd" field.
func (m *ApiUsageMutation) AddEstimatedCostUsd(f float64) {
	if m.addestimated_cost_usd != nil {
		*m.addestimated_cost_usd += f
	} else {
		m.addestimated_cost_usd = &f
	}
}

// AddedEstimatedCostUsd returns the value that was added to the "estimated_cost_usd" field in this mutation.
func (m *ApiUsageMutation) AddedEstimatedCostUsd() (r float64, exists bool) {
	v := m.addestimated_cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetEstimatedCostUsd resets all changes to the "estimated_cost_usd" field.
func (m *ApiUsageMutation) ResetEstimatedCostUsd() {
	m.estimated_cost_usd = nil
	m.addestimated_cost_usd = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ApiUsageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ApiUsageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ApiUsage entity.
// If the ApiUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiUsageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ApiUsageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSearch clears the "search" edge to the Search entity.
func (m *ApiUsageMutation) ClearSearch() {
	m.clearedsearch = true
	m.clearedFields[apiusage.FieldSearchID] = struct{}{}
}

// SearchCleared reports if the "search" edge to the Search entity was cleared.
func (m *ApiUsageMutation) SearchCleared() bool {
	return m.clearedsearch
}

// SearchIDs returns the "search" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SearchID instead. It exists only for internal usage by the builders.
func (m *ApiUsageMutation) SearchIDs() (ids []string) {
	if id := m.search; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSearch resets all changes to the "search" edge.
func (m *ApiUsageMutation) ResetSearch() {
	m.search = nil
	m.clearedsearch = false
}

// Where appends a list predicates to the ApiUsageMutation builder.
func (m *ApiUsageMutation) Where(ps ...predicate.ApiUsage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApiUsageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApiUsageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ApiUsage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApiUsageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApiUsageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ApiUsage).
func (m *ApiUsageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApiUsageMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.search != nil {
		fields = append(fields, apiusage.FieldSearchID)
	}
	if m.service != nil {
		fields = append(fields, apiusage.FieldService)
	}
	if m.tokens_used != nil {
		fields = append(fields, apiusage.FieldTokensUsed)
	}
	if m.estimated_cost_usd != nil {
		fields = append(fields, apiusage.FieldEstimatedCostUsd)
	}
	if m.created_at != nil {
		fields = append(fields, apiusage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApiUsageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case apiusage.FieldSearchID:
		return m.SearchID()
	case apiusage.FieldService:
		return m.Service()
	case apiusage.FieldTokensUsed:
		return m.TokensUsed()
	case apiusage.FieldEstimatedCostUsd:
		return m.EstimatedCostUsd()
	case apiusage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApiUsageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case apiusage.FieldSearchID:
		return m.OldSearchID(ctx)
	case apiusage.FieldService:
		return m.OldService(ctx)
	case apiusage.FieldTokensUsed:
		return m.OldTokensUsed(ctx)
	case apiusage.FieldEstimatedCostUsd:
		return m.OldEstimatedCostUsd(ctx)
	case apiusage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ApiUsage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApiUsageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case apiusage.FieldSearchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSearchID(v)
		return nil
	case apiusage.FieldService:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetService(v)
		return nil
	case apiusage.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensUsed(v)
		return nil
	case apiusage.FieldEstimatedCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedCostUsd(v)
		return nil
	case apiusage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ApiUsage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApiUsageMutation) AddedFields() []string {
	var fields []string
	if m.addtokens_used != nil {
		fields = append(fields, apiusage.FieldTokensUsed)
	}
	if m.addestimated_cost_usd != nil {
		fields = append(fields, apiusage.FieldEstimatedCostUsd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApiUsageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case apiusage.FieldTokensUsed:
		return m.AddedTokensUsed()
	case apiusage.FieldEstimatedCostUsd:
		return m.AddedEstimatedCostUsd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApiUsageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case apiusage.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensUsed(v)
		return nil
	case apiusage.FieldEstimatedCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedCostUsd(v)
		return nil
	}
	return fmt.Errorf("unknown ApiUsage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApiUsageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApiUsageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApiUsageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ApiUsage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApiUsageMutation) ResetField(name string) error {
	switch name {
	case apiusage.FieldSearchID:
		m.ResetSearchID()
		return nil
	case apiusage.FieldService:
		m.ResetService()
		return nil
	case apiusage.FieldTokensUsed:
		m.ResetTokensUsed()
		return nil
	case apiusage.FieldEstimatedCostUsd:
		m.ResetEstimatedCostUsd()
		return nil
	case apiusage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ApiUsage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApiUsageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.search != nil {
		edges = append(edges, apiusage.EdgeSearch)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApiUsageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case apiusage.EdgeSearch:
		if id := m.search; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApiUsageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApiUsageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApiUsageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsearch {
		edges = append(edges, apiusage.EdgeSearch)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApiUsageMutation) EdgeCleared(name string) bool {
	switch name {
	case apiusage.EdgeSearch:
		return m.clearedsearch
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApiUsageMutation) ClearEdge(name string) error {
	switch name {
	case apiusage.EdgeSearch:
		m.ClearSearch()
		return nil
	}
	return fmt.Errorf("unknown ApiUsage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApiUsageMutation) ResetEdge(name string) error {
	switch name {
	case apiusage.EdgeSearch:
		m.ResetSearch()
		return nil
	}
	return fmt.Errorf("unknown ApiUsage edge %s", name)
}

// JobLogMutation represents an operation that mutates the JobLog nodes in the graph.
type JobLogMutation struct {
	config
	op            Op
	typ           string
	id            *int
	search_id     *string
	level         *joblog.Level
	message       *string
	context       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*JobLog, error)
	predicates    []predicate.JobLog
}

var _ ent.Mutation = (*JobLogMutation)(nil)

// joblogOption allows management of the mutation configuration using functional options.
type joblogOption func(*JobLogMutation)

// newJobLogMutation creates new mutation for the JobLog entity.
func newJobLogMutation(c config, op Op, opts ...joblogOption) *JobLogMutation {
	m := &JobLogMutation{
		config:        c,
		op:            op,
		typ:           TypeJobLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobLogID sets the ID field of the mutation.
func withJobLogID(id int) joblogOption {
	return func(m *JobLogMutation) {
		var (
			err   error
			once  sync.Once
			value *JobLog
		)
		m.oldValue = func(ctx context.Context) (*JobLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().JobLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJobLog sets the old JobLog of the mutation.
func withJobLog(node *JobLog) joblogOption {
	return func(m *JobLogMutation) {
		m.oldValue = func(context.Context) (*JobLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().JobLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSearchID sets the "search_id" field.
func (m *JobLogMutation) SetSearchID(s string) {
	m.search_id = &s
}

// SearchID returns the value of the "search_id" field in the mutation.
func (m *JobLogMutation) SearchID() (r string, exists bool) {
	v := m.search_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSearchID returns the old "search_id" field's value of the JobLog entity.
// If the JobLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobLogMutation) OldSearchID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSearchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSearchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSearchID: %w", err)
	}
	return oldValue.SearchID, nil
}

// ClearSearchID clears the value of the "search_id" field.
func (m *JobLogMutation) ClearSearchID() {
	m.search_id = nil
	m.clearedFields[joblog.FieldSearchID] = struct{}{}
}

// SearchIDCleared returns if the "search_id" field was cleared in this mutation.
func (m *JobLogMutation) SearchIDCleared() bool {
	_, ok := m.clearedFields[joblog.FieldSearchID]
	return ok
}

// ResetSearchID resets all changes to the "search_id" field.
func (m *JobLogMutation) ResetSearchID() {
	m.search_id = nil
	delete(m.clearedFields, joblog.FieldSearchID)
}

// SetLevel sets the "level" field.
func (m *JobLogMutation) SetLevel(j joblog.Level) {
	m.level = &j
}

// Level returns the value of the "level" field in the mutation.
func (m *JobLogMutation) Level() (r joblog.Level, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the JobLog entity.
// If the JobLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobLogMutation) OldLevel(ctx context.Context) (v joblog.Level, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *JobLogMutation) ResetLevel() {
	m.level = nil
}

// SetMessage sets the "message" field.
func (m *JobLogMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *JobLogMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the JobLog entity.
// If the JobLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobLogMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *JobLogMutation) ResetMessage() {
	m.message = nil
}

// SetContext sets the "context" field.
func (m *JobLogMutation) SetContext(value map[string]interface{}) {
	m.context = &value
}

// Context returns the value of the "context" field in the mutation.
func (m *JobLogMutation) Context() (r map[string]interface{}, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the JobLog entity.
// If the JobLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobLogMutation) OldContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *JobLogMutation) ClearContext() {
	m.context = nil
	m.clearedFields[joblog.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *JobLogMutation) ContextCleared() bool {
	_, ok := m.clearedFields[joblog.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *JobLogMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, joblog.FieldContext)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the JobLog entity.
// If the JobLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the JobLogMutation builder.
func (m *JobLogMutation) Where(ps ...predicate.JobLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.JobLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (JobLog).
func (m *JobLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobLogMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.search_id != nil {
		fields = append(fields, joblog.FieldSearchID)
	}
	if m.level != nil {
		fields = append(fields, joblog.FieldLevel)
	}
	if m.message != nil {
		fields = append(fields, joblog.FieldMessage)
	}
	if m.context != nil {
		fields = append(fields, joblog.FieldContext)
	}
	if m.created_at != nil {
		fields = append(fields, joblog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case joblog.FieldSearchID:
		return m.SearchID()
	case joblog.FieldLevel:
		return m.Level()
	case joblog.FieldMessage:
		return m.Message()
	case joblog.FieldContext:
		return m.Context()
	case joblog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case joblog.FieldSearchID:
		return m.OldSearchID(ctx)
	case joblog.FieldLevel:
		return m.OldLevel(ctx)
	case joblog.FieldMessage:
		return m.OldMessage(ctx)
	case joblog.FieldContext:
		return m.OldContext(ctx)
	case joblog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown JobLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case joblog.FieldSearchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSearchID(v)
		return nil
	case joblog.FieldLevel:
		v, ok := value.(joblog.Level)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case joblog.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case joblog.FieldContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case joblog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown JobLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown JobLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(joblog.FieldSearchID) {
		fields = append(fields, joblog.FieldSearchID)
	}
	if m.FieldCleared(joblog.FieldContext) {
		fields = append(fields, joblog.FieldContext)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobLogMutation) ClearField(name string) error {
	switch name {
	case joblog.FieldSearchID:
		m.ClearSearchID()
		return nil
	case joblog.FieldContext:
		m.ClearContext()
		return nil
	}
	return fmt.Errorf("unknown JobLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobLogMutation) ResetField(name string) error {
	switch name {
	case joblog.FieldSearchID:
		m.ResetSearchID()
		return nil
	case joblog.FieldLevel:
		m.ResetLevel()
		return nil
	case joblog.FieldMessage:
		m.ResetMessage()
		return nil
	case joblog.FieldContext:
		m.ResetContext()
		return nil
	case joblog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown JobLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown JobLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown JobLog edge %s", name)
}

// PainPointMutation represents an operation that mutates the PainPoint nodes in the graph.
type PainPointMutation struct {
	config
	op                Op
	typ               string
	id                *string
	title             *string
	source_tag        *string
	mentions_count    *int
	addmentions_count *int
	severity_score    *float64
	addseverity_score *float64
	created_at        *time.Time
	clearedFields     map[string]struct{}
	search            *string
	clearedsearch     bool
	quotes            map[string]struct{}
	removedquotes     map[string]struct{}
	clearedquotes     bool
	done              bool
	oldValue          func(context.Context) (*PainPoint, error)
	predicates        []predicate.PainPoint
}

var _ ent.Mutation = (*PainPointMutation)(nil)

// painpointOption allows management of the mutation configuration using functional options.
type painpointOption func(*PainPointMutation)

// newPainPointMutation creates new mutation for the PainPoint entity.
func newPainPointMutation(c config, op Op, opts ...painpointOption) *PainPointMutation {
	m := &PainPointMutation{
		config:        c,
		op:            op,
		typ:           TypePainPoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPainPointID sets the ID field of the mutation.
func withPainPointID(id string) painpointOption {
	return func(m *PainPointMutation) {
		var (
			err   error
			once  sync.Once
			value *PainPoint
		)
		m.oldValue = func(ctx context.Context) (*PainPoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PainPoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPainPoint sets the old PainPoint of the mutation.
func withPainPoint(node *PainPoint) painpointOption {
	return func(m *PainPointMutation) {
		m.oldValue = func(context.Context) (*PainPoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PainPointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PainPointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PainPoint entities.
func (m *PainPointMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PainPointMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PainPointMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PainPoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSearchID sets the "search_id" field.
func (m *PainPointMutation) SetSearchID(s string) {
	m.search = &s
}

// SearchID returns the value of the "search_id" field in the mutation.
func (m *PainPointMutation) SearchID() (r string, exists bool) {
	v := m.search
	if v == nil {
		return
	}
	return *v, true
}

// OldSearchID returns the old "search_id" field's value of the PainPoint entity.
// If the PainPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PainPointMutation) OldSearchID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSearchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSearchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSearchID: %w", err)
	}
	return oldValue.SearchID, nil
}

// ResetSearchID resets all changes to the "search_id" field.
func (m *PainPointMutation) ResetSearchID() {
	m.search = nil
}

// SetTitle sets the "title" field.
func (m *PainPointMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *PainPointMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the PainPoint entity.
// If the PainPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PainPointMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *PainPointMutation) ResetTitle() {
	m.title = nil
}

// SetSourceTag sets the "source_tag" field.
func (m *PainPointMutation) SetSourceTag(s string) {
	m.source_tag = &s
}

// SourceTag returns the value of the "source_tag" field in the mutation.
func (m *PainPointMutation) SourceTag() (r string, exists bool) {
	v := m.source_tag
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceTag returns the old "source_tag" field's value of the PainPoint entity.
// If the PainPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PainPointMutation) OldSourceTag(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceTag is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceTag requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceTag: %w", err)
	}
	return oldValue.SourceTag, nil
}

// ResetSourceTag resets all changes to the "source_tag" field.
func (m *PainPointMutation) ResetSourceTag() {
	m.source_tag = nil
}

// SetMentionsCount sets the "mentions_count" field.
func (m *PainPointMutation) SetMentionsCount(i int) {
	m.mentions_count = &i
	m.addmentions_count = nil
}

// MentionsCount returns the value of the "mentions_count" field in the mutation.
func (m *PainPointMutation) MentionsCount() (r int, exists bool) {
	v := m.mentions_count
	if v == nil {
		return
	}
	return *v, true
}

// OldMentionsCount returns the old "mentions_count" field's value of the PainPoint entity.
// If the PainPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PainPointMutation) OldMentionsCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMentionsCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMentionsCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMentionsCount: %w", err)
	}
	return oldValue.MentionsCount, nil
}

// AddMentionsCount adds i to the "mentions_count" field.
func (m *PainPointMutation) AddMentionsCount(i int) {
	if m.addmentions_count != nil {
		*m.addmentions_count += i
	} else {
		m.addmentions_count = &i
	}
}

// AddedMentionsCount returns the value that was added to the "mentions_count" field in this mutation.
func (m *PainPointMutation) AddedMentionsCount() (r int, exists bool) {
	v := m.addmentions_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetMentionsCount resets all changes to the "mentions_count" field.
func (m *PainPointMutation) ResetMentionsCount() {
	m.mentions_count = nil
	m.addmentions_count = nil
}

// SetSeverityScore sets the "severity_score" field.
func (m *PainPointMutation) SetSeverityScore(f float64) {
	m.severity_score = &f
	m.addseverity_score = nil
}

// SeverityScore returns the value of the "severity_score" field in the mutation.
func (m *PainPointMutation) SeverityScore() (r float64, exists bool) {
	v := m.severity_score
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverityScore returns the old "severity_score" field's value of the PainPoint entity.
// If the PainPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PainPointMutation) OldSeverityScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverityScore: %w", err)
	}
	return oldValue.SeverityScore, nil
}

// AddSeverityScore adds f to the "severity_score" field.
func (m *PainPointMutation) AddSeverityScore(f float64) {
	if m.addseverity_score != nil {
		*m.addseverity_score += f
	} else {
		m.addseverity_score = &f
	}
}

// AddedSeverityScore returns the value that was added to the "severity_score" field in this mutation.
func (m *PainPointMutation) AddedSeverityScore() (r float64, exists bool) {
	v := m.addseverity_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearSeverityScore clears the value of the "severity_score" field.
func (m *PainPointMutation) ClearSeverityScore() {
	m.severity_score = nil
	m.addseverity_score = nil
	m.clearedFields[painpoint.FieldSeverityScore] = struct{}{}
}

// SeverityScoreCleared returns if the "severity_score" field was cleared in this mutation.
func (m *PainPointMutation) SeverityScoreCleared() bool {
	_, ok := m.clearedFields[painpoint.FieldSeverityScore]
	return ok
}

// ResetSeverityScore resets all changes to the "severity_score" field.
func (m *PainPointMutation) ResetSeverityScore() {
	m.severity_score = nil
	m.addseverity_score = nil
	delete(m.clearedFields, painpoint.FieldSeverityScore)
}

// SetCreatedAt sets the "created_at" field.
func (m *PainPointMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PainPointMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PainPoint entity.
// If the PainPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PainPointMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PainPointMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSearch clears the "search" edge to the Search entity.
func (m *PainPointMutation) ClearSearch() {
	m.clearedsearch = true
	m.clearedFields[painpoint.FieldSearchID] = struct{}{}
}

// SearchCleared reports if the "search" edge to the Search entity was cleared.
func (m *PainPointMutation) SearchCleared() bool {
	return m.clearedsearch
}

// SearchIDs returns the "search" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SearchID instead. It exists only for internal usage by the builders.
func (m *PainPointMutation) SearchIDs() (ids []string) {
	if id := m.search; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSearch resets all changes to the "search" edge.
func (m *PainPointMutation) ResetSearch() {
	m.search = nil
	m.clearedsearch = false
}

// AddQuoteIDs adds the "quotes" edge to the PainPointQuote entity by ids.
func (m *PainPointMutation) AddQuoteIDs(ids ...string) {
	if m.quotes == nil {
		m.quotes = make(map[string]struct{})
	}
	for i := range ids {
		m.quotes[ids[i]] = struct{}{}
	}
}

// ClearQuotes clears the "quotes" edge to the PainPointQuote entity.
func (m *PainPointMutation) ClearQuotes() {
	m.clearedquotes = true
}

// QuotesCleared reports if the "quotes" edge to the PainPointQuote entity was cleared.
func (m *PainPointMutation) QuotesCleared() bool {
	return m.clearedquotes
}

// RemoveQuoteIDs removes the "quotes" edge to the PainPointQuote entity by IDs.
func (m *PainPointMutation) RemoveQuoteIDs(ids ...string) {
	if m.removedquotes == nil {
		m.removedquotes = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.quotes, ids[i])
		m.removedquotes[ids[i]] = struct{}{}
	}
}

// RemovedQuotes returns the removed IDs of the "quotes" edge to the PainPointQuote entity.
func (m *PainPointMutation) RemovedQuotesIDs() (ids []string) {
	for id := range m.removedquotes {
		ids = append(ids, id)
	}
	return
}

// QuotesIDs returns the "quotes" edge IDs in the mutation.
func (m *PainPointMutation) QuotesIDs() (ids []string) {
	for id := range m.quotes {
		ids = append(ids, id)
	}
	return
}

// ResetQuotes resets all changes to the "quotes" edge.
func (m *PainPointMutation) ResetQuotes() {
	m.quotes = nil
	m.clearedquotes = false
	m.removedquotes = nil
}

// Where appends a list predicates to the PainPointMutation builder.
func (m *PainPointMutation) Where(ps ...predicate.PainPoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PainPointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PainPointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PainPoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PainPointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PainPointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PainPoint).
func (m *PainPointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PainPointMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.search != nil {
		fields = append(fields, painpoint.FieldSearchID)
	}
	if m.title != nil {
		fields = append(fields, painpoint.FieldTitle)
	}
	if m.source_tag != nil {
		fields = append(fields, painpoint.FieldSourceTag)
	}
	if m.mentions_count != nil {
		fields = append(fields, painpoint.FieldMentionsCount)
	}
	if m.severity_score != nil {
		fields = append(fields, painpoint.FieldSeverityScore)
	}
	if m.created_at != nil {
		fields = append(fields, painpoint.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PainPointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case painpoint.FieldSearchID:
		return m.SearchID()
	case painpoint.FieldTitle:
		return m.Title()
	case painpoint.FieldSourceTag:
		return m.SourceTag()
	case painpoint.FieldMentionsCount:
		return m.MentionsCount()
	case painpoint.FieldSeverityScore:
		return m.SeverityScore()
	case painpoint.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PainPointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case painpoint.FieldSearchID:
		return m.OldSearchID(ctx)
	case painpoint.FieldTitle:
		return m.OldTitle(ctx)
	case painpoint.FieldSourceTag:
		return m.OldSourceTag(ctx)
	case painpoint.FieldMentionsCount:
		return m.OldMentionsCount(ctx)
	case painpoint.FieldSeverityScore:
		return m.OldSeverityScore(ctx)
	case painpoint.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PainPoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PainPointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case painpoint.FieldSearchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSearchID(v)
		return nil
	case painpoint.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case painpoint.FieldSourceTag:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceTag(v)
		return nil
	case painpoint.FieldMentionsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMentionsCount(v)
		return nil
	case painpoint.FieldSeverityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverityScore(v)
		return nil
	case painpoint.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PainPoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PainPointMutation) AddedFields() []string {
	var fields []string
	if m.addmentions_count != nil {
		fields = append(fields, painpoint.FieldMentionsCount)
	}
	if m.addseverity_score != nil {
		fields = append(fields, painpoint.FieldSeverityScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PainPointMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case painpoint.FieldMentionsCount:
		return m.AddedMentionsCount()
	case painpoint.FieldSeverityScore:
		return m.AddedSeverityScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PainPointMutation) AddField(name string, value ent.Value) error {
	switch name {
	case painpoint.FieldMentionsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMentionsCount(v)
		return nil
	case painpoint.FieldSeverityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeverityScore(v)
		return nil
	}
	return fmt.Errorf("unknown PainPoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PainPointMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(painpoint.FieldSeverityScore) {
		fields = append(fields, painpoint.FieldSeverityScore)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PainPointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PainPointMutation) ClearField(name string) error {
	switch name {
	case painpoint.FieldSeverityScore:
		m.ClearSeverityScore()
		return nil
	}
	return fmt.Errorf("unknown PainPoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PainPointMutation) ResetField(name string) error {
	switch name {
	case painpoint.FieldSearchID:
		m.ResetSearchID()
		return nil
	case painpoint.FieldTitle:
		m.ResetTitle()
		return nil
	case painpoint.FieldSourceTag:
		m.ResetSourceTag()
		return nil
	case painpoint.FieldMentionsCount:
		m.ResetMentionsCount()
		return nil
	case painpoint.FieldSeverityScore:
		m.ResetSeverityScore()
		return nil
	case painpoint.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PainPoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PainPointMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.search != nil {
		edges = append(edges, painpoint.EdgeSearch)
	}
	if m.quotes != nil {
		edges = append(edges, painpoint.EdgeQuotes)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PainPointMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case painpoint.EdgeSearch:
		if id := m.search; id != nil {
			return []ent.Value{*id}
		}
	case painpoint.EdgeQuotes:
		ids := make([]ent.Value, 0, len(m.quotes))
		for id := range m.quotes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PainPointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedquotes != nil {
		edges = append(edges, painpoint.EdgeQuotes)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PainPointMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case painpoint.EdgeQuotes:
		ids := make([]ent.Value, 0, len(m.removedquotes))
		for id := range m.removedquotes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PainPointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsearch {
		edges = append(edges, painpoint.EdgeSearch)
	}
	if m.clearedquotes {
		edges = append(edges, painpoint.EdgeQuotes)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PainPointMutation) EdgeCleared(name string) bool {
	switch name {
	case painpoint.EdgeSearch:
		return m.clearedsearch
	case painpoint.EdgeQuotes:
		return m.clearedquotes
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PainPointMutation) ClearEdge(name string) error {
	switch name {
	case painpoint.EdgeSearch:
		m.ClearSearch()
		return nil
	}
	return fmt.Errorf("unknown PainPoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PainPointMutation) ResetEdge(name string) error {
	switch name {
	case painpoint.EdgeSearch:
		m.ResetSearch()
		return nil
	case painpoint.EdgeQuotes:
		m.ResetQuotes()
		return nil
	}
	return fmt.Errorf("unknown PainPoint edge %s", name)
}

// PainPointQuoteMutation represents an operation that mutates the PainPointQuote nodes in the graph.
type PainPointQuoteMutation struct {
	config
	op                Op
	typ               string
	id                *string
	quote_text        *string
	author_handle     *string
	upvotes           *int
	addupvotes        *int
	permalink         *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	pain_point        *string
	clearedpain_point bool
	done              bool
	oldValue          func(context.Context) (*PainPointQuote, error)
	predicates        []predicate.PainPointQuote
}

var _ ent.Mutation = (*PainPointQuoteMutation)(nil)

// painpointquoteOption allows management of the mutation configuration using functional options.
type painpointquoteOption func(*PainPointQuoteMutation)

// newPainPointQuoteMutation creates new mutation for the PainPointQuote entity.
func newPainPointQuoteMutation(c config, op Op, opts ...painpointquoteOption) *PainPointQuoteMutation {
	m := &PainPointQuoteMutation{
		config:        c,
		op:            op,
		typ:           TypePainPointQuote,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPainPointQuoteID sets the ID field of the mutation.
func withPainPointQuoteID(id string) painpointquoteOption {
	return func(m *PainPointQuoteMutation) {
		var (
			err   error
			once  sync.Once
			value *PainPointQuote
		)
		m.oldValue = func(ctx context.Context) (*PainPointQuote, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PainPointQuote.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPainPointQuote sets the old PainPointQuote of the mutation.
func withPainPointQuote(node *PainPointQuote) painpointquoteOption {
	return func(m *PainPointQuoteMutation) {
		m.oldValue = func(context.Context) (*PainPointQuote, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PainPointQuoteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PainPointQuoteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PainPointQuote entities.
func (m *PainPointQuoteMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PainPointQuoteMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PainPointQuoteMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PainPointQuote.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPainPointID sets the "pain_point_id" field.
func (m *PainPointQuoteMutation) SetPainPointID(s string) {
	m.pain_point = &s
}

// PainPointID returns the value of the "pain_point_id" field in the mutation.
func (m *PainPointQuoteMutation) PainPointID() (r string, exists bool) {
	v := m.pain_point
	if v == nil {
		return
	}
	return *v, true
}

// OldPainPointID returns the old "pain_point_id" field's value of the PainPointQuote entity.
// If the PainPointQuote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PainPointQuoteMutation) OldPainPointID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPainPointID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPainPointID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPainPointID: %w", err)
	}
	return oldValue.PainPointID, nil
}

// ResetPainPointID resets all changes to the "pain_point_id" field.
func (m *PainPointQuoteMutation) ResetPainPointID() {
	m.pain_point = nil
}

// SetQuoteText sets the "quote_text" field.
func (m *PainPointQuoteMutation) SetQuoteText(s string) {
	m.quote_text = &s
}

// QuoteText returns the value of the "quote_text" field in the mutation.
func (m *PainPointQuoteMutation) QuoteText() (r string, exists bool) {
	v := m.quote_text
	if v == nil {
		return
	}
	return *v, true
}

// OldQuoteText returns the old "quote_text" field's value of the PainPointQuote entity.
// If the PainPointQuote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PainPointQuoteMutation) OldQuoteText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuoteText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuoteText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuoteText: %w", err)
	}
	return oldValue.QuoteText, nil
}

// ResetQuoteText resets all changes to the "quote_text" field.
func (m *PainPointQuoteMutation) ResetQuoteText() {
	m.quote_text = nil
}

// SetAuthorHandle sets the "author_handle" field.
func (m *PainPointQuoteMutation) SetAuthorHandle(s string) {
	m.author_handle = &s
}

// AuthorHandle returns the value of the "author_handle" field in the mutation.
func (m *PainPointQuoteMutation) AuthorHandle() (r string, exists bool) {
	v := m.author_handle
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthorHandle returns the old "author_handle" field's value of the PainPointQuote entity.
// If the PainPointQuote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PainPointQuoteMutation) OldAuthorHandle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthorHandle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthorHandle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthorHandle: %w", err)
	}
	return oldValue.AuthorHandle, nil
}

// ClearAuthorHandle clears the value of the "author_handle" field.
func (m *PainPointQuoteMutation) ClearAuthorHandle() {
	m.author_handle = nil
	m.clearedFields[painpointquote.FieldAuthorHandle] = struct{}{}
}

// AuthorHandleCleared returns if the "author_handle" field was cleared in this mutation.
func (m *PainPointQuoteMutation) AuthorHandleCleared() bool {
	_, ok := m.clearedFields[painpointquote.FieldAuthorHandle]
	return ok
}

// ResetAuthorHandle resets all changes to the "author_handle" field.
func (m *PainPointQuoteMutation) ResetAuthorHandle() {
	m.author_handle = nil
	delete(m.clearedFields, painpointquote.FieldAuthorHandle)
}

// SetUpvotes sets the "upvotes" field.
func (m *PainPointQuoteMutation) SetUpvotes(i int) {
	m.upvotes = &i
	m.addupvotes = nil
}

// Upvotes returns the value of the "upvotes" field in the mutation.
func (m *PainPointQuoteMutation) Upvotes() (r int, exists bool) {
	v := m.upvotes
	if v == nil {
		return
	}
	return *v, true
}

// OldUpvotes returns the old "upvotes" field's value of the PainPointQuote entity.
// If the PainPointQuote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PainPointQuoteMutation) OldUpvotes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpvotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpvotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpvotes: %w", err)
	}
	return oldValue.Upvotes, nil
}

// AddUpvotes adds i to the "upvotes" field.
func (m *PainPointQuoteMutation) AddUpvotes(i int) {
	if m.addupvotes != nil {
		*m.addupvotes += i
	} else {
		m.addupvotes = &i
	}
}

// AddedUpvotes returns the value that was added to the "upvotes" field in this mutation.
func (m *PainPointQuoteMutation) AddedUpvotes() (r int, exists bool) {
	v := m.addupvotes
	if v == nil {
		return
	}
	return *v, true
}

// ResetUpvotes resets all changes to the "upvotes" field.
func (m *PainPointQuoteMutation) ResetUpvotes() {
	m.upvotes = nil
	m.addupvotes = nil
}

// SetPermalink sets the "permalink" field.
func (m *PainPointQuoteMutation) SetPermalink(s string) {
	m.permalink = &s
}

// Permalink returns the value of the "permalink" field in the mutation.
func (m *PainPointQuoteMutation) Permalink() (r string, exists bool) {
	v := m.permalink
	if v == nil {
		return
	}
	return *v, true
}

// OldPermalink returns the old "permalink" field's value of the PainPointQuote entity.
// If the PainPointQuote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PainPointQuoteMutation) OldPermalink(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPermalink is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPermalink requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPermalink: %w", err)
	}
	return oldValue.Permalink, nil
}

// ResetPermalink resets all changes to the "permalink" field.
func (m *PainPointQuoteMutation) ResetPermalink() {
	m.permalink = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PainPointQuoteMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PainPointQuoteMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PainPointQuote entity.
// If the PainPointQuote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PainPointQuoteMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PainPointQuoteMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearPainPoint clears the "pain_point" edge to the PainPoint entity.
func (m *PainPointQuoteMutation) ClearPainPoint() {
	m.clearedpain_point = true
	m.clearedFields[painpointquote.FieldPainPointID] = struct{}{}
}

// PainPointCleared reports if the "pain_point" edge to the PainPoint entity was cleared.
func (m *PainPointQuoteMutation) PainPointCleared() bool {
	return m.clearedpain_point
}

// PainPointIDs returns the "pain_point" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PainPointID instead. It exists only for internal usage by the builders.
func (m *PainPointQuoteMutation) PainPointIDs() (ids []string) {
	if id := m.pain_point; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPainPoint resets all changes to the "pain_point" edge.
func (m *PainPointQuoteMutation) ResetPainPoint() {
	m.pain_point = nil
	m.clearedpain_point = false
}

// Where appends a list predicates to the PainPointQuoteMutation builder.
func (m *PainPointQuoteMutation) Where(ps ...predicate.PainPointQuote) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PainPointQuoteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PainPointQuoteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PainPointQuote, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PainPointQuoteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PainPointQuoteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PainPointQuote).
func (m *PainPointQuoteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PainPointQuoteMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.pain_point != nil {
		fields = append(fields, painpointquote.FieldPainPointID)
	}
	if m.quote_text != nil {
		fields = append(fields, painpointquote.FieldQuoteText)
	}
	if m.author_handle != nil {
		fields = append(fields, painpointquote.FieldAuthorHandle)
	}
	if m.upvotes != nil {
		fields = append(fields, painpointquote.FieldUpvotes)
	}
	if m.permalink != nil {
		fields = append(fields, painpointquote.FieldPermalink)
	}
	if m.created_at != nil {
		fields = append(fields, painpointquote.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PainPointQuoteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case painpointquote.FieldPainPointID:
		return m.PainPointID()
	case painpointquote.FieldQuoteText:
		return m.QuoteText()
	case painpointquote.FieldAuthorHandle:
		return m.AuthorHandle()
	case painpointquote.FieldUpvotes:
		return m.Upvotes()
	case painpointquote.FieldPermalink:
		return m.Permalink()
	case painpointquote.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PainPointQuoteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case painpointquote.FieldPainPointID:
		return m.OldPainPointID(ctx)
	case painpointquote.FieldQuoteText:
		return m.OldQuoteText(ctx)
	case painpointquote.FieldAuthorHandle:
		return m.OldAuthorHandle(ctx)
	case painpointquote.FieldUpvotes:
		return m.OldUpvotes(ctx)
	case painpointquote.FieldPermalink:
		return m.OldPermalink(ctx)
	case painpointquote.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PainPointQuote field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PainPointQuoteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case painpointquote.FieldPainPointID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPainPointID(v)
		return nil
	case painpointquote.FieldQuoteText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuoteText(v)
		return nil
	case painpointquote.FieldAuthorHandle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthorHandle(v)
		return nil
	case painpointquote.FieldUpvotes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpvotes(v)
		return nil
	case painpointquote.FieldPermalink:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPermalink(v)
		return nil
	case painpointquote.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PainPointQuote field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PainPointQuoteMutation) AddedFields() []string {
	var fields []string
	if m.addupvotes != nil {
		fields = append(fields, painpointquote.FieldUpvotes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PainPointQuoteMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case painpointquote.FieldUpvotes:
		return m.AddedUpvotes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PainPointQuoteMutation) AddField(name string, value ent.Value) error {
	switch name {
	case painpointquote.FieldUpvotes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUpvotes(v)
		return nil
	}
	return fmt.Errorf("unknown PainPointQuote numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PainPointQuoteMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(painpointquote.FieldAuthorHandle) {
		fields = append(fields, painpointquote.FieldAuthorHandle)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PainPointQuoteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PainPointQuoteMutation) ClearField(name string) error {
	switch name {
	case painpointquote.FieldAuthorHandle:
		m.ClearAuthorHandle()
		return nil
	}
	return fmt.Errorf("unknown PainPointQuote nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PainPointQuoteMutation) ResetField(name string) error {
	switch name {
	case painpointquote.FieldPainPointID:
		m.ResetPainPointID()
		return nil
	case painpointquote.FieldQuoteText:
		m.ResetQuoteText()
		return nil
	case painpointquote.FieldAuthorHandle:
		m.ResetAuthorHandle()
		return nil
	case painpointquote.FieldUpvotes:
		m.ResetUpvotes()
		return nil
	case painpointquote.FieldPermalink:
		m.ResetPermalink()
		return nil
	case painpointquote.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PainPointQuote field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PainPointQuoteMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.pain_point != nil {
		edges = append(edges, painpointquote.EdgePainPoint)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PainPointQuoteMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case painpointquote.EdgePainPoint:
		if id := m.pain_point; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PainPointQuoteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PainPointQuoteMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PainPointQuoteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpain_point {
		edges = append(edges, painpointquote.EdgePainPoint)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PainPointQuoteMutation) EdgeCleared(name string) bool {
	switch name {
	case painpointquote.EdgePainPoint:
		return m.clearedpain_point
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PainPointQuoteMutation) ClearEdge(name string) error {
	switch name {
	case painpointquote.EdgePainPoint:
		m.ClearPainPoint()
		return nil
	}
	return fmt.Errorf("unknown PainPointQuote unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PainPointQuoteMutation) ResetEdge(name string) error {
	switch name {
	case painpointquote.EdgePainPoint:
		m.ResetPainPoint()
		return nil
	}
	return fmt.Errorf("unknown PainPointQuote edge %s", name)
}

// SearchMutation represents an operation that mutates the Search nodes in the graph.
type SearchMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	topic              *string
	tags               *[]string
	appendtags         []string
	time_range         *search.TimeRange
	sort_by            *search.SortBy
	status             *search.Status
	min_upvotes        *int
	addmin_upvotes     *int
	error_message      *string
	retry_count        *int
	addretry_count     *int
	last_retry_at      *time.Time
	next_retry_at      *time.Time
	pod_id             *string
	created_at         *time.Time
	completed_at       *time.Time
	clearedFields      map[string]struct{}
	summary            *int
	clearedsummary     bool
	pain_points        map[string]struct{}
	removedpain_points map[string]struct{}
	clearedpain_points bool
	analysis           *int
	clearedanalysis    bool
	events             map[int]struct{}
	removedevents      map[int]struct{}
	clearedevents      bool
	usages             map[int]struct{}
	removedusages      map[int]struct{}
	clearedusages      bool
	done               bool
	oldValue           func(context.Context) (*Search, error)
	predicates         []predicate.Search
}

var _ ent.Mutation = (*SearchMutation)(nil)

// searchOption allows management of the mutation configuration using functional options.
type searchOption func(*SearchMutation)

// newSearchMutation creates new mutation for the Search entity.
func newSearchMutation(c config, op Op, opts ...searchOption) *SearchMutation {
	m := &SearchMutation{
		config:        c,
		op:            op,
		typ:           TypeSearch,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSearchID sets the ID field of the mutation.
func withSearchID(id string) searchOption {
	return func(m *SearchMutation) {
		var (
			err   error
			once  sync.Once
			value *Search
		)
		m.oldValue = func(ctx context.Context) (*Search, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Search.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSearch sets the old Search of the mutation.
func withSearch(node *Search) searchOption {
	return func(m *SearchMutation) {
		m.oldValue = func(context.Context) (*Search, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SearchMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SearchMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Search entities.
func (m *SearchMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SearchMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SearchMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Search.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTopic sets the "topic" field.
func (m *SearchMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *SearchMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the Search entity.
// If the Search object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *SearchMutation) ResetTopic() {
	m.topic = nil
}

// SetTags sets the "tags" field.
func (m *SearchMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *SearchMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Search entity.
// If the Search object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *SearchMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *SearchMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ResetTags resets all changes to the "tags" field.
func (m *SearchMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
}

// SetTimeRange sets the "time_range" field.
func (m *SearchMutation) SetTimeRange(sr search.TimeRange) {
	m.time_range = &sr
}

// TimeRange returns the value of the "time_range" field in the mutation.
func (m *SearchMutation) TimeRange() (r search.TimeRange, exists bool) {
	v := m.time_range
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeRange returns the old "time_range" field's value of the Search entity.
// If the Search object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchMutation) OldTimeRange(ctx context.Context) (v search.TimeRange, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeRange is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeRange requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeRange: %w", err)
	}
	return oldValue.TimeRange, nil
}

// ResetTimeRange resets all changes to the "time_range" field.
func (m *SearchMutation) ResetTimeRange() {
	m.time_range = nil
}

// SetSortBy sets the "sort_by" field.
func (m *SearchMutation) SetSortBy(sb search.SortBy) {
	m.sort_by = &sb
}

// SortBy returns the value of the "sort_by" field in the mutation.
func (m *SearchMutation) SortBy() (r search.SortBy, exists bool) {
	v := m.sort_by
	if v == nil {
		return
	}
	return *v, true
}

// OldSortBy returns the old "sort_by" field's value of the Search entity.
// If the Search object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchMutation) OldSortBy(ctx context.Context) (v search.SortBy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSortBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSortBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSortBy: %w", err)
	}
	return oldValue.SortBy, nil
}

// ResetSortBy resets all changes to the "sort_by" field.
func (m *SearchMutation) ResetSortBy() {
	m.sort_by = nil
}

// SetStatus sets the "status" field.
func (m *SearchMutation) SetStatus(s search.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SearchMutation) Status() (r search.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Search entity.
// If the Search object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchMutation) OldStatus(ctx context.Context) (v search.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SearchMutation) ResetStatus() {
	m.status = nil
}

// SetMinUpvotes sets the "min_upvotes" field.
func (m *SearchMutation) SetMinUpvotes(i int) {
	m.min_upvotes = &i
	m.addmin_upvotes = nil
}

// MinUpvotes returns the value of the "min_upvotes" field in the mutation.
func (m *SearchMutation) MinUpvotes() (r int, exists bool) {
	v := m.min_upvotes
	if v == nil {
		return
	}
	return *v, true
}

// OldMinUpvotes returns the old "min_upvotes" field's value of the Search entity.
// If the Search object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchMutation) OldMinUpvotes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinUpvotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinUpvotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinUpvotes: %w", err)
	}
	return oldValue.MinUpvotes, nil
}

// AddMinUpvotes adds i to the "min_upvotes" field.
func (m *SearchMutation) AddMinUpvotes(i int) {
	if m.addmin_upvotes != nil {
		*m.addmin_upvotes += i
	} else {
		m.addmin_upvotes = &i
	}
}

// AddedMinUpvotes returns the value that was added to the "min_upvotes" field in this mutation.
func (m *SearchMutation) AddedMinUpvotes() (r int, exists bool) {
	v := m.addmin_upvotes
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinUpvotes resets all changes to the "min_upvotes" field.
func (m *SearchMutation) ResetMinUpvotes() {
	m.min_upvotes = nil
	m.addmin_upvotes = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *SearchMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *SearchMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Search entity.
// If the Search object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *SearchMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[search.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *SearchMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[search.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *SearchMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, search.FieldErrorMessage)
}

// SetRetryCount sets the "retry_count" field.
func (m *SearchMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *SearchMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the Search entity.
// If the Search object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *SearchMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *SearchMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *SearchMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetLastRetryAt sets the "last_retry_at" field.
func (m *SearchMutation) SetLastRetryAt(t time.Time) {
	m.last_retry_at = &t
}

// LastRetryAt returns the value of the "last_retry_at" field in the mutation.
func (m *SearchMutation) LastRetryAt() (r time.Time, exists bool) {
	v := m.last_retry_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRetryAt returns the old "last_retry_at" field's value of the Search entity.
// If the Search object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchMutation) OldLastRetryAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRetryAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRetryAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRetryAt: %w", err)
	}
	return oldValue.LastRetryAt, nil
}

// ClearLastRetryAt clears the value of the "last_retry_at" field.
func (m *SearchMutation) ClearLastRetryAt() {
	m.last_retry_at = nil
	m.clearedFields[search.FieldLastRetryAt] = struct{}{}
}

// LastRetryAtCleared returns if the "last_retry_at" field was cleared in this mutation.
func (m *SearchMutation) LastRetryAtCleared() bool {
	_, ok := m.clearedFields[search.FieldLastRetryAt]
	return ok
}

// ResetLastRetryAt resets all changes to the "last_retry_at" field.
func (m *SearchMutation) ResetLastRetryAt() {
	m.last_retry_at = nil
	delete(m.clearedFields, search.FieldLastRetryAt)
}

// SetNextRetryAt sets the "next_retry_at" field.
func (m *SearchMutation) SetNextRetryAt(t time.Time) {
	m.next_retry_at = &t
}

// NextRetryAt returns the value of the "next_retry_at" field in the mutation.
func (m *SearchMutation) NextRetryAt() (r time.Time, exists bool) {
	v := m.next_retry_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextRetryAt returns the old "next_retry_at" field's value of the Search entity.
// If the Search object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchMutation) OldNextRetryAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextRetryAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextRetryAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextRetryAt: %w", err)
	}
	return oldValue.NextRetryAt, nil
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (m *SearchMutation) ClearNextRetryAt() {
	m.next_retry_at = nil
	m.clearedFields[search.FieldNextRetryAt] = struct{}{}
}

// NextRetryAtCleared returns if the "next_retry_at" field was cleared in this mutation.
func (m *SearchMutation) NextRetryAtCleared() bool {
	_, ok := m.clearedFields[search.FieldNextRetryAt]
	return ok
}

// ResetNextRetryAt resets all changes to the "next_retry_at" field.
func (m *SearchMutation) ResetNextRetryAt() {
	m.next_retry_at = nil
	delete(m.clearedFields, search.FieldNextRetryAt)
}

// SetPodID sets the "pod_id" field.
func (m *SearchMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *SearchMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Search entity.
// If the Search object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *SearchMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[search.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *SearchMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[search.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *SearchMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, search.FieldPodID)
}

// SetCreatedAt sets the "created_at" field.
func (m *SearchMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SearchMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Search entity.
// If the Search object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SearchMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *SearchMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *SearchMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Search entity.
// If the Search object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *SearchMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[search.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *SearchMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[search.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *SearchMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, search.FieldCompletedAt)
}

// SetSummaryID sets the "summary" edge to the SearchSummary entity by id.
func (m *SearchMutation) SetSummaryID(id int) {
	m.summary = &id
}

// ClearSummary clears the "summary" edge to the SearchSummary entity.
func (m *SearchMutation) ClearSummary() {
	m.clearedsummary = true
}

// SummaryCleared reports if the "summary" edge to the SearchSummary entity was cleared.
func (m *SearchMutation) SummaryCleared() bool {
	return m.clearedsummary
}

// SummaryID returns the "summary" edge ID in the mutation.
func (m *SearchMutation) SummaryID() (id int, exists bool) {
	if m.summary != nil {
		return *m.summary, true
	}
	return
}

// SummaryIDs returns the "summary" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SummaryID instead. It exists only for internal usage by the builders.
func (m *SearchMutation) SummaryIDs() (ids []int) {
	if id := m.summary; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSummary resets all changes to the "summary" edge.
func (m *SearchMutation) ResetSummary() {
	m.summary = nil
	m.clearedsummary = false
}

// AddPainPointIDs adds the "pain_points" edge to the PainPoint entity by ids.
func (m *SearchMutation) AddPainPointIDs(ids ...string) {
	if m.pain_points == nil {
		m.pain_points = make(map[string]struct{})
	}
	for i := range ids {
		m.pain_points[ids[i]] = struct{}{}
	}
}

// ClearPainPoints clears the "pain_points" edge to the PainPoint entity.
func (m *SearchMutation) ClearPainPoints() {
	m.clearedpain_points = true
}

// PainPointsCleared reports if the "pain_points" edge to the PainPoint entity was cleared.
func (m *SearchMutation) PainPointsCleared() bool {
	return m.clearedpain_points
}

// RemovePainPointIDs removes the "pain_points" edge to the PainPoint entity by IDs.
func (m *SearchMutation) RemovePainPointIDs(ids ...string) {
	if m.removedpain_points == nil {
		m.removedpain_points = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.pain_points, ids[i])
		m.removedpain_points[ids[i]] = struct{}{}
	}
}

// RemovedPainPoints returns the removed IDs of the "pain_points" edge to the PainPoint entity.
func (m *SearchMutation) RemovedPainPointsIDs() (ids []string) {
	for id := range m.removedpain_points {
		ids = append(ids, id)
	}
	return
}

// PainPointsIDs returns the "pain_points" edge IDs in the mutation.
func (m *SearchMutation) PainPointsIDs() (ids []string) {
	for id := range m.pain_points {
		ids = append(ids, id)
	}
	return
}

// ResetPainPoints resets all changes to the "pain_points" edge.
func (m *SearchMutation) ResetPainPoints() {
	m.pain_points = nil
	m.clearedpain_points = false
	m.removedpain_points = nil
}

// SetAnalysisID sets the "analysis" edge to the AiAnalysis entity by id.
func (m *SearchMutation) SetAnalysisID(id int) {
	m.analysis = &id
}

// ClearAnalysis clears the "analysis" edge to the AiAnalysis entity.
func (m *SearchMutation) ClearAnalysis() {
	m.clearedanalysis = true
}

// AnalysisCleared reports if the "analysis" edge to the AiAnalysis entity was cleared.
func (m *SearchMutation) AnalysisCleared() bool {
	return m.clearedanalysis
}

// AnalysisID returns the "analysis" edge ID in the mutation.
func (m *SearchMutation) AnalysisID() (id int, exists bool) {
	if m.analysis != nil {
		return *m.analysis, true
	}
	return
}

// AnalysisIDs returns the "analysis" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AnalysisID instead. It exists only for internal usage by the builders.
func (m *SearchMutation) AnalysisIDs() (ids []int) {
	if id := m.analysis; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAnalysis resets all changes to the "analysis" edge.
func (m *SearchMutation) ResetAnalysis() {
	m.analysis = nil
	m.clearedanalysis = false
}

// AddEventIDs adds the "events" edge to the SearchEvent entity by ids.
func (m *SearchMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the SearchEvent entity.
func (m *SearchMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the SearchEvent entity was cleared.
func (m *SearchMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the SearchEvent entity by IDs.
func (m *SearchMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the SearchEvent entity.
func (m *SearchMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *SearchMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *SearchMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// AddUsageIDs adds the "usages" edge to the ApiUsage entity by ids.
func (m *SearchMutation) AddUsageIDs(ids ...int) {
	if m.usages == nil {
		m.usages = make(map[int]struct{})
	}
	for i := range ids {
		m.usages[ids[i]] = struct{}{}
	}
}

// ClearUsages clears the "usages" edge to the ApiUsage entity.
func (m *SearchMutation) ClearUsages() {
	m.clearedusages = true
}

// UsagesCleared reports if the "usages" edge to the ApiUsage entity was cleared.
func (m *SearchMutation) UsagesCleared() bool {
	return m.clearedusages
}

// RemoveUsageIDs removes the "usages" edge to the ApiUsage entity by IDs.
func (m *SearchMutation) RemoveUsageIDs(ids ...int) {
	if m.removedusages == nil {
		m.removedusages = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.usages, ids[i])
		m.removedusages[ids[i]] = struct{}{}
	}
}

// RemovedUsages returns the removed IDs of the "usages" edge to the ApiUsage entity.
func (m *SearchMutation) RemovedUsagesIDs() (ids []int) {
	for id := range m.removedusages {
		ids = append(ids, id)
	}
	return
}

// UsagesIDs returns the "usages" edge IDs in the mutation.
func (m *SearchMutation) UsagesIDs() (ids []int) {
	for id := range m.usages {
		ids = append(ids, id)
	}
	return
}

// ResetUsages resets all changes to the "usages" edge.
func (m *SearchMutation) ResetUsages() {
	m.usages = nil
	m.clearedusages = false
	m.removedusages = nil
}

// Where appends a list predicates to the SearchMutation builder.
func (m *SearchMutation) Where(ps ...predicate.Search) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SearchMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SearchMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Search, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SearchMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SearchMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Search).
func (m *SearchMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SearchMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.topic != nil {
		fields = append(fields, search.FieldTopic)
	}
	if m.tags != nil {
		fields = append(fields, search.FieldTags)
	}
	if m.time_range != nil {
		fields = append(fields, search.FieldTimeRange)
	}
	if m.sort_by != nil {
		fields = append(fields, search.FieldSortBy)
	}
	if m.status != nil {
		fields = append(fields, search.FieldStatus)
	}
	if m.min_upvotes != nil {
		fields = append(fields, search.FieldMinUpvotes)
	}
	if m.error_message != nil {
		fields = append(fields, search.FieldErrorMessage)
	}
	if m.retry_count != nil {
		fields = append(fields, search.FieldRetryCount)
	}
	if m.last_retry_at != nil {
		fields = append(fields, search.FieldLastRetryAt)
	}
	if m.next_retry_at != nil {
		fields = append(fields, search.FieldNextRetryAt)
	}
	if m.pod_id != nil {
		fields = append(fields, search.FieldPodID)
	}
	if m.created_at != nil {
		fields = append(fields, search.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, search.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SearchMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case search.FieldTopic:
		return m.Topic()
	case search.FieldTags:
		return m.Tags()
	case search.FieldTimeRange:
		return m.TimeRange()
	case search.FieldSortBy:
		return m.SortBy()
	case search.FieldStatus:
		return m.Status()
	case search.FieldMinUpvotes:
		return m.MinUpvotes()
	case search.FieldErrorMessage:
		return m.ErrorMessage()
	case search.FieldRetryCount:
		return m.RetryCount()
	case search.FieldLastRetryAt:
		return m.LastRetryAt()
	case search.FieldNextRetryAt:
		return m.NextRetryAt()
	case search.FieldPodID:
		return m.PodID()
	case search.FieldCreatedAt:
		return m.CreatedAt()
	case search.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SearchMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case search.FieldTopic:
		return m.OldTopic(ctx)
	case search.FieldTags:
		return m.OldTags(ctx)
	case search.FieldTimeRange:
		return m.OldTimeRange(ctx)
	case search.FieldSortBy:
		return m.OldSortBy(ctx)
	case search.FieldStatus:
		return m.OldStatus(ctx)
	case search.FieldMinUpvotes:
		return m.OldMinUpvotes(ctx)
	case search.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case search.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case search.FieldLastRetryAt:
		return m.OldLastRetryAt(ctx)
	case search.FieldNextRetryAt:
		return m.OldNextRetryAt(ctx)
	case search.FieldPodID:
		return m.OldPodID(ctx)
	case search.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case search.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Search field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SearchMutation) SetField(name string, value ent.Value) error {
	switch name {
	case search.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case search.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case search.FieldTimeRange:
		v, ok := value.(search.TimeRange)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeRange(v)
		return nil
	case search.FieldSortBy:
		v, ok := value.(search.SortBy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSortBy(v)
		return nil
	case search.FieldStatus:
		v, ok := value.(search.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case search.FieldMinUpvotes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinUpvotes(v)
		return nil
	case search.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case search.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case search.FieldLastRetryAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRetryAt(v)
		return nil
	case search.FieldNextRetryAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextRetryAt(v)
		return nil
	case search.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case search.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case search.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Search field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SearchMutation) AddedFields() []string {
	var fields []string
	if m.addmin_upvotes != nil {
		fields = append(fields, search.FieldMinUpvotes)
	}
	if m.addretry_count != nil {
		fields = append(fields, search.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SearchMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case search.FieldMinUpvotes:
		return m.AddedMinUpvotes()
	case search.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SearchMutation) AddField(name string, value ent.Value) error {
	switch name {
	case search.FieldMinUpvotes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinUpvotes(v)
		return nil
	case search.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown Search numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SearchMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(search.FieldErrorMessage) {
		fields = append(fields, search.FieldErrorMessage)
	}
	if m.FieldCleared(search.FieldLastRetryAt) {
		fields = append(fields, search.FieldLastRetryAt)
	}
	if m.FieldCleared(search.FieldNextRetryAt) {
		fields = append(fields, search.FieldNextRetryAt)
	}
	if m.FieldCleared(search.FieldPodID) {
		fields = append(fields, search.FieldPodID)
	}
	if m.FieldCleared(search.FieldCompletedAt) {
		fields = append(fields, search.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SearchMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SearchMutation) ClearField(name string) error {
	switch name {
	case search.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case search.FieldLastRetryAt:
		m.ClearLastRetryAt()
		return nil
	case search.FieldNextRetryAt:
		m.ClearNextRetryAt()
		return nil
	case search.FieldPodID:
		m.ClearPodID()
		return nil
	case search.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Search nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SearchMutation) ResetField(name string) error {
	switch name {
	case search.FieldTopic:
		m.ResetTopic()
		return nil
	case search.FieldTags:
		m.ResetTags()
		return nil
	case search.FieldTimeRange:
		m.ResetTimeRange()
		return nil
	case search.FieldSortBy:
		m.ResetSortBy()
		return nil
	case search.FieldStatus:
		m.ResetStatus()
		return nil
	case search.FieldMinUpvotes:
		m.ResetMinUpvotes()
		return nil
	case search.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case search.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case search.FieldLastRetryAt:
		m.ResetLastRetryAt()
		return nil
	case search.FieldNextRetryAt:
		m.ResetNextRetryAt()
		return nil
	case search.FieldPodID:
		m.ResetPodID()
		return nil
	case search.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case search.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Search field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SearchMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.summary != nil {
		edges = append(edges, search.EdgeSummary)
	}
	if m.pain_points != nil {
		edges = append(edges, search.EdgePainPoints)
	}
	if m.analysis != nil {
		edges = append(edges, search.EdgeAnalysis)
	}
	if m.events != nil {
		edges = append(edges, search.EdgeEvents)
	}
	if m.usages != nil {
		edges = append(edges, search.EdgeUsages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SearchMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case search.EdgeSummary:
		if id := m.summary; id != nil {
			return []ent.Value{*id}
		}
	case search.EdgePainPoints:
		ids := make([]ent.Value, 0, len(m.pain_points))
		for id := range m.pain_points {
			ids = append(ids, id)
		}
		return ids
	case search.EdgeAnalysis:
		if id := m.analysis; id != nil {
			return []ent.Value{*id}
		}
	case search.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	case search.EdgeUsages:
		ids := make([]ent.Value, 0, len(m.usages))
		for id := range m.usages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SearchMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedpain_points != nil {
		edges = append(edges, search.EdgePainPoints)
	}
	if m.removedevents != nil {
		edges = append(edges, search.EdgeEvents)
	}
	if m.removedusages != nil {
		edges = append(edges, search.EdgeUsages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SearchMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case search.EdgePainPoints:
		ids := make([]ent.Value, 0, len(m.removedpain_points))
		for id := range m.removedpain_points {
			ids = append(ids, id)
		}
		return ids
	case search.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	case search.EdgeUsages:
		ids := make([]ent.Value, 0, len(m.removedusages))
		for id := range m.removedusages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SearchMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedsummary {
		edges = append(edges, search.EdgeSummary)
	}
	if m.clearedpain_points {
		edges = append(edges, search.EdgePainPoints)
	}
	if m.clearedanalysis {
		edges = append(edges, search.EdgeAnalysis)
	}
	if m.clearedevents {
		edges = append(edges, search.EdgeEvents)
	}
	if m.clearedusages {
		edges = append(edges, search.EdgeUsages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SearchMutation) EdgeCleared(name string) bool {
	switch name {
	case search.EdgeSummary:
		return m.clearedsummary
	case search.EdgePainPoints:
		return m.clearedpain_points
	case search.EdgeAnalysis:
		return m.clearedanalysis
	case search.EdgeEvents:
		return m.clearedevents
	case search.EdgeUsages:
		return m.clearedusages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SearchMutation) ClearEdge(name string) error {
	switch name {
	case search.EdgeSummary:
		m.ClearSummary()
		return nil
	case search.EdgeAnalysis:
		m.ClearAnalysis()
		return nil
	}
	return fmt.Errorf("unknown Search unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SearchMutation) ResetEdge(name string) error {
	switch name {
	case search.EdgeSummary:
		m.ResetSummary()
		return nil
	case search.EdgePainPoints:
		m.ResetPainPoints()
		return nil
	case search.EdgeAnalysis:
		m.ResetAnalysis()
		return nil
	case search.EdgeEvents:
		m.ResetEvents()
		return nil
	case search.EdgeUsages:
		m.ResetUsages()
		return nil
	}
	return fmt.Errorf("unknown Search edge %s", name)
}

// SearchEventMutation represents an operation that mutates the SearchEvent nodes in the graph.
type SearchEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	event_id      *string
	phase         *searchevent.Phase
	event_type    *searchevent.EventType
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	search        *string
	clearedsearch bool
	done          bool
	oldValue      func(context.Context) (*SearchEvent, error)
	predicates    []predicate.SearchEvent
}

var _ ent.Mutation = (*SearchEventMutation)(nil)

// searcheventOption allows management of the mutation configuration using functional options.
type searcheventOption func(*SearchEventMutation)

// newSearchEventMutation creates new mutation for the SearchEvent entity.
func newSearchEventMutation(c config, op Op, opts ...searcheventOption) *SearchEventMutation {
	m := &SearchEventMutation{
		config:        c,
		op:            op,
		typ:           TypeSearchEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSearchEventID sets the ID field of the mutation.
func withSearchEventID(id int) searcheventOption {
	return func(m *SearchEventMutation) {
		var (
			err   error
			once  sync.Once
			value *SearchEvent
		)
		m.oldValue = func(ctx context.Context) (*SearchEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SearchEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSearchEvent sets the old SearchEvent of the mutation.
func withSearchEvent(node *SearchEvent) searcheventOption {
	return func(m *SearchEventMutation) {
		m.oldValue = func(context.Context) (*SearchEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SearchEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SearchEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SearchEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SearchEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SearchEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventID sets the "event_id" field.
func (m *SearchEventMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *SearchEventMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the SearchEvent entity.
// If the SearchEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchEventMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *SearchEventMutation) ResetEventID() {
	m.event_id = nil
}

// SetSearchID sets the "search_id" field.
func (m *SearchEventMutation) SetSearchID(s string) {
	m.search = &s
}

// SearchID returns the value of the "search_id" field in the mutation.
func (m *SearchEventMutation) SearchID() (r string, exists bool) {
	v := m.search
	if v == nil {
		return
	}
	return *v, true
}

// OldSearchID returns the old "search_id" field's value of the SearchEvent entity.
// If the SearchEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchEventMutation) OldSearchID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSearchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSearchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSearchID: %w", err)
	}
	return oldValue.SearchID, nil
}

// ResetSearchID resets all changes to the "search_id" field.
func (m *SearchEventMutation) ResetSearchID() {
	m.search = nil
}

// SetPhase sets the "phase" field.
func (m *SearchEventMutation) SetPhase(s searchevent.Phase) {
	m.phase = &s
}

// Phase returns the value of the "phase" field in the mutation.
func (m *SearchEventMutation) Phase() (r searchevent.Phase, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the SearchEvent entity.
// If the SearchEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchEventMutation) OldPhase(ctx context.Context) (v searchevent.Phase, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *SearchEventMutation) ResetPhase() {
	m.phase = nil
}

// SetEventType sets the "event_type" field.
func (m *SearchEventMutation) SetEventType(st searchevent.EventType) {
	m.event_type = &st
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *SearchEventMutation) EventType() (r searchevent.EventType, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the SearchEvent entity.
// If the SearchEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchEventMutation) OldEventType(ctx context.Context) (v searchevent.EventType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *SearchEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetPayload sets the "payload" field.
func (m *SearchEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *SearchEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the SearchEvent entity.
// If the SearchEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *SearchEventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SearchEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SearchEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SearchEvent entity.
// If the SearchEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SearchEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSearch clears the "search" edge to the Search entity.
func (m *SearchEventMutation) ClearSearch() {
	m.clearedsearch = true
	m.clearedFields[searchevent.FieldSearchID] = struct{}{}
}

// SearchCleared reports if the "search" edge to the Search entity was cleared.
func (m *SearchEventMutation) SearchCleared() bool {
	return m.clearedsearch
}

// SearchIDs returns the "search" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SearchID instead. It exists only for internal usage by the builders.
func (m *SearchEventMutation) SearchIDs() (ids []string) {
	if id := m.search; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSearch resets all changes to the "search" edge.
func (m *SearchEventMutation) ResetSearch() {
	m.search = nil
	m.clearedsearch = false
}

// Where appends a list predicates to the SearchEventMutation builder.
func (m *SearchEventMutation) Where(ps ...predicate.SearchEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SearchEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SearchEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SearchEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SearchEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SearchEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SearchEvent).
func (m *SearchEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SearchEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.event_id != nil {
		fields = append(fields, searchevent.FieldEventID)
	}
	if m.search != nil {
		fields = append(fields, searchevent.FieldSearchID)
	}
	if m.phase != nil {
		fields = append(fields, searchevent.FieldPhase)
	}
	if m.event_type != nil {
		fields = append(fields, searchevent.FieldEventType)
	}
	if m.payload != nil {
		fields = append(fields, searchevent.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, searchevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SearchEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case searchevent.FieldEventID:
		return m.EventID()
	case searchevent.FieldSearchID:
		return m.SearchID()
	case searchevent.FieldPhase:
		return m.Phase()
	case searchevent.FieldEventType:
		return m.EventType()
	case searchevent.FieldPayload:
		return m.Payload()
	case searchevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SearchEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case searchevent.FieldEventID:
		return m.OldEventID(ctx)
	case searchevent.FieldSearchID:
		return m.OldSearchID(ctx)
	case searchevent.FieldPhase:
		return m.OldPhase(ctx)
	case searchevent.FieldEventType:
		return m.OldEventType(ctx)
	case searchevent.FieldPayload:
		return m.OldPayload(ctx)
	case searchevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SearchEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SearchEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case searchevent.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case searchevent.FieldSearchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSearchID(v)
		return nil
	case searchevent.FieldPhase:
		v, ok := value.(searchevent.Phase)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case searchevent.FieldEventType:
		v, ok := value.(searchevent.EventType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case searchevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case searchevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SearchEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SearchEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SearchEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SearchEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SearchEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SearchEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SearchEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SearchEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SearchEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SearchEventMutation) ResetField(name string) error {
	switch name {
	case searchevent.FieldEventID:
		m.ResetEventID()
		return nil
	case searchevent.FieldSearchID:
		m.ResetSearchID()
		return nil
	case searchevent.FieldPhase:
		m.ResetPhase()
		return nil
	case searchevent.FieldEventType:
		m.ResetEventType()
		return nil
	case searchevent.FieldPayload:
		m.ResetPayload()
		return nil
	case searchevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SearchEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SearchEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.search != nil {
		edges = append(edges, searchevent.EdgeSearch)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SearchEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case searchevent.EdgeSearch:
		if id := m.search; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SearchEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SearchEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SearchEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsearch {
		edges = append(edges, searchevent.EdgeSearch)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SearchEventMutation) EdgeCleared(name string) bool {
	switch name {
	case searchevent.EdgeSearch:
		return m.clearedsearch
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SearchEventMutation) ClearEdge(name string) error {
	switch name {
	case searchevent.EdgeSearch:
		m.ClearSearch()
		return nil
	}
	return fmt.Errorf("unknown SearchEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SearchEventMutation) ResetEdge(name string) error {
	switch name {
	case searchevent.EdgeSearch:
		m.ResetSearch()
		return nil
	}
	return fmt.Errorf("unknown SearchEvent edge %s", name)
}

// SearchSummaryMutation represents an operation that mutates the SearchSummary nodes in the graph.
type SearchSummaryMutation struct {
	config
	op                Op
	typ               string
	id                *int
	total_posts       *int
	addtotal_posts    *int
	total_comments    *int
	addtotal_comments *int
	total_mentions    *int
	addtotal_mentions *int
	source_tags       *[]string
	appendsource_tags []string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	search            *string
	clearedsearch     bool
	done              bool
	oldValue          func(context.Context) (*SearchSummary, error)
	predicates        []predicate.SearchSummary
}

var _ ent.Mutation = (*SearchSummaryMutation)(nil)

// searchsummaryOption allows management of the mutation configuration using functional options.
type searchsummaryOption func(*SearchSummaryMutation)

// newSearchSummaryMutation creates new mutation for the SearchSummary entity.
func newSearchSummaryMutation(c config, op Op, opts ...searchsummaryOption) *SearchSummaryMutation {
	m := &SearchSummaryMutation{
		config:        c,
		op:            op,
		typ:           TypeSearchSummary,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSearchSummaryID sets the ID field of the mutation.
func withSearchSummaryID(id int) searchsummaryOption {
	return func(m *SearchSummaryMutation) {
		var (
			err   error
			once  sync.Once
			value *SearchSummary
		)
		m.oldValue = func(ctx context.Context) (*SearchSummary, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SearchSummary.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSearchSummary sets the old SearchSummary of the mutation.
func withSearchSummary(node *SearchSummary) searchsummaryOption {
	return func(m *SearchSummaryMutation) {
		m.oldValue = func(context.Context) (*SearchSummary, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SearchSummaryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SearchSummaryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SearchSummaryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SearchSummaryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SearchSummary.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSearchID sets the "search_id" field.
func (m *SearchSummaryMutation) SetSearchID(s string) {
	m.search = &s
}

// SearchID returns the value of the "search_id" field in the mutation.
func (m *SearchSummaryMutation) SearchID() (r string, exists bool) {
	v := m.search
	if v == nil {
		return
	}
	return *v, true
}

// OldSearchID returns the old "search_id" field's value of the SearchSummary entity.
// If the SearchSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchSummaryMutation) OldSearchID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSearchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSearchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSearchID: %w", err)
	}
	return oldValue.SearchID, nil
}

// ResetSearchID resets all changes to the "search_id" field.
func (m *SearchSummaryMutation) ResetSearchID() {
	m.search = nil
}

// SetTotalPosts sets the "total_posts" field.
func (m *SearchSummaryMutation) SetTotalPosts(i int) {
	m.total_posts = &i
	m.addtotal_posts = nil
}

// TotalPosts returns the value of the "total_posts" field in the mutation.
func (m *SearchSummaryMutation) TotalPosts() (r int, exists bool) {
	v := m.total_posts
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalPosts returns the old "total_posts" field's value of the SearchSummary entity.
// If the SearchSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchSummaryMutation) OldTotalPosts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalPosts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalPosts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalPosts: %w", err)
	}
	return oldValue.TotalPosts, nil
}

// AddTotalPosts adds i to the "total_posts" field.
func (m *SearchSummaryMutation) AddTotalPosts(i int) {
	if m.addtotal_posts != nil {
		*m.addtotal_posts += i
	} else {
		m.addtotal_posts = &i
	}
}

// AddedTotalPosts returns the value that was added to the "total_posts" field in this mutation.
func (m *SearchSummaryMutation) AddedTotalPosts() (r int, exists bool) {
	v := m.addtotal_posts
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalPosts resets all changes to the "total_posts" field.
func (m *SearchSummaryMutation) ResetTotalPosts() {
	m.total_posts = nil
	m.addtotal_posts = nil
}

// SetTotalComments sets the "total_comments" field.
func (m *SearchSummaryMutation) SetTotalComments(i int) {
	m.total_comments = &i
	m.addtotal_comments = nil
}

// TotalComments returns the value of the "total_comments" field in the mutation.
func (m *SearchSummaryMutation) TotalComments() (r int, exists bool) {
	v := m.total_comments
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalComments returns the old "total_comments" field's value of the SearchSummary entity.
// If the SearchSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchSummaryMutation) OldTotalComments(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalComments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalComments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalComments: %w", err)
	}
	return oldValue.TotalComments, nil
}

// AddTotalComments adds i to the "total_comments" field.
func (m *SearchSummaryMutation) AddTotalComments(i int) {
	if m.addtotal_comments != nil {
		*m.addtotal_comments += i
	} else {
		m.addtotal_comments = &i
	}
}

// AddedTotalComments returns the value that was added to the "total_comments" field in this mutation.
func (m *SearchSummaryMutation) AddedTotalComments() (r int, exists bool) {
	v := m.addtotal_comments
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalComments resets all changes to the "total_comments" field.
func (m *SearchSummaryMutation) ResetTotalComments() {
	m.total_comments = nil
	m.addtotal_comments = nil
}

// SetTotalMentions sets the "total_mentions" field.
func (m *SearchSummaryMutation) SetTotalMentions(i int) {
	m.total_mentions = &i
	m.addtotal_mentions = nil
}

// TotalMentions returns the value of the "total_mentions" field in the mutation.
func (m *SearchSummaryMutation) TotalMentions() (r int, exists bool) {
	v := m.total_mentions
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalMentions returns the old "total_mentions" field's value of the SearchSummary entity.
// If the SearchSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchSummaryMutation) OldTotalMentions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalMentions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalMentions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalMentions: %w", err)
	}
	return oldValue.TotalMentions, nil
}

// AddTotalMentions adds i to the "total_mentions" field.
func (m *SearchSummaryMutation) AddTotalMentions(i int) {
	if m.addtotal_mentions != nil {
		*m.addtotal_mentions += i
	} else {
		m.addtotal_mentions = &i
	}
}

// AddedTotalMentions returns the value that was added to the "total_mentions" field in this mutation.
func (m *SearchSummaryMutation) AddedTotalMentions() (r int, exists bool) {
	v := m.addtotal_mentions
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalMentions resets all changes to the "total_mentions" field.
func (m *SearchSummaryMutation) ResetTotalMentions() {
	m.total_mentions = nil
	m.addtotal_mentions = nil
}

// SetSourceTags sets the "source_tags" field.
func (m *SearchSummaryMutation) SetSourceTags(s []string) {
	m.source_tags = &s
	m.appendsource_tags = nil
}

// SourceTags returns the value of the "source_tags" field in the mutation.
func (m *SearchSummaryMutation) SourceTags() (r []string, exists bool) {
	v := m.source_tags
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceTags returns the old "source_tags" field's value of the SearchSummary entity.
// If the SearchSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchSummaryMutation) OldSourceTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceTags: %w", err)
	}
	return oldValue.SourceTags, nil
}

// AppendSourceTags adds s to the "source_tags" field.
func (m *SearchSummaryMutation) AppendSourceTags(s []string) {
	m.appendsource_tags = append(m.appendsource_tags, s...)
}

// AppendedSourceTags returns the list of values that were appended to the "source_tags" field in this mutation.
func (m *SearchSummaryMutation) AppendedSourceTags() ([]string, bool) {
	if len(m.appendsource_tags) == 0 {
		return nil, false
	}
	return m.appendsource_tags, true
}

// ResetSourceTags resets all changes to the "source_tags" field.
func (m *SearchSummaryMutation) ResetSourceTags() {
	m.source_tags = nil
	m.appendsource_tags = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SearchSummaryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SearchSummaryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SearchSummary entity.
// If the SearchSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchSummaryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SearchSummaryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSearch clears the "search" edge to the Search entity.
func (m *SearchSummaryMutation) ClearSearch() {
	m.clearedsearch = true
	m.clearedFields[searchsummary.FieldSearchID] = struct{}{}
}

// SearchCleared reports if the "search" edge to the Search entity was cleared.
func (m *SearchSummaryMutation) SearchCleared() bool {
	return m.clearedsearch
}

// SearchIDs returns the "search" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SearchID instead. It exists only for internal usage by the builders.
func (m *SearchSummaryMutation) SearchIDs() (ids []string) {
	if id := m.search; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSearch resets all changes to the "search" edge.
func (m *SearchSummaryMutation) ResetSearch() {
	m.search = nil
	m.clearedsearch = false
}

// Where appends a list predicates to the SearchSummaryMutation builder.
func (m *SearchSummaryMutation) Where(ps ...predicate.SearchSummary) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SearchSummaryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SearchSummaryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SearchSummary, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SearchSummaryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SearchSummaryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SearchSummary).
func (m *SearchSummaryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SearchSummaryMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.search != nil {
		fields = append(fields, searchsummary.FieldSearchID)
	}
	if m.total_posts != nil {
		fields = append(fields, searchsummary.FieldTotalPosts)
	}
	if m.total_comments != nil {
		fields = append(fields, searchsummary.FieldTotalComments)
	}
	if m.total_mentions != nil {
		fields = append(fields, searchsummary.FieldTotalMentions)
	}
	if m.source_tags != nil {
		fields = append(fields, searchsummary.FieldSourceTags)
	}
	if m.created_at != nil {
		fields = append(fields, searchsummary.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SearchSummaryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case searchsummary.FieldSearchID:
		return m.SearchID()
	case searchsummary.FieldTotalPosts:
		return m.TotalPosts()
	case searchsummary.FieldTotalComments:
		return m.TotalComments()
	case searchsummary.FieldTotalMentions:
		return m.TotalMentions()
	case searchsummary.FieldSourceTags:
		return m.SourceTags()
	case searchsummary.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SearchSummaryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case searchsummary.FieldSearchID:
		return m.OldSearchID(ctx)
	case searchsummary.FieldTotalPosts:
		return m.OldTotalPosts(ctx)
	case searchsummary.FieldTotalComments:
		return m.OldTotalComments(ctx)
	case searchsummary.FieldTotalMentions:
		return m.OldTotalMentions(ctx)
	case searchsummary.FieldSourceTags:
		return m.OldSourceTags(ctx)
	case searchsummary.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SearchSummary field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SearchSummaryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case searchsummary.FieldSearchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSearchID(v)
		return nil
	case searchsummary.FieldTotalPosts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalPosts(v)
		return nil
	case searchsummary.FieldTotalComments:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalComments(v)
		return nil
	case searchsummary.FieldTotalMentions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalMentions(v)
		return nil
	case searchsummary.FieldSourceTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceTags(v)
		return nil
	case searchsummary.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SearchSummary field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SearchSummaryMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_posts != nil {
		fields = append(fields, searchsummary.FieldTotalPosts)
	}
	if m.addtotal_comments != nil {
		fields = append(fields, searchsummary.FieldTotalComments)
	}
	if m.addtotal_mentions != nil {
		fields = append(fields, searchsummary.FieldTotalMentions)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SearchSummaryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case searchsummary.FieldTotalPosts:
		return m.AddedTotalPosts()
	case searchsummary.FieldTotalComments:
		return m.AddedTotalComments()
	case searchsummary.FieldTotalMentions:
		return m.AddedTotalMentions()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SearchSummaryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case searchsummary.FieldTotalPosts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalPosts(v)
		return nil
	case searchsummary.FieldTotalComments:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalComments(v)
		return nil
	case searchsummary.FieldTotalMentions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalMentions(v)
		return nil
	}
	return fmt.Errorf("unknown SearchSummary numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SearchSummaryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SearchSummaryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SearchSummaryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SearchSummary nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SearchSummaryMutation) ResetField(name string) error {
	switch name {
	case searchsummary.FieldSearchID:
		m.ResetSearchID()
		return nil
	case searchsummary.FieldTotalPosts:
		m.ResetTotalPosts()
		return nil
	case searchsummary.FieldTotalComments:
		m.ResetTotalComments()
		return nil
	case searchsummary.FieldTotalMentions:
		m.ResetTotalMentions()
		return nil
	case searchsummary.FieldSourceTags:
		m.ResetSourceTags()
		return nil
	case searchsummary.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SearchSummary field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SearchSummaryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.search != nil {
		edges = append(edges, searchsummary.EdgeSearch)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SearchSummaryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case searchsummary.EdgeSearch:
		if id := m.search; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SearchSummaryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SearchSummaryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SearchSummaryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsearch {
		edges = append(edges, searchsummary.EdgeSearch)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SearchSummaryMutation) EdgeCleared(name string) bool {
	switch name {
	case searchsummary.EdgeSearch:
		return m.clearedsearch
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SearchSummaryMutation) ClearEdge(name string) error {
	switch name {
	case searchsummary.EdgeSearch:
		m.ClearSearch()
		return nil
	}
	return fmt.Errorf("unknown SearchSummary unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SearchSummaryMutation) ResetEdge(name string) error {
	switch name {
	case searchsummary.EdgeSearch:
		m.ResetSearch()
		return nil
	}
	return fmt.Errorf("unknown SearchSummary edge %s", name)
}
