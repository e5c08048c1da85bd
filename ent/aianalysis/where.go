// Code generated by ent, DO NOT EDIT.

package aianalysis

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/painscope/painscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldLTE(FieldID, id))
}

// SearchID applies equality check predicate on the "search_id" field. It's identical to SearchIDEQ.
func SearchID(v string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldEQ(FieldSearchID, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldEQ(FieldSummary, v))
}

// SchemaVersion applies equality check predicate on the "schema_version" field. It's identical to SchemaVersionEQ.
func SchemaVersion(v int) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldEQ(FieldSchemaVersion, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldEQ(FieldModel, v))
}

// TokensUsed applies equality check predicate on the "tokens_used" field. It's identical to TokensUsedEQ.
func TokensUsed(v int) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldEQ(FieldTokensUsed, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldEQ(FieldCreatedAt, v))
}

// SearchIDEQ applies the EQ predicate on the "search_id" field.
func SearchIDEQ(v string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldEQ(FieldSearchID, v))
}

// SearchIDNEQ applies the NEQ predicate on the "search_id" field.
func SearchIDNEQ(v string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldNEQ(FieldSearchID, v))
}

// SearchIDIn applies the In predicate on the "search_id" field.
func SearchIDIn(vs ...string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldIn(FieldSearchID, vs...))
}

// SearchIDNotIn applies the NotIn predicate on the "search_id" field.
func SearchIDNotIn(vs ...string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldNotIn(FieldSearchID, vs...))
}

// SearchIDGT applies the GT predicate on the "search_id" field.
func SearchIDGT(v string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldGT(FieldSearchID, v))
}

// SearchIDGTE applies the GTE predicate on the "search_id" field.
func SearchIDGTE(v string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldGTE(FieldSearchID, v))
}

// SearchIDLT applies the LT predicate on the "search_id" field.
func SearchIDLT(v string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldLT(FieldSearchID, v))
}

// SearchIDLTE applies the LTE predicate on the "search_id" field.
func SearchIDLTE(v string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldLTE(FieldSearchID, v))
}

// SearchIDContains applies the Contains predicate on the "search_id" field.
func SearchIDContains(v string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldContains(FieldSearchID, v))
}

// SearchIDHasPrefix applies the HasPrefix predicate on the "search_id" field.
func SearchIDHasPrefix(v string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldHasPrefix(FieldSearchID, v))
}

// SearchIDHasSuffix applies the HasSuffix predicate on the "search_id" field.
func SearchIDHasSuffix(v string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldHasSuffix(FieldSearchID, v))
}

// SearchIDEqualFold applies the EqualFold predicate on the "search_id" field.
func SearchIDEqualFold(v string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldEqualFold(FieldSearchID, v))
}

// SearchIDContainsFold applies the ContainsFold predicate on the "search_id" field.
func SearchIDContainsFold(v string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldContainsFold(FieldSearchID, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldContainsFold(FieldSummary, v))
}

// SchemaVersionEQ applies the EQ predicate on the "schema_version" field.
func SchemaVersionEQ(v int) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldEQ(FieldSchemaVersion, v))
}

// SchemaVersionNEQ applies the NEQ predicate on the "schema_version" field.
func SchemaVersionNEQ(v int) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldNEQ(FieldSchemaVersion, v))
}

// SchemaVersionIn applies the In predicate on the "schema_version" field.
func SchemaVersionIn(vs ...int) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldIn(FieldSchemaVersion, vs...))
}

// SchemaVersionNotIn applies the NotIn predicate on the "schema_version" field.
func SchemaVersionNotIn(vs ...int) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldNotIn(FieldSchemaVersion, vs...))
}

// SchemaVersionGT applies the GT predicate on the "schema_version" field.
func SchemaVersionGT(v int) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldGT(FieldSchemaVersion, v))
}

// SchemaVersionGTE applies the GTE predicate on the "schema_version" field.
func SchemaVersionGTE(v int) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldGTE(FieldSchemaVersion, v))
}

// SchemaVersionLT applies the LT predicate on the "schema_version" field.
func SchemaVersionLT(v int) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldLT(FieldSchemaVersion, v))
}

// SchemaVersionLTE applies the LTE predicate on the "schema_version" field.
func SchemaVersionLTE(v int) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldLTE(FieldSchemaVersion, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldContainsFold(FieldModel, v))
}

// TokensUsedEQ applies the EQ predicate on the "tokens_used" field.
func TokensUsedEQ(v int) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldEQ(FieldTokensUsed, v))
}

// TokensUsedNEQ applies the NEQ predicate on the "tokens_used" field.
func TokensUsedNEQ(v int) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldNEQ(FieldTokensUsed, v))
}

// TokensUsedIn applies the In predicate on the "tokens_used" field.
func TokensUsedIn(vs ...int) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldIn(FieldTokensUsed, vs...))
}

// TokensUsedNotIn applies the NotIn predicate on the "tokens_used" field.
func TokensUsedNotIn(vs ...int) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldNotIn(FieldTokensUsed, vs...))
}

// TokensUsedGT applies the GT predicate on the "tokens_used" field.
func TokensUsedGT(v int) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldGT(FieldTokensUsed, v))
}

// TokensUsedGTE applies the GTE predicate on the "tokens_used" field.
func TokensUsedGTE(v int) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldGTE(FieldTokensUsed, v))
}

// TokensUsedLT applies the LT predicate on the "tokens_used" field.
func TokensUsedLT(v int) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldLT(FieldTokensUsed, v))
}

// TokensUsedLTE applies the LTE predicate on the "tokens_used" field.
func TokensUsedLTE(v int) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldLTE(FieldTokensUsed, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSearch applies the HasEdge predicate on the "search" edge.
func HasSearch() predicate.AiAnalysis {
	return predicate.AiAnalysis(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, SearchTable, SearchColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSearchWith applies the HasEdge predicate on the "search" edge with a given conditions (other predicates).
func HasSearchWith(preds ...predicate.Search) predicate.AiAnalysis {
	return predicate.AiAnalysis(func(s *sql.Selector) {
		step := newSearchStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AiAnalysis) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AiAnalysis) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AiAnalysis) predicate.AiAnalysis {
	return predicate.AiAnalysis(sql.NotPredicates(p))
}
