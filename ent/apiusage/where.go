// Code generated by ent, DO NOT EDIT.

package apiusage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/painscope/painscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldLTE(FieldID, id))
}

// SearchID applies equality check predicate on the "search_id" field. It's identical to SearchIDEQ.
func SearchID(v string) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldEQ(FieldSearchID, v))
}

// Service applies equality check predicate on the "service" field. It's identical to ServiceEQ.
func Service(v string) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldEQ(FieldService, v))
}

// TokensUsed applies equality check predicate on the "tokens_used" field. It's identical to TokensUsedEQ.
func TokensUsed(v int) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldEQ(FieldTokensUsed, v))
}

// EstimatedCostUsd applies equality check predicate on the "estimated_cost_usd" field. It's identical to EstimatedCostUsdEQ.
func EstimatedCostUsd(v float64) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldEQ(FieldEstimatedCostUsd, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldEQ(FieldCreatedAt, v))
}

// SearchIDEQ applies the EQ predicate on the "search_id" field.
func SearchIDEQ(v string) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldEQ(FieldSearchID, v))
}

// SearchIDNEQ applies the NEQ predicate on the "search_id" field.
func SearchIDNEQ(v string) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldNEQ(FieldSearchID, v))
}

// SearchIDIn applies the In predicate on the "search_id" field.
func SearchIDIn(vs ...string) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldIn(FieldSearchID, vs...))
}

// SearchIDNotIn applies the NotIn predicate on the "search_id" field.
func SearchIDNotIn(vs ...string) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldNotIn(FieldSearchID, vs...))
}

// SearchIDGT applies the GT predicate on the "search_id" field.
func SearchIDGT(v string) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldGT(FieldSearchID, v))
}

// SearchIDGTE applies the GTE predicate on the "search_id" field.
func SearchIDGTE(v string) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldGTE(FieldSearchID, v))
}

// SearchIDLT applies the LT predicate on the "search_id" field.
func SearchIDLT(v string) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldLT(FieldSearchID, v))
}

// SearchIDLTE applies the LTE predicate on the "search_id" field.
func SearchIDLTE(v string) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldLTE(FieldSearchID, v))
}

// SearchIDContains applies the Contains predicate on the "search_id" field.
func SearchIDContains(v string) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldContains(FieldSearchID, v))
}

// SearchIDHasPrefix applies the HasPrefix predicate on the "search_id" field.
func SearchIDHasPrefix(v string) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldHasPrefix(FieldSearchID, v))
}

// SearchIDHasSuffix applies the HasSuffix predicate on the "search_id" field.
func SearchIDHasSuffix(v string) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldHasSuffix(FieldSearchID, v))
}

// SearchIDEqualFold applies the EqualFold predicate on the "search_id" field.
func SearchIDEqualFold(v string) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldEqualFold(FieldSearchID, v))
}

// SearchIDContainsFold applies the ContainsFold predicate on the "search_id" field.
func SearchIDContainsFold(v string) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldContainsFold(FieldSearchID, v))
}

// ServiceEQ applies the EQ predicate on the "service" field.
func ServiceEQ(v string) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldEQ(FieldService, v))
}

// ServiceNEQ applies the NEQ predicate on the "service" field.
func ServiceNEQ(v string) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldNEQ(FieldService, v))
}

// ServiceIn applies the In predicate on the "service" field.
func ServiceIn(vs ...string) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldIn(FieldService, vs...))
}

// ServiceNotIn applies the NotIn predicate on the "service" field.
func ServiceNotIn(vs ...string) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldNotIn(FieldService, vs...))
}

// ServiceGT applies the GT predicate on the "service" field.
func ServiceGT(v string) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldGT(FieldService, v))
}

// ServiceGTE applies the GTE predicate on the "service" field.
func ServiceGTE(v string) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldGTE(FieldService, v))
}

// ServiceLT applies the LT predicate on the "service" field.
func ServiceLT(v string) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldLT(FieldService, v))
}

// ServiceLTE applies the LTE predicate on the "service" field.
func ServiceLTE(v string) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldLTE(FieldService, v))
}

// ServiceContains applies the Contains predicate on the "service" field.
func ServiceContains(v string) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldContains(FieldService, v))
}

// ServiceHasPrefix applies the HasPrefix predicate on the "service" field.
func ServiceHasPrefix(v string) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldHasPrefix(FieldService, v))
}

// ServiceHasSuffix applies the HasSuffix predicate on the "service" field.
func ServiceHasSuffix(v string) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldHasSuffix(FieldService, v))
}

// ServiceEqualFold applies the EqualFold predicate on the "service" field.
func ServiceEqualFold(v string) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldEqualFold(FieldService, v))
}

// ServiceContainsFold applies the ContainsFold predicate on the "service" field.
func ServiceContainsFold(v string) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldContainsFold(FieldService, v))
}

// TokensUsedEQ applies the EQ predicate on the "tokens_used" field.
func TokensUsedEQ(v int) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldEQ(FieldTokensUsed, v))
}

// TokensUsedNEQ applies the NEQ predicate on the "tokens_used" field.
func TokensUsedNEQ(v int) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldNEQ(FieldTokensUsed, v))
}

// TokensUsedIn applies the In predicate on the "tokens_used" field.
func TokensUsedIn(vs ...int) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldIn(FieldTokensUsed, vs...))
}

// TokensUsedNotIn applies the NotIn predicate on the "tokens_used" field.
func TokensUsedNotIn(vs ...int) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldNotIn(FieldTokensUsed, vs...))
}

// TokensUsedGT applies the GT predicate on the "tokens_used" field.
func TokensUsedGT(v int) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldGT(FieldTokensUsed, v))
}

// TokensUsedGTE applies the GTE predicate on the "tokens_used" field.
func TokensUsedGTE(v int) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldGTE(FieldTokensUsed, v))
}

// TokensUsedLT applies the LT predicate on the "tokens_used" field.
func TokensUsedLT(v int) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldLT(FieldTokensUsed, v))
}

// TokensUsedLTE applies the LTE predicate on the "tokens_used" field.
func TokensUsedLTE(v int) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldLTE(FieldTokensUsed, v))
}

// EstimatedCostUsdEQ applies the EQ predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdEQ(v float64) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldEQ(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdNEQ applies the NEQ predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdNEQ(v float64) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldNEQ(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdIn applies the In predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdIn(vs ...float64) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldIn(FieldEstimatedCostUsd, vs...))
}

// EstimatedCostUsdNotIn applies the NotIn predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdNotIn(vs ...float64) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldNotIn(FieldEstimatedCostUsd, vs...))
}

// EstimatedCostUsdGT applies the GT predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdGT(v float64) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldGT(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdGTE applies the GTE predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdGTE(v float64) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldGTE(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdLT applies the LT predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdLT(v float64) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldLT(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdLTE applies the LTE predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdLTE(v float64) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldLTE(FieldEstimatedCostUsd, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ApiUsage {
	return predicate.ApiUsage(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSearch applies the HasEdge predicate on the "search" edge.
func HasSearch() predicate.ApiUsage {
	return predicate.ApiUsage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SearchTable, SearchColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSearchWith applies the HasEdge predicate on the "search" edge with a given conditions (other predicates).
func HasSearchWith(preds ...predicate.Search) predicate.ApiUsage {
	return predicate.ApiUsage(func(s *sql.Selector) {
		step := newSearchStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ApiUsage) predicate.ApiUsage {
	return predicate.ApiUsage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ApiUsage) predicate.ApiUsage {
	return predicate.ApiUsage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ApiUsage) predicate.ApiUsage {
	return predicate.ApiUsage(sql.NotPredicates(p))
}
