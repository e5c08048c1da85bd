// Code generated by ent, DO NOT EDIT.

package painpoint

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/painscope/painscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldContainsFold(FieldID, id))
}

// SearchID applies equality check predicate on the "search_id" field. It's identical to SearchIDEQ.
func SearchID(v string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldEQ(FieldSearchID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldEQ(FieldTitle, v))
}

// SourceTag applies equality check predicate on the "source_tag" field. It's identical to SourceTagEQ.
func SourceTag(v string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldEQ(FieldSourceTag, v))
}

// MentionsCount applies equality check predicate on the "mentions_count" field. It's identical to MentionsCountEQ.
func MentionsCount(v int) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldEQ(FieldMentionsCount, v))
}

// SeverityScore applies equality check predicate on the "severity_score" field. It's identical to SeverityScoreEQ.
func SeverityScore(v float64) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldEQ(FieldSeverityScore, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldEQ(FieldCreatedAt, v))
}

// SearchIDEQ applies the EQ predicate on the "search_id" field.
func SearchIDEQ(v string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldEQ(FieldSearchID, v))
}

// SearchIDNEQ applies the NEQ predicate on the "search_id" field.
func SearchIDNEQ(v string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldNEQ(FieldSearchID, v))
}

// SearchIDIn applies the In predicate on the "search_id" field.
func SearchIDIn(vs ...string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldIn(FieldSearchID, vs...))
}

// SearchIDNotIn applies the NotIn predicate on the "search_id" field.
func SearchIDNotIn(vs ...string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldNotIn(FieldSearchID, vs...))
}

// SearchIDGT applies the GT predicate on the "search_id" field.
func SearchIDGT(v string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldGT(FieldSearchID, v))
}

// SearchIDGTE applies the GTE predicate on the "search_id" field.
func SearchIDGTE(v string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldGTE(FieldSearchID, v))
}

// SearchIDLT applies the LT predicate on the "search_id" field.
func SearchIDLT(v string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldLT(FieldSearchID, v))
}

// SearchIDLTE applies the LTE predicate on the "search_id" field.
func SearchIDLTE(v string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldLTE(FieldSearchID, v))
}

// SearchIDContains applies the Contains predicate on the "search_id" field.
func SearchIDContains(v string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldContains(FieldSearchID, v))
}

// SearchIDHasPrefix applies the HasPrefix predicate on the "search_id" field.
func SearchIDHasPrefix(v string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldHasPrefix(FieldSearchID, v))
}

// SearchIDHasSuffix applies the HasSuffix predicate on the "search_id" field.
func SearchIDHasSuffix(v string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldHasSuffix(FieldSearchID, v))
}

// SearchIDEqualFold applies the EqualFold predicate on the "search_id" field.
func SearchIDEqualFold(v string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldEqualFold(FieldSearchID, v))
}

// SearchIDContainsFold applies the ContainsFold predicate on the "search_id" field.
func SearchIDContainsFold(v string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldContainsFold(FieldSearchID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldContainsFold(FieldTitle, v))
}

// SourceTagEQ applies the EQ predicate on the "source_tag" field.
func SourceTagEQ(v string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldEQ(FieldSourceTag, v))
}

// SourceTagNEQ applies the NEQ predicate on the "source_tag" field.
func SourceTagNEQ(v string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldNEQ(FieldSourceTag, v))
}

// SourceTagIn applies the In predicate on the "source_tag" field.
func SourceTagIn(vs ...string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldIn(FieldSourceTag, vs...))
}

// SourceTagNotIn applies the NotIn predicate on the "source_tag" field.
func SourceTagNotIn(vs ...string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldNotIn(FieldSourceTag, vs...))
}

// SourceTagGT applies the GT predicate on the "source_tag" field.
func SourceTagGT(v string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldGT(FieldSourceTag, v))
}

// SourceTagGTE applies the GTE predicate on the "source_tag" field.
func SourceTagGTE(v string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldGTE(FieldSourceTag, v))
}

// SourceTagLT applies the LT predicate on the "source_tag" field.
func SourceTagLT(v string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldLT(FieldSourceTag, v))
}

// SourceTagLTE applies the LTE predicate on the "source_tag" field.
func SourceTagLTE(v string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldLTE(FieldSourceTag, v))
}

// SourceTagContains applies the Contains predicate on the "source_tag" field.
func SourceTagContains(v string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldContains(FieldSourceTag, v))
}

// SourceTagHasPrefix applies the HasPrefix predicate on the "source_tag" field.
func SourceTagHasPrefix(v string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldHasPrefix(FieldSourceTag, v))
}

// SourceTagHasSuffix applies the HasSuffix predicate on the "source_tag" field.
func SourceTagHasSuffix(v string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldHasSuffix(FieldSourceTag, v))
}

// SourceTagEqualFold applies the EqualFold predicate on the "source_tag" field.
func SourceTagEqualFold(v string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldEqualFold(FieldSourceTag, v))
}

// SourceTagContainsFold applies the ContainsFold predicate on the "source_tag" field.
func SourceTagContainsFold(v string) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldContainsFold(FieldSourceTag, v))
}

// MentionsCountEQ applies the EQ predicate on the "mentions_count" field.
func MentionsCountEQ(v int) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldEQ(FieldMentionsCount, v))
}

// MentionsCountNEQ applies the NEQ predicate on the "mentions_count" field.
func MentionsCountNEQ(v int) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldNEQ(FieldMentionsCount, v))
}

// MentionsCountIn applies the In predicate on the "mentions_count" field.
func MentionsCountIn(vs ...int) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldIn(FieldMentionsCount, vs...))
}

// MentionsCountNotIn applies the NotIn predicate on the "mentions_count" field.
func MentionsCountNotIn(vs ...int) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldNotIn(FieldMentionsCount, vs...))
}

// MentionsCountGT applies the GT predicate on the "mentions_count" field.
func MentionsCountGT(v int) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldGT(FieldMentionsCount, v))
}

// MentionsCountGTE applies the GTE predicate on the "mentions_count" field.
func MentionsCountGTE(v int) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldGTE(FieldMentionsCount, v))
}

// MentionsCountLT applies the LT predicate on the "mentions_count" field.
func MentionsCountLT(v int) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldLT(FieldMentionsCount, v))
}

// MentionsCountLTE applies the LTE predicate on the "mentions_count" field.
func MentionsCountLTE(v int) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldLTE(FieldMentionsCount, v))
}

// SeverityScoreEQ applies the EQ predicate on the "severity_score" field.
func SeverityScoreEQ(v float64) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldEQ(FieldSeverityScore, v))
}

// SeverityScoreNEQ applies the NEQ predicate on the "severity_score" field.
func SeverityScoreNEQ(v float64) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldNEQ(FieldSeverityScore, v))
}

// SeverityScoreIn applies the In predicate on the "severity_score" field.
func SeverityScoreIn(vs ...float64) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldIn(FieldSeverityScore, vs...))
}

// SeverityScoreNotIn applies the NotIn predicate on the "severity_score" field.
func SeverityScoreNotIn(vs ...float64) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldNotIn(FieldSeverityScore, vs...))
}

// SeverityScoreGT applies the GT predicate on the "severity_score" field.
func SeverityScoreGT(v float64) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldGT(FieldSeverityScore, v))
}

// SeverityScoreGTE applies the GTE predicate on the "severity_score" field.
func SeverityScoreGTE(v float64) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldGTE(FieldSeverityScore, v))
}

// SeverityScoreLT applies the LT predicate on the "severity_score" field.
func SeverityScoreLT(v float64) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldLT(FieldSeverityScore, v))
}

// SeverityScoreLTE applies the LTE predicate on the "severity_score" field.
func SeverityScoreLTE(v float64) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldLTE(FieldSeverityScore, v))
}

// SeverityScoreIsNil applies the IsNil predicate on the "severity_score" field.
func SeverityScoreIsNil() predicate.PainPoint {
	return predicate.PainPoint(sql.FieldIsNull(FieldSeverityScore))
}

// SeverityScoreNotNil applies the NotNil predicate on the "severity_score" field.
func SeverityScoreNotNil() predicate.PainPoint {
	return predicate.PainPoint(sql.FieldNotNull(FieldSeverityScore))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PainPoint {
	return predicate.PainPoint(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSearch applies the HasEdge predicate on the "search" edge.
func HasSearch() predicate.PainPoint {
	return predicate.PainPoint(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SearchTable, SearchColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSearchWith applies the HasEdge predicate on the "search" edge with a given conditions (other predicates).
func HasSearchWith(preds ...predicate.Search) predicate.PainPoint {
	return predicate.PainPoint(func(s *sql.Selector) {
		step := newSearchStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQuotes applies the HasEdge predicate on the "quotes" edge.
func HasQuotes() predicate.PainPoint {
	return predicate.PainPoint(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, QuotesTable, QuotesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuotesWith applies the HasEdge predicate on the "quotes" edge with a given conditions (other predicates).
func HasQuotesWith(preds ...predicate.PainPointQuote) predicate.PainPoint {
	return predicate.PainPoint(func(s *sql.Selector) {
		step := newQuotesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PainPoint) predicate.PainPoint {
	return predicate.PainPoint(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PainPoint) predicate.PainPoint {
	return predicate.PainPoint(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PainPoint) predicate.PainPoint {
	return predicate.PainPoint(sql.NotPredicates(p))
}
