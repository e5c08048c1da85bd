// Code generated by ent, DO NOT EDIT.

package painpointquote

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/painscope/painscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldContainsFold(FieldID, id))
}

// PainPointID applies equality check predicate on the "pain_point_id" field. It's identical to PainPointIDEQ.
func PainPointID(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldEQ(FieldPainPointID, v))
}

// QuoteText applies equality check predicate on the "quote_text" field. It's identical to QuoteTextEQ.
func QuoteText(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldEQ(FieldQuoteText, v))
}

// AuthorHandle applies equality check predicate on the "author_handle" field. It's identical to AuthorHandleEQ.
func AuthorHandle(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldEQ(FieldAuthorHandle, v))
}

// Upvotes applies equality check predicate on the "upvotes" field. It's identical to UpvotesEQ.
func Upvotes(v int) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldEQ(FieldUpvotes, v))
}

// Permalink applies equality check predicate on the "permalink" field. It's identical to PermalinkEQ.
func Permalink(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldEQ(FieldPermalink, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldEQ(FieldCreatedAt, v))
}

// PainPointIDEQ applies the EQ predicate on the "pain_point_id" field.
func PainPointIDEQ(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldEQ(FieldPainPointID, v))
}

// PainPointIDNEQ applies the NEQ predicate on the "pain_point_id" field.
func PainPointIDNEQ(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldNEQ(FieldPainPointID, v))
}

// PainPointIDIn applies the In predicate on the "pain_point_id" field.
func PainPointIDIn(vs ...string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldIn(FieldPainPointID, vs...))
}

// PainPointIDNotIn applies the NotIn predicate on the "pain_point_id" field.
func PainPointIDNotIn(vs ...string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldNotIn(FieldPainPointID, vs...))
}

// PainPointIDGT applies the GT predicate on the "pain_point_id" field.
func PainPointIDGT(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldGT(FieldPainPointID, v))
}

// PainPointIDGTE applies the GTE predicate on the "pain_point_id" field.
func PainPointIDGTE(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldGTE(FieldPainPointID, v))
}

// PainPointIDLT applies the LT predicate on the "pain_point_id" field.
func PainPointIDLT(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldLT(FieldPainPointID, v))
}

// PainPointIDLTE applies the LTE predicate on the "pain_point_id" field.
func PainPointIDLTE(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldLTE(FieldPainPointID, v))
}

// PainPointIDContains applies the Contains predicate on the "pain_point_id" field.
func PainPointIDContains(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldContains(FieldPainPointID, v))
}

// PainPointIDHasPrefix applies the HasPrefix predicate on the "pain_point_id" field.
func PainPointIDHasPrefix(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldHasPrefix(FieldPainPointID, v))
}

// PainPointIDHasSuffix applies the HasSuffix predicate on the "pain_point_id" field.
func PainPointIDHasSuffix(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldHasSuffix(FieldPainPointID, v))
}

// PainPointIDEqualFold applies the EqualFold predicate on the "pain_point_id" field.
func PainPointIDEqualFold(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldEqualFold(FieldPainPointID, v))
}

// PainPointIDContainsFold applies the ContainsFold predicate on the "pain_point_id" field.
func PainPointIDContainsFold(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldContainsFold(FieldPainPointID, v))
}

// QuoteTextEQ applies the EQ predicate on the "quote_text" field.
func QuoteTextEQ(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldEQ(FieldQuoteText, v))
}

// QuoteTextNEQ applies the NEQ predicate on the "quote_text" field.
func QuoteTextNEQ(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldNEQ(FieldQuoteText, v))
}

// QuoteTextIn applies the In predicate on the "quote_text" field.
func QuoteTextIn(vs ...string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldIn(FieldQuoteText, vs...))
}

// QuoteTextNotIn applies the NotIn predicate on the "quote_text" field.
func QuoteTextNotIn(vs ...string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldNotIn(FieldQuoteText, vs...))
}

// QuoteTextGT applies the GT predicate on the "quote_text" field.
func QuoteTextGT(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldGT(FieldQuoteText, v))
}

// QuoteTextGTE applies the GTE predicate on the "quote_text" field.
func QuoteTextGTE(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldGTE(FieldQuoteText, v))
}

// QuoteTextLT applies the LT predicate on the "quote_text" field.
func QuoteTextLT(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldLT(FieldQuoteText, v))
}

// QuoteTextLTE applies the LTE predicate on the "quote_text" field.
func QuoteTextLTE(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldLTE(FieldQuoteText, v))
}

// QuoteTextContains applies the Contains predicate on the "quote_text" field.
func QuoteTextContains(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldContains(FieldQuoteText, v))
}

// QuoteTextHasPrefix applies the HasPrefix predicate on the "quote_text" field.
func QuoteTextHasPrefix(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldHasPrefix(FieldQuoteText, v))
}

// QuoteTextHasSuffix applies the HasSuffix predicate on the "quote_text" field.
func QuoteTextHasSuffix(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldHasSuffix(FieldQuoteText, v))
}

// QuoteTextEqualFold applies the EqualFold predicate on the "quote_text" field.
func QuoteTextEqualFold(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldEqualFold(FieldQuoteText, v))
}

// QuoteTextContainsFold applies the ContainsFold predicate on the "quote_text" field.
func QuoteTextContainsFold(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldContainsFold(FieldQuoteText, v))
}

// AuthorHandleEQ applies the EQ predicate on the "author_handle" field.
func AuthorHandleEQ(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldEQ(FieldAuthorHandle, v))
}

// AuthorHandleNEQ applies the NEQ predicate on the "author_handle" field.
func AuthorHandleNEQ(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldNEQ(FieldAuthorHandle, v))
}

// AuthorHandleIn applies the In predicate on the "author_handle" field.
func AuthorHandleIn(vs ...string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldIn(FieldAuthorHandle, vs...))
}

// AuthorHandleNotIn applies the NotIn predicate on the "author_handle" field.
func AuthorHandleNotIn(vs ...string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldNotIn(FieldAuthorHandle, vs...))
}

// AuthorHandleGT applies the GT predicate on the "author_handle" field.
func AuthorHandleGT(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldGT(FieldAuthorHandle, v))
}

// AuthorHandleGTE applies the GTE predicate on the "author_handle" field.
func AuthorHandleGTE(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldGTE(FieldAuthorHandle, v))
}

// AuthorHandleLT applies the LT predicate on the "author_handle" field.
func AuthorHandleLT(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldLT(FieldAuthorHandle, v))
}

// AuthorHandleLTE applies the LTE predicate on the "author_handle" field.
func AuthorHandleLTE(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldLTE(FieldAuthorHandle, v))
}

// AuthorHandleContains applies the Contains predicate on the "author_handle" field.
func AuthorHandleContains(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldContains(FieldAuthorHandle, v))
}

// AuthorHandleHasPrefix applies the HasPrefix predicate on the "author_handle" field.
func AuthorHandleHasPrefix(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldHasPrefix(FieldAuthorHandle, v))
}

// AuthorHandleHasSuffix applies the HasSuffix predicate on the "author_handle" field.
func AuthorHandleHasSuffix(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldHasSuffix(FieldAuthorHandle, v))
}

// AuthorHandleIsNil applies the IsNil predicate on the "author_handle" field.
func AuthorHandleIsNil() predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldIsNull(FieldAuthorHandle))
}

// AuthorHandleNotNil applies the NotNil predicate on the "author_handle" field.
func AuthorHandleNotNil() predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldNotNull(FieldAuthorHandle))
}

// AuthorHandleEqualFold applies the EqualFold predicate on the "author_handle" field.
func AuthorHandleEqualFold(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldEqualFold(FieldAuthorHandle, v))
}

// AuthorHandleContainsFold applies the ContainsFold predicate on the "author_handle" field.
func AuthorHandleContainsFold(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldContainsFold(FieldAuthorHandle, v))
}

// UpvotesEQ applies the EQ predicate on the "upvotes" field.
func UpvotesEQ(v int) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldEQ(FieldUpvotes, v))
}

// UpvotesNEQ applies the NEQ predicate on the "upvotes" field.
func UpvotesNEQ(v int) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldNEQ(FieldUpvotes, v))
}

// UpvotesIn applies the In predicate on the "upvotes" field.
func UpvotesIn(vs ...int) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldIn(FieldUpvotes, vs...))
}

// UpvotesNotIn applies the NotIn predicate on the "upvotes" field.
func UpvotesNotIn(vs ...int) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldNotIn(FieldUpvotes, vs...))
}

// UpvotesGT applies the GT predicate on the "upvotes" field.
func UpvotesGT(v int) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldGT(FieldUpvotes, v))
}

// UpvotesGTE applies the GTE predicate on the "upvotes" field.
func UpvotesGTE(v int) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldGTE(FieldUpvotes, v))
}

// UpvotesLT applies the LT predicate on the "upvotes" field.
func UpvotesLT(v int) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldLT(FieldUpvotes, v))
}

// UpvotesLTE applies the LTE predicate on the "upvotes" field.
func UpvotesLTE(v int) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldLTE(FieldUpvotes, v))
}

// PermalinkEQ applies the EQ predicate on the "permalink" field.
func PermalinkEQ(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldEQ(FieldPermalink, v))
}

// PermalinkNEQ applies the NEQ predicate on the "permalink" field.
func PermalinkNEQ(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldNEQ(FieldPermalink, v))
}

// PermalinkIn applies the In predicate on the "permalink" field.
func PermalinkIn(vs ...string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldIn(FieldPermalink, vs...))
}

// PermalinkNotIn applies the NotIn predicate on the "permalink" field.
func PermalinkNotIn(vs ...string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldNotIn(FieldPermalink, vs...))
}

// PermalinkGT applies the GT predicate on the "permalink" field.
func PermalinkGT(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldGT(FieldPermalink, v))
}

// PermalinkGTE applies the GTE predicate on the "permalink" field.
func PermalinkGTE(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldGTE(FieldPermalink, v))
}

// PermalinkLT applies the LT predicate on the "permalink" field.
func PermalinkLT(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldLT(FieldPermalink, v))
}

// PermalinkLTE applies the LTE predicate on the "permalink" field.
func PermalinkLTE(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldLTE(FieldPermalink, v))
}

// PermalinkContains applies the Contains predicate on the "permalink" field.
func PermalinkContains(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldContains(FieldPermalink, v))
}

// PermalinkHasPrefix applies the HasPrefix predicate on the "permalink" field.
func PermalinkHasPrefix(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldHasPrefix(FieldPermalink, v))
}

// PermalinkHasSuffix applies the HasSuffix predicate on the "permalink" field.
func PermalinkHasSuffix(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldHasSuffix(FieldPermalink, v))
}

// PermalinkEqualFold applies the EqualFold predicate on the "permalink" field.
func PermalinkEqualFold(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldEqualFold(FieldPermalink, v))
}

// PermalinkContainsFold applies the ContainsFold predicate on the "permalink" field.
func PermalinkContainsFold(v string) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldContainsFold(FieldPermalink, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.FieldLTE(FieldCreatedAt, v))
}

// HasPainPoint applies the HasEdge predicate on the "pain_point" edge.
func HasPainPoint() predicate.PainPointQuote {
	return predicate.PainPointQuote(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PainPointTable, PainPointColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPainPointWith applies the HasEdge predicate on the "pain_point" edge with a given conditions (other predicates).
func HasPainPointWith(preds ...predicate.PainPoint) predicate.PainPointQuote {
	return predicate.PainPointQuote(func(s *sql.Selector) {
		step := newPainPointStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PainPointQuote) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PainPointQuote) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PainPointQuote) predicate.PainPointQuote {
	return predicate.PainPointQuote(sql.NotPredicates(p))
}
