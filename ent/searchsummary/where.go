// Code generated by ent, DO NOT EDIT.

package searchsummary

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/painscope/painscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldLTE(FieldID, id))
}

// SearchID applies equality check predicate on the "search_id" field. It's identical to SearchIDEQ.
func SearchID(v string) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldEQ(FieldSearchID, v))
}

// TotalPosts applies equality check predicate on the "total_posts" field. It's identical to TotalPostsEQ.
func TotalPosts(v int) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldEQ(FieldTotalPosts, v))
}

// TotalComments applies equality check predicate on the "total_comments" field. It's identical to TotalCommentsEQ.
func TotalComments(v int) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldEQ(FieldTotalComments, v))
}

// TotalMentions applies equality check predicate on the "total_mentions" field. It's identical to TotalMentionsEQ.
func TotalMentions(v int) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldEQ(FieldTotalMentions, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldEQ(FieldCreatedAt, v))
}

// SearchIDEQ applies the EQ predicate on the "search_id" field.
func SearchIDEQ(v string) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldEQ(FieldSearchID, v))
}

// SearchIDNEQ applies the NEQ predicate on the "search_id" field.
func SearchIDNEQ(v string) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldNEQ(FieldSearchID, v))
}

// SearchIDIn applies the In predicate on the "search_id" field.
func SearchIDIn(vs ...string) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldIn(FieldSearchID, vs...))
}

// SearchIDNotIn applies the NotIn predicate on the "search_id" field.
func SearchIDNotIn(vs ...string) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldNotIn(FieldSearchID, vs...))
}

// SearchIDGT applies the GT predicate on the "search_id" field.
func SearchIDGT(v string) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldGT(FieldSearchID, v))
}

// SearchIDGTE applies the GTE predicate on the "search_id" field.
func SearchIDGTE(v string) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldGTE(FieldSearchID, v))
}

// SearchIDLT applies the LT predicate on the "search_id" field.
func SearchIDLT(v string) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldLT(FieldSearchID, v))
}

// SearchIDLTE applies the LTE predicate on the "search_id" field.
func SearchIDLTE(v string) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldLTE(FieldSearchID, v))
}

// SearchIDContains applies the Contains predicate on the "search_id" field.
func SearchIDContains(v string) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldContains(FieldSearchID, v))
}

// SearchIDHasPrefix applies the HasPrefix predicate on the "search_id" field.
func SearchIDHasPrefix(v string) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldHasPrefix(FieldSearchID, v))
}

// SearchIDHasSuffix applies the HasSuffix predicate on the "search_id" field.
func SearchIDHasSuffix(v string) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldHasSuffix(FieldSearchID, v))
}

// SearchIDEqualFold applies the EqualFold predicate on the "search_id" field.
func SearchIDEqualFold(v string) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldEqualFold(FieldSearchID, v))
}

// SearchIDContainsFold applies the ContainsFold predicate on the "search_id" field.
func SearchIDContainsFold(v string) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldContainsFold(FieldSearchID, v))
}

// TotalPostsEQ applies the EQ predicate on the "total_posts" field.
func TotalPostsEQ(v int) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldEQ(FieldTotalPosts, v))
}

// TotalPostsNEQ applies the NEQ predicate on the "total_posts" field.
func TotalPostsNEQ(v int) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldNEQ(FieldTotalPosts, v))
}

// TotalPostsIn applies the In predicate on the "total_posts" field.
func TotalPostsIn(vs ...int) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldIn(FieldTotalPosts, vs...))
}

// TotalPostsNotIn applies the NotIn predicate on the "total_posts" field.
func TotalPostsNotIn(vs ...int) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldNotIn(FieldTotalPosts, vs...))
}

// TotalPostsGT applies the GT predicate on the "total_posts" field.
func TotalPostsGT(v int) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldGT(FieldTotalPosts, v))
}

// TotalPostsGTE applies the GTE predicate on the "total_posts" field.
func TotalPostsGTE(v int) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldGTE(FieldTotalPosts, v))
}

// TotalPostsLT applies the LT predicate on the "total_posts" field.
func TotalPostsLT(v int) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldLT(FieldTotalPosts, v))
}

// TotalPostsLTE applies the LTE predicate on the "total_posts" field.
func TotalPostsLTE(v int) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldLTE(FieldTotalPosts, v))
}

// TotalCommentsEQ applies the EQ predicate on the "total_comments" field.
func TotalCommentsEQ(v int) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldEQ(FieldTotalComments, v))
}

// TotalCommentsNEQ applies the NEQ predicate on the "total_comments" field.
func TotalCommentsNEQ(v int) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldNEQ(FieldTotalComments, v))
}

// TotalCommentsIn applies the In predicate on the "total_comments" field.
func TotalCommentsIn(vs ...int) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldIn(FieldTotalComments, vs...))
}

// TotalCommentsNotIn applies the NotIn predicate on the "total_comments" field.
func TotalCommentsNotIn(vs ...int) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldNotIn(FieldTotalComments, vs...))
}

// TotalCommentsGT applies the GT predicate on the "total_comments" field.
func TotalCommentsGT(v int) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldGT(FieldTotalComments, v))
}

// TotalCommentsGTE applies the GTE predicate on the "total_comments" field.
func TotalCommentsGTE(v int) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldGTE(FieldTotalComments, v))
}

// TotalCommentsLT applies the LT predicate on the "total_comments" field.
func TotalCommentsLT(v int) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldLT(FieldTotalComments, v))
}

// TotalCommentsLTE applies the LTE predicate on the "total_comments" field.
func TotalCommentsLTE(v int) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldLTE(FieldTotalComments, v))
}

// TotalMentionsEQ applies the EQ predicate on the "total_mentions" field.
func TotalMentionsEQ(v int) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldEQ(FieldTotalMentions, v))
}

// TotalMentionsNEQ applies the NEQ predicate on the "total_mentions" field.
func TotalMentionsNEQ(v int) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldNEQ(FieldTotalMentions, v))
}

// TotalMentionsIn applies the In predicate on the "total_mentions" field.
func TotalMentionsIn(vs ...int) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldIn(FieldTotalMentions, vs...))
}

// TotalMentionsNotIn applies the NotIn predicate on the "total_mentions" field.
func TotalMentionsNotIn(vs ...int) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldNotIn(FieldTotalMentions, vs...))
}

// TotalMentionsGT applies the GT predicate on the "total_mentions" field.
func TotalMentionsGT(v int) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldGT(FieldTotalMentions, v))
}

// TotalMentionsGTE applies the GTE predicate on the "total_mentions" field.
func TotalMentionsGTE(v int) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldGTE(FieldTotalMentions, v))
}

// TotalMentionsLT applies the LT predicate on the "total_mentions" field.
func TotalMentionsLT(v int) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldLT(FieldTotalMentions, v))
}

// TotalMentionsLTE applies the LTE predicate on the "total_mentions" field.
func TotalMentionsLTE(v int) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldLTE(FieldTotalMentions, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SearchSummary {
	return predicate.SearchSummary(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSearch applies the HasEdge predicate on the "search" edge.
func HasSearch() predicate.SearchSummary {
	return predicate.SearchSummary(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, SearchTable, SearchColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSearchWith applies the HasEdge predicate on the "search" edge with a given conditions (other predicates).
func HasSearchWith(preds ...predicate.Search) predicate.SearchSummary {
	return predicate.SearchSummary(func(s *sql.Selector) {
		step := newSearchStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SearchSummary) predicate.SearchSummary {
	return predicate.SearchSummary(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SearchSummary) predicate.SearchSummary {
	return predicate.SearchSummary(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SearchSummary) predicate.SearchSummary {
	return predicate.SearchSummary(sql.NotPredicates(p))
}
