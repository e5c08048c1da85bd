// Code generated by ent, DO NOT EDIT.

package searchsummary

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the searchsummary type in the database.
	Label = "search_summary"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSearchID holds the string denoting the search_id field in the database.
	FieldSearchID = "search_id"
	// FieldTotalPosts holds the string denoting the total_posts field in the database.
	FieldTotalPosts = "total_posts"
	// FieldTotalComments holds the string denoting the total_comments field in the database.
	FieldTotalComments = "total_comments"
	// FieldTotalMentions holds the string denoting the total_mentions field in the database.
	FieldTotalMentions = "total_mentions"
	// FieldSourceTags holds the string denoting the source_tags field in the database.
	FieldSourceTags = "source_tags"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSearch holds the string denoting the search edge name in mutations.
	EdgeSearch = "search"
	// SearchFieldID holds the string denoting the ID field of the Search.
	SearchFieldID = "search_id"
	// Table holds the table name of the searchsummary in the database.
	Table = "search_summaries"
	// SearchTable is the table that holds the search relation/edge.
	SearchTable = "search_summaries"
	// SearchInverseTable is the table name for the Search entity.
	// It exists in this package in order to avoid circular dependency with the "search" package.
	SearchInverseTable = "searches"
	// SearchColumn is the table column denoting the search relation/edge.
	SearchColumn = "search_id"
)

// Columns holds all SQL columns for searchsummary fields.
var Columns = []string{
	FieldID,
	FieldSearchID,
	FieldTotalPosts,
	FieldTotalComments,
	FieldTotalMentions,
	FieldSourceTags,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTotalPosts holds the default value on creation for the "total_posts" field.
	DefaultTotalPosts int
	// DefaultTotalComments holds the default value on creation for the "total_comments" field.
	DefaultTotalComments int
	// DefaultTotalMentions holds the default value on creation for the "total_mentions" field.
	DefaultTotalMentions int
	// DefaultSourceTags holds the default value on creation for the "source_tags" field.
	DefaultSourceTags []string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the SearchSummary queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySearchID orders the results by the search_id field.
func BySearchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSearchID, opts...).ToFunc()
}

// ByTotalPosts orders the results by the total_posts field.
func ByTotalPosts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalPosts, opts...).ToFunc()
}

// ByTotalComments orders the results by the total_comments field.
func ByTotalComments(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalComments, opts...).ToFunc()
}

// ByTotalMentions orders the results by the total_mentions field.
func ByTotalMentions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalMentions, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySearchField orders the results by search field.
func BySearchField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSearchStep(), sql.OrderByField(field, opts...))
	}
}
func newSearchStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SearchInverseTable, SearchFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, SearchTable, SearchColumn),
	)
}
