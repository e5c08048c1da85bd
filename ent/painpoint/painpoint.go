// Code generated by ent, DO NOT EDIT.

package painpoint

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the painpoint type in the database.
	Label = "pain_point"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "pain_point_id"
	// FieldSearchID holds the string denoting the search_id field in the database.
	FieldSearchID = "search_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldSourceTag holds the string denoting the source_tag field in the database.
	FieldSourceTag = "source_tag"
	// FieldMentionsCount holds the string denoting the mentions_count field in the database.
	FieldMentionsCount = "mentions_count"
	// FieldSeverityScore holds the string denoting the severity_score field in the database.
	FieldSeverityScore = "severity_score"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSearch holds the string denoting the search edge name in mutations.
	EdgeSearch = "search"
	// EdgeQuotes holds the string denoting the quotes edge name in mutations.
	EdgeQuotes = "quotes"
	// SearchFieldID holds the string denoting the ID field of the Search.
	SearchFieldID = "search_id"
	// PainPointQuoteFieldID holds the string denoting the ID field of the PainPointQuote.
	PainPointQuoteFieldID = "quote_id"
	// Table holds the table name of the painpoint in the database.
	Table = "pain_points"
	// SearchTable is the table that holds the search relation/edge.
	SearchTable = "pain_points"
	// SearchInverseTable is the table name for the Search entity.
	// It exists in this package in order to avoid circular dependency with the "search" package.
	SearchInverseTable = "searches"
	// SearchColumn is the table column denoting the search relation/edge.
	SearchColumn = "search_id"
	// QuotesTable is the table that holds the quotes relation/edge.
	QuotesTable = "pain_point_quotes"
	// QuotesInverseTable is the table name for the PainPointQuote entity.
	// It exists in this package in order to avoid circular dependency with the "painpointquote" package.
	QuotesInverseTable = "pain_point_quotes"
	// QuotesColumn is the table column denoting the quotes relation/edge.
	QuotesColumn = "pain_point_id"
)

// Columns holds all SQL columns for painpoint fields.
var Columns = []string{
	FieldID,
	FieldSearchID,
	FieldTitle,
	FieldSourceTag,
	FieldMentionsCount,
	FieldSeverityScore,
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
	// DefaultMentionsCount holds the default value on creation for the "mentions_count" field.
	DefaultMentionsCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the PainPoint queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySearchID orders the results by the search_id field.
func BySearchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSearchID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// BySourceTag orders the results by the source_tag field.
func BySourceTag(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceTag, opts...).ToFunc()
}

// ByMentionsCount orders the results by the mentions_count field.
func ByMentionsCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMentionsCount, opts...).ToFunc()
}

// BySeverityScore orders the results by the severity_score field.
func BySeverityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverityScore, opts...).ToFunc()
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

// ByQuotesCount orders the results by quotes count.
func ByQuotesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newQuotesStep(), opts...)
	}
}

// ByQuotes orders the results by quotes terms.
func ByQuotes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQuotesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSearchStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SearchInverseTable, SearchFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SearchTable, SearchColumn),
	)
}
func newQuotesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QuotesInverseTable, PainPointQuoteFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, QuotesTable, QuotesColumn),
	)
}
