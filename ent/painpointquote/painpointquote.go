// Code generated by ent, DO NOT EDIT.

package painpointquote

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the painpointquote type in the database.
	Label = "pain_point_quote"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "quote_id"
	// FieldPainPointID holds the string denoting the pain_point_id field in the database.
	FieldPainPointID = "pain_point_id"
	// FieldQuoteText holds the string denoting the quote_text field in the database.
	FieldQuoteText = "quote_text"
	// FieldAuthorHandle holds the string denoting the author_handle field in the database.
	FieldAuthorHandle = "author_handle"
	// FieldUpvotes holds the string denoting the upvotes field in the database.
	FieldUpvotes = "upvotes"
	// FieldPermalink holds the string denoting the permalink field in the database.
	FieldPermalink = "permalink"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgePainPoint holds the string denoting the pain_point edge name in mutations.
	EdgePainPoint = "pain_point"
	// PainPointFieldID holds the string denoting the ID field of the PainPoint.
	PainPointFieldID = "pain_point_id"
	// Table holds the table name of the painpointquote in the database.
	Table = "pain_point_quotes"
	// PainPointTable is the table that holds the pain_point relation/edge.
	PainPointTable = "pain_point_quotes"
	// PainPointInverseTable is the table name for the PainPoint entity.
	// It exists in this package in order to avoid circular dependency with the "painpoint" package.
	PainPointInverseTable = "pain_points"
	// PainPointColumn is the table column denoting the pain_point relation/edge.
	PainPointColumn = "pain_point_id"
)

// Columns holds all SQL columns for painpointquote fields.
var Columns = []string{
	FieldID,
	FieldPainPointID,
	FieldQuoteText,
	FieldAuthorHandle,
	FieldUpvotes,
	FieldPermalink,
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
	// DefaultUpvotes holds the default value on creation for the "upvotes" field.
	DefaultUpvotes int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the PainPointQuote queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPainPointID orders the results by the pain_point_id field.
func ByPainPointID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPainPointID, opts...).ToFunc()
}

// ByQuoteText orders the results by the quote_text field.
func ByQuoteText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuoteText, opts...).ToFunc()
}

// ByAuthorHandle orders the results by the author_handle field.
func ByAuthorHandle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthorHandle, opts...).ToFunc()
}

// ByUpvotes orders the results by the upvotes field.
func ByUpvotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpvotes, opts...).ToFunc()
}

// ByPermalink orders the results by the permalink field.
func ByPermalink(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPermalink, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByPainPointField orders the results by pain_point field.
func ByPainPointField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPainPointStep(), sql.OrderByField(field, opts...))
	}
}
func newPainPointStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PainPointInverseTable, PainPointFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PainPointTable, PainPointColumn),
	)
}
