// Code generated by ent, DO NOT EDIT.

package apiusage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the apiusage type in the database.
	Label = "api_usage"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSearchID holds the string denoting the search_id field in the database.
	FieldSearchID = "search_id"
	// FieldService holds the string denoting the service field in the database.
	FieldService = "service"
	// FieldTokensUsed holds the string denoting the tokens_used field in the database.
	FieldTokensUsed = "tokens_used"
	// FieldEstimatedCostUsd holds the string denoting the estimated_cost_usd field in the database.
	FieldEstimatedCostUsd = "estimated_cost_usd"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSearch holds the string denoting the search edge name in mutations.
	EdgeSearch = "search"
	// SearchFieldID holds the string denoting the ID field of the Search.
	SearchFieldID = "search_id"
	// Table holds the table name of the apiusage in the database.
	Table = "api_usages"
	// SearchTable is the table that holds the search relation/edge.
	SearchTable = "api_usages"
	// SearchInverseTable is the table name for the Search entity.
	// It exists in this package in order to avoid circular dependency with the "search" package.
	SearchInverseTable = "searches"
	// SearchColumn is the table column denoting the search relation/edge.
	SearchColumn = "search_id"
)

// Columns holds all SQL columns for apiusage fields.
var Columns = []string{
	FieldID,
	FieldSearchID,
	FieldService,
	FieldTokensUsed,
	FieldEstimatedCostUsd,
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
	// DefaultTokensUsed holds the default value on creation for the "tokens_used" field.
	DefaultTokensUsed int
	// DefaultEstimatedCostUsd holds the default value on creation for the "estimated_cost_usd" field.
	DefaultEstimatedCostUsd float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ApiUsage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySearchID orders the results by the search_id field.
func BySearchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSearchID, opts...).ToFunc()
}

// ByService orders the results by the service field.
func ByService(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldService, opts...).ToFunc()
}

// ByTokensUsed orders the results by the tokens_used field.
func ByTokensUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensUsed, opts...).ToFunc()
}

// ByEstimatedCostUsd orders the results by the estimated_cost_usd field.
func ByEstimatedCostUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedCostUsd, opts...).ToFunc()
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
		sqlgraph.Edge(sqlgraph.M2O, true, SearchTable, SearchColumn),
	)
}
