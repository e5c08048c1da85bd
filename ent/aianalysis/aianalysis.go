// Code generated by ent, DO NOT EDIT.

package aianalysis

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the aianalysis type in the database.
	Label = "ai_analysis"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSearchID holds the string denoting the search_id field in the database.
	FieldSearchID = "search_id"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldProblemClusters holds the string denoting the problem_clusters field in the database.
	FieldProblemClusters = "problem_clusters"
	// FieldProductIdeas holds the string denoting the product_ideas field in the database.
	FieldProductIdeas = "product_ideas"
	// FieldSchemaVersion holds the string denoting the schema_version field in the database.
	FieldSchemaVersion = "schema_version"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldTokensUsed holds the string denoting the tokens_used field in the database.
	FieldTokensUsed = "tokens_used"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSearch holds the string denoting the search edge name in mutations.
	EdgeSearch = "search"
	// SearchFieldID holds the string denoting the ID field of the Search.
	SearchFieldID = "search_id"
	// Table holds the table name of the aianalysis in the database.
	Table = "ai_analyses"
	// SearchTable is the table that holds the search relation/edge.
	SearchTable = "ai_analyses"
	// SearchInverseTable is the table name for the Search entity.
	// It exists in this package in order to avoid circular dependency with the "search" package.
	SearchInverseTable = "searches"
	// SearchColumn is the table column denoting the search relation/edge.
	SearchColumn = "search_id"
)

// Columns holds all SQL columns for aianalysis fields.
var Columns = []string{
	FieldID,
	FieldSearchID,
	FieldSummary,
	FieldProblemClusters,
	FieldProductIdeas,
	FieldSchemaVersion,
	FieldModel,
	FieldTokensUsed,
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
	// DefaultSchemaVersion holds the default value on creation for the "schema_version" field.
	DefaultSchemaVersion int
	// DefaultTokensUsed holds the default value on creation for the "tokens_used" field.
	DefaultTokensUsed int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the AiAnalysis queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySearchID orders the results by the search_id field.
func BySearchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSearchID, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// BySchemaVersion orders the results by the schema_version field.
func BySchemaVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSchemaVersion, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByTokensUsed orders the results by the tokens_used field.
func ByTokensUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensUsed, opts...).ToFunc()
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
