// Code generated by ent, DO NOT EDIT.

package search

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the search type in the database.
	Label = "search"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "search_id"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldTimeRange holds the string denoting the time_range field in the database.
	FieldTimeRange = "time_range"
	// FieldSortBy holds the string denoting the sort_by field in the database.
	FieldSortBy = "sort_by"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldMinUpvotes holds the string denoting the min_upvotes field in the database.
	FieldMinUpvotes = "min_upvotes"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldRetryCount holds the string denoting the retry_count field in the database.
	FieldRetryCount = "retry_count"
	// FieldLastRetryAt holds the string denoting the last_retry_at field in the database.
	FieldLastRetryAt = "last_retry_at"
	// FieldNextRetryAt holds the string denoting the next_retry_at field in the database.
	FieldNextRetryAt = "next_retry_at"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeSummary holds the string denoting the summary edge name in mutations.
	EdgeSummary = "summary"
	// EdgePainPoints holds the string denoting the pain_points edge name in mutations.
	EdgePainPoints = "pain_points"
	// EdgeAnalysis holds the string denoting the analysis edge name in mutations.
	EdgeAnalysis = "analysis"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// EdgeUsages holds the string denoting the usages edge name in mutations.
	EdgeUsages = "usages"
	// SearchSummaryFieldID holds the string denoting the ID field of the SearchSummary.
	SearchSummaryFieldID = "id"
	// PainPointFieldID holds the string denoting the ID field of the PainPoint.
	PainPointFieldID = "pain_point_id"
	// AiAnalysisFieldID holds the string denoting the ID field of the AiAnalysis.
	AiAnalysisFieldID = "id"
	// SearchEventFieldID holds the string denoting the ID field of the SearchEvent.
	SearchEventFieldID = "id"
	// ApiUsageFieldID holds the string denoting the ID field of the ApiUsage.
	ApiUsageFieldID = "id"
	// Table holds the table name of the search in the database.
	Table = "searches"
	// SummaryTable is the table that holds the summary relation/edge.
	SummaryTable = "search_summaries"
	// SummaryInverseTable is the table name for the SearchSummary entity.
	// It exists in this package in order to avoid circular dependency with the "searchsummary" package.
	SummaryInverseTable = "search_summaries"
	// SummaryColumn is the table column denoting the summary relation/edge.
	SummaryColumn = "search_id"
	// PainPointsTable is the table that holds the pain_points relation/edge.
	PainPointsTable = "pain_points"
	// PainPointsInverseTable is the table name for the PainPoint entity.
	// It exists in this package in order to avoid circular dependency with the "painpoint" package.
	PainPointsInverseTable = "pain_points"
	// PainPointsColumn is the table column denoting the pain_points relation/edge.
	PainPointsColumn = "search_id"
	// AnalysisTable is the table that holds the analysis relation/edge.
	AnalysisTable = "ai_analyses"
	// AnalysisInverseTable is the table name for the AiAnalysis entity.
	// It exists in this package in order to avoid circular dependency with the "aianalysis" package.
	AnalysisInverseTable = "ai_analyses"
	// AnalysisColumn is the table column denoting the analysis relation/edge.
	AnalysisColumn = "search_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "search_events"
	// EventsInverseTable is the table name for the SearchEvent entity.
	// It exists in this package in order to avoid circular dependency with the "searchevent" package.
	EventsInverseTable = "search_events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "search_id"
	// UsagesTable is the table that holds the usages relation/edge.
	UsagesTable = "api_usages"
	// UsagesInverseTable is the table name for the ApiUsage entity.
	// It exists in this package in order to avoid circular dependency with the "apiusage" package.
	UsagesInverseTable = "api_usages"
	// UsagesColumn is the table column denoting the usages relation/edge.
	UsagesColumn = "search_id"
)

// Columns holds all SQL columns for search fields.
var Columns = []string{
	FieldID,
	FieldTopic,
	FieldTags,
	FieldTimeRange,
	FieldSortBy,
	FieldStatus,
	FieldMinUpvotes,
	FieldErrorMessage,
	FieldRetryCount,
	FieldLastRetryAt,
	FieldNextRetryAt,
	FieldPodID,
	FieldCreatedAt,
	FieldCompletedAt,
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
	// DefaultTags holds the default value on creation for the "tags" field.
	DefaultTags []string
	// DefaultMinUpvotes holds the default value on creation for the "min_upvotes" field.
	DefaultMinUpvotes int
	// DefaultRetryCount holds the default value on creation for the "retry_count" field.
	DefaultRetryCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// TimeRange defines the type for the "time_range" enum field.
type TimeRange string

// TimeRangeMonth is the default value of the TimeRange enum.
const DefaultTimeRange = TimeRangeMonth

// TimeRange values.
const (
	TimeRangeWeek  TimeRange = "week"
	TimeRangeMonth TimeRange = "month"
	TimeRangeYear  TimeRange = "year"
	TimeRangeAll   TimeRange = "all"
)

func (tr TimeRange) String() string {
	return string(tr)
}

// TimeRangeValidator is a validator for the "time_range" field enum values. It is called by the builders before save.
func TimeRangeValidator(tr TimeRange) error {
	switch tr {
	case TimeRangeWeek, TimeRangeMonth, TimeRangeYear, TimeRangeAll:
		return nil
	default:
		return fmt.Errorf("search: invalid enum value for time_range field: %q", tr)
	}
}

// SortBy defines the type for the "sort_by" enum field.
type SortBy string

// SortByRelevance is the default value of the SortBy enum.
const DefaultSortBy = SortByRelevance

// SortBy values.
const (
	SortByRelevance SortBy = "relevance"
	SortByUpvotes   SortBy = "upvotes"
	SortByRecency   SortBy = "recency"
)

func (sb SortBy) String() string {
	return string(sb)
}

// SortByValidator is a validator for the "sort_by" field enum values. It is called by the builders before save.
func SortByValidator(sb SortBy) error {
	switch sb {
	case SortByRelevance, SortByUpvotes, SortByRecency:
		return nil
	default:
		return fmt.Errorf("search: invalid enum value for sort_by field: %q", sb)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("search: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Search queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByTimeRange orders the results by the time_range field.
func ByTimeRange(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeRange, opts...).ToFunc()
}

// BySortBy orders the results by the sort_by field.
func BySortBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSortBy, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByMinUpvotes orders the results by the min_upvotes field.
func ByMinUpvotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinUpvotes, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByRetryCount orders the results by the retry_count field.
func ByRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryCount, opts...).ToFunc()
}

// ByLastRetryAt orders the results by the last_retry_at field.
func ByLastRetryAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastRetryAt, opts...).ToFunc()
}

// ByNextRetryAt orders the results by the next_retry_at field.
func ByNextRetryAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextRetryAt, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// BySummaryField orders the results by summary field.
func BySummaryField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSummaryStep(), sql.OrderByField(field, opts...))
	}
}

// ByPainPointsCount orders the results by pain_points count.
func ByPainPointsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPainPointsStep(), opts...)
	}
}

// ByPainPoints orders the results by pain_points terms.
func ByPainPoints(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPainPointsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAnalysisField orders the results by analysis field.
func ByAnalysisField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnalysisStep(), sql.OrderByField(field, opts...))
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByUsagesCount orders the results by usages count.
func ByUsagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newUsagesStep(), opts...)
	}
}

// ByUsages orders the results by usages terms.
func ByUsages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUsagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSummaryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SummaryInverseTable, SearchSummaryFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, SummaryTable, SummaryColumn),
	)
}
func newPainPointsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PainPointsInverseTable, PainPointFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PainPointsTable, PainPointsColumn),
	)
}
func newAnalysisStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnalysisInverseTable, AiAnalysisFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, AnalysisTable, AnalysisColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, SearchEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
func newUsagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UsagesInverseTable, ApiUsageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, UsagesTable, UsagesColumn),
	)
}
