// Code generated by ent, DO NOT EDIT.

package searchevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the searchevent type in the database.
	Label = "search_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldSearchID holds the string denoting the search_id field in the database.
	FieldSearchID = "search_id"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSearch holds the string denoting the search edge name in mutations.
	EdgeSearch = "search"
	// SearchFieldID holds the string denoting the ID field of the Search.
	SearchFieldID = "search_id"
	// Table holds the table name of the searchevent in the database.
	Table = "search_events"
	// SearchTable is the table that holds the search relation/edge.
	SearchTable = "search_events"
	// SearchInverseTable is the table name for the Search entity.
	// It exists in this package in order to avoid circular dependency with the "search" package.
	SearchInverseTable = "searches"
	// SearchColumn is the table column denoting the search relation/edge.
	SearchColumn = "search_id"
)

// Columns holds all SQL columns for searchevent fields.
var Columns = []string{
	FieldID,
	FieldEventID,
	FieldSearchID,
	FieldPhase,
	FieldEventType,
	FieldPayload,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Phase defines the type for the "phase" enum field.
type Phase string

// Phase values.
const (
	PhaseStories  Phase = "stories"
	PhaseComments Phase = "comments"
	PhaseAnalysis Phase = "analysis"
)

func (ph Phase) String() string {
	return string(ph)
}

// PhaseValidator is a validator for the "phase" field enum values. It is called by the builders before save.
func PhaseValidator(ph Phase) error {
	switch ph {
	case PhaseStories, PhaseComments, PhaseAnalysis:
		return nil
	default:
		return fmt.Errorf("searchevent: invalid enum value for phase field: %q", ph)
	}
}

// EventType defines the type for the "event_type" enum field.
type EventType string

// EventType values.
const (
	EventTypeStoryDiscovered   EventType = "story_discovered"
	EventTypeCommentDiscovered EventType = "comment_discovered"
	EventTypePhaseProgress     EventType = "phase_progress"
	EventTypeSearchStatus      EventType = "search_status"
)

func (et EventType) String() string {
	return string(et)
}

// EventTypeValidator is a validator for the "event_type" field enum values. It is called by the builders before save.
func EventTypeValidator(et EventType) error {
	switch et {
	case EventTypeStoryDiscovered, EventTypeCommentDiscovered, EventTypePhaseProgress, EventTypeSearchStatus:
		return nil
	default:
		return fmt.Errorf("searchevent: invalid enum value for event_type field: %q", et)
	}
}

// OrderOption defines the ordering options for the SearchEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// BySearchID orders the results by the search_id field.
func BySearchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSearchID, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
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
