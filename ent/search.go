// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/painscope/painscope/ent/aianalysis"
	"github.com/painscope/painscope/ent/search"
	"github.com/painscope/painscope/ent/searchsummary"
)

// Search is the model entity for the Search schema.
type Search struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// Tags holds the value of the "tags" field.
	Tags []string `json:"tags,omitempty"`
	// TimeRange holds the value of the "time_range" field.
	TimeRange search.TimeRange `json:"time_range,omitempty"`
	// SortBy holds the value of the "sort_by" field.
	SortBy search.SortBy `json:"sort_by,omitempty"`
	// Status holds the value of the "status" field.
	Status search.Status `json:"status,omitempty"`
	// MinUpvotes holds the value of the "min_upvotes" field.
	MinUpvotes int `json:"min_upvotes,omitempty"`
	// User-facing failure or retry message
	ErrorMessage *string `json:"error_message,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// Doubles as the processing heartbeat for stale detection
	LastRetryAt *time.Time `json:"last_retry_at,omitempty"`
	// Back-off gate: pending rows are not claimable before this
	NextRetryAt *time.Time `json:"next_retry_at,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SearchQuery when eager-loading is set.
	Edges        SearchEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SearchEdges holds the relations/edges for other nodes in the graph.
type SearchEdges struct {
	// Summary holds the value of the summary edge.
	Summary *SearchSummary `json:"summary,omitempty"`
	// PainPoints holds the value of the pain_points edge.
	PainPoints []*PainPoint `json:"pain_points,omitempty"`
	// Analysis holds the value of the analysis edge.
	Analysis *AiAnalysis `json:"analysis,omitempty"`
	// Events holds the value of the events edge.
	Events []*SearchEvent `json:"events,omitempty"`
	// Usages holds the value of the usages edge.
	Usages []*ApiUsage `json:"usages,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// SummaryOrErr returns the Summary value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SearchEdges) SummaryOrErr() (*SearchSummary, error) {
	if e.Summary != nil {
		return e.Summary, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: searchsummary.Label}
	}
	return nil, &NotLoadedError{edge: "summary"}
}

// PainPointsOrErr returns the PainPoints value or an error if the edge
// was not loaded in eager-loading.
func (e SearchEdges) PainPointsOrErr() ([]*PainPoint, error) {
	if e.loadedTypes[1] {
		return e.PainPoints, nil
	}
	return nil, &NotLoadedError{edge: "pain_points"}
}

// AnalysisOrErr returns the Analysis value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SearchEdges) AnalysisOrErr() (*AiAnalysis, error) {
	if e.Analysis != nil {
		return e.Analysis, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: aianalysis.Label}
	}
	return nil, &NotLoadedError{edge: "analysis"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e SearchEdges) EventsOrErr() ([]*SearchEvent, error) {
	if e.loadedTypes[3] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// UsagesOrErr returns the Usages value or an error if the edge
// was not loaded in eager-loading.
func (e SearchEdges) UsagesOrErr() ([]*ApiUsage, error) {
	if e.loadedTypes[4] {
		return e.Usages, nil
	}
	return nil, &NotLoadedError{edge: "usages"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Search) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case search.FieldTags:
			values[i] = new([]byte)
		case search.FieldMinUpvotes, search.FieldRetryCount:
			values[i] = new(sql.NullInt64)
		case search.FieldID, search.FieldTopic, search.FieldTimeRange, search.FieldSortBy, search.FieldStatus, search.FieldErrorMessage, search.FieldPodID:
			values[i] = new(sql.NullString)
		case search.FieldLastRetryAt, search.FieldNextRetryAt, search.FieldCreatedAt, search.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Search fields.
func (_m *Search) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case search.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case search.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case search.FieldTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tags); err != nil {
					return fmt.Errorf("unmarshal field tags: %w", err)
				}
			}
		case search.FieldTimeRange:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field time_range", values[i])
			} else if value.Valid {
				_m.TimeRange = search.TimeRange(value.String)
			}
		case search.FieldSortBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sort_by", values[i])
			} else if value.Valid {
				_m.SortBy = search.SortBy(value.String)
			}
		case search.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = search.Status(value.String)
			}
		case search.FieldMinUpvotes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field min_upvotes", values[i])
			} else if value.Valid {
				_m.MinUpvotes = int(value.Int64)
			}
		case search.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case search.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case search.FieldLastRetryAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_retry_at", values[i])
			} else if value.Valid {
				_m.LastRetryAt = new(time.Time)
				*_m.LastRetryAt = value.Time
			}
		case search.FieldNextRetryAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_retry_at", values[i])
			} else if value.Valid {
				_m.NextRetryAt = new(time.Time)
				*_m.NextRetryAt = value.Time
			}
		case search.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case search.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case search.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Search.
// This includes values selected through modifiers, order, etc.
func (_m *Search) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySummary queries the "summary" edge of the Search entity.
func (_m *Search) QuerySummary() *SearchSummaryQuery {
	return NewSearchClient(_m.config).QuerySummary(_m)
}

// QueryPainPoints queries the "pain_points" edge of the Search entity.
func (_m *Search) QueryPainPoints() *PainPointQuery {
	return NewSearchClient(_m.config).QueryPainPoints(_m)
}

// QueryAnalysis queries the "analysis" edge of the Search entity.
func (_m *Search) QueryAnalysis() *AiAnalysisQuery {
	return NewSearchClient(_m.config).QueryAnalysis(_m)
}

// QueryEvents queries the "events" edge of the Search entity.
func (_m *Search) QueryEvents() *SearchEventQuery {
	return NewSearchClient(_m.config).QueryEvents(_m)
}

// QueryUsages queries the "usages" edge of the Search entity.
func (_m *Search) QueryUsages() *ApiUsageQuery {
	return NewSearchClient(_m.config).QueryUsages(_m)
}

// Update returns a builder for updating this Search.
// Note that you need to call Search.Unwrap() before calling this method if this Search
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Search) Update() *SearchUpdateOne {
	return NewSearchClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Search entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Search) Unwrap() *Search {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Search is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Search) String() string {
	var builder strings.Builder
	builder.WriteString("Search(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tags))
	builder.WriteString(", ")
	builder.WriteString("time_range=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeRange))
	builder.WriteString(", ")
	builder.WriteString("sort_by=")
	builder.WriteString(fmt.Sprintf("%v", _m.SortBy))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("min_upvotes=")
	builder.WriteString(fmt.Sprintf("%v", _m.MinUpvotes))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteString(", ")
	if v := _m.LastRetryAt; v != nil {
		builder.WriteString("last_retry_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.NextRetryAt; v != nil {
		builder.WriteString("next_retry_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Searches is a parsable slice of Search.
type Searches []*Search
