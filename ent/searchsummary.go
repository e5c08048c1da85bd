// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/painscope/painscope/ent/search"
	"github.com/painscope/painscope/ent/searchsummary"
)

// SearchSummary is the model entity for the SearchSummary schema.
type SearchSummary struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SearchID holds the value of the "search_id" field.
	SearchID string `json:"search_id,omitempty"`
	// TotalPosts holds the value of the "total_posts" field.
	TotalPosts int `json:"total_posts,omitempty"`
	// TotalComments holds the value of the "total_comments" field.
	TotalComments int `json:"total_comments,omitempty"`
	// TotalMentions holds the value of the "total_mentions" field.
	TotalMentions int `json:"total_mentions,omitempty"`
	// SourceTags holds the value of the "source_tags" field.
	SourceTags []string `json:"source_tags,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SearchSummaryQuery when eager-loading is set.
	Edges        SearchSummaryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SearchSummaryEdges holds the relations/edges for other nodes in the graph.
type SearchSummaryEdges struct {
	// Search holds the value of the search edge.
	Search *Search `json:"search,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SearchOrErr returns the Search value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SearchSummaryEdges) SearchOrErr() (*Search, error) {
	if e.Search != nil {
		return e.Search, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: search.Label}
	}
	return nil, &NotLoadedError{edge: "search"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SearchSummary) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case searchsummary.FieldSourceTags:
			values[i] = new([]byte)
		case searchsummary.FieldID, searchsummary.FieldTotalPosts, searchsummary.FieldTotalComments, searchsummary.FieldTotalMentions:
			values[i] = new(sql.NullInt64)
		case searchsummary.FieldSearchID:
			values[i] = new(sql.NullString)
		case searchsummary.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SearchSummary fields.
func (_m *SearchSummary) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case searchsummary.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case searchsummary.FieldSearchID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field search_id", values[i])
			} else if value.Valid {
				_m.SearchID = value.String
			}
		case searchsummary.FieldTotalPosts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_posts", values[i])
			} else if value.Valid {
				_m.TotalPosts = int(value.Int64)
			}
		case searchsummary.FieldTotalComments:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_comments", values[i])
			} else if value.Valid {
				_m.TotalComments = int(value.Int64)
			}
		case searchsummary.FieldTotalMentions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_mentions", values[i])
			} else if value.Valid {
				_m.TotalMentions = int(value.Int64)
			}
		case searchsummary.FieldSourceTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field source_tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SourceTags); err != nil {
					return fmt.Errorf("unmarshal field source_tags: %w", err)
				}
			}
		case searchsummary.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SearchSummary.
// This includes values selected through modifiers, order, etc.
func (_m *SearchSummary) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySearch queries the "search" edge of the SearchSummary entity.
func (_m *SearchSummary) QuerySearch() *SearchQuery {
	return NewSearchSummaryClient(_m.config).QuerySearch(_m)
}

// Update returns a builder for updating this SearchSummary.
// Note that you need to call SearchSummary.Unwrap() before calling this method if this SearchSummary
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SearchSummary) Update() *SearchSummaryUpdateOne {
	return NewSearchSummaryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SearchSummary entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SearchSummary) Unwrap() *SearchSummary {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SearchSummary is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SearchSummary) String() string {
	var builder strings.Builder
	builder.WriteString("SearchSummary(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("search_id=")
	builder.WriteString(_m.SearchID)
	builder.WriteString(", ")
	builder.WriteString("total_posts=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalPosts))
	builder.WriteString(", ")
	builder.WriteString("total_comments=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalComments))
	builder.WriteString(", ")
	builder.WriteString("total_mentions=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalMentions))
	builder.WriteString(", ")
	builder.WriteString("source_tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceTags))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SearchSummaries is a parsable slice of SearchSummary.
type SearchSummaries []*SearchSummary
