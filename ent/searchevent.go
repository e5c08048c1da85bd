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
	"github.com/painscope/painscope/ent/searchevent"
)

// SearchEvent is the model entity for the SearchEvent schema.
type SearchEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// EventID holds the value of the "event_id" field.
	EventID string `json:"event_id,omitempty"`
	// SearchID holds the value of the "search_id" field.
	SearchID string `json:"search_id,omitempty"`
	// Phase holds the value of the "phase" field.
	Phase searchevent.Phase `json:"phase,omitempty"`
	// EventType holds the value of the "event_type" field.
	EventType searchevent.EventType `json:"event_type,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload map[string]interface{} `json:"payload,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SearchEventQuery when eager-loading is set.
	Edges        SearchEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SearchEventEdges holds the relations/edges for other nodes in the graph.
type SearchEventEdges struct {
	// Search holds the value of the search edge.
	Search *Search `json:"search,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SearchOrErr returns the Search value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SearchEventEdges) SearchOrErr() (*Search, error) {
	if e.Search != nil {
		return e.Search, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: search.Label}
	}
	return nil, &NotLoadedError{edge: "search"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SearchEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case searchevent.FieldPayload:
			values[i] = new([]byte)
		case searchevent.FieldID:
			values[i] = new(sql.NullInt64)
		case searchevent.FieldEventID, searchevent.FieldSearchID, searchevent.FieldPhase, searchevent.FieldEventType:
			values[i] = new(sql.NullString)
		case searchevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SearchEvent fields.
func (_m *SearchEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case searchevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case searchevent.FieldEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = value.String
			}
		case searchevent.FieldSearchID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field search_id", values[i])
			} else if value.Valid {
				_m.SearchID = value.String
			}
		case searchevent.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = searchevent.Phase(value.String)
			}
		case searchevent.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = searchevent.EventType(value.String)
			}
		case searchevent.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case searchevent.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SearchEvent.
// This includes values selected through modifiers, order, etc.
func (_m *SearchEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySearch queries the "search" edge of the SearchEvent entity.
func (_m *SearchEvent) QuerySearch() *SearchQuery {
	return NewSearchEventClient(_m.config).QuerySearch(_m)
}

// Update returns a builder for updating this SearchEvent.
// Note that you need to call SearchEvent.Unwrap() before calling this method if this SearchEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SearchEvent) Update() *SearchEventUpdateOne {
	return NewSearchEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SearchEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SearchEvent) Unwrap() *SearchEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SearchEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SearchEvent) String() string {
	var builder strings.Builder
	builder.WriteString("SearchEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("event_id=")
	builder.WriteString(_m.EventID)
	builder.WriteString(", ")
	builder.WriteString("search_id=")
	builder.WriteString(_m.SearchID)
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(fmt.Sprintf("%v", _m.Phase))
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventType))
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SearchEvents is a parsable slice of SearchEvent.
type SearchEvents []*SearchEvent
