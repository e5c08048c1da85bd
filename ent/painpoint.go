// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/painscope/painscope/ent/painpoint"
	"github.com/painscope/painscope/ent/search"
)

// PainPoint is the model entity for the PainPoint schema.
type PainPoint struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SearchID holds the value of the "search_id" field.
	SearchID string `json:"search_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// HN tag the pain point is attributed to (ask_hn, show_hn, ...)
	SourceTag string `json:"source_tag,omitempty"`
	// MentionsCount holds the value of the "mentions_count" field.
	MentionsCount int `json:"mentions_count,omitempty"`
	// 0-10; absent for tag-based fallback pain points
	SeverityScore *float64 `json:"severity_score,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PainPointQuery when eager-loading is set.
	Edges        PainPointEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PainPointEdges holds the relations/edges for other nodes in the graph.
type PainPointEdges struct {
	// Search holds the value of the search edge.
	Search *Search `json:"search,omitempty"`
	// Quotes holds the value of the quotes edge.
	Quotes []*PainPointQuote `json:"quotes,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SearchOrErr returns the Search value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PainPointEdges) SearchOrErr() (*Search, error) {
	if e.Search != nil {
		return e.Search, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: search.Label}
	}
	return nil, &NotLoadedError{edge: "search"}
}

// QuotesOrErr returns the Quotes value or an error if the edge
// was not loaded in eager-loading.
func (e PainPointEdges) QuotesOrErr() ([]*PainPointQuote, error) {
	if e.loadedTypes[1] {
		return e.Quotes, nil
	}
	return nil, &NotLoadedError{edge: "quotes"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PainPoint) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case painpoint.FieldSeverityScore:
			values[i] = new(sql.NullFloat64)
		case painpoint.FieldMentionsCount:
			values[i] = new(sql.NullInt64)
		case painpoint.FieldID, painpoint.FieldSearchID, painpoint.FieldTitle, painpoint.FieldSourceTag:
			values[i] = new(sql.NullString)
		case painpoint.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PainPoint fields.
func (_m *PainPoint) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case painpoint.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case painpoint.FieldSearchID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field search_id", values[i])
			} else if value.Valid {
				_m.SearchID = value.String
			}
		case painpoint.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case painpoint.FieldSourceTag:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_tag", values[i])
			} else if value.Valid {
				_m.SourceTag = value.String
			}
		case painpoint.FieldMentionsCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mentions_count", values[i])
			} else if value.Valid {
				_m.MentionsCount = int(value.Int64)
			}
		case painpoint.FieldSeverityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field severity_score", values[i])
			} else if value.Valid {
				_m.SeverityScore = new(float64)
				*_m.SeverityScore = value.Float64
			}
		case painpoint.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PainPoint.
// This includes values selected through modifiers, order, etc.
func (_m *PainPoint) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySearch queries the "search" edge of the PainPoint entity.
func (_m *PainPoint) QuerySearch() *SearchQuery {
	return NewPainPointClient(_m.config).QuerySearch(_m)
}

// QueryQuotes queries the "quotes" edge of the PainPoint entity.
func (_m *PainPoint) QueryQuotes() *PainPointQuoteQuery {
	return NewPainPointClient(_m.config).QueryQuotes(_m)
}

// Update returns a builder for updating this PainPoint.
// Note that you need to call PainPoint.Unwrap() before calling this method if this PainPoint
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PainPoint) Update() *PainPointUpdateOne {
	return NewPainPointClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PainPoint entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PainPoint) Unwrap() *PainPoint {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PainPoint is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PainPoint) String() string {
	var builder strings.Builder
	builder.WriteString("PainPoint(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("search_id=")
	builder.WriteString(_m.SearchID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("source_tag=")
	builder.WriteString(_m.SourceTag)
	builder.WriteString(", ")
	builder.WriteString("mentions_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.MentionsCount))
	builder.WriteString(", ")
	if v := _m.SeverityScore; v != nil {
		builder.WriteString("severity_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PainPoints is a parsable slice of PainPoint.
type PainPoints []*PainPoint
