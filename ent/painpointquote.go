// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/painscope/painscope/ent/painpoint"
	"github.com/painscope/painscope/ent/painpointquote"
)

// PainPointQuote is the model entity for the PainPointQuote schema.
type PainPointQuote struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// PainPointID holds the value of the "pain_point_id" field.
	PainPointID string `json:"pain_point_id,omitempty"`
	// QuoteText holds the value of the "quote_text" field.
	QuoteText string `json:"quote_text,omitempty"`
	// AuthorHandle holds the value of the "author_handle" field.
	AuthorHandle *string `json:"author_handle,omitempty"`
	// Upvotes holds the value of the "upvotes" field.
	Upvotes int `json:"upvotes,omitempty"`
	// Permalink holds the value of the "permalink" field.
	Permalink string `json:"permalink,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PainPointQuoteQuery when eager-loading is set.
	Edges        PainPointQuoteEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PainPointQuoteEdges holds the relations/edges for other nodes in the graph.
type PainPointQuoteEdges struct {
	// PainPoint holds the value of the pain_point edge.
	PainPoint *PainPoint `json:"pain_point,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PainPointOrErr returns the PainPoint value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PainPointQuoteEdges) PainPointOrErr() (*PainPoint, error) {
	if e.PainPoint != nil {
		return e.PainPoint, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: painpoint.Label}
	}
	return nil, &NotLoadedError{edge: "pain_point"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PainPointQuote) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case painpointquote.FieldUpvotes:
			values[i] = new(sql.NullInt64)
		case painpointquote.FieldID, painpointquote.FieldPainPointID, painpointquote.FieldQuoteText, painpointquote.FieldAuthorHandle, painpointquote.FieldPermalink:
			values[i] = new(sql.NullString)
		case painpointquote.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PainPointQuote fields.
func (_m *PainPointQuote) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case painpointquote.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case painpointquote.FieldPainPointID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pain_point_id", values[i])
			} else if value.Valid {
				_m.PainPointID = value.String
			}
		case painpointquote.FieldQuoteText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quote_text", values[i])
			} else if value.Valid {
				_m.QuoteText = value.String
			}
		case painpointquote.FieldAuthorHandle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field author_handle", values[i])
			} else if value.Valid {
				_m.AuthorHandle = new(string)
				*_m.AuthorHandle = value.String
			}
		case painpointquote.FieldUpvotes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field upvotes", values[i])
			} else if value.Valid {
				_m.Upvotes = int(value.Int64)
			}
		case painpointquote.FieldPermalink:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field permalink", values[i])
			} else if value.Valid {
				_m.Permalink = value.String
			}
		case painpointquote.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PainPointQuote.
// This includes values selected through modifiers, order, etc.
func (_m *PainPointQuote) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPainPoint queries the "pain_point" edge of the PainPointQuote entity.
func (_m *PainPointQuote) QueryPainPoint() *PainPointQuery {
	return NewPainPointQuoteClient(_m.config).QueryPainPoint(_m)
}

// Update returns a builder for updating this PainPointQuote.
// Note that you need to call PainPointQuote.Unwrap() before calling this method if this PainPointQuote
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PainPointQuote) Update() *PainPointQuoteUpdateOne {
	return NewPainPointQuoteClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PainPointQuote entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PainPointQuote) Unwrap() *PainPointQuote {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PainPointQuote is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PainPointQuote) String() string {
	var builder strings.Builder
	builder.WriteString("PainPointQuote(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("pain_point_id=")
	builder.WriteString(_m.PainPointID)
	builder.WriteString(", ")
	builder.WriteString("quote_text=")
	builder.WriteString(_m.QuoteText)
	builder.WriteString(", ")
	if v := _m.AuthorHandle; v != nil {
		builder.WriteString("author_handle=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("upvotes=")
	builder.WriteString(fmt.Sprintf("%v", _m.Upvotes))
	builder.WriteString(", ")
	builder.WriteString("permalink=")
	builder.WriteString(_m.Permalink)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PainPointQuotes is a parsable slice of PainPointQuote.
type PainPointQuotes []*PainPointQuote
