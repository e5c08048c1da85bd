// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/painscope/painscope/ent/apiusage"
	"github.com/painscope/painscope/ent/search"
)

// ApiUsage is the model entity for the ApiUsage schema.
type ApiUsage struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SearchID holds the value of the "search_id" field.
	SearchID string `json:"search_id,omitempty"`
	// External service name (e.g., 'gemini')
	Service string `json:"service,omitempty"`
	// TokensUsed holds the value of the "tokens_used" field.
	TokensUsed int `json:"tokens_used,omitempty"`
	// EstimatedCostUsd holds the value of the "estimated_cost_usd" field.
	EstimatedCostUsd float64 `json:"estimated_cost_usd,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ApiUsageQuery when eager-loading is set.
	Edges        ApiUsageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ApiUsageEdges holds the relations/edges for other nodes in the graph.
type ApiUsageEdges struct {
	// Search holds the value of the search edge.
	Search *Search `json:"search,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SearchOrErr returns the Search value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ApiUsageEdges) SearchOrErr() (*Search, error) {
	if e.Search != nil {
		return e.Search, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: search.Label}
	}
	return nil, &NotLoadedError{edge: "search"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ApiUsage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case apiusage.FieldEstimatedCostUsd:
			values[i] = new(sql.NullFloat64)
		case apiusage.FieldID, apiusage.FieldTokensUsed:
			values[i] = new(sql.NullInt64)
		case apiusage.FieldSearchID, apiusage.FieldService:
			values[i] = new(sql.NullString)
		case apiusage.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ApiUsage fields.
func (_m *ApiUsage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case apiusage.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case apiusage.FieldSearchID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field search_id", values[i])
			} else if value.Valid {
				_m.SearchID = value.String
			}
		case apiusage.FieldService:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field service", values[i])
			} else if value.Valid {
				_m.Service = value.String
			}
		case apiusage.FieldTokensUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_used", values[i])
			} else if value.Valid {
				_m.TokensUsed = int(value.Int64)
			}
		case apiusage.FieldEstimatedCostUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_cost_usd", values[i])
			} else if value.Valid {
				_m.EstimatedCostUsd = value.Float64
			}
		case apiusage.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ApiUsage.
// This includes values selected through modifiers, order, etc.
func (_m *ApiUsage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySearch queries the "search" edge of the ApiUsage entity.
func (_m *ApiUsage) QuerySearch() *SearchQuery {
	return NewApiUsageClient(_m.config).QuerySearch(_m)
}

// Update returns a builder for updating this ApiUsage.
// Note that you need to call ApiUsage.Unwrap() before calling this method if this ApiUsage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ApiUsage) Update() *ApiUsageUpdateOne {
	return NewApiUsageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ApiUsage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ApiUsage) Unwrap() *ApiUsage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ApiUsage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ApiUsage) String() string {
	var builder strings.Builder
	builder.WriteString("ApiUsage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("search_id=")
	builder.WriteString(_m.SearchID)
	builder.WriteString(", ")
	builder.WriteString("service=")
	builder.WriteString(_m.Service)
	builder.WriteString(", ")
	builder.WriteString("tokens_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensUsed))
	builder.WriteString(", ")
	builder.WriteString("estimated_cost_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.EstimatedCostUsd))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ApiUsages is a parsable slice of ApiUsage.
type ApiUsages []*ApiUsage
