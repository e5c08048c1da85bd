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
	"github.com/painscope/painscope/pkg/analyzer"
)

// AiAnalysis is the model entity for the AiAnalysis schema.
type AiAnalysis struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SearchID holds the value of the "search_id" field.
	SearchID string `json:"search_id,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// ProblemClusters holds the value of the "problem_clusters" field.
	ProblemClusters []analyzer.ProblemCluster `json:"problem_clusters,omitempty"`
	// ProductIdeas holds the value of the "product_ideas" field.
	ProductIdeas []analyzer.ProductIdea `json:"product_ideas,omitempty"`
	// SchemaVersion holds the value of the "schema_version" field.
	SchemaVersion int `json:"schema_version,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// TokensUsed holds the value of the "tokens_used" field.
	TokensUsed int `json:"tokens_used,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AiAnalysisQuery when eager-loading is set.
	Edges        AiAnalysisEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AiAnalysisEdges holds the relations/edges for other nodes in the graph.
type AiAnalysisEdges struct {
	// Search holds the value of the search edge.
	Search *Search `json:"search,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SearchOrErr returns the Search value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AiAnalysisEdges) SearchOrErr() (*Search, error) {
	if e.Search != nil {
		return e.Search, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: search.Label}
	}
	return nil, &NotLoadedError{edge: "search"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AiAnalysis) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case aianalysis.FieldProblemClusters, aianalysis.FieldProductIdeas:
			values[i] = new([]byte)
		case aianalysis.FieldID, aianalysis.FieldSchemaVersion, aianalysis.FieldTokensUsed:
			values[i] = new(sql.NullInt64)
		case aianalysis.FieldSearchID, aianalysis.FieldSummary, aianalysis.FieldModel:
			values[i] = new(sql.NullString)
		case aianalysis.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AiAnalysis fields.
func (_m *AiAnalysis) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case aianalysis.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case aianalysis.FieldSearchID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field search_id", values[i])
			} else if value.Valid {
				_m.SearchID = value.String
			}
		case aianalysis.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case aianalysis.FieldProblemClusters:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field problem_clusters", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ProblemClusters); err != nil {
					return fmt.Errorf("unmarshal field problem_clusters: %w", err)
				}
			}
		case aianalysis.FieldProductIdeas:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field product_ideas", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ProductIdeas); err != nil {
					return fmt.Errorf("unmarshal field product_ideas: %w", err)
				}
			}
		case aianalysis.FieldSchemaVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field schema_version", values[i])
			} else if value.Valid {
				_m.SchemaVersion = int(value.Int64)
			}
		case aianalysis.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case aianalysis.FieldTokensUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_used", values[i])
			} else if value.Valid {
				_m.TokensUsed = int(value.Int64)
			}
		case aianalysis.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AiAnalysis.
// This includes values selected through modifiers, order, etc.
func (_m *AiAnalysis) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySearch queries the "search" edge of the AiAnalysis entity.
func (_m *AiAnalysis) QuerySearch() *SearchQuery {
	return NewAiAnalysisClient(_m.config).QuerySearch(_m)
}

// Update returns a builder for updating this AiAnalysis.
// Note that you need to call AiAnalysis.Unwrap() before calling this method if this AiAnalysis
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AiAnalysis) Update() *AiAnalysisUpdateOne {
	return NewAiAnalysisClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AiAnalysis entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AiAnalysis) Unwrap() *AiAnalysis {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AiAnalysis is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AiAnalysis) String() string {
	var builder strings.Builder
	builder.WriteString("AiAnalysis(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("search_id=")
	builder.WriteString(_m.SearchID)
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("problem_clusters=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProblemClusters))
	builder.WriteString(", ")
	builder.WriteString("product_ideas=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProductIdeas))
	builder.WriteString(", ")
	builder.WriteString("schema_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.SchemaVersion))
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("tokens_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensUsed))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AiAnalyses is a parsable slice of AiAnalysis.
type AiAnalyses []*AiAnalysis
