package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/painscope/painscope/pkg/analyzer"
)

// AiAnalysis holds the schema definition for the AiAnalysis entity.
// One row per search: the validated LLM output plus token accounting.
type AiAnalysis struct {
	ent.Schema
}

// Fields of the AiAnalysis.
func (AiAnalysis) Fields() []ent.Field {
	return []ent.Field{
		field.String("search_id").
			Unique().
			Immutable(),
		field.Text("summary"),
		field.JSON("problem_clusters", []analyzer.ProblemCluster{}),
		field.JSON("product_ideas", []analyzer.ProductIdea{}),
		field.Int("schema_version").
			Default(analyzer.AnalysisSchemaVersion),
		field.String("model"),
		field.Int("tokens_used").
			Default(0),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the AiAnalysis.
func (AiAnalysis) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("search", Search.Type).
			Ref("analysis").
			Field("search_id").
			Unique().
			Required().
			Immutable(),
	}
}
