package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ApiUsage holds the schema definition for the ApiUsage entity.
// Tracks external API consumption per search for cost reporting.
type ApiUsage struct {
	ent.Schema
}

// Fields of the ApiUsage.
func (ApiUsage) Fields() []ent.Field {
	return []ent.Field{
		field.String("search_id").
			Immutable(),
		field.String("service").
			Comment("External service name (e.g., 'gemini')"),
		field.Int("tokens_used").
			Default(0),
		field.Float("estimated_cost_usd").
			Default(0),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the ApiUsage.
func (ApiUsage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("search", Search.Type).
			Ref("usages").
			Field("search_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ApiUsage.
func (ApiUsage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("search_id"),
	}
}
