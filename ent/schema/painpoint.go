package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PainPoint holds the schema definition for the PainPoint entity.
type PainPoint struct {
	ent.Schema
}

// Fields of the PainPoint.
func (PainPoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("pain_point_id").
			Unique().
			Immutable(),
		field.String("search_id").
			Immutable(),
		field.String("title"),
		field.String("source_tag").
			Comment("HN tag the pain point is attributed to (ask_hn, show_hn, ...)"),
		field.Int("mentions_count").
			Default(0),
		field.Float("severity_score").
			Optional().
			Nillable().
			Comment("0-10; absent for tag-based fallback pain points"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the PainPoint.
func (PainPoint) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("search", Search.Type).
			Ref("pain_points").
			Field("search_id").
			Unique().
			Required().
			Immutable(),
		edge.To("quotes", PainPointQuote.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the PainPoint.
func (PainPoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("search_id"),
	}
}
