package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PainPointQuote holds the schema definition for the PainPointQuote entity.
// Quotes are verbatim comment excerpts with real HN permalinks.
type PainPointQuote struct {
	ent.Schema
}

// Fields of the PainPointQuote.
func (PainPointQuote) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("quote_id").
			Unique().
			Immutable(),
		field.String("pain_point_id").
			Immutable(),
		field.Text("quote_text"),
		field.String("author_handle").
			Optional().
			Nillable(),
		field.Int("upvotes").
			Default(0),
		field.String("permalink"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the PainPointQuote.
func (PainPointQuote) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("pain_point", PainPoint.Type).
			Ref("quotes").
			Field("pain_point_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PainPointQuote.
func (PainPointQuote) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("pain_point_id"),
	}
}
