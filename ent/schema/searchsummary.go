package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// SearchSummary holds the schema definition for the SearchSummary entity.
// One row per completed search. It is written last during persistence, so
// its presence marks the result set as fully persisted.
type SearchSummary struct {
	ent.Schema
}

// Fields of the SearchSummary.
func (SearchSummary) Fields() []ent.Field {
	return []ent.Field{
		field.String("search_id").
			Unique().
			Immutable(),
		field.Int("total_posts").
			Default(0),
		field.Int("total_comments").
			Default(0),
		field.Int("total_mentions").
			Default(0),
		field.Strings("source_tags").
			Default([]string{}),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the SearchSummary.
func (SearchSummary) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("search", Search.Type).
			Ref("summary").
			Field("search_id").
			Unique().
			Required().
			Immutable(),
	}
}
