package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Search holds the schema definition for the Search entity.
// A row is both the queue entry and the durable record of a search.
type Search struct {
	ent.Schema
}

// Fields of the Search.
func (Search) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("search_id").
			Unique().
			Immutable(),
		field.String("topic"),
		field.Strings("tags").
			Default([]string{}),
		field.Enum("time_range").
			Values("week", "month", "year", "all").
			Default("month"),
		field.Enum("sort_by").
			Values("relevance", "upvotes", "recency").
			Default("relevance"),
		field.Enum("status").
			Values("pending", "processing", "completed", "failed").
			Default("pending"),
		field.Int("min_upvotes").
			Default(0),
		field.String("error_message").
			Optional().
			Nillable().
			Comment("User-facing failure or retry message"),
		field.Int("retry_count").
			Default(0),
		field.Time("last_retry_at").
			Optional().
			Nillable().
			Comment("Doubles as the processing heartbeat for stale detection"),
		field.Time("next_retry_at").
			Optional().
			Nillable().
			Comment("Back-off gate: pending rows are not claimable before this"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Search.
func (Search) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("summary", SearchSummary.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("pain_points", PainPoint.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("analysis", AiAnalysis.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", SearchEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("usages", ApiUsage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Search.
func (Search) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("next_retry_at"),

		// Claim query: oldest pending first.
		index.Fields("status", "created_at"),
		// Stale sweep: processing rows with an old heartbeat.
		index.Fields("status", "last_retry_at"),
	}
}
