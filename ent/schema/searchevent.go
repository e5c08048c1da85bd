package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SearchEvent holds the schema definition for the SearchEvent entity.
// The serial row id orders catch-up replays; event_id is the client-facing
// dedup key carried in the wire payload.
type SearchEvent struct {
	ent.Schema
}

// Fields of the SearchEvent.
func (SearchEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("event_id").
			Unique().
			Immutable(),
		field.String("search_id").
			Immutable(),
		field.Enum("phase").
			Values("stories", "comments", "analysis"),
		field.Enum("event_type").
			Values("story_discovered", "comment_discovered", "phase_progress", "search_status"),
		field.JSON("payload", map[string]interface{}{}),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the SearchEvent.
func (SearchEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("search", Search.Type).
			Ref("events").
			Field("search_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the SearchEvent.
func (SearchEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("search_id", "created_at"),
		// Catch-up query: events for a search since a row id.
		index.Fields("search_id", "id"),
	}
}
