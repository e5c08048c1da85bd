package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// JobLog holds the schema definition for the JobLog entity.
// Operational log rows for background processing. No foreign key: log rows
// must survive the purge of their search.
type JobLog struct {
	ent.Schema
}

// Fields of the JobLog.
func (JobLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("search_id").
			Optional().
			Nillable(),
		field.Enum("level").
			Values("info", "warn", "error"),
		field.Text("message"),
		field.JSON("context", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the JobLog.
func (JobLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("search_id"),
		index.Fields("created_at"),
	}
}
