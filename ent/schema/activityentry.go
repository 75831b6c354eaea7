package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActivityEntry holds the schema definition for the ActivityEntry entity —
// one row per session activity-log line. Append-only; ordered by created_at.
type ActivityEntry struct {
	ent.Schema
}

// Fields of the ActivityEntry.
func (ActivityEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("entry_id").
			Unique().
			Immutable(),
		field.String("session_id"),
		field.String("event"),
		field.Text("message"),
		field.Enum("level").
			Values("info", "success", "warning", "error").
			Default("info"),
		field.String("stage").
			Optional(),
		field.String("job_name").
			Optional(),
		field.Int("pass_number").
			Optional(),
		field.JSON("context", map[string]any{}).
			Optional().
			Comment("Open-ended payload carried through from the orchestrator"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the ActivityEntry.
func (ActivityEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", PipelineSession.Type).
			Ref("activity_entries").
			Field("session_id").
			Unique().
			Required(),
	}
}

// Indexes of the ActivityEntry.
func (ActivityEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "created_at"),
		index.Fields("session_id", "level"),
	}
}
