package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Project holds the schema definition for the Project entity. A project is
// the on-disk root that all session job directories live under, and the
// scope for unique job numbering.
type Project struct {
	ent.Schema
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("project_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("path").
			Comment("Absolute path of the project directory on the shared filesystem"),
		field.Int("job_counter").
			Default(0).
			Comment("Monotonic counter backing project-unique job names"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the Project.
func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("sessions", PipelineSession.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("jobs", PipelineJob.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
