package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/cryoflow/cryoflow/pkg/models"
)

// PipelineSession holds the schema definition for the PipelineSession
// entity — one live-processing session driving the pipeline over a watched
// directory.
type PipelineSession struct {
	ent.Schema
}

// Fields of the PipelineSession.
func (PipelineSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("project_id"),
		field.String("user_id"),
		field.String("session_name"),
		field.Enum("input_mode").
			Values("watch", "existing").
			Default("watch"),
		field.String("watch_directory"),
		field.String("file_pattern").
			Comment("Extension-style glob, e.g. *.tiff — matched case-insensitively"),
		field.Enum("status").
			Values("pending", "running", "paused", "stopped", "completed").
			Default("pending"),
		field.JSON("optics", models.OpticsConfig{}),
		field.JSON("motion_config", models.MotionConfig{}).
			Optional(),
		field.JSON("ctf_config", models.CtfConfig{}).
			Optional(),
		field.JSON("picking_config", models.PickingConfig{}).
			Optional(),
		field.JSON("extraction_config", models.ExtractionConfig{}).
			Optional(),
		field.JSON("class2d_config", models.Class2DConfig{}).
			Optional(),
		field.JSON("slurm_config", models.SlurmConfig{}).
			Optional(),
		field.JSON("state", models.SessionState{}).
			Comment("Mutable pipeline progress; updated only under row lock"),
		field.JSON("jobs", models.SessionJobs{}).
			Comment("Stage key to main job id mapping; stage ids are write-once"),
		field.JSON("pass_history", []models.PassSnapshot{}).
			Optional().
			Comment("Append-only pass snapshots"),
		field.Time("start_time").
			Optional().
			Nillable(),
		field.Time("end_time").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
	}
}

// Edges of the PipelineSession.
func (PipelineSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("sessions").
			Field("project_id").
			Unique().
			Required(),
		edge.To("pipeline_jobs", PipelineJob.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("activity_entries", ActivityEntry.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the PipelineSession.
func (PipelineSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("project_id"),
		index.Fields("status", "created_at"),
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
