package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/cryoflow/cryoflow/pkg/models"
)

// PipelineJob holds the schema definition for the PipelineJob entity — one
// cluster job per (session, stage), plus one per Class2D batch.
type PipelineJob struct {
	ent.Schema
}

// Fields of the PipelineJob.
func (PipelineJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("session_id"),
		field.String("project_id"),
		field.String("user_id"),
		field.String("job_name").
			Comment("Project-unique, monotonically numbered (job001, job002, ...)"),
		field.String("job_type").
			Comment("Stage key: import, motion, ctf, pick, extract, class2d"),
		field.Enum("status").
			Values("pending", "running", "success", "failed", "cancelled").
			Default("pending"),
		field.String("output_file_path").
			Optional(),
		field.Text("command").
			Optional().
			Comment("Rendered argv, space-joined"),
		field.JSON("parameters", map[string]any{}).
			Optional(),
		field.JSON("input_job_ids", []string{}).
			Optional(),
		field.String("execution_mode").
			Default("cluster"),
		field.String("cluster_job_id").
			Optional().
			Nillable(),
		field.Time("start_time").
			Optional().
			Nillable(),
		field.Time("end_time").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.JSON("pipeline_stats", models.PipelineStats{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the PipelineJob.
func (PipelineJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", PipelineSession.Type).
			Ref("pipeline_jobs").
			Field("session_id").
			Unique().
			Required(),
		edge.From("project", Project.Type).
			Ref("jobs").
			Field("project_id").
			Unique().
			Required(),
	}
}

// Indexes of the PipelineJob.
func (PipelineJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("session_id", "status"),
		index.Fields("project_id", "job_name").
			Unique(),
	}
}
