// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActivityEntriesColumns holds the columns for the "activity_entries" table.
	ActivityEntriesColumns = []*schema.Column{
		{Name: "entry_id", Type: field.TypeString, Unique: true},
		{Name: "event", Type: field.TypeString},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "level", Type: field.TypeEnum, Enums: []string{"info", "success", "warning", "error"}, Default: "info"},
		{Name: "stage", Type: field.TypeString, Nullable: true},
		{Name: "job_name", Type: field.TypeString, Nullable: true},
		{Name: "pass_number", Type: field.TypeInt, Nullable: true},
		{Name: "context", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// ActivityEntriesTable holds the schema information for the "activity_entries" table.
	ActivityEntriesTable = &schema.Table{
		Name:       "activity_entries",
		Columns:    ActivityEntriesColumns,
		PrimaryKey: []*schema.Column{ActivityEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "activity_entries_pipeline_sessions_activity_entries",
				Columns:    []*schema.Column{ActivityEntriesColumns[9]},
				RefColumns: []*schema.Column{PipelineSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "activityentry_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ActivityEntriesColumns[9], ActivityEntriesColumns[8]},
			},
			{
				Name:    "activityentry_session_id_level",
				Unique:  false,
				Columns: []*schema.Column{ActivityEntriesColumns[9], ActivityEntriesColumns[3]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2], EventsColumns[0]},
			},
			{
				Name:    "event_session_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// PipelineJobsColumns holds the columns for the "pipeline_jobs" table.
	PipelineJobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "job_name", Type: field.TypeString},
		{Name: "job_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "success", "failed", "cancelled"}, Default: "pending"},
		{Name: "output_file_path", Type: field.TypeString, Nullable: true},
		{Name: "command", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "parameters", Type: field.TypeJSON, Nullable: true},
		{Name: "input_job_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "execution_mode", Type: field.TypeString, Default: "cluster"},
		{Name: "cluster_job_id", Type: field.TypeString, Nullable: true},
		{Name: "start_time", Type: field.TypeTime, Nullable: true},
		{Name: "end_time", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "pipeline_stats", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "project_id", Type: field.TypeString},
	}
	// PipelineJobsTable holds the schema information for the "pipeline_jobs" table.
	PipelineJobsTable = &schema.Table{
		Name:       "pipeline_jobs",
		Columns:    PipelineJobsColumns,
		PrimaryKey: []*schema.Column{PipelineJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pipeline_jobs_pipeline_sessions_pipeline_jobs",
				Columns:    []*schema.Column{PipelineJobsColumns[16]},
				RefColumns: []*schema.Column{PipelineSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "pipeline_jobs_projects_jobs",
				Columns:    []*schema.Column{PipelineJobsColumns[17]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "pipelinejob_session_id",
				Unique:  false,
				Columns: []*schema.Column{PipelineJobsColumns[16]},
			},
			{
				Name:    "pipelinejob_session_id_status",
				Unique:  false,
				Columns: []*schema.Column{PipelineJobsColumns[16], PipelineJobsColumns[4]},
			},
			{
				Name:    "pipelinejob_project_id_job_name",
				Unique:  true,
				Columns: []*schema.Column{PipelineJobsColumns[17], PipelineJobsColumns[2]},
			},
		},
	}
	// PipelineSessionsColumns holds the columns for the "pipeline_sessions" table.
	PipelineSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "session_name", Type: field.TypeString},
		{Name: "input_mode", Type: field.TypeEnum, Enums: []string{"watch", "existing"}, Default: "watch"},
		{Name: "watch_directory", Type: field.TypeString},
		{Name: "file_pattern", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "paused", "stopped", "completed"}, Default: "pending"},
		{Name: "optics", Type: field.TypeJSON},
		{Name: "motion_config", Type: field.TypeJSON, Nullable: true},
		{Name: "ctf_config", Type: field.TypeJSON, Nullable: true},
		{Name: "picking_config", Type: field.TypeJSON, Nullable: true},
		{Name: "extraction_config", Type: field.TypeJSON, Nullable: true},
		{Name: "class2d_config", Type: field.TypeJSON, Nullable: true},
		{Name: "slurm_config", Type: field.TypeJSON, Nullable: true},
		{Name: "state", Type: field.TypeJSON},
		{Name: "jobs", Type: field.TypeJSON},
		{Name: "pass_history", Type: field.TypeJSON, Nullable: true},
		{Name: "start_time", Type: field.TypeTime, Nullable: true},
		{Name: "end_time", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "project_id", Type: field.TypeString},
	}
	// PipelineSessionsTable holds the schema information for the "pipeline_sessions" table.
	PipelineSessionsTable = &schema.Table{
		Name:       "pipeline_sessions",
		Columns:    PipelineSessionsColumns,
		PrimaryKey: []*schema.Column{PipelineSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pipeline_sessions_projects_sessions",
				Columns:    []*schema.Column{PipelineSessionsColumns[21]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "pipelinesession_status",
				Unique:  false,
				Columns: []*schema.Column{PipelineSessionsColumns[6]},
			},
			{
				Name:    "pipelinesession_project_id",
				Unique:  false,
				Columns: []*schema.Column{PipelineSessionsColumns[21]},
			},
			{
				Name:    "pipelinesession_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{PipelineSessionsColumns[6], PipelineSessionsColumns[19]},
			},
			{
				Name:    "pipelinesession_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{PipelineSessionsColumns[20]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "path", Type: field.TypeString},
		{Name: "job_counter", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActivityEntriesTable,
		EventsTable,
		PipelineJobsTable,
		PipelineSessionsTable,
		ProjectsTable,
	}
)

func init() {
	ActivityEntriesTable.ForeignKeys[0].RefTable = PipelineSessionsTable
	PipelineJobsTable.ForeignKeys[0].RefTable = PipelineSessionsTable
	PipelineJobsTable.ForeignKeys[1].RefTable = ProjectsTable
	PipelineSessionsTable.ForeignKeys[0].RefTable = ProjectsTable
}
