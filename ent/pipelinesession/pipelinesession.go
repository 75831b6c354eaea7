// Code generated by ent, DO NOT EDIT.

package pipelinesession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the pipelinesession type in the database.
	Label = "pipeline_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSessionName holds the string denoting the session_name field in the database.
	FieldSessionName = "session_name"
	// FieldInputMode holds the string denoting the input_mode field in the database.
	FieldInputMode = "input_mode"
	// FieldWatchDirectory holds the string denoting the watch_directory field in the database.
	FieldWatchDirectory = "watch_directory"
	// FieldFilePattern holds the string denoting the file_pattern field in the database.
	FieldFilePattern = "file_pattern"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldOptics holds the string denoting the optics field in the database.
	FieldOptics = "optics"
	// FieldMotionConfig holds the string denoting the motion_config field in the database.
	FieldMotionConfig = "motion_config"
	// FieldCtfConfig holds the string denoting the ctf_config field in the database.
	FieldCtfConfig = "ctf_config"
	// FieldPickingConfig holds the string denoting the picking_config field in the database.
	FieldPickingConfig = "picking_config"
	// FieldExtractionConfig holds the string denoting the extraction_config field in the database.
	FieldExtractionConfig = "extraction_config"
	// FieldClass2dConfig holds the string denoting the class2d_config field in the database.
	FieldClass2dConfig = "class2d_config"
	// FieldSlurmConfig holds the string denoting the slurm_config field in the database.
	FieldSlurmConfig = "slurm_config"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldJobs holds the string denoting the jobs field in the database.
	FieldJobs = "jobs"
	// FieldPassHistory holds the string denoting the pass_history field in the database.
	FieldPassHistory = "pass_history"
	// FieldStartTime holds the string denoting the start_time field in the database.
	FieldStartTime = "start_time"
	// FieldEndTime holds the string denoting the end_time field in the database.
	FieldEndTime = "end_time"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// EdgePipelineJobs holds the string denoting the pipeline_jobs edge name in mutations.
	EdgePipelineJobs = "pipeline_jobs"
	// EdgeActivityEntries holds the string denoting the activity_entries edge name in mutations.
	EdgeActivityEntries = "activity_entries"
	// ProjectFieldID holds the string denoting the ID field of the Project.
	ProjectFieldID = "project_id"
	// PipelineJobFieldID holds the string denoting the ID field of the PipelineJob.
	PipelineJobFieldID = "job_id"
	// ActivityEntryFieldID holds the string denoting the ID field of the ActivityEntry.
	ActivityEntryFieldID = "entry_id"
	// Table holds the table name of the pipelinesession in the database.
	Table = "pipeline_sessions"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "pipeline_sessions"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
	// PipelineJobsTable is the table that holds the pipeline_jobs relation/edge.
	PipelineJobsTable = "pipeline_jobs"
	// PipelineJobsInverseTable is the table name for the PipelineJob entity.
	// It exists in this package in order to avoid circular dependency with the "pipelinejob" package.
	PipelineJobsInverseTable = "pipeline_jobs"
	// PipelineJobsColumn is the table column denoting the pipeline_jobs relation/edge.
	PipelineJobsColumn = "session_id"
	// ActivityEntriesTable is the table that holds the activity_entries relation/edge.
	ActivityEntriesTable = "activity_entries"
	// ActivityEntriesInverseTable is the table name for the ActivityEntry entity.
	// It exists in this package in order to avoid circular dependency with the "activityentry" package.
	ActivityEntriesInverseTable = "activity_entries"
	// ActivityEntriesColumn is the table column denoting the activity_entries relation/edge.
	ActivityEntriesColumn = "session_id"
)

// Columns holds all SQL columns for pipelinesession fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldUserID,
	FieldSessionName,
	FieldInputMode,
	FieldWatchDirectory,
	FieldFilePattern,
	FieldStatus,
	FieldOptics,
	FieldMotionConfig,
	FieldCtfConfig,
	FieldPickingConfig,
	FieldExtractionConfig,
	FieldClass2dConfig,
	FieldSlurmConfig,
	FieldState,
	FieldJobs,
	FieldPassHistory,
	FieldStartTime,
	FieldEndTime,
	FieldCreatedAt,
	FieldDeletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// InputMode defines the type for the "input_mode" enum field.
type InputMode string

// InputModeWatch is the default value of the InputMode enum.
const DefaultInputMode = InputModeWatch

// InputMode values.
const (
	InputModeWatch    InputMode = "watch"
	InputModeExisting InputMode = "existing"
)

func (im InputMode) String() string {
	return string(im)
}

// InputModeValidator is a validator for the "input_mode" field enum values. It is called by the builders before save.
func InputModeValidator(im InputMode) error {
	switch im {
	case InputModeWatch, InputModeExisting:
		return nil
	default:
		return fmt.Errorf("pipelinesession: invalid enum value for input_mode field: %q", im)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusPaused    Status = "paused"
	StatusStopped   Status = "stopped"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusPaused, StatusStopped, StatusCompleted:
		return nil
	default:
		return fmt.Errorf("pipelinesession: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the PipelineSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySessionName orders the results by the session_name field.
func BySessionName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionName, opts...).ToFunc()
}

// ByInputMode orders the results by the input_mode field.
func ByInputMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputMode, opts...).ToFunc()
}

// ByWatchDirectory orders the results by the watch_directory field.
func ByWatchDirectory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWatchDirectory, opts...).ToFunc()
}

// ByFilePattern orders the results by the file_pattern field.
func ByFilePattern(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilePattern, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartTime orders the results by the start_time field.
func ByStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartTime, opts...).ToFunc()
}

// ByEndTime orders the results by the end_time field.
func ByEndTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndTime, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}

// ByPipelineJobsCount orders the results by pipeline_jobs count.
func ByPipelineJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPipelineJobsStep(), opts...)
	}
}

// ByPipelineJobs orders the results by pipeline_jobs terms.
func ByPipelineJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPipelineJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByActivityEntriesCount orders the results by activity_entries count.
func ByActivityEntriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newActivityEntriesStep(), opts...)
	}
}

// ByActivityEntries orders the results by activity_entries terms.
func ByActivityEntries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newActivityEntriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, ProjectFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
func newPipelineJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PipelineJobsInverseTable, PipelineJobFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PipelineJobsTable, PipelineJobsColumn),
	)
}
func newActivityEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ActivityEntriesInverseTable, ActivityEntryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ActivityEntriesTable, ActivityEntriesColumn),
	)
}
