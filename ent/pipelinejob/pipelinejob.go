// Code generated by ent, DO NOT EDIT.

package pipelinejob

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the pipelinejob type in the database.
	Label = "pipeline_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "job_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldJobName holds the string denoting the job_name field in the database.
	FieldJobName = "job_name"
	// FieldJobType holds the string denoting the job_type field in the database.
	FieldJobType = "job_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldOutputFilePath holds the string denoting the output_file_path field in the database.
	FieldOutputFilePath = "output_file_path"
	// FieldCommand holds the string denoting the command field in the database.
	FieldCommand = "command"
	// FieldParameters holds the string denoting the parameters field in the database.
	FieldParameters = "parameters"
	// FieldInputJobIds holds the string denoting the input_job_ids field in the database.
	FieldInputJobIds = "input_job_ids"
	// FieldExecutionMode holds the string denoting the execution_mode field in the database.
	FieldExecutionMode = "execution_mode"
	// FieldClusterJobID holds the string denoting the cluster_job_id field in the database.
	FieldClusterJobID = "cluster_job_id"
	// FieldStartTime holds the string denoting the start_time field in the database.
	FieldStartTime = "start_time"
	// FieldEndTime holds the string denoting the end_time field in the database.
	FieldEndTime = "end_time"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldPipelineStats holds the string denoting the pipeline_stats field in the database.
	FieldPipelineStats = "pipeline_stats"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// PipelineSessionFieldID holds the string denoting the ID field of the PipelineSession.
	PipelineSessionFieldID = "session_id"
	// ProjectFieldID holds the string denoting the ID field of the Project.
	ProjectFieldID = "project_id"
	// Table holds the table name of the pipelinejob in the database.
	Table = "pipeline_jobs"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "pipeline_jobs"
	// SessionInverseTable is the table name for the PipelineSession entity.
	// It exists in this package in order to avoid circular dependency with the "pipelinesession" package.
	SessionInverseTable = "pipeline_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "pipeline_jobs"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
)

// Columns holds all SQL columns for pipelinejob fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldProjectID,
	FieldUserID,
	FieldJobName,
	FieldJobType,
	FieldStatus,
	FieldOutputFilePath,
	FieldCommand,
	FieldParameters,
	FieldInputJobIds,
	FieldExecutionMode,
	FieldClusterJobID,
	FieldStartTime,
	FieldEndTime,
	FieldErrorMessage,
	FieldPipelineStats,
	FieldCreatedAt,
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
	// DefaultExecutionMode holds the default value on creation for the "execution_mode" field.
	DefaultExecutionMode string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusSuccess   Status = "success"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusSuccess, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("pipelinejob: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the PipelineJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByJobName orders the results by the job_name field.
func ByJobName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobName, opts...).ToFunc()
}

// ByJobType orders the results by the job_type field.
func ByJobType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByOutputFilePath orders the results by the output_file_path field.
func ByOutputFilePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputFilePath, opts...).ToFunc()
}

// ByCommand orders the results by the command field.
func ByCommand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommand, opts...).ToFunc()
}

// ByExecutionMode orders the results by the execution_mode field.
func ByExecutionMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionMode, opts...).ToFunc()
}

// ByClusterJobID orders the results by the cluster_job_id field.
func ByClusterJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClusterJobID, opts...).ToFunc()
}

// ByStartTime orders the results by the start_time field.
func ByStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartTime, opts...).ToFunc()
}

// ByEndTime orders the results by the end_time field.
func ByEndTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndTime, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, PipelineSessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, ProjectFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
