// Code generated by ent, DO NOT EDIT.

package activityentry

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the activityentry type in the database.
	Label = "activity_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "entry_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldEvent holds the string denoting the event field in the database.
	FieldEvent = "event"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldJobName holds the string denoting the job_name field in the database.
	FieldJobName = "job_name"
	// FieldPassNumber holds the string denoting the pass_number field in the database.
	FieldPassNumber = "pass_number"
	// FieldContext holds the string denoting the context field in the database.
	FieldContext = "context"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// PipelineSessionFieldID holds the string denoting the ID field of the PipelineSession.
	PipelineSessionFieldID = "session_id"
	// Table holds the table name of the activityentry in the database.
	Table = "activity_entries"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "activity_entries"
	// SessionInverseTable is the table name for the PipelineSession entity.
	// It exists in this package in order to avoid circular dependency with the "pipelinesession" package.
	SessionInverseTable = "pipeline_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for activityentry fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldEvent,
	FieldMessage,
	FieldLevel,
	FieldStage,
	FieldJobName,
	FieldPassNumber,
	FieldContext,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Level defines the type for the "level" enum field.
type Level string

// LevelInfo is the default value of the Level enum.
const DefaultLevel = LevelInfo

// Level values.
const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

func (l Level) String() string {
	return string(l)
}

// LevelValidator is a validator for the "level" field enum values. It is called by the builders before save.
func LevelValidator(l Level) error {
	switch l {
	case LevelInfo, LevelSuccess, LevelWarning, LevelError:
		return nil
	default:
		return fmt.Errorf("activityentry: invalid enum value for level field: %q", l)
	}
}

// OrderOption defines the ordering options for the ActivityEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByEvent orders the results by the event field.
func ByEvent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvent, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// ByJobName orders the results by the job_name field.
func ByJobName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobName, opts...).ToFunc()
}

// ByPassNumber orders the results by the pass_number field.
func ByPassNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassNumber, opts...).ToFunc()
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
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, PipelineSessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
