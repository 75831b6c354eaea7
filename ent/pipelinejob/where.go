// Code generated by ent, DO NOT EDIT.

package pipelinejob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cryoflow/cryoflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldSessionID, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldProjectID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldUserID, v))
}

// JobName applies equality check predicate on the "job_name" field. It's identical to JobNameEQ.
func JobName(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldJobName, v))
}

// JobType applies equality check predicate on the "job_type" field. It's identical to JobTypeEQ.
func JobType(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldJobType, v))
}

// OutputFilePath applies equality check predicate on the "output_file_path" field. It's identical to OutputFilePathEQ.
func OutputFilePath(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldOutputFilePath, v))
}

// Command applies equality check predicate on the "command" field. It's identical to CommandEQ.
func Command(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldCommand, v))
}

// ExecutionMode applies equality check predicate on the "execution_mode" field. It's identical to ExecutionModeEQ.
func ExecutionMode(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldExecutionMode, v))
}

// ClusterJobID applies equality check predicate on the "cluster_job_id" field. It's identical to ClusterJobIDEQ.
func ClusterJobID(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldClusterJobID, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldEndTime, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldContainsFold(FieldSessionID, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldContainsFold(FieldProjectID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldContainsFold(FieldUserID, v))
}

// JobNameEQ applies the EQ predicate on the "job_name" field.
func JobNameEQ(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldJobName, v))
}

// JobNameNEQ applies the NEQ predicate on the "job_name" field.
func JobNameNEQ(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNEQ(FieldJobName, v))
}

// JobNameIn applies the In predicate on the "job_name" field.
func JobNameIn(vs ...string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIn(FieldJobName, vs...))
}

// JobNameNotIn applies the NotIn predicate on the "job_name" field.
func JobNameNotIn(vs ...string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotIn(FieldJobName, vs...))
}

// JobNameGT applies the GT predicate on the "job_name" field.
func JobNameGT(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGT(FieldJobName, v))
}

// JobNameGTE applies the GTE predicate on the "job_name" field.
func JobNameGTE(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGTE(FieldJobName, v))
}

// JobNameLT applies the LT predicate on the "job_name" field.
func JobNameLT(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLT(FieldJobName, v))
}

// JobNameLTE applies the LTE predicate on the "job_name" field.
func JobNameLTE(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLTE(FieldJobName, v))
}

// JobNameContains applies the Contains predicate on the "job_name" field.
func JobNameContains(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldContains(FieldJobName, v))
}

// JobNameHasPrefix applies the HasPrefix predicate on the "job_name" field.
func JobNameHasPrefix(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldHasPrefix(FieldJobName, v))
}

// JobNameHasSuffix applies the HasSuffix predicate on the "job_name" field.
func JobNameHasSuffix(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldHasSuffix(FieldJobName, v))
}

// JobNameEqualFold applies the EqualFold predicate on the "job_name" field.
func JobNameEqualFold(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEqualFold(FieldJobName, v))
}

// JobNameContainsFold applies the ContainsFold predicate on the "job_name" field.
func JobNameContainsFold(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldContainsFold(FieldJobName, v))
}

// JobTypeEQ applies the EQ predicate on the "job_type" field.
func JobTypeEQ(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldJobType, v))
}

// JobTypeNEQ applies the NEQ predicate on the "job_type" field.
func JobTypeNEQ(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNEQ(FieldJobType, v))
}

// JobTypeIn applies the In predicate on the "job_type" field.
func JobTypeIn(vs ...string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIn(FieldJobType, vs...))
}

// JobTypeNotIn applies the NotIn predicate on the "job_type" field.
func JobTypeNotIn(vs ...string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotIn(FieldJobType, vs...))
}

// JobTypeGT applies the GT predicate on the "job_type" field.
func JobTypeGT(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGT(FieldJobType, v))
}

// JobTypeGTE applies the GTE predicate on the "job_type" field.
func JobTypeGTE(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGTE(FieldJobType, v))
}

// JobTypeLT applies the LT predicate on the "job_type" field.
func JobTypeLT(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLT(FieldJobType, v))
}

// JobTypeLTE applies the LTE predicate on the "job_type" field.
func JobTypeLTE(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLTE(FieldJobType, v))
}

// JobTypeContains applies the Contains predicate on the "job_type" field.
func JobTypeContains(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldContains(FieldJobType, v))
}

// JobTypeHasPrefix applies the HasPrefix predicate on the "job_type" field.
func JobTypeHasPrefix(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldHasPrefix(FieldJobType, v))
}

// JobTypeHasSuffix applies the HasSuffix predicate on the "job_type" field.
func JobTypeHasSuffix(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldHasSuffix(FieldJobType, v))
}

// JobTypeEqualFold applies the EqualFold predicate on the "job_type" field.
func JobTypeEqualFold(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEqualFold(FieldJobType, v))
}

// JobTypeContainsFold applies the ContainsFold predicate on the "job_type" field.
func JobTypeContainsFold(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldContainsFold(FieldJobType, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotIn(FieldStatus, vs...))
}

// OutputFilePathEQ applies the EQ predicate on the "output_file_path" field.
func OutputFilePathEQ(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldOutputFilePath, v))
}

// OutputFilePathNEQ applies the NEQ predicate on the "output_file_path" field.
func OutputFilePathNEQ(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNEQ(FieldOutputFilePath, v))
}

// OutputFilePathIn applies the In predicate on the "output_file_path" field.
func OutputFilePathIn(vs ...string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIn(FieldOutputFilePath, vs...))
}

// OutputFilePathNotIn applies the NotIn predicate on the "output_file_path" field.
func OutputFilePathNotIn(vs ...string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotIn(FieldOutputFilePath, vs...))
}

// OutputFilePathGT applies the GT predicate on the "output_file_path" field.
func OutputFilePathGT(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGT(FieldOutputFilePath, v))
}

// OutputFilePathGTE applies the GTE predicate on the "output_file_path" field.
func OutputFilePathGTE(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGTE(FieldOutputFilePath, v))
}

// OutputFilePathLT applies the LT predicate on the "output_file_path" field.
func OutputFilePathLT(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLT(FieldOutputFilePath, v))
}

// OutputFilePathLTE applies the LTE predicate on the "output_file_path" field.
func OutputFilePathLTE(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLTE(FieldOutputFilePath, v))
}

// OutputFilePathContains applies the Contains predicate on the "output_file_path" field.
func OutputFilePathContains(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldContains(FieldOutputFilePath, v))
}

// OutputFilePathHasPrefix applies the HasPrefix predicate on the "output_file_path" field.
func OutputFilePathHasPrefix(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldHasPrefix(FieldOutputFilePath, v))
}

// OutputFilePathHasSuffix applies the HasSuffix predicate on the "output_file_path" field.
func OutputFilePathHasSuffix(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldHasSuffix(FieldOutputFilePath, v))
}

// OutputFilePathIsNil applies the IsNil predicate on the "output_file_path" field.
func OutputFilePathIsNil() predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIsNull(FieldOutputFilePath))
}

// OutputFilePathNotNil applies the NotNil predicate on the "output_file_path" field.
func OutputFilePathNotNil() predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotNull(FieldOutputFilePath))
}

// OutputFilePathEqualFold applies the EqualFold predicate on the "output_file_path" field.
func OutputFilePathEqualFold(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEqualFold(FieldOutputFilePath, v))
}

// OutputFilePathContainsFold applies the ContainsFold predicate on the "output_file_path" field.
func OutputFilePathContainsFold(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldContainsFold(FieldOutputFilePath, v))
}

// CommandEQ applies the EQ predicate on the "command" field.
func CommandEQ(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldCommand, v))
}

// CommandNEQ applies the NEQ predicate on the "command" field.
func CommandNEQ(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNEQ(FieldCommand, v))
}

// CommandIn applies the In predicate on the "command" field.
func CommandIn(vs ...string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIn(FieldCommand, vs...))
}

// CommandNotIn applies the NotIn predicate on the "command" field.
func CommandNotIn(vs ...string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotIn(FieldCommand, vs...))
}

// CommandGT applies the GT predicate on the "command" field.
func CommandGT(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGT(FieldCommand, v))
}

// CommandGTE applies the GTE predicate on the "command" field.
func CommandGTE(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGTE(FieldCommand, v))
}

// CommandLT applies the LT predicate on the "command" field.
func CommandLT(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLT(FieldCommand, v))
}

// CommandLTE applies the LTE predicate on the "command" field.
func CommandLTE(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLTE(FieldCommand, v))
}

// CommandContains applies the Contains predicate on the "command" field.
func CommandContains(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldContains(FieldCommand, v))
}

// CommandHasPrefix applies the HasPrefix predicate on the "command" field.
func CommandHasPrefix(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldHasPrefix(FieldCommand, v))
}

// CommandHasSuffix applies the HasSuffix predicate on the "command" field.
func CommandHasSuffix(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldHasSuffix(FieldCommand, v))
}

// CommandIsNil applies the IsNil predicate on the "command" field.
func CommandIsNil() predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIsNull(FieldCommand))
}

// CommandNotNil applies the NotNil predicate on the "command" field.
func CommandNotNil() predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotNull(FieldCommand))
}

// CommandEqualFold applies the EqualFold predicate on the "command" field.
func CommandEqualFold(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEqualFold(FieldCommand, v))
}

// CommandContainsFold applies the ContainsFold predicate on the "command" field.
func CommandContainsFold(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldContainsFold(FieldCommand, v))
}

// ParametersIsNil applies the IsNil predicate on the "parameters" field.
func ParametersIsNil() predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIsNull(FieldParameters))
}

// ParametersNotNil applies the NotNil predicate on the "parameters" field.
func ParametersNotNil() predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotNull(FieldParameters))
}

// InputJobIdsIsNil applies the IsNil predicate on the "input_job_ids" field.
func InputJobIdsIsNil() predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIsNull(FieldInputJobIds))
}

// InputJobIdsNotNil applies the NotNil predicate on the "input_job_ids" field.
func InputJobIdsNotNil() predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotNull(FieldInputJobIds))
}

// ExecutionModeEQ applies the EQ predicate on the "execution_mode" field.
func ExecutionModeEQ(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldExecutionMode, v))
}

// ExecutionModeNEQ applies the NEQ predicate on the "execution_mode" field.
func ExecutionModeNEQ(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNEQ(FieldExecutionMode, v))
}

// ExecutionModeIn applies the In predicate on the "execution_mode" field.
func ExecutionModeIn(vs ...string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIn(FieldExecutionMode, vs...))
}

// ExecutionModeNotIn applies the NotIn predicate on the "execution_mode" field.
func ExecutionModeNotIn(vs ...string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotIn(FieldExecutionMode, vs...))
}

// ExecutionModeGT applies the GT predicate on the "execution_mode" field.
func ExecutionModeGT(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGT(FieldExecutionMode, v))
}

// ExecutionModeGTE applies the GTE predicate on the "execution_mode" field.
func ExecutionModeGTE(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGTE(FieldExecutionMode, v))
}

// ExecutionModeLT applies the LT predicate on the "execution_mode" field.
func ExecutionModeLT(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLT(FieldExecutionMode, v))
}

// ExecutionModeLTE applies the LTE predicate on the "execution_mode" field.
func ExecutionModeLTE(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLTE(FieldExecutionMode, v))
}

// ExecutionModeContains applies the Contains predicate on the "execution_mode" field.
func ExecutionModeContains(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldContains(FieldExecutionMode, v))
}

// ExecutionModeHasPrefix applies the HasPrefix predicate on the "execution_mode" field.
func ExecutionModeHasPrefix(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldHasPrefix(FieldExecutionMode, v))
}

// ExecutionModeHasSuffix applies the HasSuffix predicate on the "execution_mode" field.
func ExecutionModeHasSuffix(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldHasSuffix(FieldExecutionMode, v))
}

// ExecutionModeEqualFold applies the EqualFold predicate on the "execution_mode" field.
func ExecutionModeEqualFold(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEqualFold(FieldExecutionMode, v))
}

// ExecutionModeContainsFold applies the ContainsFold predicate on the "execution_mode" field.
func ExecutionModeContainsFold(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldContainsFold(FieldExecutionMode, v))
}

// ClusterJobIDEQ applies the EQ predicate on the "cluster_job_id" field.
func ClusterJobIDEQ(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldClusterJobID, v))
}

// ClusterJobIDNEQ applies the NEQ predicate on the "cluster_job_id" field.
func ClusterJobIDNEQ(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNEQ(FieldClusterJobID, v))
}

// ClusterJobIDIn applies the In predicate on the "cluster_job_id" field.
func ClusterJobIDIn(vs ...string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIn(FieldClusterJobID, vs...))
}

// ClusterJobIDNotIn applies the NotIn predicate on the "cluster_job_id" field.
func ClusterJobIDNotIn(vs ...string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotIn(FieldClusterJobID, vs...))
}

// ClusterJobIDGT applies the GT predicate on the "cluster_job_id" field.
func ClusterJobIDGT(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGT(FieldClusterJobID, v))
}

// ClusterJobIDGTE applies the GTE predicate on the "cluster_job_id" field.
func ClusterJobIDGTE(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGTE(FieldClusterJobID, v))
}

// ClusterJobIDLT applies the LT predicate on the "cluster_job_id" field.
func ClusterJobIDLT(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLT(FieldClusterJobID, v))
}

// ClusterJobIDLTE applies the LTE predicate on the "cluster_job_id" field.
func ClusterJobIDLTE(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLTE(FieldClusterJobID, v))
}

// ClusterJobIDContains applies the Contains predicate on the "cluster_job_id" field.
func ClusterJobIDContains(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldContains(FieldClusterJobID, v))
}

// ClusterJobIDHasPrefix applies the HasPrefix predicate on the "cluster_job_id" field.
func ClusterJobIDHasPrefix(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldHasPrefix(FieldClusterJobID, v))
}

// ClusterJobIDHasSuffix applies the HasSuffix predicate on the "cluster_job_id" field.
func ClusterJobIDHasSuffix(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldHasSuffix(FieldClusterJobID, v))
}

// ClusterJobIDIsNil applies the IsNil predicate on the "cluster_job_id" field.
func ClusterJobIDIsNil() predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIsNull(FieldClusterJobID))
}

// ClusterJobIDNotNil applies the NotNil predicate on the "cluster_job_id" field.
func ClusterJobIDNotNil() predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotNull(FieldClusterJobID))
}

// ClusterJobIDEqualFold applies the EqualFold predicate on the "cluster_job_id" field.
func ClusterJobIDEqualFold(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEqualFold(FieldClusterJobID, v))
}

// ClusterJobIDContainsFold applies the ContainsFold predicate on the "cluster_job_id" field.
func ClusterJobIDContainsFold(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldContainsFold(FieldClusterJobID, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLTE(FieldStartTime, v))
}

// StartTimeIsNil applies the IsNil predicate on the "start_time" field.
func StartTimeIsNil() predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIsNull(FieldStartTime))
}

// StartTimeNotNil applies the NotNil predicate on the "start_time" field.
func StartTimeNotNil() predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotNull(FieldStartTime))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLTE(FieldEndTime, v))
}

// EndTimeIsNil applies the IsNil predicate on the "end_time" field.
func EndTimeIsNil() predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIsNull(FieldEndTime))
}

// EndTimeNotNil applies the NotNil predicate on the "end_time" field.
func EndTimeNotNil() predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotNull(FieldEndTime))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// PipelineStatsIsNil applies the IsNil predicate on the "pipeline_stats" field.
func PipelineStatsIsNil() predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIsNull(FieldPipelineStats))
}

// PipelineStatsNotNil applies the NotNil predicate on the "pipeline_stats" field.
func PipelineStatsNotNil() predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotNull(FieldPipelineStats))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.PipelineJob {
	return predicate.PipelineJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.PipelineSession) predicate.PipelineJob {
	return predicate.PipelineJob(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.PipelineJob {
	return predicate.PipelineJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.PipelineJob {
	return predicate.PipelineJob(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PipelineJob) predicate.PipelineJob {
	return predicate.PipelineJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PipelineJob) predicate.PipelineJob {
	return predicate.PipelineJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PipelineJob) predicate.PipelineJob {
	return predicate.PipelineJob(sql.NotPredicates(p))
}
