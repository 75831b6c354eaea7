// Code generated by ent, DO NOT EDIT.

package pipelinesession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cryoflow/cryoflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldEQ(FieldProjectID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldEQ(FieldUserID, v))
}

// SessionName applies equality check predicate on the "session_name" field. It's identical to SessionNameEQ.
func SessionName(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldEQ(FieldSessionName, v))
}

// WatchDirectory applies equality check predicate on the "watch_directory" field. It's identical to WatchDirectoryEQ.
func WatchDirectory(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldEQ(FieldWatchDirectory, v))
}

// FilePattern applies equality check predicate on the "file_pattern" field. It's identical to FilePatternEQ.
func FilePattern(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldEQ(FieldFilePattern, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v time.Time) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v time.Time) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldEQ(FieldEndTime, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldEQ(FieldCreatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldEQ(FieldDeletedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldContainsFold(FieldProjectID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldContainsFold(FieldUserID, v))
}

// SessionNameEQ applies the EQ predicate on the "session_name" field.
func SessionNameEQ(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldEQ(FieldSessionName, v))
}

// SessionNameNEQ applies the NEQ predicate on the "session_name" field.
func SessionNameNEQ(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldNEQ(FieldSessionName, v))
}

// SessionNameIn applies the In predicate on the "session_name" field.
func SessionNameIn(vs ...string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldIn(FieldSessionName, vs...))
}

// SessionNameNotIn applies the NotIn predicate on the "session_name" field.
func SessionNameNotIn(vs ...string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldNotIn(FieldSessionName, vs...))
}

// SessionNameGT applies the GT predicate on the "session_name" field.
func SessionNameGT(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldGT(FieldSessionName, v))
}

// SessionNameGTE applies the GTE predicate on the "session_name" field.
func SessionNameGTE(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldGTE(FieldSessionName, v))
}

// SessionNameLT applies the LT predicate on the "session_name" field.
func SessionNameLT(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldLT(FieldSessionName, v))
}

// SessionNameLTE applies the LTE predicate on the "session_name" field.
func SessionNameLTE(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldLTE(FieldSessionName, v))
}

// SessionNameContains applies the Contains predicate on the "session_name" field.
func SessionNameContains(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldContains(FieldSessionName, v))
}

// SessionNameHasPrefix applies the HasPrefix predicate on the "session_name" field.
func SessionNameHasPrefix(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldHasPrefix(FieldSessionName, v))
}

// SessionNameHasSuffix applies the HasSuffix predicate on the "session_name" field.
func SessionNameHasSuffix(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldHasSuffix(FieldSessionName, v))
}

// SessionNameEqualFold applies the EqualFold predicate on the "session_name" field.
func SessionNameEqualFold(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldEqualFold(FieldSessionName, v))
}

// SessionNameContainsFold applies the ContainsFold predicate on the "session_name" field.
func SessionNameContainsFold(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldContainsFold(FieldSessionName, v))
}

// InputModeEQ applies the EQ predicate on the "input_mode" field.
func InputModeEQ(v InputMode) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldEQ(FieldInputMode, v))
}

// InputModeNEQ applies the NEQ predicate on the "input_mode" field.
func InputModeNEQ(v InputMode) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldNEQ(FieldInputMode, v))
}

// InputModeIn applies the In predicate on the "input_mode" field.
func InputModeIn(vs ...InputMode) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldIn(FieldInputMode, vs...))
}

// InputModeNotIn applies the NotIn predicate on the "input_mode" field.
func InputModeNotIn(vs ...InputMode) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldNotIn(FieldInputMode, vs...))
}

// WatchDirectoryEQ applies the EQ predicate on the "watch_directory" field.
func WatchDirectoryEQ(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldEQ(FieldWatchDirectory, v))
}

// WatchDirectoryNEQ applies the NEQ predicate on the "watch_directory" field.
func WatchDirectoryNEQ(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldNEQ(FieldWatchDirectory, v))
}

// WatchDirectoryIn applies the In predicate on the "watch_directory" field.
func WatchDirectoryIn(vs ...string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldIn(FieldWatchDirectory, vs...))
}

// WatchDirectoryNotIn applies the NotIn predicate on the "watch_directory" field.
func WatchDirectoryNotIn(vs ...string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldNotIn(FieldWatchDirectory, vs...))
}

// WatchDirectoryGT applies the GT predicate on the "watch_directory" field.
func WatchDirectoryGT(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldGT(FieldWatchDirectory, v))
}

// WatchDirectoryGTE applies the GTE predicate on the "watch_directory" field.
func WatchDirectoryGTE(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldGTE(FieldWatchDirectory, v))
}

// WatchDirectoryLT applies the LT predicate on the "watch_directory" field.
func WatchDirectoryLT(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldLT(FieldWatchDirectory, v))
}

// WatchDirectoryLTE applies the LTE predicate on the "watch_directory" field.
func WatchDirectoryLTE(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldLTE(FieldWatchDirectory, v))
}

// WatchDirectoryContains applies the Contains predicate on the "watch_directory" field.
func WatchDirectoryContains(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldContains(FieldWatchDirectory, v))
}

// WatchDirectoryHasPrefix applies the HasPrefix predicate on the "watch_directory" field.
func WatchDirectoryHasPrefix(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldHasPrefix(FieldWatchDirectory, v))
}

// WatchDirectoryHasSuffix applies the HasSuffix predicate on the "watch_directory" field.
func WatchDirectoryHasSuffix(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldHasSuffix(FieldWatchDirectory, v))
}

// WatchDirectoryEqualFold applies the EqualFold predicate on the "watch_directory" field.
func WatchDirectoryEqualFold(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldEqualFold(FieldWatchDirectory, v))
}

// WatchDirectoryContainsFold applies the ContainsFold predicate on the "watch_directory" field.
func WatchDirectoryContainsFold(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldContainsFold(FieldWatchDirectory, v))
}

// FilePatternEQ applies the EQ predicate on the "file_pattern" field.
func FilePatternEQ(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldEQ(FieldFilePattern, v))
}

// FilePatternNEQ applies the NEQ predicate on the "file_pattern" field.
func FilePatternNEQ(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldNEQ(FieldFilePattern, v))
}

// FilePatternIn applies the In predicate on the "file_pattern" field.
func FilePatternIn(vs ...string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldIn(FieldFilePattern, vs...))
}

// FilePatternNotIn applies the NotIn predicate on the "file_pattern" field.
func FilePatternNotIn(vs ...string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldNotIn(FieldFilePattern, vs...))
}

// FilePatternGT applies the GT predicate on the "file_pattern" field.
func FilePatternGT(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldGT(FieldFilePattern, v))
}

// FilePatternGTE applies the GTE predicate on the "file_pattern" field.
func FilePatternGTE(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldGTE(FieldFilePattern, v))
}

// FilePatternLT applies the LT predicate on the "file_pattern" field.
func FilePatternLT(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldLT(FieldFilePattern, v))
}

// FilePatternLTE applies the LTE predicate on the "file_pattern" field.
func FilePatternLTE(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldLTE(FieldFilePattern, v))
}

// FilePatternContains applies the Contains predicate on the "file_pattern" field.
func FilePatternContains(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldContains(FieldFilePattern, v))
}

// FilePatternHasPrefix applies the HasPrefix predicate on the "file_pattern" field.
func FilePatternHasPrefix(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldHasPrefix(FieldFilePattern, v))
}

// FilePatternHasSuffix applies the HasSuffix predicate on the "file_pattern" field.
func FilePatternHasSuffix(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldHasSuffix(FieldFilePattern, v))
}

// FilePatternEqualFold applies the EqualFold predicate on the "file_pattern" field.
func FilePatternEqualFold(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldEqualFold(FieldFilePattern, v))
}

// FilePatternContainsFold applies the ContainsFold predicate on the "file_pattern" field.
func FilePatternContainsFold(v string) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldContainsFold(FieldFilePattern, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldNotIn(FieldStatus, vs...))
}

// MotionConfigIsNil applies the IsNil predicate on the "motion_config" field.
func MotionConfigIsNil() predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldIsNull(FieldMotionConfig))
}

// MotionConfigNotNil applies the NotNil predicate on the "motion_config" field.
func MotionConfigNotNil() predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldNotNull(FieldMotionConfig))
}

// CtfConfigIsNil applies the IsNil predicate on the "ctf_config" field.
func CtfConfigIsNil() predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldIsNull(FieldCtfConfig))
}

// CtfConfigNotNil applies the NotNil predicate on the "ctf_config" field.
func CtfConfigNotNil() predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldNotNull(FieldCtfConfig))
}

// PickingConfigIsNil applies the IsNil predicate on the "picking_config" field.
func PickingConfigIsNil() predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldIsNull(FieldPickingConfig))
}

// PickingConfigNotNil applies the NotNil predicate on the "picking_config" field.
func PickingConfigNotNil() predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldNotNull(FieldPickingConfig))
}

// ExtractionConfigIsNil applies the IsNil predicate on the "extraction_config" field.
func ExtractionConfigIsNil() predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldIsNull(FieldExtractionConfig))
}

// ExtractionConfigNotNil applies the NotNil predicate on the "extraction_config" field.
func ExtractionConfigNotNil() predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldNotNull(FieldExtractionConfig))
}

// Class2dConfigIsNil applies the IsNil predicate on the "class2d_config" field.
func Class2dConfigIsNil() predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldIsNull(FieldClass2dConfig))
}

// Class2dConfigNotNil applies the NotNil predicate on the "class2d_config" field.
func Class2dConfigNotNil() predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldNotNull(FieldClass2dConfig))
}

// SlurmConfigIsNil applies the IsNil predicate on the "slurm_config" field.
func SlurmConfigIsNil() predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldIsNull(FieldSlurmConfig))
}

// SlurmConfigNotNil applies the NotNil predicate on the "slurm_config" field.
func SlurmConfigNotNil() predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldNotNull(FieldSlurmConfig))
}

// PassHistoryIsNil applies the IsNil predicate on the "pass_history" field.
func PassHistoryIsNil() predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldIsNull(FieldPassHistory))
}

// PassHistoryNotNil applies the NotNil predicate on the "pass_history" field.
func PassHistoryNotNil() predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldNotNull(FieldPassHistory))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v time.Time) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v time.Time) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...time.Time) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...time.Time) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v time.Time) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v time.Time) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v time.Time) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v time.Time) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldLTE(FieldStartTime, v))
}

// StartTimeIsNil applies the IsNil predicate on the "start_time" field.
func StartTimeIsNil() predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldIsNull(FieldStartTime))
}

// StartTimeNotNil applies the NotNil predicate on the "start_time" field.
func StartTimeNotNil() predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldNotNull(FieldStartTime))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v time.Time) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v time.Time) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...time.Time) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...time.Time) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v time.Time) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v time.Time) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v time.Time) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v time.Time) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldLTE(FieldEndTime, v))
}

// EndTimeIsNil applies the IsNil predicate on the "end_time" field.
func EndTimeIsNil() predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldIsNull(FieldEndTime))
}

// EndTimeNotNil applies the NotNil predicate on the "end_time" field.
func EndTimeNotNil() predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldNotNull(FieldEndTime))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldLTE(FieldCreatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.PipelineSession {
	return predicate.PipelineSession(sql.FieldNotNull(FieldDeletedAt))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.PipelineSession {
	return predicate.PipelineSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.PipelineSession {
	return predicate.PipelineSession(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPipelineJobs applies the HasEdge predicate on the "pipeline_jobs" edge.
func HasPipelineJobs() predicate.PipelineSession {
	return predicate.PipelineSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PipelineJobsTable, PipelineJobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPipelineJobsWith applies the HasEdge predicate on the "pipeline_jobs" edge with a given conditions (other predicates).
func HasPipelineJobsWith(preds ...predicate.PipelineJob) predicate.PipelineSession {
	return predicate.PipelineSession(func(s *sql.Selector) {
		step := newPipelineJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasActivityEntries applies the HasEdge predicate on the "activity_entries" edge.
func HasActivityEntries() predicate.PipelineSession {
	return predicate.PipelineSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ActivityEntriesTable, ActivityEntriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasActivityEntriesWith applies the HasEdge predicate on the "activity_entries" edge with a given conditions (other predicates).
func HasActivityEntriesWith(preds ...predicate.ActivityEntry) predicate.PipelineSession {
	return predicate.PipelineSession(func(s *sql.Selector) {
		step := newActivityEntriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PipelineSession) predicate.PipelineSession {
	return predicate.PipelineSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PipelineSession) predicate.PipelineSession {
	return predicate.PipelineSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PipelineSession) predicate.PipelineSession {
	return predicate.PipelineSession(sql.NotPredicates(p))
}
