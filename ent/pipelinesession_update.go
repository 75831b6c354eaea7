// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/cryoflow/cryoflow/ent/activityentry"
	"github.com/cryoflow/cryoflow/ent/pipelinejob"
	"github.com/cryoflow/cryoflow/ent/pipelinesession"
	"github.com/cryoflow/cryoflow/ent/predicate"
	"github.com/cryoflow/cryoflow/ent/project"
	"github.com/cryoflow/cryoflow/pkg/models"
)

// PipelineSessionUpdate is the builder for updating PipelineSession entities.
type PipelineSessionUpdate struct {
	config
	hooks    []Hook
	mutation *PipelineSessionMutation
}

// Where appends a list predicates to the PipelineSessionUpdate builder.
func (_u *PipelineSessionUpdate) Where(ps ...predicate.PipelineSession) *PipelineSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *PipelineSessionUpdate) SetProjectID(v string) *PipelineSessionUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *PipelineSessionUpdate) SetNillableProjectID(v *string) *PipelineSessionUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PipelineSessionUpdate) SetUserID(v string) *PipelineSessionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PipelineSessionUpdate) SetNillableUserID(v *string) *PipelineSessionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSessionName sets the "session_name" field.
func (_u *PipelineSessionUpdate) SetSessionName(v string) *PipelineSessionUpdate {
	_u.mutation.SetSessionName(v)
	return _u
}

// SetNillableSessionName sets the "session_name" field if the given value is not nil.
func (_u *PipelineSessionUpdate) SetNillableSessionName(v *string) *PipelineSessionUpdate {
	if v != nil {
		_u.SetSessionName(*v)
	}
	return _u
}

// SetInputMode sets the "input_mode" field.
func (_u *PipelineSessionUpdate) SetInputMode(v pipelinesession.InputMode) *PipelineSessionUpdate {
	_u.mutation.SetInputMode(v)
	return _u
}

// SetNillableInputMode sets the "input_mode" field if the given value is not nil.
func (_u *PipelineSessionUpdate) SetNillableInputMode(v *pipelinesession.InputMode) *PipelineSessionUpdate {
	if v != nil {
		_u.SetInputMode(*v)
	}
	return _u
}

// SetWatchDirectory sets the "watch_directory" field.
func (_u *PipelineSessionUpdate) SetWatchDirectory(v string) *PipelineSessionUpdate {
	_u.mutation.SetWatchDirectory(v)
	return _u
}

// SetNillableWatchDirectory sets the "watch_directory" field if the given value is not nil.
func (_u *PipelineSessionUpdate) SetNillableWatchDirectory(v *string) *PipelineSessionUpdate {
	if v != nil {
		_u.SetWatchDirectory(*v)
	}
	return _u
}

// SetFilePattern sets the "file_pattern" field.
func (_u *PipelineSessionUpdate) SetFilePattern(v string) *PipelineSessionUpdate {
	_u.mutation.SetFilePattern(v)
	return _u
}

// SetNillableFilePattern sets the "file_pattern" field if the given value is not nil.
func (_u *PipelineSessionUpdate) SetNillableFilePattern(v *string) *PipelineSessionUpdate {
	if v != nil {
		_u.SetFilePattern(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PipelineSessionUpdate) SetStatus(v pipelinesession.Status) *PipelineSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineSessionUpdate) SetNillableStatus(v *pipelinesession.Status) *PipelineSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOptics sets the "optics" field.
func (_u *PipelineSessionUpdate) SetOptics(v models.OpticsConfig) *PipelineSessionUpdate {
	_u.mutation.SetOptics(v)
	return _u
}

// SetNillableOptics sets the "optics" field if the given value is not nil.
func (_u *PipelineSessionUpdate) SetNillableOptics(v *models.OpticsConfig) *PipelineSessionUpdate {
	if v != nil {
		_u.SetOptics(*v)
	}
	return _u
}

// SetMotionConfig sets the "motion_config" field.
func (_u *PipelineSessionUpdate) SetMotionConfig(v models.MotionConfig) *PipelineSessionUpdate {
	_u.mutation.SetMotionConfig(v)
	return _u
}

// SetNillableMotionConfig sets the "motion_config" field if the given value is not nil.
func (_u *PipelineSessionUpdate) SetNillableMotionConfig(v *models.MotionConfig) *PipelineSessionUpdate {
	if v != nil {
		_u.SetMotionConfig(*v)
	}
	return _u
}

// ClearMotionConfig clears the value of the "motion_config" field.
func (_u *PipelineSessionUpdate) ClearMotionConfig() *PipelineSessionUpdate {
	_u.mutation.ClearMotionConfig()
	return _u
}

// SetCtfConfig sets the "ctf_config" field.
func (_u *PipelineSessionUpdate) SetCtfConfig(v models.CtfConfig) *PipelineSessionUpdate {
	_u.mutation.SetCtfConfig(v)
	return _u
}

// SetNillableCtfConfig sets the "ctf_config" field if the given value is not nil.
func (_u *PipelineSessionUpdate) SetNillableCtfConfig(v *models.CtfConfig) *PipelineSessionUpdate {
	if v != nil {
		_u.SetCtfConfig(*v)
	}
	return _u
}

// ClearCtfConfig clears the value of the "ctf_config" field.
func (_u *PipelineSessionUpdate) ClearCtfConfig() *PipelineSessionUpdate {
	_u.mutation.ClearCtfConfig()
	return _u
}

// SetPickingConfig sets the "picking_config" field.
func (_u *PipelineSessionUpdate) SetPickingConfig(v models.PickingConfig) *PipelineSessionUpdate {
	_u.mutation.SetPickingConfig(v)
	return _u
}

// SetNillablePickingConfig sets the "picking_config" field if the given value is not nil.
func (_u *PipelineSessionUpdate) SetNillablePickingConfig(v *models.PickingConfig) *PipelineSessionUpdate {
	if v != nil {
		_u.SetPickingConfig(*v)
	}
	return _u
}

// ClearPickingConfig clears the value of the "picking_config" field.
func (_u *PipelineSessionUpdate) ClearPickingConfig() *PipelineSessionUpdate {
	_u.mutation.ClearPickingConfig()
	return _u
}

// SetExtractionConfig sets the "extraction_config" field.
func (_u *PipelineSessionUpdate) SetExtractionConfig(v models.ExtractionConfig) *PipelineSessionUpdate {
	_u.mutation.SetExtractionConfig(v)
	return _u
}

// SetNillableExtractionConfig sets the "extraction_config" field if the given value is not nil.
func (_u *PipelineSessionUpdate) SetNillableExtractionConfig(v *models.ExtractionConfig) *PipelineSessionUpdate {
	if v != nil {
		_u.SetExtractionConfig(*v)
	}
	return _u
}

// ClearExtractionConfig clears the value of the "extraction_config" field.
func (_u *PipelineSessionUpdate) ClearExtractionConfig() *PipelineSessionUpdate {
	_u.mutation.ClearExtractionConfig()
	return _u
}

// SetClass2dConfig sets the "class2d_config" field.
func (_u *PipelineSessionUpdate) SetClass2dConfig(v models.Class2DConfig) *PipelineSessionUpdate {
	_u.mutation.SetClass2dConfig(v)
	return _u
}

// SetNillableClass2dConfig sets the "class2d_config" field if the given value is not nil.
func (_u *PipelineSessionUpdate) SetNillableClass2dConfig(v *models.Class2DConfig) *PipelineSessionUpdate {
	if v != nil {
		_u.SetClass2dConfig(*v)
	}
	return _u
}

// ClearClass2dConfig clears the value of the "class2d_config" field.
func (_u *PipelineSessionUpdate) ClearClass2dConfig() *PipelineSessionUpdate {
	_u.mutation.ClearClass2dConfig()
	return _u
}

// SetSlurmConfig sets the "slurm_config" field.
func (_u *PipelineSessionUpdate) SetSlurmConfig(v models.SlurmConfig) *PipelineSessionUpdate {
	_u.mutation.SetSlurmConfig(v)
	return _u
}

// SetNillableSlurmConfig sets the "slurm_config" field if the given value is not nil.
func (_u *PipelineSessionUpdate) SetNillableSlurmConfig(v *models.SlurmConfig) *PipelineSessionUpdate {
	if v != nil {
		_u.SetSlurmConfig(*v)
	}
	return _u
}

// ClearSlurmConfig clears the value of the "slurm_config" field.
func (_u *PipelineSessionUpdate) ClearSlurmConfig() *PipelineSessionUpdate {
	_u.mutation.ClearSlurmConfig()
	return _u
}

// SetState sets the "state" field.
func (_u *PipelineSessionUpdate) SetState(v models.SessionState) *PipelineSessionUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *PipelineSessionUpdate) SetNillableState(v *models.SessionState) *PipelineSessionUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetJobs sets the "jobs" field.
func (_u *PipelineSessionUpdate) SetJobs(v models.SessionJobs) *PipelineSessionUpdate {
	_u.mutation.SetJobs(v)
	return _u
}

// SetNillableJobs sets the "jobs" field if the given value is not nil.
func (_u *PipelineSessionUpdate) SetNillableJobs(v *models.SessionJobs) *PipelineSessionUpdate {
	if v != nil {
		_u.SetJobs(*v)
	}
	return _u
}

// SetPassHistory sets the "pass_history" field.
func (_u *PipelineSessionUpdate) SetPassHistory(v []models.PassSnapshot) *PipelineSessionUpdate {
	_u.mutation.SetPassHistory(v)
	return _u
}

// AppendPassHistory appends value to the "pass_history" field.
func (_u *PipelineSessionUpdate) AppendPassHistory(v []models.PassSnapshot) *PipelineSessionUpdate {
	_u.mutation.AppendPassHistory(v)
	return _u
}

// ClearPassHistory clears the value of the "pass_history" field.
func (_u *PipelineSessionUpdate) ClearPassHistory() *PipelineSessionUpdate {
	_u.mutation.ClearPassHistory()
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *PipelineSessionUpdate) SetStartTime(v time.Time) *PipelineSessionUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *PipelineSessionUpdate) SetNillableStartTime(v *time.Time) *PipelineSessionUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// ClearStartTime clears the value of the "start_time" field.
func (_u *PipelineSessionUpdate) ClearStartTime() *PipelineSessionUpdate {
	_u.mutation.ClearStartTime()
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *PipelineSessionUpdate) SetEndTime(v time.Time) *PipelineSessionUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *PipelineSessionUpdate) SetNillableEndTime(v *time.Time) *PipelineSessionUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *PipelineSessionUpdate) ClearEndTime() *PipelineSessionUpdate {
	_u.mutation.ClearEndTime()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PipelineSessionUpdate) SetCreatedAt(v time.Time) *PipelineSessionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PipelineSessionUpdate) SetNillableCreatedAt(v *time.Time) *PipelineSessionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PipelineSessionUpdate) SetDeletedAt(v time.Time) *PipelineSessionUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PipelineSessionUpdate) SetNillableDeletedAt(v *time.Time) *PipelineSessionUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PipelineSessionUpdate) ClearDeletedAt() *PipelineSessionUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *PipelineSessionUpdate) SetProject(v *Project) *PipelineSessionUpdate {
	return _u.SetProjectID(v.ID)
}

// AddPipelineJobIDs adds the "pipeline_jobs" edge to the PipelineJob entity by IDs.
func (_u *PipelineSessionUpdate) AddPipelineJobIDs(ids ...string) *PipelineSessionUpdate {
	_u.mutation.AddPipelineJobIDs(ids...)
	return _u
}

// AddPipelineJobs adds the "pipeline_jobs" edges to the PipelineJob entity.
func (_u *PipelineSessionUpdate) AddPipelineJobs(v ...*PipelineJob) *PipelineSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPipelineJobIDs(ids...)
}

// AddActivityEntryIDs adds the "activity_entries" edge to the ActivityEntry entity by IDs.
func (_u *PipelineSessionUpdate) AddActivityEntryIDs(ids ...string) *PipelineSessionUpdate {
	_u.mutation.AddActivityEntryIDs(ids...)
	return _u
}

// AddActivityEntries adds the "activity_entries" edges to the ActivityEntry entity.
func (_u *PipelineSessionUpdate) AddActivityEntries(v ...*ActivityEntry) *PipelineSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActivityEntryIDs(ids...)
}

// Mutation returns the PipelineSessionMutation object of the builder.
func (_u *PipelineSessionUpdate) Mutation() *PipelineSessionMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *PipelineSessionUpdate) ClearProject() *PipelineSessionUpdate {
	_u.mutation.ClearProject()
	return _u
}

// ClearPipelineJobs clears all "pipeline_jobs" edges to the PipelineJob entity.
func (_u *PipelineSessionUpdate) ClearPipelineJobs() *PipelineSessionUpdate {
	_u.mutation.ClearPipelineJobs()
	return _u
}

// RemovePipelineJobIDs removes the "pipeline_jobs" edge to PipelineJob entities by IDs.
func (_u *PipelineSessionUpdate) RemovePipelineJobIDs(ids ...string) *PipelineSessionUpdate {
	_u.mutation.RemovePipelineJobIDs(ids...)
	return _u
}

// RemovePipelineJobs removes "pipeline_jobs" edges to PipelineJob entities.
func (_u *PipelineSessionUpdate) RemovePipelineJobs(v ...*PipelineJob) *PipelineSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePipelineJobIDs(ids...)
}

// ClearActivityEntries clears all "activity_entries" edges to the ActivityEntry entity.
func (_u *PipelineSessionUpdate) ClearActivityEntries() *PipelineSessionUpdate {
	_u.mutation.ClearActivityEntries()
	return _u
}

// RemoveActivityEntryIDs removes the "activity_entries" edge to ActivityEntry entities by IDs.
func (_u *PipelineSessionUpdate) RemoveActivityEntryIDs(ids ...string) *PipelineSessionUpdate {
	_u.mutation.RemoveActivityEntryIDs(ids...)
	return _u
}

// RemoveActivityEntries removes "activity_entries" edges to ActivityEntry entities.
func (_u *PipelineSessionUpdate) RemoveActivityEntries(v ...*ActivityEntry) *PipelineSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActivityEntryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PipelineSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PipelineSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineSessionUpdate) check() error {
	if v, ok := _u.mutation.InputMode(); ok {
		if err := pipelinesession.InputModeValidator(v); err != nil {
			return &ValidationError{Name: "input_mode", err: fmt.Errorf(`ent: validator failed for field "PipelineSession.input_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := pipelinesession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineSession.status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PipelineSession.project"`)
	}
	return nil
}

func (_u *PipelineSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinesession.Table, pipelinesession.Columns, sqlgraph.NewFieldSpec(pipelinesession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(pipelinesession.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionName(); ok {
		_spec.SetField(pipelinesession.FieldSessionName, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputMode(); ok {
		_spec.SetField(pipelinesession.FieldInputMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WatchDirectory(); ok {
		_spec.SetField(pipelinesession.FieldWatchDirectory, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePattern(); ok {
		_spec.SetField(pipelinesession.FieldFilePattern, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pipelinesession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Optics(); ok {
		_spec.SetField(pipelinesession.FieldOptics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.MotionConfig(); ok {
		_spec.SetField(pipelinesession.FieldMotionConfig, field.TypeJSON, value)
	}
	if _u.mutation.MotionConfigCleared() {
		_spec.ClearField(pipelinesession.FieldMotionConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.CtfConfig(); ok {
		_spec.SetField(pipelinesession.FieldCtfConfig, field.TypeJSON, value)
	}
	if _u.mutation.CtfConfigCleared() {
		_spec.ClearField(pipelinesession.FieldCtfConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.PickingConfig(); ok {
		_spec.SetField(pipelinesession.FieldPickingConfig, field.TypeJSON, value)
	}
	if _u.mutation.PickingConfigCleared() {
		_spec.ClearField(pipelinesession.FieldPickingConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractionConfig(); ok {
		_spec.SetField(pipelinesession.FieldExtractionConfig, field.TypeJSON, value)
	}
	if _u.mutation.ExtractionConfigCleared() {
		_spec.ClearField(pipelinesession.FieldExtractionConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Class2dConfig(); ok {
		_spec.SetField(pipelinesession.FieldClass2dConfig, field.TypeJSON, value)
	}
	if _u.mutation.Class2dConfigCleared() {
		_spec.ClearField(pipelinesession.FieldClass2dConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.SlurmConfig(); ok {
		_spec.SetField(pipelinesession.FieldSlurmConfig, field.TypeJSON, value)
	}
	if _u.mutation.SlurmConfigCleared() {
		_spec.ClearField(pipelinesession.FieldSlurmConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(pipelinesession.FieldState, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Jobs(); ok {
		_spec.SetField(pipelinesession.FieldJobs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.PassHistory(); ok {
		_spec.SetField(pipelinesession.FieldPassHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPassHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinesession.FieldPassHistory, value)
		})
	}
	if _u.mutation.PassHistoryCleared() {
		_spec.ClearField(pipelinesession.FieldPassHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(pipelinesession.FieldStartTime, field.TypeTime, value)
	}
	if _u.mutation.StartTimeCleared() {
		_spec.ClearField(pipelinesession.FieldStartTime, field.TypeTime)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(pipelinesession.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(pipelinesession.FieldEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(pipelinesession.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(pipelinesession.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(pipelinesession.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pipelinesession.ProjectTable,
			Columns: []string{pipelinesession.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pipelinesession.ProjectTable,
			Columns: []string{pipelinesession.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PipelineJobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinesession.PipelineJobsTable,
			Columns: []string{pipelinesession.PipelineJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinejob.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPipelineJobsIDs(); len(nodes) > 0 && !_u.mutation.PipelineJobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinesession.PipelineJobsTable,
			Columns: []string{pipelinesession.PipelineJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinejob.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PipelineJobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinesession.PipelineJobsTable,
			Columns: []string{pipelinesession.PipelineJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinejob.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ActivityEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinesession.ActivityEntriesTable,
			Columns: []string{pipelinesession.ActivityEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activityentry.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedActivityEntriesIDs(); len(nodes) > 0 && !_u.mutation.ActivityEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinesession.ActivityEntriesTable,
			Columns: []string{pipelinesession.ActivityEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activityentry.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActivityEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinesession.ActivityEntriesTable,
			Columns: []string{pipelinesession.ActivityEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activityentry.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PipelineSessionUpdateOne is the builder for updating a single PipelineSession entity.
type PipelineSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PipelineSessionMutation
}

// SetProjectID sets the "project_id" field.
func (_u *PipelineSessionUpdateOne) SetProjectID(v string) *PipelineSessionUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *PipelineSessionUpdateOne) SetNillableProjectID(v *string) *PipelineSessionUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PipelineSessionUpdateOne) SetUserID(v string) *PipelineSessionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PipelineSessionUpdateOne) SetNillableUserID(v *string) *PipelineSessionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSessionName sets the "session_name" field.
func (_u *PipelineSessionUpdateOne) SetSessionName(v string) *PipelineSessionUpdateOne {
	_u.mutation.SetSessionName(v)
	return _u
}

// SetNillableSessionName sets the "session_name" field if the given value is not nil.
func (_u *PipelineSessionUpdateOne) SetNillableSessionName(v *string) *PipelineSessionUpdateOne {
	if v != nil {
		_u.SetSessionName(*v)
	}
	return _u
}

// SetInputMode sets the "input_mode" field.
func (_u *PipelineSessionUpdateOne) SetInputMode(v pipelinesession.InputMode) *PipelineSessionUpdateOne {
	_u.mutation.SetInputMode(v)
	return _u
}

// SetNillableInputMode sets the "input_mode" field if the given value is not nil.
func (_u *PipelineSessionUpdateOne) SetNillableInputMode(v *pipelinesession.InputMode) *PipelineSessionUpdateOne {
	if v != nil {
		_u.SetInputMode(*v)
	}
	return _u
}

// SetWatchDirectory sets the "watch_directory" field.
func (_u *PipelineSessionUpdateOne) SetWatchDirectory(v string) *PipelineSessionUpdateOne {
	_u.mutation.SetWatchDirectory(v)
	return _u
}

// SetNillableWatchDirectory sets the "watch_directory" field if the given value is not nil.
func (_u *PipelineSessionUpdateOne) SetNillableWatchDirectory(v *string) *PipelineSessionUpdateOne {
	if v != nil {
		_u.SetWatchDirectory(*v)
	}
	return _u
}

// SetFilePattern sets the "file_pattern" field.
func (_u *PipelineSessionUpdateOne) SetFilePattern(v string) *PipelineSessionUpdateOne {
	_u.mutation.SetFilePattern(v)
	return _u
}

// SetNillableFilePattern sets the "file_pattern" field if the given value is not nil.
func (_u *PipelineSessionUpdateOne) SetNillableFilePattern(v *string) *PipelineSessionUpdateOne {
	if v != nil {
		_u.SetFilePattern(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PipelineSessionUpdateOne) SetStatus(v pipelinesession.Status) *PipelineSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineSessionUpdateOne) SetNillableStatus(v *pipelinesession.Status) *PipelineSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOptics sets the "optics" field.
func (_u *PipelineSessionUpdateOne) SetOptics(v models.OpticsConfig) *PipelineSessionUpdateOne {
	_u.mutation.SetOptics(v)
	return _u
}

// SetNillableOptics sets the "optics" field if the given value is not nil.
func (_u *PipelineSessionUpdateOne) SetNillableOptics(v *models.OpticsConfig) *PipelineSessionUpdateOne {
	if v != nil {
		_u.SetOptics(*v)
	}
	return _u
}

// SetMotionConfig sets the "motion_config" field.
func (_u *PipelineSessionUpdateOne) SetMotionConfig(v models.MotionConfig) *PipelineSessionUpdateOne {
	_u.mutation.SetMotionConfig(v)
	return _u
}

// SetNillableMotionConfig sets the "motion_config" field if the given value is not nil.
func (_u *PipelineSessionUpdateOne) SetNillableMotionConfig(v *models.MotionConfig) *PipelineSessionUpdateOne {
	if v != nil {
		_u.SetMotionConfig(*v)
	}
	return _u
}

// ClearMotionConfig clears the value of the "motion_config" field.
func (_u *PipelineSessionUpdateOne) ClearMotionConfig() *PipelineSessionUpdateOne {
	_u.mutation.ClearMotionConfig()
	return _u
}

// SetCtfConfig sets the "ctf_config" field.
func (_u *PipelineSessionUpdateOne) SetCtfConfig(v models.CtfConfig) *PipelineSessionUpdateOne {
	_u.mutation.SetCtfConfig(v)
	return _u
}

// SetNillableCtfConfig sets the "ctf_config" field if the given value is not nil.
func (_u *PipelineSessionUpdateOne) SetNillableCtfConfig(v *models.CtfConfig) *PipelineSessionUpdateOne {
	if v != nil {
		_u.SetCtfConfig(*v)
	}
	return _u
}

// ClearCtfConfig clears the value of the "ctf_config" field.
func (_u *PipelineSessionUpdateOne) ClearCtfConfig() *PipelineSessionUpdateOne {
	_u.mutation.ClearCtfConfig()
	return _u
}

// SetPickingConfig sets the "picking_config" field.
func (_u *PipelineSessionUpdateOne) SetPickingConfig(v models.PickingConfig) *PipelineSessionUpdateOne {
	_u.mutation.SetPickingConfig(v)
	return _u
}

// SetNillablePickingConfig sets the "picking_config" field if the given value is not nil.
func (_u *PipelineSessionUpdateOne) SetNillablePickingConfig(v *models.PickingConfig) *PipelineSessionUpdateOne {
	if v != nil {
		_u.SetPickingConfig(*v)
	}
	return _u
}

// ClearPickingConfig clears the value of the "picking_config" field.
func (_u *PipelineSessionUpdateOne) ClearPickingConfig() *PipelineSessionUpdateOne {
	_u.mutation.ClearPickingConfig()
	return _u
}

// SetExtractionConfig sets the "extraction_config" field.
func (_u *PipelineSessionUpdateOne) SetExtractionConfig(v models.ExtractionConfig) *PipelineSessionUpdateOne {
	_u.mutation.SetExtractionConfig(v)
	return _u
}

// SetNillableExtractionConfig sets the "extraction_config" field if the given value is not nil.
func (_u *PipelineSessionUpdateOne) SetNillableExtractionConfig(v *models.ExtractionConfig) *PipelineSessionUpdateOne {
	if v != nil {
		_u.SetExtractionConfig(*v)
	}
	return _u
}

// ClearExtractionConfig clears the value of the "extraction_config" field.
func (_u *PipelineSessionUpdateOne) ClearExtractionConfig() *PipelineSessionUpdateOne {
	_u.mutation.ClearExtractionConfig()
	return _u
}

// SetClass2dConfig sets the "class2d_config" field.
func (_u *PipelineSessionUpdateOne) SetClass2dConfig(v models.Class2DConfig) *PipelineSessionUpdateOne {
	_u.mutation.SetClass2dConfig(v)
	return _u
}

// SetNillableClass2dConfig sets the "class2d_config" field if the given value is not nil.
func (_u *PipelineSessionUpdateOne) SetNillableClass2dConfig(v *models.Class2DConfig) *PipelineSessionUpdateOne {
	if v != nil {
		_u.SetClass2dConfig(*v)
	}
	return _u
}

// ClearClass2dConfig clears the value of the "class2d_config" field.
func (_u *PipelineSessionUpdateOne) ClearClass2dConfig() *PipelineSessionUpdateOne {
	_u.mutation.ClearClass2dConfig()
	return _u
}

// SetSlurmConfig sets the "slurm_config" field.
func (_u *PipelineSessionUpdateOne) SetSlurmConfig(v models.SlurmConfig) *PipelineSessionUpdateOne {
	_u.mutation.SetSlurmConfig(v)
	return _u
}

// SetNillableSlurmConfig sets the "slurm_config" field if the given value is not nil.
func (_u *PipelineSessionUpdateOne) SetNillableSlurmConfig(v *models.SlurmConfig) *PipelineSessionUpdateOne {
	if v != nil {
		_u.SetSlurmConfig(*v)
	}
	return _u
}

// ClearSlurmConfig clears the value of the "slurm_config" field.
func (_u *PipelineSessionUpdateOne) ClearSlurmConfig() *PipelineSessionUpdateOne {
	_u.mutation.ClearSlurmConfig()
	return _u
}

// SetState sets the "state" field.
func (_u *PipelineSessionUpdateOne) SetState(v models.SessionState) *PipelineSessionUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *PipelineSessionUpdateOne) SetNillableState(v *models.SessionState) *PipelineSessionUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetJobs sets the "jobs" field.
func (_u *PipelineSessionUpdateOne) SetJobs(v models.SessionJobs) *PipelineSessionUpdateOne {
	_u.mutation.SetJobs(v)
	return _u
}

// SetNillableJobs sets the "jobs" field if the given value is not nil.
func (_u *PipelineSessionUpdateOne) SetNillableJobs(v *models.SessionJobs) *PipelineSessionUpdateOne {
	if v != nil {
		_u.SetJobs(*v)
	}
	return _u
}

// SetPassHistory sets the "pass_history" field.
func (_u *PipelineSessionUpdateOne) SetPassHistory(v []models.PassSnapshot) *PipelineSessionUpdateOne {
	_u.mutation.SetPassHistory(v)
	return _u
}

// AppendPassHistory appends value to the "pass_history" field.
func (_u *PipelineSessionUpdateOne) AppendPassHistory(v []models.PassSnapshot) *PipelineSessionUpdateOne {
	_u.mutation.AppendPassHistory(v)
	return _u
}

// ClearPassHistory clears the value of the "pass_history" field.
func (_u *PipelineSessionUpdateOne) ClearPassHistory() *PipelineSessionUpdateOne {
	_u.mutation.ClearPassHistory()
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *PipelineSessionUpdateOne) SetStartTime(v time.Time) *PipelineSessionUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *PipelineSessionUpdateOne) SetNillableStartTime(v *time.Time) *PipelineSessionUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// ClearStartTime clears the value of the "start_time" field.
func (_u *PipelineSessionUpdateOne) ClearStartTime() *PipelineSessionUpdateOne {
	_u.mutation.ClearStartTime()
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *PipelineSessionUpdateOne) SetEndTime(v time.Time) *PipelineSessionUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *PipelineSessionUpdateOne) SetNillableEndTime(v *time.Time) *PipelineSessionUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *PipelineSessionUpdateOne) ClearEndTime() *PipelineSessionUpdateOne {
	_u.mutation.ClearEndTime()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PipelineSessionUpdateOne) SetCreatedAt(v time.Time) *PipelineSessionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PipelineSessionUpdateOne) SetNillableCreatedAt(v *time.Time) *PipelineSessionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PipelineSessionUpdateOne) SetDeletedAt(v time.Time) *PipelineSessionUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PipelineSessionUpdateOne) SetNillableDeletedAt(v *time.Time) *PipelineSessionUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PipelineSessionUpdateOne) ClearDeletedAt() *PipelineSessionUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *PipelineSessionUpdateOne) SetProject(v *Project) *PipelineSessionUpdateOne {
	return _u.SetProjectID(v.ID)
}

// AddPipelineJobIDs adds the "pipeline_jobs" edge to the PipelineJob entity by IDs.
func (_u *PipelineSessionUpdateOne) AddPipelineJobIDs(ids ...string) *PipelineSessionUpdateOne {
	_u.mutation.AddPipelineJobIDs(ids...)
	return _u
}

// AddPipelineJobs adds the "pipeline_jobs" edges to the PipelineJob entity.
func (_u *PipelineSessionUpdateOne) AddPipelineJobs(v ...*PipelineJob) *PipelineSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPipelineJobIDs(ids...)
}

// AddActivityEntryIDs adds the "activity_entries" edge to the ActivityEntry entity by IDs.
func (_u *PipelineSessionUpdateOne) AddActivityEntryIDs(ids ...string) *PipelineSessionUpdateOne {
	_u.mutation.AddActivityEntryIDs(ids...)
	return _u
}

// AddActivityEntries adds the "activity_entries" edges to the ActivityEntry entity.
func (_u *PipelineSessionUpdateOne) AddActivityEntries(v ...*ActivityEntry) *PipelineSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActivityEntryIDs(ids...)
}

// Mutation returns the PipelineSessionMutation object of the builder.
func (_u *PipelineSessionUpdateOne) Mutation() *PipelineSessionMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *PipelineSessionUpdateOne) ClearProject() *PipelineSessionUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// ClearPipelineJobs clears all "pipeline_jobs" edges to the PipelineJob entity.
func (_u *PipelineSessionUpdateOne) ClearPipelineJobs() *PipelineSessionUpdateOne {
	_u.mutation.ClearPipelineJobs()
	return _u
}

// RemovePipelineJobIDs removes the "pipeline_jobs" edge to PipelineJob entities by IDs.
func (_u *PipelineSessionUpdateOne) RemovePipelineJobIDs(ids ...string) *PipelineSessionUpdateOne {
	_u.mutation.RemovePipelineJobIDs(ids...)
	return _u
}

// RemovePipelineJobs removes "pipeline_jobs" edges to PipelineJob entities.
func (_u *PipelineSessionUpdateOne) RemovePipelineJobs(v ...*PipelineJob) *PipelineSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePipelineJobIDs(ids...)
}

// ClearActivityEntries clears all "activity_entries" edges to the ActivityEntry entity.
func (_u *PipelineSessionUpdateOne) ClearActivityEntries() *PipelineSessionUpdateOne {
	_u.mutation.ClearActivityEntries()
	return _u
}

// RemoveActivityEntryIDs removes the "activity_entries" edge to ActivityEntry entities by IDs.
func (_u *PipelineSessionUpdateOne) RemoveActivityEntryIDs(ids ...string) *PipelineSessionUpdateOne {
	_u.mutation.RemoveActivityEntryIDs(ids...)
	return _u
}

// RemoveActivityEntries removes "activity_entries" edges to ActivityEntry entities.
func (_u *PipelineSessionUpdateOne) RemoveActivityEntries(v ...*ActivityEntry) *PipelineSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActivityEntryIDs(ids...)
}

// Where appends a list predicates to the PipelineSessionUpdate builder.
func (_u *PipelineSessionUpdateOne) Where(ps ...predicate.PipelineSession) *PipelineSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PipelineSessionUpdateOne) Select(field string, fields ...string) *PipelineSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PipelineSession entity.
func (_u *PipelineSessionUpdateOne) Save(ctx context.Context) (*PipelineSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineSessionUpdateOne) SaveX(ctx context.Context) *PipelineSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PipelineSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineSessionUpdateOne) check() error {
	if v, ok := _u.mutation.InputMode(); ok {
		if err := pipelinesession.InputModeValidator(v); err != nil {
			return &ValidationError{Name: "input_mode", err: fmt.Errorf(`ent: validator failed for field "PipelineSession.input_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := pipelinesession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineSession.status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PipelineSession.project"`)
	}
	return nil
}

func (_u *PipelineSessionUpdateOne) sqlSave(ctx context.Context) (_node *PipelineSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinesession.Table, pipelinesession.Columns, sqlgraph.NewFieldSpec(pipelinesession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PipelineSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pipelinesession.FieldID)
		for _, f := range fields {
			if !pipelinesession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pipelinesession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(pipelinesession.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionName(); ok {
		_spec.SetField(pipelinesession.FieldSessionName, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputMode(); ok {
		_spec.SetField(pipelinesession.FieldInputMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WatchDirectory(); ok {
		_spec.SetField(pipelinesession.FieldWatchDirectory, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePattern(); ok {
		_spec.SetField(pipelinesession.FieldFilePattern, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pipelinesession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Optics(); ok {
		_spec.SetField(pipelinesession.FieldOptics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.MotionConfig(); ok {
		_spec.SetField(pipelinesession.FieldMotionConfig, field.TypeJSON, value)
	}
	if _u.mutation.MotionConfigCleared() {
		_spec.ClearField(pipelinesession.FieldMotionConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.CtfConfig(); ok {
		_spec.SetField(pipelinesession.FieldCtfConfig, field.TypeJSON, value)
	}
	if _u.mutation.CtfConfigCleared() {
		_spec.ClearField(pipelinesession.FieldCtfConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.PickingConfig(); ok {
		_spec.SetField(pipelinesession.FieldPickingConfig, field.TypeJSON, value)
	}
	if _u.mutation.PickingConfigCleared() {
		_spec.ClearField(pipelinesession.FieldPickingConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractionConfig(); ok {
		_spec.SetField(pipelinesession.FieldExtractionConfig, field.TypeJSON, value)
	}
	if _u.mutation.ExtractionConfigCleared() {
		_spec.ClearField(pipelinesession.FieldExtractionConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Class2dConfig(); ok {
		_spec.SetField(pipelinesession.FieldClass2dConfig, field.TypeJSON, value)
	}
	if _u.mutation.Class2dConfigCleared() {
		_spec.ClearField(pipelinesession.FieldClass2dConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.SlurmConfig(); ok {
		_spec.SetField(pipelinesession.FieldSlurmConfig, field.TypeJSON, value)
	}
	if _u.mutation.SlurmConfigCleared() {
		_spec.ClearField(pipelinesession.FieldSlurmConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(pipelinesession.FieldState, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Jobs(); ok {
		_spec.SetField(pipelinesession.FieldJobs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.PassHistory(); ok {
		_spec.SetField(pipelinesession.FieldPassHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPassHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinesession.FieldPassHistory, value)
		})
	}
	if _u.mutation.PassHistoryCleared() {
		_spec.ClearField(pipelinesession.FieldPassHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(pipelinesession.FieldStartTime, field.TypeTime, value)
	}
	if _u.mutation.StartTimeCleared() {
		_spec.ClearField(pipelinesession.FieldStartTime, field.TypeTime)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(pipelinesession.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(pipelinesession.FieldEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(pipelinesession.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(pipelinesession.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(pipelinesession.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pipelinesession.ProjectTable,
			Columns: []string{pipelinesession.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pipelinesession.ProjectTable,
			Columns: []string{pipelinesession.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PipelineJobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinesession.PipelineJobsTable,
			Columns: []string{pipelinesession.PipelineJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinejob.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPipelineJobsIDs(); len(nodes) > 0 && !_u.mutation.PipelineJobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinesession.PipelineJobsTable,
			Columns: []string{pipelinesession.PipelineJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinejob.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PipelineJobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinesession.PipelineJobsTable,
			Columns: []string{pipelinesession.PipelineJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinejob.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ActivityEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinesession.ActivityEntriesTable,
			Columns: []string{pipelinesession.ActivityEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activityentry.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedActivityEntriesIDs(); len(nodes) > 0 && !_u.mutation.ActivityEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinesession.ActivityEntriesTable,
			Columns: []string{pipelinesession.ActivityEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activityentry.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActivityEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinesession.ActivityEntriesTable,
			Columns: []string{pipelinesession.ActivityEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activityentry.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PipelineSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
