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
	"github.com/cryoflow/cryoflow/ent/pipelinejob"
	"github.com/cryoflow/cryoflow/ent/pipelinesession"
	"github.com/cryoflow/cryoflow/ent/predicate"
	"github.com/cryoflow/cryoflow/ent/project"
	"github.com/cryoflow/cryoflow/pkg/models"
)

// PipelineJobUpdate is the builder for updating PipelineJob entities.
type PipelineJobUpdate struct {
	config
	hooks    []Hook
	mutation *PipelineJobMutation
}

// Where appends a list predicates to the PipelineJobUpdate builder.
func (_u *PipelineJobUpdate) Where(ps ...predicate.PipelineJob) *PipelineJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *PipelineJobUpdate) SetSessionID(v string) *PipelineJobUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableSessionID(v *string) *PipelineJobUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *PipelineJobUpdate) SetProjectID(v string) *PipelineJobUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableProjectID(v *string) *PipelineJobUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PipelineJobUpdate) SetUserID(v string) *PipelineJobUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableUserID(v *string) *PipelineJobUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetJobName sets the "job_name" field.
func (_u *PipelineJobUpdate) SetJobName(v string) *PipelineJobUpdate {
	_u.mutation.SetJobName(v)
	return _u
}

// SetNillableJobName sets the "job_name" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableJobName(v *string) *PipelineJobUpdate {
	if v != nil {
		_u.SetJobName(*v)
	}
	return _u
}

// SetJobType sets the "job_type" field.
func (_u *PipelineJobUpdate) SetJobType(v string) *PipelineJobUpdate {
	_u.mutation.SetJobType(v)
	return _u
}

// SetNillableJobType sets the "job_type" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableJobType(v *string) *PipelineJobUpdate {
	if v != nil {
		_u.SetJobType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PipelineJobUpdate) SetStatus(v pipelinejob.Status) *PipelineJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableStatus(v *pipelinejob.Status) *PipelineJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOutputFilePath sets the "output_file_path" field.
func (_u *PipelineJobUpdate) SetOutputFilePath(v string) *PipelineJobUpdate {
	_u.mutation.SetOutputFilePath(v)
	return _u
}

// SetNillableOutputFilePath sets the "output_file_path" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableOutputFilePath(v *string) *PipelineJobUpdate {
	if v != nil {
		_u.SetOutputFilePath(*v)
	}
	return _u
}

// ClearOutputFilePath clears the value of the "output_file_path" field.
func (_u *PipelineJobUpdate) ClearOutputFilePath() *PipelineJobUpdate {
	_u.mutation.ClearOutputFilePath()
	return _u
}

// SetCommand sets the "command" field.
func (_u *PipelineJobUpdate) SetCommand(v string) *PipelineJobUpdate {
	_u.mutation.SetCommand(v)
	return _u
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableCommand(v *string) *PipelineJobUpdate {
	if v != nil {
		_u.SetCommand(*v)
	}
	return _u
}

// ClearCommand clears the value of the "command" field.
func (_u *PipelineJobUpdate) ClearCommand() *PipelineJobUpdate {
	_u.mutation.ClearCommand()
	return _u
}

// SetParameters sets the "parameters" field.
func (_u *PipelineJobUpdate) SetParameters(v map[string]interface{}) *PipelineJobUpdate {
	_u.mutation.SetParameters(v)
	return _u
}

// ClearParameters clears the value of the "parameters" field.
func (_u *PipelineJobUpdate) ClearParameters() *PipelineJobUpdate {
	_u.mutation.ClearParameters()
	return _u
}

// SetInputJobIds sets the "input_job_ids" field.
func (_u *PipelineJobUpdate) SetInputJobIds(v []string) *PipelineJobUpdate {
	_u.mutation.SetInputJobIds(v)
	return _u
}

// AppendInputJobIds appends value to the "input_job_ids" field.
func (_u *PipelineJobUpdate) AppendInputJobIds(v []string) *PipelineJobUpdate {
	_u.mutation.AppendInputJobIds(v)
	return _u
}

// ClearInputJobIds clears the value of the "input_job_ids" field.
func (_u *PipelineJobUpdate) ClearInputJobIds() *PipelineJobUpdate {
	_u.mutation.ClearInputJobIds()
	return _u
}

// SetExecutionMode sets the "execution_mode" field.
func (_u *PipelineJobUpdate) SetExecutionMode(v string) *PipelineJobUpdate {
	_u.mutation.SetExecutionMode(v)
	return _u
}

// SetNillableExecutionMode sets the "execution_mode" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableExecutionMode(v *string) *PipelineJobUpdate {
	if v != nil {
		_u.SetExecutionMode(*v)
	}
	return _u
}

// SetClusterJobID sets the "cluster_job_id" field.
func (_u *PipelineJobUpdate) SetClusterJobID(v string) *PipelineJobUpdate {
	_u.mutation.SetClusterJobID(v)
	return _u
}

// SetNillableClusterJobID sets the "cluster_job_id" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableClusterJobID(v *string) *PipelineJobUpdate {
	if v != nil {
		_u.SetClusterJobID(*v)
	}
	return _u
}

// ClearClusterJobID clears the value of the "cluster_job_id" field.
func (_u *PipelineJobUpdate) ClearClusterJobID() *PipelineJobUpdate {
	_u.mutation.ClearClusterJobID()
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *PipelineJobUpdate) SetStartTime(v time.Time) *PipelineJobUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableStartTime(v *time.Time) *PipelineJobUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// ClearStartTime clears the value of the "start_time" field.
func (_u *PipelineJobUpdate) ClearStartTime() *PipelineJobUpdate {
	_u.mutation.ClearStartTime()
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *PipelineJobUpdate) SetEndTime(v time.Time) *PipelineJobUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableEndTime(v *time.Time) *PipelineJobUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *PipelineJobUpdate) ClearEndTime() *PipelineJobUpdate {
	_u.mutation.ClearEndTime()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PipelineJobUpdate) SetErrorMessage(v string) *PipelineJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableErrorMessage(v *string) *PipelineJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PipelineJobUpdate) ClearErrorMessage() *PipelineJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPipelineStats sets the "pipeline_stats" field.
func (_u *PipelineJobUpdate) SetPipelineStats(v models.PipelineStats) *PipelineJobUpdate {
	_u.mutation.SetPipelineStats(v)
	return _u
}

// SetNillablePipelineStats sets the "pipeline_stats" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillablePipelineStats(v *models.PipelineStats) *PipelineJobUpdate {
	if v != nil {
		_u.SetPipelineStats(*v)
	}
	return _u
}

// ClearPipelineStats clears the value of the "pipeline_stats" field.
func (_u *PipelineJobUpdate) ClearPipelineStats() *PipelineJobUpdate {
	_u.mutation.ClearPipelineStats()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PipelineJobUpdate) SetCreatedAt(v time.Time) *PipelineJobUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableCreatedAt(v *time.Time) *PipelineJobUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the PipelineSession entity.
func (_u *PipelineJobUpdate) SetSession(v *PipelineSession) *PipelineJobUpdate {
	return _u.SetSessionID(v.ID)
}

// SetProject sets the "project" edge to the Project entity.
func (_u *PipelineJobUpdate) SetProject(v *Project) *PipelineJobUpdate {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the PipelineJobMutation object of the builder.
func (_u *PipelineJobUpdate) Mutation() *PipelineJobMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the PipelineSession entity.
func (_u *PipelineJobUpdate) ClearSession() *PipelineJobUpdate {
	_u.mutation.ClearSession()
	return _u
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *PipelineJobUpdate) ClearProject() *PipelineJobUpdate {
	_u.mutation.ClearProject()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PipelineJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PipelineJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineJobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pipelinejob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineJob.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PipelineJob.session"`)
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PipelineJob.project"`)
	}
	return nil
}

func (_u *PipelineJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinejob.Table, pipelinejob.Columns, sqlgraph.NewFieldSpec(pipelinejob.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(pipelinejob.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobName(); ok {
		_spec.SetField(pipelinejob.FieldJobName, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobType(); ok {
		_spec.SetField(pipelinejob.FieldJobType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pipelinejob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OutputFilePath(); ok {
		_spec.SetField(pipelinejob.FieldOutputFilePath, field.TypeString, value)
	}
	if _u.mutation.OutputFilePathCleared() {
		_spec.ClearField(pipelinejob.FieldOutputFilePath, field.TypeString)
	}
	if value, ok := _u.mutation.Command(); ok {
		_spec.SetField(pipelinejob.FieldCommand, field.TypeString, value)
	}
	if _u.mutation.CommandCleared() {
		_spec.ClearField(pipelinejob.FieldCommand, field.TypeString)
	}
	if value, ok := _u.mutation.Parameters(); ok {
		_spec.SetField(pipelinejob.FieldParameters, field.TypeJSON, value)
	}
	if _u.mutation.ParametersCleared() {
		_spec.ClearField(pipelinejob.FieldParameters, field.TypeJSON)
	}
	if value, ok := _u.mutation.InputJobIds(); ok {
		_spec.SetField(pipelinejob.FieldInputJobIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInputJobIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinejob.FieldInputJobIds, value)
		})
	}
	if _u.mutation.InputJobIdsCleared() {
		_spec.ClearField(pipelinejob.FieldInputJobIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExecutionMode(); ok {
		_spec.SetField(pipelinejob.FieldExecutionMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClusterJobID(); ok {
		_spec.SetField(pipelinejob.FieldClusterJobID, field.TypeString, value)
	}
	if _u.mutation.ClusterJobIDCleared() {
		_spec.ClearField(pipelinejob.FieldClusterJobID, field.TypeString)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(pipelinejob.FieldStartTime, field.TypeTime, value)
	}
	if _u.mutation.StartTimeCleared() {
		_spec.ClearField(pipelinejob.FieldStartTime, field.TypeTime)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(pipelinejob.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(pipelinejob.FieldEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(pipelinejob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(pipelinejob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PipelineStats(); ok {
		_spec.SetField(pipelinejob.FieldPipelineStats, field.TypeJSON, value)
	}
	if _u.mutation.PipelineStatsCleared() {
		_spec.ClearField(pipelinejob.FieldPipelineStats, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(pipelinejob.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pipelinejob.SessionTable,
			Columns: []string{pipelinejob.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinesession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pipelinejob.SessionTable,
			Columns: []string{pipelinejob.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinesession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pipelinejob.ProjectTable,
			Columns: []string{pipelinejob.ProjectColumn},
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
			Table:   pipelinejob.ProjectTable,
			Columns: []string{pipelinejob.ProjectColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinejob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PipelineJobUpdateOne is the builder for updating a single PipelineJob entity.
type PipelineJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PipelineJobMutation
}

// SetSessionID sets the "session_id" field.
func (_u *PipelineJobUpdateOne) SetSessionID(v string) *PipelineJobUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableSessionID(v *string) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *PipelineJobUpdateOne) SetProjectID(v string) *PipelineJobUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableProjectID(v *string) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PipelineJobUpdateOne) SetUserID(v string) *PipelineJobUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableUserID(v *string) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetJobName sets the "job_name" field.
func (_u *PipelineJobUpdateOne) SetJobName(v string) *PipelineJobUpdateOne {
	_u.mutation.SetJobName(v)
	return _u
}

// SetNillableJobName sets the "job_name" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableJobName(v *string) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetJobName(*v)
	}
	return _u
}

// SetJobType sets the "job_type" field.
func (_u *PipelineJobUpdateOne) SetJobType(v string) *PipelineJobUpdateOne {
	_u.mutation.SetJobType(v)
	return _u
}

// SetNillableJobType sets the "job_type" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableJobType(v *string) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetJobType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PipelineJobUpdateOne) SetStatus(v pipelinejob.Status) *PipelineJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableStatus(v *pipelinejob.Status) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOutputFilePath sets the "output_file_path" field.
func (_u *PipelineJobUpdateOne) SetOutputFilePath(v string) *PipelineJobUpdateOne {
	_u.mutation.SetOutputFilePath(v)
	return _u
}

// SetNillableOutputFilePath sets the "output_file_path" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableOutputFilePath(v *string) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetOutputFilePath(*v)
	}
	return _u
}

// ClearOutputFilePath clears the value of the "output_file_path" field.
func (_u *PipelineJobUpdateOne) ClearOutputFilePath() *PipelineJobUpdateOne {
	_u.mutation.ClearOutputFilePath()
	return _u
}

// SetCommand sets the "command" field.
func (_u *PipelineJobUpdateOne) SetCommand(v string) *PipelineJobUpdateOne {
	_u.mutation.SetCommand(v)
	return _u
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableCommand(v *string) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetCommand(*v)
	}
	return _u
}

// ClearCommand clears the value of the "command" field.
func (_u *PipelineJobUpdateOne) ClearCommand() *PipelineJobUpdateOne {
	_u.mutation.ClearCommand()
	return _u
}

// SetParameters sets the "parameters" field.
func (_u *PipelineJobUpdateOne) SetParameters(v map[string]interface{}) *PipelineJobUpdateOne {
	_u.mutation.SetParameters(v)
	return _u
}

// ClearParameters clears the value of the "parameters" field.
func (_u *PipelineJobUpdateOne) ClearParameters() *PipelineJobUpdateOne {
	_u.mutation.ClearParameters()
	return _u
}

// SetInputJobIds sets the "input_job_ids" field.
func (_u *PipelineJobUpdateOne) SetInputJobIds(v []string) *PipelineJobUpdateOne {
	_u.mutation.SetInputJobIds(v)
	return _u
}

// AppendInputJobIds appends value to the "input_job_ids" field.
func (_u *PipelineJobUpdateOne) AppendInputJobIds(v []string) *PipelineJobUpdateOne {
	_u.mutation.AppendInputJobIds(v)
	return _u
}

// ClearInputJobIds clears the value of the "input_job_ids" field.
func (_u *PipelineJobUpdateOne) ClearInputJobIds() *PipelineJobUpdateOne {
	_u.mutation.ClearInputJobIds()
	return _u
}

// SetExecutionMode sets the "execution_mode" field.
func (_u *PipelineJobUpdateOne) SetExecutionMode(v string) *PipelineJobUpdateOne {
	_u.mutation.SetExecutionMode(v)
	return _u
}

// SetNillableExecutionMode sets the "execution_mode" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableExecutionMode(v *string) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetExecutionMode(*v)
	}
	return _u
}

// SetClusterJobID sets the "cluster_job_id" field.
func (_u *PipelineJobUpdateOne) SetClusterJobID(v string) *PipelineJobUpdateOne {
	_u.mutation.SetClusterJobID(v)
	return _u
}

// SetNillableClusterJobID sets the "cluster_job_id" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableClusterJobID(v *string) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetClusterJobID(*v)
	}
	return _u
}

// ClearClusterJobID clears the value of the "cluster_job_id" field.
func (_u *PipelineJobUpdateOne) ClearClusterJobID() *PipelineJobUpdateOne {
	_u.mutation.ClearClusterJobID()
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *PipelineJobUpdateOne) SetStartTime(v time.Time) *PipelineJobUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableStartTime(v *time.Time) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// ClearStartTime clears the value of the "start_time" field.
func (_u *PipelineJobUpdateOne) ClearStartTime() *PipelineJobUpdateOne {
	_u.mutation.ClearStartTime()
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *PipelineJobUpdateOne) SetEndTime(v time.Time) *PipelineJobUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableEndTime(v *time.Time) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *PipelineJobUpdateOne) ClearEndTime() *PipelineJobUpdateOne {
	_u.mutation.ClearEndTime()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PipelineJobUpdateOne) SetErrorMessage(v string) *PipelineJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableErrorMessage(v *string) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PipelineJobUpdateOne) ClearErrorMessage() *PipelineJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPipelineStats sets the "pipeline_stats" field.
func (_u *PipelineJobUpdateOne) SetPipelineStats(v models.PipelineStats) *PipelineJobUpdateOne {
	_u.mutation.SetPipelineStats(v)
	return _u
}

// SetNillablePipelineStats sets the "pipeline_stats" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillablePipelineStats(v *models.PipelineStats) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetPipelineStats(*v)
	}
	return _u
}

// ClearPipelineStats clears the value of the "pipeline_stats" field.
func (_u *PipelineJobUpdateOne) ClearPipelineStats() *PipelineJobUpdateOne {
	_u.mutation.ClearPipelineStats()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PipelineJobUpdateOne) SetCreatedAt(v time.Time) *PipelineJobUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableCreatedAt(v *time.Time) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the PipelineSession entity.
func (_u *PipelineJobUpdateOne) SetSession(v *PipelineSession) *PipelineJobUpdateOne {
	return _u.SetSessionID(v.ID)
}

// SetProject sets the "project" edge to the Project entity.
func (_u *PipelineJobUpdateOne) SetProject(v *Project) *PipelineJobUpdateOne {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the PipelineJobMutation object of the builder.
func (_u *PipelineJobUpdateOne) Mutation() *PipelineJobMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the PipelineSession entity.
func (_u *PipelineJobUpdateOne) ClearSession() *PipelineJobUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *PipelineJobUpdateOne) ClearProject() *PipelineJobUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// Where appends a list predicates to the PipelineJobUpdate builder.
func (_u *PipelineJobUpdateOne) Where(ps ...predicate.PipelineJob) *PipelineJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PipelineJobUpdateOne) Select(field string, fields ...string) *PipelineJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PipelineJob entity.
func (_u *PipelineJobUpdateOne) Save(ctx context.Context) (*PipelineJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineJobUpdateOne) SaveX(ctx context.Context) *PipelineJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PipelineJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineJobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pipelinejob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineJob.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PipelineJob.session"`)
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PipelineJob.project"`)
	}
	return nil
}

func (_u *PipelineJobUpdateOne) sqlSave(ctx context.Context) (_node *PipelineJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinejob.Table, pipelinejob.Columns, sqlgraph.NewFieldSpec(pipelinejob.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PipelineJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pipelinejob.FieldID)
		for _, f := range fields {
			if !pipelinejob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pipelinejob.FieldID {
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
		_spec.SetField(pipelinejob.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobName(); ok {
		_spec.SetField(pipelinejob.FieldJobName, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobType(); ok {
		_spec.SetField(pipelinejob.FieldJobType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pipelinejob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OutputFilePath(); ok {
		_spec.SetField(pipelinejob.FieldOutputFilePath, field.TypeString, value)
	}
	if _u.mutation.OutputFilePathCleared() {
		_spec.ClearField(pipelinejob.FieldOutputFilePath, field.TypeString)
	}
	if value, ok := _u.mutation.Command(); ok {
		_spec.SetField(pipelinejob.FieldCommand, field.TypeString, value)
	}
	if _u.mutation.CommandCleared() {
		_spec.ClearField(pipelinejob.FieldCommand, field.TypeString)
	}
	if value, ok := _u.mutation.Parameters(); ok {
		_spec.SetField(pipelinejob.FieldParameters, field.TypeJSON, value)
	}
	if _u.mutation.ParametersCleared() {
		_spec.ClearField(pipelinejob.FieldParameters, field.TypeJSON)
	}
	if value, ok := _u.mutation.InputJobIds(); ok {
		_spec.SetField(pipelinejob.FieldInputJobIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInputJobIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinejob.FieldInputJobIds, value)
		})
	}
	if _u.mutation.InputJobIdsCleared() {
		_spec.ClearField(pipelinejob.FieldInputJobIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExecutionMode(); ok {
		_spec.SetField(pipelinejob.FieldExecutionMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClusterJobID(); ok {
		_spec.SetField(pipelinejob.FieldClusterJobID, field.TypeString, value)
	}
	if _u.mutation.ClusterJobIDCleared() {
		_spec.ClearField(pipelinejob.FieldClusterJobID, field.TypeString)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(pipelinejob.FieldStartTime, field.TypeTime, value)
	}
	if _u.mutation.StartTimeCleared() {
		_spec.ClearField(pipelinejob.FieldStartTime, field.TypeTime)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(pipelinejob.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(pipelinejob.FieldEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(pipelinejob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(pipelinejob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PipelineStats(); ok {
		_spec.SetField(pipelinejob.FieldPipelineStats, field.TypeJSON, value)
	}
	if _u.mutation.PipelineStatsCleared() {
		_spec.ClearField(pipelinejob.FieldPipelineStats, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(pipelinejob.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pipelinejob.SessionTable,
			Columns: []string{pipelinejob.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinesession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pipelinejob.SessionTable,
			Columns: []string{pipelinejob.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinesession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pipelinejob.ProjectTable,
			Columns: []string{pipelinejob.ProjectColumn},
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
			Table:   pipelinejob.ProjectTable,
			Columns: []string{pipelinejob.ProjectColumn},
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
	_node = &PipelineJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinejob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
