// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cryoflow/cryoflow/ent/pipelinejob"
	"github.com/cryoflow/cryoflow/ent/pipelinesession"
	"github.com/cryoflow/cryoflow/ent/project"
	"github.com/cryoflow/cryoflow/pkg/models"
)

// PipelineJobCreate is the builder for creating a PipelineJob entity.
type PipelineJobCreate struct {
	config
	mutation *PipelineJobMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *PipelineJobCreate) SetSessionID(v string) *PipelineJobCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *PipelineJobCreate) SetProjectID(v string) *PipelineJobCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PipelineJobCreate) SetUserID(v string) *PipelineJobCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetJobName sets the "job_name" field.
func (_c *PipelineJobCreate) SetJobName(v string) *PipelineJobCreate {
	_c.mutation.SetJobName(v)
	return _c
}

// SetJobType sets the "job_type" field.
func (_c *PipelineJobCreate) SetJobType(v string) *PipelineJobCreate {
	_c.mutation.SetJobType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PipelineJobCreate) SetStatus(v pipelinejob.Status) *PipelineJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableStatus(v *pipelinejob.Status) *PipelineJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetOutputFilePath sets the "output_file_path" field.
func (_c *PipelineJobCreate) SetOutputFilePath(v string) *PipelineJobCreate {
	_c.mutation.SetOutputFilePath(v)
	return _c
}

// SetNillableOutputFilePath sets the "output_file_path" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableOutputFilePath(v *string) *PipelineJobCreate {
	if v != nil {
		_c.SetOutputFilePath(*v)
	}
	return _c
}

// SetCommand sets the "command" field.
func (_c *PipelineJobCreate) SetCommand(v string) *PipelineJobCreate {
	_c.mutation.SetCommand(v)
	return _c
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableCommand(v *string) *PipelineJobCreate {
	if v != nil {
		_c.SetCommand(*v)
	}
	return _c
}

// SetParameters sets the "parameters" field.
func (_c *PipelineJobCreate) SetParameters(v map[string]interface{}) *PipelineJobCreate {
	_c.mutation.SetParameters(v)
	return _c
}

// SetInputJobIds sets the "input_job_ids" field.
func (_c *PipelineJobCreate) SetInputJobIds(v []string) *PipelineJobCreate {
	_c.mutation.SetInputJobIds(v)
	return _c
}

// SetExecutionMode sets the "execution_mode" field.
func (_c *PipelineJobCreate) SetExecutionMode(v string) *PipelineJobCreate {
	_c.mutation.SetExecutionMode(v)
	return _c
}

// SetNillableExecutionMode sets the "execution_mode" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableExecutionMode(v *string) *PipelineJobCreate {
	if v != nil {
		_c.SetExecutionMode(*v)
	}
	return _c
}

// SetClusterJobID sets the "cluster_job_id" field.
func (_c *PipelineJobCreate) SetClusterJobID(v string) *PipelineJobCreate {
	_c.mutation.SetClusterJobID(v)
	return _c
}

// SetNillableClusterJobID sets the "cluster_job_id" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableClusterJobID(v *string) *PipelineJobCreate {
	if v != nil {
		_c.SetClusterJobID(*v)
	}
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *PipelineJobCreate) SetStartTime(v time.Time) *PipelineJobCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableStartTime(v *time.Time) *PipelineJobCreate {
	if v != nil {
		_c.SetStartTime(*v)
	}
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *PipelineJobCreate) SetEndTime(v time.Time) *PipelineJobCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableEndTime(v *time.Time) *PipelineJobCreate {
	if v != nil {
		_c.SetEndTime(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *PipelineJobCreate) SetErrorMessage(v string) *PipelineJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableErrorMessage(v *string) *PipelineJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetPipelineStats sets the "pipeline_stats" field.
func (_c *PipelineJobCreate) SetPipelineStats(v models.PipelineStats) *PipelineJobCreate {
	_c.mutation.SetPipelineStats(v)
	return _c
}

// SetNillablePipelineStats sets the "pipeline_stats" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillablePipelineStats(v *models.PipelineStats) *PipelineJobCreate {
	if v != nil {
		_c.SetPipelineStats(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PipelineJobCreate) SetCreatedAt(v time.Time) *PipelineJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableCreatedAt(v *time.Time) *PipelineJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PipelineJobCreate) SetID(v string) *PipelineJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the PipelineSession entity.
func (_c *PipelineJobCreate) SetSession(v *PipelineSession) *PipelineJobCreate {
	return _c.SetSessionID(v.ID)
}

// SetProject sets the "project" edge to the Project entity.
func (_c *PipelineJobCreate) SetProject(v *Project) *PipelineJobCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the PipelineJobMutation object of the builder.
func (_c *PipelineJobCreate) Mutation() *PipelineJobMutation {
	return _c.mutation
}

// Save creates the PipelineJob in the database.
func (_c *PipelineJobCreate) Save(ctx context.Context) (*PipelineJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PipelineJobCreate) SaveX(ctx context.Context) *PipelineJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PipelineJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := pipelinejob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ExecutionMode(); !ok {
		v := pipelinejob.DefaultExecutionMode
		_c.mutation.SetExecutionMode(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pipelinejob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PipelineJobCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "PipelineJob.session_id"`)}
	}
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "PipelineJob.project_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PipelineJob.user_id"`)}
	}
	if _, ok := _c.mutation.JobName(); !ok {
		return &ValidationError{Name: "job_name", err: errors.New(`ent: missing required field "PipelineJob.job_name"`)}
	}
	if _, ok := _c.mutation.JobType(); !ok {
		return &ValidationError{Name: "job_type", err: errors.New(`ent: missing required field "PipelineJob.job_type"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PipelineJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := pipelinejob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExecutionMode(); !ok {
		return &ValidationError{Name: "execution_mode", err: errors.New(`ent: missing required field "PipelineJob.execution_mode"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PipelineJob.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "PipelineJob.session"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "PipelineJob.project"`)}
	}
	return nil
}

func (_c *PipelineJobCreate) sqlSave(ctx context.Context) (*PipelineJob, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected PipelineJob.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PipelineJobCreate) createSpec() (*PipelineJob, *sqlgraph.CreateSpec) {
	var (
		_node = &PipelineJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pipelinejob.Table, sqlgraph.NewFieldSpec(pipelinejob.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(pipelinejob.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.JobName(); ok {
		_spec.SetField(pipelinejob.FieldJobName, field.TypeString, value)
		_node.JobName = value
	}
	if value, ok := _c.mutation.JobType(); ok {
		_spec.SetField(pipelinejob.FieldJobType, field.TypeString, value)
		_node.JobType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pipelinejob.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.OutputFilePath(); ok {
		_spec.SetField(pipelinejob.FieldOutputFilePath, field.TypeString, value)
		_node.OutputFilePath = value
	}
	if value, ok := _c.mutation.Command(); ok {
		_spec.SetField(pipelinejob.FieldCommand, field.TypeString, value)
		_node.Command = value
	}
	if value, ok := _c.mutation.Parameters(); ok {
		_spec.SetField(pipelinejob.FieldParameters, field.TypeJSON, value)
		_node.Parameters = value
	}
	if value, ok := _c.mutation.InputJobIds(); ok {
		_spec.SetField(pipelinejob.FieldInputJobIds, field.TypeJSON, value)
		_node.InputJobIds = value
	}
	if value, ok := _c.mutation.ExecutionMode(); ok {
		_spec.SetField(pipelinejob.FieldExecutionMode, field.TypeString, value)
		_node.ExecutionMode = value
	}
	if value, ok := _c.mutation.ClusterJobID(); ok {
		_spec.SetField(pipelinejob.FieldClusterJobID, field.TypeString, value)
		_node.ClusterJobID = &value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(pipelinejob.FieldStartTime, field.TypeTime, value)
		_node.StartTime = &value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(pipelinejob.FieldEndTime, field.TypeTime, value)
		_node.EndTime = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(pipelinejob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.PipelineStats(); ok {
		_spec.SetField(pipelinejob.FieldPipelineStats, field.TypeJSON, value)
		_node.PipelineStats = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pipelinejob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
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
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PipelineJobCreateBulk is the builder for creating many PipelineJob entities in bulk.
type PipelineJobCreateBulk struct {
	config
	err      error
	builders []*PipelineJobCreate
}

// Save creates the PipelineJob entities in the database.
func (_c *PipelineJobCreateBulk) Save(ctx context.Context) ([]*PipelineJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PipelineJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PipelineJobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PipelineJobCreateBulk) SaveX(ctx context.Context) []*PipelineJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
