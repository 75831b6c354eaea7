// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cryoflow/cryoflow/ent/activityentry"
	"github.com/cryoflow/cryoflow/ent/pipelinejob"
	"github.com/cryoflow/cryoflow/ent/pipelinesession"
	"github.com/cryoflow/cryoflow/ent/project"
	"github.com/cryoflow/cryoflow/pkg/models"
)

// PipelineSessionCreate is the builder for creating a PipelineSession entity.
type PipelineSessionCreate struct {
	config
	mutation *PipelineSessionMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *PipelineSessionCreate) SetProjectID(v string) *PipelineSessionCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PipelineSessionCreate) SetUserID(v string) *PipelineSessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSessionName sets the "session_name" field.
func (_c *PipelineSessionCreate) SetSessionName(v string) *PipelineSessionCreate {
	_c.mutation.SetSessionName(v)
	return _c
}

// SetInputMode sets the "input_mode" field.
func (_c *PipelineSessionCreate) SetInputMode(v pipelinesession.InputMode) *PipelineSessionCreate {
	_c.mutation.SetInputMode(v)
	return _c
}

// SetNillableInputMode sets the "input_mode" field if the given value is not nil.
func (_c *PipelineSessionCreate) SetNillableInputMode(v *pipelinesession.InputMode) *PipelineSessionCreate {
	if v != nil {
		_c.SetInputMode(*v)
	}
	return _c
}

// SetWatchDirectory sets the "watch_directory" field.
func (_c *PipelineSessionCreate) SetWatchDirectory(v string) *PipelineSessionCreate {
	_c.mutation.SetWatchDirectory(v)
	return _c
}

// SetFilePattern sets the "file_pattern" field.
func (_c *PipelineSessionCreate) SetFilePattern(v string) *PipelineSessionCreate {
	_c.mutation.SetFilePattern(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PipelineSessionCreate) SetStatus(v pipelinesession.Status) *PipelineSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PipelineSessionCreate) SetNillableStatus(v *pipelinesession.Status) *PipelineSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetOptics sets the "optics" field.
func (_c *PipelineSessionCreate) SetOptics(v models.OpticsConfig) *PipelineSessionCreate {
	_c.mutation.SetOptics(v)
	return _c
}

// SetMotionConfig sets the "motion_config" field.
func (_c *PipelineSessionCreate) SetMotionConfig(v models.MotionConfig) *PipelineSessionCreate {
	_c.mutation.SetMotionConfig(v)
	return _c
}

// SetNillableMotionConfig sets the "motion_config" field if the given value is not nil.
func (_c *PipelineSessionCreate) SetNillableMotionConfig(v *models.MotionConfig) *PipelineSessionCreate {
	if v != nil {
		_c.SetMotionConfig(*v)
	}
	return _c
}

// SetCtfConfig sets the "ctf_config" field.
func (_c *PipelineSessionCreate) SetCtfConfig(v models.CtfConfig) *PipelineSessionCreate {
	_c.mutation.SetCtfConfig(v)
	return _c
}

// SetNillableCtfConfig sets the "ctf_config" field if the given value is not nil.
func (_c *PipelineSessionCreate) SetNillableCtfConfig(v *models.CtfConfig) *PipelineSessionCreate {
	if v != nil {
		_c.SetCtfConfig(*v)
	}
	return _c
}

// SetPickingConfig sets the "picking_config" field.
func (_c *PipelineSessionCreate) SetPickingConfig(v models.PickingConfig) *PipelineSessionCreate {
	_c.mutation.SetPickingConfig(v)
	return _c
}

// SetNillablePickingConfig sets the "picking_config" field if the given value is not nil.
func (_c *PipelineSessionCreate) SetNillablePickingConfig(v *models.PickingConfig) *PipelineSessionCreate {
	if v != nil {
		_c.SetPickingConfig(*v)
	}
	return _c
}

// SetExtractionConfig sets the "extraction_config" field.
func (_c *PipelineSessionCreate) SetExtractionConfig(v models.ExtractionConfig) *PipelineSessionCreate {
	_c.mutation.SetExtractionConfig(v)
	return _c
}

// SetNillableExtractionConfig sets the "extraction_config" field if the given value is not nil.
func (_c *PipelineSessionCreate) SetNillableExtractionConfig(v *models.ExtractionConfig) *PipelineSessionCreate {
	if v != nil {
		_c.SetExtractionConfig(*v)
	}
	return _c
}

// SetClass2dConfig sets the "class2d_config" field.
func (_c *PipelineSessionCreate) SetClass2dConfig(v models.Class2DConfig) *PipelineSessionCreate {
	_c.mutation.SetClass2dConfig(v)
	return _c
}

// SetNillableClass2dConfig sets the "class2d_config" field if the given value is not nil.
func (_c *PipelineSessionCreate) SetNillableClass2dConfig(v *models.Class2DConfig) *PipelineSessionCreate {
	if v != nil {
		_c.SetClass2dConfig(*v)
	}
	return _c
}

// SetSlurmConfig sets the "slurm_config" field.
func (_c *PipelineSessionCreate) SetSlurmConfig(v models.SlurmConfig) *PipelineSessionCreate {
	_c.mutation.SetSlurmConfig(v)
	return _c
}

// SetNillableSlurmConfig sets the "slurm_config" field if the given value is not nil.
func (_c *PipelineSessionCreate) SetNillableSlurmConfig(v *models.SlurmConfig) *PipelineSessionCreate {
	if v != nil {
		_c.SetSlurmConfig(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *PipelineSessionCreate) SetState(v models.SessionState) *PipelineSessionCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetJobs sets the "jobs" field.
func (_c *PipelineSessionCreate) SetJobs(v models.SessionJobs) *PipelineSessionCreate {
	_c.mutation.SetJobs(v)
	return _c
}

// SetPassHistory sets the "pass_history" field.
func (_c *PipelineSessionCreate) SetPassHistory(v []models.PassSnapshot) *PipelineSessionCreate {
	_c.mutation.SetPassHistory(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *PipelineSessionCreate) SetStartTime(v time.Time) *PipelineSessionCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_c *PipelineSessionCreate) SetNillableStartTime(v *time.Time) *PipelineSessionCreate {
	if v != nil {
		_c.SetStartTime(*v)
	}
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *PipelineSessionCreate) SetEndTime(v time.Time) *PipelineSessionCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_c *PipelineSessionCreate) SetNillableEndTime(v *time.Time) *PipelineSessionCreate {
	if v != nil {
		_c.SetEndTime(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PipelineSessionCreate) SetCreatedAt(v time.Time) *PipelineSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PipelineSessionCreate) SetNillableCreatedAt(v *time.Time) *PipelineSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *PipelineSessionCreate) SetDeletedAt(v time.Time) *PipelineSessionCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *PipelineSessionCreate) SetNillableDeletedAt(v *time.Time) *PipelineSessionCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PipelineSessionCreate) SetID(v string) *PipelineSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *PipelineSessionCreate) SetProject(v *Project) *PipelineSessionCreate {
	return _c.SetProjectID(v.ID)
}

// AddPipelineJobIDs adds the "pipeline_jobs" edge to the PipelineJob entity by IDs.
func (_c *PipelineSessionCreate) AddPipelineJobIDs(ids ...string) *PipelineSessionCreate {
	_c.mutation.AddPipelineJobIDs(ids...)
	return _c
}

// AddPipelineJobs adds the "pipeline_jobs" edges to the PipelineJob entity.
func (_c *PipelineSessionCreate) AddPipelineJobs(v ...*PipelineJob) *PipelineSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPipelineJobIDs(ids...)
}

// AddActivityEntryIDs adds the "activity_entries" edge to the ActivityEntry entity by IDs.
func (_c *PipelineSessionCreate) AddActivityEntryIDs(ids ...string) *PipelineSessionCreate {
	_c.mutation.AddActivityEntryIDs(ids...)
	return _c
}

// AddActivityEntries adds the "activity_entries" edges to the ActivityEntry entity.
func (_c *PipelineSessionCreate) AddActivityEntries(v ...*ActivityEntry) *PipelineSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddActivityEntryIDs(ids...)
}

// Mutation returns the PipelineSessionMutation object of the builder.
func (_c *PipelineSessionCreate) Mutation() *PipelineSessionMutation {
	return _c.mutation
}

// Save creates the PipelineSession in the database.
func (_c *PipelineSessionCreate) Save(ctx context.Context) (*PipelineSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PipelineSessionCreate) SaveX(ctx context.Context) *PipelineSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PipelineSessionCreate) defaults() {
	if _, ok := _c.mutation.InputMode(); !ok {
		v := pipelinesession.DefaultInputMode
		_c.mutation.SetInputMode(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := pipelinesession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pipelinesession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PipelineSessionCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "PipelineSession.project_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PipelineSession.user_id"`)}
	}
	if _, ok := _c.mutation.SessionName(); !ok {
		return &ValidationError{Name: "session_name", err: errors.New(`ent: missing required field "PipelineSession.session_name"`)}
	}
	if _, ok := _c.mutation.InputMode(); !ok {
		return &ValidationError{Name: "input_mode", err: errors.New(`ent: missing required field "PipelineSession.input_mode"`)}
	}
	if v, ok := _c.mutation.InputMode(); ok {
		if err := pipelinesession.InputModeValidator(v); err != nil {
			return &ValidationError{Name: "input_mode", err: fmt.Errorf(`ent: validator failed for field "PipelineSession.input_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WatchDirectory(); !ok {
		return &ValidationError{Name: "watch_directory", err: errors.New(`ent: missing required field "PipelineSession.watch_directory"`)}
	}
	if _, ok := _c.mutation.FilePattern(); !ok {
		return &ValidationError{Name: "file_pattern", err: errors.New(`ent: missing required field "PipelineSession.file_pattern"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PipelineSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := pipelinesession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Optics(); !ok {
		return &ValidationError{Name: "optics", err: errors.New(`ent: missing required field "PipelineSession.optics"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "PipelineSession.state"`)}
	}
	if _, ok := _c.mutation.Jobs(); !ok {
		return &ValidationError{Name: "jobs", err: errors.New(`ent: missing required field "PipelineSession.jobs"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PipelineSession.created_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "PipelineSession.project"`)}
	}
	return nil
}

func (_c *PipelineSessionCreate) sqlSave(ctx context.Context) (*PipelineSession, error) {
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
			return nil, fmt.Errorf("unexpected PipelineSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PipelineSessionCreate) createSpec() (*PipelineSession, *sqlgraph.CreateSpec) {
	var (
		_node = &PipelineSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pipelinesession.Table, sqlgraph.NewFieldSpec(pipelinesession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(pipelinesession.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SessionName(); ok {
		_spec.SetField(pipelinesession.FieldSessionName, field.TypeString, value)
		_node.SessionName = value
	}
	if value, ok := _c.mutation.InputMode(); ok {
		_spec.SetField(pipelinesession.FieldInputMode, field.TypeEnum, value)
		_node.InputMode = value
	}
	if value, ok := _c.mutation.WatchDirectory(); ok {
		_spec.SetField(pipelinesession.FieldWatchDirectory, field.TypeString, value)
		_node.WatchDirectory = value
	}
	if value, ok := _c.mutation.FilePattern(); ok {
		_spec.SetField(pipelinesession.FieldFilePattern, field.TypeString, value)
		_node.FilePattern = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pipelinesession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Optics(); ok {
		_spec.SetField(pipelinesession.FieldOptics, field.TypeJSON, value)
		_node.Optics = value
	}
	if value, ok := _c.mutation.MotionConfig(); ok {
		_spec.SetField(pipelinesession.FieldMotionConfig, field.TypeJSON, value)
		_node.MotionConfig = value
	}
	if value, ok := _c.mutation.CtfConfig(); ok {
		_spec.SetField(pipelinesession.FieldCtfConfig, field.TypeJSON, value)
		_node.CtfConfig = value
	}
	if value, ok := _c.mutation.PickingConfig(); ok {
		_spec.SetField(pipelinesession.FieldPickingConfig, field.TypeJSON, value)
		_node.PickingConfig = value
	}
	if value, ok := _c.mutation.ExtractionConfig(); ok {
		_spec.SetField(pipelinesession.FieldExtractionConfig, field.TypeJSON, value)
		_node.ExtractionConfig = value
	}
	if value, ok := _c.mutation.Class2dConfig(); ok {
		_spec.SetField(pipelinesession.FieldClass2dConfig, field.TypeJSON, value)
		_node.Class2dConfig = value
	}
	if value, ok := _c.mutation.SlurmConfig(); ok {
		_spec.SetField(pipelinesession.FieldSlurmConfig, field.TypeJSON, value)
		_node.SlurmConfig = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(pipelinesession.FieldState, field.TypeJSON, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Jobs(); ok {
		_spec.SetField(pipelinesession.FieldJobs, field.TypeJSON, value)
		_node.Jobs = value
	}
	if value, ok := _c.mutation.PassHistory(); ok {
		_spec.SetField(pipelinesession.FieldPassHistory, field.TypeJSON, value)
		_node.PassHistory = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(pipelinesession.FieldStartTime, field.TypeTime, value)
		_node.StartTime = &value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(pipelinesession.FieldEndTime, field.TypeTime, value)
		_node.EndTime = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pipelinesession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(pipelinesession.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PipelineJobsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ActivityEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PipelineSessionCreateBulk is the builder for creating many PipelineSession entities in bulk.
type PipelineSessionCreateBulk struct {
	config
	err      error
	builders []*PipelineSessionCreate
}

// Save creates the PipelineSession entities in the database.
func (_c *PipelineSessionCreateBulk) Save(ctx context.Context) ([]*PipelineSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PipelineSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PipelineSessionMutation)
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
func (_c *PipelineSessionCreateBulk) SaveX(ctx context.Context) []*PipelineSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
