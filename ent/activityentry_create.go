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
	"github.com/cryoflow/cryoflow/ent/pipelinesession"
)

// ActivityEntryCreate is the builder for creating a ActivityEntry entity.
type ActivityEntryCreate struct {
	config
	mutation *ActivityEntryMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *ActivityEntryCreate) SetSessionID(v string) *ActivityEntryCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetEvent sets the "event" field.
func (_c *ActivityEntryCreate) SetEvent(v string) *ActivityEntryCreate {
	_c.mutation.SetEvent(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *ActivityEntryCreate) SetMessage(v string) *ActivityEntryCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *ActivityEntryCreate) SetLevel(v activityentry.Level) *ActivityEntryCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *ActivityEntryCreate) SetNillableLevel(v *activityentry.Level) *ActivityEntryCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetStage sets the "stage" field.
func (_c *ActivityEntryCreate) SetStage(v string) *ActivityEntryCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_c *ActivityEntryCreate) SetNillableStage(v *string) *ActivityEntryCreate {
	if v != nil {
		_c.SetStage(*v)
	}
	return _c
}

// SetJobName sets the "job_name" field.
func (_c *ActivityEntryCreate) SetJobName(v string) *ActivityEntryCreate {
	_c.mutation.SetJobName(v)
	return _c
}

// SetNillableJobName sets the "job_name" field if the given value is not nil.
func (_c *ActivityEntryCreate) SetNillableJobName(v *string) *ActivityEntryCreate {
	if v != nil {
		_c.SetJobName(*v)
	}
	return _c
}

// SetPassNumber sets the "pass_number" field.
func (_c *ActivityEntryCreate) SetPassNumber(v int) *ActivityEntryCreate {
	_c.mutation.SetPassNumber(v)
	return _c
}

// SetNillablePassNumber sets the "pass_number" field if the given value is not nil.
func (_c *ActivityEntryCreate) SetNillablePassNumber(v *int) *ActivityEntryCreate {
	if v != nil {
		_c.SetPassNumber(*v)
	}
	return _c
}

// SetContext sets the "context" field.
func (_c *ActivityEntryCreate) SetContext(v map[string]interface{}) *ActivityEntryCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ActivityEntryCreate) SetCreatedAt(v time.Time) *ActivityEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ActivityEntryCreate) SetNillableCreatedAt(v *time.Time) *ActivityEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ActivityEntryCreate) SetID(v string) *ActivityEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the PipelineSession entity.
func (_c *ActivityEntryCreate) SetSession(v *PipelineSession) *ActivityEntryCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the ActivityEntryMutation object of the builder.
func (_c *ActivityEntryCreate) Mutation() *ActivityEntryMutation {
	return _c.mutation
}

// Save creates the ActivityEntry in the database.
func (_c *ActivityEntryCreate) Save(ctx context.Context) (*ActivityEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActivityEntryCreate) SaveX(ctx context.Context) *ActivityEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivityEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivityEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActivityEntryCreate) defaults() {
	if _, ok := _c.mutation.Level(); !ok {
		v := activityentry.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := activityentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActivityEntryCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ActivityEntry.session_id"`)}
	}
	if _, ok := _c.mutation.Event(); !ok {
		return &ValidationError{Name: "event", err: errors.New(`ent: missing required field "ActivityEntry.event"`)}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "ActivityEntry.message"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "ActivityEntry.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := activityentry.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "ActivityEntry.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ActivityEntry.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "ActivityEntry.session"`)}
	}
	return nil
}

func (_c *ActivityEntryCreate) sqlSave(ctx context.Context) (*ActivityEntry, error) {
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
			return nil, fmt.Errorf("unexpected ActivityEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ActivityEntryCreate) createSpec() (*ActivityEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &ActivityEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(activityentry.Table, sqlgraph.NewFieldSpec(activityentry.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Event(); ok {
		_spec.SetField(activityentry.FieldEvent, field.TypeString, value)
		_node.Event = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(activityentry.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(activityentry.FieldLevel, field.TypeEnum, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(activityentry.FieldStage, field.TypeString, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.JobName(); ok {
		_spec.SetField(activityentry.FieldJobName, field.TypeString, value)
		_node.JobName = value
	}
	if value, ok := _c.mutation.PassNumber(); ok {
		_spec.SetField(activityentry.FieldPassNumber, field.TypeInt, value)
		_node.PassNumber = value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(activityentry.FieldContext, field.TypeJSON, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(activityentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   activityentry.SessionTable,
			Columns: []string{activityentry.SessionColumn},
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
	return _node, _spec
}

// ActivityEntryCreateBulk is the builder for creating many ActivityEntry entities in bulk.
type ActivityEntryCreateBulk struct {
	config
	err      error
	builders []*ActivityEntryCreate
}

// Save creates the ActivityEntry entities in the database.
func (_c *ActivityEntryCreateBulk) Save(ctx context.Context) ([]*ActivityEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ActivityEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActivityEntryMutation)
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
func (_c *ActivityEntryCreateBulk) SaveX(ctx context.Context) []*ActivityEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivityEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivityEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
