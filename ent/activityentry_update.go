// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cryoflow/cryoflow/ent/activityentry"
	"github.com/cryoflow/cryoflow/ent/pipelinesession"
	"github.com/cryoflow/cryoflow/ent/predicate"
)

// ActivityEntryUpdate is the builder for updating ActivityEntry entities.
type ActivityEntryUpdate struct {
	config
	hooks    []Hook
	mutation *ActivityEntryMutation
}

// Where appends a list predicates to the ActivityEntryUpdate builder.
func (_u *ActivityEntryUpdate) Where(ps ...predicate.ActivityEntry) *ActivityEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ActivityEntryUpdate) SetSessionID(v string) *ActivityEntryUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ActivityEntryUpdate) SetNillableSessionID(v *string) *ActivityEntryUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetEvent sets the "event" field.
func (_u *ActivityEntryUpdate) SetEvent(v string) *ActivityEntryUpdate {
	_u.mutation.SetEvent(v)
	return _u
}

// SetNillableEvent sets the "event" field if the given value is not nil.
func (_u *ActivityEntryUpdate) SetNillableEvent(v *string) *ActivityEntryUpdate {
	if v != nil {
		_u.SetEvent(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *ActivityEntryUpdate) SetMessage(v string) *ActivityEntryUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *ActivityEntryUpdate) SetNillableMessage(v *string) *ActivityEntryUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *ActivityEntryUpdate) SetLevel(v activityentry.Level) *ActivityEntryUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ActivityEntryUpdate) SetNillableLevel(v *activityentry.Level) *ActivityEntryUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *ActivityEntryUpdate) SetStage(v string) *ActivityEntryUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *ActivityEntryUpdate) SetNillableStage(v *string) *ActivityEntryUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// ClearStage clears the value of the "stage" field.
func (_u *ActivityEntryUpdate) ClearStage() *ActivityEntryUpdate {
	_u.mutation.ClearStage()
	return _u
}

// SetJobName sets the "job_name" field.
func (_u *ActivityEntryUpdate) SetJobName(v string) *ActivityEntryUpdate {
	_u.mutation.SetJobName(v)
	return _u
}

// SetNillableJobName sets the "job_name" field if the given value is not nil.
func (_u *ActivityEntryUpdate) SetNillableJobName(v *string) *ActivityEntryUpdate {
	if v != nil {
		_u.SetJobName(*v)
	}
	return _u
}

// ClearJobName clears the value of the "job_name" field.
func (_u *ActivityEntryUpdate) ClearJobName() *ActivityEntryUpdate {
	_u.mutation.ClearJobName()
	return _u
}

// SetPassNumber sets the "pass_number" field.
func (_u *ActivityEntryUpdate) SetPassNumber(v int) *ActivityEntryUpdate {
	_u.mutation.ResetPassNumber()
	_u.mutation.SetPassNumber(v)
	return _u
}

// SetNillablePassNumber sets the "pass_number" field if the given value is not nil.
func (_u *ActivityEntryUpdate) SetNillablePassNumber(v *int) *ActivityEntryUpdate {
	if v != nil {
		_u.SetPassNumber(*v)
	}
	return _u
}

// AddPassNumber adds value to the "pass_number" field.
func (_u *ActivityEntryUpdate) AddPassNumber(v int) *ActivityEntryUpdate {
	_u.mutation.AddPassNumber(v)
	return _u
}

// ClearPassNumber clears the value of the "pass_number" field.
func (_u *ActivityEntryUpdate) ClearPassNumber() *ActivityEntryUpdate {
	_u.mutation.ClearPassNumber()
	return _u
}

// SetContext sets the "context" field.
func (_u *ActivityEntryUpdate) SetContext(v map[string]interface{}) *ActivityEntryUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *ActivityEntryUpdate) ClearContext() *ActivityEntryUpdate {
	_u.mutation.ClearContext()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ActivityEntryUpdate) SetCreatedAt(v time.Time) *ActivityEntryUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ActivityEntryUpdate) SetNillableCreatedAt(v *time.Time) *ActivityEntryUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the PipelineSession entity.
func (_u *ActivityEntryUpdate) SetSession(v *PipelineSession) *ActivityEntryUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the ActivityEntryMutation object of the builder.
func (_u *ActivityEntryUpdate) Mutation() *ActivityEntryMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the PipelineSession entity.
func (_u *ActivityEntryUpdate) ClearSession() *ActivityEntryUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActivityEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActivityEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityEntryUpdate) check() error {
	if v, ok := _u.mutation.Level(); ok {
		if err := activityentry.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "ActivityEntry.level": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ActivityEntry.session"`)
	}
	return nil
}

func (_u *ActivityEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activityentry.Table, activityentry.Columns, sqlgraph.NewFieldSpec(activityentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Event(); ok {
		_spec.SetField(activityentry.FieldEvent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(activityentry.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(activityentry.FieldLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(activityentry.FieldStage, field.TypeString, value)
	}
	if _u.mutation.StageCleared() {
		_spec.ClearField(activityentry.FieldStage, field.TypeString)
	}
	if value, ok := _u.mutation.JobName(); ok {
		_spec.SetField(activityentry.FieldJobName, field.TypeString, value)
	}
	if _u.mutation.JobNameCleared() {
		_spec.ClearField(activityentry.FieldJobName, field.TypeString)
	}
	if value, ok := _u.mutation.PassNumber(); ok {
		_spec.SetField(activityentry.FieldPassNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPassNumber(); ok {
		_spec.AddField(activityentry.FieldPassNumber, field.TypeInt, value)
	}
	if _u.mutation.PassNumberCleared() {
		_spec.ClearField(activityentry.FieldPassNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(activityentry.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(activityentry.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(activityentry.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activityentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActivityEntryUpdateOne is the builder for updating a single ActivityEntry entity.
type ActivityEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActivityEntryMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ActivityEntryUpdateOne) SetSessionID(v string) *ActivityEntryUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ActivityEntryUpdateOne) SetNillableSessionID(v *string) *ActivityEntryUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetEvent sets the "event" field.
func (_u *ActivityEntryUpdateOne) SetEvent(v string) *ActivityEntryUpdateOne {
	_u.mutation.SetEvent(v)
	return _u
}

// SetNillableEvent sets the "event" field if the given value is not nil.
func (_u *ActivityEntryUpdateOne) SetNillableEvent(v *string) *ActivityEntryUpdateOne {
	if v != nil {
		_u.SetEvent(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *ActivityEntryUpdateOne) SetMessage(v string) *ActivityEntryUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *ActivityEntryUpdateOne) SetNillableMessage(v *string) *ActivityEntryUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *ActivityEntryUpdateOne) SetLevel(v activityentry.Level) *ActivityEntryUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ActivityEntryUpdateOne) SetNillableLevel(v *activityentry.Level) *ActivityEntryUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *ActivityEntryUpdateOne) SetStage(v string) *ActivityEntryUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *ActivityEntryUpdateOne) SetNillableStage(v *string) *ActivityEntryUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// ClearStage clears the value of the "stage" field.
func (_u *ActivityEntryUpdateOne) ClearStage() *ActivityEntryUpdateOne {
	_u.mutation.ClearStage()
	return _u
}

// SetJobName sets the "job_name" field.
func (_u *ActivityEntryUpdateOne) SetJobName(v string) *ActivityEntryUpdateOne {
	_u.mutation.SetJobName(v)
	return _u
}

// SetNillableJobName sets the "job_name" field if the given value is not nil.
func (_u *ActivityEntryUpdateOne) SetNillableJobName(v *string) *ActivityEntryUpdateOne {
	if v != nil {
		_u.SetJobName(*v)
	}
	return _u
}

// ClearJobName clears the value of the "job_name" field.
func (_u *ActivityEntryUpdateOne) ClearJobName() *ActivityEntryUpdateOne {
	_u.mutation.ClearJobName()
	return _u
}

// SetPassNumber sets the "pass_number" field.
func (_u *ActivityEntryUpdateOne) SetPassNumber(v int) *ActivityEntryUpdateOne {
	_u.mutation.ResetPassNumber()
	_u.mutation.SetPassNumber(v)
	return _u
}

// SetNillablePassNumber sets the "pass_number" field if the given value is not nil.
func (_u *ActivityEntryUpdateOne) SetNillablePassNumber(v *int) *ActivityEntryUpdateOne {
	if v != nil {
		_u.SetPassNumber(*v)
	}
	return _u
}

// AddPassNumber adds value to the "pass_number" field.
func (_u *ActivityEntryUpdateOne) AddPassNumber(v int) *ActivityEntryUpdateOne {
	_u.mutation.AddPassNumber(v)
	return _u
}

// ClearPassNumber clears the value of the "pass_number" field.
func (_u *ActivityEntryUpdateOne) ClearPassNumber() *ActivityEntryUpdateOne {
	_u.mutation.ClearPassNumber()
	return _u
}

// SetContext sets the "context" field.
func (_u *ActivityEntryUpdateOne) SetContext(v map[string]interface{}) *ActivityEntryUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *ActivityEntryUpdateOne) ClearContext() *ActivityEntryUpdateOne {
	_u.mutation.ClearContext()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ActivityEntryUpdateOne) SetCreatedAt(v time.Time) *ActivityEntryUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ActivityEntryUpdateOne) SetNillableCreatedAt(v *time.Time) *ActivityEntryUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the PipelineSession entity.
func (_u *ActivityEntryUpdateOne) SetSession(v *PipelineSession) *ActivityEntryUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the ActivityEntryMutation object of the builder.
func (_u *ActivityEntryUpdateOne) Mutation() *ActivityEntryMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the PipelineSession entity.
func (_u *ActivityEntryUpdateOne) ClearSession() *ActivityEntryUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the ActivityEntryUpdate builder.
func (_u *ActivityEntryUpdateOne) Where(ps ...predicate.ActivityEntry) *ActivityEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActivityEntryUpdateOne) Select(field string, fields ...string) *ActivityEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActivityEntry entity.
func (_u *ActivityEntryUpdateOne) Save(ctx context.Context) (*ActivityEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityEntryUpdateOne) SaveX(ctx context.Context) *ActivityEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActivityEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Level(); ok {
		if err := activityentry.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "ActivityEntry.level": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ActivityEntry.session"`)
	}
	return nil
}

func (_u *ActivityEntryUpdateOne) sqlSave(ctx context.Context) (_node *ActivityEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activityentry.Table, activityentry.Columns, sqlgraph.NewFieldSpec(activityentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ActivityEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, activityentry.FieldID)
		for _, f := range fields {
			if !activityentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != activityentry.FieldID {
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
	if value, ok := _u.mutation.Event(); ok {
		_spec.SetField(activityentry.FieldEvent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(activityentry.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(activityentry.FieldLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(activityentry.FieldStage, field.TypeString, value)
	}
	if _u.mutation.StageCleared() {
		_spec.ClearField(activityentry.FieldStage, field.TypeString)
	}
	if value, ok := _u.mutation.JobName(); ok {
		_spec.SetField(activityentry.FieldJobName, field.TypeString, value)
	}
	if _u.mutation.JobNameCleared() {
		_spec.ClearField(activityentry.FieldJobName, field.TypeString)
	}
	if value, ok := _u.mutation.PassNumber(); ok {
		_spec.SetField(activityentry.FieldPassNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPassNumber(); ok {
		_spec.AddField(activityentry.FieldPassNumber, field.TypeInt, value)
	}
	if _u.mutation.PassNumberCleared() {
		_spec.ClearField(activityentry.FieldPassNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(activityentry.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(activityentry.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(activityentry.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ActivityEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activityentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
