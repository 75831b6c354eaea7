// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cryoflow/cryoflow/ent/activityentry"
	"github.com/cryoflow/cryoflow/ent/event"
	"github.com/cryoflow/cryoflow/ent/pipelinejob"
	"github.com/cryoflow/cryoflow/ent/pipelinesession"
	"github.com/cryoflow/cryoflow/ent/predicate"
	"github.com/cryoflow/cryoflow/ent/project"
	"github.com/cryoflow/cryoflow/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeActivityEntry   = "ActivityEntry"
	TypeEvent           = "Event"
	TypePipelineJob     = "PipelineJob"
	TypePipelineSession = "PipelineSession"
	TypeProject         = "Project"
)

// ActivityEntryMutation represents an operation that mutates the ActivityEntry nodes in the graph.
type ActivityEntryMutation struct {
	config
	op             Op
	typ            string
	id             *string
	event          *string
	message        *string
	level          *activityentry.Level
	stage          *string
	job_name       *string
	pass_number    *int
	addpass_number *int
	context        *map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*ActivityEntry, error)
	predicates     []predicate.ActivityEntry
}

var _ ent.Mutation = (*ActivityEntryMutation)(nil)

// activityentryOption allows management of the mutation configuration using functional options.
type activityentryOption func(*ActivityEntryMutation)

// newActivityEntryMutation creates new mutation for the ActivityEntry entity.
func newActivityEntryMutation(c config, op Op, opts ...activityentryOption) *ActivityEntryMutation {
	m := &ActivityEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeActivityEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withActivityEntryID sets the ID field of the mutation.
func withActivityEntryID(id string) activityentryOption {
	return func(m *ActivityEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *ActivityEntry
		)
		m.oldValue = func(ctx context.Context) (*ActivityEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ActivityEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withActivityEntry sets the old ActivityEntry of the mutation.
func withActivityEntry(node *ActivityEntry) activityentryOption {
	return func(m *ActivityEntryMutation) {
		m.oldValue = func(context.Context) (*ActivityEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ActivityEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ActivityEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ActivityEntry entities.
func (m *ActivityEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ActivityEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ActivityEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ActivityEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ActivityEntryMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ActivityEntryMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ActivityEntry entity.
// If the ActivityEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityEntryMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ActivityEntryMutation) ResetSessionID() {
	m.session = nil
}

// SetEvent sets the "event" field.
func (m *ActivityEntryMutation) SetEvent(s string) {
	m.event = &s
}

// Event returns the value of the "event" field in the mutation.
func (m *ActivityEntryMutation) Event() (r string, exists bool) {
	v := m.event
	if v == nil {
		return
	}
	return *v, true
}

// OldEvent returns the old "event" field's value of the ActivityEntry entity.
// If the ActivityEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityEntryMutation) OldEvent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvent: %w", err)
	}
	return oldValue.Event, nil
}

// ResetEvent resets all changes to the "event" field.
func (m *ActivityEntryMutation) ResetEvent() {
	m.event = nil
}

// SetMessage sets the "message" field.
func (m *ActivityEntryMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *ActivityEntryMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the ActivityEntry entity.
// If the ActivityEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityEntryMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *ActivityEntryMutation) ResetMessage() {
	m.message = nil
}

// SetLevel sets the "level" field.
func (m *ActivityEntryMutation) SetLevel(a activityentry.Level) {
	m.level = &a
}

// Level returns the value of the "level" field in the mutation.
func (m *ActivityEntryMutation) Level() (r activityentry.Level, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the ActivityEntry entity.
// If the ActivityEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityEntryMutation) OldLevel(ctx context.Context) (v activityentry.Level, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *ActivityEntryMutation) ResetLevel() {
	m.level = nil
}

// SetStage sets the "stage" field.
func (m *ActivityEntryMutation) SetStage(s string) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *ActivityEntryMutation) Stage() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the ActivityEntry entity.
// If the ActivityEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityEntryMutation) OldStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ClearStage clears the value of the "stage" field.
func (m *ActivityEntryMutation) ClearStage() {
	m.stage = nil
	m.clearedFields[activityentry.FieldStage] = struct{}{}
}

// StageCleared returns if the "stage" field was cleared in this mutation.
func (m *ActivityEntryMutation) StageCleared() bool {
	_, ok := m.clearedFields[activityentry.FieldStage]
	return ok
}

// ResetStage resets all changes to the "stage" field.
func (m *ActivityEntryMutation) ResetStage() {
	m.stage = nil
	delete(m.clearedFields, activityentry.FieldStage)
}

// SetJobName sets the "job_name" field.
func (m *ActivityEntryMutation) SetJobName(s string) {
	m.job_name = &s
}

// JobName returns the value of the "job_name" field in the mutation.
func (m *ActivityEntryMutation) JobName() (r string, exists bool) {
	v := m.job_name
	if v == nil {
		return
	}
	return *v, true
}

// OldJobName returns the old "job_name" field's value of the ActivityEntry entity.
// If the ActivityEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityEntryMutation) OldJobName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobName: %w", err)
	}
	return oldValue.JobName, nil
}

// ClearJobName clears the value of the "job_name" field.
func (m *ActivityEntryMutation) ClearJobName() {
	m.job_name = nil
	m.clearedFields[activityentry.FieldJobName] = struct{}{}
}

// JobNameCleared returns if the "job_name" field was cleared in this mutation.
func (m *ActivityEntryMutation) JobNameCleared() bool {
	_, ok := m.clearedFields[activityentry.FieldJobName]
	return ok
}

// ResetJobName resets all changes to the "job_name" field.
func (m *ActivityEntryMutation) ResetJobName() {
	m.job_name = nil
	delete(m.clearedFields, activityentry.FieldJobName)
}

// SetPassNumber sets the "pass_number" field.
func (m *ActivityEntryMutation) SetPassNumber(i int) {
	m.pass_number = &i
	m.addpass_number = nil
}

// PassNumber returns the value of the "pass_number" field in the mutation.
func (m *ActivityEntryMutation) PassNumber() (r int, exists bool) {
	v := m.pass_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPassNumber returns the old "pass_number" field's value of the ActivityEntry entity.
// If the ActivityEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityEntryMutation) OldPassNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassNumber: %w", err)
	}
	return oldValue.PassNumber, nil
}

// AddPassNumber adds i to the "pass_number" field.
func (m *ActivityEntryMutation) AddPassNumber(i int) {
	if m.addpass_number != nil {
		*m.addpass_number += i
	} else {
		m.addpass_number = &i
	}
}

// AddedPassNumber returns the value that was added to the "pass_number" field in this mutation.
func (m *ActivityEntryMutation) AddedPassNumber() (r int, exists bool) {
	v := m.addpass_number
	if v == nil {
		return
	}
	return *v, true
}

// ClearPassNumber clears the value of the "pass_number" field.
func (m *ActivityEntryMutation) ClearPassNumber() {
	m.pass_number = nil
	m.addpass_number = nil
	m.clearedFields[activityentry.FieldPassNumber] = struct{}{}
}

// PassNumberCleared returns if the "pass_number" field was cleared in this mutation.
func (m *ActivityEntryMutation) PassNumberCleared() bool {
	_, ok := m.clearedFields[activityentry.FieldPassNumber]
	return ok
}

// ResetPassNumber resets all changes to the "pass_number" field.
func (m *ActivityEntryMutation) ResetPassNumber() {
	m.pass_number = nil
	m.addpass_number = nil
	delete(m.clearedFields, activityentry.FieldPassNumber)
}

// SetContext sets the "context" field.
func (m *ActivityEntryMutation) SetContext(value map[string]interface{}) {
	m.context = &value
}

// Context returns the value of the "context" field in the mutation.
func (m *ActivityEntryMutation) Context() (r map[string]interface{}, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the ActivityEntry entity.
// If the ActivityEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityEntryMutation) OldContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *ActivityEntryMutation) ClearContext() {
	m.context = nil
	m.clearedFields[activityentry.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *ActivityEntryMutation) ContextCleared() bool {
	_, ok := m.clearedFields[activityentry.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *ActivityEntryMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, activityentry.FieldContext)
}

// SetCreatedAt sets the "created_at" field.
func (m *ActivityEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ActivityEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ActivityEntry entity.
// If the ActivityEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ActivityEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the PipelineSession entity.
func (m *ActivityEntryMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[activityentry.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the PipelineSession entity was cleared.
func (m *ActivityEntryMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *ActivityEntryMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *ActivityEntryMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the ActivityEntryMutation builder.
func (m *ActivityEntryMutation) Where(ps ...predicate.ActivityEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ActivityEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ActivityEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ActivityEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ActivityEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ActivityEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ActivityEntry).
func (m *ActivityEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ActivityEntryMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.session != nil {
		fields = append(fields, activityentry.FieldSessionID)
	}
	if m.event != nil {
		fields = append(fields, activityentry.FieldEvent)
	}
	if m.message != nil {
		fields = append(fields, activityentry.FieldMessage)
	}
	if m.level != nil {
		fields = append(fields, activityentry.FieldLevel)
	}
	if m.stage != nil {
		fields = append(fields, activityentry.FieldStage)
	}
	if m.job_name != nil {
		fields = append(fields, activityentry.FieldJobName)
	}
	if m.pass_number != nil {
		fields = append(fields, activityentry.FieldPassNumber)
	}
	if m.context != nil {
		fields = append(fields, activityentry.FieldContext)
	}
	if m.created_at != nil {
		fields = append(fields, activityentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ActivityEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case activityentry.FieldSessionID:
		return m.SessionID()
	case activityentry.FieldEvent:
		return m.Event()
	case activityentry.FieldMessage:
		return m.Message()
	case activityentry.FieldLevel:
		return m.Level()
	case activityentry.FieldStage:
		return m.Stage()
	case activityentry.FieldJobName:
		return m.JobName()
	case activityentry.FieldPassNumber:
		return m.PassNumber()
	case activityentry.FieldContext:
		return m.Context()
	case activityentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ActivityEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case activityentry.FieldSessionID:
		return m.OldSessionID(ctx)
	case activityentry.FieldEvent:
		return m.OldEvent(ctx)
	case activityentry.FieldMessage:
		return m.OldMessage(ctx)
	case activityentry.FieldLevel:
		return m.OldLevel(ctx)
	case activityentry.FieldStage:
		return m.OldStage(ctx)
	case activityentry.FieldJobName:
		return m.OldJobName(ctx)
	case activityentry.FieldPassNumber:
		return m.OldPassNumber(ctx)
	case activityentry.FieldContext:
		return m.OldContext(ctx)
	case activityentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ActivityEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivityEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case activityentry.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case activityentry.FieldEvent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvent(v)
		return nil
	case activityentry.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case activityentry.FieldLevel:
		v, ok := value.(activityentry.Level)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case activityentry.FieldStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case activityentry.FieldJobName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobName(v)
		return nil
	case activityentry.FieldPassNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassNumber(v)
		return nil
	case activityentry.FieldContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case activityentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ActivityEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ActivityEntryMutation) AddedFields() []string {
	var fields []string
	if m.addpass_number != nil {
		fields = append(fields, activityentry.FieldPassNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ActivityEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case activityentry.FieldPassNumber:
		return m.AddedPassNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivityEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case activityentry.FieldPassNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPassNumber(v)
		return nil
	}
	return fmt.Errorf("unknown ActivityEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ActivityEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(activityentry.FieldStage) {
		fields = append(fields, activityentry.FieldStage)
	}
	if m.FieldCleared(activityentry.FieldJobName) {
		fields = append(fields, activityentry.FieldJobName)
	}
	if m.FieldCleared(activityentry.FieldPassNumber) {
		fields = append(fields, activityentry.FieldPassNumber)
	}
	if m.FieldCleared(activityentry.FieldContext) {
		fields = append(fields, activityentry.FieldContext)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ActivityEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ActivityEntryMutation) ClearField(name string) error {
	switch name {
	case activityentry.FieldStage:
		m.ClearStage()
		return nil
	case activityentry.FieldJobName:
		m.ClearJobName()
		return nil
	case activityentry.FieldPassNumber:
		m.ClearPassNumber()
		return nil
	case activityentry.FieldContext:
		m.ClearContext()
		return nil
	}
	return fmt.Errorf("unknown ActivityEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ActivityEntryMutation) ResetField(name string) error {
	switch name {
	case activityentry.FieldSessionID:
		m.ResetSessionID()
		return nil
	case activityentry.FieldEvent:
		m.ResetEvent()
		return nil
	case activityentry.FieldMessage:
		m.ResetMessage()
		return nil
	case activityentry.FieldLevel:
		m.ResetLevel()
		return nil
	case activityentry.FieldStage:
		m.ResetStage()
		return nil
	case activityentry.FieldJobName:
		m.ResetJobName()
		return nil
	case activityentry.FieldPassNumber:
		m.ResetPassNumber()
		return nil
	case activityentry.FieldContext:
		m.ResetContext()
		return nil
	case activityentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ActivityEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ActivityEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, activityentry.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ActivityEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case activityentry.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ActivityEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ActivityEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ActivityEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, activityentry.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ActivityEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case activityentry.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ActivityEntryMutation) ClearEdge(name string) error {
	switch name {
	case activityentry.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown ActivityEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ActivityEntryMutation) ResetEdge(name string) error {
	switch name {
	case activityentry.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown ActivityEntry edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	session_id    *string
	channel       *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *EventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *EventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *EventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.session_id != nil {
		fields = append(fields, event.FieldSessionID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldSessionID:
		return m.SessionID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldSessionID:
		return m.OldSessionID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldSessionID:
		m.ResetSessionID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// PipelineJobMutation represents an operation that mutates the PipelineJob nodes in the graph.
type PipelineJobMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	user_id             *string
	job_name            *string
	job_type            *string
	status              *pipelinejob.Status
	output_file_path    *string
	command             *string
	parameters          *map[string]interface{}
	input_job_ids       *[]string
	appendinput_job_ids []string
	execution_mode      *string
	cluster_job_id      *string
	start_time          *time.Time
	end_time            *time.Time
	error_message       *string
	pipeline_stats      *models.PipelineStats
	created_at          *time.Time
	clearedFields       map[string]struct{}
	session             *string
	clearedsession      bool
	project             *string
	clearedproject      bool
	done                bool
	oldValue            func(context.Context) (*PipelineJob, error)
	predicates          []predicate.PipelineJob
}

var _ ent.Mutation = (*PipelineJobMutation)(nil)

// pipelinejobOption allows management of the mutation configuration using functional options.
type pipelinejobOption func(*PipelineJobMutation)

// newPipelineJobMutation creates new mutation for the PipelineJob entity.
func newPipelineJobMutation(c config, op Op, opts ...pipelinejobOption) *PipelineJobMutation {
	m := &PipelineJobMutation{
		config:        c,
		op:            op,
		typ:           TypePipelineJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineJobID sets the ID field of the mutation.
func withPipelineJobID(id string) pipelinejobOption {
	return func(m *PipelineJobMutation) {
		var (
			err   error
			once  sync.Once
			value *PipelineJob
		)
		m.oldValue = func(ctx context.Context) (*PipelineJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PipelineJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipelineJob sets the old PipelineJob of the mutation.
func withPipelineJob(node *PipelineJob) pipelinejobOption {
	return func(m *PipelineJobMutation) {
		m.oldValue = func(context.Context) (*PipelineJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PipelineJob entities.
func (m *PipelineJobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineJobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineJobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PipelineJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *PipelineJobMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *PipelineJobMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *PipelineJobMutation) ResetSessionID() {
	m.session = nil
}

// SetProjectID sets the "project_id" field.
func (m *PipelineJobMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *PipelineJobMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *PipelineJobMutation) ResetProjectID() {
	m.project = nil
}

// SetUserID sets the "user_id" field.
func (m *PipelineJobMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PipelineJobMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PipelineJobMutation) ResetUserID() {
	m.user_id = nil
}

// SetJobName sets the "job_name" field.
func (m *PipelineJobMutation) SetJobName(s string) {
	m.job_name = &s
}

// JobName returns the value of the "job_name" field in the mutation.
func (m *PipelineJobMutation) JobName() (r string, exists bool) {
	v := m.job_name
	if v == nil {
		return
	}
	return *v, true
}

// OldJobName returns the old "job_name" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldJobName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobName: %w", err)
	}
	return oldValue.JobName, nil
}

// ResetJobName resets all changes to the "job_name" field.
func (m *PipelineJobMutation) ResetJobName() {
	m.job_name = nil
}

// SetJobType sets the "job_type" field.
func (m *PipelineJobMutation) SetJobType(s string) {
	m.job_type = &s
}

// JobType returns the value of the "job_type" field in the mutation.
func (m *PipelineJobMutation) JobType() (r string, exists bool) {
	v := m.job_type
	if v == nil {
		return
	}
	return *v, true
}

// OldJobType returns the old "job_type" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldJobType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobType: %w", err)
	}
	return oldValue.JobType, nil
}

// ResetJobType resets all changes to the "job_type" field.
func (m *PipelineJobMutation) ResetJobType() {
	m.job_type = nil
}

// SetStatus sets the "status" field.
func (m *PipelineJobMutation) SetStatus(pi pipelinejob.Status) {
	m.status = &pi
}

// Status returns the value of the "status" field in the mutation.
func (m *PipelineJobMutation) Status() (r pipelinejob.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldStatus(ctx context.Context) (v pipelinejob.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PipelineJobMutation) ResetStatus() {
	m.status = nil
}

// SetOutputFilePath sets the "output_file_path" field.
func (m *PipelineJobMutation) SetOutputFilePath(s string) {
	m.output_file_path = &s
}

// OutputFilePath returns the value of the "output_file_path" field in the mutation.
func (m *PipelineJobMutation) OutputFilePath() (r string, exists bool) {
	v := m.output_file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputFilePath returns the old "output_file_path" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldOutputFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputFilePath: %w", err)
	}
	return oldValue.OutputFilePath, nil
}

// ClearOutputFilePath clears the value of the "output_file_path" field.
func (m *PipelineJobMutation) ClearOutputFilePath() {
	m.output_file_path = nil
	m.clearedFields[pipelinejob.FieldOutputFilePath] = struct{}{}
}

// OutputFilePathCleared returns if the "output_file_path" field was cleared in this mutation.
func (m *PipelineJobMutation) OutputFilePathCleared() bool {
	_, ok := m.clearedFields[pipelinejob.FieldOutputFilePath]
	return ok
}

// ResetOutputFilePath resets all changes to the "output_file_path" field.
func (m *PipelineJobMutation) ResetOutputFilePath() {
	m.output_file_path = nil
	delete(m.clearedFields, pipelinejob.FieldOutputFilePath)
}

// SetCommand sets the "command" field.
func (m *PipelineJobMutation) SetCommand(s string) {
	m.command = &s
}

// Command returns the value of the "command" field in the mutation.
func (m *PipelineJobMutation) Command() (r string, exists bool) {
	v := m.command
	if v == nil {
		return
	}
	return *v, true
}

// OldCommand returns the old "command" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldCommand(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommand: %w", err)
	}
	return oldValue.Command, nil
}

// ClearCommand clears the value of the "command" field.
func (m *PipelineJobMutation) ClearCommand() {
	m.command = nil
	m.clearedFields[pipelinejob.FieldCommand] = struct{}{}
}

// CommandCleared returns if the "command" field was cleared in this mutation.
func (m *PipelineJobMutation) CommandCleared() bool {
	_, ok := m.clearedFields[pipelinejob.FieldCommand]
	return ok
}

// ResetCommand resets all changes to the "command" field.
func (m *PipelineJobMutation) ResetCommand() {
	m.command = nil
	delete(m.clearedFields, pipelinejob.FieldCommand)
}

// SetParameters sets the "parameters" field.
func (m *PipelineJobMutation) SetParameters(value map[string]interface{}) {
	m.parameters = &value
}

// Parameters returns the value of the "parameters" field in the mutation.
func (m *PipelineJobMutation) Parameters() (r map[string]interface{}, exists bool) {
	v := m.parameters
	if v == nil {
		return
	}
	return *v, true
}

// OldParameters returns the old "parameters" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldParameters(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParameters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParameters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParameters: %w", err)
	}
	return oldValue.Parameters, nil
}

// ClearParameters clears the value of the "parameters" field.
func (m *PipelineJobMutation) ClearParameters() {
	m.parameters = nil
	m.clearedFields[pipelinejob.FieldParameters] = struct{}{}
}

// ParametersCleared returns if the "parameters" field was cleared in this mutation.
func (m *PipelineJobMutation) ParametersCleared() bool {
	_, ok := m.clearedFields[pipelinejob.FieldParameters]
	return ok
}

// ResetParameters resets all changes to the "parameters" field.
func (m *PipelineJobMutation) ResetParameters() {
	m.parameters = nil
	delete(m.clearedFields, pipelinejob.FieldParameters)
}

// SetInputJobIds sets the "input_job_ids" field.
func (m *PipelineJobMutation) SetInputJobIds(s []string) {
	m.input_job_ids = &s
	m.appendinput_job_ids = nil
}

// InputJobIds returns the value of the "input_job_ids" field in the mutation.
func (m *PipelineJobMutation) InputJobIds() (r []string, exists bool) {
	v := m.input_job_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldInputJobIds returns the old "input_job_ids" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldInputJobIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputJobIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputJobIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputJobIds: %w", err)
	}
	return oldValue.InputJobIds, nil
}

// AppendInputJobIds adds s to the "input_job_ids" field.
func (m *PipelineJobMutation) AppendInputJobIds(s []string) {
	m.appendinput_job_ids = append(m.appendinput_job_ids, s...)
}

// AppendedInputJobIds returns the list of values that were appended to the "input_job_ids" field in this mutation.
func (m *PipelineJobMutation) AppendedInputJobIds() ([]string, bool) {
	if len(m.appendinput_job_ids) == 0 {
		return nil, false
	}
	return m.appendinput_job_ids, true
}

// ClearInputJobIds clears the value of the "input_job_ids" field.
func (m *PipelineJobMutation) ClearInputJobIds() {
	m.input_job_ids = nil
	m.appendinput_job_ids = nil
	m.clearedFields[pipelinejob.FieldInputJobIds] = struct{}{}
}

// InputJobIdsCleared returns if the "input_job_ids" field was cleared in this mutation.
func (m *PipelineJobMutation) InputJobIdsCleared() bool {
	_, ok := m.clearedFields[pipelinejob.FieldInputJobIds]
	return ok
}

// ResetInputJobIds resets all changes to the "input_job_ids" field.
func (m *PipelineJobMutation) ResetInputJobIds() {
	m.input_job_ids = nil
	m.appendinput_job_ids = nil
	delete(m.clearedFields, pipelinejob.FieldInputJobIds)
}

// SetExecutionMode sets the "execution_mode" field.
func (m *PipelineJobMutation) SetExecutionMode(s string) {
	m.execution_mode = &s
}

// ExecutionMode returns the value of the "execution_mode" field in the mutation.
func (m *PipelineJobMutation) ExecutionMode() (r string, exists bool) {
	v := m.execution_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionMode returns the old "execution_mode" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldExecutionMode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionMode: %w", err)
	}
	return oldValue.ExecutionMode, nil
}

// ResetExecutionMode resets all changes to the "execution_mode" field.
func (m *PipelineJobMutation) ResetExecutionMode() {
	m.execution_mode = nil
}

// SetClusterJobID sets the "cluster_job_id" field.
func (m *PipelineJobMutation) SetClusterJobID(s string) {
	m.cluster_job_id = &s
}

// ClusterJobID returns the value of the "cluster_job_id" field in the mutation.
func (m *PipelineJobMutation) ClusterJobID() (r string, exists bool) {
	v := m.cluster_job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClusterJobID returns the old "cluster_job_id" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldClusterJobID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClusterJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClusterJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClusterJobID: %w", err)
	}
	return oldValue.ClusterJobID, nil
}

// ClearClusterJobID clears the value of the "cluster_job_id" field.
func (m *PipelineJobMutation) ClearClusterJobID() {
	m.cluster_job_id = nil
	m.clearedFields[pipelinejob.FieldClusterJobID] = struct{}{}
}

// ClusterJobIDCleared returns if the "cluster_job_id" field was cleared in this mutation.
func (m *PipelineJobMutation) ClusterJobIDCleared() bool {
	_, ok := m.clearedFields[pipelinejob.FieldClusterJobID]
	return ok
}

// ResetClusterJobID resets all changes to the "cluster_job_id" field.
func (m *PipelineJobMutation) ResetClusterJobID() {
	m.cluster_job_id = nil
	delete(m.clearedFields, pipelinejob.FieldClusterJobID)
}

// SetStartTime sets the "start_time" field.
func (m *PipelineJobMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *PipelineJobMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldStartTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ClearStartTime clears the value of the "start_time" field.
func (m *PipelineJobMutation) ClearStartTime() {
	m.start_time = nil
	m.clearedFields[pipelinejob.FieldStartTime] = struct{}{}
}

// StartTimeCleared returns if the "start_time" field was cleared in this mutation.
func (m *PipelineJobMutation) StartTimeCleared() bool {
	_, ok := m.clearedFields[pipelinejob.FieldStartTime]
	return ok
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *PipelineJobMutation) ResetStartTime() {
	m.start_time = nil
	delete(m.clearedFields, pipelinejob.FieldStartTime)
}

// SetEndTime sets the "end_time" field.
func (m *PipelineJobMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *PipelineJobMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldEndTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ClearEndTime clears the value of the "end_time" field.
func (m *PipelineJobMutation) ClearEndTime() {
	m.end_time = nil
	m.clearedFields[pipelinejob.FieldEndTime] = struct{}{}
}

// EndTimeCleared returns if the "end_time" field was cleared in this mutation.
func (m *PipelineJobMutation) EndTimeCleared() bool {
	_, ok := m.clearedFields[pipelinejob.FieldEndTime]
	return ok
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *PipelineJobMutation) ResetEndTime() {
	m.end_time = nil
	delete(m.clearedFields, pipelinejob.FieldEndTime)
}

// SetErrorMessage sets the "error_message" field.
func (m *PipelineJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *PipelineJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *PipelineJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[pipelinejob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *PipelineJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[pipelinejob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *PipelineJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, pipelinejob.FieldErrorMessage)
}

// SetPipelineStats sets the "pipeline_stats" field.
func (m *PipelineJobMutation) SetPipelineStats(ms models.PipelineStats) {
	m.pipeline_stats = &ms
}

// PipelineStats returns the value of the "pipeline_stats" field in the mutation.
func (m *PipelineJobMutation) PipelineStats() (r models.PipelineStats, exists bool) {
	v := m.pipeline_stats
	if v == nil {
		return
	}
	return *v, true
}

// OldPipelineStats returns the old "pipeline_stats" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldPipelineStats(ctx context.Context) (v models.PipelineStats, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPipelineStats is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPipelineStats requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPipelineStats: %w", err)
	}
	return oldValue.PipelineStats, nil
}

// ClearPipelineStats clears the value of the "pipeline_stats" field.
func (m *PipelineJobMutation) ClearPipelineStats() {
	m.pipeline_stats = nil
	m.clearedFields[pipelinejob.FieldPipelineStats] = struct{}{}
}

// PipelineStatsCleared returns if the "pipeline_stats" field was cleared in this mutation.
func (m *PipelineJobMutation) PipelineStatsCleared() bool {
	_, ok := m.clearedFields[pipelinejob.FieldPipelineStats]
	return ok
}

// ResetPipelineStats resets all changes to the "pipeline_stats" field.
func (m *PipelineJobMutation) ResetPipelineStats() {
	m.pipeline_stats = nil
	delete(m.clearedFields, pipelinejob.FieldPipelineStats)
}

// SetCreatedAt sets the "created_at" field.
func (m *PipelineJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PipelineJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PipelineJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the PipelineSession entity.
func (m *PipelineJobMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[pipelinejob.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the PipelineSession entity was cleared.
func (m *PipelineJobMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *PipelineJobMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *PipelineJobMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// ClearProject clears the "project" edge to the Project entity.
func (m *PipelineJobMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[pipelinejob.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *PipelineJobMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *PipelineJobMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *PipelineJobMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// Where appends a list predicates to the PipelineJobMutation builder.
func (m *PipelineJobMutation) Where(ps ...predicate.PipelineJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PipelineJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PipelineJob).
func (m *PipelineJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineJobMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.session != nil {
		fields = append(fields, pipelinejob.FieldSessionID)
	}
	if m.project != nil {
		fields = append(fields, pipelinejob.FieldProjectID)
	}
	if m.user_id != nil {
		fields = append(fields, pipelinejob.FieldUserID)
	}
	if m.job_name != nil {
		fields = append(fields, pipelinejob.FieldJobName)
	}
	if m.job_type != nil {
		fields = append(fields, pipelinejob.FieldJobType)
	}
	if m.status != nil {
		fields = append(fields, pipelinejob.FieldStatus)
	}
	if m.output_file_path != nil {
		fields = append(fields, pipelinejob.FieldOutputFilePath)
	}
	if m.command != nil {
		fields = append(fields, pipelinejob.FieldCommand)
	}
	if m.parameters != nil {
		fields = append(fields, pipelinejob.FieldParameters)
	}
	if m.input_job_ids != nil {
		fields = append(fields, pipelinejob.FieldInputJobIds)
	}
	if m.execution_mode != nil {
		fields = append(fields, pipelinejob.FieldExecutionMode)
	}
	if m.cluster_job_id != nil {
		fields = append(fields, pipelinejob.FieldClusterJobID)
	}
	if m.start_time != nil {
		fields = append(fields, pipelinejob.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, pipelinejob.FieldEndTime)
	}
	if m.error_message != nil {
		fields = append(fields, pipelinejob.FieldErrorMessage)
	}
	if m.pipeline_stats != nil {
		fields = append(fields, pipelinejob.FieldPipelineStats)
	}
	if m.created_at != nil {
		fields = append(fields, pipelinejob.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipelinejob.FieldSessionID:
		return m.SessionID()
	case pipelinejob.FieldProjectID:
		return m.ProjectID()
	case pipelinejob.FieldUserID:
		return m.UserID()
	case pipelinejob.FieldJobName:
		return m.JobName()
	case pipelinejob.FieldJobType:
		return m.JobType()
	case pipelinejob.FieldStatus:
		return m.Status()
	case pipelinejob.FieldOutputFilePath:
		return m.OutputFilePath()
	case pipelinejob.FieldCommand:
		return m.Command()
	case pipelinejob.FieldParameters:
		return m.Parameters()
	case pipelinejob.FieldInputJobIds:
		return m.InputJobIds()
	case pipelinejob.FieldExecutionMode:
		return m.ExecutionMode()
	case pipelinejob.FieldClusterJobID:
		return m.ClusterJobID()
	case pipelinejob.FieldStartTime:
		return m.StartTime()
	case pipelinejob.FieldEndTime:
		return m.EndTime()
	case pipelinejob.FieldErrorMessage:
		return m.ErrorMessage()
	case pipelinejob.FieldPipelineStats:
		return m.PipelineStats()
	case pipelinejob.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipelinejob.FieldSessionID:
		return m.OldSessionID(ctx)
	case pipelinejob.FieldProjectID:
		return m.OldProjectID(ctx)
	case pipelinejob.FieldUserID:
		return m.OldUserID(ctx)
	case pipelinejob.FieldJobName:
		return m.OldJobName(ctx)
	case pipelinejob.FieldJobType:
		return m.OldJobType(ctx)
	case pipelinejob.FieldStatus:
		return m.OldStatus(ctx)
	case pipelinejob.FieldOutputFilePath:
		return m.OldOutputFilePath(ctx)
	case pipelinejob.FieldCommand:
		return m.OldCommand(ctx)
	case pipelinejob.FieldParameters:
		return m.OldParameters(ctx)
	case pipelinejob.FieldInputJobIds:
		return m.OldInputJobIds(ctx)
	case pipelinejob.FieldExecutionMode:
		return m.OldExecutionMode(ctx)
	case pipelinejob.FieldClusterJobID:
		return m.OldClusterJobID(ctx)
	case pipelinejob.FieldStartTime:
		return m.OldStartTime(ctx)
	case pipelinejob.FieldEndTime:
		return m.OldEndTime(ctx)
	case pipelinejob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case pipelinejob.FieldPipelineStats:
		return m.OldPipelineStats(ctx)
	case pipelinejob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PipelineJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipelinejob.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case pipelinejob.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case pipelinejob.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case pipelinejob.FieldJobName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobName(v)
		return nil
	case pipelinejob.FieldJobType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobType(v)
		return nil
	case pipelinejob.FieldStatus:
		v, ok := value.(pipelinejob.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pipelinejob.FieldOutputFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputFilePath(v)
		return nil
	case pipelinejob.FieldCommand:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommand(v)
		return nil
	case pipelinejob.FieldParameters:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParameters(v)
		return nil
	case pipelinejob.FieldInputJobIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputJobIds(v)
		return nil
	case pipelinejob.FieldExecutionMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionMode(v)
		return nil
	case pipelinejob.FieldClusterJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClusterJobID(v)
		return nil
	case pipelinejob.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case pipelinejob.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case pipelinejob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case pipelinejob.FieldPipelineStats:
		v, ok := value.(models.PipelineStats)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPipelineStats(v)
		return nil
	case pipelinejob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineJobMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineJobMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PipelineJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pipelinejob.FieldOutputFilePath) {
		fields = append(fields, pipelinejob.FieldOutputFilePath)
	}
	if m.FieldCleared(pipelinejob.FieldCommand) {
		fields = append(fields, pipelinejob.FieldCommand)
	}
	if m.FieldCleared(pipelinejob.FieldParameters) {
		fields = append(fields, pipelinejob.FieldParameters)
	}
	if m.FieldCleared(pipelinejob.FieldInputJobIds) {
		fields = append(fields, pipelinejob.FieldInputJobIds)
	}
	if m.FieldCleared(pipelinejob.FieldClusterJobID) {
		fields = append(fields, pipelinejob.FieldClusterJobID)
	}
	if m.FieldCleared(pipelinejob.FieldStartTime) {
		fields = append(fields, pipelinejob.FieldStartTime)
	}
	if m.FieldCleared(pipelinejob.FieldEndTime) {
		fields = append(fields, pipelinejob.FieldEndTime)
	}
	if m.FieldCleared(pipelinejob.FieldErrorMessage) {
		fields = append(fields, pipelinejob.FieldErrorMessage)
	}
	if m.FieldCleared(pipelinejob.FieldPipelineStats) {
		fields = append(fields, pipelinejob.FieldPipelineStats)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineJobMutation) ClearField(name string) error {
	switch name {
	case pipelinejob.FieldOutputFilePath:
		m.ClearOutputFilePath()
		return nil
	case pipelinejob.FieldCommand:
		m.ClearCommand()
		return nil
	case pipelinejob.FieldParameters:
		m.ClearParameters()
		return nil
	case pipelinejob.FieldInputJobIds:
		m.ClearInputJobIds()
		return nil
	case pipelinejob.FieldClusterJobID:
		m.ClearClusterJobID()
		return nil
	case pipelinejob.FieldStartTime:
		m.ClearStartTime()
		return nil
	case pipelinejob.FieldEndTime:
		m.ClearEndTime()
		return nil
	case pipelinejob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case pipelinejob.FieldPipelineStats:
		m.ClearPipelineStats()
		return nil
	}
	return fmt.Errorf("unknown PipelineJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineJobMutation) ResetField(name string) error {
	switch name {
	case pipelinejob.FieldSessionID:
		m.ResetSessionID()
		return nil
	case pipelinejob.FieldProjectID:
		m.ResetProjectID()
		return nil
	case pipelinejob.FieldUserID:
		m.ResetUserID()
		return nil
	case pipelinejob.FieldJobName:
		m.ResetJobName()
		return nil
	case pipelinejob.FieldJobType:
		m.ResetJobType()
		return nil
	case pipelinejob.FieldStatus:
		m.ResetStatus()
		return nil
	case pipelinejob.FieldOutputFilePath:
		m.ResetOutputFilePath()
		return nil
	case pipelinejob.FieldCommand:
		m.ResetCommand()
		return nil
	case pipelinejob.FieldParameters:
		m.ResetParameters()
		return nil
	case pipelinejob.FieldInputJobIds:
		m.ResetInputJobIds()
		return nil
	case pipelinejob.FieldExecutionMode:
		m.ResetExecutionMode()
		return nil
	case pipelinejob.FieldClusterJobID:
		m.ResetClusterJobID()
		return nil
	case pipelinejob.FieldStartTime:
		m.ResetStartTime()
		return nil
	case pipelinejob.FieldEndTime:
		m.ResetEndTime()
		return nil
	case pipelinejob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case pipelinejob.FieldPipelineStats:
		m.ResetPipelineStats()
		return nil
	case pipelinejob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PipelineJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.session != nil {
		edges = append(edges, pipelinejob.EdgeSession)
	}
	if m.project != nil {
		edges = append(edges, pipelinejob.EdgeProject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pipelinejob.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case pipelinejob.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsession {
		edges = append(edges, pipelinejob.EdgeSession)
	}
	if m.clearedproject {
		edges = append(edges, pipelinejob.EdgeProject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineJobMutation) EdgeCleared(name string) bool {
	switch name {
	case pipelinejob.EdgeSession:
		return m.clearedsession
	case pipelinejob.EdgeProject:
		return m.clearedproject
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineJobMutation) ClearEdge(name string) error {
	switch name {
	case pipelinejob.EdgeSession:
		m.ClearSession()
		return nil
	case pipelinejob.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown PipelineJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineJobMutation) ResetEdge(name string) error {
	switch name {
	case pipelinejob.EdgeSession:
		m.ResetSession()
		return nil
	case pipelinejob.EdgeProject:
		m.ResetProject()
		return nil
	}
	return fmt.Errorf("unknown PipelineJob edge %s", name)
}

// PipelineSessionMutation represents an operation that mutates the PipelineSession nodes in the graph.
type PipelineSessionMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	user_id                 *string
	session_name            *string
	input_mode              *pipelinesession.InputMode
	watch_directory         *string
	file_pattern            *string
	status                  *pipelinesession.Status
	optics                  *models.OpticsConfig
	motion_config           *models.MotionConfig
	ctf_config              *models.CtfConfig
	picking_config          *models.PickingConfig
	extraction_config       *models.ExtractionConfig
	class2d_config          *models.Class2DConfig
	slurm_config            *models.SlurmConfig
	state                   *models.SessionState
	jobs                    *models.SessionJobs
	pass_history            *[]models.PassSnapshot
	appendpass_history      []models.PassSnapshot
	start_time              *time.Time
	end_time                *time.Time
	created_at              *time.Time
	deleted_at              *time.Time
	clearedFields           map[string]struct{}
	project                 *string
	clearedproject          bool
	pipeline_jobs           map[string]struct{}
	removedpipeline_jobs    map[string]struct{}
	clearedpipeline_jobs    bool
	activity_entries        map[string]struct{}
	removedactivity_entries map[string]struct{}
	clearedactivity_entries bool
	done                    bool
	oldValue                func(context.Context) (*PipelineSession, error)
	predicates              []predicate.PipelineSession
}

var _ ent.Mutation = (*PipelineSessionMutation)(nil)

// pipelinesessionOption allows management of the mutation configuration using functional options.
type pipelinesessionOption func(*PipelineSessionMutation)

// newPipelineSessionMutation creates new mutation for the PipelineSession entity.
func newPipelineSessionMutation(c config, op Op, opts ...pipelinesessionOption) *PipelineSessionMutation {
	m := &PipelineSessionMutation{
		config:        c,
		op:            op,
		typ:           TypePipelineSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineSessionID sets the ID field of the mutation.
func withPipelineSessionID(id string) pipelinesessionOption {
	return func(m *PipelineSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *PipelineSession
		)
		m.oldValue = func(ctx context.Context) (*PipelineSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PipelineSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipelineSession sets the old PipelineSession of the mutation.
func withPipelineSession(node *PipelineSession) pipelinesessionOption {
	return func(m *PipelineSessionMutation) {
		m.oldValue = func(context.Context) (*PipelineSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PipelineSession entities.
func (m *PipelineSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PipelineSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *PipelineSessionMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *PipelineSessionMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the PipelineSession entity.
// If the PipelineSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineSessionMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *PipelineSessionMutation) ResetProjectID() {
	m.project = nil
}

// SetUserID sets the "user_id" field.
func (m *PipelineSessionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PipelineSessionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the PipelineSession entity.
// If the PipelineSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineSessionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PipelineSessionMutation) ResetUserID() {
	m.user_id = nil
}

// SetSessionName sets the "session_name" field.
func (m *PipelineSessionMutation) SetSessionName(s string) {
	m.session_name = &s
}

// SessionName returns the value of the "session_name" field in the mutation.
func (m *PipelineSessionMutation) SessionName() (r string, exists bool) {
	v := m.session_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionName returns the old "session_name" field's value of the PipelineSession entity.
// If the PipelineSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineSessionMutation) OldSessionName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionName: %w", err)
	}
	return oldValue.SessionName, nil
}

// ResetSessionName resets all changes to the "session_name" field.
func (m *PipelineSessionMutation) ResetSessionName() {
	m.session_name = nil
}

// SetInputMode sets the "input_mode" field.
func (m *PipelineSessionMutation) SetInputMode(pm pipelinesession.InputMode) {
	m.input_mode = &pm
}

// InputMode returns the value of the "input_mode" field in the mutation.
func (m *PipelineSessionMutation) InputMode() (r pipelinesession.InputMode, exists bool) {
	v := m.input_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldInputMode returns the old "input_mode" field's value of the PipelineSession entity.
// If the PipelineSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineSessionMutation) OldInputMode(ctx context.Context) (v pipelinesession.InputMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputMode: %w", err)
	}
	return oldValue.InputMode, nil
}

// ResetInputMode resets all changes to the "input_mode" field.
func (m *PipelineSessionMutation) ResetInputMode() {
	m.input_mode = nil
}

// SetWatchDirectory sets the "watch_directory" field.
func (m *PipelineSessionMutation) SetWatchDirectory(s string) {
	m.watch_directory = &s
}

// WatchDirectory returns the value of the "watch_directory" field in the mutation.
func (m *PipelineSessionMutation) WatchDirectory() (r string, exists bool) {
	v := m.watch_directory
	if v == nil {
		return
	}
	return *v, true
}

// OldWatchDirectory returns the old "watch_directory" field's value of the PipelineSession entity.
// If the PipelineSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineSessionMutation) OldWatchDirectory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWatchDirectory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWatchDirectory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWatchDirectory: %w", err)
	}
	return oldValue.WatchDirectory, nil
}

// ResetWatchDirectory resets all changes to the "watch_directory" field.
func (m *PipelineSessionMutation) ResetWatchDirectory() {
	m.watch_directory = nil
}

// SetFilePattern sets the "file_pattern" field.
func (m *PipelineSessionMutation) SetFilePattern(s string) {
	m.file_pattern = &s
}

// FilePattern returns the value of the "file_pattern" field in the mutation.
func (m *PipelineSessionMutation) FilePattern() (r string, exists bool) {
	v := m.file_pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePattern returns the old "file_pattern" field's value of the PipelineSession entity.
// If the PipelineSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineSessionMutation) OldFilePattern(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePattern is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePattern requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePattern: %w", err)
	}
	return oldValue.FilePattern, nil
}

// ResetFilePattern resets all changes to the "file_pattern" field.
func (m *PipelineSessionMutation) ResetFilePattern() {
	m.file_pattern = nil
}

// SetStatus sets the "status" field.
func (m *PipelineSessionMutation) SetStatus(pi pipelinesession.Status) {
	m.status = &pi
}

// Status returns the value of the "status" field in the mutation.
func (m *PipelineSessionMutation) Status() (r pipelinesession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PipelineSession entity.
// If the PipelineSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineSessionMutation) OldStatus(ctx context.Context) (v pipelinesession.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PipelineSessionMutation) ResetStatus() {
	m.status = nil
}

// SetOptics sets the "optics" field.
func (m *PipelineSessionMutation) SetOptics(mc models.OpticsConfig) {
	m.optics = &mc
}

// Optics returns the value of the "optics" field in the mutation.
func (m *PipelineSessionMutation) Optics() (r models.OpticsConfig, exists bool) {
	v := m.optics
	if v == nil {
		return
	}
	return *v, true
}

// OldOptics returns the old "optics" field's value of the PipelineSession entity.
// If the PipelineSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineSessionMutation) OldOptics(ctx context.Context) (v models.OpticsConfig, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptics: %w", err)
	}
	return oldValue.Optics, nil
}

// ResetOptics resets all changes to the "optics" field.
func (m *PipelineSessionMutation) ResetOptics() {
	m.optics = nil
}

// SetMotionConfig sets the "motion_config" field.
func (m *PipelineSessionMutation) SetMotionConfig(mc models.MotionConfig) {
	m.motion_config = &mc
}

// MotionConfig returns the value of the "motion_config" field in the mutation.
func (m *PipelineSessionMutation) MotionConfig() (r models.MotionConfig, exists bool) {
	v := m.motion_config
	if v == nil {
		return
	}
	return *v, true
}

// OldMotionConfig returns the old "motion_config" field's value of the PipelineSession entity.
// If the PipelineSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineSessionMutation) OldMotionConfig(ctx context.Context) (v models.MotionConfig, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMotionConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMotionConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMotionConfig: %w", err)
	}
	return oldValue.MotionConfig, nil
}

// ClearMotionConfig clears the value of the "motion_config" field.
func (m *PipelineSessionMutation) ClearMotionConfig() {
	m.motion_config = nil
	m.clearedFields[pipelinesession.FieldMotionConfig] = struct{}{}
}

// MotionConfigCleared returns if the "motion_config" field was cleared in this mutation.
func (m *PipelineSessionMutation) MotionConfigCleared() bool {
	_, ok := m.clearedFields[pipelinesession.FieldMotionConfig]
	return ok
}

// ResetMotionConfig resets all changes to the "motion_config" field.
func (m *PipelineSessionMutation) ResetMotionConfig() {
	m.motion_config = nil
	delete(m.clearedFields, pipelinesession.FieldMotionConfig)
}

// SetCtfConfig sets the "ctf_config" field.
func (m *PipelineSessionMutation) SetCtfConfig(mc models.CtfConfig) {
	m.ctf_config = &mc
}

// CtfConfig returns the value of the "ctf_config" field in the mutation.
func (m *PipelineSessionMutation) CtfConfig() (r models.CtfConfig, exists bool) {
	v := m.ctf_config
	if v == nil {
		return
	}
	return *v, true
}

// OldCtfConfig returns the old "ctf_config" field's value of the PipelineSession entity.
// If the PipelineSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineSessionMutation) OldCtfConfig(ctx context.Context) (v models.CtfConfig, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCtfConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCtfConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCtfConfig: %w", err)
	}
	return oldValue.CtfConfig, nil
}

// ClearCtfConfig clears the value of the "ctf_config" field.
func (m *PipelineSessionMutation) ClearCtfConfig() {
	m.ctf_config = nil
	m.clearedFields[pipelinesession.FieldCtfConfig] = struct{}{}
}

// CtfConfigCleared returns if the "ctf_config" field was cleared in this mutation.
func (m *PipelineSessionMutation) CtfConfigCleared() bool {
	_, ok := m.clearedFields[pipelinesession.FieldCtfConfig]
	return ok
}

// ResetCtfConfig resets all changes to the "ctf_config" field.
func (m *PipelineSessionMutation) ResetCtfConfig() {
	m.ctf_config = nil
	delete(m.clearedFields, pipelinesession.FieldCtfConfig)
}

// SetPickingConfig sets the "picking_config" field.
func (m *PipelineSessionMutation) SetPickingConfig(mc models.PickingConfig) {
	m.picking_config = &mc
}

// PickingConfig returns the value of the "picking_config" field in the mutation.
func (m *PipelineSessionMutation) PickingConfig() (r models.PickingConfig, exists bool) {
	v := m.picking_config
	if v == nil {
		return
	}
	return *v, true
}

// OldPickingConfig returns the old "picking_config" field's value of the PipelineSession entity.
// If the PipelineSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineSessionMutation) OldPickingConfig(ctx context.Context) (v models.PickingConfig, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPickingConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPickingConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPickingConfig: %w", err)
	}
	return oldValue.PickingConfig, nil
}

// ClearPickingConfig clears the value of the "picking_config" field.
func (m *PipelineSessionMutation) ClearPickingConfig() {
	m.picking_config = nil
	m.clearedFields[pipelinesession.FieldPickingConfig] = struct{}{}
}

// PickingConfigCleared returns if the "picking_config" field was cleared in this mutation.
func (m *PipelineSessionMutation) PickingConfigCleared() bool {
	_, ok := m.clearedFields[pipelinesession.FieldPickingConfig]
	return ok
}

// ResetPickingConfig resets all changes to the "picking_config" field.
func (m *PipelineSessionMutation) ResetPickingConfig() {
	m.picking_config = nil
	delete(m.clearedFields, pipelinesession.FieldPickingConfig)
}

// SetExtractionConfig sets the "extraction_config" field.
func (m *PipelineSessionMutation) SetExtractionConfig(mc models.ExtractionConfig) {
	m.extraction_config = &mc
}

// ExtractionConfig returns the value of the "extraction_config" field in the mutation.
func (m *PipelineSessionMutation) ExtractionConfig() (r models.ExtractionConfig, exists bool) {
	v := m.extraction_config
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionConfig returns the old "extraction_config" field's value of the PipelineSession entity.
// If the PipelineSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineSessionMutation) OldExtractionConfig(ctx context.Context) (v models.ExtractionConfig, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionConfig: %w", err)
	}
	return oldValue.ExtractionConfig, nil
}

// ClearExtractionConfig clears the value of the "extraction_config" field.
func (m *PipelineSessionMutation) ClearExtractionConfig() {
	m.extraction_config = nil
	m.clearedFields[pipelinesession.FieldExtractionConfig] = struct{}{}
}

// ExtractionConfigCleared returns if the "extraction_config" field was cleared in this mutation.
func (m *PipelineSessionMutation) ExtractionConfigCleared() bool {
	_, ok := m.clearedFields[pipelinesession.FieldExtractionConfig]
	return ok
}

// ResetExtractionConfig resets all changes to the "extraction_config" field.
func (m *PipelineSessionMutation) ResetExtractionConfig() {
	m.extraction_config = nil
	delete(m.clearedFields, pipelinesession.FieldExtractionConfig)
}

// SetClass2dConfig sets the "class2d_config" field.
func (m *PipelineSessionMutation) SetClass2dConfig(mc models.Class2DConfig) {
	m.class2d_config = &mc
}

// Class2dConfig returns the value of the "class2d_config" field in the mutation.
func (m *PipelineSessionMutation) Class2dConfig() (r models.Class2DConfig, exists bool) {
	v := m.class2d_config
	if v == nil {
		return
	}
	return *v, true
}

// OldClass2dConfig returns the old "class2d_config" field's value of the PipelineSession entity.
// If the PipelineSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineSessionMutation) OldClass2dConfig(ctx context.Context) (v models.Class2DConfig, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClass2dConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClass2dConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClass2dConfig: %w", err)
	}
	return oldValue.Class2dConfig, nil
}

// ClearClass2dConfig clears the value of the "class2d_config" field.
func (m *PipelineSessionMutation) ClearClass2dConfig() {
	m.class2d_config = nil
	m.clearedFields[pipelinesession.FieldClass2dConfig] = struct{}{}
}

// Class2dConfigCleared returns if the "class2d_config" field was cleared in this mutation.
func (m *PipelineSessionMutation) Class2dConfigCleared() bool {
	_, ok := m.clearedFields[pipelinesession.FieldClass2dConfig]
	return ok
}

// ResetClass2dConfig resets all changes to the "class2d_config" field.
func (m *PipelineSessionMutation) ResetClass2dConfig() {
	m.class2d_config = nil
	delete(m.clearedFields, pipelinesession.FieldClass2dConfig)
}

// SetSlurmConfig sets the "slurm_config" field.
func (m *PipelineSessionMutation) SetSlurmConfig(mc models.SlurmConfig) {
	m.slurm_config = &mc
}

// SlurmConfig returns the value of the "slurm_config" field in the mutation.
func (m *PipelineSessionMutation) SlurmConfig() (r models.SlurmConfig, exists bool) {
	v := m.slurm_config
	if v == nil {
		return
	}
	return *v, true
}

// OldSlurmConfig returns the old "slurm_config" field's value of the PipelineSession entity.
// If the PipelineSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineSessionMutation) OldSlurmConfig(ctx context.Context) (v models.SlurmConfig, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlurmConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlurmConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlurmConfig: %w", err)
	}
	return oldValue.SlurmConfig, nil
}

// ClearSlurmConfig clears the value of the "slurm_config" field.
func (m *PipelineSessionMutation) ClearSlurmConfig() {
	m.slurm_config = nil
	m.clearedFields[pipelinesession.FieldSlurmConfig] = struct{}{}
}

// SlurmConfigCleared returns if the "slurm_config" field was cleared in this mutation.
func (m *PipelineSessionMutation) SlurmConfigCleared() bool {
	_, ok := m.clearedFields[pipelinesession.FieldSlurmConfig]
	return ok
}

// ResetSlurmConfig resets all changes to the "slurm_config" field.
func (m *PipelineSessionMutation) ResetSlurmConfig() {
	m.slurm_config = nil
	delete(m.clearedFields, pipelinesession.FieldSlurmConfig)
}

// SetState sets the "state" field.
func (m *PipelineSessionMutation) SetState(ms models.SessionState) {
	m.state = &ms
}

// State returns the value of the "state" field in the mutation.
func (m *PipelineSessionMutation) State() (r models.SessionState, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the PipelineSession entity.
// If the PipelineSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineSessionMutation) OldState(ctx context.Context) (v models.SessionState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *PipelineSessionMutation) ResetState() {
	m.state = nil
}

// SetJobs sets the "jobs" field.
func (m *PipelineSessionMutation) SetJobs(mj models.SessionJobs) {
	m.jobs = &mj
}

// Jobs returns the value of the "jobs" field in the mutation.
func (m *PipelineSessionMutation) Jobs() (r models.SessionJobs, exists bool) {
	v := m.jobs
	if v == nil {
		return
	}
	return *v, true
}

// OldJobs returns the old "jobs" field's value of the PipelineSession entity.
// If the PipelineSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineSessionMutation) OldJobs(ctx context.Context) (v models.SessionJobs, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobs: %w", err)
	}
	return oldValue.Jobs, nil
}

// ResetJobs resets all changes to the "jobs" field.
func (m *PipelineSessionMutation) ResetJobs() {
	m.jobs = nil
}

// SetPassHistory sets the "pass_history" field.
func (m *PipelineSessionMutation) SetPassHistory(ms []models.PassSnapshot) {
	m.pass_history = &ms
	m.appendpass_history = nil
}

// PassHistory returns the value of the "pass_history" field in the mutation.
func (m *PipelineSessionMutation) PassHistory() (r []models.PassSnapshot, exists bool) {
	v := m.pass_history
	if v == nil {
		return
	}
	return *v, true
}

// OldPassHistory returns the old "pass_history" field's value of the PipelineSession entity.
// If the PipelineSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineSessionMutation) OldPassHistory(ctx context.Context) (v []models.PassSnapshot, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassHistory: %w", err)
	}
	return oldValue.PassHistory, nil
}

// AppendPassHistory adds ms to the "pass_history" field.
func (m *PipelineSessionMutation) AppendPassHistory(ms []models.PassSnapshot) {
	m.appendpass_history = append(m.appendpass_history, ms...)
}

// AppendedPassHistory returns the list of values that were appended to the "pass_history" field in this mutation.
func (m *PipelineSessionMutation) AppendedPassHistory() ([]models.PassSnapshot, bool) {
	if len(m.appendpass_history) == 0 {
		return nil, false
	}
	return m.appendpass_history, true
}

// ClearPassHistory clears the value of the "pass_history" field.
func (m *PipelineSessionMutation) ClearPassHistory() {
	m.pass_history = nil
	m.appendpass_history = nil
	m.clearedFields[pipelinesession.FieldPassHistory] = struct{}{}
}

// PassHistoryCleared returns if the "pass_history" field was cleared in this mutation.
func (m *PipelineSessionMutation) PassHistoryCleared() bool {
	_, ok := m.clearedFields[pipelinesession.FieldPassHistory]
	return ok
}

// ResetPassHistory resets all changes to the "pass_history" field.
func (m *PipelineSessionMutation) ResetPassHistory() {
	m.pass_history = nil
	m.appendpass_history = nil
	delete(m.clearedFields, pipelinesession.FieldPassHistory)
}

// SetStartTime sets the "start_time" field.
func (m *PipelineSessionMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *PipelineSessionMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the PipelineSession entity.
// If the PipelineSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineSessionMutation) OldStartTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ClearStartTime clears the value of the "start_time" field.
func (m *PipelineSessionMutation) ClearStartTime() {
	m.start_time = nil
	m.clearedFields[pipelinesession.FieldStartTime] = struct{}{}
}

// StartTimeCleared returns if the "start_time" field was cleared in this mutation.
func (m *PipelineSessionMutation) StartTimeCleared() bool {
	_, ok := m.clearedFields[pipelinesession.FieldStartTime]
	return ok
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *PipelineSessionMutation) ResetStartTime() {
	m.start_time = nil
	delete(m.clearedFields, pipelinesession.FieldStartTime)
}

// SetEndTime sets the "end_time" field.
func (m *PipelineSessionMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *PipelineSessionMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the PipelineSession entity.
// If the PipelineSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineSessionMutation) OldEndTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ClearEndTime clears the value of the "end_time" field.
func (m *PipelineSessionMutation) ClearEndTime() {
	m.end_time = nil
	m.clearedFields[pipelinesession.FieldEndTime] = struct{}{}
}

// EndTimeCleared returns if the "end_time" field was cleared in this mutation.
func (m *PipelineSessionMutation) EndTimeCleared() bool {
	_, ok := m.clearedFields[pipelinesession.FieldEndTime]
	return ok
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *PipelineSessionMutation) ResetEndTime() {
	m.end_time = nil
	delete(m.clearedFields, pipelinesession.FieldEndTime)
}

// SetCreatedAt sets the "created_at" field.
func (m *PipelineSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PipelineSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PipelineSession entity.
// If the PipelineSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PipelineSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *PipelineSessionMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *PipelineSessionMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the PipelineSession entity.
// If the PipelineSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineSessionMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *PipelineSessionMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[pipelinesession.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *PipelineSessionMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[pipelinesession.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *PipelineSessionMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, pipelinesession.FieldDeletedAt)
}

// ClearProject clears the "project" edge to the Project entity.
func (m *PipelineSessionMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[pipelinesession.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *PipelineSessionMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *PipelineSessionMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *PipelineSessionMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddPipelineJobIDs adds the "pipeline_jobs" edge to the PipelineJob entity by ids.
func (m *PipelineSessionMutation) AddPipelineJobIDs(ids ...string) {
	if m.pipeline_jobs == nil {
		m.pipeline_jobs = make(map[string]struct{})
	}
	for i := range ids {
		m.pipeline_jobs[ids[i]] = struct{}{}
	}
}

// ClearPipelineJobs clears the "pipeline_jobs" edge to the PipelineJob entity.
func (m *PipelineSessionMutation) ClearPipelineJobs() {
	m.clearedpipeline_jobs = true
}

// PipelineJobsCleared reports if the "pipeline_jobs" edge to the PipelineJob entity was cleared.
func (m *PipelineSessionMutation) PipelineJobsCleared() bool {
	return m.clearedpipeline_jobs
}

// RemovePipelineJobIDs removes the "pipeline_jobs" edge to the PipelineJob entity by IDs.
func (m *PipelineSessionMutation) RemovePipelineJobIDs(ids ...string) {
	if m.removedpipeline_jobs == nil {
		m.removedpipeline_jobs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.pipeline_jobs, ids[i])
		m.removedpipeline_jobs[ids[i]] = struct{}{}
	}
}

// RemovedPipelineJobs returns the removed IDs of the "pipeline_jobs" edge to the PipelineJob entity.
func (m *PipelineSessionMutation) RemovedPipelineJobsIDs() (ids []string) {
	for id := range m.removedpipeline_jobs {
		ids = append(ids, id)
	}
	return
}

// PipelineJobsIDs returns the "pipeline_jobs" edge IDs in the mutation.
func (m *PipelineSessionMutation) PipelineJobsIDs() (ids []string) {
	for id := range m.pipeline_jobs {
		ids = append(ids, id)
	}
	return
}

// ResetPipelineJobs resets all changes to the "pipeline_jobs" edge.
func (m *PipelineSessionMutation) ResetPipelineJobs() {
	m.pipeline_jobs = nil
	m.clearedpipeline_jobs = false
	m.removedpipeline_jobs = nil
}

// AddActivityEntryIDs adds the "activity_entries" edge to the ActivityEntry entity by ids.
func (m *PipelineSessionMutation) AddActivityEntryIDs(ids ...string) {
	if m.activity_entries == nil {
		m.activity_entries = make(map[string]struct{})
	}
	for i := range ids {
		m.activity_entries[ids[i]] = struct{}{}
	}
}

// ClearActivityEntries clears the "activity_entries" edge to the ActivityEntry entity.
func (m *PipelineSessionMutation) ClearActivityEntries() {
	m.clearedactivity_entries = true
}

// ActivityEntriesCleared reports if the "activity_entries" edge to the ActivityEntry entity was cleared.
func (m *PipelineSessionMutation) ActivityEntriesCleared() bool {
	return m.clearedactivity_entries
}

// RemoveActivityEntryIDs removes the "activity_entries" edge to the ActivityEntry entity by IDs.
func (m *PipelineSessionMutation) RemoveActivityEntryIDs(ids ...string) {
	if m.removedactivity_entries == nil {
		m.removedactivity_entries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.activity_entries, ids[i])
		m.removedactivity_entries[ids[i]] = struct{}{}
	}
}

// RemovedActivityEntries returns the removed IDs of the "activity_entries" edge to the ActivityEntry entity.
func (m *PipelineSessionMutation) RemovedActivityEntriesIDs() (ids []string) {
	for id := range m.removedactivity_entries {
		ids = append(ids, id)
	}
	return
}

// ActivityEntriesIDs returns the "activity_entries" edge IDs in the mutation.
func (m *PipelineSessionMutation) ActivityEntriesIDs() (ids []string) {
	for id := range m.activity_entries {
		ids = append(ids, id)
	}
	return
}

// ResetActivityEntries resets all changes to the "activity_entries" edge.
func (m *PipelineSessionMutation) ResetActivityEntries() {
	m.activity_entries = nil
	m.clearedactivity_entries = false
	m.removedactivity_entries = nil
}

// Where appends a list predicates to the PipelineSessionMutation builder.
func (m *PipelineSessionMutation) Where(ps ...predicate.PipelineSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PipelineSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PipelineSession).
func (m *PipelineSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineSessionMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.project != nil {
		fields = append(fields, pipelinesession.FieldProjectID)
	}
	if m.user_id != nil {
		fields = append(fields, pipelinesession.FieldUserID)
	}
	if m.session_name != nil {
		fields = append(fields, pipelinesession.FieldSessionName)
	}
	if m.input_mode != nil {
		fields = append(fields, pipelinesession.FieldInputMode)
	}
	if m.watch_directory != nil {
		fields = append(fields, pipelinesession.FieldWatchDirectory)
	}
	if m.file_pattern != nil {
		fields = append(fields, pipelinesession.FieldFilePattern)
	}
	if m.status != nil {
		fields = append(fields, pipelinesession.FieldStatus)
	}
	if m.optics != nil {
		fields = append(fields, pipelinesession.FieldOptics)
	}
	if m.motion_config != nil {
		fields = append(fields, pipelinesession.FieldMotionConfig)
	}
	if m.ctf_config != nil {
		fields = append(fields, pipelinesession.FieldCtfConfig)
	}
	if m.picking_config != nil {
		fields = append(fields, pipelinesession.FieldPickingConfig)
	}
	if m.extraction_config != nil {
		fields = append(fields, pipelinesession.FieldExtractionConfig)
	}
	if m.class2d_config != nil {
		fields = append(fields, pipelinesession.FieldClass2dConfig)
	}
	if m.slurm_config != nil {
		fields = append(fields, pipelinesession.FieldSlurmConfig)
	}
	if m.state != nil {
		fields = append(fields, pipelinesession.FieldState)
	}
	if m.jobs != nil {
		fields = append(fields, pipelinesession.FieldJobs)
	}
	if m.pass_history != nil {
		fields = append(fields, pipelinesession.FieldPassHistory)
	}
	if m.start_time != nil {
		fields = append(fields, pipelinesession.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, pipelinesession.FieldEndTime)
	}
	if m.created_at != nil {
		fields = append(fields, pipelinesession.FieldCreatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, pipelinesession.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipelinesession.FieldProjectID:
		return m.ProjectID()
	case pipelinesession.FieldUserID:
		return m.UserID()
	case pipelinesession.FieldSessionName:
		return m.SessionName()
	case pipelinesession.FieldInputMode:
		return m.InputMode()
	case pipelinesession.FieldWatchDirectory:
		return m.WatchDirectory()
	case pipelinesession.FieldFilePattern:
		return m.FilePattern()
	case pipelinesession.FieldStatus:
		return m.Status()
	case pipelinesession.FieldOptics:
		return m.Optics()
	case pipelinesession.FieldMotionConfig:
		return m.MotionConfig()
	case pipelinesession.FieldCtfConfig:
		return m.CtfConfig()
	case pipelinesession.FieldPickingConfig:
		return m.PickingConfig()
	case pipelinesession.FieldExtractionConfig:
		return m.ExtractionConfig()
	case pipelinesession.FieldClass2dConfig:
		return m.Class2dConfig()
	case pipelinesession.FieldSlurmConfig:
		return m.SlurmConfig()
	case pipelinesession.FieldState:
		return m.State()
	case pipelinesession.FieldJobs:
		return m.Jobs()
	case pipelinesession.FieldPassHistory:
		return m.PassHistory()
	case pipelinesession.FieldStartTime:
		return m.StartTime()
	case pipelinesession.FieldEndTime:
		return m.EndTime()
	case pipelinesession.FieldCreatedAt:
		return m.CreatedAt()
	case pipelinesession.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipelinesession.FieldProjectID:
		return m.OldProjectID(ctx)
	case pipelinesession.FieldUserID:
		return m.OldUserID(ctx)
	case pipelinesession.FieldSessionName:
		return m.OldSessionName(ctx)
	case pipelinesession.FieldInputMode:
		return m.OldInputMode(ctx)
	case pipelinesession.FieldWatchDirectory:
		return m.OldWatchDirectory(ctx)
	case pipelinesession.FieldFilePattern:
		return m.OldFilePattern(ctx)
	case pipelinesession.FieldStatus:
		return m.OldStatus(ctx)
	case pipelinesession.FieldOptics:
		return m.OldOptics(ctx)
	case pipelinesession.FieldMotionConfig:
		return m.OldMotionConfig(ctx)
	case pipelinesession.FieldCtfConfig:
		return m.OldCtfConfig(ctx)
	case pipelinesession.FieldPickingConfig:
		return m.OldPickingConfig(ctx)
	case pipelinesession.FieldExtractionConfig:
		return m.OldExtractionConfig(ctx)
	case pipelinesession.FieldClass2dConfig:
		return m.OldClass2dConfig(ctx)
	case pipelinesession.FieldSlurmConfig:
		return m.OldSlurmConfig(ctx)
	case pipelinesession.FieldState:
		return m.OldState(ctx)
	case pipelinesession.FieldJobs:
		return m.OldJobs(ctx)
	case pipelinesession.FieldPassHistory:
		return m.OldPassHistory(ctx)
	case pipelinesession.FieldStartTime:
		return m.OldStartTime(ctx)
	case pipelinesession.FieldEndTime:
		return m.OldEndTime(ctx)
	case pipelinesession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pipelinesession.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PipelineSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipelinesession.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case pipelinesession.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case pipelinesession.FieldSessionName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionName(v)
		return nil
	case pipelinesession.FieldInputMode:
		v, ok := value.(pipelinesession.InputMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputMode(v)
		return nil
	case pipelinesession.FieldWatchDirectory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWatchDirectory(v)
		return nil
	case pipelinesession.FieldFilePattern:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePattern(v)
		return nil
	case pipelinesession.FieldStatus:
		v, ok := value.(pipelinesession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pipelinesession.FieldOptics:
		v, ok := value.(models.OpticsConfig)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptics(v)
		return nil
	case pipelinesession.FieldMotionConfig:
		v, ok := value.(models.MotionConfig)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMotionConfig(v)
		return nil
	case pipelinesession.FieldCtfConfig:
		v, ok := value.(models.CtfConfig)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCtfConfig(v)
		return nil
	case pipelinesession.FieldPickingConfig:
		v, ok := value.(models.PickingConfig)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPickingConfig(v)
		return nil
	case pipelinesession.FieldExtractionConfig:
		v, ok := value.(models.ExtractionConfig)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionConfig(v)
		return nil
	case pipelinesession.FieldClass2dConfig:
		v, ok := value.(models.Class2DConfig)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClass2dConfig(v)
		return nil
	case pipelinesession.FieldSlurmConfig:
		v, ok := value.(models.SlurmConfig)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlurmConfig(v)
		return nil
	case pipelinesession.FieldState:
		v, ok := value.(models.SessionState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case pipelinesession.FieldJobs:
		v, ok := value.(models.SessionJobs)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobs(v)
		return nil
	case pipelinesession.FieldPassHistory:
		v, ok := value.([]models.PassSnapshot)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassHistory(v)
		return nil
	case pipelinesession.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case pipelinesession.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case pipelinesession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pipelinesession.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PipelineSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pipelinesession.FieldMotionConfig) {
		fields = append(fields, pipelinesession.FieldMotionConfig)
	}
	if m.FieldCleared(pipelinesession.FieldCtfConfig) {
		fields = append(fields, pipelinesession.FieldCtfConfig)
	}
	if m.FieldCleared(pipelinesession.FieldPickingConfig) {
		fields = append(fields, pipelinesession.FieldPickingConfig)
	}
	if m.FieldCleared(pipelinesession.FieldExtractionConfig) {
		fields = append(fields, pipelinesession.FieldExtractionConfig)
	}
	if m.FieldCleared(pipelinesession.FieldClass2dConfig) {
		fields = append(fields, pipelinesession.FieldClass2dConfig)
	}
	if m.FieldCleared(pipelinesession.FieldSlurmConfig) {
		fields = append(fields, pipelinesession.FieldSlurmConfig)
	}
	if m.FieldCleared(pipelinesession.FieldPassHistory) {
		fields = append(fields, pipelinesession.FieldPassHistory)
	}
	if m.FieldCleared(pipelinesession.FieldStartTime) {
		fields = append(fields, pipelinesession.FieldStartTime)
	}
	if m.FieldCleared(pipelinesession.FieldEndTime) {
		fields = append(fields, pipelinesession.FieldEndTime)
	}
	if m.FieldCleared(pipelinesession.FieldDeletedAt) {
		fields = append(fields, pipelinesession.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineSessionMutation) ClearField(name string) error {
	switch name {
	case pipelinesession.FieldMotionConfig:
		m.ClearMotionConfig()
		return nil
	case pipelinesession.FieldCtfConfig:
		m.ClearCtfConfig()
		return nil
	case pipelinesession.FieldPickingConfig:
		m.ClearPickingConfig()
		return nil
	case pipelinesession.FieldExtractionConfig:
		m.ClearExtractionConfig()
		return nil
	case pipelinesession.FieldClass2dConfig:
		m.ClearClass2dConfig()
		return nil
	case pipelinesession.FieldSlurmConfig:
		m.ClearSlurmConfig()
		return nil
	case pipelinesession.FieldPassHistory:
		m.ClearPassHistory()
		return nil
	case pipelinesession.FieldStartTime:
		m.ClearStartTime()
		return nil
	case pipelinesession.FieldEndTime:
		m.ClearEndTime()
		return nil
	case pipelinesession.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown PipelineSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineSessionMutation) ResetField(name string) error {
	switch name {
	case pipelinesession.FieldProjectID:
		m.ResetProjectID()
		return nil
	case pipelinesession.FieldUserID:
		m.ResetUserID()
		return nil
	case pipelinesession.FieldSessionName:
		m.ResetSessionName()
		return nil
	case pipelinesession.FieldInputMode:
		m.ResetInputMode()
		return nil
	case pipelinesession.FieldWatchDirectory:
		m.ResetWatchDirectory()
		return nil
	case pipelinesession.FieldFilePattern:
		m.ResetFilePattern()
		return nil
	case pipelinesession.FieldStatus:
		m.ResetStatus()
		return nil
	case pipelinesession.FieldOptics:
		m.ResetOptics()
		return nil
	case pipelinesession.FieldMotionConfig:
		m.ResetMotionConfig()
		return nil
	case pipelinesession.FieldCtfConfig:
		m.ResetCtfConfig()
		return nil
	case pipelinesession.FieldPickingConfig:
		m.ResetPickingConfig()
		return nil
	case pipelinesession.FieldExtractionConfig:
		m.ResetExtractionConfig()
		return nil
	case pipelinesession.FieldClass2dConfig:
		m.ResetClass2dConfig()
		return nil
	case pipelinesession.FieldSlurmConfig:
		m.ResetSlurmConfig()
		return nil
	case pipelinesession.FieldState:
		m.ResetState()
		return nil
	case pipelinesession.FieldJobs:
		m.ResetJobs()
		return nil
	case pipelinesession.FieldPassHistory:
		m.ResetPassHistory()
		return nil
	case pipelinesession.FieldStartTime:
		m.ResetStartTime()
		return nil
	case pipelinesession.FieldEndTime:
		m.ResetEndTime()
		return nil
	case pipelinesession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pipelinesession.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown PipelineSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.project != nil {
		edges = append(edges, pipelinesession.EdgeProject)
	}
	if m.pipeline_jobs != nil {
		edges = append(edges, pipelinesession.EdgePipelineJobs)
	}
	if m.activity_entries != nil {
		edges = append(edges, pipelinesession.EdgeActivityEntries)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pipelinesession.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case pipelinesession.EdgePipelineJobs:
		ids := make([]ent.Value, 0, len(m.pipeline_jobs))
		for id := range m.pipeline_jobs {
			ids = append(ids, id)
		}
		return ids
	case pipelinesession.EdgeActivityEntries:
		ids := make([]ent.Value, 0, len(m.activity_entries))
		for id := range m.activity_entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedpipeline_jobs != nil {
		edges = append(edges, pipelinesession.EdgePipelineJobs)
	}
	if m.removedactivity_entries != nil {
		edges = append(edges, pipelinesession.EdgeActivityEntries)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case pipelinesession.EdgePipelineJobs:
		ids := make([]ent.Value, 0, len(m.removedpipeline_jobs))
		for id := range m.removedpipeline_jobs {
			ids = append(ids, id)
		}
		return ids
	case pipelinesession.EdgeActivityEntries:
		ids := make([]ent.Value, 0, len(m.removedactivity_entries))
		for id := range m.removedactivity_entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedproject {
		edges = append(edges, pipelinesession.EdgeProject)
	}
	if m.clearedpipeline_jobs {
		edges = append(edges, pipelinesession.EdgePipelineJobs)
	}
	if m.clearedactivity_entries {
		edges = append(edges, pipelinesession.EdgeActivityEntries)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case pipelinesession.EdgeProject:
		return m.clearedproject
	case pipelinesession.EdgePipelineJobs:
		return m.clearedpipeline_jobs
	case pipelinesession.EdgeActivityEntries:
		return m.clearedactivity_entries
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineSessionMutation) ClearEdge(name string) error {
	switch name {
	case pipelinesession.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown PipelineSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineSessionMutation) ResetEdge(name string) error {
	switch name {
	case pipelinesession.EdgeProject:
		m.ResetProject()
		return nil
	case pipelinesession.EdgePipelineJobs:
		m.ResetPipelineJobs()
		return nil
	case pipelinesession.EdgeActivityEntries:
		m.ResetActivityEntries()
		return nil
	}
	return fmt.Errorf("unknown PipelineSession edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op              Op
	typ             string
	id              *string
	name            *string
	_path           *string
	job_counter     *int
	addjob_counter  *int
	created_at      *time.Time
	clearedFields   map[string]struct{}
	sessions        map[string]struct{}
	removedsessions map[string]struct{}
	clearedsessions bool
	jobs            map[string]struct{}
	removedjobs     map[string]struct{}
	clearedjobs     bool
	done            bool
	oldValue        func(context.Context) (*Project, error)
	predicates      []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id string) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetPath sets the "path" field.
func (m *ProjectMutation) SetPath(s string) {
	m._path = &s
}

// Path returns the value of the "path" field in the mutation.
func (m *ProjectMutation) Path() (r string, exists bool) {
	v := m._path
	if v == nil {
		return
	}
	return *v, true
}

// OldPath returns the old "path" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPath: %w", err)
	}
	return oldValue.Path, nil
}

// ResetPath resets all changes to the "path" field.
func (m *ProjectMutation) ResetPath() {
	m._path = nil
}

// SetJobCounter sets the "job_counter" field.
func (m *ProjectMutation) SetJobCounter(i int) {
	m.job_counter = &i
	m.addjob_counter = nil
}

// JobCounter returns the value of the "job_counter" field in the mutation.
func (m *ProjectMutation) JobCounter() (r int, exists bool) {
	v := m.job_counter
	if v == nil {
		return
	}
	return *v, true
}

// OldJobCounter returns the old "job_counter" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldJobCounter(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobCounter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobCounter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobCounter: %w", err)
	}
	return oldValue.JobCounter, nil
}

// AddJobCounter adds i to the "job_counter" field.
func (m *ProjectMutation) AddJobCounter(i int) {
	if m.addjob_counter != nil {
		*m.addjob_counter += i
	} else {
		m.addjob_counter = &i
	}
}

// AddedJobCounter returns the value that was added to the "job_counter" field in this mutation.
func (m *ProjectMutation) AddedJobCounter() (r int, exists bool) {
	v := m.addjob_counter
	if v == nil {
		return
	}
	return *v, true
}

// ResetJobCounter resets all changes to the "job_counter" field.
func (m *ProjectMutation) ResetJobCounter() {
	m.job_counter = nil
	m.addjob_counter = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddSessionIDs adds the "sessions" edge to the PipelineSession entity by ids.
func (m *ProjectMutation) AddSessionIDs(ids ...string) {
	if m.sessions == nil {
		m.sessions = make(map[string]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the PipelineSession entity.
func (m *ProjectMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the PipelineSession entity was cleared.
func (m *ProjectMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the PipelineSession entity by IDs.
func (m *ProjectMutation) RemoveSessionIDs(ids ...string) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the PipelineSession entity.
func (m *ProjectMutation) RemovedSessionsIDs() (ids []string) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *ProjectMutation) SessionsIDs() (ids []string) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *ProjectMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// AddJobIDs adds the "jobs" edge to the PipelineJob entity by ids.
func (m *ProjectMutation) AddJobIDs(ids ...string) {
	if m.jobs == nil {
		m.jobs = make(map[string]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the PipelineJob entity.
func (m *ProjectMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the PipelineJob entity was cleared.
func (m *ProjectMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the PipelineJob entity by IDs.
func (m *ProjectMutation) RemoveJobIDs(ids ...string) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the PipelineJob entity.
func (m *ProjectMutation) RemovedJobsIDs() (ids []string) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *ProjectMutation) JobsIDs() (ids []string) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *ProjectMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m._path != nil {
		fields = append(fields, project.FieldPath)
	}
	if m.job_counter != nil {
		fields = append(fields, project.FieldJobCounter)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldName:
		return m.Name()
	case project.FieldPath:
		return m.Path()
	case project.FieldJobCounter:
		return m.JobCounter()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldPath:
		return m.OldPath(ctx)
	case project.FieldJobCounter:
		return m.OldJobCounter(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPath(v)
		return nil
	case project.FieldJobCounter:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobCounter(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	var fields []string
	if m.addjob_counter != nil {
		fields = append(fields, project.FieldJobCounter)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case project.FieldJobCounter:
		return m.AddedJobCounter()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	case project.FieldJobCounter:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddJobCounter(v)
		return nil
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldPath:
		m.ResetPath()
		return nil
	case project.FieldJobCounter:
		m.ResetJobCounter()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.sessions != nil {
		edges = append(edges, project.EdgeSessions)
	}
	if m.jobs != nil {
		edges = append(edges, project.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsessions != nil {
		edges = append(edges, project.EdgeSessions)
	}
	if m.removedjobs != nil {
		edges = append(edges, project.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsessions {
		edges = append(edges, project.EdgeSessions)
	}
	if m.clearedjobs {
		edges = append(edges, project.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeSessions:
		return m.clearedsessions
	case project.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeSessions:
		m.ResetSessions()
		return nil
	case project.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}
