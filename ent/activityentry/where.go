// Code generated by ent, DO NOT EDIT.

package activityentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cryoflow/cryoflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldEQ(FieldSessionID, v))
}

// Event applies equality check predicate on the "event" field. It's identical to EventEQ.
func Event(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldEQ(FieldEvent, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldEQ(FieldMessage, v))
}

// Stage applies equality check predicate on the "stage" field. It's identical to StageEQ.
func Stage(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldEQ(FieldStage, v))
}

// JobName applies equality check predicate on the "job_name" field. It's identical to JobNameEQ.
func JobName(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldEQ(FieldJobName, v))
}

// PassNumber applies equality check predicate on the "pass_number" field. It's identical to PassNumberEQ.
func PassNumber(v int) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldEQ(FieldPassNumber, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldContainsFold(FieldSessionID, v))
}

// EventEQ applies the EQ predicate on the "event" field.
func EventEQ(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldEQ(FieldEvent, v))
}

// EventNEQ applies the NEQ predicate on the "event" field.
func EventNEQ(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldNEQ(FieldEvent, v))
}

// EventIn applies the In predicate on the "event" field.
func EventIn(vs ...string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldIn(FieldEvent, vs...))
}

// EventNotIn applies the NotIn predicate on the "event" field.
func EventNotIn(vs ...string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldNotIn(FieldEvent, vs...))
}

// EventGT applies the GT predicate on the "event" field.
func EventGT(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldGT(FieldEvent, v))
}

// EventGTE applies the GTE predicate on the "event" field.
func EventGTE(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldGTE(FieldEvent, v))
}

// EventLT applies the LT predicate on the "event" field.
func EventLT(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldLT(FieldEvent, v))
}

// EventLTE applies the LTE predicate on the "event" field.
func EventLTE(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldLTE(FieldEvent, v))
}

// EventContains applies the Contains predicate on the "event" field.
func EventContains(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldContains(FieldEvent, v))
}

// EventHasPrefix applies the HasPrefix predicate on the "event" field.
func EventHasPrefix(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldHasPrefix(FieldEvent, v))
}

// EventHasSuffix applies the HasSuffix predicate on the "event" field.
func EventHasSuffix(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldHasSuffix(FieldEvent, v))
}

// EventEqualFold applies the EqualFold predicate on the "event" field.
func EventEqualFold(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldEqualFold(FieldEvent, v))
}

// EventContainsFold applies the ContainsFold predicate on the "event" field.
func EventContainsFold(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldContainsFold(FieldEvent, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldContainsFold(FieldMessage, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v Level) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v Level) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...Level) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...Level) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldNotIn(FieldLevel, vs...))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldNotIn(FieldStage, vs...))
}

// StageGT applies the GT predicate on the "stage" field.
func StageGT(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldGT(FieldStage, v))
}

// StageGTE applies the GTE predicate on the "stage" field.
func StageGTE(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldGTE(FieldStage, v))
}

// StageLT applies the LT predicate on the "stage" field.
func StageLT(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldLT(FieldStage, v))
}

// StageLTE applies the LTE predicate on the "stage" field.
func StageLTE(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldLTE(FieldStage, v))
}

// StageContains applies the Contains predicate on the "stage" field.
func StageContains(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldContains(FieldStage, v))
}

// StageHasPrefix applies the HasPrefix predicate on the "stage" field.
func StageHasPrefix(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldHasPrefix(FieldStage, v))
}

// StageHasSuffix applies the HasSuffix predicate on the "stage" field.
func StageHasSuffix(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldHasSuffix(FieldStage, v))
}

// StageIsNil applies the IsNil predicate on the "stage" field.
func StageIsNil() predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldIsNull(FieldStage))
}

// StageNotNil applies the NotNil predicate on the "stage" field.
func StageNotNil() predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldNotNull(FieldStage))
}

// StageEqualFold applies the EqualFold predicate on the "stage" field.
func StageEqualFold(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldEqualFold(FieldStage, v))
}

// StageContainsFold applies the ContainsFold predicate on the "stage" field.
func StageContainsFold(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldContainsFold(FieldStage, v))
}

// JobNameEQ applies the EQ predicate on the "job_name" field.
func JobNameEQ(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldEQ(FieldJobName, v))
}

// JobNameNEQ applies the NEQ predicate on the "job_name" field.
func JobNameNEQ(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldNEQ(FieldJobName, v))
}

// JobNameIn applies the In predicate on the "job_name" field.
func JobNameIn(vs ...string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldIn(FieldJobName, vs...))
}

// JobNameNotIn applies the NotIn predicate on the "job_name" field.
func JobNameNotIn(vs ...string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldNotIn(FieldJobName, vs...))
}

// JobNameGT applies the GT predicate on the "job_name" field.
func JobNameGT(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldGT(FieldJobName, v))
}

// JobNameGTE applies the GTE predicate on the "job_name" field.
func JobNameGTE(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldGTE(FieldJobName, v))
}

// JobNameLT applies the LT predicate on the "job_name" field.
func JobNameLT(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldLT(FieldJobName, v))
}

// JobNameLTE applies the LTE predicate on the "job_name" field.
func JobNameLTE(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldLTE(FieldJobName, v))
}

// JobNameContains applies the Contains predicate on the "job_name" field.
func JobNameContains(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldContains(FieldJobName, v))
}

// JobNameHasPrefix applies the HasPrefix predicate on the "job_name" field.
func JobNameHasPrefix(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldHasPrefix(FieldJobName, v))
}

// JobNameHasSuffix applies the HasSuffix predicate on the "job_name" field.
func JobNameHasSuffix(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldHasSuffix(FieldJobName, v))
}

// JobNameIsNil applies the IsNil predicate on the "job_name" field.
func JobNameIsNil() predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldIsNull(FieldJobName))
}

// JobNameNotNil applies the NotNil predicate on the "job_name" field.
func JobNameNotNil() predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldNotNull(FieldJobName))
}

// JobNameEqualFold applies the EqualFold predicate on the "job_name" field.
func JobNameEqualFold(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldEqualFold(FieldJobName, v))
}

// JobNameContainsFold applies the ContainsFold predicate on the "job_name" field.
func JobNameContainsFold(v string) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldContainsFold(FieldJobName, v))
}

// PassNumberEQ applies the EQ predicate on the "pass_number" field.
func PassNumberEQ(v int) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldEQ(FieldPassNumber, v))
}

// PassNumberNEQ applies the NEQ predicate on the "pass_number" field.
func PassNumberNEQ(v int) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldNEQ(FieldPassNumber, v))
}

// PassNumberIn applies the In predicate on the "pass_number" field.
func PassNumberIn(vs ...int) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldIn(FieldPassNumber, vs...))
}

// PassNumberNotIn applies the NotIn predicate on the "pass_number" field.
func PassNumberNotIn(vs ...int) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldNotIn(FieldPassNumber, vs...))
}

// PassNumberGT applies the GT predicate on the "pass_number" field.
func PassNumberGT(v int) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldGT(FieldPassNumber, v))
}

// PassNumberGTE applies the GTE predicate on the "pass_number" field.
func PassNumberGTE(v int) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldGTE(FieldPassNumber, v))
}

// PassNumberLT applies the LT predicate on the "pass_number" field.
func PassNumberLT(v int) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldLT(FieldPassNumber, v))
}

// PassNumberLTE applies the LTE predicate on the "pass_number" field.
func PassNumberLTE(v int) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldLTE(FieldPassNumber, v))
}

// PassNumberIsNil applies the IsNil predicate on the "pass_number" field.
func PassNumberIsNil() predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldIsNull(FieldPassNumber))
}

// PassNumberNotNil applies the NotNil predicate on the "pass_number" field.
func PassNumberNotNil() predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldNotNull(FieldPassNumber))
}

// ContextIsNil applies the IsNil predicate on the "context" field.
func ContextIsNil() predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldIsNull(FieldContext))
}

// ContextNotNil applies the NotNil predicate on the "context" field.
func ContextNotNil() predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldNotNull(FieldContext))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.ActivityEntry {
	return predicate.ActivityEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.PipelineSession) predicate.ActivityEntry {
	return predicate.ActivityEntry(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ActivityEntry) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ActivityEntry) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ActivityEntry) predicate.ActivityEntry {
	return predicate.ActivityEntry(sql.NotPredicates(p))
}
