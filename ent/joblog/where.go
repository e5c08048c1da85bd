// Code generated by ent, DO NOT EDIT.

package joblog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/painscope/painscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.JobLog {
	return predicate.JobLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.JobLog {
	return predicate.JobLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.JobLog {
	return predicate.JobLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.JobLog {
	return predicate.JobLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.JobLog {
	return predicate.JobLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.JobLog {
	return predicate.JobLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.JobLog {
	return predicate.JobLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.JobLog {
	return predicate.JobLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.JobLog {
	return predicate.JobLog(sql.FieldLTE(FieldID, id))
}

// SearchID applies equality check predicate on the "search_id" field. It's identical to SearchIDEQ.
func SearchID(v string) predicate.JobLog {
	return predicate.JobLog(sql.FieldEQ(FieldSearchID, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.JobLog {
	return predicate.JobLog(sql.FieldEQ(FieldMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.JobLog {
	return predicate.JobLog(sql.FieldEQ(FieldCreatedAt, v))
}

// SearchIDEQ applies the EQ predicate on the "search_id" field.
func SearchIDEQ(v string) predicate.JobLog {
	return predicate.JobLog(sql.FieldEQ(FieldSearchID, v))
}

// SearchIDNEQ applies the NEQ predicate on the "search_id" field.
func SearchIDNEQ(v string) predicate.JobLog {
	return predicate.JobLog(sql.FieldNEQ(FieldSearchID, v))
}

// SearchIDIn applies the In predicate on the "search_id" field.
func SearchIDIn(vs ...string) predicate.JobLog {
	return predicate.JobLog(sql.FieldIn(FieldSearchID, vs...))
}

// SearchIDNotIn applies the NotIn predicate on the "search_id" field.
func SearchIDNotIn(vs ...string) predicate.JobLog {
	return predicate.JobLog(sql.FieldNotIn(FieldSearchID, vs...))
}

// SearchIDGT applies the GT predicate on the "search_id" field.
func SearchIDGT(v string) predicate.JobLog {
	return predicate.JobLog(sql.FieldGT(FieldSearchID, v))
}

// SearchIDGTE applies the GTE predicate on the "search_id" field.
func SearchIDGTE(v string) predicate.JobLog {
	return predicate.JobLog(sql.FieldGTE(FieldSearchID, v))
}

// SearchIDLT applies the LT predicate on the "search_id" field.
func SearchIDLT(v string) predicate.JobLog {
	return predicate.JobLog(sql.FieldLT(FieldSearchID, v))
}

// SearchIDLTE applies the LTE predicate on the "search_id" field.
func SearchIDLTE(v string) predicate.JobLog {
	return predicate.JobLog(sql.FieldLTE(FieldSearchID, v))
}

// SearchIDContains applies the Contains predicate on the "search_id" field.
func SearchIDContains(v string) predicate.JobLog {
	return predicate.JobLog(sql.FieldContains(FieldSearchID, v))
}

// SearchIDHasPrefix applies the HasPrefix predicate on the "search_id" field.
func SearchIDHasPrefix(v string) predicate.JobLog {
	return predicate.JobLog(sql.FieldHasPrefix(FieldSearchID, v))
}

// SearchIDHasSuffix applies the HasSuffix predicate on the "search_id" field.
func SearchIDHasSuffix(v string) predicate.JobLog {
	return predicate.JobLog(sql.FieldHasSuffix(FieldSearchID, v))
}

// SearchIDIsNil applies the IsNil predicate on the "search_id" field.
func SearchIDIsNil() predicate.JobLog {
	return predicate.JobLog(sql.FieldIsNull(FieldSearchID))
}

// SearchIDNotNil applies the NotNil predicate on the "search_id" field.
func SearchIDNotNil() predicate.JobLog {
	return predicate.JobLog(sql.FieldNotNull(FieldSearchID))
}

// SearchIDEqualFold applies the EqualFold predicate on the "search_id" field.
func SearchIDEqualFold(v string) predicate.JobLog {
	return predicate.JobLog(sql.FieldEqualFold(FieldSearchID, v))
}

// SearchIDContainsFold applies the ContainsFold predicate on the "search_id" field.
func SearchIDContainsFold(v string) predicate.JobLog {
	return predicate.JobLog(sql.FieldContainsFold(FieldSearchID, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v Level) predicate.JobLog {
	return predicate.JobLog(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v Level) predicate.JobLog {
	return predicate.JobLog(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...Level) predicate.JobLog {
	return predicate.JobLog(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...Level) predicate.JobLog {
	return predicate.JobLog(sql.FieldNotIn(FieldLevel, vs...))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.JobLog {
	return predicate.JobLog(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.JobLog {
	return predicate.JobLog(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.JobLog {
	return predicate.JobLog(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.JobLog {
	return predicate.JobLog(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.JobLog {
	return predicate.JobLog(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.JobLog {
	return predicate.JobLog(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.JobLog {
	return predicate.JobLog(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.JobLog {
	return predicate.JobLog(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.JobLog {
	return predicate.JobLog(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.JobLog {
	return predicate.JobLog(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.JobLog {
	return predicate.JobLog(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.JobLog {
	return predicate.JobLog(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.JobLog {
	return predicate.JobLog(sql.FieldContainsFold(FieldMessage, v))
}

// ContextIsNil applies the IsNil predicate on the "context" field.
func ContextIsNil() predicate.JobLog {
	return predicate.JobLog(sql.FieldIsNull(FieldContext))
}

// ContextNotNil applies the NotNil predicate on the "context" field.
func ContextNotNil() predicate.JobLog {
	return predicate.JobLog(sql.FieldNotNull(FieldContext))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.JobLog {
	return predicate.JobLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.JobLog {
	return predicate.JobLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.JobLog {
	return predicate.JobLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.JobLog {
	return predicate.JobLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.JobLog {
	return predicate.JobLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.JobLog {
	return predicate.JobLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.JobLog {
	return predicate.JobLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.JobLog {
	return predicate.JobLog(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.JobLog) predicate.JobLog {
	return predicate.JobLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.JobLog) predicate.JobLog {
	return predicate.JobLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.JobLog) predicate.JobLog {
	return predicate.JobLog(sql.NotPredicates(p))
}
