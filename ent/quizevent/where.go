// Code generated by ent, DO NOT EDIT.

package quizevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/madboat/madboat/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldSessionID, v))
}

// BankVersion applies equality check predicate on the "bank_version" field. It's identical to BankVersionEQ.
func BankVersion(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldBankVersion, v))
}

// Persona applies equality check predicate on the "persona" field. It's identical to PersonaEQ.
func Persona(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldPersona, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldConfidence, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldReason, v))
}

// Answered applies equality check predicate on the "answered" field. It's identical to AnsweredEQ.
func Answered(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldAnswered, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldFinishedAt, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// BankVersionEQ applies the EQ predicate on the "bank_version" field.
func BankVersionEQ(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldBankVersion, v))
}

// BankVersionNEQ applies the NEQ predicate on the "bank_version" field.
func BankVersionNEQ(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldBankVersion, v))
}

// BankVersionIn applies the In predicate on the "bank_version" field.
func BankVersionIn(vs ...string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldBankVersion, vs...))
}

// BankVersionNotIn applies the NotIn predicate on the "bank_version" field.
func BankVersionNotIn(vs ...string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldBankVersion, vs...))
}

// BankVersionGT applies the GT predicate on the "bank_version" field.
func BankVersionGT(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldBankVersion, v))
}

// BankVersionGTE applies the GTE predicate on the "bank_version" field.
func BankVersionGTE(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldBankVersion, v))
}

// BankVersionLT applies the LT predicate on the "bank_version" field.
func BankVersionLT(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldBankVersion, v))
}

// BankVersionLTE applies the LTE predicate on the "bank_version" field.
func BankVersionLTE(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldBankVersion, v))
}

// BankVersionContains applies the Contains predicate on the "bank_version" field.
func BankVersionContains(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldContains(FieldBankVersion, v))
}

// BankVersionHasPrefix applies the HasPrefix predicate on the "bank_version" field.
func BankVersionHasPrefix(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldHasPrefix(FieldBankVersion, v))
}

// BankVersionHasSuffix applies the HasSuffix predicate on the "bank_version" field.
func BankVersionHasSuffix(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldHasSuffix(FieldBankVersion, v))
}

// BankVersionEqualFold applies the EqualFold predicate on the "bank_version" field.
func BankVersionEqualFold(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEqualFold(FieldBankVersion, v))
}

// BankVersionContainsFold applies the ContainsFold predicate on the "bank_version" field.
func BankVersionContainsFold(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldContainsFold(FieldBankVersion, v))
}

// PersonaEQ applies the EQ predicate on the "persona" field.
func PersonaEQ(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldPersona, v))
}

// PersonaNEQ applies the NEQ predicate on the "persona" field.
func PersonaNEQ(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldPersona, v))
}

// PersonaIn applies the In predicate on the "persona" field.
func PersonaIn(vs ...string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldPersona, vs...))
}

// PersonaNotIn applies the NotIn predicate on the "persona" field.
func PersonaNotIn(vs ...string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldPersona, vs...))
}

// PersonaGT applies the GT predicate on the "persona" field.
func PersonaGT(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldPersona, v))
}

// PersonaGTE applies the GTE predicate on the "persona" field.
func PersonaGTE(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldPersona, v))
}

// PersonaLT applies the LT predicate on the "persona" field.
func PersonaLT(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldPersona, v))
}

// PersonaLTE applies the LTE predicate on the "persona" field.
func PersonaLTE(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldPersona, v))
}

// PersonaContains applies the Contains predicate on the "persona" field.
func PersonaContains(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldContains(FieldPersona, v))
}

// PersonaHasPrefix applies the HasPrefix predicate on the "persona" field.
func PersonaHasPrefix(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldHasPrefix(FieldPersona, v))
}

// PersonaHasSuffix applies the HasSuffix predicate on the "persona" field.
func PersonaHasSuffix(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldHasSuffix(FieldPersona, v))
}

// PersonaEqualFold applies the EqualFold predicate on the "persona" field.
func PersonaEqualFold(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEqualFold(FieldPersona, v))
}

// PersonaContainsFold applies the ContainsFold predicate on the "persona" field.
func PersonaContainsFold(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldContainsFold(FieldPersona, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldConfidence, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldContainsFold(FieldReason, v))
}

// AnsweredEQ applies the EQ predicate on the "answered" field.
func AnsweredEQ(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldAnswered, v))
}

// AnsweredNEQ applies the NEQ predicate on the "answered" field.
func AnsweredNEQ(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldAnswered, v))
}

// AnsweredIn applies the In predicate on the "answered" field.
func AnsweredIn(vs ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldAnswered, vs...))
}

// AnsweredNotIn applies the NotIn predicate on the "answered" field.
func AnsweredNotIn(vs ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldAnswered, vs...))
}

// AnsweredGT applies the GT predicate on the "answered" field.
func AnsweredGT(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldAnswered, v))
}

// AnsweredGTE applies the GTE predicate on the "answered" field.
func AnsweredGTE(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldAnswered, v))
}

// AnsweredLT applies the LT predicate on the "answered" field.
func AnsweredLT(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldAnswered, v))
}

// AnsweredLTE applies the LTE predicate on the "answered" field.
func AnsweredLTE(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldAnswered, v))
}

// EvidenceIsNil applies the IsNil predicate on the "evidence" field.
func EvidenceIsNil() predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIsNull(FieldEvidence))
}

// EvidenceNotNil applies the NotNil predicate on the "evidence" field.
func EvidenceNotNil() predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotNull(FieldEvidence))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldFinishedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuizEvent) predicate.QuizEvent {
	return predicate.QuizEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuizEvent) predicate.QuizEvent {
	return predicate.QuizEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuizEvent) predicate.QuizEvent {
	return predicate.QuizEvent(sql.NotPredicates(p))
}
