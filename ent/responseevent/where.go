// Code generated by ent, DO NOT EDIT.

package responseevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/madboat/madboat/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldSessionID, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldPosition, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldQuestionID, v))
}

// Answer applies equality check predicate on the "answer" field. It's identical to AnswerEQ.
func Answer(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldAnswer, v))
}

// LeadingPersona applies equality check predicate on the "leading_persona" field. It's identical to LeadingPersonaEQ.
func LeadingPersona(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldLeadingPersona, v))
}

// LeadingConfidence applies equality check predicate on the "leading_confidence" field. It's identical to LeadingConfidenceEQ.
func LeadingConfidence(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldLeadingConfidence, v))
}

// TextPersona applies equality check predicate on the "text_persona" field. It's identical to TextPersonaEQ.
func TextPersona(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldTextPersona, v))
}

// TextConfidence applies equality check predicate on the "text_confidence" field. It's identical to TextConfidenceEQ.
func TextConfidence(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldTextConfidence, v))
}

// TypingCpm applies equality check predicate on the "typing_cpm" field. It's identical to TypingCpmEQ.
func TypingCpm(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldTypingCpm, v))
}

// TypingMs applies equality check predicate on the "typing_ms" field. It's identical to TypingMsEQ.
func TypingMs(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldTypingMs, v))
}

// Pauses applies equality check predicate on the "pauses" field. It's identical to PausesEQ.
func Pauses(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldPauses, v))
}

// Hesitations applies equality check predicate on the "hesitations" field. It's identical to HesitationsEQ.
func Hesitations(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldHesitations, v))
}

// Backspaces applies equality check predicate on the "backspaces" field. It's identical to BackspacesEQ.
func Backspaces(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldBackspaces, v))
}

// Pastes applies equality check predicate on the "pastes" field. It's identical to PastesEQ.
func Pastes(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldPastes, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldPosition, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldQuestionID, v))
}

// AnswerEQ applies the EQ predicate on the "answer" field.
func AnswerEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldAnswer, v))
}

// AnswerNEQ applies the NEQ predicate on the "answer" field.
func AnswerNEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldAnswer, v))
}

// AnswerIn applies the In predicate on the "answer" field.
func AnswerIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldAnswer, vs...))
}

// AnswerNotIn applies the NotIn predicate on the "answer" field.
func AnswerNotIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldAnswer, vs...))
}

// AnswerGT applies the GT predicate on the "answer" field.
func AnswerGT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldAnswer, v))
}

// AnswerGTE applies the GTE predicate on the "answer" field.
func AnswerGTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldAnswer, v))
}

// AnswerLT applies the LT predicate on the "answer" field.
func AnswerLT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldAnswer, v))
}

// AnswerLTE applies the LTE predicate on the "answer" field.
func AnswerLTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldAnswer, v))
}

// AnswerContains applies the Contains predicate on the "answer" field.
func AnswerContains(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContains(FieldAnswer, v))
}

// AnswerHasPrefix applies the HasPrefix predicate on the "answer" field.
func AnswerHasPrefix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasPrefix(FieldAnswer, v))
}

// AnswerHasSuffix applies the HasSuffix predicate on the "answer" field.
func AnswerHasSuffix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasSuffix(FieldAnswer, v))
}

// AnswerEqualFold applies the EqualFold predicate on the "answer" field.
func AnswerEqualFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEqualFold(FieldAnswer, v))
}

// AnswerContainsFold applies the ContainsFold predicate on the "answer" field.
func AnswerContainsFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContainsFold(FieldAnswer, v))
}

// LeadingPersonaEQ applies the EQ predicate on the "leading_persona" field.
func LeadingPersonaEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldLeadingPersona, v))
}

// LeadingPersonaNEQ applies the NEQ predicate on the "leading_persona" field.
func LeadingPersonaNEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldLeadingPersona, v))
}

// LeadingPersonaIn applies the In predicate on the "leading_persona" field.
func LeadingPersonaIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldLeadingPersona, vs...))
}

// LeadingPersonaNotIn applies the NotIn predicate on the "leading_persona" field.
func LeadingPersonaNotIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldLeadingPersona, vs...))
}

// LeadingPersonaGT applies the GT predicate on the "leading_persona" field.
func LeadingPersonaGT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldLeadingPersona, v))
}

// LeadingPersonaGTE applies the GTE predicate on the "leading_persona" field.
func LeadingPersonaGTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldLeadingPersona, v))
}

// LeadingPersonaLT applies the LT predicate on the "leading_persona" field.
func LeadingPersonaLT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldLeadingPersona, v))
}

// LeadingPersonaLTE applies the LTE predicate on the "leading_persona" field.
func LeadingPersonaLTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldLeadingPersona, v))
}

// LeadingPersonaContains applies the Contains predicate on the "leading_persona" field.
func LeadingPersonaContains(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContains(FieldLeadingPersona, v))
}

// LeadingPersonaHasPrefix applies the HasPrefix predicate on the "leading_persona" field.
func LeadingPersonaHasPrefix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasPrefix(FieldLeadingPersona, v))
}

// LeadingPersonaHasSuffix applies the HasSuffix predicate on the "leading_persona" field.
func LeadingPersonaHasSuffix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasSuffix(FieldLeadingPersona, v))
}

// LeadingPersonaEqualFold applies the EqualFold predicate on the "leading_persona" field.
func LeadingPersonaEqualFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEqualFold(FieldLeadingPersona, v))
}

// LeadingPersonaContainsFold applies the ContainsFold predicate on the "leading_persona" field.
func LeadingPersonaContainsFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContainsFold(FieldLeadingPersona, v))
}

// LeadingConfidenceEQ applies the EQ predicate on the "leading_confidence" field.
func LeadingConfidenceEQ(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldLeadingConfidence, v))
}

// LeadingConfidenceNEQ applies the NEQ predicate on the "leading_confidence" field.
func LeadingConfidenceNEQ(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldLeadingConfidence, v))
}

// LeadingConfidenceIn applies the In predicate on the "leading_confidence" field.
func LeadingConfidenceIn(vs ...float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldLeadingConfidence, vs...))
}

// LeadingConfidenceNotIn applies the NotIn predicate on the "leading_confidence" field.
func LeadingConfidenceNotIn(vs ...float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldLeadingConfidence, vs...))
}

// LeadingConfidenceGT applies the GT predicate on the "leading_confidence" field.
func LeadingConfidenceGT(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldLeadingConfidence, v))
}

// LeadingConfidenceGTE applies the GTE predicate on the "leading_confidence" field.
func LeadingConfidenceGTE(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldLeadingConfidence, v))
}

// LeadingConfidenceLT applies the LT predicate on the "leading_confidence" field.
func LeadingConfidenceLT(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldLeadingConfidence, v))
}

// LeadingConfidenceLTE applies the LTE predicate on the "leading_confidence" field.
func LeadingConfidenceLTE(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldLeadingConfidence, v))
}

// TextPersonaEQ applies the EQ predicate on the "text_persona" field.
func TextPersonaEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldTextPersona, v))
}

// TextPersonaNEQ applies the NEQ predicate on the "text_persona" field.
func TextPersonaNEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldTextPersona, v))
}

// TextPersonaIn applies the In predicate on the "text_persona" field.
func TextPersonaIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldTextPersona, vs...))
}

// TextPersonaNotIn applies the NotIn predicate on the "text_persona" field.
func TextPersonaNotIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldTextPersona, vs...))
}

// TextPersonaGT applies the GT predicate on the "text_persona" field.
func TextPersonaGT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldTextPersona, v))
}

// TextPersonaGTE applies the GTE predicate on the "text_persona" field.
func TextPersonaGTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldTextPersona, v))
}

// TextPersonaLT applies the LT predicate on the "text_persona" field.
func TextPersonaLT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldTextPersona, v))
}

// TextPersonaLTE applies the LTE predicate on the "text_persona" field.
func TextPersonaLTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldTextPersona, v))
}

// TextPersonaContains applies the Contains predicate on the "text_persona" field.
func TextPersonaContains(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContains(FieldTextPersona, v))
}

// TextPersonaHasPrefix applies the HasPrefix predicate on the "text_persona" field.
func TextPersonaHasPrefix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasPrefix(FieldTextPersona, v))
}

// TextPersonaHasSuffix applies the HasSuffix predicate on the "text_persona" field.
func TextPersonaHasSuffix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasSuffix(FieldTextPersona, v))
}

// TextPersonaIsNil applies the IsNil predicate on the "text_persona" field.
func TextPersonaIsNil() predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIsNull(FieldTextPersona))
}

// TextPersonaNotNil applies the NotNil predicate on the "text_persona" field.
func TextPersonaNotNil() predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotNull(FieldTextPersona))
}

// TextPersonaEqualFold applies the EqualFold predicate on the "text_persona" field.
func TextPersonaEqualFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEqualFold(FieldTextPersona, v))
}

// TextPersonaContainsFold applies the ContainsFold predicate on the "text_persona" field.
func TextPersonaContainsFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContainsFold(FieldTextPersona, v))
}

// TextConfidenceEQ applies the EQ predicate on the "text_confidence" field.
func TextConfidenceEQ(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldTextConfidence, v))
}

// TextConfidenceNEQ applies the NEQ predicate on the "text_confidence" field.
func TextConfidenceNEQ(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldTextConfidence, v))
}

// TextConfidenceIn applies the In predicate on the "text_confidence" field.
func TextConfidenceIn(vs ...float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldTextConfidence, vs...))
}

// TextConfidenceNotIn applies the NotIn predicate on the "text_confidence" field.
func TextConfidenceNotIn(vs ...float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldTextConfidence, vs...))
}

// TextConfidenceGT applies the GT predicate on the "text_confidence" field.
func TextConfidenceGT(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldTextConfidence, v))
}

// TextConfidenceGTE applies the GTE predicate on the "text_confidence" field.
func TextConfidenceGTE(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldTextConfidence, v))
}

// TextConfidenceLT applies the LT predicate on the "text_confidence" field.
func TextConfidenceLT(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldTextConfidence, v))
}

// TextConfidenceLTE applies the LTE predicate on the "text_confidence" field.
func TextConfidenceLTE(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldTextConfidence, v))
}

// TextConfidenceIsNil applies the IsNil predicate on the "text_confidence" field.
func TextConfidenceIsNil() predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIsNull(FieldTextConfidence))
}

// TextConfidenceNotNil applies the NotNil predicate on the "text_confidence" field.
func TextConfidenceNotNil() predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotNull(FieldTextConfidence))
}

// IndicatorsIsNil applies the IsNil predicate on the "indicators" field.
func IndicatorsIsNil() predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIsNull(FieldIndicators))
}

// IndicatorsNotNil applies the NotNil predicate on the "indicators" field.
func IndicatorsNotNil() predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotNull(FieldIndicators))
}

// BehavioralPatternsIsNil applies the IsNil predicate on the "behavioral_patterns" field.
func BehavioralPatternsIsNil() predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIsNull(FieldBehavioralPatterns))
}

// BehavioralPatternsNotNil applies the NotNil predicate on the "behavioral_patterns" field.
func BehavioralPatternsNotNil() predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotNull(FieldBehavioralPatterns))
}

// TypingCpmEQ applies the EQ predicate on the "typing_cpm" field.
func TypingCpmEQ(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldTypingCpm, v))
}

// TypingCpmNEQ applies the NEQ predicate on the "typing_cpm" field.
func TypingCpmNEQ(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldTypingCpm, v))
}

// TypingCpmIn applies the In predicate on the "typing_cpm" field.
func TypingCpmIn(vs ...float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldTypingCpm, vs...))
}

// TypingCpmNotIn applies the NotIn predicate on the "typing_cpm" field.
func TypingCpmNotIn(vs ...float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldTypingCpm, vs...))
}

// TypingCpmGT applies the GT predicate on the "typing_cpm" field.
func TypingCpmGT(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldTypingCpm, v))
}

// TypingCpmGTE applies the GTE predicate on the "typing_cpm" field.
func TypingCpmGTE(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldTypingCpm, v))
}

// TypingCpmLT applies the LT predicate on the "typing_cpm" field.
func TypingCpmLT(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldTypingCpm, v))
}

// TypingCpmLTE applies the LTE predicate on the "typing_cpm" field.
func TypingCpmLTE(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldTypingCpm, v))
}

// TypingCpmIsNil applies the IsNil predicate on the "typing_cpm" field.
func TypingCpmIsNil() predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIsNull(FieldTypingCpm))
}

// TypingCpmNotNil applies the NotNil predicate on the "typing_cpm" field.
func TypingCpmNotNil() predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotNull(FieldTypingCpm))
}

// TypingMsEQ applies the EQ predicate on the "typing_ms" field.
func TypingMsEQ(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldTypingMs, v))
}

// TypingMsNEQ applies the NEQ predicate on the "typing_ms" field.
func TypingMsNEQ(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldTypingMs, v))
}

// TypingMsIn applies the In predicate on the "typing_ms" field.
func TypingMsIn(vs ...int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldTypingMs, vs...))
}

// TypingMsNotIn applies the NotIn predicate on the "typing_ms" field.
func TypingMsNotIn(vs ...int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldTypingMs, vs...))
}

// TypingMsGT applies the GT predicate on the "typing_ms" field.
func TypingMsGT(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldTypingMs, v))
}

// TypingMsGTE applies the GTE predicate on the "typing_ms" field.
func TypingMsGTE(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldTypingMs, v))
}

// TypingMsLT applies the LT predicate on the "typing_ms" field.
func TypingMsLT(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldTypingMs, v))
}

// TypingMsLTE applies the LTE predicate on the "typing_ms" field.
func TypingMsLTE(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldTypingMs, v))
}

// TypingMsIsNil applies the IsNil predicate on the "typing_ms" field.
func TypingMsIsNil() predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIsNull(FieldTypingMs))
}

// TypingMsNotNil applies the NotNil predicate on the "typing_ms" field.
func TypingMsNotNil() predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotNull(FieldTypingMs))
}

// PausesEQ applies the EQ predicate on the "pauses" field.
func PausesEQ(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldPauses, v))
}

// PausesNEQ applies the NEQ predicate on the "pauses" field.
func PausesNEQ(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldPauses, v))
}

// PausesIn applies the In predicate on the "pauses" field.
func PausesIn(vs ...int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldPauses, vs...))
}

// PausesNotIn applies the NotIn predicate on the "pauses" field.
func PausesNotIn(vs ...int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldPauses, vs...))
}

// PausesGT applies the GT predicate on the "pauses" field.
func PausesGT(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldPauses, v))
}

// PausesGTE applies the GTE predicate on the "pauses" field.
func PausesGTE(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldPauses, v))
}

// PausesLT applies the LT predicate on the "pauses" field.
func PausesLT(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldPauses, v))
}

// PausesLTE applies the LTE predicate on the "pauses" field.
func PausesLTE(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldPauses, v))
}

// PausesIsNil applies the IsNil predicate on the "pauses" field.
func PausesIsNil() predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIsNull(FieldPauses))
}

// PausesNotNil applies the NotNil predicate on the "pauses" field.
func PausesNotNil() predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotNull(FieldPauses))
}

// HesitationsEQ applies the EQ predicate on the "hesitations" field.
func HesitationsEQ(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldHesitations, v))
}

// HesitationsNEQ applies the NEQ predicate on the "hesitations" field.
func HesitationsNEQ(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldHesitations, v))
}

// HesitationsIn applies the In predicate on the "hesitations" field.
func HesitationsIn(vs ...int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldHesitations, vs...))
}

// HesitationsNotIn applies the NotIn predicate on the "hesitations" field.
func HesitationsNotIn(vs ...int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldHesitations, vs...))
}

// HesitationsGT applies the GT predicate on the "hesitations" field.
func HesitationsGT(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldHesitations, v))
}

// HesitationsGTE applies the GTE predicate on the "hesitations" field.
func HesitationsGTE(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldHesitations, v))
}

// HesitationsLT applies the LT predicate on the "hesitations" field.
func HesitationsLT(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldHesitations, v))
}

// HesitationsLTE applies the LTE predicate on the "hesitations" field.
func HesitationsLTE(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldHesitations, v))
}

// HesitationsIsNil applies the IsNil predicate on the "hesitations" field.
func HesitationsIsNil() predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIsNull(FieldHesitations))
}

// HesitationsNotNil applies the NotNil predicate on the "hesitations" field.
func HesitationsNotNil() predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotNull(FieldHesitations))
}

// BackspacesEQ applies the EQ predicate on the "backspaces" field.
func BackspacesEQ(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldBackspaces, v))
}

// BackspacesNEQ applies the NEQ predicate on the "backspaces" field.
func BackspacesNEQ(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldBackspaces, v))
}

// BackspacesIn applies the In predicate on the "backspaces" field.
func BackspacesIn(vs ...int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldBackspaces, vs...))
}

// BackspacesNotIn applies the NotIn predicate on the "backspaces" field.
func BackspacesNotIn(vs ...int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldBackspaces, vs...))
}

// BackspacesGT applies the GT predicate on the "backspaces" field.
func BackspacesGT(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldBackspaces, v))
}

// BackspacesGTE applies the GTE predicate on the "backspaces" field.
func BackspacesGTE(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldBackspaces, v))
}

// BackspacesLT applies the LT predicate on the "backspaces" field.
func BackspacesLT(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldBackspaces, v))
}

// BackspacesLTE applies the LTE predicate on the "backspaces" field.
func BackspacesLTE(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldBackspaces, v))
}

// BackspacesIsNil applies the IsNil predicate on the "backspaces" field.
func BackspacesIsNil() predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIsNull(FieldBackspaces))
}

// BackspacesNotNil applies the NotNil predicate on the "backspaces" field.
func BackspacesNotNil() predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotNull(FieldBackspaces))
}

// PastesEQ applies the EQ predicate on the "pastes" field.
func PastesEQ(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldPastes, v))
}

// PastesNEQ applies the NEQ predicate on the "pastes" field.
func PastesNEQ(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldPastes, v))
}

// PastesIn applies the In predicate on the "pastes" field.
func PastesIn(vs ...int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldPastes, vs...))
}

// PastesNotIn applies the NotIn predicate on the "pastes" field.
func PastesNotIn(vs ...int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldPastes, vs...))
}

// PastesGT applies the GT predicate on the "pastes" field.
func PastesGT(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldPastes, v))
}

// PastesGTE applies the GTE predicate on the "pastes" field.
func PastesGTE(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldPastes, v))
}

// PastesLT applies the LT predicate on the "pastes" field.
func PastesLT(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldPastes, v))
}

// PastesLTE applies the LTE predicate on the "pastes" field.
func PastesLTE(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldPastes, v))
}

// PastesIsNil applies the IsNil predicate on the "pastes" field.
func PastesIsNil() predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIsNull(FieldPastes))
}

// PastesNotNil applies the NotNil predicate on the "pastes" field.
func PastesNotNil() predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotNull(FieldPastes))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ResponseEvent) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ResponseEvent) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ResponseEvent) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.NotPredicates(p))
}
