// Code generated by ent, DO NOT EDIT.

package refinementevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/madboat/madboat/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldEQ(FieldSessionID, v))
}

// RulePersona applies equality check predicate on the "rule_persona" field. It's identical to RulePersonaEQ.
func RulePersona(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldEQ(FieldRulePersona, v))
}

// RuleConfidence applies equality check predicate on the "rule_confidence" field. It's identical to RuleConfidenceEQ.
func RuleConfidence(v float64) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldEQ(FieldRuleConfidence, v))
}

// ModelPersona applies equality check predicate on the "model_persona" field. It's identical to ModelPersonaEQ.
func ModelPersona(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldEQ(FieldModelPersona, v))
}

// ModelConfidence applies equality check predicate on the "model_confidence" field. It's identical to ModelConfidenceEQ.
func ModelConfidence(v float64) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldEQ(FieldModelConfidence, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldEQ(FieldModel, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldEQ(FieldReasoning, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// RulePersonaEQ applies the EQ predicate on the "rule_persona" field.
func RulePersonaEQ(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldEQ(FieldRulePersona, v))
}

// RulePersonaNEQ applies the NEQ predicate on the "rule_persona" field.
func RulePersonaNEQ(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldNEQ(FieldRulePersona, v))
}

// RulePersonaIn applies the In predicate on the "rule_persona" field.
func RulePersonaIn(vs ...string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldIn(FieldRulePersona, vs...))
}

// RulePersonaNotIn applies the NotIn predicate on the "rule_persona" field.
func RulePersonaNotIn(vs ...string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldNotIn(FieldRulePersona, vs...))
}

// RulePersonaGT applies the GT predicate on the "rule_persona" field.
func RulePersonaGT(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldGT(FieldRulePersona, v))
}

// RulePersonaGTE applies the GTE predicate on the "rule_persona" field.
func RulePersonaGTE(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldGTE(FieldRulePersona, v))
}

// RulePersonaLT applies the LT predicate on the "rule_persona" field.
func RulePersonaLT(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldLT(FieldRulePersona, v))
}

// RulePersonaLTE applies the LTE predicate on the "rule_persona" field.
func RulePersonaLTE(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldLTE(FieldRulePersona, v))
}

// RulePersonaContains applies the Contains predicate on the "rule_persona" field.
func RulePersonaContains(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldContains(FieldRulePersona, v))
}

// RulePersonaHasPrefix applies the HasPrefix predicate on the "rule_persona" field.
func RulePersonaHasPrefix(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldHasPrefix(FieldRulePersona, v))
}

// RulePersonaHasSuffix applies the HasSuffix predicate on the "rule_persona" field.
func RulePersonaHasSuffix(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldHasSuffix(FieldRulePersona, v))
}

// RulePersonaEqualFold applies the EqualFold predicate on the "rule_persona" field.
func RulePersonaEqualFold(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldEqualFold(FieldRulePersona, v))
}

// RulePersonaContainsFold applies the ContainsFold predicate on the "rule_persona" field.
func RulePersonaContainsFold(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldContainsFold(FieldRulePersona, v))
}

// RuleConfidenceEQ applies the EQ predicate on the "rule_confidence" field.
func RuleConfidenceEQ(v float64) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldEQ(FieldRuleConfidence, v))
}

// RuleConfidenceNEQ applies the NEQ predicate on the "rule_confidence" field.
func RuleConfidenceNEQ(v float64) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldNEQ(FieldRuleConfidence, v))
}

// RuleConfidenceIn applies the In predicate on the "rule_confidence" field.
func RuleConfidenceIn(vs ...float64) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldIn(FieldRuleConfidence, vs...))
}

// RuleConfidenceNotIn applies the NotIn predicate on the "rule_confidence" field.
func RuleConfidenceNotIn(vs ...float64) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldNotIn(FieldRuleConfidence, vs...))
}

// RuleConfidenceGT applies the GT predicate on the "rule_confidence" field.
func RuleConfidenceGT(v float64) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldGT(FieldRuleConfidence, v))
}

// RuleConfidenceGTE applies the GTE predicate on the "rule_confidence" field.
func RuleConfidenceGTE(v float64) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldGTE(FieldRuleConfidence, v))
}

// RuleConfidenceLT applies the LT predicate on the "rule_confidence" field.
func RuleConfidenceLT(v float64) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldLT(FieldRuleConfidence, v))
}

// RuleConfidenceLTE applies the LTE predicate on the "rule_confidence" field.
func RuleConfidenceLTE(v float64) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldLTE(FieldRuleConfidence, v))
}

// ModelPersonaEQ applies the EQ predicate on the "model_persona" field.
func ModelPersonaEQ(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldEQ(FieldModelPersona, v))
}

// ModelPersonaNEQ applies the NEQ predicate on the "model_persona" field.
func ModelPersonaNEQ(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldNEQ(FieldModelPersona, v))
}

// ModelPersonaIn applies the In predicate on the "model_persona" field.
func ModelPersonaIn(vs ...string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldIn(FieldModelPersona, vs...))
}

// ModelPersonaNotIn applies the NotIn predicate on the "model_persona" field.
func ModelPersonaNotIn(vs ...string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldNotIn(FieldModelPersona, vs...))
}

// ModelPersonaGT applies the GT predicate on the "model_persona" field.
func ModelPersonaGT(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldGT(FieldModelPersona, v))
}

// ModelPersonaGTE applies the GTE predicate on the "model_persona" field.
func ModelPersonaGTE(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldGTE(FieldModelPersona, v))
}

// ModelPersonaLT applies the LT predicate on the "model_persona" field.
func ModelPersonaLT(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldLT(FieldModelPersona, v))
}

// ModelPersonaLTE applies the LTE predicate on the "model_persona" field.
func ModelPersonaLTE(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldLTE(FieldModelPersona, v))
}

// ModelPersonaContains applies the Contains predicate on the "model_persona" field.
func ModelPersonaContains(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldContains(FieldModelPersona, v))
}

// ModelPersonaHasPrefix applies the HasPrefix predicate on the "model_persona" field.
func ModelPersonaHasPrefix(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldHasPrefix(FieldModelPersona, v))
}

// ModelPersonaHasSuffix applies the HasSuffix predicate on the "model_persona" field.
func ModelPersonaHasSuffix(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldHasSuffix(FieldModelPersona, v))
}

// ModelPersonaEqualFold applies the EqualFold predicate on the "model_persona" field.
func ModelPersonaEqualFold(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldEqualFold(FieldModelPersona, v))
}

// ModelPersonaContainsFold applies the ContainsFold predicate on the "model_persona" field.
func ModelPersonaContainsFold(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldContainsFold(FieldModelPersona, v))
}

// ModelConfidenceEQ applies the EQ predicate on the "model_confidence" field.
func ModelConfidenceEQ(v float64) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldEQ(FieldModelConfidence, v))
}

// ModelConfidenceNEQ applies the NEQ predicate on the "model_confidence" field.
func ModelConfidenceNEQ(v float64) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldNEQ(FieldModelConfidence, v))
}

// ModelConfidenceIn applies the In predicate on the "model_confidence" field.
func ModelConfidenceIn(vs ...float64) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldIn(FieldModelConfidence, vs...))
}

// ModelConfidenceNotIn applies the NotIn predicate on the "model_confidence" field.
func ModelConfidenceNotIn(vs ...float64) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldNotIn(FieldModelConfidence, vs...))
}

// ModelConfidenceGT applies the GT predicate on the "model_confidence" field.
func ModelConfidenceGT(v float64) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldGT(FieldModelConfidence, v))
}

// ModelConfidenceGTE applies the GTE predicate on the "model_confidence" field.
func ModelConfidenceGTE(v float64) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldGTE(FieldModelConfidence, v))
}

// ModelConfidenceLT applies the LT predicate on the "model_confidence" field.
func ModelConfidenceLT(v float64) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldLT(FieldModelConfidence, v))
}

// ModelConfidenceLTE applies the LTE predicate on the "model_confidence" field.
func ModelConfidenceLTE(v float64) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldLTE(FieldModelConfidence, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldContainsFold(FieldModel, v))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.FieldContainsFold(FieldReasoning, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RefinementEvent) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RefinementEvent) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RefinementEvent) predicate.RefinementEvent {
	return predicate.RefinementEvent(sql.NotPredicates(p))
}
