// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/madboat/madboat/ent/llmrequestevent"
	"github.com/madboat/madboat/ent/quizevent"
	"github.com/madboat/madboat/ent/refinementevent"
	"github.com/madboat/madboat/ent/responseevent"
	"github.com/madboat/madboat/ent/schema"
	"github.com/madboat/madboat/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	quizeventMixin := schema.QuizEvent{}.Mixin()
	quizeventMixinFields0 := quizeventMixin[0].Fields()
	_ = quizeventMixinFields0
	quizeventFields := schema.QuizEvent{}.Fields()
	_ = quizeventFields
	// quizeventDescTimestamp is the schema descriptor for timestamp field.
	quizeventDescTimestamp := quizeventMixinFields0[1].Descriptor()
	// quizevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizevent.DefaultTimestamp = quizeventDescTimestamp.Default.(func() time.Time)
	// quizeventDescSessionID is the schema descriptor for session_id field.
	quizeventDescSessionID := quizeventFields[0].Descriptor()
	// quizevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	quizevent.SessionIDValidator = quizeventDescSessionID.Validators[0].(func(string) error)
	// quizeventDescBankVersion is the schema descriptor for bank_version field.
	quizeventDescBankVersion := quizeventFields[1].Descriptor()
	// quizevent.BankVersionValidator is a validator for the "bank_version" field. It is called by the builders before save.
	quizevent.BankVersionValidator = quizeventDescBankVersion.Validators[0].(func(string) error)
	// quizeventDescPersona is the schema descriptor for persona field.
	quizeventDescPersona := quizeventFields[2].Descriptor()
	// quizevent.PersonaValidator is a validator for the "persona" field. It is called by the builders before save.
	quizevent.PersonaValidator = quizeventDescPersona.Validators[0].(func(string) error)
	// quizeventDescReason is the schema descriptor for reason field.
	quizeventDescReason := quizeventFields[4].Descriptor()
	// quizevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	quizevent.ReasonValidator = quizeventDescReason.Validators[0].(func(string) error)
	refinementeventMixin := schema.RefinementEvent{}.Mixin()
	refinementeventMixinFields0 := refinementeventMixin[0].Fields()
	_ = refinementeventMixinFields0
	refinementeventFields := schema.RefinementEvent{}.Fields()
	_ = refinementeventFields
	// refinementeventDescTimestamp is the schema descriptor for timestamp field.
	refinementeventDescTimestamp := refinementeventMixinFields0[1].Descriptor()
	// refinementevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	refinementevent.DefaultTimestamp = refinementeventDescTimestamp.Default.(func() time.Time)
	// refinementeventDescModel is the schema descriptor for model field.
	refinementeventDescModel := refinementeventFields[5].Descriptor()
	// refinementevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	refinementevent.ModelValidator = refinementeventDescModel.Validators[0].(func(string) error)
	// refinementeventDescReasoning is the schema descriptor for reasoning field.
	refinementeventDescReasoning := refinementeventFields[6].Descriptor()
	// refinementevent.DefaultReasoning holds the default value on creation for the reasoning field.
	refinementevent.DefaultReasoning = refinementeventDescReasoning.Default.(string)
	responseeventMixin := schema.ResponseEvent{}.Mixin()
	responseeventMixinFields0 := responseeventMixin[0].Fields()
	_ = responseeventMixinFields0
	responseeventFields := schema.ResponseEvent{}.Fields()
	_ = responseeventFields
	// responseeventDescTimestamp is the schema descriptor for timestamp field.
	responseeventDescTimestamp := responseeventMixinFields0[1].Descriptor()
	// responseevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	responseevent.DefaultTimestamp = responseeventDescTimestamp.Default.(func() time.Time)
	// responseeventDescSessionID is the schema descriptor for session_id field.
	responseeventDescSessionID := responseeventFields[0].Descriptor()
	// responseevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	responseevent.SessionIDValidator = responseeventDescSessionID.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescSessionID is the schema descriptor for session_id field.
	snapshotDescSessionID := snapshotFields[0].Descriptor()
	// snapshot.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	snapshot.SessionIDValidator = snapshotDescSessionID.Validators[0].(func(string) error)
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[2].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	// snapshotDescDone is the schema descriptor for done field.
	snapshotDescDone := snapshotFields[3].Descriptor()
	// snapshot.DefaultDone holds the default value on creation for the done field.
	snapshot.DefaultDone = snapshotDescDone.Default.(bool)
}
