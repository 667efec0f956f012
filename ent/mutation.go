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
	"github.com/madboat/madboat/ent/llmrequestevent"
	"github.com/madboat/madboat/ent/predicate"
	"github.com/madboat/madboat/ent/quizevent"
	"github.com/madboat/madboat/ent/refinementevent"
	"github.com/madboat/madboat/ent/responseevent"
	"github.com/madboat/madboat/ent/snapshot"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeLLMRequestEvent = "LLMRequestEvent"
	TypeQuizEvent       = "QuizEvent"
	TypeRefinementEvent = "RefinementEvent"
	TypeResponseEvent   = "ResponseEvent"
	TypeSnapshot        = "Snapshot"
)

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	request_body     *string
	response_body    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *LLMRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LLMRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *LLMRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LLMRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LLMRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
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

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// SetRequestBody sets the "request_body" field.
func (m *LLMRequestEventMutation) SetRequestBody(s string) {
	m.request_body = &s
}

// RequestBody returns the value of the "request_body" field in the mutation.
func (m *LLMRequestEventMutation) RequestBody() (r string, exists bool) {
	v := m.request_body
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestBody returns the old "request_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldRequestBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestBody: %w", err)
	}
	return oldValue.RequestBody, nil
}

// ResetRequestBody resets all changes to the "request_body" field.
func (m *LLMRequestEventMutation) ResetRequestBody() {
	m.request_body = nil
}

// SetResponseBody sets the "response_body" field.
func (m *LLMRequestEventMutation) SetResponseBody(s string) {
	m.response_body = &s
}

// ResponseBody returns the value of the "response_body" field in the mutation.
func (m *LLMRequestEventMutation) ResponseBody() (r string, exists bool) {
	v := m.response_body
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseBody returns the old "response_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldResponseBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseBody: %w", err)
	}
	return oldValue.ResponseBody, nil
}

// ResetResponseBody resets all changes to the "response_body" field.
func (m *LLMRequestEventMutation) ResetResponseBody() {
	m.response_body = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.sequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	if m.request_body != nil {
		fields = append(fields, llmrequestevent.FieldRequestBody)
	}
	if m.response_body != nil {
		fields = append(fields, llmrequestevent.FieldResponseBody)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.Sequence()
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	case llmrequestevent.FieldRequestBody:
		return m.RequestBody()
	case llmrequestevent.FieldResponseBody:
		return m.ResponseBody()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llmrequestevent.FieldRequestBody:
		return m.OldRequestBody(ctx)
	case llmrequestevent.FieldResponseBody:
		return m.OldResponseBody(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llmrequestevent.FieldRequestBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestBody(v)
		return nil
	case llmrequestevent.FieldResponseBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseBody(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.AddedSequence()
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llmrequestevent.FieldRequestBody:
		m.ResetRequestBody()
		return nil
	case llmrequestevent.FieldResponseBody:
		m.ResetResponseBody()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// QuizEventMutation represents an operation that mutates the QuizEvent nodes in the graph.
type QuizEventMutation struct {
	config
	op             Op
	typ            string
	id             *int
	sequence       *int64
	addsequence    *int64
	timestamp      *time.Time
	session_id     *string
	bank_version   *string
	persona        *string
	confidence     *float64
	addconfidence  *float64
	reason         *string
	answered       *int
	addanswered    *int
	scores         *map[string]float64
	evidence       *[]string
	appendevidence []string
	started_at     *time.Time
	finished_at    *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*QuizEvent, error)
	predicates     []predicate.QuizEvent
}

var _ ent.Mutation = (*QuizEventMutation)(nil)

// quizeventOption allows management of the mutation configuration using functional options.
type quizeventOption func(*QuizEventMutation)

// newQuizEventMutation creates new mutation for the QuizEvent entity.
func newQuizEventMutation(c config, op Op, opts ...quizeventOption) *QuizEventMutation {
	m := &QuizEventMutation{
		config:        c,
		op:            op,
		typ:           TypeQuizEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuizEventID sets the ID field of the mutation.
func withQuizEventID(id int) quizeventOption {
	return func(m *QuizEventMutation) {
		var (
			err   error
			once  sync.Once
			value *QuizEvent
		)
		m.oldValue = func(ctx context.Context) (*QuizEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuizEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuizEvent sets the old QuizEvent of the mutation.
func withQuizEvent(node *QuizEvent) quizeventOption {
	return func(m *QuizEventMutation) {
		m.oldValue = func(context.Context) (*QuizEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuizEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuizEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuizEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuizEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuizEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *QuizEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *QuizEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the QuizEvent entity.
// If the QuizEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *QuizEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *QuizEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *QuizEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *QuizEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *QuizEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the QuizEvent entity.
// If the QuizEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *QuizEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *QuizEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *QuizEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the QuizEvent entity.
// If the QuizEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
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
func (m *QuizEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetBankVersion sets the "bank_version" field.
func (m *QuizEventMutation) SetBankVersion(s string) {
	m.bank_version = &s
}

// BankVersion returns the value of the "bank_version" field in the mutation.
func (m *QuizEventMutation) BankVersion() (r string, exists bool) {
	v := m.bank_version
	if v == nil {
		return
	}
	return *v, true
}

// OldBankVersion returns the old "bank_version" field's value of the QuizEvent entity.
// If the QuizEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizEventMutation) OldBankVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBankVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBankVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBankVersion: %w", err)
	}
	return oldValue.BankVersion, nil
}

// ResetBankVersion resets all changes to the "bank_version" field.
func (m *QuizEventMutation) ResetBankVersion() {
	m.bank_version = nil
}

// SetPersona sets the "persona" field.
func (m *QuizEventMutation) SetPersona(s string) {
	m.persona = &s
}

// Persona returns the value of the "persona" field in the mutation.
func (m *QuizEventMutation) Persona() (r string, exists bool) {
	v := m.persona
	if v == nil {
		return
	}
	return *v, true
}

// OldPersona returns the old "persona" field's value of the QuizEvent entity.
// If the QuizEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizEventMutation) OldPersona(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersona is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersona requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersona: %w", err)
	}
	return oldValue.Persona, nil
}

// ResetPersona resets all changes to the "persona" field.
func (m *QuizEventMutation) ResetPersona() {
	m.persona = nil
}

// SetConfidence sets the "confidence" field.
func (m *QuizEventMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *QuizEventMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the QuizEvent entity.
// If the QuizEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizEventMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *QuizEventMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *QuizEventMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *QuizEventMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetReason sets the "reason" field.
func (m *QuizEventMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *QuizEventMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the QuizEvent entity.
// If the QuizEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizEventMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *QuizEventMutation) ResetReason() {
	m.reason = nil
}

// SetAnswered sets the "answered" field.
func (m *QuizEventMutation) SetAnswered(i int) {
	m.answered = &i
	m.addanswered = nil
}

// Answered returns the value of the "answered" field in the mutation.
func (m *QuizEventMutation) Answered() (r int, exists bool) {
	v := m.answered
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswered returns the old "answered" field's value of the QuizEvent entity.
// If the QuizEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizEventMutation) OldAnswered(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswered: %w", err)
	}
	return oldValue.Answered, nil
}

// AddAnswered adds i to the "answered" field.
func (m *QuizEventMutation) AddAnswered(i int) {
	if m.addanswered != nil {
		*m.addanswered += i
	} else {
		m.addanswered = &i
	}
}

// AddedAnswered returns the value that was added to the "answered" field in this mutation.
func (m *QuizEventMutation) AddedAnswered() (r int, exists bool) {
	v := m.addanswered
	if v == nil {
		return
	}
	return *v, true
}

// ResetAnswered resets all changes to the "answered" field.
func (m *QuizEventMutation) ResetAnswered() {
	m.answered = nil
	m.addanswered = nil
}

// SetScores sets the "scores" field.
func (m *QuizEventMutation) SetScores(value map[string]float64) {
	m.scores = &value
}

// Scores returns the value of the "scores" field in the mutation.
func (m *QuizEventMutation) Scores() (r map[string]float64, exists bool) {
	v := m.scores
	if v == nil {
		return
	}
	return *v, true
}

// OldScores returns the old "scores" field's value of the QuizEvent entity.
// If the QuizEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizEventMutation) OldScores(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScores: %w", err)
	}
	return oldValue.Scores, nil
}

// ResetScores resets all changes to the "scores" field.
func (m *QuizEventMutation) ResetScores() {
	m.scores = nil
}

// SetEvidence sets the "evidence" field.
func (m *QuizEventMutation) SetEvidence(s []string) {
	m.evidence = &s
	m.appendevidence = nil
}

// Evidence returns the value of the "evidence" field in the mutation.
func (m *QuizEventMutation) Evidence() (r []string, exists bool) {
	v := m.evidence
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidence returns the old "evidence" field's value of the QuizEvent entity.
// If the QuizEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizEventMutation) OldEvidence(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidence: %w", err)
	}
	return oldValue.Evidence, nil
}

// AppendEvidence adds s to the "evidence" field.
func (m *QuizEventMutation) AppendEvidence(s []string) {
	m.appendevidence = append(m.appendevidence, s...)
}

// AppendedEvidence returns the list of values that were appended to the "evidence" field in this mutation.
func (m *QuizEventMutation) AppendedEvidence() ([]string, bool) {
	if len(m.appendevidence) == 0 {
		return nil, false
	}
	return m.appendevidence, true
}

// ClearEvidence clears the value of the "evidence" field.
func (m *QuizEventMutation) ClearEvidence() {
	m.evidence = nil
	m.appendevidence = nil
	m.clearedFields[quizevent.FieldEvidence] = struct{}{}
}

// EvidenceCleared returns if the "evidence" field was cleared in this mutation.
func (m *QuizEventMutation) EvidenceCleared() bool {
	_, ok := m.clearedFields[quizevent.FieldEvidence]
	return ok
}

// ResetEvidence resets all changes to the "evidence" field.
func (m *QuizEventMutation) ResetEvidence() {
	m.evidence = nil
	m.appendevidence = nil
	delete(m.clearedFields, quizevent.FieldEvidence)
}

// SetStartedAt sets the "started_at" field.
func (m *QuizEventMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *QuizEventMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the QuizEvent entity.
// If the QuizEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizEventMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *QuizEventMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *QuizEventMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *QuizEventMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the QuizEvent entity.
// If the QuizEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizEventMutation) OldFinishedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *QuizEventMutation) ResetFinishedAt() {
	m.finished_at = nil
}

// Where appends a list predicates to the QuizEventMutation builder.
func (m *QuizEventMutation) Where(ps ...predicate.QuizEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuizEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuizEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuizEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuizEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuizEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuizEvent).
func (m *QuizEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuizEventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.sequence != nil {
		fields = append(fields, quizevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, quizevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, quizevent.FieldSessionID)
	}
	if m.bank_version != nil {
		fields = append(fields, quizevent.FieldBankVersion)
	}
	if m.persona != nil {
		fields = append(fields, quizevent.FieldPersona)
	}
	if m.confidence != nil {
		fields = append(fields, quizevent.FieldConfidence)
	}
	if m.reason != nil {
		fields = append(fields, quizevent.FieldReason)
	}
	if m.answered != nil {
		fields = append(fields, quizevent.FieldAnswered)
	}
	if m.scores != nil {
		fields = append(fields, quizevent.FieldScores)
	}
	if m.evidence != nil {
		fields = append(fields, quizevent.FieldEvidence)
	}
	if m.started_at != nil {
		fields = append(fields, quizevent.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, quizevent.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuizEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case quizevent.FieldSequence:
		return m.Sequence()
	case quizevent.FieldTimestamp:
		return m.Timestamp()
	case quizevent.FieldSessionID:
		return m.SessionID()
	case quizevent.FieldBankVersion:
		return m.BankVersion()
	case quizevent.FieldPersona:
		return m.Persona()
	case quizevent.FieldConfidence:
		return m.Confidence()
	case quizevent.FieldReason:
		return m.Reason()
	case quizevent.FieldAnswered:
		return m.Answered()
	case quizevent.FieldScores:
		return m.Scores()
	case quizevent.FieldEvidence:
		return m.Evidence()
	case quizevent.FieldStartedAt:
		return m.StartedAt()
	case quizevent.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuizEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case quizevent.FieldSequence:
		return m.OldSequence(ctx)
	case quizevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case quizevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case quizevent.FieldBankVersion:
		return m.OldBankVersion(ctx)
	case quizevent.FieldPersona:
		return m.OldPersona(ctx)
	case quizevent.FieldConfidence:
		return m.OldConfidence(ctx)
	case quizevent.FieldReason:
		return m.OldReason(ctx)
	case quizevent.FieldAnswered:
		return m.OldAnswered(ctx)
	case quizevent.FieldScores:
		return m.OldScores(ctx)
	case quizevent.FieldEvidence:
		return m.OldEvidence(ctx)
	case quizevent.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case quizevent.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QuizEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case quizevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case quizevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case quizevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case quizevent.FieldBankVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBankVersion(v)
		return nil
	case quizevent.FieldPersona:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersona(v)
		return nil
	case quizevent.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case quizevent.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case quizevent.FieldAnswered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswered(v)
		return nil
	case quizevent.FieldScores:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScores(v)
		return nil
	case quizevent.FieldEvidence:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidence(v)
		return nil
	case quizevent.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case quizevent.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QuizEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuizEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, quizevent.FieldSequence)
	}
	if m.addconfidence != nil {
		fields = append(fields, quizevent.FieldConfidence)
	}
	if m.addanswered != nil {
		fields = append(fields, quizevent.FieldAnswered)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuizEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case quizevent.FieldSequence:
		return m.AddedSequence()
	case quizevent.FieldConfidence:
		return m.AddedConfidence()
	case quizevent.FieldAnswered:
		return m.AddedAnswered()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case quizevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case quizevent.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case quizevent.FieldAnswered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAnswered(v)
		return nil
	}
	return fmt.Errorf("unknown QuizEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuizEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(quizevent.FieldEvidence) {
		fields = append(fields, quizevent.FieldEvidence)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuizEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuizEventMutation) ClearField(name string) error {
	switch name {
	case quizevent.FieldEvidence:
		m.ClearEvidence()
		return nil
	}
	return fmt.Errorf("unknown QuizEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuizEventMutation) ResetField(name string) error {
	switch name {
	case quizevent.FieldSequence:
		m.ResetSequence()
		return nil
	case quizevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case quizevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case quizevent.FieldBankVersion:
		m.ResetBankVersion()
		return nil
	case quizevent.FieldPersona:
		m.ResetPersona()
		return nil
	case quizevent.FieldConfidence:
		m.ResetConfidence()
		return nil
	case quizevent.FieldReason:
		m.ResetReason()
		return nil
	case quizevent.FieldAnswered:
		m.ResetAnswered()
		return nil
	case quizevent.FieldScores:
		m.ResetScores()
		return nil
	case quizevent.FieldEvidence:
		m.ResetEvidence()
		return nil
	case quizevent.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case quizevent.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown QuizEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuizEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuizEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuizEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuizEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuizEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuizEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuizEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QuizEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuizEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QuizEvent edge %s", name)
}

// RefinementEventMutation represents an operation that mutates the RefinementEvent nodes in the graph.
type RefinementEventMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	sequence            *int64
	addsequence         *int64
	timestamp           *time.Time
	session_id          *string
	rule_persona        *string
	rule_confidence     *float64
	addrule_confidence  *float64
	model_persona       *string
	model_confidence    *float64
	addmodel_confidence *float64
	model               *string
	reasoning           *string
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*RefinementEvent, error)
	predicates          []predicate.RefinementEvent
}

var _ ent.Mutation = (*RefinementEventMutation)(nil)

// refinementeventOption allows management of the mutation configuration using functional options.
type refinementeventOption func(*RefinementEventMutation)

// newRefinementEventMutation creates new mutation for the RefinementEvent entity.
func newRefinementEventMutation(c config, op Op, opts ...refinementeventOption) *RefinementEventMutation {
	m := &RefinementEventMutation{
		config:        c,
		op:            op,
		typ:           TypeRefinementEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRefinementEventID sets the ID field of the mutation.
func withRefinementEventID(id int) refinementeventOption {
	return func(m *RefinementEventMutation) {
		var (
			err   error
			once  sync.Once
			value *RefinementEvent
		)
		m.oldValue = func(ctx context.Context) (*RefinementEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RefinementEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRefinementEvent sets the old RefinementEvent of the mutation.
func withRefinementEvent(node *RefinementEvent) refinementeventOption {
	return func(m *RefinementEventMutation) {
		m.oldValue = func(context.Context) (*RefinementEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RefinementEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RefinementEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RefinementEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RefinementEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RefinementEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *RefinementEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *RefinementEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the RefinementEvent entity.
// If the RefinementEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefinementEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *RefinementEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *RefinementEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *RefinementEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *RefinementEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *RefinementEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the RefinementEvent entity.
// If the RefinementEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefinementEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *RefinementEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *RefinementEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *RefinementEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the RefinementEvent entity.
// If the RefinementEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefinementEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
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

// ClearSessionID clears the value of the "session_id" field.
func (m *RefinementEventMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[refinementevent.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *RefinementEventMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[refinementevent.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *RefinementEventMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, refinementevent.FieldSessionID)
}

// SetRulePersona sets the "rule_persona" field.
func (m *RefinementEventMutation) SetRulePersona(s string) {
	m.rule_persona = &s
}

// RulePersona returns the value of the "rule_persona" field in the mutation.
func (m *RefinementEventMutation) RulePersona() (r string, exists bool) {
	v := m.rule_persona
	if v == nil {
		return
	}
	return *v, true
}

// OldRulePersona returns the old "rule_persona" field's value of the RefinementEvent entity.
// If the RefinementEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefinementEventMutation) OldRulePersona(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRulePersona is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRulePersona requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRulePersona: %w", err)
	}
	return oldValue.RulePersona, nil
}

// ResetRulePersona resets all changes to the "rule_persona" field.
func (m *RefinementEventMutation) ResetRulePersona() {
	m.rule_persona = nil
}

// SetRuleConfidence sets the "rule_confidence" field.
func (m *RefinementEventMutation) SetRuleConfidence(f float64) {
	m.rule_confidence = &f
	m.addrule_confidence = nil
}

// RuleConfidence returns the value of the "rule_confidence" field in the mutation.
func (m *RefinementEventMutation) RuleConfidence() (r float64, exists bool) {
	v := m.rule_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleConfidence returns the old "rule_confidence" field's value of the RefinementEvent entity.
// If the RefinementEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefinementEventMutation) OldRuleConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleConfidence: %w", err)
	}
	return oldValue.RuleConfidence, nil
}

// AddRuleConfidence adds f to the "rule_confidence" field.
func (m *RefinementEventMutation) AddRuleConfidence(f float64) {
	if m.addrule_confidence != nil {
		*m.addrule_confidence += f
	} else {
		m.addrule_confidence = &f
	}
}

// AddedRuleConfidence returns the value that was added to the "rule_confidence" field in this mutation.
func (m *RefinementEventMutation) AddedRuleConfidence() (r float64, exists bool) {
	v := m.addrule_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetRuleConfidence resets all changes to the "rule_confidence" field.
func (m *RefinementEventMutation) ResetRuleConfidence() {
	m.rule_confidence = nil
	m.addrule_confidence = nil
}

// SetModelPersona sets the "model_persona" field.
func (m *RefinementEventMutation) SetModelPersona(s string) {
	m.model_persona = &s
}

// ModelPersona returns the value of the "model_persona" field in the mutation.
func (m *RefinementEventMutation) ModelPersona() (r string, exists bool) {
	v := m.model_persona
	if v == nil {
		return
	}
	return *v, true
}

// OldModelPersona returns the old "model_persona" field's value of the RefinementEvent entity.
// If the RefinementEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefinementEventMutation) OldModelPersona(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelPersona is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelPersona requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelPersona: %w", err)
	}
	return oldValue.ModelPersona, nil
}

// ResetModelPersona resets all changes to the "model_persona" field.
func (m *RefinementEventMutation) ResetModelPersona() {
	m.model_persona = nil
}

// SetModelConfidence sets the "model_confidence" field.
func (m *RefinementEventMutation) SetModelConfidence(f float64) {
	m.model_confidence = &f
	m.addmodel_confidence = nil
}

// ModelConfidence returns the value of the "model_confidence" field in the mutation.
func (m *RefinementEventMutation) ModelConfidence() (r float64, exists bool) {
	v := m.model_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldModelConfidence returns the old "model_confidence" field's value of the RefinementEvent entity.
// If the RefinementEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefinementEventMutation) OldModelConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelConfidence: %w", err)
	}
	return oldValue.ModelConfidence, nil
}

// AddModelConfidence adds f to the "model_confidence" field.
func (m *RefinementEventMutation) AddModelConfidence(f float64) {
	if m.addmodel_confidence != nil {
		*m.addmodel_confidence += f
	} else {
		m.addmodel_confidence = &f
	}
}

// AddedModelConfidence returns the value that was added to the "model_confidence" field in this mutation.
func (m *RefinementEventMutation) AddedModelConfidence() (r float64, exists bool) {
	v := m.addmodel_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetModelConfidence resets all changes to the "model_confidence" field.
func (m *RefinementEventMutation) ResetModelConfidence() {
	m.model_confidence = nil
	m.addmodel_confidence = nil
}

// SetModel sets the "model" field.
func (m *RefinementEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *RefinementEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the RefinementEvent entity.
// If the RefinementEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefinementEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *RefinementEventMutation) ResetModel() {
	m.model = nil
}

// SetReasoning sets the "reasoning" field.
func (m *RefinementEventMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *RefinementEventMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the RefinementEvent entity.
// If the RefinementEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefinementEventMutation) OldReasoning(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *RefinementEventMutation) ResetReasoning() {
	m.reasoning = nil
}

// Where appends a list predicates to the RefinementEventMutation builder.
func (m *RefinementEventMutation) Where(ps ...predicate.RefinementEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RefinementEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RefinementEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RefinementEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RefinementEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RefinementEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RefinementEvent).
func (m *RefinementEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RefinementEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.sequence != nil {
		fields = append(fields, refinementevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, refinementevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, refinementevent.FieldSessionID)
	}
	if m.rule_persona != nil {
		fields = append(fields, refinementevent.FieldRulePersona)
	}
	if m.rule_confidence != nil {
		fields = append(fields, refinementevent.FieldRuleConfidence)
	}
	if m.model_persona != nil {
		fields = append(fields, refinementevent.FieldModelPersona)
	}
	if m.model_confidence != nil {
		fields = append(fields, refinementevent.FieldModelConfidence)
	}
	if m.model != nil {
		fields = append(fields, refinementevent.FieldModel)
	}
	if m.reasoning != nil {
		fields = append(fields, refinementevent.FieldReasoning)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RefinementEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case refinementevent.FieldSequence:
		return m.Sequence()
	case refinementevent.FieldTimestamp:
		return m.Timestamp()
	case refinementevent.FieldSessionID:
		return m.SessionID()
	case refinementevent.FieldRulePersona:
		return m.RulePersona()
	case refinementevent.FieldRuleConfidence:
		return m.RuleConfidence()
	case refinementevent.FieldModelPersona:
		return m.ModelPersona()
	case refinementevent.FieldModelConfidence:
		return m.ModelConfidence()
	case refinementevent.FieldModel:
		return m.Model()
	case refinementevent.FieldReasoning:
		return m.Reasoning()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RefinementEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case refinementevent.FieldSequence:
		return m.OldSequence(ctx)
	case refinementevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case refinementevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case refinementevent.FieldRulePersona:
		return m.OldRulePersona(ctx)
	case refinementevent.FieldRuleConfidence:
		return m.OldRuleConfidence(ctx)
	case refinementevent.FieldModelPersona:
		return m.OldModelPersona(ctx)
	case refinementevent.FieldModelConfidence:
		return m.OldModelConfidence(ctx)
	case refinementevent.FieldModel:
		return m.OldModel(ctx)
	case refinementevent.FieldReasoning:
		return m.OldReasoning(ctx)
	}
	return nil, fmt.Errorf("unknown RefinementEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RefinementEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case refinementevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case refinementevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case refinementevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case refinementevent.FieldRulePersona:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRulePersona(v)
		return nil
	case refinementevent.FieldRuleConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleConfidence(v)
		return nil
	case refinementevent.FieldModelPersona:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelPersona(v)
		return nil
	case refinementevent.FieldModelConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelConfidence(v)
		return nil
	case refinementevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case refinementevent.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	}
	return fmt.Errorf("unknown RefinementEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RefinementEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, refinementevent.FieldSequence)
	}
	if m.addrule_confidence != nil {
		fields = append(fields, refinementevent.FieldRuleConfidence)
	}
	if m.addmodel_confidence != nil {
		fields = append(fields, refinementevent.FieldModelConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RefinementEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case refinementevent.FieldSequence:
		return m.AddedSequence()
	case refinementevent.FieldRuleConfidence:
		return m.AddedRuleConfidence()
	case refinementevent.FieldModelConfidence:
		return m.AddedModelConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RefinementEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case refinementevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case refinementevent.FieldRuleConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRuleConfidence(v)
		return nil
	case refinementevent.FieldModelConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddModelConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown RefinementEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RefinementEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(refinementevent.FieldSessionID) {
		fields = append(fields, refinementevent.FieldSessionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RefinementEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RefinementEventMutation) ClearField(name string) error {
	switch name {
	case refinementevent.FieldSessionID:
		m.ClearSessionID()
		return nil
	}
	return fmt.Errorf("unknown RefinementEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RefinementEventMutation) ResetField(name string) error {
	switch name {
	case refinementevent.FieldSequence:
		m.ResetSequence()
		return nil
	case refinementevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case refinementevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case refinementevent.FieldRulePersona:
		m.ResetRulePersona()
		return nil
	case refinementevent.FieldRuleConfidence:
		m.ResetRuleConfidence()
		return nil
	case refinementevent.FieldModelPersona:
		m.ResetModelPersona()
		return nil
	case refinementevent.FieldModelConfidence:
		m.ResetModelConfidence()
		return nil
	case refinementevent.FieldModel:
		m.ResetModel()
		return nil
	case refinementevent.FieldReasoning:
		m.ResetReasoning()
		return nil
	}
	return fmt.Errorf("unknown RefinementEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RefinementEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RefinementEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RefinementEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RefinementEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RefinementEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RefinementEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RefinementEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RefinementEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RefinementEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RefinementEvent edge %s", name)
}

// ResponseEventMutation represents an operation that mutates the ResponseEvent nodes in the graph.
type ResponseEventMutation struct {
	config
	op                        Op
	typ                       string
	id                        *int
	sequence                  *int64
	addsequence               *int64
	timestamp                 *time.Time
	session_id                *string
	position                  *int
	addposition               *int
	question_id               *int
	addquestion_id            *int
	answer                    *string
	leading_persona           *string
	leading_confidence        *float64
	addleading_confidence     *float64
	text_persona              *string
	text_confidence           *float64
	addtext_confidence        *float64
	indicators                *[]string
	appendindicators          []string
	behavioral_patterns       *[]string
	appendbehavioral_patterns []string
	typing_cpm                *float64
	addtyping_cpm             *float64
	typing_ms                 *int64
	addtyping_ms              *int64
	pauses                    *int
	addpauses                 *int
	hesitations               *int
	addhesitations            *int
	backspaces                *int
	addbackspaces             *int
	pastes                    *int
	addpastes                 *int
	clearedFields             map[string]struct{}
	done                      bool
	oldValue                  func(context.Context) (*ResponseEvent, error)
	predicates                []predicate.ResponseEvent
}

var _ ent.Mutation = (*ResponseEventMutation)(nil)

// responseeventOption allows management of the mutation configuration using functional options.
type responseeventOption func(*ResponseEventMutation)

// newResponseEventMutation creates new mutation for the ResponseEvent entity.
func newResponseEventMutation(c config, op Op, opts ...responseeventOption) *ResponseEventMutation {
	m := &ResponseEventMutation{
		config:        c,
		op:            op,
		typ:           TypeResponseEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResponseEventID sets the ID field of the mutation.
func withResponseEventID(id int) responseeventOption {
	return func(m *ResponseEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ResponseEvent
		)
		m.oldValue = func(ctx context.Context) (*ResponseEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ResponseEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResponseEvent sets the old ResponseEvent of the mutation.
func withResponseEvent(node *ResponseEvent) responseeventOption {
	return func(m *ResponseEventMutation) {
		m.oldValue = func(context.Context) (*ResponseEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResponseEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResponseEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResponseEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResponseEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ResponseEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ResponseEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ResponseEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ResponseEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ResponseEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ResponseEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ResponseEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ResponseEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ResponseEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *ResponseEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ResponseEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
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
func (m *ResponseEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetPosition sets the "position" field.
func (m *ResponseEventMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *ResponseEventMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *ResponseEventMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *ResponseEventMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *ResponseEventMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetQuestionID sets the "question_id" field.
func (m *ResponseEventMutation) SetQuestionID(i int) {
	m.question_id = &i
	m.addquestion_id = nil
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *ResponseEventMutation) QuestionID() (r int, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldQuestionID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// AddQuestionID adds i to the "question_id" field.
func (m *ResponseEventMutation) AddQuestionID(i int) {
	if m.addquestion_id != nil {
		*m.addquestion_id += i
	} else {
		m.addquestion_id = &i
	}
}

// AddedQuestionID returns the value that was added to the "question_id" field in this mutation.
func (m *ResponseEventMutation) AddedQuestionID() (r int, exists bool) {
	v := m.addquestion_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *ResponseEventMutation) ResetQuestionID() {
	m.question_id = nil
	m.addquestion_id = nil
}

// SetAnswer sets the "answer" field.
func (m *ResponseEventMutation) SetAnswer(s string) {
	m.answer = &s
}

// Answer returns the value of the "answer" field in the mutation.
func (m *ResponseEventMutation) Answer() (r string, exists bool) {
	v := m.answer
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswer returns the old "answer" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswer: %w", err)
	}
	return oldValue.Answer, nil
}

// ResetAnswer resets all changes to the "answer" field.
func (m *ResponseEventMutation) ResetAnswer() {
	m.answer = nil
}

// SetLeadingPersona sets the "leading_persona" field.
func (m *ResponseEventMutation) SetLeadingPersona(s string) {
	m.leading_persona = &s
}

// LeadingPersona returns the value of the "leading_persona" field in the mutation.
func (m *ResponseEventMutation) LeadingPersona() (r string, exists bool) {
	v := m.leading_persona
	if v == nil {
		return
	}
	return *v, true
}

// OldLeadingPersona returns the old "leading_persona" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldLeadingPersona(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeadingPersona is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeadingPersona requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeadingPersona: %w", err)
	}
	return oldValue.LeadingPersona, nil
}

// ResetLeadingPersona resets all changes to the "leading_persona" field.
func (m *ResponseEventMutation) ResetLeadingPersona() {
	m.leading_persona = nil
}

// SetLeadingConfidence sets the "leading_confidence" field.
func (m *ResponseEventMutation) SetLeadingConfidence(f float64) {
	m.leading_confidence = &f
	m.addleading_confidence = nil
}

// LeadingConfidence returns the value of the "leading_confidence" field in the mutation.
func (m *ResponseEventMutation) LeadingConfidence() (r float64, exists bool) {
	v := m.leading_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldLeadingConfidence returns the old "leading_confidence" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldLeadingConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeadingConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeadingConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeadingConfidence: %w", err)
	}
	return oldValue.LeadingConfidence, nil
}

// AddLeadingConfidence adds f to the "leading_confidence" field.
func (m *ResponseEventMutation) AddLeadingConfidence(f float64) {
	if m.addleading_confidence != nil {
		*m.addleading_confidence += f
	} else {
		m.addleading_confidence = &f
	}
}

// AddedLeadingConfidence returns the value that was added to the "leading_confidence" field in this mutation.
func (m *ResponseEventMutation) AddedLeadingConfidence() (r float64, exists bool) {
	v := m.addleading_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetLeadingConfidence resets all changes to the "leading_confidence" field.
func (m *ResponseEventMutation) ResetLeadingConfidence() {
	m.leading_confidence = nil
	m.addleading_confidence = nil
}

// SetTextPersona sets the "text_persona" field.
func (m *ResponseEventMutation) SetTextPersona(s string) {
	m.text_persona = &s
}

// TextPersona returns the value of the "text_persona" field in the mutation.
func (m *ResponseEventMutation) TextPersona() (r string, exists bool) {
	v := m.text_persona
	if v == nil {
		return
	}
	return *v, true
}

// OldTextPersona returns the old "text_persona" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldTextPersona(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextPersona is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextPersona requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextPersona: %w", err)
	}
	return oldValue.TextPersona, nil
}

// ClearTextPersona clears the value of the "text_persona" field.
func (m *ResponseEventMutation) ClearTextPersona() {
	m.text_persona = nil
	m.clearedFields[responseevent.FieldTextPersona] = struct{}{}
}

// TextPersonaCleared returns if the "text_persona" field was cleared in this mutation.
func (m *ResponseEventMutation) TextPersonaCleared() bool {
	_, ok := m.clearedFields[responseevent.FieldTextPersona]
	return ok
}

// ResetTextPersona resets all changes to the "text_persona" field.
func (m *ResponseEventMutation) ResetTextPersona() {
	m.text_persona = nil
	delete(m.clearedFields, responseevent.FieldTextPersona)
}

// SetTextConfidence sets the "text_confidence" field.
func (m *ResponseEventMutation) SetTextConfidence(f float64) {
	m.text_confidence = &f
	m.addtext_confidence = nil
}

// TextConfidence returns the value of the "text_confidence" field in the mutation.
func (m *ResponseEventMutation) TextConfidence() (r float64, exists bool) {
	v := m.text_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldTextConfidence returns the old "text_confidence" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldTextConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextConfidence: %w", err)
	}
	return oldValue.TextConfidence, nil
}

// AddTextConfidence adds f to the "text_confidence" field.
func (m *ResponseEventMutation) AddTextConfidence(f float64) {
	if m.addtext_confidence != nil {
		*m.addtext_confidence += f
	} else {
		m.addtext_confidence = &f
	}
}

// AddedTextConfidence returns the value that was added to the "text_confidence" field in this mutation.
func (m *ResponseEventMutation) AddedTextConfidence() (r float64, exists bool) {
	v := m.addtext_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearTextConfidence clears the value of the "text_confidence" field.
func (m *ResponseEventMutation) ClearTextConfidence() {
	m.text_confidence = nil
	m.addtext_confidence = nil
	m.clearedFields[responseevent.FieldTextConfidence] = struct{}{}
}

// TextConfidenceCleared returns if the "text_confidence" field was cleared in this mutation.
func (m *ResponseEventMutation) TextConfidenceCleared() bool {
	_, ok := m.clearedFields[responseevent.FieldTextConfidence]
	return ok
}

// ResetTextConfidence resets all changes to the "text_confidence" field.
func (m *ResponseEventMutation) ResetTextConfidence() {
	m.text_confidence = nil
	m.addtext_confidence = nil
	delete(m.clearedFields, responseevent.FieldTextConfidence)
}

// SetIndicators sets the "indicators" field.
func (m *ResponseEventMutation) SetIndicators(s []string) {
	m.indicators = &s
	m.appendindicators = nil
}

// Indicators returns the value of the "indicators" field in the mutation.
func (m *ResponseEventMutation) Indicators() (r []string, exists bool) {
	v := m.indicators
	if v == nil {
		return
	}
	return *v, true
}

// OldIndicators returns the old "indicators" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldIndicators(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIndicators is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIndicators requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIndicators: %w", err)
	}
	return oldValue.Indicators, nil
}

// AppendIndicators adds s to the "indicators" field.
func (m *ResponseEventMutation) AppendIndicators(s []string) {
	m.appendindicators = append(m.appendindicators, s...)
}

// AppendedIndicators returns the list of values that were appended to the "indicators" field in this mutation.
func (m *ResponseEventMutation) AppendedIndicators() ([]string, bool) {
	if len(m.appendindicators) == 0 {
		return nil, false
	}
	return m.appendindicators, true
}

// ClearIndicators clears the value of the "indicators" field.
func (m *ResponseEventMutation) ClearIndicators() {
	m.indicators = nil
	m.appendindicators = nil
	m.clearedFields[responseevent.FieldIndicators] = struct{}{}
}

// IndicatorsCleared returns if the "indicators" field was cleared in this mutation.
func (m *ResponseEventMutation) IndicatorsCleared() bool {
	_, ok := m.clearedFields[responseevent.FieldIndicators]
	return ok
}

// ResetIndicators resets all changes to the "indicators" field.
func (m *ResponseEventMutation) ResetIndicators() {
	m.indicators = nil
	m.appendindicators = nil
	delete(m.clearedFields, responseevent.FieldIndicators)
}

// SetBehavioralPatterns sets the "behavioral_patterns" field.
func (m *ResponseEventMutation) SetBehavioralPatterns(s []string) {
	m.behavioral_patterns = &s
	m.appendbehavioral_patterns = nil
}

// BehavioralPatterns returns the value of the "behavioral_patterns" field in the mutation.
func (m *ResponseEventMutation) BehavioralPatterns() (r []string, exists bool) {
	v := m.behavioral_patterns
	if v == nil {
		return
	}
	return *v, true
}

// OldBehavioralPatterns returns the old "behavioral_patterns" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldBehavioralPatterns(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBehavioralPatterns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBehavioralPatterns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBehavioralPatterns: %w", err)
	}
	return oldValue.BehavioralPatterns, nil
}

// AppendBehavioralPatterns adds s to the "behavioral_patterns" field.
func (m *ResponseEventMutation) AppendBehavioralPatterns(s []string) {
	m.appendbehavioral_patterns = append(m.appendbehavioral_patterns, s...)
}

// AppendedBehavioralPatterns returns the list of values that were appended to the "behavioral_patterns" field in this mutation.
func (m *ResponseEventMutation) AppendedBehavioralPatterns() ([]string, bool) {
	if len(m.appendbehavioral_patterns) == 0 {
		return nil, false
	}
	return m.appendbehavioral_patterns, true
}

// ClearBehavioralPatterns clears the value of the "behavioral_patterns" field.
func (m *ResponseEventMutation) ClearBehavioralPatterns() {
	m.behavioral_patterns = nil
	m.appendbehavioral_patterns = nil
	m.clearedFields[responseevent.FieldBehavioralPatterns] = struct{}{}
}

// BehavioralPatternsCleared returns if the "behavioral_patterns" field was cleared in this mutation.
func (m *ResponseEventMutation) BehavioralPatternsCleared() bool {
	_, ok := m.clearedFields[responseevent.FieldBehavioralPatterns]
	return ok
}

// ResetBehavioralPatterns resets all changes to the "behavioral_patterns" field.
func (m *ResponseEventMutation) ResetBehavioralPatterns() {
	m.behavioral_patterns = nil
	m.appendbehavioral_patterns = nil
	delete(m.clearedFields, responseevent.FieldBehavioralPatterns)
}

// SetTypingCpm sets the "typing_cpm" field.
func (m *ResponseEventMutation) SetTypingCpm(f float64) {
	m.typing_cpm = &f
	m.addtyping_cpm = nil
}

// TypingCpm returns the value of the "typing_cpm" field in the mutation.
func (m *ResponseEventMutation) TypingCpm() (r float64, exists bool) {
	v := m.typing_cpm
	if v == nil {
		return
	}
	return *v, true
}

// OldTypingCpm returns the old "typing_cpm" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldTypingCpm(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTypingCpm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTypingCpm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTypingCpm: %w", err)
	}
	return oldValue.TypingCpm, nil
}

// AddTypingCpm adds f to the "typing_cpm" field.
func (m *ResponseEventMutation) AddTypingCpm(f float64) {
	if m.addtyping_cpm != nil {
		*m.addtyping_cpm += f
	} else {
		m.addtyping_cpm = &f
	}
}

// AddedTypingCpm returns the value that was added to the "typing_cpm" field in this mutation.
func (m *ResponseEventMutation) AddedTypingCpm() (r float64, exists bool) {
	v := m.addtyping_cpm
	if v == nil {
		return
	}
	return *v, true
}

// ClearTypingCpm clears the value of the "typing_cpm" field.
func (m *ResponseEventMutation) ClearTypingCpm() {
	m.typing_cpm = nil
	m.addtyping_cpm = nil
	m.clearedFields[responseevent.FieldTypingCpm] = struct{}{}
}

// TypingCpmCleared returns if the "typing_cpm" field was cleared in this mutation.
func (m *ResponseEventMutation) TypingCpmCleared() bool {
	_, ok := m.clearedFields[responseevent.FieldTypingCpm]
	return ok
}

// ResetTypingCpm resets all changes to the "typing_cpm" field.
func (m *ResponseEventMutation) ResetTypingCpm() {
	m.typing_cpm = nil
	m.addtyping_cpm = nil
	delete(m.clearedFields, responseevent.FieldTypingCpm)
}

// SetTypingMs sets the "typing_ms" field.
func (m *ResponseEventMutation) SetTypingMs(i int64) {
	m.typing_ms = &i
	m.addtyping_ms = nil
}

// TypingMs returns the value of the "typing_ms" field in the mutation.
func (m *ResponseEventMutation) TypingMs() (r int64, exists bool) {
	v := m.typing_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTypingMs returns the old "typing_ms" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldTypingMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTypingMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTypingMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTypingMs: %w", err)
	}
	return oldValue.TypingMs, nil
}

// AddTypingMs adds i to the "typing_ms" field.
func (m *ResponseEventMutation) AddTypingMs(i int64) {
	if m.addtyping_ms != nil {
		*m.addtyping_ms += i
	} else {
		m.addtyping_ms = &i
	}
}

// AddedTypingMs returns the value that was added to the "typing_ms" field in this mutation.
func (m *ResponseEventMutation) AddedTypingMs() (r int64, exists bool) {
	v := m.addtyping_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearTypingMs clears the value of the "typing_ms" field.
func (m *ResponseEventMutation) ClearTypingMs() {
	m.typing_ms = nil
	m.addtyping_ms = nil
	m.clearedFields[responseevent.FieldTypingMs] = struct{}{}
}

// TypingMsCleared returns if the "typing_ms" field was cleared in this mutation.
func (m *ResponseEventMutation) TypingMsCleared() bool {
	_, ok := m.clearedFields[responseevent.FieldTypingMs]
	return ok
}

// ResetTypingMs resets all changes to the "typing_ms" field.
func (m *ResponseEventMutation) ResetTypingMs() {
	m.typing_ms = nil
	m.addtyping_ms = nil
	delete(m.clearedFields, responseevent.FieldTypingMs)
}

// SetPauses sets the "pauses" field.
func (m *ResponseEventMutation) SetPauses(i int) {
	m.pauses = &i
	m.addpauses = nil
}

// Pauses returns the value of the "pauses" field in the mutation.
func (m *ResponseEventMutation) Pauses() (r int, exists bool) {
	v := m.pauses
	if v == nil {
		return
	}
	return *v, true
}

// OldPauses returns the old "pauses" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldPauses(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPauses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPauses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPauses: %w", err)
	}
	return oldValue.Pauses, nil
}

// AddPauses adds i to the "pauses" field.
func (m *ResponseEventMutation) AddPauses(i int) {
	if m.addpauses != nil {
		*m.addpauses += i
	} else {
		m.addpauses = &i
	}
}

// AddedPauses returns the value that was added to the "pauses" field in this mutation.
func (m *ResponseEventMutation) AddedPauses() (r int, exists bool) {
	v := m.addpauses
	if v == nil {
		return
	}
	return *v, true
}

// ClearPauses clears the value of the "pauses" field.
func (m *ResponseEventMutation) ClearPauses() {
	m.pauses = nil
	m.addpauses = nil
	m.clearedFields[responseevent.FieldPauses] = struct{}{}
}

// PausesCleared returns if the "pauses" field was cleared in this mutation.
func (m *ResponseEventMutation) PausesCleared() bool {
	_, ok := m.clearedFields[responseevent.FieldPauses]
	return ok
}

// ResetPauses resets all changes to the "pauses" field.
func (m *ResponseEventMutation) ResetPauses() {
	m.pauses = nil
	m.addpauses = nil
	delete(m.clearedFields, responseevent.FieldPauses)
}

// SetHesitations sets the "hesitations" field.
func (m *ResponseEventMutation) SetHesitations(i int) {
	m.hesitations = &i
	m.addhesitations = nil
}

// Hesitations returns the value of the "hesitations" field in the mutation.
func (m *ResponseEventMutation) Hesitations() (r int, exists bool) {
	v := m.hesitations
	if v == nil {
		return
	}
	return *v, true
}

// OldHesitations returns the old "hesitations" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldHesitations(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHesitations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHesitations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHesitations: %w", err)
	}
	return oldValue.Hesitations, nil
}

// AddHesitations adds i to the "hesitations" field.
func (m *ResponseEventMutation) AddHesitations(i int) {
	if m.addhesitations != nil {
		*m.addhesitations += i
	} else {
		m.addhesitations = &i
	}
}

// AddedHesitations returns the value that was added to the "hesitations" field in this mutation.
func (m *ResponseEventMutation) AddedHesitations() (r int, exists bool) {
	v := m.addhesitations
	if v == nil {
		return
	}
	return *v, true
}

// ClearHesitations clears the value of the "hesitations" field.
func (m *ResponseEventMutation) ClearHesitations() {
	m.hesitations = nil
	m.addhesitations = nil
	m.clearedFields[responseevent.FieldHesitations] = struct{}{}
}

// HesitationsCleared returns if the "hesitations" field was cleared in this mutation.
func (m *ResponseEventMutation) HesitationsCleared() bool {
	_, ok := m.clearedFields[responseevent.FieldHesitations]
	return ok
}

// ResetHesitations resets all changes to the "hesitations" field.
func (m *ResponseEventMutation) ResetHesitations() {
	m.hesitations = nil
	m.addhesitations = nil
	delete(m.clearedFields, responseevent.FieldHesitations)
}

// SetBackspaces sets the "backspaces" field.
func (m *ResponseEventMutation) SetBackspaces(i int) {
	m.backspaces = &i
	m.addbackspaces = nil
}

// Backspaces returns the value of the "backspaces" field in the mutation.
func (m *ResponseEventMutation) Backspaces() (r int, exists bool) {
	v := m.backspaces
	if v == nil {
		return
	}
	return *v, true
}

// OldBackspaces returns the old "backspaces" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldBackspaces(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBackspaces is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBackspaces requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBackspaces: %w", err)
	}
	return oldValue.Backspaces, nil
}

// AddBackspaces adds i to the "backspaces" field.
func (m *ResponseEventMutation) AddBackspaces(i int) {
	if m.addbackspaces != nil {
		*m.addbackspaces += i
	} else {
		m.addbackspaces = &i
	}
}

// AddedBackspaces returns the value that was added to the "backspaces" field in this mutation.
func (m *ResponseEventMutation) AddedBackspaces() (r int, exists bool) {
	v := m.addbackspaces
	if v == nil {
		return
	}
	return *v, true
}

// ClearBackspaces clears the value of the "backspaces" field.
func (m *ResponseEventMutation) ClearBackspaces() {
	m.backspaces = nil
	m.addbackspaces = nil
	m.clearedFields[responseevent.FieldBackspaces] = struct{}{}
}

// BackspacesCleared returns if the "backspaces" field was cleared in this mutation.
func (m *ResponseEventMutation) BackspacesCleared() bool {
	_, ok := m.clearedFields[responseevent.FieldBackspaces]
	return ok
}

// ResetBackspaces resets all changes to the "backspaces" field.
func (m *ResponseEventMutation) ResetBackspaces() {
	m.backspaces = nil
	m.addbackspaces = nil
	delete(m.clearedFields, responseevent.FieldBackspaces)
}

// SetPastes sets the "pastes" field.
func (m *ResponseEventMutation) SetPastes(i int) {
	m.pastes = &i
	m.addpastes = nil
}

// Pastes returns the value of the "pastes" field in the mutation.
func (m *ResponseEventMutation) Pastes() (r int, exists bool) {
	v := m.pastes
	if v == nil {
		return
	}
	return *v, true
}

// OldPastes returns the old "pastes" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldPastes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPastes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPastes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPastes: %w", err)
	}
	return oldValue.Pastes, nil
}

// AddPastes adds i to the "pastes" field.
func (m *ResponseEventMutation) AddPastes(i int) {
	if m.addpastes != nil {
		*m.addpastes += i
	} else {
		m.addpastes = &i
	}
}

// AddedPastes returns the value that was added to the "pastes" field in this mutation.
func (m *ResponseEventMutation) AddedPastes() (r int, exists bool) {
	v := m.addpastes
	if v == nil {
		return
	}
	return *v, true
}

// ClearPastes clears the value of the "pastes" field.
func (m *ResponseEventMutation) ClearPastes() {
	m.pastes = nil
	m.addpastes = nil
	m.clearedFields[responseevent.FieldPastes] = struct{}{}
}

// PastesCleared returns if the "pastes" field was cleared in this mutation.
func (m *ResponseEventMutation) PastesCleared() bool {
	_, ok := m.clearedFields[responseevent.FieldPastes]
	return ok
}

// ResetPastes resets all changes to the "pastes" field.
func (m *ResponseEventMutation) ResetPastes() {
	m.pastes = nil
	m.addpastes = nil
	delete(m.clearedFields, responseevent.FieldPastes)
}

// Where appends a list predicates to the ResponseEventMutation builder.
func (m *ResponseEventMutation) Where(ps ...predicate.ResponseEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResponseEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResponseEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ResponseEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResponseEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResponseEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ResponseEvent).
func (m *ResponseEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResponseEventMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.sequence != nil {
		fields = append(fields, responseevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, responseevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, responseevent.FieldSessionID)
	}
	if m.position != nil {
		fields = append(fields, responseevent.FieldPosition)
	}
	if m.question_id != nil {
		fields = append(fields, responseevent.FieldQuestionID)
	}
	if m.answer != nil {
		fields = append(fields, responseevent.FieldAnswer)
	}
	if m.leading_persona != nil {
		fields = append(fields, responseevent.FieldLeadingPersona)
	}
	if m.leading_confidence != nil {
		fields = append(fields, responseevent.FieldLeadingConfidence)
	}
	if m.text_persona != nil {
		fields = append(fields, responseevent.FieldTextPersona)
	}
	if m.text_confidence != nil {
		fields = append(fields, responseevent.FieldTextConfidence)
	}
	if m.indicators != nil {
		fields = append(fields, responseevent.FieldIndicators)
	}
	if m.behavioral_patterns != nil {
		fields = append(fields, responseevent.FieldBehavioralPatterns)
	}
	if m.typing_cpm != nil {
		fields = append(fields, responseevent.FieldTypingCpm)
	}
	if m.typing_ms != nil {
		fields = append(fields, responseevent.FieldTypingMs)
	}
	if m.pauses != nil {
		fields = append(fields, responseevent.FieldPauses)
	}
	if m.hesitations != nil {
		fields = append(fields, responseevent.FieldHesitations)
	}
	if m.backspaces != nil {
		fields = append(fields, responseevent.FieldBackspaces)
	}
	if m.pastes != nil {
		fields = append(fields, responseevent.FieldPastes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResponseEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case responseevent.FieldSequence:
		return m.Sequence()
	case responseevent.FieldTimestamp:
		return m.Timestamp()
	case responseevent.FieldSessionID:
		return m.SessionID()
	case responseevent.FieldPosition:
		return m.Position()
	case responseevent.FieldQuestionID:
		return m.QuestionID()
	case responseevent.FieldAnswer:
		return m.Answer()
	case responseevent.FieldLeadingPersona:
		return m.LeadingPersona()
	case responseevent.FieldLeadingConfidence:
		return m.LeadingConfidence()
	case responseevent.FieldTextPersona:
		return m.TextPersona()
	case responseevent.FieldTextConfidence:
		return m.TextConfidence()
	case responseevent.FieldIndicators:
		return m.Indicators()
	case responseevent.FieldBehavioralPatterns:
		return m.BehavioralPatterns()
	case responseevent.FieldTypingCpm:
		return m.TypingCpm()
	case responseevent.FieldTypingMs:
		return m.TypingMs()
	case responseevent.FieldPauses:
		return m.Pauses()
	case responseevent.FieldHesitations:
		return m.Hesitations()
	case responseevent.FieldBackspaces:
		return m.Backspaces()
	case responseevent.FieldPastes:
		return m.Pastes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResponseEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case responseevent.FieldSequence:
		return m.OldSequence(ctx)
	case responseevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case responseevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case responseevent.FieldPosition:
		return m.OldPosition(ctx)
	case responseevent.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case responseevent.FieldAnswer:
		return m.OldAnswer(ctx)
	case responseevent.FieldLeadingPersona:
		return m.OldLeadingPersona(ctx)
	case responseevent.FieldLeadingConfidence:
		return m.OldLeadingConfidence(ctx)
	case responseevent.FieldTextPersona:
		return m.OldTextPersona(ctx)
	case responseevent.FieldTextConfidence:
		return m.OldTextConfidence(ctx)
	case responseevent.FieldIndicators:
		return m.OldIndicators(ctx)
	case responseevent.FieldBehavioralPatterns:
		return m.OldBehavioralPatterns(ctx)
	case responseevent.FieldTypingCpm:
		return m.OldTypingCpm(ctx)
	case responseevent.FieldTypingMs:
		return m.OldTypingMs(ctx)
	case responseevent.FieldPauses:
		return m.OldPauses(ctx)
	case responseevent.FieldHesitations:
		return m.OldHesitations(ctx)
	case responseevent.FieldBackspaces:
		return m.OldBackspaces(ctx)
	case responseevent.FieldPastes:
		return m.OldPastes(ctx)
	}
	return nil, fmt.Errorf("unknown ResponseEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResponseEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case responseevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case responseevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case responseevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case responseevent.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case responseevent.FieldQuestionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case responseevent.FieldAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswer(v)
		return nil
	case responseevent.FieldLeadingPersona:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeadingPersona(v)
		return nil
	case responseevent.FieldLeadingConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeadingConfidence(v)
		return nil
	case responseevent.FieldTextPersona:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextPersona(v)
		return nil
	case responseevent.FieldTextConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextConfidence(v)
		return nil
	case responseevent.FieldIndicators:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIndicators(v)
		return nil
	case responseevent.FieldBehavioralPatterns:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBehavioralPatterns(v)
		return nil
	case responseevent.FieldTypingCpm:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTypingCpm(v)
		return nil
	case responseevent.FieldTypingMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTypingMs(v)
		return nil
	case responseevent.FieldPauses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPauses(v)
		return nil
	case responseevent.FieldHesitations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHesitations(v)
		return nil
	case responseevent.FieldBackspaces:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBackspaces(v)
		return nil
	case responseevent.FieldPastes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPastes(v)
		return nil
	}
	return fmt.Errorf("unknown ResponseEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResponseEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, responseevent.FieldSequence)
	}
	if m.addposition != nil {
		fields = append(fields, responseevent.FieldPosition)
	}
	if m.addquestion_id != nil {
		fields = append(fields, responseevent.FieldQuestionID)
	}
	if m.addleading_confidence != nil {
		fields = append(fields, responseevent.FieldLeadingConfidence)
	}
	if m.addtext_confidence != nil {
		fields = append(fields, responseevent.FieldTextConfidence)
	}
	if m.addtyping_cpm != nil {
		fields = append(fields, responseevent.FieldTypingCpm)
	}
	if m.addtyping_ms != nil {
		fields = append(fields, responseevent.FieldTypingMs)
	}
	if m.addpauses != nil {
		fields = append(fields, responseevent.FieldPauses)
	}
	if m.addhesitations != nil {
		fields = append(fields, responseevent.FieldHesitations)
	}
	if m.addbackspaces != nil {
		fields = append(fields, responseevent.FieldBackspaces)
	}
	if m.addpastes != nil {
		fields = append(fields, responseevent.FieldPastes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResponseEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case responseevent.FieldSequence:
		return m.AddedSequence()
	case responseevent.FieldPosition:
		return m.AddedPosition()
	case responseevent.FieldQuestionID:
		return m.AddedQuestionID()
	case responseevent.FieldLeadingConfidence:
		return m.AddedLeadingConfidence()
	case responseevent.FieldTextConfidence:
		return m.AddedTextConfidence()
	case responseevent.FieldTypingCpm:
		return m.AddedTypingCpm()
	case responseevent.FieldTypingMs:
		return m.AddedTypingMs()
	case responseevent.FieldPauses:
		return m.AddedPauses()
	case responseevent.FieldHesitations:
		return m.AddedHesitations()
	case responseevent.FieldBackspaces:
		return m.AddedBackspaces()
	case responseevent.FieldPastes:
		return m.AddedPastes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResponseEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case responseevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case responseevent.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	case responseevent.FieldQuestionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionID(v)
		return nil
	case responseevent.FieldLeadingConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLeadingConfidence(v)
		return nil
	case responseevent.FieldTextConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTextConfidence(v)
		return nil
	case responseevent.FieldTypingCpm:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTypingCpm(v)
		return nil
	case responseevent.FieldTypingMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTypingMs(v)
		return nil
	case responseevent.FieldPauses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPauses(v)
		return nil
	case responseevent.FieldHesitations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHesitations(v)
		return nil
	case responseevent.FieldBackspaces:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBackspaces(v)
		return nil
	case responseevent.FieldPastes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPastes(v)
		return nil
	}
	return fmt.Errorf("unknown ResponseEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResponseEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(responseevent.FieldTextPersona) {
		fields = append(fields, responseevent.FieldTextPersona)
	}
	if m.FieldCleared(responseevent.FieldTextConfidence) {
		fields = append(fields, responseevent.FieldTextConfidence)
	}
	if m.FieldCleared(responseevent.FieldIndicators) {
		fields = append(fields, responseevent.FieldIndicators)
	}
	if m.FieldCleared(responseevent.FieldBehavioralPatterns) {
		fields = append(fields, responseevent.FieldBehavioralPatterns)
	}
	if m.FieldCleared(responseevent.FieldTypingCpm) {
		fields = append(fields, responseevent.FieldTypingCpm)
	}
	if m.FieldCleared(responseevent.FieldTypingMs) {
		fields = append(fields, responseevent.FieldTypingMs)
	}
	if m.FieldCleared(responseevent.FieldPauses) {
		fields = append(fields, responseevent.FieldPauses)
	}
	if m.FieldCleared(responseevent.FieldHesitations) {
		fields = append(fields, responseevent.FieldHesitations)
	}
	if m.FieldCleared(responseevent.FieldBackspaces) {
		fields = append(fields, responseevent.FieldBackspaces)
	}
	if m.FieldCleared(responseevent.FieldPastes) {
		fields = append(fields, responseevent.FieldPastes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResponseEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResponseEventMutation) ClearField(name string) error {
	switch name {
	case responseevent.FieldTextPersona:
		m.ClearTextPersona()
		return nil
	case responseevent.FieldTextConfidence:
		m.ClearTextConfidence()
		return nil
	case responseevent.FieldIndicators:
		m.ClearIndicators()
		return nil
	case responseevent.FieldBehavioralPatterns:
		m.ClearBehavioralPatterns()
		return nil
	case responseevent.FieldTypingCpm:
		m.ClearTypingCpm()
		return nil
	case responseevent.FieldTypingMs:
		m.ClearTypingMs()
		return nil
	case responseevent.FieldPauses:
		m.ClearPauses()
		return nil
	case responseevent.FieldHesitations:
		m.ClearHesitations()
		return nil
	case responseevent.FieldBackspaces:
		m.ClearBackspaces()
		return nil
	case responseevent.FieldPastes:
		m.ClearPastes()
		return nil
	}
	return fmt.Errorf("unknown ResponseEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResponseEventMutation) ResetField(name string) error {
	switch name {
	case responseevent.FieldSequence:
		m.ResetSequence()
		return nil
	case responseevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case responseevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case responseevent.FieldPosition:
		m.ResetPosition()
		return nil
	case responseevent.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case responseevent.FieldAnswer:
		m.ResetAnswer()
		return nil
	case responseevent.FieldLeadingPersona:
		m.ResetLeadingPersona()
		return nil
	case responseevent.FieldLeadingConfidence:
		m.ResetLeadingConfidence()
		return nil
	case responseevent.FieldTextPersona:
		m.ResetTextPersona()
		return nil
	case responseevent.FieldTextConfidence:
		m.ResetTextConfidence()
		return nil
	case responseevent.FieldIndicators:
		m.ResetIndicators()
		return nil
	case responseevent.FieldBehavioralPatterns:
		m.ResetBehavioralPatterns()
		return nil
	case responseevent.FieldTypingCpm:
		m.ResetTypingCpm()
		return nil
	case responseevent.FieldTypingMs:
		m.ResetTypingMs()
		return nil
	case responseevent.FieldPauses:
		m.ResetPauses()
		return nil
	case responseevent.FieldHesitations:
		m.ResetHesitations()
		return nil
	case responseevent.FieldBackspaces:
		m.ResetBackspaces()
		return nil
	case responseevent.FieldPastes:
		m.ResetPastes()
		return nil
	}
	return fmt.Errorf("unknown ResponseEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResponseEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResponseEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResponseEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResponseEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResponseEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResponseEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResponseEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ResponseEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResponseEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ResponseEvent edge %s", name)
}

// SnapshotMutation represents an operation that mutates the Snapshot nodes in the graph.
type SnapshotMutation struct {
	config
	op            Op
	typ           string
	id            *int
	session_id    *string
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	_done         *bool
	data          *map[string]interface{}
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Snapshot, error)
	predicates    []predicate.Snapshot
}

var _ ent.Mutation = (*SnapshotMutation)(nil)

// snapshotOption allows management of the mutation configuration using functional options.
type snapshotOption func(*SnapshotMutation)

// newSnapshotMutation creates new mutation for the Snapshot entity.
func newSnapshotMutation(c config, op Op, opts ...snapshotOption) *SnapshotMutation {
	m := &SnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSnapshotID sets the ID field of the mutation.
func withSnapshotID(id int) snapshotOption {
	return func(m *SnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *Snapshot
		)
		m.oldValue = func(ctx context.Context) (*Snapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Snapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSnapshot sets the old Snapshot of the mutation.
func withSnapshot(node *Snapshot) snapshotOption {
	return func(m *SnapshotMutation) {
		m.oldValue = func(context.Context) (*Snapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SnapshotMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SnapshotMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Snapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *SnapshotMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SnapshotMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldSessionID(ctx context.Context) (v string, err error) {
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
func (m *SnapshotMutation) ResetSessionID() {
	m.session_id = nil
}

// SetSequence sets the "sequence" field.
func (m *SnapshotMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *SnapshotMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *SnapshotMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *SnapshotMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *SnapshotMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *SnapshotMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SnapshotMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *SnapshotMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetDone sets the "done" field.
func (m *SnapshotMutation) SetDone(b bool) {
	m._done = &b
}

// Done returns the value of the "done" field in the mutation.
func (m *SnapshotMutation) Done() (r bool, exists bool) {
	v := m._done
	if v == nil {
		return
	}
	return *v, true
}

// OldDone returns the old "done" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldDone(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDone: %w", err)
	}
	return oldValue.Done, nil
}

// ResetDone resets all changes to the "done" field.
func (m *SnapshotMutation) ResetDone() {
	m._done = nil
}

// SetData sets the "data" field.
func (m *SnapshotMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *SnapshotMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *SnapshotMutation) ResetData() {
	m.data = nil
}

// Where appends a list predicates to the SnapshotMutation builder.
func (m *SnapshotMutation) Where(ps ...predicate.Snapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Snapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Snapshot).
func (m *SnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SnapshotMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.session_id != nil {
		fields = append(fields, snapshot.FieldSessionID)
	}
	if m.sequence != nil {
		fields = append(fields, snapshot.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, snapshot.FieldTimestamp)
	}
	if m._done != nil {
		fields = append(fields, snapshot.FieldDone)
	}
	if m.data != nil {
		fields = append(fields, snapshot.FieldData)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case snapshot.FieldSessionID:
		return m.SessionID()
	case snapshot.FieldSequence:
		return m.Sequence()
	case snapshot.FieldTimestamp:
		return m.Timestamp()
	case snapshot.FieldDone:
		return m.Done()
	case snapshot.FieldData:
		return m.Data()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case snapshot.FieldSessionID:
		return m.OldSessionID(ctx)
	case snapshot.FieldSequence:
		return m.OldSequence(ctx)
	case snapshot.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case snapshot.FieldDone:
		return m.OldDone(ctx)
	case snapshot.FieldData:
		return m.OldData(ctx)
	}
	return nil, fmt.Errorf("unknown Snapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case snapshot.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case snapshot.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case snapshot.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case snapshot.FieldDone:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDone(v)
		return nil
	case snapshot.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	}
	return fmt.Errorf("unknown Snapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, snapshot.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case snapshot.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case snapshot.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown Snapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Snapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SnapshotMutation) ResetField(name string) error {
	switch name {
	case snapshot.FieldSessionID:
		m.ResetSessionID()
		return nil
	case snapshot.FieldSequence:
		m.ResetSequence()
		return nil
	case snapshot.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case snapshot.FieldDone:
		m.ResetDone()
		return nil
	case snapshot.FieldData:
		m.ResetData()
		return nil
	}
	return fmt.Errorf("unknown Snapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Snapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Snapshot edge %s", name)
}
