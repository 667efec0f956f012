// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/madboat/madboat/ent/responseevent"
)

// ResponseEventCreate is the builder for creating a ResponseEvent entity.
type ResponseEventCreate struct {
	config
	mutation *ResponseEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ResponseEventCreate) SetSequence(v int64) *ResponseEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ResponseEventCreate) SetTimestamp(v time.Time) *ResponseEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ResponseEventCreate) SetNillableTimestamp(v *time.Time) *ResponseEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ResponseEventCreate) SetSessionID(v string) *ResponseEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *ResponseEventCreate) SetPosition(v int) *ResponseEventCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *ResponseEventCreate) SetQuestionID(v int) *ResponseEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *ResponseEventCreate) SetAnswer(v string) *ResponseEventCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetLeadingPersona sets the "leading_persona" field.
func (_c *ResponseEventCreate) SetLeadingPersona(v string) *ResponseEventCreate {
	_c.mutation.SetLeadingPersona(v)
	return _c
}

// SetLeadingConfidence sets the "leading_confidence" field.
func (_c *ResponseEventCreate) SetLeadingConfidence(v float64) *ResponseEventCreate {
	_c.mutation.SetLeadingConfidence(v)
	return _c
}

// SetTextPersona sets the "text_persona" field.
func (_c *ResponseEventCreate) SetTextPersona(v string) *ResponseEventCreate {
	_c.mutation.SetTextPersona(v)
	return _c
}

// SetNillableTextPersona sets the "text_persona" field if the given value is not nil.
func (_c *ResponseEventCreate) SetNillableTextPersona(v *string) *ResponseEventCreate {
	if v != nil {
		_c.SetTextPersona(*v)
	}
	return _c
}

// SetTextConfidence sets the "text_confidence" field.
func (_c *ResponseEventCreate) SetTextConfidence(v float64) *ResponseEventCreate {
	_c.mutation.SetTextConfidence(v)
	return _c
}

// SetNillableTextConfidence sets the "text_confidence" field if the given value is not nil.
func (_c *ResponseEventCreate) SetNillableTextConfidence(v *float64) *ResponseEventCreate {
	if v != nil {
		_c.SetTextConfidence(*v)
	}
	return _c
}

// SetIndicators sets the "indicators" field.
func (_c *ResponseEventCreate) SetIndicators(v []string) *ResponseEventCreate {
	_c.mutation.SetIndicators(v)
	return _c
}

// SetBehavioralPatterns sets the "behavioral_patterns" field.
func (_c *ResponseEventCreate) SetBehavioralPatterns(v []string) *ResponseEventCreate {
	_c.mutation.SetBehavioralPatterns(v)
	return _c
}

// SetTypingCpm sets the "typing_cpm" field.
func (_c *ResponseEventCreate) SetTypingCpm(v float64) *ResponseEventCreate {
	_c.mutation.SetTypingCpm(v)
	return _c
}

// SetNillableTypingCpm sets the "typing_cpm" field if the given value is not nil.
func (_c *ResponseEventCreate) SetNillableTypingCpm(v *float64) *ResponseEventCreate {
	if v != nil {
		_c.SetTypingCpm(*v)
	}
	return _c
}

// SetTypingMs sets the "typing_ms" field.
func (_c *ResponseEventCreate) SetTypingMs(v int64) *ResponseEventCreate {
	_c.mutation.SetTypingMs(v)
	return _c
}

// SetNillableTypingMs sets the "typing_ms" field if the given value is not nil.
func (_c *ResponseEventCreate) SetNillableTypingMs(v *int64) *ResponseEventCreate {
	if v != nil {
		_c.SetTypingMs(*v)
	}
	return _c
}

// SetPauses sets the "pauses" field.
func (_c *ResponseEventCreate) SetPauses(v int) *ResponseEventCreate {
	_c.mutation.SetPauses(v)
	return _c
}

// SetNillablePauses sets the "pauses" field if the given value is not nil.
func (_c *ResponseEventCreate) SetNillablePauses(v *int) *ResponseEventCreate {
	if v != nil {
		_c.SetPauses(*v)
	}
	return _c
}

// SetHesitations sets the "hesitations" field.
func (_c *ResponseEventCreate) SetHesitations(v int) *ResponseEventCreate {
	_c.mutation.SetHesitations(v)
	return _c
}

// SetNillableHesitations sets the "hesitations" field if the given value is not nil.
func (_c *ResponseEventCreate) SetNillableHesitations(v *int) *ResponseEventCreate {
	if v != nil {
		_c.SetHesitations(*v)
	}
	return _c
}

// SetBackspaces sets the "backspaces" field.
func (_c *ResponseEventCreate) SetBackspaces(v int) *ResponseEventCreate {
	_c.mutation.SetBackspaces(v)
	return _c
}

// SetNillableBackspaces sets the "backspaces" field if the given value is not nil.
func (_c *ResponseEventCreate) SetNillableBackspaces(v *int) *ResponseEventCreate {
	if v != nil {
		_c.SetBackspaces(*v)
	}
	return _c
}

// SetPastes sets the "pastes" field.
func (_c *ResponseEventCreate) SetPastes(v int) *ResponseEventCreate {
	_c.mutation.SetPastes(v)
	return _c
}

// SetNillablePastes sets the "pastes" field if the given value is not nil.
func (_c *ResponseEventCreate) SetNillablePastes(v *int) *ResponseEventCreate {
	if v != nil {
		_c.SetPastes(*v)
	}
	return _c
}

// Mutation returns the ResponseEventMutation object of the builder.
func (_c *ResponseEventCreate) Mutation() *ResponseEventMutation {
	return _c.mutation
}

// Save creates the ResponseEvent in the database.
func (_c *ResponseEventCreate) Save(ctx context.Context) (*ResponseEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResponseEventCreate) SaveX(ctx context.Context) *ResponseEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResponseEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResponseEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResponseEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := responseevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResponseEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ResponseEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ResponseEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ResponseEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := responseevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "ResponseEvent.position"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "ResponseEvent.question_id"`)}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "ResponseEvent.answer"`)}
	}
	if _, ok := _c.mutation.LeadingPersona(); !ok {
		return &ValidationError{Name: "leading_persona", err: errors.New(`ent: missing required field "ResponseEvent.leading_persona"`)}
	}
	if _, ok := _c.mutation.LeadingConfidence(); !ok {
		return &ValidationError{Name: "leading_confidence", err: errors.New(`ent: missing required field "ResponseEvent.leading_confidence"`)}
	}
	return nil
}

func (_c *ResponseEventCreate) sqlSave(ctx context.Context) (*ResponseEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResponseEventCreate) createSpec() (*ResponseEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ResponseEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(responseevent.Table, sqlgraph.NewFieldSpec(responseevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(responseevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(responseevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(responseevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(responseevent.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(responseevent.FieldQuestionID, field.TypeInt, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(responseevent.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.LeadingPersona(); ok {
		_spec.SetField(responseevent.FieldLeadingPersona, field.TypeString, value)
		_node.LeadingPersona = value
	}
	if value, ok := _c.mutation.LeadingConfidence(); ok {
		_spec.SetField(responseevent.FieldLeadingConfidence, field.TypeFloat64, value)
		_node.LeadingConfidence = value
	}
	if value, ok := _c.mutation.TextPersona(); ok {
		_spec.SetField(responseevent.FieldTextPersona, field.TypeString, value)
		_node.TextPersona = value
	}
	if value, ok := _c.mutation.TextConfidence(); ok {
		_spec.SetField(responseevent.FieldTextConfidence, field.TypeFloat64, value)
		_node.TextConfidence = value
	}
	if value, ok := _c.mutation.Indicators(); ok {
		_spec.SetField(responseevent.FieldIndicators, field.TypeJSON, value)
		_node.Indicators = value
	}
	if value, ok := _c.mutation.BehavioralPatterns(); ok {
		_spec.SetField(responseevent.FieldBehavioralPatterns, field.TypeJSON, value)
		_node.BehavioralPatterns = value
	}
	if value, ok := _c.mutation.TypingCpm(); ok {
		_spec.SetField(responseevent.FieldTypingCpm, field.TypeFloat64, value)
		_node.TypingCpm = value
	}
	if value, ok := _c.mutation.TypingMs(); ok {
		_spec.SetField(responseevent.FieldTypingMs, field.TypeInt64, value)
		_node.TypingMs = value
	}
	if value, ok := _c.mutation.Pauses(); ok {
		_spec.SetField(responseevent.FieldPauses, field.TypeInt, value)
		_node.Pauses = value
	}
	if value, ok := _c.mutation.Hesitations(); ok {
		_spec.SetField(responseevent.FieldHesitations, field.TypeInt, value)
		_node.Hesitations = value
	}
	if value, ok := _c.mutation.Backspaces(); ok {
		_spec.SetField(responseevent.FieldBackspaces, field.TypeInt, value)
		_node.Backspaces = value
	}
	if value, ok := _c.mutation.Pastes(); ok {
		_spec.SetField(responseevent.FieldPastes, field.TypeInt, value)
		_node.Pastes = value
	}
	return _node, _spec
}

// ResponseEventCreateBulk is the builder for creating many ResponseEvent entities in bulk.
type ResponseEventCreateBulk struct {
	config
	err      error
	builders []*ResponseEventCreate
}

// Save creates the ResponseEvent entities in the database.
func (_c *ResponseEventCreateBulk) Save(ctx context.Context) ([]*ResponseEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResponseEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResponseEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *ResponseEventCreateBulk) SaveX(ctx context.Context) []*ResponseEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResponseEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResponseEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
