// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/madboat/madboat/ent/quizevent"
)

// QuizEventCreate is the builder for creating a QuizEvent entity.
type QuizEventCreate struct {
	config
	mutation *QuizEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *QuizEventCreate) SetSequence(v int64) *QuizEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *QuizEventCreate) SetTimestamp(v time.Time) *QuizEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *QuizEventCreate) SetNillableTimestamp(v *time.Time) *QuizEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *QuizEventCreate) SetSessionID(v string) *QuizEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetBankVersion sets the "bank_version" field.
func (_c *QuizEventCreate) SetBankVersion(v string) *QuizEventCreate {
	_c.mutation.SetBankVersion(v)
	return _c
}

// SetPersona sets the "persona" field.
func (_c *QuizEventCreate) SetPersona(v string) *QuizEventCreate {
	_c.mutation.SetPersona(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *QuizEventCreate) SetConfidence(v float64) *QuizEventCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *QuizEventCreate) SetReason(v string) *QuizEventCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetAnswered sets the "answered" field.
func (_c *QuizEventCreate) SetAnswered(v int) *QuizEventCreate {
	_c.mutation.SetAnswered(v)
	return _c
}

// SetScores sets the "scores" field.
func (_c *QuizEventCreate) SetScores(v map[string]float64) *QuizEventCreate {
	_c.mutation.SetScores(v)
	return _c
}

// SetEvidence sets the "evidence" field.
func (_c *QuizEventCreate) SetEvidence(v []string) *QuizEventCreate {
	_c.mutation.SetEvidence(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *QuizEventCreate) SetStartedAt(v time.Time) *QuizEventCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *QuizEventCreate) SetFinishedAt(v time.Time) *QuizEventCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// Mutation returns the QuizEventMutation object of the builder.
func (_c *QuizEventCreate) Mutation() *QuizEventMutation {
	return _c.mutation
}

// Save creates the QuizEvent in the database.
func (_c *QuizEventCreate) Save(ctx context.Context) (*QuizEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizEventCreate) SaveX(ctx context.Context) *QuizEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := quizevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "QuizEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "QuizEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "QuizEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := quizevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BankVersion(); !ok {
		return &ValidationError{Name: "bank_version", err: errors.New(`ent: missing required field "QuizEvent.bank_version"`)}
	}
	if v, ok := _c.mutation.BankVersion(); ok {
		if err := quizevent.BankVersionValidator(v); err != nil {
			return &ValidationError{Name: "bank_version", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.bank_version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Persona(); !ok {
		return &ValidationError{Name: "persona", err: errors.New(`ent: missing required field "QuizEvent.persona"`)}
	}
	if v, ok := _c.mutation.Persona(); ok {
		if err := quizevent.PersonaValidator(v); err != nil {
			return &ValidationError{Name: "persona", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.persona": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "QuizEvent.confidence"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "QuizEvent.reason"`)}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := quizevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.reason": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Answered(); !ok {
		return &ValidationError{Name: "answered", err: errors.New(`ent: missing required field "QuizEvent.answered"`)}
	}
	if _, ok := _c.mutation.Scores(); !ok {
		return &ValidationError{Name: "scores", err: errors.New(`ent: missing required field "QuizEvent.scores"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "QuizEvent.started_at"`)}
	}
	if _, ok := _c.mutation.FinishedAt(); !ok {
		return &ValidationError{Name: "finished_at", err: errors.New(`ent: missing required field "QuizEvent.finished_at"`)}
	}
	return nil
}

func (_c *QuizEventCreate) sqlSave(ctx context.Context) (*QuizEvent, error) {
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

func (_c *QuizEventCreate) createSpec() (*QuizEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizevent.Table, sqlgraph.NewFieldSpec(quizevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(quizevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(quizevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(quizevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.BankVersion(); ok {
		_spec.SetField(quizevent.FieldBankVersion, field.TypeString, value)
		_node.BankVersion = value
	}
	if value, ok := _c.mutation.Persona(); ok {
		_spec.SetField(quizevent.FieldPersona, field.TypeString, value)
		_node.Persona = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(quizevent.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(quizevent.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.Answered(); ok {
		_spec.SetField(quizevent.FieldAnswered, field.TypeInt, value)
		_node.Answered = value
	}
	if value, ok := _c.mutation.Scores(); ok {
		_spec.SetField(quizevent.FieldScores, field.TypeJSON, value)
		_node.Scores = value
	}
	if value, ok := _c.mutation.Evidence(); ok {
		_spec.SetField(quizevent.FieldEvidence, field.TypeJSON, value)
		_node.Evidence = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(quizevent.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(quizevent.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = value
	}
	return _node, _spec
}

// QuizEventCreateBulk is the builder for creating many QuizEvent entities in bulk.
type QuizEventCreateBulk struct {
	config
	err      error
	builders []*QuizEventCreate
}

// Save creates the QuizEvent entities in the database.
func (_c *QuizEventCreateBulk) Save(ctx context.Context) ([]*QuizEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizEventMutation)
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
func (_c *QuizEventCreateBulk) SaveX(ctx context.Context) []*QuizEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
