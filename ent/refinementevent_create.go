// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/madboat/madboat/ent/refinementevent"
)

// RefinementEventCreate is the builder for creating a RefinementEvent entity.
type RefinementEventCreate struct {
	config
	mutation *RefinementEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *RefinementEventCreate) SetSequence(v int64) *RefinementEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *RefinementEventCreate) SetTimestamp(v time.Time) *RefinementEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *RefinementEventCreate) SetNillableTimestamp(v *time.Time) *RefinementEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *RefinementEventCreate) SetSessionID(v string) *RefinementEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *RefinementEventCreate) SetNillableSessionID(v *string) *RefinementEventCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetRulePersona sets the "rule_persona" field.
func (_c *RefinementEventCreate) SetRulePersona(v string) *RefinementEventCreate {
	_c.mutation.SetRulePersona(v)
	return _c
}

// SetRuleConfidence sets the "rule_confidence" field.
func (_c *RefinementEventCreate) SetRuleConfidence(v float64) *RefinementEventCreate {
	_c.mutation.SetRuleConfidence(v)
	return _c
}

// SetModelPersona sets the "model_persona" field.
func (_c *RefinementEventCreate) SetModelPersona(v string) *RefinementEventCreate {
	_c.mutation.SetModelPersona(v)
	return _c
}

// SetModelConfidence sets the "model_confidence" field.
func (_c *RefinementEventCreate) SetModelConfidence(v float64) *RefinementEventCreate {
	_c.mutation.SetModelConfidence(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *RefinementEventCreate) SetModel(v string) *RefinementEventCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *RefinementEventCreate) SetReasoning(v string) *RefinementEventCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_c *RefinementEventCreate) SetNillableReasoning(v *string) *RefinementEventCreate {
	if v != nil {
		_c.SetReasoning(*v)
	}
	return _c
}

// Mutation returns the RefinementEventMutation object of the builder.
func (_c *RefinementEventCreate) Mutation() *RefinementEventMutation {
	return _c.mutation
}

// Save creates the RefinementEvent in the database.
func (_c *RefinementEventCreate) Save(ctx context.Context) (*RefinementEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RefinementEventCreate) SaveX(ctx context.Context) *RefinementEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RefinementEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RefinementEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RefinementEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := refinementevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Reasoning(); !ok {
		v := refinementevent.DefaultReasoning
		_c.mutation.SetReasoning(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RefinementEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "RefinementEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "RefinementEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.RulePersona(); !ok {
		return &ValidationError{Name: "rule_persona", err: errors.New(`ent: missing required field "RefinementEvent.rule_persona"`)}
	}
	if _, ok := _c.mutation.RuleConfidence(); !ok {
		return &ValidationError{Name: "rule_confidence", err: errors.New(`ent: missing required field "RefinementEvent.rule_confidence"`)}
	}
	if _, ok := _c.mutation.ModelPersona(); !ok {
		return &ValidationError{Name: "model_persona", err: errors.New(`ent: missing required field "RefinementEvent.model_persona"`)}
	}
	if _, ok := _c.mutation.ModelConfidence(); !ok {
		return &ValidationError{Name: "model_confidence", err: errors.New(`ent: missing required field "RefinementEvent.model_confidence"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "RefinementEvent.model"`)}
	}
	if v, ok := _c.mutation.Model(); ok {
		if err := refinementevent.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "RefinementEvent.model": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reasoning(); !ok {
		return &ValidationError{Name: "reasoning", err: errors.New(`ent: missing required field "RefinementEvent.reasoning"`)}
	}
	return nil
}

func (_c *RefinementEventCreate) sqlSave(ctx context.Context) (*RefinementEvent, error) {
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

func (_c *RefinementEventCreate) createSpec() (*RefinementEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &RefinementEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(refinementevent.Table, sqlgraph.NewFieldSpec(refinementevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(refinementevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(refinementevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(refinementevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.RulePersona(); ok {
		_spec.SetField(refinementevent.FieldRulePersona, field.TypeString, value)
		_node.RulePersona = value
	}
	if value, ok := _c.mutation.RuleConfidence(); ok {
		_spec.SetField(refinementevent.FieldRuleConfidence, field.TypeFloat64, value)
		_node.RuleConfidence = value
	}
	if value, ok := _c.mutation.ModelPersona(); ok {
		_spec.SetField(refinementevent.FieldModelPersona, field.TypeString, value)
		_node.ModelPersona = value
	}
	if value, ok := _c.mutation.ModelConfidence(); ok {
		_spec.SetField(refinementevent.FieldModelConfidence, field.TypeFloat64, value)
		_node.ModelConfidence = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(refinementevent.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(refinementevent.FieldReasoning, field.TypeString, value)
		_node.Reasoning = value
	}
	return _node, _spec
}

// RefinementEventCreateBulk is the builder for creating many RefinementEvent entities in bulk.
type RefinementEventCreateBulk struct {
	config
	err      error
	builders []*RefinementEventCreate
}

// Save creates the RefinementEvent entities in the database.
func (_c *RefinementEventCreateBulk) Save(ctx context.Context) ([]*RefinementEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RefinementEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RefinementEventMutation)
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
func (_c *RefinementEventCreateBulk) SaveX(ctx context.Context) []*RefinementEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RefinementEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RefinementEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
