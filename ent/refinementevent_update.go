// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/madboat/madboat/ent/predicate"
	"github.com/madboat/madboat/ent/refinementevent"
)

// RefinementEventUpdate is the builder for updating RefinementEvent entities.
type RefinementEventUpdate struct {
	config
	hooks    []Hook
	mutation *RefinementEventMutation
}

// Where appends a list predicates to the RefinementEventUpdate builder.
func (_u *RefinementEventUpdate) Where(ps ...predicate.RefinementEvent) *RefinementEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *RefinementEventUpdate) SetSessionID(v string) *RefinementEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *RefinementEventUpdate) SetNillableSessionID(v *string) *RefinementEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *RefinementEventUpdate) ClearSessionID() *RefinementEventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetRulePersona sets the "rule_persona" field.
func (_u *RefinementEventUpdate) SetRulePersona(v string) *RefinementEventUpdate {
	_u.mutation.SetRulePersona(v)
	return _u
}

// SetNillableRulePersona sets the "rule_persona" field if the given value is not nil.
func (_u *RefinementEventUpdate) SetNillableRulePersona(v *string) *RefinementEventUpdate {
	if v != nil {
		_u.SetRulePersona(*v)
	}
	return _u
}

// SetRuleConfidence sets the "rule_confidence" field.
func (_u *RefinementEventUpdate) SetRuleConfidence(v float64) *RefinementEventUpdate {
	_u.mutation.ResetRuleConfidence()
	_u.mutation.SetRuleConfidence(v)
	return _u
}

// SetNillableRuleConfidence sets the "rule_confidence" field if the given value is not nil.
func (_u *RefinementEventUpdate) SetNillableRuleConfidence(v *float64) *RefinementEventUpdate {
	if v != nil {
		_u.SetRuleConfidence(*v)
	}
	return _u
}

// AddRuleConfidence adds value to the "rule_confidence" field.
func (_u *RefinementEventUpdate) AddRuleConfidence(v float64) *RefinementEventUpdate {
	_u.mutation.AddRuleConfidence(v)
	return _u
}

// SetModelPersona sets the "model_persona" field.
func (_u *RefinementEventUpdate) SetModelPersona(v string) *RefinementEventUpdate {
	_u.mutation.SetModelPersona(v)
	return _u
}

// SetNillableModelPersona sets the "model_persona" field if the given value is not nil.
func (_u *RefinementEventUpdate) SetNillableModelPersona(v *string) *RefinementEventUpdate {
	if v != nil {
		_u.SetModelPersona(*v)
	}
	return _u
}

// SetModelConfidence sets the "model_confidence" field.
func (_u *RefinementEventUpdate) SetModelConfidence(v float64) *RefinementEventUpdate {
	_u.mutation.ResetModelConfidence()
	_u.mutation.SetModelConfidence(v)
	return _u
}

// SetNillableModelConfidence sets the "model_confidence" field if the given value is not nil.
func (_u *RefinementEventUpdate) SetNillableModelConfidence(v *float64) *RefinementEventUpdate {
	if v != nil {
		_u.SetModelConfidence(*v)
	}
	return _u
}

// AddModelConfidence adds value to the "model_confidence" field.
func (_u *RefinementEventUpdate) AddModelConfidence(v float64) *RefinementEventUpdate {
	_u.mutation.AddModelConfidence(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *RefinementEventUpdate) SetModel(v string) *RefinementEventUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *RefinementEventUpdate) SetNillableModel(v *string) *RefinementEventUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *RefinementEventUpdate) SetReasoning(v string) *RefinementEventUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *RefinementEventUpdate) SetNillableReasoning(v *string) *RefinementEventUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// Mutation returns the RefinementEventMutation object of the builder.
func (_u *RefinementEventUpdate) Mutation() *RefinementEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RefinementEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RefinementEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RefinementEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RefinementEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RefinementEventUpdate) check() error {
	if v, ok := _u.mutation.Model(); ok {
		if err := refinementevent.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "RefinementEvent.model": %w`, err)}
		}
	}
	return nil
}

func (_u *RefinementEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(refinementevent.Table, refinementevent.Columns, sqlgraph.NewFieldSpec(refinementevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(refinementevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(refinementevent.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.RulePersona(); ok {
		_spec.SetField(refinementevent.FieldRulePersona, field.TypeString, value)
	}
	if value, ok := _u.mutation.RuleConfidence(); ok {
		_spec.SetField(refinementevent.FieldRuleConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRuleConfidence(); ok {
		_spec.AddField(refinementevent.FieldRuleConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ModelPersona(); ok {
		_spec.SetField(refinementevent.FieldModelPersona, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelConfidence(); ok {
		_spec.SetField(refinementevent.FieldModelConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedModelConfidence(); ok {
		_spec.AddField(refinementevent.FieldModelConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(refinementevent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(refinementevent.FieldReasoning, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{refinementevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RefinementEventUpdateOne is the builder for updating a single RefinementEvent entity.
type RefinementEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RefinementEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *RefinementEventUpdateOne) SetSessionID(v string) *RefinementEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *RefinementEventUpdateOne) SetNillableSessionID(v *string) *RefinementEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *RefinementEventUpdateOne) ClearSessionID() *RefinementEventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetRulePersona sets the "rule_persona" field.
func (_u *RefinementEventUpdateOne) SetRulePersona(v string) *RefinementEventUpdateOne {
	_u.mutation.SetRulePersona(v)
	return _u
}

// SetNillableRulePersona sets the "rule_persona" field if the given value is not nil.
func (_u *RefinementEventUpdateOne) SetNillableRulePersona(v *string) *RefinementEventUpdateOne {
	if v != nil {
		_u.SetRulePersona(*v)
	}
	return _u
}

// SetRuleConfidence sets the "rule_confidence" field.
func (_u *RefinementEventUpdateOne) SetRuleConfidence(v float64) *RefinementEventUpdateOne {
	_u.mutation.ResetRuleConfidence()
	_u.mutation.SetRuleConfidence(v)
	return _u
}

// SetNillableRuleConfidence sets the "rule_confidence" field if the given value is not nil.
func (_u *RefinementEventUpdateOne) SetNillableRuleConfidence(v *float64) *RefinementEventUpdateOne {
	if v != nil {
		_u.SetRuleConfidence(*v)
	}
	return _u
}

// AddRuleConfidence adds value to the "rule_confidence" field.
func (_u *RefinementEventUpdateOne) AddRuleConfidence(v float64) *RefinementEventUpdateOne {
	_u.mutation.AddRuleConfidence(v)
	return _u
}

// SetModelPersona sets the "model_persona" field.
func (_u *RefinementEventUpdateOne) SetModelPersona(v string) *RefinementEventUpdateOne {
	_u.mutation.SetModelPersona(v)
	return _u
}

// SetNillableModelPersona sets the "model_persona" field if the given value is not nil.
func (_u *RefinementEventUpdateOne) SetNillableModelPersona(v *string) *RefinementEventUpdateOne {
	if v != nil {
		_u.SetModelPersona(*v)
	}
	return _u
}

// SetModelConfidence sets the "model_confidence" field.
func (_u *RefinementEventUpdateOne) SetModelConfidence(v float64) *RefinementEventUpdateOne {
	_u.mutation.ResetModelConfidence()
	_u.mutation.SetModelConfidence(v)
	return _u
}

// SetNillableModelConfidence sets the "model_confidence" field if the given value is not nil.
func (_u *RefinementEventUpdateOne) SetNillableModelConfidence(v *float64) *RefinementEventUpdateOne {
	if v != nil {
		_u.SetModelConfidence(*v)
	}
	return _u
}

// AddModelConfidence adds value to the "model_confidence" field.
func (_u *RefinementEventUpdateOne) AddModelConfidence(v float64) *RefinementEventUpdateOne {
	_u.mutation.AddModelConfidence(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *RefinementEventUpdateOne) SetModel(v string) *RefinementEventUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *RefinementEventUpdateOne) SetNillableModel(v *string) *RefinementEventUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *RefinementEventUpdateOne) SetReasoning(v string) *RefinementEventUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *RefinementEventUpdateOne) SetNillableReasoning(v *string) *RefinementEventUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// Mutation returns the RefinementEventMutation object of the builder.
func (_u *RefinementEventUpdateOne) Mutation() *RefinementEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RefinementEventUpdate builder.
func (_u *RefinementEventUpdateOne) Where(ps ...predicate.RefinementEvent) *RefinementEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RefinementEventUpdateOne) Select(field string, fields ...string) *RefinementEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RefinementEvent entity.
func (_u *RefinementEventUpdateOne) Save(ctx context.Context) (*RefinementEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RefinementEventUpdateOne) SaveX(ctx context.Context) *RefinementEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RefinementEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RefinementEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RefinementEventUpdateOne) check() error {
	if v, ok := _u.mutation.Model(); ok {
		if err := refinementevent.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "RefinementEvent.model": %w`, err)}
		}
	}
	return nil
}

func (_u *RefinementEventUpdateOne) sqlSave(ctx context.Context) (_node *RefinementEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(refinementevent.Table, refinementevent.Columns, sqlgraph.NewFieldSpec(refinementevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RefinementEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, refinementevent.FieldID)
		for _, f := range fields {
			if !refinementevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != refinementevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(refinementevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(refinementevent.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.RulePersona(); ok {
		_spec.SetField(refinementevent.FieldRulePersona, field.TypeString, value)
	}
	if value, ok := _u.mutation.RuleConfidence(); ok {
		_spec.SetField(refinementevent.FieldRuleConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRuleConfidence(); ok {
		_spec.AddField(refinementevent.FieldRuleConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ModelPersona(); ok {
		_spec.SetField(refinementevent.FieldModelPersona, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelConfidence(); ok {
		_spec.SetField(refinementevent.FieldModelConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedModelConfidence(); ok {
		_spec.AddField(refinementevent.FieldModelConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(refinementevent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(refinementevent.FieldReasoning, field.TypeString, value)
	}
	_node = &RefinementEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{refinementevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
