// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/madboat/madboat/ent/predicate"
	"github.com/madboat/madboat/ent/quizevent"
)

// QuizEventUpdate is the builder for updating QuizEvent entities.
type QuizEventUpdate struct {
	config
	hooks    []Hook
	mutation *QuizEventMutation
}

// Where appends a list predicates to the QuizEventUpdate builder.
func (_u *QuizEventUpdate) Where(ps ...predicate.QuizEvent) *QuizEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *QuizEventUpdate) SetSessionID(v string) *QuizEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableSessionID(v *string) *QuizEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetBankVersion sets the "bank_version" field.
func (_u *QuizEventUpdate) SetBankVersion(v string) *QuizEventUpdate {
	_u.mutation.SetBankVersion(v)
	return _u
}

// SetNillableBankVersion sets the "bank_version" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableBankVersion(v *string) *QuizEventUpdate {
	if v != nil {
		_u.SetBankVersion(*v)
	}
	return _u
}

// SetPersona sets the "persona" field.
func (_u *QuizEventUpdate) SetPersona(v string) *QuizEventUpdate {
	_u.mutation.SetPersona(v)
	return _u
}

// SetNillablePersona sets the "persona" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillablePersona(v *string) *QuizEventUpdate {
	if v != nil {
		_u.SetPersona(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *QuizEventUpdate) SetConfidence(v float64) *QuizEventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableConfidence(v *float64) *QuizEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *QuizEventUpdate) AddConfidence(v float64) *QuizEventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *QuizEventUpdate) SetReason(v string) *QuizEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableReason(v *string) *QuizEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetAnswered sets the "answered" field.
func (_u *QuizEventUpdate) SetAnswered(v int) *QuizEventUpdate {
	_u.mutation.ResetAnswered()
	_u.mutation.SetAnswered(v)
	return _u
}

// SetNillableAnswered sets the "answered" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableAnswered(v *int) *QuizEventUpdate {
	if v != nil {
		_u.SetAnswered(*v)
	}
	return _u
}

// AddAnswered adds value to the "answered" field.
func (_u *QuizEventUpdate) AddAnswered(v int) *QuizEventUpdate {
	_u.mutation.AddAnswered(v)
	return _u
}

// SetScores sets the "scores" field.
func (_u *QuizEventUpdate) SetScores(v map[string]float64) *QuizEventUpdate {
	_u.mutation.SetScores(v)
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *QuizEventUpdate) SetEvidence(v []string) *QuizEventUpdate {
	_u.mutation.SetEvidence(v)
	return _u
}

// AppendEvidence appends value to the "evidence" field.
func (_u *QuizEventUpdate) AppendEvidence(v []string) *QuizEventUpdate {
	_u.mutation.AppendEvidence(v)
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *QuizEventUpdate) ClearEvidence() *QuizEventUpdate {
	_u.mutation.ClearEvidence()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *QuizEventUpdate) SetStartedAt(v time.Time) *QuizEventUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableStartedAt(v *time.Time) *QuizEventUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *QuizEventUpdate) SetFinishedAt(v time.Time) *QuizEventUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableFinishedAt(v *time.Time) *QuizEventUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// Mutation returns the QuizEventMutation object of the builder.
func (_u *QuizEventUpdate) Mutation() *QuizEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := quizevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BankVersion(); ok {
		if err := quizevent.BankVersionValidator(v); err != nil {
			return &ValidationError{Name: "bank_version", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.bank_version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Persona(); ok {
		if err := quizevent.PersonaValidator(v); err != nil {
			return &ValidationError{Name: "persona", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.persona": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := quizevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizevent.Table, quizevent.Columns, sqlgraph.NewFieldSpec(quizevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(quizevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.BankVersion(); ok {
		_spec.SetField(quizevent.FieldBankVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Persona(); ok {
		_spec.SetField(quizevent.FieldPersona, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(quizevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(quizevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(quizevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answered(); ok {
		_spec.SetField(quizevent.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswered(); ok {
		_spec.AddField(quizevent.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(quizevent.FieldScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(quizevent.FieldEvidence, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvidence(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizevent.FieldEvidence, value)
		})
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(quizevent.FieldEvidence, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(quizevent.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(quizevent.FieldFinishedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizEventUpdateOne is the builder for updating a single QuizEvent entity.
type QuizEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *QuizEventUpdateOne) SetSessionID(v string) *QuizEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableSessionID(v *string) *QuizEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetBankVersion sets the "bank_version" field.
func (_u *QuizEventUpdateOne) SetBankVersion(v string) *QuizEventUpdateOne {
	_u.mutation.SetBankVersion(v)
	return _u
}

// SetNillableBankVersion sets the "bank_version" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableBankVersion(v *string) *QuizEventUpdateOne {
	if v != nil {
		_u.SetBankVersion(*v)
	}
	return _u
}

// SetPersona sets the "persona" field.
func (_u *QuizEventUpdateOne) SetPersona(v string) *QuizEventUpdateOne {
	_u.mutation.SetPersona(v)
	return _u
}

// SetNillablePersona sets the "persona" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillablePersona(v *string) *QuizEventUpdateOne {
	if v != nil {
		_u.SetPersona(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *QuizEventUpdateOne) SetConfidence(v float64) *QuizEventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableConfidence(v *float64) *QuizEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *QuizEventUpdateOne) AddConfidence(v float64) *QuizEventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *QuizEventUpdateOne) SetReason(v string) *QuizEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableReason(v *string) *QuizEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetAnswered sets the "answered" field.
func (_u *QuizEventUpdateOne) SetAnswered(v int) *QuizEventUpdateOne {
	_u.mutation.ResetAnswered()
	_u.mutation.SetAnswered(v)
	return _u
}

// SetNillableAnswered sets the "answered" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableAnswered(v *int) *QuizEventUpdateOne {
	if v != nil {
		_u.SetAnswered(*v)
	}
	return _u
}

// AddAnswered adds value to the "answered" field.
func (_u *QuizEventUpdateOne) AddAnswered(v int) *QuizEventUpdateOne {
	_u.mutation.AddAnswered(v)
	return _u
}

// SetScores sets the "scores" field.
func (_u *QuizEventUpdateOne) SetScores(v map[string]float64) *QuizEventUpdateOne {
	_u.mutation.SetScores(v)
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *QuizEventUpdateOne) SetEvidence(v []string) *QuizEventUpdateOne {
	_u.mutation.SetEvidence(v)
	return _u
}

// AppendEvidence appends value to the "evidence" field.
func (_u *QuizEventUpdateOne) AppendEvidence(v []string) *QuizEventUpdateOne {
	_u.mutation.AppendEvidence(v)
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *QuizEventUpdateOne) ClearEvidence() *QuizEventUpdateOne {
	_u.mutation.ClearEvidence()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *QuizEventUpdateOne) SetStartedAt(v time.Time) *QuizEventUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableStartedAt(v *time.Time) *QuizEventUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *QuizEventUpdateOne) SetFinishedAt(v time.Time) *QuizEventUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableFinishedAt(v *time.Time) *QuizEventUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// Mutation returns the QuizEventMutation object of the builder.
func (_u *QuizEventUpdateOne) Mutation() *QuizEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizEventUpdate builder.
func (_u *QuizEventUpdateOne) Where(ps ...predicate.QuizEvent) *QuizEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizEventUpdateOne) Select(field string, fields ...string) *QuizEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizEvent entity.
func (_u *QuizEventUpdateOne) Save(ctx context.Context) (*QuizEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizEventUpdateOne) SaveX(ctx context.Context) *QuizEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := quizevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BankVersion(); ok {
		if err := quizevent.BankVersionValidator(v); err != nil {
			return &ValidationError{Name: "bank_version", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.bank_version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Persona(); ok {
		if err := quizevent.PersonaValidator(v); err != nil {
			return &ValidationError{Name: "persona", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.persona": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := quizevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizEventUpdateOne) sqlSave(ctx context.Context) (_node *QuizEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizevent.Table, quizevent.Columns, sqlgraph.NewFieldSpec(quizevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizevent.FieldID)
		for _, f := range fields {
			if !quizevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizevent.FieldID {
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
		_spec.SetField(quizevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.BankVersion(); ok {
		_spec.SetField(quizevent.FieldBankVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Persona(); ok {
		_spec.SetField(quizevent.FieldPersona, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(quizevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(quizevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(quizevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answered(); ok {
		_spec.SetField(quizevent.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswered(); ok {
		_spec.AddField(quizevent.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(quizevent.FieldScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(quizevent.FieldEvidence, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvidence(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizevent.FieldEvidence, value)
		})
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(quizevent.FieldEvidence, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(quizevent.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(quizevent.FieldFinishedAt, field.TypeTime, value)
	}
	_node = &QuizEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
