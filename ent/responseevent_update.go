// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/madboat/madboat/ent/predicate"
	"github.com/madboat/madboat/ent/responseevent"
)

// ResponseEventUpdate is the builder for updating ResponseEvent entities.
type ResponseEventUpdate struct {
	config
	hooks    []Hook
	mutation *ResponseEventMutation
}

// Where appends a list predicates to the ResponseEventUpdate builder.
func (_u *ResponseEventUpdate) Where(ps ...predicate.ResponseEvent) *ResponseEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ResponseEventUpdate) SetSessionID(v string) *ResponseEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableSessionID(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *ResponseEventUpdate) SetPosition(v int) *ResponseEventUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillablePosition(v *int) *ResponseEventUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *ResponseEventUpdate) AddPosition(v int) *ResponseEventUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *ResponseEventUpdate) SetQuestionID(v int) *ResponseEventUpdate {
	_u.mutation.ResetQuestionID()
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableQuestionID(v *int) *ResponseEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// AddQuestionID adds value to the "question_id" field.
func (_u *ResponseEventUpdate) AddQuestionID(v int) *ResponseEventUpdate {
	_u.mutation.AddQuestionID(v)
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *ResponseEventUpdate) SetAnswer(v string) *ResponseEventUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableAnswer(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetLeadingPersona sets the "leading_persona" field.
func (_u *ResponseEventUpdate) SetLeadingPersona(v string) *ResponseEventUpdate {
	_u.mutation.SetLeadingPersona(v)
	return _u
}

// SetNillableLeadingPersona sets the "leading_persona" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableLeadingPersona(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetLeadingPersona(*v)
	}
	return _u
}

// SetLeadingConfidence sets the "leading_confidence" field.
func (_u *ResponseEventUpdate) SetLeadingConfidence(v float64) *ResponseEventUpdate {
	_u.mutation.ResetLeadingConfidence()
	_u.mutation.SetLeadingConfidence(v)
	return _u
}

// SetNillableLeadingConfidence sets the "leading_confidence" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableLeadingConfidence(v *float64) *ResponseEventUpdate {
	if v != nil {
		_u.SetLeadingConfidence(*v)
	}
	return _u
}

// AddLeadingConfidence adds value to the "leading_confidence" field.
func (_u *ResponseEventUpdate) AddLeadingConfidence(v float64) *ResponseEventUpdate {
	_u.mutation.AddLeadingConfidence(v)
	return _u
}

// SetTextPersona sets the "text_persona" field.
func (_u *ResponseEventUpdate) SetTextPersona(v string) *ResponseEventUpdate {
	_u.mutation.SetTextPersona(v)
	return _u
}

// SetNillableTextPersona sets the "text_persona" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableTextPersona(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetTextPersona(*v)
	}
	return _u
}

// ClearTextPersona clears the value of the "text_persona" field.
func (_u *ResponseEventUpdate) ClearTextPersona() *ResponseEventUpdate {
	_u.mutation.ClearTextPersona()
	return _u
}

// SetTextConfidence sets the "text_confidence" field.
func (_u *ResponseEventUpdate) SetTextConfidence(v float64) *ResponseEventUpdate {
	_u.mutation.ResetTextConfidence()
	_u.mutation.SetTextConfidence(v)
	return _u
}

// SetNillableTextConfidence sets the "text_confidence" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableTextConfidence(v *float64) *ResponseEventUpdate {
	if v != nil {
		_u.SetTextConfidence(*v)
	}
	return _u
}

// AddTextConfidence adds value to the "text_confidence" field.
func (_u *ResponseEventUpdate) AddTextConfidence(v float64) *ResponseEventUpdate {
	_u.mutation.AddTextConfidence(v)
	return _u
}

// ClearTextConfidence clears the value of the "text_confidence" field.
func (_u *ResponseEventUpdate) ClearTextConfidence() *ResponseEventUpdate {
	_u.mutation.ClearTextConfidence()
	return _u
}

// SetIndicators sets the "indicators" field.
func (_u *ResponseEventUpdate) SetIndicators(v []string) *ResponseEventUpdate {
	_u.mutation.SetIndicators(v)
	return _u
}

// AppendIndicators appends value to the "indicators" field.
func (_u *ResponseEventUpdate) AppendIndicators(v []string) *ResponseEventUpdate {
	_u.mutation.AppendIndicators(v)
	return _u
}

// ClearIndicators clears the value of the "indicators" field.
func (_u *ResponseEventUpdate) ClearIndicators() *ResponseEventUpdate {
	_u.mutation.ClearIndicators()
	return _u
}

// SetBehavioralPatterns sets the "behavioral_patterns" field.
func (_u *ResponseEventUpdate) SetBehavioralPatterns(v []string) *ResponseEventUpdate {
	_u.mutation.SetBehavioralPatterns(v)
	return _u
}

// AppendBehavioralPatterns appends value to the "behavioral_patterns" field.
func (_u *ResponseEventUpdate) AppendBehavioralPatterns(v []string) *ResponseEventUpdate {
	_u.mutation.AppendBehavioralPatterns(v)
	return _u
}

// ClearBehavioralPatterns clears the value of the "behavioral_patterns" field.
func (_u *ResponseEventUpdate) ClearBehavioralPatterns() *ResponseEventUpdate {
	_u.mutation.ClearBehavioralPatterns()
	return _u
}

// SetTypingCpm sets the "typing_cpm" field.
func (_u *ResponseEventUpdate) SetTypingCpm(v float64) *ResponseEventUpdate {
	_u.mutation.ResetTypingCpm()
	_u.mutation.SetTypingCpm(v)
	return _u
}

// SetNillableTypingCpm sets the "typing_cpm" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableTypingCpm(v *float64) *ResponseEventUpdate {
	if v != nil {
		_u.SetTypingCpm(*v)
	}
	return _u
}

// AddTypingCpm adds value to the "typing_cpm" field.
func (_u *ResponseEventUpdate) AddTypingCpm(v float64) *ResponseEventUpdate {
	_u.mutation.AddTypingCpm(v)
	return _u
}

// ClearTypingCpm clears the value of the "typing_cpm" field.
func (_u *ResponseEventUpdate) ClearTypingCpm() *ResponseEventUpdate {
	_u.mutation.ClearTypingCpm()
	return _u
}

// SetTypingMs sets the "typing_ms" field.
func (_u *ResponseEventUpdate) SetTypingMs(v int64) *ResponseEventUpdate {
	_u.mutation.ResetTypingMs()
	_u.mutation.SetTypingMs(v)
	return _u
}

// SetNillableTypingMs sets the "typing_ms" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableTypingMs(v *int64) *ResponseEventUpdate {
	if v != nil {
		_u.SetTypingMs(*v)
	}
	return _u
}

// AddTypingMs adds value to the "typing_ms" field.
func (_u *ResponseEventUpdate) AddTypingMs(v int64) *ResponseEventUpdate {
	_u.mutation.AddTypingMs(v)
	return _u
}

// ClearTypingMs clears the value of the "typing_ms" field.
func (_u *ResponseEventUpdate) ClearTypingMs() *ResponseEventUpdate {
	_u.mutation.ClearTypingMs()
	return _u
}

// SetPauses sets the "pauses" field.
func (_u *ResponseEventUpdate) SetPauses(v int) *ResponseEventUpdate {
	_u.mutation.ResetPauses()
	_u.mutation.SetPauses(v)
	return _u
}

// SetNillablePauses sets the "pauses" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillablePauses(v *int) *ResponseEventUpdate {
	if v != nil {
		_u.SetPauses(*v)
	}
	return _u
}

// AddPauses adds value to the "pauses" field.
func (_u *ResponseEventUpdate) AddPauses(v int) *ResponseEventUpdate {
	_u.mutation.AddPauses(v)
	return _u
}

// ClearPauses clears the value of the "pauses" field.
func (_u *ResponseEventUpdate) ClearPauses() *ResponseEventUpdate {
	_u.mutation.ClearPauses()
	return _u
}

// SetHesitations sets the "hesitations" field.
func (_u *ResponseEventUpdate) SetHesitations(v int) *ResponseEventUpdate {
	_u.mutation.ResetHesitations()
	_u.mutation.SetHesitations(v)
	return _u
}

// SetNillableHesitations sets the "hesitations" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableHesitations(v *int) *ResponseEventUpdate {
	if v != nil {
		_u.SetHesitations(*v)
	}
	return _u
}

// AddHesitations adds value to the "hesitations" field.
func (_u *ResponseEventUpdate) AddHesitations(v int) *ResponseEventUpdate {
	_u.mutation.AddHesitations(v)
	return _u
}

// ClearHesitations clears the value of the "hesitations" field.
func (_u *ResponseEventUpdate) ClearHesitations() *ResponseEventUpdate {
	_u.mutation.ClearHesitations()
	return _u
}

// SetBackspaces sets the "backspaces" field.
func (_u *ResponseEventUpdate) SetBackspaces(v int) *ResponseEventUpdate {
	_u.mutation.ResetBackspaces()
	_u.mutation.SetBackspaces(v)
	return _u
}

// SetNillableBackspaces sets the "backspaces" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableBackspaces(v *int) *ResponseEventUpdate {
	if v != nil {
		_u.SetBackspaces(*v)
	}
	return _u
}

// AddBackspaces adds value to the "backspaces" field.
func (_u *ResponseEventUpdate) AddBackspaces(v int) *ResponseEventUpdate {
	_u.mutation.AddBackspaces(v)
	return _u
}

// ClearBackspaces clears the value of the "backspaces" field.
func (_u *ResponseEventUpdate) ClearBackspaces() *ResponseEventUpdate {
	_u.mutation.ClearBackspaces()
	return _u
}

// SetPastes sets the "pastes" field.
func (_u *ResponseEventUpdate) SetPastes(v int) *ResponseEventUpdate {
	_u.mutation.ResetPastes()
	_u.mutation.SetPastes(v)
	return _u
}

// SetNillablePastes sets the "pastes" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillablePastes(v *int) *ResponseEventUpdate {
	if v != nil {
		_u.SetPastes(*v)
	}
	return _u
}

// AddPastes adds value to the "pastes" field.
func (_u *ResponseEventUpdate) AddPastes(v int) *ResponseEventUpdate {
	_u.mutation.AddPastes(v)
	return _u
}

// ClearPastes clears the value of the "pastes" field.
func (_u *ResponseEventUpdate) ClearPastes() *ResponseEventUpdate {
	_u.mutation.ClearPastes()
	return _u
}

// Mutation returns the ResponseEventMutation object of the builder.
func (_u *ResponseEventUpdate) Mutation() *ResponseEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResponseEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResponseEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResponseEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResponseEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResponseEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := responseevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ResponseEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(responseevent.Table, responseevent.Columns, sqlgraph.NewFieldSpec(responseevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(responseevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(responseevent.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(responseevent.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(responseevent.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionID(); ok {
		_spec.AddField(responseevent.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(responseevent.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.LeadingPersona(); ok {
		_spec.SetField(responseevent.FieldLeadingPersona, field.TypeString, value)
	}
	if value, ok := _u.mutation.LeadingConfidence(); ok {
		_spec.SetField(responseevent.FieldLeadingConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLeadingConfidence(); ok {
		_spec.AddField(responseevent.FieldLeadingConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TextPersona(); ok {
		_spec.SetField(responseevent.FieldTextPersona, field.TypeString, value)
	}
	if _u.mutation.TextPersonaCleared() {
		_spec.ClearField(responseevent.FieldTextPersona, field.TypeString)
	}
	if value, ok := _u.mutation.TextConfidence(); ok {
		_spec.SetField(responseevent.FieldTextConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTextConfidence(); ok {
		_spec.AddField(responseevent.FieldTextConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.TextConfidenceCleared() {
		_spec.ClearField(responseevent.FieldTextConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Indicators(); ok {
		_spec.SetField(responseevent.FieldIndicators, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIndicators(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, responseevent.FieldIndicators, value)
		})
	}
	if _u.mutation.IndicatorsCleared() {
		_spec.ClearField(responseevent.FieldIndicators, field.TypeJSON)
	}
	if value, ok := _u.mutation.BehavioralPatterns(); ok {
		_spec.SetField(responseevent.FieldBehavioralPatterns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBehavioralPatterns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, responseevent.FieldBehavioralPatterns, value)
		})
	}
	if _u.mutation.BehavioralPatternsCleared() {
		_spec.ClearField(responseevent.FieldBehavioralPatterns, field.TypeJSON)
	}
	if value, ok := _u.mutation.TypingCpm(); ok {
		_spec.SetField(responseevent.FieldTypingCpm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTypingCpm(); ok {
		_spec.AddField(responseevent.FieldTypingCpm, field.TypeFloat64, value)
	}
	if _u.mutation.TypingCpmCleared() {
		_spec.ClearField(responseevent.FieldTypingCpm, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TypingMs(); ok {
		_spec.SetField(responseevent.FieldTypingMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTypingMs(); ok {
		_spec.AddField(responseevent.FieldTypingMs, field.TypeInt64, value)
	}
	if _u.mutation.TypingMsCleared() {
		_spec.ClearField(responseevent.FieldTypingMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.Pauses(); ok {
		_spec.SetField(responseevent.FieldPauses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPauses(); ok {
		_spec.AddField(responseevent.FieldPauses, field.TypeInt, value)
	}
	if _u.mutation.PausesCleared() {
		_spec.ClearField(responseevent.FieldPauses, field.TypeInt)
	}
	if value, ok := _u.mutation.Hesitations(); ok {
		_spec.SetField(responseevent.FieldHesitations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHesitations(); ok {
		_spec.AddField(responseevent.FieldHesitations, field.TypeInt, value)
	}
	if _u.mutation.HesitationsCleared() {
		_spec.ClearField(responseevent.FieldHesitations, field.TypeInt)
	}
	if value, ok := _u.mutation.Backspaces(); ok {
		_spec.SetField(responseevent.FieldBackspaces, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBackspaces(); ok {
		_spec.AddField(responseevent.FieldBackspaces, field.TypeInt, value)
	}
	if _u.mutation.BackspacesCleared() {
		_spec.ClearField(responseevent.FieldBackspaces, field.TypeInt)
	}
	if value, ok := _u.mutation.Pastes(); ok {
		_spec.SetField(responseevent.FieldPastes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPastes(); ok {
		_spec.AddField(responseevent.FieldPastes, field.TypeInt, value)
	}
	if _u.mutation.PastesCleared() {
		_spec.ClearField(responseevent.FieldPastes, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{responseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResponseEventUpdateOne is the builder for updating a single ResponseEvent entity.
type ResponseEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResponseEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ResponseEventUpdateOne) SetSessionID(v string) *ResponseEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableSessionID(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *ResponseEventUpdateOne) SetPosition(v int) *ResponseEventUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillablePosition(v *int) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *ResponseEventUpdateOne) AddPosition(v int) *ResponseEventUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *ResponseEventUpdateOne) SetQuestionID(v int) *ResponseEventUpdateOne {
	_u.mutation.ResetQuestionID()
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableQuestionID(v *int) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// AddQuestionID adds value to the "question_id" field.
func (_u *ResponseEventUpdateOne) AddQuestionID(v int) *ResponseEventUpdateOne {
	_u.mutation.AddQuestionID(v)
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *ResponseEventUpdateOne) SetAnswer(v string) *ResponseEventUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableAnswer(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetLeadingPersona sets the "leading_persona" field.
func (_u *ResponseEventUpdateOne) SetLeadingPersona(v string) *ResponseEventUpdateOne {
	_u.mutation.SetLeadingPersona(v)
	return _u
}

// SetNillableLeadingPersona sets the "leading_persona" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableLeadingPersona(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetLeadingPersona(*v)
	}
	return _u
}

// SetLeadingConfidence sets the "leading_confidence" field.
func (_u *ResponseEventUpdateOne) SetLeadingConfidence(v float64) *ResponseEventUpdateOne {
	_u.mutation.ResetLeadingConfidence()
	_u.mutation.SetLeadingConfidence(v)
	return _u
}

// SetNillableLeadingConfidence sets the "leading_confidence" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableLeadingConfidence(v *float64) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetLeadingConfidence(*v)
	}
	return _u
}

// AddLeadingConfidence adds value to the "leading_confidence" field.
func (_u *ResponseEventUpdateOne) AddLeadingConfidence(v float64) *ResponseEventUpdateOne {
	_u.mutation.AddLeadingConfidence(v)
	return _u
}

// SetTextPersona sets the "text_persona" field.
func (_u *ResponseEventUpdateOne) SetTextPersona(v string) *ResponseEventUpdateOne {
	_u.mutation.SetTextPersona(v)
	return _u
}

// SetNillableTextPersona sets the "text_persona" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableTextPersona(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetTextPersona(*v)
	}
	return _u
}

// ClearTextPersona clears the value of the "text_persona" field.
func (_u *ResponseEventUpdateOne) ClearTextPersona() *ResponseEventUpdateOne {
	_u.mutation.ClearTextPersona()
	return _u
}

// SetTextConfidence sets the "text_confidence" field.
func (_u *ResponseEventUpdateOne) SetTextConfidence(v float64) *ResponseEventUpdateOne {
	_u.mutation.ResetTextConfidence()
	_u.mutation.SetTextConfidence(v)
	return _u
}

// SetNillableTextConfidence sets the "text_confidence" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableTextConfidence(v *float64) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetTextConfidence(*v)
	}
	return _u
}

// AddTextConfidence adds value to the "text_confidence" field.
func (_u *ResponseEventUpdateOne) AddTextConfidence(v float64) *ResponseEventUpdateOne {
	_u.mutation.AddTextConfidence(v)
	return _u
}

// ClearTextConfidence clears the value of the "text_confidence" field.
func (_u *ResponseEventUpdateOne) ClearTextConfidence() *ResponseEventUpdateOne {
	_u.mutation.ClearTextConfidence()
	return _u
}

// SetIndicators sets the "indicators" field.
func (_u *ResponseEventUpdateOne) SetIndicators(v []string) *ResponseEventUpdateOne {
	_u.mutation.SetIndicators(v)
	return _u
}

// AppendIndicators appends value to the "indicators" field.
func (_u *ResponseEventUpdateOne) AppendIndicators(v []string) *ResponseEventUpdateOne {
	_u.mutation.AppendIndicators(v)
	return _u
}

// ClearIndicators clears the value of the "indicators" field.
func (_u *ResponseEventUpdateOne) ClearIndicators() *ResponseEventUpdateOne {
	_u.mutation.ClearIndicators()
	return _u
}

// SetBehavioralPatterns sets the "behavioral_patterns" field.
func (_u *ResponseEventUpdateOne) SetBehavioralPatterns(v []string) *ResponseEventUpdateOne {
	_u.mutation.SetBehavioralPatterns(v)
	return _u
}

// AppendBehavioralPatterns appends value to the "behavioral_patterns" field.
func (_u *ResponseEventUpdateOne) AppendBehavioralPatterns(v []string) *ResponseEventUpdateOne {
	_u.mutation.AppendBehavioralPatterns(v)
	return _u
}

// ClearBehavioralPatterns clears the value of the "behavioral_patterns" field.
func (_u *ResponseEventUpdateOne) ClearBehavioralPatterns() *ResponseEventUpdateOne {
	_u.mutation.ClearBehavioralPatterns()
	return _u
}

// SetTypingCpm sets the "typing_cpm" field.
func (_u *ResponseEventUpdateOne) SetTypingCpm(v float64) *ResponseEventUpdateOne {
	_u.mutation.ResetTypingCpm()
	_u.mutation.SetTypingCpm(v)
	return _u
}

// SetNillableTypingCpm sets the "typing_cpm" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableTypingCpm(v *float64) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetTypingCpm(*v)
	}
	return _u
}

// AddTypingCpm adds value to the "typing_cpm" field.
func (_u *ResponseEventUpdateOne) AddTypingCpm(v float64) *ResponseEventUpdateOne {
	_u.mutation.AddTypingCpm(v)
	return _u
}

// ClearTypingCpm clears the value of the "typing_cpm" field.
func (_u *ResponseEventUpdateOne) ClearTypingCpm() *ResponseEventUpdateOne {
	_u.mutation.ClearTypingCpm()
	return _u
}

// SetTypingMs sets the "typing_ms" field.
func (_u *ResponseEventUpdateOne) SetTypingMs(v int64) *ResponseEventUpdateOne {
	_u.mutation.ResetTypingMs()
	_u.mutation.SetTypingMs(v)
	return _u
}

// SetNillableTypingMs sets the "typing_ms" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableTypingMs(v *int64) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetTypingMs(*v)
	}
	return _u
}

// AddTypingMs adds value to the "typing_ms" field.
func (_u *ResponseEventUpdateOne) AddTypingMs(v int64) *ResponseEventUpdateOne {
	_u.mutation.AddTypingMs(v)
	return _u
}

// ClearTypingMs clears the value of the "typing_ms" field.
func (_u *ResponseEventUpdateOne) ClearTypingMs() *ResponseEventUpdateOne {
	_u.mutation.ClearTypingMs()
	return _u
}

// SetPauses sets the "pauses" field.
func (_u *ResponseEventUpdateOne) SetPauses(v int) *ResponseEventUpdateOne {
	_u.mutation.ResetPauses()
	_u.mutation.SetPauses(v)
	return _u
}

// SetNillablePauses sets the "pauses" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillablePauses(v *int) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetPauses(*v)
	}
	return _u
}

// AddPauses adds value to the "pauses" field.
func (_u *ResponseEventUpdateOne) AddPauses(v int) *ResponseEventUpdateOne {
	_u.mutation.AddPauses(v)
	return _u
}

// ClearPauses clears the value of the "pauses" field.
func (_u *ResponseEventUpdateOne) ClearPauses() *ResponseEventUpdateOne {
	_u.mutation.ClearPauses()
	return _u
}

// SetHesitations sets the "hesitations" field.
func (_u *ResponseEventUpdateOne) SetHesitations(v int) *ResponseEventUpdateOne {
	_u.mutation.ResetHesitations()
	_u.mutation.SetHesitations(v)
	return _u
}

// SetNillableHesitations sets the "hesitations" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableHesitations(v *int) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetHesitations(*v)
	}
	return _u
}

// AddHesitations adds value to the "hesitations" field.
func (_u *ResponseEventUpdateOne) AddHesitations(v int) *ResponseEventUpdateOne {
	_u.mutation.AddHesitations(v)
	return _u
}

// ClearHesitations clears the value of the "hesitations" field.
func (_u *ResponseEventUpdateOne) ClearHesitations() *ResponseEventUpdateOne {
	_u.mutation.ClearHesitations()
	return _u
}

// SetBackspaces sets the "backspaces" field.
func (_u *ResponseEventUpdateOne) SetBackspaces(v int) *ResponseEventUpdateOne {
	_u.mutation.ResetBackspaces()
	_u.mutation.SetBackspaces(v)
	return _u
}

// SetNillableBackspaces sets the "backspaces" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableBackspaces(v *int) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetBackspaces(*v)
	}
	return _u
}

// AddBackspaces adds value to the "backspaces" field.
func (_u *ResponseEventUpdateOne) AddBackspaces(v int) *ResponseEventUpdateOne {
	_u.mutation.AddBackspaces(v)
	return _u
}

// ClearBackspaces clears the value of the "backspaces" field.
func (_u *ResponseEventUpdateOne) ClearBackspaces() *ResponseEventUpdateOne {
	_u.mutation.ClearBackspaces()
	return _u
}

// SetPastes sets the "pastes" field.
func (_u *ResponseEventUpdateOne) SetPastes(v int) *ResponseEventUpdateOne {
	_u.mutation.ResetPastes()
	_u.mutation.SetPastes(v)
	return _u
}

// SetNillablePastes sets the "pastes" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillablePastes(v *int) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetPastes(*v)
	}
	return _u
}

// AddPastes adds value to the "pastes" field.
func (_u *ResponseEventUpdateOne) AddPastes(v int) *ResponseEventUpdateOne {
	_u.mutation.AddPastes(v)
	return _u
}

// ClearPastes clears the value of the "pastes" field.
func (_u *ResponseEventUpdateOne) ClearPastes() *ResponseEventUpdateOne {
	_u.mutation.ClearPastes()
	return _u
}

// Mutation returns the ResponseEventMutation object of the builder.
func (_u *ResponseEventUpdateOne) Mutation() *ResponseEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResponseEventUpdate builder.
func (_u *ResponseEventUpdateOne) Where(ps ...predicate.ResponseEvent) *ResponseEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResponseEventUpdateOne) Select(field string, fields ...string) *ResponseEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResponseEvent entity.
func (_u *ResponseEventUpdateOne) Save(ctx context.Context) (*ResponseEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResponseEventUpdateOne) SaveX(ctx context.Context) *ResponseEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResponseEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResponseEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResponseEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := responseevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ResponseEventUpdateOne) sqlSave(ctx context.Context) (_node *ResponseEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(responseevent.Table, responseevent.Columns, sqlgraph.NewFieldSpec(responseevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResponseEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, responseevent.FieldID)
		for _, f := range fields {
			if !responseevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != responseevent.FieldID {
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
		_spec.SetField(responseevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(responseevent.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(responseevent.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(responseevent.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionID(); ok {
		_spec.AddField(responseevent.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(responseevent.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.LeadingPersona(); ok {
		_spec.SetField(responseevent.FieldLeadingPersona, field.TypeString, value)
	}
	if value, ok := _u.mutation.LeadingConfidence(); ok {
		_spec.SetField(responseevent.FieldLeadingConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLeadingConfidence(); ok {
		_spec.AddField(responseevent.FieldLeadingConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TextPersona(); ok {
		_spec.SetField(responseevent.FieldTextPersona, field.TypeString, value)
	}
	if _u.mutation.TextPersonaCleared() {
		_spec.ClearField(responseevent.FieldTextPersona, field.TypeString)
	}
	if value, ok := _u.mutation.TextConfidence(); ok {
		_spec.SetField(responseevent.FieldTextConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTextConfidence(); ok {
		_spec.AddField(responseevent.FieldTextConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.TextConfidenceCleared() {
		_spec.ClearField(responseevent.FieldTextConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Indicators(); ok {
		_spec.SetField(responseevent.FieldIndicators, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIndicators(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, responseevent.FieldIndicators, value)
		})
	}
	if _u.mutation.IndicatorsCleared() {
		_spec.ClearField(responseevent.FieldIndicators, field.TypeJSON)
	}
	if value, ok := _u.mutation.BehavioralPatterns(); ok {
		_spec.SetField(responseevent.FieldBehavioralPatterns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBehavioralPatterns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, responseevent.FieldBehavioralPatterns, value)
		})
	}
	if _u.mutation.BehavioralPatternsCleared() {
		_spec.ClearField(responseevent.FieldBehavioralPatterns, field.TypeJSON)
	}
	if value, ok := _u.mutation.TypingCpm(); ok {
		_spec.SetField(responseevent.FieldTypingCpm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTypingCpm(); ok {
		_spec.AddField(responseevent.FieldTypingCpm, field.TypeFloat64, value)
	}
	if _u.mutation.TypingCpmCleared() {
		_spec.ClearField(responseevent.FieldTypingCpm, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TypingMs(); ok {
		_spec.SetField(responseevent.FieldTypingMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTypingMs(); ok {
		_spec.AddField(responseevent.FieldTypingMs, field.TypeInt64, value)
	}
	if _u.mutation.TypingMsCleared() {
		_spec.ClearField(responseevent.FieldTypingMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.Pauses(); ok {
		_spec.SetField(responseevent.FieldPauses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPauses(); ok {
		_spec.AddField(responseevent.FieldPauses, field.TypeInt, value)
	}
	if _u.mutation.PausesCleared() {
		_spec.ClearField(responseevent.FieldPauses, field.TypeInt)
	}
	if value, ok := _u.mutation.Hesitations(); ok {
		_spec.SetField(responseevent.FieldHesitations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHesitations(); ok {
		_spec.AddField(responseevent.FieldHesitations, field.TypeInt, value)
	}
	if _u.mutation.HesitationsCleared() {
		_spec.ClearField(responseevent.FieldHesitations, field.TypeInt)
	}
	if value, ok := _u.mutation.Backspaces(); ok {
		_spec.SetField(responseevent.FieldBackspaces, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBackspaces(); ok {
		_spec.AddField(responseevent.FieldBackspaces, field.TypeInt, value)
	}
	if _u.mutation.BackspacesCleared() {
		_spec.ClearField(responseevent.FieldBackspaces, field.TypeInt)
	}
	if value, ok := _u.mutation.Pastes(); ok {
		_spec.SetField(responseevent.FieldPastes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPastes(); ok {
		_spec.AddField(responseevent.FieldPastes, field.TypeInt, value)
	}
	if _u.mutation.PastesCleared() {
		_spec.ClearField(responseevent.FieldPastes, field.TypeInt)
	}
	_node = &ResponseEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{responseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
