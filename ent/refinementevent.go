// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/madboat/madboat/ent/refinementevent"
)

// RefinementEvent is the model entity for the RefinementEvent schema.
type RefinementEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Global append order across all event tables
	Sequence int64 `json:"sequence,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// RulePersona holds the value of the "rule_persona" field.
	RulePersona string `json:"rule_persona,omitempty"`
	// RuleConfidence holds the value of the "rule_confidence" field.
	RuleConfidence float64 `json:"rule_confidence,omitempty"`
	// ModelPersona holds the value of the "model_persona" field.
	ModelPersona string `json:"model_persona,omitempty"`
	// ModelConfidence holds the value of the "model_confidence" field.
	ModelConfidence float64 `json:"model_confidence,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// Reasoning holds the value of the "reasoning" field.
	Reasoning    string `json:"reasoning,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RefinementEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case refinementevent.FieldRuleConfidence, refinementevent.FieldModelConfidence:
			values[i] = new(sql.NullFloat64)
		case refinementevent.FieldID, refinementevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case refinementevent.FieldSessionID, refinementevent.FieldRulePersona, refinementevent.FieldModelPersona, refinementevent.FieldModel, refinementevent.FieldReasoning:
			values[i] = new(sql.NullString)
		case refinementevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RefinementEvent fields.
func (_m *RefinementEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case refinementevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case refinementevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case refinementevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case refinementevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case refinementevent.FieldRulePersona:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rule_persona", values[i])
			} else if value.Valid {
				_m.RulePersona = value.String
			}
		case refinementevent.FieldRuleConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field rule_confidence", values[i])
			} else if value.Valid {
				_m.RuleConfidence = value.Float64
			}
		case refinementevent.FieldModelPersona:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_persona", values[i])
			} else if value.Valid {
				_m.ModelPersona = value.String
			}
		case refinementevent.FieldModelConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field model_confidence", values[i])
			} else if value.Valid {
				_m.ModelConfidence = value.Float64
			}
		case refinementevent.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case refinementevent.FieldReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value.Valid {
				_m.Reasoning = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RefinementEvent.
// This includes values selected through modifiers, order, etc.
func (_m *RefinementEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RefinementEvent.
// Note that you need to call RefinementEvent.Unwrap() before calling this method if this RefinementEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RefinementEvent) Update() *RefinementEventUpdateOne {
	return NewRefinementEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RefinementEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RefinementEvent) Unwrap() *RefinementEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RefinementEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RefinementEvent) String() string {
	var builder strings.Builder
	builder.WriteString("RefinementEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("rule_persona=")
	builder.WriteString(_m.RulePersona)
	builder.WriteString(", ")
	builder.WriteString("rule_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.RuleConfidence))
	builder.WriteString(", ")
	builder.WriteString("model_persona=")
	builder.WriteString(_m.ModelPersona)
	builder.WriteString(", ")
	builder.WriteString("model_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.ModelConfidence))
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("reasoning=")
	builder.WriteString(_m.Reasoning)
	builder.WriteByte(')')
	return builder.String()
}

// RefinementEvents is a parsable slice of RefinementEvent.
type RefinementEvents []*RefinementEvent
