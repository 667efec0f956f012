// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/madboat/madboat/ent/responseevent"
)

// ResponseEvent is the model entity for the ResponseEvent schema.
type ResponseEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Global append order across all event tables
	Sequence int64 `json:"sequence,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Index in the session's response list
	Position int `json:"position,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID int `json:"question_id,omitempty"`
	// Answer holds the value of the "answer" field.
	Answer string `json:"answer,omitempty"`
	// LeadingPersona holds the value of the "leading_persona" field.
	LeadingPersona string `json:"leading_persona,omitempty"`
	// LeadingConfidence holds the value of the "leading_confidence" field.
	LeadingConfidence float64 `json:"leading_confidence,omitempty"`
	// TextPersona holds the value of the "text_persona" field.
	TextPersona string `json:"text_persona,omitempty"`
	// TextConfidence holds the value of the "text_confidence" field.
	TextConfidence float64 `json:"text_confidence,omitempty"`
	// Indicators holds the value of the "indicators" field.
	Indicators []string `json:"indicators,omitempty"`
	// BehavioralPatterns holds the value of the "behavioral_patterns" field.
	BehavioralPatterns []string `json:"behavioral_patterns,omitempty"`
	// TypingCpm holds the value of the "typing_cpm" field.
	TypingCpm float64 `json:"typing_cpm,omitempty"`
	// TypingMs holds the value of the "typing_ms" field.
	TypingMs int64 `json:"typing_ms,omitempty"`
	// Pauses holds the value of the "pauses" field.
	Pauses int `json:"pauses,omitempty"`
	// Hesitations holds the value of the "hesitations" field.
	Hesitations int `json:"hesitations,omitempty"`
	// Backspaces holds the value of the "backspaces" field.
	Backspaces int `json:"backspaces,omitempty"`
	// Pastes holds the value of the "pastes" field.
	Pastes       int `json:"pastes,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ResponseEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case responseevent.FieldIndicators, responseevent.FieldBehavioralPatterns:
			values[i] = new([]byte)
		case responseevent.FieldLeadingConfidence, responseevent.FieldTextConfidence, responseevent.FieldTypingCpm:
			values[i] = new(sql.NullFloat64)
		case responseevent.FieldID, responseevent.FieldSequence, responseevent.FieldPosition, responseevent.FieldQuestionID, responseevent.FieldTypingMs, responseevent.FieldPauses, responseevent.FieldHesitations, responseevent.FieldBackspaces, responseevent.FieldPastes:
			values[i] = new(sql.NullInt64)
		case responseevent.FieldSessionID, responseevent.FieldAnswer, responseevent.FieldLeadingPersona, responseevent.FieldTextPersona:
			values[i] = new(sql.NullString)
		case responseevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ResponseEvent fields.
func (_m *ResponseEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case responseevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case responseevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case responseevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case responseevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case responseevent.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case responseevent.FieldQuestionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = int(value.Int64)
			}
		case responseevent.FieldAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answer", values[i])
			} else if value.Valid {
				_m.Answer = value.String
			}
		case responseevent.FieldLeadingPersona:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field leading_persona", values[i])
			} else if value.Valid {
				_m.LeadingPersona = value.String
			}
		case responseevent.FieldLeadingConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field leading_confidence", values[i])
			} else if value.Valid {
				_m.LeadingConfidence = value.Float64
			}
		case responseevent.FieldTextPersona:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text_persona", values[i])
			} else if value.Valid {
				_m.TextPersona = value.String
			}
		case responseevent.FieldTextConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field text_confidence", values[i])
			} else if value.Valid {
				_m.TextConfidence = value.Float64
			}
		case responseevent.FieldIndicators:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field indicators", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Indicators); err != nil {
					return fmt.Errorf("unmarshal field indicators: %w", err)
				}
			}
		case responseevent.FieldBehavioralPatterns:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field behavioral_patterns", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BehavioralPatterns); err != nil {
					return fmt.Errorf("unmarshal field behavioral_patterns: %w", err)
				}
			}
		case responseevent.FieldTypingCpm:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field typing_cpm", values[i])
			} else if value.Valid {
				_m.TypingCpm = value.Float64
			}
		case responseevent.FieldTypingMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field typing_ms", values[i])
			} else if value.Valid {
				_m.TypingMs = value.Int64
			}
		case responseevent.FieldPauses:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pauses", values[i])
			} else if value.Valid {
				_m.Pauses = int(value.Int64)
			}
		case responseevent.FieldHesitations:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hesitations", values[i])
			} else if value.Valid {
				_m.Hesitations = int(value.Int64)
			}
		case responseevent.FieldBackspaces:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field backspaces", values[i])
			} else if value.Valid {
				_m.Backspaces = int(value.Int64)
			}
		case responseevent.FieldPastes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pastes", values[i])
			} else if value.Valid {
				_m.Pastes = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ResponseEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ResponseEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ResponseEvent.
// Note that you need to call ResponseEvent.Unwrap() before calling this method if this ResponseEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ResponseEvent) Update() *ResponseEventUpdateOne {
	return NewResponseEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ResponseEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ResponseEvent) Unwrap() *ResponseEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ResponseEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ResponseEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ResponseEvent(")
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
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionID))
	builder.WriteString(", ")
	builder.WriteString("answer=")
	builder.WriteString(_m.Answer)
	builder.WriteString(", ")
	builder.WriteString("leading_persona=")
	builder.WriteString(_m.LeadingPersona)
	builder.WriteString(", ")
	builder.WriteString("leading_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.LeadingConfidence))
	builder.WriteString(", ")
	builder.WriteString("text_persona=")
	builder.WriteString(_m.TextPersona)
	builder.WriteString(", ")
	builder.WriteString("text_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.TextConfidence))
	builder.WriteString(", ")
	builder.WriteString("indicators=")
	builder.WriteString(fmt.Sprintf("%v", _m.Indicators))
	builder.WriteString(", ")
	builder.WriteString("behavioral_patterns=")
	builder.WriteString(fmt.Sprintf("%v", _m.BehavioralPatterns))
	builder.WriteString(", ")
	builder.WriteString("typing_cpm=")
	builder.WriteString(fmt.Sprintf("%v", _m.TypingCpm))
	builder.WriteString(", ")
	builder.WriteString("typing_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TypingMs))
	builder.WriteString(", ")
	builder.WriteString("pauses=")
	builder.WriteString(fmt.Sprintf("%v", _m.Pauses))
	builder.WriteString(", ")
	builder.WriteString("hesitations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Hesitations))
	builder.WriteString(", ")
	builder.WriteString("backspaces=")
	builder.WriteString(fmt.Sprintf("%v", _m.Backspaces))
	builder.WriteString(", ")
	builder.WriteString("pastes=")
	builder.WriteString(fmt.Sprintf("%v", _m.Pastes))
	builder.WriteByte(')')
	return builder.String()
}

// ResponseEvents is a parsable slice of ResponseEvent.
type ResponseEvents []*ResponseEvent
