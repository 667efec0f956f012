// Code generated by ent, DO NOT EDIT.

package responseevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the responseevent type in the database.
	Label = "response_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldAnswer holds the string denoting the answer field in the database.
	FieldAnswer = "answer"
	// FieldLeadingPersona holds the string denoting the leading_persona field in the database.
	FieldLeadingPersona = "leading_persona"
	// FieldLeadingConfidence holds the string denoting the leading_confidence field in the database.
	FieldLeadingConfidence = "leading_confidence"
	// FieldTextPersona holds the string denoting the text_persona field in the database.
	FieldTextPersona = "text_persona"
	// FieldTextConfidence holds the string denoting the text_confidence field in the database.
	FieldTextConfidence = "text_confidence"
	// FieldIndicators holds the string denoting the indicators field in the database.
	FieldIndicators = "indicators"
	// FieldBehavioralPatterns holds the string denoting the behavioral_patterns field in the database.
	FieldBehavioralPatterns = "behavioral_patterns"
	// FieldTypingCpm holds the string denoting the typing_cpm field in the database.
	FieldTypingCpm = "typing_cpm"
	// FieldTypingMs holds the string denoting the typing_ms field in the database.
	FieldTypingMs = "typing_ms"
	// FieldPauses holds the string denoting the pauses field in the database.
	FieldPauses = "pauses"
	// FieldHesitations holds the string denoting the hesitations field in the database.
	FieldHesitations = "hesitations"
	// FieldBackspaces holds the string denoting the backspaces field in the database.
	FieldBackspaces = "backspaces"
	// FieldPastes holds the string denoting the pastes field in the database.
	FieldPastes = "pastes"
	// Table holds the table name of the responseevent in the database.
	Table = "response_events"
)

// Columns holds all SQL columns for responseevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldPosition,
	FieldQuestionID,
	FieldAnswer,
	FieldLeadingPersona,
	FieldLeadingConfidence,
	FieldTextPersona,
	FieldTextConfidence,
	FieldIndicators,
	FieldBehavioralPatterns,
	FieldTypingCpm,
	FieldTypingMs,
	FieldPauses,
	FieldHesitations,
	FieldBackspaces,
	FieldPastes,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
)

// OrderOption defines the ordering options for the ResponseEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByAnswer orders the results by the answer field.
func ByAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswer, opts...).ToFunc()
}

// ByLeadingPersona orders the results by the leading_persona field.
func ByLeadingPersona(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeadingPersona, opts...).ToFunc()
}

// ByLeadingConfidence orders the results by the leading_confidence field.
func ByLeadingConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeadingConfidence, opts...).ToFunc()
}

// ByTextPersona orders the results by the text_persona field.
func ByTextPersona(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTextPersona, opts...).ToFunc()
}

// ByTextConfidence orders the results by the text_confidence field.
func ByTextConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTextConfidence, opts...).ToFunc()
}

// ByTypingCpm orders the results by the typing_cpm field.
func ByTypingCpm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTypingCpm, opts...).ToFunc()
}

// ByTypingMs orders the results by the typing_ms field.
func ByTypingMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTypingMs, opts...).ToFunc()
}

// ByPauses orders the results by the pauses field.
func ByPauses(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPauses, opts...).ToFunc()
}

// ByHesitations orders the results by the hesitations field.
func ByHesitations(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHesitations, opts...).ToFunc()
}

// ByBackspaces orders the results by the backspaces field.
func ByBackspaces(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBackspaces, opts...).ToFunc()
}

// ByPastes orders the results by the pastes field.
func ByPastes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPastes, opts...).ToFunc()
}
