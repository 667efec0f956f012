// Code generated by ent, DO NOT EDIT.

package refinementevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the refinementevent type in the database.
	Label = "refinement_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldRulePersona holds the string denoting the rule_persona field in the database.
	FieldRulePersona = "rule_persona"
	// FieldRuleConfidence holds the string denoting the rule_confidence field in the database.
	FieldRuleConfidence = "rule_confidence"
	// FieldModelPersona holds the string denoting the model_persona field in the database.
	FieldModelPersona = "model_persona"
	// FieldModelConfidence holds the string denoting the model_confidence field in the database.
	FieldModelConfidence = "model_confidence"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldReasoning holds the string denoting the reasoning field in the database.
	FieldReasoning = "reasoning"
	// Table holds the table name of the refinementevent in the database.
	Table = "refinement_events"
)

// Columns holds all SQL columns for refinementevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldRulePersona,
	FieldRuleConfidence,
	FieldModelPersona,
	FieldModelConfidence,
	FieldModel,
	FieldReasoning,
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
	// ModelValidator is a validator for the "model" field. It is called by the builders before save.
	ModelValidator func(string) error
	// DefaultReasoning holds the default value on creation for the "reasoning" field.
	DefaultReasoning string
)

// OrderOption defines the ordering options for the RefinementEvent queries.
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

// ByRulePersona orders the results by the rule_persona field.
func ByRulePersona(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRulePersona, opts...).ToFunc()
}

// ByRuleConfidence orders the results by the rule_confidence field.
func ByRuleConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRuleConfidence, opts...).ToFunc()
}

// ByModelPersona orders the results by the model_persona field.
func ByModelPersona(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelPersona, opts...).ToFunc()
}

// ByModelConfidence orders the results by the model_confidence field.
func ByModelConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelConfidence, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByReasoning orders the results by the reasoning field.
func ByReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoning, opts...).ToFunc()
}
