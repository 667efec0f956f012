// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_model",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
		},
	}
	// QuizEventsColumns holds the columns for the "quiz_events" table.
	QuizEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "bank_version", Type: field.TypeString},
		{Name: "persona", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "reason", Type: field.TypeString},
		{Name: "answered", Type: field.TypeInt},
		{Name: "scores", Type: field.TypeJSON},
		{Name: "evidence", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime},
	}
	// QuizEventsTable holds the schema information for the "quiz_events" table.
	QuizEventsTable = &schema.Table{
		Name:       "quiz_events",
		Columns:    QuizEventsColumns,
		PrimaryKey: []*schema.Column{QuizEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[1]},
			},
			{
				Name:    "quizevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[2]},
			},
			{
				Name:    "quizevent_persona",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[5]},
			},
		},
	}
	// RefinementEventsColumns holds the columns for the "refinement_events" table.
	RefinementEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "rule_persona", Type: field.TypeString},
		{Name: "rule_confidence", Type: field.TypeFloat64},
		{Name: "model_persona", Type: field.TypeString},
		{Name: "model_confidence", Type: field.TypeFloat64},
		{Name: "model", Type: field.TypeString},
		{Name: "reasoning", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// RefinementEventsTable holds the schema information for the "refinement_events" table.
	RefinementEventsTable = &schema.Table{
		Name:       "refinement_events",
		Columns:    RefinementEventsColumns,
		PrimaryKey: []*schema.Column{RefinementEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "refinementevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{RefinementEventsColumns[1]},
			},
			{
				Name:    "refinementevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{RefinementEventsColumns[2]},
			},
			{
				Name:    "refinementevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{RefinementEventsColumns[3]},
			},
		},
	}
	// ResponseEventsColumns holds the columns for the "response_events" table.
	ResponseEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt},
		{Name: "question_id", Type: field.TypeInt},
		{Name: "answer", Type: field.TypeString, Size: 2147483647},
		{Name: "leading_persona", Type: field.TypeString},
		{Name: "leading_confidence", Type: field.TypeFloat64},
		{Name: "text_persona", Type: field.TypeString, Nullable: true},
		{Name: "text_confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "indicators", Type: field.TypeJSON, Nullable: true},
		{Name: "behavioral_patterns", Type: field.TypeJSON, Nullable: true},
		{Name: "typing_cpm", Type: field.TypeFloat64, Nullable: true},
		{Name: "typing_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "pauses", Type: field.TypeInt, Nullable: true},
		{Name: "hesitations", Type: field.TypeInt, Nullable: true},
		{Name: "backspaces", Type: field.TypeInt, Nullable: true},
		{Name: "pastes", Type: field.TypeInt, Nullable: true},
	}
	// ResponseEventsTable holds the schema information for the "response_events" table.
	ResponseEventsTable = &schema.Table{
		Name:       "response_events",
		Columns:    ResponseEventsColumns,
		PrimaryKey: []*schema.Column{ResponseEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "responseevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[1]},
			},
			{
				Name:    "responseevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[2]},
			},
			{
				Name:    "responseevent_session_id_position",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[3], ResponseEventsColumns[4]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "done", Type: field.TypeBool, Default: false},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[3]},
			},
			{
				Name:    "snapshot_session_id",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		QuizEventsTable,
		RefinementEventsTable,
		ResponseEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
