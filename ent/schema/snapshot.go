package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Snapshot holds the response list of an unfinished quiz so it can be
// resumed.
type Snapshot struct {
	ent.Schema
}

func (Snapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.Int64("sequence").Comment("Event sequence when the snapshot was taken"),
		field.Time("timestamp").Default(time.Now),
		field.Bool("done").Default(false),
		field.JSON("data", map[string]any{}),
	}
}

func (Snapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("session_id"),
	}
}
