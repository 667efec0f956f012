package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RefinementEvent records an LLM second opinion on a free-text answer. It is
// advisory and never changes the recorded classification.
type RefinementEvent struct {
	ent.Schema
}

func (RefinementEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RefinementEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").Optional(),
		field.String("rule_persona"),
		field.Float("rule_confidence"),
		field.String("model_persona"),
		field.Float("model_confidence"),
		field.String("model").NotEmpty(),
		field.Text("reasoning").Default(""),
	}
}

func (RefinementEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
