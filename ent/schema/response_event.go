package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResponseEvent records one accepted answer and the running classification
// right after it.
type ResponseEvent struct {
	ent.Schema
}

func (ResponseEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ResponseEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.Int("position").Comment("Index in the session's response list"),
		field.Int("question_id"),
		field.Text("answer"),
		field.String("leading_persona"),
		field.Float("leading_confidence"),

		// Free-text answers only.
		field.String("text_persona").Optional(),
		field.Float("text_confidence").Optional(),
		field.JSON("indicators", []string{}).Optional(),
		field.JSON("behavioral_patterns", []string{}).Optional(),
		field.Float("typing_cpm").Optional(),
		field.Int64("typing_ms").Optional(),
		field.Int("pauses").Optional(),
		field.Int("hesitations").Optional(),
		field.Int("backspaces").Optional(),
		field.Int("pastes").Optional(),
	}
}

func (ResponseEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "position"),
	}
}
