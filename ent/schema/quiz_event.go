package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizEvent records the final classification of a quiz session.
type QuizEvent struct {
	ent.Schema
}

func (QuizEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty().Unique(),
		field.String("bank_version").NotEmpty(),
		field.String("persona").NotEmpty(),
		field.Float("confidence"),
		field.String("reason").NotEmpty().Comment("early-exit or final"),
		field.Int("answered"),
		field.JSON("scores", map[string]float64{}),
		field.JSON("evidence", []string{}).Optional(),
		field.Time("started_at"),
		field.Time("finished_at"),
	}
}

func (QuizEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("persona"),
	}
}
