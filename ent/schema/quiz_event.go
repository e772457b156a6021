package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizEvent records one completed quiz.
type QuizEvent struct {
	ent.Schema
}

func (QuizEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the quiz session"),
		field.String("quiz_type").
			NotEmpty().
			Comment("quick, timed, or challenge"),
		field.String("language").
			NotEmpty(),
		field.String("category").
			NotEmpty().
			Comment("Category filter, or all"),
		field.Int("total_questions"),
		field.Int("score"),
		field.Int("accuracy").
			Comment("0-100"),
		field.Int("bonus_xp").
			Default(0),
	}
}

func (QuizEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("quiz_type"),
	}
}
