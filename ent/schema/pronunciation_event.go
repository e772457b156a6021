package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PronunciationEvent records one scored pronunciation attempt.
type PronunciationEvent struct {
	ent.Schema
}

func (PronunciationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PronunciationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the learning session"),
		field.String("language").
			NotEmpty(),
		field.String("word_id").
			NotEmpty(),
		field.Int("accuracy").
			Comment("0-100 similarity score"),
		field.String("tier").
			NotEmpty().
			Comment("Feedback tier the score classified into"),
		field.Bool("passed").
			Default(false),
	}
}

func (PronunciationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("word_id"),
	}
}
