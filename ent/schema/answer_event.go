package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one answered, skipped, or revealed quiz item.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping items of a session"),
		field.String("word_id").
			NotEmpty().
			Comment("Word the question was generated for"),
		field.String("variant").
			NotEmpty().
			Comment("Quiz variant: context_choice or spelling"),
		field.String("prompt").
			Default("").
			Comment("Question text as shown"),
		field.String("correct_answer").
			Default("").
			Comment("Canonical correct answer"),
		field.String("learner_answer").
			Default("").
			Comment("What the learner chose or typed; empty on skip"),
		field.Bool("correct").
			Comment("Whether the item ended correct"),
		field.Int("attempts").
			Default(0).
			Comment("Attempts used on the item"),
		field.Int("score_delta").
			Default(0).
			Comment("Score change this item produced"),
		field.Bool("needs_review").
			Default(false).
			Comment("Word flagged for review after a failure"),
		field.String("user_id").
			Default("").
			Comment("Acting user; attributes updates on shared words"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("word_id"),
		index.Fields("correct"),
	}
}
