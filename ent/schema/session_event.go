package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records one finished or dismissed quiz session.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the session"),
		field.String("variant").
			NotEmpty().
			Comment("Quiz variant: context_choice or spelling"),
		field.Int("score").
			Default(0).
			Comment("Final session score"),
		field.Int("correct_count").
			Default(0).
			Comment("Items answered correctly"),
		field.Int("total_played").
			Default(0).
			Comment("Items played, partial sessions included"),
		field.Int("duration_secs").
			Default(0).
			Comment("Wall-clock session length in seconds"),
		field.Float("accuracy").
			Default(0).
			Comment("Mean per-item accuracy contribution in [0,1]"),
		field.JSON("words", []string{}).
			Optional().
			Comment("Word ids in play order"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("variant"),
	}
}
