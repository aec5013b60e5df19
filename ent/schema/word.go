package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Word is a vocabulary entry in the learner's collection.
type Word struct {
	ent.Schema
}

func (Word) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(func() string { return uuid.New().String() }).
			NotEmpty().
			Immutable(),
		field.String("text").
			NotEmpty().
			Comment("The word itself"),
		field.String("definition").
			NotEmpty().
			Comment("Primary definition shown in prompts and options"),
		field.String("language").
			Default("en").
			Comment("BCP 47 language tag"),
		field.String("part_of_speech").
			Default("").
			Comment("noun, verb, adjective, ..."),
		field.String("image_ref").
			Default("").
			Comment("Optional reference to an illustration"),
		field.Int("difficulty").
			Default(0).
			Comment("Running difficulty score; low means hard"),
		field.Bool("shared").
			Default(false).
			Comment("Visible to all users, not just the owner"),
		field.String("owner_id").
			Default("").
			Comment("User who added the word; empty for built-ins"),
		field.Bool("needs_review").
			Default(false).
			Comment("Flagged after a spelling failure"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Word) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("text", "language").Unique(),
		index.Fields("difficulty"),
		index.Fields("owner_id"),
	}
}
