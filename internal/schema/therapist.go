package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Therapist is a member of the clinical roster. Weekly schedule entries,
// blocked dates and appointments reference it.
type Therapist struct {
	ent.Schema
}

func (Therapist) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Therapist) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty(),

		field.String("specialty").
			Optional().
			Nillable(),

		field.String("email").
			Optional().
			Nillable(),

		field.UUID("user_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → users.id when the therapist has console access"),

		field.Bool("is_active").
			Default(true),
	}
}

func (Therapist) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("is_active"),
		index.Fields("user_id"),
	}
}
