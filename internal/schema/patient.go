package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Patient is a person the clinic treats.
type Patient struct {
	ent.Schema
}

func (Patient) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty(),

		field.String("email").
			Optional().
			Nillable(),

		field.String("phone").
			Optional().
			Nillable().
			Comment("E.164, validated on write"),

		field.String("document").
			Optional().
			Nillable().
			Sensitive().
			Comment("National document, AES-256-GCM encrypted at rest"),

		field.Time("birth_date").
			Optional().
			Nillable(),

		field.Text("notes").
			Optional().
			Nillable(),

		field.Bool("is_active").
			Default(true),
	}
}

func (Patient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
		index.Fields("email"),
	}
}
