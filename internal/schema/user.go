package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User is a console account (receptionist, therapist or admin).
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			NotEmpty().
			Unique(),

		field.String("name").
			NotEmpty(),

		field.String("password_hash").
			Sensitive(),

		field.Enum("role").
			Values("admin", "therapist", "reception").
			Default("reception"),

		field.Bool("is_active").
			Default(true),

		field.Time("last_login_at").
			Optional().
			Nillable(),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").Unique(),
	}
}
