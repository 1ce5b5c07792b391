package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Service is a bookable catalog entry with a fixed duration. Appointments
// snapshot price and duration at booking time, so live edits here never
// rewrite history.
type Service struct {
	ent.Schema
}

func (Service) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Service) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty(),

		field.Text("description").
			Optional().
			Nillable(),

		field.Int("duration_minutes").
			Positive(),

		field.Int64("price").
			NonNegative().
			Comment("Price in cents"),

		field.Bool("is_active").
			Default(true),
	}
}

func (Service) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("is_active"),
	}
}
