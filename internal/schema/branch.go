package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Branch is a physical clinic location. Schedule entries and appointments
// reference it; it owns nothing by containment.
type Branch struct {
	ent.Schema
}

func (Branch) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Branch) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty(),

		field.String("address").
			Optional().
			Nillable(),

		field.String("phone").
			Optional().
			Nillable(),

		field.Bool("is_active").
			Default(true),
	}
}

func (Branch) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("is_active"),
	}
}
