package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// BlockedDate removes all availability for a therapist on one calendar date,
// regardless of weekly schedule entries.
type BlockedDate struct {
	ent.Schema
}

func (BlockedDate) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (BlockedDate) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("therapist_id", uuid.UUID{}).
			Comment("FK → therapists.id"),

		field.Time("date").
			Comment("Calendar date at midnight UTC; time component unused"),

		field.String("reason").
			Optional().
			Nillable(),
	}
}

func (BlockedDate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("therapist_id", "date").Unique(),
	}
}
