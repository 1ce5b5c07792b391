package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// WeeklyScheduleEntry is one recurring working span for a therapist at a
// branch on a given weekday. Several entries per (therapist, branch, day) are
// allowed for split shifts, and entries may overlap; the availability engine
// deduplicates the slots they generate.
type WeeklyScheduleEntry struct {
	ent.Schema
}

func (WeeklyScheduleEntry) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (WeeklyScheduleEntry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("therapist_id", uuid.UUID{}).
			Comment("FK → therapists.id"),

		field.UUID("branch_id", uuid.UUID{}).
			Comment("FK → branches.id"),

		field.Int8("day_of_week").
			Min(0).
			Max(6).
			Comment("0=Sunday … 6=Saturday"),

		field.Int("start_minute").
			Min(0).
			Max(1439).
			Comment("Minutes since midnight, clinic-local"),

		field.Int("end_minute").
			Min(1).
			Max(1440),
	}
}

func (WeeklyScheduleEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("therapist_id", "branch_id", "day_of_week"),
		index.Fields("branch_id", "day_of_week"),
	}
}
