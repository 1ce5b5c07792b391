package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Appointment is a booked session between a therapist and a client. Price and
// duration are snapshotted from the service at booking time. Cancelled
// appointments stop occupying their interval; every other status counts as
// busy. Rows are only removed by an explicit delete, never by cancel.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("client_id", uuid.UUID{}).
			Comment("FK → clients.id"),

		field.UUID("therapist_id", uuid.UUID{}).
			Comment("FK → therapists.id"),

		field.UUID("branch_id", uuid.UUID{}).
			Comment("FK → branches.id"),

		field.UUID("service_id", uuid.UUID{}).
			Comment("FK → services.id"),

		field.Time("date").
			Comment("Calendar date at midnight UTC; time component unused"),

		field.Int("start_minute").
			Min(0).
			Max(1439),

		field.Int("end_minute").
			Min(1).
			Max(1440),

		field.Int("duration_minutes").
			Positive().
			Comment("Snapshotted from the service at booking time"),

		field.Int64("price").
			NonNegative().
			Comment("Snapshotted price in cents"),

		field.Enum("status").
			Values("scheduled", "confirmed", "pending", "cancelled", "no_show").
			Default("scheduled"),

		field.Text("notes").
			Optional().
			Nillable(),

		field.Text("cancellation_reason").
			Optional().
			Nillable(),

		field.Time("cancelled_at").
			Optional().
			Nillable(),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("therapist_id", "date", "status"),
		index.Fields("client_id", "date"),
		index.Fields("branch_id", "date"),
		// Storage-level backstop for the per-therapist booking lock: two live
		// appointments can never share a start.
		index.Fields("therapist_id", "date", "start_minute").
			Unique().
			Annotations(entsql.IndexWhere("status != 'cancelled'")),
	}
}
