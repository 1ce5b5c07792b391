package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Attachment is a stored file (client document, referral, exam result) kept
// in S3-compatible storage and referenced by key.
type Attachment struct {
	ent.Schema
}

func (Attachment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Attachment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("client_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → clients.id"),

		field.UUID("appointment_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → appointments.id"),

		field.String("file_name").
			NotEmpty(),

		field.String("content_type").
			NotEmpty(),

		field.Int64("size_bytes").
			NonNegative(),

		field.String("storage_key").
			NotEmpty().
			Unique(),

		field.UUID("uploaded_by", uuid.UUID{}).
			Comment("FK → users.id"),
	}
}

func (Attachment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("client_id"),
		index.Fields("appointment_id"),
	}
}
