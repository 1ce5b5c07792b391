// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "client_id", Type: field.TypeUUID},
		{Name: "therapist_id", Type: field.TypeUUID},
		{Name: "branch_id", Type: field.TypeUUID},
		{Name: "service_id", Type: field.TypeUUID},
		{Name: "date", Type: field.TypeTime},
		{Name: "start_minute", Type: field.TypeInt},
		{Name: "end_minute", Type: field.TypeInt},
		{Name: "duration_minutes", Type: field.TypeInt},
		{Name: "price", Type: field.TypeInt64},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"scheduled", "confirmed", "pending", "cancelled", "no_show"}, Default: "scheduled"},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cancellation_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_therapist_id_date_status",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[4], AppointmentsColumns[7], AppointmentsColumns[12]},
			},
			{
				Name:    "appointment_client_id_date",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[3], AppointmentsColumns[7]},
			},
			{
				Name:    "appointment_branch_id_date",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[5], AppointmentsColumns[7]},
			},
			{
				Name:    "appointment_therapist_id_date_start_minute",
				Unique:  true,
				Columns: []*schema.Column{AppointmentsColumns[4], AppointmentsColumns[7], AppointmentsColumns[8]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status != 'cancelled'",
				},
			},
		},
	}
	// AttachmentsColumns holds the columns for the "attachments" table.
	AttachmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "client_id", Type: field.TypeUUID, Nullable: true},
		{Name: "appointment_id", Type: field.TypeUUID, Nullable: true},
		{Name: "file_name", Type: field.TypeString},
		{Name: "content_type", Type: field.TypeString},
		{Name: "size_bytes", Type: field.TypeInt64},
		{Name: "storage_key", Type: field.TypeString, Unique: true},
		{Name: "uploaded_by", Type: field.TypeUUID},
	}
	// AttachmentsTable holds the schema information for the "attachments" table.
	AttachmentsTable = &schema.Table{
		Name:       "attachments",
		Columns:    AttachmentsColumns,
		PrimaryKey: []*schema.Column{AttachmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attachment_client_id",
				Unique:  false,
				Columns: []*schema.Column{AttachmentsColumns[3]},
			},
			{
				Name:    "attachment_appointment_id",
				Unique:  false,
				Columns: []*schema.Column{AttachmentsColumns[4]},
			},
		},
	}
	// BlockedDatesColumns holds the columns for the "blocked_dates" table.
	BlockedDatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "therapist_id", Type: field.TypeUUID},
		{Name: "date", Type: field.TypeTime},
		{Name: "reason", Type: field.TypeString, Nullable: true},
	}
	// BlockedDatesTable holds the schema information for the "blocked_dates" table.
	BlockedDatesTable = &schema.Table{
		Name:       "blocked_dates",
		Columns:    BlockedDatesColumns,
		PrimaryKey: []*schema.Column{BlockedDatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "blockeddate_therapist_id_date",
				Unique:  true,
				Columns: []*schema.Column{BlockedDatesColumns[3], BlockedDatesColumns[4]},
			},
		},
	}
	// BranchesColumns holds the columns for the "branches" table.
	BranchesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// BranchesTable holds the schema information for the "branches" table.
	BranchesTable = &schema.Table{
		Name:       "branches",
		Columns:    BranchesColumns,
		PrimaryKey: []*schema.Column{BranchesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "branch_is_active",
				Unique:  false,
				Columns: []*schema.Column{BranchesColumns[6]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "read_at", Type: field.TypeTime, Nullable: true},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[3], NotificationsColumns[1]},
			},
		},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "document", Type: field.TypeString, Nullable: true},
		{Name: "birth_date", Type: field.TypeTime, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "patient_name",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[4]},
			},
			{
				Name:    "patient_email",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[5]},
			},
		},
	}
	// ServicesColumns holds the columns for the "services" table.
	ServicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "duration_minutes", Type: field.TypeInt},
		{Name: "price", Type: field.TypeInt64},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// ServicesTable holds the schema information for the "services" table.
	ServicesTable = &schema.Table{
		Name:       "services",
		Columns:    ServicesColumns,
		PrimaryKey: []*schema.Column{ServicesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "service_is_active",
				Unique:  false,
				Columns: []*schema.Column{ServicesColumns[7]},
			},
		},
	}
	// TherapistsColumns holds the columns for the "therapists" table.
	TherapistsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "name", Type: field.TypeString},
		{Name: "specialty", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// TherapistsTable holds the schema information for the "therapists" table.
	TherapistsTable = &schema.Table{
		Name:       "therapists",
		Columns:    TherapistsColumns,
		PrimaryKey: []*schema.Column{TherapistsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "therapist_is_active",
				Unique:  false,
				Columns: []*schema.Column{TherapistsColumns[8]},
			},
			{
				Name:    "therapist_user_id",
				Unique:  false,
				Columns: []*schema.Column{TherapistsColumns[7]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "therapist", "reception"}, Default: "reception"},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[4]},
			},
		},
	}
	// WeeklyScheduleEntriesColumns holds the columns for the "weekly_schedule_entries" table.
	WeeklyScheduleEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "therapist_id", Type: field.TypeUUID},
		{Name: "branch_id", Type: field.TypeUUID},
		{Name: "day_of_week", Type: field.TypeInt8},
		{Name: "start_minute", Type: field.TypeInt},
		{Name: "end_minute", Type: field.TypeInt},
	}
	// WeeklyScheduleEntriesTable holds the schema information for the "weekly_schedule_entries" table.
	WeeklyScheduleEntriesTable = &schema.Table{
		Name:       "weekly_schedule_entries",
		Columns:    WeeklyScheduleEntriesColumns,
		PrimaryKey: []*schema.Column{WeeklyScheduleEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "weeklyscheduleentry_therapist_id_branch_id_day_of_week",
				Unique:  false,
				Columns: []*schema.Column{WeeklyScheduleEntriesColumns[3], WeeklyScheduleEntriesColumns[4], WeeklyScheduleEntriesColumns[5]},
			},
			{
				Name:    "weeklyscheduleentry_branch_id_day_of_week",
				Unique:  false,
				Columns: []*schema.Column{WeeklyScheduleEntriesColumns[4], WeeklyScheduleEntriesColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		AttachmentsTable,
		BlockedDatesTable,
		BranchesTable,
		NotificationsTable,
		PatientsTable,
		ServicesTable,
		TherapistsTable,
		UsersTable,
		WeeklyScheduleEntriesTable,
	}
)

func init() {
}
