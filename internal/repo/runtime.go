// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/carlosmariath/painel-clinica-sub001/internal/repo/appointment"
	"github.com/carlosmariath/painel-clinica-sub001/internal/repo/attachment"
	"github.com/carlosmariath/painel-clinica-sub001/internal/repo/blockeddate"
	"github.com/carlosmariath/painel-clinica-sub001/internal/repo/branch"
	"github.com/carlosmariath/painel-clinica-sub001/internal/repo/notification"
	"github.com/carlosmariath/painel-clinica-sub001/internal/repo/patient"
	"github.com/carlosmariath/painel-clinica-sub001/internal/repo/service"
	"github.com/carlosmariath/painel-clinica-sub001/internal/repo/therapist"
	"github.com/carlosmariath/painel-clinica-sub001/internal/repo/user"
	"github.com/carlosmariath/painel-clinica-sub001/internal/repo/weeklyscheduleentry"
	"github.com/carlosmariath/painel-clinica-sub001/internal/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentMixinFields1 := appointmentMixin[1].Fields()
	_ = appointmentMixinFields1
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields1[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields1[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescStartMinute is the schema descriptor for start_minute field.
	appointmentDescStartMinute := appointmentFields[5].Descriptor()
	// appointment.StartMinuteValidator is a validator for the "start_minute" field. It is called by the builders before save.
	appointment.StartMinuteValidator = func() func(int) error {
		validators := appointmentDescStartMinute.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(start_minute int) error {
			for _, fn := range fns {
				if err := fn(start_minute); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// appointmentDescEndMinute is the schema descriptor for end_minute field.
	appointmentDescEndMinute := appointmentFields[6].Descriptor()
	// appointment.EndMinuteValidator is a validator for the "end_minute" field. It is called by the builders before save.
	appointment.EndMinuteValidator = func() func(int) error {
		validators := appointmentDescEndMinute.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(end_minute int) error {
			for _, fn := range fns {
				if err := fn(end_minute); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// appointmentDescDurationMinutes is the schema descriptor for duration_minutes field.
	appointmentDescDurationMinutes := appointmentFields[7].Descriptor()
	// appointment.DurationMinutesValidator is a validator for the "duration_minutes" field. It is called by the builders before save.
	appointment.DurationMinutesValidator = appointmentDescDurationMinutes.Validators[0].(func(int) error)
	// appointmentDescPrice is the schema descriptor for price field.
	appointmentDescPrice := appointmentFields[8].Descriptor()
	// appointment.PriceValidator is a validator for the "price" field. It is called by the builders before save.
	appointment.PriceValidator = appointmentDescPrice.Validators[0].(func(int64) error)
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
	attachmentMixin := schema.Attachment{}.Mixin()
	attachmentMixinFields0 := attachmentMixin[0].Fields()
	_ = attachmentMixinFields0
	attachmentMixinFields1 := attachmentMixin[1].Fields()
	_ = attachmentMixinFields1
	attachmentFields := schema.Attachment{}.Fields()
	_ = attachmentFields
	// attachmentDescCreatedAt is the schema descriptor for created_at field.
	attachmentDescCreatedAt := attachmentMixinFields1[0].Descriptor()
	// attachment.DefaultCreatedAt holds the default value on creation for the created_at field.
	attachment.DefaultCreatedAt = attachmentDescCreatedAt.Default.(func() time.Time)
	// attachmentDescUpdatedAt is the schema descriptor for updated_at field.
	attachmentDescUpdatedAt := attachmentMixinFields1[1].Descriptor()
	// attachment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	attachment.DefaultUpdatedAt = attachmentDescUpdatedAt.Default.(func() time.Time)
	// attachment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	attachment.UpdateDefaultUpdatedAt = attachmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// attachmentDescFileName is the schema descriptor for file_name field.
	attachmentDescFileName := attachmentFields[2].Descriptor()
	// attachment.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	attachment.FileNameValidator = attachmentDescFileName.Validators[0].(func(string) error)
	// attachmentDescContentType is the schema descriptor for content_type field.
	attachmentDescContentType := attachmentFields[3].Descriptor()
	// attachment.ContentTypeValidator is a validator for the "content_type" field. It is called by the builders before save.
	attachment.ContentTypeValidator = attachmentDescContentType.Validators[0].(func(string) error)
	// attachmentDescSizeBytes is the schema descriptor for size_bytes field.
	attachmentDescSizeBytes := attachmentFields[4].Descriptor()
	// attachment.SizeBytesValidator is a validator for the "size_bytes" field. It is called by the builders before save.
	attachment.SizeBytesValidator = attachmentDescSizeBytes.Validators[0].(func(int64) error)
	// attachmentDescStorageKey is the schema descriptor for storage_key field.
	attachmentDescStorageKey := attachmentFields[5].Descriptor()
	// attachment.StorageKeyValidator is a validator for the "storage_key" field. It is called by the builders before save.
	attachment.StorageKeyValidator = attachmentDescStorageKey.Validators[0].(func(string) error)
	// attachmentDescID is the schema descriptor for id field.
	attachmentDescID := attachmentMixinFields0[0].Descriptor()
	// attachment.DefaultID holds the default value on creation for the id field.
	attachment.DefaultID = attachmentDescID.Default.(func() uuid.UUID)
	blockeddateMixin := schema.BlockedDate{}.Mixin()
	blockeddateMixinFields0 := blockeddateMixin[0].Fields()
	_ = blockeddateMixinFields0
	blockeddateMixinFields1 := blockeddateMixin[1].Fields()
	_ = blockeddateMixinFields1
	blockeddateFields := schema.BlockedDate{}.Fields()
	_ = blockeddateFields
	// blockeddateDescCreatedAt is the schema descriptor for created_at field.
	blockeddateDescCreatedAt := blockeddateMixinFields1[0].Descriptor()
	// blockeddate.DefaultCreatedAt holds the default value on creation for the created_at field.
	blockeddate.DefaultCreatedAt = blockeddateDescCreatedAt.Default.(func() time.Time)
	// blockeddateDescUpdatedAt is the schema descriptor for updated_at field.
	blockeddateDescUpdatedAt := blockeddateMixinFields1[1].Descriptor()
	// blockeddate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	blockeddate.DefaultUpdatedAt = blockeddateDescUpdatedAt.Default.(func() time.Time)
	// blockeddate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	blockeddate.UpdateDefaultUpdatedAt = blockeddateDescUpdatedAt.UpdateDefault.(func() time.Time)
	// blockeddateDescID is the schema descriptor for id field.
	blockeddateDescID := blockeddateMixinFields0[0].Descriptor()
	// blockeddate.DefaultID holds the default value on creation for the id field.
	blockeddate.DefaultID = blockeddateDescID.Default.(func() uuid.UUID)
	branchMixin := schema.Branch{}.Mixin()
	branchMixinFields0 := branchMixin[0].Fields()
	_ = branchMixinFields0
	branchMixinFields1 := branchMixin[1].Fields()
	_ = branchMixinFields1
	branchFields := schema.Branch{}.Fields()
	_ = branchFields
	// branchDescCreatedAt is the schema descriptor for created_at field.
	branchDescCreatedAt := branchMixinFields1[0].Descriptor()
	// branch.DefaultCreatedAt holds the default value on creation for the created_at field.
	branch.DefaultCreatedAt = branchDescCreatedAt.Default.(func() time.Time)
	// branchDescUpdatedAt is the schema descriptor for updated_at field.
	branchDescUpdatedAt := branchMixinFields1[1].Descriptor()
	// branch.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	branch.DefaultUpdatedAt = branchDescUpdatedAt.Default.(func() time.Time)
	// branch.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	branch.UpdateDefaultUpdatedAt = branchDescUpdatedAt.UpdateDefault.(func() time.Time)
	// branchDescName is the schema descriptor for name field.
	branchDescName := branchFields[0].Descriptor()
	// branch.NameValidator is a validator for the "name" field. It is called by the builders before save.
	branch.NameValidator = branchDescName.Validators[0].(func(string) error)
	// branchDescIsActive is the schema descriptor for is_active field.
	branchDescIsActive := branchFields[3].Descriptor()
	// branch.DefaultIsActive holds the default value on creation for the is_active field.
	branch.DefaultIsActive = branchDescIsActive.Default.(bool)
	// branchDescID is the schema descriptor for id field.
	branchDescID := branchMixinFields0[0].Descriptor()
	// branch.DefaultID holds the default value on creation for the id field.
	branch.DefaultID = branchDescID.Default.(func() uuid.UUID)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationMixinFields1 := notificationMixin[1].Fields()
	_ = notificationMixinFields1
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields1[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescUpdatedAt is the schema descriptor for updated_at field.
	notificationDescUpdatedAt := notificationMixinFields1[1].Descriptor()
	// notification.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	notification.DefaultUpdatedAt = notificationDescUpdatedAt.Default.(func() time.Time)
	// notification.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	notification.UpdateDefaultUpdatedAt = notificationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// notificationDescType is the schema descriptor for type field.
	notificationDescType := notificationFields[1].Descriptor()
	// notification.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	notification.TypeValidator = notificationDescType.Validators[0].(func(string) error)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[2].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = notificationDescTitle.Validators[0].(func(string) error)
	// notificationDescID is the schema descriptor for id field.
	notificationDescID := notificationMixinFields0[0].Descriptor()
	// notification.DefaultID holds the default value on creation for the id field.
	notification.DefaultID = notificationDescID.Default.(func() uuid.UUID)
	patientMixin := schema.Patient{}.Mixin()
	patientMixinFields0 := patientMixin[0].Fields()
	_ = patientMixinFields0
	patientMixinFields1 := patientMixin[1].Fields()
	_ = patientMixinFields1
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientMixinFields1[0].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescUpdatedAt is the schema descriptor for updated_at field.
	patientDescUpdatedAt := patientMixinFields1[1].Descriptor()
	// patient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patient.DefaultUpdatedAt = patientDescUpdatedAt.Default.(func() time.Time)
	// patient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patient.UpdateDefaultUpdatedAt = patientDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientDescName is the schema descriptor for name field.
	patientDescName := patientFields[0].Descriptor()
	// patient.NameValidator is a validator for the "name" field. It is called by the builders before save.
	patient.NameValidator = patientDescName.Validators[0].(func(string) error)
	// patientDescIsActive is the schema descriptor for is_active field.
	patientDescIsActive := patientFields[6].Descriptor()
	// patient.DefaultIsActive holds the default value on creation for the is_active field.
	patient.DefaultIsActive = patientDescIsActive.Default.(bool)
	// patientDescID is the schema descriptor for id field.
	patientDescID := patientMixinFields0[0].Descriptor()
	// patient.DefaultID holds the default value on creation for the id field.
	patient.DefaultID = patientDescID.Default.(func() uuid.UUID)
	serviceMixin := schema.Service{}.Mixin()
	serviceMixinFields0 := serviceMixin[0].Fields()
	_ = serviceMixinFields0
	serviceMixinFields1 := serviceMixin[1].Fields()
	_ = serviceMixinFields1
	serviceFields := schema.Service{}.Fields()
	_ = serviceFields
	// serviceDescCreatedAt is the schema descriptor for created_at field.
	serviceDescCreatedAt := serviceMixinFields1[0].Descriptor()
	// service.DefaultCreatedAt holds the default value on creation for the created_at field.
	service.DefaultCreatedAt = serviceDescCreatedAt.Default.(func() time.Time)
	// serviceDescUpdatedAt is the schema descriptor for updated_at field.
	serviceDescUpdatedAt := serviceMixinFields1[1].Descriptor()
	// service.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	service.DefaultUpdatedAt = serviceDescUpdatedAt.Default.(func() time.Time)
	// service.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	service.UpdateDefaultUpdatedAt = serviceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// serviceDescName is the schema descriptor for name field.
	serviceDescName := serviceFields[0].Descriptor()
	// service.NameValidator is a validator for the "name" field. It is called by the builders before save.
	service.NameValidator = serviceDescName.Validators[0].(func(string) error)
	// serviceDescDurationMinutes is the schema descriptor for duration_minutes field.
	serviceDescDurationMinutes := serviceFields[2].Descriptor()
	// service.DurationMinutesValidator is a validator for the "duration_minutes" field. It is called by the builders before save.
	service.DurationMinutesValidator = serviceDescDurationMinutes.Validators[0].(func(int) error)
	// serviceDescPrice is the schema descriptor for price field.
	serviceDescPrice := serviceFields[3].Descriptor()
	// service.PriceValidator is a validator for the "price" field. It is called by the builders before save.
	service.PriceValidator = serviceDescPrice.Validators[0].(func(int64) error)
	// serviceDescIsActive is the schema descriptor for is_active field.
	serviceDescIsActive := serviceFields[4].Descriptor()
	// service.DefaultIsActive holds the default value on creation for the is_active field.
	service.DefaultIsActive = serviceDescIsActive.Default.(bool)
	// serviceDescID is the schema descriptor for id field.
	serviceDescID := serviceMixinFields0[0].Descriptor()
	// service.DefaultID holds the default value on creation for the id field.
	service.DefaultID = serviceDescID.Default.(func() uuid.UUID)
	therapistMixin := schema.Therapist{}.Mixin()
	therapistMixinFields0 := therapistMixin[0].Fields()
	_ = therapistMixinFields0
	therapistMixinFields1 := therapistMixin[1].Fields()
	_ = therapistMixinFields1
	therapistFields := schema.Therapist{}.Fields()
	_ = therapistFields
	// therapistDescCreatedAt is the schema descriptor for created_at field.
	therapistDescCreatedAt := therapistMixinFields1[0].Descriptor()
	// therapist.DefaultCreatedAt holds the default value on creation for the created_at field.
	therapist.DefaultCreatedAt = therapistDescCreatedAt.Default.(func() time.Time)
	// therapistDescUpdatedAt is the schema descriptor for updated_at field.
	therapistDescUpdatedAt := therapistMixinFields1[1].Descriptor()
	// therapist.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	therapist.DefaultUpdatedAt = therapistDescUpdatedAt.Default.(func() time.Time)
	// therapist.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	therapist.UpdateDefaultUpdatedAt = therapistDescUpdatedAt.UpdateDefault.(func() time.Time)
	// therapistDescName is the schema descriptor for name field.
	therapistDescName := therapistFields[0].Descriptor()
	// therapist.NameValidator is a validator for the "name" field. It is called by the builders before save.
	therapist.NameValidator = therapistDescName.Validators[0].(func(string) error)
	// therapistDescIsActive is the schema descriptor for is_active field.
	therapistDescIsActive := therapistFields[4].Descriptor()
	// therapist.DefaultIsActive holds the default value on creation for the is_active field.
	therapist.DefaultIsActive = therapistDescIsActive.Default.(bool)
	// therapistDescID is the schema descriptor for id field.
	therapistDescID := therapistMixinFields0[0].Descriptor()
	// therapist.DefaultID holds the default value on creation for the id field.
	therapist.DefaultID = therapistDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[1].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[4].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
	weeklyscheduleentryMixin := schema.WeeklyScheduleEntry{}.Mixin()
	weeklyscheduleentryMixinFields0 := weeklyscheduleentryMixin[0].Fields()
	_ = weeklyscheduleentryMixinFields0
	weeklyscheduleentryMixinFields1 := weeklyscheduleentryMixin[1].Fields()
	_ = weeklyscheduleentryMixinFields1
	weeklyscheduleentryFields := schema.WeeklyScheduleEntry{}.Fields()
	_ = weeklyscheduleentryFields
	// weeklyscheduleentryDescCreatedAt is the schema descriptor for created_at field.
	weeklyscheduleentryDescCreatedAt := weeklyscheduleentryMixinFields1[0].Descriptor()
	// weeklyscheduleentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	weeklyscheduleentry.DefaultCreatedAt = weeklyscheduleentryDescCreatedAt.Default.(func() time.Time)
	// weeklyscheduleentryDescUpdatedAt is the schema descriptor for updated_at field.
	weeklyscheduleentryDescUpdatedAt := weeklyscheduleentryMixinFields1[1].Descriptor()
	// weeklyscheduleentry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	weeklyscheduleentry.DefaultUpdatedAt = weeklyscheduleentryDescUpdatedAt.Default.(func() time.Time)
	// weeklyscheduleentry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	weeklyscheduleentry.UpdateDefaultUpdatedAt = weeklyscheduleentryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// weeklyscheduleentryDescDayOfWeek is the schema descriptor for day_of_week field.
	weeklyscheduleentryDescDayOfWeek := weeklyscheduleentryFields[2].Descriptor()
	// weeklyscheduleentry.DayOfWeekValidator is a validator for the "day_of_week" field. It is called by the builders before save.
	weeklyscheduleentry.DayOfWeekValidator = func() func(int8) error {
		validators := weeklyscheduleentryDescDayOfWeek.Validators
		fns := [...]func(int8) error{
			validators[0].(func(int8) error),
			validators[1].(func(int8) error),
		}
		return func(day_of_week int8) error {
			for _, fn := range fns {
				if err := fn(day_of_week); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// weeklyscheduleentryDescStartMinute is the schema descriptor for start_minute field.
	weeklyscheduleentryDescStartMinute := weeklyscheduleentryFields[3].Descriptor()
	// weeklyscheduleentry.StartMinuteValidator is a validator for the "start_minute" field. It is called by the builders before save.
	weeklyscheduleentry.StartMinuteValidator = func() func(int) error {
		validators := weeklyscheduleentryDescStartMinute.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(start_minute int) error {
			for _, fn := range fns {
				if err := fn(start_minute); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// weeklyscheduleentryDescEndMinute is the schema descriptor for end_minute field.
	weeklyscheduleentryDescEndMinute := weeklyscheduleentryFields[4].Descriptor()
	// weeklyscheduleentry.EndMinuteValidator is a validator for the "end_minute" field. It is called by the builders before save.
	weeklyscheduleentry.EndMinuteValidator = func() func(int) error {
		validators := weeklyscheduleentryDescEndMinute.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(end_minute int) error {
			for _, fn := range fns {
				if err := fn(end_minute); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// weeklyscheduleentryDescID is the schema descriptor for id field.
	weeklyscheduleentryDescID := weeklyscheduleentryMixinFields0[0].Descriptor()
	// weeklyscheduleentry.DefaultID holds the default value on creation for the id field.
	weeklyscheduleentry.DefaultID = weeklyscheduleentryDescID.Default.(func() uuid.UUID)
}
