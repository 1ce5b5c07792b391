// Code generated by ent, DO NOT EDIT.

package weeklyscheduleentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/carlosmariath/painel-clinica-sub001/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// TherapistID applies equality check predicate on the "therapist_id" field. It's identical to TherapistIDEQ.
func TherapistID(v uuid.UUID) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldEQ(FieldTherapistID, v))
}

// BranchID applies equality check predicate on the "branch_id" field. It's identical to BranchIDEQ.
func BranchID(v uuid.UUID) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldEQ(FieldBranchID, v))
}

// DayOfWeek applies equality check predicate on the "day_of_week" field. It's identical to DayOfWeekEQ.
func DayOfWeek(v int8) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldEQ(FieldDayOfWeek, v))
}

// StartMinute applies equality check predicate on the "start_minute" field. It's identical to StartMinuteEQ.
func StartMinute(v int) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldEQ(FieldStartMinute, v))
}

// EndMinute applies equality check predicate on the "end_minute" field. It's identical to EndMinuteEQ.
func EndMinute(v int) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldEQ(FieldEndMinute, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldLTE(FieldUpdatedAt, v))
}

// TherapistIDEQ applies the EQ predicate on the "therapist_id" field.
func TherapistIDEQ(v uuid.UUID) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldEQ(FieldTherapistID, v))
}

// TherapistIDNEQ applies the NEQ predicate on the "therapist_id" field.
func TherapistIDNEQ(v uuid.UUID) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldNEQ(FieldTherapistID, v))
}

// TherapistIDIn applies the In predicate on the "therapist_id" field.
func TherapistIDIn(vs ...uuid.UUID) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldIn(FieldTherapistID, vs...))
}

// TherapistIDNotIn applies the NotIn predicate on the "therapist_id" field.
func TherapistIDNotIn(vs ...uuid.UUID) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldNotIn(FieldTherapistID, vs...))
}

// TherapistIDGT applies the GT predicate on the "therapist_id" field.
func TherapistIDGT(v uuid.UUID) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldGT(FieldTherapistID, v))
}

// TherapistIDGTE applies the GTE predicate on the "therapist_id" field.
func TherapistIDGTE(v uuid.UUID) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldGTE(FieldTherapistID, v))
}

// TherapistIDLT applies the LT predicate on the "therapist_id" field.
func TherapistIDLT(v uuid.UUID) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldLT(FieldTherapistID, v))
}

// TherapistIDLTE applies the LTE predicate on the "therapist_id" field.
func TherapistIDLTE(v uuid.UUID) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldLTE(FieldTherapistID, v))
}

// BranchIDEQ applies the EQ predicate on the "branch_id" field.
func BranchIDEQ(v uuid.UUID) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldEQ(FieldBranchID, v))
}

// BranchIDNEQ applies the NEQ predicate on the "branch_id" field.
func BranchIDNEQ(v uuid.UUID) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldNEQ(FieldBranchID, v))
}

// BranchIDIn applies the In predicate on the "branch_id" field.
func BranchIDIn(vs ...uuid.UUID) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldIn(FieldBranchID, vs...))
}

// BranchIDNotIn applies the NotIn predicate on the "branch_id" field.
func BranchIDNotIn(vs ...uuid.UUID) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldNotIn(FieldBranchID, vs...))
}

// BranchIDGT applies the GT predicate on the "branch_id" field.
func BranchIDGT(v uuid.UUID) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldGT(FieldBranchID, v))
}

// BranchIDGTE applies the GTE predicate on the "branch_id" field.
func BranchIDGTE(v uuid.UUID) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldGTE(FieldBranchID, v))
}

// BranchIDLT applies the LT predicate on the "branch_id" field.
func BranchIDLT(v uuid.UUID) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldLT(FieldBranchID, v))
}

// BranchIDLTE applies the LTE predicate on the "branch_id" field.
func BranchIDLTE(v uuid.UUID) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldLTE(FieldBranchID, v))
}

// DayOfWeekEQ applies the EQ predicate on the "day_of_week" field.
func DayOfWeekEQ(v int8) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldEQ(FieldDayOfWeek, v))
}

// DayOfWeekNEQ applies the NEQ predicate on the "day_of_week" field.
func DayOfWeekNEQ(v int8) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldNEQ(FieldDayOfWeek, v))
}

// DayOfWeekIn applies the In predicate on the "day_of_week" field.
func DayOfWeekIn(vs ...int8) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldIn(FieldDayOfWeek, vs...))
}

// DayOfWeekNotIn applies the NotIn predicate on the "day_of_week" field.
func DayOfWeekNotIn(vs ...int8) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldNotIn(FieldDayOfWeek, vs...))
}

// DayOfWeekGT applies the GT predicate on the "day_of_week" field.
func DayOfWeekGT(v int8) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldGT(FieldDayOfWeek, v))
}

// DayOfWeekGTE applies the GTE predicate on the "day_of_week" field.
func DayOfWeekGTE(v int8) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldGTE(FieldDayOfWeek, v))
}

// DayOfWeekLT applies the LT predicate on the "day_of_week" field.
func DayOfWeekLT(v int8) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldLT(FieldDayOfWeek, v))
}

// DayOfWeekLTE applies the LTE predicate on the "day_of_week" field.
func DayOfWeekLTE(v int8) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldLTE(FieldDayOfWeek, v))
}

// StartMinuteEQ applies the EQ predicate on the "start_minute" field.
func StartMinuteEQ(v int) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldEQ(FieldStartMinute, v))
}

// StartMinuteNEQ applies the NEQ predicate on the "start_minute" field.
func StartMinuteNEQ(v int) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldNEQ(FieldStartMinute, v))
}

// StartMinuteIn applies the In predicate on the "start_minute" field.
func StartMinuteIn(vs ...int) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldIn(FieldStartMinute, vs...))
}

// StartMinuteNotIn applies the NotIn predicate on the "start_minute" field.
func StartMinuteNotIn(vs ...int) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldNotIn(FieldStartMinute, vs...))
}

// StartMinuteGT applies the GT predicate on the "start_minute" field.
func StartMinuteGT(v int) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldGT(FieldStartMinute, v))
}

// StartMinuteGTE applies the GTE predicate on the "start_minute" field.
func StartMinuteGTE(v int) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldGTE(FieldStartMinute, v))
}

// StartMinuteLT applies the LT predicate on the "start_minute" field.
func StartMinuteLT(v int) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldLT(FieldStartMinute, v))
}

// StartMinuteLTE applies the LTE predicate on the "start_minute" field.
func StartMinuteLTE(v int) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldLTE(FieldStartMinute, v))
}

// EndMinuteEQ applies the EQ predicate on the "end_minute" field.
func EndMinuteEQ(v int) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldEQ(FieldEndMinute, v))
}

// EndMinuteNEQ applies the NEQ predicate on the "end_minute" field.
func EndMinuteNEQ(v int) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldNEQ(FieldEndMinute, v))
}

// EndMinuteIn applies the In predicate on the "end_minute" field.
func EndMinuteIn(vs ...int) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldIn(FieldEndMinute, vs...))
}

// EndMinuteNotIn applies the NotIn predicate on the "end_minute" field.
func EndMinuteNotIn(vs ...int) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldNotIn(FieldEndMinute, vs...))
}

// EndMinuteGT applies the GT predicate on the "end_minute" field.
func EndMinuteGT(v int) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldGT(FieldEndMinute, v))
}

// EndMinuteGTE applies the GTE predicate on the "end_minute" field.
func EndMinuteGTE(v int) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldGTE(FieldEndMinute, v))
}

// EndMinuteLT applies the LT predicate on the "end_minute" field.
func EndMinuteLT(v int) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldLT(FieldEndMinute, v))
}

// EndMinuteLTE applies the LTE predicate on the "end_minute" field.
func EndMinuteLTE(v int) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.FieldLTE(FieldEndMinute, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WeeklyScheduleEntry) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WeeklyScheduleEntry) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WeeklyScheduleEntry) predicate.WeeklyScheduleEntry {
	return predicate.WeeklyScheduleEntry(sql.NotPredicates(p))
}
