// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/carlosmariath/painel-clinica-sub001/internal/repo/appointment"
	"github.com/carlosmariath/painel-clinica-sub001/internal/repo/predicate"
	"github.com/google/uuid"
)

// AppointmentUpdate is the builder for updating Appointment entities.
type AppointmentUpdate struct {
	config
	hooks    []Hook
	mutation *AppointmentMutation
}

// Where appends a list predicates to the AppointmentUpdate builder.
func (_u *AppointmentUpdate) Where(ps ...predicate.Appointment) *AppointmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentUpdate) SetUpdatedAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *AppointmentUpdate) SetClientID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableClientID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetTherapistID sets the "therapist_id" field.
func (_u *AppointmentUpdate) SetTherapistID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetTherapistID(v)
	return _u
}

// SetNillableTherapistID sets the "therapist_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableTherapistID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetTherapistID(*v)
	}
	return _u
}

// SetBranchID sets the "branch_id" field.
func (_u *AppointmentUpdate) SetBranchID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetBranchID(v)
	return _u
}

// SetNillableBranchID sets the "branch_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableBranchID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetBranchID(*v)
	}
	return _u
}

// SetServiceID sets the "service_id" field.
func (_u *AppointmentUpdate) SetServiceID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetServiceID(v)
	return _u
}

// SetNillableServiceID sets the "service_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableServiceID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetServiceID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *AppointmentUpdate) SetDate(v time.Time) *AppointmentUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableDate(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetStartMinute sets the "start_minute" field.
func (_u *AppointmentUpdate) SetStartMinute(v int) *AppointmentUpdate {
	_u.mutation.ResetStartMinute()
	_u.mutation.SetStartMinute(v)
	return _u
}

// SetNillableStartMinute sets the "start_minute" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableStartMinute(v *int) *AppointmentUpdate {
	if v != nil {
		_u.SetStartMinute(*v)
	}
	return _u
}

// AddStartMinute adds value to the "start_minute" field.
func (_u *AppointmentUpdate) AddStartMinute(v int) *AppointmentUpdate {
	_u.mutation.AddStartMinute(v)
	return _u
}

// SetEndMinute sets the "end_minute" field.
func (_u *AppointmentUpdate) SetEndMinute(v int) *AppointmentUpdate {
	_u.mutation.ResetEndMinute()
	_u.mutation.SetEndMinute(v)
	return _u
}

// SetNillableEndMinute sets the "end_minute" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableEndMinute(v *int) *AppointmentUpdate {
	if v != nil {
		_u.SetEndMinute(*v)
	}
	return _u
}

// AddEndMinute adds value to the "end_minute" field.
func (_u *AppointmentUpdate) AddEndMinute(v int) *AppointmentUpdate {
	_u.mutation.AddEndMinute(v)
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *AppointmentUpdate) SetDurationMinutes(v int) *AppointmentUpdate {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableDurationMinutes(v *int) *AppointmentUpdate {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *AppointmentUpdate) AddDurationMinutes(v int) *AppointmentUpdate {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetPrice sets the "price" field.
func (_u *AppointmentUpdate) SetPrice(v int64) *AppointmentUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillablePrice(v *int64) *AppointmentUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *AppointmentUpdate) AddPrice(v int64) *AppointmentUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AppointmentUpdate) SetStatus(v appointment.Status) *AppointmentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableStatus(v *appointment.Status) *AppointmentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *AppointmentUpdate) SetNotes(v string) *AppointmentUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableNotes(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *AppointmentUpdate) ClearNotes() *AppointmentUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetCancellationReason sets the "cancellation_reason" field.
func (_u *AppointmentUpdate) SetCancellationReason(v string) *AppointmentUpdate {
	_u.mutation.SetCancellationReason(v)
	return _u
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableCancellationReason(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetCancellationReason(*v)
	}
	return _u
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (_u *AppointmentUpdate) ClearCancellationReason() *AppointmentUpdate {
	_u.mutation.ClearCancellationReason()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *AppointmentUpdate) SetCancelledAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableCancelledAt(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *AppointmentUpdate) ClearCancelledAt() *AppointmentUpdate {
	_u.mutation.ClearCancelledAt()
	return _u
}

// Mutation returns the AppointmentMutation object of the builder.
func (_u *AppointmentUpdate) Mutation() *AppointmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AppointmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AppointmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentUpdate) check() error {
	if v, ok := _u.mutation.StartMinute(); ok {
		if err := appointment.StartMinuteValidator(v); err != nil {
			return &ValidationError{Name: "start_minute", err: fmt.Errorf(`repo: validator failed for field "Appointment.start_minute": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndMinute(); ok {
		if err := appointment.EndMinuteValidator(v); err != nil {
			return &ValidationError{Name: "end_minute", err: fmt.Errorf(`repo: validator failed for field "Appointment.end_minute": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DurationMinutes(); ok {
		if err := appointment.DurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "duration_minutes", err: fmt.Errorf(`repo: validator failed for field "Appointment.duration_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Price(); ok {
		if err := appointment.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`repo: validator failed for field "Appointment.price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AppointmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointment.Table, appointment.Columns, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClientID(); ok {
		_spec.SetField(appointment.FieldClientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TherapistID(); ok {
		_spec.SetField(appointment.FieldTherapistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.BranchID(); ok {
		_spec.SetField(appointment.FieldBranchID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ServiceID(); ok {
		_spec.SetField(appointment.FieldServiceID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(appointment.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartMinute(); ok {
		_spec.SetField(appointment.FieldStartMinute, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStartMinute(); ok {
		_spec.AddField(appointment.FieldStartMinute, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EndMinute(); ok {
		_spec.SetField(appointment.FieldEndMinute, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEndMinute(); ok {
		_spec.AddField(appointment.FieldEndMinute, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(appointment.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(appointment.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(appointment.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(appointment.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(appointment.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(appointment.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CancellationReason(); ok {
		_spec.SetField(appointment.FieldCancellationReason, field.TypeString, value)
	}
	if _u.mutation.CancellationReasonCleared() {
		_spec.ClearField(appointment.FieldCancellationReason, field.TypeString)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(appointment.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(appointment.FieldCancelledAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AppointmentUpdateOne is the builder for updating a single Appointment entity.
type AppointmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AppointmentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentUpdateOne) SetUpdatedAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *AppointmentUpdateOne) SetClientID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableClientID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetTherapistID sets the "therapist_id" field.
func (_u *AppointmentUpdateOne) SetTherapistID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetTherapistID(v)
	return _u
}

// SetNillableTherapistID sets the "therapist_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableTherapistID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetTherapistID(*v)
	}
	return _u
}

// SetBranchID sets the "branch_id" field.
func (_u *AppointmentUpdateOne) SetBranchID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetBranchID(v)
	return _u
}

// SetNillableBranchID sets the "branch_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableBranchID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetBranchID(*v)
	}
	return _u
}

// SetServiceID sets the "service_id" field.
func (_u *AppointmentUpdateOne) SetServiceID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetServiceID(v)
	return _u
}

// SetNillableServiceID sets the "service_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableServiceID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetServiceID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *AppointmentUpdateOne) SetDate(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableDate(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetStartMinute sets the "start_minute" field.
func (_u *AppointmentUpdateOne) SetStartMinute(v int) *AppointmentUpdateOne {
	_u.mutation.ResetStartMinute()
	_u.mutation.SetStartMinute(v)
	return _u
}

// SetNillableStartMinute sets the "start_minute" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableStartMinute(v *int) *AppointmentUpdateOne {
	if v != nil {
		_u.SetStartMinute(*v)
	}
	return _u
}

// AddStartMinute adds value to the "start_minute" field.
func (_u *AppointmentUpdateOne) AddStartMinute(v int) *AppointmentUpdateOne {
	_u.mutation.AddStartMinute(v)
	return _u
}

// SetEndMinute sets the "end_minute" field.
func (_u *AppointmentUpdateOne) SetEndMinute(v int) *AppointmentUpdateOne {
	_u.mutation.ResetEndMinute()
	_u.mutation.SetEndMinute(v)
	return _u
}

// SetNillableEndMinute sets the "end_minute" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableEndMinute(v *int) *AppointmentUpdateOne {
	if v != nil {
		_u.SetEndMinute(*v)
	}
	return _u
}

// AddEndMinute adds value to the "end_minute" field.
func (_u *AppointmentUpdateOne) AddEndMinute(v int) *AppointmentUpdateOne {
	_u.mutation.AddEndMinute(v)
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *AppointmentUpdateOne) SetDurationMinutes(v int) *AppointmentUpdateOne {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableDurationMinutes(v *int) *AppointmentUpdateOne {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *AppointmentUpdateOne) AddDurationMinutes(v int) *AppointmentUpdateOne {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetPrice sets the "price" field.
func (_u *AppointmentUpdateOne) SetPrice(v int64) *AppointmentUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillablePrice(v *int64) *AppointmentUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *AppointmentUpdateOne) AddPrice(v int64) *AppointmentUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AppointmentUpdateOne) SetStatus(v appointment.Status) *AppointmentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableStatus(v *appointment.Status) *AppointmentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *AppointmentUpdateOne) SetNotes(v string) *AppointmentUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableNotes(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *AppointmentUpdateOne) ClearNotes() *AppointmentUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetCancellationReason sets the "cancellation_reason" field.
func (_u *AppointmentUpdateOne) SetCancellationReason(v string) *AppointmentUpdateOne {
	_u.mutation.SetCancellationReason(v)
	return _u
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableCancellationReason(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetCancellationReason(*v)
	}
	return _u
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (_u *AppointmentUpdateOne) ClearCancellationReason() *AppointmentUpdateOne {
	_u.mutation.ClearCancellationReason()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *AppointmentUpdateOne) SetCancelledAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableCancelledAt(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *AppointmentUpdateOne) ClearCancelledAt() *AppointmentUpdateOne {
	_u.mutation.ClearCancelledAt()
	return _u
}

// Mutation returns the AppointmentMutation object of the builder.
func (_u *AppointmentUpdateOne) Mutation() *AppointmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AppointmentUpdate builder.
func (_u *AppointmentUpdateOne) Where(ps ...predicate.Appointment) *AppointmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AppointmentUpdateOne) Select(field string, fields ...string) *AppointmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Appointment entity.
func (_u *AppointmentUpdateOne) Save(ctx context.Context) (*Appointment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentUpdateOne) SaveX(ctx context.Context) *Appointment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AppointmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentUpdateOne) check() error {
	if v, ok := _u.mutation.StartMinute(); ok {
		if err := appointment.StartMinuteValidator(v); err != nil {
			return &ValidationError{Name: "start_minute", err: fmt.Errorf(`repo: validator failed for field "Appointment.start_minute": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndMinute(); ok {
		if err := appointment.EndMinuteValidator(v); err != nil {
			return &ValidationError{Name: "end_minute", err: fmt.Errorf(`repo: validator failed for field "Appointment.end_minute": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DurationMinutes(); ok {
		if err := appointment.DurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "duration_minutes", err: fmt.Errorf(`repo: validator failed for field "Appointment.duration_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Price(); ok {
		if err := appointment.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`repo: validator failed for field "Appointment.price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AppointmentUpdateOne) sqlSave(ctx context.Context) (_node *Appointment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointment.Table, appointment.Columns, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Appointment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, appointment.FieldID)
		for _, f := range fields {
			if !appointment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != appointment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClientID(); ok {
		_spec.SetField(appointment.FieldClientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TherapistID(); ok {
		_spec.SetField(appointment.FieldTherapistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.BranchID(); ok {
		_spec.SetField(appointment.FieldBranchID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ServiceID(); ok {
		_spec.SetField(appointment.FieldServiceID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(appointment.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartMinute(); ok {
		_spec.SetField(appointment.FieldStartMinute, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStartMinute(); ok {
		_spec.AddField(appointment.FieldStartMinute, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EndMinute(); ok {
		_spec.SetField(appointment.FieldEndMinute, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEndMinute(); ok {
		_spec.AddField(appointment.FieldEndMinute, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(appointment.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(appointment.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(appointment.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(appointment.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(appointment.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(appointment.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CancellationReason(); ok {
		_spec.SetField(appointment.FieldCancellationReason, field.TypeString, value)
	}
	if _u.mutation.CancellationReasonCleared() {
		_spec.ClearField(appointment.FieldCancellationReason, field.TypeString)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(appointment.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(appointment.FieldCancelledAt, field.TypeTime)
	}
	_node = &Appointment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
