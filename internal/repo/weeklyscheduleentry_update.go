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
	"github.com/carlosmariath/painel-clinica-sub001/internal/repo/predicate"
	"github.com/carlosmariath/painel-clinica-sub001/internal/repo/weeklyscheduleentry"
	"github.com/google/uuid"
)

// WeeklyScheduleEntryUpdate is the builder for updating WeeklyScheduleEntry entities.
type WeeklyScheduleEntryUpdate struct {
	config
	hooks    []Hook
	mutation *WeeklyScheduleEntryMutation
}

// Where appends a list predicates to the WeeklyScheduleEntryUpdate builder.
func (_u *WeeklyScheduleEntryUpdate) Where(ps ...predicate.WeeklyScheduleEntry) *WeeklyScheduleEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WeeklyScheduleEntryUpdate) SetUpdatedAt(v time.Time) *WeeklyScheduleEntryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTherapistID sets the "therapist_id" field.
func (_u *WeeklyScheduleEntryUpdate) SetTherapistID(v uuid.UUID) *WeeklyScheduleEntryUpdate {
	_u.mutation.SetTherapistID(v)
	return _u
}

// SetNillableTherapistID sets the "therapist_id" field if the given value is not nil.
func (_u *WeeklyScheduleEntryUpdate) SetNillableTherapistID(v *uuid.UUID) *WeeklyScheduleEntryUpdate {
	if v != nil {
		_u.SetTherapistID(*v)
	}
	return _u
}

// SetBranchID sets the "branch_id" field.
func (_u *WeeklyScheduleEntryUpdate) SetBranchID(v uuid.UUID) *WeeklyScheduleEntryUpdate {
	_u.mutation.SetBranchID(v)
	return _u
}

// SetNillableBranchID sets the "branch_id" field if the given value is not nil.
func (_u *WeeklyScheduleEntryUpdate) SetNillableBranchID(v *uuid.UUID) *WeeklyScheduleEntryUpdate {
	if v != nil {
		_u.SetBranchID(*v)
	}
	return _u
}

// SetDayOfWeek sets the "day_of_week" field.
func (_u *WeeklyScheduleEntryUpdate) SetDayOfWeek(v int8) *WeeklyScheduleEntryUpdate {
	_u.mutation.ResetDayOfWeek()
	_u.mutation.SetDayOfWeek(v)
	return _u
}

// SetNillableDayOfWeek sets the "day_of_week" field if the given value is not nil.
func (_u *WeeklyScheduleEntryUpdate) SetNillableDayOfWeek(v *int8) *WeeklyScheduleEntryUpdate {
	if v != nil {
		_u.SetDayOfWeek(*v)
	}
	return _u
}

// AddDayOfWeek adds value to the "day_of_week" field.
func (_u *WeeklyScheduleEntryUpdate) AddDayOfWeek(v int8) *WeeklyScheduleEntryUpdate {
	_u.mutation.AddDayOfWeek(v)
	return _u
}

// SetStartMinute sets the "start_minute" field.
func (_u *WeeklyScheduleEntryUpdate) SetStartMinute(v int) *WeeklyScheduleEntryUpdate {
	_u.mutation.ResetStartMinute()
	_u.mutation.SetStartMinute(v)
	return _u
}

// SetNillableStartMinute sets the "start_minute" field if the given value is not nil.
func (_u *WeeklyScheduleEntryUpdate) SetNillableStartMinute(v *int) *WeeklyScheduleEntryUpdate {
	if v != nil {
		_u.SetStartMinute(*v)
	}
	return _u
}

// AddStartMinute adds value to the "start_minute" field.
func (_u *WeeklyScheduleEntryUpdate) AddStartMinute(v int) *WeeklyScheduleEntryUpdate {
	_u.mutation.AddStartMinute(v)
	return _u
}

// SetEndMinute sets the "end_minute" field.
func (_u *WeeklyScheduleEntryUpdate) SetEndMinute(v int) *WeeklyScheduleEntryUpdate {
	_u.mutation.ResetEndMinute()
	_u.mutation.SetEndMinute(v)
	return _u
}

// SetNillableEndMinute sets the "end_minute" field if the given value is not nil.
func (_u *WeeklyScheduleEntryUpdate) SetNillableEndMinute(v *int) *WeeklyScheduleEntryUpdate {
	if v != nil {
		_u.SetEndMinute(*v)
	}
	return _u
}

// AddEndMinute adds value to the "end_minute" field.
func (_u *WeeklyScheduleEntryUpdate) AddEndMinute(v int) *WeeklyScheduleEntryUpdate {
	_u.mutation.AddEndMinute(v)
	return _u
}

// Mutation returns the WeeklyScheduleEntryMutation object of the builder.
func (_u *WeeklyScheduleEntryUpdate) Mutation() *WeeklyScheduleEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WeeklyScheduleEntryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WeeklyScheduleEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WeeklyScheduleEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WeeklyScheduleEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WeeklyScheduleEntryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := weeklyscheduleentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WeeklyScheduleEntryUpdate) check() error {
	if v, ok := _u.mutation.DayOfWeek(); ok {
		if err := weeklyscheduleentry.DayOfWeekValidator(v); err != nil {
			return &ValidationError{Name: "day_of_week", err: fmt.Errorf(`repo: validator failed for field "WeeklyScheduleEntry.day_of_week": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartMinute(); ok {
		if err := weeklyscheduleentry.StartMinuteValidator(v); err != nil {
			return &ValidationError{Name: "start_minute", err: fmt.Errorf(`repo: validator failed for field "WeeklyScheduleEntry.start_minute": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndMinute(); ok {
		if err := weeklyscheduleentry.EndMinuteValidator(v); err != nil {
			return &ValidationError{Name: "end_minute", err: fmt.Errorf(`repo: validator failed for field "WeeklyScheduleEntry.end_minute": %w`, err)}
		}
	}
	return nil
}

func (_u *WeeklyScheduleEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(weeklyscheduleentry.Table, weeklyscheduleentry.Columns, sqlgraph.NewFieldSpec(weeklyscheduleentry.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(weeklyscheduleentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TherapistID(); ok {
		_spec.SetField(weeklyscheduleentry.FieldTherapistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.BranchID(); ok {
		_spec.SetField(weeklyscheduleentry.FieldBranchID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DayOfWeek(); ok {
		_spec.SetField(weeklyscheduleentry.FieldDayOfWeek, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedDayOfWeek(); ok {
		_spec.AddField(weeklyscheduleentry.FieldDayOfWeek, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.StartMinute(); ok {
		_spec.SetField(weeklyscheduleentry.FieldStartMinute, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStartMinute(); ok {
		_spec.AddField(weeklyscheduleentry.FieldStartMinute, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EndMinute(); ok {
		_spec.SetField(weeklyscheduleentry.FieldEndMinute, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEndMinute(); ok {
		_spec.AddField(weeklyscheduleentry.FieldEndMinute, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{weeklyscheduleentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WeeklyScheduleEntryUpdateOne is the builder for updating a single WeeklyScheduleEntry entity.
type WeeklyScheduleEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WeeklyScheduleEntryMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WeeklyScheduleEntryUpdateOne) SetUpdatedAt(v time.Time) *WeeklyScheduleEntryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTherapistID sets the "therapist_id" field.
func (_u *WeeklyScheduleEntryUpdateOne) SetTherapistID(v uuid.UUID) *WeeklyScheduleEntryUpdateOne {
	_u.mutation.SetTherapistID(v)
	return _u
}

// SetNillableTherapistID sets the "therapist_id" field if the given value is not nil.
func (_u *WeeklyScheduleEntryUpdateOne) SetNillableTherapistID(v *uuid.UUID) *WeeklyScheduleEntryUpdateOne {
	if v != nil {
		_u.SetTherapistID(*v)
	}
	return _u
}

// SetBranchID sets the "branch_id" field.
func (_u *WeeklyScheduleEntryUpdateOne) SetBranchID(v uuid.UUID) *WeeklyScheduleEntryUpdateOne {
	_u.mutation.SetBranchID(v)
	return _u
}

// SetNillableBranchID sets the "branch_id" field if the given value is not nil.
func (_u *WeeklyScheduleEntryUpdateOne) SetNillableBranchID(v *uuid.UUID) *WeeklyScheduleEntryUpdateOne {
	if v != nil {
		_u.SetBranchID(*v)
	}
	return _u
}

// SetDayOfWeek sets the "day_of_week" field.
func (_u *WeeklyScheduleEntryUpdateOne) SetDayOfWeek(v int8) *WeeklyScheduleEntryUpdateOne {
	_u.mutation.ResetDayOfWeek()
	_u.mutation.SetDayOfWeek(v)
	return _u
}

// SetNillableDayOfWeek sets the "day_of_week" field if the given value is not nil.
func (_u *WeeklyScheduleEntryUpdateOne) SetNillableDayOfWeek(v *int8) *WeeklyScheduleEntryUpdateOne {
	if v != nil {
		_u.SetDayOfWeek(*v)
	}
	return _u
}

// AddDayOfWeek adds value to the "day_of_week" field.
func (_u *WeeklyScheduleEntryUpdateOne) AddDayOfWeek(v int8) *WeeklyScheduleEntryUpdateOne {
	_u.mutation.AddDayOfWeek(v)
	return _u
}

// SetStartMinute sets the "start_minute" field.
func (_u *WeeklyScheduleEntryUpdateOne) SetStartMinute(v int) *WeeklyScheduleEntryUpdateOne {
	_u.mutation.ResetStartMinute()
	_u.mutation.SetStartMinute(v)
	return _u
}

// SetNillableStartMinute sets the "start_minute" field if the given value is not nil.
func (_u *WeeklyScheduleEntryUpdateOne) SetNillableStartMinute(v *int) *WeeklyScheduleEntryUpdateOne {
	if v != nil {
		_u.SetStartMinute(*v)
	}
	return _u
}

// AddStartMinute adds value to the "start_minute" field.
func (_u *WeeklyScheduleEntryUpdateOne) AddStartMinute(v int) *WeeklyScheduleEntryUpdateOne {
	_u.mutation.AddStartMinute(v)
	return _u
}

// SetEndMinute sets the "end_minute" field.
func (_u *WeeklyScheduleEntryUpdateOne) SetEndMinute(v int) *WeeklyScheduleEntryUpdateOne {
	_u.mutation.ResetEndMinute()
	_u.mutation.SetEndMinute(v)
	return _u
}

// SetNillableEndMinute sets the "end_minute" field if the given value is not nil.
func (_u *WeeklyScheduleEntryUpdateOne) SetNillableEndMinute(v *int) *WeeklyScheduleEntryUpdateOne {
	if v != nil {
		_u.SetEndMinute(*v)
	}
	return _u
}

// AddEndMinute adds value to the "end_minute" field.
func (_u *WeeklyScheduleEntryUpdateOne) AddEndMinute(v int) *WeeklyScheduleEntryUpdateOne {
	_u.mutation.AddEndMinute(v)
	return _u
}

// Mutation returns the WeeklyScheduleEntryMutation object of the builder.
func (_u *WeeklyScheduleEntryUpdateOne) Mutation() *WeeklyScheduleEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the WeeklyScheduleEntryUpdate builder.
func (_u *WeeklyScheduleEntryUpdateOne) Where(ps ...predicate.WeeklyScheduleEntry) *WeeklyScheduleEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WeeklyScheduleEntryUpdateOne) Select(field string, fields ...string) *WeeklyScheduleEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WeeklyScheduleEntry entity.
func (_u *WeeklyScheduleEntryUpdateOne) Save(ctx context.Context) (*WeeklyScheduleEntry, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WeeklyScheduleEntryUpdateOne) SaveX(ctx context.Context) *WeeklyScheduleEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WeeklyScheduleEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WeeklyScheduleEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WeeklyScheduleEntryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := weeklyscheduleentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WeeklyScheduleEntryUpdateOne) check() error {
	if v, ok := _u.mutation.DayOfWeek(); ok {
		if err := weeklyscheduleentry.DayOfWeekValidator(v); err != nil {
			return &ValidationError{Name: "day_of_week", err: fmt.Errorf(`repo: validator failed for field "WeeklyScheduleEntry.day_of_week": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartMinute(); ok {
		if err := weeklyscheduleentry.StartMinuteValidator(v); err != nil {
			return &ValidationError{Name: "start_minute", err: fmt.Errorf(`repo: validator failed for field "WeeklyScheduleEntry.start_minute": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndMinute(); ok {
		if err := weeklyscheduleentry.EndMinuteValidator(v); err != nil {
			return &ValidationError{Name: "end_minute", err: fmt.Errorf(`repo: validator failed for field "WeeklyScheduleEntry.end_minute": %w`, err)}
		}
	}
	return nil
}

func (_u *WeeklyScheduleEntryUpdateOne) sqlSave(ctx context.Context) (_node *WeeklyScheduleEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(weeklyscheduleentry.Table, weeklyscheduleentry.Columns, sqlgraph.NewFieldSpec(weeklyscheduleentry.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "WeeklyScheduleEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, weeklyscheduleentry.FieldID)
		for _, f := range fields {
			if !weeklyscheduleentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != weeklyscheduleentry.FieldID {
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
		_spec.SetField(weeklyscheduleentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TherapistID(); ok {
		_spec.SetField(weeklyscheduleentry.FieldTherapistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.BranchID(); ok {
		_spec.SetField(weeklyscheduleentry.FieldBranchID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DayOfWeek(); ok {
		_spec.SetField(weeklyscheduleentry.FieldDayOfWeek, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedDayOfWeek(); ok {
		_spec.AddField(weeklyscheduleentry.FieldDayOfWeek, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.StartMinute(); ok {
		_spec.SetField(weeklyscheduleentry.FieldStartMinute, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStartMinute(); ok {
		_spec.AddField(weeklyscheduleentry.FieldStartMinute, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EndMinute(); ok {
		_spec.SetField(weeklyscheduleentry.FieldEndMinute, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEndMinute(); ok {
		_spec.AddField(weeklyscheduleentry.FieldEndMinute, field.TypeInt, value)
	}
	_node = &WeeklyScheduleEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{weeklyscheduleentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
