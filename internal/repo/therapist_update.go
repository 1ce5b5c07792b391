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
	"github.com/carlosmariath/painel-clinica-sub001/internal/repo/therapist"
	"github.com/google/uuid"
)

// TherapistUpdate is the builder for updating Therapist entities.
type TherapistUpdate struct {
	config
	hooks    []Hook
	mutation *TherapistMutation
}

// Where appends a list predicates to the TherapistUpdate builder.
func (_u *TherapistUpdate) Where(ps ...predicate.Therapist) *TherapistUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TherapistUpdate) SetUpdatedAt(v time.Time) *TherapistUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *TherapistUpdate) SetDeletedAt(v time.Time) *TherapistUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *TherapistUpdate) SetNillableDeletedAt(v *time.Time) *TherapistUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *TherapistUpdate) ClearDeletedAt() *TherapistUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetName sets the "name" field.
func (_u *TherapistUpdate) SetName(v string) *TherapistUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TherapistUpdate) SetNillableName(v *string) *TherapistUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSpecialty sets the "specialty" field.
func (_u *TherapistUpdate) SetSpecialty(v string) *TherapistUpdate {
	_u.mutation.SetSpecialty(v)
	return _u
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_u *TherapistUpdate) SetNillableSpecialty(v *string) *TherapistUpdate {
	if v != nil {
		_u.SetSpecialty(*v)
	}
	return _u
}

// ClearSpecialty clears the value of the "specialty" field.
func (_u *TherapistUpdate) ClearSpecialty() *TherapistUpdate {
	_u.mutation.ClearSpecialty()
	return _u
}

// SetEmail sets the "email" field.
func (_u *TherapistUpdate) SetEmail(v string) *TherapistUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *TherapistUpdate) SetNillableEmail(v *string) *TherapistUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *TherapistUpdate) ClearEmail() *TherapistUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TherapistUpdate) SetUserID(v uuid.UUID) *TherapistUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TherapistUpdate) SetNillableUserID(v *uuid.UUID) *TherapistUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *TherapistUpdate) ClearUserID() *TherapistUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *TherapistUpdate) SetIsActive(v bool) *TherapistUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *TherapistUpdate) SetNillableIsActive(v *bool) *TherapistUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the TherapistMutation object of the builder.
func (_u *TherapistUpdate) Mutation() *TherapistMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TherapistUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TherapistUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TherapistUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TherapistUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TherapistUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := therapist.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TherapistUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := therapist.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Therapist.name": %w`, err)}
		}
	}
	return nil
}

func (_u *TherapistUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(therapist.Table, therapist.Columns, sqlgraph.NewFieldSpec(therapist.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(therapist.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(therapist.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(therapist.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(therapist.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Specialty(); ok {
		_spec.SetField(therapist.FieldSpecialty, field.TypeString, value)
	}
	if _u.mutation.SpecialtyCleared() {
		_spec.ClearField(therapist.FieldSpecialty, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(therapist.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(therapist.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(therapist.FieldUserID, field.TypeUUID, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(therapist.FieldUserID, field.TypeUUID)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(therapist.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{therapist.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TherapistUpdateOne is the builder for updating a single Therapist entity.
type TherapistUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TherapistMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TherapistUpdateOne) SetUpdatedAt(v time.Time) *TherapistUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *TherapistUpdateOne) SetDeletedAt(v time.Time) *TherapistUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *TherapistUpdateOne) SetNillableDeletedAt(v *time.Time) *TherapistUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *TherapistUpdateOne) ClearDeletedAt() *TherapistUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetName sets the "name" field.
func (_u *TherapistUpdateOne) SetName(v string) *TherapistUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TherapistUpdateOne) SetNillableName(v *string) *TherapistUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSpecialty sets the "specialty" field.
func (_u *TherapistUpdateOne) SetSpecialty(v string) *TherapistUpdateOne {
	_u.mutation.SetSpecialty(v)
	return _u
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_u *TherapistUpdateOne) SetNillableSpecialty(v *string) *TherapistUpdateOne {
	if v != nil {
		_u.SetSpecialty(*v)
	}
	return _u
}

// ClearSpecialty clears the value of the "specialty" field.
func (_u *TherapistUpdateOne) ClearSpecialty() *TherapistUpdateOne {
	_u.mutation.ClearSpecialty()
	return _u
}

// SetEmail sets the "email" field.
func (_u *TherapistUpdateOne) SetEmail(v string) *TherapistUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *TherapistUpdateOne) SetNillableEmail(v *string) *TherapistUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *TherapistUpdateOne) ClearEmail() *TherapistUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TherapistUpdateOne) SetUserID(v uuid.UUID) *TherapistUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TherapistUpdateOne) SetNillableUserID(v *uuid.UUID) *TherapistUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *TherapistUpdateOne) ClearUserID() *TherapistUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *TherapistUpdateOne) SetIsActive(v bool) *TherapistUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *TherapistUpdateOne) SetNillableIsActive(v *bool) *TherapistUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the TherapistMutation object of the builder.
func (_u *TherapistUpdateOne) Mutation() *TherapistMutation {
	return _u.mutation
}

// Where appends a list predicates to the TherapistUpdate builder.
func (_u *TherapistUpdateOne) Where(ps ...predicate.Therapist) *TherapistUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TherapistUpdateOne) Select(field string, fields ...string) *TherapistUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Therapist entity.
func (_u *TherapistUpdateOne) Save(ctx context.Context) (*Therapist, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TherapistUpdateOne) SaveX(ctx context.Context) *Therapist {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TherapistUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TherapistUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TherapistUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := therapist.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TherapistUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := therapist.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Therapist.name": %w`, err)}
		}
	}
	return nil
}

func (_u *TherapistUpdateOne) sqlSave(ctx context.Context) (_node *Therapist, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(therapist.Table, therapist.Columns, sqlgraph.NewFieldSpec(therapist.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Therapist.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, therapist.FieldID)
		for _, f := range fields {
			if !therapist.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != therapist.FieldID {
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
		_spec.SetField(therapist.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(therapist.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(therapist.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(therapist.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Specialty(); ok {
		_spec.SetField(therapist.FieldSpecialty, field.TypeString, value)
	}
	if _u.mutation.SpecialtyCleared() {
		_spec.ClearField(therapist.FieldSpecialty, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(therapist.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(therapist.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(therapist.FieldUserID, field.TypeUUID, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(therapist.FieldUserID, field.TypeUUID)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(therapist.FieldIsActive, field.TypeBool, value)
	}
	_node = &Therapist{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{therapist.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
