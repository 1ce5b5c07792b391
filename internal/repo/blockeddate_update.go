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
	"github.com/carlosmariath/painel-clinica-sub001/internal/repo/blockeddate"
	"github.com/carlosmariath/painel-clinica-sub001/internal/repo/predicate"
	"github.com/google/uuid"
)

// BlockedDateUpdate is the builder for updating BlockedDate entities.
type BlockedDateUpdate struct {
	config
	hooks    []Hook
	mutation *BlockedDateMutation
}

// Where appends a list predicates to the BlockedDateUpdate builder.
func (_u *BlockedDateUpdate) Where(ps ...predicate.BlockedDate) *BlockedDateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BlockedDateUpdate) SetUpdatedAt(v time.Time) *BlockedDateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTherapistID sets the "therapist_id" field.
func (_u *BlockedDateUpdate) SetTherapistID(v uuid.UUID) *BlockedDateUpdate {
	_u.mutation.SetTherapistID(v)
	return _u
}

// SetNillableTherapistID sets the "therapist_id" field if the given value is not nil.
func (_u *BlockedDateUpdate) SetNillableTherapistID(v *uuid.UUID) *BlockedDateUpdate {
	if v != nil {
		_u.SetTherapistID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *BlockedDateUpdate) SetDate(v time.Time) *BlockedDateUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *BlockedDateUpdate) SetNillableDate(v *time.Time) *BlockedDateUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *BlockedDateUpdate) SetReason(v string) *BlockedDateUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *BlockedDateUpdate) SetNillableReason(v *string) *BlockedDateUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *BlockedDateUpdate) ClearReason() *BlockedDateUpdate {
	_u.mutation.ClearReason()
	return _u
}

// Mutation returns the BlockedDateMutation object of the builder.
func (_u *BlockedDateUpdate) Mutation() *BlockedDateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BlockedDateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlockedDateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BlockedDateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlockedDateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BlockedDateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := blockeddate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *BlockedDateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(blockeddate.Table, blockeddate.Columns, sqlgraph.NewFieldSpec(blockeddate.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(blockeddate.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TherapistID(); ok {
		_spec.SetField(blockeddate.FieldTherapistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(blockeddate.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(blockeddate.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(blockeddate.FieldReason, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blockeddate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BlockedDateUpdateOne is the builder for updating a single BlockedDate entity.
type BlockedDateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BlockedDateMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BlockedDateUpdateOne) SetUpdatedAt(v time.Time) *BlockedDateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTherapistID sets the "therapist_id" field.
func (_u *BlockedDateUpdateOne) SetTherapistID(v uuid.UUID) *BlockedDateUpdateOne {
	_u.mutation.SetTherapistID(v)
	return _u
}

// SetNillableTherapistID sets the "therapist_id" field if the given value is not nil.
func (_u *BlockedDateUpdateOne) SetNillableTherapistID(v *uuid.UUID) *BlockedDateUpdateOne {
	if v != nil {
		_u.SetTherapistID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *BlockedDateUpdateOne) SetDate(v time.Time) *BlockedDateUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *BlockedDateUpdateOne) SetNillableDate(v *time.Time) *BlockedDateUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *BlockedDateUpdateOne) SetReason(v string) *BlockedDateUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *BlockedDateUpdateOne) SetNillableReason(v *string) *BlockedDateUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *BlockedDateUpdateOne) ClearReason() *BlockedDateUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// Mutation returns the BlockedDateMutation object of the builder.
func (_u *BlockedDateUpdateOne) Mutation() *BlockedDateMutation {
	return _u.mutation
}

// Where appends a list predicates to the BlockedDateUpdate builder.
func (_u *BlockedDateUpdateOne) Where(ps ...predicate.BlockedDate) *BlockedDateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BlockedDateUpdateOne) Select(field string, fields ...string) *BlockedDateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BlockedDate entity.
func (_u *BlockedDateUpdateOne) Save(ctx context.Context) (*BlockedDate, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlockedDateUpdateOne) SaveX(ctx context.Context) *BlockedDate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BlockedDateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlockedDateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BlockedDateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := blockeddate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *BlockedDateUpdateOne) sqlSave(ctx context.Context) (_node *BlockedDate, err error) {
	_spec := sqlgraph.NewUpdateSpec(blockeddate.Table, blockeddate.Columns, sqlgraph.NewFieldSpec(blockeddate.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "BlockedDate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, blockeddate.FieldID)
		for _, f := range fields {
			if !blockeddate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != blockeddate.FieldID {
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
		_spec.SetField(blockeddate.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TherapistID(); ok {
		_spec.SetField(blockeddate.FieldTherapistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(blockeddate.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(blockeddate.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(blockeddate.FieldReason, field.TypeString)
	}
	_node = &BlockedDate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blockeddate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
