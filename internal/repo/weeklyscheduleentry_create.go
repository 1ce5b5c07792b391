// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/carlosmariath/painel-clinica-sub001/internal/repo/weeklyscheduleentry"
	"github.com/google/uuid"
)

// WeeklyScheduleEntryCreate is the builder for creating a WeeklyScheduleEntry entity.
type WeeklyScheduleEntryCreate struct {
	config
	mutation *WeeklyScheduleEntryMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *WeeklyScheduleEntryCreate) SetCreatedAt(v time.Time) *WeeklyScheduleEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WeeklyScheduleEntryCreate) SetNillableCreatedAt(v *time.Time) *WeeklyScheduleEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WeeklyScheduleEntryCreate) SetUpdatedAt(v time.Time) *WeeklyScheduleEntryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WeeklyScheduleEntryCreate) SetNillableUpdatedAt(v *time.Time) *WeeklyScheduleEntryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTherapistID sets the "therapist_id" field.
func (_c *WeeklyScheduleEntryCreate) SetTherapistID(v uuid.UUID) *WeeklyScheduleEntryCreate {
	_c.mutation.SetTherapistID(v)
	return _c
}

// SetBranchID sets the "branch_id" field.
func (_c *WeeklyScheduleEntryCreate) SetBranchID(v uuid.UUID) *WeeklyScheduleEntryCreate {
	_c.mutation.SetBranchID(v)
	return _c
}

// SetDayOfWeek sets the "day_of_week" field.
func (_c *WeeklyScheduleEntryCreate) SetDayOfWeek(v int8) *WeeklyScheduleEntryCreate {
	_c.mutation.SetDayOfWeek(v)
	return _c
}

// SetStartMinute sets the "start_minute" field.
func (_c *WeeklyScheduleEntryCreate) SetStartMinute(v int) *WeeklyScheduleEntryCreate {
	_c.mutation.SetStartMinute(v)
	return _c
}

// SetEndMinute sets the "end_minute" field.
func (_c *WeeklyScheduleEntryCreate) SetEndMinute(v int) *WeeklyScheduleEntryCreate {
	_c.mutation.SetEndMinute(v)
	return _c
}

// SetID sets the "id" field.
func (_c *WeeklyScheduleEntryCreate) SetID(v uuid.UUID) *WeeklyScheduleEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *WeeklyScheduleEntryCreate) SetNillableID(v *uuid.UUID) *WeeklyScheduleEntryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the WeeklyScheduleEntryMutation object of the builder.
func (_c *WeeklyScheduleEntryCreate) Mutation() *WeeklyScheduleEntryMutation {
	return _c.mutation
}

// Save creates the WeeklyScheduleEntry in the database.
func (_c *WeeklyScheduleEntryCreate) Save(ctx context.Context) (*WeeklyScheduleEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WeeklyScheduleEntryCreate) SaveX(ctx context.Context) *WeeklyScheduleEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WeeklyScheduleEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WeeklyScheduleEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WeeklyScheduleEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := weeklyscheduleentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := weeklyscheduleentry.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := weeklyscheduleentry.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WeeklyScheduleEntryCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "WeeklyScheduleEntry.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "WeeklyScheduleEntry.updated_at"`)}
	}
	if _, ok := _c.mutation.TherapistID(); !ok {
		return &ValidationError{Name: "therapist_id", err: errors.New(`repo: missing required field "WeeklyScheduleEntry.therapist_id"`)}
	}
	if _, ok := _c.mutation.BranchID(); !ok {
		return &ValidationError{Name: "branch_id", err: errors.New(`repo: missing required field "WeeklyScheduleEntry.branch_id"`)}
	}
	if _, ok := _c.mutation.DayOfWeek(); !ok {
		return &ValidationError{Name: "day_of_week", err: errors.New(`repo: missing required field "WeeklyScheduleEntry.day_of_week"`)}
	}
	if v, ok := _c.mutation.DayOfWeek(); ok {
		if err := weeklyscheduleentry.DayOfWeekValidator(v); err != nil {
			return &ValidationError{Name: "day_of_week", err: fmt.Errorf(`repo: validator failed for field "WeeklyScheduleEntry.day_of_week": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartMinute(); !ok {
		return &ValidationError{Name: "start_minute", err: errors.New(`repo: missing required field "WeeklyScheduleEntry.start_minute"`)}
	}
	if v, ok := _c.mutation.StartMinute(); ok {
		if err := weeklyscheduleentry.StartMinuteValidator(v); err != nil {
			return &ValidationError{Name: "start_minute", err: fmt.Errorf(`repo: validator failed for field "WeeklyScheduleEntry.start_minute": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EndMinute(); !ok {
		return &ValidationError{Name: "end_minute", err: errors.New(`repo: missing required field "WeeklyScheduleEntry.end_minute"`)}
	}
	if v, ok := _c.mutation.EndMinute(); ok {
		if err := weeklyscheduleentry.EndMinuteValidator(v); err != nil {
			return &ValidationError{Name: "end_minute", err: fmt.Errorf(`repo: validator failed for field "WeeklyScheduleEntry.end_minute": %w`, err)}
		}
	}
	return nil
}

func (_c *WeeklyScheduleEntryCreate) sqlSave(ctx context.Context) (*WeeklyScheduleEntry, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WeeklyScheduleEntryCreate) createSpec() (*WeeklyScheduleEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &WeeklyScheduleEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(weeklyscheduleentry.Table, sqlgraph.NewFieldSpec(weeklyscheduleentry.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(weeklyscheduleentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(weeklyscheduleentry.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.TherapistID(); ok {
		_spec.SetField(weeklyscheduleentry.FieldTherapistID, field.TypeUUID, value)
		_node.TherapistID = value
	}
	if value, ok := _c.mutation.BranchID(); ok {
		_spec.SetField(weeklyscheduleentry.FieldBranchID, field.TypeUUID, value)
		_node.BranchID = value
	}
	if value, ok := _c.mutation.DayOfWeek(); ok {
		_spec.SetField(weeklyscheduleentry.FieldDayOfWeek, field.TypeInt8, value)
		_node.DayOfWeek = value
	}
	if value, ok := _c.mutation.StartMinute(); ok {
		_spec.SetField(weeklyscheduleentry.FieldStartMinute, field.TypeInt, value)
		_node.StartMinute = value
	}
	if value, ok := _c.mutation.EndMinute(); ok {
		_spec.SetField(weeklyscheduleentry.FieldEndMinute, field.TypeInt, value)
		_node.EndMinute = value
	}
	return _node, _spec
}

// WeeklyScheduleEntryCreateBulk is the builder for creating many WeeklyScheduleEntry entities in bulk.
type WeeklyScheduleEntryCreateBulk struct {
	config
	err      error
	builders []*WeeklyScheduleEntryCreate
}

// Save creates the WeeklyScheduleEntry entities in the database.
func (_c *WeeklyScheduleEntryCreateBulk) Save(ctx context.Context) ([]*WeeklyScheduleEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WeeklyScheduleEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WeeklyScheduleEntryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *WeeklyScheduleEntryCreateBulk) SaveX(ctx context.Context) []*WeeklyScheduleEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WeeklyScheduleEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WeeklyScheduleEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
