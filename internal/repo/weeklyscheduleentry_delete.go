// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/carlosmariath/painel-clinica-sub001/internal/repo/predicate"
	"github.com/carlosmariath/painel-clinica-sub001/internal/repo/weeklyscheduleentry"
)

// WeeklyScheduleEntryDelete is the builder for deleting a WeeklyScheduleEntry entity.
type WeeklyScheduleEntryDelete struct {
	config
	hooks    []Hook
	mutation *WeeklyScheduleEntryMutation
}

// Where appends a list predicates to the WeeklyScheduleEntryDelete builder.
func (_d *WeeklyScheduleEntryDelete) Where(ps ...predicate.WeeklyScheduleEntry) *WeeklyScheduleEntryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *WeeklyScheduleEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WeeklyScheduleEntryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *WeeklyScheduleEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(weeklyscheduleentry.Table, sqlgraph.NewFieldSpec(weeklyscheduleentry.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// WeeklyScheduleEntryDeleteOne is the builder for deleting a single WeeklyScheduleEntry entity.
type WeeklyScheduleEntryDeleteOne struct {
	_d *WeeklyScheduleEntryDelete
}

// Where appends a list predicates to the WeeklyScheduleEntryDelete builder.
func (_d *WeeklyScheduleEntryDeleteOne) Where(ps ...predicate.WeeklyScheduleEntry) *WeeklyScheduleEntryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *WeeklyScheduleEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{weeklyscheduleentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WeeklyScheduleEntryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
