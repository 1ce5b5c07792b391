// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/carlosmariath/painel-clinica-sub001/internal/repo/blockeddate"
	"github.com/google/uuid"
)

// BlockedDateCreate is the builder for creating a BlockedDate entity.
type BlockedDateCreate struct {
	config
	mutation *BlockedDateMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *BlockedDateCreate) SetCreatedAt(v time.Time) *BlockedDateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BlockedDateCreate) SetNillableCreatedAt(v *time.Time) *BlockedDateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BlockedDateCreate) SetUpdatedAt(v time.Time) *BlockedDateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BlockedDateCreate) SetNillableUpdatedAt(v *time.Time) *BlockedDateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTherapistID sets the "therapist_id" field.
func (_c *BlockedDateCreate) SetTherapistID(v uuid.UUID) *BlockedDateCreate {
	_c.mutation.SetTherapistID(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *BlockedDateCreate) SetDate(v time.Time) *BlockedDateCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *BlockedDateCreate) SetReason(v string) *BlockedDateCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *BlockedDateCreate) SetNillableReason(v *string) *BlockedDateCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BlockedDateCreate) SetID(v uuid.UUID) *BlockedDateCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BlockedDateCreate) SetNillableID(v *uuid.UUID) *BlockedDateCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the BlockedDateMutation object of the builder.
func (_c *BlockedDateCreate) Mutation() *BlockedDateMutation {
	return _c.mutation
}

// Save creates the BlockedDate in the database.
func (_c *BlockedDateCreate) Save(ctx context.Context) (*BlockedDate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BlockedDateCreate) SaveX(ctx context.Context) *BlockedDate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlockedDateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlockedDateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BlockedDateCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := blockeddate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := blockeddate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := blockeddate.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BlockedDateCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "BlockedDate.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "BlockedDate.updated_at"`)}
	}
	if _, ok := _c.mutation.TherapistID(); !ok {
		return &ValidationError{Name: "therapist_id", err: errors.New(`repo: missing required field "BlockedDate.therapist_id"`)}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`repo: missing required field "BlockedDate.date"`)}
	}
	return nil
}

func (_c *BlockedDateCreate) sqlSave(ctx context.Context) (*BlockedDate, error) {
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

func (_c *BlockedDateCreate) createSpec() (*BlockedDate, *sqlgraph.CreateSpec) {
	var (
		_node = &BlockedDate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(blockeddate.Table, sqlgraph.NewFieldSpec(blockeddate.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(blockeddate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(blockeddate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.TherapistID(); ok {
		_spec.SetField(blockeddate.FieldTherapistID, field.TypeUUID, value)
		_node.TherapistID = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(blockeddate.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(blockeddate.FieldReason, field.TypeString, value)
		_node.Reason = &value
	}
	return _node, _spec
}

// BlockedDateCreateBulk is the builder for creating many BlockedDate entities in bulk.
type BlockedDateCreateBulk struct {
	config
	err      error
	builders []*BlockedDateCreate
}

// Save creates the BlockedDate entities in the database.
func (_c *BlockedDateCreateBulk) Save(ctx context.Context) ([]*BlockedDate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BlockedDate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BlockedDateMutation)
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
func (_c *BlockedDateCreateBulk) SaveX(ctx context.Context) []*BlockedDate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlockedDateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlockedDateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
