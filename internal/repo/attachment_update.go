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
	"github.com/carlosmariath/painel-clinica-sub001/internal/repo/attachment"
	"github.com/carlosmariath/painel-clinica-sub001/internal/repo/predicate"
	"github.com/google/uuid"
)

// AttachmentUpdate is the builder for updating Attachment entities.
type AttachmentUpdate struct {
	config
	hooks    []Hook
	mutation *AttachmentMutation
}

// Where appends a list predicates to the AttachmentUpdate builder.
func (_u *AttachmentUpdate) Where(ps ...predicate.Attachment) *AttachmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AttachmentUpdate) SetUpdatedAt(v time.Time) *AttachmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *AttachmentUpdate) SetClientID(v uuid.UUID) *AttachmentUpdate {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *AttachmentUpdate) SetNillableClientID(v *uuid.UUID) *AttachmentUpdate {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// ClearClientID clears the value of the "client_id" field.
func (_u *AttachmentUpdate) ClearClientID() *AttachmentUpdate {
	_u.mutation.ClearClientID()
	return _u
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *AttachmentUpdate) SetAppointmentID(v uuid.UUID) *AttachmentUpdate {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *AttachmentUpdate) SetNillableAppointmentID(v *uuid.UUID) *AttachmentUpdate {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// ClearAppointmentID clears the value of the "appointment_id" field.
func (_u *AttachmentUpdate) ClearAppointmentID() *AttachmentUpdate {
	_u.mutation.ClearAppointmentID()
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *AttachmentUpdate) SetFileName(v string) *AttachmentUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *AttachmentUpdate) SetNillableFileName(v *string) *AttachmentUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *AttachmentUpdate) SetContentType(v string) *AttachmentUpdate {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *AttachmentUpdate) SetNillableContentType(v *string) *AttachmentUpdate {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *AttachmentUpdate) SetSizeBytes(v int64) *AttachmentUpdate {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *AttachmentUpdate) SetNillableSizeBytes(v *int64) *AttachmentUpdate {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *AttachmentUpdate) AddSizeBytes(v int64) *AttachmentUpdate {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetStorageKey sets the "storage_key" field.
func (_u *AttachmentUpdate) SetStorageKey(v string) *AttachmentUpdate {
	_u.mutation.SetStorageKey(v)
	return _u
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (_u *AttachmentUpdate) SetNillableStorageKey(v *string) *AttachmentUpdate {
	if v != nil {
		_u.SetStorageKey(*v)
	}
	return _u
}

// SetUploadedBy sets the "uploaded_by" field.
func (_u *AttachmentUpdate) SetUploadedBy(v uuid.UUID) *AttachmentUpdate {
	_u.mutation.SetUploadedBy(v)
	return _u
}

// SetNillableUploadedBy sets the "uploaded_by" field if the given value is not nil.
func (_u *AttachmentUpdate) SetNillableUploadedBy(v *uuid.UUID) *AttachmentUpdate {
	if v != nil {
		_u.SetUploadedBy(*v)
	}
	return _u
}

// Mutation returns the AttachmentMutation object of the builder.
func (_u *AttachmentUpdate) Mutation() *AttachmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttachmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttachmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttachmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttachmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AttachmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := attachment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttachmentUpdate) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := attachment.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`repo: validator failed for field "Attachment.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentType(); ok {
		if err := attachment.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`repo: validator failed for field "Attachment.content_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SizeBytes(); ok {
		if err := attachment.SizeBytesValidator(v); err != nil {
			return &ValidationError{Name: "size_bytes", err: fmt.Errorf(`repo: validator failed for field "Attachment.size_bytes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StorageKey(); ok {
		if err := attachment.StorageKeyValidator(v); err != nil {
			return &ValidationError{Name: "storage_key", err: fmt.Errorf(`repo: validator failed for field "Attachment.storage_key": %w`, err)}
		}
	}
	return nil
}

func (_u *AttachmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attachment.Table, attachment.Columns, sqlgraph.NewFieldSpec(attachment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(attachment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClientID(); ok {
		_spec.SetField(attachment.FieldClientID, field.TypeUUID, value)
	}
	if _u.mutation.ClientIDCleared() {
		_spec.ClearField(attachment.FieldClientID, field.TypeUUID)
	}
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(attachment.FieldAppointmentID, field.TypeUUID, value)
	}
	if _u.mutation.AppointmentIDCleared() {
		_spec.ClearField(attachment.FieldAppointmentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(attachment.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(attachment.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(attachment.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(attachment.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.StorageKey(); ok {
		_spec.SetField(attachment.FieldStorageKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.UploadedBy(); ok {
		_spec.SetField(attachment.FieldUploadedBy, field.TypeUUID, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attachment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttachmentUpdateOne is the builder for updating a single Attachment entity.
type AttachmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttachmentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AttachmentUpdateOne) SetUpdatedAt(v time.Time) *AttachmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *AttachmentUpdateOne) SetClientID(v uuid.UUID) *AttachmentUpdateOne {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *AttachmentUpdateOne) SetNillableClientID(v *uuid.UUID) *AttachmentUpdateOne {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// ClearClientID clears the value of the "client_id" field.
func (_u *AttachmentUpdateOne) ClearClientID() *AttachmentUpdateOne {
	_u.mutation.ClearClientID()
	return _u
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *AttachmentUpdateOne) SetAppointmentID(v uuid.UUID) *AttachmentUpdateOne {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *AttachmentUpdateOne) SetNillableAppointmentID(v *uuid.UUID) *AttachmentUpdateOne {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// ClearAppointmentID clears the value of the "appointment_id" field.
func (_u *AttachmentUpdateOne) ClearAppointmentID() *AttachmentUpdateOne {
	_u.mutation.ClearAppointmentID()
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *AttachmentUpdateOne) SetFileName(v string) *AttachmentUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *AttachmentUpdateOne) SetNillableFileName(v *string) *AttachmentUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *AttachmentUpdateOne) SetContentType(v string) *AttachmentUpdateOne {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *AttachmentUpdateOne) SetNillableContentType(v *string) *AttachmentUpdateOne {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *AttachmentUpdateOne) SetSizeBytes(v int64) *AttachmentUpdateOne {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *AttachmentUpdateOne) SetNillableSizeBytes(v *int64) *AttachmentUpdateOne {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *AttachmentUpdateOne) AddSizeBytes(v int64) *AttachmentUpdateOne {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetStorageKey sets the "storage_key" field.
func (_u *AttachmentUpdateOne) SetStorageKey(v string) *AttachmentUpdateOne {
	_u.mutation.SetStorageKey(v)
	return _u
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (_u *AttachmentUpdateOne) SetNillableStorageKey(v *string) *AttachmentUpdateOne {
	if v != nil {
		_u.SetStorageKey(*v)
	}
	return _u
}

// SetUploadedBy sets the "uploaded_by" field.
func (_u *AttachmentUpdateOne) SetUploadedBy(v uuid.UUID) *AttachmentUpdateOne {
	_u.mutation.SetUploadedBy(v)
	return _u
}

// SetNillableUploadedBy sets the "uploaded_by" field if the given value is not nil.
func (_u *AttachmentUpdateOne) SetNillableUploadedBy(v *uuid.UUID) *AttachmentUpdateOne {
	if v != nil {
		_u.SetUploadedBy(*v)
	}
	return _u
}

// Mutation returns the AttachmentMutation object of the builder.
func (_u *AttachmentUpdateOne) Mutation() *AttachmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttachmentUpdate builder.
func (_u *AttachmentUpdateOne) Where(ps ...predicate.Attachment) *AttachmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttachmentUpdateOne) Select(field string, fields ...string) *AttachmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Attachment entity.
func (_u *AttachmentUpdateOne) Save(ctx context.Context) (*Attachment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttachmentUpdateOne) SaveX(ctx context.Context) *Attachment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttachmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttachmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AttachmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := attachment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttachmentUpdateOne) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := attachment.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`repo: validator failed for field "Attachment.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentType(); ok {
		if err := attachment.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`repo: validator failed for field "Attachment.content_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SizeBytes(); ok {
		if err := attachment.SizeBytesValidator(v); err != nil {
			return &ValidationError{Name: "size_bytes", err: fmt.Errorf(`repo: validator failed for field "Attachment.size_bytes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StorageKey(); ok {
		if err := attachment.StorageKeyValidator(v); err != nil {
			return &ValidationError{Name: "storage_key", err: fmt.Errorf(`repo: validator failed for field "Attachment.storage_key": %w`, err)}
		}
	}
	return nil
}

func (_u *AttachmentUpdateOne) sqlSave(ctx context.Context) (_node *Attachment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attachment.Table, attachment.Columns, sqlgraph.NewFieldSpec(attachment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Attachment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attachment.FieldID)
		for _, f := range fields {
			if !attachment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != attachment.FieldID {
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
		_spec.SetField(attachment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClientID(); ok {
		_spec.SetField(attachment.FieldClientID, field.TypeUUID, value)
	}
	if _u.mutation.ClientIDCleared() {
		_spec.ClearField(attachment.FieldClientID, field.TypeUUID)
	}
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(attachment.FieldAppointmentID, field.TypeUUID, value)
	}
	if _u.mutation.AppointmentIDCleared() {
		_spec.ClearField(attachment.FieldAppointmentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(attachment.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(attachment.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(attachment.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(attachment.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.StorageKey(); ok {
		_spec.SetField(attachment.FieldStorageKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.UploadedBy(); ok {
		_spec.SetField(attachment.FieldUploadedBy, field.TypeUUID, value)
	}
	_node = &Attachment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attachment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
