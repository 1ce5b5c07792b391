// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/carlosmariath/painel-clinica-sub001/internal/repo/weeklyscheduleentry"
	"github.com/google/uuid"
)

// WeeklyScheduleEntry is the model entity for the WeeklyScheduleEntry schema.
type WeeklyScheduleEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → therapists.id
	TherapistID uuid.UUID `json:"therapist_id,omitempty"`
	// FK → branches.id
	BranchID uuid.UUID `json:"branch_id,omitempty"`
	// 0=Sunday … 6=Saturday
	DayOfWeek int8 `json:"day_of_week,omitempty"`
	// Minutes since midnight, clinic-local
	StartMinute int `json:"start_minute,omitempty"`
	// EndMinute holds the value of the "end_minute" field.
	EndMinute    int `json:"end_minute,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WeeklyScheduleEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case weeklyscheduleentry.FieldDayOfWeek, weeklyscheduleentry.FieldStartMinute, weeklyscheduleentry.FieldEndMinute:
			values[i] = new(sql.NullInt64)
		case weeklyscheduleentry.FieldCreatedAt, weeklyscheduleentry.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case weeklyscheduleentry.FieldID, weeklyscheduleentry.FieldTherapistID, weeklyscheduleentry.FieldBranchID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WeeklyScheduleEntry fields.
func (_m *WeeklyScheduleEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case weeklyscheduleentry.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case weeklyscheduleentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case weeklyscheduleentry.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case weeklyscheduleentry.FieldTherapistID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field therapist_id", values[i])
			} else if value != nil {
				_m.TherapistID = *value
			}
		case weeklyscheduleentry.FieldBranchID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field branch_id", values[i])
			} else if value != nil {
				_m.BranchID = *value
			}
		case weeklyscheduleentry.FieldDayOfWeek:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field day_of_week", values[i])
			} else if value.Valid {
				_m.DayOfWeek = int8(value.Int64)
			}
		case weeklyscheduleentry.FieldStartMinute:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field start_minute", values[i])
			} else if value.Valid {
				_m.StartMinute = int(value.Int64)
			}
		case weeklyscheduleentry.FieldEndMinute:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field end_minute", values[i])
			} else if value.Valid {
				_m.EndMinute = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WeeklyScheduleEntry.
// This includes values selected through modifiers, order, etc.
func (_m *WeeklyScheduleEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this WeeklyScheduleEntry.
// Note that you need to call WeeklyScheduleEntry.Unwrap() before calling this method if this WeeklyScheduleEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WeeklyScheduleEntry) Update() *WeeklyScheduleEntryUpdateOne {
	return NewWeeklyScheduleEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WeeklyScheduleEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WeeklyScheduleEntry) Unwrap() *WeeklyScheduleEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: WeeklyScheduleEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WeeklyScheduleEntry) String() string {
	var builder strings.Builder
	builder.WriteString("WeeklyScheduleEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("therapist_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TherapistID))
	builder.WriteString(", ")
	builder.WriteString("branch_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BranchID))
	builder.WriteString(", ")
	builder.WriteString("day_of_week=")
	builder.WriteString(fmt.Sprintf("%v", _m.DayOfWeek))
	builder.WriteString(", ")
	builder.WriteString("start_minute=")
	builder.WriteString(fmt.Sprintf("%v", _m.StartMinute))
	builder.WriteString(", ")
	builder.WriteString("end_minute=")
	builder.WriteString(fmt.Sprintf("%v", _m.EndMinute))
	builder.WriteByte(')')
	return builder.String()
}

// WeeklyScheduleEntries is a parsable slice of WeeklyScheduleEntry.
type WeeklyScheduleEntries []*WeeklyScheduleEntry
