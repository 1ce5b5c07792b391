package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/carlosmariath/painel-clinica-sub001/internal/repo"
	entappt "github.com/carlosmariath/painel-clinica-sub001/internal/repo/appointment"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/interval"
)

// bookingStore is the narrow persistence surface the booking critical section
// runs against. The ent implementation is the real one; tests swap in a fake
// to drive the concurrency behaviour without a database.
type bookingStore interface {
	// hasOverlap reports whether any non-cancelled appointment for the
	// therapist on the date intersects span. excludeID skips one appointment,
	// used when rescheduling so an appointment does not conflict with itself.
	hasOverlap(ctx context.Context, therapistID uuid.UUID, date time.Time, span interval.Interval, excludeID *uuid.UUID) (bool, error)

	create(ctx context.Context, data createData) (*repo.Appointment, error)
}

type createData struct {
	ClientID        uuid.UUID
	TherapistID     uuid.UUID
	BranchID        uuid.UUID
	ServiceID       uuid.UUID
	Date            time.Time
	StartMinute     int
	EndMinute       int
	DurationMinutes int
	Price           int64
	Status          entappt.Status
	Notes           *string
}

type entBookingStore struct {
	db *repo.Client
}

func (s *entBookingStore) hasOverlap(ctx context.Context, therapistID uuid.UUID, date time.Time, span interval.Interval, excludeID *uuid.UUID) (bool, error) {
	q := s.db.Appointment.Query().
		Where(
			entappt.TherapistID(therapistID),
			entappt.DateEQ(date),
			entappt.StatusNEQ(entappt.StatusCancelled),
			entappt.StartMinuteLT(span.End),
			entappt.EndMinuteGT(span.Start),
		)
	if excludeID != nil {
		q = q.Where(entappt.IDNEQ(*excludeID))
	}
	taken, err := q.Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check overlap: %w", err)
	}
	return taken, nil
}

func (s *entBookingStore) create(ctx context.Context, data createData) (*repo.Appointment, error) {
	c := s.db.Appointment.Create().
		SetClientID(data.ClientID).
		SetTherapistID(data.TherapistID).
		SetBranchID(data.BranchID).
		SetServiceID(data.ServiceID).
		SetDate(data.Date).
		SetStartMinute(data.StartMinute).
		SetEndMinute(data.EndMinute).
		SetDurationMinutes(data.DurationMinutes).
		SetPrice(data.Price).
		SetStatus(data.Status)

	if data.Notes != nil {
		c = c.SetNillableNotes(data.Notes)
	}

	appt, err := c.Save(ctx)
	if err != nil {
		// The partial unique index on (therapist, date, start) backstops the
		// lock; a violation still surfaces as a conflict, not a 500.
		if repo.IsConstraintError(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	return appt, nil
}
