package appointment

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/carlosmariath/painel-clinica-sub001/internal/repo"
	entappt "github.com/carlosmariath/painel-clinica-sub001/internal/repo/appointment"
	entbranch "github.com/carlosmariath/painel-clinica-sub001/internal/repo/branch"
	entclient "github.com/carlosmariath/painel-clinica-sub001/internal/repo/patient"
	entsvc "github.com/carlosmariath/painel-clinica-sub001/internal/repo/service"
	enttherapist "github.com/carlosmariath/painel-clinica-sub001/internal/repo/therapist"
	"github.com/carlosmariath/painel-clinica-sub001/internal/service/availability"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/constants"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/interval"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/lock"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListRequest struct {
	TherapistID *uuid.UUID
	ClientID    *uuid.UUID
	BranchID    *uuid.UUID
	Status      *string
	From        *time.Time
	To          *time.Time
	Page        int
	PerPage     int
}

type BookRequest struct {
	ClientID    uuid.UUID
	TherapistID uuid.UUID
	BranchID    uuid.UUID
	ServiceID   uuid.UUID
	Date        time.Time
	StartMinute int
	// Status defaults to scheduled; pending is the only other status a
	// booking may start in.
	Status string
	Notes  *string
}

type RescheduleRequest struct {
	Date        time.Time
	StartMinute int
}

type CancelRequest struct {
	Reason *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, req ListRequest) ([]*repo.Appointment, error)
	GetByID(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error)
	Book(ctx context.Context, req BookRequest) (*repo.Appointment, error)
	Reschedule(ctx context.Context, apptID uuid.UUID, req RescheduleRequest) (*repo.Appointment, error)
	Cancel(ctx context.Context, apptID uuid.UUID, req CancelRequest) error
	UpdateStatus(ctx context.Context, apptID uuid.UUID, status string) (*repo.Appointment, error)
	Delete(ctx context.Context, apptID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type appointmentService struct {
	db    *repo.Client
	store bookingStore
	locks *lock.Keyed
	cache *availability.Cache
	nc    *nats.Conn
}

func New(db *repo.Client, locks *lock.Keyed, cache *availability.Cache, nc *nats.Conn) Service {
	return &appointmentService{
		db:    db,
		store: &entBookingStore{db: db},
		locks: locks,
		cache: cache,
		nc:    nc,
	}
}

func (s *appointmentService) List(ctx context.Context, req ListRequest) ([]*repo.Appointment, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Appointment.Query()

	if req.TherapistID != nil {
		q = q.Where(entappt.TherapistID(*req.TherapistID))
	}
	if req.ClientID != nil {
		q = q.Where(entappt.ClientID(*req.ClientID))
	}
	if req.BranchID != nil {
		q = q.Where(entappt.BranchID(*req.BranchID))
	}
	if req.Status != nil {
		q = q.Where(entappt.StatusEQ(entappt.Status(*req.Status)))
	}
	if req.From != nil {
		q = q.Where(entappt.DateGTE(*req.From))
	}
	if req.To != nil {
		q = q.Where(entappt.DateLT(*req.To))
	}

	q = q.Order(entappt.ByDate(sql.OrderDesc()), entappt.ByStartMinute(sql.OrderAsc()))

	appts, err := q.Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appts, nil
}

func (s *appointmentService) GetByID(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.db.Appointment.Query().
		Where(entappt.ID(apptID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return appt, nil
}

func (s *appointmentService) Book(ctx context.Context, req BookRequest) (*repo.Appointment, error) {
	if req.Date.IsZero() || req.StartMinute < 0 || req.StartMinute >= interval.MinutesPerDay {
		return nil, ErrInvalidTime
	}
	date := truncateToDate(req.Date)

	status := entappt.StatusScheduled
	switch req.Status {
	case "", string(entappt.StatusScheduled):
	case string(entappt.StatusPending):
		status = entappt.StatusPending
	default:
		return nil, ErrInvalidStatus
	}

	svc, err := s.db.Service.Query().
		Where(entsvc.ID(req.ServiceID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("load service: %w", err)
	}

	end := req.StartMinute + svc.DurationMinutes
	if end > interval.MinutesPerDay {
		return nil, ErrInvalidTime
	}

	if err := s.checkParties(ctx, req.ClientID, req.TherapistID, req.BranchID); err != nil {
		return nil, err
	}

	data := createData{
		ClientID:    req.ClientID,
		TherapistID: req.TherapistID,
		BranchID:    req.BranchID,
		ServiceID:   req.ServiceID,
		Date:        date,
		StartMinute: req.StartMinute,
		EndMinute:   end,
		// Snapshot so later catalog edits never rewrite history.
		DurationMinutes: svc.DurationMinutes,
		Price:           svc.Price,
		Status:          status,
		Notes:           req.Notes,
	}

	appt, err := s.bookLocked(ctx, data)
	if err != nil {
		return nil, err
	}

	s.cache.InvalidateTherapistDate(ctx, req.TherapistID, date)
	s.publish("appointment.created", appt.ID)

	return appt, nil
}

func (s *appointmentService) Reschedule(ctx context.Context, apptID uuid.UUID, req RescheduleRequest) (*repo.Appointment, error) {
	if req.Date.IsZero() || req.StartMinute < 0 || req.StartMinute >= interval.MinutesPerDay {
		return nil, ErrInvalidTime
	}

	appt, err := s.GetByID(ctx, apptID)
	if err != nil {
		return nil, err
	}
	if appt.Status == entappt.StatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	date := truncateToDate(req.Date)
	end := req.StartMinute + appt.DurationMinutes
	if end > interval.MinutesPerDay {
		return nil, ErrInvalidTime
	}

	var updated *repo.Appointment
	err = s.locks.Do(ctx, appt.TherapistID.String(), func() error {
		span := interval.Interval{Start: req.StartMinute, End: end}
		taken, err := s.store.hasOverlap(ctx, appt.TherapistID, date, span, &apptID)
		if err != nil {
			return err
		}
		if taken {
			return ErrConflict
		}
		updated, err = s.db.Appointment.UpdateOneID(apptID).
			SetDate(date).
			SetStartMinute(req.StartMinute).
			SetEndMinute(end).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("reschedule appointment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Both the old and new day change shape.
	s.cache.InvalidateTherapistDate(ctx, appt.TherapistID, appt.Date)
	s.cache.InvalidateTherapistDate(ctx, appt.TherapistID, date)
	s.publish("appointment.rescheduled", apptID)

	return updated, nil
}

func (s *appointmentService) Cancel(ctx context.Context, apptID uuid.UUID, req CancelRequest) error {
	appt, err := s.GetByID(ctx, apptID)
	if err != nil {
		return err
	}
	if appt.Status == entappt.StatusCancelled {
		return ErrAlreadyCancelled
	}

	upd := s.db.Appointment.UpdateOneID(apptID).
		SetStatus(entappt.StatusCancelled).
		SetCancelledAt(time.Now())
	if req.Reason != nil {
		upd = upd.SetCancellationReason(*req.Reason)
	}
	if err := upd.Exec(ctx); err != nil {
		return fmt.Errorf("cancel appointment: %w", err)
	}

	// The freed interval must show up on the next availability read.
	s.cache.InvalidateTherapistDate(ctx, appt.TherapistID, appt.Date)
	s.publish("appointment.cancelled", apptID)

	return nil
}

func (s *appointmentService) UpdateStatus(ctx context.Context, apptID uuid.UUID, status string) (*repo.Appointment, error) {
	next := entappt.Status(status)
	switch next {
	case entappt.StatusScheduled, entappt.StatusConfirmed, entappt.StatusPending, entappt.StatusNoShow:
	case entappt.StatusCancelled:
		// Cancellation goes through Cancel so the reason and timestamp are
		// recorded and the slot is released consistently.
		return nil, ErrInvalidStatus
	default:
		return nil, ErrInvalidStatus
	}

	appt, err := s.GetByID(ctx, apptID)
	if err != nil {
		return nil, err
	}
	if appt.Status == entappt.StatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	updated, err := s.db.Appointment.UpdateOneID(apptID).
		SetStatus(next).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update appointment status: %w", err)
	}
	return updated, nil
}

func (s *appointmentService) Delete(ctx context.Context, apptID uuid.UUID) error {
	appt, err := s.GetByID(ctx, apptID)
	if err != nil {
		return err
	}

	if err := s.db.Appointment.DeleteOneID(apptID).Exec(ctx); err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}

	s.cache.InvalidateTherapistDate(ctx, appt.TherapistID, appt.Date)
	return nil
}

// bookLocked is steps three to five of the booking flow: recheck the
// interval and insert, under the therapist's lock so no two bookings for the
// same therapist can interleave between the recheck and the write.
func (s *appointmentService) bookLocked(ctx context.Context, data createData) (*repo.Appointment, error) {
	var appt *repo.Appointment
	err := s.locks.Do(ctx, data.TherapistID.String(), func() error {
		span := interval.Interval{Start: data.StartMinute, End: data.EndMinute}
		taken, err := s.store.hasOverlap(ctx, data.TherapistID, data.Date, span, nil)
		if err != nil {
			return err
		}
		if taken {
			return ErrConflict
		}
		appt, err = s.store.create(ctx, data)
		return err
	})
	if err != nil {
		return nil, err
	}
	return appt, nil
}

// partyFacts is what checkParties learns about the booking parties before
// validateParties decides whether they may be booked together.
type partyFacts struct {
	clientExists    bool
	therapistExists bool
	therapistActive bool
	branchActive    bool
}

func validateParties(f partyFacts) error {
	switch {
	case !f.clientExists:
		return ErrClientNotFound
	case !f.therapistExists:
		return ErrTherapistNotFound
	case !f.therapistActive:
		// Deactivated therapists stay visible on past appointments but take
		// no new ones.
		return ErrTherapistInactive
	case !f.branchActive:
		return ErrBranchNotFound
	}
	return nil
}

func (s *appointmentService) checkParties(ctx context.Context, clientID, therapistID, branchID uuid.UUID) error {
	var facts partyFacts

	ok, err := s.db.Patient.Query().
		Where(entclient.ID(clientID), entclient.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check client: %w", err)
	}
	facts.clientExists = ok

	th, err := s.db.Therapist.Query().
		Where(enttherapist.ID(therapistID), enttherapist.DeletedAtIsNil()).
		Only(ctx)
	switch {
	case err == nil:
		facts.therapistExists = true
		facts.therapistActive = th.IsActive
	case !repo.IsNotFound(err):
		return fmt.Errorf("check therapist: %w", err)
	}

	ok, err = s.db.Branch.Query().
		Where(entbranch.ID(branchID), entbranch.IsActive(true)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check branch: %w", err)
	}
	facts.branchActive = ok

	return validateParties(facts)
}

func (s *appointmentService) publish(event string, apptID uuid.UUID) {
	if s.nc == nil {
		return
	}
	subject := fmt.Sprintf("%s.%s.%s", constants.EventSubjectPrefix, event, apptID)
	_ = s.nc.Publish(subject, []byte(apptID.String()))
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
