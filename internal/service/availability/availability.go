package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/carlosmariath/painel-clinica-sub001/internal/repo"
	entappt "github.com/carlosmariath/painel-clinica-sub001/internal/repo/appointment"
	entblocked "github.com/carlosmariath/painel-clinica-sub001/internal/repo/blockeddate"
	entbranch "github.com/carlosmariath/painel-clinica-sub001/internal/repo/branch"
	entsvc "github.com/carlosmariath/painel-clinica-sub001/internal/repo/service"
	enttherapist "github.com/carlosmariath/painel-clinica-sub001/internal/repo/therapist"
	entsched "github.com/carlosmariath/painel-clinica-sub001/internal/repo/weeklyscheduleentry"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/interval"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ComputeRequest struct {
	TherapistID uuid.UUID
	Date        time.Time // calendar date; time component ignored
	ServiceID   uuid.UUID
	BranchID    *uuid.UUID // nil = all branches the therapist works
}

type AggregateRequest struct {
	TherapistIDs []uuid.UUID
	Date         time.Time
	ServiceID    uuid.UUID
	BranchID     *uuid.UUID
}

// TherapistAvailability is one row of an aggregate result.
type TherapistAvailability struct {
	TherapistID   uuid.UUID           `json:"therapist_id"`
	TherapistName string              `json:"therapist_name"`
	FreeSlots     []interval.Interval `json:"free_slots"`
	TotalFree     int                 `json:"total_free"`
}

// AggregateResult ranks therapists by free-slot count. Therapists whose
// computation failed are dropped from the list; Failed counts them so the
// caller can tell a clean result from a degraded one.
type AggregateResult struct {
	Therapists []TherapistAvailability `json:"therapists"`
	Failed     int                     `json:"failed"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Compute returns one therapist's working spans, busy spans, and bookable
	// slots for a date and service.
	Compute(ctx context.Context, req ComputeRequest) (*Result, error)

	// ComputeForMany fans Compute out over several therapists and ranks the
	// results by free-slot count.
	ComputeForMany(ctx context.Context, req AggregateRequest) (*AggregateResult, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type availabilityService struct {
	db    *repo.Client
	cache *Cache
}

func New(db *repo.Client, cache *Cache) Service {
	return &availabilityService{db: db, cache: cache}
}

func (s *availabilityService) Compute(ctx context.Context, req ComputeRequest) (*Result, error) {
	if req.Date.IsZero() {
		return nil, ErrInvalidDate
	}
	date := truncateToDate(req.Date)

	svc, err := s.db.Service.Query().
		Where(entsvc.ID(req.ServiceID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("load service: %w", err)
	}

	exists, err := s.db.Therapist.Query().
		Where(enttherapist.ID(req.TherapistID), enttherapist.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check therapist: %w", err)
	}
	if !exists {
		return nil, ErrTherapistNotFound
	}

	if req.BranchID != nil {
		ok, err := s.db.Branch.Query().
			Where(entbranch.ID(*req.BranchID)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check branch: %w", err)
		}
		if !ok {
			return nil, ErrBranchNotFound
		}
	}

	key := cacheKey(req.TherapistID, date, req.ServiceID, req.BranchID)
	if cached, ok := s.cache.Get(ctx, key); ok {
		return cached, nil
	}

	day, err := s.loadDay(ctx, req.TherapistID, date, req.BranchID)
	if err != nil {
		return nil, err
	}

	result := ComputeDay(day, svc.DurationMinutes)
	s.cache.Set(ctx, key, &result)
	return &result, nil
}

// loadDay gathers the blocked flag, working spans, and busy spans for one
// therapist and date. Busy spans are deliberately not branch-filtered: a
// therapist booked at one branch is busy everywhere.
func (s *availabilityService) loadDay(ctx context.Context, therapistID uuid.UUID, date time.Time, branchID *uuid.UUID) (DaySchedule, error) {
	blocked, err := s.db.BlockedDate.Query().
		Where(
			entblocked.TherapistID(therapistID),
			entblocked.DateEQ(date),
		).
		Exist(ctx)
	if err != nil {
		return DaySchedule{}, fmt.Errorf("check blocked date: %w", err)
	}
	if blocked {
		return DaySchedule{Blocked: true}, nil
	}

	entryQuery := s.db.WeeklyScheduleEntry.Query().
		Where(
			entsched.TherapistID(therapistID),
			entsched.DayOfWeek(int8(interval.DayOfWeek(date))),
		)
	if branchID != nil {
		entryQuery = entryQuery.Where(entsched.BranchID(*branchID))
	}
	entries, err := entryQuery.All(ctx)
	if err != nil {
		return DaySchedule{}, fmt.Errorf("load schedule entries: %w", err)
	}

	working := make([]interval.Interval, 0, len(entries))
	for _, e := range entries {
		working = append(working, interval.Interval{Start: e.StartMinute, End: e.EndMinute})
	}

	appts, err := s.db.Appointment.Query().
		Where(
			entappt.TherapistID(therapistID),
			entappt.DateEQ(date),
			entappt.StatusNEQ(entappt.StatusCancelled),
		).
		All(ctx)
	if err != nil {
		return DaySchedule{}, fmt.Errorf("load appointments: %w", err)
	}

	busy := make([]interval.Interval, 0, len(appts))
	for _, a := range appts {
		busy = append(busy, interval.Interval{Start: a.StartMinute, End: a.EndMinute})
	}

	return DaySchedule{Working: working, Busy: busy}, nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
