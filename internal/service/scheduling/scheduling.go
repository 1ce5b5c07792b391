package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/carlosmariath/painel-clinica-sub001/internal/repo"
	entblocked "github.com/carlosmariath/painel-clinica-sub001/internal/repo/blockeddate"
	entbranch "github.com/carlosmariath/painel-clinica-sub001/internal/repo/branch"
	enttherapist "github.com/carlosmariath/painel-clinica-sub001/internal/repo/therapist"
	entsched "github.com/carlosmariath/painel-clinica-sub001/internal/repo/weeklyscheduleentry"
	"github.com/carlosmariath/painel-clinica-sub001/internal/service/availability"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/interval"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateEntryRequest struct {
	TherapistID uuid.UUID
	BranchID    uuid.UUID
	DayOfWeek   int8
	StartMinute int
	EndMinute   int
}

type UpdateEntryRequest struct {
	DayOfWeek   *int8
	StartMinute *int
	EndMinute   *int
}

type ListEntriesRequest struct {
	TherapistID *uuid.UUID
	BranchID    *uuid.UUID
	DayOfWeek   *int8
}

type BlockDateRequest struct {
	TherapistID uuid.UUID
	Date        time.Time
	Reason      *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Weekly schedule entries
	ListEntries(ctx context.Context, req ListEntriesRequest) ([]*repo.WeeklyScheduleEntry, error)
	CreateEntry(ctx context.Context, req CreateEntryRequest) (*repo.WeeklyScheduleEntry, error)
	UpdateEntry(ctx context.Context, entryID uuid.UUID, req UpdateEntryRequest) (*repo.WeeklyScheduleEntry, error)
	DeleteEntry(ctx context.Context, entryID uuid.UUID) error

	// Blocked dates
	ListBlockedDates(ctx context.Context, therapistID uuid.UUID, from, to time.Time) ([]*repo.BlockedDate, error)
	BlockDate(ctx context.Context, req BlockDateRequest) (*repo.BlockedDate, error)
	UnblockDate(ctx context.Context, blockID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type schedulingService struct {
	db    *repo.Client
	cache *availability.Cache
}

func New(db *repo.Client, cache *availability.Cache) Service {
	return &schedulingService{db: db, cache: cache}
}

// ---------------------------------------------------------------------------
// Weekly schedule entries
// ---------------------------------------------------------------------------

func (s *schedulingService) ListEntries(ctx context.Context, req ListEntriesRequest) ([]*repo.WeeklyScheduleEntry, error) {
	q := s.db.WeeklyScheduleEntry.Query()

	if req.TherapistID != nil {
		q = q.Where(entsched.TherapistID(*req.TherapistID))
	}
	if req.BranchID != nil {
		q = q.Where(entsched.BranchID(*req.BranchID))
	}
	if req.DayOfWeek != nil {
		q = q.Where(entsched.DayOfWeek(*req.DayOfWeek))
	}

	entries, err := q.
		Order(entsched.ByDayOfWeek(), entsched.ByStartMinute()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schedule entries: %w", err)
	}
	return entries, nil
}

func (s *schedulingService) CreateEntry(ctx context.Context, req CreateEntryRequest) (*repo.WeeklyScheduleEntry, error) {
	if err := validateSpan(req.DayOfWeek, req.StartMinute, req.EndMinute); err != nil {
		return nil, err
	}

	ok, err := s.db.Therapist.Query().
		Where(enttherapist.ID(req.TherapistID), enttherapist.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check therapist: %w", err)
	}
	if !ok {
		return nil, ErrTherapistNotFound
	}

	ok, err = s.db.Branch.Query().
		Where(entbranch.ID(req.BranchID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check branch: %w", err)
	}
	if !ok {
		return nil, ErrBranchNotFound
	}

	entry, err := s.db.WeeklyScheduleEntry.Create().
		SetTherapistID(req.TherapistID).
		SetBranchID(req.BranchID).
		SetDayOfWeek(req.DayOfWeek).
		SetStartMinute(req.StartMinute).
		SetEndMinute(req.EndMinute).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create schedule entry: %w", err)
	}

	// The weekly pattern changed; every cached day for this therapist is stale.
	s.cache.InvalidateTherapist(ctx, req.TherapistID)
	return entry, nil
}

func (s *schedulingService) UpdateEntry(ctx context.Context, entryID uuid.UUID, req UpdateEntryRequest) (*repo.WeeklyScheduleEntry, error) {
	entry, err := s.db.WeeklyScheduleEntry.Query().
		Where(entsched.ID(entryID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("get schedule entry: %w", err)
	}

	day := entry.DayOfWeek
	start := entry.StartMinute
	end := entry.EndMinute
	if req.DayOfWeek != nil {
		day = *req.DayOfWeek
	}
	if req.StartMinute != nil {
		start = *req.StartMinute
	}
	if req.EndMinute != nil {
		end = *req.EndMinute
	}
	if err := validateSpan(day, start, end); err != nil {
		return nil, err
	}

	updated, err := s.db.WeeklyScheduleEntry.UpdateOneID(entryID).
		SetDayOfWeek(day).
		SetStartMinute(start).
		SetEndMinute(end).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update schedule entry: %w", err)
	}

	s.cache.InvalidateTherapist(ctx, entry.TherapistID)
	return updated, nil
}

func (s *schedulingService) DeleteEntry(ctx context.Context, entryID uuid.UUID) error {
	entry, err := s.db.WeeklyScheduleEntry.Query().
		Where(entsched.ID(entryID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrEntryNotFound
		}
		return fmt.Errorf("get schedule entry: %w", err)
	}

	if err := s.db.WeeklyScheduleEntry.DeleteOneID(entryID).Exec(ctx); err != nil {
		return fmt.Errorf("delete schedule entry: %w", err)
	}

	s.cache.InvalidateTherapist(ctx, entry.TherapistID)
	return nil
}

// ---------------------------------------------------------------------------
// Blocked dates
// ---------------------------------------------------------------------------

func (s *schedulingService) ListBlockedDates(ctx context.Context, therapistID uuid.UUID, from, to time.Time) ([]*repo.BlockedDate, error) {
	q := s.db.BlockedDate.Query().
		Where(entblocked.TherapistID(therapistID))

	if !from.IsZero() {
		q = q.Where(entblocked.DateGTE(truncateToDate(from)))
	}
	if !to.IsZero() {
		q = q.Where(entblocked.DateLT(truncateToDate(to)))
	}

	blocks, err := q.Order(entblocked.ByDate()).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list blocked dates: %w", err)
	}
	return blocks, nil
}

func (s *schedulingService) BlockDate(ctx context.Context, req BlockDateRequest) (*repo.BlockedDate, error) {
	if req.Date.IsZero() {
		return nil, ErrInvalidDate
	}
	date := truncateToDate(req.Date)

	ok, err := s.db.Therapist.Query().
		Where(enttherapist.ID(req.TherapistID), enttherapist.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check therapist: %w", err)
	}
	if !ok {
		return nil, ErrTherapistNotFound
	}

	c := s.db.BlockedDate.Create().
		SetTherapistID(req.TherapistID).
		SetDate(date)
	if req.Reason != nil {
		c = c.SetNillableReason(req.Reason)
	}

	block, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrDateAlreadyBlocked
		}
		return nil, fmt.Errorf("block date: %w", err)
	}

	s.cache.InvalidateTherapistDate(ctx, req.TherapistID, date)
	return block, nil
}

func (s *schedulingService) UnblockDate(ctx context.Context, blockID uuid.UUID) error {
	block, err := s.db.BlockedDate.Query().
		Where(entblocked.ID(blockID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrBlockNotFound
		}
		return fmt.Errorf("get blocked date: %w", err)
	}

	if err := s.db.BlockedDate.DeleteOneID(blockID).Exec(ctx); err != nil {
		return fmt.Errorf("unblock date: %w", err)
	}

	s.cache.InvalidateTherapistDate(ctx, block.TherapistID, block.Date)
	return nil
}

func validateSpan(day int8, start, end int) error {
	if day < 0 || day > 6 {
		return ErrInvalidDayOfWeek
	}
	if start < 0 || end > interval.MinutesPerDay || start >= end {
		return ErrInvalidTimeRange
	}
	return nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
