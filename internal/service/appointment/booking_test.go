package appointment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/carlosmariath/painel-clinica-sub001/internal/repo"
	entappt "github.com/carlosmariath/painel-clinica-sub001/internal/repo/appointment"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/interval"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/lock"
)

// fakeBookingStore keeps appointments in memory. The pause between the
// overlap check and the insert widens the race window: without the
// per-therapist lock, concurrent bookings would all pass the check before
// any of them writes.
type fakeBookingStore struct {
	mu    sync.Mutex
	rows  []createData
	pause time.Duration
}

func (f *fakeBookingStore) hasOverlap(ctx context.Context, therapistID uuid.UUID, date time.Time, span interval.Interval, excludeID *uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rows {
		if r.TherapistID != therapistID || !r.Date.Equal(date) {
			continue
		}
		if r.Status == entappt.StatusCancelled {
			continue
		}
		if (interval.Interval{Start: r.StartMinute, End: r.EndMinute}).Overlaps(span) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookingStore) create(ctx context.Context, data createData) (*repo.Appointment, error) {
	if f.pause > 0 {
		time.Sleep(f.pause)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = append(f.rows, data)
	return &repo.Appointment{
		ID:          uuid.New(),
		TherapistID: data.TherapistID,
		ClientID:    data.ClientID,
		Date:        data.Date,
		StartMinute: data.StartMinute,
		EndMinute:   data.EndMinute,
		Status:      data.Status,
	}, nil
}

func newTestService(store bookingStore) *appointmentService {
	return &appointmentService{
		store: store,
		locks: lock.NewKeyed(),
	}
}

func testData(therapistID uuid.UUID, start, end int) createData {
	return createData{
		ClientID:        uuid.New(),
		TherapistID:     therapistID,
		BranchID:        uuid.New(),
		ServiceID:       uuid.New(),
		Date:            time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartMinute:     start,
		EndMinute:       end,
		DurationMinutes: end - start,
		Status:          entappt.StatusScheduled,
	}
}

func TestBookLocked_ConcurrentSameSlotExactlyOneWins(t *testing.T) {
	therapistID := uuid.New()
	store := &fakeBookingStore{pause: 2 * time.Millisecond}
	svc := newTestService(store)

	const n = 16
	var wg sync.WaitGroup
	results := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.bookLocked(context.Background(), testData(therapistID, 540, 600))
			results[i] = err
		}(i)
	}
	wg.Wait()

	var wins, conflicts int
	for _, err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrConflict):
			conflicts++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Errorf("expected exactly 1 successful booking, got %d", wins)
	}
	if conflicts != n-1 {
		t.Errorf("expected %d conflicts, got %d", n-1, conflicts)
	}
	if len(store.rows) != 1 {
		t.Errorf("expected exactly 1 stored appointment, got %d", len(store.rows))
	}
}

func TestBookLocked_OverlappingNotIdenticalStillConflicts(t *testing.T) {
	therapistID := uuid.New()
	store := &fakeBookingStore{}
	svc := newTestService(store)

	if _, err := svc.bookLocked(context.Background(), testData(therapistID, 540, 600)); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	// 09:30-10:30 overlaps the booked 09:00-10:00.
	_, err := svc.bookLocked(context.Background(), testData(therapistID, 570, 630))
	if !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict for overlapping interval, got %v", err)
	}
}

func TestBookLocked_AdjacentIntervalsDoNotConflict(t *testing.T) {
	therapistID := uuid.New()
	store := &fakeBookingStore{}
	svc := newTestService(store)

	if _, err := svc.bookLocked(context.Background(), testData(therapistID, 540, 600)); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	// Half-open intervals: 10:00-11:00 touches 09:00-10:00 but does not overlap.
	if _, err := svc.bookLocked(context.Background(), testData(therapistID, 600, 660)); err != nil {
		t.Errorf("adjacent booking should succeed, got %v", err)
	}
}

func TestBookLocked_DifferentTherapistsDoNotSerialize(t *testing.T) {
	store := &fakeBookingStore{}
	svc := newTestService(store)

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.bookLocked(context.Background(), testData(uuid.New(), 540, 600))
			errs[i] = err
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("booking %d for its own therapist should succeed, got %v", i, err)
		}
	}
	if len(store.rows) != n {
		t.Errorf("expected %d stored appointments, got %d", n, len(store.rows))
	}
}

func TestBookLocked_CancelledRowDoesNotBlock(t *testing.T) {
	therapistID := uuid.New()
	store := &fakeBookingStore{}
	svc := newTestService(store)

	cancelled := testData(therapistID, 540, 600)
	cancelled.Status = entappt.StatusCancelled
	store.rows = append(store.rows, cancelled)

	if _, err := svc.bookLocked(context.Background(), testData(therapistID, 540, 600)); err != nil {
		t.Errorf("cancelled appointment should not occupy the slot, got %v", err)
	}
}

func TestValidateParties(t *testing.T) {
	allGood := partyFacts{
		clientExists:    true,
		therapistExists: true,
		therapistActive: true,
		branchActive:    true,
	}

	tests := []struct {
		name    string
		mutate  func(*partyFacts)
		wantErr error
	}{
		{
			name:   "all parties bookable",
			mutate: func(f *partyFacts) {},
		},
		{
			name:    "client missing",
			mutate:  func(f *partyFacts) { f.clientExists = false },
			wantErr: ErrClientNotFound,
		},
		{
			name:    "therapist missing",
			mutate:  func(f *partyFacts) { f.therapistExists = false },
			wantErr: ErrTherapistNotFound,
		},
		{
			name:    "deactivated therapist takes no new bookings",
			mutate:  func(f *partyFacts) { f.therapistActive = false },
			wantErr: ErrTherapistInactive,
		},
		{
			name:    "inactive branch",
			mutate:  func(f *partyFacts) { f.branchActive = false },
			wantErr: ErrBranchNotFound,
		},
		{
			name: "missing therapist wins over inactive flag",
			mutate: func(f *partyFacts) {
				f.therapistExists = false
				f.therapistActive = false
			},
			wantErr: ErrTherapistNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facts := allGood
			tt.mutate(&facts)
			if err := validateParties(facts); !errors.Is(err, tt.wantErr) {
				t.Errorf("validateParties() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
