package availability

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/carlosmariath/painel-clinica-sub001/pkg/interval"
)

func slotsOfLength(n int) []interval.Interval {
	out := make([]interval.Interval, n)
	for i := range out {
		out[i] = interval.Interval{Start: 480 + i*60, End: 540 + i*60}
	}
	return out
}

func workingDay(free int) *Result {
	return &Result{
		WorkingIntervals: []interval.Interval{{Start: 480, End: 1020}},
		FreeSlots:        slotsOfLength(free),
	}
}

func TestAggregate_RanksByFreeSlotCount(t *testing.T) {
	idA, idB, idC := uuid.New(), uuid.New(), uuid.New()
	names := map[uuid.UUID]string{idA: "Ana", idB: "Bruno", idC: "Clara"}
	counts := map[uuid.UUID]int{idA: 2, idB: 5, idC: 3}

	compute := func(_ context.Context, id uuid.UUID) (*Result, error) {
		return workingDay(counts[id]), nil
	}

	res := aggregate(context.Background(), []uuid.UUID{idA, idB, idC}, names, compute)

	if res.Failed != 0 {
		t.Fatalf("expected no failures, got %d", res.Failed)
	}
	got := make([]string, 0, len(res.Therapists))
	for _, row := range res.Therapists {
		got = append(got, row.TherapistName)
	}
	want := []string{"Bruno", "Clara", "Ana"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %s, want %s (full order %v)", i, got[i], want[i], got)
		}
	}
}

func TestAggregate_TiesBrokenByNameAscending(t *testing.T) {
	idA, idB := uuid.New(), uuid.New()
	names := map[uuid.UUID]string{idA: "Zelia", idB: "Ana"}

	compute := func(_ context.Context, id uuid.UUID) (*Result, error) {
		return workingDay(4), nil
	}

	res := aggregate(context.Background(), []uuid.UUID{idA, idB}, names, compute)

	if res.Therapists[0].TherapistName != "Ana" || res.Therapists[1].TherapistName != "Zelia" {
		t.Errorf("tie should be broken by name ascending, got %v", res.Therapists)
	}
}

func TestAggregate_FailedTherapistDroppedNotFatal(t *testing.T) {
	idA, idB, idC := uuid.New(), uuid.New(), uuid.New()
	names := map[uuid.UUID]string{idA: "Ana", idB: "Bruno", idC: "Clara"}

	compute := func(_ context.Context, id uuid.UUID) (*Result, error) {
		if id == idB {
			return nil, errors.New("storage timeout")
		}
		return workingDay(1), nil
	}

	res := aggregate(context.Background(), []uuid.UUID{idA, idB, idC}, names, compute)

	if len(res.Therapists) != 2 {
		t.Fatalf("expected 2 surviving therapists, got %d", len(res.Therapists))
	}
	if res.Failed != 1 {
		t.Errorf("expected 1 recorded failure, got %d", res.Failed)
	}
	for _, row := range res.Therapists {
		if row.TherapistID == idB {
			t.Errorf("failed therapist should have been dropped")
		}
	}
}

func TestAggregate_UnknownTherapistCountsAsFailure(t *testing.T) {
	known, unknown := uuid.New(), uuid.New()
	names := map[uuid.UUID]string{known: "Ana"}

	compute := func(_ context.Context, id uuid.UUID) (*Result, error) {
		return workingDay(2), nil
	}

	res := aggregate(context.Background(), []uuid.UUID{known, unknown}, names, compute)

	if len(res.Therapists) != 1 || res.Failed != 1 {
		t.Errorf("expected 1 row and 1 failure, got %d rows / %d failed", len(res.Therapists), res.Failed)
	}
}

func TestAggregate_ZeroScheduleTherapistExcluded(t *testing.T) {
	// A therapist with no schedule entries for that day is simply not in the
	// list; that is not a failure.
	idA, idB, idC := uuid.New(), uuid.New(), uuid.New()
	names := map[uuid.UUID]string{idA: "Ana", idB: "Bruno", idC: "Clara"}

	compute := func(_ context.Context, id uuid.UUID) (*Result, error) {
		if id == idC {
			return &Result{}, nil
		}
		return workingDay(3), nil
	}

	res := aggregate(context.Background(), []uuid.UUID{idA, idB, idC}, names, compute)

	if res.Failed != 0 {
		t.Fatalf("expected no failures, got %d", res.Failed)
	}
	if len(res.Therapists) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(res.Therapists))
	}
	for _, row := range res.Therapists {
		if row.TherapistID == idC {
			t.Errorf("non-working therapist should not be listed")
		}
	}
}

func TestAggregate_FullyBookedTherapistStaysListed(t *testing.T) {
	idA, idB := uuid.New(), uuid.New()
	names := map[uuid.UUID]string{idA: "Ana", idB: "Bruno"}

	compute := func(_ context.Context, id uuid.UUID) (*Result, error) {
		if id == idB {
			// Works the day but every slot is taken.
			return &Result{
				WorkingIntervals: []interval.Interval{{Start: 480, End: 720}},
				BusyIntervals:    []interval.Interval{{Start: 480, End: 720}},
			}, nil
		}
		return workingDay(2), nil
	}

	res := aggregate(context.Background(), []uuid.UUID{idA, idB}, names, compute)

	if len(res.Therapists) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(res.Therapists))
	}
	if res.Therapists[1].TherapistID != idB || res.Therapists[1].TotalFree != 0 {
		t.Errorf("fully booked therapist should rank last with zero slots, got %+v", res.Therapists[1])
	}
}
