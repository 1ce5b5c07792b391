package availability

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"

	enttherapist "github.com/carlosmariath/painel-clinica-sub001/internal/repo/therapist"
)

func (s *availabilityService) ComputeForMany(ctx context.Context, req AggregateRequest) (*AggregateResult, error) {
	if req.Date.IsZero() {
		return nil, ErrInvalidDate
	}
	if len(req.TherapistIDs) == 0 {
		return &AggregateResult{Therapists: []TherapistAvailability{}}, nil
	}

	therapists, err := s.db.Therapist.Query().
		Where(
			enttherapist.IDIn(req.TherapistIDs...),
			enttherapist.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load therapists: %w", err)
	}

	names := make(map[uuid.UUID]string, len(therapists))
	for _, t := range therapists {
		names[t.ID] = t.Name
	}

	compute := func(ctx context.Context, therapistID uuid.UUID) (*Result, error) {
		return s.Compute(ctx, ComputeRequest{
			TherapistID: therapistID,
			Date:        req.Date,
			ServiceID:   req.ServiceID,
			BranchID:    req.BranchID,
		})
	}

	return aggregate(ctx, req.TherapistIDs, names, compute), nil
}

// aggregate fans one computation out per therapist and joins the results.
// Each therapist is independent; one failing or unknown therapist is dropped
// and counted instead of failing the whole call.
func aggregate(ctx context.Context, ids []uuid.UUID, names map[uuid.UUID]string, compute func(context.Context, uuid.UUID) (*Result, error)) *AggregateResult {
	type outcome struct {
		row  TherapistAvailability
		err  error
		skip bool
	}

	outcomes := make([]outcome, len(ids))
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id uuid.UUID) {
			defer wg.Done()
			name, known := names[id]
			if !known {
				outcomes[i] = outcome{err: ErrTherapistNotFound}
				return
			}
			res, err := compute(ctx, id)
			if err != nil {
				outcomes[i] = outcome{err: err}
				return
			}
			if len(res.WorkingIntervals) == 0 {
				// Not scheduled to work that day at all; distinct from a
				// fully booked therapist, who stays listed with zero slots.
				outcomes[i] = outcome{skip: true}
				return
			}
			outcomes[i] = outcome{row: TherapistAvailability{
				TherapistID:   id,
				TherapistName: name,
				FreeSlots:     res.FreeSlots,
				TotalFree:     len(res.FreeSlots),
			}}
		}(i, id)
	}
	wg.Wait()

	result := &AggregateResult{Therapists: make([]TherapistAvailability, 0, len(ids))}
	for i, o := range outcomes {
		if o.err != nil {
			result.Failed++
			slog.Warn("availability aggregate: therapist dropped", "therapist_id", ids[i], "err", o.err)
			continue
		}
		if o.skip {
			continue
		}
		result.Therapists = append(result.Therapists, o.row)
	}

	// Most open slots first; names break ties so output is deterministic.
	sort.SliceStable(result.Therapists, func(i, j int) bool {
		a, b := result.Therapists[i], result.Therapists[j]
		if a.TotalFree != b.TotalFree {
			return a.TotalFree > b.TotalFree
		}
		return a.TherapistName < b.TherapistName
	})

	return result
}
