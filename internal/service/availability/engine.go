package availability

import (
	"github.com/carlosmariath/painel-clinica-sub001/pkg/interval"
)

// DaySchedule is everything the engine needs to know about one therapist on
// one calendar date. Loading it is the storage layer's job; computing slots
// from it is pure.
type DaySchedule struct {
	// Blocked short-circuits everything: a blocked day has zero availability
	// no matter what the weekly schedule says.
	Blocked bool

	// Working spans for the requested weekday (and branch, when filtered).
	// May overlap; slots generated from overlapping spans are deduplicated.
	Working []interval.Interval

	// Busy spans from non-cancelled appointments. Global per therapist: an
	// appointment at one branch blocks the same time at every other branch.
	Busy []interval.Interval
}

// Result is one therapist's availability for one date and service duration.
type Result struct {
	WorkingIntervals []interval.Interval `json:"working_intervals"`
	BusyIntervals    []interval.Interval `json:"busy_intervals"`
	FreeSlots        []interval.Interval `json:"free_slots"`
}

// ComputeDay produces the bookable slots for one day. Each working span has
// the busy spans subtracted, then the remaining free sub-spans are cut into
// slots of exactly durationMin, stepping by durationMin. Slots come back in
// chronological order with duplicates removed.
func ComputeDay(day DaySchedule, durationMin int) Result {
	if day.Blocked || durationMin <= 0 {
		return emptyResult()
	}

	working := interval.SortAndDedup(day.Working)
	busy := interval.SortAndDedup(day.Busy)

	slots := []interval.Interval{}
	for _, w := range working {
		if !w.Valid() {
			continue
		}
		for _, free := range interval.Subtract(w, busy) {
			slots = append(slots, interval.Slots(free, durationMin)...)
		}
	}

	return Result{
		WorkingIntervals: nonNil(working),
		BusyIntervals:    nonNil(busy),
		FreeSlots:        interval.SortAndDedup(slots),
	}
}

// emptyResult keeps the JSON shape stable: consumers always see arrays,
// never null.
func emptyResult() Result {
	return Result{
		WorkingIntervals: []interval.Interval{},
		BusyIntervals:    []interval.Interval{},
		FreeSlots:        []interval.Interval{},
	}
}

func nonNil(ivs []interval.Interval) []interval.Interval {
	if ivs == nil {
		return []interval.Interval{}
	}
	return ivs
}
