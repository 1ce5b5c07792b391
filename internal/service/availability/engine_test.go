package availability

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/carlosmariath/painel-clinica-sub001/pkg/interval"
)

func mustClock(t *testing.T, s string) int {
	t.Helper()
	m, err := interval.ParseClock(s)
	if err != nil {
		t.Fatalf("ParseClock(%q): %v", s, err)
	}
	return m
}

func span(t *testing.T, start, end string) interval.Interval {
	t.Helper()
	return interval.Interval{Start: mustClock(t, start), End: mustClock(t, end)}
}

func slotStarts(t *testing.T, slots []interval.Interval) []string {
	t.Helper()
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, interval.Clock(s.Start))
	}
	return out
}

func TestComputeDay_BlockedDayWinsOverSchedule(t *testing.T) {
	day := DaySchedule{
		Blocked: true,
		Working: []interval.Interval{span(t, "08:00", "17:00")},
	}

	res := ComputeDay(day, 60)

	if len(res.WorkingIntervals) != 0 {
		t.Errorf("expected no working intervals on a blocked day, got %v", res.WorkingIntervals)
	}
	if len(res.FreeSlots) != 0 {
		t.Errorf("expected no free slots on a blocked day, got %v", res.FreeSlots)
	}
}

func TestComputeDay_SplitShiftEightSlots(t *testing.T) {
	// Monday 08:00-12:00 and 13:00-17:00, 60 min service, empty calendar.
	day := DaySchedule{
		Working: []interval.Interval{
			span(t, "08:00", "12:00"),
			span(t, "13:00", "17:00"),
		},
	}

	res := ComputeDay(day, 60)

	want := []string{"08:00", "09:00", "10:00", "11:00", "13:00", "14:00", "15:00", "16:00"}
	got := slotStarts(t, res.FreeSlots)
	if len(got) != len(want) {
		t.Fatalf("expected %d slots, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestComputeDay_BusyIntervalRemovesSlot(t *testing.T) {
	day := DaySchedule{
		Working: []interval.Interval{
			span(t, "08:00", "12:00"),
			span(t, "13:00", "17:00"),
		},
		Busy: []interval.Interval{span(t, "09:00", "10:00")},
	}

	res := ComputeDay(day, 60)

	got := slotStarts(t, res.FreeSlots)
	if len(got) != 7 {
		t.Fatalf("expected 7 slots, got %d: %v", len(got), got)
	}
	for _, s := range got {
		if s == "09:00" {
			t.Errorf("09:00 should have been removed by the busy interval")
		}
	}
	for _, slot := range res.FreeSlots {
		for _, b := range day.Busy {
			if slot.Overlaps(b) {
				t.Errorf("free slot %v overlaps busy interval %v", slot, b)
			}
		}
	}
}

func TestComputeDay_NinetyMinuteStepping(t *testing.T) {
	day := DaySchedule{
		Working: []interval.Interval{span(t, "08:00", "12:00")},
	}

	res := ComputeDay(day, 90)

	want := []string{"08:00", "09:30"}
	got := slotStarts(t, res.FreeSlots)
	if len(got) != len(want) {
		t.Fatalf("expected slots %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestComputeDay_DurationLongerThanWindow(t *testing.T) {
	day := DaySchedule{
		Working: []interval.Interval{span(t, "08:00", "09:00")},
	}

	res := ComputeDay(day, 90)

	if len(res.FreeSlots) != 0 {
		t.Errorf("expected no slots when duration exceeds the window, got %v", res.FreeSlots)
	}
}

func TestComputeDay_WindowFullyConsumed(t *testing.T) {
	day := DaySchedule{
		Working: []interval.Interval{span(t, "08:00", "10:00")},
		Busy:    []interval.Interval{span(t, "08:00", "10:00")},
	}

	res := ComputeDay(day, 60)

	if len(res.FreeSlots) != 0 {
		t.Errorf("expected no slots in a fully busy window, got %v", res.FreeSlots)
	}
}

func TestComputeDay_OverlappingEntriesDeduplicated(t *testing.T) {
	// Two overlapping schedule entries generate the 09:00 slot twice.
	day := DaySchedule{
		Working: []interval.Interval{
			span(t, "08:00", "11:00"),
			span(t, "09:00", "12:00"),
		},
	}

	res := ComputeDay(day, 60)

	seen := map[int]bool{}
	for _, s := range res.FreeSlots {
		if seen[s.Start] {
			t.Errorf("duplicate slot at %s", interval.Clock(s.Start))
		}
		seen[s.Start] = true
	}
}

func TestComputeDay_SlotLengthAlwaysEqualsDuration(t *testing.T) {
	day := DaySchedule{
		Working: []interval.Interval{
			span(t, "08:00", "12:17"),
			span(t, "13:05", "18:00"),
		},
		Busy: []interval.Interval{
			span(t, "09:00", "09:45"),
			span(t, "14:30", "15:00"),
		},
	}

	for _, dur := range []int{15, 30, 45, 60, 90} {
		res := ComputeDay(day, dur)
		for _, s := range res.FreeSlots {
			if s.Duration() != dur {
				t.Errorf("duration %d: slot %v has length %d", dur, s, s.Duration())
			}
		}
	}
}

func TestComputeDay_ChronologicalOrder(t *testing.T) {
	day := DaySchedule{
		Working: []interval.Interval{
			span(t, "13:00", "17:00"),
			span(t, "08:00", "12:00"),
		},
	}

	res := ComputeDay(day, 60)

	for i := 1; i < len(res.FreeSlots); i++ {
		if res.FreeSlots[i].Start <= res.FreeSlots[i-1].Start {
			t.Errorf("slots out of order at index %d: %v", i, res.FreeSlots)
		}
	}
}

func TestComputeDay_NoScheduleNoSlots(t *testing.T) {
	res := ComputeDay(DaySchedule{}, 60)

	if len(res.FreeSlots) != 0 || len(res.WorkingIntervals) != 0 {
		t.Errorf("expected empty result for an empty schedule, got %+v", res)
	}
}

func TestComputeDay_EmptyDaysSerializeAsArrays(t *testing.T) {
	tests := []struct {
		name string
		day  DaySchedule
	}{
		{name: "blocked day", day: DaySchedule{Blocked: true}},
		{name: "no schedule entries", day: DaySchedule{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ComputeDay(tt.day, 60)
			if res.WorkingIntervals == nil || res.BusyIntervals == nil || res.FreeSlots == nil {
				t.Fatalf("expected non-nil slices, got %+v", res)
			}

			raw, err := json.Marshal(res)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if strings.Contains(string(raw), "null") {
				t.Errorf("empty day serialized with null: %s", raw)
			}
		})
	}
}
