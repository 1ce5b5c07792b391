// Package interval implements the minute-resolution time arithmetic the
// scheduling engine is built on. A time of day is an integer count of minutes
// since midnight, an interval is half-open [Start, End), and all math stays in
// integers so there is no drift. No timezone handling happens here: every value
// is clinic-local wall-clock time.
package interval

import (
	"fmt"
	"sort"
	"time"
)

// MinutesPerDay bounds any valid time of day.
const MinutesPerDay = 24 * 60

// Interval is a half-open span [Start, End) in minutes since midnight.
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Valid reports whether the interval is well-formed and fits in one day.
func (iv Interval) Valid() bool {
	return iv.Start >= 0 && iv.End <= MinutesPerDay && iv.Start < iv.End
}

// Duration returns the interval length in minutes.
func (iv Interval) Duration() int {
	return iv.End - iv.Start
}

// Overlaps reports whether two half-open intervals intersect.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

// Contains reports whether other fits entirely inside iv.
func (iv Interval) Contains(other Interval) bool {
	return iv.Start <= other.Start && other.End <= iv.End
}

func (iv Interval) String() string {
	return Clock(iv.Start) + "-" + Clock(iv.End)
}

// Subtract removes every busy interval from free and returns the remaining
// sub-intervals of free, in order. Busy intervals may overlap each other and
// may extend past the edges of free.
func Subtract(free Interval, busy []Interval) []Interval {
	remaining := []Interval{free}
	for _, b := range busy {
		var next []Interval
		for _, r := range remaining {
			if !r.Overlaps(b) {
				next = append(next, r)
				continue
			}
			if r.Start < b.Start {
				next = append(next, Interval{Start: r.Start, End: b.Start})
			}
			if b.End < r.End {
				next = append(next, Interval{Start: b.End, End: r.End})
			}
		}
		remaining = next
	}
	return remaining
}

// Slots enumerates candidate bookings of the given duration inside iv,
// stepping by that same duration, so offers never overlap. The last slot must
// end at or before iv.End; a duration longer than the interval yields nothing.
func Slots(iv Interval, durationMin int) []Interval {
	if durationMin <= 0 {
		return nil
	}
	var out []Interval
	for t := iv.Start; t+durationMin <= iv.End; t += durationMin {
		out = append(out, Interval{Start: t, End: t + durationMin})
	}
	return out
}

// SortAndDedup orders intervals chronologically and drops exact duplicates.
// Generation from overlapping schedule entries can produce the same slot twice.
func SortAndDedup(ivs []Interval) []Interval {
	if len(ivs) < 2 {
		return ivs
	}
	sort.Slice(ivs, func(i, j int) bool {
		if ivs[i].Start != ivs[j].Start {
			return ivs[i].Start < ivs[j].Start
		}
		return ivs[i].End < ivs[j].End
	})
	out := ivs[:1]
	for _, iv := range ivs[1:] {
		if last := out[len(out)-1]; iv != last {
			out = append(out, iv)
		}
	}
	return out
}

// Clock formats minutes since midnight as "HH:MM".
func Clock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ParseClock parses "HH:MM" into minutes since midnight.
func ParseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", s)
	}
	return h*60 + m, nil
}

// DateLayout is the wire format for calendar dates (no time, no zone).
const DateLayout = "2006-01-02"

// ParseDate parses an ISO calendar date at midnight UTC. Dates act only as
// calendar keys; the zone is irrelevant as long as it is used consistently.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// DayOfWeek returns the 0=Sunday..6=Saturday index for a date.
func DayOfWeek(date time.Time) int {
	return int(date.Weekday())
}
