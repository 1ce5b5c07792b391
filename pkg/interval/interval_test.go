package interval

import (
	"reflect"
	"testing"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"disjoint", Interval{0, 60}, Interval{60, 120}, false},
		{"touching ends are not overlap", Interval{480, 540}, Interval{540, 600}, false},
		{"partial", Interval{480, 540}, Interval{510, 570}, true},
		{"contained", Interval{480, 600}, Interval{500, 520}, true},
		{"identical", Interval{480, 540}, Interval{480, 540}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v (symmetry)", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestSubtract(t *testing.T) {
	free := Interval{480, 720} // 08:00-12:00

	tests := []struct {
		name string
		busy []Interval
		want []Interval
	}{
		{"no busy", nil, []Interval{{480, 720}}},
		{"middle hole", []Interval{{540, 600}}, []Interval{{480, 540}, {600, 720}}},
		{"leading edge", []Interval{{480, 540}}, []Interval{{540, 720}}},
		{"trailing edge", []Interval{{660, 720}}, []Interval{{480, 660}}},
		{"busy swallows free", []Interval{{400, 800}}, nil},
		{"busy outside free", []Interval{{720, 780}}, []Interval{{480, 720}}},
		{"two holes", []Interval{{510, 540}, {600, 630}}, []Interval{{480, 510}, {540, 600}, {630, 720}}},
		{"overlapping busy", []Interval{{500, 560}, {540, 620}}, []Interval{{480, 500}, {620, 720}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Subtract(free, tt.busy)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Subtract() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSlots(t *testing.T) {
	tests := []struct {
		name     string
		iv       Interval
		duration int
		want     []Interval
	}{
		{
			name:     "hour slots in a morning shift",
			iv:       Interval{480, 720},
			duration: 60,
			want:     []Interval{{480, 540}, {540, 600}, {600, 660}, {660, 720}},
		},
		{
			// 90-minute service against 08:00-12:00: 08:00, 09:30 fit fully;
			// the 11:00 start would run to 12:30 and is excluded.
			name:     "ninety minute stepping",
			iv:       Interval{480, 720},
			duration: 90,
			want:     []Interval{{480, 570}, {570, 660}},
		},
		{"duration longer than window", Interval{480, 540}, 90, nil},
		{"zero duration", Interval{480, 540}, 0, nil},
		{"exact fit", Interval{480, 540}, 60, []Interval{{480, 540}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slots(tt.iv, tt.duration)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Slots() = %v, want %v", got, tt.want)
			}
			for _, s := range got {
				if s.Duration() != tt.duration {
					t.Errorf("slot %v has duration %d, want %d", s, s.Duration(), tt.duration)
				}
			}
		})
	}
}

func TestSortAndDedup(t *testing.T) {
	in := []Interval{{540, 600}, {480, 540}, {540, 600}, {480, 540}, {600, 660}}
	want := []Interval{{480, 540}, {540, 600}, {600, 660}}
	if got := SortAndDedup(in); !reflect.DeepEqual(got, want) {
		t.Errorf("SortAndDedup() = %v, want %v", got, want)
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"08:00", 480, false},
		{"00:00", 0, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"noon", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseClock(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestClockRoundTrip(t *testing.T) {
	for _, m := range []int{0, 1, 59, 60, 480, 1439} {
		got, err := ParseClock(Clock(m))
		if err != nil || got != m {
			t.Errorf("round trip %d -> %q -> %d, err %v", m, Clock(m), got, err)
		}
	}
}

func TestDayOfWeek(t *testing.T) {
	// 2026-03-01 is a Sunday.
	d, err := ParseDate("2026-03-01")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	for i := 0; i < 7; i++ {
		if got := DayOfWeek(d.AddDate(0, 0, i)); got != i {
			t.Errorf("DayOfWeek(+%d) = %d, want %d", i, got, i)
		}
	}
	if _, err := ParseDate("01/03/2026"); err == nil {
		t.Error("ParseDate accepted a non-ISO date")
	}
}
