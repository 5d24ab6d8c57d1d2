package entity

import (
	"testing"
	"time"
)

func TestClockMinutes(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:30", 510, false},
		{"23:59", 1439, false},
		{"14:00:00", 840, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"noon", 0, true},
		{"", 0, true},
	}

	for _, tc := range cases {
		got, err := ClockMinutes(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ClockMinutes(%q) expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ClockMinutes(%q) error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ClockMinutes(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeClockDropsSeconds(t *testing.T) {
	got, err := NormalizeClock("09:15:00")
	if err != nil {
		t.Fatalf("NormalizeClock error: %v", err)
	}
	if got != "09:15" {
		t.Fatalf("NormalizeClock = %q, want %q", got, "09:15")
	}
}

func TestClockRangesOverlap(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{"disjoint", 480, 510, 540, 570, false},
		{"touching endpoints do not overlap", 480, 510, 510, 540, false},
		{"partial overlap", 480, 540, 510, 570, true},
		{"contained", 480, 600, 510, 540, true},
		{"identical", 480, 510, 480, 510, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClockRangesOverlap(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
				t.Fatalf("ClockRangesOverlap(%d, %d, %d, %d) = %v, want %v",
					tc.aStart, tc.aEnd, tc.bStart, tc.bEnd, got, tc.want)
			}
		})
	}
}

func TestWeekdayIndexMondayIsZero(t *testing.T) {
	// 2026-01-05 is a Monday.
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		if got := WeekdayIndex(monday.AddDate(0, 0, i)); got != i {
			t.Errorf("WeekdayIndex(monday+%d) = %d, want %d", i, got, i)
		}
	}
}

func TestStartOfWeek(t *testing.T) {
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i).Add(15 * time.Hour)
		if got := StartOfWeek(day); !got.Equal(monday) {
			t.Errorf("StartOfWeek(monday+%d) = %v, want %v", i, got, monday)
		}
	}
}

func TestSameDateIgnoresClock(t *testing.T) {
	a := time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC)
	b := time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)
	if !SameDate(a, b) {
		t.Fatalf("expected same date for %v and %v", a, b)
	}
	if SameDate(a, b.AddDate(0, 0, 1)) {
		t.Fatalf("different days reported as same date")
	}
}
