package entity

import (
	"fmt"
	"time"
)

// Clock strings are wall-clock times of day ("08:30"). Postgres time columns
// scan back as "08:30:00", so parsing accepts both forms.

// ClockMinutes converts "HH:MM" or "HH:MM:SS" to minutes since midnight.
func ClockMinutes(clock string) (int, error) {
	t, err := time.Parse("15:04:05", clock)
	if err != nil {
		t, err = time.Parse("15:04", clock)
		if err != nil {
			return 0, fmt.Errorf("invalid clock value %q", clock)
		}
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// NormalizeClock reduces any accepted clock form to "HH:MM".
func NormalizeClock(clock string) (string, error) {
	m, err := ClockMinutes(clock)
	if err != nil {
		return "", err
	}
	return FormatClock(m), nil
}

// ClockRangesOverlap reports whether [aStart,aEnd) and [bStart,bEnd) overlap.
// Touching endpoints do not overlap: a permission ending 16:00 leaves a slot
// starting 16:00 free.
func ClockRangesOverlap(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// WeekdayIndex maps a date to the schedule weekday convention, 0=Monday
// through 6=Sunday.
func WeekdayIndex(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

// StartOfWeek returns the Monday of the week containing date, at midnight.
func StartOfWeek(date time.Time) time.Time {
	d := DateOnly(date)
	return d.AddDate(0, 0, -WeekdayIndex(d))
}

// DateOnly truncates a timestamp to midnight, keeping its location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDate reports whether two timestamps fall on the same calendar day.
func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
