package calendar

import (
	"fmt"
	"time"
)

// NthWeekdayOfMonth calculates the n-th occurrence of a weekday in a
// month, at midnight in loc. n counts from the start of the month, so
// n=1 is the first occurrence.
//
// n below 1 fails with ErrInvalidArgument, as does an n larger than the
// number of occurrences the month actually holds; the result never
// silently wraps into the next month.
func NthWeekdayOfMonth(year int, month time.Month, weekday time.Weekday, n int, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	if n < 1 {
		return time.Time{}, fmt.Errorf("%w: occurrence index must be positive, got %d",
			ErrInvalidArgument, n)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	day := 1 + (int(weekday)-int(first.Weekday())+7)%7 + 7*(n-1)
	if day > DaysInMonth(year, month) {
		return time.Time{}, fmt.Errorf("%w: %s %d has no %d occurrences of %s",
			ErrInvalidArgument, month, year, n, weekday)
	}

	return time.Date(year, month, day, 0, 0, 0, 0, loc), nil
}

// LastWeekdayOfMonth calculates the final occurrence of a weekday in a
// month, at midnight in loc, walking backward from the last day of the
// month. Every month contains at least four of each weekday, so this
// cannot fail.
func LastWeekdayOfMonth(year int, month time.Month, weekday time.Weekday, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}

	lastDay := DaysInMonth(year, month)
	last := time.Date(year, month, lastDay, 0, 0, 0, 0, loc)
	delta := (int(last.Weekday()) - int(weekday) + 7) % 7

	return time.Date(year, month, lastDay-delta, 0, 0, 0, 0, loc)
}

// ShiftForward moves date forward to the next occurrence of weekday.
// A date already on the target weekday is returned unchanged.
func ShiftForward(date time.Time, weekday time.Weekday) time.Time {
	delta := (int(weekday) - int(date.Weekday()) + 7) % 7
	return AddDays(date, delta)
}

// ShiftBackward moves date backward to the previous occurrence of
// weekday. A date already on the target weekday is returned unchanged.
func ShiftBackward(date time.Time, weekday time.Weekday) time.Time {
	delta := (int(date.Weekday()) - int(weekday) + 7) % 7
	return AddDays(date, -delta)
}

// AddDays adds a number of calendar days to a date. The arithmetic is
// done on the civil year/month/day fields at midnight, so crossing a DST
// transition cannot produce an off-by-one day.
func AddDays(date time.Time, days int) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d+days, 0, 0, 0, 0, date.Location())
}

// DaysInMonth returns the number of days in a month. Day zero of the
// following month normalizes to the last day of this one.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
