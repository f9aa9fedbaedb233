// Package calendar provides civil-calendar date arithmetic for holiday
// rules: the Gregorian Easter computus, weekday-relative date resolution,
// and weekday shift policies.
//
// All functions return dates at midnight local time in the requested
// location and do arithmetic on civil calendar fields, never on the
// underlying instant, so a DST transition can never shift a result by a
// day.
package calendar

import (
	"fmt"
	"time"
)

// Supported year range for calculations. The computus is exact for any
// Gregorian year; the lower bound is the adoption of the Gregorian
// calendar and the upper bound caps queries at the range the algorithm
// is conventionally quoted for.
const (
	MinYear = 1583
	MaxYear = 4099
)

// Easter calculates the date of Easter Sunday for a given year, at
// midnight in loc, using the anonymous Gregorian computus
// (Meeus/Jones/Butcher). Pure integer arithmetic; no floating point.
//
// Years outside [MinYear, MaxYear] fail with ErrInvalidArgument.
func Easter(year int, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	if year < MinYear || year > MaxYear {
		return time.Time{}, fmt.Errorf("%w: year %d outside supported range %d-%d",
			ErrInvalidArgument, year, MinYear, MaxYear)
	}

	// Computus algorithm for the Gregorian calendar
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	// Easter falls on a Sunday between 22 March and 25 April. Anything
	// else means the arithmetic above is broken, not that the input was
	// bad.
	if month != int(time.March) && month != int(time.April) {
		return time.Time{}, fmt.Errorf("%w: computus produced month %d for year %d",
			ErrInternalConsistency, month, year)
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc), nil
}
