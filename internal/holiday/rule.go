package holiday

import (
	"fmt"
	"time"

	"github.com/holidaykit/holiday-api/internal/calendar"
)

// CalcFunc computes the calendar date of a holiday for a year, at
// midnight in loc. Returning the zero time marks the holiday absent for
// that year without being an error.
type CalcFunc func(year int, loc *time.Location) (time.Time, error)

// Rule is one named holiday computation with its activation range.
// Rules are declarative data: a provider is an ordered list of them, and
// the composition in Resolve merges lists by Key.
type Rule struct {
	Key   string
	Type  Type
	Names map[string]string

	// Activation range in years, inclusive. Zero means unbounded, so a
	// holiday introduced in 2018 carries FromYear: 2018 and nothing
	// else.
	FromYear int
	ToYear   int

	Calc CalcFunc
}

// ActiveIn reports whether a year falls inside the rule's activation
// range. A rule outside its range does not participate in composition
// at all, which keeps it from overriding an ancestor's holiday in years
// it doesn't cover.
func (r Rule) ActiveIn(year int) bool {
	if r.FromYear != 0 && year < r.FromYear {
		return false
	}
	if r.ToYear != 0 && year > r.ToYear {
		return false
	}
	return true
}

// Evaluate computes the holiday occurrence for a year. It returns
// (nil, nil) when the rule is absent for the year, either because the
// year falls outside the activation range or because Calc reported
// absence.
func (r Rule) Evaluate(year int, loc *time.Location) (*Holiday, error) {
	if !r.ActiveIn(year) {
		return nil, nil
	}

	date, err := r.Calc(year, loc)
	if err != nil {
		return nil, fmt.Errorf("rule %s: %w", r.Key, err)
	}
	if date.IsZero() {
		return nil, nil
	}

	return &Holiday{
		Key:   r.Key,
		Date:  date,
		Names: r.Names,
		Type:  r.Type,
	}, nil
}

// FixedDate calculates the same month and day every year.
func FixedDate(month time.Month, day int) CalcFunc {
	return func(year int, loc *time.Location) (time.Time, error) {
		return time.Date(year, month, day, 0, 0, 0, 0, loc), nil
	}
}

// NthWeekday calculates the n-th occurrence of a weekday in a month,
// such as the second Monday of June.
func NthWeekday(month time.Month, weekday time.Weekday, n int) CalcFunc {
	return func(year int, loc *time.Location) (time.Time, error) {
		return calendar.NthWeekdayOfMonth(year, month, weekday, n, loc)
	}
}

// LastWeekday calculates the final occurrence of a weekday in a month.
func LastWeekday(month time.Month, weekday time.Weekday) CalcFunc {
	return func(year int, loc *time.Location) (time.Time, error) {
		return calendar.LastWeekdayOfMonth(year, month, weekday, loc), nil
	}
}

// EasterOffset calculates a date a fixed number of days from Easter
// Sunday. Good Friday is EasterOffset(-2), Easter Monday is
// EasterOffset(1).
func EasterOffset(days int) CalcFunc {
	return func(year int, loc *time.Location) (time.Time, error) {
		easter, err := calendar.Easter(year, loc)
		if err != nil {
			return time.Time{}, err
		}
		return calendar.AddDays(easter, days), nil
	}
}

// WeekdayOnOrAfter calculates the first occurrence of a weekday on or
// after a fixed month and day, such as the Monday on or after 27 May.
func WeekdayOnOrAfter(month time.Month, day int, weekday time.Weekday) CalcFunc {
	return func(year int, loc *time.Location) (time.Time, error) {
		anchor := time.Date(year, month, day, 0, 0, 0, 0, loc)
		return calendar.ShiftForward(anchor, weekday), nil
	}
}

// WeekendShift wraps a calculation so a result landing on Saturday or
// Sunday moves two days forward. This is the observance substitute used
// by rules like Christmas Day: Saturday observes Monday, Sunday observes
// Tuesday (Monday being taken by the preceding holiday).
func WeekendShift(calc CalcFunc) CalcFunc {
	return func(year int, loc *time.Location) (time.Time, error) {
		date, err := calc(year, loc)
		if err != nil {
			return time.Time{}, err
		}
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			date = calendar.AddDays(date, 2)
		}
		return date, nil
	}
}

// MondayShift wraps a calculation so a result landing on a weekend moves
// forward to the following Monday.
func MondayShift(calc CalcFunc) CalcFunc {
	return func(year int, loc *time.Location) (time.Time, error) {
		date, err := calc(year, loc)
		if err != nil {
			return time.Time{}, err
		}
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			date = calendar.ShiftForward(date, time.Monday)
		}
		return date, nil
	}
}

// Never marks a rule absent for every year it is evaluated in. A region
// declares a parent's key with Never (bounded by FromYear/ToYear) to
// suppress the parent holiday for those years.
func Never() CalcFunc {
	return func(year int, loc *time.Location) (time.Time, error) {
		return time.Time{}, nil
	}
}
