package calendar

import (
	"errors"
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestNthWeekdayOfMonth(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   time.Month
		weekday time.Weekday
		n       int
		want    time.Time
	}{
		{"second Monday of June 2024", 2024, time.June, time.Monday, 2, date(2024, time.June, 10)},
		{"first Monday of June 2024", 2024, time.June, time.Monday, 1, date(2024, time.June, 3)},
		{"first Sunday of September 2024", 2024, time.September, time.Sunday, 1, date(2024, time.September, 1)},
		{"third Monday of March 2006", 2006, time.March, time.Monday, 3, date(2006, time.March, 20)},
		{"second Monday of March 2007", 2007, time.March, time.Monday, 2, date(2007, time.March, 12)},
		{"fifth Friday of March 2024", 2024, time.March, time.Friday, 5, date(2024, time.March, 29)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NthWeekdayOfMonth(tc.year, tc.month, tc.weekday, tc.n, time.UTC)
			if err != nil {
				t.Fatalf("NthWeekdayOfMonth() failed: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("NthWeekdayOfMonth() = %s, want %s",
					got.Format("2006-01-02"), tc.want.Format("2006-01-02"))
			}
		})
	}
}

func TestNthWeekdayOfMonth_InvalidIndex(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := NthWeekdayOfMonth(2024, time.June, time.Monday, n, time.UTC)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("n=%d: err = %v, want ErrInvalidArgument", n, err)
		}
	}
}

func TestNthWeekdayOfMonth_Overflow(t *testing.T) {
	// February 2023 holds only four Mondays.
	_, err := NthWeekdayOfMonth(2023, time.February, time.Monday, 5, time.UTC)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestLastWeekdayOfMonth(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   time.Month
		weekday time.Weekday
		want    time.Time
	}{
		{"last Monday of May 2024", 2024, time.May, time.Monday, date(2024, time.May, 27)},
		{"last Thursday of February 2024", 2024, time.February, time.Thursday, date(2024, time.February, 29)},
		{"last Sunday of December 2023", 2023, time.December, time.Sunday, date(2023, time.December, 31)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := LastWeekdayOfMonth(tc.year, tc.month, tc.weekday, time.UTC)
			if !got.Equal(tc.want) {
				t.Errorf("LastWeekdayOfMonth() = %s, want %s",
					got.Format("2006-01-02"), tc.want.Format("2006-01-02"))
			}
		})
	}
}

func TestShiftForward(t *testing.T) {
	// 27 May 2018 was a Sunday; the Monday on or after is the 28th.
	got := ShiftForward(date(2018, time.May, 27), time.Monday)
	if want := date(2018, time.May, 28); !got.Equal(want) {
		t.Errorf("ShiftForward() = %s, want %s", got.Format("2006-01-02"), want.Format("2006-01-02"))
	}

	// 27 May 2019 was already a Monday and must not move.
	got = ShiftForward(date(2019, time.May, 27), time.Monday)
	if want := date(2019, time.May, 27); !got.Equal(want) {
		t.Errorf("ShiftForward() = %s, want %s", got.Format("2006-01-02"), want.Format("2006-01-02"))
	}
}

func TestShiftBackward(t *testing.T) {
	got := ShiftBackward(date(2024, time.June, 12), time.Monday)
	if want := date(2024, time.June, 10); !got.Equal(want) {
		t.Errorf("ShiftBackward() = %s, want %s", got.Format("2006-01-02"), want.Format("2006-01-02"))
	}

	got = ShiftBackward(date(2024, time.June, 10), time.Monday)
	if want := date(2024, time.June, 10); !got.Equal(want) {
		t.Errorf("ShiftBackward() = %s, want %s", got.Format("2006-01-02"), want.Format("2006-01-02"))
	}
}

func TestAddDays_AcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("Australia/Sydney")
	if err != nil {
		t.Fatal(err)
	}

	// Sydney ends daylight saving on 7 April 2024. Day arithmetic on
	// civil fields must land on midnight of the 8th regardless.
	start := time.Date(2024, time.April, 6, 0, 0, 0, 0, loc)
	got := AddDays(start, 2)

	if got.Year() != 2024 || got.Month() != time.April || got.Day() != 8 {
		t.Errorf("AddDays() = %s, want 2024-04-08", got.Format("2006-01-02"))
	}
	if got.Hour() != 0 {
		t.Errorf("AddDays() hour = %d, want 0", got.Hour())
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2024, time.June, 30},
		{2024, time.December, 31},
	}

	for _, tc := range tests {
		if got := DaysInMonth(tc.year, tc.month); got != tc.want {
			t.Errorf("DaysInMonth(%d, %s) = %d, want %d", tc.year, tc.month, got, tc.want)
		}
	}
}
