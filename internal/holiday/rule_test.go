package holiday

import (
	"testing"
	"time"
)

func utcDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestRule_Evaluate_ActivationRange(t *testing.T) {
	rule := Rule{
		Key:      "reconciliationDay",
		Type:     TypeOfficial,
		FromYear: 2018,
		Calc:     WeekdayOnOrAfter(time.May, 27, time.Monday),
	}

	h, err := rule.Evaluate(2017, time.UTC)
	if err != nil {
		t.Fatalf("Evaluate(2017) failed: %v", err)
	}
	if h != nil {
		t.Errorf("Evaluate(2017) = %v, want absent", h)
	}

	h, err = rule.Evaluate(2018, time.UTC)
	if err != nil {
		t.Fatalf("Evaluate(2018) failed: %v", err)
	}
	if h == nil {
		t.Fatal("Evaluate(2018) absent, want present")
	}
	if want := utcDate(2018, time.May, 28); !h.Date.Equal(want) {
		t.Errorf("date = %s, want 2018-05-28", h.DateString())
	}
}

func TestRule_Evaluate_BoundedRange(t *testing.T) {
	rule := Rule{
		Key:      "familyAndCommunityDay",
		Type:     TypeOfficial,
		FromYear: 2010,
		ToYear:   2017,
		Calc:     NthWeekday(time.November, time.Monday, 1),
	}

	for _, tc := range []struct {
		year    int
		present bool
	}{
		{2009, false},
		{2010, true},
		{2017, true},
		{2018, false},
	} {
		h, err := rule.Evaluate(tc.year, time.UTC)
		if err != nil {
			t.Fatalf("Evaluate(%d) failed: %v", tc.year, err)
		}
		if (h != nil) != tc.present {
			t.Errorf("Evaluate(%d) present = %v, want %v", tc.year, h != nil, tc.present)
		}
	}
}

func TestEasterOffset(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		want   time.Time
	}{
		{"Easter Sunday 2024", 0, utcDate(2024, time.March, 31)},
		{"Easter Saturday 2024", -1, utcDate(2024, time.March, 30)},
		{"Good Friday 2024", -2, utcDate(2024, time.March, 29)},
		{"Easter Monday 2024", 1, utcDate(2024, time.April, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := EasterOffset(tc.offset)(2024, time.UTC)
			if err != nil {
				t.Fatalf("EasterOffset(%d) failed: %v", tc.offset, err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("EasterOffset(%d) = %s, want %s",
					tc.offset, got.Format("2006-01-02"), tc.want.Format("2006-01-02"))
			}
		})
	}
}

func TestWeekendShift(t *testing.T) {
	calc := WeekendShift(FixedDate(time.December, 25))

	// 25 December 2021 was a Saturday; observed Monday the 27th.
	got, err := calc(2021, time.UTC)
	if err != nil {
		t.Fatal(err)
	}
	if want := utcDate(2021, time.December, 27); !got.Equal(want) {
		t.Errorf("Christmas 2021 = %s, want 2021-12-27", got.Format("2006-01-02"))
	}

	// 25 December 2024 was a Wednesday; no shift.
	got, err = calc(2024, time.UTC)
	if err != nil {
		t.Fatal(err)
	}
	if want := utcDate(2024, time.December, 25); !got.Equal(want) {
		t.Errorf("Christmas 2024 = %s, want 2024-12-25", got.Format("2006-01-02"))
	}
}

func TestMondayShift(t *testing.T) {
	calc := MondayShift(FixedDate(time.January, 26))

	// 26 January 2020 was a Sunday; observed Monday the 27th.
	got, err := calc(2020, time.UTC)
	if err != nil {
		t.Fatal(err)
	}
	if want := utcDate(2020, time.January, 27); !got.Equal(want) {
		t.Errorf("Australia Day 2020 = %s, want 2020-01-27", got.Format("2006-01-02"))
	}

	// 26 January 2019 was a Saturday; observed Monday the 28th.
	got, err = calc(2019, time.UTC)
	if err != nil {
		t.Fatal(err)
	}
	if want := utcDate(2019, time.January, 28); !got.Equal(want) {
		t.Errorf("Australia Day 2019 = %s, want 2019-01-28", got.Format("2006-01-02"))
	}
}

func TestHoliday_Name(t *testing.T) {
	h := Holiday{
		Key:   "canberraDay",
		Names: map[string]string{"en": "Canberra Day"},
	}

	if got := h.Name("en"); got != "Canberra Day" {
		t.Errorf(`Name("en") = %q, want "Canberra Day"`, got)
	}
	// Unknown locale falls back to the base English name.
	if got := h.Name("fr"); got != "Canberra Day" {
		t.Errorf(`Name("fr") = %q, want "Canberra Day"`, got)
	}
	// No names at all falls back to the key; this never fails.
	empty := Holiday{Key: "canberraDay"}
	if got := empty.Name("en"); got != "canberraDay" {
		t.Errorf(`Name("en") with no names = %q, want key`, got)
	}
}
