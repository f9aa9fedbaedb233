package holiday

import "time"

// Australia returns the national provider. Regional providers layer on
// top of these rules via their Parent code.
//
// New Year's Day and Australia Day move to Monday when they land on a
// weekend; Christmas Day and Boxing Day move two days forward so the
// pair occupies Monday and Tuesday. Anzac Day is never substituted.
func Australia() Provider {
	return Provider{
		Code:     "AU",
		Timezone: "Australia/Sydney",
		Locale:   "en",
		Rules: []Rule{
			{
				Key:   "newYearsDay",
				Type:  TypeOfficial,
				Names: map[string]string{"en": "New Year's Day"},
				Calc:  MondayShift(FixedDate(time.January, 1)),
			},
			{
				Key:   "australiaDay",
				Type:  TypeOfficial,
				Names: map[string]string{"en": "Australia Day"},
				Calc:  MondayShift(FixedDate(time.January, 26)),
			},
			{
				Key:   "goodFriday",
				Type:  TypeOfficial,
				Names: map[string]string{"en": "Good Friday"},
				Calc:  EasterOffset(-2),
			},
			{
				Key:   "easterSaturday",
				Type:  TypeOfficial,
				Names: map[string]string{"en": "Easter Saturday"},
				Calc:  EasterOffset(-1),
			},
			{
				Key:   "easterSunday",
				Type:  TypeObservance,
				Names: map[string]string{"en": "Easter Sunday"},
				Calc:  EasterOffset(0),
			},
			{
				Key:   "easterMonday",
				Type:  TypeOfficial,
				Names: map[string]string{"en": "Easter Monday"},
				Calc:  EasterOffset(1),
			},
			{
				Key:   "anzacDay",
				Type:  TypeOfficial,
				Names: map[string]string{"en": "Anzac Day"},
				Calc:  FixedDate(time.April, 25),
			},
			{
				Key:   "christmasDay",
				Type:  TypeOfficial,
				Names: map[string]string{"en": "Christmas Day"},
				Calc:  WeekendShift(FixedDate(time.December, 25)),
			},
			{
				Key:   "boxingDay",
				Type:  TypeOfficial,
				Names: map[string]string{"en": "Boxing Day"},
				Calc:  WeekendShift(FixedDate(time.December, 26)),
			},
		},
	}
}

// DefaultRegistry returns the built-in jurisdiction catalog.
func DefaultRegistry() *Registry {
	reg, err := NewRegistry(
		Australia(),
		AustralianCapitalTerritory(),
		NewSouthWales(),
	)
	if err != nil {
		// The built-in catalog is static; failing to assemble it is a
		// programming error, not a runtime condition.
		panic(err)
	}
	return reg
}
