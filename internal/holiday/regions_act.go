package holiday

import "time"

// AustralianCapitalTerritory returns the AU-ACT provider.
//
// Canberra Day moved from the third Monday of March to the second in
// 2007. Reconciliation Day was introduced in 2018 as the Monday on or
// after 27 May. Family and Community Day ran from 2010 through 2017
// before being dropped in favour of Reconciliation Day.
func AustralianCapitalTerritory() Provider {
	return Provider{
		Code:     "AU-ACT",
		Parent:   "AU",
		Timezone: "Australia/Sydney",
		Locale:   "en",
		Rules: []Rule{
			{
				Key:   "canberraDay",
				Type:  TypeOfficial,
				Names: map[string]string{"en": "Canberra Day"},
				Calc:  canberraDay,
			},
			{
				Key:      "reconciliationDay",
				Type:     TypeOfficial,
				Names:    map[string]string{"en": "Reconciliation Day"},
				FromYear: 2018,
				Calc:     WeekdayOnOrAfter(time.May, 27, time.Monday),
			},
			{
				Key:      "familyAndCommunityDay",
				Type:     TypeOfficial,
				Names:    map[string]string{"en": "Family and Community Day"},
				FromYear: 2010,
				ToYear:   2017,
				Calc:     NthWeekday(time.November, time.Monday, 1),
			},
			{
				Key:   "labourDay",
				Type:  TypeOfficial,
				Names: map[string]string{"en": "Labour Day"},
				Calc:  NthWeekday(time.October, time.Monday, 1),
			},
			{
				Key:   "queensBirthday",
				Type:  TypeOfficial,
				Names: map[string]string{"en": "Sovereign's Birthday"},
				Calc:  NthWeekday(time.June, time.Monday, 2),
			},
		},
	}
}

func canberraDay(year int, loc *time.Location) (time.Time, error) {
	if year < 2007 {
		return NthWeekday(time.March, time.Monday, 3)(year, loc)
	}
	return NthWeekday(time.March, time.Monday, 2)(year, loc)
}
