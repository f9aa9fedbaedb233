package holiday

import "time"

// NewSouthWales returns the AU-NSW provider. The Bank Holiday applies to
// banks and some financial institutions only, so it carries the bank
// type rather than official.
func NewSouthWales() Provider {
	return Provider{
		Code:     "AU-NSW",
		Parent:   "AU",
		Timezone: "Australia/Sydney",
		Locale:   "en",
		Rules: []Rule{
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
			{
				Key:   "bankHoliday",
				Type:  TypeBank,
				Names: map[string]string{"en": "Bank Holiday"},
				Calc:  NthWeekday(time.August, time.Monday, 1),
			},
		},
	}
}
