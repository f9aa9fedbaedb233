// Package holiday implements the holiday rule model: typed holiday
// records, declarative calculation rules, jurisdiction providers, and
// the composition that layers a region's rules over its parent's.
package holiday

import "time"

// Type classifies a holiday record.
type Type string

// Holiday classifications.
const (
	TypeOfficial   Type = "official"   // legally mandated public holiday
	TypeObservance Type = "observance" // observed but not a day off
	TypeSeason     Type = "season"     // seasonal marker
	TypeBank       Type = "bank"       // bank and financial institution holiday
	TypeOther      Type = "other"
)

// Holiday is an immutable computed holiday occurrence. Date is always
// midnight local time in the jurisdiction's timezone; the civil calendar
// fields are exact.
type Holiday struct {
	Key   string            `json:"key"`
	Date  time.Time         `json:"date"`
	Names map[string]string `json:"names,omitempty"` // locale tag -> display name
	Type  Type              `json:"type"`
}

// Name returns the display name for a locale. Lookup order: the exact
// locale tag, the base "en" name, then the key itself. It never fails;
// callers with an external translation table consult it before falling
// back here.
func (h Holiday) Name(locale string) string {
	if name, ok := h.Names[locale]; ok {
		return name
	}
	if name, ok := h.Names["en"]; ok {
		return name
	}
	return h.Key
}

// DateString returns the ISO-8601 local calendar date.
func (h Holiday) DateString() string {
	return h.Date.Format("2006-01-02")
}
