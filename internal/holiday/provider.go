package holiday

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/holidaykit/holiday-api/internal/calendar"
)

// ErrUnknownJurisdiction is returned by Resolve for a code the registry
// does not hold.
var ErrUnknownJurisdiction = errors.New("unknown jurisdiction")

// Provider defines one jurisdiction's holiday rule set. A regional
// provider names its parent by code; composition happens in Resolve, not
// through the definition itself.
type Provider struct {
	Code     string
	Parent   string // parent jurisdiction code, "" for a root
	Timezone string // IANA identifier, e.g. "Australia/Sydney"
	Locale   string // default locale tag for display names
	Rules    []Rule
}

// Registry is the jurisdiction catalog: an immutable code-to-provider
// mapping built once at startup. Resolve never mutates it, so concurrent
// queries need no locking.
type Registry struct {
	providers map[string]Provider
}

// NewRegistry builds a registry from provider definitions. Duplicate
// codes and dangling parent references are definition defects and fail
// construction.
func NewRegistry(providers ...Provider) (*Registry, error) {
	byCode := make(map[string]Provider, len(providers))
	for _, p := range providers {
		if p.Code == "" {
			return nil, errors.New("provider with empty code")
		}
		if _, ok := byCode[p.Code]; ok {
			return nil, fmt.Errorf("duplicate provider code %s", p.Code)
		}
		byCode[p.Code] = p
	}
	for _, p := range byCode {
		if p.Parent == "" {
			continue
		}
		if _, ok := byCode[p.Parent]; !ok {
			return nil, fmt.Errorf("provider %s references unknown parent %s", p.Code, p.Parent)
		}
	}
	return &Registry{providers: byCode}, nil
}

// Lookup returns the provider definition for a code.
func (r *Registry) Lookup(code string) (Provider, bool) {
	p, ok := r.providers[code]
	return p, ok
}

// Codes returns all registered jurisdiction codes, sorted.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.providers))
	for code := range r.providers {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Resolve computes the ordered holidays of a jurisdiction for a year.
//
// The parent chain is evaluated root first, in each provider's rule
// declaration order, merging on rule key: a descendant rule sharing an
// ancestor's key replaces it in place, a new key appends at the end, and
// a descendant rule that evaluates absent for an existing key suppresses
// the ancestor's holiday. The queried jurisdiction's timezone applies to
// the whole chain.
func (r *Registry) Resolve(code string, year int) ([]Holiday, error) {
	chain, err := r.chain(code)
	if err != nil {
		return nil, err
	}
	if year < calendar.MinYear || year > calendar.MaxYear {
		return nil, fmt.Errorf("%w: year %d outside supported range %d-%d",
			calendar.ErrInvalidArgument, year, calendar.MinYear, calendar.MaxYear)
	}

	leaf := chain[len(chain)-1]
	loc, err := time.LoadLocation(leaf.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q for %s: %v",
			calendar.ErrInvalidArgument, leaf.Timezone, leaf.Code, err)
	}

	type entry struct {
		key     string
		holiday *Holiday
	}
	var entries []entry
	index := make(map[string]int)

	for _, p := range chain {
		for _, rule := range p.Rules {
			// A rule outside its activation range does not participate,
			// so it cannot suppress an ancestor's holiday in years it
			// doesn't cover.
			if !rule.ActiveIn(year) {
				continue
			}
			h, err := rule.Evaluate(year, loc)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", p.Code, err)
			}
			if pos, ok := index[rule.Key]; ok {
				// Override keeps the ancestor's position; an absent
				// result suppresses the ancestor's holiday.
				entries[pos].holiday = h
				continue
			}
			if h == nil {
				continue
			}
			index[rule.Key] = len(entries)
			entries = append(entries, entry{key: rule.Key, holiday: h})
		}
	}

	holidays := make([]Holiday, 0, len(entries))
	for _, e := range entries {
		if e.holiday != nil {
			holidays = append(holidays, *e.holiday)
		}
	}
	return holidays, nil
}

// chain returns the provider chain for a code ordered root first.
func (r *Registry) chain(code string) ([]Provider, error) {
	var reversed []Provider
	seen := make(map[string]bool)

	for cur := code; cur != ""; {
		p, ok := r.providers[cur]
		if !ok {
			if cur == code {
				return nil, fmt.Errorf("%w: %s", ErrUnknownJurisdiction, code)
			}
			return nil, fmt.Errorf("%w: %s (parent of %s)", ErrUnknownJurisdiction, cur, code)
		}
		if seen[cur] {
			return nil, fmt.Errorf("provider cycle through %s", cur)
		}
		seen[cur] = true
		reversed = append(reversed, p)
		cur = p.Parent
	}

	chain := make([]Provider, len(reversed))
	for i, p := range reversed {
		chain[len(reversed)-1-i] = p
	}
	return chain, nil
}
