package core

import "sort"

// Wildcard value accepted by every filter dimension.
const FilterAll = "all"

type (
	PassFilter    string
	PaymentFilter string

	// FilterState is the transient table selection. It is never persisted and
	// resets on every page load.
	FilterState struct {
		Sector  string
		Pass    PassFilter
		Payment PaymentFilter
	}
)

// Matches reports whether the record passes every active filter dimension.
// Sector comparison is exact; blank-sector rows only match the wildcard.
func (f FilterState) Matches(g GuestRecord) bool {
	if f.Sector != "" && f.Sector != FilterAll && g.Sector != f.Sector {
		return false
	}
	if f.Pass != "" && f.Pass != FilterAll && g.Pass() != PassType(f.Pass) {
		return false
	}
	if f.Payment != "" && f.Payment != FilterAll && g.Payment() != PaymentStatus(f.Payment) {
		return false
	}
	return true
}

// Filter returns the records matching the state as a fresh slice. The input
// is never mutated; each call derives a new view.
func Filter(guests []GuestRecord, f FilterState) []GuestRecord {
	out := make([]GuestRecord, 0, len(guests))
	for _, g := range guests {
		if f.Matches(g) {
			out = append(out, g)
		}
	}
	return out
}

// Sectors harvests the distinct non-blank sector values, sorted, for building
// the sector filter options.
func Sectors(guests []GuestRecord) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, g := range guests {
		if g.Sector == "" {
			continue
		}
		if _, ok := seen[g.Sector]; ok {
			continue
		}
		seen[g.Sector] = struct{}{}
		out = append(out, g.Sector)
	}
	sort.Strings(out)
	return out
}
