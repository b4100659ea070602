// Package address provides the canonical address value object used for route
// categorization and carrier matching. Display casing is preserved while
// normalized comparison keys make geographical comparison insensitive to
// punctuation and case variance.
package address

import (
	"strings"
	"unicode"
)

// Address is an immutable normalized address. Instances are produced by a
// Normalizer; edits create a new value, never mutate in place.
//
// The country field is always non-empty: the Normalizer falls back to its
// configured home country when the input omits one. Any other field that
// cannot be resolved is carried as an empty string, which downstream
// components treat conservatively (see services.RouteCategorizer).
type Address struct {
	street  string
	city    string
	region  string
	country string
}

// Street returns the street line with its original casing.
func (a Address) Street() string {
	return a.street
}

// City returns the city with its original casing.
func (a Address) City() string {
	return a.city
}

// Region returns the state or region with its original casing.
func (a Address) Region() string {
	return a.region
}

// Country returns the country with its original casing. Never empty for
// addresses produced by a Normalizer.
func (a Address) Country() string {
	return a.country
}

// CityKey returns the comparison key for the city.
func (a Address) CityKey() string {
	return Key(a.city)
}

// RegionKey returns the comparison key for the region.
func (a Address) RegionKey() string {
	return Key(a.region)
}

// CountryKey returns the comparison key for the country.
func (a Address) CountryKey() string {
	return Key(a.country)
}

// HasCity reports whether the city field resolved to a non-empty value.
func (a Address) HasCity() bool {
	return a.CityKey() != ""
}

// IsComplete reports whether the address carries enough detail to quote
// against: at least a resolvable city or region. A street alone cannot be
// categorized or distance-resolved, so it does not count.
func (a Address) IsComplete() bool {
	return a.HasCity() || a.RegionKey() != ""
}

// SameCity reports whether two addresses resolve to the same city key.
// Returns false when either city is unresolved.
func (a Address) SameCity(other Address) bool {
	return a.HasCity() && other.HasCity() && a.CityKey() == other.CityKey()
}

// SameCountry reports whether two addresses resolve to the same country key.
func (a Address) SameCountry(other Address) bool {
	return a.CountryKey() == other.CountryKey()
}

// Label renders the address for quote display: "City, Country", degrading to
// whichever parts are present.
func (a Address) Label() string {
	parts := make([]string, 0, 2)
	if strings.TrimSpace(a.city) != "" {
		parts = append(parts, strings.TrimSpace(a.city))
	}
	if strings.TrimSpace(a.country) != "" {
		parts = append(parts, strings.TrimSpace(a.country))
	}
	return strings.Join(parts, ", ")
}

// Key lowercases the value and strips every non-alphanumeric rune, so
// "Port-Harcourt", "port harcourt", and "PortHarcourt." compare equal. It is
// the canonical comparison key for every geographic field in the engine.
func Key(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
