package services

import (
	"errors"

	"quoting/internal/core/domain/model/address"
	"quoting/internal/core/domain/model/route"
)

// ErrCountryIsUnresolved is returned when an address has no country to
// categorize against. Normalization defaults the country to the platform's
// home country, so this only occurs for addresses built outside the
// normalizer.
var ErrCountryIsUnresolved = errors.New("country is unresolved")

// RouteCategorizer is a domain service that classifies a pickup/drop-off
// pair as intracity, intercity, or international.
//
// Business rules:
//   - Countries are compared first: any mismatch is international,
//     regardless of city or region values, because cross-border logistics
//     have categorically different constraints
//   - Equal countries with differing cities are intercity; equal cities
//     are intracity
//   - An unresolved city never silently defaults to intracity: the pair
//     degrades to intercity and the resulting route is flagged
//     low-confidence for display
type RouteCategorizer struct{}

// NewRouteCategorizer creates a new RouteCategorizer instance.
func NewRouteCategorizer() RouteCategorizer {
	return RouteCategorizer{}
}

// Categorize classifies the pair and returns the route with its display
// endpoints.
func (rc RouteCategorizer) Categorize(origin, destination address.Address) (route.Route, error) {
	if origin.CountryKey() == "" || destination.CountryKey() == "" {
		return route.Route{}, ErrCountryIsUnresolved
	}

	if !origin.SameCountry(destination) {
		return route.NewRoute(route.International, origin.Country(), destination.Country(), false)
	}

	if !origin.HasCity() || !destination.HasCity() {
		// Coarsest category still determinable within one country.
		return route.NewRoute(route.Intercity, endpointLabel(origin), endpointLabel(destination), true)
	}

	if origin.SameCity(destination) {
		return route.NewRoute(route.Intracity, origin.City(), destination.City(), false)
	}

	return route.NewRoute(route.Intercity, origin.City(), destination.City(), false)
}

func endpointLabel(a address.Address) string {
	if a.HasCity() {
		return a.City()
	}
	if a.Region() != "" {
		return a.Region()
	}
	return a.Country()
}
