package services

import (
	"quoting/internal/core/domain/model/address"
	"quoting/internal/core/domain/model/carrier"
	"quoting/internal/core/domain/model/route"
)

// PartnerMatcher is a domain service that selects the carriers eligible to
// quote a categorized route.
//
// Business rules:
//   - Only approved carriers participate
//   - Intracity: the carrier's service areas must cover the destination city
//   - Intercity: a declared route must cover the city pair in either
//     direction; a carrier serving Lagos→Abuja is assumed capable of
//     Abuja→Lagos
//   - International: a declared corridor must cover the country pair in the
//     declared direction
//   - An empty result is not an error: it triggers platform-default pricing
type PartnerMatcher struct{}

// NewPartnerMatcher creates a new PartnerMatcher instance.
func NewPartnerMatcher() PartnerMatcher {
	return PartnerMatcher{}
}

// Match filters the given carriers down to those eligible for the route.
func (pm PartnerMatcher) Match(
	r route.Route,
	origin, destination address.Address,
	carriers []*carrier.Carrier,
) []*carrier.Carrier {
	matched := make([]*carrier.Carrier, 0, len(carriers))

	for _, c := range carriers {
		if c == nil || c.Validate() != nil || !c.IsApproved() {
			continue
		}
		if pm.covers(c, r, origin, destination) {
			matched = append(matched, c)
		}
	}

	return matched
}

func (pm PartnerMatcher) covers(
	c *carrier.Carrier, r route.Route, origin, destination address.Address,
) bool {
	switch r.Category() {
	case route.Intracity:
		return c.ServesCity(destination.CityKey())
	case route.Intercity:
		return c.HasIntercityRoute(origin.CityKey(), destination.CityKey())
	case route.International:
		return c.HasInternationalCorridor(origin.CountryKey(), destination.CountryKey())
	default:
		return false
	}
}
