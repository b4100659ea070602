package carrier

import (
	"errors"

	"quoting/internal/core/domain/model/address"
	"quoting/internal/core/domain/model/route"
	"quoting/internal/pkg/errs"
	"quoting/internal/pkg/guard"
)

// Declared route domain errors.
var (
	// ErrDeclaredRouteIsNotConstructed is returned when using a zero-value DeclaredRoute.
	ErrDeclaredRouteIsNotConstructed = errs.NewValueIsRequiredError(
		"DeclaredRoute must be created via NewDeclaredRoute")
	// ErrRouteEndpointIsRequired is returned when either endpoint is empty.
	ErrRouteEndpointIsRequired = errs.NewValueIsRequiredError("route endpoint")
	// ErrRouteCategoryNotDeclarable is returned for intracity declared routes;
	// intracity coverage is expressed through service areas instead.
	ErrRouteCategoryNotDeclarable = errs.NewValueIsInvalidError(
		"declared routes must be intercity or international")
)

// DeclaredRoute is a corridor a carrier claims to service. For intercity
// routes the endpoints are cities; for international routes they are
// countries. Intracity coverage is modeled as service areas on the carrier,
// not as declared routes.
//
// Intercity routes match in either direction: a carrier declaring
// Lagos→Abuja is assumed capable of Abuja→Lagos. This mirrors the platform's
// current policy; there is no per-route directionality flag. International
// corridors match only in the declared direction, since customs eligibility
// is not symmetric.
type DeclaredRoute struct { //nolint:recvcheck //using for validation
	category route.Category
	from     string
	to       string

	guard guard.ConstructorGuard
}

// NewDeclaredRoute creates a declared corridor. The category must be
// Intercity or International and both endpoints non-empty.
func NewDeclaredRoute(category route.Category, from string, to string) (DeclaredRoute, error) {
	dr := DeclaredRoute{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(dr.setCategory(category), dr.setEndpoints(from, to)); err != nil {
		return DeclaredRoute{}, err
	}

	return dr, nil
}

// Validate ensures the DeclaredRoute was created through its constructor.
func (dr DeclaredRoute) Validate() error {
	return dr.guard.Validate(ErrDeclaredRouteIsNotConstructed)
}

// Category returns whether this is an intercity or international corridor.
func (dr DeclaredRoute) Category() route.Category {
	return dr.category
}

// From returns the declared origin endpoint with its original casing.
func (dr DeclaredRoute) From() string {
	return dr.from
}

// To returns the declared destination endpoint with its original casing.
func (dr DeclaredRoute) To() string {
	return dr.to
}

// MatchesCities reports whether an intercity corridor covers the given city
// pair, in either direction.
func (dr DeclaredRoute) MatchesCities(originCityKey, destinationCityKey string) bool {
	if dr.category != route.Intercity || originCityKey == "" || destinationCityKey == "" {
		return false
	}

	fromKey, toKey := address.Key(dr.from), address.Key(dr.to)
	if fromKey == originCityKey && toKey == destinationCityKey {
		return true
	}
	return fromKey == destinationCityKey && toKey == originCityKey
}

// MatchesCountries reports whether an international corridor covers the given
// country pair in the declared direction.
func (dr DeclaredRoute) MatchesCountries(originCountryKey, destinationCountryKey string) bool {
	if dr.category != route.International || originCountryKey == "" || destinationCountryKey == "" {
		return false
	}

	return address.Key(dr.from) == originCountryKey && address.Key(dr.to) == destinationCountryKey
}

func (dr *DeclaredRoute) setCategory(category route.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	if category == route.Intracity {
		return ErrRouteCategoryNotDeclarable
	}

	dr.category = category
	return nil
}

func (dr *DeclaredRoute) setEndpoints(from string, to string) error {
	if address.Key(from) == "" || address.Key(to) == "" {
		return ErrRouteEndpointIsRequired
	}

	dr.from = from
	dr.to = to
	return nil
}
