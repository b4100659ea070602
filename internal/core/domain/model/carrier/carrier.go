package carrier

import (
	"errors"
	"strings"

	"quoting/internal/core/domain/model/address"
	"quoting/internal/core/domain/model/kernel"
	"quoting/internal/pkg/errs"
	"quoting/internal/pkg/guard"
)

const (
	// ratingMin and ratingMax bound the carrier's aggregate review score.
	ratingMin = 0.0
	ratingMax = 5.0
)

// Domain errors for carrier operations.
var (
	// ErrNameIsRequired is returned when creating a carrier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCarrierIsNotConstructed is returned when using an improperly initialized Carrier.
	ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier constructor")
	// ErrNoCoverageDeclared is returned when a carrier declares neither a
	// service area nor a route; such a profile can never match anything.
	ErrNoCoverageDeclared = errs.NewValueIsRequiredError("serviceAreas or declaredRoutes")
)

// Carrier is a third-party logistics partner profile: its coverage (service
// areas and declared corridors), its rate card, and its review status.
// The quoting path treats carriers as read-only; only the onboarding and
// administration commands mutate them.
//
// Business rules:
//   - A carrier must declare at least one service area or route
//   - New carriers start in Pending status and must be approved before they
//     can appear in any quote
//   - The rate card is authoritative: carrier quotes are never clamped to
//     the platform's default bounds
type Carrier struct {
	id           kernel.UUID
	name         string
	serviceAreas []string
	routes       []DeclaredRoute
	rateCard     RateCard
	rating       float64
	status       Status

	guard guard.ConstructorGuard
}

// NewCarrier registers a new carrier profile in Pending status with no
// rating yet. Coverage must include at least one service area or route.
func NewCarrier(
	id kernel.UUID,
	name string,
	serviceAreas []string,
	routes []DeclaredRoute,
	rateCard RateCard,
) (*Carrier, error) {
	c := &Carrier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setCoverage(serviceAreas, routes),
		c.setRateCard(rateCard),
	); err != nil {
		return nil, err
	}

	c.status = Pending
	c.rating = ratingMin

	return c, nil
}

// RestoreCarrier reconstructs a carrier from persistent storage, including
// its persisted status and rating. Unlike NewCarrier it does not force the
// Pending status.
func RestoreCarrier(
	id kernel.UUID,
	name string,
	serviceAreas []string,
	routes []DeclaredRoute,
	rateCard RateCard,
	rating float64,
	status Status,
) (*Carrier, error) {
	c, err := NewCarrier(id, name, serviceAreas, routes, rateCard)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(status.Validate(), c.setRating(rating)); err != nil {
		return nil, err
	}
	c.status = status

	return c, nil
}

// Validate ensures the Carrier was created through a constructor.
func (c *Carrier) Validate() error {
	return c.guard.Validate(ErrCarrierIsNotConstructed)
}

// ID returns the carrier's unique identifier.
func (c *Carrier) ID() kernel.UUID {
	return c.id
}

// Name returns the carrier's display name.
func (c *Carrier) Name() string {
	return c.name
}

// ServiceAreas returns the cities this carrier covers for intracity work.
func (c *Carrier) ServiceAreas() []string {
	areas := make([]string, len(c.serviceAreas))
	copy(areas, c.serviceAreas)
	return areas
}

// DeclaredRoutes returns the carrier's declared intercity and international
// corridors.
func (c *Carrier) DeclaredRoutes() []DeclaredRoute {
	routes := make([]DeclaredRoute, len(c.routes))
	copy(routes, c.routes)
	return routes
}

// RateCard returns the carrier's pricing schedule.
func (c *Carrier) RateCard() RateCard {
	return c.rateCard
}

// Rating returns the carrier's aggregate review score in [0,5].
func (c *Carrier) Rating() float64 {
	return c.rating
}

// Status returns the carrier's current review status.
func (c *Carrier) Status() Status {
	return c.status
}

// IsApproved reports whether the carrier may participate in matching.
func (c *Carrier) IsApproved() bool {
	return c.status == Approved
}

// Approve transitions the carrier into the Approved status.
func (c *Carrier) Approve() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := c.status.ValidateTransition(Approved); err != nil {
		return err
	}

	c.status = Approved
	return nil
}

// Reject transitions the carrier into the Rejected status. Used both for
// failed onboarding review and for delisting an approved carrier.
func (c *Carrier) Reject() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := c.status.ValidateTransition(Rejected); err != nil {
		return err
	}

	c.status = Rejected
	return nil
}

// UpdateRating replaces the carrier's aggregate review score.
func (c *Carrier) UpdateRating(rating float64) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return c.setRating(rating)
}

// ServesCity reports whether the carrier's service areas cover the given
// city (compared by canonical key).
func (c *Carrier) ServesCity(cityKey string) bool {
	if cityKey == "" {
		return false
	}

	for _, area := range c.serviceAreas {
		if address.Key(area) == cityKey {
			return true
		}
	}
	return false
}

// HasIntercityRoute reports whether any declared corridor covers the given
// city pair, in either direction.
func (c *Carrier) HasIntercityRoute(originCityKey, destinationCityKey string) bool {
	for _, r := range c.routes {
		if r.MatchesCities(originCityKey, destinationCityKey) {
			return true
		}
	}
	return false
}

// HasInternationalCorridor reports whether any declared corridor covers the
// given country pair in the declared direction.
func (c *Carrier) HasInternationalCorridor(originCountryKey, destinationCountryKey string) bool {
	for _, r := range c.routes {
		if r.MatchesCountries(originCountryKey, destinationCountryKey) {
			return true
		}
	}
	return false
}

func (c *Carrier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *Carrier) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}

	c.name = strings.TrimSpace(name)
	return nil
}

func (c *Carrier) setCoverage(serviceAreas []string, routes []DeclaredRoute) error {
	areas := make([]string, 0, len(serviceAreas))
	for _, area := range serviceAreas {
		if address.Key(area) != "" {
			areas = append(areas, strings.TrimSpace(area))
		}
	}

	for _, r := range routes {
		if err := r.Validate(); err != nil {
			return err
		}
	}

	if len(areas) == 0 && len(routes) == 0 {
		return ErrNoCoverageDeclared
	}

	c.serviceAreas = areas
	c.routes = make([]DeclaredRoute, len(routes))
	copy(c.routes, routes)
	return nil
}

func (c *Carrier) setRateCard(rateCard RateCard) error {
	if err := rateCard.Validate(); err != nil {
		return err
	}

	c.rateCard = rateCard
	return nil
}

func (c *Carrier) setRating(rating float64) error {
	if rating < ratingMin || rating > ratingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, ratingMin, ratingMax)
	}

	c.rating = rating
	return nil
}
