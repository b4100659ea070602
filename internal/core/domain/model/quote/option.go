package quote

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"quoting/internal/core/domain/model/route"
	"quoting/internal/pkg/errs"
	"quoting/internal/pkg/guard"
)

// PlatformPartnerID identifies the synthetic candidate used when no
// approved carrier covers a route.
const PlatformPartnerID = "platform-default"

// Domain errors for delivery options.
var (
	// ErrPartnerIDIsRequired is returned when creating a partner reference without an id.
	ErrPartnerIDIsRequired = errs.NewValueIsRequiredError("partner id")
	// ErrPartnerNameIsRequired is returned when creating a partner reference without a name.
	ErrPartnerNameIsRequired = errs.NewValueIsRequiredError("partner name")
	// ErrOptionIsNotConstructed is returned when using an improperly initialized DeliveryOption.
	ErrOptionIsNotConstructed = errs.NewValueIsRequiredError(
		"delivery option must be created via NewDeliveryOption constructor")
	// ErrFeeIsNegative is returned when a delivery fee is negative.
	ErrFeeIsNegative = errs.NewValueIsInvalidError("delivery fee must not be negative")
)

// Partner attributes a delivery option to the candidate that priced it:
// an approved carrier, or the platform's own default service.
type Partner struct {
	id     string
	name   string
	rating float64
}

// NewPartner creates a partner attribution for a real carrier.
func NewPartner(id string, name string, rating float64) (Partner, error) {
	if strings.TrimSpace(id) == "" {
		return Partner{}, ErrPartnerIDIsRequired
	}
	if strings.TrimSpace(name) == "" {
		return Partner{}, ErrPartnerNameIsRequired
	}

	return Partner{id: id, name: name, rating: rating}, nil
}

// PlatformPartner returns the attribution used for platform-default quotes.
func PlatformPartner() Partner {
	return Partner{id: PlatformPartnerID, name: "Platform Delivery", rating: 4.5}
}

// ID returns the partner's identifier.
func (p Partner) ID() string {
	return p.id
}

// Name returns the partner's display name.
func (p Partner) Name() string {
	return p.name
}

// Rating returns the partner's review score.
func (p Partner) Rating() float64 {
	return p.rating
}

// IsPlatformDefault reports whether this is the synthetic platform candidate.
func (p Partner) IsPlatformDefault() bool {
	return p.id == PlatformPartnerID
}

// DeliveryOption is one priced quote: a partner, a fee with its itemized
// breakdown, an estimated window, and the route facts it was computed
// from. Options are created fresh per request and never mutated.
type DeliveryOption struct { //nolint:recvcheck //using for validation
	partner      Partner
	deliveryFee  decimal.Decimal
	breakdown    Breakdown
	eta          ETA
	distance     route.Distance
	deliveryType DeliveryType
	route        route.Route

	guard guard.ConstructorGuard
}

// NewDeliveryOption creates a priced delivery option.
func NewDeliveryOption(
	partner Partner,
	deliveryFee decimal.Decimal,
	breakdown Breakdown,
	eta ETA,
	distance route.Distance,
	deliveryType DeliveryType,
	r route.Route,
) (DeliveryOption, error) {
	if partner.id == "" {
		return DeliveryOption{}, ErrPartnerIDIsRequired
	}
	if deliveryFee.IsNegative() {
		return DeliveryOption{}, ErrFeeIsNegative
	}

	if err := errors.Join(
		breakdown.Validate(),
		distance.Validate(),
		deliveryType.Validate(),
		r.Validate(),
	); err != nil {
		return DeliveryOption{}, err
	}

	return DeliveryOption{
		partner:      partner,
		deliveryFee:  deliveryFee,
		breakdown:    breakdown,
		eta:          eta,
		distance:     distance,
		deliveryType: deliveryType,
		route:        r,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the DeliveryOption was created through a constructor.
func (o DeliveryOption) Validate() error {
	return o.guard.Validate(ErrOptionIsNotConstructed)
}

// Partner returns the candidate attribution.
func (o DeliveryOption) Partner() Partner {
	return o.partner
}

// DeliveryFee returns the final quoted fee in whole naira.
func (o DeliveryOption) DeliveryFee() decimal.Decimal {
	return o.deliveryFee
}

// Breakdown returns the itemized fee components.
func (o DeliveryOption) Breakdown() Breakdown {
	return o.breakdown
}

// ETA returns the estimated delivery window.
func (o DeliveryOption) ETA() ETA {
	return o.eta
}

// Distance returns the resolved travel distance.
func (o DeliveryOption) Distance() route.Distance {
	return o.distance
}

// DeliveryType returns the service level this option was priced for.
func (o DeliveryOption) DeliveryType() DeliveryType {
	return o.deliveryType
}

// Route returns the categorized route the option was priced against.
func (o DeliveryOption) Route() route.Route {
	return o.route
}
