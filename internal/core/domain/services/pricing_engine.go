package services

import (
	"time"

	"github.com/shopspring/decimal"

	"quoting/internal/core/domain/model/carrier"
	"quoting/internal/core/domain/model/pricing"
	"quoting/internal/core/domain/model/quote"
	"quoting/internal/core/domain/model/route"
)

// Candidate is one pricing participant: an approved carrier, or the
// synthetic platform-default candidate substituted when no carrier matches.
// Only platform-default quotes are clamped to the configured fee bounds;
// a carrier's own rate card is authoritative.
type Candidate struct {
	partner         quote.Partner
	rates           carrier.RateCard
	platformDefault bool
}

// NewCarrierCandidate builds a pricing candidate from an approved carrier.
func NewCarrierCandidate(c *carrier.Carrier) (Candidate, error) {
	if err := c.Validate(); err != nil {
		return Candidate{}, err
	}

	partner, err := quote.NewPartner(c.ID().String(), c.Name(), c.Rating())
	if err != nil {
		return Candidate{}, err
	}

	return Candidate{partner: partner, rates: c.RateCard()}, nil
}

// NewPlatformCandidate builds the fallback candidate from the platform's
// default rate card.
func NewPlatformCandidate(cfg pricing.Config) (Candidate, error) {
	if err := cfg.Validate(); err != nil {
		return Candidate{}, err
	}

	return Candidate{
		partner:         quote.PlatformPartner(),
		rates:           cfg.DefaultRates(),
		platformDefault: true,
	}, nil
}

// Partner returns the candidate's quote attribution.
func (c Candidate) Partner() quote.Partner {
	return c.partner
}

// IsPlatformDefault reports whether this is the synthetic fallback candidate.
func (c Candidate) IsPlatformDefault() bool {
	return c.platformDefault
}

// PricingEngine is a domain service that computes one priced delivery
// option per (candidate, delivery type) pair.
//
// Business rules:
//   - The same additive formula applies to carriers and to the platform
//     default: (baseFare + distanceFee + weightFee) scaled by the type,
//     time, and zone multipliers
//   - Intercity routes are priced with the candidate's intercity per-km
//     rate; all other categories use the standard per-km rate
//   - Weight at or below zero bills as one kilogram so a missing weight
//     never produces a zero-priced quote
//   - Platform-default fees are clamped into the per-category bounds;
//     carrier fees never are
//   - Fees round to whole naira
type PricingEngine struct{}

// NewPricingEngine creates a new PricingEngine instance.
func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// Price computes the delivery option for one candidate and service level.
func (pe PricingEngine) Price(
	candidate Candidate,
	r route.Route,
	distance route.Distance,
	weightKg decimal.Decimal,
	deliveryType quote.DeliveryType,
	requestTime time.Time,
	cfg pricing.Config,
) (quote.DeliveryOption, error) {
	if err := deliveryType.Validate(); err != nil {
		return quote.DeliveryOption{}, err
	}
	if err := candidate.rates.Validate(); err != nil {
		return quote.DeliveryOption{}, err
	}

	if !weightKg.IsPositive() {
		weightKg = decimal.NewFromInt(1)
	}

	perKm := candidate.rates.RatePerKm()
	if r.Category() == route.Intercity {
		perKm = candidate.rates.IntercityRatePerKm()
	}

	baseFare := candidate.rates.BaseFare()
	distanceFee := distance.Km().Mul(perKm)
	weightFee := weightKg.Mul(candidate.rates.RatePerKg())

	typeMultiplier := decimal.NewFromInt(1)
	if deliveryType == quote.Express {
		typeMultiplier = candidate.rates.ExpressMultiplier()
	}

	breakdown, err := quote.NewBreakdown(
		baseFare,
		distanceFee,
		weightFee,
		typeMultiplier,
		pe.timeMultiplier(requestTime),
		pe.zoneMultiplier(r),
	)
	if err != nil {
		return quote.DeliveryOption{}, err
	}

	fee := breakdown.Total()
	if candidate.platformDefault {
		bounds, boundsErr := cfg.BoundsFor(r.Category())
		if boundsErr != nil {
			return quote.DeliveryOption{}, boundsErr
		}
		fee = bounds.Clamp(fee)
	}
	fee = fee.Round(0)

	return quote.NewDeliveryOption(
		candidate.partner,
		fee,
		breakdown,
		quote.EstimateETA(distance.Km(), r.Category(), deliveryType),
		distance,
		deliveryType,
		r,
	)
}

// timeMultiplier is the hook for a future off-peak/rush-hour surcharge
// policy. Identity until such a policy exists.
func (pe PricingEngine) timeMultiplier(_ time.Time) decimal.Decimal {
	return decimal.NewFromInt(1)
}

// zoneMultiplier is the hook for a future zone surcharge policy. Identity
// until such a policy exists.
func (pe PricingEngine) zoneMultiplier(_ route.Route) decimal.Decimal {
	return decimal.NewFromInt(1)
}
