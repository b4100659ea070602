package carrier

import (
	"errors"

	"quoting/internal/pkg/errs"
	"quoting/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Rate card domain errors.
var (
	// ErrRateCardIsNotConstructed is returned when using a zero-value RateCard.
	ErrRateCardIsNotConstructed = errs.NewValueIsRequiredError(
		"RateCard must be created via NewRateCard")
	// ErrRateIsNegative is returned when any monetary rate is negative.
	ErrRateIsNegative = errs.NewValueIsInvalidError("rate must not be negative")
	// ErrExpressMultiplierTooLow is returned when the express multiplier would
	// make express delivery cheaper than standard.
	ErrExpressMultiplierTooLow = errs.NewValueIsInvalidError(
		"expressMultiplier must be at least 1")
)

// RateCard is a carrier's (or the platform default's) pricing schedule.
// All rates are in naira; multipliers are dimensionless.
//
// A missing or inconsistent rate card is what the engine treats as malformed
// carrier data: the candidate is excluded from a quote, never the whole batch.
type RateCard struct { //nolint:recvcheck //using for validation
	baseFare          decimal.Decimal
	ratePerKm         decimal.Decimal
	ratePerKg         decimal.Decimal
	intercityRatePerKm decimal.Decimal
	expressMultiplier decimal.Decimal

	guard guard.ConstructorGuard
}

// NewRateCard creates a validated RateCard. Every rate must be non-negative
// and the express multiplier at least 1.
func NewRateCard(
	baseFare decimal.Decimal,
	ratePerKm decimal.Decimal,
	ratePerKg decimal.Decimal,
	intercityRatePerKm decimal.Decimal,
	expressMultiplier decimal.Decimal,
) (RateCard, error) {
	rc := RateCard{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rc.setRates(baseFare, ratePerKm, ratePerKg, intercityRatePerKm),
		rc.setExpressMultiplier(expressMultiplier),
	); err != nil {
		return RateCard{}, err
	}

	return rc, nil
}

// Validate ensures the RateCard was created through its constructor.
func (rc RateCard) Validate() error {
	return rc.guard.Validate(ErrRateCardIsNotConstructed)
}

// BaseFare returns the flat pickup fee.
func (rc RateCard) BaseFare() decimal.Decimal {
	return rc.baseFare
}

// RatePerKm returns the per-kilometre rate for intracity and international legs.
func (rc RateCard) RatePerKm() decimal.Decimal {
	return rc.ratePerKm
}

// RatePerKg returns the per-kilogram rate applied to the parcel weight.
func (rc RateCard) RatePerKg() decimal.Decimal {
	return rc.ratePerKg
}

// IntercityRatePerKm returns the discounted per-kilometre rate for intercity
// routes, where long distances would otherwise dominate the fee.
func (rc RateCard) IntercityRatePerKm() decimal.Decimal {
	return rc.intercityRatePerKm
}

// ExpressMultiplier returns the multiplier applied to express deliveries.
func (rc RateCard) ExpressMultiplier() decimal.Decimal {
	return rc.expressMultiplier
}

func (rc *RateCard) setRates(baseFare, ratePerKm, ratePerKg, intercityRatePerKm decimal.Decimal) error {
	for _, rate := range []decimal.Decimal{baseFare, ratePerKm, ratePerKg, intercityRatePerKm} {
		if rate.IsNegative() {
			return ErrRateIsNegative
		}
	}

	rc.baseFare = baseFare
	rc.ratePerKm = ratePerKm
	rc.ratePerKg = ratePerKg
	rc.intercityRatePerKm = intercityRatePerKm
	return nil
}

func (rc *RateCard) setExpressMultiplier(expressMultiplier decimal.Decimal) error {
	if expressMultiplier.LessThan(decimal.NewFromInt(1)) {
		return ErrExpressMultiplierTooLow
	}

	rc.expressMultiplier = expressMultiplier
	return nil
}
