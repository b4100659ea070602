package quote

import (
	"errors"

	"github.com/shopspring/decimal"

	"quoting/internal/pkg/errs"
	"quoting/internal/pkg/guard"
)

// Domain errors for fee breakdowns.
var (
	// ErrBreakdownIsNotConstructed is returned when using an improperly initialized Breakdown.
	ErrBreakdownIsNotConstructed = errs.NewValueIsRequiredError(
		"breakdown must be created via NewBreakdown constructor")
	// ErrFeeComponentIsNegative is returned when an additive fee component is negative.
	ErrFeeComponentIsNegative = errs.NewValueIsInvalidError("fee component must not be negative")
	// ErrMultiplierIsNotPositive is returned when a fee multiplier is zero or negative.
	ErrMultiplierIsNotPositive = errs.NewValueIsInvalidError("fee multiplier must be positive")
)

// Breakdown itemizes how a delivery fee was computed, so the presentation
// layer can render "why this price" without re-deriving the formula. The
// time and zone multipliers are identity today; they are kept in the
// breakdown as extension points for surcharge policies.
type Breakdown struct { //nolint:recvcheck //using for validation
	baseFare    decimal.Decimal
	distanceFee decimal.Decimal
	weightFee   decimal.Decimal

	deliveryTypeMultiplier decimal.Decimal
	timeMultiplier         decimal.Decimal
	zoneMultiplier         decimal.Decimal

	guard guard.ConstructorGuard
}

// NewBreakdown creates an itemized fee breakdown.
func NewBreakdown(
	baseFare decimal.Decimal,
	distanceFee decimal.Decimal,
	weightFee decimal.Decimal,
	deliveryTypeMultiplier decimal.Decimal,
	timeMultiplier decimal.Decimal,
	zoneMultiplier decimal.Decimal,
) (Breakdown, error) {
	b := Breakdown{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setComponents(baseFare, distanceFee, weightFee),
		b.setMultipliers(deliveryTypeMultiplier, timeMultiplier, zoneMultiplier),
	); err != nil {
		return Breakdown{}, err
	}

	return b, nil
}

// Validate ensures the Breakdown was created through a constructor.
func (b Breakdown) Validate() error {
	return b.guard.Validate(ErrBreakdownIsNotConstructed)
}

// BaseFare returns the flat component of the fee.
func (b Breakdown) BaseFare() decimal.Decimal {
	return b.baseFare
}

// DistanceFee returns the distance-proportional component of the fee.
func (b Breakdown) DistanceFee() decimal.Decimal {
	return b.distanceFee
}

// WeightFee returns the weight-proportional component of the fee.
func (b Breakdown) WeightFee() decimal.Decimal {
	return b.weightFee
}

// DeliveryTypeMultiplier returns the service-level multiplier.
func (b Breakdown) DeliveryTypeMultiplier() decimal.Decimal {
	return b.deliveryTypeMultiplier
}

// TimeMultiplier returns the time-of-request multiplier.
func (b Breakdown) TimeMultiplier() decimal.Decimal {
	return b.timeMultiplier
}

// ZoneMultiplier returns the zone surcharge multiplier.
func (b Breakdown) ZoneMultiplier() decimal.Decimal {
	return b.zoneMultiplier
}

// TotalMultiplier returns the product of all multipliers.
func (b Breakdown) TotalMultiplier() decimal.Decimal {
	return b.deliveryTypeMultiplier.Mul(b.timeMultiplier).Mul(b.zoneMultiplier)
}

// Total recomputes the unclamped, unrounded fee from the components.
func (b Breakdown) Total() decimal.Decimal {
	return b.baseFare.Add(b.distanceFee).Add(b.weightFee).Mul(b.TotalMultiplier())
}

func (b *Breakdown) setComponents(baseFare, distanceFee, weightFee decimal.Decimal) error {
	for _, component := range []decimal.Decimal{baseFare, distanceFee, weightFee} {
		if component.IsNegative() {
			return ErrFeeComponentIsNegative
		}
	}

	b.baseFare = baseFare
	b.distanceFee = distanceFee
	b.weightFee = weightFee
	return nil
}

func (b *Breakdown) setMultipliers(deliveryType, time, zone decimal.Decimal) error {
	for _, multiplier := range []decimal.Decimal{deliveryType, time, zone} {
		if !multiplier.IsPositive() {
			return ErrMultiplierIsNotPositive
		}
	}

	b.deliveryTypeMultiplier = deliveryType
	b.timeMultiplier = time
	b.zoneMultiplier = zone
	return nil
}
