package route

import (
	"quoting/internal/pkg/errs"
	"quoting/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrDistanceIsNotConstructed is returned when using a zero-value Distance.
var ErrDistanceIsNotConstructed = errs.NewValueIsRequiredError(
	"Distance must be created via NewDistance")

// ErrDistanceIsNegative is returned for a negative travel distance.
var ErrDistanceIsNegative = errs.NewValueIsInvalidError("distanceKm")

// Distance is the resolved travel distance and transit duration between two
// addresses, as reported by the external mapping capability.
type Distance struct { //nolint:recvcheck //using for validation
	km           decimal.Decimal
	durationText string

	guard guard.ConstructorGuard
}

// NewDistance creates a Distance. The kilometre value must be non-negative;
// the duration text is free-form ("35 mins", "1 day 2 hours") and may be empty.
func NewDistance(km decimal.Decimal, durationText string) (Distance, error) {
	d := Distance{
		guard: guard.NewConstructorGuard(),
	}

	if err := d.setKm(km); err != nil {
		return Distance{}, err
	}
	d.durationText = durationText

	return d, nil
}

// Validate ensures the Distance was created through its constructor.
func (d Distance) Validate() error {
	return d.guard.Validate(ErrDistanceIsNotConstructed)
}

// Km returns the travel distance in kilometres.
func (d Distance) Km() decimal.Decimal {
	return d.km
}

// DurationText returns the human-readable transit duration.
func (d Distance) DurationText() string {
	return d.durationText
}

func (d *Distance) setKm(km decimal.Decimal) error {
	if km.IsNegative() {
		return ErrDistanceIsNegative
	}

	d.km = km
	return nil
}
