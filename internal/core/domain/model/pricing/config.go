// Package pricing holds the platform's pricing configuration: the default
// rate card used when no approved carrier covers a route, the fee bounds
// that clamp platform-priced quotes, and the global weight limit.
package pricing

import (
	"errors"

	"github.com/shopspring/decimal"

	"quoting/internal/core/domain/model/carrier"
	"quoting/internal/core/domain/model/route"
	"quoting/internal/pkg/errs"
	"quoting/internal/pkg/guard"
)

// Domain errors for pricing configuration.
var (
	// ErrBoundsAreNotConstructed is returned when using improperly initialized Bounds.
	ErrBoundsAreNotConstructed = errs.NewValueIsRequiredError(
		"bounds must be created via NewBounds or NewMinOnlyBounds constructor")
	// ErrConfigIsNotConstructed is returned when using an improperly initialized Config.
	ErrConfigIsNotConstructed = errs.NewValueIsRequiredError(
		"config must be created via NewConfig constructor")
	// ErrMinFeeIsNegative is returned when a lower fee bound is negative.
	ErrMinFeeIsNegative = errs.NewValueIsInvalidError("minimum fee must not be negative")
	// ErrMaxFeeBelowMin is returned when an upper fee bound is below the lower one.
	ErrMaxFeeBelowMin = errs.NewValueIsInvalidError("maximum fee must not be below minimum fee")
	// ErrMaxWeightIsNotPositive is returned when the weight limit is zero or negative.
	ErrMaxWeightIsNotPositive = errs.NewValueIsInvalidError("max weight must be positive")
	// ErrBoundsAreMissing is returned when a route category has no fee bounds.
	ErrBoundsAreMissing = errs.NewValueIsRequiredError(
		"fee bounds for every route category")
)

// Bounds is a fee corridor for one route category. International routes
// have a floor but no ceiling, so the upper bound is optional.
type Bounds struct { //nolint:recvcheck //using for validation
	min    decimal.Decimal
	max    decimal.Decimal
	hasMax bool

	guard guard.ConstructorGuard
}

// NewBounds creates a fee corridor with both a floor and a ceiling.
func NewBounds(minFee decimal.Decimal, maxFee decimal.Decimal) (Bounds, error) {
	if minFee.IsNegative() {
		return Bounds{}, ErrMinFeeIsNegative
	}
	if maxFee.LessThan(minFee) {
		return Bounds{}, ErrMaxFeeBelowMin
	}

	return Bounds{
		min:    minFee,
		max:    maxFee,
		hasMax: true,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewMinOnlyBounds creates a fee corridor with a floor and no ceiling.
func NewMinOnlyBounds(minFee decimal.Decimal) (Bounds, error) {
	if minFee.IsNegative() {
		return Bounds{}, ErrMinFeeIsNegative
	}

	return Bounds{
		min:   minFee,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Bounds were created through a constructor.
func (b Bounds) Validate() error {
	return b.guard.Validate(ErrBoundsAreNotConstructed)
}

// Min returns the lower fee bound.
func (b Bounds) Min() decimal.Decimal {
	return b.min
}

// Max returns the upper fee bound and whether one exists.
func (b Bounds) Max() (decimal.Decimal, bool) {
	return b.max, b.hasMax
}

// Clamp forces a fee into the corridor.
func (b Bounds) Clamp(fee decimal.Decimal) decimal.Decimal {
	if fee.LessThan(b.min) {
		return b.min
	}
	if b.hasMax && fee.GreaterThan(b.max) {
		return b.max
	}
	return fee
}

// Config is the platform's pricing configuration. The default rates price
// routes no approved carrier covers; the bounds apply only to those
// platform-priced quotes, never to carrier quotes.
type Config struct { //nolint:recvcheck //using for validation
	defaultRates carrier.RateCard
	maxWeightKg  decimal.Decimal
	bounds       map[route.Category]Bounds

	guard guard.ConstructorGuard
}

// NewConfig creates a pricing configuration. Bounds must cover every valid
// route category.
func NewConfig(
	defaultRates carrier.RateCard,
	maxWeightKg decimal.Decimal,
	bounds map[route.Category]Bounds,
) (Config, error) {
	if err := defaultRates.Validate(); err != nil {
		return Config{}, err
	}
	if !maxWeightKg.IsPositive() {
		return Config{}, ErrMaxWeightIsNotPositive
	}

	for _, category := range []route.Category{route.Intracity, route.Intercity, route.International} {
		b, ok := bounds[category]
		if !ok {
			return Config{}, ErrBoundsAreMissing
		}
		if err := b.Validate(); err != nil {
			return Config{}, err
		}
	}

	owned := make(map[route.Category]Bounds, len(bounds))
	for category, b := range bounds {
		if err := category.Validate(); err != nil {
			return Config{}, err
		}
		owned[category] = b
	}

	return Config{
		defaultRates: defaultRates,
		maxWeightKg:  maxWeightKg,
		bounds:       owned,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// DefaultConfig returns the built-in platform configuration, used at first
// boot and whenever no stored configuration exists.
func DefaultConfig() Config {
	rates, err := carrier.NewRateCard(
		decimal.NewFromInt(300),
		decimal.NewFromInt(500),
		decimal.NewFromInt(25),
		decimal.NewFromInt(350),
		decimal.NewFromFloat(1.5),
	)
	if err != nil {
		panic(err)
	}

	intracity, err := NewBounds(decimal.NewFromInt(2000), decimal.NewFromInt(10000))
	if err != nil {
		panic(err)
	}
	intercity, err := NewBounds(decimal.NewFromInt(5000), decimal.NewFromInt(20000))
	if err != nil {
		panic(err)
	}
	international, err := NewMinOnlyBounds(decimal.NewFromInt(15000))
	if err != nil {
		panic(err)
	}

	cfg, err := NewConfig(rates, decimal.NewFromInt(50), map[route.Category]Bounds{
		route.Intracity:     intracity,
		route.Intercity:     intercity,
		route.International: international,
	})
	if err != nil {
		panic(err)
	}

	return cfg
}

// Validate ensures the Config was created through a constructor.
func (c Config) Validate() error {
	return c.guard.Validate(ErrConfigIsNotConstructed)
}

// DefaultRates returns the platform's fallback rate card.
func (c Config) DefaultRates() carrier.RateCard {
	return c.defaultRates
}

// MaxWeightKg returns the heaviest package the platform will quote.
func (c Config) MaxWeightKg() decimal.Decimal {
	return c.maxWeightKg
}

// BoundsFor returns the fee corridor for the given category.
func (c Config) BoundsFor(category route.Category) (Bounds, error) {
	if err := c.Validate(); err != nil {
		return Bounds{}, err
	}

	b, ok := c.bounds[category]
	if !ok {
		return Bounds{}, errors.Join(ErrBoundsAreMissing, category.Validate())
	}
	return b, nil
}
