package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quoting/internal/core/domain/model/pricing"
	"quoting/internal/core/domain/model/route"
)

func TestNewBounds(t *testing.T) {
	t.Run("valid_bounds", func(t *testing.T) {
		b, err := pricing.NewBounds(decimal.NewFromInt(2000), decimal.NewFromInt(10000))

		require.NoError(t, err)
		assert.NoError(t, b.Validate())
		assert.True(t, b.Min().Equal(decimal.NewFromInt(2000)))
		maxFee, hasMax := b.Max()
		assert.True(t, hasMax)
		assert.True(t, maxFee.Equal(decimal.NewFromInt(10000)))
	})

	t.Run("min_only_bounds_have_no_ceiling", func(t *testing.T) {
		b, err := pricing.NewMinOnlyBounds(decimal.NewFromInt(15000))

		require.NoError(t, err)
		_, hasMax := b.Max()
		assert.False(t, hasMax)
	})

	t.Run("negative_min", func(t *testing.T) {
		_, err := pricing.NewBounds(decimal.NewFromInt(-1), decimal.NewFromInt(100))
		assert.ErrorIs(t, err, pricing.ErrMinFeeIsNegative)
	})

	t.Run("max_below_min", func(t *testing.T) {
		_, err := pricing.NewBounds(decimal.NewFromInt(5000), decimal.NewFromInt(2000))
		assert.ErrorIs(t, err, pricing.ErrMaxFeeBelowMin)
	})

	t.Run("zero_value_is_not_constructed", func(t *testing.T) {
		var b pricing.Bounds
		assert.ErrorIs(t, b.Validate(), pricing.ErrBoundsAreNotConstructed)
	})
}

func TestBoundsClamp(t *testing.T) {
	b, err := pricing.NewBounds(decimal.NewFromInt(2000), decimal.NewFromInt(10000))
	require.NoError(t, err)

	t.Run("raises_fee_below_floor", func(t *testing.T) {
		assert.True(t, b.Clamp(decimal.NewFromInt(1200)).Equal(decimal.NewFromInt(2000)))
	})

	t.Run("lowers_fee_above_ceiling", func(t *testing.T) {
		assert.True(t, b.Clamp(decimal.NewFromInt(12500)).Equal(decimal.NewFromInt(10000)))
	})

	t.Run("keeps_fee_inside_corridor", func(t *testing.T) {
		assert.True(t, b.Clamp(decimal.NewFromInt(4300)).Equal(decimal.NewFromInt(4300)))
	})

	t.Run("min_only_bounds_never_cap", func(t *testing.T) {
		minOnly, errMin := pricing.NewMinOnlyBounds(decimal.NewFromInt(15000))
		require.NoError(t, errMin)

		assert.True(t, minOnly.Clamp(decimal.NewFromInt(90000)).Equal(decimal.NewFromInt(90000)))
		assert.True(t, minOnly.Clamp(decimal.NewFromInt(9000)).Equal(decimal.NewFromInt(15000)))
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := pricing.DefaultConfig()

	t.Run("is_constructed", func(t *testing.T) {
		assert.NoError(t, cfg.Validate())
	})

	t.Run("default_rates", func(t *testing.T) {
		rates := cfg.DefaultRates()
		assert.True(t, rates.BaseFare().Equal(decimal.NewFromInt(300)))
		assert.True(t, rates.RatePerKm().Equal(decimal.NewFromInt(500)))
		assert.True(t, rates.RatePerKg().Equal(decimal.NewFromInt(25)))
		assert.True(t, rates.IntercityRatePerKm().Equal(decimal.NewFromInt(350)))
		assert.True(t, rates.ExpressMultiplier().Equal(decimal.NewFromFloat(1.5)))
	})

	t.Run("max_weight", func(t *testing.T) {
		assert.True(t, cfg.MaxWeightKg().Equal(decimal.NewFromInt(50)))
	})

	t.Run("bounds_per_category", func(t *testing.T) {
		intracity, err := cfg.BoundsFor(route.Intracity)
		require.NoError(t, err)
		assert.True(t, intracity.Min().Equal(decimal.NewFromInt(2000)))

		intercity, err := cfg.BoundsFor(route.Intercity)
		require.NoError(t, err)
		maxFee, hasMax := intercity.Max()
		assert.True(t, hasMax)
		assert.True(t, maxFee.Equal(decimal.NewFromInt(20000)))

		international, err := cfg.BoundsFor(route.International)
		require.NoError(t, err)
		assert.True(t, international.Min().Equal(decimal.NewFromInt(15000)))
		_, hasMax = international.Max()
		assert.False(t, hasMax)
	})
}

func TestNewConfig(t *testing.T) {
	defaults := pricing.DefaultConfig()

	fullBounds := func(t *testing.T) map[route.Category]pricing.Bounds {
		t.Helper()

		intracity, err := pricing.NewBounds(decimal.NewFromInt(1000), decimal.NewFromInt(5000))
		require.NoError(t, err)
		intercity, err := pricing.NewBounds(decimal.NewFromInt(3000), decimal.NewFromInt(15000))
		require.NoError(t, err)
		international, err := pricing.NewMinOnlyBounds(decimal.NewFromInt(10000))
		require.NoError(t, err)

		return map[route.Category]pricing.Bounds{
			route.Intracity:     intracity,
			route.Intercity:     intercity,
			route.International: international,
		}
	}

	t.Run("valid_config", func(t *testing.T) {
		cfg, err := pricing.NewConfig(defaults.DefaultRates(), decimal.NewFromInt(40), fullBounds(t))

		require.NoError(t, err)
		assert.True(t, cfg.MaxWeightKg().Equal(decimal.NewFromInt(40)))
	})

	t.Run("missing_category_bounds", func(t *testing.T) {
		bounds := fullBounds(t)
		delete(bounds, route.International)

		_, err := pricing.NewConfig(defaults.DefaultRates(), decimal.NewFromInt(40), bounds)
		assert.ErrorIs(t, err, pricing.ErrBoundsAreMissing)
	})

	t.Run("non_positive_max_weight", func(t *testing.T) {
		_, err := pricing.NewConfig(defaults.DefaultRates(), decimal.Zero, fullBounds(t))
		assert.ErrorIs(t, err, pricing.ErrMaxWeightIsNotPositive)
	})

	t.Run("zero_value_is_not_constructed", func(t *testing.T) {
		var cfg pricing.Config
		assert.ErrorIs(t, cfg.Validate(), pricing.ErrConfigIsNotConstructed)

		_, err := cfg.BoundsFor(route.Intracity)
		assert.ErrorIs(t, err, pricing.ErrConfigIsNotConstructed)
	})
}
