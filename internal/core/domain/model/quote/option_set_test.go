package quote_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quoting/internal/core/domain/model/quote"
	"quoting/internal/core/domain/model/route"
)

func testOption(
	t *testing.T, partnerID string, fee int64, deliveryType quote.DeliveryType,
) quote.DeliveryOption {
	t.Helper()

	partner, err := quote.NewPartner(partnerID, "Carrier "+partnerID, 4.0)
	require.NoError(t, err)

	breakdown, err := quote.NewBreakdown(
		decimal.NewFromInt(300),
		decimal.NewFromInt(fee-350),
		decimal.NewFromInt(50),
		decimal.NewFromInt(1),
		decimal.NewFromInt(1),
		decimal.NewFromInt(1),
	)
	require.NoError(t, err)

	distance, err := route.NewDistance(decimal.NewFromInt(12), "25 mins")
	require.NoError(t, err)

	r, err := route.NewRoute(route.Intracity, "Lagos", "Lagos", false)
	require.NoError(t, err)

	option, err := quote.NewDeliveryOption(
		partner,
		decimal.NewFromInt(fee),
		breakdown,
		quote.EstimateETA(distance.Km(), r.Category(), deliveryType),
		distance,
		deliveryType,
		r,
	)
	require.NoError(t, err)

	return option
}

func TestNewDeliveryOption(t *testing.T) {
	t.Run("valid_option", func(t *testing.T) {
		option := testOption(t, "carrier-a", 4300, quote.Standard)

		assert.NoError(t, option.Validate())
		assert.Equal(t, "carrier-a", option.Partner().ID())
		assert.True(t, option.DeliveryFee().Equal(decimal.NewFromInt(4300)))
		assert.Equal(t, quote.Standard, option.DeliveryType())
		assert.Equal(t, route.Intracity, option.Route().Category())
	})

	t.Run("zero_value_is_not_constructed", func(t *testing.T) {
		var option quote.DeliveryOption
		assert.ErrorIs(t, option.Validate(), quote.ErrOptionIsNotConstructed)
	})

	t.Run("platform_partner", func(t *testing.T) {
		partner := quote.PlatformPartner()

		assert.Equal(t, quote.PlatformPartnerID, partner.ID())
		assert.True(t, partner.IsPlatformDefault())
	})

	t.Run("partner_requires_id_and_name", func(t *testing.T) {
		_, err := quote.NewPartner(" ", "Carrier", 4.0)
		assert.ErrorIs(t, err, quote.ErrPartnerIDIsRequired)

		_, err = quote.NewPartner("carrier-a", "", 4.0)
		assert.ErrorIs(t, err, quote.ErrPartnerNameIsRequired)
	})
}

func TestOptionSetOrdering(t *testing.T) {
	t.Run("sorts_ascending_by_fee", func(t *testing.T) {
		set := quote.NewOptionSet([]quote.DeliveryOption{
			testOption(t, "carrier-c", 6100, quote.Standard),
			testOption(t, "carrier-a", 4300, quote.Standard),
			testOption(t, "carrier-b", 5200, quote.Standard),
		})

		ids := make([]string, 0, set.Len())
		for _, option := range set.Options() {
			ids = append(ids, option.Partner().ID())
		}
		assert.Equal(t, []string{"carrier-a", "carrier-b", "carrier-c"}, ids)
	})

	t.Run("breaks_fee_ties_by_partner_id", func(t *testing.T) {
		set := quote.NewOptionSet([]quote.DeliveryOption{
			testOption(t, "carrier-b", 4300, quote.Standard),
			testOption(t, "carrier-a", 4300, quote.Standard),
		})

		options := set.Options()
		assert.Equal(t, "carrier-a", options[0].Partner().ID())
		assert.Equal(t, "carrier-b", options[1].Partner().ID())
	})

	t.Run("ordering_is_idempotent", func(t *testing.T) {
		input := []quote.DeliveryOption{
			testOption(t, "carrier-b", 4300, quote.Standard),
			testOption(t, "carrier-a", 4300, quote.Express),
			testOption(t, "carrier-c", 3900, quote.Standard),
		}

		first := quote.NewOptionSet(input)
		second := quote.NewOptionSet(first.Options())

		assert.Equal(t, first.Options(), second.Options())
	})
}

func TestOptionSetCheapestAccessors(t *testing.T) {
	set := quote.NewOptionSet([]quote.DeliveryOption{
		testOption(t, "carrier-a", 6400, quote.Express),
		testOption(t, "carrier-b", 4300, quote.Standard),
		testOption(t, "carrier-a", 4250, quote.Standard),
		testOption(t, "carrier-b", 6500, quote.Express),
	})

	t.Run("cheapest_standard", func(t *testing.T) {
		option, ok := set.CheapestStandard()
		require.True(t, ok)
		assert.Equal(t, "carrier-a", option.Partner().ID())
		assert.True(t, option.DeliveryFee().Equal(decimal.NewFromInt(4250)))
	})

	t.Run("cheapest_express", func(t *testing.T) {
		option, ok := set.CheapestExpress()
		require.True(t, ok)
		assert.Equal(t, "carrier-a", option.Partner().ID())
		assert.True(t, option.DeliveryFee().Equal(decimal.NewFromInt(6400)))
	})

	t.Run("missing_type", func(t *testing.T) {
		empty := quote.NewOptionSet(nil)

		_, ok := empty.CheapestStandard()
		assert.False(t, ok)
		assert.True(t, empty.IsEmpty())
	})
}
