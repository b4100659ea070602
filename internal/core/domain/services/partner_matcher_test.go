package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quoting/internal/core/domain/model/carrier"
	"quoting/internal/core/domain/model/kernel"
	"quoting/internal/core/domain/model/route"
	"quoting/internal/core/domain/services"
)

func testRateCard(t *testing.T) carrier.RateCard {
	t.Helper()

	rc, err := carrier.NewRateCard(
		decimal.NewFromInt(300),
		decimal.NewFromInt(500),
		decimal.NewFromInt(25),
		decimal.NewFromInt(350),
		decimal.NewFromFloat(1.5),
	)
	require.NoError(t, err)

	return rc
}

func approvedCarrier(
	t *testing.T, name string, areas []string, routes []carrier.DeclaredRoute,
) *carrier.Carrier {
	t.Helper()

	c, err := carrier.NewCarrier(kernel.NewUUID(), name, areas, routes, testRateCard(t))
	require.NoError(t, err)
	require.NoError(t, c.Approve())

	return c
}

func TestPartnerMatcher_Match(t *testing.T) {
	matcher := services.NewPartnerMatcher()
	normalizer := testNormalizer(t)
	categorizer := services.NewRouteCategorizer()

	t.Run("should match intracity carriers by destination service area", func(t *testing.T) {
		origin := normalizer.Normalize("", "Lagos", "", "Nigeria")
		destination := normalizer.Normalize("", "Lagos", "", "Nigeria")
		r, err := categorizer.Categorize(origin, destination)
		require.NoError(t, err)

		inCity := approvedCarrier(t, "Lagos Riders", []string{"Lagos"}, nil)
		elsewhere := approvedCarrier(t, "Abuja Riders", []string{"Abuja"}, nil)

		matched := matcher.Match(r, origin, destination, []*carrier.Carrier{inCity, elsewhere})

		require.Len(t, matched, 1)
		assert.Equal(t, "Lagos Riders", matched[0].Name())
	})

	t.Run("should match intercity routes in both directions", func(t *testing.T) {
		origin := normalizer.Normalize("", "Abuja", "", "Nigeria")
		destination := normalizer.Normalize("", "Lagos", "", "Nigeria")
		r, err := categorizer.Categorize(origin, destination)
		require.NoError(t, err)

		declared, err := carrier.NewDeclaredRoute(route.Intercity, "Lagos", "Abuja")
		require.NoError(t, err)
		reversed := approvedCarrier(t, "Corridor Haul", nil, []carrier.DeclaredRoute{declared})

		matched := matcher.Match(r, origin, destination, []*carrier.Carrier{reversed})

		require.Len(t, matched, 1)
	})

	t.Run("should match international corridors in declared direction only", func(t *testing.T) {
		origin := normalizer.Normalize("", "Lagos", "", "Nigeria")
		destination := normalizer.Normalize("", "Accra", "", "Ghana")
		r, err := categorizer.Categorize(origin, destination)
		require.NoError(t, err)

		outbound, err := carrier.NewDeclaredRoute(route.International, "Nigeria", "Ghana")
		require.NoError(t, err)
		inbound, err := carrier.NewDeclaredRoute(route.International, "Ghana", "Nigeria")
		require.NoError(t, err)

		exporter := approvedCarrier(t, "Pan-African Cargo", nil, []carrier.DeclaredRoute{outbound})
		importer := approvedCarrier(t, "Accra Freight", nil, []carrier.DeclaredRoute{inbound})

		matched := matcher.Match(r, origin, destination, []*carrier.Carrier{exporter, importer})

		require.Len(t, matched, 1)
		assert.Equal(t, "Pan-African Cargo", matched[0].Name())
	})

	t.Run("should exclude carriers that are not approved", func(t *testing.T) {
		origin := normalizer.Normalize("", "Lagos", "", "Nigeria")
		destination := normalizer.Normalize("", "Lagos", "", "Nigeria")
		r, err := categorizer.Categorize(origin, destination)
		require.NoError(t, err)

		pending, err := carrier.NewCarrier(
			kernel.NewUUID(), "Pending Riders", []string{"Lagos"}, nil, testRateCard(t))
		require.NoError(t, err)

		matched := matcher.Match(r, origin, destination, []*carrier.Carrier{pending})

		assert.Empty(t, matched)
	})

	t.Run("should return empty slice when nothing matches", func(t *testing.T) {
		origin := normalizer.Normalize("", "Lagos", "", "Nigeria")
		destination := normalizer.Normalize("", "Kano", "", "Nigeria")
		r, err := categorizer.Categorize(origin, destination)
		require.NoError(t, err)

		matched := matcher.Match(r, origin, destination, nil)

		assert.NotNil(t, matched)
		assert.Empty(t, matched)
	})
}
