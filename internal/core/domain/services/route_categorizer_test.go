package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quoting/internal/core/domain/model/address"
	"quoting/internal/core/domain/model/route"
	"quoting/internal/core/domain/services"
)

func testNormalizer(t *testing.T) address.Normalizer {
	t.Helper()

	n, err := address.NewNormalizer("Nigeria")
	require.NoError(t, err)

	return n
}

func TestRouteCategorizer_Categorize(t *testing.T) {
	categorizer := services.NewRouteCategorizer()
	normalizer := testNormalizer(t)

	t.Run("should classify same city as intracity", func(t *testing.T) {
		origin := normalizer.Normalize("12 Allen Avenue", "Lagos", "Lagos", "Nigeria")
		destination := normalizer.Normalize("4 Herbert Macaulay Way", "Lagos", "Lagos", "Nigeria")

		r, err := categorizer.Categorize(origin, destination)

		require.NoError(t, err)
		assert.Equal(t, route.Intracity, r.Category())
		assert.False(t, r.LowConfidence())
	})

	t.Run("should classify different cities in one country as intercity", func(t *testing.T) {
		origin := normalizer.Normalize("", "Lagos", "", "Nigeria")
		destination := normalizer.Normalize("", "Abuja", "", "Nigeria")

		r, err := categorizer.Categorize(origin, destination)

		require.NoError(t, err)
		assert.Equal(t, route.Intercity, r.Category())
		assert.Equal(t, "Lagos", r.From())
		assert.Equal(t, "Abuja", r.To())
	})

	t.Run("should classify different countries as international regardless of cities", func(t *testing.T) {
		origin := normalizer.Normalize("", "Lagos", "", "Nigeria")
		destination := normalizer.Normalize("", "Lagos", "", "Ghana")

		r, err := categorizer.Categorize(origin, destination)

		require.NoError(t, err)
		assert.Equal(t, route.International, r.Category())
		assert.Equal(t, "Nigeria", r.From())
		assert.Equal(t, "Ghana", r.To())
	})

	t.Run("should treat punctuation and case variants as the same city", func(t *testing.T) {
		origin := normalizer.Normalize("", "Port-Harcourt", "", "Nigeria")
		destination := normalizer.Normalize("", "port harcourt", "", "Nigeria")

		r, err := categorizer.Categorize(origin, destination)

		require.NoError(t, err)
		assert.Equal(t, route.Intracity, r.Category())
	})

	t.Run("should degrade to low confidence intercity when city is unresolved", func(t *testing.T) {
		origin := normalizer.Normalize("somewhere", "", "Lagos", "Nigeria")
		destination := normalizer.Normalize("", "Abuja", "", "Nigeria")

		r, err := categorizer.Categorize(origin, destination)

		require.NoError(t, err)
		assert.Equal(t, route.Intercity, r.Category())
		assert.True(t, r.LowConfidence())
		assert.Equal(t, "Lagos", r.From())
	})

	t.Run("should fail when a country is unresolved", func(t *testing.T) {
		origin := normalizer.Normalize("", "Lagos", "", "Nigeria")
		var destination address.Address

		_, err := categorizer.Categorize(origin, destination)

		assert.ErrorIs(t, err, services.ErrCountryIsUnresolved)
	})
}
