package address_test

import (
	"testing"

	"quoting/internal/core/domain/model/address"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNormalizer(t *testing.T) {
	t.Run("requires_home_country", func(t *testing.T) {
		// When
		_, err := address.NewNormalizer("   ")

		// Then
		require.ErrorIs(t, err, address.ErrHomeCountryIsRequired)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		// Given
		var n address.Normalizer

		// Then
		require.ErrorIs(t, n.Validate(), address.ErrNormalizerIsNotConstructed)
	})
}

func TestNormalizer_Normalize(t *testing.T) {
	normalizer, err := address.NewNormalizer("Nigeria")
	require.NoError(t, err)

	t.Run("trims_whitespace_and_preserves_display_casing", func(t *testing.T) {
		// When
		addr := normalizer.Normalize("  12 Allen Ave ", " Ikeja ", "Lagos", " Nigeria ")

		// Then
		assert.Equal(t, "12 Allen Ave", addr.Street())
		assert.Equal(t, "Ikeja", addr.City())
		assert.Equal(t, "Lagos", addr.Region())
		assert.Equal(t, "Nigeria", addr.Country())
	})

	t.Run("empty_country_defaults_to_home_country", func(t *testing.T) {
		// When
		addr := normalizer.Normalize("12 Allen Ave", "Ikeja", "Lagos", "")

		// Then
		assert.Equal(t, "Nigeria", addr.Country())
	})

	t.Run("comparison_keys_ignore_case_and_punctuation", func(t *testing.T) {
		// Given
		first := normalizer.Normalize("", "Port-Harcourt", "", "NIGERIA")
		second := normalizer.Normalize("", "port harcourt", "", "nigeria.")

		// Then
		assert.Equal(t, first.CityKey(), second.CityKey())
		assert.True(t, first.SameCity(second))
		assert.True(t, first.SameCountry(second))
	})

	t.Run("unresolved_city_is_not_same_city_as_anything", func(t *testing.T) {
		// Given
		blank := normalizer.Normalize("street only", "", "", "Nigeria")
		lagos := normalizer.Normalize("", "Lagos", "", "Nigeria")

		// Then
		assert.False(t, blank.HasCity())
		assert.False(t, blank.SameCity(lagos))
		assert.False(t, blank.SameCity(blank))
	})
}

func TestNormalizer_NormalizeFreeForm(t *testing.T) {
	normalizer, err := address.NewNormalizer("Nigeria")
	require.NoError(t, err)

	tests := []struct {
		name    string
		raw     string
		street  string
		city    string
		region  string
		country string
	}{
		{
			name:    "area_city_country",
			raw:     "Ikeja, Lagos, Nigeria",
			street:  "Ikeja",
			city:    "Lagos",
			country: "Nigeria",
		},
		{
			name:    "city_country",
			raw:     "Accra, Ghana",
			city:    "Accra",
			country: "Ghana",
		},
		{
			name:    "full_four_parts",
			raw:     "12 Allen Ave, Ikeja, Lagos, Nigeria",
			street:  "12 Allen Ave",
			city:    "Ikeja",
			region:  "Lagos",
			country: "Nigeria",
		},
		{
			name:    "city_only_gets_home_country",
			raw:     "Abuja",
			city:    "Abuja",
			country: "Nigeria",
		},
		{
			name:    "empty_input_still_has_country",
			raw:     "  ",
			country: "Nigeria",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// When
			addr := normalizer.NormalizeFreeForm(tt.raw)

			// Then
			assert.Equal(t, tt.street, addr.Street())
			assert.Equal(t, tt.city, addr.City())
			assert.Equal(t, tt.region, addr.Region())
			assert.Equal(t, tt.country, addr.Country())
		})
	}
}

func TestAddress_IsComplete(t *testing.T) {
	normalizer, err := address.NewNormalizer("Nigeria")
	require.NoError(t, err)

	t.Run("city_is_complete", func(t *testing.T) {
		addr := normalizer.Normalize("", "Ikeja", "", "")
		assert.True(t, addr.IsComplete())
	})

	t.Run("region_without_city_is_complete", func(t *testing.T) {
		addr := normalizer.Normalize("12 Allen Ave", "", "Lagos", "")
		assert.True(t, addr.IsComplete())
	})

	t.Run("street_without_city_or_region_is_incomplete", func(t *testing.T) {
		addr := normalizer.Normalize("12 Allen Ave", "", "", "Nigeria")
		assert.False(t, addr.IsComplete())
	})
}

func TestAddress_Label(t *testing.T) {
	normalizer, err := address.NewNormalizer("Nigeria")
	require.NoError(t, err)

	t.Run("city_and_country", func(t *testing.T) {
		addr := normalizer.Normalize("", "Lagos", "", "Nigeria")
		assert.Equal(t, "Lagos, Nigeria", addr.Label())
	})

	t.Run("country_only_when_city_missing", func(t *testing.T) {
		addr := normalizer.Normalize("street", "", "Lagos", "Nigeria")
		assert.Equal(t, "Nigeria", addr.Label())
	})
}
