package quote_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"quoting/internal/core/domain/model/quote"
	"quoting/internal/core/domain/model/route"
)

func TestEstimateETA(t *testing.T) {
	tests := []struct {
		name         string
		distanceKm   int64
		category     route.Category
		deliveryType quote.DeliveryType
		wantHours    int
		wantLabel    string
		wantDays     int
	}{
		{"short_intracity_standard", 5, route.Intracity, quote.Standard, 4, "Same Day", 1},
		{"short_intracity_express", 5, route.Intracity, quote.Express, 2, "Same Day", 1},
		{"mid_intracity_standard", 15, route.Intracity, quote.Standard, 7, "Next Day", 1},
		{"mid_intercity_standard", 40, route.Intercity, quote.Standard, 12, "Next Day", 1},
		{"long_intercity_standard", 80, route.Intercity, quote.Standard, 24, "Next Day", 1},
		{"very_long_intercity_standard", 500, route.Intercity, quote.Standard, 48, "2 Days", 2},
		{"very_long_intercity_express", 500, route.Intercity, quote.Express, 24, "Next Day", 1},
		{"international_standard", 400, route.International, quote.Standard, 48, "2 Days", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eta := quote.EstimateETA(decimal.NewFromInt(tt.distanceKm), tt.category, tt.deliveryType)

			assert.Equal(t, tt.wantHours, eta.Hours())
			assert.Equal(t, tt.wantLabel, eta.Label())
			assert.Equal(t, tt.wantDays, eta.EstimatedDays())
		})
	}
}
