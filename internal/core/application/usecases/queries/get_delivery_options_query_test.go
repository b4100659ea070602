package queries_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quoting/internal/core/application/usecases/queries"
	"quoting/internal/core/domain/model/quote"
)

func TestNewGetDeliveryOptionsQuery(t *testing.T) {
	t.Run("should create valid query", func(t *testing.T) {
		query, err := queries.NewGetDeliveryOptionsQuery(
			"Ikeja, Lagos, Nigeria", "Yaba, Lagos, Nigeria",
			decimal.NewFromInt(2), []quote.DeliveryType{quote.Standard}, time.Now())

		require.NoError(t, err)
		assert.NoError(t, query.Validate())
		assert.Equal(t, []quote.DeliveryType{quote.Standard}, query.RequestedTypes())
	})

	t.Run("should default to both delivery types", func(t *testing.T) {
		query, err := queries.NewGetDeliveryOptionsQuery(
			"Lagos, Nigeria", "Abuja, Nigeria", decimal.NewFromInt(1), nil, time.Now())

		require.NoError(t, err)
		assert.Equal(t, []quote.DeliveryType{quote.Standard, quote.Express}, query.RequestedTypes())
	})

	t.Run("should default zero timestamp to now", func(t *testing.T) {
		query, err := queries.NewGetDeliveryOptionsQuery(
			"Lagos, Nigeria", "Abuja, Nigeria", decimal.NewFromInt(1), nil, time.Time{})

		require.NoError(t, err)
		assert.False(t, query.Timestamp().IsZero())
	})

	t.Run("should require both addresses", func(t *testing.T) {
		_, err := queries.NewGetDeliveryOptionsQuery(
			"", "Abuja, Nigeria", decimal.NewFromInt(1), nil, time.Now())
		assert.ErrorIs(t, err, queries.ErrPickupIsRequired)

		_, err = queries.NewGetDeliveryOptionsQuery(
			"Lagos, Nigeria", "", decimal.NewFromInt(1), nil, time.Now())
		assert.ErrorIs(t, err, queries.ErrDropoffIsRequired)
	})

	t.Run("should reject invalid delivery type", func(t *testing.T) {
		_, err := queries.NewGetDeliveryOptionsQuery(
			"Lagos, Nigeria", "Abuja, Nigeria", decimal.NewFromInt(1),
			[]quote.DeliveryType{quote.UnknownDeliveryType}, time.Now())
		assert.ErrorIs(t, err, quote.ErrDeliveryTypeIsWrong)
	})

	t.Run("should reject zero value query", func(t *testing.T) {
		var query queries.GetDeliveryOptionsQuery
		assert.ErrorIs(t, query.Validate(), queries.ErrGetDeliveryOptionsQueryIsNotConstructed)
	})
}
