// Package configrepo provides persistence for the platform pricing configuration.
// The store holds a single configuration row; reads are served through a
// process-wide cache that is invalidated after administrative updates.
package configrepo

import (
	"quoting/internal/core/domain/model/carrier"
	"quoting/internal/core/domain/model/pricing"
	"quoting/internal/core/domain/model/route"

	"github.com/shopspring/decimal"
)

// pricingConfigRowID pins the configuration to a single well-known row.
const pricingConfigRowID = 1

// PricingConfigDTO represents the database structure for the pricing configuration.
// Fee bounds are flattened per route category; a NULL max column means the
// category has no upper cap.
type PricingConfigDTO struct {
	ID                 int              `gorm:"primaryKey"`
	BaseFare           decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	RatePerKm          decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	RatePerKg          decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	IntercityRatePerKm decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	ExpressMultiplier  decimal.Decimal  `gorm:"type:numeric(6,3);not null"`
	MaxWeightKg        decimal.Decimal  `gorm:"type:numeric(8,2);not null"`
	IntracityMinFee    decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	IntracityMaxFee    *decimal.Decimal `gorm:"type:numeric(12,2)"`
	IntercityMinFee    decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	IntercityMaxFee    *decimal.Decimal `gorm:"type:numeric(12,2)"`
	InternationalMinFee decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	InternationalMaxFee *decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for the pricing configuration.
func (PricingConfigDTO) TableName() string {
	return "pricing_configs"
}

// fromDomain converts a pricing configuration to its database representation.
func fromDomain(cfg pricing.Config) (PricingConfigDTO, error) {
	rates := cfg.DefaultRates()

	dto := PricingConfigDTO{
		ID:                 pricingConfigRowID,
		BaseFare:           rates.BaseFare(),
		RatePerKm:          rates.RatePerKm(),
		RatePerKg:          rates.RatePerKg(),
		IntercityRatePerKm: rates.IntercityRatePerKm(),
		ExpressMultiplier:  rates.ExpressMultiplier(),
		MaxWeightKg:        cfg.MaxWeightKg(),
	}

	for _, mapping := range []struct {
		category route.Category
		min      *decimal.Decimal
		max      **decimal.Decimal
	}{
		{route.Intracity, &dto.IntracityMinFee, &dto.IntracityMaxFee},
		{route.Intercity, &dto.IntercityMinFee, &dto.IntercityMaxFee},
		{route.International, &dto.InternationalMinFee, &dto.InternationalMaxFee},
	} {
		bounds, err := cfg.BoundsFor(mapping.category)
		if err != nil {
			return PricingConfigDTO{}, err
		}

		*mapping.min = bounds.Min()
		if maxFee, capped := bounds.Max(); capped {
			fee := maxFee
			*mapping.max = &fee
		}
	}

	return dto, nil
}

// toDomain converts a database DTO to a pricing configuration.
func toDomain(dto PricingConfigDTO) (pricing.Config, error) {
	rates, err := carrier.NewRateCard(
		dto.BaseFare,
		dto.RatePerKm,
		dto.RatePerKg,
		dto.IntercityRatePerKm,
		dto.ExpressMultiplier,
	)
	if err != nil {
		return pricing.Config{}, err
	}

	bounds := make(map[route.Category]pricing.Bounds, 3)
	for _, mapping := range []struct {
		category route.Category
		min      decimal.Decimal
		max      *decimal.Decimal
	}{
		{route.Intracity, dto.IntracityMinFee, dto.IntracityMaxFee},
		{route.Intercity, dto.IntercityMinFee, dto.IntercityMaxFee},
		{route.International, dto.InternationalMinFee, dto.InternationalMaxFee},
	} {
		var b pricing.Bounds
		if mapping.max != nil {
			b, err = pricing.NewBounds(mapping.min, *mapping.max)
		} else {
			b, err = pricing.NewMinOnlyBounds(mapping.min)
		}
		if err != nil {
			return pricing.Config{}, err
		}
		bounds[mapping.category] = b
	}

	return pricing.NewConfig(rates, dto.MaxWeightKg, bounds)
}
