package configrepo

import (
	"context"
	"errors"

	"quoting/internal/core/domain/model/pricing"
	"quoting/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPricingConfigRepository implements PricingConfigRepository using GORM.
type GormPricingConfigRepository struct {
	db *gorm.DB
}

// NewGormPricingConfigRepository creates a new GORM pricing config repository.
func NewGormPricingConfigRepository(db *gorm.DB) *GormPricingConfigRepository {
	return &GormPricingConfigRepository{db: db}
}

// Get retrieves the stored pricing configuration.
func (r *GormPricingConfigRepository) Get(ctx context.Context) (pricing.Config, error) {
	var dto PricingConfigDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", pricingConfigRowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pricing.Config{}, errs.NewObjectNotFoundError("pricing config", pricingConfigRowID)
		}
		return pricing.Config{}, err
	}

	return toDomain(dto)
}

// Save replaces the stored pricing configuration.
// The configuration lives in a single well-known row, so saving is an upsert.
func (r *GormPricingConfigRepository) Save(ctx context.Context, cfg pricing.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(cfg)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}
