package carrierrepo

import (
	"context"
	"errors"

	"quoting/internal/core/domain/model/carrier"
	"quoting/internal/core/domain/model/kernel"
	"quoting/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCarrierRepository implements CarrierRepository using GORM.
type GormCarrierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCarrierRepository creates a new GORM carrier repository.
func NewGormCarrierRepository(db *gorm.DB, tracker aggregateTracker) *GormCarrierRepository {
	return &GormCarrierRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new carrier to the database.
func (r *GormCarrierRepository) Add(ctx context.Context, aggregate *carrier.Carrier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing carrier to the database.
// Coverage rows get fresh identifiers on every save, so the stale service area
// and route rows are removed before the aggregate is written back.
func (r *GormCarrierRepository) Update(ctx context.Context, aggregate *carrier.Carrier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	db := r.db.WithContext(ctx)
	if err := db.Where("carrier_id = ?", dto.ID).Delete(&ServiceAreaDTO{}).Error; err != nil {
		return err
	}
	if err := db.Where("carrier_id = ?", dto.ID).Delete(&RouteDTO{}).Error; err != nil {
		return err
	}

	// Use Session with FullSaveAssociations to properly update nested associations
	result := db.Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a carrier by ID.
func (r *GormCarrierRepository) Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CarrierDTO
	if err := r.db.WithContext(ctx).
		Preload("ServiceAreas").
		Preload("Routes").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("carrier", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllApprovedByServiceArea retrieves approved carriers covering the given city.
// The city argument must already be normalized with address.Key; matching happens
// against the stored city_key column.
//
// Example:
//
//	carriers, err := repo.GetAllApprovedByServiceArea(ctx, "lagos")
//	if err != nil {
//		return fmt.Errorf("failed to get carriers for city: %w", err)
//	}
func (r *GormCarrierRepository) GetAllApprovedByServiceArea(ctx context.Context, cityKey string) ([]*carrier.Carrier, error) {
	var dtos []CarrierDTO
	if err := r.db.WithContext(ctx).
		Preload("ServiceAreas").
		Preload("Routes").
		Table("carriers").
		Select("DISTINCT carriers.*").
		Joins("JOIN carrier_service_areas ON carrier_service_areas.carrier_id = carriers.id").
		Where("carriers.status = ? AND carrier_service_areas.city_key = ?", carrier.Approved.String(), cityKey).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetAllApprovedWithRoutes retrieves approved carriers that declared at least one route.
// Candidate narrowing only; exact corridor matching stays in the domain layer.
func (r *GormCarrierRepository) GetAllApprovedWithRoutes(ctx context.Context) ([]*carrier.Carrier, error) {
	var dtos []CarrierDTO
	if err := r.db.WithContext(ctx).
		Preload("ServiceAreas").
		Preload("Routes").
		Table("carriers").
		Select("DISTINCT carriers.*").
		Joins("JOIN carrier_routes ON carrier_routes.carrier_id = carriers.id").
		Where("carriers.status = ?", carrier.Approved.String()).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

func (r *GormCarrierRepository) toDomainAll(dtos []CarrierDTO) ([]*carrier.Carrier, error) {
	carriers := make([]*carrier.Carrier, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		carriers = append(carriers, c)
	}

	return carriers, nil
}
