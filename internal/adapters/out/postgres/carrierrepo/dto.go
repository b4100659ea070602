// Package carrierrepo provides data transfer objects and mapping functions for carrier persistence.
// This package implements the repository pattern for the carrier domain aggregate, handling
// the conversion between domain entities and database representations.
package carrierrepo

import (
	"quoting/internal/core/domain/model/address"
	"quoting/internal/core/domain/model/carrier"
	"quoting/internal/core/domain/model/kernel"
	"quoting/internal/core/domain/model/route"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CarrierDTO represents the database structure for persisting carrier aggregates.
// Maps carrier domain entities to relational database tables with proper foreign key relationships.
type CarrierDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name               string          `gorm:"type:varchar(255);not null"`
	Rating             float64         `gorm:"type:numeric(3,2);not null"`
	Status             string          `gorm:"type:varchar(32);not null;index"`
	BaseFare           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	RatePerKm          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	RatePerKg          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	IntercityRatePerKm decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ExpressMultiplier  decimal.Decimal `gorm:"type:numeric(6,3);not null"`
	ServiceAreas       []ServiceAreaDTO `gorm:"foreignKey:CarrierID;constraint:OnDelete:CASCADE"`
	Routes             []RouteDTO       `gorm:"foreignKey:CarrierID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for carrier entities.
// Overrides GORM's default naming convention to use "carriers" instead of "carrier_dtos".
func (CarrierDTO) TableName() string {
	return "carriers"
}

// ServiceAreaDTO represents the database structure for persisting carrier coverage cities.
// The normalized city key column allows exact coverage lookups regardless of input casing.
type ServiceAreaDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CarrierID uuid.UUID `gorm:"type:uuid;not null;index"`
	City      string    `gorm:"type:varchar(255);not null"`
	CityKey   string    `gorm:"type:varchar(255);not null;index"`
}

// TableName specifies the database table name for service area entities.
func (ServiceAreaDTO) TableName() string {
	return "carrier_service_areas"
}

// RouteDTO represents the database structure for persisting declared carrier routes.
// Endpoints keep the carrier's original spelling while the key columns hold
// normalized values used for corridor matching.
type RouteDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CarrierID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Category     string    `gorm:"type:varchar(32);not null"`
	FromEndpoint string    `gorm:"type:varchar(255);not null"`
	ToEndpoint   string    `gorm:"type:varchar(255);not null"`
	FromKey      string    `gorm:"type:varchar(255);not null;index"`
	ToKey        string    `gorm:"type:varchar(255);not null;index"`
}

// TableName specifies the database table name for declared route entities.
func (RouteDTO) TableName() string {
	return "carrier_routes"
}

// fromDomain converts a carrier domain aggregate to its database representation.
// Service area and route rows get fresh identifiers on every save; Update relies
// on replacing the child rows rather than diffing them.
func fromDomain(c *carrier.Carrier) CarrierDTO {
	carrierID := c.ID().Bytes()

	serviceAreas := make([]ServiceAreaDTO, 0, len(c.ServiceAreas()))
	for _, area := range c.ServiceAreas() {
		serviceAreas = append(serviceAreas, ServiceAreaDTO{
			ID:        uuid.New(),
			CarrierID: carrierID,
			City:      area,
			CityKey:   address.Key(area),
		})
	}

	routes := make([]RouteDTO, 0, len(c.DeclaredRoutes()))
	for _, dr := range c.DeclaredRoutes() {
		routes = append(routes, RouteDTO{
			ID:           uuid.New(),
			CarrierID:    carrierID,
			Category:     dr.Category().String(),
			FromEndpoint: dr.From(),
			ToEndpoint:   dr.To(),
			FromKey:      address.Key(dr.From()),
			ToKey:        address.Key(dr.To()),
		})
	}

	rates := c.RateCard()

	return CarrierDTO{
		ID:                 carrierID,
		Name:               c.Name(),
		Rating:             c.Rating(),
		Status:             c.Status().String(),
		BaseFare:           rates.BaseFare(),
		RatePerKm:          rates.RatePerKm(),
		RatePerKg:          rates.RatePerKg(),
		IntercityRatePerKm: rates.IntercityRatePerKm(),
		ExpressMultiplier:  rates.ExpressMultiplier(),
		ServiceAreas:       serviceAreas,
		Routes:             routes,
	}
}

// toDomain converts a database DTO to a carrier domain aggregate.
// Reconstructs the complete aggregate including coverage using RestoreCarrier.
func toDomain(dto CarrierDTO) (*carrier.Carrier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	rateCard, err := carrier.NewRateCard(
		dto.BaseFare,
		dto.RatePerKm,
		dto.RatePerKg,
		dto.IntercityRatePerKm,
		dto.ExpressMultiplier,
	)
	if err != nil {
		return nil, err
	}

	serviceAreas := make([]string, 0, len(dto.ServiceAreas))
	for _, areaDto := range dto.ServiceAreas {
		serviceAreas = append(serviceAreas, areaDto.City)
	}

	routes := make([]carrier.DeclaredRoute, 0, len(dto.Routes))
	for _, routeDto := range dto.Routes {
		dr, routeErr := routeToDomain(routeDto)
		if routeErr != nil {
			return nil, routeErr
		}
		routes = append(routes, dr)
	}

	status, err := carrier.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return carrier.RestoreCarrier(id, dto.Name, serviceAreas, routes, rateCard, dto.Rating, status)
}

// routeToDomain converts a declared route DTO to its domain value object.
func routeToDomain(dto RouteDTO) (carrier.DeclaredRoute, error) {
	category, err := route.CategoryFromString(dto.Category)
	if err != nil {
		return carrier.DeclaredRoute{}, err
	}

	return carrier.NewDeclaredRoute(category, dto.FromEndpoint, dto.ToEndpoint)
}
