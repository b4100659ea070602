package cmd

import (
	"log/slog"

	"quoting/internal/adapters/out/googlemaps"
	"quoting/internal/adapters/out/postgres"
	"quoting/internal/adapters/out/postgres/carrierrepo"
	"quoting/internal/adapters/out/postgres/configrepo"
	"quoting/internal/core/application/usecases/commands"
	"quoting/internal/core/application/usecases/queries"
	"quoting/internal/core/domain/model/address"
	"quoting/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB         *gorm.DB
	uowFactory     postgres.GormUnitOfWorkFactory
	configProvider *configrepo.CachedPricingConfigProvider
	distances      *googlemaps.DistanceMatrixClient
	normalizer     address.Normalizer
	logger         *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) (CompositionRoot, error) {
	normalizer, err := address.NewNormalizer(configs.HomeCountry)
	if err != nil {
		return CompositionRoot{}, err
	}

	configProvider, err := configrepo.NewCachedPricingConfigProvider(
		configrepo.NewGormPricingConfigRepository(gormDB),
	)
	if err != nil {
		return CompositionRoot{}, err
	}

	distances, err := googlemaps.NewDistanceMatrixClient(configs.GoogleMapsAPIKey, configs.GoogleMapsBaseURL)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:         gormDB,
		uowFactory:     *postgres.NewGormUnitOfWorkFactory(gormDB),
		configProvider: configProvider,
		distances:      distances,
		normalizer:     normalizer,
		logger:         slog.Default(),
	}, nil
}

func (c *CompositionRoot) ConfigProvider() *configrepo.CachedPricingConfigProvider {
	return c.configProvider
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateCreateCarrierCommandHandler() commands.CreateCarrierCommandHandler {
	var f commands.CarrierUoWFactory = FuncCarrierUoWFactory(func() commands.CarrierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCarrierCommandHandler(f)
}

func (c *CompositionRoot) CreateApproveCarrierCommandHandler() commands.ApproveCarrierCommandHandler {
	var f commands.CarrierUoWFactory = FuncCarrierUoWFactory(func() commands.CarrierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveCarrierCommandHandler(f)
}

func (c *CompositionRoot) CreateRejectCarrierCommandHandler() commands.RejectCarrierCommandHandler {
	var f commands.CarrierUoWFactory = FuncCarrierUoWFactory(func() commands.CarrierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectCarrierCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdatePricingConfigCommandHandler() commands.UpdatePricingConfigCommandHandler {
	var f commands.PricingConfigUoWFactory = FuncPricingConfigUoWFactory(func() commands.PricingConfigUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdatePricingConfigCommandHandler(f, c.configProvider)
}

func (c *CompositionRoot) CreateGetDeliveryOptionsQueryHandler() (queries.GetDeliveryOptionsQueryHandler, error) {
	carrierRepo := carrierrepo.NewGormCarrierRepository(c.gormDB, noopTracker{})
	return queries.NewGetDeliveryOptionsQueryHandler(
		c.normalizer,
		carrierRepo,
		c.distances,
		c.configProvider,
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetApprovedCarriersQueryHandler() queries.GetApprovedCarriersQueryHandler {
	return queries.NewGetApprovedCarriersQueryHandler(c.gormDB)
}

type FuncCarrierUoWFactory func() commands.CarrierUoW

func (f FuncCarrierUoWFactory) Create() commands.CarrierUoW {
	return f()
}

type FuncPricingConfigUoWFactory func() commands.PricingConfigUoW

func (f FuncPricingConfigUoWFactory) Create() commands.PricingConfigUoW {
	return f()
}

// noopTracker satisfies the carrier repository's tracker dependency for
// read-only repositories created outside a unit of work.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}
