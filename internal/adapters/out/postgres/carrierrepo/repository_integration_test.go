package carrierrepo_test

import (
	"context"
	"testing"
	"time"

	"quoting/internal/adapters/out/postgres/carrierrepo"
	"quoting/internal/core/domain/model/carrier"
	"quoting/internal/core/domain/model/kernel"
	"quoting/internal/core/domain/model/route"
	"quoting/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// CarrierRepositoryIntegrationTestSuite provides integration tests for CarrierRepository
// using PostgreSQL containers to verify database persistence behavior.
type CarrierRepositoryIntegrationTestSuite struct {
	suite.Suite
	container         *postgres.PostgresContainer
	db                *gorm.DB
	carrierRepository *carrierrepo.GormCarrierRepository
	tracker           *MockAggregateTracker
}

func (suite *CarrierRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(
		&carrierrepo.CarrierDTO{},
		&carrierrepo.ServiceAreaDTO{},
		&carrierrepo.RouteDTO{},
	))
}

func (suite *CarrierRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE carrier_service_areas, carrier_routes, carriers").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.carrierRepository = carrierrepo.NewGormCarrierRepository(suite.db, suite.tracker)
}

func (suite *CarrierRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CarrierRepositoryIntegrationTestSuite) TestAdd_ValidCarrier_Success() {
	ctx := context.Background()

	testCarrier := suite.createTestCarrier("Swift Logistics", []string{"Lagos", "Ibadan"}, nil)

	suite.tracker.On("TrackAggregate", testCarrier.ID(), testCarrier).Once()

	err := suite.carrierRepository.Add(ctx, testCarrier)
	suite.Require().NoError(err)

	suite.assertCarrierCount(1)
	suite.assertServiceAreaCount(2)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CarrierRepositoryIntegrationTestSuite) TestGet_ExistingCarrier_ReturnsFullAggregate() {
	ctx := context.Background()

	routes := []carrier.DeclaredRoute{
		suite.declaredRoute(route.Intercity, "Lagos", "Abuja"),
		suite.declaredRoute(route.International, "Nigeria", "Ghana"),
	}
	originalCarrier := suite.createTestCarrier("Swift Logistics", []string{"Lagos"}, routes)

	suite.tracker.On("TrackAggregate", originalCarrier.ID(), originalCarrier).Once()

	err := suite.carrierRepository.Add(ctx, originalCarrier)
	suite.Require().NoError(err)

	retrievedCarrier, err := suite.carrierRepository.Get(ctx, originalCarrier.ID())
	suite.Require().NoError(err)

	suite.Equal(originalCarrier.ID(), retrievedCarrier.ID())
	suite.Equal(originalCarrier.Name(), retrievedCarrier.Name())
	suite.Equal(originalCarrier.Status(), retrievedCarrier.Status())
	suite.InDelta(originalCarrier.Rating(), retrievedCarrier.Rating(), 0.001)
	suite.ElementsMatch(originalCarrier.ServiceAreas(), retrievedCarrier.ServiceAreas())

	suite.True(originalCarrier.RateCard().BaseFare().Equal(retrievedCarrier.RateCard().BaseFare()))
	suite.True(originalCarrier.RateCard().RatePerKm().Equal(retrievedCarrier.RateCard().RatePerKm()))
	suite.True(originalCarrier.RateCard().IntercityRatePerKm().Equal(retrievedCarrier.RateCard().IntercityRatePerKm()))
	suite.True(originalCarrier.RateCard().ExpressMultiplier().Equal(retrievedCarrier.RateCard().ExpressMultiplier()))

	suite.Len(retrievedCarrier.DeclaredRoutes(), len(routes))
	suite.True(retrievedCarrier.HasIntercityRoute("lagos", "abuja"))
	suite.True(retrievedCarrier.HasInternationalCorridor("nigeria", "ghana"))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CarrierRepositoryIntegrationTestSuite) TestGet_NonExistentCarrier_ReturnsNotFoundError() {
	ctx := context.Background()

	nonExistentID := kernel.NewUUID()
	retrievedCarrier, err := suite.carrierRepository.Get(ctx, nonExistentID)

	suite.Nil(retrievedCarrier)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CarrierRepositoryIntegrationTestSuite) TestUpdate_StatusChange_Persisted() {
	ctx := context.Background()

	testCarrier := suite.createTestCarrier("Swift Logistics", []string{"Lagos"}, nil)
	suite.tracker.On("TrackAggregate", testCarrier.ID(), testCarrier).Twice()

	err := suite.carrierRepository.Add(ctx, testCarrier)
	suite.Require().NoError(err)

	suite.Require().NoError(testCarrier.Approve())

	err = suite.carrierRepository.Update(ctx, testCarrier)
	suite.Require().NoError(err)

	retrievedCarrier, err := suite.carrierRepository.Get(ctx, testCarrier.ID())
	suite.Require().NoError(err)
	suite.True(retrievedCarrier.IsApproved())

	// Coverage rows are replaced on update, never duplicated
	suite.assertServiceAreaCount(1)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CarrierRepositoryIntegrationTestSuite) TestUpdate_NonExistentCarrier_ReturnsError() {
	ctx := context.Background()

	nonExistentCarrier := suite.createTestCarrier("Ghost Carrier", []string{"Lagos"}, nil)

	// No expectations on tracker since operation should fail

	err := suite.carrierRepository.Update(ctx, nonExistentCarrier)
	suite.Require().Error(err)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CarrierRepositoryIntegrationTestSuite) TestGetAllApprovedByServiceArea_FiltersByStatusAndCity() {
	ctx := context.Background()

	approvedInLagos := suite.createTestCarrier("Approved Lagos", []string{"Lagos"}, nil)
	suite.Require().NoError(approvedInLagos.Approve())

	pendingInLagos := suite.createTestCarrier("Pending Lagos", []string{"Lagos"}, nil)

	approvedInAbuja := suite.createTestCarrier("Approved Abuja", []string{"Abuja"}, nil)
	suite.Require().NoError(approvedInAbuja.Approve())

	for _, c := range []*carrier.Carrier{approvedInLagos, pendingInLagos, approvedInAbuja} {
		suite.tracker.On("TrackAggregate", c.ID(), c).Once()
		suite.Require().NoError(suite.carrierRepository.Add(ctx, c))
	}

	carriers, err := suite.carrierRepository.GetAllApprovedByServiceArea(ctx, "lagos")
	suite.Require().NoError(err)

	suite.Len(carriers, 1)
	suite.Equal("Approved Lagos", carriers[0].Name())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CarrierRepositoryIntegrationTestSuite) TestGetAllApprovedByServiceArea_MatchesNormalizedCityKey() {
	ctx := context.Background()

	approved := suite.createTestCarrier("Port Harcourt Carrier", []string{"Port Harcourt"}, nil)
	suite.Require().NoError(approved.Approve())

	suite.tracker.On("TrackAggregate", approved.ID(), approved).Once()
	suite.Require().NoError(suite.carrierRepository.Add(ctx, approved))

	carriers, err := suite.carrierRepository.GetAllApprovedByServiceArea(ctx, "portharcourt")
	suite.Require().NoError(err)

	suite.Len(carriers, 1)
	suite.Equal("Port Harcourt Carrier", carriers[0].Name())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CarrierRepositoryIntegrationTestSuite) TestGetAllApprovedWithRoutes_SkipsAreaOnlyAndPendingCarriers() {
	ctx := context.Background()

	withRoutes := suite.createTestCarrier("Route Carrier", nil, []carrier.DeclaredRoute{
		suite.declaredRoute(route.Intercity, "Lagos", "Abuja"),
	})
	suite.Require().NoError(withRoutes.Approve())

	areaOnly := suite.createTestCarrier("Area Carrier", []string{"Lagos"}, nil)
	suite.Require().NoError(areaOnly.Approve())

	pendingWithRoutes := suite.createTestCarrier("Pending Carrier", nil, []carrier.DeclaredRoute{
		suite.declaredRoute(route.Intercity, "Kano", "Abuja"),
	})

	for _, c := range []*carrier.Carrier{withRoutes, areaOnly, pendingWithRoutes} {
		suite.tracker.On("TrackAggregate", c.ID(), c).Once()
		suite.Require().NoError(suite.carrierRepository.Add(ctx, c))
	}

	carriers, err := suite.carrierRepository.GetAllApprovedWithRoutes(ctx)
	suite.Require().NoError(err)

	suite.Len(carriers, 1)
	suite.Equal("Route Carrier", carriers[0].Name())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CarrierRepositoryIntegrationTestSuite) TestGet_InvalidUUID_ReturnsError() {
	ctx := context.Background()

	invalidID := kernel.UUID{}
	retrievedCarrier, err := suite.carrierRepository.Get(ctx, invalidID)

	suite.Nil(retrievedCarrier)
	suite.Require().Error(err)

	suite.tracker.AssertExpectations(suite.T())
}

// createTestCarrier creates a pending carrier with the default rate card.
func (suite *CarrierRepositoryIntegrationTestSuite) createTestCarrier(
	name string, serviceAreas []string, routes []carrier.DeclaredRoute,
) *carrier.Carrier {
	rateCard, err := carrier.NewRateCard(
		decimal.NewFromInt(300),
		decimal.NewFromInt(50),
		decimal.NewFromInt(25),
		decimal.NewFromInt(350),
		decimal.NewFromFloat(1.5),
	)
	suite.Require().NoError(err)

	testCarrier, err := carrier.NewCarrier(kernel.NewUUID(), name, serviceAreas, routes, rateCard)
	suite.Require().NoError(err)

	return testCarrier
}

// declaredRoute creates a validated declared route for test carriers.
func (suite *CarrierRepositoryIntegrationTestSuite) declaredRoute(
	category route.Category, from, to string,
) carrier.DeclaredRoute {
	dr, err := carrier.NewDeclaredRoute(category, from, to)
	suite.Require().NoError(err)
	return dr
}

// assertCarrierCount verifies the number of carriers in the database.
func (suite *CarrierRepositoryIntegrationTestSuite) assertCarrierCount(expected int) {
	var count int64
	err := suite.db.Model(&carrierrepo.CarrierDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

// assertServiceAreaCount verifies the number of service area rows in the database.
func (suite *CarrierRepositoryIntegrationTestSuite) assertServiceAreaCount(expected int) {
	var count int64
	err := suite.db.Model(&carrierrepo.ServiceAreaDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestCarrierRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CarrierRepositoryIntegrationTestSuite))
}
