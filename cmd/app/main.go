package main

import (
	"fmt"
	"net/http"
	"os"

	"quoting/cmd"
	_ "quoting/docs"
	adapterhttp "quoting/internal/adapters/in/http"
	"quoting/internal/adapters/out/postgres/carrierrepo"
	"quoting/internal/adapters/out/postgres/configrepo"
	"quoting/internal/generated/servers"
	"quoting/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Error building composition root: %v", err)
	}

	jobManager := jobs.NewJobManager(app.ConfigProvider(), app.Logger())
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		GoogleMapsAPIKey:  goDotEnvVariable("GOOGLE_MAPS_API_KEY"),
		GoogleMapsBaseURL: goDotEnvVariable("GOOGLE_MAPS_BASE_URL"),
		HomeCountry:       goDotEnvVariable("HOME_COUNTRY"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&carrierrepo.CarrierDTO{},
		&carrierrepo.ServiceAreaDTO{},
		&carrierrepo.RouteDTO{},
		&configrepo.PricingConfigDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	getDeliveryOptionsHandler, err := app.CreateGetDeliveryOptionsQueryHandler()
	if err != nil {
		log.Fatalf("Error building delivery options query handler: %v", err)
	}

	httpServer := adapterhttp.NewServer(
		app.CreateCreateCarrierCommandHandler(),
		app.CreateApproveCarrierCommandHandler(),
		app.CreateRejectCarrierCommandHandler(),
		app.CreateUpdatePricingConfigCommandHandler(),
		getDeliveryOptionsHandler,
		app.CreateGetApprovedCarriersQueryHandler(),
	)
	servers.RegisterHandlersWithBaseURL(e, httpServer, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
