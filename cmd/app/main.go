package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"fulfillment/cmd"
	fulfillmenthttp "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/kafka"
	"fulfillment/internal/adapters/out/postgres/inventoryrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/routerepo"
	"fulfillment/internal/adapters/out/postgres/vehiclerepo"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	var publisher ports.EventPublisher
	if configs.KafkaHost != "" {
		kafkaPublisher := kafka.NewPublisher(configs.KafkaHost, configs.KafkaEventsTopic, logger)
		defer func() {
			_ = kafkaPublisher.Close()
		}()
		publisher = kafkaPublisher
	}

	app := cmd.NewCompositionRoot(configs, gormDB, publisher)

	jobManager := jobs.NewJobManager(
		app.CreateGetStockLevelsQueryHandler(),
		app.CreateCheckAlertsCommandHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:        goDotEnvVariable("KAFKA_HOST"),
		KafkaEventsTopic: goDotEnvVariable("KAFKA_EVENTS_TOPIC"),
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
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return db
}

func mustMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.StatusChangeDTO{},
		&orderrepo.NoteDTO{},
		&routerepo.RouteDTO{},
		&routerepo.WaypointDTO{},
		&routerepo.TrackSampleDTO{},
		&vehiclerepo.VehicleDTO{},
		&inventoryrepo.ItemDTO{},
		&inventoryrepo.MovementDTO{},
		&inventoryrepo.AlertDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := fulfillmenthttp.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateAddOrderNoteCommandHandler(),
		app.CreateAssignOrderCommandHandler(),
		app.CreateRegisterVehicleCommandHandler(),
		app.CreateCreateRouteCommandHandler(),
		app.CreateAddWaypointCommandHandler(),
		app.CreateUpdateWaypointStatusCommandHandler(),
		app.CreateStartRouteCommandHandler(),
		app.CreateCompleteRouteCommandHandler(),
		app.CreateOptimizeRouteCommandHandler(),
		app.CreateUpdateRouteLocationCommandHandler(),
		app.CreateCreateInventoryItemCommandHandler(),
		app.CreateAddInventoryMovementCommandHandler(),
		app.CreateReserveStockCommandHandler(),
		app.CreateReleaseReservedStockCommandHandler(),
		app.CreateCheckAlertsCommandHandler(),
		app.CreateDeactivateItemCommandHandler(),
		app.CreateTrackOrderQueryHandler(),
		app.CreateGetStockLevelsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
