package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"evdealer/cmd"
	httpin "evdealer/internal/adapters/in/http"
	"evdealer/internal/adapters/out/postgres/deliveryrepo"
	"evdealer/internal/adapters/out/postgres/orderrepo"
	"evdealer/internal/adapters/out/postgres/userrepo"
	"evdealer/internal/adapters/out/postgres/vehiclerepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := openDatabase(configs)
	migrateDatabase(gormDB)

	root := cmd.NewCompositionRoot(configs, gormDB, logger)

	overdueAfter := parseOverdueAfter(configs.InvoiceOverdueAfter)
	jobManager := root.CreateJobManager(configs.InvoiceOverdueSchedule, overdueAfter)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:              goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderChangedTopic: goDotEnvVariable("KAFKA_ORDER_CHANGED_TOPIC"),
		InvoiceOverdueSchedule: goDotEnvVariable("INVOICE_OVERDUE_SCHEDULE"),
		InvoiceOverdueAfter:    goDotEnvVariable("INVOICE_OVERDUE_AFTER"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func migrateDatabase(db *gorm.DB) {
	err := db.AutoMigrate(
		&userrepo.UserDTO{},
		&vehiclerepo.VehicleDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.InvoiceDTO{},
		&orderrepo.PaymentDTO{},
		&deliveryrepo.DeliveryDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func parseOverdueAfter(raw string) time.Duration {
	overdueAfter, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid INVOICE_OVERDUE_AFTER value %q: %v", raw, err)
	}
	return overdueAfter
}

func startWebServer(root cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(root.CreateServerHandlers())
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
