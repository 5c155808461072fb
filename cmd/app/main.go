package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"ordersystem/cmd"
	_ "ordersystem/docs"
	httpin "ordersystem/internal/adapters/in/http"
	"ordersystem/internal/adapters/out/postgres/customerrepo"
	"ordersystem/internal/adapters/out/postgres/itemrepo"
	"ordersystem/internal/adapters/out/postgres/orderrepo"
	"ordersystem/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//	@title			Order System API
//	@version		1.0
//	@description	Backend for managing catalog items, customers and orders.

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(app.CreateGetPendingOrdersQueryHandler(), app.Logger())
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	e := buildWebServer(&app)

	go func() {
		err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	jobManager.StopAll()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
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
		FulfillmentDelay: fulfillmentDelay(),
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

func fulfillmentDelay() time.Duration {
	seconds, err := strconv.Atoi(goDotEnvVariable("FULFILLMENT_DELAY_SECONDS"))
	if err != nil {
		log.Fatalf("Invalid FULFILLMENT_DELAY_SECONDS: %v", err)
	}
	return time.Duration(seconds) * time.Second
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&itemrepo.ItemDTO{},
		&customerrepo.CustomerDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func buildWebServer(app *cmd.CompositionRoot) *echo.Echo {
	e := echo.New()

	server := httpin.NewServer(httpin.Handlers{
		CreateOrder:  app.CreateCreateOrderCommandHandler(),
		ProcessOrder: app.CreateProcessOrderCommandHandler(),
		CancelOrder:  app.CreateCancelOrderCommandHandler(),
		DeleteOrder:  app.CreateDeleteOrderCommandHandler(),
		GetAllOrders: app.CreateGetAllOrdersQueryHandler(),

		CreateItem:  app.CreateCreateItemCommandHandler(),
		UpdateItem:  app.CreateUpdateItemCommandHandler(),
		DeleteItem:  app.CreateDeleteItemCommandHandler(),
		GetAllItems: app.CreateGetAllItemsQueryHandler(),

		CreateCustomer:  app.CreateCreateCustomerCommandHandler(),
		UpdateCustomer:  app.CreateUpdateCustomerCommandHandler(),
		DeleteCustomer:  app.CreateDeleteCustomerCommandHandler(),
		GetAllCustomers: app.CreateGetAllCustomersQueryHandler(),
	})
	server.RegisterRoutes(e)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
