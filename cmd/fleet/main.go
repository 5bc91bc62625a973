package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fleetflow/fleetflow/internal/pkg/config"
	"github.com/fleetflow/fleetflow/internal/pkg/database"
	"github.com/fleetflow/fleetflow/internal/pkg/health"
	"github.com/fleetflow/fleetflow/internal/pkg/logger"
	"github.com/fleetflow/fleetflow/internal/pkg/middleware"
	nsqpkg "github.com/fleetflow/fleetflow/internal/pkg/nsq"
	"github.com/fleetflow/fleetflow/services/fleet/gateway"
	"github.com/fleetflow/fleetflow/services/fleet/handler"
	"github.com/fleetflow/fleetflow/services/fleet/repository"
	"github.com/fleetflow/fleetflow/services/fleet/usecase"
)

func main() {
	appName := "fleet-service"
	configPath := "config/fleet.yaml"
	configs := config.InitConfig(configPath)

	appLogger, err := logger.NewAppLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()

	appLogger.WithFields(map[string]interface{}{
		"app":         appName,
		"version":     configs.App.Version,
		"environment": configs.App.Environment,
	}).Info("Starting application")

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to Redis")
	}
	defer redisClient.Close()

	// Initialize NSQ producer when messaging is enabled
	var nsqProducer *nsqpkg.Producer
	if configs.NSQ.Enabled {
		nsqProducer, err = nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			appLogger.WithError(err).Fatal("Failed to connect to NSQ")
		}
		defer nsqProducer.Stop()
	}

	// Initialize repositories
	vehicleRepo := repository.NewVehicleRepository(configs, postgresClient.GetDB())
	driverRepo := repository.NewDriverRepository(configs, postgresClient.GetDB())
	tripRepo := repository.NewTripRepository(configs, postgresClient.GetDB())
	maintenanceRepo := repository.NewMaintenanceRepository(configs, postgresClient.GetDB())
	fuelRepo := repository.NewFuelLogRepository(configs, postgresClient.GetDB())
	analyticsRepo := repository.NewAnalyticsRepository(configs, postgresClient.GetDB())
	userRepo := repository.NewUserRepository(configs, postgresClient.GetDB())

	// Initialize gateway
	fleetGW := gateway.NewFleetGW(nsqProducer, appLogger.Logger)

	// Initialize usecases
	vehicleUC := usecase.NewVehicleUC(configs, vehicleRepo, fleetGW, appLogger.Logger)
	driverUC := usecase.NewDriverUC(configs, driverRepo, appLogger.Logger)
	tripUC := usecase.NewTripUC(configs, tripRepo, vehicleRepo, driverRepo, fuelRepo, fleetGW, appLogger.Logger)
	maintenanceUC := usecase.NewMaintenanceUC(configs, maintenanceRepo, vehicleRepo, fleetGW, appLogger.Logger)
	fuelUC := usecase.NewFuelUC(configs, fuelRepo, vehicleRepo, tripRepo, appLogger.Logger)
	analyticsUC := usecase.NewAnalyticsUC(configs, analyticsRepo, redisClient, appLogger.Logger)
	authUC := usecase.NewAuthUC(configs, userRepo, appLogger.Logger)

	// Initialize handlers
	fleetHandler := handler.NewHandler(configs, vehicleUC, driverUC, tripUC, maintenanceUC, fuelUC, analyticsUC, authUC)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryMiddleware(appLogger.Logger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.LoggerMiddleware(appLogger.Logger))

	// Register health endpoints
	healthService := health.NewService()
	healthService.AddChecker("postgres", health.NewPostgresChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisChecker(redisClient))
	health.RegisterEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	fleetHandler.RegisterRoutes(e)

	// Start server in goroutine
	go func() {
		addr := fmt.Sprintf("%s:%d", configs.Server.Host, configs.Server.Port)
		appLogger.WithField("address", addr).Info("Starting HTTP server")

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		appLogger.WithError(err).Error("Failed to shut down server gracefully")
	}

	appLogger.Info("Server stopped")
}
