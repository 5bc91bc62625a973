package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fleetflow/fleetflow/internal/pkg/middleware"
	"github.com/fleetflow/fleetflow/internal/pkg/models"
	"github.com/fleetflow/fleetflow/services/fleet"
	httpHandler "github.com/fleetflow/fleetflow/services/fleet/handler/http"
)

// Handler combines all HTTP handlers for the fleet service
type Handler struct {
	vehicleHTTP     *httpHandler.VehicleHandler
	driverHTTP      *httpHandler.DriverHandler
	tripHTTP        *httpHandler.TripHandler
	maintenanceHTTP *httpHandler.MaintenanceHandler
	fuelHTTP        *httpHandler.FuelHandler
	analyticsHTTP   *httpHandler.AnalyticsHandler
	authHTTP        *httpHandler.AuthHandler
	cfg             *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	cfg *models.Config,
	vehicleUC fleet.VehicleUC,
	driverUC fleet.DriverUC,
	tripUC fleet.TripUC,
	maintenanceUC fleet.MaintenanceUC,
	fuelUC fleet.FuelUC,
	analyticsUC fleet.AnalyticsUC,
	authUC fleet.AuthUC,
) *Handler {
	return &Handler{
		vehicleHTTP:     httpHandler.NewVehicleHandler(vehicleUC),
		driverHTTP:      httpHandler.NewDriverHandler(driverUC),
		tripHTTP:        httpHandler.NewTripHandler(tripUC),
		maintenanceHTTP: httpHandler.NewMaintenanceHandler(maintenanceUC),
		fuelHTTP:        httpHandler.NewFuelHandler(fuelUC),
		analyticsHTTP:   httpHandler.NewAnalyticsHandler(analyticsUC),
		authHTTP:        httpHandler.NewAuthHandler(authUC),
		cfg:             cfg,
	}
}

// RegisterRoutes registers all HTTP routes. Everything under /api except the
// auth endpoints requires a valid operator token.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", h.authHTTP.Register)
	auth.POST("/login", h.authHTTP.Login)

	protected := api.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))

	vehicles := protected.Group("/vehicles")
	vehicles.POST("", h.vehicleHTTP.RegisterVehicle)
	vehicles.GET("", h.vehicleHTTP.ListVehicles)
	vehicles.GET("/:id", h.vehicleHTTP.GetVehicle)
	vehicles.PUT("/:id", h.vehicleHTTP.UpdateVehicle)
	vehicles.DELETE("/:id", h.vehicleHTTP.RetireVehicle)

	drivers := protected.Group("/drivers")
	drivers.POST("", h.driverHTTP.RegisterDriver)
	drivers.GET("", h.driverHTTP.ListDrivers)
	drivers.GET("/:id", h.driverHTTP.GetDriver)
	drivers.PUT("/:id", h.driverHTTP.UpdateDriver)
	drivers.DELETE("/:id", h.driverHTTP.DeleteDriver)

	trips := protected.Group("/trips")
	trips.POST("", h.tripHTTP.CreateTrip)
	trips.GET("", h.tripHTTP.ListTrips)
	trips.PUT("/:id", h.tripHTTP.UpdateTrip)
	trips.DELETE("/:id", h.tripHTTP.DeleteTrip)
	trips.POST("/:id/dispatch", h.tripHTTP.DispatchTrip)
	trips.POST("/:id/complete", h.tripHTTP.CompleteTrip)

	maintenance := protected.Group("/maintenance")
	maintenance.POST("", h.maintenanceHTTP.CreateLog)
	maintenance.GET("", h.maintenanceHTTP.ListLogs)
	maintenance.PUT("/:id", h.maintenanceHTTP.UpdateLog)
	maintenance.DELETE("/:id", h.maintenanceHTTP.DeleteLog)

	fuel := protected.Group("/fuel")
	fuel.POST("", h.fuelHTTP.LogFuel)
	fuel.GET("", h.fuelHTTP.ListFuelLogs)
	fuel.PUT("/:id", h.fuelHTTP.UpdateFuelLog)
	fuel.DELETE("/:id", h.fuelHTTP.DeleteFuelLog)

	analytics := protected.Group("/analytics")
	analytics.GET("/dashboard", h.analyticsHTTP.DashboardStats)
	analytics.GET("/vehicles", h.analyticsHTTP.VehicleAnalytics)
}
