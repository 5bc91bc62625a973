package fleet

import (
	"context"

	"github.com/google/uuid"

	"github.com/fleetflow/fleetflow/internal/pkg/models"
)

// TripUC defines the trip lifecycle coordinator
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks -source=usecase.go
type TripUC interface {
	CreateTrip(ctx context.Context, req models.CreateTripRequest) (*models.Trip, error)
	DispatchTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error)
	CompleteTrip(ctx context.Context, id uuid.UUID, req models.CompleteTripRequest) (*models.Trip, error)
	UpdateTrip(ctx context.Context, id uuid.UUID, patch models.TripPatch) (*models.Trip, error)
	DeleteTrip(ctx context.Context, id uuid.UUID) error
	ListTrips(ctx context.Context) ([]models.TripDetail, error)
}

// MaintenanceUC defines the maintenance scheduling coordinator
type MaintenanceUC interface {
	CreateLog(ctx context.Context, req models.CreateMaintenanceRequest) (*models.Maintenance, error)
	UpdateLog(ctx context.Context, id uuid.UUID, patch models.MaintenancePatch) (*models.Maintenance, error)
	DeleteLog(ctx context.Context, id uuid.UUID) error
	ListLogs(ctx context.Context) ([]models.MaintenanceDetail, error)
}

// VehicleUC defines vehicle registry operations
type VehicleUC interface {
	RegisterVehicle(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error)
	GetVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
	// ListVehicles runs the maintenance reconciliation pass before reading so
	// shop locks reflect records whose day has arrived since the last write.
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	UpdateVehicle(ctx context.Context, id uuid.UUID, patch models.VehiclePatch) (*models.Vehicle, error)
	RetireVehicle(ctx context.Context, id uuid.UUID) error
}

// DriverUC defines driver registry operations
type DriverUC interface {
	RegisterDriver(ctx context.Context, driver *models.Driver) (*models.Driver, error)
	GetDriver(ctx context.Context, id uuid.UUID) (*models.Driver, error)
	ListDrivers(ctx context.Context) ([]models.Driver, error)
	UpdateDriver(ctx context.Context, id uuid.UUID, patch models.DriverPatch) (*models.Driver, error)
	DeleteDriver(ctx context.Context, id uuid.UUID) error
}

// FuelUC defines fuel attribution operations
type FuelUC interface {
	LogFuel(ctx context.Context, req models.CreateFuelLogRequest) (*models.FuelLog, error)
	UpdateFuelLog(ctx context.Context, id uuid.UUID, patch models.FuelLogPatch) (*models.FuelLog, error)
	DeleteFuelLog(ctx context.Context, id uuid.UUID) error
	ListFuelLogs(ctx context.Context) ([]models.FuelLogDetail, error)
}

// AnalyticsUC defines the read-only dashboard figures
type AnalyticsUC interface {
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
	VehicleAnalytics(ctx context.Context) ([]models.VehicleAnalytics, error)
}

// AuthUC defines operator account management
type AuthUC interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
}
