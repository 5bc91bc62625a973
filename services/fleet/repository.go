package fleet

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fleetflow/fleetflow/internal/pkg/models"
)

// VehicleRepo defines vehicle data access operations.
// Vehicle.status is never written directly by callers outside the trip and
// maintenance unit-of-work methods; manual changes go through SetStatus.
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks -source=repository.go
type VehicleRepo interface {
	Create(ctx context.Context, vehicle *models.Vehicle) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
	GetByLicensePlate(ctx context.Context, plate string) (*models.Vehicle, error)
	List(ctx context.Context) ([]models.Vehicle, error)
	Update(ctx context.Context, id uuid.UUID, patch models.VehiclePatch) (*models.Vehicle, error)
	SetStatus(ctx context.Context, id uuid.UUID, status models.VehicleStatus, expected ...models.VehicleStatus) error
	SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error
	// LockInShopForWindow flips every non-deleted AVAILABLE vehicle with a
	// maintenance record dated inside [dayStart, dayEnd) to IN_SHOP in a
	// single statement. Idempotent; returns the number of vehicles locked.
	LockInShopForWindow(ctx context.Context, dayStart, dayEnd time.Time) (int64, error)
}

// DriverRepo defines driver data access operations
type DriverRepo interface {
	Create(ctx context.Context, driver *models.Driver) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Driver, error)
	GetByLicenseNumber(ctx context.Context, licenseNumber string) (*models.Driver, error)
	List(ctx context.Context) ([]models.Driver, error)
	Update(ctx context.Context, id uuid.UUID, patch models.DriverPatch) (*models.Driver, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TripRepo defines trip data access operations. Dispatch, Complete and
// DeleteWithCleanup are multi-record units of work: every write inside them
// commits atomically or not at all.
type TripRepo interface {
	Create(ctx context.Context, trip *models.Trip) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Trip, error)
	List(ctx context.Context) ([]models.TripDetail, error)
	UpdateDraft(ctx context.Context, id uuid.UUID, patch models.TripPatch) (*models.Trip, error)
	// Dispatch moves the trip DRAFT→DISPATCHED and locks its vehicle and
	// driver. Every transition is a status-guarded update so concurrent
	// dispatches cannot double-lock.
	Dispatch(ctx context.Context, trip *models.Trip) error
	// Complete moves the trip DISPATCHED→COMPLETED, records the end odometer
	// and revenue, advances the vehicle odometer and frees both resources.
	Complete(ctx context.Context, trip *models.Trip, endOdometer, revenue float64) (*models.Trip, error)
	// DeleteWithCleanup removes the trip, frees its vehicle and driver when
	// the trip was DISPATCHED, and cascades deletion of attributed fuel logs.
	DeleteWithCleanup(ctx context.Context, trip *models.Trip) error
}

// MaintenanceRepo defines maintenance data access operations. The mutating
// methods are units of work that keep the owning vehicle's shop lock
// consistent with the full set of records dated inside the given day window.
type MaintenanceRepo interface {
	CreateScheduled(ctx context.Context, m *models.Maintenance, lockVehicle bool) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Maintenance, error)
	List(ctx context.Context) ([]models.MaintenanceDetail, error)
	UpdateRescheduled(ctx context.Context, id uuid.UUID, patch models.MaintenancePatch, dayStart, dayEnd time.Time) (*models.Maintenance, error)
	DeleteReleasing(ctx context.Context, m *models.Maintenance, dayStart, dayEnd time.Time) error
}

// FuelLogRepo defines fuel log data access operations
type FuelLogRepo interface {
	Create(ctx context.Context, log *models.FuelLog) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.FuelLog, error)
	List(ctx context.Context) ([]models.FuelLogDetail, error)
	Update(ctx context.Context, id uuid.UUID, patch models.FuelLogPatch) (*models.FuelLog, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AnalyticsRepo defines the read-only aggregate queries behind the dashboard
type AnalyticsRepo interface {
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
	VehicleAnalytics(ctx context.Context) ([]models.VehicleAnalytics, error)
}

// UserRepo defines operator account data access operations
type UserRepo interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
