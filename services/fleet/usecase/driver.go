package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/fleetflow/fleetflow/internal/pkg/apperrors"
	"github.com/fleetflow/fleetflow/internal/pkg/models"
	"github.com/fleetflow/fleetflow/services/fleet"
)

// DriverUC manages the driver registry. ON_TRIP is owned by the trip
// coordinator; manual status changes may only move between OFF_DUTY, ON_DUTY
// and SUSPENDED.
type DriverUC struct {
	cfg        *models.Config
	driverRepo fleet.DriverRepo
	logger     *logrus.Logger
}

// NewDriverUC creates a new driver usecase
func NewDriverUC(cfg *models.Config, driverRepo fleet.DriverRepo, logger *logrus.Logger) *DriverUC {
	return &DriverUC{
		cfg:        cfg,
		driverRepo: driverRepo,
		logger:     logger,
	}
}

// RegisterDriver adds a driver to the roster. New drivers start OFF_DUTY.
func (uc *DriverUC) RegisterDriver(ctx context.Context, driver *models.Driver) (*models.Driver, error) {
	driver.Status = models.DriverStatusOffDuty
	if err := uc.driverRepo.Create(ctx, driver); err != nil {
		return nil, err
	}

	uc.logger.WithFields(logrus.Fields{
		"driver_id":      driver.ID,
		"license_number": driver.LicenseNumber,
	}).Info("Driver registered")
	return driver, nil
}

// GetDriver retrieves a driver by ID
func (uc *DriverUC) GetDriver(ctx context.Context, id uuid.UUID) (*models.Driver, error) {
	return uc.driverRepo.GetByID(ctx, id)
}

// ListDrivers returns all drivers
func (uc *DriverUC) ListDrivers(ctx context.Context) ([]models.Driver, error) {
	return uc.driverRepo.List(ctx)
}

// UpdateDriver applies a partial update. ON_TRIP cannot be set manually, and
// a driver currently on a trip cannot have their status changed by hand.
func (uc *DriverUC) UpdateDriver(ctx context.Context, id uuid.UUID, patch models.DriverPatch) (*models.Driver, error) {
	if patch.Status != nil {
		if *patch.Status == models.DriverStatusOnTrip {
			return nil, apperrors.New(apperrors.KindValidation,
				"Driver status cannot be set to ON_TRIP manually")
		}
		current, err := uc.driverRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if current.Status == models.DriverStatusOnTrip {
			return nil, apperrors.New(apperrors.KindDependentResourceActive,
				"Driver is on an active trip")
		}
	}

	return uc.driverRepo.Update(ctx, id, patch)
}

// DeleteDriver removes a driver. Deletion is blocked while the driver is on
// an active trip.
func (uc *DriverUC) DeleteDriver(ctx context.Context, id uuid.UUID) error {
	driver, err := uc.driverRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if driver.Status == models.DriverStatusOnTrip {
		return apperrors.New(apperrors.KindDependentResourceActive,
			"Driver is on an active trip and cannot be deleted")
	}

	if err := uc.driverRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.WithField("driver_id", id).Info("Driver deleted")
	return nil
}
