package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/fleetflow/fleetflow/internal/pkg/apperrors"
	"github.com/fleetflow/fleetflow/internal/pkg/models"
	"github.com/fleetflow/fleetflow/services/fleet"
)

// FuelUC manages fuel purchases and their attribution to trips
type FuelUC struct {
	cfg         *models.Config
	fuelRepo    fleet.FuelLogRepo
	vehicleRepo fleet.VehicleRepo
	tripRepo    fleet.TripRepo
	logger      *logrus.Logger
}

// NewFuelUC creates a new fuel usecase
func NewFuelUC(
	cfg *models.Config,
	fuelRepo fleet.FuelLogRepo,
	vehicleRepo fleet.VehicleRepo,
	tripRepo fleet.TripRepo,
	logger *logrus.Logger,
) *FuelUC {
	return &FuelUC{
		cfg:         cfg,
		fuelRepo:    fuelRepo,
		vehicleRepo: vehicleRepo,
		tripRepo:    tripRepo,
		logger:      logger,
	}
}

// LogFuel records a fuel purchase. When the purchase is attributed to a trip
// the trip must exist and belong to the same vehicle.
func (uc *FuelUC) LogFuel(ctx context.Context, req models.CreateFuelLogRequest) (*models.FuelLog, error) {
	vehicle, err := uc.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.IsDeleted() {
		return nil, apperrors.New(apperrors.KindNotFound, "Vehicle not found")
	}

	if req.TripID != nil {
		trip, err := uc.tripRepo.GetByID(ctx, *req.TripID)
		if err != nil {
			return nil, err
		}
		if trip.VehicleID != req.VehicleID {
			return nil, apperrors.New(apperrors.KindValidation,
				"Trip does not belong to the given vehicle")
		}
	}

	log := &models.FuelLog{
		VehicleID: req.VehicleID,
		TripID:    req.TripID,
		Liters:    req.Liters,
		Cost:      req.Cost,
		Date:      req.Date,
	}
	if err := uc.fuelRepo.Create(ctx, log); err != nil {
		return nil, err
	}

	uc.logger.WithFields(logrus.Fields{
		"fuel_log_id": log.ID,
		"vehicle_id":  log.VehicleID,
		"liters":      log.Liters,
	}).Info("Fuel purchase logged")
	return log, nil
}

// UpdateFuelLog applies a partial update to a fuel log
func (uc *FuelUC) UpdateFuelLog(ctx context.Context, id uuid.UUID, patch models.FuelLogPatch) (*models.FuelLog, error) {
	return uc.fuelRepo.Update(ctx, id, patch)
}

// DeleteFuelLog removes a fuel log
func (uc *FuelUC) DeleteFuelLog(ctx context.Context, id uuid.UUID) error {
	if err := uc.fuelRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.WithField("fuel_log_id", id).Info("Fuel log deleted")
	return nil
}

// ListFuelLogs returns all fuel logs with vehicle summaries
func (uc *FuelUC) ListFuelLogs(ctx context.Context) ([]models.FuelLogDetail, error) {
	return uc.fuelRepo.List(ctx)
}
