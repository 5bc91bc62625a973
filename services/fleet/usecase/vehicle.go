package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/fleetflow/fleetflow/internal/pkg/apperrors"
	"github.com/fleetflow/fleetflow/internal/pkg/models"
	"github.com/fleetflow/fleetflow/services/fleet"
	"github.com/fleetflow/fleetflow/services/fleet/rules"
)

// VehicleUC manages the vehicle registry. Status is mostly derived from the
// trip and maintenance coordinators; the only manual transitions allowed here
// are between AVAILABLE and RETIRED.
type VehicleUC struct {
	cfg         *models.Config
	vehicleRepo fleet.VehicleRepo
	fleetGW     fleet.FleetGW
	logger      *logrus.Logger
	now         func() time.Time
}

// NewVehicleUC creates a new vehicle usecase
func NewVehicleUC(
	cfg *models.Config,
	vehicleRepo fleet.VehicleRepo,
	fleetGW fleet.FleetGW,
	logger *logrus.Logger,
) *VehicleUC {
	return &VehicleUC{
		cfg:         cfg,
		vehicleRepo: vehicleRepo,
		fleetGW:     fleetGW,
		logger:      logger,
		now:         time.Now,
	}
}

// RegisterVehicle adds a vehicle to the fleet. New vehicles start AVAILABLE.
func (uc *VehicleUC) RegisterVehicle(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
	vehicle.Status = models.VehicleStatusAvailable
	if err := uc.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}

	uc.logger.WithFields(logrus.Fields{
		"vehicle_id":    vehicle.ID,
		"license_plate": vehicle.LicensePlate,
	}).Info("Vehicle registered")
	return vehicle, nil
}

// GetVehicle retrieves a vehicle by ID. Soft-deleted vehicles are reported
// as not found.
func (uc *VehicleUC) GetVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	vehicle, err := uc.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle.IsDeleted() {
		return nil, apperrors.New(apperrors.KindNotFound, "Vehicle not found")
	}
	return vehicle, nil
}

// ListVehicles reconciles shop locks before reading: any available vehicle
// with a maintenance record whose day has arrived since the last write is
// flipped to IN_SHOP first, so the listing never shows a stale AVAILABLE.
func (uc *VehicleUC) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	dayStart, dayEnd := rules.DayWindow(uc.now())
	locked, err := uc.vehicleRepo.LockInShopForWindow(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	if locked > 0 {
		uc.logger.WithField("vehicles_locked", locked).Info("Reconciled maintenance shop locks")
	}

	return uc.vehicleRepo.List(ctx)
}

// UpdateVehicle applies a partial update. A status change in the patch is
// restricted to the AVAILABLE/RETIRED pair; ON_TRIP and IN_SHOP belong to
// the coordinators and cannot be set by hand.
func (uc *VehicleUC) UpdateVehicle(ctx context.Context, id uuid.UUID, patch models.VehiclePatch) (*models.Vehicle, error) {
	if patch.Status != nil {
		switch *patch.Status {
		case models.VehicleStatusAvailable, models.VehicleStatusRetired:
		default:
			return nil, apperrors.Newf(apperrors.KindValidation,
				"Vehicle status cannot be set to %s manually", *patch.Status)
		}
		if err := uc.vehicleRepo.SetStatus(ctx, id, *patch.Status,
			models.VehicleStatusAvailable, models.VehicleStatusRetired); err != nil {
			return nil, err
		}
		patch.Status = nil
	}

	return uc.vehicleRepo.Update(ctx, id, patch)
}

// RetireVehicle soft-deletes a vehicle. An on-trip vehicle cannot be retired.
func (uc *VehicleUC) RetireVehicle(ctx context.Context, id uuid.UUID) error {
	vehicle, err := uc.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if vehicle.IsDeleted() {
		return apperrors.New(apperrors.KindNotFound, "Vehicle not found")
	}
	if vehicle.Status == models.VehicleStatusOnTrip {
		return apperrors.New(apperrors.KindDependentResourceActive,
			"Vehicle is on an active trip and cannot be retired")
	}

	retiredAt := uc.now()
	if err := uc.vehicleRepo.SoftDelete(ctx, id, retiredAt); err != nil {
		return err
	}

	if err := uc.fleetGW.PublishVehicleRetired(ctx, models.VehicleRetiredEvent{
		VehicleID: id,
		RetiredAt: retiredAt,
	}); err != nil {
		uc.logger.WithError(err).WithField("vehicle_id", id).Warn("Failed to publish vehicle retired event")
	}

	uc.logger.WithField("vehicle_id", id).Info("Vehicle retired")
	return nil
}
