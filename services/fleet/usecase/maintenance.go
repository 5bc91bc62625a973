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

// MaintenanceUC coordinates maintenance scheduling and the shop locks it
// induces on vehicles. All calendar-day decisions go through the injected
// clock so the day boundary is testable.
type MaintenanceUC struct {
	cfg             *models.Config
	maintenanceRepo fleet.MaintenanceRepo
	vehicleRepo     fleet.VehicleRepo
	fleetGW         fleet.FleetGW
	logger          *logrus.Logger
	now             func() time.Time
}

// NewMaintenanceUC creates a new maintenance usecase
func NewMaintenanceUC(
	cfg *models.Config,
	maintenanceRepo fleet.MaintenanceRepo,
	vehicleRepo fleet.VehicleRepo,
	fleetGW fleet.FleetGW,
	logger *logrus.Logger,
) *MaintenanceUC {
	return &MaintenanceUC{
		cfg:             cfg,
		maintenanceRepo: maintenanceRepo,
		vehicleRepo:     vehicleRepo,
		fleetGW:         fleetGW,
		logger:          logger,
		now:             time.Now,
	}
}

// CreateLog schedules maintenance for a vehicle. A past service date is
// rejected; a service dated today locks the vehicle in the shop atomically
// with the insert.
func (uc *MaintenanceUC) CreateLog(ctx context.Context, req models.CreateMaintenanceRequest) (*models.Maintenance, error) {
	now := uc.now()
	if rules.IsPastServiceDate(req.Date, now) {
		return nil, apperrors.New(apperrors.KindPastServiceDate, "Service date cannot be in the past")
	}

	vehicle, err := uc.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.IsDeleted() {
		return nil, apperrors.New(apperrors.KindNotFound, "Vehicle not found")
	}

	lockVehicle := rules.IsMaintenanceToday(req.Date, now)
	m := &models.Maintenance{
		VehicleID:   req.VehicleID,
		Description: req.Description,
		Cost:        req.Cost,
		Date:        req.Date,
	}
	if err := uc.maintenanceRepo.CreateScheduled(ctx, m, lockVehicle); err != nil {
		return nil, err
	}

	if err := uc.fleetGW.PublishMaintenanceScheduled(ctx, models.MaintenanceScheduledEvent{
		MaintenanceID: m.ID,
		VehicleID:     m.VehicleID,
		Date:          m.Date,
		VehicleLocked: lockVehicle,
	}); err != nil {
		uc.logger.WithError(err).WithField("maintenance_id", m.ID).
			Warn("Failed to publish maintenance scheduled event")
	}

	uc.logger.WithFields(logrus.Fields{
		"maintenance_id": m.ID,
		"vehicle_id":     m.VehicleID,
		"date":           m.Date,
		"vehicle_locked": lockVehicle,
	}).Info("Maintenance scheduled")
	return m, nil
}

// UpdateLog reschedules or edits a maintenance record. Moving the date onto
// today asserts the vehicle's shop lock; moving it off today releases the
// lock only when no other record for the vehicle is still dated today.
func (uc *MaintenanceUC) UpdateLog(ctx context.Context, id uuid.UUID, patch models.MaintenancePatch) (*models.Maintenance, error) {
	now := uc.now()
	if patch.Date != nil && rules.IsPastServiceDate(*patch.Date, now) {
		return nil, apperrors.New(apperrors.KindPastServiceDate, "Service date cannot be in the past")
	}

	dayStart, dayEnd := rules.DayWindow(now)
	updated, err := uc.maintenanceRepo.UpdateRescheduled(ctx, id, patch, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	uc.logger.WithFields(logrus.Fields{
		"maintenance_id": updated.ID,
		"vehicle_id":     updated.VehicleID,
		"date":           updated.Date,
	}).Info("Maintenance updated")
	return updated, nil
}

// DeleteLog removes a maintenance record, releasing the vehicle's shop lock
// when no other record dated today remains.
func (uc *MaintenanceUC) DeleteLog(ctx context.Context, id uuid.UUID) error {
	m, err := uc.maintenanceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	dayStart, dayEnd := rules.DayWindow(uc.now())
	if err := uc.maintenanceRepo.DeleteReleasing(ctx, m, dayStart, dayEnd); err != nil {
		return err
	}

	uc.logger.WithFields(logrus.Fields{
		"maintenance_id": m.ID,
		"vehicle_id":     m.VehicleID,
	}).Info("Maintenance deleted")
	return nil
}

// ListLogs returns all maintenance records with vehicle summaries
func (uc *MaintenanceUC) ListLogs(ctx context.Context) ([]models.MaintenanceDetail, error) {
	return uc.maintenanceRepo.List(ctx)
}
