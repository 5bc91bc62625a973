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

// TripUC coordinates the trip lifecycle. Eligibility is checked against
// fresh reads before every transition; the repository's status-guarded
// updates are the backstop against races between the read and the write.
type TripUC struct {
	cfg         *models.Config
	tripRepo    fleet.TripRepo
	vehicleRepo fleet.VehicleRepo
	driverRepo  fleet.DriverRepo
	fuelRepo    fleet.FuelLogRepo
	fleetGW     fleet.FleetGW
	logger      *logrus.Logger
	now         func() time.Time
}

// NewTripUC creates a new trip usecase
func NewTripUC(
	cfg *models.Config,
	tripRepo fleet.TripRepo,
	vehicleRepo fleet.VehicleRepo,
	driverRepo fleet.DriverRepo,
	fuelRepo fleet.FuelLogRepo,
	fleetGW fleet.FleetGW,
	logger *logrus.Logger,
) *TripUC {
	return &TripUC{
		cfg:         cfg,
		tripRepo:    tripRepo,
		vehicleRepo: vehicleRepo,
		driverRepo:  driverRepo,
		fuelRepo:    fuelRepo,
		fleetGW:     fleetGW,
		logger:      logger,
		now:         time.Now,
	}
}

// CreateTrip validates the requested vehicle and driver and creates a draft
// trip. The start odometer defaults to the vehicle's current reading when the
// request omits it.
func (uc *TripUC) CreateTrip(ctx context.Context, req models.CreateTripRequest) (*models.Trip, error) {
	vehicle, err := uc.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}
	if err := rules.CanAssignVehicle(vehicle, req.CargoWeight); err != nil {
		return nil, err
	}

	driver, err := uc.driverRepo.GetByID(ctx, req.DriverID)
	if err != nil {
		return nil, err
	}
	if err := rules.CanAssignDriver(driver, uc.now()); err != nil {
		return nil, err
	}

	startOdometer := vehicle.Odometer
	if req.StartOdometer != nil {
		startOdometer = *req.StartOdometer
	}

	trip := &models.Trip{
		VehicleID:     req.VehicleID,
		DriverID:      req.DriverID,
		StartOdometer: startOdometer,
		CargoWeight:   req.CargoWeight,
		Status:        models.TripStatusDraft,
		Origin:        req.Origin,
		Destination:   req.Destination,
	}
	if err := uc.tripRepo.Create(ctx, trip); err != nil {
		return nil, err
	}

	uc.logger.WithFields(logrus.Fields{
		"trip_id":    trip.ID,
		"vehicle_id": trip.VehicleID,
		"driver_id":  trip.DriverID,
	}).Info("Trip created")
	return trip, nil
}

// DispatchTrip moves a draft trip to DISPATCHED, re-validating the vehicle
// and driver against their current state before committing the transition.
func (uc *TripUC) DispatchTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	trip, err := uc.tripRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if trip.Status != models.TripStatusDraft {
		return nil, apperrors.New(apperrors.KindInvalidTransition, "Trip is not in draft status")
	}

	vehicle, err := uc.vehicleRepo.GetByID(ctx, trip.VehicleID)
	if err != nil {
		return nil, err
	}
	if err := rules.CanAssignVehicle(vehicle, trip.CargoWeight); err != nil {
		return nil, err
	}

	driver, err := uc.driverRepo.GetByID(ctx, trip.DriverID)
	if err != nil {
		return nil, err
	}
	if err := rules.CanAssignDriver(driver, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.tripRepo.Dispatch(ctx, trip); err != nil {
		return nil, err
	}

	if err := uc.fleetGW.PublishTripDispatched(ctx, models.TripDispatchedEvent{
		TripID:       trip.ID,
		VehicleID:    trip.VehicleID,
		DriverID:     trip.DriverID,
		CargoWeight:  trip.CargoWeight,
		DispatchedAt: uc.now(),
	}); err != nil {
		uc.logger.WithError(err).WithField("trip_id", trip.ID).Warn("Failed to publish trip dispatched event")
	}

	uc.logger.WithFields(logrus.Fields{
		"trip_id":    trip.ID,
		"vehicle_id": trip.VehicleID,
		"driver_id":  trip.DriverID,
	}).Info("Trip dispatched")
	return uc.tripRepo.GetByID(ctx, id)
}

// CompleteTrip moves a dispatched trip to COMPLETED, advancing the vehicle
// odometer and freeing both resources. When the request carries fuel figures
// a fuel log attributed to the trip is recorded best-effort after the
// completion commits; a failure there is logged, never surfaced.
func (uc *TripUC) CompleteTrip(ctx context.Context, id uuid.UUID, req models.CompleteTripRequest) (*models.Trip, error) {
	trip, err := uc.tripRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if trip.Status != models.TripStatusDispatched {
		return nil, apperrors.New(apperrors.KindInvalidTransition, "Trip is not dispatched")
	}
	if req.EndOdometer < trip.StartOdometer {
		return nil, apperrors.Newf(apperrors.KindOdometerRegression,
			"End odometer (%.0f) cannot be less than start odometer (%.0f)",
			req.EndOdometer, trip.StartOdometer)
	}

	completed, err := uc.tripRepo.Complete(ctx, trip, req.EndOdometer, req.Revenue)
	if err != nil {
		return nil, err
	}

	if req.FuelLiters != nil && req.FuelCost != nil {
		tripID := completed.ID
		fuelLog := &models.FuelLog{
			VehicleID: completed.VehicleID,
			TripID:    &tripID,
			Liters:    *req.FuelLiters,
			Cost:      *req.FuelCost,
			Date:      uc.now(),
		}
		if err := uc.fuelRepo.Create(ctx, fuelLog); err != nil {
			uc.logger.WithError(err).WithField("trip_id", completed.ID).
				Warn("Failed to record fuel log for completed trip")
		}
	}

	if err := uc.fleetGW.PublishTripCompleted(ctx, models.TripCompletedEvent{
		TripID:      completed.ID,
		VehicleID:   completed.VehicleID,
		DriverID:    completed.DriverID,
		EndOdometer: req.EndOdometer,
		Revenue:     req.Revenue,
		CompletedAt: uc.now(),
	}); err != nil {
		uc.logger.WithError(err).WithField("trip_id", completed.ID).Warn("Failed to publish trip completed event")
	}

	uc.logger.WithFields(logrus.Fields{
		"trip_id":      completed.ID,
		"end_odometer": req.EndOdometer,
		"revenue":      req.Revenue,
	}).Info("Trip completed")
	return completed, nil
}

// UpdateTrip edits a draft trip. Changing the vehicle re-runs the full
// assignment check; changing only the cargo re-checks capacity against the
// trip's current vehicle.
func (uc *TripUC) UpdateTrip(ctx context.Context, id uuid.UUID, patch models.TripPatch) (*models.Trip, error) {
	trip, err := uc.tripRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if trip.Status != models.TripStatusDraft {
		return nil, apperrors.New(apperrors.KindInvalidTransition, "Only draft trips can be edited")
	}

	if patch.VehicleID != nil || patch.CargoWeight != nil {
		vehicleID := trip.VehicleID
		if patch.VehicleID != nil {
			vehicleID = *patch.VehicleID
		}
		cargoWeight := trip.CargoWeight
		if patch.CargoWeight != nil {
			cargoWeight = *patch.CargoWeight
		}

		vehicle, err := uc.vehicleRepo.GetByID(ctx, vehicleID)
		if err != nil {
			return nil, err
		}
		if patch.VehicleID != nil && *patch.VehicleID != trip.VehicleID {
			if err := rules.CanAssignVehicle(vehicle, cargoWeight); err != nil {
				return nil, err
			}
		} else if cargoWeight > vehicle.MaxCapacity {
			return nil, apperrors.Newf(apperrors.KindCapacityExceeded,
				"Cargo weight (%.0fkg) exceeds vehicle max capacity (%.0fkg)", cargoWeight, vehicle.MaxCapacity)
		}
	}

	if patch.DriverID != nil && *patch.DriverID != trip.DriverID {
		driver, err := uc.driverRepo.GetByID(ctx, *patch.DriverID)
		if err != nil {
			return nil, err
		}
		if err := rules.CanAssignDriver(driver, uc.now()); err != nil {
			return nil, err
		}
	}

	return uc.tripRepo.UpdateDraft(ctx, id, patch)
}

// DeleteTrip removes a trip, releasing its vehicle and driver when it was
// dispatched and cascading deletion of attributed fuel logs.
func (uc *TripUC) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	trip, err := uc.tripRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.tripRepo.DeleteWithCleanup(ctx, trip); err != nil {
		return err
	}

	if err := uc.fleetGW.PublishTripDeleted(ctx, models.TripDeletedEvent{
		TripID:    trip.ID,
		DeletedAt: uc.now(),
	}); err != nil {
		uc.logger.WithError(err).WithField("trip_id", trip.ID).Warn("Failed to publish trip deleted event")
	}

	uc.logger.WithFields(logrus.Fields{
		"trip_id": trip.ID,
		"status":  trip.Status,
	}).Info("Trip deleted")
	return nil
}

// ListTrips returns all trips with vehicle and driver summaries
func (uc *TripUC) ListTrips(ctx context.Context) ([]models.TripDetail, error) {
	return uc.tripRepo.List(ctx)
}
