package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/fleetflow/fleetflow/internal/pkg/apperrors"
	"github.com/fleetflow/fleetflow/internal/pkg/models"
)

// TripRepo provides trip persistence backed by Postgres. The dispatch,
// complete and delete operations span the trips, vehicles, drivers and
// fuel_logs tables inside a single transaction.
type TripRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(cfg *models.Config, db *sqlx.DB) *TripRepo {
	return &TripRepo{cfg: cfg, db: db}
}

// Create inserts a new draft trip
func (r *TripRepo) Create(ctx context.Context, trip *models.Trip) error {
	trip.ID = uuid.New()
	now := time.Now()
	trip.CreatedAt = now
	trip.UpdatedAt = now

	query := `
		INSERT INTO trips (
			id, vehicle_id, driver_id, start_odometer, end_odometer,
			cargo_weight, revenue, status, origin, destination,
			created_at, updated_at
		) VALUES (
			:id, :vehicle_id, :driver_id, :start_odometer, :end_odometer,
			:cargo_weight, :revenue, :status, :origin, :destination,
			:created_at, :updated_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, trip); err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}
	return nil
}

// GetByID retrieves a trip by ID
func (r *TripRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	query := `
		SELECT id, vehicle_id, driver_id, start_odometer, end_odometer,
			cargo_weight, revenue, status, origin, destination,
			created_at, updated_at
		FROM trips
		WHERE id = $1
	`
	var trip models.Trip
	if err := r.db.GetContext(ctx, &trip, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindNotFound, "Trip not found")
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return &trip, nil
}

type tripDetailRow struct {
	models.Trip
	VehicleName         string             `db:"vehicle_name"`
	VehicleLicensePlate string             `db:"vehicle_license_plate"`
	VehicleType         models.VehicleType `db:"vehicle_type"`
	DriverName          string             `db:"driver_name"`
	DriverLicenseNumber string             `db:"driver_license_number"`
}

// List retrieves all trips joined with vehicle and driver summaries, newest
// first.
func (r *TripRepo) List(ctx context.Context) ([]models.TripDetail, error) {
	query := `
		SELECT t.id, t.vehicle_id, t.driver_id, t.start_odometer,
			t.end_odometer, t.cargo_weight, t.revenue, t.status, t.origin,
			t.destination, t.created_at, t.updated_at,
			v.name AS vehicle_name,
			v.license_plate AS vehicle_license_plate,
			v.type AS vehicle_type,
			d.name AS driver_name,
			d.license_number AS driver_license_number
		FROM trips t
		JOIN vehicles v ON v.id = t.vehicle_id
		JOIN drivers d ON d.id = t.driver_id
		ORDER BY t.created_at DESC
	`
	rows := []tripDetailRow{}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}

	details := make([]models.TripDetail, 0, len(rows))
	for _, row := range rows {
		details = append(details, models.TripDetail{
			Trip: row.Trip,
			Vehicle: models.VehicleSummary{
				ID:           row.VehicleID,
				Name:         row.VehicleName,
				LicensePlate: row.VehicleLicensePlate,
				Type:         row.VehicleType,
			},
			Driver: models.DriverSummary{
				ID:            row.DriverID,
				Name:          row.DriverName,
				LicenseNumber: row.DriverLicenseNumber,
			},
		})
	}
	return details, nil
}

// UpdateDraft applies a partial update guarded on DRAFT status. The guard is
// the race backstop; callers pre-validate for friendlier messages.
func (r *TripRepo) UpdateDraft(ctx context.Context, id uuid.UUID, patch models.TripPatch) (*models.Trip, error) {
	sets := []string{"updated_at = NOW()"}
	args := map[string]interface{}{"id": id, "draft": models.TripStatusDraft}

	if patch.VehicleID != nil {
		sets = append(sets, "vehicle_id = :vehicle_id")
		args["vehicle_id"] = *patch.VehicleID
	}
	if patch.DriverID != nil {
		sets = append(sets, "driver_id = :driver_id")
		args["driver_id"] = *patch.DriverID
	}
	if patch.CargoWeight != nil {
		sets = append(sets, "cargo_weight = :cargo_weight")
		args["cargo_weight"] = *patch.CargoWeight
	}
	if patch.StartOdometer != nil {
		sets = append(sets, "start_odometer = :start_odometer")
		args["start_odometer"] = *patch.StartOdometer
	}
	if patch.Revenue != nil {
		sets = append(sets, "revenue = :revenue")
		args["revenue"] = *patch.Revenue
	}
	if patch.Origin != nil {
		sets = append(sets, "origin = :origin")
		args["origin"] = *patch.Origin
	}
	if patch.Destination != nil {
		sets = append(sets, "destination = :destination")
		args["destination"] = *patch.Destination
	}

	query := fmt.Sprintf(
		"UPDATE trips SET %s WHERE id = :id AND status = :draft",
		strings.Join(sets, ", "),
	)
	result, err := r.db.NamedExecContext(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("failed to update trip: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return nil, apperrors.New(apperrors.KindInvalidTransition, "Only draft trips can be edited")
	}

	return r.GetByID(ctx, id)
}

// Dispatch moves the trip to DISPATCHED and locks its vehicle and driver.
// Each write is guarded on the expected current status so a concurrent
// dispatch observes zero affected rows and aborts.
func (r *TripRepo) Dispatch(ctx context.Context, trip *models.Trip) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE trips SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`, models.TripStatusDispatched, trip.ID, models.TripStatusDraft)
	if err != nil {
		return fmt.Errorf("failed to dispatch trip: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return apperrors.New(apperrors.KindInvalidTransition, "Trip is not in draft status")
	}

	result, err = tx.ExecContext(ctx, `
		UPDATE vehicles SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3 AND deleted_at IS NULL
	`, models.VehicleStatusOnTrip, trip.VehicleID, models.VehicleStatusAvailable)
	if err != nil {
		return fmt.Errorf("failed to lock vehicle: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return apperrors.New(apperrors.KindResourceUnavailable, "Vehicle is not available")
	}

	result, err = tx.ExecContext(ctx, `
		UPDATE drivers SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`, models.DriverStatusOnTrip, trip.DriverID, models.DriverStatusOnDuty)
	if err != nil {
		return fmt.Errorf("failed to lock driver: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return apperrors.New(apperrors.KindDriverUnavailable, "Driver is not on duty")
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit dispatch: %w", err)
	}
	return nil
}

// Complete moves the trip to COMPLETED, records the end odometer and revenue,
// advances the vehicle odometer and frees the vehicle and driver.
func (r *TripRepo) Complete(ctx context.Context, trip *models.Trip, endOdometer, revenue float64) (*models.Trip, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE trips
		SET status = $1, end_odometer = $2, revenue = $3, updated_at = NOW()
		WHERE id = $4 AND status = $5
	`, models.TripStatusCompleted, endOdometer, revenue, trip.ID, models.TripStatusDispatched)
	if err != nil {
		return nil, fmt.Errorf("failed to complete trip: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return nil, apperrors.New(apperrors.KindInvalidTransition, "Trip is not dispatched")
	}

	if _, err = tx.ExecContext(ctx, `
		UPDATE vehicles SET status = $1, odometer = $2, updated_at = NOW()
		WHERE id = $3
	`, models.VehicleStatusAvailable, endOdometer, trip.VehicleID); err != nil {
		return nil, fmt.Errorf("failed to release vehicle: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `
		UPDATE drivers SET status = $1, updated_at = NOW()
		WHERE id = $2
	`, models.DriverStatusOnDuty, trip.DriverID); err != nil {
		return nil, fmt.Errorf("failed to release driver: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit completion: %w", err)
	}

	return r.GetByID(ctx, trip.ID)
}

// DeleteWithCleanup removes the trip and its attributed fuel logs. A
// dispatched trip also releases its vehicle and driver in the same
// transaction.
func (r *TripRepo) DeleteWithCleanup(ctx context.Context, trip *models.Trip) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if trip.Status == models.TripStatusDispatched {
		if _, err = tx.ExecContext(ctx, `
			UPDATE vehicles SET status = $1, updated_at = NOW()
			WHERE id = $2
		`, models.VehicleStatusAvailable, trip.VehicleID); err != nil {
			return fmt.Errorf("failed to release vehicle: %w", err)
		}

		if _, err = tx.ExecContext(ctx, `
			UPDATE drivers SET status = $1, updated_at = NOW()
			WHERE id = $2
		`, models.DriverStatusOnDuty, trip.DriverID); err != nil {
			return fmt.Errorf("failed to release driver: %w", err)
		}
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM fuel_logs WHERE trip_id = $1`, trip.ID); err != nil {
		return fmt.Errorf("failed to delete fuel logs: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM trips WHERE id = $1`, trip.ID)
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return apperrors.New(apperrors.KindNotFound, "Trip not found")
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit trip deletion: %w", err)
	}
	return nil
}
