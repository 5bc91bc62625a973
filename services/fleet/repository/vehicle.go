package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/fleetflow/fleetflow/internal/pkg/apperrors"
	"github.com/fleetflow/fleetflow/internal/pkg/models"
)

const pgUniqueViolation = "23505"

// VehicleRepo provides vehicle persistence backed by Postgres
type VehicleRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewVehicleRepository creates a new vehicle repository
func NewVehicleRepository(cfg *models.Config, db *sqlx.DB) *VehicleRepo {
	return &VehicleRepo{cfg: cfg, db: db}
}

// Create inserts a new vehicle
func (r *VehicleRepo) Create(ctx context.Context, vehicle *models.Vehicle) error {
	vehicle.ID = uuid.New()
	now := time.Now()
	vehicle.CreatedAt = now
	vehicle.UpdatedAt = now

	query := `
		INSERT INTO vehicles (
			id, name, license_plate, type, max_capacity, odometer,
			acquisition_cost, status, created_at, updated_at
		) VALUES (
			:id, :name, :license_plate, :type, :max_capacity, :odometer,
			:acquisition_cost, :status, :created_at, :updated_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, vehicle); err != nil {
		if isUniqueViolation(err) {
			return apperrors.New(apperrors.KindDuplicateKey, "License plate already exists")
		}
		return fmt.Errorf("failed to insert vehicle: %w", err)
	}
	return nil
}

// GetByID retrieves a vehicle by ID, including soft-deleted records
func (r *VehicleRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	query := `
		SELECT id, name, license_plate, type, max_capacity, odometer,
			acquisition_cost, status, deleted_at, created_at, updated_at
		FROM vehicles
		WHERE id = $1
	`
	var vehicle models.Vehicle
	if err := r.db.GetContext(ctx, &vehicle, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindNotFound, "Vehicle not found")
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return &vehicle, nil
}

// GetByLicensePlate retrieves a vehicle by its license plate
func (r *VehicleRepo) GetByLicensePlate(ctx context.Context, plate string) (*models.Vehicle, error) {
	query := `
		SELECT id, name, license_plate, type, max_capacity, odometer,
			acquisition_cost, status, deleted_at, created_at, updated_at
		FROM vehicles
		WHERE license_plate = $1
	`
	var vehicle models.Vehicle
	if err := r.db.GetContext(ctx, &vehicle, query, plate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindNotFound, "Vehicle not found")
		}
		return nil, fmt.Errorf("failed to get vehicle by plate: %w", err)
	}
	return &vehicle, nil
}

// List retrieves all non-deleted vehicles
func (r *VehicleRepo) List(ctx context.Context) ([]models.Vehicle, error) {
	query := `
		SELECT id, name, license_plate, type, max_capacity, odometer,
			acquisition_cost, status, deleted_at, created_at, updated_at
		FROM vehicles
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
	`
	vehicles := []models.Vehicle{}
	if err := r.db.SelectContext(ctx, &vehicles, query); err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return vehicles, nil
}

// Update applies a partial update and returns the updated vehicle. Status is
// deliberately not updatable here; it goes through SetStatus or the
// coordinator units of work.
func (r *VehicleRepo) Update(ctx context.Context, id uuid.UUID, patch models.VehiclePatch) (*models.Vehicle, error) {
	sets := []string{"updated_at = NOW()"}
	args := map[string]interface{}{"id": id}

	if patch.Name != nil {
		sets = append(sets, "name = :name")
		args["name"] = *patch.Name
	}
	if patch.LicensePlate != nil {
		sets = append(sets, "license_plate = :license_plate")
		args["license_plate"] = *patch.LicensePlate
	}
	if patch.Type != nil {
		sets = append(sets, "type = :type")
		args["type"] = *patch.Type
	}
	if patch.MaxCapacity != nil {
		sets = append(sets, "max_capacity = :max_capacity")
		args["max_capacity"] = *patch.MaxCapacity
	}
	if patch.Odometer != nil {
		sets = append(sets, "odometer = :odometer")
		args["odometer"] = *patch.Odometer
	}
	if patch.AcquisitionCost != nil {
		sets = append(sets, "acquisition_cost = :acquisition_cost")
		args["acquisition_cost"] = *patch.AcquisitionCost
	}

	query := fmt.Sprintf("UPDATE vehicles SET %s WHERE id = :id", strings.Join(sets, ", "))
	result, err := r.db.NamedExecContext(ctx, query, args)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.New(apperrors.KindDuplicateKey, "License plate already exists")
		}
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return nil, apperrors.New(apperrors.KindNotFound, "Vehicle not found")
	}

	return r.GetByID(ctx, id)
}

// SetStatus updates the vehicle status, optionally guarded by expected
// current values. A guard miss reports an invalid transition.
func (r *VehicleRepo) SetStatus(ctx context.Context, id uuid.UUID, status models.VehicleStatus, expected ...models.VehicleStatus) error {
	var (
		result sql.Result
		err    error
	)
	if len(expected) > 0 {
		query, qargs, qerr := sqlx.In(
			`UPDATE vehicles SET status = ?, updated_at = NOW() WHERE id = ? AND status IN (?)`,
			status, id, expected,
		)
		if qerr != nil {
			return fmt.Errorf("failed to build status query: %w", qerr)
		}
		result, err = r.db.ExecContext(ctx, r.db.Rebind(query), qargs...)
	} else {
		result, err = r.db.ExecContext(ctx,
			`UPDATE vehicles SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	}
	if err != nil {
		return fmt.Errorf("failed to set vehicle status: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		if len(expected) > 0 {
			return apperrors.Newf(apperrors.KindInvalidTransition,
				"Vehicle status cannot change to %s from its current state", status)
		}
		return apperrors.New(apperrors.KindNotFound, "Vehicle not found")
	}
	return nil
}

// SoftDelete marks the vehicle deleted and retires it
func (r *VehicleRepo) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE vehicles
		SET deleted_at = $1, status = $2, updated_at = NOW()
		WHERE id = $3 AND deleted_at IS NULL
	`, at, models.VehicleStatusRetired, id)
	if err != nil {
		return fmt.Errorf("failed to soft-delete vehicle: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return apperrors.New(apperrors.KindNotFound, "Vehicle not found")
	}
	return nil
}

// LockInShopForWindow asserts the shop lock for every available vehicle that
// has a maintenance record dated inside the window. Running it twice in a row
// is a no-op the second time.
func (r *VehicleRepo) LockInShopForWindow(ctx context.Context, dayStart, dayEnd time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE vehicles
		SET status = $1, updated_at = NOW()
		WHERE status = $2
		  AND deleted_at IS NULL
		  AND id IN (
			SELECT vehicle_id FROM maintenance_logs
			WHERE date >= $3 AND date < $4
		  )
	`, models.VehicleStatusInShop, models.VehicleStatusAvailable, dayStart, dayEnd)
	if err != nil {
		return 0, fmt.Errorf("failed to reconcile shop locks: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
