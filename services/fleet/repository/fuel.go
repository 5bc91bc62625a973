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

// FuelLogRepo provides fuel log persistence backed by Postgres
type FuelLogRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewFuelLogRepository creates a new fuel log repository
func NewFuelLogRepository(cfg *models.Config, db *sqlx.DB) *FuelLogRepo {
	return &FuelLogRepo{cfg: cfg, db: db}
}

// Create inserts a new fuel log
func (r *FuelLogRepo) Create(ctx context.Context, log *models.FuelLog) error {
	log.ID = uuid.New()
	now := time.Now()
	log.CreatedAt = now
	log.UpdatedAt = now

	query := `
		INSERT INTO fuel_logs (
			id, vehicle_id, trip_id, liters, cost, date, created_at, updated_at
		) VALUES (
			:id, :vehicle_id, :trip_id, :liters, :cost, :date, :created_at, :updated_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, log); err != nil {
		return fmt.Errorf("failed to insert fuel log: %w", err)
	}
	return nil
}

// GetByID retrieves a fuel log by ID
func (r *FuelLogRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.FuelLog, error) {
	query := `
		SELECT id, vehicle_id, trip_id, liters, cost, date, created_at, updated_at
		FROM fuel_logs
		WHERE id = $1
	`
	var log models.FuelLog
	if err := r.db.GetContext(ctx, &log, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindNotFound, "Fuel log not found")
		}
		return nil, fmt.Errorf("failed to get fuel log: %w", err)
	}
	return &log, nil
}

type fuelLogDetailRow struct {
	models.FuelLog
	VehicleName         string             `db:"vehicle_name"`
	VehicleLicensePlate string             `db:"vehicle_license_plate"`
	VehicleType         models.VehicleType `db:"vehicle_type"`
}

// List retrieves all fuel logs joined with vehicle summaries, most recent
// purchase first.
func (r *FuelLogRepo) List(ctx context.Context) ([]models.FuelLogDetail, error) {
	query := `
		SELECT f.id, f.vehicle_id, f.trip_id, f.liters, f.cost, f.date,
			f.created_at, f.updated_at,
			v.name AS vehicle_name,
			v.license_plate AS vehicle_license_plate,
			v.type AS vehicle_type
		FROM fuel_logs f
		JOIN vehicles v ON v.id = f.vehicle_id
		ORDER BY f.date DESC
	`
	rows := []fuelLogDetailRow{}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list fuel logs: %w", err)
	}

	details := make([]models.FuelLogDetail, 0, len(rows))
	for _, row := range rows {
		details = append(details, models.FuelLogDetail{
			FuelLog: row.FuelLog,
			Vehicle: models.VehicleSummary{
				ID:           row.VehicleID,
				Name:         row.VehicleName,
				LicensePlate: row.VehicleLicensePlate,
				Type:         row.VehicleType,
			},
		})
	}
	return details, nil
}

// Update applies a partial update and returns the updated fuel log
func (r *FuelLogRepo) Update(ctx context.Context, id uuid.UUID, patch models.FuelLogPatch) (*models.FuelLog, error) {
	sets := []string{"updated_at = NOW()"}
	args := map[string]interface{}{"id": id}

	if patch.Liters != nil {
		sets = append(sets, "liters = :liters")
		args["liters"] = *patch.Liters
	}
	if patch.Cost != nil {
		sets = append(sets, "cost = :cost")
		args["cost"] = *patch.Cost
	}
	if patch.Date != nil {
		sets = append(sets, "date = :date")
		args["date"] = *patch.Date
	}

	query := fmt.Sprintf("UPDATE fuel_logs SET %s WHERE id = :id", strings.Join(sets, ", "))
	result, err := r.db.NamedExecContext(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("failed to update fuel log: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return nil, apperrors.New(apperrors.KindNotFound, "Fuel log not found")
	}

	return r.GetByID(ctx, id)
}

// Delete removes a fuel log permanently
func (r *FuelLogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM fuel_logs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete fuel log: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return apperrors.New(apperrors.KindNotFound, "Fuel log not found")
	}
	return nil
}
