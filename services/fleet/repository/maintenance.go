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

// MaintenanceRepo provides maintenance persistence backed by Postgres. Its
// mutating operations keep the owning vehicle's shop lock consistent with
// the full set of records dated today, never assuming a single record per
// vehicle per day.
type MaintenanceRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewMaintenanceRepository creates a new maintenance repository
func NewMaintenanceRepository(cfg *models.Config, db *sqlx.DB) *MaintenanceRepo {
	return &MaintenanceRepo{cfg: cfg, db: db}
}

// CreateScheduled inserts a maintenance record and, when the service is due
// today, locks the vehicle in the same transaction.
func (r *MaintenanceRepo) CreateScheduled(ctx context.Context, m *models.Maintenance, lockVehicle bool) error {
	m.ID = uuid.New()
	now := time.Now()
	m.CreatedAt = now
	m.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO maintenance_logs (
			id, vehicle_id, description, cost, date, created_at, updated_at
		) VALUES (
			:id, :vehicle_id, :description, :cost, :date, :created_at, :updated_at
		)
	`
	if _, err = tx.NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("failed to insert maintenance log: %w", err)
	}

	if lockVehicle {
		if _, err = tx.ExecContext(ctx, `
			UPDATE vehicles SET status = $1, updated_at = NOW()
			WHERE id = $2
		`, models.VehicleStatusInShop, m.VehicleID); err != nil {
			return fmt.Errorf("failed to lock vehicle: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit maintenance creation: %w", err)
	}
	return nil
}

// GetByID retrieves a maintenance record by ID
func (r *MaintenanceRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Maintenance, error) {
	query := `
		SELECT id, vehicle_id, description, cost, date, created_at, updated_at
		FROM maintenance_logs
		WHERE id = $1
	`
	var m models.Maintenance
	if err := r.db.GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindNotFound, "Maintenance record not found")
		}
		return nil, fmt.Errorf("failed to get maintenance log: %w", err)
	}
	return &m, nil
}

type maintenanceDetailRow struct {
	models.Maintenance
	VehicleName         string             `db:"vehicle_name"`
	VehicleLicensePlate string             `db:"vehicle_license_plate"`
	VehicleType         models.VehicleType `db:"vehicle_type"`
}

// List retrieves all maintenance records joined with vehicle summaries,
// most recent service date first.
func (r *MaintenanceRepo) List(ctx context.Context) ([]models.MaintenanceDetail, error) {
	query := `
		SELECT m.id, m.vehicle_id, m.description, m.cost, m.date,
			m.created_at, m.updated_at,
			v.name AS vehicle_name,
			v.license_plate AS vehicle_license_plate,
			v.type AS vehicle_type
		FROM maintenance_logs m
		JOIN vehicles v ON v.id = m.vehicle_id
		ORDER BY m.date DESC
	`
	rows := []maintenanceDetailRow{}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list maintenance logs: %w", err)
	}

	details := make([]models.MaintenanceDetail, 0, len(rows))
	for _, row := range rows {
		details = append(details, models.MaintenanceDetail{
			Maintenance: row.Maintenance,
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

// UpdateRescheduled applies a partial update, then recomputes the vehicle's
// shop lock against [dayStart, dayEnd): a record now dated today asserts the
// lock; otherwise the lock is released only when no other record for the
// vehicle remains inside the window.
func (r *MaintenanceRepo) UpdateRescheduled(ctx context.Context, id uuid.UUID, patch models.MaintenancePatch, dayStart, dayEnd time.Time) (*models.Maintenance, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	sets := []string{"updated_at = NOW()"}
	args := map[string]interface{}{"id": id}

	if patch.Description != nil {
		sets = append(sets, "description = :description")
		args["description"] = *patch.Description
	}
	if patch.Cost != nil {
		sets = append(sets, "cost = :cost")
		args["cost"] = *patch.Cost
	}
	if patch.Date != nil {
		sets = append(sets, "date = :date")
		args["date"] = *patch.Date
	}

	query := fmt.Sprintf("UPDATE maintenance_logs SET %s WHERE id = :id", strings.Join(sets, ", "))
	result, err := tx.NamedExecContext(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("failed to update maintenance log: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return nil, apperrors.New(apperrors.KindNotFound, "Maintenance record not found")
	}

	var updated models.Maintenance
	if err = tx.GetContext(ctx, &updated, `
		SELECT id, vehicle_id, description, cost, date, created_at, updated_at
		FROM maintenance_logs
		WHERE id = $1
	`, id); err != nil {
		return nil, fmt.Errorf("failed to reload maintenance log: %w", err)
	}

	nowToday := !updated.Date.Before(dayStart) && updated.Date.Before(dayEnd)
	if nowToday {
		if _, err = tx.ExecContext(ctx, `
			UPDATE vehicles SET status = $1, updated_at = NOW()
			WHERE id = $2
		`, models.VehicleStatusInShop, updated.VehicleID); err != nil {
			return nil, fmt.Errorf("failed to lock vehicle: %w", err)
		}
	} else {
		var otherToday int
		if err = tx.GetContext(ctx, &otherToday, `
			SELECT COUNT(*) FROM maintenance_logs
			WHERE vehicle_id = $1 AND id <> $2 AND date >= $3 AND date < $4
		`, updated.VehicleID, id, dayStart, dayEnd); err != nil {
			return nil, fmt.Errorf("failed to count remaining maintenance: %w", err)
		}
		if otherToday == 0 {
			if _, err = tx.ExecContext(ctx, `
				UPDATE vehicles SET status = $1, updated_at = NOW()
				WHERE id = $2 AND status = $3
			`, models.VehicleStatusAvailable, updated.VehicleID, models.VehicleStatusInShop); err != nil {
				return nil, fmt.Errorf("failed to release vehicle: %w", err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit maintenance update: %w", err)
	}
	return &updated, nil
}

// DeleteReleasing removes a maintenance record and releases the vehicle's
// shop lock when no other record for the vehicle remains dated inside
// [dayStart, dayEnd).
func (r *MaintenanceRepo) DeleteReleasing(ctx context.Context, m *models.Maintenance, dayStart, dayEnd time.Time) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `DELETE FROM maintenance_logs WHERE id = $1`, m.ID)
	if err != nil {
		return fmt.Errorf("failed to delete maintenance log: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return apperrors.New(apperrors.KindNotFound, "Maintenance record not found")
	}

	var remainingToday int
	if err = tx.GetContext(ctx, &remainingToday, `
		SELECT COUNT(*) FROM maintenance_logs
		WHERE vehicle_id = $1 AND date >= $2 AND date < $3
	`, m.VehicleID, dayStart, dayEnd); err != nil {
		return fmt.Errorf("failed to count remaining maintenance: %w", err)
	}

	if remainingToday == 0 {
		// Only release a shop lock; ON_TRIP or RETIRED vehicles keep their
		// current status.
		if _, err = tx.ExecContext(ctx, `
			UPDATE vehicles SET status = $1, updated_at = NOW()
			WHERE id = $2 AND status = $3
		`, models.VehicleStatusAvailable, m.VehicleID, models.VehicleStatusInShop); err != nil {
			return fmt.Errorf("failed to release vehicle: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit maintenance deletion: %w", err)
	}
	return nil
}
