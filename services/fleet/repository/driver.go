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

// DriverRepo provides driver persistence backed by Postgres
type DriverRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewDriverRepository creates a new driver repository
func NewDriverRepository(cfg *models.Config, db *sqlx.DB) *DriverRepo {
	return &DriverRepo{cfg: cfg, db: db}
}

// Create inserts a new driver
func (r *DriverRepo) Create(ctx context.Context, driver *models.Driver) error {
	driver.ID = uuid.New()
	now := time.Now()
	driver.CreatedAt = now
	driver.UpdatedAt = now

	query := `
		INSERT INTO drivers (
			id, name, license_number, license_expiry, category, status,
			safety_score, created_at, updated_at
		) VALUES (
			:id, :name, :license_number, :license_expiry, :category, :status,
			:safety_score, :created_at, :updated_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, driver); err != nil {
		if isUniqueViolation(err) {
			return apperrors.New(apperrors.KindDuplicateKey, "License number already exists")
		}
		return fmt.Errorf("failed to insert driver: %w", err)
	}
	return nil
}

// GetByID retrieves a driver by ID
func (r *DriverRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Driver, error) {
	query := `
		SELECT id, name, license_number, license_expiry, category, status,
			safety_score, created_at, updated_at
		FROM drivers
		WHERE id = $1
	`
	var driver models.Driver
	if err := r.db.GetContext(ctx, &driver, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindNotFound, "Driver not found")
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	return &driver, nil
}

// GetByLicenseNumber retrieves a driver by license number
func (r *DriverRepo) GetByLicenseNumber(ctx context.Context, licenseNumber string) (*models.Driver, error) {
	query := `
		SELECT id, name, license_number, license_expiry, category, status,
			safety_score, created_at, updated_at
		FROM drivers
		WHERE license_number = $1
	`
	var driver models.Driver
	if err := r.db.GetContext(ctx, &driver, query, licenseNumber); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindNotFound, "Driver not found")
		}
		return nil, fmt.Errorf("failed to get driver by license: %w", err)
	}
	return &driver, nil
}

// List retrieves all drivers
func (r *DriverRepo) List(ctx context.Context) ([]models.Driver, error) {
	query := `
		SELECT id, name, license_number, license_expiry, category, status,
			safety_score, created_at, updated_at
		FROM drivers
		ORDER BY created_at DESC
	`
	drivers := []models.Driver{}
	if err := r.db.SelectContext(ctx, &drivers, query); err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}
	return drivers, nil
}

// Update applies a partial update and returns the updated driver
func (r *DriverRepo) Update(ctx context.Context, id uuid.UUID, patch models.DriverPatch) (*models.Driver, error) {
	sets := []string{"updated_at = NOW()"}
	args := map[string]interface{}{"id": id}

	if patch.Name != nil {
		sets = append(sets, "name = :name")
		args["name"] = *patch.Name
	}
	if patch.LicenseNumber != nil {
		sets = append(sets, "license_number = :license_number")
		args["license_number"] = *patch.LicenseNumber
	}
	if patch.LicenseExpiry != nil {
		sets = append(sets, "license_expiry = :license_expiry")
		args["license_expiry"] = *patch.LicenseExpiry
	}
	if patch.Category != nil {
		sets = append(sets, "category = :category")
		args["category"] = *patch.Category
	}
	if patch.Status != nil {
		sets = append(sets, "status = :status")
		args["status"] = *patch.Status
	}
	if patch.SafetyScore != nil {
		sets = append(sets, "safety_score = :safety_score")
		args["safety_score"] = *patch.SafetyScore
	}

	query := fmt.Sprintf("UPDATE drivers SET %s WHERE id = :id", strings.Join(sets, ", "))
	result, err := r.db.NamedExecContext(ctx, query, args)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.New(apperrors.KindDuplicateKey, "License number already exists")
		}
		return nil, fmt.Errorf("failed to update driver: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return nil, apperrors.New(apperrors.KindNotFound, "Driver not found")
	}

	return r.GetByID(ctx, id)
}

// Delete removes a driver permanently
func (r *DriverRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM drivers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete driver: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return apperrors.New(apperrors.KindNotFound, "Driver not found")
	}
	return nil
}
