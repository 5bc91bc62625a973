package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fleetflow/fleetflow/internal/pkg/models"
)

// AnalyticsRepo runs the read-only aggregate queries behind the dashboard
type AnalyticsRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(cfg *models.Config, db *sqlx.DB) *AnalyticsRepo {
	return &AnalyticsRepo{cfg: cfg, db: db}
}

// DashboardStats counts the fleet by status and computes utilization over the
// non-retired fleet. Retired and soft-deleted vehicles are excluded from all
// counts.
func (r *AnalyticsRepo) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = $1) AS active_fleet,
			COUNT(*) FILTER (WHERE status = $2) AS in_shop,
			COUNT(*) AS total_vehicles
		FROM vehicles
		WHERE deleted_at IS NULL AND status <> $3
	`
	if err := r.db.GetContext(ctx, &stats, query,
		models.VehicleStatusOnTrip, models.VehicleStatusInShop, models.VehicleStatusRetired); err != nil {
		return nil, fmt.Errorf("failed to query fleet counts: %w", err)
	}

	if err := r.db.GetContext(ctx, &stats.PendingTrips, `
		SELECT COUNT(*) FROM trips WHERE status = $1
	`, models.TripStatusDraft); err != nil {
		return nil, fmt.Errorf("failed to count pending trips: %w", err)
	}

	if stats.TotalVehicles > 0 {
		stats.Utilization = float64(stats.ActiveFleet) / float64(stats.TotalVehicles) * 100
	}
	return &stats, nil
}

// VehicleAnalytics aggregates revenue, fuel and maintenance spend per vehicle
// and derives ROI, fuel efficiency and cost per kilometer. Only completed
// trips contribute to revenue and distance.
func (r *AnalyticsRepo) VehicleAnalytics(ctx context.Context) ([]models.VehicleAnalytics, error) {
	query := `
		SELECT
			v.id, v.name, v.license_plate, v.acquisition_cost,
			COALESCE(t.total_revenue, 0) AS total_revenue,
			COALESCE(t.total_kilometers, 0) AS total_kilometers,
			COALESCE(f.total_fuel_cost, 0) AS total_fuel_cost,
			COALESCE(f.total_liters, 0) AS total_liters,
			COALESCE(m.total_maintenance_cost, 0) AS total_maintenance_cost
		FROM vehicles v
		LEFT JOIN (
			SELECT vehicle_id,
				SUM(revenue) AS total_revenue,
				SUM(end_odometer - start_odometer) AS total_kilometers
			FROM trips
			WHERE status = $1
			GROUP BY vehicle_id
		) t ON t.vehicle_id = v.id
		LEFT JOIN (
			SELECT vehicle_id,
				SUM(cost) AS total_fuel_cost,
				SUM(liters) AS total_liters
			FROM fuel_logs
			GROUP BY vehicle_id
		) f ON f.vehicle_id = v.id
		LEFT JOIN (
			SELECT vehicle_id,
				SUM(cost) AS total_maintenance_cost
			FROM maintenance_logs
			GROUP BY vehicle_id
		) m ON m.vehicle_id = v.id
		WHERE v.deleted_at IS NULL
		ORDER BY v.created_at DESC
	`
	rows := []models.VehicleAnalytics{}
	if err := r.db.SelectContext(ctx, &rows, query, models.TripStatusCompleted); err != nil {
		return nil, fmt.Errorf("failed to query vehicle analytics: %w", err)
	}

	for i := range rows {
		a := &rows[i]
		if a.AcquisitionCost > 0 {
			a.ROI = (a.TotalRevenue - a.OperationalCost()) / a.AcquisitionCost * 100
		}
		if a.TotalLiters > 0 {
			a.FuelEfficiency = a.TotalKilometers / a.TotalLiters
		}
		if a.TotalKilometers > 0 {
			a.CostPerKm = a.OperationalCost() / a.TotalKilometers
		}
	}
	return rows, nil
}
