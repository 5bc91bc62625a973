package models

import (
	"time"

	"github.com/google/uuid"
)

// Maintenance represents a scheduled or performed service on a vehicle.
// Date is compared at calendar-day granularity when deciding whether the
// vehicle is locked in the shop.
type Maintenance struct {
	ID          uuid.UUID `json:"id" db:"id"`
	VehicleID   uuid.UUID `json:"vehicleId" db:"vehicle_id"`
	Description string    `json:"description" db:"description"`
	Cost        float64   `json:"cost" db:"cost"`
	Date        time.Time `json:"date" db:"date"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// MaintenanceDetail is a maintenance record joined with its vehicle summary
type MaintenanceDetail struct {
	Maintenance
	Vehicle VehicleSummary `json:"vehicle"`
}

// CreateMaintenanceRequest is the payload for scheduling maintenance
type CreateMaintenanceRequest struct {
	VehicleID   uuid.UUID `json:"vehicleId"`
	Description string    `json:"description"`
	Cost        float64   `json:"cost"`
	Date        time.Time `json:"date"`
}

// MaintenancePatch holds optional fields for a maintenance update
type MaintenancePatch struct {
	Description *string    `json:"description,omitempty"`
	Cost        *float64   `json:"cost,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
}
