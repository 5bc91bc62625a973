package models

import (
	"time"

	"github.com/google/uuid"
)

// FuelLog represents a fuel purchase, optionally attributed to a trip
type FuelLog struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	VehicleID uuid.UUID  `json:"vehicleId" db:"vehicle_id"`
	TripID    *uuid.UUID `json:"tripId,omitempty" db:"trip_id"`
	Liters    float64    `json:"liters" db:"liters"`
	Cost      float64    `json:"cost" db:"cost"`
	Date      time.Time  `json:"date" db:"date"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
}

// FuelLogDetail is a fuel log joined with its vehicle summary
type FuelLogDetail struct {
	FuelLog
	Vehicle VehicleSummary `json:"vehicle"`
}

// CreateFuelLogRequest is the payload for recording a fuel purchase
type CreateFuelLogRequest struct {
	VehicleID uuid.UUID  `json:"vehicleId"`
	TripID    *uuid.UUID `json:"tripId,omitempty"`
	Liters    float64    `json:"liters"`
	Cost      float64    `json:"cost"`
	Date      time.Time  `json:"date"`
}

// FuelLogPatch holds optional fields for a fuel log update
type FuelLogPatch struct {
	Liters *float64   `json:"liters,omitempty"`
	Cost   *float64   `json:"cost,omitempty"`
	Date   *time.Time `json:"date,omitempty"`
}
