package models

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus represents the lifecycle state of a trip
type TripStatus string

const (
	TripStatusDraft      TripStatus = "DRAFT"
	TripStatusDispatched TripStatus = "DISPATCHED"
	TripStatusCompleted  TripStatus = "COMPLETED"
	// TripStatusCancelled exists in the data model but no operation sets it
	// yet; cancellation semantics are not defined.
	TripStatusCancelled TripStatus = "CANCELLED"
)

// Trip represents a cargo trip assigning a vehicle and a driver
type Trip struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	VehicleID     uuid.UUID  `json:"vehicleId" db:"vehicle_id"`
	DriverID      uuid.UUID  `json:"driverId" db:"driver_id"`
	StartOdometer float64    `json:"startOdometer" db:"start_odometer"`
	EndOdometer   *float64   `json:"endOdometer,omitempty" db:"end_odometer"`
	CargoWeight   float64    `json:"cargoWeight" db:"cargo_weight"`
	Revenue       float64    `json:"revenue" db:"revenue"`
	Status        TripStatus `json:"status" db:"status"`
	Origin        string     `json:"origin" db:"origin"`
	Destination   string     `json:"destination" db:"destination"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at"`
}

// TripDetail is a trip joined with vehicle and driver summaries for listings
type TripDetail struct {
	Trip
	Vehicle VehicleSummary `json:"vehicle"`
	Driver  DriverSummary  `json:"driver"`
}

// CreateTripRequest is the payload for creating a draft trip
type CreateTripRequest struct {
	VehicleID     uuid.UUID `json:"vehicleId"`
	DriverID      uuid.UUID `json:"driverId"`
	CargoWeight   float64   `json:"cargoWeight"`
	StartOdometer *float64  `json:"startOdometer,omitempty"`
	Origin        string    `json:"origin,omitempty"`
	Destination   string    `json:"destination,omitempty"`
}

// CompleteTripRequest is the payload for completing a dispatched trip.
// FuelLiters and FuelCost are optional; when both are present a fuel log is
// recorded as a best-effort side effect after the completion commits.
type CompleteTripRequest struct {
	EndOdometer float64  `json:"endOdometer"`
	Revenue     float64  `json:"revenue"`
	FuelLiters  *float64 `json:"fuelLiters,omitempty"`
	FuelCost    *float64 `json:"fuelCost,omitempty"`
}

// TripPatch holds optional fields for editing a draft trip
type TripPatch struct {
	VehicleID     *uuid.UUID `json:"vehicleId,omitempty"`
	DriverID      *uuid.UUID `json:"driverId,omitempty"`
	CargoWeight   *float64   `json:"cargoWeight,omitempty"`
	StartOdometer *float64   `json:"startOdometer,omitempty"`
	Revenue       *float64   `json:"revenue,omitempty"`
	Origin        *string    `json:"origin,omitempty"`
	Destination   *string    `json:"destination,omitempty"`
}
