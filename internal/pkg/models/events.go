package models

import (
	"time"

	"github.com/google/uuid"
)

// TripDispatchedEvent is published when a trip moves to DISPATCHED
type TripDispatchedEvent struct {
	TripID       uuid.UUID `json:"trip_id"`
	VehicleID    uuid.UUID `json:"vehicle_id"`
	DriverID     uuid.UUID `json:"driver_id"`
	CargoWeight  float64   `json:"cargo_weight"`
	DispatchedAt time.Time `json:"dispatched_at"`
}

// TripCompletedEvent is published when a trip moves to COMPLETED
type TripCompletedEvent struct {
	TripID      uuid.UUID `json:"trip_id"`
	VehicleID   uuid.UUID `json:"vehicle_id"`
	DriverID    uuid.UUID `json:"driver_id"`
	EndOdometer float64   `json:"end_odometer"`
	Revenue     float64   `json:"revenue"`
	CompletedAt time.Time `json:"completed_at"`
}

// TripDeletedEvent is published when a trip is removed
type TripDeletedEvent struct {
	TripID    uuid.UUID `json:"trip_id"`
	DeletedAt time.Time `json:"deleted_at"`
}

// MaintenanceScheduledEvent is published when a maintenance log is created
type MaintenanceScheduledEvent struct {
	MaintenanceID uuid.UUID `json:"maintenance_id"`
	VehicleID     uuid.UUID `json:"vehicle_id"`
	Date          time.Time `json:"date"`
	VehicleLocked bool      `json:"vehicle_locked"`
}

// VehicleRetiredEvent is published when a vehicle is soft-deleted
type VehicleRetiredEvent struct {
	VehicleID uuid.UUID `json:"vehicle_id"`
	RetiredAt time.Time `json:"retired_at"`
}
