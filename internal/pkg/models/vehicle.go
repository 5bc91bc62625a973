package models

import (
	"time"

	"github.com/google/uuid"
)

// VehicleStatus represents the operational state of a vehicle
type VehicleStatus string

const (
	VehicleStatusAvailable VehicleStatus = "AVAILABLE"
	VehicleStatusOnTrip    VehicleStatus = "ON_TRIP"
	VehicleStatusInShop    VehicleStatus = "IN_SHOP"
	VehicleStatusRetired   VehicleStatus = "RETIRED"
)

// VehicleType represents the class of a vehicle
type VehicleType string

const (
	VehicleTypeTruck VehicleType = "TRUCK"
	VehicleTypeVan   VehicleType = "VAN"
	VehicleTypeBike  VehicleType = "BIKE"
)

// Vehicle represents a fleet vehicle
type Vehicle struct {
	ID              uuid.UUID     `json:"id" db:"id"`
	Name            string        `json:"name" db:"name"`
	LicensePlate    string        `json:"licensePlate" db:"license_plate"`
	Type            VehicleType   `json:"type" db:"type"`
	MaxCapacity     float64       `json:"maxCapacity" db:"max_capacity"`
	Odometer        float64       `json:"odometer" db:"odometer"`
	AcquisitionCost float64       `json:"acquisitionCost" db:"acquisition_cost"`
	Status          VehicleStatus `json:"status" db:"status"`
	DeletedAt       *time.Time    `json:"deletedAt,omitempty" db:"deleted_at"`
	CreatedAt       time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time     `json:"updatedAt" db:"updated_at"`
}

// IsDeleted reports whether the vehicle has been soft-deleted
func (v *Vehicle) IsDeleted() bool {
	return v.DeletedAt != nil
}

// VehiclePatch holds optional fields for a vehicle update
type VehiclePatch struct {
	Name            *string        `json:"name,omitempty"`
	LicensePlate    *string        `json:"licensePlate,omitempty"`
	Type            *VehicleType   `json:"type,omitempty"`
	MaxCapacity     *float64       `json:"maxCapacity,omitempty"`
	Odometer        *float64       `json:"odometer,omitempty"`
	AcquisitionCost *float64       `json:"acquisitionCost,omitempty"`
	Status          *VehicleStatus `json:"status,omitempty"`
}

// VehicleSummary is the subset of vehicle fields joined into trip and
// maintenance listings
type VehicleSummary struct {
	ID           uuid.UUID   `json:"id" db:"id"`
	Name         string      `json:"name" db:"name"`
	LicensePlate string      `json:"licensePlate" db:"license_plate"`
	Type         VehicleType `json:"type" db:"type"`
}
