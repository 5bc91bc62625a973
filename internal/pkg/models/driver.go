package models

import (
	"time"

	"github.com/google/uuid"
)

// DriverStatus represents the duty state of a driver
type DriverStatus string

const (
	DriverStatusOffDuty   DriverStatus = "OFF_DUTY"
	DriverStatusOnDuty    DriverStatus = "ON_DUTY"
	DriverStatusSuspended DriverStatus = "SUSPENDED"
	DriverStatusOnTrip    DriverStatus = "ON_TRIP"
)

// Driver represents a fleet driver
type Driver struct {
	ID            uuid.UUID    `json:"id" db:"id"`
	Name          string       `json:"name" db:"name"`
	LicenseNumber string       `json:"licenseNumber" db:"license_number"`
	LicenseExpiry time.Time    `json:"licenseExpiry" db:"license_expiry"`
	Category      string       `json:"category" db:"category"`
	Status        DriverStatus `json:"status" db:"status"`
	SafetyScore   float64      `json:"safetyScore" db:"safety_score"`
	CreatedAt     time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time    `json:"updatedAt" db:"updated_at"`
}

// DriverPatch holds optional fields for a driver update
type DriverPatch struct {
	Name          *string       `json:"name,omitempty"`
	LicenseNumber *string       `json:"licenseNumber,omitempty"`
	LicenseExpiry *time.Time    `json:"licenseExpiry,omitempty"`
	Category      *string       `json:"category,omitempty"`
	Status        *DriverStatus `json:"status,omitempty"`
	SafetyScore   *float64      `json:"safetyScore,omitempty"`
}

// DriverSummary is the subset of driver fields joined into trip listings
type DriverSummary struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	LicenseNumber string    `json:"licenseNumber" db:"license_number"`
}
