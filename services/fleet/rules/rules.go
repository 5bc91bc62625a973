// Package rules contains the pure eligibility predicates consulted by the
// trip and maintenance coordinators. Functions here never touch storage; they
// operate on already-fetched records and an explicit reference time.
package rules

import (
	"time"

	"github.com/fleetflow/fleetflow/internal/pkg/apperrors"
	"github.com/fleetflow/fleetflow/internal/pkg/models"
)

// CanAssignVehicle reports whether a vehicle may be committed to a new trip
// carrying the given cargo. A nil return means assignable; otherwise the
// error distinguishes availability from capacity failures.
func CanAssignVehicle(v *models.Vehicle, cargoWeight float64) error {
	if v == nil || v.IsDeleted() || v.Status != models.VehicleStatusAvailable {
		return apperrors.New(apperrors.KindResourceUnavailable, "Vehicle is not available")
	}
	if cargoWeight > v.MaxCapacity {
		return apperrors.Newf(apperrors.KindCapacityExceeded,
			"Cargo weight (%.0fkg) exceeds vehicle max capacity (%.0fkg)", cargoWeight, v.MaxCapacity)
	}
	return nil
}

// CanAssignDriver reports whether a driver may be committed to a new trip at
// the given time.
func CanAssignDriver(d *models.Driver, now time.Time) error {
	if d == nil || d.Status != models.DriverStatusOnDuty {
		return apperrors.New(apperrors.KindDriverUnavailable, "Driver is not on duty")
	}
	if d.LicenseExpiry.Before(now) {
		return apperrors.Newf(apperrors.KindLicenseExpired,
			"Driver license expired on %s", d.LicenseExpiry.Format("2006-01-02"))
	}
	return nil
}

// DayWindow returns the [start, end) bounds of the calendar day containing
// now, in now's location.
func DayWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}

// IsMaintenanceToday reports whether date falls within the calendar day
// containing now.
func IsMaintenanceToday(date, now time.Time) bool {
	start, end := DayWindow(now)
	return !date.Before(start) && date.Before(end)
}

// IsPastServiceDate reports whether date falls on a calendar day strictly
// before today. Same-day service dates are not past.
func IsPastServiceDate(date, now time.Time) bool {
	// Normalize both to server-local calendar days before comparing.
	d := date.In(now.Location())
	dayStart := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location())
	todayStart, _ := DayWindow(now)
	return dayStart.Before(todayStart)
}
