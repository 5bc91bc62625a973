package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fleetflow/fleetflow/internal/pkg/apperrors"
	"github.com/fleetflow/fleetflow/internal/pkg/models"
)

func TestCanAssignVehicle_Available(t *testing.T) {
	v := &models.Vehicle{Status: models.VehicleStatusAvailable, MaxCapacity: 1000}

	assert.NoError(t, CanAssignVehicle(v, 800))
}

func TestCanAssignVehicle_NotAvailable(t *testing.T) {
	for _, status := range []models.VehicleStatus{
		models.VehicleStatusOnTrip,
		models.VehicleStatusInShop,
		models.VehicleStatusRetired,
	} {
		v := &models.Vehicle{Status: status, MaxCapacity: 1000}

		err := CanAssignVehicle(v, 100)
		assert.Error(t, err)
		assert.Equal(t, apperrors.KindResourceUnavailable, apperrors.KindOf(err))
	}
}

func TestCanAssignVehicle_SoftDeleted(t *testing.T) {
	deletedAt := time.Now()
	v := &models.Vehicle{Status: models.VehicleStatusAvailable, MaxCapacity: 1000, DeletedAt: &deletedAt}

	err := CanAssignVehicle(v, 100)
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindResourceUnavailable, apperrors.KindOf(err))
}

func TestCanAssignVehicle_CapacityExceeded(t *testing.T) {
	v := &models.Vehicle{Status: models.VehicleStatusAvailable, MaxCapacity: 1000}

	err := CanAssignVehicle(v, 1200)
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindCapacityExceeded, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "Cargo weight (1200kg) exceeds vehicle max capacity (1000kg)")
}

func TestCanAssignVehicle_ExactCapacity(t *testing.T) {
	v := &models.Vehicle{Status: models.VehicleStatusAvailable, MaxCapacity: 1000}

	assert.NoError(t, CanAssignVehicle(v, 1000))
}

func TestCanAssignDriver_OnDuty(t *testing.T) {
	now := time.Now()
	d := &models.Driver{Status: models.DriverStatusOnDuty, LicenseExpiry: now.AddDate(1, 0, 0)}

	assert.NoError(t, CanAssignDriver(d, now))
}

func TestCanAssignDriver_NotOnDuty(t *testing.T) {
	now := time.Now()
	for _, status := range []models.DriverStatus{
		models.DriverStatusOffDuty,
		models.DriverStatusSuspended,
		models.DriverStatusOnTrip,
	} {
		d := &models.Driver{Status: status, LicenseExpiry: now.AddDate(1, 0, 0)}

		err := CanAssignDriver(d, now)
		assert.Error(t, err)
		assert.Equal(t, apperrors.KindDriverUnavailable, apperrors.KindOf(err))
	}
}

func TestCanAssignDriver_LicenseExpired(t *testing.T) {
	now := time.Now()
	d := &models.Driver{Status: models.DriverStatusOnDuty, LicenseExpiry: now.AddDate(0, 0, -1)}

	err := CanAssignDriver(d, now)
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindLicenseExpired, apperrors.KindOf(err))
}

func TestDayWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	start, end := DayWindow(now)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), end)
}

func TestIsMaintenanceToday(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	assert.True(t, IsMaintenanceToday(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), now))
	assert.True(t, IsMaintenanceToday(time.Date(2025, 6, 15, 23, 59, 59, 0, time.UTC), now))
	assert.False(t, IsMaintenanceToday(time.Date(2025, 6, 14, 23, 59, 59, 0, time.UTC), now))
	assert.False(t, IsMaintenanceToday(time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), now))
}

func TestIsPastServiceDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	// Same calendar day is not past, even earlier in the day.
	assert.False(t, IsPastServiceDate(time.Date(2025, 6, 15, 1, 0, 0, 0, time.UTC), now))
	assert.False(t, IsPastServiceDate(time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), now))
	assert.True(t, IsPastServiceDate(time.Date(2025, 6, 14, 23, 0, 0, 0, time.UTC), now))
}
