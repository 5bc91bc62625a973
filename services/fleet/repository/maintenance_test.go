package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/fleetflow/fleetflow/internal/pkg/apperrors"
	"github.com/fleetflow/fleetflow/internal/pkg/models"
	"github.com/fleetflow/fleetflow/services/fleet/repository"
)

func dayWindowUTC(y int, m time.Month, d int) (time.Time, time.Time) {
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

func TestCreateScheduled_TodayLocksVehicle(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewMaintenanceRepository(&models.Config{}, db)

	m := &models.Maintenance{
		VehicleID:   uuid.New(),
		Description: "Brake pads",
		Cost:        300,
		Date:        time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO maintenance_logs")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE vehicles SET status = $1")).
		WithArgs(models.VehicleStatusInShop, m.VehicleID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.CreateScheduled(context.Background(), m, true)
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, m.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateScheduled_FutureDateSkipsLock(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewMaintenanceRepository(&models.Config{}, db)

	m := &models.Maintenance{VehicleID: uuid.New(), Date: time.Now().AddDate(0, 0, 5)}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO maintenance_logs")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.CreateScheduled(context.Background(), m, false)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRescheduled_MovedOffTodayReleasesVehicle(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewMaintenanceRepository(&models.Config{}, db)

	id := uuid.New()
	vehicleID := uuid.New()
	dayStart, dayEnd := dayWindowUTC(2025, 6, 15)
	newDate := time.Date(2025, 6, 20, 9, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE maintenance_logs SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, vehicle_id, description, cost, date")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "vehicle_id", "description", "cost", "date"}).
			AddRow(id, vehicleID, "Brake pads", 300.0, newDate))
	// No other record for the vehicle is dated today, so the shop lock is
	// released.
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM maintenance_logs")).
		WithArgs(vehicleID, id, dayStart, dayEnd).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE vehicles SET status = $1")).
		WithArgs(models.VehicleStatusAvailable, vehicleID, models.VehicleStatusInShop).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	updated, err := repo.UpdateRescheduled(context.Background(), id, models.MaintenancePatch{Date: &newDate}, dayStart, dayEnd)
	assert.NoError(t, err)
	assert.Equal(t, newDate, updated.Date.UTC())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRescheduled_OtherRecordTodayKeepsLock(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewMaintenanceRepository(&models.Config{}, db)

	id := uuid.New()
	vehicleID := uuid.New()
	dayStart, dayEnd := dayWindowUTC(2025, 6, 15)
	newDate := time.Date(2025, 6, 20, 9, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE maintenance_logs SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, vehicle_id, description, cost, date")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "vehicle_id", "date"}).
			AddRow(id, vehicleID, newDate))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM maintenance_logs")).
		WithArgs(vehicleID, id, dayStart, dayEnd).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	// Lock stays: no vehicle update expected.
	mock.ExpectCommit()

	_, err := repo.UpdateRescheduled(context.Background(), id, models.MaintenancePatch{Date: &newDate}, dayStart, dayEnd)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRescheduled_MovedOntoTodayLocksVehicle(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewMaintenanceRepository(&models.Config{}, db)

	id := uuid.New()
	vehicleID := uuid.New()
	dayStart, dayEnd := dayWindowUTC(2025, 6, 15)
	newDate := time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE maintenance_logs SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, vehicle_id, description, cost, date")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "vehicle_id", "date"}).
			AddRow(id, vehicleID, newDate))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE vehicles SET status = $1")).
		WithArgs(models.VehicleStatusInShop, vehicleID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	_, err := repo.UpdateRescheduled(context.Background(), id, models.MaintenancePatch{Date: &newDate}, dayStart, dayEnd)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRescheduled_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewMaintenanceRepository(&models.Config{}, db)

	dayStart, dayEnd := dayWindowUTC(2025, 6, 15)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE maintenance_logs SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.UpdateRescheduled(context.Background(), uuid.New(), models.MaintenancePatch{}, dayStart, dayEnd)
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestDeleteReleasing_LastTodayRecordReleasesVehicle(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewMaintenanceRepository(&models.Config{}, db)

	m := &models.Maintenance{ID: uuid.New(), VehicleID: uuid.New()}
	dayStart, dayEnd := dayWindowUTC(2025, 6, 15)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM maintenance_logs WHERE id = $1")).
		WithArgs(m.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM maintenance_logs")).
		WithArgs(m.VehicleID, dayStart, dayEnd).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE vehicles SET status = $1")).
		WithArgs(models.VehicleStatusAvailable, m.VehicleID, models.VehicleStatusInShop).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.DeleteReleasing(context.Background(), m, dayStart, dayEnd)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteReleasing_OtherTodayRecordKeepsLock(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewMaintenanceRepository(&models.Config{}, db)

	m := &models.Maintenance{ID: uuid.New(), VehicleID: uuid.New()}
	dayStart, dayEnd := dayWindowUTC(2025, 6, 15)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM maintenance_logs WHERE id = $1")).
		WithArgs(m.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM maintenance_logs")).
		WithArgs(m.VehicleID, dayStart, dayEnd).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectCommit()

	err := repo.DeleteReleasing(context.Background(), m, dayStart, dayEnd)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteReleasing_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewMaintenanceRepository(&models.Config{}, db)

	m := &models.Maintenance{ID: uuid.New(), VehicleID: uuid.New()}
	dayStart, dayEnd := dayWindowUTC(2025, 6, 15)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM maintenance_logs WHERE id = $1")).
		WithArgs(m.ID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.DeleteReleasing(context.Background(), m, dayStart, dayEnd)
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}
