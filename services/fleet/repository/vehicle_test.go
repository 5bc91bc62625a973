package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/fleetflow/fleetflow/internal/pkg/apperrors"
	"github.com/fleetflow/fleetflow/internal/pkg/models"
	"github.com/fleetflow/fleetflow/services/fleet/repository"
)

func TestCreateVehicle_Insert(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewVehicleRepository(&models.Config{}, db)

	vehicle := &models.Vehicle{
		Name:         "Truck 7",
		LicensePlate: "B 7777 XY",
		Type:         models.VehicleTypeTruck,
		MaxCapacity:  2000,
		Status:       models.VehicleStatusAvailable,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO vehicles")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), vehicle)
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, vehicle.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateVehicle_DuplicatePlate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewVehicleRepository(&models.Config{}, db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO vehicles")).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), &models.Vehicle{LicensePlate: "B 7777 XY"})
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindDuplicateKey, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "License plate already exists")
}

func TestGetVehicleByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewVehicleRepository(&models.Config{}, db)

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, license_plate")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), id)
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestUpdateVehicle_StatusNeverWritten(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewVehicleRepository(&models.Config{}, db)

	id := uuid.New()
	name := "Truck 7 (refit)"

	mock.ExpectExec(`UPDATE vehicles SET updated_at = NOW\(\), name = .+ WHERE id = .+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, license_plate")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "status"}).
			AddRow(id, name, models.VehicleStatusAvailable))

	updated, err := repo.Update(context.Background(), id, models.VehiclePatch{Name: &name})
	assert.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetStatus_GuardMiss(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewVehicleRepository(&models.Config{}, db)

	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE vehicles SET status = $1")).
		WithArgs(models.VehicleStatusRetired, id, models.VehicleStatusAvailable, models.VehicleStatusRetired).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetStatus(context.Background(), id, models.VehicleStatusRetired,
		models.VehicleStatusAvailable, models.VehicleStatusRetired)
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidTransition, apperrors.KindOf(err))
}

func TestSoftDelete_AlreadyDeleted(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewVehicleRepository(&models.Config{}, db)

	id := uuid.New()
	at := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE vehicles")).
		WithArgs(at, models.VehicleStatusRetired, id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SoftDelete(context.Background(), id, at)
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestLockInShopForWindow_CountsLockedVehicles(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewVehicleRepository(&models.Config{}, db)

	dayStart, dayEnd := dayWindowUTC(2025, 6, 15)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE vehicles")).
		WithArgs(models.VehicleStatusInShop, models.VehicleStatusAvailable, dayStart, dayEnd).
		WillReturnResult(sqlmock.NewResult(0, 3))

	locked, err := repo.LockInShopForWindow(context.Background(), dayStart, dayEnd)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), locked)
	assert.NoError(t, mock.ExpectationsWereMet())
}
