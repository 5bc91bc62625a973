package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/fleetflow/fleetflow/internal/pkg/apperrors"
	"github.com/fleetflow/fleetflow/internal/pkg/models"
	"github.com/fleetflow/fleetflow/services/fleet/repository"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "postgres")
	return db, mock
}

func TestCreateTrip_Insert(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(&models.Config{}, db)

	trip := &models.Trip{
		VehicleID:   uuid.New(),
		DriverID:    uuid.New(),
		CargoWeight: 800,
		Status:      models.TripStatusDraft,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO trips")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), trip)
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, trip.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDispatch_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(&models.Config{}, db)

	trip := &models.Trip{
		ID:        uuid.New(),
		VehicleID: uuid.New(),
		DriverID:  uuid.New(),
		Status:    models.TripStatusDraft,
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE trips SET status = $1")).
		WithArgs(models.TripStatusDispatched, trip.ID, models.TripStatusDraft).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE vehicles SET status = $1")).
		WithArgs(models.VehicleStatusOnTrip, trip.VehicleID, models.VehicleStatusAvailable).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE drivers SET status = $1")).
		WithArgs(models.DriverStatusOnTrip, trip.DriverID, models.DriverStatusOnDuty).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Dispatch(context.Background(), trip)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDispatch_VehicleTakenRollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(&models.Config{}, db)

	trip := &models.Trip{
		ID:        uuid.New(),
		VehicleID: uuid.New(),
		DriverID:  uuid.New(),
		Status:    models.TripStatusDraft,
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE trips SET status = $1")).
		WithArgs(models.TripStatusDispatched, trip.ID, models.TripStatusDraft).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// Concurrent dispatch already locked the vehicle: the guarded update
	// matches nothing and the whole transaction rolls back.
	mock.ExpectExec(regexp.QuoteMeta("UPDATE vehicles SET status = $1")).
		WithArgs(models.VehicleStatusOnTrip, trip.VehicleID, models.VehicleStatusAvailable).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Dispatch(context.Background(), trip)
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindResourceUnavailable, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "Vehicle is not available")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDispatch_AlreadyDispatchedRollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(&models.Config{}, db)

	trip := &models.Trip{
		ID:        uuid.New(),
		VehicleID: uuid.New(),
		DriverID:  uuid.New(),
		Status:    models.TripStatusDraft,
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE trips SET status = $1")).
		WithArgs(models.TripStatusDispatched, trip.ID, models.TripStatusDraft).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Dispatch(context.Background(), trip)
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidTransition, apperrors.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestComplete_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(&models.Config{}, db)

	trip := &models.Trip{
		ID:        uuid.New(),
		VehicleID: uuid.New(),
		DriverID:  uuid.New(),
		Status:    models.TripStatusDispatched,
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE trips")).
		WithArgs(models.TripStatusCompleted, 50240.0, 1200.0, trip.ID, models.TripStatusDispatched).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE vehicles SET status = $1, odometer = $2")).
		WithArgs(models.VehicleStatusAvailable, 50240.0, trip.VehicleID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE drivers SET status = $1")).
		WithArgs(models.DriverStatusOnDuty, trip.DriverID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rows := sqlmock.NewRows([]string{"id", "vehicle_id", "driver_id", "start_odometer", "cargo_weight", "revenue", "status", "origin", "destination"}).
		AddRow(trip.ID, trip.VehicleID, trip.DriverID, 50000.0, 800.0, 1200.0, models.TripStatusCompleted, "", "")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, vehicle_id, driver_id")).
		WithArgs(trip.ID).
		WillReturnRows(rows)

	completed, err := repo.Complete(context.Background(), trip, 50240, 1200)
	assert.NoError(t, err)
	assert.Equal(t, models.TripStatusCompleted, completed.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestComplete_NotDispatchedRollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(&models.Config{}, db)

	trip := &models.Trip{ID: uuid.New(), Status: models.TripStatusDispatched}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE trips")).
		WithArgs(models.TripStatusCompleted, 100.0, 0.0, trip.ID, models.TripStatusDispatched).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.Complete(context.Background(), trip, 100, 0)
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidTransition, apperrors.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateDraft_NotDraft(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(&models.Config{}, db)

	id := uuid.New()
	origin := "Depot A"

	mock.ExpectExec(regexp.QuoteMeta("UPDATE trips SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.UpdateDraft(context.Background(), id, models.TripPatch{Origin: &origin})
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidTransition, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "Only draft trips can be edited")
}

func TestDeleteWithCleanup_DispatchedReleasesResources(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(&models.Config{}, db)

	trip := &models.Trip{
		ID:        uuid.New(),
		VehicleID: uuid.New(),
		DriverID:  uuid.New(),
		Status:    models.TripStatusDispatched,
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE vehicles SET status = $1")).
		WithArgs(models.VehicleStatusAvailable, trip.VehicleID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE drivers SET status = $1")).
		WithArgs(models.DriverStatusOnDuty, trip.DriverID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM fuel_logs WHERE trip_id = $1")).
		WithArgs(trip.ID).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM trips WHERE id = $1")).
		WithArgs(trip.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.DeleteWithCleanup(context.Background(), trip)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteWithCleanup_DraftSkipsRelease(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(&models.Config{}, db)

	trip := &models.Trip{ID: uuid.New(), Status: models.TripStatusDraft}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM fuel_logs WHERE trip_id = $1")).
		WithArgs(trip.ID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM trips WHERE id = $1")).
		WithArgs(trip.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.DeleteWithCleanup(context.Background(), trip)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
