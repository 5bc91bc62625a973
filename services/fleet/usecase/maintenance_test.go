package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/fleetflow/fleetflow/internal/pkg/apperrors"
	"github.com/fleetflow/fleetflow/internal/pkg/models"
	"github.com/fleetflow/fleetflow/services/fleet/mocks"
)

func newMaintenanceUCForTest(ctrl *gomock.Controller, now time.Time) (*MaintenanceUC, *mocks.MockMaintenanceRepo, *mocks.MockVehicleRepo, *mocks.MockFleetGW) {
	maintenanceRepo := mocks.NewMockMaintenanceRepo(ctrl)
	vehicleRepo := mocks.NewMockVehicleRepo(ctrl)
	fleetGW := mocks.NewMockFleetGW(ctrl)
	uc := NewMaintenanceUC(&models.Config{}, maintenanceRepo, vehicleRepo, fleetGW, logrus.New())
	uc.now = func() time.Time { return now }
	return uc, maintenanceRepo, vehicleRepo, fleetGW
}

func TestCreateLog_TodayLocksVehicle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	uc, maintenanceRepo, vehicleRepo, fleetGW := newMaintenanceUCForTest(ctrl, now)

	vehicleID := uuid.New()
	vehicleRepo.EXPECT().GetByID(gomock.Any(), vehicleID).
		Return(&models.Vehicle{ID: vehicleID, Status: models.VehicleStatusAvailable}, nil)
	maintenanceRepo.EXPECT().
		CreateScheduled(gomock.Any(), gomock.Any(), true).
		DoAndReturn(func(ctx context.Context, m *models.Maintenance, lockVehicle bool) error {
			m.ID = uuid.New()
			return nil
		})
	fleetGW.EXPECT().
		PublishMaintenanceScheduled(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event models.MaintenanceScheduledEvent) error {
			assert.True(t, event.VehicleLocked)
			return nil
		})

	m, err := uc.CreateLog(context.Background(), models.CreateMaintenanceRequest{
		VehicleID:   vehicleID,
		Description: "Oil change",
		Cost:        150,
		Date:        time.Date(2025, 6, 15, 16, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)
	assert.Equal(t, vehicleID, m.VehicleID)
}

func TestCreateLog_FutureDateDoesNotLock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	uc, maintenanceRepo, vehicleRepo, fleetGW := newMaintenanceUCForTest(ctrl, now)

	vehicleID := uuid.New()
	vehicleRepo.EXPECT().GetByID(gomock.Any(), vehicleID).
		Return(&models.Vehicle{ID: vehicleID, Status: models.VehicleStatusAvailable}, nil)
	maintenanceRepo.EXPECT().CreateScheduled(gomock.Any(), gomock.Any(), false).Return(nil)
	fleetGW.EXPECT().PublishMaintenanceScheduled(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.CreateLog(context.Background(), models.CreateMaintenanceRequest{
		VehicleID: vehicleID,
		Date:      time.Date(2025, 6, 20, 9, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)
}

func TestCreateLog_PastDateRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	uc, _, _, _ := newMaintenanceUCForTest(ctrl, now)

	_, err := uc.CreateLog(context.Background(), models.CreateMaintenanceRequest{
		VehicleID: uuid.New(),
		Date:      time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC),
	})

	assert.Error(t, err)
	assert.Equal(t, apperrors.KindPastServiceDate, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "Service date cannot be in the past")
}

func TestUpdateLog_PastDateRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	uc, _, _, _ := newMaintenanceUCForTest(ctrl, now)

	past := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	_, err := uc.UpdateLog(context.Background(), uuid.New(), models.MaintenancePatch{Date: &past})

	assert.Error(t, err)
	assert.Equal(t, apperrors.KindPastServiceDate, apperrors.KindOf(err))
}

func TestUpdateLog_PassesDayWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	uc, maintenanceRepo, _, _ := newMaintenanceUCForTest(ctrl, now)

	id := uuid.New()
	dayStart := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	dayEnd := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	updated := &models.Maintenance{ID: id, VehicleID: uuid.New(), Date: now}

	maintenanceRepo.EXPECT().
		UpdateRescheduled(gomock.Any(), id, gomock.Any(), dayStart, dayEnd).
		Return(updated, nil)

	result, err := uc.UpdateLog(context.Background(), id, models.MaintenancePatch{})
	assert.NoError(t, err)
	assert.Equal(t, id, result.ID)
}

func TestDeleteLog_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	uc, maintenanceRepo, _, _ := newMaintenanceUCForTest(ctrl, now)

	id := uuid.New()
	m := &models.Maintenance{ID: id, VehicleID: uuid.New(), Date: now}
	dayStart := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	dayEnd := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

	maintenanceRepo.EXPECT().GetByID(gomock.Any(), id).Return(m, nil)
	maintenanceRepo.EXPECT().DeleteReleasing(gomock.Any(), m, dayStart, dayEnd).Return(nil)

	assert.NoError(t, uc.DeleteLog(context.Background(), id))
}

func TestDeleteLog_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	uc, maintenanceRepo, _, _ := newMaintenanceUCForTest(ctrl, now)

	id := uuid.New()
	maintenanceRepo.EXPECT().GetByID(gomock.Any(), id).
		Return(nil, apperrors.New(apperrors.KindNotFound, "Maintenance record not found"))

	err := uc.DeleteLog(context.Background(), id)
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}
