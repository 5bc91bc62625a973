package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/fleetflow/fleetflow/internal/pkg/apperrors"
	"github.com/fleetflow/fleetflow/internal/pkg/models"
	"github.com/fleetflow/fleetflow/services/fleet/mocks"
)

func TestDeleteDriver_BlockedWhileOnTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	driverRepo := mocks.NewMockDriverRepo(ctrl)
	uc := NewDriverUC(&models.Config{}, driverRepo, logrus.New())

	id := uuid.New()
	driverRepo.EXPECT().GetByID(gomock.Any(), id).
		Return(&models.Driver{ID: id, Status: models.DriverStatusOnTrip}, nil)

	err := uc.DeleteDriver(context.Background(), id)
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindDependentResourceActive, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "cannot be deleted")
}

func TestDeleteDriver_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	driverRepo := mocks.NewMockDriverRepo(ctrl)
	uc := NewDriverUC(&models.Config{}, driverRepo, logrus.New())

	id := uuid.New()
	driverRepo.EXPECT().GetByID(gomock.Any(), id).
		Return(&models.Driver{ID: id, Status: models.DriverStatusOffDuty}, nil)
	driverRepo.EXPECT().Delete(gomock.Any(), id).Return(nil)

	assert.NoError(t, uc.DeleteDriver(context.Background(), id))
}

func TestUpdateDriver_RejectsManualOnTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	driverRepo := mocks.NewMockDriverRepo(ctrl)
	uc := NewDriverUC(&models.Config{}, driverRepo, logrus.New())

	status := models.DriverStatusOnTrip
	_, err := uc.UpdateDriver(context.Background(), uuid.New(), models.DriverPatch{Status: &status})

	assert.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestUpdateDriver_BlockedWhileOnTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	driverRepo := mocks.NewMockDriverRepo(ctrl)
	uc := NewDriverUC(&models.Config{}, driverRepo, logrus.New())

	id := uuid.New()
	status := models.DriverStatusOffDuty
	driverRepo.EXPECT().GetByID(gomock.Any(), id).
		Return(&models.Driver{ID: id, Status: models.DriverStatusOnTrip}, nil)

	_, err := uc.UpdateDriver(context.Background(), id, models.DriverPatch{Status: &status})
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindDependentResourceActive, apperrors.KindOf(err))
}

func TestRegisterDriver_StartsOffDuty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	driverRepo := mocks.NewMockDriverRepo(ctrl)
	uc := NewDriverUC(&models.Config{}, driverRepo, logrus.New())

	driverRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, driver *models.Driver) error {
			assert.Equal(t, models.DriverStatusOffDuty, driver.Status)
			return nil
		})

	driver, err := uc.RegisterDriver(context.Background(), &models.Driver{
		Name:          "Budi",
		LicenseNumber: "B-1234",
		Status:        models.DriverStatusOnDuty, // ignored
	})
	assert.NoError(t, err)
	assert.Equal(t, models.DriverStatusOffDuty, driver.Status)
}
