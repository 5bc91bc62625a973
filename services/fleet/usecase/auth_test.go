package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/fleetflow/fleetflow/internal/pkg/apperrors"
	"github.com/fleetflow/fleetflow/internal/pkg/models"
	"github.com/fleetflow/fleetflow/services/fleet/mocks"
)

func authTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "fleetflow-test",
		},
	}
}

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewAuthUC(authTestConfig(), userRepo, logrus.New())

	userRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, user *models.User) error {
			assert.Equal(t, "ops@fleetflow.io", user.Email)
			assert.Equal(t, "operator", user.Role)
			// Password is stored hashed, never in the clear.
			assert.NotEqual(t, "supersecret", user.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("supersecret")))
			return nil
		})

	resp, err := uc.Register(context.Background(), models.RegisterRequest{
		Name:     "Ops",
		Email:    "ops@fleetflow.io",
		Password: "supersecret",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.NotZero(t, resp.ExpiresAt)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewAuthUC(authTestConfig(), userRepo, logrus.New())

	userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(apperrors.New(apperrors.KindDuplicateKey, "Email already registered"))

	_, err := uc.Register(context.Background(), models.RegisterRequest{
		Name:     "Ops",
		Email:    "ops@fleetflow.io",
		Password: "supersecret",
	})

	assert.Error(t, err)
	assert.Equal(t, apperrors.KindDuplicateKey, apperrors.KindOf(err))
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewAuthUC(authTestConfig(), userRepo, logrus.New())

	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	userRepo.EXPECT().GetByEmail(gomock.Any(), "ops@fleetflow.io").
		Return(&models.User{Email: "ops@fleetflow.io", PasswordHash: string(hash), Role: "operator"}, nil)

	resp, err := uc.Login(context.Background(), models.LoginRequest{
		Email:    "ops@fleetflow.io",
		Password: "supersecret",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewAuthUC(authTestConfig(), userRepo, logrus.New())

	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	userRepo.EXPECT().GetByEmail(gomock.Any(), "ops@fleetflow.io").
		Return(&models.User{Email: "ops@fleetflow.io", PasswordHash: string(hash)}, nil)

	_, err = uc.Login(context.Background(), models.LoginRequest{
		Email:    "ops@fleetflow.io",
		Password: "wrong",
	})

	assert.Error(t, err)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewAuthUC(authTestConfig(), userRepo, logrus.New())

	userRepo.EXPECT().GetByEmail(gomock.Any(), "nobody@fleetflow.io").
		Return(nil, apperrors.New(apperrors.KindNotFound, "User not found"))

	_, err := uc.Login(context.Background(), models.LoginRequest{
		Email:    "nobody@fleetflow.io",
		Password: "whatever",
	})

	assert.Error(t, err)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "Invalid email or password")
}
