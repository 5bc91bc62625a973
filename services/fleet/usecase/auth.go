package usecase

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/fleetflow/fleetflow/internal/pkg/apperrors"
	"github.com/fleetflow/fleetflow/internal/pkg/jwt"
	"github.com/fleetflow/fleetflow/internal/pkg/models"
	"github.com/fleetflow/fleetflow/services/fleet"
)

const defaultOperatorRole = "operator"

// AuthUC manages operator accounts and token issuance
type AuthUC struct {
	cfg      *models.Config
	userRepo fleet.UserRepo
	logger   *logrus.Logger
}

// NewAuthUC creates a new auth usecase
func NewAuthUC(cfg *models.Config, userRepo fleet.UserRepo, logger *logrus.Logger) *AuthUC {
	return &AuthUC{
		cfg:      cfg,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register creates an operator account and returns a signed token
func (uc *AuthUC) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindStorage, "Failed to hash password", err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         defaultOperatorRole,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, expiresAt, err := jwt.GenerateToken(user.ID, user.Email, user.Role, uc.cfg.JWT)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindStorage, "Failed to generate token", err)
	}

	uc.logger.WithFields(logrus.Fields{
		"user_id": user.ID,
		"email":   user.Email,
	}).Info("Operator registered")

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// Login verifies credentials and returns a signed token. Unknown emails and
// wrong passwords produce the same error so the response does not reveal
// which accounts exist.
func (uc *AuthUC) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return nil, apperrors.New(apperrors.KindUnauthorized, "Invalid email or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.New(apperrors.KindUnauthorized, "Invalid email or password")
	}

	token, expiresAt, err := jwt.GenerateToken(user.ID, user.Email, user.Role, uc.cfg.JWT)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindStorage, "Failed to generate token", err)
	}

	uc.logger.WithField("user_id", user.ID).Info("Operator logged in")

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}
