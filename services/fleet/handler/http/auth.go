package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fleetflow/fleetflow/internal/pkg/models"
	"github.com/fleetflow/fleetflow/internal/utils"
	"github.com/fleetflow/fleetflow/services/fleet"
)

// AuthHandler handles HTTP requests for operator authentication
type AuthHandler struct {
	authUC fleet.AuthUC
}

// NewAuthHandler creates a new auth HTTP handler
func NewAuthHandler(authUC fleet.AuthUC) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// Register handles operator account creation
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Name == "" || req.Email == "" {
		return utils.BadRequestResponse(c, "Name and email are required")
	}
	if len(req.Password) < 8 {
		return utils.BadRequestResponse(c, "Password must be at least 8 characters")
	}

	resp, err := h.authUC.Register(c.Request().Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Account created successfully", resp)
}

// Login handles operator authentication
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Email == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "Email and password are required")
	}

	resp, err := h.authUC.Login(c.Request().Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Logged in successfully", resp)
}
