package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fleetflow/fleetflow/internal/pkg/models"
	"github.com/fleetflow/fleetflow/internal/utils"
	"github.com/fleetflow/fleetflow/services/fleet"
)

// DriverHandler handles HTTP requests for driver operations
type DriverHandler struct {
	driverUC fleet.DriverUC
}

// NewDriverHandler creates a new driver HTTP handler
func NewDriverHandler(driverUC fleet.DriverUC) *DriverHandler {
	return &DriverHandler{driverUC: driverUC}
}

// RegisterDriver handles driver registration
func (h *DriverHandler) RegisterDriver(c echo.Context) error {
	var driver models.Driver
	if err := c.Bind(&driver); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if driver.Name == "" || driver.LicenseNumber == "" {
		return utils.BadRequestResponse(c, "Name and license number are required")
	}
	if driver.LicenseExpiry.IsZero() {
		return utils.BadRequestResponse(c, "License expiry is required")
	}

	created, err := h.driverUC.RegisterDriver(c.Request().Context(), &driver)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Driver registered successfully", created)
}

// GetDriver handles a single driver read
func (h *DriverHandler) GetDriver(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	driver, err := h.driverUC.GetDriver(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver retrieved successfully", driver)
}

// ListDrivers handles the driver listing
func (h *DriverHandler) ListDrivers(c echo.Context) error {
	drivers, err := h.driverUC.ListDrivers(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Drivers retrieved successfully", drivers)
}

// UpdateDriver handles driver edits
func (h *DriverHandler) UpdateDriver(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	var patch models.DriverPatch
	if err := c.Bind(&patch); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	driver, err := h.driverUC.UpdateDriver(c.Request().Context(), id, patch)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver updated successfully", driver)
}

// DeleteDriver handles driver removal
func (h *DriverHandler) DeleteDriver(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	if err := h.driverUC.DeleteDriver(c.Request().Context(), id); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver deleted successfully", nil)
}
