package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fleetflow/fleetflow/internal/pkg/models"
	"github.com/fleetflow/fleetflow/internal/utils"
	"github.com/fleetflow/fleetflow/services/fleet"
)

// FuelHandler handles HTTP requests for fuel log operations
type FuelHandler struct {
	fuelUC fleet.FuelUC
}

// NewFuelHandler creates a new fuel HTTP handler
func NewFuelHandler(fuelUC fleet.FuelUC) *FuelHandler {
	return &FuelHandler{fuelUC: fuelUC}
}

// LogFuel handles fuel purchase recording
func (h *FuelHandler) LogFuel(c echo.Context) error {
	var req models.CreateFuelLogRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.VehicleID == uuid.Nil {
		return utils.BadRequestResponse(c, "Vehicle ID is required")
	}
	if req.Liters <= 0 || req.Cost < 0 {
		return utils.BadRequestResponse(c, "Liters must be positive and cost cannot be negative")
	}

	log, err := h.fuelUC.LogFuel(c.Request().Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Fuel purchase logged successfully", log)
}

// UpdateFuelLog handles fuel log edits
func (h *FuelHandler) UpdateFuelLog(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid fuel log ID")
	}

	var patch models.FuelLogPatch
	if err := c.Bind(&patch); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	log, err := h.fuelUC.UpdateFuelLog(c.Request().Context(), id, patch)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Fuel log updated successfully", log)
}

// DeleteFuelLog handles fuel log removal
func (h *FuelHandler) DeleteFuelLog(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid fuel log ID")
	}

	if err := h.fuelUC.DeleteFuelLog(c.Request().Context(), id); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Fuel log deleted successfully", nil)
}

// ListFuelLogs handles the fuel log listing
func (h *FuelHandler) ListFuelLogs(c echo.Context) error {
	logs, err := h.fuelUC.ListFuelLogs(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Fuel logs retrieved successfully", logs)
}
