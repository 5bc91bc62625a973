package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fleetflow/fleetflow/internal/pkg/models"
	"github.com/fleetflow/fleetflow/internal/utils"
	"github.com/fleetflow/fleetflow/services/fleet"
)

// MaintenanceHandler handles HTTP requests for maintenance operations
type MaintenanceHandler struct {
	maintenanceUC fleet.MaintenanceUC
}

// NewMaintenanceHandler creates a new maintenance HTTP handler
func NewMaintenanceHandler(maintenanceUC fleet.MaintenanceUC) *MaintenanceHandler {
	return &MaintenanceHandler{maintenanceUC: maintenanceUC}
}

// CreateLog handles maintenance scheduling
func (h *MaintenanceHandler) CreateLog(c echo.Context) error {
	var req models.CreateMaintenanceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.VehicleID == uuid.Nil {
		return utils.BadRequestResponse(c, "Vehicle ID is required")
	}
	if req.Date.IsZero() {
		return utils.BadRequestResponse(c, "Service date is required")
	}

	log, err := h.maintenanceUC.CreateLog(c.Request().Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Maintenance scheduled successfully", log)
}

// UpdateLog handles maintenance edits and rescheduling
func (h *MaintenanceHandler) UpdateLog(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid maintenance ID")
	}

	var patch models.MaintenancePatch
	if err := c.Bind(&patch); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	log, err := h.maintenanceUC.UpdateLog(c.Request().Context(), id, patch)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Maintenance updated successfully", log)
}

// DeleteLog handles maintenance removal
func (h *MaintenanceHandler) DeleteLog(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid maintenance ID")
	}

	if err := h.maintenanceUC.DeleteLog(c.Request().Context(), id); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Maintenance deleted successfully", nil)
}

// ListLogs handles the maintenance listing
func (h *MaintenanceHandler) ListLogs(c echo.Context) error {
	logs, err := h.maintenanceUC.ListLogs(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Maintenance logs retrieved successfully", logs)
}
