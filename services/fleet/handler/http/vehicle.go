package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fleetflow/fleetflow/internal/pkg/models"
	"github.com/fleetflow/fleetflow/internal/utils"
	"github.com/fleetflow/fleetflow/services/fleet"
)

// VehicleHandler handles HTTP requests for vehicle operations
type VehicleHandler struct {
	vehicleUC fleet.VehicleUC
}

// NewVehicleHandler creates a new vehicle HTTP handler
func NewVehicleHandler(vehicleUC fleet.VehicleUC) *VehicleHandler {
	return &VehicleHandler{vehicleUC: vehicleUC}
}

// RegisterVehicle handles vehicle registration
func (h *VehicleHandler) RegisterVehicle(c echo.Context) error {
	var vehicle models.Vehicle
	if err := c.Bind(&vehicle); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if vehicle.Name == "" || vehicle.LicensePlate == "" {
		return utils.BadRequestResponse(c, "Name and license plate are required")
	}
	if vehicle.MaxCapacity <= 0 {
		return utils.BadRequestResponse(c, "Max capacity must be positive")
	}

	created, err := h.vehicleUC.RegisterVehicle(c.Request().Context(), &vehicle)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Vehicle registered successfully", created)
}

// GetVehicle handles a single vehicle read
func (h *VehicleHandler) GetVehicle(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle ID")
	}

	vehicle, err := h.vehicleUC.GetVehicle(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Vehicle retrieved successfully", vehicle)
}

// ListVehicles handles the vehicle listing
func (h *VehicleHandler) ListVehicles(c echo.Context) error {
	vehicles, err := h.vehicleUC.ListVehicles(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Vehicles retrieved successfully", vehicles)
}

// UpdateVehicle handles vehicle edits
func (h *VehicleHandler) UpdateVehicle(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle ID")
	}

	var patch models.VehiclePatch
	if err := c.Bind(&patch); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	vehicle, err := h.vehicleUC.UpdateVehicle(c.Request().Context(), id, patch)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Vehicle updated successfully", vehicle)
}

// RetireVehicle handles vehicle retirement (soft delete)
func (h *VehicleHandler) RetireVehicle(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle ID")
	}

	if err := h.vehicleUC.RetireVehicle(c.Request().Context(), id); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Vehicle retired successfully", nil)
}
