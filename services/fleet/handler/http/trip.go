package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fleetflow/fleetflow/internal/pkg/models"
	"github.com/fleetflow/fleetflow/internal/utils"
	"github.com/fleetflow/fleetflow/services/fleet"
)

// TripHandler handles HTTP requests for trip operations
type TripHandler struct {
	tripUC fleet.TripUC
}

// NewTripHandler creates a new trip HTTP handler
func NewTripHandler(tripUC fleet.TripUC) *TripHandler {
	return &TripHandler{tripUC: tripUC}
}

// CreateTrip handles draft trip creation
func (h *TripHandler) CreateTrip(c echo.Context) error {
	var req models.CreateTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.VehicleID == uuid.Nil || req.DriverID == uuid.Nil {
		return utils.BadRequestResponse(c, "Vehicle ID and driver ID are required")
	}
	if req.CargoWeight <= 0 {
		return utils.BadRequestResponse(c, "Cargo weight must be positive")
	}

	trip, err := h.tripUC.CreateTrip(c.Request().Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Trip created successfully", trip)
}

// DispatchTrip handles the draft to dispatched transition
func (h *TripHandler) DispatchTrip(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	trip, err := h.tripUC.DispatchTrip(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip dispatched successfully", trip)
}

// CompleteTrip handles the dispatched to completed transition
func (h *TripHandler) CompleteTrip(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var req models.CompleteTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	trip, err := h.tripUC.CompleteTrip(c.Request().Context(), id, req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip completed successfully", trip)
}

// UpdateTrip handles draft trip edits
func (h *TripHandler) UpdateTrip(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var patch models.TripPatch
	if err := c.Bind(&patch); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	trip, err := h.tripUC.UpdateTrip(c.Request().Context(), id, patch)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip updated successfully", trip)
}

// DeleteTrip handles trip removal
func (h *TripHandler) DeleteTrip(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	if err := h.tripUC.DeleteTrip(c.Request().Context(), id); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip deleted successfully", nil)
}

// ListTrips handles the trip listing
func (h *TripHandler) ListTrips(c echo.Context) error {
	trips, err := h.tripUC.ListTrips(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved successfully", trips)
}
