package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fleetflow/fleetflow/internal/utils"
	"github.com/fleetflow/fleetflow/services/fleet"
)

// AnalyticsHandler handles HTTP requests for the dashboard figures
type AnalyticsHandler struct {
	analyticsUC fleet.AnalyticsUC
}

// NewAnalyticsHandler creates a new analytics HTTP handler
func NewAnalyticsHandler(analyticsUC fleet.AnalyticsUC) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUC: analyticsUC}
}

// DashboardStats handles the fleet dashboard summary
func (h *AnalyticsHandler) DashboardStats(c echo.Context) error {
	stats, err := h.analyticsUC.DashboardStats(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Dashboard stats retrieved successfully", stats)
}

// VehicleAnalytics handles the per-vehicle cost and revenue rollups
func (h *AnalyticsHandler) VehicleAnalytics(c echo.Context) error {
	rows, err := h.analyticsUC.VehicleAnalytics(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Vehicle analytics retrieved successfully", rows)
}
