package models

import "github.com/google/uuid"

// DashboardStats summarizes current fleet state for the dashboard
type DashboardStats struct {
	ActiveFleet   int     `json:"activeFleet" db:"active_fleet"`
	InShop        int     `json:"inShop" db:"in_shop"`
	TotalVehicles int     `json:"totalVehicles" db:"total_vehicles"`
	Utilization   float64 `json:"utilization"`
	PendingTrips  int     `json:"pendingTrips" db:"pending_trips"`
}

// VehicleAnalytics carries per-vehicle cost and revenue rollups
type VehicleAnalytics struct {
	ID                   uuid.UUID `json:"id" db:"id"`
	Name                 string    `json:"name" db:"name"`
	LicensePlate         string    `json:"licensePlate" db:"license_plate"`
	AcquisitionCost      float64   `json:"acquisitionCost" db:"acquisition_cost"`
	TotalRevenue         float64   `json:"totalRevenue" db:"total_revenue"`
	TotalFuelCost        float64   `json:"totalFuelCost" db:"total_fuel_cost"`
	TotalMaintenanceCost float64   `json:"totalMaintenanceCost" db:"total_maintenance_cost"`
	TotalKilometers      float64   `json:"totalKilometers" db:"total_kilometers"`
	TotalLiters          float64   `json:"totalLiters" db:"total_liters"`
	ROI                  float64   `json:"roi"`
	FuelEfficiency       float64   `json:"fuelEfficiency"`
	CostPerKm            float64   `json:"costPerKm"`
}

// OperationalCost returns fuel plus maintenance spend for the vehicle
func (a *VehicleAnalytics) OperationalCost() float64 {
	return a.TotalFuelCost + a.TotalMaintenanceCost
}
