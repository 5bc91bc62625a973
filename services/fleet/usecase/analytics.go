package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/fleetflow/fleetflow/internal/pkg/database"
	"github.com/fleetflow/fleetflow/internal/pkg/models"
	"github.com/fleetflow/fleetflow/services/fleet"
)

const (
	dashboardStatsCacheKey   = "fleet:analytics:dashboard"
	vehicleAnalyticsCacheKey = "fleet:analytics:vehicles"
)

// AnalyticsUC serves the dashboard figures with a short-lived Redis cache in
// front of the aggregate queries. A cache failure falls through to the
// database; the dashboard stays correct, just slower.
type AnalyticsUC struct {
	cfg           *models.Config
	analyticsRepo fleet.AnalyticsRepo
	redisClient   *database.RedisClient
	logger        *logrus.Logger
}

// NewAnalyticsUC creates a new analytics usecase
func NewAnalyticsUC(
	cfg *models.Config,
	analyticsRepo fleet.AnalyticsRepo,
	redisClient *database.RedisClient,
	logger *logrus.Logger,
) *AnalyticsUC {
	return &AnalyticsUC{
		cfg:           cfg,
		analyticsRepo: analyticsRepo,
		redisClient:   redisClient,
		logger:        logger,
	}
}

func (uc *AnalyticsUC) cacheTTL() time.Duration {
	return time.Duration(uc.cfg.Analytics.CacheTTLSeconds) * time.Second
}

// DashboardStats returns the fleet counts and utilization figure
func (uc *AnalyticsUC) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	if cached, err := uc.redisClient.Get(ctx, dashboardStatsCacheKey); err == nil {
		var stats models.DashboardStats
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		uc.logger.WithError(err).Warn("Failed to read dashboard stats cache")
	}

	stats, err := uc.analyticsRepo.DashboardStats(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(stats); err == nil {
		if err := uc.redisClient.Set(ctx, dashboardStatsCacheKey, payload, uc.cacheTTL()); err != nil {
			uc.logger.WithError(err).Warn("Failed to cache dashboard stats")
		}
	}
	return stats, nil
}

// VehicleAnalytics returns the per-vehicle cost and revenue rollups
func (uc *AnalyticsUC) VehicleAnalytics(ctx context.Context) ([]models.VehicleAnalytics, error) {
	if cached, err := uc.redisClient.Get(ctx, vehicleAnalyticsCacheKey); err == nil {
		var rows []models.VehicleAnalytics
		if err := json.Unmarshal([]byte(cached), &rows); err == nil {
			return rows, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		uc.logger.WithError(err).Warn("Failed to read vehicle analytics cache")
	}

	rows, err := uc.analyticsRepo.VehicleAnalytics(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(rows); err == nil {
		if err := uc.redisClient.Set(ctx, vehicleAnalyticsCacheKey, payload, uc.cacheTTL()); err != nil {
			uc.logger.WithError(err).Warn("Failed to cache vehicle analytics")
		}
	}
	return rows, nil
}
