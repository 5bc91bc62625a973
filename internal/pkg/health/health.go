package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fleetflow/fleetflow/internal/pkg/database"
)

// Checker defines the interface for health checking a dependency
type Checker interface {
	CheckHealth(ctx context.Context) error
}

// PostgresChecker checks PostgreSQL connection health
type PostgresChecker struct {
	client *database.PostgresClient
}

// NewPostgresChecker creates a new PostgreSQL health checker
func NewPostgresChecker(client *database.PostgresClient) *PostgresChecker {
	return &PostgresChecker{client: client}
}

// CheckHealth checks if PostgreSQL is healthy
func (p *PostgresChecker) CheckHealth(ctx context.Context) error {
	if p.client == nil {
		return nil
	}
	return p.client.Ping(ctx)
}

// RedisChecker checks Redis connection health
type RedisChecker struct {
	client *database.RedisClient
}

// NewRedisChecker creates a new Redis health checker
func NewRedisChecker(client *database.RedisClient) *RedisChecker {
	return &RedisChecker{client: client}
}

// CheckHealth checks if Redis is healthy
func (r *RedisChecker) CheckHealth(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.Ping(ctx)
}

// Service aggregates named dependency checkers
type Service struct {
	checkers map[string]Checker
}

// NewService creates a new health service
func NewService() *Service {
	return &Service{checkers: make(map[string]Checker)}
}

// AddChecker registers a named dependency checker
func (s *Service) AddChecker(name string, checker Checker) {
	s.checkers[name] = checker
}

// Status reports the health of each registered dependency
func (s *Service) Status(ctx context.Context) (bool, map[string]string) {
	healthy := true
	results := make(map[string]string, len(s.checkers))
	for name, checker := range s.checkers {
		if err := checker.CheckHealth(ctx); err != nil {
			healthy = false
			results[name] = err.Error()
		} else {
			results[name] = "ok"
		}
	}
	return healthy, results
}

// RegisterEndpoints registers liveness and readiness endpoints
func RegisterEndpoints(e *echo.Echo, appName, version string, service *Service) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "up",
			"app":     appName,
			"version": version,
		})
	})

	e.GET("/health/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		healthy, results := service.Status(ctx)
		status := http.StatusOK
		if !healthy {
			status = http.StatusServiceUnavailable
		}
		return c.JSON(status, map[string]interface{}{
			"app":          appName,
			"version":      version,
			"dependencies": results,
		})
	})
}
