package fleet

import (
	"context"

	"github.com/fleetflow/fleetflow/internal/pkg/models"
)

// FleetGW publishes fleet domain events. Publication is best-effort: the
// coordinators log failures and never roll back committed state because an
// event could not be sent.
//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks -source=gateways.go
type FleetGW interface {
	PublishTripDispatched(ctx context.Context, event models.TripDispatchedEvent) error
	PublishTripCompleted(ctx context.Context, event models.TripCompletedEvent) error
	PublishTripDeleted(ctx context.Context, event models.TripDeletedEvent) error
	PublishMaintenanceScheduled(ctx context.Context, event models.MaintenanceScheduledEvent) error
	PublishVehicleRetired(ctx context.Context, event models.VehicleRetiredEvent) error
}
