package gateway

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fleetflow/fleetflow/internal/pkg/models"
	"github.com/fleetflow/fleetflow/internal/pkg/nsq"
	"github.com/fleetflow/fleetflow/internal/pkg/retry"
)

// Topic names for fleet domain events
const (
	TopicTripDispatched       = "fleet.trip.dispatched"
	TopicTripCompleted        = "fleet.trip.completed"
	TopicTripDeleted          = "fleet.trip.deleted"
	TopicMaintenanceScheduled = "fleet.maintenance.scheduled"
	TopicVehicleRetired       = "fleet.vehicle.retired"
)

// FleetGW publishes fleet domain events to NSQ. When the producer is nil
// (messaging disabled by config) every publish is a logged no-op, so the
// coordinators do not need to know whether messaging is on. Transient
// publish failures are retried with exponential backoff before giving up.
type FleetGW struct {
	producer *nsq.Producer
	retrier  *retry.Retrier
	logger   *logrus.Logger
}

// NewFleetGW creates a new fleet gateway. producer may be nil.
func NewFleetGW(producer *nsq.Producer, logger *logrus.Logger) *FleetGW {
	return &FleetGW{
		producer: producer,
		retrier: retry.New(retry.Config{
			MaxRetries: 2,
			BaseDelay:  50 * time.Millisecond,
			MaxDelay:   time.Second,
			Multiplier: 2.0,
			Jitter:     true,
		}, logger),
		logger: logger,
	}
}

func (g *FleetGW) publish(ctx context.Context, topic string, message interface{}) error {
	if g.producer == nil {
		g.logger.WithField("topic", topic).Debug("Messaging disabled, event dropped")
		return nil
	}
	return g.retrier.Execute(ctx, func(context.Context) error {
		return g.producer.Publish(topic, message)
	})
}

// PublishTripDispatched publishes a trip dispatched event
func (g *FleetGW) PublishTripDispatched(ctx context.Context, event models.TripDispatchedEvent) error {
	return g.publish(ctx, TopicTripDispatched, event)
}

// PublishTripCompleted publishes a trip completed event
func (g *FleetGW) PublishTripCompleted(ctx context.Context, event models.TripCompletedEvent) error {
	return g.publish(ctx, TopicTripCompleted, event)
}

// PublishTripDeleted publishes a trip deleted event
func (g *FleetGW) PublishTripDeleted(ctx context.Context, event models.TripDeletedEvent) error {
	return g.publish(ctx, TopicTripDeleted, event)
}

// PublishMaintenanceScheduled publishes a maintenance scheduled event
func (g *FleetGW) PublishMaintenanceScheduled(ctx context.Context, event models.MaintenanceScheduledEvent) error {
	return g.publish(ctx, TopicMaintenanceScheduled, event)
}

// PublishVehicleRetired publishes a vehicle retired event
func (g *FleetGW) PublishVehicleRetired(ctx context.Context, event models.VehicleRetiredEvent) error {
	return g.publish(ctx, TopicVehicleRetired, event)
}
