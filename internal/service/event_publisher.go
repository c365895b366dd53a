package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Routing keys published on the events exchange
const (
	EventBookingCreated   = "booking.created"
	EventBookingAssigned  = "booking.assigned"
	EventPaymentCompleted = "payment.completed"
)

const publishTimeout = 5 * time.Second

// Event is the envelope every message carries.
type Event struct {
	Event      string      `json:"event"`
	Version    int         `json:"version"`
	OccurredAt time.Time   `json:"occurredAt"`
	Data       interface{} `json:"data"`
}

// EventPublisher announces domain changes to other systems. Delivery is best effort:
// a failed publish is logged and never fails the request that caused it.
type EventPublisher interface {
	Publish(ctx context.Context, key string, data interface{})
}

// JSONPublisher is satisfied by the AMQP broker publisher.
type JSONPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

type brokerEventPublisher struct {
	broker JSONPublisher
	log    *logrus.Logger
}

func NewBrokerEventPublisher(broker JSONPublisher, log *logrus.Logger) EventPublisher {
	return &brokerEventPublisher{
		broker: broker,
		log:    log,
	}
}

func (p *brokerEventPublisher) Publish(ctx context.Context, key string, data interface{}) {
	// Detached from the request so a client disconnect does not drop the event.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	event := Event{
		Event:      key,
		Version:    1,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}

	if err := p.broker.PublishJSON(ctx, key, event); err != nil {
		p.log.Warnf("Failed to publish event %s: %+v", key, err)
		return
	}
	p.log.WithField("event", key).Debug("Event published")
}

type logEventPublisher struct {
	log *logrus.Logger
}

// NewLogEventPublisher is used when no broker is configured.
func NewLogEventPublisher(log *logrus.Logger) EventPublisher {
	return &logEventPublisher{log: log}
}

func (p *logEventPublisher) Publish(ctx context.Context, key string, data interface{}) {
	p.log.WithField("event", key).Debug("Event not published, no broker configured")
}
