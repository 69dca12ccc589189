package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/piresc/wheelshare/internal/pkg/circuitbreaker"
	"github.com/piresc/wheelshare/internal/pkg/constants"
	"github.com/piresc/wheelshare/internal/pkg/models"
	"github.com/piresc/wheelshare/internal/pkg/retry"
	"github.com/piresc/wheelshare/services/rides"
)

// Publisher delivers a payload to a subject or topic. Both the NATS client and the
// NSQ producer satisfy it.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// NoopPublisher drops every event; used when no broker is configured
type NoopPublisher struct{}

// Publish implements Publisher
func (NoopPublisher) Publish(string, []byte) error { return nil }

// RideGW publishes ride lifecycle events
type RideGW struct {
	publisher Publisher
	retrier   *retry.Retrier
	breaker   *circuitbreaker.CircuitBreaker
}

// Option configures a RideGW
type Option func(*RideGW)

// WithRetrier retries failed publishes with backoff
func WithRetrier(r *retry.Retrier) Option {
	return func(g *RideGW) { g.retrier = r }
}

// WithBreaker stops publishing while the broker keeps failing. Retries happen inside
// the breaker, so one event counts as a single failure.
func WithBreaker(cb *circuitbreaker.CircuitBreaker) Option {
	return func(g *RideGW) { g.breaker = cb }
}

// NewRideGW creates a ride gateway publishing through publisher
func NewRideGW(publisher Publisher, opts ...Option) rides.RideGW {
	if publisher == nil {
		publisher = NoopPublisher{}
	}
	g := &RideGW{publisher: publisher}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// PublishRideEvent encodes event as JSON and publishes it on its subject
func (g *RideGW) PublishRideEvent(ctx context.Context, event *models.RideEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal ride event: %w", err)
	}

	subject := SubjectFor(event)
	publish := func(context.Context) error {
		return g.publisher.Publish(subject, data)
	}
	if g.retrier != nil {
		once := publish
		publish = func(ctx context.Context) error { return g.retrier.Execute(ctx, once) }
	}
	if g.breaker != nil {
		guarded := publish
		publish = func(ctx context.Context) error { return g.breaker.Execute(ctx, guarded) }
	}

	if err := publish(ctx); err != nil {
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}
	return nil
}

// SubjectFor returns the subject of event. Requested rides are partitioned by pickup
// geohash so drivers can subscribe to their own area.
func SubjectFor(event *models.RideEvent) string {
	switch event.Type {
	case models.RideEventRequested:
		if event.PickupGeohash == "" {
			return constants.SubjectRideRequestedPrefix
		}
		return constants.SubjectRideRequestedPrefix + "." + event.PickupGeohash
	case models.RideEventAccepted:
		return constants.SubjectRideAccepted
	case models.RideEventStarted:
		return constants.SubjectRideStarted
	case models.RideEventCompleted:
		return constants.SubjectRideCompleted
	case models.RideEventCancelled:
		return constants.SubjectRideCancelled
	case models.RideEventPaid:
		return constants.SubjectRidePaid
	}
	return string(event.Type)
}
