package main

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/wheelshare/internal/pkg/circuitbreaker"
	"github.com/piresc/wheelshare/internal/pkg/health"
	"github.com/piresc/wheelshare/internal/pkg/logger"
	"github.com/piresc/wheelshare/internal/pkg/metrics"
	"github.com/piresc/wheelshare/internal/pkg/models"
	natspkg "github.com/piresc/wheelshare/internal/pkg/nats"
	nsqpkg "github.com/piresc/wheelshare/internal/pkg/nsq"
	"github.com/piresc/wheelshare/internal/pkg/retry"
	"github.com/piresc/wheelshare/internal/pkg/server"
	"github.com/piresc/wheelshare/services/rides/gateway"
)

// newPublisher connects the broker selected by cfg.Events.Broker and registers its
// health check and cleanup
func newPublisher(cfg *models.Config, hs *health.HealthService, gs *server.GracefulServer) (gateway.Publisher, error) {
	switch cfg.Events.Broker {
	case "nats":
		client, err := natspkg.NewClient(cfg.NATS.URL)
		if err != nil {
			return nil, err
		}
		hs.AddChecker("nats", health.NewNATSHealthChecker(client))
		gs.OnShutdown("nats", func(context.Context) error {
			client.Close()
			return nil
		})
		logger.Info("Publishing ride events to NATS", logger.String("url", cfg.NATS.URL))
		return client, nil

	case "nsq":
		producer, err := nsqpkg.NewProducer(cfg.NSQ.Address)
		if err != nil {
			return nil, err
		}
		hs.AddChecker("nsq", health.NewNSQHealthChecker(producer))
		gs.OnShutdown("nsq", func(context.Context) error {
			producer.Stop()
			return nil
		})
		logger.Info("Publishing ride events to NSQ", logger.String("address", cfg.NSQ.Address))
		return producer, nil

	case "none", "":
		logger.Warn("No event broker configured, ride events are dropped")
		return gateway.NoopPublisher{}, nil
	}
	return nil, fmt.Errorf("unknown event broker %q", cfg.Events.Broker)
}

func newPublishRetrier(cfg *models.Config, zapLogger *logger.ZapLogger) *retry.Retrier {
	rc := retry.DefaultConfig()
	rc.MaxRetries = cfg.Events.PublishRetries
	return retry.New(rc, zapLogger)
}

func newPublishBreaker(cfg *models.Config, zapLogger *logger.ZapLogger) *circuitbreaker.CircuitBreaker {
	bc := circuitbreaker.DefaultConfig("ride-events")
	bc.FailureThreshold = uint32(cfg.Events.BreakerFailures)
	bc.Timeout = time.Duration(cfg.Events.BreakerCooldown) * time.Second
	bc.OnStateChange = func(_ string, _, to circuitbreaker.State) {
		metrics.EventBrokerBreakerState.Set(float64(to))
	}
	return circuitbreaker.New(bc, zapLogger)
}
