package health

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/piresc/wheelshare/internal/pkg/database"
	"github.com/piresc/wheelshare/internal/pkg/logger"
	"github.com/piresc/wheelshare/internal/pkg/nats"
	"github.com/piresc/wheelshare/internal/pkg/nsq"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// HealthChecker defines the interface for dependency health checks
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a function to HealthChecker
type CheckerFunc func(ctx context.Context) error

// CheckHealth calls f
func (f CheckerFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}

// NewPostgresHealthChecker pings the ride store
func NewPostgresHealthChecker(client *database.PostgresClient) HealthChecker {
	return CheckerFunc(func(ctx context.Context) error {
		return client.Ping(ctx)
	})
}

// NewRedisHealthChecker pings the rate limiter backend
func NewRedisHealthChecker(client *database.RedisClient) HealthChecker {
	return CheckerFunc(func(ctx context.Context) error {
		return client.Ping(ctx)
	})
}

// NewNATSHealthChecker reports whether the event connection is up
func NewNATSHealthChecker(client *nats.Client) HealthChecker {
	return CheckerFunc(func(ctx context.Context) error {
		if !client.IsConnected() {
			return errors.New("NATS not connected")
		}
		return nil
	})
}

// NewNSQHealthChecker pings nsqd
func NewNSQHealthChecker(producer *nsq.Producer) HealthChecker {
	return CheckerFunc(func(ctx context.Context) error {
		return producer.Ping()
	})
}

// HealthService manages health checks for multiple dependencies
type HealthService struct {
	mu       sync.RWMutex
	checkers map[string]HealthChecker
}

// NewHealthService creates a new health service
func NewHealthService() *HealthService {
	return &HealthService{checkers: make(map[string]HealthChecker)}
}

// AddChecker registers a health checker for a dependency
func (h *HealthService) AddChecker(name string, checker HealthChecker) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checkers[name] = checker
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status       string                    `json:"status"`
	Timestamp    time.Time                 `json:"timestamp"`
	Service      string                    `json:"service"`
	Version      string                    `json:"version,omitempty"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

// DependencyInfo represents health info for a dependency
type DependencyInfo struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// CheckAllHealth runs every registered checker
func (h *HealthService) CheckAllHealth(ctx context.Context) HealthResponse {
	h.mu.RLock()
	names := make([]string, 0, len(h.checkers))
	for name := range h.checkers {
		names = append(names, name)
	}
	h.mu.RUnlock()
	sort.Strings(names)

	response := HealthResponse{
		Status:       StatusHealthy,
		Timestamp:    time.Now(),
		Dependencies: make(map[string]DependencyInfo, len(names)),
	}

	for _, name := range names {
		h.mu.RLock()
		checker := h.checkers[name]
		h.mu.RUnlock()

		if err := checker.CheckHealth(ctx); err != nil {
			logger.WarnCtx(ctx, "Health check failed",
				logger.String("dependency", name),
				logger.Err(err))
			response.Dependencies[name] = DependencyInfo{Status: StatusUnhealthy, Error: err.Error()}
			response.Status = StatusUnhealthy
			continue
		}
		response.Dependencies[name] = DependencyInfo{Status: StatusHealthy}
	}

	return response
}
