package metrics

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Transition results recorded on RideTransitionsTotal
const (
	ResultApplied  = "applied"
	ResultRejected = "rejected"
	ResultError    = "error"
)

var (
	// RequestsTotal counts served HTTP requests
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// RequestDuration observes HTTP request latency
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// RequestsInFlight tracks requests currently being served
	RequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being served",
		},
	)

	// RideTransitionsTotal counts lifecycle transitions by outcome
	RideTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wheelshare_ride_transitions_total",
			Help: "Ride lifecycle transitions by transition name and result",
		},
		[]string{"transition", "result"},
	)

	// PaymentsTotal counts recorded payments by method
	PaymentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wheelshare_payments_total",
			Help: "Recorded ride payments by method",
		},
		[]string{"method"},
	)

	// EventPublishFailures counts ride events the broker refused
	EventPublishFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wheelshare_event_publish_failures_total",
			Help: "Ride events that could not be published",
		},
		[]string{"type"},
	)

	// EventBrokerBreakerState is 0 closed, 1 open, 2 half-open
	EventBrokerBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wheelshare_event_broker_breaker_state",
			Help: "State of the circuit breaker guarding the event broker",
		},
	)
)

// TrackTransition records the outcome of a lifecycle transition attempt
func TrackTransition(transition, result string) {
	RideTransitionsTotal.WithLabelValues(transition, result).Inc()
}

// Handler exposes the default registry for scraping
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
