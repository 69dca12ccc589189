package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/piresc/wheelshare/internal/pkg/metrics"
)

// PrometheusMiddleware records request count, latency and in-flight gauge per route
func PrometheusMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			metrics.RequestsInFlight.Inc()
			defer metrics.RequestsInFlight.Dec()

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			endpoint := c.Path()
			if endpoint == "" {
				endpoint = "unknown"
			}
			status := strconv.Itoa(c.Response().Status)

			metrics.RequestsTotal.WithLabelValues(c.Request().Method, endpoint, status).Inc()
			metrics.RequestDuration.WithLabelValues(c.Request().Method, endpoint).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}
