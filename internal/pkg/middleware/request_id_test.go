package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/piresc/wheelshare/internal/pkg/metrics"
	"github.com/piresc/wheelshare/internal/pkg/requestcontext"
)

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()
	e.Use(RequestIDMiddleware())
	e.GET("/", func(c echo.Context) error {
		assert.Equal(t, c.Get("request_id"), requestcontext.RequestID(c.Request().Context()))
		return c.String(http.StatusOK, c.Get("request_id").(string))
	})

	t.Run("Generates id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		id := rec.Header().Get(echo.HeaderXRequestID)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("Keeps incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderXRequestID, "client-req-1")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "client-req-1", rec.Header().Get(echo.HeaderXRequestID))
	})
}

func TestPrometheusMiddleware(t *testing.T) {
	e := echo.New()
	e.Use(PrometheusMiddleware())
	e.GET("/api/stats/public", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/api/broken", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot)
	})

	okCounter := metrics.RequestsTotal.WithLabelValues(http.MethodGet, "/api/stats/public", "200")
	errCounter := metrics.RequestsTotal.WithLabelValues(http.MethodGet, "/api/broken", "418")
	okBefore := testutil.ToFloat64(okCounter)
	errBefore := testutil.ToFloat64(errCounter)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stats/public", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/broken", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "I'm a teapot"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(okCounter))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(errCounter))
}
