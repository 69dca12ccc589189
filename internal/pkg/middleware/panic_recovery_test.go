package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/wheelshare/internal/pkg/logger"
)

func newTestLogger(t *testing.T) (*logger.ZapLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	zl, err := logger.NewZapLogger(logger.ZapConfig{Service: "rides-test", Level: "debug", Output: buf}, nil)
	require.NoError(t, err)
	return zl, buf
}

func TestPanicRecoveryWithZapMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		panicValue   interface{}
		requestID    string
		expectInLogs []string
	}{
		{
			name:         "string panic",
			panicValue:   "test panic message",
			expectInLogs: []string{"test panic message", "stack_trace", "Panic recovered during request processing"},
		},
		{
			name:         "error panic",
			panicValue:   errors.New("test error panic"),
			expectInLogs: []string{"test error panic", "*errors.errorString"},
		},
		{
			name:         "panic with request id",
			panicValue:   "with request id",
			requestID:    "req-123",
			expectInLogs: []string{"req-123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zl, buf := newTestLogger(t)

			e := echo.New()
			e.Use(PanicRecoveryWithZapMiddleware(zl))
			e.GET("/boom", func(c echo.Context) error {
				panic(tt.panicValue)
			})

			req := httptest.NewRequest(http.MethodGet, "/boom", nil)
			if tt.requestID != "" {
				req.Header.Set(echo.HeaderXRequestID, tt.requestID)
			}
			rec := httptest.NewRecorder()

			assert.NotPanics(t, func() { e.ServeHTTP(rec, req) })
			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
			if tt.requestID != "" {
				assert.Equal(t, tt.requestID, body["request_id"])
			}

			for _, expected := range tt.expectInLogs {
				assert.Contains(t, buf.String(), expected)
			}
		})
	}
}

func TestPanicRecoveryWithZapMiddleware_NoPanic(t *testing.T) {
	zl, buf := newTestLogger(t)

	e := echo.New()
	e.Use(PanicRecoveryWithZapMiddleware(zl))
	e.GET("/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, buf.String())
}

func TestPanicRecoveryWithZapMiddleware_RequiresLogger(t *testing.T) {
	assert.Panics(t, func() { PanicRecoveryWithZapMiddleware(nil) })
}
