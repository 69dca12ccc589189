package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/piresc/wheelshare/internal/pkg/requestcontext"
)

// RequestIDMiddleware propagates the caller's X-Request-ID or assigns a new one
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			c.Set("request_id", requestID)
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)
			c.SetRequest(c.Request().WithContext(requestcontext.WithRequestID(c.Request().Context(), requestID)))
			return next(c)
		}
	}
}
