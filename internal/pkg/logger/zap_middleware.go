package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// ZapEchoMiddleware logs every request served by echo through logger
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			err := next(c)
			if err != nil {
				// let echo write the response so the logged status is the one sent
				c.Error(err)
			}

			latency := time.Since(start)
			path := req.URL.Path
			if req.URL.RawQuery != "" {
				path = path + "?" + req.URL.RawQuery
			}

			userID := "anonymous"
			if uid := c.Get("user_id"); uid != nil {
				userID = fmt.Sprintf("%v", uid)
			}
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)

			txn := newrelic.FromContext(req.Context())
			if txn != nil {
				txn.AddAttribute("user_id", userID)
				txn.AddAttribute("request_id", requestID)
				if err != nil {
					txn.NoticeError(err)
				}
			}

			logger.LogHTTPRequest(txn, req.Method, path, c.RealIP(), userID, requestID, c.Response().Status, latency, err)
			return nil
		}
	}
}
