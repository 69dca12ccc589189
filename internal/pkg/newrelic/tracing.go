package newrelic

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Middleware starts a New Relic transaction per request; a nil app yields a pass-through
func Middleware(app *newrelic.Application) echo.MiddlewareFunc {
	if app == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return nrecho.Middleware(app)
}

// FromEchoContext extracts New Relic transaction from Echo context
func FromEchoContext(c echo.Context) *newrelic.Transaction {
	return nrecho.FromContext(c)
}

// StartSegment opens a segment on the transaction carried by ctx.
// The returned func ends it and is safe to call when no transaction exists.
func StartSegment(ctx context.Context, name string) func() {
	txn := newrelic.FromContext(ctx)
	if txn == nil {
		return func() {}
	}
	seg := txn.StartSegment(name)
	return seg.End
}

// AddAttribute adds a custom attribute to the transaction carried by ctx
func AddAttribute(ctx context.Context, key string, value interface{}) {
	if txn := newrelic.FromContext(ctx); txn != nil {
		txn.AddAttribute(key, value)
	}
}
