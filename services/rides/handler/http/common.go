package http

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/piresc/wheelshare/internal/pkg/apperror"
	"github.com/piresc/wheelshare/internal/pkg/middleware"
	"github.com/piresc/wheelshare/internal/pkg/models"
	nrpkg "github.com/piresc/wheelshare/internal/pkg/newrelic"
)

// rideIDParam parses the :rideID path parameter
func rideIDParam(c echo.Context) (uuid.UUID, error) {
	raw := c.Param("rideID")
	if raw == "" {
		return uuid.Nil, apperror.Validation("Ride ID is required")
	}
	rideID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.Validation("Invalid ride ID: %s", raw)
	}
	nrpkg.AddAttribute(c.Request().Context(), "ride_id", rideID.String())
	return rideID, nil
}

// caller returns the authenticated principal of the request
func caller(c echo.Context) (models.Caller, bool) {
	who, ok := middleware.CallerFrom(c)
	if ok {
		nrpkg.AddAttribute(c.Request().Context(), "user_id", who.UserID.String())
	}
	return who, ok
}
