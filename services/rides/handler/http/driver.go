package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/piresc/wheelshare/internal/pkg/models"
	"github.com/piresc/wheelshare/internal/utils"
	"github.com/piresc/wheelshare/services/rides"
)

// DriverHandler handles HTTP requests of drivers
type DriverHandler struct {
	driverUC rides.DriverUC
	rideUC   rides.RideUC
}

// NewDriverHandler creates a new driver HTTP handler
func NewDriverHandler(driverUC rides.DriverUC, rideUC rides.RideUC) *DriverHandler {
	return &DriverHandler{
		driverUC: driverUC,
		rideUC:   rideUC,
	}
}

// GoOnline makes the driver available for offers
func (h *DriverHandler) GoOnline(c echo.Context) error {
	who, ok := caller(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	driver, err := h.driverUC.GoOnline(c.Request().Context(), who.UserID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver is online", driver)
}

// GoOffline stops offers to the driver
func (h *DriverHandler) GoOffline(c echo.Context) error {
	who, ok := caller(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	driver, err := h.driverUC.GoOffline(c.Request().Context(), who.UserID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver is offline", driver)
}

// UpdateLocation stores the driver's reported position
func (h *DriverHandler) UpdateLocation(c echo.Context) error {
	who, ok := caller(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.LocationUpdate
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	driver, err := h.driverUC.UpdateLocation(c.Request().Context(), who.UserID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Location updated", driver)
}

// NearbyRides lists open rides near the driver
func (h *DriverHandler) NearbyRides(c echo.Context) error {
	who, ok := caller(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	offers, err := h.driverUC.NearbyRides(c.Request().Context(), who.UserID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Nearby rides retrieved", offers)
}

// AcceptRide assigns the ride to the driver
func (h *DriverHandler) AcceptRide(c echo.Context) error {
	return acceptRide(c, h.rideUC)
}

// StartRide starts the driver's accepted ride
func (h *DriverHandler) StartRide(c echo.Context) error {
	return h.moveRide(c, "Ride started", h.rideUC.StartRide)
}

// CompleteRide completes the driver's started ride
func (h *DriverHandler) CompleteRide(c echo.Context) error {
	return h.moveRide(c, "Ride completed", h.rideUC.CompleteRide)
}

type rideMove func(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error)

func (h *DriverHandler) moveRide(c echo.Context, message string, move rideMove) error {
	who, ok := caller(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := rideIDParam(c)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	ride, err := move(c.Request().Context(), rideID, who.UserID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, message, ride)
}

// MyRides lists the driver's ongoing rides
func (h *DriverHandler) MyRides(c echo.Context) error {
	who, ok := caller(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	active, err := h.driverUC.ActiveRides(c.Request().Context(), who.UserID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Active rides retrieved", active)
}

// RideHistory lists the driver's completed rides
func (h *DriverHandler) RideHistory(c echo.Context) error {
	who, ok := caller(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	history, err := h.driverUC.RideHistory(c.Request().Context(), who.UserID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride history retrieved", history)
}

// GetProfile returns the driver's profile
func (h *DriverHandler) GetProfile(c echo.Context) error {
	who, ok := caller(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	profile, err := h.driverUC.GetProfile(c.Request().Context(), who.UserID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved", profile)
}

// SaveProfile registers the driver's license and vehicle
func (h *DriverHandler) SaveProfile(c echo.Context) error {
	who, ok := caller(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.DriverProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	profile, err := h.driverUC.SaveProfile(c.Request().Context(), who.UserID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile saved", profile)
}

// WalletHistory lists the driver's wallet movements
func (h *DriverHandler) WalletHistory(c echo.Context) error {
	who, ok := caller(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	summary, err := h.driverUC.WalletHistory(c.Request().Context(), who.UserID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Wallet history retrieved", summary)
}
