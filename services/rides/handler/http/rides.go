package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/piresc/wheelshare/internal/pkg/logger"
	"github.com/piresc/wheelshare/internal/pkg/models"
	"github.com/piresc/wheelshare/internal/utils"
	"github.com/piresc/wheelshare/services/rides"
)

// RidesHandler handles HTTP requests for ride operations
type RidesHandler struct {
	rideUC rides.RideUC
}

// NewRidesHandler creates a new ride HTTP handler
func NewRidesHandler(rideUC rides.RideUC) *RidesHandler {
	return &RidesHandler{
		rideUC: rideUC,
	}
}

// RequestRide books a ride for the calling customer
func (h *RidesHandler) RequestRide(c echo.Context) error {
	who, ok := caller(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.RideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	resp, err := h.rideUC.RequestRide(c.Request().Context(), who.UserID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Ride requested successfully", resp)
}

// EstimateFare quotes a trip without booking it
func (h *RidesHandler) EstimateFare(c echo.Context) error {
	var req models.FareEstimateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	estimate, err := h.rideUC.EstimateFare(c.Request().Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Fare estimated", estimate)
}

// PendingRides lists open rides
func (h *RidesHandler) PendingRides(c echo.Context) error {
	pending, err := h.rideUC.ListPendingRides(c.Request().Context())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Pending rides retrieved", pending)
}

// AcceptRide assigns the ride to the calling driver
func (h *RidesHandler) AcceptRide(c echo.Context) error {
	return acceptRide(c, h.rideUC)
}

// RejectRide records the calling driver declining the ride
func (h *RidesHandler) RejectRide(c echo.Context) error {
	who, ok := caller(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := rideIDParam(c)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	if err := h.rideUC.RejectRide(c.Request().Context(), rideID, who.UserID); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride rejected", nil)
}

// CancelRide cancels the caller's open ride
func (h *RidesHandler) CancelRide(c echo.Context) error {
	who, ok := caller(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := rideIDParam(c)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	ride, err := h.rideUC.CancelRide(c.Request().Context(), rideID, who.UserID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride cancelled", ride)
}

// PayRide records the payment of the caller's completed ride
func (h *RidesHandler) PayRide(c echo.Context) error {
	who, ok := caller(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := rideIDParam(c)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	var req models.PaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	payment, err := h.rideUC.RecordPayment(c.Request().Context(), who.UserID, rideID, &req)
	if err != nil {
		logger.WarnCtx(c.Request().Context(), "Payment not recorded",
			logger.Stringer("ride_id", rideID),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payment recorded", payment)
}

// History lists the caller's rides
func (h *RidesHandler) History(c echo.Context) error {
	who, ok := caller(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	history, err := h.rideUC.CustomerRideHistory(c.Request().Context(), who.UserID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride history retrieved", history)
}

// GetRide returns the polling snapshot of a ride
func (h *RidesHandler) GetRide(c echo.Context) error {
	who, ok := caller(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := rideIDParam(c)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	details, err := h.rideUC.GetRideDetails(c.Request().Context(), rideID, who)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride retrieved", details)
}

// PublicStats returns the landing page counters
func (h *RidesHandler) PublicStats(c echo.Context) error {
	stats, err := h.rideUC.PublicStats(c.Request().Context())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Stats retrieved", stats)
}

func acceptRide(c echo.Context, rideUC rides.RideUC) error {
	who, ok := caller(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := rideIDParam(c)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	ride, err := rideUC.AcceptRide(c.Request().Context(), rideID, who.UserID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride accepted", ride)
}
