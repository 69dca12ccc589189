package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/piresc/wheelshare/internal/pkg/database"
	"github.com/piresc/wheelshare/internal/pkg/middleware"
	"github.com/piresc/wheelshare/internal/pkg/models"
	"github.com/piresc/wheelshare/services/rides"
	httpHandler "github.com/piresc/wheelshare/services/rides/handler/http"
)

// Handler combines all handlers for the rides service
type Handler struct {
	rides   *httpHandler.RidesHandler
	drivers *httpHandler.DriverHandler
	cfg     *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(rideUC rides.RideUC, driverUC rides.DriverUC, cfg *models.Config) *Handler {
	return &Handler{
		rides:   httpHandler.NewRidesHandler(rideUC),
		drivers: httpHandler.NewDriverHandler(driverUC, rideUC),
		cfg:     cfg,
	}
}

// RegisterRoutes registers all HTTP routes. redis backs the rate limiter of the polling
// endpoints and may be nil.
func (h *Handler) RegisterRoutes(e *echo.Echo, redis *database.RedisClient) {
	api := e.Group("/api")
	api.GET("/stats/public", h.rides.PublicStats)

	auth := api.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))
	polled := h.pollingLimit(redis)

	customer := middleware.RequireRole(models.RoleCustomer)
	driver := middleware.RequireRole(models.RoleDriver)

	ridesGroup := auth.Group("/rides")
	ridesGroup.POST("/request", h.rides.RequestRide, customer)
	ridesGroup.POST("/estimate-fare", h.rides.EstimateFare, customer)
	ridesGroup.GET("/history", h.rides.History, customer)
	ridesGroup.POST("/cancel/:rideID", h.rides.CancelRide, customer)
	ridesGroup.POST("/pay/:rideID", h.rides.PayRide, customer)
	ridesGroup.GET("/pending", h.rides.PendingRides, append([]echo.MiddlewareFunc{driver}, polled...)...)
	ridesGroup.POST("/:rideID/accept", h.rides.AcceptRide, driver)
	ridesGroup.POST("/:rideID/reject", h.rides.RejectRide, driver)
	ridesGroup.GET("/:rideID", h.rides.GetRide, polled...)

	driverGroup := auth.Group("/driver", driver)
	driverGroup.POST("/go-online", h.drivers.GoOnline)
	driverGroup.POST("/go-offline", h.drivers.GoOffline)
	driverGroup.POST("/update-location", h.drivers.UpdateLocation, polled...)
	driverGroup.GET("/nearby-rides", h.drivers.NearbyRides, polled...)
	driverGroup.POST("/accept-ride/:rideID", h.drivers.AcceptRide)
	driverGroup.POST("/start-ride/:rideID", h.drivers.StartRide)
	driverGroup.POST("/complete-ride/:rideID", h.drivers.CompleteRide)
	driverGroup.GET("/my-rides", h.drivers.MyRides, polled...)
	driverGroup.GET("/ride-history", h.drivers.RideHistory)
	driverGroup.GET("/profile", h.drivers.GetProfile)
	driverGroup.POST("/profile", h.drivers.SaveProfile)
	driverGroup.GET("/wallet/history", h.drivers.WalletHistory)
}

// pollingLimit returns the rate limiter for endpoints clients poll, or nothing when disabled
func (h *Handler) pollingLimit(redis *database.RedisClient) []echo.MiddlewareFunc {
	if !h.cfg.RateLimit.Enabled || redis == nil || h.cfg.RateLimit.Limit <= 0 {
		return nil
	}
	return []echo.MiddlewareFunc{
		middleware.RateLimiterMiddleware(middleware.NewRateLimiterConfig(redis, h.cfg.RateLimit)),
	}
}
