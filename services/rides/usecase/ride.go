package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/piresc/wheelshare/internal/pkg/apperror"
	"github.com/piresc/wheelshare/internal/pkg/logger"
	"github.com/piresc/wheelshare/internal/pkg/metrics"
	"github.com/piresc/wheelshare/internal/pkg/models"
	nrpkg "github.com/piresc/wheelshare/internal/pkg/newrelic"
	"github.com/piresc/wheelshare/internal/pkg/pricing"
	"github.com/piresc/wheelshare/internal/utils"
	"github.com/piresc/wheelshare/services/rides"
)

const defaultGeohashPrecision uint = 5

// rideUC implements rides.RideUC
type rideUC struct {
	cfg         *models.Config
	calc        *pricing.Calculator
	ridesRepo   rides.RideRepo
	paymentRepo rides.PaymentRepo
	ridesGW     rides.RideGW
	now         func() time.Time
}

// NewRideUC creates the ride lifecycle use case. It fails when the tariff is invalid.
func NewRideUC(
	cfg *models.Config,
	rideRepo rides.RideRepo,
	paymentRepo rides.PaymentRepo,
	rideGW rides.RideGW,
) (rides.RideUC, error) {
	calc, err := pricing.NewCalculator(cfg.Pricing)
	if err != nil {
		return nil, fmt.Errorf("invalid pricing configuration: %w", err)
	}
	return &rideUC{
		cfg:         cfg,
		calc:        calc,
		ridesRepo:   rideRepo,
		paymentRepo: paymentRepo,
		ridesGW:     rideGW,
		now:         time.Now,
	}, nil
}

// RequestRide books a new ride in REQUESTED status
func (uc *rideUC) RequestRide(ctx context.Context, customerID uuid.UUID, req *models.RideRequest) (*models.RideRequestResponse, error) {
	defer nrpkg.StartSegment(ctx, "RideUC.RequestRide")()

	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	distance := utils.DistanceKm(req.SourceLat, req.SourceLng, req.DestinationLat, req.DestinationLng)
	fare := uc.calc.EstimateFare(distance)
	if uc.cfg.Rides.AcceptClientFare && req.EstimatedFare > 0 {
		fare = req.EstimatedFare
	}

	ride := &models.Ride{
		ID:                 uuid.New(),
		CustomerID:         customerID,
		SourceLat:          req.SourceLat,
		SourceLng:          req.SourceLng,
		SourceAddress:      req.SourceAddress,
		DestinationLat:     req.DestinationLat,
		DestinationLng:     req.DestinationLng,
		DestinationAddress: req.DestinationAddress,
		PickupGeohash:      utils.EncodeGeohash(req.SourceLat, req.SourceLng, uc.geohashPrecision()),
		DistanceKm:         distance,
		Fare:               fare,
		Status:             models.RideStatusRequested,
		RequestedAt:        uc.now(),
	}

	if err := uc.ridesRepo.CreateRide(ctx, ride); err != nil {
		metrics.TrackTransition("request", metrics.ResultError)
		return nil, apperror.Internal(err, "failed to create ride")
	}
	metrics.TrackTransition("request", metrics.ResultApplied)

	logger.InfoCtx(ctx, "Ride requested",
		logger.Stringer("ride_id", ride.ID),
		logger.Stringer("customer_id", customerID),
		logger.Float64("distance_km", distance),
		logger.Float64("fare", fare))

	uc.publish(ctx, models.NewRideEvent(models.RideEventRequested, ride, ride.RequestedAt))

	return &models.RideRequestResponse{
		RideID:        ride.ID,
		DistanceKm:    pricing.Round2(distance),
		EstimatedFare: pricing.Round2(fare),
	}, nil
}

// EstimateFare quotes a trip without persisting anything
func (uc *rideUC) EstimateFare(ctx context.Context, req *models.FareEstimateRequest) (*models.FareEstimate, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	distance := utils.DistanceKm(req.SourceLat, req.SourceLng, req.DestinationLat, req.DestinationLng)
	return &models.FareEstimate{
		DistanceKm:    pricing.Round2(distance),
		EstimatedFare: pricing.Round2(uc.calc.EstimateFare(distance)),
	}, nil
}

// ListPendingRides returns unassigned REQUESTED rides, oldest first
func (uc *rideUC) ListPendingRides(ctx context.Context) ([]*models.Ride, error) {
	open, err := uc.ridesRepo.ListOpenRides(ctx)
	if err != nil {
		return nil, apperror.Internal(err, "failed to list pending rides")
	}
	return open, nil
}

// GetRideDetails returns the polling snapshot of a ride to a caller allowed to see it
func (uc *rideUC) GetRideDetails(ctx context.Context, rideID uuid.UUID, caller models.Caller) (*models.RideDetails, error) {
	details, err := uc.ridesRepo.GetRideDetails(ctx, rideID)
	if err != nil {
		return nil, classifyStoreError(err, "failed to get ride details")
	}

	if !canView(&details.Ride, caller) {
		return nil, apperror.Forbidden("not allowed to view ride %s", rideID)
	}
	return details, nil
}

// canView: owners, the assigned driver and admins always; any driver while the ride is open
func canView(ride *models.Ride, caller models.Caller) bool {
	switch {
	case caller.Role == models.RoleAdmin:
		return true
	case ride.CustomerID == caller.UserID:
		return true
	case ride.IsAssignedTo(caller.UserID):
		return true
	case caller.Role == models.RoleDriver && ride.Status == models.RideStatusRequested:
		return true
	}
	return false
}

// CustomerRideHistory lists every ride of a customer, newest first
func (uc *rideUC) CustomerRideHistory(ctx context.Context, customerID uuid.UUID) ([]*models.RideDetails, error) {
	history, err := uc.ridesRepo.ListCustomerRides(ctx, customerID)
	if err != nil {
		return nil, apperror.Internal(err, "failed to list customer rides")
	}
	return history, nil
}

// PublicStats returns the landing page counters
func (uc *rideUC) PublicStats(ctx context.Context) (*models.PublicStats, error) {
	stats, err := uc.ridesRepo.GetPublicStats(ctx)
	if err != nil {
		return nil, apperror.Internal(err, "failed to load stats")
	}
	return stats, nil
}

// publish sends a ride event. Failures are logged and never undo the committed change.
func (uc *rideUC) publish(ctx context.Context, event *models.RideEvent) {
	if uc.ridesGW == nil {
		return
	}
	if err := uc.ridesGW.PublishRideEvent(ctx, event); err != nil {
		metrics.EventPublishFailures.WithLabelValues(string(event.Type)).Inc()
		logger.WarnCtx(ctx, "Failed to publish ride event",
			logger.String("event", string(event.Type)),
			logger.Stringer("ride_id", event.RideID),
			logger.Err(err))
	}
}

func (uc *rideUC) geohashPrecision() uint {
	if uc.cfg.Events.GeohashPrecision == 0 {
		return defaultGeohashPrecision
	}
	return uc.cfg.Events.GeohashPrecision
}

// classifyStoreError keeps classified errors and wraps the rest as internal
func classifyStoreError(err error, msg string) error {
	if apperror.KindOf(err) != apperror.KindInternal {
		return err
	}
	return apperror.Internal(err, msg)
}
