package rides

import (
	"context"

	"github.com/google/uuid"

	"github.com/piresc/wheelshare/internal/pkg/models"
)

// RideUC defines the ride lifecycle, payment and ride query operations
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/wheelshare/services/rides RideUC,DriverUC
type RideUC interface {
	RequestRide(ctx context.Context, customerID uuid.UUID, req *models.RideRequest) (*models.RideRequestResponse, error)
	EstimateFare(ctx context.Context, req *models.FareEstimateRequest) (*models.FareEstimate, error)
	ListPendingRides(ctx context.Context) ([]*models.Ride, error)
	AcceptRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error)
	RejectRide(ctx context.Context, rideID, driverID uuid.UUID) error
	StartRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error)
	CompleteRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error)
	CancelRide(ctx context.Context, rideID, customerID uuid.UUID) (*models.Ride, error)
	RecordPayment(ctx context.Context, customerID, rideID uuid.UUID, req *models.PaymentRequest) (*models.Payment, error)
	GetRideDetails(ctx context.Context, rideID uuid.UUID, caller models.Caller) (*models.RideDetails, error)
	CustomerRideHistory(ctx context.Context, customerID uuid.UUID) ([]*models.RideDetails, error)
	PublicStats(ctx context.Context) (*models.PublicStats, error)
}

// DriverUC defines driver availability, dispatch and driver account operations
type DriverUC interface {
	GoOnline(ctx context.Context, driverID uuid.UUID) (*models.Driver, error)
	GoOffline(ctx context.Context, driverID uuid.UUID) (*models.Driver, error)
	UpdateLocation(ctx context.Context, driverID uuid.UUID, req *models.LocationUpdate) (*models.Driver, error)
	NearbyRides(ctx context.Context, driverID uuid.UUID) ([]*models.RideOffer, error)
	ActiveRides(ctx context.Context, driverID uuid.UUID) ([]*models.RideDetails, error)
	RideHistory(ctx context.Context, driverID uuid.UUID) ([]*models.DriverRideSummary, error)
	SaveProfile(ctx context.Context, driverID uuid.UUID, req *models.DriverProfileRequest) (*models.DriverProfile, error)
	GetProfile(ctx context.Context, driverID uuid.UUID) (*models.DriverProfile, error)
	WalletHistory(ctx context.Context, driverID uuid.UUID) (*models.WalletSummary, error)
}
