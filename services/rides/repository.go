package rides

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/piresc/wheelshare/internal/pkg/models"
)

// ErrNotApplied is returned when a conditional update matched no row
var ErrNotApplied = errors.New("conditional update not applied")

// RideRepo defines ride persistence. Transition methods are single conditional
// updates and return ErrNotApplied when the guard did not hold.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/wheelshare/services/rides RideRepo,DriverRepo,PaymentRepo
type RideRepo interface {
	CreateRide(ctx context.Context, ride *models.Ride) error
	GetRideByID(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	GetRideDetails(ctx context.Context, rideID uuid.UUID) (*models.RideDetails, error)
	ListOpenRides(ctx context.Context) ([]*models.Ride, error)
	ListCustomerRides(ctx context.Context, customerID uuid.UUID) ([]*models.RideDetails, error)
	ListDriverRides(ctx context.Context, driverID uuid.UUID, statuses ...models.RideStatus) ([]*models.RideDetails, error)
	AcceptRide(ctx context.Context, rideID, driverID uuid.UUID, at time.Time) (*models.Ride, error)
	StartRide(ctx context.Context, rideID, driverID uuid.UUID, at time.Time) (*models.Ride, error)
	CompleteRide(ctx context.Context, rideID, driverID uuid.UUID, at time.Time) (*models.Ride, error)
	CancelRide(ctx context.Context, rideID, customerID uuid.UUID, at time.Time) (*models.Ride, error)
	GetPublicStats(ctx context.Context) (*models.PublicStats, error)
}

// DriverRepo defines driver record persistence
type DriverRepo interface {
	GetDriver(ctx context.Context, driverID uuid.UUID) (*models.Driver, error)
	SetAvailability(ctx context.Context, driverID uuid.UUID, available bool, at time.Time) (*models.Driver, error)
	UpdateLocation(ctx context.Context, driverID uuid.UUID, lat, lng float64, at time.Time) (*models.Driver, error)
	UpsertProfile(ctx context.Context, driverID uuid.UUID, licenseNumber string, vehicle *models.Vehicle) (*models.DriverProfile, error)
	GetProfile(ctx context.Context, driverID uuid.UUID) (*models.DriverProfile, error)
}

// PaymentRepo defines payment and driver wallet persistence
type PaymentRepo interface {
	RecordPayment(ctx context.Context, payment *models.Payment, credit *models.WalletEntry) error
	ListWalletEntries(ctx context.Context, driverID uuid.UUID) ([]*models.WalletEntry, error)
}
