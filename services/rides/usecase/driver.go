package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/piresc/wheelshare/internal/pkg/apperror"
	"github.com/piresc/wheelshare/internal/pkg/logger"
	"github.com/piresc/wheelshare/internal/pkg/models"
	"github.com/piresc/wheelshare/internal/pkg/pricing"
	"github.com/piresc/wheelshare/internal/utils"
	"github.com/piresc/wheelshare/services/rides"
)

const paymentStatusPending = "PENDING"

// driverUC implements rides.DriverUC
type driverUC struct {
	cfg         *models.Config
	calc        *pricing.Calculator
	ridesRepo   rides.RideRepo
	driverRepo  rides.DriverRepo
	paymentRepo rides.PaymentRepo
	now         func() time.Time
}

// NewDriverUC creates the driver use case
func NewDriverUC(
	cfg *models.Config,
	rideRepo rides.RideRepo,
	driverRepo rides.DriverRepo,
	paymentRepo rides.PaymentRepo,
) (rides.DriverUC, error) {
	calc, err := pricing.NewCalculator(cfg.Pricing)
	if err != nil {
		return nil, fmt.Errorf("invalid pricing configuration: %w", err)
	}
	return &driverUC{
		cfg:         cfg,
		calc:        calc,
		ridesRepo:   rideRepo,
		driverRepo:  driverRepo,
		paymentRepo: paymentRepo,
		now:         time.Now,
	}, nil
}

// GoOnline makes a driver without an active ride available for dispatch
func (uc *driverUC) GoOnline(ctx context.Context, driverID uuid.UUID) (*models.Driver, error) {
	driver, err := uc.driverRepo.SetAvailability(ctx, driverID, true, uc.now())
	if errors.Is(err, rides.ErrNotApplied) {
		if _, err := uc.getDriver(ctx, driverID); err != nil {
			return nil, err
		}
		return nil, apperror.Conflict("driver has an active ride")
	}
	if err != nil {
		return nil, apperror.Internal(err, "failed to update availability")
	}

	logger.InfoCtx(ctx, "Driver online", logger.Stringer("driver_id", driverID))
	return driver, nil
}

// GoOffline removes a driver from dispatch
func (uc *driverUC) GoOffline(ctx context.Context, driverID uuid.UUID) (*models.Driver, error) {
	driver, err := uc.driverRepo.SetAvailability(ctx, driverID, false, uc.now())
	if errors.Is(err, rides.ErrNotApplied) {
		return nil, apperror.NotFound("driver %s not found", driverID)
	}
	if err != nil {
		return nil, apperror.Internal(err, "failed to update availability")
	}

	logger.InfoCtx(ctx, "Driver offline", logger.Stringer("driver_id", driverID))
	return driver, nil
}

// UpdateLocation stores the driver's position; offline drivers without a ride are rejected
func (uc *driverUC) UpdateLocation(ctx context.Context, driverID uuid.UUID, req *models.LocationUpdate) (*models.Driver, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	driver, err := uc.driverRepo.UpdateLocation(ctx, driverID, req.Latitude, req.Longitude, uc.now())
	if errors.Is(err, rides.ErrNotApplied) {
		if _, err := uc.getDriver(ctx, driverID); err != nil {
			return nil, err
		}
		return nil, apperror.Conflict("driver is offline")
	}
	if err != nil {
		return nil, apperror.Internal(err, "failed to update location")
	}
	return driver, nil
}

// ActiveRides lists the driver's ACCEPTED and STARTED rides
func (uc *driverUC) ActiveRides(ctx context.Context, driverID uuid.UUID) ([]*models.RideDetails, error) {
	active, err := uc.ridesRepo.ListDriverRides(ctx, driverID, models.RideStatusAccepted, models.RideStatusStarted)
	if err != nil {
		return nil, apperror.Internal(err, "failed to list active rides")
	}
	return active, nil
}

// RideHistory lists the driver's completed rides with the earning of each
func (uc *driverUC) RideHistory(ctx context.Context, driverID uuid.UUID) ([]*models.DriverRideSummary, error) {
	completed, err := uc.ridesRepo.ListDriverRides(ctx, driverID, models.RideStatusCompleted)
	if err != nil {
		return nil, apperror.Internal(err, "failed to list ride history")
	}

	history := make([]*models.DriverRideSummary, 0, len(completed))
	for _, ride := range completed {
		summary := &models.DriverRideSummary{
			RideID:             ride.ID,
			SourceAddress:      ride.SourceAddress,
			DestinationAddress: ride.DestinationAddress,
			DistanceKm:         pricing.Round2(ride.DistanceKm),
			Fare:               pricing.Round2(ride.ChargeableFare()),
			DriverEarning:      pricing.Round2(uc.calc.DriverEarning(ride.ChargeableFare())),
			PaymentStatus:      paymentStatusPending,
			CompletedAt:        ride.CompletedAt,
		}
		if ride.CustomerName != nil {
			summary.CustomerName = *ride.CustomerName
		}
		if ride.PaymentStatus != nil {
			summary.PaymentStatus = *ride.PaymentStatus
		}
		history = append(history, summary)
	}
	return history, nil
}

// SaveProfile records the driver's license and replaces the active vehicle
func (uc *driverUC) SaveProfile(ctx context.Context, driverID uuid.UUID, req *models.DriverProfileRequest) (*models.DriverProfile, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	vehicle := &models.Vehicle{
		ID:            uuid.New(),
		DriverID:      driverID,
		VehicleType:   req.VehicleType,
		VehicleNumber: req.VehicleNumber,
		Seats:         req.Seats,
		IsActive:      true,
		CreatedAt:     uc.now(),
	}
	profile, err := uc.driverRepo.UpsertProfile(ctx, driverID, req.LicenseNumber, vehicle)
	if err != nil {
		return nil, apperror.Internal(err, "failed to save driver profile")
	}

	logger.InfoCtx(ctx, "Driver profile saved",
		logger.Stringer("driver_id", driverID),
		logger.String("vehicle_number", req.VehicleNumber))
	return profile, nil
}

// GetProfile returns the driver record and its active vehicle
func (uc *driverUC) GetProfile(ctx context.Context, driverID uuid.UUID) (*models.DriverProfile, error) {
	profile, err := uc.driverRepo.GetProfile(ctx, driverID)
	if err != nil {
		return nil, classifyStoreError(err, "failed to get driver profile")
	}
	return profile, nil
}

// WalletHistory lists wallet movements, newest first, with the running balance
func (uc *driverUC) WalletHistory(ctx context.Context, driverID uuid.UUID) (*models.WalletSummary, error) {
	entries, err := uc.paymentRepo.ListWalletEntries(ctx, driverID)
	if err != nil {
		return nil, apperror.Internal(err, "failed to list wallet entries")
	}

	var balance float64
	for _, entry := range entries {
		switch entry.TransactionType {
		case models.WalletCredit:
			balance += entry.Amount
		case models.WalletDebit:
			balance -= entry.Amount
		}
	}
	if entries == nil {
		entries = []*models.WalletEntry{}
	}
	return &models.WalletSummary{TotalBalance: pricing.Round2(balance), Transactions: entries}, nil
}

func (uc *driverUC) getDriver(ctx context.Context, driverID uuid.UUID) (*models.Driver, error) {
	driver, err := uc.driverRepo.GetDriver(ctx, driverID)
	if err != nil {
		return nil, classifyStoreError(err, "failed to get driver")
	}
	return driver, nil
}
