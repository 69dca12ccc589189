package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/piresc/wheelshare/internal/pkg/apperror"
	"github.com/piresc/wheelshare/internal/pkg/logger"
	"github.com/piresc/wheelshare/internal/pkg/metrics"
	"github.com/piresc/wheelshare/internal/pkg/models"
	nrpkg "github.com/piresc/wheelshare/internal/pkg/newrelic"
	"github.com/piresc/wheelshare/internal/utils"
	"github.com/piresc/wheelshare/services/rides"
)

// RecordPayment settles a COMPLETED ride once and credits the driver's earning
func (uc *rideUC) RecordPayment(ctx context.Context, customerID, rideID uuid.UUID, req *models.PaymentRequest) (*models.Payment, error) {
	defer nrpkg.StartSegment(ctx, "RideUC.RecordPayment")()

	ride, err := uc.ridesRepo.GetRideByID(ctx, rideID)
	if err != nil {
		return nil, classifyStoreError(err, "failed to get ride")
	}
	if ride.CustomerID != customerID {
		return nil, apperror.Forbidden("ride %s does not belong to the caller", rideID)
	}
	if ride.Status != models.RideStatusCompleted {
		return nil, apperror.InvalidTransition(string(ride.Status), string(models.RideStatusCompleted))
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	now := uc.now()
	amount := ride.ChargeableFare()
	payment := &models.Payment{
		ID:        uuid.New(),
		RideID:    ride.ID,
		Amount:    amount,
		Method:    req.PaymentMethod,
		Status:    models.PaymentStatusCompleted,
		CreatedAt: now,
	}
	switch {
	case req.PaymentID != "":
		ref := req.PaymentID
		payment.TransactionRef = &ref
	case req.PaymentMethod == models.PaymentMethodUPI:
		ref := uuid.NewString()
		payment.TransactionRef = &ref
	}

	var credit *models.WalletEntry
	if ride.DriverID != nil {
		credit = &models.WalletEntry{
			ID:              uuid.New(),
			DriverID:        *ride.DriverID,
			RideID:          &ride.ID,
			Amount:          uc.calc.DriverEarning(amount),
			TransactionType: models.WalletCredit,
			Description:     fmt.Sprintf("Earning for ride %s", ride.ID),
			CreatedAt:       now,
		}
	}

	err = uc.paymentRepo.RecordPayment(ctx, payment, credit)
	if errors.Is(err, rides.ErrNotApplied) {
		return nil, apperror.AlreadyPaid("ride %s is already paid", rideID)
	}
	if err != nil {
		return nil, apperror.Internal(err, "failed to record payment")
	}
	metrics.PaymentsTotal.WithLabelValues(string(payment.Method)).Inc()

	logger.InfoCtx(ctx, "Payment recorded",
		logger.Stringer("ride_id", rideID),
		logger.Stringer("payment_id", payment.ID),
		logger.String("method", string(payment.Method)),
		logger.Float64("amount", amount))

	event := models.NewRideEvent(models.RideEventPaid, ride, now)
	event.PaymentMethod = &payment.Method
	uc.publish(ctx, event)

	return payment, nil
}
