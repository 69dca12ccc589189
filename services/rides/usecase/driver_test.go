package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/wheelshare/internal/pkg/apperror"
	"github.com/piresc/wheelshare/internal/pkg/models"
	"github.com/piresc/wheelshare/services/rides"
	"github.com/piresc/wheelshare/services/rides/mocks"
)

type driverUCMocks struct {
	rideRepo    *mocks.MockRideRepo
	driverRepo  *mocks.MockDriverRepo
	paymentRepo *mocks.MockPaymentRepo
}

func newTestDriverUC(t *testing.T, cfg *models.Config) (*driverUC, driverUCMocks) {
	ctrl := gomock.NewController(t)
	m := driverUCMocks{
		rideRepo:    mocks.NewMockRideRepo(ctrl),
		driverRepo:  mocks.NewMockDriverRepo(ctrl),
		paymentRepo: mocks.NewMockPaymentRepo(ctrl),
	}
	uc, err := NewDriverUC(cfg, m.rideRepo, m.driverRepo, m.paymentRepo)
	require.NoError(t, err)

	impl := uc.(*driverUC)
	impl.now = func() time.Time { return fixedNow }
	return impl, m
}

func TestGoOnline(t *testing.T) {
	driverID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		uc, m := newTestDriverUC(t, testConfig())
		m.driverRepo.EXPECT().SetAvailability(gomock.Any(), driverID, true, fixedNow).
			Return(&models.Driver{UserID: driverID, IsAvailable: true}, nil)

		driver, err := uc.GoOnline(context.Background(), driverID)
		require.NoError(t, err)
		assert.True(t, driver.IsAvailable)
	})

	t.Run("Busy driver", func(t *testing.T) {
		uc, m := newTestDriverUC(t, testConfig())
		rideID := uuid.New()
		m.driverRepo.EXPECT().SetAvailability(gomock.Any(), driverID, true, fixedNow).Return(nil, rides.ErrNotApplied)
		m.driverRepo.EXPECT().GetDriver(gomock.Any(), driverID).Return(&models.Driver{UserID: driverID, ActiveRideID: &rideID}, nil)

		_, err := uc.GoOnline(context.Background(), driverID)
		assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	})

	t.Run("Unknown driver", func(t *testing.T) {
		uc, m := newTestDriverUC(t, testConfig())
		m.driverRepo.EXPECT().SetAvailability(gomock.Any(), driverID, true, fixedNow).Return(nil, rides.ErrNotApplied)
		m.driverRepo.EXPECT().GetDriver(gomock.Any(), driverID).Return(nil, apperror.NotFound("driver not found"))

		_, err := uc.GoOnline(context.Background(), driverID)
		assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	})
}

func TestGoOffline(t *testing.T) {
	driverID := uuid.New()
	uc, m := newTestDriverUC(t, testConfig())

	m.driverRepo.EXPECT().SetAvailability(gomock.Any(), driverID, false, fixedNow).
		Return(&models.Driver{UserID: driverID}, nil)
	driver, err := uc.GoOffline(context.Background(), driverID)
	require.NoError(t, err)
	assert.False(t, driver.IsAvailable)

	m.driverRepo.EXPECT().SetAvailability(gomock.Any(), driverID, false, fixedNow).Return(nil, rides.ErrNotApplied)
	_, err = uc.GoOffline(context.Background(), driverID)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestUpdateLocation(t *testing.T) {
	driverID := uuid.New()

	t.Run("Stores position", func(t *testing.T) {
		uc, m := newTestDriverUC(t, testConfig())
		m.driverRepo.EXPECT().UpdateLocation(gomock.Any(), driverID, 19.07, 72.87, fixedNow).
			Return(&models.Driver{UserID: driverID, IsAvailable: true, CurrentLatitude: 19.07, CurrentLongitude: 72.87}, nil)

		driver, err := uc.UpdateLocation(context.Background(), driverID, &models.LocationUpdate{Latitude: 19.07, Longitude: 72.87})
		require.NoError(t, err)
		assert.True(t, driver.HasPosition())
	})

	t.Run("Offline driver", func(t *testing.T) {
		uc, m := newTestDriverUC(t, testConfig())
		m.driverRepo.EXPECT().UpdateLocation(gomock.Any(), driverID, 19.07, 72.87, fixedNow).Return(nil, rides.ErrNotApplied)
		m.driverRepo.EXPECT().GetDriver(gomock.Any(), driverID).Return(&models.Driver{UserID: driverID}, nil)

		_, err := uc.UpdateLocation(context.Background(), driverID, &models.LocationUpdate{Latitude: 19.07, Longitude: 72.87})
		assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	})

	t.Run("Out of range", func(t *testing.T) {
		uc, _ := newTestDriverUC(t, testConfig())

		_, err := uc.UpdateLocation(context.Background(), driverID, &models.LocationUpdate{Latitude: -91, Longitude: 0})
		assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	})
}

func TestActiveRides(t *testing.T) {
	driverID := uuid.New()
	uc, m := newTestDriverUC(t, testConfig())

	active := []*models.RideDetails{{Ride: *sampleRide(models.RideStatusStarted)}}
	m.rideRepo.EXPECT().ListDriverRides(gomock.Any(), driverID, models.RideStatusAccepted, models.RideStatusStarted).Return(active, nil)

	got, err := uc.ActiveRides(context.Background(), driverID)
	require.NoError(t, err)
	assert.Equal(t, active, got)
}

func TestRideHistory(t *testing.T) {
	driverID := uuid.New()
	uc, m := newTestDriverUC(t, testConfig())

	paid := sampleRide(models.RideStatusCompleted)
	unpaid := sampleRide(models.RideStatusCompleted)
	unpaid.FinalFare = nil
	customerName := "Asha"
	completedStatus := models.PaymentStatusCompleted

	m.rideRepo.EXPECT().ListDriverRides(gomock.Any(), driverID, models.RideStatusCompleted).Return([]*models.RideDetails{
		{Ride: *paid, CustomerName: &customerName, PaymentStatus: &completedStatus},
		{Ride: *unpaid},
	}, nil)

	history, err := uc.RideHistory(context.Background(), driverID)
	require.NoError(t, err)
	require.Len(t, history, 2)

	assert.Equal(t, "Asha", history[0].CustomerName)
	assert.Equal(t, 6.39, history[0].DistanceKm)
	assert.Equal(t, 145.87, history[0].Fare)
	assert.Equal(t, 131.28, history[0].DriverEarning)
	assert.Equal(t, models.PaymentStatusCompleted, history[0].PaymentStatus)
	assert.Equal(t, "PENDING", history[1].PaymentStatus)
}

func TestSaveProfile(t *testing.T) {
	driverID := uuid.New()

	t.Run("Registers vehicle", func(t *testing.T) {
		uc, m := newTestDriverUC(t, testConfig())
		m.driverRepo.EXPECT().UpsertProfile(gomock.Any(), driverID, "MH-01-2024", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, license string, v *models.Vehicle) (*models.DriverProfile, error) {
				assert.Equal(t, driverID, v.DriverID)
				assert.True(t, v.IsActive)
				assert.Equal(t, 4, v.Seats)
				return &models.DriverProfile{Driver: models.Driver{UserID: driverID, LicenseNumber: license}, Vehicle: v}, nil
			})

		profile, err := uc.SaveProfile(context.Background(), driverID, &models.DriverProfileRequest{
			LicenseNumber: "MH-01-2024", VehicleType: "SEDAN", VehicleNumber: "MH01AB1234", Seats: 4,
		})
		require.NoError(t, err)
		assert.Equal(t, "MH01AB1234", profile.Vehicle.VehicleNumber)
	})

	t.Run("Missing license", func(t *testing.T) {
		uc, _ := newTestDriverUC(t, testConfig())

		_, err := uc.SaveProfile(context.Background(), driverID, &models.DriverProfileRequest{VehicleType: "SEDAN", VehicleNumber: "X", Seats: 4})
		assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	})
}

func TestGetProfile(t *testing.T) {
	driverID := uuid.New()
	uc, m := newTestDriverUC(t, testConfig())

	m.driverRepo.EXPECT().GetProfile(gomock.Any(), driverID).Return(nil, apperror.NotFound("driver not found"))
	_, err := uc.GetProfile(context.Background(), driverID)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestWalletHistory(t *testing.T) {
	driverID := uuid.New()

	t.Run("Balance nets credits and debits", func(t *testing.T) {
		uc, m := newTestDriverUC(t, testConfig())
		m.paymentRepo.EXPECT().ListWalletEntries(gomock.Any(), driverID).Return([]*models.WalletEntry{
			{Amount: 131.281, TransactionType: models.WalletCredit},
			{Amount: 40, TransactionType: models.WalletCredit},
			{Amount: 20.5, TransactionType: models.WalletDebit},
		}, nil)

		summary, err := uc.WalletHistory(context.Background(), driverID)
		require.NoError(t, err)
		assert.Equal(t, 150.78, summary.TotalBalance)
		assert.Len(t, summary.Transactions, 3)
	})

	t.Run("Empty wallet", func(t *testing.T) {
		uc, m := newTestDriverUC(t, testConfig())
		m.paymentRepo.EXPECT().ListWalletEntries(gomock.Any(), driverID).Return(nil, nil)

		summary, err := uc.WalletHistory(context.Background(), driverID)
		require.NoError(t, err)
		assert.Zero(t, summary.TotalBalance)
		assert.NotNil(t, summary.Transactions)
	})

	t.Run("Store failure", func(t *testing.T) {
		uc, m := newTestDriverUC(t, testConfig())
		m.paymentRepo.EXPECT().ListWalletEntries(gomock.Any(), driverID).Return(nil, errors.New("db down"))

		_, err := uc.WalletHistory(context.Background(), driverID)
		assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
	})
}
