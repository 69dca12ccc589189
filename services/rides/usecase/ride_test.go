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

var fixedNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func testConfig() *models.Config {
	return &models.Config{
		Pricing:  models.PricingConfig{BaseFare: 50, PerKmRate: 15, CommissionPercent: 10},
		Dispatch: models.DispatchConfig{RadiusKm: 10},
		Events:   models.EventsConfig{GeohashPrecision: 5},
	}
}

type rideUCMocks struct {
	rideRepo    *mocks.MockRideRepo
	paymentRepo *mocks.MockPaymentRepo
	gw          *mocks.MockRideGW
}

func newTestRideUC(t *testing.T, cfg *models.Config) (*rideUC, rideUCMocks) {
	ctrl := gomock.NewController(t)
	m := rideUCMocks{
		rideRepo:    mocks.NewMockRideRepo(ctrl),
		paymentRepo: mocks.NewMockPaymentRepo(ctrl),
		gw:          mocks.NewMockRideGW(ctrl),
	}
	uc, err := NewRideUC(cfg, m.rideRepo, m.paymentRepo, m.gw)
	require.NoError(t, err)

	impl := uc.(*rideUC)
	impl.now = func() time.Time { return fixedNow }
	return impl, m
}

func sampleRide(status models.RideStatus) *models.Ride {
	ride := &models.Ride{
		ID:                 uuid.New(),
		CustomerID:         uuid.New(),
		SourceLat:          19.07,
		SourceLng:          72.87,
		SourceAddress:      "Bandra",
		DestinationLat:     19.12,
		DestinationLng:     72.90,
		DestinationAddress: "Andheri",
		DistanceKm:         6.391226795057825,
		Fare:               145.86840192586737,
		Status:             status,
		RequestedAt:        fixedNow.Add(-time.Hour),
	}
	if status.HasDriver() {
		driverID := uuid.New()
		ride.DriverID = &driverID
	}
	if status == models.RideStatusCompleted {
		final := ride.Fare
		ride.FinalFare = &final
	}
	return ride
}

func withStatus(ride *models.Ride, status models.RideStatus, driverID *uuid.UUID) *models.Ride {
	updated := *ride
	updated.Status = status
	updated.DriverID = driverID
	return &updated
}

func TestNewRideUC_InvalidPricing(t *testing.T) {
	cfg := testConfig()
	cfg.Pricing.CommissionPercent = 120

	uc, err := NewRideUC(cfg, nil, nil, nil)
	assert.Error(t, err)
	assert.Nil(t, uc)
}

func TestRequestRide(t *testing.T) {
	customerID := uuid.New()
	validReq := func() *models.RideRequest {
		return &models.RideRequest{
			SourceLat: 19.07, SourceLng: 72.87, SourceAddress: "Bandra",
			DestinationLat: 19.12, DestinationLng: 72.90, DestinationAddress: "Andheri",
		}
	}

	tests := []struct {
		name       string
		cfg        func(*models.Config)
		req        func() *models.RideRequest
		mockSetup  func(m rideUCMocks)
		assertFunc func(t *testing.T, resp *models.RideRequestResponse, err error)
	}{
		{
			name: "Server computed fare",
			req:  validReq,
			mockSetup: func(m rideUCMocks) {
				m.rideRepo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, ride *models.Ride) error {
						assert.Equal(t, customerID, ride.CustomerID)
						assert.Equal(t, models.RideStatusRequested, ride.Status)
						assert.Nil(t, ride.DriverID)
						assert.Nil(t, ride.FinalFare)
						assert.Equal(t, fixedNow, ride.RequestedAt)
						assert.InDelta(t, 6.3912, ride.DistanceKm, 0.001)
						assert.InDelta(t, 50+15*ride.DistanceKm, ride.Fare, 1e-9)
						assert.Len(t, ride.PickupGeohash, 5)
						return nil
					})
				m.gw.EXPECT().PublishRideEvent(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, event *models.RideEvent) error {
						assert.Equal(t, models.RideEventRequested, event.Type)
						assert.Equal(t, models.RideStatusRequested, event.Status)
						return nil
					})
			},
			assertFunc: func(t *testing.T, resp *models.RideRequestResponse, err error) {
				require.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, resp.RideID)
				assert.Equal(t, 6.39, resp.DistanceKm)
				assert.Equal(t, 145.87, resp.EstimatedFare)
			},
		},
		{
			name: "Client fare ignored by default",
			req: func() *models.RideRequest {
				req := validReq()
				req.EstimatedFare = 1
				return req
			},
			mockSetup: func(m rideUCMocks) {
				m.rideRepo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).Return(nil)
				m.gw.EXPECT().PublishRideEvent(gomock.Any(), gomock.Any()).Return(nil)
			},
			assertFunc: func(t *testing.T, resp *models.RideRequestResponse, err error) {
				require.NoError(t, err)
				assert.Equal(t, 145.87, resp.EstimatedFare)
			},
		},
		{
			name: "Client fare honoured when enabled",
			cfg:  func(cfg *models.Config) { cfg.Rides.AcceptClientFare = true },
			req: func() *models.RideRequest {
				req := validReq()
				req.EstimatedFare = 120
				return req
			},
			mockSetup: func(m rideUCMocks) {
				m.rideRepo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, ride *models.Ride) error {
						assert.Equal(t, 120.0, ride.Fare)
						return nil
					})
				m.gw.EXPECT().PublishRideEvent(gomock.Any(), gomock.Any()).Return(nil)
			},
			assertFunc: func(t *testing.T, resp *models.RideRequestResponse, err error) {
				require.NoError(t, err)
				assert.Equal(t, 120.0, resp.EstimatedFare)
			},
		},
		{
			name: "Invalid coordinates",
			req: func() *models.RideRequest {
				req := validReq()
				req.SourceLat = 95
				return req
			},
			mockSetup: func(m rideUCMocks) {},
			assertFunc: func(t *testing.T, resp *models.RideRequestResponse, err error) {
				assert.Nil(t, resp)
				assert.True(t, errors.Is(err, apperror.ErrValidation))
			},
		},
		{
			name: "Repository error",
			req:  validReq,
			mockSetup: func(m rideUCMocks) {
				m.rideRepo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			assertFunc: func(t *testing.T, resp *models.RideRequestResponse, err error) {
				assert.Nil(t, resp)
				assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
			},
		},
		{
			name: "Publish failure does not fail the request",
			req:  validReq,
			mockSetup: func(m rideUCMocks) {
				m.rideRepo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).Return(nil)
				m.gw.EXPECT().PublishRideEvent(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
			},
			assertFunc: func(t *testing.T, resp *models.RideRequestResponse, err error) {
				require.NoError(t, err)
				assert.NotNil(t, resp)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			if tt.cfg != nil {
				tt.cfg(cfg)
			}
			uc, m := newTestRideUC(t, cfg)
			tt.mockSetup(m)

			resp, err := uc.RequestRide(context.Background(), customerID, tt.req())
			tt.assertFunc(t, resp, err)
		})
	}
}

func TestEstimateFare(t *testing.T) {
	uc, _ := newTestRideUC(t, testConfig())

	estimate, err := uc.EstimateFare(context.Background(), &models.FareEstimateRequest{
		SourceLat: 19.07, SourceLng: 72.87, DestinationLat: 19.12, DestinationLng: 72.90,
	})
	require.NoError(t, err)
	assert.Equal(t, 6.39, estimate.DistanceKm)
	assert.Equal(t, 145.87, estimate.EstimatedFare)

	_, err = uc.EstimateFare(context.Background(), &models.FareEstimateRequest{SourceLng: 200})
	assert.True(t, errors.Is(err, apperror.ErrValidation))
}

func TestAcceptRide(t *testing.T) {
	driverID := uuid.New()
	otherDriver := uuid.New()

	tests := []struct {
		name      string
		mockSetup func(m rideUCMocks, ride *models.Ride)
		ride      *models.Ride
		wantKind  apperror.Kind
	}{
		{
			name: "Success",
			ride: sampleRide(models.RideStatusRequested),
			mockSetup: func(m rideUCMocks, ride *models.Ride) {
				m.rideRepo.EXPECT().GetRideByID(gomock.Any(), ride.ID).Return(ride, nil)
				m.rideRepo.EXPECT().AcceptRide(gomock.Any(), ride.ID, driverID, fixedNow).
					Return(withStatus(ride, models.RideStatusAccepted, &driverID), nil)
				m.gw.EXPECT().PublishRideEvent(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, event *models.RideEvent) error {
						assert.Equal(t, models.RideEventAccepted, event.Type)
						assert.Equal(t, &driverID, event.DriverID)
						return nil
					})
			},
		},
		{
			name: "Ride not found",
			ride: sampleRide(models.RideStatusRequested),
			mockSetup: func(m rideUCMocks, ride *models.Ride) {
				m.rideRepo.EXPECT().GetRideByID(gomock.Any(), ride.ID).Return(nil, apperror.NotFound("ride not found"))
			},
			wantKind: apperror.KindNotFound,
		},
		{
			name: "Already taken by another driver",
			ride: withStatus(sampleRide(models.RideStatusRequested), models.RideStatusAccepted, &otherDriver),
			mockSetup: func(m rideUCMocks, ride *models.Ride) {
				m.rideRepo.EXPECT().GetRideByID(gomock.Any(), ride.ID).Return(ride, nil)
			},
			wantKind: apperror.KindConflict,
		},
		{
			name: "Cancelled ride",
			ride: sampleRide(models.RideStatusCancelled),
			mockSetup: func(m rideUCMocks, ride *models.Ride) {
				m.rideRepo.EXPECT().GetRideByID(gomock.Any(), ride.ID).Return(ride, nil)
			},
			wantKind: apperror.KindInvalidTransition,
		},
		{
			name: "Lost race reports conflict",
			ride: sampleRide(models.RideStatusRequested),
			mockSetup: func(m rideUCMocks, ride *models.Ride) {
				gomock.InOrder(
					m.rideRepo.EXPECT().GetRideByID(gomock.Any(), ride.ID).Return(ride, nil),
					m.rideRepo.EXPECT().AcceptRide(gomock.Any(), ride.ID, driverID, fixedNow).Return(nil, rides.ErrNotApplied),
					m.rideRepo.EXPECT().GetRideByID(gomock.Any(), ride.ID).
						Return(withStatus(ride, models.RideStatusAccepted, &otherDriver), nil),
				)
			},
			wantKind: apperror.KindConflict,
		},
		{
			name: "Driver busy",
			ride: sampleRide(models.RideStatusRequested),
			mockSetup: func(m rideUCMocks, ride *models.Ride) {
				m.rideRepo.EXPECT().GetRideByID(gomock.Any(), ride.ID).Return(ride, nil)
				m.rideRepo.EXPECT().AcceptRide(gomock.Any(), ride.ID, driverID, fixedNow).
					Return(nil, apperror.Conflict("driver already has an active ride"))
			},
			wantKind: apperror.KindConflict,
		},
		{
			name: "Store failure",
			ride: sampleRide(models.RideStatusRequested),
			mockSetup: func(m rideUCMocks, ride *models.Ride) {
				m.rideRepo.EXPECT().GetRideByID(gomock.Any(), ride.ID).Return(ride, nil)
				m.rideRepo.EXPECT().AcceptRide(gomock.Any(), ride.ID, driverID, fixedNow).Return(nil, errors.New("tx aborted"))
			},
			wantKind: apperror.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, m := newTestRideUC(t, testConfig())
			tt.mockSetup(m, tt.ride)

			ride, err := uc.AcceptRide(context.Background(), tt.ride.ID, driverID)
			if tt.wantKind == "" {
				require.NoError(t, err)
				assert.Equal(t, models.RideStatusAccepted, ride.Status)
				return
			}
			assert.Nil(t, ride)
			assert.Equal(t, tt.wantKind, apperror.KindOf(err))
		})
	}
}

func TestStartRide(t *testing.T) {
	t.Run("Assigned driver starts", func(t *testing.T) {
		uc, m := newTestRideUC(t, testConfig())
		ride := sampleRide(models.RideStatusAccepted)
		driverID := *ride.DriverID

		m.rideRepo.EXPECT().GetRideByID(gomock.Any(), ride.ID).Return(ride, nil)
		m.rideRepo.EXPECT().StartRide(gomock.Any(), ride.ID, driverID, fixedNow).
			Return(withStatus(ride, models.RideStatusStarted, &driverID), nil)
		m.gw.EXPECT().PublishRideEvent(gomock.Any(), gomock.Any()).Return(nil)

		started, err := uc.StartRide(context.Background(), ride.ID, driverID)
		require.NoError(t, err)
		assert.Equal(t, models.RideStatusStarted, started.Status)
	})

	t.Run("Other driver is forbidden", func(t *testing.T) {
		uc, m := newTestRideUC(t, testConfig())
		ride := sampleRide(models.RideStatusAccepted)
		m.rideRepo.EXPECT().GetRideByID(gomock.Any(), ride.ID).Return(ride, nil)

		_, err := uc.StartRide(context.Background(), ride.ID, uuid.New())
		assert.True(t, errors.Is(err, apperror.ErrForbidden))
	})

	t.Run("Requested ride cannot start", func(t *testing.T) {
		uc, m := newTestRideUC(t, testConfig())
		ride := sampleRide(models.RideStatusRequested)
		m.rideRepo.EXPECT().GetRideByID(gomock.Any(), ride.ID).Return(ride, nil)

		_, err := uc.StartRide(context.Background(), ride.ID, uuid.New())
		var appErr *apperror.Error
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperror.KindInvalidTransition, appErr.Kind)
		assert.Equal(t, "REQUESTED", appErr.Current)
		assert.Equal(t, "ACCEPTED", appErr.Expected)
	})

	t.Run("Already started", func(t *testing.T) {
		uc, m := newTestRideUC(t, testConfig())
		ride := sampleRide(models.RideStatusStarted)
		m.rideRepo.EXPECT().GetRideByID(gomock.Any(), ride.ID).Return(ride, nil)

		_, err := uc.StartRide(context.Background(), ride.ID, *ride.DriverID)
		assert.Equal(t, apperror.KindInvalidTransition, apperror.KindOf(err))
	})
}

func TestCompleteRide(t *testing.T) {
	t.Run("Completes with final fare", func(t *testing.T) {
		uc, m := newTestRideUC(t, testConfig())
		ride := sampleRide(models.RideStatusStarted)
		driverID := *ride.DriverID

		completed := withStatus(ride, models.RideStatusCompleted, &driverID)
		final := ride.Fare
		completed.FinalFare = &final
		completed.CompletedAt = &fixedNow

		m.rideRepo.EXPECT().GetRideByID(gomock.Any(), ride.ID).Return(ride, nil)
		m.rideRepo.EXPECT().CompleteRide(gomock.Any(), ride.ID, driverID, fixedNow).Return(completed, nil)
		m.gw.EXPECT().PublishRideEvent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event *models.RideEvent) error {
				assert.Equal(t, models.RideEventCompleted, event.Type)
				require.NotNil(t, event.FinalFare)
				assert.Equal(t, ride.Fare, *event.FinalFare)
				return nil
			})

		got, err := uc.CompleteRide(context.Background(), ride.ID, driverID)
		require.NoError(t, err)
		assert.Equal(t, models.RideStatusCompleted, got.Status)
		assert.Equal(t, &fixedNow, got.CompletedAt)
	})

	t.Run("Accepted ride cannot complete", func(t *testing.T) {
		uc, m := newTestRideUC(t, testConfig())
		ride := sampleRide(models.RideStatusAccepted)
		m.rideRepo.EXPECT().GetRideByID(gomock.Any(), ride.ID).Return(ride, nil)

		_, err := uc.CompleteRide(context.Background(), ride.ID, *ride.DriverID)
		assert.Equal(t, apperror.KindInvalidTransition, apperror.KindOf(err))
	})
}

func TestCancelRide(t *testing.T) {
	t.Run("Owner cancels", func(t *testing.T) {
		uc, m := newTestRideUC(t, testConfig())
		ride := sampleRide(models.RideStatusRequested)

		m.rideRepo.EXPECT().GetRideByID(gomock.Any(), ride.ID).Return(ride, nil)
		m.rideRepo.EXPECT().CancelRide(gomock.Any(), ride.ID, ride.CustomerID, fixedNow).
			Return(withStatus(ride, models.RideStatusCancelled, nil), nil)
		m.gw.EXPECT().PublishRideEvent(gomock.Any(), gomock.Any()).Return(nil)

		cancelled, err := uc.CancelRide(context.Background(), ride.ID, ride.CustomerID)
		require.NoError(t, err)
		assert.Equal(t, models.RideStatusCancelled, cancelled.Status)
	})

	t.Run("Non owner is forbidden", func(t *testing.T) {
		uc, m := newTestRideUC(t, testConfig())
		ride := sampleRide(models.RideStatusRequested)
		m.rideRepo.EXPECT().GetRideByID(gomock.Any(), ride.ID).Return(ride, nil)

		_, err := uc.CancelRide(context.Background(), ride.ID, uuid.New())
		assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
	})

	t.Run("Accepted ride cannot be cancelled", func(t *testing.T) {
		uc, m := newTestRideUC(t, testConfig())
		ride := sampleRide(models.RideStatusAccepted)
		m.rideRepo.EXPECT().GetRideByID(gomock.Any(), ride.ID).Return(ride, nil)

		_, err := uc.CancelRide(context.Background(), ride.ID, ride.CustomerID)
		var appErr *apperror.Error
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "ACCEPTED", appErr.Current)
		assert.Equal(t, "REQUESTED", appErr.Expected)
	})

	t.Run("Accepted between read and update", func(t *testing.T) {
		uc, m := newTestRideUC(t, testConfig())
		ride := sampleRide(models.RideStatusRequested)
		driverID := uuid.New()

		gomock.InOrder(
			m.rideRepo.EXPECT().GetRideByID(gomock.Any(), ride.ID).Return(ride, nil),
			m.rideRepo.EXPECT().CancelRide(gomock.Any(), ride.ID, ride.CustomerID, fixedNow).Return(nil, rides.ErrNotApplied),
			m.rideRepo.EXPECT().GetRideByID(gomock.Any(), ride.ID).
				Return(withStatus(ride, models.RideStatusAccepted, &driverID), nil),
		)

		_, err := uc.CancelRide(context.Background(), ride.ID, ride.CustomerID)
		assert.Equal(t, apperror.KindInvalidTransition, apperror.KindOf(err))
	})
}

func TestRejectRide(t *testing.T) {
	uc, m := newTestRideUC(t, testConfig())
	open := sampleRide(models.RideStatusRequested)
	taken := sampleRide(models.RideStatusAccepted)

	m.rideRepo.EXPECT().GetRideByID(gomock.Any(), open.ID).Return(open, nil)
	m.rideRepo.EXPECT().GetRideByID(gomock.Any(), taken.ID).Return(taken, nil)

	assert.NoError(t, uc.RejectRide(context.Background(), open.ID, uuid.New()))
	assert.Equal(t, apperror.KindInvalidTransition, apperror.KindOf(uc.RejectRide(context.Background(), taken.ID, uuid.New())))
}

func TestGetRideDetails_Visibility(t *testing.T) {
	requested := sampleRide(models.RideStatusRequested)
	accepted := sampleRide(models.RideStatusAccepted)

	tests := []struct {
		name    string
		ride    *models.Ride
		caller  func(ride *models.Ride) models.Caller
		allowed bool
	}{
		{name: "Owner", ride: accepted, caller: func(r *models.Ride) models.Caller {
			return models.Caller{UserID: r.CustomerID, Role: models.RoleCustomer}
		}, allowed: true},
		{name: "Assigned driver", ride: accepted, caller: func(r *models.Ride) models.Caller {
			return models.Caller{UserID: *r.DriverID, Role: models.RoleDriver}
		}, allowed: true},
		{name: "Admin", ride: accepted, caller: func(r *models.Ride) models.Caller {
			return models.Caller{UserID: uuid.New(), Role: models.RoleAdmin}
		}, allowed: true},
		{name: "Any driver on open ride", ride: requested, caller: func(r *models.Ride) models.Caller {
			return models.Caller{UserID: uuid.New(), Role: models.RoleDriver}
		}, allowed: true},
		{name: "Other driver on taken ride", ride: accepted, caller: func(r *models.Ride) models.Caller {
			return models.Caller{UserID: uuid.New(), Role: models.RoleDriver}
		}},
		{name: "Other customer", ride: requested, caller: func(r *models.Ride) models.Caller {
			return models.Caller{UserID: uuid.New(), Role: models.RoleCustomer}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, m := newTestRideUC(t, testConfig())
			m.rideRepo.EXPECT().GetRideDetails(gomock.Any(), tt.ride.ID).Return(&models.RideDetails{Ride: *tt.ride}, nil)

			details, err := uc.GetRideDetails(context.Background(), tt.ride.ID, tt.caller(tt.ride))
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.ride.ID, details.ID)
				return
			}
			assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
		})
	}
}

func TestRideQueries(t *testing.T) {
	uc, m := newTestRideUC(t, testConfig())
	customerID := uuid.New()

	m.rideRepo.EXPECT().ListOpenRides(gomock.Any()).Return([]*models.Ride{sampleRide(models.RideStatusRequested)}, nil)
	m.rideRepo.EXPECT().ListCustomerRides(gomock.Any(), customerID).Return(nil, errors.New("db down"))
	m.rideRepo.EXPECT().GetPublicStats(gomock.Any()).Return(&models.PublicStats{CompletedRides: 3, TotalDrivers: 2, OnlineDrivers: 1}, nil)

	pending, err := uc.ListPendingRides(context.Background())
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	_, err = uc.CustomerRideHistory(context.Background(), customerID)
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))

	stats, err := uc.PublicStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.CompletedRides)
}
