package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/piresc/wheelshare/internal/pkg/apperror"
	"github.com/piresc/wheelshare/internal/pkg/logger"
	"github.com/piresc/wheelshare/internal/pkg/models"
	"github.com/piresc/wheelshare/services/rides"
)

const rideColumns = `id, customer_id, driver_id,
	source_lat, source_lng, source_address,
	destination_lat, destination_lng, destination_address,
	pickup_geohash, distance_km, fare, final_fare, status,
	requested_at, accepted_at, started_at, completed_at, cancelled_at`

// rideDetailsQuery joins a ride with its customer, driver, active vehicle and payment
const rideDetailsQuery = `
	SELECT r.id, r.customer_id, r.driver_id,
		r.source_lat, r.source_lng, r.source_address,
		r.destination_lat, r.destination_lng, r.destination_address,
		r.pickup_geohash, r.distance_km, r.fare, r.final_fare, r.status,
		r.requested_at, r.accepted_at, r.started_at, r.completed_at, r.cancelled_at,
		c.name AS customer_name,
		du.name AS driver_name, du.phone AS driver_phone,
		d.license_number,
		v.vehicle_type, v.vehicle_number, v.seats AS vehicle_seats,
		p.status AS payment_status, p.method AS payment_method
	FROM rides r
	JOIN users c ON c.id = r.customer_id
	LEFT JOIN users du ON du.id = r.driver_id
	LEFT JOIN drivers d ON d.user_id = r.driver_id
	LEFT JOIN vehicles v ON v.driver_id = r.driver_id AND v.is_active
	LEFT JOIN payments p ON p.ride_id = r.id`

// RideRepo stores rides in Postgres. Every lifecycle update is a single conditional
// statement so concurrent callers cannot both apply it.
type RideRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

var _ rides.RideRepo = (*RideRepo)(nil)

// NewRideRepository creates a ride repository over db
func NewRideRepository(cfg *models.Config, db *sqlx.DB) *RideRepo {
	logger.Info("Initializing ride repository")
	return &RideRepo{cfg: cfg, db: db}
}

// CreateRide inserts a new ride
func (r *RideRepo) CreateRide(ctx context.Context, ride *models.Ride) error {
	query := `
		INSERT INTO rides (
			id, customer_id, source_lat, source_lng, source_address,
			destination_lat, destination_lng, destination_address,
			pickup_geohash, distance_km, fare, status, requested_at
		) VALUES (
			:id, :customer_id, :source_lat, :source_lng, :source_address,
			:destination_lat, :destination_lng, :destination_address,
			:pickup_geohash, :distance_km, :fare, :status, :requested_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, ride); err != nil {
		return fmt.Errorf("failed to create ride: %w", err)
	}
	return nil
}

// GetRideByID returns the ride with the given id
func (r *RideRepo) GetRideByID(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE id = $1`

	var ride models.Ride
	if err := r.db.GetContext(ctx, &ride, query, rideID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("ride %s not found", rideID)
		}
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}
	return &ride, nil
}

// GetRideDetails returns the joined polling snapshot of a ride
func (r *RideRepo) GetRideDetails(ctx context.Context, rideID uuid.UUID) (*models.RideDetails, error) {
	query := rideDetailsQuery + ` WHERE r.id = $1`

	var details models.RideDetails
	if err := r.db.GetContext(ctx, &details, query, rideID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("ride %s not found", rideID)
		}
		return nil, fmt.Errorf("failed to get ride details: %w", err)
	}
	return &details, nil
}

// ListOpenRides returns REQUESTED rides without a driver, oldest first
func (r *RideRepo) ListOpenRides(ctx context.Context) ([]*models.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides
		WHERE status = $1 AND driver_id IS NULL
		ORDER BY requested_at ASC`

	open := []*models.Ride{}
	if err := r.db.SelectContext(ctx, &open, query, models.RideStatusRequested); err != nil {
		return nil, fmt.Errorf("failed to list open rides: %w", err)
	}
	return open, nil
}

// ListCustomerRides returns every ride of a customer, newest first
func (r *RideRepo) ListCustomerRides(ctx context.Context, customerID uuid.UUID) ([]*models.RideDetails, error) {
	query := rideDetailsQuery + ` WHERE r.customer_id = $1 ORDER BY r.requested_at DESC`

	history := []*models.RideDetails{}
	if err := r.db.SelectContext(ctx, &history, query, customerID); err != nil {
		return nil, fmt.Errorf("failed to list customer rides: %w", err)
	}
	return history, nil
}

// ListDriverRides returns the driver's rides in any of statuses, newest first
func (r *RideRepo) ListDriverRides(ctx context.Context, driverID uuid.UUID, statuses ...models.RideStatus) ([]*models.RideDetails, error) {
	if len(statuses) == 0 {
		return []*models.RideDetails{}, nil
	}

	query, args, err := sqlx.In(rideDetailsQuery+` WHERE r.driver_id = ? AND r.status IN (?) ORDER BY r.requested_at DESC`, driverID, statuses)
	if err != nil {
		return nil, fmt.Errorf("failed to build driver rides query: %w", err)
	}

	list := []*models.RideDetails{}
	if err := r.db.SelectContext(ctx, &list, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list driver rides: %w", err)
	}
	return list, nil
}

// AcceptRide assigns an open ride to driverID. The driver row is locked so one driver
// cannot hold two rides; ErrNotApplied means another driver got the ride first.
func (r *RideRepo) AcceptRide(ctx context.Context, rideID, driverID uuid.UUID, at time.Time) (*models.Ride, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var activeRide uuid.NullUUID
	err = tx.GetContext(ctx, &activeRide, `SELECT active_ride_id FROM drivers WHERE user_id = $1 FOR UPDATE`, driverID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("driver %s not found", driverID)
		}
		return nil, fmt.Errorf("failed to lock driver: %w", err)
	}
	if activeRide.Valid {
		return nil, apperror.Conflict("driver already has an active ride")
	}

	query := `
		UPDATE rides
		SET status = $1, driver_id = $2, accepted_at = $3
		WHERE id = $4 AND status = $5 AND driver_id IS NULL
		RETURNING ` + rideColumns

	var ride models.Ride
	err = tx.GetContext(ctx, &ride, query,
		models.RideStatusAccepted, driverID, at, rideID, models.RideStatusRequested)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, rides.ErrNotApplied
		}
		return nil, fmt.Errorf("failed to accept ride: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE drivers SET active_ride_id = $1, is_available = FALSE, updated_at = $2 WHERE user_id = $3`,
		rideID, at, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to assign driver: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &ride, nil
}

// StartRide moves an ACCEPTED ride held by driverID to STARTED
func (r *RideRepo) StartRide(ctx context.Context, rideID, driverID uuid.UUID, at time.Time) (*models.Ride, error) {
	query := `
		UPDATE rides
		SET status = $1, started_at = $2
		WHERE id = $3 AND driver_id = $4 AND status = $5
		RETURNING ` + rideColumns

	return r.conditionalUpdate(ctx, "start", query,
		models.RideStatusStarted, at, rideID, driverID, models.RideStatusAccepted)
}

// CompleteRide moves a STARTED ride held by driverID to COMPLETED, fixes the final fare
// and releases the driver
func (r *RideRepo) CompleteRide(ctx context.Context, rideID, driverID uuid.UUID, at time.Time) (*models.Ride, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE rides
		SET status = $1, completed_at = $2, final_fare = fare
		WHERE id = $3 AND driver_id = $4 AND status = $5
		RETURNING ` + rideColumns

	var ride models.Ride
	err = tx.GetContext(ctx, &ride, query,
		models.RideStatusCompleted, at, rideID, driverID, models.RideStatusStarted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, rides.ErrNotApplied
		}
		return nil, fmt.Errorf("failed to complete ride: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE drivers SET active_ride_id = NULL, is_available = TRUE, updated_at = $1 WHERE user_id = $2 AND active_ride_id = $3`,
		at, driverID, rideID)
	if err != nil {
		return nil, fmt.Errorf("failed to release driver: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &ride, nil
}

// CancelRide cancels an unassigned REQUESTED ride owned by customerID
func (r *RideRepo) CancelRide(ctx context.Context, rideID, customerID uuid.UUID, at time.Time) (*models.Ride, error) {
	query := `
		UPDATE rides
		SET status = $1, cancelled_at = $2
		WHERE id = $3 AND customer_id = $4 AND status = $5 AND driver_id IS NULL
		RETURNING ` + rideColumns

	return r.conditionalUpdate(ctx, "cancel", query,
		models.RideStatusCancelled, at, rideID, customerID, models.RideStatusRequested)
}

func (r *RideRepo) conditionalUpdate(ctx context.Context, op, query string, args ...interface{}) (*models.Ride, error) {
	var ride models.Ride
	if err := r.db.GetContext(ctx, &ride, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, rides.ErrNotApplied
		}
		return nil, fmt.Errorf("failed to %s ride: %w", op, err)
	}
	return &ride, nil
}

// GetPublicStats counts completed rides and registered and online drivers
func (r *RideRepo) GetPublicStats(ctx context.Context) (*models.PublicStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM rides WHERE status = $1) AS completed_rides,
			(SELECT COUNT(*) FROM drivers) AS total_drivers,
			(SELECT COUNT(*) FROM drivers WHERE is_available) AS online_drivers`

	var stats models.PublicStats
	if err := r.db.GetContext(ctx, &stats, query, models.RideStatusCompleted); err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	return &stats, nil
}
