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

const driverColumns = `user_id, license_number, is_verified, is_available,
	current_latitude, current_longitude, active_ride_id, updated_at`

const vehicleColumns = `id, driver_id, vehicle_type, vehicle_number, seats, is_active, created_at`

// DriverRepo stores driver availability, positions and vehicles
type DriverRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

var _ rides.DriverRepo = (*DriverRepo)(nil)

// NewDriverRepository creates a driver repository over db
func NewDriverRepository(cfg *models.Config, db *sqlx.DB) *DriverRepo {
	logger.Info("Initializing driver repository")
	return &DriverRepo{cfg: cfg, db: db}
}

// GetDriver returns the driver record of a user
func (r *DriverRepo) GetDriver(ctx context.Context, driverID uuid.UUID) (*models.Driver, error) {
	var driver models.Driver
	err := r.db.GetContext(ctx, &driver, `SELECT `+driverColumns+` FROM drivers WHERE user_id = $1`, driverID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("driver %s not found", driverID)
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	return &driver, nil
}

// SetAvailability toggles whether the driver receives offers. Going online is refused
// while the driver holds a ride; ErrNotApplied covers that and an unknown driver.
func (r *DriverRepo) SetAvailability(ctx context.Context, driverID uuid.UUID, available bool, at time.Time) (*models.Driver, error) {
	query := `
		UPDATE drivers
		SET is_available = $1, updated_at = $2
		WHERE user_id = $3 AND (NOT $1 OR active_ride_id IS NULL)
		RETURNING ` + driverColumns

	var driver models.Driver
	if err := r.db.GetContext(ctx, &driver, query, available, at, driverID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, rides.ErrNotApplied
		}
		return nil, fmt.Errorf("failed to update availability: %w", err)
	}
	return &driver, nil
}

// UpdateLocation stores the position of an online or busy driver
func (r *DriverRepo) UpdateLocation(ctx context.Context, driverID uuid.UUID, lat, lng float64, at time.Time) (*models.Driver, error) {
	query := `
		UPDATE drivers
		SET current_latitude = $1, current_longitude = $2, updated_at = $3
		WHERE user_id = $4 AND (is_available OR active_ride_id IS NOT NULL)
		RETURNING ` + driverColumns

	var driver models.Driver
	if err := r.db.GetContext(ctx, &driver, query, lat, lng, at, driverID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, rides.ErrNotApplied
		}
		return nil, fmt.Errorf("failed to update location: %w", err)
	}
	return &driver, nil
}

// UpsertProfile creates or updates the driver record and makes vehicle the only active one
func (r *DriverRepo) UpsertProfile(ctx context.Context, driverID uuid.UUID, licenseNumber string, vehicle *models.Vehicle) (*models.DriverProfile, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO drivers (user_id, license_number, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET license_number = EXCLUDED.license_number, updated_at = EXCLUDED.updated_at
		RETURNING ` + driverColumns

	profile := &models.DriverProfile{Vehicle: vehicle}
	if err = tx.GetContext(ctx, &profile.Driver, query, driverID, licenseNumber, vehicle.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to upsert driver: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `UPDATE vehicles SET is_active = FALSE WHERE driver_id = $1 AND is_active`, driverID); err != nil {
		return nil, fmt.Errorf("failed to retire vehicles: %w", err)
	}

	query = `
		INSERT INTO vehicles (` + vehicleColumns + `)
		VALUES (:id, :driver_id, :vehicle_type, :vehicle_number, :seats, :is_active, :created_at)`
	if _, err = tx.NamedExecContext(ctx, query, vehicle); err != nil {
		return nil, fmt.Errorf("failed to insert vehicle: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return profile, nil
}

// GetProfile returns the driver record with its active vehicle, if any
func (r *DriverRepo) GetProfile(ctx context.Context, driverID uuid.UUID) (*models.DriverProfile, error) {
	driver, err := r.GetDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}

	profile := &models.DriverProfile{Driver: *driver}
	var vehicle models.Vehicle
	err = r.db.GetContext(ctx, &vehicle, `
		SELECT `+vehicleColumns+` FROM vehicles
		WHERE driver_id = $1 AND is_active
		ORDER BY created_at DESC LIMIT 1`, driverID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	default:
		profile.Vehicle = &vehicle
	}
	return profile, nil
}
