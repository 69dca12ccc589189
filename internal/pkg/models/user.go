package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the capability a user acts under
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustomer Role = "CUSTOMER"
	RoleDriver   Role = "DRIVER"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCustomer || r == RoleDriver
}

// User represents an account known to the rides service
type User struct {
	ID    uuid.UUID `json:"id" db:"id"`
	Name  string    `json:"name" db:"name"`
	Email string    `json:"email" db:"email"`
	Phone string    `json:"phone" db:"phone"`
	Role  Role      `json:"role" db:"role"`
}

// Caller identifies the authenticated principal behind a request
type Caller struct {
	UserID uuid.UUID
	Role   Role
}

// Driver holds the driver-specific capability record of a user
type Driver struct {
	UserID           uuid.UUID  `json:"userId" db:"user_id"`
	LicenseNumber    string     `json:"licenseNumber" db:"license_number"`
	IsVerified       bool       `json:"isVerified" db:"is_verified"`
	IsAvailable      bool       `json:"isAvailable" db:"is_available"`
	CurrentLatitude  float64    `json:"currentLatitude" db:"current_latitude"`
	CurrentLongitude float64    `json:"currentLongitude" db:"current_longitude"`
	ActiveRideID     *uuid.UUID `json:"activeRideId,omitempty" db:"active_ride_id"`
	UpdatedAt        time.Time  `json:"updatedAt" db:"updated_at"`
}

// HasPosition reports whether the driver has reported a location
func (d *Driver) HasPosition() bool {
	return d.CurrentLatitude != 0 || d.CurrentLongitude != 0
}

// Vehicle is a vehicle registered by a driver
type Vehicle struct {
	ID            uuid.UUID `json:"id" db:"id"`
	DriverID      uuid.UUID `json:"driverId" db:"driver_id"`
	VehicleType   string    `json:"vehicleType" db:"vehicle_type"`
	VehicleNumber string    `json:"vehicleNumber" db:"vehicle_number"`
	Seats         int       `json:"seats" db:"seats"`
	IsActive      bool      `json:"isActive" db:"is_active"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

// DriverProfileRequest registers the license and current vehicle of a driver
type DriverProfileRequest struct {
	LicenseNumber string `json:"licenseNumber" validate:"required,max=50"`
	VehicleType   string `json:"vehicleType" validate:"required,max=50"`
	VehicleNumber string `json:"vehicleNumber" validate:"required,max=20"`
	Seats         int    `json:"seats" validate:"gte=1,lte=12"`
}

// DriverProfile is the driver record together with its active vehicle
type DriverProfile struct {
	Driver
	Vehicle *Vehicle `json:"vehicle,omitempty"`
}

// LocationUpdate is a driver position report
type LocationUpdate struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}
