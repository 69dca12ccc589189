package models

import (
	"time"

	"github.com/google/uuid"
)

// RideStatus represents the status of a ride
type RideStatus string

const (
	RideStatusRequested RideStatus = "REQUESTED"
	RideStatusAccepted  RideStatus = "ACCEPTED"
	RideStatusStarted   RideStatus = "STARTED"
	RideStatusCompleted RideStatus = "COMPLETED"
	RideStatusCancelled RideStatus = "CANCELLED"
)

// rideTransitions lists the statuses reachable from each status
var rideTransitions = map[RideStatus][]RideStatus{
	RideStatusRequested: {RideStatusAccepted, RideStatusCancelled},
	RideStatusAccepted:  {RideStatusStarted},
	RideStatusStarted:   {RideStatusCompleted},
}

// Valid reports whether s is a known ride status
func (s RideStatus) Valid() bool {
	switch s {
	case RideStatusRequested, RideStatusAccepted, RideStatusStarted, RideStatusCompleted, RideStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no transition leaves s
func (s RideStatus) IsTerminal() bool {
	return s == RideStatusCompleted || s == RideStatusCancelled
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next
func (s RideStatus) CanTransitionTo(next RideStatus) bool {
	for _, allowed := range rideTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// HasDriver reports whether a ride in status s must carry an assigned driver
func (s RideStatus) HasDriver() bool {
	return s == RideStatusAccepted || s == RideStatusStarted || s == RideStatusCompleted
}

// Ride represents a ride record
type Ride struct {
	ID                 uuid.UUID  `json:"rideId" db:"id"`
	CustomerID         uuid.UUID  `json:"customerId" db:"customer_id"`
	DriverID           *uuid.UUID `json:"driverId,omitempty" db:"driver_id"`
	SourceLat          float64    `json:"sourceLat" db:"source_lat"`
	SourceLng          float64    `json:"sourceLng" db:"source_lng"`
	SourceAddress      string     `json:"sourceAddress" db:"source_address"`
	DestinationLat     float64    `json:"destinationLat" db:"destination_lat"`
	DestinationLng     float64    `json:"destinationLng" db:"destination_lng"`
	DestinationAddress string     `json:"destinationAddress" db:"destination_address"`
	PickupGeohash      string     `json:"-" db:"pickup_geohash"`
	DistanceKm         float64    `json:"distanceKm" db:"distance_km"`
	Fare               float64    `json:"fare" db:"fare"`
	FinalFare          *float64   `json:"finalFare,omitempty" db:"final_fare"`
	Status             RideStatus `json:"status" db:"status"`
	RequestedAt        time.Time  `json:"requestedAt" db:"requested_at"`
	AcceptedAt         *time.Time `json:"acceptedAt,omitempty" db:"accepted_at"`
	StartedAt          *time.Time `json:"startedAt,omitempty" db:"started_at"`
	CompletedAt        *time.Time `json:"completedAt,omitempty" db:"completed_at"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty" db:"cancelled_at"`
}

// ChargeableFare returns the amount owed for the ride: the final fare when set, the quoted fare otherwise
func (r *Ride) ChargeableFare() float64 {
	if r.FinalFare != nil {
		return *r.FinalFare
	}
	return r.Fare
}

// IsAssignedTo reports whether driverID is the driver holding the ride
func (r *Ride) IsAssignedTo(driverID uuid.UUID) bool {
	return r.DriverID != nil && *r.DriverID == driverID
}

// RideRequest is the customer's booking payload
type RideRequest struct {
	SourceLat          float64 `json:"sourceLat" validate:"latitude"`
	SourceLng          float64 `json:"sourceLng" validate:"longitude"`
	SourceAddress      string  `json:"sourceAddress" validate:"max=500"`
	DestinationLat     float64 `json:"destinationLat" validate:"latitude"`
	DestinationLng     float64 `json:"destinationLng" validate:"longitude"`
	DestinationAddress string  `json:"destinationAddress" validate:"max=500"`
	EstimatedFare      float64 `json:"estimatedFare" validate:"gte=0"`
}

// RideRequestResponse is returned after a ride is booked
type RideRequestResponse struct {
	RideID        uuid.UUID `json:"rideId"`
	DistanceKm    float64   `json:"distanceKm"`
	EstimatedFare float64   `json:"estimatedFare"`
}

// FareEstimateRequest carries the endpoints of a prospective trip
type FareEstimateRequest struct {
	SourceLat      float64 `json:"sourceLat" validate:"latitude"`
	SourceLng      float64 `json:"sourceLng" validate:"longitude"`
	DestinationLat float64 `json:"destinationLat" validate:"latitude"`
	DestinationLng float64 `json:"destinationLng" validate:"longitude"`
}

// FareEstimate is a quote for a prospective trip
type FareEstimate struct {
	DistanceKm    float64 `json:"distanceKm"`
	EstimatedFare float64 `json:"estimatedFare"`
}

// RideOffer is an open ride as presented to a nearby driver
type RideOffer struct {
	RideID           uuid.UUID `json:"rideId"`
	PickupAddress    string    `json:"pickupAddress"`
	DropAddress      string    `json:"dropAddress"`
	PickupLat        float64   `json:"pickupLat"`
	PickupLng        float64   `json:"pickupLng"`
	DropLat          float64   `json:"dropLat"`
	DropLng          float64   `json:"dropLng"`
	DistanceKm       float64   `json:"distanceKm"`
	Fare             float64   `json:"fare"`
	DriverEarning    float64   `json:"driverEarning"`
	DistanceToPickup float64   `json:"distanceToPickup"`
}

// RideDetails is the polling snapshot of a ride joined with driver, vehicle and payment data
type RideDetails struct {
	Ride
	CustomerName  *string `json:"customerName,omitempty" db:"customer_name"`
	DriverName    *string `json:"driverName,omitempty" db:"driver_name"`
	DriverPhone   *string `json:"driverPhone,omitempty" db:"driver_phone"`
	LicenseNumber *string `json:"licenseNumber,omitempty" db:"license_number"`
	VehicleType   *string `json:"vehicleType,omitempty" db:"vehicle_type"`
	VehicleNumber *string `json:"vehicleNumber,omitempty" db:"vehicle_number"`
	VehicleSeats  *int    `json:"vehicleSeats,omitempty" db:"vehicle_seats"`
	PaymentStatus *string `json:"paymentStatus,omitempty" db:"payment_status"`
	PaymentMethod *string `json:"paymentMethod,omitempty" db:"payment_method"`
}

// DriverRideSummary is a completed ride as listed in a driver's history
type DriverRideSummary struct {
	RideID             uuid.UUID  `json:"rideId"`
	CustomerName       string     `json:"customerName"`
	SourceAddress      string     `json:"sourceAddress"`
	DestinationAddress string     `json:"destinationAddress"`
	DistanceKm         float64    `json:"distanceKm"`
	Fare               float64    `json:"fare"`
	DriverEarning      float64    `json:"driverEarning"`
	PaymentStatus      string     `json:"paymentStatus"`
	CompletedAt        *time.Time `json:"completedAt,omitempty"`
}

// PublicStats holds headline counters shown on the landing page
type PublicStats struct {
	CompletedRides int64 `json:"completedRides" db:"completed_rides"`
	TotalDrivers   int64 `json:"totalDrivers" db:"total_drivers"`
	OnlineDrivers  int64 `json:"onlineDrivers" db:"online_drivers"`
}
