package models

import (
	"time"

	"github.com/google/uuid"
)

// RideEventType names a lifecycle event
type RideEventType string

const (
	RideEventRequested RideEventType = "ride.requested"
	RideEventAccepted  RideEventType = "ride.accepted"
	RideEventStarted   RideEventType = "ride.started"
	RideEventCompleted RideEventType = "ride.completed"
	RideEventCancelled RideEventType = "ride.cancelled"
	RideEventPaid      RideEventType = "ride.paid"
)

// RideEvent is published after a ride changes state
type RideEvent struct {
	Type          RideEventType  `json:"type"`
	RideID        uuid.UUID      `json:"rideId"`
	CustomerID    uuid.UUID      `json:"customerId"`
	DriverID      *uuid.UUID     `json:"driverId,omitempty"`
	Status        RideStatus     `json:"status"`
	Fare          float64        `json:"fare"`
	FinalFare     *float64       `json:"finalFare,omitempty"`
	PickupGeohash string         `json:"pickupGeohash,omitempty"`
	PaymentMethod *PaymentMethod `json:"paymentMethod,omitempty"`
	OccurredAt    time.Time      `json:"occurredAt"`
}

// NewRideEvent snapshots ride into an event of the given type
func NewRideEvent(eventType RideEventType, ride *Ride, at time.Time) *RideEvent {
	return &RideEvent{
		Type:          eventType,
		RideID:        ride.ID,
		CustomerID:    ride.CustomerID,
		DriverID:      ride.DriverID,
		Status:        ride.Status,
		Fare:          ride.Fare,
		FinalFare:     ride.FinalFare,
		PickupGeohash: ride.PickupGeohash,
		OccurredAt:    at,
	}
}
