package constants

// Ride event subjects. NSQ topics reuse the same names.
const (
	// SubjectRideRequestedPrefix is suffixed with the pickup geohash: ride.requested.<geohash>
	SubjectRideRequestedPrefix = "ride.requested"
	SubjectRideAccepted        = "ride.accepted"
	SubjectRideStarted         = "ride.started"
	SubjectRideCompleted       = "ride.completed"
	SubjectRideCancelled       = "ride.cancelled"
	SubjectRidePaid            = "ride.paid"

	// SubjectRideRequestedAll matches every regional ride.requested subject
	SubjectRideRequestedAll = "ride.requested.>"
)
