package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/piresc/wheelshare/internal/pkg/apperror"
	"github.com/piresc/wheelshare/internal/pkg/logger"
	"github.com/piresc/wheelshare/internal/pkg/metrics"
	"github.com/piresc/wheelshare/internal/pkg/models"
	nrpkg "github.com/piresc/wheelshare/internal/pkg/newrelic"
	"github.com/piresc/wheelshare/services/rides"
)

// actor is who may drive a transition
type actor int

const (
	actorAnyDriver actor = iota
	actorAssignedDriver
	actorOwner
)

// transition describes one edge of the ride lifecycle
type transition struct {
	name  string
	from  models.RideStatus
	to    models.RideStatus
	actor actor
	event models.RideEventType
}

var (
	transitionAccept   = transition{name: "accept", from: models.RideStatusRequested, to: models.RideStatusAccepted, actor: actorAnyDriver, event: models.RideEventAccepted}
	transitionStart    = transition{name: "start", from: models.RideStatusAccepted, to: models.RideStatusStarted, actor: actorAssignedDriver, event: models.RideEventStarted}
	transitionComplete = transition{name: "complete", from: models.RideStatusStarted, to: models.RideStatusCompleted, actor: actorAssignedDriver, event: models.RideEventCompleted}
	transitionCancel   = transition{name: "cancel", from: models.RideStatusRequested, to: models.RideStatusCancelled, actor: actorOwner, event: models.RideEventCancelled}
)

// check reports why actorID may not apply t to ride, or nil when the guard holds
func (t transition) check(ride *models.Ride, actorID uuid.UUID) error {
	switch t.actor {
	case actorOwner:
		if ride.CustomerID != actorID {
			return apperror.Forbidden("ride %s does not belong to the caller", ride.ID)
		}
	case actorAssignedDriver:
		if ride.Status.HasDriver() && !ride.IsAssignedTo(actorID) {
			return apperror.Forbidden("ride %s is assigned to another driver", ride.ID)
		}
	case actorAnyDriver:
		if ride.DriverID != nil && !ride.IsAssignedTo(actorID) {
			return apperror.Conflict("Ride already taken")
		}
	}

	if ride.Status != t.from || !t.from.CanTransitionTo(t.to) {
		return apperror.InvalidTransition(string(ride.Status), string(t.from))
	}
	return nil
}

// applyFunc performs the conditional update for a transition
type applyFunc func(ctx context.Context, rideID, actorID uuid.UUID, at time.Time) (*models.Ride, error)

// transit runs a lifecycle transition: guard check, one conditional update, and on a
// miss a re-read to report what the caller lost to
func (uc *rideUC) transit(ctx context.Context, t transition, rideID, actorID uuid.UUID, apply applyFunc) (*models.Ride, error) {
	defer nrpkg.StartSegment(ctx, "RideUC."+t.name)()

	ride, err := uc.ridesRepo.GetRideByID(ctx, rideID)
	if err != nil {
		metrics.TrackTransition(t.name, metrics.ResultError)
		return nil, classifyStoreError(err, "failed to get ride")
	}
	if err := t.check(ride, actorID); err != nil {
		metrics.TrackTransition(t.name, metrics.ResultRejected)
		return nil, err
	}

	at := uc.now()
	updated, err := apply(ctx, rideID, actorID, at)
	if errors.Is(err, rides.ErrNotApplied) {
		metrics.TrackTransition(t.name, metrics.ResultRejected)
		return nil, uc.explainMiss(ctx, t, rideID, actorID)
	}
	if err != nil {
		metrics.TrackTransition(t.name, classifyResult(err))
		return nil, classifyStoreError(err, "failed to "+t.name+" ride")
	}
	metrics.TrackTransition(t.name, metrics.ResultApplied)

	logger.InfoCtx(ctx, "Ride transition applied",
		logger.String("transition", t.name),
		logger.Stringer("ride_id", rideID),
		logger.Stringer("actor_id", actorID),
		logger.String("status", string(updated.Status)))

	uc.publish(ctx, models.NewRideEvent(t.event, updated, at))
	return updated, nil
}

// explainMiss re-reads a ride whose conditional update matched nothing
func (uc *rideUC) explainMiss(ctx context.Context, t transition, rideID, actorID uuid.UUID) error {
	current, err := uc.ridesRepo.GetRideByID(ctx, rideID)
	if err != nil {
		return classifyStoreError(err, "failed to get ride")
	}
	if err := t.check(current, actorID); err != nil {
		return err
	}
	return apperror.Conflict("ride %s changed concurrently", rideID)
}

func classifyResult(err error) string {
	if apperror.KindOf(err) == apperror.KindInternal {
		return metrics.ResultError
	}
	return metrics.ResultRejected
}

// AcceptRide assigns a REQUESTED ride to driverID. Of concurrent accepts exactly one wins;
// the others see Conflict.
func (uc *rideUC) AcceptRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error) {
	return uc.transit(ctx, transitionAccept, rideID, driverID, uc.ridesRepo.AcceptRide)
}

// RejectRide records a driver declining an offer. The ride stays open for others.
func (uc *rideUC) RejectRide(ctx context.Context, rideID, driverID uuid.UUID) error {
	ride, err := uc.ridesRepo.GetRideByID(ctx, rideID)
	if err != nil {
		return classifyStoreError(err, "failed to get ride")
	}
	if ride.Status != models.RideStatusRequested {
		metrics.TrackTransition("reject", metrics.ResultRejected)
		return apperror.InvalidTransition(string(ride.Status), string(models.RideStatusRequested))
	}
	metrics.TrackTransition("reject", metrics.ResultApplied)

	logger.InfoCtx(ctx, "Ride offer rejected",
		logger.Stringer("ride_id", rideID),
		logger.Stringer("driver_id", driverID))
	return nil
}

// StartRide moves an ACCEPTED ride to STARTED for its assigned driver
func (uc *rideUC) StartRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error) {
	return uc.transit(ctx, transitionStart, rideID, driverID, uc.ridesRepo.StartRide)
}

// CompleteRide finishes a STARTED ride, fixing the final fare and freeing the driver
func (uc *rideUC) CompleteRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error) {
	return uc.transit(ctx, transitionComplete, rideID, driverID, uc.ridesRepo.CompleteRide)
}

// CancelRide cancels a REQUESTED ride on behalf of its owner
func (uc *rideUC) CancelRide(ctx context.Context, rideID, customerID uuid.UUID) (*models.Ride, error) {
	return uc.transit(ctx, transitionCancel, rideID, customerID, uc.ridesRepo.CancelRide)
}
