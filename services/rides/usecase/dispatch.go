package usecase

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/piresc/wheelshare/internal/pkg/apperror"
	"github.com/piresc/wheelshare/internal/pkg/logger"
	"github.com/piresc/wheelshare/internal/pkg/models"
	nrpkg "github.com/piresc/wheelshare/internal/pkg/newrelic"
	"github.com/piresc/wheelshare/internal/pkg/pricing"
	"github.com/piresc/wheelshare/internal/utils"
)

const defaultDispatchRadiusKm = 10.0

type candidate struct {
	offer    *models.RideOffer
	distance float64
}

// NearbyRides returns open rides within the dispatch radius of the driver, nearest pickup first.
// An unavailable driver or one that never reported a position gets an empty list.
func (uc *driverUC) NearbyRides(ctx context.Context, driverID uuid.UUID) ([]*models.RideOffer, error) {
	defer nrpkg.StartSegment(ctx, "DriverUC.NearbyRides")()

	driver, err := uc.getDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if !driver.IsAvailable || !driver.HasPosition() {
		return []*models.RideOffer{}, nil
	}

	open, err := uc.ridesRepo.ListOpenRides(ctx)
	if err != nil {
		return nil, apperror.Internal(err, "failed to list open rides")
	}

	radius := uc.radiusKm()
	candidates := make([]candidate, 0, len(open))
	for _, ride := range open {
		d := utils.DistanceKm(driver.CurrentLatitude, driver.CurrentLongitude, ride.SourceLat, ride.SourceLng)
		if d > radius {
			continue
		}
		candidates = append(candidates, candidate{offer: uc.toOffer(ride, d), distance: d})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	offers := make([]*models.RideOffer, len(candidates))
	for i, c := range candidates {
		offers[i] = c.offer
	}

	logger.DebugCtx(ctx, "Nearby rides computed",
		logger.Stringer("driver_id", driverID),
		logger.Int("open", len(open)),
		logger.Int("offered", len(offers)))
	return offers, nil
}

func (uc *driverUC) toOffer(ride *models.Ride, distanceToPickup float64) *models.RideOffer {
	return &models.RideOffer{
		RideID:           ride.ID,
		PickupAddress:    ride.SourceAddress,
		DropAddress:      ride.DestinationAddress,
		PickupLat:        ride.SourceLat,
		PickupLng:        ride.SourceLng,
		DropLat:          ride.DestinationLat,
		DropLng:          ride.DestinationLng,
		DistanceKm:       pricing.Round2(ride.DistanceKm),
		Fare:             pricing.Round2(ride.Fare),
		DriverEarning:    pricing.Round2(uc.calc.DriverEarning(ride.Fare)),
		DistanceToPickup: pricing.Round2(distanceToPickup),
	}
}

func (uc *driverUC) radiusKm() float64 {
	if uc.cfg.Dispatch.RadiusKm <= 0 {
		return defaultDispatchRadiusKm
	}
	return uc.cfg.Dispatch.RadiusKm
}
