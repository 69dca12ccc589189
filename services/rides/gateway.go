package rides

import (
	"context"

	"github.com/piresc/wheelshare/internal/pkg/models"
)

// RideGW defines the outbound ride event channel
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/wheelshare/services/rides RideGW
type RideGW interface {
	PublishRideEvent(ctx context.Context, event *models.RideEvent) error
}
