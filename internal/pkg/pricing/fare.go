package pricing

import (
	"fmt"
	"math"

	"github.com/piresc/wheelshare/internal/pkg/models"
)

// Calculator prices trips and splits fares between driver and platform
type Calculator struct {
	baseFare          float64
	perKmRate         float64
	commissionPercent float64
}

// NewCalculator validates the tariff and builds a calculator from it
func NewCalculator(cfg models.PricingConfig) (*Calculator, error) {
	if cfg.BaseFare < 0 || math.IsNaN(cfg.BaseFare) {
		return nil, fmt.Errorf("invalid base fare %v", cfg.BaseFare)
	}
	if cfg.PerKmRate < 0 || math.IsNaN(cfg.PerKmRate) {
		return nil, fmt.Errorf("invalid per-km rate %v", cfg.PerKmRate)
	}
	if cfg.CommissionPercent < 0 || cfg.CommissionPercent > 100 || math.IsNaN(cfg.CommissionPercent) {
		return nil, fmt.Errorf("commission percent must be within [0,100], got %v", cfg.CommissionPercent)
	}

	return &Calculator{
		baseFare:          cfg.BaseFare,
		perKmRate:         cfg.PerKmRate,
		commissionPercent: cfg.CommissionPercent,
	}, nil
}

// EstimateFare returns baseFare + perKmRate * distanceKm at full precision
func (c *Calculator) EstimateFare(distanceKm float64) float64 {
	return c.baseFare + c.perKmRate*distanceKm
}

// DriverEarning returns the driver's share of fare after commission
func (c *Calculator) DriverEarning(fare float64) float64 {
	return fare * (1 - c.commissionPercent/100)
}

// Round2 rounds v half away from zero to two decimals for display
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
