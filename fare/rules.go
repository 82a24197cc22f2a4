// Package fare holds the vehicle-class tariff table, the bus fare slabs, and
// the fallback estimator used when a quote producer cannot be reached.
package fare

import (
	"errors"
	"math"
)

// VehicleClass identifies a ride-hailing vehicle tier.
type VehicleClass string

const (
	Bike  VehicleClass = "bike"
	Auto  VehicleClass = "auto"
	Mini  VehicleClass = "mini"
	Sedan VehicleClass = "sedan"
	SUV   VehicleClass = "suv"
)

// Tariff is the base/per-km/minimum fare for one vehicle class.
type Tariff struct {
	BaseFare   float64
	PerKmFare  float64
	MinFare    float64
}

// Config is the tariff table plus validation, mirroring the
// business-rules-table-with-Validate shape used across the reference fare
// estimators in this ecosystem.
type Config struct {
	Tariffs map[VehicleClass]Tariff
}

// DefaultConfig returns the tariff table from the vehicle-class tariff
// design: {baseFare, perKmFare, minFare} per class.
func DefaultConfig() Config {
	return Config{
		Tariffs: map[VehicleClass]Tariff{
			Bike:  {BaseFare: 15, PerKmFare: 4, MinFare: 20},
			Auto:  {BaseFare: 25, PerKmFare: 9, MinFare: 35},
			Mini:  {BaseFare: 40, PerKmFare: 11, MinFare: 60},
			Sedan: {BaseFare: 55, PerKmFare: 14, MinFare: 80},
			SUV:   {BaseFare: 80, PerKmFare: 18, MinFare: 120},
		},
	}
}

func (c Config) Validate() error {
	if len(c.Tariffs) == 0 {
		return errors.New("fare: tariff table must not be empty")
	}
	for class, t := range c.Tariffs {
		if t.PerKmFare <= 0 {
			return errors.New("fare: per-km fare must be greater than 0 for " + string(class))
		}
		if t.MinFare <= 0 {
			return errors.New("fare: minimum fare must be greater than 0 for " + string(class))
		}
	}
	return nil
}

// SurgeSource supplies the multiplicative surge factor applied to fallback
// estimates. Isolated behind an interface so tests can pin it to 1.0.
type SurgeSource interface {
	Float64() float64
}

// PriceMinorUnits computes max(minFare, round(base + perKm*distanceKm) * surge)
// in whole minor currency units (e.g. paise/cents).
func (c Config) PriceMinorUnits(class VehicleClass, distanceKm float64, surge SurgeSource) (int, bool) {
	t, ok := c.Tariffs[class]
	if !ok {
		return 0, false
	}
	raw := math.Round(t.BaseFare+t.PerKmFare*distanceKm) * surgeFactor(surge)
	price := int(math.Round(raw))
	minFare := int(math.Round(t.MinFare))
	if price < minFare {
		price = minFare
	}
	return price, true
}

func surgeFactor(s SurgeSource) float64 {
	if s == nil {
		return 1.0
	}
	// Uniform in [1.0, 1.2).
	return 1.0 + 0.2*s.Float64()
}

// BusFareMinorUnits returns the bus fare in minor units for a leg of the given
// great-circle distance, per the 5/10/15/20/25 slab table.
func BusFareMinorUnits(distanceKm float64) int {
	switch {
	case distanceKm <= 4:
		return 5
	case distanceKm <= 10:
		return 10
	case distanceKm <= 15:
		return 15
	case distanceKm <= 20:
		return 20
	default:
		return 25
	}
}
