package fare

import (
	"math/rand"

	"triphub/geo"
)

// randSurge is the default SurgeSource, backed by the package-level math/rand
// generator. PinnedSurge below lets tests fix surge at 1.0.
type randSurge struct{}

func (randSurge) Float64() float64 { return rand.Float64() }

// RandomSurge is the production SurgeSource.
var RandomSurge SurgeSource = randSurge{}

// PinnedSurge is a SurgeSource that always returns Value; Value 0 collapses
// the surge multiplier to 1.0 — used by tests that need deterministic
// fallback prices.
type PinnedSurge struct{ Value float64 }

func (p PinnedSurge) Float64() float64 { return p.Value }

// Estimator synthesizes rule-based quotes when a producer cannot be reached.
type Estimator struct {
	Config   Config
	Currency string
	Surge    SurgeSource
}

// NewEstimator builds an Estimator over the default tariff table.
func NewEstimator(currency string) Estimator {
	return Estimator{Config: DefaultConfig(), Currency: currency, Surge: RandomSurge}
}

// Estimate produces one Quote per class in menu for the given platform and
// trip, using great-circle distance between pickup and drop.
func (e Estimator) Estimate(platform string, menu []VehicleClass, pickup, drop geo.Coordinate) []Quote {
	distanceKm := geo.DistanceKm(pickup, drop)
	quotes := make([]Quote, 0, len(menu))
	for _, class := range menu {
		price, ok := e.Config.PriceMinorUnits(class, distanceKm, e.Surge)
		if !ok {
			continue
		}
		quotes = append(quotes, Quote{
			Platform:        platform,
			VehicleClass:    class,
			PriceMinorUnits: price,
			Currency:        e.Currency,
			Confidence:      ConfidenceMedium,
			Provenance:      ProvenanceEstimate,
			TimestampMs:     nowMs(),
		})
	}
	return quotes
}
