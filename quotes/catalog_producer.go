package quotes

import (
	"context"

	"triphub/fare"
	"triphub/geo"
)

// catalogQuoteProducer models a platform with a published static rate card
// and no live quote endpoint at all — every call is answered directly from
// FallbackEstimator instead of calling any upstream.
type catalogQuoteProducer struct {
	platform  string
	menu      []fare.VehicleClass
	estimator fare.Estimator
}

// NewCatalogQuoteProducer builds a producer that always answers from the
// rule-based tariff table, for a platform with no live pricing API.
func NewCatalogQuoteProducer(platform string, menu []fare.VehicleClass, estimator fare.Estimator) Producer {
	return &catalogQuoteProducer{platform: platform, menu: menu, estimator: estimator}
}

func (p *catalogQuoteProducer) PlatformName() string { return p.platform }

func (p *catalogQuoteProducer) Quote(_ context.Context, pickup, drop geo.Coordinate) []fare.Quote {
	return p.estimator.Estimate(p.platform, p.menu, pickup, drop)
}
