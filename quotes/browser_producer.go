package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/chromedp/chromedp"

	"triphub/fare"
	"triphub/geo"
)

// browserQuoteProducer models a platform only reachable via a scraped web
// app with no public API. Grounded on the headless-Chrome scraping pattern
// (NewExecAllocator, NewContext, chromedp.Run with Navigate/WaitVisible/
// Text), trimmed to never throw: it falls back to fare.Estimator on
// any failure.
type browserQuoteProducer struct {
	platform    string
	fareAppURL  string
	resultQuery string
	menu        []fare.VehicleClass
	estimator   fare.Estimator
}

// NewBrowserQuoteProducer builds a producer for a platform whose fares are
// only visible by rendering its web app in a headless browser and reading
// the quote widget's injected JSON out of the DOM.
func NewBrowserQuoteProducer(platform, fareAppURL, resultQuery string, menu []fare.VehicleClass, estimator fare.Estimator) Producer {
	return &browserQuoteProducer{
		platform:    platform,
		fareAppURL:  fareAppURL,
		resultQuery: resultQuery,
		menu:        menu,
		estimator:   estimator,
	}
}

func (p *browserQuoteProducer) PlatformName() string { return p.platform }

func (p *browserQuoteProducer) Quote(ctx context.Context, pickup, drop geo.Coordinate) []fare.Quote {
	ctx, cancel := context.WithTimeout(ctx, producerTimeout)
	defer cancel()

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
		)...,
	)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	targetURL := fmt.Sprintf("%s?pickupLat=%.6f&pickupLng=%.6f&dropLat=%.6f&dropLng=%.6f",
		p.fareAppURL, pickup.Lat, pickup.Lng, drop.Lat, drop.Lng)

	var resultJSON string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(targetURL),
		chromedp.WaitVisible(p.resultQuery, chromedp.ByQuery),
		chromedp.Sleep(500*time.Millisecond),
		chromedp.Text(p.resultQuery, &resultJSON, chromedp.ByQuery),
	)
	if err != nil {
		log.Printf("quotes: %s: browser scrape failed: %v", p.platform, err)
		return p.fallback(pickup, drop)
	}

	var payload struct {
		Quotes []struct {
			VehicleClass string `json:"vehicleClass"`
			Price        int    `json:"price"`
			EtaLabel     string `json:"etaLabel"`
		} `json:"quotes"`
	}
	if err := json.Unmarshal([]byte(resultJSON), &payload); err != nil || len(payload.Quotes) == 0 {
		log.Printf("quotes: %s: malformed scrape result: %v", p.platform, err)
		return p.fallback(pickup, drop)
	}

	out := make([]fare.Quote, 0, len(payload.Quotes))
	for _, q := range payload.Quotes {
		out = append(out, fare.Quote{
			Platform:        p.platform,
			VehicleClass:    fare.VehicleClass(q.VehicleClass),
			PriceMinorUnits: q.Price,
			Currency:        p.estimator.Currency,
			EtaLabel:        q.EtaLabel,
			Confidence:      fare.ConfidenceHigh,
			Provenance:      fare.ProvenanceLive,
			TimestampMs:     nowMs(),
		})
	}
	return out
}

func (p *browserQuoteProducer) fallback(pickup, drop geo.Coordinate) []fare.Quote {
	return p.estimator.Estimate(p.platform, p.menu, pickup, drop)
}
