package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"triphub/fare"
	"triphub/geo"
)

func nowMs() int64 { return time.Now().UnixMilli() }

const producerTimeout = 20 * time.Second

// httpQuoteProducer models a platform reached over a JSON HTTP API: a GET
// built with http.NewRequestWithContext and sent with http.Client.Do, then
// io.ReadAll, json.Unmarshal with an explicit status check,
// wrapped with a hard timeout and a fallback on any failure.
type httpQuoteProducer struct {
	platform   string
	endpoint   string
	menu       []fare.VehicleClass
	httpClient *http.Client
	estimator  fare.Estimator
}

// NewHTTPQuoteProducer builds a producer for a platform whose quotes are
// fetched from a JSON HTTP endpoint.
func NewHTTPQuoteProducer(platform, endpoint string, menu []fare.VehicleClass, estimator fare.Estimator) Producer {
	return &httpQuoteProducer{
		platform:   platform,
		endpoint:   endpoint,
		menu:       menu,
		httpClient: &http.Client{Timeout: producerTimeout},
		estimator:  estimator,
	}
}

func (p *httpQuoteProducer) PlatformName() string { return p.platform }

type httpQuoteResponse struct {
	Quotes []struct {
		VehicleClass string  `json:"vehicleClass"`
		Price        int     `json:"price"`
		EtaLabel     string  `json:"etaLabel"`
	} `json:"quotes"`
}

func (p *httpQuoteProducer) Quote(ctx context.Context, pickup, drop geo.Coordinate) []fare.Quote {
	ctx, cancel := context.WithTimeout(ctx, producerTimeout)
	defer cancel()

	url := fmt.Sprintf("%s?pickupLat=%.6f&pickupLng=%.6f&dropLat=%.6f&dropLng=%.6f",
		p.endpoint, pickup.Lat, pickup.Lng, drop.Lat, drop.Lng)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Printf("quotes: %s: build request: %v", p.platform, err)
		return p.fallback(pickup, drop)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		log.Printf("quotes: %s: request failed: %v", p.platform, err)
		return p.fallback(pickup, drop)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("quotes: %s: unexpected status %d", p.platform, resp.StatusCode)
		return p.fallback(pickup, drop)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("quotes: %s: read body: %v", p.platform, err)
		return p.fallback(pickup, drop)
	}

	var payload httpQuoteResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Printf("quotes: %s: parse body: %v", p.platform, err)
		return p.fallback(pickup, drop)
	}

	if len(payload.Quotes) == 0 {
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

func (p *httpQuoteProducer) fallback(pickup, drop geo.Coordinate) []fare.Quote {
	return p.estimator.Estimate(p.platform, p.menu, pickup, drop)
}
