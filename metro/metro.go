// Package metro is a thin passthrough to an external directions provider
// for metro/subway legs; it exists only so /api/metro-routes has somewhere
// to go. A minimal HTTP-GET-to-directions-API client (request, JSON decode,
// convert steps) that degrades gracefully without an API key.
package metro

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"triphub/geo"
)

// Leg is one step of an external-provider metro route.
type Leg struct {
	Mode        string         `json:"mode"`
	From        geo.Coordinate `json:"from"`
	To          geo.Coordinate `json:"to"`
	DurationSec float64        `json:"durationSec"`
	Description string         `json:"description"`
}

type directionsResponse struct {
	Routes []struct {
		Legs []struct {
			Steps []struct {
				TravelMode    string  `json:"travel_mode"`
				Duration      struct{ Value float64 `json:"value"` } `json:"duration"`
				StartLocation struct{ Lat, Lng float64 }             `json:"start_location"`
				EndLocation   struct{ Lat, Lng float64 }             `json:"end_location"`
			} `json:"steps"`
		} `json:"legs"`
	} `json:"routes"`
	Status string `json:"status"`
}

// Client calls an external transit-directions provider over HTTP.
type Client struct {
	apiKey     string
	httpClient *http.Client
}

// NewClient builds a Client from the METRO_DIRECTIONS_API_KEY environment
// variable. A Client with an empty key still works; Plan just fails fast.
func NewClient() *Client {
	return &Client{
		apiKey:     os.Getenv("METRO_DIRECTIONS_API_KEY"),
		httpClient: &http.Client{Timeout: 20 * time.Second},
	}
}

// Plan fetches one metro/transit route between pickup and drop from the
// configured directions provider.
func (c *Client) Plan(pickup, drop geo.Coordinate) ([]Leg, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("metro: METRO_DIRECTIONS_API_KEY not set")
	}

	params := url.Values{}
	params.Set("origin", fmt.Sprintf("%.6f,%.6f", pickup.Lat, pickup.Lng))
	params.Set("destination", fmt.Sprintf("%.6f,%.6f", drop.Lat, drop.Lng))
	params.Set("mode", "transit")
	params.Set("transit_mode", "subway")
	params.Set("key", c.apiKey)

	requestURL := "https://maps.googleapis.com/maps/api/directions/json?" + params.Encode()
	log.Printf("metro: requesting directions %s -> %s", params.Get("origin"), params.Get("destination"))

	resp, err := c.httpClient.Get(requestURL)
	if err != nil {
		return nil, fmt.Errorf("metro: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("metro: read response: %w", err)
	}

	var parsed directionsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("metro: parse response: %w", err)
	}
	if parsed.Status != "OK" || len(parsed.Routes) == 0 {
		return nil, fmt.Errorf("metro: provider returned status %q", parsed.Status)
	}

	var legs []Leg
	for _, leg := range parsed.Routes[0].Legs {
		for _, step := range leg.Steps {
			legs = append(legs, Leg{
				Mode:        step.TravelMode,
				From:        geo.Coordinate{Lat: step.StartLocation.Lat, Lng: step.StartLocation.Lng},
				To:          geo.Coordinate{Lat: step.EndLocation.Lat, Lng: step.EndLocation.Lng},
				DurationSec: step.Duration.Value,
			})
		}
	}
	return legs, nil
}
