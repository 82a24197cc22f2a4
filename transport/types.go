package transport

import "triphub/geo"

// tripRequest is the shared wire body for both endpoints. Pickup/Drop are
// pointers so a present-but-zero-valued coordinate like {lat:0,lng:0} binds
// successfully, while an absent field still fails the required tag.
type tripRequest struct {
	Pickup *geo.Coordinate `json:"pickup" binding:"required"`
	Drop   *geo.Coordinate `json:"drop" binding:"required"`
}

// fareQuote is the wire shape of one platform/vehicle-class estimate.
type fareQuote struct {
	Platform     string  `json:"platform"`
	VehicleType  string  `json:"vehicleType"`
	Price        int     `json:"price"`
	Currency     string  `json:"currency"`
	Eta          string  `json:"eta,omitempty"`
	Source       string  `json:"source"`
	Confidence   string  `json:"confidence"`
}

type compareFaresResponse struct {
	Success   bool        `json:"success"`
	Count     int         `json:"count"`
	Estimates []fareQuote `json:"estimates"`
}

// pathPoint is one stop along a bus route's path, in visiting order.
type pathPoint struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Name     string  `json:"name"`
	Sequence int     `json:"sequence"`
}

// wireSegment is the wire shape of one itinerary leg.
type wireSegment struct {
	Kind              string   `json:"kind"`
	From              pathPoint `json:"from,omitempty"`
	To                pathPoint `json:"to,omitempty"`
	DurationMin       int      `json:"duration_min"`
	RouteID           string   `json:"route_id,omitempty"`
	RouteShortName    string   `json:"route_short_name,omitempty"`
	BoardStop         string   `json:"board_stop,omitempty"`
	AlightStop        string   `json:"alight_stop,omitempty"`
	IntermediateStops []string `json:"intermediate_stops,omitempty"`
	Fare              int      `json:"fare,omitempty"`
	StopName          string   `json:"stop_name,omitempty"`
	WaitMin           int      `json:"wait_min,omitempty"`
}

// busRoute is the wire shape of one itinerary.
type busRoute struct {
	RouteName     string        `json:"route_name"`
	StartStop     string        `json:"start_stop"`
	EndStop       string        `json:"end_stop"`
	DepartureTime string        `json:"departure_time"`
	ArrivalTime   string        `json:"arrival_time"`
	Duration      string        `json:"duration"`
	StopsCount    int           `json:"stops_count"`
	Fare          int           `json:"fare"`
	Path          []pathPoint   `json:"path"`
	Segments      []wireSegment `json:"segments"`
	TotalDistance string        `json:"total_distance"`
}

type busRoutesResponse struct {
	Success bool       `json:"success"`
	Count   int        `json:"count"`
	Routes  []busRoute `json:"routes"`
}

type errorResponse struct {
	Error string `json:"error"`
}
