// Package planner searches a loaded GTFS schedule index for direct and
// one-transfer bus itineraries between two coordinates.
package planner

import "triphub/geo"

// SegmentKind discriminates the three segment shapes an itinerary can hold.
type SegmentKind string

const (
	SegmentWalk         SegmentKind = "walk"
	SegmentBus          SegmentKind = "bus"
	SegmentTransferWait SegmentKind = "transfer_wait"
)

// Segment is one leg of an Itinerary. Fields not relevant to Kind are left
// zero (e.g. a Walk segment has no RouteID).
type Segment struct {
	Kind SegmentKind

	From geo.Coordinate
	To   geo.Coordinate

	DistanceKm float64
	DurationMin int

	// Bus-only fields.
	RouteID           string
	RouteShortName    string
	TripID            string
	BoardStopID       string
	BoardStopName     string
	AlightStopID      string
	AlightStopName    string
	IntermediateStops []string
	StartDepartSec    int
	EndArriveSec      int
	FareMinorUnits    int
	Polyline          []geo.Coordinate
	PolylineNames     []string

	// TransferWait-only fields.
	StopID   string
	StopName string
	WaitMin  int
}

// Itinerary is a nonempty, end-to-end connected sequence of Segments.
type Itinerary struct {
	Segments        []Segment
	TotalDurationMin int
	TotalFareMinorUnits int
}

// nearbyStop is a candidate stop resolved during nearby-stop resolution,
// paired with its great-circle distance from the query endpoint.
type nearbyStop struct {
	stopID      string
	distanceKm float64
}
