package planner

import (
	"math"

	"triphub/fare"
	"triphub/geo"
	"triphub/gtfs"
)

// walkSegment builds a Walk leg at 80 m/min, rounded up to whole minutes.
func walkSegment(from, to geo.Coordinate) Segment {
	d := geo.DistanceKm(from, to)
	return Segment{
		Kind:        SegmentWalk,
		From:        from,
		To:          to,
		DistanceKm:  d,
		DurationMin: geo.WalkingMinutes(d),
	}
}

// busSegment builds a Bus leg from a successful selectTrip boarding. Bus
// distance is the sum of great-circle hops across the trip's included stop
// sequence, board through alight inclusive (no road-geometry data).
// Hop distances are memoized in cache since direct and transfer search can
// both touch the same stop pair within one request.
func busSegment(idx *gtfs.Index, cache *stopPairDistanceCache, b boarding) Segment {
	var included []gtfs.StopTime
	for _, st := range b.tripStops {
		if st.Sequence >= b.board.Sequence && st.Sequence <= b.alight.Sequence {
			included = append(included, st)
		}
	}

	distanceKm := 0.0
	for i := 1; i < len(included); i++ {
		distanceKm += cache.distanceKm(included[i-1].StopID, included[i].StopID)
	}

	polyline := make([]geo.Coordinate, 0, len(included))
	polylineNames := make([]string, 0, len(included))
	for _, st := range included {
		s, _ := idx.Stop(st.StopID)
		polyline = append(polyline, s.Coord)
		polylineNames = append(polylineNames, s.Name)
	}

	boardStop, _ := idx.Stop(b.board.StopID)
	alightStop, _ := idx.Stop(b.alight.StopID)
	route, _ := idx.Route(b.routeID)

	durationMin := int(math.Ceil(float64(b.alight.ArrivalSec-b.board.DepartureSec) / 60.0))
	if durationMin < 0 {
		durationMin = 0
	}

	return Segment{
		Kind:              SegmentBus,
		From:              boardStop.Coord,
		To:                alightStop.Coord,
		DistanceKm:        distanceKm,
		DurationMin:       durationMin,
		RouteID:           b.routeID,
		RouteShortName:    route.ShortName,
		TripID:            b.tripID,
		BoardStopID:       b.board.StopID,
		BoardStopName:     boardStop.Name,
		AlightStopID:      b.alight.StopID,
		AlightStopName:    alightStop.Name,
		IntermediateStops: intermediateStopIDs(b.tripStops, b.board.Sequence, b.alight.Sequence),
		StartDepartSec:    b.board.DepartureSec,
		EndArriveSec:      b.alight.ArrivalSec,
		FareMinorUnits:    fare.BusFareMinorUnits(distanceKm),
		Polyline:          polyline,
		PolylineNames:     polylineNames,
	}
}

// transferWaitSegment builds the zero-distance wait leg between two bus
// segments of a transfer itinerary.
func transferWaitSegment(idx *gtfs.Index, stopID string, boardDepartSec, alightArriveSec int) Segment {
	stop, _ := idx.Stop(stopID)
	waitMin := (boardDepartSec - alightArriveSec) / 60
	if waitMin < 0 {
		waitMin = 0
	}
	return Segment{
		Kind:     SegmentTransferWait,
		From:     stop.Coord,
		To:       stop.Coord,
		StopID:   stopID,
		StopName: stop.Name,
		WaitMin:  waitMin,
	}
}

// finalize sums segment durations and bus fares into the Itinerary totals.
func finalize(segments []Segment) Itinerary {
	it := Itinerary{Segments: segments}
	for _, seg := range segments {
		it.TotalDurationMin += seg.DurationMin
		if seg.Kind == SegmentTransferWait {
			it.TotalDurationMin += seg.WaitMin
		}
		if seg.Kind == SegmentBus {
			it.TotalFareMinorUnits += seg.FareMinorUnits
		}
	}
	return it
}
