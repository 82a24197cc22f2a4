package transport

import (
	"fmt"

	"triphub/fare"
	"triphub/planner"
)

func shapeFareQuote(q fare.Quote) fareQuote {
	return fareQuote{
		Platform:    q.Platform,
		VehicleType: string(q.VehicleClass),
		Price:       q.PriceMinorUnits,
		Currency:    q.Currency,
		Eta:         q.EtaLabel,
		Source:      string(q.Provenance),
		Confidence:  string(q.Confidence),
	}
}

func shapeFareQuotes(quotes []fare.Quote) []fareQuote {
	out := make([]fareQuote, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, shapeFareQuote(q))
	}
	return out
}

func secToClock(sec int) string {
	sec = ((sec % 86400) + 86400) % 86400
	h := sec / 3600
	m := (sec % 3600) / 60
	s := sec % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// shapeBusRoute converts one planner.Itinerary into its wire shape.
// route_name/start_stop/end_stop/departure_time/arrival_time are derived
// from the itinerary's ordered bus segments; path and stops_count walk that
// same ordered stop sequence, collapsing the shared transfer stop between
// two bus segments into a single path point.
func shapeBusRoute(it planner.Itinerary) busRoute {
	var busSegments []planner.Segment
	for _, seg := range it.Segments {
		if seg.Kind == planner.SegmentBus {
			busSegments = append(busSegments, seg)
		}
	}

	var routeNames []string
	var path []pathPoint
	totalDistanceKm := 0.0

	for _, seg := range it.Segments {
		totalDistanceKm += seg.DistanceKm
	}

	for _, seg := range busSegments {
		routeNames = append(routeNames, seg.RouteShortName)
		for i, coord := range seg.Polyline {
			name := seg.PolylineNames[i]
			if len(path) > 0 && path[len(path)-1].Name == name && i == 0 {
				continue // shared transfer stop, already appended by the previous bus segment
			}
			path = append(path, pathPoint{Lat: coord.Lat, Lng: coord.Lng, Name: name, Sequence: len(path) + 1})
		}
	}

	routeName := ""
	startStop, endStop := "", ""
	departureTime, arrivalTime := "", ""
	if len(busSegments) > 0 {
		startStop = busSegments[0].BoardStopName
		endStop = busSegments[len(busSegments)-1].AlightStopName
		departureTime = secToClock(busSegments[0].StartDepartSec)
		arrivalTime = secToClock(busSegments[len(busSegments)-1].EndArriveSec)
		routeName = joinRouteNames(routeNames)
	}

	return busRoute{
		RouteName:     routeName,
		StartStop:     startStop,
		EndStop:       endStop,
		DepartureTime: departureTime,
		ArrivalTime:   arrivalTime,
		Duration:      fmt.Sprintf("%d mins", it.TotalDurationMin),
		StopsCount:    len(path),
		Fare:          it.TotalFareMinorUnits,
		Path:          path,
		Segments:      shapeSegments(it.Segments),
		TotalDistance: fmt.Sprintf("%.1f km", totalDistanceKm),
	}
}

func shapeBusRoutes(itineraries []planner.Itinerary) []busRoute {
	out := make([]busRoute, 0, len(itineraries))
	for _, it := range itineraries {
		out = append(out, shapeBusRoute(it))
	}
	return out
}

func joinRouteNames(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += " -> "
		}
		out += n
	}
	return out
}

func shapeSegments(segments []planner.Segment) []wireSegment {
	out := make([]wireSegment, 0, len(segments))
	for _, seg := range segments {
		ws := wireSegment{
			Kind:        string(seg.Kind),
			From:        pathPoint{Lat: seg.From.Lat, Lng: seg.From.Lng},
			To:          pathPoint{Lat: seg.To.Lat, Lng: seg.To.Lng},
			DurationMin: seg.DurationMin,
		}
		switch seg.Kind {
		case planner.SegmentBus:
			ws.RouteID = seg.RouteID
			ws.RouteShortName = seg.RouteShortName
			ws.BoardStop = seg.BoardStopName
			ws.AlightStop = seg.AlightStopName
			ws.IntermediateStops = seg.IntermediateStops
			ws.Fare = seg.FareMinorUnits
		case planner.SegmentTransferWait:
			ws.StopName = seg.StopName
			ws.WaitMin = seg.WaitMin
		}
		out = append(out, ws)
	}
	return out
}
