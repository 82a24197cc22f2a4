package planner

import "triphub/gtfs"

// boarding is the result of a successful selectTrip call: the matched board
// and alight StopTimes plus the trip's full ordered stop sequence.
type boarding struct {
	tripID    string
	routeID   string
	board     gtfs.StopTime
	alight    gtfs.StopTime
	tripStops []gtfs.StopTime
}

// selectTrip finds the earliest trip on routeId that boards at boardStopId
// no earlier than earliestSec and alights at alightStopId further along the
// same trip. Searches candidate boardings by departure time rather than by
// longest stop list.
func selectTrip(idx *gtfs.Index, routeID, boardStopID, alightStopID string, earliestSec, date, weekday int) (boarding, bool) {
	candidates := idx.StopTimesAtStop(boardStopID)
	for _, board := range candidates {
		if board.DepartureSec < earliestSec {
			continue
		}
		trip, ok := idx.Trip(board.TripID)
		if !ok || trip.RouteID != routeID {
			continue
		}
		if !idx.IsServiceActive(trip.ServiceID, date, weekday) {
			continue
		}

		tripStops := idx.StopTimesForTrip(board.TripID)
		alight, found := findAlight(tripStops, alightStopID, board.Sequence)
		if !found {
			continue
		}
		return boarding{
			tripID:    board.TripID,
			routeID:   routeID,
			board:     board,
			alight:    alight,
			tripStops: tripStops,
		}, true
	}
	return boarding{}, false
}

// findAlight returns the StopTime for alightStopID within tripStops whose
// Sequence is strictly greater than boardSeq.
func findAlight(tripStops []gtfs.StopTime, alightStopID string, boardSeq int) (gtfs.StopTime, bool) {
	for _, st := range tripStops {
		if st.StopID == alightStopID && st.Sequence > boardSeq {
			return st, true
		}
	}
	return gtfs.StopTime{}, false
}

// intermediateStopIDs returns the stop ids strictly between board and alight
// (exclusive) along tripStops, in sequence order.
func intermediateStopIDs(tripStops []gtfs.StopTime, boardSeq, alightSeq int) []string {
	var out []string
	for _, st := range tripStops {
		if st.Sequence > boardSeq && st.Sequence < alightSeq {
			out = append(out, st.StopID)
		}
	}
	return out
}
