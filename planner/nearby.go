package planner

import (
	"sort"

	"triphub/geo"
	"triphub/gtfs"
)

const nearbyRadiusKm = 2.0
const nearbyLimit = 20
const transferCandidateLimit = 5

// nearbyStops returns up to limit stops within radiusKm of coord, ordered by
// ascending distance.
func nearbyStops(idx *gtfs.Index, coord geo.Coordinate, radiusKm float64, limit int) []nearbyStop {
	var out []nearbyStop
	for _, s := range idx.AllStops() {
		d := geo.DistanceKm(coord, s.Coord)
		if d <= radiusKm {
			out = append(out, nearbyStop{stopID: s.ID, distanceKm: d})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].distanceKm < out[j].distanceKm })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// routeCandidate is the nearest endpoint stop found for a given route during
// route-candidate resolution.
type routeCandidate struct {
	stopID     string
	distanceKm float64
}

// nearestRouteCandidates builds routeId -> nearest (stop, distance) among
// near, for every route any of those stops serves. near must already be
// sorted by ascending distance so the first stop seen for a route is its
// nearest.
func nearestRouteCandidates(idx *gtfs.Index, near []nearbyStop) map[string]routeCandidate {
	out := map[string]routeCandidate{}
	for _, ns := range near {
		for _, routeID := range idx.RoutesAtStop(ns.stopID) {
			if _, ok := out[routeID]; ok {
				continue
			}
			out[routeID] = routeCandidate{stopID: ns.stopID, distanceKm: ns.distanceKm}
		}
	}
	return out
}

func indexOf(stopID string, stops []string) int {
	for i, s := range stops {
		if s == stopID {
			return i
		}
	}
	return -1
}
