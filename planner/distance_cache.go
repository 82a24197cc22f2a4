package planner

import (
	"triphub/geo"
	"triphub/gtfs"
)

// stopPairDistanceCache memoizes great-circle distances between stop pairs
// seen while assembling one findItinerariesAt call, so a stop pair shared by
// a direct-search bus segment and a transfer-search leg over the same route
// is only computed once. Scoped to a single request, not part of the
// persistent schedule index.
type stopPairDistanceCache struct {
	idx *gtfs.Index
	m   map[[2]string]float64
}

func newStopPairDistanceCache(idx *gtfs.Index) *stopPairDistanceCache {
	return &stopPairDistanceCache{idx: idx, m: map[[2]string]float64{}}
}

// distanceKm returns the great-circle distance between two stops, computing
// and caching it on first use. Order-independent: (a,b) and (b,a) share an
// entry since great-circle distance is symmetric.
func (c *stopPairDistanceCache) distanceKm(aStopID, bStopID string) float64 {
	if aStopID == bStopID {
		return 0
	}
	key := [2]string{aStopID, bStopID}
	if aStopID > bStopID {
		key = [2]string{bStopID, aStopID}
	}
	if d, ok := c.m[key]; ok {
		return d
	}
	a, _ := c.idx.Stop(aStopID)
	b, _ := c.idx.Stop(bStopID)
	d := geo.DistanceKm(a.Coord, b.Coord)
	c.m[key] = d
	return d
}
