package planner

import (
	"sort"
	"time"

	"triphub/geo"
	"triphub/gtfs"
)

const maxItineraries = 5
const maxDurationMin = 240
const maxTransferWaitMin = 45

// Planner answers itinerary queries against a frozen schedule index.
type Planner struct {
	idx *gtfs.Index
}

// New wraps a loaded (possibly disabled) schedule index.
func New(idx *gtfs.Index) *Planner {
	return &Planner{idx: idx}
}

// FindItineraries returns up to 5 direct/one-transfer bus itineraries
// between pickup and drop, sorted ascending by total duration. Returns an
// empty slice (never nil-panics) for an unreachable pair, an inactive
// service, or a disabled feed.
func (p *Planner) FindItineraries(pickup, drop geo.Coordinate) []Itinerary {
	return p.findItinerariesAt(pickup, drop, time.Now())
}

// findItinerariesAt is the time-parameterized core, exposed for tests that
// need to pin "now" to a literal scenario clock.
func (p *Planner) findItinerariesAt(pickup, drop geo.Coordinate, now time.Time) []Itinerary {
	if p.idx == nil || p.idx.Disabled() {
		return []Itinerary{}
	}
	if !pickup.Valid() || !drop.Valid() {
		return []Itinerary{}
	}

	nowSec := now.Hour()*3600 + now.Minute()*60 + now.Second()
	date := now.Year()*10000 + int(now.Month())*100 + now.Day()
	weekday := int(now.Weekday()) // time.Sunday == 0, matches ActiveDays[0]==Sunday

	pickupNear := nearbyStops(p.idx, pickup, nearbyRadiusKm, nearbyLimit)
	dropNear := nearbyStops(p.idx, drop, nearbyRadiusKm, nearbyLimit)
	if len(pickupNear) == 0 || len(dropNear) == 0 {
		return []Itinerary{}
	}

	cache := newStopPairDistanceCache(p.idx)

	var results []searchResult
	seen := map[string]bool{}

	for _, r := range p.directSearch(pickup, drop, pickupNear, dropNear, nowSec, date, weekday, cache) {
		if !seen[r.key] {
			seen[r.key] = true
			results = append(results, r)
		}
	}

	if len(results) < maxItineraries {
		for _, r := range p.transferSearch(pickup, drop, pickupNear, dropNear, nowSec, date, weekday, cache) {
			if !seen[r.key] {
				seen[r.key] = true
				results = append(results, r)
			}
		}
	}

	itineraries := make([]Itinerary, 0, len(results))
	for _, r := range results {
		if r.it.TotalDurationMin >= maxDurationMin {
			continue
		}
		itineraries = append(itineraries, r.it)
	}

	sort.SliceStable(itineraries, func(i, j int) bool {
		return itineraries[i].TotalDurationMin < itineraries[j].TotalDurationMin
	})
	if len(itineraries) > maxItineraries {
		itineraries = itineraries[:maxItineraries]
	}
	return itineraries
}

type searchResult struct {
	it  Itinerary
	key string
}

// directSearch builds the pickup/drop route-candidate maps and tries every
// routeId common to both, in the direction pickup->drop.
func (p *Planner) directSearch(pickup, drop geo.Coordinate, pickupNear, dropNear []nearbyStop, nowSec, date, weekday int, cache *stopPairDistanceCache) []searchResult {
	pickupRoutes := nearestRouteCandidates(p.idx, pickupNear)
	dropRoutes := nearestRouteCandidates(p.idx, dropNear)

	var out []searchResult
	for routeID, pCand := range pickupRoutes {
		dCand, ok := dropRoutes[routeID]
		if !ok {
			continue
		}
		stops := p.idx.StopsOnRoute(routeID)
		pIdx := indexOf(pCand.stopID, stops)
		dIdx := indexOf(dCand.stopID, stops)
		if pIdx < 0 || dIdx < 0 || pIdx >= dIdx {
			continue
		}

		b, ok := selectTrip(p.idx, routeID, pCand.stopID, dCand.stopID, nowSec, date, weekday)
		if !ok {
			continue
		}

		boardStop, _ := p.idx.Stop(pCand.stopID)
		alightStop, _ := p.idx.Stop(dCand.stopID)

		segments := []Segment{
			walkSegment(pickup, boardStop.Coord),
			busSegment(p.idx, cache, b),
			walkSegment(alightStop.Coord, drop),
		}
		route, _ := p.idx.Route(routeID)
		key := "direct:" + route.ShortName + ":" + boardStop.Name + ":" + alightStop.Name
		out = append(out, searchResult{it: finalize(segments), key: key})
	}
	return out
}

// transferSearch attempts one-hop itineraries through a shared transfer
// stop, restricted to the 5 nearest stops on each side.
func (p *Planner) transferSearch(pickup, drop geo.Coordinate, pickupNear, dropNear []nearbyStop, nowSec, date, weekday int, cache *stopPairDistanceCache) []searchResult {
	pTop := pickupNear
	if len(pTop) > transferCandidateLimit {
		pTop = pTop[:transferCandidateLimit]
	}
	dTop := dropNear
	if len(dTop) > transferCandidateLimit {
		dTop = dTop[:transferCandidateLimit]
	}

	pickupRoutes := nearestRouteCandidates(p.idx, pTop)
	dropRoutes := nearestRouteCandidates(p.idx, dTop)

	transferIndex := map[string][]string{}
	for dropRouteID := range dropRoutes {
		for _, stopID := range p.idx.StopsOnRoute(dropRouteID) {
			transferIndex[stopID] = append(transferIndex[stopID], dropRouteID)
		}
	}

	var out []searchResult
	for pickupRouteID, pCand := range pickupRoutes {
		stops := p.idx.StopsOnRoute(pickupRouteID)
		pIdx := indexOf(pCand.stopID, stops)
		if pIdx < 0 {
			continue
		}

		for i := pIdx + 1; i < len(stops); i++ {
			transferStopID := stops[i]
			dropRouteIDs, ok := transferIndex[transferStopID]
			if !ok {
				continue
			}

			for _, dropRouteID := range dropRouteIDs {
				if dropRouteID == pickupRouteID {
					// Re-boarding the same route at a later stop isn't a transfer.
					continue
				}
				dCand, ok := dropRoutes[dropRouteID]
				if !ok {
					continue
				}
				dropStops := p.idx.StopsOnRoute(dropRouteID)
				tIdxOnDrop := indexOf(transferStopID, dropStops)
				dIdxOnDrop := indexOf(dCand.stopID, dropStops)
				if tIdxOnDrop < 0 || dIdxOnDrop < 0 || tIdxOnDrop >= dIdxOnDrop {
					continue
				}

				leg1, ok := selectTrip(p.idx, pickupRouteID, pCand.stopID, transferStopID, nowSec, date, weekday)
				if !ok {
					continue
				}
				leg2, ok := selectTrip(p.idx, dropRouteID, transferStopID, dCand.stopID, leg1.alight.ArrivalSec, date, weekday)
				if !ok {
					continue
				}

				waitSec := leg2.board.DepartureSec - leg1.alight.ArrivalSec
				if waitSec < 0 || waitSec >= maxTransferWaitMin*60 {
					continue
				}

				boardStop, _ := p.idx.Stop(pCand.stopID)
				alightStop, _ := p.idx.Stop(dCand.stopID)

				segments := []Segment{
					walkSegment(pickup, boardStop.Coord),
					busSegment(p.idx, cache, leg1),
					transferWaitSegment(p.idx, transferStopID, leg2.board.DepartureSec, leg1.alight.ArrivalSec),
					busSegment(p.idx, cache, leg2),
					walkSegment(alightStop.Coord, drop),
				}
				key := "transfer:" + pickupRouteID + ":" + transferStopID + ":" + dropRouteID
				out = append(out, searchResult{it: finalize(segments), key: key})
			}
		}
	}
	return out
}
