package gtfs

import "sort"

// Index is the frozen, read-only set of derived lookup tables built once at
// startup. All fields are safe to read concurrently
// once Load/build has returned.
type Index struct {
	stops     map[string]Stop
	routes    map[string]Route
	trips     map[string]Trip
	calendars map[string]ServiceCalendar
	agencies  map[string]Agency

	stopTimesByStop map[string][]StopTime
	stopTimesByTrip map[string][]StopTime
	routesByStop    map[string]map[string]struct{}
	stopsByRoute    map[string][]string

	disabled bool
}

// Disabled reports whether the feed failed to load and all planning queries
// must return empty results.
func (idx *Index) Disabled() bool {
	return idx == nil || idx.disabled
}

// DisabledIndex returns an Index in permanent disabled mode, used when
// mandatory GTFS files are absent.
func DisabledIndex() *Index {
	return &Index{disabled: true}
}

func (idx *Index) Stop(id string) (Stop, bool) {
	s, ok := idx.stops[id]
	return s, ok
}

func (idx *Index) Route(id string) (Route, bool) {
	r, ok := idx.routes[id]
	return r, ok
}

func (idx *Index) Trip(id string) (Trip, bool) {
	t, ok := idx.trips[id]
	return t, ok
}

// Agency looks up the optional operator record for an agency id. Feeds
// without agency.txt have an empty agencies map, so every lookup misses.
func (idx *Index) Agency(id string) (Agency, bool) {
	a, ok := idx.agencies[id]
	return a, ok
}

// AllStops returns every stop in the feed, in no particular order.
func (idx *Index) AllStops() []Stop {
	out := make([]Stop, 0, len(idx.stops))
	for _, s := range idx.stops {
		out = append(out, s)
	}
	return out
}

// StopTimesAtStop returns every StopTime calling at stopID, ordered by
// departure second.
func (idx *Index) StopTimesAtStop(stopID string) []StopTime {
	return idx.stopTimesByStop[stopID]
}

// StopTimesForTrip returns a trip's full stop sequence, ordered by sequence.
func (idx *Index) StopTimesForTrip(tripID string) []StopTime {
	return idx.stopTimesByTrip[tripID]
}

// RoutesAtStop returns the set of route IDs that call at stopID.
func (idx *Index) RoutesAtStop(stopID string) []string {
	set := idx.routesByStop[stopID]
	out := make([]string, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	return out
}

// StopsOnRoute returns the representative ordered stop-id sequence for
// routeID.
func (idx *Index) StopsOnRoute(routeID string) []string {
	return idx.stopsByRoute[routeID]
}

// IsServiceActive reports whether serviceID runs on the given date/weekday.
// A serviceID absent from the calendar is treated as always active
// (permissive fallback for incomplete feeds).
func (idx *Index) IsServiceActive(serviceID string, date int, weekday int) bool {
	cal, ok := idx.calendars[serviceID]
	if !ok {
		return true
	}
	return cal.ActiveOn(date, weekday)
}

// Summary reports the size of each derived index, for startup logging and
// the gtfsindex inspection tool.
func (idx *Index) Summary() map[string]int {
	stopTimeCount := 0
	for _, sts := range idx.stopTimesByTrip {
		stopTimeCount += len(sts)
	}
	return map[string]int{
		"stops":      len(idx.stops),
		"routes":     len(idx.routes),
		"trips":      len(idx.trips),
		"calendars":  len(idx.calendars),
		"agencies":   len(idx.agencies),
		"stopTimes":  stopTimeCount,
	}
}

// build runs the deterministic derived-index construction pass.
func build(raw *rawFeed) *Index {
	idx := &Index{
		stops:           raw.stops,
		routes:          raw.routes,
		trips:           raw.trips,
		calendars:       raw.calendars,
		agencies:        raw.agencies,
		stopTimesByStop: map[string][]StopTime{},
		stopTimesByTrip: map[string][]StopTime{},
		routesByStop:    map[string]map[string]struct{}{},
		stopsByRoute:    map[string][]string{},
	}

	// Step 2: bucket StopTimes by stop and by trip; accumulate routesByStop.
	for _, st := range raw.stopTimes {
		idx.stopTimesByStop[st.StopID] = append(idx.stopTimesByStop[st.StopID], st)
		idx.stopTimesByTrip[st.TripID] = append(idx.stopTimesByTrip[st.TripID], st)

		if trip, ok := idx.trips[st.TripID]; ok {
			set, ok := idx.routesByStop[st.StopID]
			if !ok {
				set = map[string]struct{}{}
				idx.routesByStop[st.StopID] = set
			}
			set[trip.RouteID] = struct{}{}
		}
	}

	// Step 3: sort each trip's stop_times by sequence.
	for tripID, sts := range idx.stopTimesByTrip {
		sort.Slice(sts, func(i, j int) bool { return sts[i].Sequence < sts[j].Sequence })
		idx.stopTimesByTrip[tripID] = sts
	}

	// stopTimesByStop is sorted by departure second so selectTrip's linear
	// scan meets the earliest feasible boarding first.
	for stopID, sts := range idx.stopTimesByStop {
		sort.Slice(sts, func(i, j int) bool { return sts[i].DepartureSec < sts[j].DepartureSec })
		idx.stopTimesByStop[stopID] = sts
	}

	// Step 4: pick the first-seen trip per route (stable given input order)
	// as the representative and materialize its stop sequence. Stops served
	// only by other trips of the route (branches) are absent from
	// stopsByRoute; one list per route keeps the index small.
	seenRoute := map[string]bool{}
	representativeTrip := map[string]string{}
	for _, st := range raw.stopTimes {
		trip, ok := idx.trips[st.TripID]
		if !ok {
			continue
		}
		if seenRoute[trip.RouteID] {
			continue
		}
		// The first stop_time we encounter for a not-yet-seen route pins its
		// representative trip; subsequent stop_times of other trips on the
		// same route are ignored for this purpose.
		if existing, ok := representativeTrip[trip.RouteID]; !ok || existing == "" {
			representativeTrip[trip.RouteID] = st.TripID
			seenRoute[trip.RouteID] = true
		}
	}

	for routeID, tripID := range representativeTrip {
		sts := idx.stopTimesByTrip[tripID]
		stops := make([]string, len(sts))
		for i, st := range sts {
			stops[i] = st.StopID
		}
		idx.stopsByRoute[routeID] = stops
	}

	return idx
}
