package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triphub/geo"
	"triphub/gtfs"
)

var aWeekday = time.Date(2026, 8, 10, 9, 55, 0, 0, time.UTC) // Monday

func TestFindItinerariesDirectRoute(t *testing.T) {
	idx, err := gtfs.Load("../gtfs/testdata")
	require.NoError(t, err)
	p := New(idx)

	pickup := geo.Coordinate{Lat: 28.7001, Lng: 77.1001}
	drop := geo.Coordinate{Lat: 28.7051, Lng: 77.1051}

	itineraries := p.findItinerariesAt(pickup, drop, aWeekday)
	require.NotEmpty(t, itineraries)

	var direct *Itinerary
	for i := range itineraries {
		if len(itineraries[i].Segments) == 3 {
			direct = &itineraries[i]
			break
		}
	}
	require.NotNil(t, direct, "expected a direct walk-bus-walk itinerary")

	assert.Equal(t, SegmentWalk, direct.Segments[0].Kind)
	bus := direct.Segments[1]
	assert.Equal(t, SegmentBus, bus.Kind)
	assert.Equal(t, "R1", bus.RouteShortName)
	assert.Equal(t, "STOP_A", bus.BoardStopID)
	assert.Equal(t, "STOP_C", bus.AlightStopID)
	assert.Len(t, bus.IntermediateStops, 1)
	assert.Equal(t, 5, bus.FareMinorUnits)
	assert.Equal(t, SegmentWalk, direct.Segments[2].Kind)
	assert.LessOrEqual(t, direct.TotalDurationMin, 25)
}

func TestFindItinerariesNoNearbyStopsReturnsEmpty(t *testing.T) {
	idx, err := gtfs.Load("../gtfs/testdata")
	require.NoError(t, err)
	p := New(idx)

	pickup := geo.Coordinate{Lat: 0, Lng: 0}
	drop := geo.Coordinate{Lat: 1, Lng: 1}

	itineraries := p.findItinerariesAt(pickup, drop, aWeekday)
	assert.Empty(t, itineraries)
}

func TestFindItinerariesServiceInactiveReturnsEmpty(t *testing.T) {
	idx, err := gtfs.Load("../gtfs/testdata_weekend_only")
	require.NoError(t, err)
	p := New(idx)

	pickup := geo.Coordinate{Lat: 28.7001, Lng: 77.1001}
	drop := geo.Coordinate{Lat: 28.7051, Lng: 77.1051}

	itineraries := p.findItinerariesAt(pickup, drop, aWeekday)
	assert.Empty(t, itineraries)
}

func TestFindItinerariesOneTransfer(t *testing.T) {
	idx, err := gtfs.Load("../gtfs/testdata")
	require.NoError(t, err)
	p := New(idx)

	pickup := geo.Coordinate{Lat: 28.7001, Lng: 77.1001}
	drop := geo.Coordinate{Lat: 28.7081, Lng: 77.1081}

	itineraries := p.findItinerariesAt(pickup, drop, aWeekday)
	require.NotEmpty(t, itineraries)

	var transfer *Itinerary
	for i := range itineraries {
		it := itineraries[i]
		if len(it.Segments) == 5 &&
			it.Segments[1].RouteID == "R1" &&
			it.Segments[2].Kind == SegmentTransferWait &&
			it.Segments[2].StopID == "STOP_C" &&
			it.Segments[3].RouteID == "R2" {
			transfer = &itineraries[i]
			break
		}
	}
	require.NotNil(t, transfer, "expected a one-transfer itinerary via STOP_C")
	assert.Equal(t, 5, transfer.Segments[2].WaitMin)
}

func TestFindItinerariesDisabledIndexReturnsEmpty(t *testing.T) {
	p := New(gtfs.DisabledIndex())
	itineraries := p.FindItineraries(
		geo.Coordinate{Lat: 28.7001, Lng: 77.1001},
		geo.Coordinate{Lat: 28.7051, Lng: 77.1051},
	)
	assert.Empty(t, itineraries)
}

func TestFindItinerariesAtMostFiveSortedByDuration(t *testing.T) {
	idx, err := gtfs.Load("../gtfs/testdata")
	require.NoError(t, err)
	p := New(idx)

	itineraries := p.findItinerariesAt(
		geo.Coordinate{Lat: 28.7001, Lng: 77.1001},
		geo.Coordinate{Lat: 28.7081, Lng: 77.1081},
		aWeekday,
	)
	require.LessOrEqual(t, len(itineraries), maxItineraries)
	for i := 1; i < len(itineraries); i++ {
		assert.LessOrEqual(t, itineraries[i-1].TotalDurationMin, itineraries[i].TotalDurationMin)
	}
}

func TestSelectTripInvariants(t *testing.T) {
	idx, err := gtfs.Load("../gtfs/testdata")
	require.NoError(t, err)

	b, ok := selectTrip(idx, "R1", "STOP_A", "STOP_C", 35700, 20260810, 1)
	require.True(t, ok)
	assert.Greater(t, b.alight.Sequence, b.board.Sequence)
	assert.GreaterOrEqual(t, b.alight.ArrivalSec, b.board.DepartureSec)
}
