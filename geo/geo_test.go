package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKmSymmetricAndZero(t *testing.T) {
	a := Coordinate{Lat: 28.7000, Lng: 77.1000}
	b := Coordinate{Lat: 28.7050, Lng: 77.1050}

	assert.InDelta(t, 0.0, DistanceKm(a, a), 1e-9)
	assert.InDelta(t, DistanceKm(a, b), DistanceKm(b, a), 1e-9)
	assert.Greater(t, DistanceKm(a, b), 0.0)
}

func TestCoordinateValid(t *testing.T) {
	assert.True(t, Coordinate{Lat: 10, Lng: 10}.Valid())
	assert.False(t, Coordinate{Lat: 91, Lng: 10}.Valid())
	assert.False(t, Coordinate{Lat: 10, Lng: 181}.Valid())
}

func TestWalkingMinutesRoundsUp(t *testing.T) {
	assert.Equal(t, 1, WalkingMinutes(0.01))
	assert.Equal(t, 13, WalkingMinutes(1.0))
}
