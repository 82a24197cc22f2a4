package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triphub/gtfs"
)

func TestStopPairDistanceCacheIsSymmetricAndMemoized(t *testing.T) {
	idx, err := gtfs.Load("../gtfs/testdata")
	require.NoError(t, err)

	cache := newStopPairDistanceCache(idx)
	ab := cache.distanceKm("STOP_A", "STOP_B")
	ba := cache.distanceKm("STOP_B", "STOP_A")
	assert.Equal(t, ab, ba)
	assert.Len(t, cache.m, 1, "a symmetric pair should occupy a single cache slot")

	assert.Equal(t, 0.0, cache.distanceKm("STOP_A", "STOP_A"))
}
