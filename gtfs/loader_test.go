package gtfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBuildsDerivedIndices(t *testing.T) {
	idx, err := Load("testdata")
	require.NoError(t, err)
	require.False(t, idx.Disabled())

	stopA, ok := idx.Stop("STOP_A")
	require.True(t, ok)
	assert.Equal(t, "First & Main", stopA.Name)

	r1Stops := idx.StopsOnRoute("R1")
	assert.Equal(t, []string{"STOP_A", "STOP_B", "STOP_C"}, r1Stops)

	atC := idx.RoutesAtStop("STOP_C")
	assert.ElementsMatch(t, []string{"R1", "R2"}, atC)

	tripStopTimes := idx.StopTimesForTrip("T1")
	require.Len(t, tripStopTimes, 3)
	assert.Equal(t, 1, tripStopTimes[0].Sequence)
	for i := 1; i < len(tripStopTimes); i++ {
		assert.Less(t, tripStopTimes[i-1].Sequence, tripStopTimes[i].Sequence)
		assert.GreaterOrEqual(t, tripStopTimes[i].DepartureSec, tripStopTimes[i-1].DepartureSec)
	}
}

func TestLoadAttachesOptionalAgency(t *testing.T) {
	idx, err := Load("testdata")
	require.NoError(t, err)

	r1, ok := idx.Route("R1")
	require.True(t, ok)
	assert.Equal(t, "CITYBUS", r1.AgencyID)
	assert.Equal(t, "City Bus Authority", r1.AgencyName)

	agency, ok := idx.Agency("CITYBUS")
	require.True(t, ok)
	assert.Equal(t, "Asia/Kolkata", agency.Timezone)
}

func TestLoadToleratesMissingAgencyFile(t *testing.T) {
	idx, err := Load("testdata_weekend_only")
	require.NoError(t, err)

	r1, ok := idx.Route("R1")
	require.True(t, ok)
	assert.Empty(t, r1.AgencyName)
}

func TestLoadMissingFileDisablesPlanner(t *testing.T) {
	_, err := Load("testdata/does-not-exist")
	require.Error(t, err)
	var feedErr *ErrFeedUnavailable
	require.ErrorAs(t, err, &feedErr)
}

func TestIsServiceActiveRespectsCalendar(t *testing.T) {
	idx, err := Load("testdata")
	require.NoError(t, err)

	// 2026-08-10 is a Monday.
	assert.True(t, idx.IsServiceActive("WEEKDAY", 20260810, 1))
	// 2026-08-09 is a Sunday.
	assert.False(t, idx.IsServiceActive("WEEKDAY", 20260809, 0))
}

func TestIsServiceActiveFallsBackWhenAbsent(t *testing.T) {
	idx, err := Load("testdata")
	require.NoError(t, err)
	assert.True(t, idx.IsServiceActive("UNKNOWN_SERVICE", 20260810, 1))
}

func TestWeekendOnlyCalendarDisablesWeekdayService(t *testing.T) {
	idx, err := Load("testdata_weekend_only")
	require.NoError(t, err)
	assert.False(t, idx.IsServiceActive("WEEKDAY", 20260810, 1)) // Monday
	assert.True(t, idx.IsServiceActive("WEEKDAY", 20260808, 6))  // Saturday
}
