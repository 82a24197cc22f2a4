package transport

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triphub/aggregator"
	"triphub/fare"
	"triphub/gtfs"
	"triphub/planner"
	"triphub/quotes"
)

func newTestServer(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	idx, err := gtfs.Load("../gtfs/testdata")
	require.NoError(t, err)

	est := fare.NewEstimator("INR")
	est.Surge = fare.PinnedSurge{Value: 0}
	reg := quotes.NewRegistry(quotes.NewCatalogQuoteProducer("fixedcab", []fare.VehicleClass{fare.Mini, fare.Auto}, est))

	s := New(planner.New(idx), aggregator.New(reg))
	r := gin.New()
	s.Register(r)
	return r
}

func doPost(r *gin.Engine, path string, body map[string]any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCompareFaresReturnsEstimatesForValidCoordinates(t *testing.T) {
	r := newTestServer(t)
	w := doPost(r, "/api/compare-fares", map[string]any{
		"pickup": map[string]float64{"lat": 28.70, "lng": 77.10},
		"drop":   map[string]float64{"lat": 28.72, "lng": 77.12},
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp compareFaresResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Count)
	assert.Len(t, resp.Estimates, 2)
}

func TestCompareFaresRejectsMissingCoordinate(t *testing.T) {
	r := newTestServer(t)
	w := doPost(r, "/api/compare-fares", map[string]any{
		"pickup": map[string]float64{"lat": 28.70},
		"drop":   map[string]float64{"lat": 28.72, "lng": 77.12},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompareFaresAcceptsZeroValuedCoordinate(t *testing.T) {
	r := newTestServer(t)
	w := doPost(r, "/api/compare-fares", map[string]any{
		"pickup": map[string]float64{"lat": 0, "lng": 0},
		"drop":   map[string]float64{"lat": 28.72, "lng": 77.12},
	})

	require.Equal(t, http.StatusOK, w.Code)
}

func TestCompareFaresRejectsAbsentCoordinateField(t *testing.T) {
	r := newTestServer(t)
	w := doPost(r, "/api/compare-fares", map[string]any{
		"drop": map[string]float64{"lat": 28.72, "lng": 77.12},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompareFaresRejectsOutOfBoundsCoordinate(t *testing.T) {
	r := newTestServer(t)
	w := doPost(r, "/api/compare-fares", map[string]any{
		"pickup": map[string]float64{"lat": 200, "lng": 77.10},
		"drop":   map[string]float64{"lat": 28.72, "lng": 77.12},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBusRoutesReturnsDirectItinerary(t *testing.T) {
	r := newTestServer(t)
	w := doPost(r, "/api/bus-routes", map[string]any{
		"pickup": map[string]float64{"lat": 28.7001, "lng": 77.1001},
		"drop":   map[string]float64{"lat": 28.7051, "lng": 77.1051},
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp busRoutesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.GreaterOrEqual(t, resp.Count, 1)
	route := resp.Routes[0]
	assert.NotEmpty(t, route.RouteName)
	assert.Contains(t, route.Duration, "mins")
	assert.Contains(t, route.TotalDistance, "km")
	assert.Greater(t, route.StopsCount, 0)
}

func TestBusRoutesReturnsEmptyForUnreachablePair(t *testing.T) {
	r := newTestServer(t)
	w := doPost(r, "/api/bus-routes", map[string]any{
		"pickup": map[string]float64{"lat": 1, "lng": 1},
		"drop":   map[string]float64{"lat": 2, "lng": 2},
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp busRoutesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 0, resp.Count)
	assert.Empty(t, resp.Routes)
}
