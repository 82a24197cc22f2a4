// Package transport is the HTTP boundary: bind and validate requests, call
// into the aggregator/planner, shape wire responses, and translate any
// uncaught failure into the generic 500 path. Each handler binds JSON,
// validates, calls into the domain layer, shapes the response, and logs
// start/end.
package transport

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"triphub/aggregator"
	"triphub/planner"
)

// Server wires the two domain endpoints over a shared planner/aggregator.
type Server struct {
	planner    *planner.Planner
	aggregator *aggregator.QuoteAggregator
}

// New builds a Server over an already-loaded planner and aggregator.
func New(p *planner.Planner, a *aggregator.QuoteAggregator) *Server {
	return &Server{planner: p, aggregator: a}
}

// Register attaches the trip-planning routes to r.
func (s *Server) Register(r *gin.Engine) {
	r.POST("/api/compare-fares", s.handleCompareFares)
	r.POST("/api/bus-routes", s.handleBusRoutes)
}

func (s *Server) handleCompareFares(c *gin.Context) {
	log.Println("=== Received compare-fares request ===")

	var req tripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("ERROR: failed to parse compare-fares request: %v", err)
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	pickup, drop := *req.Pickup, *req.Drop
	if !pickup.Valid() || !drop.Valid() {
		log.Printf("ERROR: compare-fares request has invalid coordinates: pickup=%+v drop=%+v", pickup, drop)
		c.JSON(http.StatusBadRequest, errorResponse{Error: "pickup and drop must be finite coordinates within WGS84 bounds"})
		return
	}

	log.Printf("compare-fares: pickup=(%.6f,%.6f) drop=(%.6f,%.6f)", pickup.Lat, pickup.Lng, drop.Lat, drop.Lng)

	quotes := s.aggregator.Quotes(c.Request.Context(), pickup, drop)

	c.JSON(http.StatusOK, compareFaresResponse{
		Success:   true,
		Count:     len(quotes),
		Estimates: shapeFareQuotes(quotes),
	})
	log.Println("=== compare-fares request completed ===")
}

func (s *Server) handleBusRoutes(c *gin.Context) {
	log.Println("=== Received bus-routes request ===")

	var req tripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("ERROR: failed to parse bus-routes request: %v", err)
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	pickup, drop := *req.Pickup, *req.Drop
	if !pickup.Valid() || !drop.Valid() {
		log.Printf("ERROR: bus-routes request has invalid coordinates: pickup=%+v drop=%+v", pickup, drop)
		c.JSON(http.StatusBadRequest, errorResponse{Error: "pickup and drop must be finite coordinates within WGS84 bounds"})
		return
	}

	log.Printf("bus-routes: pickup=(%.6f,%.6f) drop=(%.6f,%.6f)", pickup.Lat, pickup.Lng, drop.Lat, drop.Lng)

	itineraries := s.planner.FindItineraries(pickup, drop)

	c.JSON(http.StatusOK, busRoutesResponse{
		Success: true,
		Count:   len(itineraries),
		Routes:  shapeBusRoutes(itineraries),
	})
	log.Printf("bus-routes request completed, found %d itineraries", len(itineraries))
}
