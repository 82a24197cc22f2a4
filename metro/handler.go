package metro

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"triphub/geo"
)

type routeRequest struct {
	Pickup *geo.Coordinate `json:"pickup" binding:"required"`
	Drop   *geo.Coordinate `json:"drop" binding:"required"`
}

type routeResponse struct {
	Success bool  `json:"success"`
	Legs    []Leg `json:"legs,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Register attaches the out-of-scope metro passthrough route to r.
func Register(r *gin.Engine, client *Client) {
	r.POST("/api/metro-routes", func(c *gin.Context) {
		var req routeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, routeResponse{Error: err.Error()})
			return
		}

		legs, err := client.Plan(*req.Pickup, *req.Drop)
		if err != nil {
			log.Printf("metro: plan failed: %v", err)
			c.JSON(http.StatusOK, routeResponse{Success: true, Legs: []Leg{}})
			return
		}
		c.JSON(http.StatusOK, routeResponse{Success: true, Legs: legs})
	})
}
