// Command triphub serves the bus-itinerary planner and ride-hailing
// fare-comparison HTTP API. Startup loads config, loads static data once,
// builds the gin engine, then serves.
package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"triphub/aggregator"
	"triphub/config"
	"triphub/fare"
	"triphub/gtfs"
	"triphub/metro"
	"triphub/planner"
	"triphub/quotes"
	"triphub/transport"
)

func main() {
	cfg := config.Load()

	log.Printf("Loading GTFS feed from %s...", cfg.GTFSFeedDir)
	idx, err := gtfs.Load(cfg.GTFSFeedDir)
	if err != nil {
		log.Printf("Warning: GTFS feed unavailable (%v); bus-routes will return empty results", err)
		idx = gtfs.DisabledIndex()
	} else {
		log.Printf("GTFS feed loaded: %+v", idx.Summary())
	}

	reg := buildProducerRegistry(cfg)
	log.Printf("Registered %d fare-quote producers", len(reg.All()))

	p := planner.New(idx)
	agg := aggregator.New(reg)

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"*"}
	r.Use(cors.New(corsConfig))

	transport.New(p, agg).Register(r)
	metro.Register(r, metro.NewClient())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	log.Printf("triphub server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("failed to start server:", err)
	}
}

// buildProducerRegistry registers one producer per supported ride-hailing
// platform, each backed by a different integration style, skipping any
// platform disabled via ENABLE_PRODUCER_<NAME>=false.
func buildProducerRegistry(cfg config.Config) *quotes.Registry {
	est := fare.NewEstimator("INR")
	fullMenu := []fare.VehicleClass{fare.Bike, fare.Auto, fare.Mini, fare.Sedan, fare.SUV}

	var producers []quotes.Producer

	if cfg.ProducerEnabled("alpharide") {
		endpoint := getenv("ALPHARIDE_API_URL", "https://api.alpharide.example/v1/quote")
		producers = append(producers, quotes.NewHTTPQuoteProducer("alpharide", endpoint, fullMenu, est))
	}
	if cfg.ProducerEnabled("betaride") {
		appURL := getenv("BETARIDE_APP_URL", "https://book.betaride.example/fare-widget")
		producers = append(producers, quotes.NewBrowserQuoteProducer("betaride", appURL, "#fare-result", fullMenu, est))
	}
	if cfg.ProducerEnabled("gammaride") {
		producers = append(producers, quotes.NewCatalogQuoteProducer("gammaride", fullMenu, est))
	}

	return quotes.NewRegistry(producers...)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
