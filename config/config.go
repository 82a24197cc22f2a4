// Package config loads server configuration from the environment,
// using a godotenv.Load()-then-os.Getenv startup idiom.
package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the environment-driven server knobs.
type Config struct {
	Port        string
	GTFSFeedDir string

	disabledProducers map[string]bool
}

// Load reads a .env file if present (a missing file is logged, not fatal)
// and falls back to defaults for anything unset.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default environment variables")
	}

	cfg := Config{
		Port:              getenv("PORT", "8080"),
		GTFSFeedDir:       getenv("GTFS_FEED_DIR", "./data/gtfs"),
		disabledProducers: map[string]bool{},
	}
	for _, kv := range os.Environ() {
		const prefix = "ENABLE_PRODUCER_"
		if !strings.HasPrefix(kv, prefix) {
			continue
		}
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		name := strings.ToLower(strings.TrimPrefix(parts[0], prefix))
		if strings.EqualFold(parts[1], "false") || parts[1] == "0" {
			cfg.disabledProducers[name] = true
		}
	}
	return cfg
}

// ProducerEnabled reports whether platform has not been opted out via
// ENABLE_PRODUCER_<NAME>=false. Enabled by default.
func (c Config) ProducerEnabled(platform string) bool {
	return !c.disabledProducers[strings.ToLower(platform)]
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
