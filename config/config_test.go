package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaultsWhenUnset(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("GTFS_FEED_DIR")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "./data/gtfs", cfg.GTFSFeedDir)
}

func TestLoadReadsOverrides(t *testing.T) {
	os.Setenv("PORT", "9090")
	defer os.Unsetenv("PORT")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
}

func TestProducerEnabledDisabledViaEnv(t *testing.T) {
	os.Setenv("ENABLE_PRODUCER_ALPHARIDE", "false")
	defer os.Unsetenv("ENABLE_PRODUCER_ALPHARIDE")

	cfg := Load()
	assert.False(t, cfg.ProducerEnabled("alpharide"))
	assert.True(t, cfg.ProducerEnabled("betaride"))
}
