// Package aggregator fans a fare-quote request out to every registered
// platform producer concurrently and caches the combined result for a
// short window, relabeling cache hits as such.
package aggregator

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/bluele/gcache"

	"triphub/fare"
	"triphub/geo"
	"triphub/metrics"
	"triphub/quotes"
)

// cacheTTL is enforced twice: gcache expires the entry on its own schedule,
// and Quotes re-checks the recorded age on every hit so a clock-skewed or
// slow eviction never serves a quote older than this as live.
const cacheTTL = 30 * time.Second

const cacheSize = 2048

type cacheEntry struct {
	quotes  []fare.Quote
	cachedAt time.Time
}

// QuoteAggregator combines every registered quotes.Producer's answer for a
// pickup/drop pair, coordinate-keyed and time-boxed by cacheTTL.
type QuoteAggregator struct {
	registry *quotes.Registry
	cache    gcache.Cache
}

// New builds an aggregator over registry, backed by an LRU cache of at most
// cacheSize coordinate-pair entries.
func New(registry *quotes.Registry) *QuoteAggregator {
	return &QuoteAggregator{
		registry: registry,
		cache:    gcache.New(cacheSize).LRU().Expiration(cacheTTL).Build(),
	}
}

// Quotes returns every platform's quote for pickup→drop, fanning out to all
// registered producers concurrently on a cache miss, or replaying a cached
// answer (with provenance rewritten to "cached") on a hit within cacheTTL.
func (a *QuoteAggregator) Quotes(ctx context.Context, pickup, drop geo.Coordinate) []fare.Quote {
	key := cacheKey(pickup, drop)

	if cached, err := a.cache.Get(key); err == nil {
		entry := cached.(cacheEntry)
		if time.Since(entry.cachedAt) < cacheTTL {
			metrics.CacheHitsTotal.Inc()
			return relabelCached(entry.quotes)
		}
	}

	metrics.CacheMissesTotal.Inc()
	result := a.fanOut(ctx, pickup, drop)

	if len(result) > 0 {
		_ = a.cache.Set(key, cacheEntry{quotes: result, cachedAt: time.Now()})
	}
	return result
}

// fanOut calls every registered producer in its own goroutine and
// concatenates their answers in registration order, regardless of which
// goroutine finishes first.
func (a *QuoteAggregator) fanOut(ctx context.Context, pickup, drop geo.Coordinate) []fare.Quote {
	producers := a.registry.All()
	results := make([][]fare.Quote, len(producers))

	var wg sync.WaitGroup
	wg.Add(len(producers))
	for i, p := range producers {
		i, p := i, p
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					log.Printf("aggregator: producer %s panicked: %v", p.PlatformName(), r)
					metrics.ProducerCallsTotal.WithLabelValues(p.PlatformName(), "panic").Inc()
				}
			}()

			start := time.Now()
			quotes := p.Quote(ctx, pickup, drop)
			metrics.ProducerDurationSeconds.WithLabelValues(p.PlatformName()).Observe(time.Since(start).Seconds())
			metrics.ProducerCallsTotal.WithLabelValues(p.PlatformName(), "ok").Inc()
			results[i] = quotes
		}()
	}
	wg.Wait()

	out := make([]fare.Quote, 0, len(producers))
	for _, r := range results {
		out = append(out, r...)
	}
	return out
}

func relabelCached(in []fare.Quote) []fare.Quote {
	out := make([]fare.Quote, len(in))
	for i, q := range in {
		out[i] = q.WithProvenance(fare.ProvenanceCached)
	}
	return out
}

// cacheKey rounds both endpoints to 4 decimal places (~11m resolution) so
// near-identical requests share a cache entry.
func cacheKey(pickup, drop geo.Coordinate) string {
	return fmt.Sprintf("%.4f,%.4f:%.4f,%.4f", pickup.Lat, pickup.Lng, drop.Lat, drop.Lng)
}
