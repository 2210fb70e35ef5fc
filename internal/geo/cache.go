package geo

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

// CachedGeocoder wraps another Geocoder with a redis TTL cache keyed on
// the normalized location string, so repeated searches for the same
// suburb don't hammer the upstream geocoding API. Cache failures are
// logged and treated as misses, never surfaced to the caller.
type CachedGeocoder struct {
	inner Geocoder
	rdb   *redis.Client
	ttl   time.Duration
}

func NewCachedGeocoder(inner Geocoder, rdb *redis.Client, ttl time.Duration) *CachedGeocoder {
	return &CachedGeocoder{inner: inner, rdb: rdb, ttl: ttl}
}

func cacheKey(location string) string {
	return "geocode:" + strings.Join(strings.Fields(strings.ToLower(location)), " ")
}

func (c *CachedGeocoder) Resolve(ctx context.Context, location string) (*Point, error) {
	key := cacheKey(location)

	val, err := c.rdb.Get(ctx, key).Result()
	if err == nil {
		var pt Point
		if err := json.Unmarshal([]byte(val), &pt); err == nil {
			return &pt, nil
		}
	} else if err != redis.Nil {
		log.Printf("geocode cache read failed for %q: %v", location, err)
	}

	pt, err := c.inner.Resolve(ctx, location)
	if err != nil || pt == nil {
		// Only successful resolutions are cached. An unresolvable string
		// stays uncached so a later fix upstream takes effect immediately.
		return pt, err
	}

	if data, err := json.Marshal(pt); err == nil {
		if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
			log.Printf("geocode cache write failed for %q: %v", location, err)
		}
	}
	return pt, nil
}
