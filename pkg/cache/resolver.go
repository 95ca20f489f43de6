package cache

import (
	"context"
	"encoding/json"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/diasutsman/open-music-api/pkg/logger"
)

// Source tells where a resolved value came from. It is observable
// metadata only; callers must not branch on it.
type Source string

const (
	// SourceCache marks a value served from the cache.
	SourceCache Source = "cache"
	// SourceOrigin marks a value loaded from the backing store.
	SourceOrigin Source = "origin"
)

// Store is the subset of the cache client the resolver needs. It is
// satisfied by *Client; tests substitute an in-memory implementation.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Resolver applies the cache-aside policy to entity reads: try the
// cache, on miss load from origin, populate the cache, report
// provenance. Concurrent in-process misses for one key share a single
// load via singleflight; cross-process populations still race and the
// last write to the key wins, which is fine because cached values are
// derived, never authoritative.
type Resolver struct {
	store Store
	ttl   time.Duration
	sf    singleflight.Group
	log   logger.Logger
}

// NewResolver creates a resolver. A non-positive ttl falls back to
// DefaultTTL.
func NewResolver(store Store, ttl time.Duration, log logger.Logger) *Resolver {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = logger.Default()
	}
	return &Resolver{
		store: store,
		ttl:   ttl,
		log:   log,
	}
}

// Invalidate removes keys from the cache. It returns the transport
// error, if any, so coordinators can decide to log it; a missing key
// is never an error.
func (r *Resolver) Invalidate(ctx context.Context, keys ...string) error {
	return r.store.Delete(ctx, keys...)
}

// Lookup resolves one entity read through the cache-aside policy.
//
// A cache transport error is treated as a miss: reads fail open to the
// origin. A loader error is returned as-is and nothing is cached, so a
// not-found outcome is re-checked against the store on every request.
// A cache write failure after a successful load is logged and
// swallowed; the caller still gets the origin value.
func Lookup[T any](ctx context.Context, r *Resolver, key string, load func(context.Context) (T, error)) (T, Source, error) {
	var zero T

	raw, err := r.store.Get(ctx, key)
	if err == nil {
		var cached T
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return cached, SourceCache, nil
		}
		// Corrupt entry: fall through to the origin as if missed.
		r.log.Warn("discarding undecodable cache entry",
			logger.String("key", key))
	} else if err != ErrCacheMiss {
		r.log.Warn("cache read failed, falling back to origin",
			logger.String("key", key),
			logger.Error(err))
	}

	v, err, _ := r.sf.Do(key, func() (interface{}, error) {
		value, err := load(ctx)
		if err != nil {
			return nil, err
		}

		data, err := json.Marshal(value)
		if err != nil {
			// The value is still good; only caching is impossible.
			r.log.Warn("failed to encode value for caching",
				logger.String("key", key),
				logger.Error(err))
			return value, nil
		}

		if err := r.store.Set(ctx, key, data, r.ttl); err != nil {
			r.log.Warn("failed to populate cache",
				logger.String("key", key),
				logger.Error(err))
		}

		return value, nil
	})
	if err != nil {
		return zero, SourceOrigin, err
	}

	return v.(T), SourceOrigin, nil
}
