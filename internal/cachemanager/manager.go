package cachemanager

import (
	"context"
	"time"
)

// CacheManager is the interface the engine's result caches are built on.
// Keys are content hashes of source text, so a hit is always safe to serve.
type CacheManager[K comparable, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	GetWithRefresh(ctx context.Context, key K, ttl time.Duration) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...K) error
	Flush(ctx context.Context) error
}
