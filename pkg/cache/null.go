package cache

import (
	"context"
	"time"

	"github.com/urbancharge/urbancharge/pkg/observability"
)

// NullCache stores nothing. Every lookup is a miss, and misses are still
// reported to the cache hooks so disabled caching shows up in counts.
type NullCache struct{}

var _ Cache = NullCache{}

// NewNullCache returns a cache for --no-cache runs.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	observability.Cache().OnCacheMiss(ctx, keyType(key))
	return nil, false, nil
}

func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (NullCache) Delete(context.Context, string) error { return nil }

func (NullCache) Close() error { return nil }
